package treeprinter

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/stacks/arraystack"
)

const (
	StyleASCII   = 0
	StyleUnicode = 1
)

// MultiNode 多叉树节点
type MultiNode struct {
	Data     any // 节点数据，可以是任意类型
	Children []*MultiNode
}

type MultiTreePrinter struct {
	Root     *MultiNode
	Style    int                     // 0 = ascii, 1 = unicode
	FormatFn func(*MultiNode) string // 可选的自定义格式化函数
}

type glyphs struct {
	last, branch, space string
}

func glyphsFor(style int) glyphs {
	if style == StyleUnicode {
		return glyphs{last: "└── ", branch: "├── ", space: "│   "}
	}
	return glyphs{last: "'-- ", branch: "|-- ", space: "|   "}
}

// PrintMultiTree 打印一棵多叉树，根节点单独一行，不带连接符
// 用显式栈遍历，树很深的时候不会撑爆调用栈
func PrintMultiTree(printer MultiTreePrinter) string {
	if printer.Root == nil {
		return "tree is empty\n"
	}

	var b strings.Builder
	writeTree(&b, printer.Root, glyphsFor(printer.Style), printer.FormatFn)
	return b.String()
}

// PrintForest 依次打印多棵树，树与树之间不加空行
func PrintForest(roots []*MultiNode, style int, formatFn func(*MultiNode) string) string {
	if len(roots) == 0 {
		return "forest is empty\n"
	}

	var b strings.Builder
	g := glyphsFor(style)
	for _, root := range roots {
		writeTree(&b, root, g, formatFn)
	}
	return b.String()
}

func writeTree(b *strings.Builder, root *MultiNode, g glyphs, formatFn func(*MultiNode) string) {
	type stackEntry struct {
		node   *MultiNode
		prefix string // 子节点继承的前缀
		lead   string // 当前行的前缀+连接符
	}

	label := func(n *MultiNode) string {
		if formatFn != nil {
			return formatFn(n)
		}
		return fmt.Sprintf("%v", n.Data)
	}

	stack := arraystack.New()
	stack.Push(stackEntry{node: root})
	for !stack.Empty() {
		v, _ := stack.Pop()
		top := v.(stackEntry)

		fmt.Fprintf(b, "%s%s\n", top.lead, label(top.node))

		// 逆序压栈，保证出栈顺序和 Children 一致
		for i := len(top.node.Children) - 1; i >= 0; i-- {
			child := top.node.Children[i]
			if child == nil {
				continue
			}
			isLast := i == len(top.node.Children)-1
			conn, next := g.branch, top.prefix+g.space
			if isLast {
				conn, next = g.last, top.prefix+"    "
			}
			stack.Push(stackEntry{
				node:   child,
				prefix: next,
				lead:   top.prefix + conn,
			})
		}
	}
}
