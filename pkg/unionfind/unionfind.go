package unionfind

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"mazegen/pkg/treeprinter"
)

// ErrNoSuchElement 严格模式下合并了不存在的元素
var ErrNoSuchElement = errors.New("no such element")

// absent 表示该下标还没有被插入过（数组扩容留下的空洞）
const absent = -1

// UnionFind 是并查集结构，支持路径压缩和按秩合并
// 元素是稠密的非负整数下标，数组按需扩容
type UnionFind struct {
	parent []int
	rank   []int // 只对根节点有意义
	size   []int // 每个集合的大小，只对根节点有意义
	count  int   // 当前集合个数
	elems  int   // 已插入的元素个数
}

// NewUnionFind 初始化并查集，元素范围为 [0, n)，每个元素单独成为一个集合
func NewUnionFind(n int) *UnionFind {
	if n < 0 {
		n = 0
	}
	parent := make([]int, n)
	rank := make([]int, n)
	size := make([]int, n)
	for i := range parent {
		parent[i] = i
		size[i] = 1
	}
	return &UnionFind{parent: parent, rank: rank, size: size, count: n, elems: n}
}

// grow 扩容到能容纳下标 x，新位置标记为未插入
func (uf *UnionFind) grow(x int) {
	for len(uf.parent) <= x {
		uf.parent = append(uf.parent, absent)
		uf.rank = append(uf.rank, 0)
		uf.size = append(uf.size, 0)
	}
}

// Insert 把 x 作为新的单元素集合插入，秩为 0
// 注意: 重复插入已有元素会把它重置为单独的根，原来的集合关系丢失，
// 集合计数也会加一。如果 x 原来是某个集合的根，挂在它下面的元素仍然指向它，
// 这时计数会比真实的集合数多，调用方不要重复插入还在用的元素
// x 为负数时 panic
func (uf *UnionFind) Insert(x int) {
	if x < 0 {
		panic(fmt.Sprintf("unionfind: negative element %d", x))
	}
	uf.grow(x)
	if uf.parent[x] == absent {
		uf.elems++
	}
	uf.parent[x] = x
	uf.rank[x] = 0
	uf.size[x] = 1
	uf.count++
}

func (uf *UnionFind) has(x int) bool {
	return x >= 0 && x < len(uf.parent) && uf.parent[x] != absent
}

// Find 查找元素所在集合的根节点（带完整路径压缩）
// x 没有插入过时返回 false
func (uf *UnionFind) Find(x int) (int, bool) {
	if !uf.has(x) {
		return 0, false
	}

	// 第一遍: 找到根
	root := x
	for uf.parent[root] != root {
		root = uf.parent[root]
	}
	// 第二遍: 路径上的每个节点直接指向根
	for uf.parent[x] != root {
		x, uf.parent[x] = uf.parent[x], root
	}
	return root, true
}

// Union 合并两个集合（按秩优化），已经在同一个集合时返回 false
// 注意: 不存在的元素会先被自动插入为单元素集合，这会让结构变大
// x 插入之后才查找 y，所以对不存在的 x 调用 Union(x, x) 只插入一次，集合数加 1
func (uf *UnionFind) Union(x, y int) bool {
	rootX, ok := uf.Find(x)
	if !ok {
		uf.Insert(x)
		rootX = x
	}
	rootY, ok := uf.Find(y)
	if !ok {
		uf.Insert(y)
		rootY = y
	}
	return uf.link(rootX, rootY)
}

// UnionStrict 和 Union 一样，但是不会自动插入，元素不存在时返回 ErrNoSuchElement
func (uf *UnionFind) UnionStrict(x, y int) (bool, error) {
	rootX, ok := uf.Find(x)
	if !ok {
		return false, fmt.Errorf("union %d: %w", x, ErrNoSuchElement)
	}
	rootY, ok := uf.Find(y)
	if !ok {
		return false, fmt.Errorf("union %d: %w", y, ErrNoSuchElement)
	}
	return uf.link(rootX, rootY), nil
}

// link 合并两个根，秩相同时 rootY 挂到 rootX 下面
func (uf *UnionFind) link(rootX, rootY int) bool {
	if rootX == rootY {
		return false // 已经在同一个集合
	}

	switch {
	case uf.rank[rootX] < uf.rank[rootY]:
		uf.parent[rootX] = rootY
		uf.size[rootY] += uf.size[rootX]
	case uf.rank[rootX] > uf.rank[rootY]:
		uf.parent[rootY] = rootX
		uf.size[rootX] += uf.size[rootY]
	default:
		uf.parent[rootY] = rootX
		uf.rank[rootX]++
		uf.size[rootX] += uf.size[rootY]
	}
	uf.count--
	return true
}

// Connected 判断两个元素是否在同一个集合，任何一个不存在都返回 false
func (uf *UnionFind) Connected(x, y int) bool {
	rootX, okX := uf.Find(x)
	rootY, okY := uf.Find(y)
	return okX && okY && rootX == rootY
}

// Size 返回某个集合的大小，元素不存在时返回 0
func (uf *UnionFind) Size(x int) int {
	root, ok := uf.Find(x)
	if !ok {
		return 0
	}
	return uf.size[root]
}

// NumElements 已插入的元素个数（重复插入不计数）
func (uf *UnionFind) NumElements() int {
	return uf.elems
}

// NumSets 当前集合个数，每次插入加一，每次成功合并减一
func (uf *UnionFind) NumSets() int {
	return uf.count
}

// Sets 返回所有集合，集合内元素升序，集合之间按大小降序，大小相同按首元素升序
func (uf *UnionFind) Sets() [][]int {
	byRoot := make(map[int][]int)
	for i := range uf.parent {
		root, ok := uf.Find(i)
		if !ok {
			continue
		}
		byRoot[root] = append(byRoot[root], i)
	}
	out := make([][]int, 0, len(byRoot))
	for _, set := range byRoot {
		out = append(out, set) // 下标升序遍历，集合内天然有序
	}
	sort.Slice(out, func(i, j int) bool {
		if len(out[i]) != len(out[j]) {
			return len(out[i]) > len(out[j])
		}
		return out[i][0] < out[j][0]
	})
	return out
}

// Forest 返回当前的父指针森林（不做路径压缩，反映真实结构）
func (uf *UnionFind) Forest() []*treeprinter.MultiNode {
	nodes := make([]*treeprinter.MultiNode, len(uf.parent))
	for i, p := range uf.parent {
		if p != absent {
			nodes[i] = &treeprinter.MultiNode{Data: i}
		}
	}

	var roots []*treeprinter.MultiNode
	for i, p := range uf.parent {
		switch {
		case p == absent:
		case p == i:
			roots = append(roots, nodes[i])
		default:
			nodes[p].Children = append(nodes[p].Children, nodes[i])
		}
	}
	return roots
}

// String 打印并查集的森林结构，调试用
func (uf *UnionFind) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "UnionFind(elements=%d sets=%d)\n", uf.elems, uf.count)
	b.WriteString(treeprinter.PrintForest(uf.Forest(), treeprinter.StyleUnicode,
		func(n *treeprinter.MultiNode) string {
			i := n.Data.(int)
			if uf.parent[i] == i {
				return fmt.Sprintf("%d (rank=%d size=%d)", i, uf.rank[i], uf.size[i])
			}
			return fmt.Sprintf("%d", i)
		}))
	return b.String()
}
