package graph

import (
	"errors"
	"fmt"
	"strings"

	"github.com/awalterschulze/gographviz"

	"mazegen/pkg/maze"
	"mazegen/pkg/unionfind"
)

// GraphName 导出的 DOT 图名
const GraphName = "maze"

// ErrNotTree 通路图有环、不连通或者为空
var ErrNotTree = errors.New("passage graph is not a spanning tree")

// NodeName 格子在 DOT 图里的节点名
func NodeName(cell int) string {
	return fmt.Sprintf("c%d", cell)
}

// ToDOT 把迷宫的通路图导出成无向图
// 每个格子一个节点(label 为 "行,列")，每面打通的墙一条边
func ToDOT(m *maze.Maze) (*gographviz.Graph, error) {
	g := gographviz.NewGraph()
	if err := g.SetName(GraphName); err != nil {
		return nil, err
	}
	if err := g.SetDir(false); err != nil {
		return nil, err
	}

	for cell := 0; cell < m.NumCells(); cell++ {
		r, c := m.RowCol(cell)
		attrs := map[string]string{"label": fmt.Sprintf(`"%d,%d"`, r, c)}
		if err := g.AddNode(GraphName, NodeName(cell), attrs); err != nil {
			return nil, fmt.Errorf("add node %d: %w", cell, err)
		}
	}
	for _, p := range m.Passages() {
		if err := g.AddEdge(NodeName(p[0]), NodeName(p[1]), false, nil); err != nil {
			return nil, fmt.Errorf("add edge %d--%d: %w", p[0], p[1], err)
		}
	}
	return g, nil
}

// ParseDOT 解析 DOT 文本
func ParseDOT(data []byte) (*gographviz.Graph, error) {
	g, err := gographviz.Read(data)
	if err != nil {
		return nil, fmt.Errorf("parse dot: %w", err)
	}
	return g, nil
}

// FormatEdge 把一条边格式化成 "a--b"
func FormatEdge(src, dst string) string {
	return src + "--" + dst
}

// IsTree 把图当作无向图，判断它是否是一棵生成树
// 用并查集逐条合并边: 合并失败说明成环，端点不是已声明的节点也算失败，返回那条边；
// 最后剩下多于一个集合说明不连通，返回第一个和首节点不连通的节点
func IsTree(g *gographviz.Graph) (bool, string) {
	if g == nil || len(g.Nodes.Nodes) == 0 {
		return false, ""
	}

	sets := unionfind.New[string]()
	for _, node := range g.Nodes.Nodes {
		sets.Insert(node.Name)
	}

	for _, edge := range g.Edges.Edges {
		if edge.Src == edge.Dst {
			return false, FormatEdge(edge.Src, edge.Dst)
		}
		merged, err := sets.UnionStrict(edge.Src, edge.Dst)
		if err != nil || !merged {
			return false, FormatEdge(edge.Src, edge.Dst)
		}
	}

	if sets.NumSets() > 1 {
		first := g.Nodes.Nodes[0].Name
		for _, node := range g.Nodes.Nodes[1:] {
			if !sets.Connected(first, node.Name) {
				return false, node.Name
			}
		}
	}
	return true, ""
}

// Adjacency 无向邻接表
func Adjacency(g *gographviz.Graph) map[string][]string {
	adj := make(map[string][]string)
	for _, edge := range g.Edges.Edges {
		adj[edge.Src] = append(adj[edge.Src], edge.Dst)
		if edge.Src != edge.Dst {
			adj[edge.Dst] = append(adj[edge.Dst], edge.Src)
		}
	}
	return adj
}

// DeadEnds 度为 1 的节点个数，也就是迷宫里的死胡同
func DeadEnds(g *gographviz.Graph) int {
	adj := Adjacency(g)
	n := 0
	for _, node := range g.Nodes.Nodes {
		if len(adj[node.Name]) == 1 {
			n++
		}
	}
	return n
}

// Summary 一行描述: 节点数、边数、死胡同数以及是否为树
func Summary(g *gographviz.Graph) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %d nodes, %d edges, %d dead ends",
		g.Name, len(g.Nodes.Nodes), len(g.Edges.Edges), DeadEnds(g))
	if ok, where := IsTree(g); ok {
		b.WriteString(", tree")
	} else if where != "" {
		fmt.Fprintf(&b, ", not a tree at %s", where)
	} else {
		b.WriteString(", empty")
	}
	return b.String()
}
