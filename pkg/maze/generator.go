package maze

import (
	"math/rand/v2"

	"github.com/dustin/go-humanize"

	"mazegen/pkg/logutil"
	"mazegen/pkg/unionfind"
)

// 拆墙的方向
const (
	East  = 0
	South = 1
)

// 并查集森林太大时不打印
const maxForestDumpCells = 256

// Source 随机数来源，IntN 返回 [0, n) 内的均匀随机整数
// *rand.Rand (math/rand/v2) 满足这个接口，测试里可以换成固定序列
type Source interface {
	IntN(n int) int
}

// Stats 一次生成过程的统计
type Stats struct {
	Cells           int // 格子总数
	Draws           int // 随机抽样次数
	BoundaryRejects int // 抽中边界墙被拒绝的次数
	CycleRejects    int // 两侧已经连通被拒绝的次数
	Removed         int // 拆掉的墙，完成后等于 Cells-1
}

type Generator struct {
	src Source
}

type Option func(*Generator)

// WithSource 指定随机数来源
func WithSource(src Source) Option {
	return func(g *Generator) {
		g.src = src
	}
}

// WithSeed 用固定种子的 PCG 作为随机数来源，同样的种子生成同样的迷宫
func WithSeed(seed uint64) Option {
	return WithSource(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// NewGenerator 创建生成器，默认使用随机种子
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{}
	for _, opt := range opts {
		opt(g)
	}
	if g.src == nil {
		g.src = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return g
}

// Generate 随机拆墙生成完美迷宫
// 每个格子先单独成为一个集合，随机挑一个格子和一个方向(东/南)，
// 边界墙直接丢弃，两侧已经连通也丢弃(否则会成环)，否则合并并记录拆掉的墙，
// 直到只剩一个集合。拆掉的墙正好构成网格的一棵生成树
// 抽样次数没有上限，随机源退化时不会结束
func (g *Generator) Generate(rows, cols int) (*Maze, Stats, error) {
	m, err := New(rows, cols)
	if err != nil {
		return nil, Stats{}, err
	}

	n := m.NumCells()
	stats := Stats{Cells: n}
	uf := unionfind.NewUnionFind(0)
	for cell := 0; cell < n; cell++ {
		uf.Insert(cell)
	}

	for uf.NumSets() != 1 {
		cell := g.src.IntN(n)
		dir := g.src.IntN(2)
		stats.Draws++

		if (dir == East && m.OnEastBoundary(cell)) ||
			(dir == South && m.OnSouthBoundary(cell)) {
			stats.BoundaryRejects++
			continue
		}

		if dir == East {
			if uf.Union(cell, cell+1) {
				m.RemoveRightWall(cell)
				stats.Removed++
				continue
			}
		} else {
			if uf.Union(cell, cell+cols) {
				m.RemoveBottomWall(cell)
				stats.Removed++
				continue
			}
		}
		stats.CycleRejects++
	}

	logutil.Info("迷宫 %dx%d 生成完成: 格子 %s, 抽样 %s 次, 边界拒绝 %s, 成环拒绝 %s, 拆墙 %s",
		rows, cols,
		humanize.Comma(int64(stats.Cells)),
		humanize.Comma(int64(stats.Draws)),
		humanize.Comma(int64(stats.BoundaryRejects)),
		humanize.Comma(int64(stats.CycleRejects)),
		humanize.Comma(int64(stats.Removed)))
	if n <= maxForestDumpCells && logutil.Enabled(logutil.DEBUG) {
		logutil.Debug("并查集森林:\n%s", uf)
	}

	return m, stats, nil
}

// Generate 使用随机种子生成迷宫
func Generate(rows, cols int) (*Maze, error) {
	m, _, err := NewGenerator().Generate(rows, cols)
	return m, err
}
