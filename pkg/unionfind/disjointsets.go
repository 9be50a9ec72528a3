package unionfind

import "fmt"

// DisjointSets 是任意可比较类型上的并查集
// 调用方的元素通过一一映射转换为稠密下标，实际的合并和查找由 UnionFind 完成
type DisjointSets[T comparable] struct {
	index map[T]int
	keys  []T
	uf    *UnionFind
}

// New 创建一个空的 DisjointSets
func New[T comparable]() *DisjointSets[T] {
	return &DisjointSets[T]{
		index: make(map[T]int),
		uf:    NewUnionFind(0),
	}
}

func (d *DisjointSets[T]) indexOf(item T) int {
	if i, ok := d.index[item]; ok {
		return i
	}
	i := len(d.keys)
	d.index[item] = i
	d.keys = append(d.keys, item)
	return i
}

// Insert 把 item 作为新的单元素集合插入
// 注意: 重复插入会重置 item 的集合关系，见 UnionFind.Insert
func (d *DisjointSets[T]) Insert(item T) {
	d.uf.Insert(d.indexOf(item))
}

// Find 返回 item 所在集合的代表元素，item 没有插入过时返回 false
func (d *DisjointSets[T]) Find(item T) (T, bool) {
	var zero T
	i, ok := d.index[item]
	if !ok {
		return zero, false
	}
	root, ok := d.uf.Find(i)
	if !ok {
		return zero, false
	}
	return d.keys[root], true
}

// Union 合并 a 和 b 所在的集合，已经连通时返回 false
// 注意: 不存在的元素会先被自动插入
func (d *DisjointSets[T]) Union(a, b T) bool {
	return d.uf.Union(d.indexOf(a), d.indexOf(b))
}

// UnionStrict 不自动插入的合并，元素不存在时返回 ErrNoSuchElement
func (d *DisjointSets[T]) UnionStrict(a, b T) (bool, error) {
	ia, ok := d.index[a]
	if !ok {
		return false, fmt.Errorf("union %v: %w", a, ErrNoSuchElement)
	}
	ib, ok := d.index[b]
	if !ok {
		return false, fmt.Errorf("union %v: %w", b, ErrNoSuchElement)
	}
	return d.uf.UnionStrict(ia, ib)
}

// Connected 判断两个元素是否在同一个集合
func (d *DisjointSets[T]) Connected(a, b T) bool {
	ia, okA := d.index[a]
	ib, okB := d.index[b]
	return okA && okB && d.uf.Connected(ia, ib)
}

// Size 返回 item 所在集合的大小
func (d *DisjointSets[T]) Size(item T) int {
	i, ok := d.index[item]
	if !ok {
		return 0
	}
	return d.uf.Size(i)
}

// NumElements 返回插入过的不同元素个数
func (d *DisjointSets[T]) NumElements() int {
	return d.uf.NumElements()
}

// NumSets 返回集合个数，重复插入的问题见 UnionFind.Insert
func (d *DisjointSets[T]) NumSets() int {
	return d.uf.NumSets()
}

// Sets 返回所有集合，顺序同 UnionFind.Sets，集合内按插入顺序排列
func (d *DisjointSets[T]) Sets() [][]T {
	idxSets := d.uf.Sets()
	out := make([][]T, 0, len(idxSets))
	for _, set := range idxSets {
		items := make([]T, len(set))
		for i, idx := range set {
			items[i] = d.keys[idx]
		}
		out = append(out, items)
	}
	return out
}
