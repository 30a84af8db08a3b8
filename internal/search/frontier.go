package search

import "container/heap"

// item is one frontier entry: a search node tagged with its score and
// insertion sequence number. Ordering is (score, -seq): higher score
// wins, and on ties the older (smaller seq) entry wins, giving
// deterministic tie-breaking.
type item struct {
	node  Node
	score float64
	seq   uint64
}

// frontier is a max-heap of items, grounded in the same container/heap
// top-k pattern used elsewhere in this codebase's lineage for keeping a
// bounded, priority-ordered working set without reaching for a
// third-party heap package.
type frontier []item

func (f frontier) Len() int { return len(f) }

func (f frontier) Less(i, j int) bool {
	if f[i].score != f[j].score {
		return f[i].score > f[j].score // max-heap: higher score first
	}
	return f[i].seq < f[j].seq // older-first on ties
}

func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

func (f *frontier) Push(x any) { *f = append(*f, x.(item)) }

func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	it := old[n-1]
	*f = old[:n-1]
	return it
}

func newFrontier() *frontier {
	f := make(frontier, 0, 64)
	return &f
}

func (f *frontier) push(it item) { heap.Push(f, it) }

func (f *frontier) pop() (item, bool) {
	if f.Len() == 0 {
		return item{}, false
	}
	return heap.Pop(f).(item), true
}
