package traverse

import (
	"container/heap"

	"github.com/katalvlaran/mazewalk/grid"
)

// frontier is the container that distinguishes the three searches.
// Everything else in the walker is shared.
type frontier interface {
	push(e Entry)
	pop() Entry // caller checks len() > 0
	len() int
}

// newFrontier returns the container for alg, or ErrUnknownAlgorithm.
func newFrontier(alg Algorithm, capacity int) (frontier, error) {
	switch alg {
	case AlgBFS:
		return &fifo{items: make([]Entry, 0, capacity)}, nil
	case AlgDFS:
		return &lifo{items: make([]Entry, 0, capacity)}, nil
	case AlgGreedyBestFirst:
		pq := &priorityQueue{items: make([]pqItem, 0, capacity)}
		heap.Init(pq)
		return pq, nil
	default:
		return nil, ErrUnknownAlgorithm
	}
}

// fifo is a queue backed by a slice with a moving head.
type fifo struct {
	items []Entry
	head  int
}

func (q *fifo) push(e Entry) { q.items = append(q.items, e) }

func (q *fifo) pop() Entry {
	e := q.items[q.head]
	q.head++
	// reclaim the consumed prefix once it dominates the slice
	if q.head > len(q.items)/2 {
		q.items = append(q.items[:0], q.items[q.head:]...)
		q.head = 0
	}
	return e
}

func (q *fifo) len() int { return len(q.items) - q.head }

// lifo is a stack.
type lifo struct {
	items []Entry
}

func (s *lifo) push(e Entry) { s.items = append(s.items, e) }

func (s *lifo) pop() Entry {
	n := len(s.items) - 1
	e := s.items[n]
	s.items = s.items[:n]
	return e
}

func (s *lifo) len() int { return len(s.items) }

// pqItem pairs an entry with its insertion sequence for stable tie-breaks.
type pqItem struct {
	entry Entry
	seq   int
}

// priorityQueue is a min-heap on Entry.Priority; equal priorities pop in
// insertion order so runs are reproducible.
type priorityQueue struct {
	items []pqItem
	seq   int
}

func (pq *priorityQueue) Len() int { return len(pq.items) }

func (pq *priorityQueue) Less(i, j int) bool {
	a, b := pq.items[i], pq.items[j]
	if a.entry.Priority != b.entry.Priority {
		return a.entry.Priority < b.entry.Priority
	}
	return a.seq < b.seq
}

func (pq *priorityQueue) Swap(i, j int) { pq.items[i], pq.items[j] = pq.items[j], pq.items[i] }

func (pq *priorityQueue) Push(x any) { pq.items = append(pq.items, x.(pqItem)) }

func (pq *priorityQueue) Pop() any {
	old := pq.items
	n := len(old)
	it := old[n-1]
	pq.items = old[:n-1]
	return it
}

func (pq *priorityQueue) push(e Entry) {
	heap.Push(pq, pqItem{entry: e, seq: pq.seq})
	pq.seq++
}

func (pq *priorityQueue) pop() Entry { return heap.Pop(pq).(pqItem).entry }

func (pq *priorityQueue) len() int { return pq.Len() }

// Manhattan returns |a.Row-b.Row| + |a.Col-b.Col|.
func Manhattan(a, b grid.Position) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
