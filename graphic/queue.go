package graphic

import "container/heap"

// afterHandler is work deferred to the end of a transaction.
type afterHandler struct {
	key   any
	depth int
	seq   uint64
	fn    func() error
	index int // position within the heap
}

// handlerHeap orders handlers by descending depth, then by ascending
// sequence number.
type handlerHeap []*afterHandler

func (h handlerHeap) Len() int { return len(h) }

func (h handlerHeap) Less(i, j int) bool {
	if h[i].depth != h[j].depth {
		return h[i].depth > h[j].depth
	}
	return h[i].seq < h[j].seq
}

func (h handlerHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *handlerHeap) Push(x any) {
	ah := x.(*afterHandler)
	ah.index = len(*h)
	*h = append(*h, ah)
}

func (h *handlerHeap) Pop() any {
	old := *h
	n := len(old)
	ah := old[n-1]
	old[n-1] = nil
	ah.index = -1
	*h = old[:n-1]
	return ah
}

// afterQueue holds deferred handlers, at most one per key. Deeper handlers
// run first, handlers of equal depth in the order they have been
// scheduled. Scheduling a key again moves its handler to the back.
type afterQueue struct {
	handlers handlerHeap
	byKey    map[any]*afterHandler
	seq      uint64
}

func (q *afterQueue) add(key any, depth int, fn func() error) {
	if q.byKey == nil {
		q.byKey = make(map[any]*afterHandler)
	}
	if old, ok := q.byKey[key]; ok {
		heap.Remove(&q.handlers, old.index)
	}
	q.seq++
	ah := &afterHandler{key: key, depth: depth, seq: q.seq, fn: fn}
	q.byKey[key] = ah
	heap.Push(&q.handlers, ah)
}

// next removes and returns the next handler to run.
func (q *afterQueue) next() (*afterHandler, bool) {
	if len(q.handlers) == 0 {
		return nil, false
	}
	ah := heap.Pop(&q.handlers).(*afterHandler)
	delete(q.byKey, ah.key)
	return ah, true
}

func (q *afterQueue) len() int {
	return len(q.handlers)
}

func (q *afterQueue) clear() {
	q.handlers = q.handlers[:0]
	clear(q.byKey)
}
