package huffcode

import (
	"container/heap"
)

// type nodeAndSeq + type nodeHeap {{{

// nodeAndSeq pairs a Node with its creation sequence number.  Leaves are
// numbered in ascending symbol order, followed by Internal nodes in the
// order they were merged.
type nodeAndSeq struct {
	node Node
	seq  uint32
}

type nodeHeap struct {
	list []nodeAndSeq
}

func (h *nodeHeap) Init() {
	heap.Init(h)
}

func (h *nodeHeap) PushNode(item nodeAndSeq) {
	heap.Push(h, item)
}

func (h *nodeHeap) PopNode() nodeAndSeq {
	return heap.Pop(h).(nodeAndSeq)
}

func (h *nodeHeap) Len() int {
	return len(h.list)
}

func (h *nodeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

// Less orders by weight, breaking ties by creation sequence.
func (h *nodeHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	aw, bw := a.node.Weight(), b.node.Weight()
	if aw != bw {
		return aw < bw
	}
	return a.seq < b.seq
}

func (h *nodeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(nodeAndSeq))
}

func (h *nodeHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list[last] = nodeAndSeq{}
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}
