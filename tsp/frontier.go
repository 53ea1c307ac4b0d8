package tsp

import (
	"container/heap"
	"sort"
)

// frontierItem pairs an open node with its insertion sequence.
type frontierItem struct {
	node *Node
	seq  int
}

// nodePQ implements heap.Interface: smallest TotalEstimate first, earliest
// insertion first among equal estimates.
type nodePQ []frontierItem

func (pq nodePQ) Len() int { return len(pq) }
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].node.TotalEstimate != pq[j].node.TotalEstimate {
		return pq[i].node.TotalEstimate < pq[j].node.TotalEstimate
	}

	return pq[i].seq < pq[j].seq
}
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) {
	*pq = append(*pq, x.(frontierItem))
}
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	old[n-1] = frontierItem{}
	*pq = old[:n-1]
	return it
}

// frontier is the best-first open set of one solve.
type frontier struct {
	pq  nodePQ
	seq int
}

func (f *frontier) Len() int { return f.pq.Len() }

func (f *frontier) push(n *Node) {
	heap.Push(&f.pq, frontierItem{node: n, seq: f.seq})
	f.seq++
}

func (f *frontier) pop() *Node {
	return heap.Pop(&f.pq).(frontierItem).node
}

func (f *frontier) peek() *Node {
	return f.pq[0].node
}

// snapshot lists the open nodes in selection order.
func (f *frontier) snapshot() []*Node {
	items := append(nodePQ(nil), f.pq...)
	sort.Sort(items)
	out := make([]*Node, len(items))
	var i int
	for i = range items {
		out[i] = items[i].node
	}

	return out
}
