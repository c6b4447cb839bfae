package frontier

import (
	"errors"

	"lintang/labyrinthx/pkg/datastructure"
)

var (
	ErrHeapEmpty        = errors.New("heap is empty")
	ErrFrontierOverflow = errors.New("frontier capacity exceeded")
)

type heapNode struct {
	node datastructure.SearchNode
	seq  uint64
}

// MinHeap binary heap priorityqueue dengan key SearchNode.F.
// tidak ada decreaseKey: cell yang sama boleh di-insert berkali-kali, entry stale dibuang caller saat extract.
type MinHeap struct {
	heap     []heapNode
	capacity int
	seq      uint64
}

// NewMinHeap capacity <= 0 berarti tanpa batas.
func NewMinHeap(capacity int) *MinHeap {
	initial := capacity
	if initial <= 0 || initial > 1024 {
		initial = 1024
	}
	return &MinHeap{
		heap:     make([]heapNode, 0, initial),
		capacity: capacity,
	}
}

// parent get index dari parent
func (h *MinHeap) parent(index int) int {
	return (index - 1) / 2
}

// leftChild get index dari left child
func (h *MinHeap) leftChild(index int) int {
	return 2*index + 1
}

// rightChild get index dari right child
func (h *MinHeap) rightChild(index int) int {
	return 2*index + 2
}

// less urut berdasarkan F, kalau F sama yang di-insert duluan menang (FIFO) biar ekspansi deterministic.
func (h *MinHeap) less(i, j int) bool {
	if h.heap[i].node.F != h.heap[j].node.F {
		return h.heap[i].node.F < h.heap[j].node.F
	}
	return h.heap[i].seq < h.heap[j].seq
}

// heapifyUp check apakah parent dari index lebih besar kalau iya swap, lanjut ke parent. O(logN).
func (h *MinHeap) heapifyUp(index int) {
	for index != 0 && h.less(index, h.parent(index)) {
		p := h.parent(index)
		h.heap[index], h.heap[p] = h.heap[p], h.heap[index]
		index = p
	}
}

// heapifyDown check apakah salah satu children lebih kecil kalau iya swap, lanjut ke children tadi. O(logN).
func (h *MinHeap) heapifyDown(index int) {
	for {
		smallest := index
		left := h.leftChild(index)
		right := h.rightChild(index)

		if left < len(h.heap) && h.less(left, smallest) {
			smallest = left
		}
		if right < len(h.heap) && h.less(right, smallest) {
			smallest = right
		}
		if smallest == index {
			return
		}
		h.heap[index], h.heap[smallest] = h.heap[smallest], h.heap[index]
		index = smallest
	}
}

func (h *MinHeap) IsEmpty() bool {
	return len(h.heap) == 0
}

func (h *MinHeap) Size() int {
	return len(h.heap)
}

func (h *MinHeap) Capacity() int {
	return h.capacity
}

// Insert O(logN). return ErrFrontierOverflow kalau heap sudah penuh, node tidak dimasukkan.
func (h *MinHeap) Insert(node datastructure.SearchNode) error {
	if h.capacity > 0 && len(h.heap) >= h.capacity {
		return ErrFrontierOverflow
	}
	h.heap = append(h.heap, heapNode{node: node, seq: h.seq})
	h.seq++
	h.heapifyUp(len(h.heap) - 1)
	return nil
}

// GetMin node dengan F terkecil tanpa pop.
func (h *MinHeap) GetMin() (datastructure.SearchNode, error) {
	if h.IsEmpty() {
		return datastructure.SearchNode{}, ErrHeapEmpty
	}
	return h.heap[0].node, nil
}

// ExtractMin ambil nilai minimum (index 0) & pop dari heap. O(logN)
func (h *MinHeap) ExtractMin() (datastructure.SearchNode, error) {
	if h.IsEmpty() {
		return datastructure.SearchNode{}, ErrHeapEmpty
	}
	root := h.heap[0]
	last := len(h.heap) - 1
	h.heap[0] = h.heap[last]
	h.heap = h.heap[:last]
	h.heapifyDown(0)
	return root.node, nil
}
