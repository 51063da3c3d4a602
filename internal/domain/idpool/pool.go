// Package idpool asigna identificadores de 64 bits con reciclaje para un
// espacio de nombres (bodegas o ítems). Allocate reutiliza siempre el menor id
// reciclado antes de extender el contador, de modo que los ids se mantienen
// bajos y el estado del pool es derivable de las claves vivas del almacén
// (ver Rebuild). El pool no es seguro para uso concurrente por sí mismo: el
// Ledger serializa todos los accesos bajo su propio mutex.
package idpool

import "container/heap"

// Pool contador monótono + conjunto de ids reciclados de un espacio de nombres.
// Los ids inician en 1; el 0 queda reservado como valor "ausente".
type Pool struct {
	next     uint64
	recycled uint64Heap
	inHeap   map[uint64]struct{} // miembros del heap, para Release idempotente
}

// New crea un pool vacío cuyo primer id asignado será 1.
func New() *Pool {
	return &Pool{
		next:   1,
		inHeap: make(map[uint64]struct{}),
	}
}

// Allocate devuelve el menor id reciclado si existe alguno; si no, devuelve el
// valor actual del contador y lo incrementa. El id devuelto nunca está vivo en
// el momento de la asignación.
func (p *Pool) Allocate() uint64 {
	if len(p.recycled) > 0 {
		id := heap.Pop(&p.recycled).(uint64)
		delete(p.inHeap, id)
		return id
	}
	id := p.next
	p.next++
	return id
}

// Release devuelve un id al conjunto de reciclados. Es idempotente: liberar un
// id ya reciclado, nunca asignado o cero es un no-op, no un error.
func (p *Pool) Release(id uint64) {
	if id == 0 || id >= p.next {
		return
	}
	if _, ok := p.inHeap[id]; ok {
		return
	}
	p.inHeap[id] = struct{}{}
	heap.Push(&p.recycled, id)
}

// Rebuild reconstruye el estado del pool a partir de las claves vivas del
// almacén tras un reinicio: el contador queda en max(vivas)+1 y el conjunto de
// reciclados en los huecos de [1, contador). Como las liberaciones
// corresponden exactamente a registros eliminados y la reutilización rellena
// huecos, el pool reconstruido es idéntico al previo al reinicio.
func (p *Pool) Rebuild(live []uint64) {
	p.next = 1
	p.recycled = p.recycled[:0]
	p.inHeap = make(map[uint64]struct{})

	liveSet := make(map[uint64]struct{}, len(live))
	for _, id := range live {
		liveSet[id] = struct{}{}
		if id >= p.next {
			p.next = id + 1
		}
	}
	for id := uint64(1); id < p.next; id++ {
		if _, ok := liveSet[id]; !ok {
			p.inHeap[id] = struct{}{}
			p.recycled = append(p.recycled, id)
		}
	}
	heap.Init(&p.recycled)
}

// Next expone el valor actual del contador (solo lectura, para diagnóstico).
func (p *Pool) Next() uint64 { return p.next }

// Recycled devuelve cuántos ids esperan reutilización.
func (p *Pool) Recycled() int { return len(p.recycled) }

// uint64Heap min-heap de ids para reutilización determinista (menor primero).
type uint64Heap []uint64

func (h uint64Heap) Len() int            { return len(h) }
func (h uint64Heap) Less(i, j int) bool  { return h[i] < h[j] }
func (h uint64Heap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *uint64Heap) Push(x interface{}) { *h = append(*h, x.(uint64)) }

func (h *uint64Heap) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}
