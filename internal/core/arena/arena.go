// Package arena provides the per-tick scratch allocator.
//
// An Arena hands out typed slices carved from reusable backing chunks, one
// chunk list per element type. Reset rewinds every chunk and zeroes it, so the
// memory is reused by the next tick without going back to the allocator.
// Nothing obtained from an Arena may be read after the following Reset; values
// that must outlive a tick are copied onto the heap by the caller.
//
// Accessed only from the simulation goroutine; no locks.
package arena

import (
	"reflect"
)

const minChunk = 64

// Arena is a resettable bump allocator for transient, per-tick data.
type Arena struct {
	generation uint64
	pools      map[reflect.Type]resetter
	allocs     int
}

type resetter interface {
	reset()
	used() int
}

type pool[T any] struct {
	chunks [][]T
	cur    int // index into chunks
	off    int // offset into chunks[cur]
	taken  int // elements handed out; excludes chunk tails skipped for lack of room
}

func (p *pool[T]) reset() {
	for _, c := range p.chunks {
		clear(c)
	}
	p.cur = 0
	p.off = 0
	p.taken = 0
}

func (p *pool[T]) used() int { return p.taken }

func (p *pool[T]) take(n int) []T {
	p.taken += n
	for p.cur < len(p.chunks) {
		c := p.chunks[p.cur]
		if p.off+n <= len(c) {
			s := c[p.off : p.off : p.off+n]
			p.off += n
			return s
		}
		p.cur++
		p.off = 0
	}
	size := minChunk
	if len(p.chunks) > 0 {
		size = 2 * len(p.chunks[len(p.chunks)-1])
	}
	for size < n {
		size *= 2
	}
	p.chunks = append(p.chunks, make([]T, size))
	p.cur = len(p.chunks) - 1
	p.off = n
	return p.chunks[p.cur][0:0:n]
}

// New returns an empty arena at generation 1.
func New() *Arena {
	return &Arena{
		generation: 1,
		pools:      make(map[reflect.Type]resetter),
	}
}

// Reset rewinds all chunks and starts a new generation.
func (a *Arena) Reset() {
	for _, p := range a.pools {
		p.reset()
	}
	a.allocs = 0
	a.generation++
}

// Generation identifies the current allocation lifetime. It changes on every
// Reset.
func (a *Arena) Generation() uint64 { return a.generation }

// Allocs returns the number of slices handed out since the last Reset.
func (a *Arena) Allocs() int { return a.allocs }

// Used returns the number of elements handed out since the last Reset,
// across all element types.
func (a *Arena) Used() int {
	n := 0
	for _, p := range a.pools {
		n += p.used()
	}
	return n
}

func poolFor[T any](a *Arena) *pool[T] {
	t := reflect.TypeOf((*T)(nil)).Elem()
	if p, ok := a.pools[t]; ok {
		return p.(*pool[T])
	}
	p := &pool[T]{}
	a.pools[t] = p
	return p
}

// Slice returns an empty slice with the given capacity carved from the arena.
// Appending past the capacity moves the slice to the heap and never overwrites
// a neighbouring allocation.
func Slice[T any](a *Arena, capacity int) []T {
	if capacity <= 0 {
		capacity = 1
	}
	a.allocs++
	return poolFor[T](a).take(capacity)
}

// Copy returns an arena-backed copy of src.
func Copy[T any](a *Arena, src []T) []T {
	out := Slice[T](a, len(src))
	return append(out, src...)
}
