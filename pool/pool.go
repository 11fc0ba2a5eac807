package pool

import (
	"github.com/lixenwraith/tilerunner/entity"
	"github.com/lixenwraith/tilerunner/logger"
	"github.com/lixenwraith/tilerunner/vmath"
	"github.com/sirupsen/logrus"
)

// Pool recycles entities of one concrete type
// Dead slots are reused before the pool grows; it never shrinks
type Pool[T entity.Actor] struct {
	name    string
	items   []T
	factory func() T
}

// New creates an empty pool with preallocated slice capacity
func New[T entity.Actor](name string, capacity int, factory func() T) *Pool[T] {
	return &Pool[T]{
		name:    name,
		items:   make([]T, 0, capacity),
		factory: factory,
	}
}

// Next returns the first inactive slot, or a newly appended one
// The caller must Spawn the result before the next call, otherwise the same slot comes back
func (p *Pool[T]) Next() T {
	for _, it := range p.items {
		if !it.Base().IsActive() {
			return it
		}
	}

	it := p.factory()
	p.items = append(p.items, it)
	logger.Component("pool").WithFields(logrus.Fields{
		"pool": p.name,
		"size": len(p.items),
	}).Debug("pool grew")
	return it
}

// Each visits every slot, active or not
// Slots appended during the walk are not visited
func (p *Pool[T]) Each(fn func(T)) {
	items := p.items
	for _, it := range items {
		fn(it)
	}
}

// EachActive visits slots whose entity exists
func (p *Pool[T]) EachActive(fn func(T)) {
	items := p.items
	for _, it := range items {
		if it.Base().IsActive() {
			fn(it)
		}
	}
}

// Update ticks every slot; inactive ones return immediately from their own guard
func (p *Pool[T]) Update(tick float64) {
	p.Each(func(it T) {
		entity.Update(it, tick)
	})
}

// CameraCheck refreshes visibility for every slot
func (p *Pool[T]) CameraCheck(view vmath.Rect) {
	p.Each(func(it T) {
		entity.CameraCheck(it, view)
	})
}

// KillAll force-kills every slot, keeping capacity for reuse
func (p *Pool[T]) KillAll() {
	p.Each(func(it T) {
		it.Base().ForceKill()
	})
}

// Len is the number of slots ever allocated
func (p *Pool[T]) Len() int {
	return len(p.items)
}

// Active counts slots whose entity exists
func (p *Pool[T]) Active() int {
	n := 0
	for _, it := range p.items {
		if it.Base().IsActive() {
			n++
		}
	}
	return n
}

// Items exposes the backing slots for read-only iteration
func (p *Pool[T]) Items() []T {
	return p.items
}
