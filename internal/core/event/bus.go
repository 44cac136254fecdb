package event

import (
	"reflect"
)

// Bus is a double-buffered event bus. Events emitted in tick N are delivered
// at the start of tick N+1, in emission order. SwapBuffers() is called at tick
// start by EventDispatchSystem. Single-goroutine access only.
type Bus struct {
	front    []any
	back     []any
	handlers map[reflect.Type][]func(any)
}

func NewBus() *Bus {
	return &Bus{
		front:    make([]any, 0, 32),
		back:     make([]any, 0, 32),
		handlers: make(map[reflect.Type][]func(any)),
	}
}

// Emit queues an event into the back buffer (will be readable next tick).
func Emit[T any](b *Bus, event T) {
	b.back = append(b.back, event)
}

// Subscribe registers a typed handler for events of type T.
func Subscribe[T any](b *Bus, fn func(T)) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	b.handlers[t] = append(b.handlers[t], func(ev any) { fn(ev.(T)) })
}

// SwapBuffers rotates back→front and clears the new back buffer.
// Called once at tick start.
func (b *Bus) SwapBuffers() {
	clear(b.front)
	b.front, b.back = b.back, b.front[:0]
}

// Pending returns the number of events waiting for the next swap.
func (b *Bus) Pending() int { return len(b.back) }

// DispatchAll delivers all front-buffer events to their subscribed handlers.
// Returns the number of events delivered to at least one handler.
func (b *Bus) DispatchAll() int {
	n := 0
	for _, ev := range b.front {
		handlers := b.handlers[reflect.TypeOf(ev)]
		for _, h := range handlers {
			h(ev)
		}
		if len(handlers) > 0 {
			n++
		}
	}
	return n
}
