package navigation

import "go.uber.org/atomic"

type subscriber struct {
	fn        func()
	cancelled atomic.Bool
}

// signal is a zero-payload event with an explicit subscriber list.
// Emitting while a fan-out is in progress queues the emission instead of nesting it,
// so every subscriber gets one call per emission. The signal carries no payload;
// subscribers read the state current at the time of the call.
type signal struct {
	subscribers []*subscriber
	dispatching bool
	pending     int
}

// subscribe registers fn and returns a function that removes it.
// Subscribers added during a fan-out are first called on the next emission.
func (s *signal) subscribe(fn func()) func() {
	sub := &subscriber{fn: fn}
	s.subscribers = append(s.subscribers, sub)

	return func() {
		if !sub.cancelled.CompareAndSwap(false, true) {
			return
		}
		s.remove(sub)
	}
}

// remove builds a new slice so a fan-out iterating the old one is not disturbed.
func (s *signal) remove(sub *subscriber) {
	kept := make([]*subscriber, 0, len(s.subscribers))
	for _, existing := range s.subscribers {
		if existing != sub {
			kept = append(kept, existing)
		}
	}
	s.subscribers = kept
}

func (s *signal) len() int {
	return len(s.subscribers)
}

func (s *signal) emit() {
	s.pending++
	if s.dispatching {
		return
	}

	s.dispatching = true
	defer func() {
		s.dispatching = false
		s.pending = 0
	}()

	for s.pending > 0 {
		s.pending--
		for _, sub := range s.subscribers {
			// Unsubscribed earlier in this fan-out.
			if sub.cancelled.Load() {
				continue
			}
			sub.fn()
		}
	}
}
