package navigation

import "github.com/google/uuid"

// entry is a view-model together with the handle it was resolved for.
// The id makes instance identity visible to observers and in logs.
type entry struct {
	handle Handle
	id     uuid.UUID
	vm     ViewModel
}

func newEntry(handle Handle, vm ViewModel) *entry {
	return &entry{handle: handle, id: uuid.New(), vm: vm}
}

// history is the stack of previously active view-models, most recent last.
// It has no size limit.
type history struct {
	entries []*entry
}

// push adds an entry on top of the stack.
func (h *history) push(e *entry) {
	h.entries = append(h.entries, e)
}

// pop removes and returns the top entry.
// Returns nil if the stack is empty.
func (h *history) pop() *entry {
	if len(h.entries) == 0 {
		return nil
	}
	last := h.entries[len(h.entries)-1]
	h.entries[len(h.entries)-1] = nil
	h.entries = h.entries[:len(h.entries)-1]
	return last
}

func (h *history) isEmpty() bool {
	return len(h.entries) == 0
}

func (h *history) len() int {
	return len(h.entries)
}

// handles returns the handles oldest first.
func (h *history) handles() []Handle {
	out := make([]Handle, len(h.entries))
	for i, e := range h.entries {
		out[i] = e.handle
	}
	return out
}

// viewModels returns the view-models oldest first (shallow copy).
func (h *history) viewModels() []ViewModel {
	out := make([]ViewModel, len(h.entries))
	for i, e := range h.entries {
		out[i] = e.vm
	}
	return out
}
