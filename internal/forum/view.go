package forum

import (
	"sync"

	"github.com/google/uuid"

	"github.com/nasafacts/community-service/internal/model"
)

// View is a local message list keyed by id. Insertion order is preserved and adding
// a message whose id is already present does nothing, so optimistic inserts,
// confirmed writes and realtime echoes of the same message collapse into one entry.
type View struct {
	mu    sync.RWMutex
	index map[uuid.UUID]struct{}
	items model.MessageList
}

func NewView() *View {
	return &View{index: make(map[uuid.UUID]struct{})}
}

// Add appends msg and reports whether it was new.
func (v *View) Add(msg model.Message) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	if _, ok := v.index[msg.ID]; ok {
		return false
	}
	v.index[msg.ID] = struct{}{}
	v.items = append(v.items, msg)
	return true
}

// Merge adds every message and returns the ones that were new, in input order.
func (v *View) Merge(msgs model.MessageList) model.MessageList {
	var added model.MessageList
	for _, msg := range msgs {
		if v.Add(msg) {
			added = append(added, msg)
		}
	}
	return added
}

// Messages returns a copy of the list.
func (v *View) Messages() model.MessageList {
	v.mu.RLock()
	defer v.mu.RUnlock()

	out := make(model.MessageList, len(v.items))
	copy(out, v.items)
	return out
}
