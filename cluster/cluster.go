package cluster

import (
	"sort"
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/d4j3y2k/keyboy/model"
	"github.com/d4j3y2k/keyboy/util"
)

// Clusterer turns a stream of note-on/off events into settled note sets.
// Key changes landing inside the wait window collapse into a single emit,
// so rolling onto a chord produces one analysis instead of one per finger.
type Clusterer struct {
	mu        sync.Mutex
	pressed   map[uint8]bool
	debounced func(func())
	emit      func(model.Notes)
}

func New(wait time.Duration, emit func(model.Notes)) *Clusterer {
	return &Clusterer{
		pressed:   make(map[uint8]bool),
		debounced: debounce.New(wait),
		emit:      emit,
	}
}

func (c *Clusterer) NoteOn(key uint8) {
	c.mu.Lock()
	c.pressed[key] = true
	c.mu.Unlock()
	c.debounced(c.flush)
}

func (c *Clusterer) NoteOff(key uint8) {
	c.mu.Lock()
	delete(c.pressed, key)
	c.mu.Unlock()
	c.debounced(c.flush)
}

func (c *Clusterer) flush() {
	c.mu.Lock()
	notes := util.GetKeys(c.pressed)
	c.mu.Unlock()

	if len(notes) == 0 {
		return
	}
	sort.Slice(notes, func(i, j int) bool {
		return notes[i] < notes[j]
	})
	c.emit(notes)
}
