package cluster

import (
	"sort"

	"github.com/d4j3y2k/keyboy/model"
	"github.com/d4j3y2k/keyboy/util"
	"gitlab.com/gomidi/midi/v2/smf"
)

// FromSMF reduces a parsed MIDI file to the sequence of note sets that were
// sounding at each change point, offsets in milliseconds from the start.
func FromSMF(s *smf.SMF) []model.TimedChord {
	var reducedEvents []model.ReducedEvent

	for _, events := range s.Tracks {
		var absTicks int64
		for _, event := range events {
			absTicks += int64(event.Delta)
			absTime := s.TimeAt(absTicks)
			var channel uint8
			var key uint8
			var velocity uint8
			switch {
			case event.Message.GetNoteOn(&channel, &key, &velocity):
				reducedEvents = append(reducedEvents, model.ReducedEvent{
					Offset: absTime,
					Note:   key,
				})
			case event.Message.GetNoteOff(&channel, &key, &velocity):
				reducedEvents = append(reducedEvents, model.ReducedEvent{
					Offset:    absTime,
					IsNoteOff: true,
					Note:      key,
				})
			}
		}
	}

	// smaller offsets first, note-offs ahead of note-ons at the same tick
	sort.Slice(reducedEvents, func(i, j int) bool {
		if reducedEvents[i].Offset != reducedEvents[j].Offset {
			return reducedEvents[i].Offset < reducedEvents[j].Offset
		}
		return reducedEvents[i].IsNoteOff
	})

	offsetToNotes := make(map[int64]model.Notes)
	pressed := make(map[uint8]bool)
	for _, evt := range reducedEvents {
		if evt.IsNoteOff {
			delete(pressed, evt.Note)
		} else {
			pressed[evt.Note] = true
		}
		offsetToNotes[evt.Offset] = snapshot(pressed)
	}

	var res []model.TimedChord
	for _, offset := range util.GetKeysSorted(offsetToNotes) {
		notes := offsetToNotes[offset]
		if len(notes) > 0 {
			// millis is plenty of resolution for chord boundaries
			res = append(res, model.TimedChord{
				OffsetMs: uint32(offset / 1000),
				Notes:    notes,
			})
		}
	}
	return res
}

func snapshot(pressed map[uint8]bool) model.Notes {
	notes := util.GetKeys(pressed)
	sort.Slice(notes, func(i, j int) bool {
		return notes[i] < notes[j]
	})
	return notes
}
