package model

// ReducedEvent is a note-on/off stripped down to what clustering needs.
// Offset is absolute microseconds from the start of the file.
type ReducedEvent struct {
	Offset    int64
	IsNoteOff bool
	Note      uint8
}

// TimedChord is a note set as it stood at some moment of an smf file.
// OffsetMs is milliseconds from the start of the file.
type TimedChord struct {
	OffsetMs uint32
	Notes    Notes
}
