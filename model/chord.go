package model

type Notes = []uint8

// ChordPattern is one named interval template from the static catalog.
// Intervals are root-relative, normalized (sorted, unique, 0-11) and always
// contain 0.
type ChordPattern struct {
	Name         string
	Intervals    []int
	Priority     int
	AllowOmit5th bool
}

// Match is one scored interpretation of a note set: a pattern tried against
// a candidate root. The matcher generates many and keeps the best score.
type Match struct {
	Pattern    ChordPattern
	Root       int
	Score      int
	IsRootless bool
	IsExact    bool
}

// ActualIntervalInfo carries the octave-aware distance of one sounded note
// from the inferred root MIDI value. Only used for tension disambiguation.
type ActualIntervalInfo struct {
	PitchClass     int
	ActualInterval int
	Midi           uint8
}

// ChordAnalysis is the engine's output: the most plausible name for a note
// set with enharmonically spelled root and bass.
//
// NOTE: when post-match renaming rewrote Quality textually, Intervals still
// holds the matched pattern's raw intervals and may not line up with the
// rewritten name. Callers that care about tones should use Intervals.
type ChordAnalysis struct {
	Root                   string `json:"root"`
	Quality                string `json:"quality"`
	Bass                   string `json:"bass"`
	Display                string `json:"display"`
	Intervals              []int  `json:"intervals"`
	DetectedRootPitchClass int    `json:"detectedRootPitchClass"`
	IsRootless             bool   `json:"isRootless,omitempty"`
	ActualIntervals        []int  `json:"actualIntervals,omitempty"`
}
