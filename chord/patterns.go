package chord

import (
	"github.com/d4j3y2k/keyboy/model"
	"github.com/d4j3y2k/keyboy/theory"
)

func pattern(name string, priority int, allowOmit5th bool, intervals ...int) model.ChordPattern {
	return model.ChordPattern{
		Name:         name,
		Intervals:    theory.NormalizeIntervals(intervals),
		Priority:     priority,
		AllowOmit5th: allowOmit5th,
	}
}

// Patterns is the static chord catalog, roughly priority-descending.
// Raw intervals are written as voiced (tensions above the octave) and
// normalized once here. Priorities all live inside a window of 10 so an
// exact match (+1000) always outranks any fuzzy match of any pattern.
//
// AllowOmit5th marks shapes that keep their identity without the perfect
// 5th; it stays false wherever an absent or altered 5th IS the identity
// (dim7, 7b5, 7#5, b13 chords).
//
// Known collision, kept on purpose: madd#9 normalizes to the plain minor
// triad, and add#9 / (add b3) / m(add 3) share one interval set. The
// matcher's stable ordering plus post-match renaming arbitrate between
// them, and a plain minor triad may legitimately surface as madd#9.
var Patterns = []model.ChordPattern{
	// 13th chords
	pattern("Maj13#11", 14, true, 0, 4, 7, 11, 14, 18, 21),
	pattern("13#11", 14, true, 0, 4, 7, 10, 14, 18, 21),
	pattern("Maj13", 14, true, 0, 4, 7, 11, 14, 21),
	pattern("13", 14, true, 0, 4, 7, 10, 14, 21),
	pattern("min13", 14, true, 0, 3, 7, 10, 14, 21),
	pattern("13b9", 14, true, 0, 4, 7, 10, 13, 21),
	pattern("13sus4", 14, true, 0, 5, 7, 10, 14, 21),

	// 11th chords and b13 dominants
	pattern("Maj9#11", 13, true, 0, 4, 7, 11, 14, 18),
	pattern("9#11", 13, true, 0, 4, 7, 10, 14, 18),
	pattern("Maj7#11", 13, true, 0, 4, 7, 11, 18),
	pattern("7#11", 13, true, 0, 4, 7, 10, 18),
	pattern("7b9#11", 13, true, 0, 4, 7, 10, 13, 18),
	pattern("11", 13, true, 0, 4, 7, 10, 14, 17),
	pattern("min11", 13, true, 0, 3, 7, 10, 14, 17),
	pattern("9b13", 13, false, 0, 4, 7, 10, 14, 20),
	pattern("7b13", 13, false, 0, 4, 7, 10, 20),

	// 9th chords
	pattern("Maj9", 12, true, 0, 4, 7, 11, 14),
	pattern("9", 12, true, 0, 4, 7, 10, 14),
	pattern("min9", 12, true, 0, 3, 7, 10, 14),
	pattern("mMaj9", 12, true, 0, 3, 7, 11, 14),
	pattern("7b9", 12, true, 0, 4, 7, 10, 13),
	pattern("7#9", 12, true, 0, 4, 7, 10, 15),
	pattern("m7b9", 12, true, 0, 3, 7, 10, 13),
	pattern("Maj7#9", 12, true, 0, 4, 7, 11, 15),
	pattern("9sus4", 12, true, 0, 5, 7, 10, 14),
	pattern("9b5", 12, false, 0, 4, 6, 10, 14),
	pattern("9#5", 12, false, 0, 4, 8, 10, 14),
	pattern("m9b5", 12, false, 0, 3, 6, 10, 14),
	pattern("7b5b9", 12, false, 0, 4, 6, 10, 13),
	pattern("7b5#9", 12, false, 0, 4, 6, 10, 15),
	pattern("7#5b9", 12, false, 0, 4, 8, 10, 13),
	pattern("7#5#9", 12, false, 0, 4, 8, 10, 15),

	// 7th chords
	pattern("Maj7", 11, true, 0, 4, 7, 11),
	pattern("7", 11, true, 0, 4, 7, 10),
	pattern("min7", 11, true, 0, 3, 7, 10),
	pattern("mMaj7", 11, true, 0, 3, 7, 11),
	pattern("dim7", 11, false, 0, 3, 6, 9),
	pattern("m7b5", 11, false, 0, 3, 6, 10),
	pattern("7sus4", 11, true, 0, 5, 7, 10),
	pattern("7sus2", 11, true, 0, 2, 7, 10),
	pattern("Maj7sus4", 11, true, 0, 5, 7, 11),
	pattern("Maj7sus2", 11, true, 0, 2, 7, 11),
	pattern("7b5", 11, false, 0, 4, 6, 10),
	pattern("7#5", 11, false, 0, 4, 8, 10),
	pattern("Maj7b5", 11, false, 0, 4, 6, 11),
	pattern("Maj7#5", 11, false, 0, 4, 8, 11),

	// 6th and add chords
	pattern("6/9", 10, true, 0, 4, 7, 9, 14),
	pattern("m6/9", 10, true, 0, 3, 7, 9, 14),
	pattern("add9", 10, true, 0, 4, 7, 14),
	pattern("madd9", 10, true, 0, 3, 7, 14),
	pattern("add11", 10, true, 0, 4, 7, 17),
	pattern("madd11", 10, true, 0, 3, 7, 17),
	pattern("add#9", 10, false, 0, 4, 7, 15),
	pattern("6", 9, true, 0, 4, 7, 9),
	pattern("m6", 9, true, 0, 3, 7, 9),

	// triads and fragments
	pattern("", 10, false, 0, 4, 7),
	pattern("m", 10, false, 0, 3, 7),
	pattern("madd#9", 10, false, 0, 3, 7, 15),
	pattern("dim", 9, false, 0, 3, 6),
	pattern("aug", 9, false, 0, 4, 8),
	pattern("sus4", 9, false, 0, 5, 7),
	pattern("sus2", 9, false, 0, 2, 7),
	pattern("(add b3)", 9, false, 0, 3, 4, 7),
	pattern("m(add 3)", 9, false, 0, 3, 4, 7),
	pattern("add b6", 9, false, 0, 4, 7, 8),
	pattern("(b5)", 8, false, 0, 4, 6),
	pattern("(#11)", 8, false, 0, 4, 18),
	pattern("m#5", 8, false, 0, 3, 8),

	// skeletal voicings
	pattern("4ths", 7, false, 0, 5, 10),
	pattern("5", 6, false, 0, 7),
}
