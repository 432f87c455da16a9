package theory

import "sort"

// The five pitch classes that have a real notational choice, with their
// idiomatic defaults. The asymmetry is deliberate: C# and F# default sharp,
// Eb, Ab and Bb default flat.
var ambiguousDefaults = map[int]string{
	1:  "C#",
	3:  "Eb",
	6:  "F#",
	8:  "Ab",
	10: "Bb",
}

// Pitch classes whose presence in a chord pulls the naming toward a sharp
// or a flat reading of an ambiguous root.
var sharpContext = map[int]bool{6: true, 1: true, 8: true, 4: true, 11: true}
var flatContext = map[int]bool{10: true, 3: true, 5: true}

// GetRootSpelling picks the display name for a root. For the seven
// unambiguous pitch classes this is a plain lookup; for the five ambiguous
// ones the other pitch classes sounding in the chord vote sharp or flat,
// with the idiomatic default breaking ties.
func GetRootSpelling(rootPitchClass int, bassContext []int) string {
	def, ambiguous := ambiguousDefaults[rootPitchClass]
	if !ambiguous {
		return sharpNames[rootPitchClass]
	}

	var sharpVotes, flatVotes int
	for _, pc := range bassContext {
		pc = ((pc % 12) + 12) % 12
		if pc == rootPitchClass {
			continue
		}
		if sharpContext[pc] {
			sharpVotes++
		}
		if flatContext[pc] {
			flatVotes++
		}
	}

	switch {
	case sharpVotes > flatVotes:
		return sharpNames[rootPitchClass]
	case flatVotes > sharpVotes:
		return flatNames[rootPitchClass]
	default:
		return def
	}
}

// GetChordToneSpelling spells a pitch class as a chord tone of the given
// root, using the root's hand-authored scale. Spelling a root against
// itself round-trips to its own name.
func GetChordToneSpelling(pitchClass int, rootPitchClass int) string {
	interval := ((pitchClass - rootPitchClass) % 12 + 12) % 12
	return rootSpellings[rootPitchClass].Scale[interval]
}

// NormalizeIntervals reduces raw intervals mod 12, dedupes and sorts them.
func NormalizeIntervals(intervals []int) []int {
	seen := make(map[int]bool)
	var res []int
	for _, v := range intervals {
		v = ((v % 12) + 12) % 12
		if !seen[v] {
			seen[v] = true
			res = append(res, v)
		}
	}
	sort.Ints(res)
	return res
}
