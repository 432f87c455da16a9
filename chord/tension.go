package chord

import (
	"strings"

	"github.com/d4j3y2k/keyboy/model"
	"github.com/d4j3y2k/keyboy/theory"
)

// Thresholds above which an ambiguous interval is unambiguously the
// compound (tension) reading: octave + 2 for #9, octave + 5 for #11,
// octave + 7 for b13.
const (
	sharp9Threshold  = 14
	sharp11Threshold = 17
	flat13Threshold  = 19
)

// tensions is the voicing-based resolution of the three ambiguous interval
// classes. Each flag is only meaningful when the interval is present.
type tensions struct {
	Sharp9  bool // interval 3 reads as #9 rather than b3
	Sharp11 bool // interval 6 reads as #11 rather than b5
	Flat13  bool // interval 8 reads as b13 rather than #5
}

// calculateActualIntervals fixes a reference root MIDI value and measures
// every sounded note against it. The reference is the lowest sounded
// instance of the root pitch class, or for rootless voicings a synthesized
// value just below the lowest note. Notes must be sorted ascending.
func calculateActualIntervals(sorted model.Notes, rootPitchClass int) []model.ActualIntervalInfo {
	rootMidi := -1
	for _, n := range sorted {
		if int(n)%12 == rootPitchClass {
			rootMidi = int(n)
			break
		}
	}
	if rootMidi < 0 {
		lowest := int(sorted[0])
		rootMidi = lowest - ((lowest%12-rootPitchClass)%12+12)%12
	}

	res := make([]model.ActualIntervalInfo, len(sorted))
	for i, n := range sorted {
		res[i] = model.ActualIntervalInfo{
			PitchClass:     int(n) % 12,
			ActualInterval: int(n) - rootMidi,
			Midi:           n,
		}
	}
	return res
}

// getActualIntervalForPitchClass returns the actual interval of the lowest
// sounded instance of a pitch class. Infos are in ascending MIDI order, so
// the first hit is the lowest.
func getActualIntervalForPitchClass(infos []model.ActualIntervalInfo, pitchClass int) (int, bool) {
	for _, info := range infos {
		if info.PitchClass == pitchClass {
			return info.ActualInterval, true
		}
	}
	return 0, false
}

// disambiguateTensions resolves the three ambiguous interval classes for a
// concrete voicing. has reports interval presence relative to the root.
func disambiguateTensions(infos []model.ActualIntervalInfo, has map[int]bool, root int) tensions {
	var t tensions

	if has[3] {
		ai, _ := getActualIntervalForPitchClass(infos, (root+3)%12)
		switch {
		case ai >= sharp9Threshold:
			t.Sharp9 = true
		case has[4]:
			// both thirds sounding: the ambiguous note is a #9 only when
			// voiced above the major 3rd, below it is a b3 cluster
			maj3, _ := getActualIntervalForPitchClass(infos, (root+4)%12)
			t.Sharp9 = ai > maj3
		}
	}

	if has[6] {
		ai, _ := getActualIntervalForPitchClass(infos, (root+6)%12)
		switch {
		case ai >= sharp11Threshold:
			t.Sharp11 = true
		case has[7] && has[4]:
			// Lydian sound: major 3rd and perfect 5th both present
			t.Sharp11 = true
		case has[11] && has[4] && !has[7]:
			t.Sharp11 = true
		}
	}

	if has[8] {
		ai, _ := getActualIntervalForPitchClass(infos, (root+8)%12)
		// a true #5 chord omits the perfect 5th, so a sounding 5th means b13
		t.Flat13 = ai >= flat13Threshold || has[7]
	}

	return t
}

// getTensionQuality decides the spelling of one ambiguous interval from the
// octave-aware distance when available, else from markers in the chord
// name. "sharp" means the raised reading (#9/#11/#5), "flat" the lowered
// one, "natural" the root scale's default.
func getTensionQuality(interval int, chordName string, actualInterval ...int) string {
	if interval == 1 {
		return "flat"
	}
	hasActual := len(actualInterval) > 0

	switch interval {
	case 3:
		if hasActual && actualInterval[0] >= sharp9Threshold {
			return "sharp"
		}
		if strings.Contains(chordName, "#9") {
			return "sharp"
		}
		return "natural"
	case 6:
		if hasActual && actualInterval[0] >= sharp11Threshold {
			return "sharp"
		}
		if strings.Contains(chordName, "#11") {
			return "sharp"
		}
		if strings.Contains(chordName, "b5") {
			return "flat"
		}
		return "natural"
	case 8:
		if hasActual {
			if actualInterval[0] >= flat13Threshold {
				return "flat"
			}
			if strings.Contains(chordName, "b13") {
				return "flat"
			}
			return "sharp"
		}
		if strings.Contains(chordName, "b13") {
			return "flat"
		}
		if strings.Contains(chordName, "#5") || strings.Contains(chordName, "aug") {
			return "sharp"
		}
		return "natural"
	}
	return "natural"
}

// GetChordToneWithTension spells one sounding pitch class against a chord's
// root and quality, honoring tension markers in the quality and, when
// given, the octave-aware actual interval of the note.
func GetChordToneWithTension(pitchClass int, rootPitchClass int, quality string, actualInterval ...int) string {
	interval := ((pitchClass-rootPitchClass)%12 + 12) % 12

	switch interval {
	case 3, 6, 8:
		switch getTensionQuality(interval, quality, actualInterval...) {
		case "sharp":
			return theory.GetNoteName(pitchClass, false)
		case "flat":
			return theory.GetNoteName(pitchClass, true)
		}
	}
	return theory.GetChordToneSpelling(pitchClass, rootPitchClass)
}
