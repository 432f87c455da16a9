package chord

import (
	"sort"
	"strings"

	"github.com/d4j3y2k/keyboy/model"
	"github.com/d4j3y2k/keyboy/theory"
)

// Scoring constants. Exact matches carry a flat bonus large enough that no
// fuzzy match of any priority can reach them; rootless candidates run on
// smaller multipliers so they always rank below rooted matches of
// comparable quality.
const (
	exactBonus          = 1000
	omit5thPenalty      = 15
	rootedMultiplier    = 100
	rootlessMultiplier  = 80
	rootlessPenalty     = 50
	rootlessOmit5thMult = 70
	rootlessOmit5thPen  = 80
)

// Analyze names the most musically plausible chord for a set of MIDI notes.
// It returns nil only for an empty input. The same pitch-class multiset
// always yields the same root and quality regardless of octave or
// doubling; octave information only sharpens tension spelling.
func Analyze(activeNotes model.Notes) *model.ChordAnalysis {
	if len(activeNotes) == 0 {
		return nil
	}

	sorted := make(model.Notes, len(activeNotes))
	copy(sorted, activeNotes)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	bassPitchClass := int(sorted[0]) % 12

	// unique pitch classes, ordered bass upward
	var pitchClasses []int
	seen := make(map[int]bool)
	for _, n := range sorted {
		pc := int(n) % 12
		if !seen[pc] {
			seen[pc] = true
			pitchClasses = append(pitchClasses, pc)
		}
	}

	matches := collectMatches(pitchClasses)
	if len(matches) == 0 {
		return describeRaw(pitchClasses, bassPitchClass)
	}

	// stable: ties keep root-iteration then catalog order
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	best := matches[0]

	infos := calculateActualIntervals(sorted, best.Root)
	best = refineBest(best, matches, pitchClasses, infos)

	rootName := theory.GetRootSpelling(best.Root, pitchClasses)
	bassName := theory.GetChordToneSpelling(bassPitchClass, best.Root)

	display := rootName + best.Pattern.Name
	if best.IsRootless {
		display += " (rootless)"
	}
	if best.Root != bassPitchClass && !best.IsRootless {
		display += "/" + bassName
	}

	actuals := make([]int, len(infos))
	for i, info := range infos {
		actuals[i] = info.ActualInterval
	}

	return &model.ChordAnalysis{
		Root:                   rootName,
		Quality:                best.Pattern.Name,
		Bass:                   bassName,
		Display:                display,
		Intervals:              best.Pattern.Intervals,
		DetectedRootPitchClass: best.Root,
		IsRootless:             best.IsRootless,
		ActualIntervals:        actuals,
	}
}

// collectMatches enumerates every root x pattern x mode combination. Full
// enumeration matters: the winner is the globally best score, never the
// first hit.
func collectMatches(pitchClasses []int) []model.Match {
	var matches []model.Match

	present := make(map[int]bool)
	for _, pc := range pitchClasses {
		present[pc] = true
	}

	for _, root := range pitchClasses {
		intervals, has := intervalsFromRoot(pitchClasses, root)
		for _, p := range Patterns {
			if m, ok := matchRooted(p, intervals, has, root); ok {
				matches = append(matches, m)
			}
		}
	}

	// implied absent roots: 7th chords and up may be voiced rootless
	for root := 0; root < 12; root++ {
		if present[root] {
			continue
		}
		intervals, has := intervalsFromRoot(pitchClasses, root)
		for _, p := range Patterns {
			if len(p.Intervals) < 4 {
				continue
			}
			if m, ok := matchRootless(p, intervals, has, root); ok {
				matches = append(matches, m)
			}
		}
	}

	return matches
}

func intervalsFromRoot(pitchClasses []int, root int) ([]int, map[int]bool) {
	intervals := make([]int, 0, len(pitchClasses))
	has := make(map[int]bool)
	for _, pc := range pitchClasses {
		interval := ((pc - root) % 12 + 12) % 12
		intervals = append(intervals, interval)
		has[interval] = true
	}
	sort.Ints(intervals)
	return intervals, has
}

// matchRooted tries the three rooted match kinds in order. At most one
// Match comes out of a root/pattern pair.
func matchRooted(p model.ChordPattern, intervals []int, has map[int]bool, root int) (model.Match, bool) {
	allPresent := true
	for _, v := range p.Intervals {
		if !has[v] {
			allPresent = false
			break
		}
	}

	if allPresent {
		if len(intervals) == len(p.Intervals) {
			return model.Match{
				Pattern: p,
				Root:    root,
				Score:   p.Priority*rootedMultiplier + exactBonus,
				IsExact: true,
			}, true
		}
		penalty := calculateExtraNotesPenalty(intervals, p)
		return model.Match{
			Pattern: p,
			Root:    root,
			Score:   p.Priority*rootedMultiplier - penalty,
		}, true
	}

	// 5th-omitted: everything but the structurally optional 5th present
	if p.AllowOmit5th && patternHas(p, 7) && !has[7] {
		for _, v := range p.Intervals {
			if v != 7 && !has[v] {
				return model.Match{}, false
			}
		}
		penalty := calculateExtraNotesPenalty(intervals, p)
		return model.Match{
			Pattern: p,
			Root:    root,
			Score:   p.Priority*rootedMultiplier - omit5thPenalty - penalty,
		}, true
	}

	return model.Match{}, false
}

// matchRootless tries a pattern against an implied absent root. Only real
// 7th-chord shapes qualify, and enough of the pattern's upper structure
// must actually sound.
func matchRootless(p model.ChordPattern, intervals []int, has map[int]bool, root int) (model.Match, bool) {
	nonRoot := p.Intervals[1:]

	if len(nonRoot) >= 3 {
		allPresent := true
		for _, v := range nonRoot {
			if !has[v] {
				allPresent = false
				break
			}
		}
		if allPresent {
			penalty := calculateExtraNotesPenalty(intervals, p)
			return model.Match{
				Pattern:    p,
				Root:       root,
				Score:      p.Priority*rootlessMultiplier - rootlessPenalty - penalty,
				IsRootless: true,
			}, true
		}
	}

	if p.AllowOmit5th && patternHas(p, 7) && !has[7] {
		count := 0
		for _, v := range nonRoot {
			if v == 7 {
				continue
			}
			if !has[v] {
				return model.Match{}, false
			}
			count++
		}
		if count >= 2 {
			penalty := calculateExtraNotesPenalty(intervals, p)
			return model.Match{
				Pattern:    p,
				Root:       root,
				Score:      p.Priority*rootlessOmit5thMult - rootlessOmit5thPen - penalty,
				IsRootless: true,
			}, true
		}
	}

	return model.Match{}, false
}

// Degrees that read as consonant extensions when added on top of a chord:
// the 9th, the 11th/sus4 and the 13th/6th.
var commonExtensions = map[int]bool{2: true, 5: true, 9: true}

// calculateExtraNotesPenalty charges each sounded interval the pattern does
// not account for. Extensions over a 7th chord are nearly free, extensions
// without a 7th cost a little, anything else reads as a wrong guess.
func calculateExtraNotesPenalty(intervals []int, p model.ChordPattern) int {
	has7th := patternHas(p, 10) || patternHas(p, 11)

	penalty := 0
	for _, v := range intervals {
		if patternHas(p, v) {
			continue
		}
		switch {
		case commonExtensions[v] && has7th:
			penalty += 3
		case commonExtensions[v]:
			penalty += 6
		default:
			penalty += 18
		}
	}
	return penalty
}

func patternHas(p model.ChordPattern, interval int) bool {
	for _, v := range p.Intervals {
		if v == interval {
			return true
		}
	}
	return false
}

// describeRaw is the no-match fallback: spell the cluster against its bass.
func describeRaw(pitchClasses []int, bassPitchClass int) *model.ChordAnalysis {
	intervals, _ := intervalsFromRoot(pitchClasses, bassPitchClass)
	rootName := theory.GetRootSpelling(bassPitchClass, pitchClasses)

	names := make([]string, len(pitchClasses))
	for i, pc := range pitchClasses {
		names[i] = theory.GetChordToneSpelling(pc, bassPitchClass)
	}

	return &model.ChordAnalysis{
		Root:                   rootName,
		Quality:                "",
		Bass:                   rootName,
		Display:                strings.Join(names, " "),
		Intervals:              intervals,
		DetectedRootPitchClass: bassPitchClass,
	}
}
