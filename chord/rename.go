package chord

import (
	"strings"

	"github.com/d4j3y2k/keyboy/model"
)

// A renamed candidate must score within this distance of the original to
// be swapped in.
const altScoreTolerance = 150

// refineBest reconciles the selected pattern's name with the voicing-based
// tension analysis, either switching to an already-generated alternate at
// the same root or rewriting the name text. It never invents a new match
// and never touches the pattern's intervals, which is why a renamed
// quality can disagree textually with its interval list.
func refineBest(best model.Match, matches []model.Match, pitchClasses []int, infos []model.ActualIntervalInfo) model.Match {
	_, has := intervalsFromRoot(pitchClasses, best.Root)
	t := disambiguateTensions(infos, has, best.Root)

	best = reconcileSharp9(best, matches, has, t)
	best = reconcileSharp11(best, matches, has, t)
	best = reconcileFlat13(best, matches, has, t)
	return best
}

// reconcileSharp9 arbitrates #9 against b3 clusters. Only meaningful when
// both thirds sound.
func reconcileSharp9(best model.Match, matches []model.Match, has map[int]bool, t tensions) model.Match {
	if !has[4] || !has[3] {
		return best
	}
	name := best.Pattern.Name

	if t.Sharp9 {
		if strings.Contains(name, "#9") {
			return best
		}
		if alt, ok := findAlternate(matches, best, func(n string) bool {
			return strings.Contains(n, "#9")
		}); ok {
			return alt
		}
		if isPlainShape(name) {
			if name == "" {
				best.Pattern.Name = "add#9"
			} else {
				best.Pattern.Name = name + "(#9)"
			}
		}
		return best
	}

	// the ambiguous note sits below the major 3rd: a b3 cluster mislabeled
	// as #9
	if !strings.Contains(name, "#9") {
		return best
	}
	if patternHas(best.Pattern, 10) || patternHas(best.Pattern, 11) {
		best.Pattern.Name = strings.Replace(name, "#9", "(add b3)", 1)
		return best
	}
	if alt, ok := findAlternate(matches, best, func(n string) bool {
		return n == "(add b3)" || n == "m(add 3)"
	}); ok {
		return alt
	}
	best.Pattern.Name = rewriteSharp9AsCluster(name)
	return best
}

// reconcileSharp11 arbitrates #11 against b5.
func reconcileSharp11(best model.Match, matches []model.Match, has map[int]bool, t tensions) model.Match {
	if !has[6] {
		return best
	}
	name := best.Pattern.Name

	if t.Sharp11 {
		if strings.Contains(name, "#11") {
			return best
		}
		if alt, ok := findAlternate(matches, best, func(n string) bool {
			return strings.Contains(n, "#11")
		}); ok {
			return alt
		}
		if strings.Contains(name, "b5") {
			best.Pattern.Name = strings.Replace(name, "b5", "#11", 1)
		}
		return best
	}

	if name == "(#11)" {
		if alt, ok := findAlternate(matches, best, func(n string) bool {
			return n == "(b5)"
		}); ok {
			return alt
		}
		return best
	}
	if strings.Contains(name, "#11") {
		if !has[7] {
			if alt, ok := findAlternate(matches, best, func(n string) bool {
				return strings.Contains(n, "b5")
			}); ok {
				return alt
			}
		}
		best.Pattern.Name = strings.Replace(name, "#11", "b5", 1)
	}
	return best
}

// reconcileFlat13 demotes a #5 label to b13 when the voicing sounds a
// perfect 5th and a 7th alongside the augmented tone. No reverse direction:
// selection already favors b13 shapes in that configuration.
func reconcileFlat13(best model.Match, matches []model.Match, has map[int]bool, t tensions) model.Match {
	if !has[7] || !has[8] || !(has[10] || has[11]) {
		return best
	}
	name := best.Pattern.Name
	if !strings.Contains(name, "#5") || name == "aug" {
		return best
	}
	if alt, ok := findAlternate(matches, best, func(n string) bool {
		return strings.Contains(n, "b13")
	}); ok {
		return alt
	}
	return best
}

// findAlternate scans the already-scored matches for a candidate at the
// same root whose name satisfies pred and whose score is close enough to
// the current best. Matches are sorted, so the first hit is the strongest.
func findAlternate(matches []model.Match, best model.Match, pred func(string) bool) (model.Match, bool) {
	for _, m := range matches {
		if m.Root != best.Root || m.IsRootless != best.IsRootless {
			continue
		}
		if m.Pattern.Name == best.Pattern.Name {
			continue
		}
		if m.Score < best.Score-altScoreTolerance {
			continue
		}
		if pred(m.Pattern.Name) {
			return m, true
		}
	}
	return model.Match{}, false
}

// isPlainShape reports whether a name is bland enough to absorb a (#9)
// annotation: empty, add-something, Maj-something or a bare 7.
func isPlainShape(name string) bool {
	if strings.Contains(name, "m") || strings.Contains(name, "#9") {
		return false
	}
	return name == "" || name == "7" ||
		strings.HasPrefix(name, "add") || strings.HasPrefix(name, "Maj")
}

// rewriteSharp9AsCluster turns an add#9-family name into the parenthesized
// cluster form, e.g. add#9 -> (add b3), madd#9 -> m(add b3).
func rewriteSharp9AsCluster(name string) string {
	name = strings.Replace(name, "#9", "b3", 1)
	switch {
	case strings.HasPrefix(name, "madd"):
		return "m(add " + strings.TrimPrefix(name, "madd") + ")"
	case strings.HasPrefix(name, "add"):
		return "(add " + strings.TrimPrefix(name, "add") + ")"
	}
	return name
}
