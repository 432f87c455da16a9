package chord

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPatternsAreNormalized(t *testing.T) {
	assert := assert.New(t)
	for _, p := range Patterns {
		assert.NotEmpty(p.Intervals, "pattern %q has no intervals", p.Name)
		assert.Equal(0, p.Intervals[0], "pattern %q must contain the root", p.Name)
		assert.True(sort.IntsAreSorted(p.Intervals), "pattern %q not sorted", p.Name)
		seen := make(map[int]bool)
		for _, v := range p.Intervals {
			assert.GreaterOrEqual(v, 0, "pattern %q interval out of range", p.Name)
			assert.Less(v, 12, "pattern %q interval out of range", p.Name)
			assert.False(seen[v], "pattern %q repeats interval %v", p.Name, v)
			seen[v] = true
		}
	}
}

func TestPatternNamesAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, p := range Patterns {
		assert.False(t, seen[p.Name], "duplicate pattern name %q", p.Name)
		seen[p.Name] = true
	}
}

func TestOmit5thPatternsContainAFifth(t *testing.T) {
	for _, p := range Patterns {
		if p.AllowOmit5th {
			assert.True(t, patternHas(p, 7), "pattern %q allows omitting a 5th it does not have", p.Name)
		}
	}
}

// The lowest-priority exact match must outrank the highest-priority fuzzy
// match, otherwise a noisy superset could shadow a perfect hit.
func TestExactMatchAlwaysOutranksFuzzy(t *testing.T) {
	minPriority, maxPriority := Patterns[0].Priority, Patterns[0].Priority
	for _, p := range Patterns {
		if p.Priority < minPriority {
			minPriority = p.Priority
		}
		if p.Priority > maxPriority {
			maxPriority = p.Priority
		}
	}
	assert.Greater(t, minPriority*rootedMultiplier+exactBonus, maxPriority*rootedMultiplier)
}

func TestRootlessCandidatesAreSeventhChords(t *testing.T) {
	// matchRootless gates on len >= 4; every AllowOmit5th pattern that could
	// qualify through the omit-5th path must still carry a 7th or extension
	for _, p := range Patterns {
		if len(p.Intervals) >= 4 && p.AllowOmit5th {
			assert.True(t, patternHas(p, 10) || patternHas(p, 11) || patternHas(p, 9) || patternHas(p, 2) || patternHas(p, 5),
				"pattern %q", p.Name)
		}
	}
}
