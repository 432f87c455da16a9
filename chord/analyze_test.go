package chord

import (
	"testing"

	"github.com/d4j3y2k/keyboy/model"
	"github.com/stretchr/testify/assert"
)

func TestMajorTriad(t *testing.T) {
	res := Analyze(model.Notes{60, 64, 67})

	assert := assert.New(t)
	assert.NotNil(res)
	assert.Equal("C", res.Root)
	assert.Equal("", res.Quality)
	assert.Equal("C", res.Display)
	assert.Equal([]int{0, 4, 7}, res.Intervals)
	assert.Equal(0, res.DetectedRootPitchClass)
	assert.False(res.IsRootless)
}

func TestMaj7FirstInversion(t *testing.T) {
	res := Analyze(model.Notes{64, 67, 71, 72})

	assert := assert.New(t)
	assert.Equal("C", res.Root)
	assert.Equal("Maj7", res.Quality)
	assert.Equal("E", res.Bass)
	assert.Contains(res.Display, "/E")
}

func TestMin7(t *testing.T) {
	res := Analyze(model.Notes{60, 63, 67, 70})

	assert := assert.New(t)
	assert.Equal("C", res.Root)
	assert.Equal("min7", res.Quality)
}

func TestOctaveInvariance(t *testing.T) {
	low := Analyze(model.Notes{36, 40, 43})
	mid := Analyze(model.Notes{60, 64, 67})
	high := Analyze(model.Notes{84, 88, 91})

	assert := assert.New(t)
	assert.Equal(low.Root, mid.Root)
	assert.Equal(mid.Root, high.Root)
	assert.Equal(low.Quality, mid.Quality)
	assert.Equal(mid.Quality, high.Quality)
}

func TestDoublingsDoNotChangeTheAnswer(t *testing.T) {
	plain := Analyze(model.Notes{60, 64, 67})
	doubled := Analyze(model.Notes{60, 72, 64, 76, 67, 60})

	assert := assert.New(t)
	assert.Equal(plain.Root, doubled.Root)
	assert.Equal(plain.Quality, doubled.Quality)
}

func TestSharp9VoicedAboveMajorThird(t *testing.T) {
	// C E G Bb with D# above the octave: a true 7#9 voicing
	res := Analyze(model.Notes{60, 64, 67, 70, 75})

	assert := assert.New(t)
	assert.Equal("C", res.Root)
	assert.Contains(res.Quality, "#9")
	assert.NotContains(res.Quality, "b3")
}

func TestFlat3BelowMajorThirdDemotesSharp9(t *testing.T) {
	// same pitch classes, but the D# now sits below the E: a b3 cluster
	res := Analyze(model.Notes{60, 63, 64, 67, 70})

	assert := assert.New(t)
	assert.Equal("C", res.Root)
	assert.Contains(res.Quality, "(add b3)")
	assert.NotContains(res.Quality, "#9")
}

func TestTriadClusterPrefersAddFlat3WhenVoicedLow(t *testing.T) {
	// C D# E G with the D# inside the octave
	res := Analyze(model.Notes{60, 63, 64, 67})

	assert := assert.New(t)
	assert.Equal("C", res.Root)
	assert.Contains(res.Quality, "add")
	assert.NotContains(res.Quality, "#9")
}

func TestTriadWithHighSharp9KeepsSharp9(t *testing.T) {
	// C E G with D# over an octave above the root
	res := Analyze(model.Notes{60, 64, 67, 75})

	assert := assert.New(t)
	assert.Equal("C", res.Root)
	assert.Contains(res.Quality, "#9")
}

func TestEmptyInput(t *testing.T) {
	assert.Nil(t, Analyze(model.Notes{}))
}

func TestSingleNoteFallsBackToRawSpelling(t *testing.T) {
	res := Analyze(model.Notes{60})

	assert := assert.New(t)
	assert.NotNil(res)
	assert.Equal("C", res.Root)
	assert.Equal("", res.Quality)
	assert.Equal("C", res.Display)
	assert.Equal([]int{0}, res.Intervals)
}

func TestRawFallbackUsesIdiomaticRootName(t *testing.T) {
	res := Analyze(model.Notes{61})

	assert := assert.New(t)
	assert.Equal("C#", res.Root)
	assert.Equal("C#", res.Display)
}

func TestRootlessSeventhShell(t *testing.T) {
	// E and Bb alone: the guide tones of C7 with root and 5th omitted
	res := Analyze(model.Notes{64, 70})

	assert := assert.New(t)
	assert.Equal("C", res.Root)
	assert.Equal("7", res.Quality)
	assert.True(res.IsRootless)
	assert.Contains(res.Display, "(rootless)")
	assert.NotContains(res.Display, "/")
}

func TestChromaticClusterStillGetsAnAnswer(t *testing.T) {
	// dense clusters have no good reading; the engine still commits to a
	// deterministic one instead of erroring
	res := Analyze(model.Notes{60, 61, 62})

	assert := assert.New(t)
	assert.NotNil(res)
	assert.Equal(res, Analyze(model.Notes{60, 61, 62}))
}

func TestSusTiesBreakTowardTheBass(t *testing.T) {
	assert := assert.New(t)

	// C D G and G C D share pitch classes but not a bass
	fromC := Analyze(model.Notes{60, 62, 67})
	assert.Equal("Csus2", fromC.Display)

	fromG := Analyze(model.Notes{55, 60, 62})
	assert.Equal("Gsus4", fromG.Display)
}

func TestDimSevenSymmetryResolvesToBass(t *testing.T) {
	res := Analyze(model.Notes{60, 63, 66, 69})

	assert := assert.New(t)
	assert.Equal("C", res.Root)
	assert.Equal("dim7", res.Quality)
	assert.NotContains(res.Display, "/")
}

func TestPowerChord(t *testing.T) {
	res := Analyze(model.Notes{60, 67})

	assert := assert.New(t)
	assert.Equal("C", res.Root)
	assert.Equal("5", res.Quality)
}

func TestSixthVersusMinorSeventh(t *testing.T) {
	// C Eb G Bb reads as Cmin7, not Eb6 over C
	res := Analyze(model.Notes{60, 63, 67, 70})
	assert.Equal(t, "Cmin7", res.Display)
}

func TestMinorTriadAcceptsKnownCollision(t *testing.T) {
	// madd#9 normalizes to the plain minor triad; either label is correct
	res := Analyze(model.Notes{60, 63, 67})

	assert := assert.New(t)
	assert.Equal("C", res.Root)
	assert.Contains([]string{"m", "madd#9"}, res.Quality)
}

func TestSevenSharpFive(t *testing.T) {
	res := Analyze(model.Notes{60, 64, 68, 70})

	assert := assert.New(t)
	assert.Equal("C", res.Root)
	assert.Equal("7#5", res.Quality)
}

func TestSevenFlat13BeatsSharpFiveWhenFifthSounds(t *testing.T) {
	res := Analyze(model.Notes{60, 64, 67, 68, 70})

	assert := assert.New(t)
	assert.Equal("C", res.Root)
	assert.Equal("7b13", res.Quality)
}

func TestMaj7Sharp11(t *testing.T) {
	res := Analyze(model.Notes{60, 64, 66, 67, 71})

	assert := assert.New(t)
	assert.Equal("C", res.Root)
	assert.Equal("Maj7#11", res.Quality)
}

func TestSevenFlat5KeepsItsName(t *testing.T) {
	// no 5th, no major 7th, tritone inside the octave: a b5 sound
	res := Analyze(model.Notes{60, 64, 66, 70})

	assert := assert.New(t)
	assert.Equal("C", res.Root)
	assert.Equal("7b5", res.Quality)
}

func TestBareTritoneFragmentRenamesByVoicing(t *testing.T) {
	assert := assert.New(t)

	// F# inside the octave sounds like a b5
	low := Analyze(model.Notes{60, 64, 66})
	assert.Equal("(b5)", low.Quality)

	// the same pitch class an octave up sounds like a #11
	high := Analyze(model.Notes{60, 64, 78})
	assert.Equal("(#11)", high.Quality)
}

func TestInversionSpellsBassAgainstRoot(t *testing.T) {
	// F#min7 over A: the C# and E in the chord vote the root sharp
	res := Analyze(model.Notes{57, 61, 64, 66})

	assert := assert.New(t)
	assert.Equal("F#", res.Root)
	assert.Equal("min7", res.Quality)
	assert.Equal("A", res.Bass)
	assert.Contains(res.Display, "/A")
}

func TestAnalyzeIsDeterministic(t *testing.T) {
	notes := model.Notes{60, 63, 67, 70, 74}
	first := Analyze(notes)
	second := Analyze(notes)
	assert.Equal(t, first, second)
}

func TestActualIntervalsFollowSortedInput(t *testing.T) {
	res := Analyze(model.Notes{64, 60, 67})

	assert := assert.New(t)
	assert.Equal([]int{0, 4, 7}, res.ActualIntervals)
}
