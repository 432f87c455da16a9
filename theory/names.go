package theory

// Canonical single-accidental names for the 12 pitch classes.
var sharpNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}
var flatNames = [12]string{"C", "Db", "D", "Eb", "E", "F", "Gb", "G", "Ab", "A", "Bb", "B"}

// rootSpelling fixes, per root, how every interval above it is written.
// Hand-authored to match conventional notation: mixed-accidental roots like
// C, D and G flat their 9ths/13ths but sharp their 11ths, F# keeps E# for
// its major 7th, and so on. Scale[i] spells the tone i semitones above the
// root.
type rootSpelling struct {
	Name    string
	UseFlat bool
	Scale   [12]string
}

var rootSpellings = [12]rootSpelling{
	{Name: "C", UseFlat: false,
		Scale: [12]string{"C", "Db", "D", "Eb", "E", "F", "F#", "G", "Ab", "A", "Bb", "B"}},
	{Name: "C#", UseFlat: false,
		Scale: [12]string{"C#", "D", "D#", "E", "E#", "F#", "G", "G#", "A", "A#", "B", "B#"}},
	{Name: "D", UseFlat: false,
		Scale: [12]string{"D", "Eb", "E", "F", "F#", "G", "G#", "A", "Bb", "B", "C", "C#"}},
	{Name: "Eb", UseFlat: true,
		Scale: [12]string{"Eb", "E", "F", "Gb", "G", "Ab", "A", "Bb", "B", "C", "Db", "D"}},
	{Name: "E", UseFlat: false,
		Scale: [12]string{"E", "F", "F#", "G", "G#", "A", "A#", "B", "C", "C#", "D", "D#"}},
	{Name: "F", UseFlat: true,
		Scale: [12]string{"F", "Gb", "G", "Ab", "A", "Bb", "B", "C", "Db", "D", "Eb", "E"}},
	{Name: "F#", UseFlat: false,
		Scale: [12]string{"F#", "G", "G#", "A", "A#", "B", "C", "C#", "D", "D#", "E", "E#"}},
	{Name: "G", UseFlat: false,
		Scale: [12]string{"G", "Ab", "A", "Bb", "B", "C", "C#", "D", "Eb", "E", "F", "F#"}},
	{Name: "Ab", UseFlat: true,
		Scale: [12]string{"Ab", "A", "Bb", "B", "C", "Db", "D", "Eb", "E", "F", "Gb", "G"}},
	{Name: "A", UseFlat: false,
		Scale: [12]string{"A", "Bb", "B", "C", "C#", "D", "D#", "E", "F", "F#", "G", "G#"}},
	{Name: "Bb", UseFlat: true,
		Scale: [12]string{"Bb", "B", "C", "Db", "D", "Eb", "E", "F", "Gb", "G", "Ab", "A"}},
	{Name: "B", UseFlat: false,
		Scale: [12]string{"B", "C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#"}},
}

// GetNoteName returns the canonical name of a pitch class, preferring the
// flat alias when asked.
func GetNoteName(pitchClass int, preferFlat bool) string {
	if preferFlat {
		return flatNames[pitchClass]
	}
	return sharpNames[pitchClass]
}

// ShouldPreferFlat reports whether a root conventionally spells with flats.
func ShouldPreferFlat(rootPitchClass int) bool {
	return rootSpellings[rootPitchClass].UseFlat
}
