// Package key models tonal centers: major and minor keys, and the seven
// modes. Both variants share one analysis core and satisfy Context.
package key

import (
	"strconv"

	"github.com/jsphweid/keywheel/chord"
	"github.com/jsphweid/keywheel/constants"
	"github.com/jsphweid/keywheel/model"
	"github.com/jsphweid/keywheel/pitch"
	"github.com/jsphweid/keywheel/scale"
)

// Context is the capability set shared by Key and Modal.
type Context interface {
	pitch.Speller
	Center() pitch.PitchClass
	Scale() scale.Scale
	ContextName() string
	ShortName() string
	IsMajor() bool
	ModeName() string
	FifthsIndex() int
	Signature() int
	DiatonicChords() []chord.Chord
	DiatonicSevenths() []chord.Chord
	ChordAt(degree int) chord.Chord
	AnalyzeChord(c chord.Chord) (Analysis, bool)
	ToDTO() model.KeyDTO
	ColorKey() string
}

var (
	_ Context = Key{}
	_ Context = Modal{}
)

// tonality is the part of a context that does not care whether it was
// built as a key or a mode.
type tonality struct {
	center pitch.PitchClass
	scale  scale.Scale
}

func newTonality(center pitch.PitchClass, pattern scale.Pattern) tonality {
	return tonality{center: center, scale: scale.New(center, pattern)}
}

func (t tonality) Center() pitch.PitchClass {
	return t.center
}

func (t tonality) Scale() scale.Scale {
	return t.scale
}

func (t tonality) ModeName() string {
	return t.scale.Pattern().Name
}

// parentMajor is the ionian tonic whose key signature this context uses.
func (t tonality) parentMajor() pitch.PitchClass {
	rotation := t.scale.Pattern().Rotation()
	if rotation < 0 {
		return t.center
	}
	return t.center.Transpose(-scale.Ionian.Offsets[rotation])
}

// FifthsIndex is the circle position of the context's key signature.
func (t tonality) FifthsIndex() int {
	return t.parentMajor().FifthsIndex()
}

// Signature counts accidentals: positive for sharps, negative for flats.
// Six accidentals are written as sharps (F# major, D# minor).
func (t tonality) Signature() int {
	f := t.FifthsIndex()
	if f <= 6 {
		return f
	}
	return f - constants.SemitonesPerOctave
}

func (t tonality) PrefersFlats() bool {
	return t.Signature() < 0
}

// SignatureLabel renders the signature as "3♯", "2♭", or "♮".
func SignatureLabel(signature int) string {
	switch {
	case signature > 0:
		return strconv.Itoa(signature) + "♯"
	case signature < 0:
		return strconv.Itoa(-signature) + "♭"
	default:
		return "♮"
	}
}

// triadOn stacks thirds from the scale starting at a 1-based degree.
func (t tonality) triadOn(degree int) chord.Chord {
	root := t.scale.Degree(degree)
	third := pitch.Between(root, t.scale.Degree(degree+2))
	fifth := pitch.Between(root, t.scale.Degree(degree+4))

	q := chord.QualityMajor
	switch {
	case third == pitch.MinorThird && fifth == pitch.Tritone:
		q = chord.QualityDiminished
	case third == pitch.MajorThird && fifth == pitch.MinorSixth:
		q = chord.QualityAugmented
	case third == pitch.MinorThird:
		q = chord.QualityMinor
	}
	return chord.MustNew(pitch.MustNote(root, constants.DefaultOctave), chord.TriadFor(q))
}

func (t tonality) seventhOn(degree int) chord.Chord {
	triad := t.triadOn(degree)
	root := triad.RootClass()
	seventh := pitch.Between(root, t.scale.Degree(degree+6))

	pattern := triad.Pattern()
	switch {
	case triad.Quality() == chord.QualityMajor && seventh == pitch.MajorSeventh:
		pattern = chord.MajorSeventh
	case triad.Quality() == chord.QualityMajor && seventh == pitch.MinorSeventh:
		pattern = chord.DominantSeventh
	case triad.Quality() == chord.QualityMinor && seventh == pitch.MinorSeventh:
		pattern = chord.MinorSeventh
	case triad.Quality() == chord.QualityDiminished && seventh == pitch.MinorSeventh:
		pattern = chord.HalfDiminishedSeventh
	case triad.Quality() == chord.QualityDiminished && seventh == pitch.MajorSixth:
		pattern = chord.DiminishedSeventh
	}
	return chord.MustNew(triad.Root(), pattern)
}

// ChordAt is the diatonic triad on a 1-based degree. Degrees wrap.
func (t tonality) ChordAt(degree int) chord.Chord {
	return t.triadOn(degree)
}

// DiatonicChords returns the seven triads, one per scale degree.
func (t tonality) DiatonicChords() []chord.Chord {
	res := make([]chord.Chord, 0, constants.DegreesPerScale)
	for d := 1; d <= constants.DegreesPerScale; d++ {
		res = append(res, t.triadOn(d))
	}
	return res
}

func (t tonality) DiatonicSevenths() []chord.Chord {
	res := make([]chord.Chord, 0, constants.DegreesPerScale)
	for d := 1; d <= constants.DegreesPerScale; d++ {
		res = append(res, t.seventhOn(d))
	}
	return res
}

// AnalyzeChord places c in the context by its root. A root outside the
// scale gives no result; that is an ordinary outcome, not an error.
func (t tonality) AnalyzeChord(c chord.Chord) (Analysis, bool) {
	degree := t.scale.DegreeOf(c.RootClass())
	if degree == 0 {
		return Analysis{}, false
	}
	return Analysis{
		RomanNumeral: RomanNumeral(degree, c.Pattern()),
		ScaleDegree:  degree,
		Function:     FunctionOf(degree),
	}, true
}

func colorKey(center pitch.PitchClass, sp pitch.Speller, mode string) string {
	return "key-" + center.WordName(sp) + "-" + mode
}
