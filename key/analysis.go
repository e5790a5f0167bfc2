package key

import (
	"strings"

	"github.com/jsphweid/keywheel/chord"
	"github.com/jsphweid/keywheel/model"
)

// Function is the harmonic role of a diatonic chord.
type Function string

const (
	Tonic       Function = "Tonic"
	Subdominant Function = "Subdominant"
	Dominant    Function = "Dominant"
)

// Analysis is a chord's place in a context. It is derived on demand and
// never stored.
type Analysis struct {
	RomanNumeral string
	ScaleDegree  int
	Function     Function
}

var numerals = [7]string{"I", "II", "III", "IV", "V", "VI", "VII"}

// FunctionOf classifies a 1-based scale degree: 1, 3, 6 are tonic,
// 2 and 4 subdominant, 5 and 7 dominant.
func FunctionOf(degree int) Function {
	switch degree {
	case 2, 4:
		return Subdominant
	case 5, 7:
		return Dominant
	default:
		return Tonic
	}
}

// RomanNumeral labels a chord on a 1-based degree. Major and augmented
// chords are upper case, minor and diminished lower case.
func RomanNumeral(degree int, p chord.Pattern) string {
	numeral := numerals[(degree-1+7)%7]
	if p.Quality == chord.QualityMinor || p.Quality == chord.QualityDiminished {
		numeral = strings.ToLower(numeral)
	}

	switch p.Name {
	case chord.DominantSeventh.Name, chord.MinorSeventh.Name:
		return numeral + "7"
	case chord.MajorSeventh.Name:
		return numeral + "maj7"
	case chord.HalfDiminishedSeventh.Name:
		return numeral + "ø7"
	case chord.DiminishedSeventh.Name:
		return numeral + "°7"
	}

	switch p.Quality {
	case chord.QualityDiminished:
		return numeral + "°"
	case chord.QualityAugmented:
		return numeral + "+"
	}
	return numeral
}

func (a Analysis) ToDTO() *model.AnalysisDTO {
	return &model.AnalysisDTO{
		RomanNumeral: a.RomanNumeral,
		ScaleDegree:  a.ScaleDegree,
		Function:     string(a.Function),
	}
}
