package scale

import (
	"testing"

	"github.com/jsphweid/keywheel/pitch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModeOffsets(t *testing.T) {
	cases := []struct {
		pattern Pattern
		offsets [7]int
	}{
		{Ionian, [7]int{0, 2, 4, 5, 7, 9, 11}},
		{Dorian, [7]int{0, 2, 3, 5, 7, 9, 10}},
		{Phrygian, [7]int{0, 1, 3, 5, 7, 8, 10}},
		{Lydian, [7]int{0, 2, 4, 6, 7, 9, 11}},
		{Mixolydian, [7]int{0, 2, 4, 5, 7, 9, 10}},
		{Aeolian, [7]int{0, 2, 3, 5, 7, 8, 10}},
		{Locrian, [7]int{0, 1, 3, 5, 6, 8, 10}},
	}
	for _, c := range cases {
		t.Run(c.pattern.Name, func(t *testing.T) {
			assert.Equal(t, c.offsets, c.pattern.Offsets)
		})
	}
}

func TestScaleFromTonic(t *testing.T) {
	assert := assert.New(t)

	s := New(pitch.C, Major)
	assert.Equal([]string{"C", "D", "E", "F", "G", "A", "B"}, s.NamesFor(nil))

	s = New(pitch.A, NaturalMinor)
	assert.Equal([]string{"A", "B", "C", "D", "E", "F", "G"}, s.NamesFor(nil))

	s = New(pitch.D, Dorian)
	assert.Equal([]string{"C", "D", "E", "F", "G", "A", "B"}, sorted(s.NamesFor(nil)))
}

func sorted(names []string) []string {
	order := map[string]int{"C": 0, "D": 1, "E": 2, "F": 3, "G": 4, "A": 5, "B": 6}
	res := make([]string, 7)
	for _, n := range names {
		res[order[n]] = n
	}
	return res
}

func TestDegree(t *testing.T) {
	assert := assert.New(t)
	s := New(pitch.G, Major)
	assert.Equal(pitch.G, s.Degree(1))
	assert.Equal(pitch.FSharp, s.Degree(7))
	assert.Equal(pitch.G, s.Degree(8))
	assert.Equal(pitch.FSharp, s.Degree(0))
	assert.Equal(7, s.DegreeOf(pitch.FSharp))
	assert.Equal(0, s.DegreeOf(pitch.F))
	assert.False(s.Contains(pitch.F))
}

func TestRepeatedConstructionIsEqual(t *testing.T) {
	a := New(pitch.E, Phrygian)
	b := New(pitch.E, Phrygian)
	assert.True(t, a.Equal(b))
	assert.Equal(t, a, b)
	assert.False(t, a.Equal(New(pitch.E, Aeolian)))
}

func TestPitchesIsACopy(t *testing.T) {
	s := New(pitch.C, Major)
	p := s.Pitches()
	p[0] = pitch.B
	assert.Equal(t, pitch.C, s.Degree(1))
}

func TestPatternByName(t *testing.T) {
	p, err := PatternByName("Mixolydian")
	require.NoError(t, err)
	assert.Equal(t, Mixolydian, p)
	assert.Equal(t, 4, p.Rotation())

	p, err = PatternByName("minor")
	require.NoError(t, err)
	assert.Equal(t, Aeolian, p)

	_, err = PatternByName("bebop")
	assert.ErrorIs(t, err, ErrUnknownMode)
}

func TestPatternLabels(t *testing.T) {
	assert := assert.New(t)
	assert.True(Lydian.HasMajorThird())
	assert.False(Dorian.HasMajorThird())
	assert.Equal(" dor", Dorian.Abbreviation())
	assert.Equal("m", Aeolian.Abbreviation())
	assert.Equal("Locrian", Locrian.Title())
}
