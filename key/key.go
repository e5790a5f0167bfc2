package key

import (
	"github.com/jsphweid/keywheel/model"
	"github.com/jsphweid/keywheel/pitch"
	"github.com/jsphweid/keywheel/scale"
)

// Key is a major or natural-minor tonal center.
type Key struct {
	tonality
	minor bool
}

func Major(pc pitch.PitchClass) Key {
	return Key{tonality: newTonality(pc, scale.Major)}
}

func Minor(pc pitch.PitchClass) Key {
	return Key{tonality: newTonality(pc, scale.NaturalMinor), minor: true}
}

// FromCircleOfFifths builds the major or minor key drawn at a circle
// position. The minor key at a position is the relative minor of the
// major key there.
func FromCircleOfFifths(fifthsIndex int, isMajor bool) Key {
	center := pitch.TonicAtPosition(fifthsIndex, !isMajor)
	if isMajor {
		return Major(center)
	}
	return Minor(center)
}

func (k Key) IsMajor() bool {
	return !k.minor
}

func (k Key) IsMinor() bool {
	return k.minor
}

// FifthsIndex is the circle position the key is drawn at. Minor keys
// share the position of their relative major.
func (k Key) FifthsIndex() int {
	return pitch.CirclePosition(k.center, k.minor)
}

func (k Key) Signature() int {
	return Major(k.RelativeMajorTonic()).tonality.Signature()
}

func (k Key) PrefersFlats() bool {
	return k.Signature() < 0
}

// RelativeMajorTonic is the center itself for a major key, a minor third
// up for a minor key.
func (k Key) RelativeMajorTonic() pitch.PitchClass {
	if k.minor {
		return pitch.RelativeMajor(k.center)
	}
	return k.center
}

func (k Key) RelativeKey() Key {
	if k.minor {
		return Major(pitch.RelativeMajor(k.center))
	}
	return Minor(pitch.RelativeMinor(k.center))
}

// ParallelKey keeps the center and flips the quality.
func (k Key) ParallelKey() Key {
	if k.minor {
		return Major(k.center)
	}
	return Minor(k.center)
}

func (k Key) withCenter(pc pitch.PitchClass) Key {
	if k.minor {
		return Minor(pc)
	}
	return Major(pc)
}

// SubdominantKey is a perfect fourth up, one step counter-clockwise.
func (k Key) SubdominantKey() Key {
	return k.withCenter(k.center.Transpose(pitch.PerfectFourth.Semitones()))
}

// DominantKey is a perfect fifth up, one step clockwise.
func (k Key) DominantKey() Key {
	return k.withCenter(k.center.Transpose(pitch.PerfectFifth.Semitones()))
}

func (k Key) ShortName() string {
	if k.minor {
		return k.center.NameFor(k) + "m"
	}
	return k.center.NameFor(k)
}

func (k Key) ContextName() string {
	if k.minor {
		return k.center.NameFor(k) + " minor"
	}
	return k.center.NameFor(k) + " major"
}

func (k Key) ColorKey() string {
	return colorKey(k.center, k, k.ModeName())
}

func (k Key) ToDTO() model.KeyDTO {
	return model.KeyDTO{
		ShortName:   k.ShortName(),
		ContextName: k.ContextName(),
		FifthsIndex: k.FifthsIndex(),
		IsMajor:     k.IsMajor(),
		Type:        model.ContextTypeKey,
	}
}

func (k Key) Equal(other Key) bool {
	return k.minor == other.minor && k.center == other.center
}

func (k Key) String() string {
	return k.ContextName()
}
