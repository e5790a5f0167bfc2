package key

import (
	"github.com/jsphweid/keywheel/model"
	"github.com/jsphweid/keywheel/pitch"
	"github.com/jsphweid/keywheel/scale"
)

// Modal is a center paired with one of the seven diatonic modes.
type Modal struct {
	tonality
	mode scale.Pattern
}

func NewModal(pc pitch.PitchClass, mode scale.Pattern) Modal {
	return Modal{tonality: newTonality(pc, mode), mode: mode}
}

// ParseModal reads a center spelling and mode name, e.g. ("D", "dorian").
func ParseModal(center, mode string) (Modal, error) {
	pc, err := pitch.ParsePitchClass(center)
	if err != nil {
		return Modal{}, err
	}
	pattern, err := scale.PatternByName(mode)
	if err != nil {
		return Modal{}, err
	}
	return NewModal(pc, pattern), nil
}

func (m Modal) Mode() scale.Pattern {
	return m.mode
}

// IsMajor reports a major third above the center.
func (m Modal) IsMajor() bool {
	return m.mode.HasMajorThird()
}

// ParentKey is the major key sharing this mode's notes.
func (m Modal) ParentKey() Key {
	return Major(m.parentMajor())
}

func (m Modal) withCenter(pc pitch.PitchClass) Modal {
	return NewModal(pc, m.mode)
}

func (m Modal) SubdominantKey() Modal {
	return m.withCenter(m.center.Transpose(pitch.PerfectFourth.Semitones()))
}

func (m Modal) DominantKey() Modal {
	return m.withCenter(m.center.Transpose(pitch.PerfectFifth.Semitones()))
}

func (m Modal) ShortName() string {
	return m.center.NameFor(m) + m.mode.Abbreviation()
}

func (m Modal) ContextName() string {
	return m.center.NameFor(m) + " " + m.mode.Title()
}

func (m Modal) ColorKey() string {
	return colorKey(m.center, m, m.mode.Name)
}

func (m Modal) ToDTO() model.KeyDTO {
	return model.KeyDTO{
		ShortName:   m.ShortName(),
		ContextName: m.ContextName(),
		FifthsIndex: m.FifthsIndex(),
		IsMajor:     m.IsMajor(),
		Type:        model.ContextTypeModal,
	}
}

func (m Modal) Equal(other Modal) bool {
	return m.center == other.center && m.mode.Offsets == other.mode.Offsets
}

func (m Modal) String() string {
	return m.ContextName()
}
