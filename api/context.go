package api

import (
	"strings"

	"github.com/jsphweid/keywheel/key"
	"github.com/jsphweid/keywheel/pitch"
	"github.com/jsphweid/keywheel/scale"
)

// ContextFor builds a key for "major"/"minor" (or an empty mode) and a
// modal context for any other mode name.
func ContextFor(center pitch.PitchClass, mode string) (key.Context, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", "major":
		return key.Major(center), nil
	case "minor":
		return key.Minor(center), nil
	}
	pattern, err := scale.PatternByName(mode)
	if err != nil {
		return nil, err
	}
	return key.NewModal(center, pattern), nil
}

// ParseContext is ContextFor with a spelled center, e.g. ("Bb", "lydian").
func ParseContext(center, mode string) (key.Context, error) {
	pc, err := pitch.ParsePitchClass(center)
	if err != nil {
		return nil, err
	}
	return ContextFor(pc, mode)
}
