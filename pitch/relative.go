package pitch

import "github.com/jsphweid/keywheel/constants"

// Relative moves between a major tonic and its relative minor tonic. The
// minor sits a minor third below, so toMinor shifts by -3 and the reverse
// by +3. Every relative-key computation goes through here.
func Relative(pc PitchClass, toMinor bool) PitchClass {
	return pc.Transpose(relativeShift(toMinor))
}

// RelativeNote is Relative for a voiced note, keeping the register
// (C4 -> A3, A3 -> C4). It fails when the shift leaves octaves 0-8.
func RelativeNote(n Note, toMinor bool) (Note, error) {
	return n.Transpose(relativeShift(toMinor))
}

func RelativeMinor(pc PitchClass) PitchClass {
	return Relative(pc, true)
}

func RelativeMajor(pc PitchClass) PitchClass {
	return Relative(pc, false)
}

// CirclePosition is where a tonic sits on the circle of fifths. Minor
// tonics share the position of their relative major.
func CirclePosition(tonic PitchClass, isMinor bool) int {
	if isMinor {
		return RelativeMajor(tonic).FifthsIndex()
	}
	return tonic.FifthsIndex()
}

// TonicAtPosition is the inverse of CirclePosition.
func TonicAtPosition(position int, isMinor bool) PitchClass {
	major := FromFifthsIndex(position)
	if isMinor {
		return RelativeMinor(major)
	}
	return major
}

func relativeShift(toMinor bool) int {
	if toMinor {
		return -constants.RelativeMinorOffset
	}
	return constants.RelativeMinorOffset
}
