package constants

const SemitonesPerOctave = 12

const DegreesPerScale = 7

// C4 sits at octave 4, MIDI 60
const DefaultOctave = 4

const MinOctave = 0
const MaxOctave = 8

// Roots at circle positions 8 and up (G#, D#, A#, F) are voiced an
// octave lower so chords built around the wheel stay near middle C.
const LowOctavePositionThreshold = 8
const LowOctave = 3

// relative minor sits a minor third below its relative major
const RelativeMinorOffset = 3

const DefaultSegmentCount = 12

// NOTE: -105 puts the middle of segment 0 at 12 o'clock once half of a
// 30 degree segment is added back (-105 + 15 = -90, y grows downward)
const AngleOffsetDegrees = -105.0

const DefaultVelocity = 90
const DefaultTempo = 100.0
