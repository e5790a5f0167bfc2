package chord

// Quality is the triad quality underneath a chord, which decides the case
// and marker of its roman numeral.
type Quality int

const (
	QualityMajor Quality = iota
	QualityMinor
	QualityDiminished
	QualityAugmented
)

func (q Quality) String() string {
	switch q {
	case QualityMajor:
		return "major"
	case QualityMinor:
		return "minor"
	case QualityDiminished:
		return "diminished"
	case QualityAugmented:
		return "augmented"
	default:
		return "unknown"
	}
}

// Pattern is a chord template: semitone offsets from the root.
type Pattern struct {
	Name    string
	Suffix  string
	Quality Quality
	Offsets []int
}

var (
	MajorTriad            = Pattern{Name: "major", Suffix: "", Quality: QualityMajor, Offsets: []int{0, 4, 7}}
	MinorTriad            = Pattern{Name: "minor", Suffix: "m", Quality: QualityMinor, Offsets: []int{0, 3, 7}}
	DiminishedTriad       = Pattern{Name: "diminished", Suffix: "dim", Quality: QualityDiminished, Offsets: []int{0, 3, 6}}
	AugmentedTriad        = Pattern{Name: "augmented", Suffix: "aug", Quality: QualityAugmented, Offsets: []int{0, 4, 8}}
	DominantSeventh       = Pattern{Name: "dominant7", Suffix: "7", Quality: QualityMajor, Offsets: []int{0, 4, 7, 10}}
	MajorSeventh          = Pattern{Name: "major7", Suffix: "maj7", Quality: QualityMajor, Offsets: []int{0, 4, 7, 11}}
	MinorSeventh          = Pattern{Name: "minor7", Suffix: "m7", Quality: QualityMinor, Offsets: []int{0, 3, 7, 10}}
	HalfDiminishedSeventh = Pattern{Name: "halfdiminished7", Suffix: "m7b5", Quality: QualityDiminished, Offsets: []int{0, 3, 6, 10}}
	DiminishedSeventh     = Pattern{Name: "diminished7", Suffix: "dim7", Quality: QualityDiminished, Offsets: []int{0, 3, 6, 9}}
)

// Patterns is the catalog used for parsing and identification, triads first.
var Patterns = []Pattern{
	MajorTriad,
	MinorTriad,
	DiminishedTriad,
	AugmentedTriad,
	DominantSeventh,
	MajorSeventh,
	MinorSeventh,
	HalfDiminishedSeventh,
	DiminishedSeventh,
}

var suffixAliases = map[string]string{
	"maj":  "",
	"M":    "",
	"min":  "m",
	"-":    "m",
	"°":    "dim",
	"o":    "dim",
	"+":    "aug",
	"M7":   "maj7",
	"Δ7":   "maj7",
	"min7": "m7",
	"-7":   "m7",
	"ø":    "m7b5",
	"ø7":   "m7b5",
	"°7":   "dim7",
	"o7":   "dim7",
}

func (p Pattern) IsSeventh() bool {
	return len(p.Offsets) == 4
}

func (p Pattern) Equal(other Pattern) bool {
	if p.Name != other.Name || len(p.Offsets) != len(other.Offsets) {
		return false
	}
	for i := range p.Offsets {
		if p.Offsets[i] != other.Offsets[i] {
			return false
		}
	}
	return true
}

// PatternBySuffix finds the pattern for a chord-symbol suffix like "m7".
func PatternBySuffix(suffix string) (Pattern, bool) {
	if alias, ok := suffixAliases[suffix]; ok {
		suffix = alias
	}
	for _, p := range Patterns {
		if p.Suffix == suffix {
			return p, true
		}
	}
	return Pattern{}, false
}

// TriadFor returns the triad pattern for a quality.
func TriadFor(q Quality) Pattern {
	switch q {
	case QualityMinor:
		return MinorTriad
	case QualityDiminished:
		return DiminishedTriad
	case QualityAugmented:
		return AugmentedTriad
	default:
		return MajorTriad
	}
}
