package model

const (
	ContextTypeKey   = "key"
	ContextTypeModal = "modal"
)

type KeyDTO struct {
	ShortName   string `json:"shortName"`
	ContextName string `json:"contextName"`
	FifthsIndex int    `json:"fifthsIndex"`
	IsMajor     bool   `json:"isMajor"`
	Type        string `json:"type"`
}

type CircleSegmentDTO struct {
	Position     int    `json:"position"`
	MajorKey     KeyDTO `json:"majorKey"`
	MinorKey     KeyDTO `json:"minorKey"`
	KeySignature string `json:"keySignature"`
}

type ChromaticSegmentDTO struct {
	Position       int    `json:"position"`
	PitchClassName string `json:"pitchClassName"`
}

type AnalysisDTO struct {
	RomanNumeral string `json:"romanNumeral"`
	ScaleDegree  int    `json:"scaleDegree"`
	Function     string `json:"function"`
}

type ChordDTO struct {
	Name     string       `json:"name"`
	Tones    []string     `json:"tones"`
	Position int          `json:"position"`
	Analysis *AnalysisDTO `json:"analysis"`
}

// ContextDTO is a key or mode with everything a detail panel shows.
type ContextDTO struct {
	Key      KeyDTO     `json:"key"`
	ColorKey string     `json:"colorKey"`
	Scale    []string   `json:"scale"`
	Chords   []ChordDTO `json:"chords"`
	Sevenths []ChordDTO `json:"sevenths"`
}

// LayerPathsDTO holds one ring-segment path per layer at a position.
type LayerPathsDTO struct {
	Position int      `json:"position"`
	Paths    []string `json:"paths"`
	LabelX   float64  `json:"labelX"`
	LabelY   float64  `json:"labelY"`
}

// WheelDTO is everything drawn at one wheel position. Segment is only set
// on a 12-segment wheel, where positions are circle-of-fifths positions.
type WheelDTO struct {
	Segment *CircleSegmentDTO `json:"segment,omitempty"`
	Layers  LayerPathsDTO     `json:"layers"`
}
