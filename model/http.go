package model

type AnalyzeRequestBody struct {
	FifthsIndex int      `json:"fifthsIndex"`
	IsMajor     bool     `json:"isMajor"`
	Mode        string   `json:"mode"`
	Chords      []string `json:"chords"`
}

type AnalyzeResponse struct {
	Key    KeyDTO     `json:"key"`
	Chords []ChordDTO `json:"chords"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
