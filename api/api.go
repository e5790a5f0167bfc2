// Package api serves the wheel, key and analysis records over HTTP.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"github.com/jsphweid/keywheel/chord"
	"github.com/jsphweid/keywheel/config"
	"github.com/jsphweid/keywheel/key"
	"github.com/jsphweid/keywheel/model"
	"github.com/jsphweid/keywheel/pitch"
	"github.com/jsphweid/keywheel/scale"
	"github.com/jsphweid/keywheel/segment"
	"github.com/rs/cors"
)

var ErrBadRequest = errors.New("bad request")

type Server struct {
	wheel  config.WheelConfig
	logger *slog.Logger
}

func NewServer(wheel config.WheelConfig, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{wheel: wheel, logger: logger}
}

func (s *Server) Router() *mux.Router {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/circle", s.handleCircle).Methods(http.MethodGet)
	router.HandleFunc("/chromatic", s.handleChromatic).Methods(http.MethodGet)
	router.HandleFunc("/keys/{fifths}/{quality}", s.handleKey).Methods(http.MethodGet)
	router.HandleFunc("/modes/{pitch}/{mode}", s.handleMode).Methods(http.MethodGet)
	router.HandleFunc("/paths/{position}", s.handlePaths).Methods(http.MethodGet)
	router.HandleFunc("/analyze", s.handleAnalyze).Methods(http.MethodPost)
	return router
}

// Handler is the router behind CORS for the given origins.
func (s *Server) Handler(allowedOrigins []string) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
	})
	return c.Handler(s.Router())
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encoding response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, ErrBadRequest),
		errors.Is(err, pitch.ErrInvalidPitchName),
		errors.Is(err, pitch.ErrInvalidOctave),
		errors.Is(err, pitch.ErrInvalidNoteName),
		errors.Is(err, chord.ErrInvalidChordName),
		errors.Is(err, scale.ErrUnknownMode):
		status = http.StatusBadRequest
	}
	s.logger.Warn("request failed", "path", r.URL.Path, "status", status, "error", err)
	s.writeJSON(w, status, model.ErrorResponse{Error: err.Error()})
}

func intVar(r *http.Request, name string) (int, error) {
	raw := mux.Vars(r)[name]
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %v must be an integer, got %q", ErrBadRequest, name, raw)
	}
	return n, nil
}

func (s *Server) handleCircle(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, segment.BuildCircleSegments())
}

// handleChromatic spells with sharps unless ?flats=true.
func (s *Server) handleChromatic(w http.ResponseWriter, r *http.Request) {
	useFlats := false
	if raw := r.URL.Query().Get("flats"); raw != "" {
		b, err := strconv.ParseBool(raw)
		if err != nil {
			s.writeError(w, r, fmt.Errorf("%w: flats must be a boolean", ErrBadRequest))
			return
		}
		useFlats = b
	}
	s.writeJSON(w, http.StatusOK, segment.BuildChromaticSegments(pitch.Flats(useFlats)))
}

func (s *Server) handleKey(w http.ResponseWriter, r *http.Request) {
	fifths, err := intVar(r, "fifths")
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	var k key.Key
	switch strings.ToLower(mux.Vars(r)["quality"]) {
	case "major":
		k = key.FromCircleOfFifths(fifths, true)
	case "minor":
		k = key.FromCircleOfFifths(fifths, false)
	default:
		s.writeError(w, r, fmt.Errorf("%w: quality must be major or minor", ErrBadRequest))
		return
	}
	s.writeJSON(w, http.StatusOK, segment.BuildContext(k))
}

func (s *Server) handleMode(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	m, err := key.ParseModal(vars["pitch"], vars["mode"])
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, segment.BuildContext(m))
}

// handlePaths draws one wheel position. ?segments= overrides the
// configured segment count.
func (s *Server) handlePaths(w http.ResponseWriter, r *http.Request) {
	position, err := intVar(r, "position")
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	count := s.wheel.SegmentCount
	if raw := r.URL.Query().Get("segments"); raw != "" {
		count, err = strconv.Atoi(raw)
		if err != nil {
			s.writeError(w, r, fmt.Errorf("%w: segments must be an integer", ErrBadRequest))
			return
		}
	}
	s.writeJSON(w, http.StatusOK, segment.BuildWheelPosition(position, s.wheel.Radii, count))
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var input model.AnalyzeRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		s.writeError(w, r, fmt.Errorf("%w: could not decode body: %v", ErrBadRequest, err))
		return
	}

	res, err := Analyze(input)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, res)
}

// Analyze names and analyzes chord symbols in the context picked by the
// request: the key at fifthsIndex, or when mode is set, that mode on the
// key's tonic.
func Analyze(input model.AnalyzeRequestBody) (model.AnalyzeResponse, error) {
	k := key.FromCircleOfFifths(input.FifthsIndex, input.IsMajor)
	var ctx key.Context = k
	if input.Mode != "" {
		var err error
		ctx, err = ContextFor(k.Center(), input.Mode)
		if err != nil {
			return model.AnalyzeResponse{}, err
		}
	}

	chords := make([]chord.Chord, 0, len(input.Chords))
	for _, symbol := range input.Chords {
		c, err := chord.Parse(symbol)
		if err != nil {
			return model.AnalyzeResponse{}, err
		}
		chords = append(chords, c)
	}

	return model.AnalyzeResponse{
		Key:    ctx.ToDTO(),
		Chords: segment.BuildChords(ctx, chords),
	}, nil
}
