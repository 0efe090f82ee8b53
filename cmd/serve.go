package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jsphweid/fretwise/chord"
	"github.com/jsphweid/fretwise/config"
	"github.com/jsphweid/fretwise/constants"
	"github.com/jsphweid/fretwise/fretboard"
	"github.com/jsphweid/fretwise/harmony"
	"github.com/jsphweid/fretwise/model"
	"github.com/jsphweid/fretwise/pitch"
	"github.com/jsphweid/fretwise/scale"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

var servePort int

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "port to listen on (overrides FRETWISE_PORT)")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the analysis HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if servePort != 0 {
			cfg.Port = servePort
		}
		return serve(cfg)
	},
}

func serve(cfg config.Config) error {
	router := newRouter(harmony.NewEngine(), cfg)
	handler := cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST"},
	}).Handler(router)

	addr := fmt.Sprintf(":%d", cfg.Port)
	log.Printf("listening on %s", addr)
	return http.ListenAndServe(addr, handler)
}

type server struct {
	engine *harmony.Engine
	cfg    config.Config
}

func newRouter(engine *harmony.Engine, cfg config.Config) *mux.Router {
	s := &server{engine: engine, cfg: cfg}

	router := mux.NewRouter().StrictSlash(true)
	router.Use(requestID)
	router.HandleFunc("/api/analyzer", s.handleAnalyzer).Methods("GET")
	router.HandleFunc("/api/chords", s.handleChord).Methods("GET")
	router.HandleFunc("/api/chords/inversions", s.handleInversions).Methods("GET")
	router.HandleFunc("/api/chords/voicings", s.handleVoicings).Methods("GET")
	router.HandleFunc("/api/chords/for-scale", s.handleChordsForScale).Methods("GET")
	router.HandleFunc("/api/scales", s.handleScale).Methods("GET")
	router.HandleFunc("/api/scales/for-chord", s.handleScalesForChord).Methods("GET")
	router.HandleFunc("/api/compatibility", s.handleCompatibility).Methods("GET")
	router.HandleFunc("/api/realtime/chord-detect", s.handleChordDetect).Methods("POST")
	router.HandleFunc("/api/realtime/scale-suggest", s.handleScaleSuggest).Methods("POST")
	return router
}

// requestID tags every response so client reports can be matched to logs.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-Id", id)
		log.Printf("%s %s %s", id, r.Method, r.URL.Path)
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeErr(w http.ResponseWriter, err error) {
	writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Detail: err.Error()})
}

func (s *server) chordFromQuery(r *http.Request, rootParam, qualityParam string) (chord.Chord, error) {
	root, err := pitch.Parse(r.URL.Query().Get(rootParam))
	if err != nil {
		return chord.Chord{}, err
	}
	quality := r.URL.Query().Get(qualityParam)
	if quality == "" {
		quality = "maj"
	}
	return chord.New(root, quality)
}

func (s *server) scaleFromQuery(r *http.Request, rootParam, typeParam string) (scale.Scale, error) {
	root, err := pitch.Parse(r.URL.Query().Get(rootParam))
	if err != nil {
		return scale.Scale{}, err
	}
	typeID := r.URL.Query().Get(typeParam)
	if typeID == "" {
		typeID = "major"
	}
	return scale.New(root, typeID)
}

func (s *server) handleAnalyzer(w http.ResponseWriter, r *http.Request) {
	input := r.URL.Query().Get("input")
	res, err := s.engine.Classify(input)
	if err != nil {
		writeErr(w, err)
		return
	}
	resp := model.AnalyzerResponse{Input: input, Kind: res.Kind}
	switch res.Kind {
	case harmony.KindChord:
		c := model.NewChord(res.Chord)
		resp.Chord = &c
		resp.ScaleSuggestions = model.NewScaleSuggestions(s.engine.CompatibleScales(res.Chord))
	case harmony.KindScale:
		sc := model.NewScale(res.Scale)
		resp.Scale = &sc
		diatonic := model.NewChordsForScale(res.Scale, s.engine.CompatibleChords(res.Scale))
		resp.DiatonicChords = &diatonic
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *server) handleChord(w http.ResponseWriter, r *http.Request) {
	c, err := s.chordFromQuery(r, "root", "quality")
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, model.NewChord(c))
}

func (s *server) handleInversions(w http.ResponseWriter, r *http.Request) {
	c, err := s.chordFromQuery(r, "root", "quality")
	if err != nil {
		writeErr(w, err)
		return
	}
	resp := model.InversionsResponse{Chord: model.NewChord(c)}
	for _, inv := range c.AllInversions() {
		resp.Inversions = append(resp.Inversions, model.NewChord(inv))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *server) handleVoicings(w http.ResponseWriter, r *http.Request) {
	c, err := s.chordFromQuery(r, "root", "quality")
	if err != nil {
		writeErr(w, err)
		return
	}
	maxFret := s.cfg.MaxFret
	if maxFret == 0 {
		maxFret = constants.DefaultMaxFret
	}
	if raw := r.URL.Query().Get("max_fret"); raw != "" {
		maxFret, err = strconv.Atoi(raw)
		if err != nil {
			writeErr(w, errors.New("max_fret must be an integer"))
			return
		}
	}
	resp := model.VoicingsResponse{Chord: model.NewChord(c)}
	for _, v := range fretboard.AllVoicings(c, maxFret) {
		resp.Voicings = append(resp.Voicings, model.NewVoicing(v))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *server) handleScale(w http.ResponseWriter, r *http.Request) {
	sc, err := s.scaleFromQuery(r, "root", "type")
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, model.NewChordsForScale(sc, s.engine.CompatibleChords(sc)))
}

func (s *server) handleCompatibility(w http.ResponseWriter, r *http.Request) {
	c, err := s.chordFromQuery(r, "chord_root", "chord_quality")
	if err != nil {
		writeErr(w, err)
		return
	}
	sc, err := s.scaleFromQuery(r, "scale_root", "scale_type")
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, model.Compatibility{
		Chord: model.NewChord(c),
		Scale: model.NewScale(sc),
		Tonal: s.engine.TonalCompatibility(c, sc),
		Modal: s.engine.ModalCompatibility(c, sc),
	})
}

func (s *server) handleScalesForChord(w http.ResponseWriter, r *http.Request) {
	c, err := s.chordFromQuery(r, "root", "quality")
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, model.NewScaleSuggestions(s.engine.CompatibleScales(c)))
}

func (s *server) handleChordsForScale(w http.ResponseWriter, r *http.Request) {
	sc, err := s.scaleFromQuery(r, "root", "type")
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, model.NewChordsForScale(sc, s.engine.CompatibleChords(sc)))
}

func (s *server) handleChordDetect(w http.ResponseWriter, r *http.Request) {
	var req model.RealtimeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, errors.New("body must be JSON with a notes array"))
		return
	}
	det := s.engine.DetectChord(req.Notes)
	resp := model.DetectResponse{Detected: det.Detected, Inversion: det.Inversion}
	if det.Detected {
		c := model.NewChord(det.Chord)
		resp.Chord = &c
		resp.Bass = det.Bass.String()
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *server) handleScaleSuggest(w http.ResponseWriter, r *http.Request) {
	var req model.RealtimeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, errors.New("body must be JSON with a notes array"))
		return
	}
	writeJSON(w, http.StatusOK, model.SuggestResponse{
		Suggestions: model.NewScaleSuggestions(s.engine.SuggestScales(req.Notes)),
	})
}
