// Package api exposes the farm over HTTP: read-only observation of the
// aggregate, the manual action surface and the free-text command endpoint.
// Rendering and speech stay with the caller; this layer only moves state
// and strings.
package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/appengine-ltd/farm-twin/internal/farm"
	"github.com/appengine-ltd/farm-twin/internal/intent"
)

type Persister interface {
	Save(farm.Snapshot) error
}

// Server holds the wired dependencies for the HTTP surface.
type Server struct {
	farm   *farm.Farm
	market farm.MarketTable
	store  Persister // nil disables persistence
	logger *slog.Logger
}

func NewServer(f *farm.Farm, store Persister, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		farm:   f,
		market: farm.DefaultMarket(),
		store:  store,
		logger: logger,
	}
}

// Routes wires middlewares and endpoints.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:5173", "http://127.0.0.1:5173", "http://localhost:3000"},
		AllowedMethods: []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Route("/api/v1", func(api chi.Router) {
		api.Get("/state", s.handleState)
		api.Get("/log", s.handleLog)
		api.Get("/market", s.handleMarket)
		api.Get("/financials", s.handleFinancials)
		api.Get("/projection", s.handleProjection)

		api.Post("/actions", s.handleAction)
		api.Post("/command", s.handleCommand)
		api.Post("/toggle", s.handleToggle)
		api.Post("/reset", s.handleReset)
		api.Put("/config", s.handleConfig)
	})

	return r
}

type stateResponse struct {
	Config  farm.FieldConfig `json:"config"`
	State   farm.SimState    `json:"state"`
	Effects farm.EffectFlags `json:"effects"`
}

func (s *Server) handleState(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, stateResponse{
		Config:  s.farm.Config(),
		State:   s.farm.State(),
		Effects: s.farm.Effects(),
	})
}

func (s *Server) handleLog(w http.ResponseWriter, _ *http.Request) {
	entries := s.farm.Log()
	if entries == nil {
		entries = []farm.LogEntry{}
	}
	writeJSON(w, http.StatusOK, entries)
}

func (s *Server) handleMarket(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.market)
}

func (s *Server) handleFinancials(w http.ResponseWriter, r *http.Request) {
	yieldQuintals, err := strconv.ParseFloat(r.URL.Query().Get("yield"), 64)
	if err != nil || yieldQuintals < 0 {
		writeError(w, http.StatusBadRequest, "yield must be a non-negative number")
		return
	}
	cfg := s.farm.Config()
	writeJSON(w, http.StatusOK, farm.ComputeFinancials(yieldQuintals, cfg.Crop, cfg.Area, s.market))
}

func (s *Server) handleProjection(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.farm.ProjectYield())
}

type actionRequest struct {
	Action farm.Action `json:"action"`
}

func (s *Server) handleAction(w http.ResponseWriter, r *http.Request) {
	var req actionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	result := s.farm.PerformAction(req.Action)
	s.persist()
	writeJSON(w, http.StatusOK, result)
}

type commandRequest struct {
	Text string `json:"text"`
}

type commandResponse struct {
	Intent   intent.Intent      `json:"intent"`
	Lang     intent.Language    `json:"lang"`
	Response string             `json:"response"`
	Result   *farm.ActionResult `json:"result,omitempty"`
}

// handleCommand runs the classifier and, for recognised intents,
// dispatches the matching action. Unknown degrades to the apology with no
// state change.
func (s *Server) handleCommand(w http.ResponseWriter, r *http.Request) {
	var req commandRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	res := intent.Classify(req.Text)
	resp := commandResponse{
		Intent:   res.Intent,
		Lang:     res.Lang,
		Response: intent.Respond(res.Intent, res.Lang),
	}

	if action, ok := actionForIntent(res.Intent); ok {
		result := s.farm.PerformAction(action)
		resp.Result = &result
		s.persist()
	}
	s.logger.Info("command classified", "intent", res.Intent, "lang", res.Lang)
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleToggle(w http.ResponseWriter, _ *http.Request) {
	running := s.farm.ToggleRunning()
	s.persist()
	writeJSON(w, http.StatusOK, map[string]bool{"running": running})
}

func (s *Server) handleReset(w http.ResponseWriter, _ *http.Request) {
	s.farm.Reset()
	s.persist()
	writeJSON(w, http.StatusOK, s.farm.State())
}

type configRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

func (s *Server) handleConfig(w http.ResponseWriter, r *http.Request) {
	var req configRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := s.farm.UpdateConfig(req.Field, req.Value); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	s.persist()
	writeJSON(w, http.StatusOK, s.farm.Config())
}

// actionForIntent maps classifier intents onto simulation actions. The
// identifiers line up on purpose; Unknown is the only non-action.
func actionForIntent(in intent.Intent) (farm.Action, bool) {
	if in == intent.Unknown {
		return "", false
	}
	return farm.Action(in), true
}

func (s *Server) persist() {
	if s.store == nil {
		return
	}
	if err := s.store.Save(s.farm.Snapshot()); err != nil {
		s.logger.Error("snapshot persist failed", "error", err)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
