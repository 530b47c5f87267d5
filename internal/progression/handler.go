package progression

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/gzclptracker/internal/telemetry/tracing"
	"github.com/2beens/gzclptracker/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=progression_test

type ledgerRepo interface {
	States(ctx context.Context) (map[string]State, error)
	GetState(ctx context.Context, progressionKey string) (*State, error)
	OverrideWeight(ctx context.Context, progressionKey string, weightKg float64) (*State, error)
	History(ctx context.Context, progressionKey string) ([]HistoryEntry, error)
	ProgramState(ctx context.Context) (*ProgramState, error)
}

type Handler struct {
	repo ledgerRepo
}

func NewHandler(repo ledgerRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/progression", handler.HandleStates).Methods("GET", "OPTIONS").Name("get-progression")
	r.HandleFunc("/progression/{key}/history", handler.HandleHistory).Methods("GET", "OPTIONS").Name("get-history")
	r.HandleFunc("/progression/{key}/weight", handler.HandleOverrideWeight).Methods("PUT", "OPTIONS").Name("override-weight")
	r.HandleFunc("/program/state", handler.HandleProgramState).Methods("GET", "OPTIONS").Name("get-program-state")
}

func (handler *Handler) HandleStates(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progression.states")
	defer span.End()

	states, err := handler.repo.States(ctx)
	if err != nil {
		log.Errorf("failed to get progression states: %s", err)
		http.Error(w, "failed to get progression", http.StatusInternalServerError)
		return
	}

	statesJson, err := json.Marshal(states)
	if err != nil {
		log.Errorf("failed to marshal progression states: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, statesJson, http.StatusOK)
}

func (handler *Handler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progression.history")
	defer span.End()

	key := mux.Vars(r)["key"]
	if key == "" {
		http.Error(w, "error, progression key empty", http.StatusBadRequest)
		return
	}

	entries, err := handler.repo.History(ctx, key)
	if err != nil {
		log.Errorf("failed to get history for %s: %s", key, err)
		http.Error(w, "failed to get history", http.StatusInternalServerError)
		return
	}

	entriesJson, err := json.Marshal(entries)
	if err != nil {
		log.Errorf("failed to marshal history: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, entriesJson, http.StatusOK)
}

type overrideWeightRequest struct {
	WeightKg float64 `json:"weightKg"`
}

func (handler *Handler) HandleOverrideWeight(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progression.overrideWeight")
	defer span.End()

	key := mux.Vars(r)["key"]
	if key == "" {
		http.Error(w, "error, progression key empty", http.StatusBadRequest)
		return
	}

	var req overrideWeightRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("override weight, unmarshal json params: %s", err)
		http.Error(w, "override weight failed", http.StatusBadRequest)
		return
	}
	if req.WeightKg < 0 {
		http.Error(w, "error, weight must not be negative", http.StatusBadRequest)
		return
	}

	state, err := handler.repo.OverrideWeight(ctx, key, req.WeightKg)
	if errors.Is(err, ErrStateNotFound) {
		http.Error(w, "progression state not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("failed to override weight for %s: %s", key, err)
		http.Error(w, "failed to override weight", http.StatusInternalServerError)
		return
	}

	stateJson, err := json.Marshal(state)
	if err != nil {
		log.Errorf("failed to marshal state: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	log.Debugf("progression %s weight manually set to %.2fkg", key, req.WeightKg)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, stateJson, http.StatusOK)
}

func (handler *Handler) HandleProgramState(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progression.programState")
	defer span.End()

	programState, err := handler.repo.ProgramState(ctx)
	if err != nil {
		log.Errorf("failed to get program state: %s", err)
		http.Error(w, "failed to get program state", http.StatusInternalServerError)
		return
	}

	programStateJson, err := json.Marshal(programState)
	if err != nil {
		log.Errorf("failed to marshal program state: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, programStateJson, http.StatusOK)
}
