package reconcile

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/gzclptracker/internal/program"
	"github.com/2beens/gzclptracker/internal/progression"
	"github.com/2beens/gzclptracker/internal/telemetry/tracing"
	"github.com/2beens/gzclptracker/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=reconcile_test

type syncer interface {
	Sync(ctx context.Context) (*SyncResult, error)
	Status(ctx context.Context) (*SyncStatus, error)
	LastDiscrepancies() []Discrepancy
}

type discrepancyResolver interface {
	OverrideWeight(ctx context.Context, progressionKey string, weightKg float64) (*progression.State, error)
	AcknowledgeDiscrepancy(ctx context.Context, ack progression.AcknowledgedDiscrepancy) error
}

type Handler struct {
	syncer   syncer
	resolver discrepancyResolver
}

func NewHandler(syncer syncer, resolver discrepancyResolver) *Handler {
	return &Handler{
		syncer:   syncer,
		resolver: resolver,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/sync", handler.HandleSync).Methods("POST", "OPTIONS").Name("sync")
	r.HandleFunc("/sync/status", handler.HandleStatus).Methods("GET", "OPTIONS").Name("sync-status")
	r.HandleFunc("/discrepancies", handler.HandleDiscrepancies).Methods("GET", "OPTIONS").Name("get-discrepancies")
	r.HandleFunc("/discrepancies/resolve", handler.HandleResolve).Methods("POST", "OPTIONS").Name("resolve-discrepancy")
}

func (handler *Handler) HandleSync(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sync")
	defer span.End()

	result, err := handler.syncer.Sync(ctx)
	if err != nil {
		log.Errorf("sync failed: %s", err)
		http.Error(w, "sync failed", http.StatusInternalServerError)
		return
	}

	resultJson, err := json.Marshal(result)
	if err != nil {
		log.Errorf("failed to marshal sync result: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, resultJson, http.StatusOK)
}

func (handler *Handler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sync.status")
	defer span.End()

	status, err := handler.syncer.Status(ctx)
	if err != nil {
		log.Errorf("failed to get sync status: %s", err)
		http.Error(w, "failed to get sync status", http.StatusInternalServerError)
		return
	}

	statusJson, err := json.Marshal(status)
	if err != nil {
		log.Errorf("failed to marshal sync status: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, statusJson, http.StatusOK)
}

func (handler *Handler) HandleDiscrepancies(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.discrepancies")
	defer span.End()

	discrepancies := handler.syncer.LastDiscrepancies()

	discrepanciesJson, err := json.Marshal(discrepancies)
	if err != nil {
		log.Errorf("failed to marshal discrepancies: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, discrepanciesJson, http.StatusOK)
}

const (
	// resolveActionAccept adopts the logged weight as the tracked weight.
	resolveActionAccept = "accept"
	// resolveActionAcknowledge keeps the tracked weight and silences further
	// reports of this exact logged weight.
	resolveActionAcknowledge = "acknowledge"
)

type resolveRequest struct {
	Action         string       `json:"action"`
	ExerciseID     string       `json:"exerciseId"`
	Tier           program.Tier `json:"tier"`
	ProgressionKey string       `json:"progressionKey"`
	ActualWeightKg float64      `json:"actualWeightKg"`
}

func (handler *Handler) HandleResolve(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.discrepancies.resolve")
	defer span.End()

	var req resolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("resolve discrepancy, unmarshal json params: %s", err)
		http.Error(w, "resolve discrepancy failed", http.StatusBadRequest)
		return
	}
	if req.ExerciseID == "" || req.ProgressionKey == "" {
		http.Error(w, "error, exercise id and progression key required", http.StatusBadRequest)
		return
	}
	if req.ActualWeightKg < 0 {
		http.Error(w, "error, weight must not be negative", http.StatusBadRequest)
		return
	}

	switch req.Action {
	case resolveActionAccept:
		state, err := handler.resolver.OverrideWeight(ctx, req.ProgressionKey, req.ActualWeightKg)
		if errors.Is(err, progression.ErrStateNotFound) {
			http.Error(w, "progression state not found", http.StatusNotFound)
			return
		}
		if err != nil {
			log.Errorf("failed to accept discrepancy for %s: %s", req.ProgressionKey, err)
			http.Error(w, "failed to resolve discrepancy", http.StatusInternalServerError)
			return
		}

		stateJson, err := json.Marshal(state)
		if err != nil {
			log.Errorf("failed to marshal state: %s", err)
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}

		log.Debugf("discrepancy accepted, %s set to %.2fkg", req.ProgressionKey, req.ActualWeightKg)
		pkg.WriteResponseBytes(w, pkg.ContentType.JSON, stateJson, http.StatusOK)
	case resolveActionAcknowledge:
		err := handler.resolver.AcknowledgeDiscrepancy(ctx, progression.AcknowledgedDiscrepancy{
			ExerciseID:           req.ExerciseID,
			Tier:                 req.Tier,
			AcknowledgedWeightKg: req.ActualWeightKg,
			CreatedAt:            time.Now(),
		})
		if err != nil {
			log.Errorf("failed to acknowledge discrepancy for %s: %s", req.ExerciseID, err)
			http.Error(w, "failed to resolve discrepancy", http.StatusInternalServerError)
			return
		}

		log.Debugf("discrepancy acknowledged for %s %s at %.2fkg", req.ExerciseID, req.Tier, req.ActualWeightKg)
		pkg.WriteJSONResponseOK(w, `{"acknowledged":true}`)
	default:
		http.Error(w, "error, unknown resolve action", http.StatusBadRequest)
	}
}
