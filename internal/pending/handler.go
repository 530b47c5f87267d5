package pending

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

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=pending_test

type changesQueue interface {
	List(ctx context.Context) ([]Change, error)
	Apply(ctx context.Context, id string) (*ApplyResult, error)
	ApplyAll(ctx context.Context) (*ApplyResult, error)
	Reject(ctx context.Context, id string) error
	UndoReject(ctx context.Context) (*Change, error)
	Modify(ctx context.Context, id string, newWeightKg float64) (*Change, error)
	ClearAll(ctx context.Context) error
}

type Handler struct {
	queue changesQueue
}

func NewHandler(queue changesQueue) *Handler {
	return &Handler{
		queue: queue,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/changes", handler.HandleList).Methods("GET", "OPTIONS").Name("get-changes")
	r.HandleFunc("/changes", handler.HandleClearAll).Methods("DELETE", "OPTIONS").Name("clear-changes")
	r.HandleFunc("/changes/apply-all", handler.HandleApplyAll).Methods("POST", "OPTIONS").Name("apply-all-changes")
	r.HandleFunc("/changes/undo-reject", handler.HandleUndoReject).Methods("POST", "OPTIONS").Name("undo-reject-change")
	r.HandleFunc("/changes/{id}", handler.HandleModify).Methods("PUT", "OPTIONS").Name("modify-change")
	r.HandleFunc("/changes/{id}/apply", handler.HandleApply).Methods("POST", "OPTIONS").Name("apply-change")
	r.HandleFunc("/changes/{id}/reject", handler.HandleReject).Methods("POST", "OPTIONS").Name("reject-change")
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.changes.list")
	defer span.End()

	changes, err := handler.queue.List(ctx)
	if err != nil {
		log.Errorf("failed to list pending changes: %s", err)
		http.Error(w, "failed to list changes", http.StatusInternalServerError)
		return
	}

	changesJson, err := json.Marshal(changes)
	if err != nil {
		log.Errorf("failed to marshal pending changes: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, changesJson, http.StatusOK)
}

func (handler *Handler) HandleApply(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.changes.apply")
	defer span.End()

	id := mux.Vars(r)["id"]
	if id == "" {
		http.Error(w, "error, change id empty", http.StatusBadRequest)
		return
	}

	result, err := handler.queue.Apply(ctx, id)
	if errors.Is(err, ErrChangeNotFound) {
		http.Error(w, "change not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("failed to apply change %s: %s", id, err)
		http.Error(w, "failed to apply change", http.StatusInternalServerError)
		return
	}

	handler.writeApplyResult(w, result)
}

func (handler *Handler) HandleApplyAll(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.changes.applyAll")
	defer span.End()

	result, err := handler.queue.ApplyAll(ctx)
	if err != nil {
		log.Errorf("failed to apply all changes: %s", err)
		http.Error(w, "failed to apply changes", http.StatusInternalServerError)
		return
	}

	handler.writeApplyResult(w, result)
}

func (handler *Handler) writeApplyResult(w http.ResponseWriter, result *ApplyResult) {
	resultJson, err := json.Marshal(result)
	if err != nil {
		log.Errorf("failed to marshal apply result: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, resultJson, http.StatusOK)
}

func (handler *Handler) HandleReject(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.changes.reject")
	defer span.End()

	id := mux.Vars(r)["id"]
	if id == "" {
		http.Error(w, "error, change id empty", http.StatusBadRequest)
		return
	}

	err := handler.queue.Reject(ctx, id)
	if errors.Is(err, ErrChangeNotFound) {
		http.Error(w, "change not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("failed to reject change %s: %s", id, err)
		http.Error(w, "failed to reject change", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, `{"rejected":true}`)
}

func (handler *Handler) HandleUndoReject(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.changes.undoReject")
	defer span.End()

	change, err := handler.queue.UndoReject(ctx)
	if errors.Is(err, ErrNothingToUndo) {
		http.Error(w, "nothing to undo", http.StatusConflict)
		return
	}
	if err != nil {
		log.Errorf("failed to undo reject: %s", err)
		http.Error(w, "failed to undo reject", http.StatusInternalServerError)
		return
	}

	changeJson, err := json.Marshal(change)
	if err != nil {
		log.Errorf("failed to marshal change: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, changeJson, http.StatusOK)
}

type modifyChangeRequest struct {
	NewWeightKg float64 `json:"newWeightKg"`
}

func (handler *Handler) HandleModify(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.changes.modify")
	defer span.End()

	id := mux.Vars(r)["id"]
	if id == "" {
		http.Error(w, "error, change id empty", http.StatusBadRequest)
		return
	}

	var req modifyChangeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("modify change, unmarshal json params: %s", err)
		http.Error(w, "modify change failed", http.StatusBadRequest)
		return
	}
	if req.NewWeightKg < 0 {
		http.Error(w, "error, weight must not be negative", http.StatusBadRequest)
		return
	}

	change, err := handler.queue.Modify(ctx, id, req.NewWeightKg)
	if errors.Is(err, ErrChangeNotFound) {
		http.Error(w, "change not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("failed to modify change %s: %s", id, err)
		http.Error(w, "failed to modify change", http.StatusInternalServerError)
		return
	}

	changeJson, err := json.Marshal(change)
	if err != nil {
		log.Errorf("failed to marshal change: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	log.Debugf("change %s weight set to %.2fkg", id, req.NewWeightKg)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, changeJson, http.StatusOK)
}

func (handler *Handler) HandleClearAll(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.changes.clearAll")
	defer span.End()

	if err := handler.queue.ClearAll(ctx); err != nil {
		log.Errorf("failed to clear changes: %s", err)
		http.Error(w, "failed to clear changes", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, `{"cleared":true}`)
}
