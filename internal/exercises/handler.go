package exercises

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/gzclptracker/internal/program"
	"github.com/2beens/gzclptracker/internal/telemetry/tracing"
	"github.com/2beens/gzclptracker/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=exercises_test

type configRepo interface {
	Add(ctx context.Context, exercise Exercise) (*Exercise, error)
	Get(ctx context.Context, id string) (*Exercise, error)
	List(ctx context.Context) ([]Exercise, error)
	Update(ctx context.Context, exercise *Exercise) error
	Delete(ctx context.Context, id string) error
	SetRoutineDay(ctx context.Context, routineID string, day program.Day) error
	RoutineDays(ctx context.Context) (map[string]program.Day, error)
}

type roleChanger interface {
	ChangeRole(ctx context.Context, exerciseID string, newRole program.Role) (*ChangeRoleResult, error)
}

type Handler struct {
	repo    configRepo
	service roleChanger
}

func NewHandler(repo configRepo, service roleChanger) *Handler {
	return &Handler{
		repo:    repo,
		service: service,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/exercises", handler.HandleList).Methods("GET", "OPTIONS").Name("list-exercises")
	r.HandleFunc("/exercises", handler.HandleAdd).Methods("POST", "OPTIONS").Name("new-exercise")
	r.HandleFunc("/exercises/{id}", handler.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-exercise")
	r.HandleFunc("/exercises/{id}", handler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-exercise")
	r.HandleFunc("/exercises/{id}/role", handler.HandleChangeRole).Methods("PUT", "OPTIONS").Name("change-exercise-role")
	r.HandleFunc("/routines", handler.HandleRoutineDays).Methods("GET", "OPTIONS").Name("list-routine-days")
	r.HandleFunc("/routines/{routineId}/day", handler.HandleSetRoutineDay).Methods("PUT", "OPTIONS").Name("set-routine-day")
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.add")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var exercise Exercise
	if err := json.NewDecoder(r.Body).Decode(&exercise); err != nil {
		log.Tracef("new exercise, unmarshal json params: %s", err)
		http.Error(w, "add exercise failed", http.StatusBadRequest)
		return
	}

	if exercise.ID == "" || exercise.HevyTemplateID == "" || exercise.Role == "" {
		http.Error(w, "error, exercise id, template id or role empty", http.StatusBadRequest)
		return
	}
	if !exercise.Role.IsMainLift() && exercise.Role != program.RoleT3 {
		http.Error(w, "error, unknown role", http.StatusBadRequest)
		return
	}

	if exercise.CreatedAt.IsZero() {
		exercise.CreatedAt = time.Now()
	}

	addedExercise, err := handler.repo.Add(ctx, exercise)
	if errors.Is(err, ErrRoleTaken) {
		http.Error(w, "error, main lift role already taken", http.StatusConflict)
		return
	}
	if errors.Is(err, ErrExerciseExists) {
		http.Error(w, "error, exercise already exists", http.StatusConflict)
		return
	}
	if err != nil {
		log.Errorf("failed to add exercise [%s] [%s]: %s", exercise.ID, exercise.Role, err)
		http.Error(w, "error, failed to add exercise", http.StatusInternalServerError)
		return
	}

	addedExJson, err := json.Marshal(addedExercise)
	if err != nil {
		log.Errorf("failed to marshal added exercise: %s", err)
		http.Error(w, "error, failed to add exercise", http.StatusInternalServerError)
		return
	}

	log.Debugf("new exercise added: %s", addedExJson)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, addedExJson, http.StatusCreated)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.list")
	defer span.End()

	exercisesFound, err := handler.repo.List(ctx)
	if err != nil {
		log.Errorf("list exercises error: %s", err)
		http.Error(w, "failed to get exercises", http.StatusInternalServerError)
		return
	}

	exercisesJson, err := json.Marshal(exercisesFound)
	if err != nil {
		log.Errorf("marshal exercises error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, exercisesJson, http.StatusOK)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.update")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var exercise Exercise
	if err := json.NewDecoder(r.Body).Decode(&exercise); err != nil {
		log.Errorf("update exercise, unmarshal json params: %s", err)
		http.Error(w, "update exercise failed", http.StatusBadRequest)
		return
	}
	exercise.ID = mux.Vars(r)["id"]

	if err := handler.repo.Update(ctx, &exercise); err != nil {
		if errors.Is(err, ErrExerciseNotFound) {
			http.Error(w, "exercise not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to update exercise [%s]: %s", exercise.ID, err)
		http.Error(w, "error, failed to update exercise", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, fmt.Sprintf(`{"updatedId":%q}`, exercise.ID))
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.delete")
	defer span.End()

	id := mux.Vars(r)["id"]
	if id == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	if err := handler.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrExerciseNotFound) {
			http.Error(w, "exercise not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to delete exercise %s: %s", id, err)
		http.Error(w, "exercise not deleted", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, fmt.Sprintf(`{"deletedId":%q}`, id))
}

type changeRoleRequest struct {
	Role program.Role `json:"role"`
}

func (handler *Handler) HandleChangeRole(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.changeRole")
	defer span.End()

	id := mux.Vars(r)["id"]

	var req changeRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "change role failed", http.StatusBadRequest)
		return
	}
	if !req.Role.IsMainLift() && req.Role != program.RoleT3 {
		http.Error(w, "error, unknown role", http.StatusBadRequest)
		return
	}

	result, err := handler.service.ChangeRole(ctx, id, req.Role)
	if errors.Is(err, ErrExerciseNotFound) {
		http.Error(w, "exercise not found", http.StatusNotFound)
		return
	}
	if errors.Is(err, ErrRoleTaken) {
		http.Error(w, "error, main lift role already taken", http.StatusConflict)
		return
	}
	if err != nil {
		log.Errorf("failed to change role of exercise %s: %s", id, err)
		http.Error(w, "error, failed to change role", http.StatusInternalServerError)
		return
	}

	resultJson, err := json.Marshal(result)
	if err != nil {
		log.Errorf("failed to marshal change role result: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, resultJson, http.StatusOK)
}

type setRoutineDayRequest struct {
	Day program.Day `json:"day"`
}

func (handler *Handler) HandleSetRoutineDay(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.setRoutineDay")
	defer span.End()

	routineID := mux.Vars(r)["routineId"]

	var req setRoutineDayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "set routine day failed", http.StatusBadRequest)
		return
	}
	if !req.Day.Valid() {
		http.Error(w, "error, unknown program day", http.StatusBadRequest)
		return
	}

	if err := handler.repo.SetRoutineDay(ctx, routineID, req.Day); err != nil {
		log.Errorf("failed to set routine day [%s -> %s]: %s", routineID, req.Day, err)
		http.Error(w, "error, failed to set routine day", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, fmt.Sprintf(`{"routineId":%q,"day":%q}`, routineID, req.Day))
}

func (handler *Handler) HandleRoutineDays(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.routineDays")
	defer span.End()

	routineDays, err := handler.repo.RoutineDays(ctx)
	if err != nil {
		log.Errorf("failed to list routine days: %s", err)
		http.Error(w, "failed to get routine days", http.StatusInternalServerError)
		return
	}

	routineDaysJson, err := json.Marshal(routineDays)
	if err != nil {
		log.Errorf("failed to marshal routine days: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, routineDaysJson, http.StatusOK)
}
