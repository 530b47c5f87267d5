package reconcile

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/2beens/gzclptracker/internal/exercises"
	"github.com/2beens/gzclptracker/internal/hevy"
	"github.com/2beens/gzclptracker/internal/pending"
	"github.com/2beens/gzclptracker/internal/program"
	"github.com/2beens/gzclptracker/internal/progression"
	"github.com/2beens/gzclptracker/internal/telemetry/metrics"
	"github.com/2beens/gzclptracker/internal/telemetry/tracing"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=reconciler_mocks_test.go -package=reconcile_test

const (
	redisKeySyncStatus   = "sync::status"
	redisKeySyncLastTime = "sync::last_time"
	redisKeySyncLastErr  = "sync::last_error"

	SyncStatusIdle    = "idle"
	SyncStatusSyncing = "syncing"
)

type workoutsSource interface {
	Workouts(ctx context.Context) ([]hevy.Workout, error)
}

type configStore interface {
	List(ctx context.Context) ([]exercises.Exercise, error)
	RoutineDays(ctx context.Context) (map[string]program.Day, error)
}

type ledger interface {
	States(ctx context.Context) (map[string]progression.State, error)
	ProcessedWorkoutIDs(ctx context.Context) (map[string]struct{}, error)
	AcknowledgedDiscrepancies(ctx context.Context) ([]progression.AcknowledgedDiscrepancy, error)
}

type stager interface {
	Stage(ctx context.Context, changes ...pending.Change) (int, error)
}

// SyncResult summarizes one reconciliation run. AlreadyRunning marks a
// call that found another run in flight and did nothing.
type SyncResult struct {
	WorkoutsFetched  int           `json:"workoutsFetched"`
	WorkoutsNew      int           `json:"workoutsNew"`
	WorkoutsSkipped  int           `json:"workoutsSkipped"`
	ChangesStaged    int           `json:"changesStaged"`
	SkippedExercises int           `json:"skippedExercises"`
	Discrepancies    []Discrepancy `json:"discrepancies"`
	SyncedAt         time.Time     `json:"syncedAt"`
	DurationMs       int64         `json:"durationMs"`
	AlreadyRunning   bool          `json:"alreadyRunning,omitempty"`
}

// SyncStatus is what the status endpoint reports between runs.
type SyncStatus struct {
	Status    string `json:"status"`
	LastSync  string `json:"lastSync,omitempty"`
	LastError string `json:"lastError,omitempty"`
}

// Reconciler pulls logged workouts from Hevy and turns each unprocessed,
// mapped workout into staged progression changes. It never writes to the
// progression ledger; the queue apply path does that.
type Reconciler struct {
	workouts   workoutsSource
	config     configStore
	ledger     ledger
	stager     stager
	rdb        *redis.Client
	metrics    *metrics.Manager
	increments program.Increments

	inFlight   atomic.Bool
	mu         sync.Mutex
	lastResult *SyncResult
}

type NewReconcilerParams struct {
	Workouts   workoutsSource
	Config     configStore
	Ledger     ledger
	Stager     stager
	Redis      *redis.Client
	Metrics    *metrics.Manager
	Increments program.Increments
}

func NewReconciler(params NewReconcilerParams) *Reconciler {
	return &Reconciler{
		workouts:   params.Workouts,
		config:     params.Config,
		ledger:     params.Ledger,
		stager:     params.Stager,
		rdb:        params.Redis,
		metrics:    params.Metrics,
		increments: params.Increments,
	}
}

// Sync runs one reconciliation pass. A call that lands while another run
// is still in flight does nothing and reports AlreadyRunning, it is never
// queued; a failed run stages nothing and leaves all state untouched.
func (rec *Reconciler) Sync(ctx context.Context) (_ *SyncResult, err error) {
	if !rec.inFlight.CompareAndSwap(false, true) {
		log.Debug("sync requested while another run is in flight, skipping")
		return &SyncResult{
			AlreadyRunning: true,
			Discrepancies:  make([]Discrepancy, 0),
		}, nil
	}
	defer rec.inFlight.Store(false)

	ctx, span := tracing.GlobalTracer.Start(ctx, "reconciler.sync")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rec.setStatus(ctx, SyncStatusSyncing)
	started := time.Now()

	result, err := rec.sync(ctx, started)

	rec.setStatus(ctx, SyncStatusIdle)
	rec.metrics.HistSyncDuration.Observe(time.Since(started).Seconds())

	if err != nil {
		rec.metrics.CounterSyncs.WithLabelValues("failed").Inc()
		if redisErr := rec.rdb.Set(ctx, redisKeySyncLastErr, err.Error(), 0).Err(); redisErr != nil {
			log.Errorf("failed to store sync error: %s", redisErr)
		}
		return nil, err
	}

	rec.metrics.CounterSyncs.WithLabelValues("ok").Inc()
	if redisErr := rec.rdb.Set(ctx, redisKeySyncLastErr, "", 0).Err(); redisErr != nil {
		log.Errorf("failed to clear sync error: %s", redisErr)
	}
	if redisErr := rec.rdb.Set(ctx, redisKeySyncLastTime, result.SyncedAt.Format(time.RFC3339), 0).Err(); redisErr != nil {
		log.Errorf("failed to store sync time: %s", redisErr)
	}

	rec.mu.Lock()
	rec.lastResult = result
	rec.mu.Unlock()

	span.SetAttributes(
		attribute.Int("workouts.new", result.WorkoutsNew),
		attribute.Int("changes.staged", result.ChangesStaged),
	)
	return result, nil
}

func (rec *Reconciler) sync(ctx context.Context, started time.Time) (*SyncResult, error) {
	workouts, err := rec.workouts.Workouts(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch workouts: %w", err)
	}

	exercisesList, err := rec.config.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}
	routineDays, err := rec.config.RoutineDays(ctx)
	if err != nil {
		return nil, fmt.Errorf("get routine days: %w", err)
	}
	states, err := rec.ledger.States(ctx)
	if err != nil {
		return nil, fmt.Errorf("get progression states: %w", err)
	}
	processed, err := rec.ledger.ProcessedWorkoutIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("get processed workouts: %w", err)
	}
	acks, err := rec.ledger.AcknowledgedDiscrepancies(ctx)
	if err != nil {
		return nil, fmt.Errorf("get acknowledged discrepancies: %w", err)
	}

	byTemplate := make(map[string]exercises.Exercise, len(exercisesList))
	for _, ex := range exercisesList {
		byTemplate[ex.HevyTemplateID] = ex
	}
	detector := NewDetector(acks)

	// oldest first, so staged changes line up with training order
	sort.Slice(workouts, func(i, j int) bool {
		return workouts[i].StartTime.Before(workouts[j].StartTime)
	})

	result := &SyncResult{
		WorkoutsFetched: len(workouts),
		Discrepancies:   make([]Discrepancy, 0),
	}
	var changes []pending.Change

	for _, workout := range workouts {
		if _, ok := processed[workout.ID]; ok {
			continue
		}

		day, ok := routineDays[workout.RoutineID]
		if !ok {
			log.Tracef("workout %s [%s]: routine %s not mapped, skipping", workout.ID, workout.Title, workout.RoutineID)
			result.WorkoutsSkipped++
			continue
		}

		result.WorkoutsNew++
		rec.metrics.CounterWorkoutsProcessed.Inc()

		for _, occurrence := range workout.Exercises {
			change, discrepancy, skipped := rec.processOccurrence(day, workout, occurrence, byTemplate, states, detector)
			if skipped {
				result.SkippedExercises++
				rec.metrics.CounterSkippedExercises.Inc()
				continue
			}
			if discrepancy != nil {
				result.Discrepancies = append(result.Discrepancies, *discrepancy)
				rec.metrics.CounterDiscrepancies.Inc()
			}
			if change != nil {
				changes = append(changes, *change)
			}
		}
	}

	staged, err := rec.stager.Stage(ctx, changes...)
	if err != nil {
		return nil, fmt.Errorf("stage changes: %w", err)
	}

	result.ChangesStaged = staged
	result.SyncedAt = time.Now()
	result.DurationMs = time.Since(started).Milliseconds()
	log.Debugf(
		"sync done: %d workouts fetched, %d new, %d changes staged, %d discrepancies",
		result.WorkoutsFetched, result.WorkoutsNew, result.ChangesStaged, len(result.Discrepancies),
	)
	return result, nil
}

func (rec *Reconciler) processOccurrence(
	day program.Day,
	workout hevy.Workout,
	occurrence hevy.WorkoutExercise,
	byTemplate map[string]exercises.Exercise,
	states map[string]progression.State,
	detector *Detector,
) (change *pending.Change, discrepancy *Discrepancy, skipped bool) {
	exercise, ok := byTemplate[occurrence.ExerciseTemplateID]
	if !ok {
		log.Tracef("workout %s: unknown template %s (%s), skipping", workout.ID, occurrence.ExerciseTemplateID, occurrence.Title)
		return nil, nil, true
	}

	tier, ok := program.TierForRole(day, exercise.Role)
	if !ok {
		log.Tracef("workout %s: role %s not trained on day %s, skipping", workout.ID, exercise.Role, day)
		return nil, nil, true
	}

	key := program.KeyFor(exercise.Role, tier, exercise.ID)
	state, ok := states[key]
	if !ok {
		log.Tracef("workout %s: no progression state for key %s, skipping", workout.ID, key)
		return nil, nil, true
	}

	var loggedSets []program.LoggedSet
	for _, set := range occurrence.Sets {
		if set.IsWarmup() {
			continue
		}
		loggedSets = append(loggedSets, program.LoggedSet{
			Reps:     set.Reps,
			WeightKg: set.WeightKg,
		})
	}

	analysis := program.Analyze(tier, state.Stage, loggedSets)

	if len(loggedSets) > 0 {
		discrepancy = detector.Check(
			exercise.ID, exercise.Name, tier, key,
			state.CurrentWeightKg, loggedSets[0].WeightKg,
			workout.ID, workout.StartTime,
		)
	}

	ruleOutput := program.NextState(
		tier,
		state.CurrentWeightKg,
		state.Stage,
		analysis.Success,
		exercise.EffectiveMuscleGroup(),
		rec.increments,
		exercise.CustomIncrementKg,
	)

	newChange := pending.NewChange(exercise, state, tier, analysis, ruleOutput, workout.ID, workout.StartTime)
	return &newChange, discrepancy, false
}

// Status reads the sync status stored in redis.
func (rec *Reconciler) Status(ctx context.Context) (*SyncStatus, error) {
	status := &SyncStatus{
		Status: SyncStatusIdle,
	}

	val, err := rec.rdb.Get(ctx, redisKeySyncStatus).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, err
	}
	if val != "" {
		status.Status = val
	}

	lastSync, err := rec.rdb.Get(ctx, redisKeySyncLastTime).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, err
	}
	status.LastSync = lastSync

	lastErr, err := rec.rdb.Get(ctx, redisKeySyncLastErr).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, err
	}
	status.LastError = lastErr

	return status, nil
}

// LastDiscrepancies returns the discrepancies found by the most recent
// successful sync in this process.
func (rec *Reconciler) LastDiscrepancies() []Discrepancy {
	rec.mu.Lock()
	defer rec.mu.Unlock()
	if rec.lastResult == nil {
		return make([]Discrepancy, 0)
	}
	return rec.lastResult.Discrepancies
}

func (rec *Reconciler) setStatus(ctx context.Context, status string) {
	if err := rec.rdb.Set(ctx, redisKeySyncStatus, status, 0).Err(); err != nil {
		log.Errorf("failed to store sync status %q: %s", status, err)
	}
}
