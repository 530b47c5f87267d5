package pending

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/2beens/gzclptracker/internal/progression"
	"github.com/2beens/gzclptracker/internal/telemetry/metrics"
	"github.com/2beens/gzclptracker/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=queue_mocks_test.go -package=pending_test

const undoRejectWindow = 5 * time.Second

var ErrNothingToUndo = errors.New("no rejected change to undo")

type changesRepo interface {
	Insert(ctx context.Context, changes ...Change) (int, error)
	Get(ctx context.Context, id string) (*Change, error)
	List(ctx context.Context) ([]Change, error)
	Count(ctx context.Context) (int, error)
	UpdateWeight(ctx context.Context, id string, newWeightKg float64) (*Change, error)
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
}

type applier interface {
	ApplyChanges(ctx context.Context, params progression.ApplyParams) (*progression.ApplyOutcome, error)
	MarkWorkoutsProcessed(ctx context.Context, workoutIDs ...string) error
}

// Queue is the review surface over staged changes. Applying commits a
// change to the ledger, rejecting discards it while still marking the
// workout processed, with a short window to take the rejection back.
type Queue struct {
	changes changesRepo
	ledger  applier
	metrics *metrics.Manager

	mu           sync.Mutex
	lastRejected *Change
	undoTimer    *time.Timer
	undoWindow   time.Duration
}

type QueueOption func(*Queue)

// WithUndoWindow overrides how long a rejected change can be taken back.
func WithUndoWindow(window time.Duration) QueueOption {
	return func(q *Queue) {
		q.undoWindow = window
	}
}

func NewQueue(changes changesRepo, ledger applier, metrics *metrics.Manager, opts ...QueueOption) *Queue {
	q := &Queue{
		changes:    changes,
		ledger:     ledger,
		metrics:    metrics,
		undoWindow: undoRejectWindow,
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

func (q *Queue) List(ctx context.Context) ([]Change, error) {
	return q.changes.List(ctx)
}

// ApplyResult reports what one apply call committed.
type ApplyResult struct {
	Applied        []Change            `json:"applied"`
	UpdatedStates  []progression.State `json:"updatedStates"`
	DayAdvanced    bool                `json:"dayAdvanced"`
	NewDay         string              `json:"newDay,omitempty"`
	RemainingCount int                 `json:"remainingCount"`
}

// Apply commits a single staged change. The training day only advances
// when this was the last unresolved change, i.e. the whole workout is now
// accounted for.
func (q *Queue) Apply(ctx context.Context, id string) (_ *ApplyResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "queue.apply")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("change.id", id))

	change, err := q.changes.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	count, err := q.changes.Count(ctx)
	if err != nil {
		return nil, err
	}

	return q.apply(ctx, []Change{*change}, count == 1)
}

// ApplyAll commits every staged change in one transaction, advancing the
// training day exactly once.
func (q *Queue) ApplyAll(ctx context.Context) (_ *ApplyResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "queue.applyAll")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	changes, err := q.changes.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(changes) == 0 {
		return &ApplyResult{
			Applied:       make([]Change, 0),
			UpdatedStates: make([]progression.State, 0),
		}, nil
	}

	return q.apply(ctx, changes, true)
}

func (q *Queue) apply(ctx context.Context, changes []Change, advanceDay bool) (*ApplyResult, error) {
	params := progression.ApplyParams{
		AdvanceDay: advanceDay,
	}
	for _, change := range changes {
		params.Changes = append(params.Changes, ApplyParamsFor(change))
	}

	outcome, err := q.ledger.ApplyChanges(ctx, params)
	if err != nil {
		return nil, err
	}

	for _, change := range changes {
		q.metrics.CounterChangesApplied.WithLabelValues(string(change.Type)).Inc()
		log.Debugf("applied change %s", change)
	}

	remaining, err := q.changes.Count(ctx)
	if err != nil {
		log.Errorf("failed to count remaining changes: %s", err)
		remaining = 0
	}
	q.metrics.GaugePendingChanges.Set(float64(remaining))

	result := &ApplyResult{
		Applied:        changes,
		UpdatedStates:  outcome.UpdatedStates,
		DayAdvanced:    outcome.DayAdvanced,
		RemainingCount: remaining,
	}
	if outcome.DayAdvanced {
		result.NewDay = string(outcome.NewDay)
	}
	return result, nil
}

// Reject discards a staged change without touching the ledger. The source
// workout is still marked processed so the next sync does not resurrect
// the change. The rejected change is kept around briefly for UndoReject.
func (q *Queue) Reject(ctx context.Context, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "queue.reject")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("change.id", id))

	change, err := q.changes.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := q.changes.Delete(ctx, id); err != nil {
		return err
	}
	if err := q.ledger.MarkWorkoutsProcessed(ctx, change.WorkoutID); err != nil {
		return err
	}

	q.metrics.CounterChangesRejected.Inc()
	log.Debugf("rejected change %s", change)

	q.mu.Lock()
	defer q.mu.Unlock()
	if q.undoTimer != nil {
		q.undoTimer.Stop()
	}
	q.lastRejected = change
	q.undoTimer = time.AfterFunc(q.undoWindow, func() {
		q.mu.Lock()
		defer q.mu.Unlock()
		q.lastRejected = nil
		q.undoTimer = nil
	})

	return nil
}

// UndoReject restores the most recently rejected change, if the undo
// window has not elapsed yet. The change comes back exactly as it was,
// user modifications included.
func (q *Queue) UndoReject(ctx context.Context) (_ *Change, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "queue.undoReject")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	q.mu.Lock()
	change := q.lastRejected
	if q.undoTimer != nil {
		q.undoTimer.Stop()
		q.undoTimer = nil
	}
	q.lastRejected = nil
	q.mu.Unlock()

	if change == nil {
		return nil, ErrNothingToUndo
	}

	if _, err := q.changes.Insert(ctx, *change); err != nil {
		return nil, err
	}

	log.Debugf("restored rejected change %s", change)
	return change, nil
}

// Modify overrides the proposed weight of a staged change.
func (q *Queue) Modify(ctx context.Context, id string, newWeightKg float64) (*Change, error) {
	return q.changes.UpdateWeight(ctx, id, newWeightKg)
}

// ClearAll discards every staged change. Unlike Reject, the source
// workouts stay unprocessed, so the next sync regenerates the changes.
func (q *Queue) ClearAll(ctx context.Context) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "queue.clearAll")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := q.changes.DeleteAll(ctx); err != nil {
		return err
	}
	q.metrics.GaugePendingChanges.Set(0)
	return nil
}

// Stage inserts freshly computed changes and refreshes the gauge.
func (q *Queue) Stage(ctx context.Context, changes ...Change) (int, error) {
	inserted, err := q.changes.Insert(ctx, changes...)
	if err != nil {
		return inserted, err
	}
	if count, err := q.changes.Count(ctx); err == nil {
		q.metrics.GaugePendingChanges.Set(float64(count))
	}
	return inserted, nil
}
