package progression

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/gzclptracker/internal/program"
	"github.com/2beens/gzclptracker/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

var ErrStateNotFound = errors.New("progression state not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) GetState(ctx context.Context, progressionKey string) (_ *State, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progression.getState")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("progression.key", progressionKey))

	rows, err := r.db.Query(
		ctx,
		stateSelect+` WHERE progression_key = $1;`,
		progressionKey,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	states, err := rows2states(rows)
	if err != nil {
		return nil, err
	}
	if len(states) != 1 {
		return nil, ErrStateNotFound
	}
	return &states[0], nil
}

// States returns all progression states keyed by progression key.
func (r *Repo) States(ctx context.Context) (_ map[string]State, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progression.states")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, stateSelect+`;`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	states, err := rows2states(rows)
	if err != nil {
		return nil, err
	}

	key2state := make(map[string]State, len(states))
	for _, s := range states {
		key2state[s.ProgressionKey] = s
	}
	return key2state, nil
}

// OverrideWeight is the manual weight edit: sets both current and base
// weight for the slot and appends a manual history entry, in one
// transaction.
func (r *Repo) OverrideWeight(
	ctx context.Context,
	progressionKey string,
	weightKg float64,
) (_ *State, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progression.overrideWeight")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("progression.key", progressionKey),
		attribute.Float64("weight.kg", weightKg),
	)

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer rollbackOnErr(ctx, tx, &err)

	tag, err := tx.Exec(
		ctx,
		`UPDATE progression_state
			SET current_weight_kg = $1, base_weight_kg = $1, updated_at = NOW()
			WHERE progression_key = $2;`,
		weightKg, progressionKey,
	)
	if err != nil {
		return nil, fmt.Errorf("update state: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, ErrStateNotFound
	}

	var tier program.Tier
	switch {
	case len(progressionKey) > 3 && progressionKey[len(progressionKey)-2:] == "T1":
		tier = program.TierT1
	case len(progressionKey) > 3 && progressionKey[len(progressionKey)-2:] == "T2":
		tier = program.TierT2
	default:
		tier = program.TierT3
	}

	if _, err = tx.Exec(
		ctx,
		`INSERT INTO exercise_history
				(progression_key, date, workout_id, weight_kg, stage, tier, success, change_type)
			SELECT progression_key, NOW(), '', $1, stage, $2, TRUE, $3
				FROM progression_state WHERE progression_key = $4;`,
		weightKg, tier, ManualChangeType, progressionKey,
	); err != nil {
		return nil, fmt.Errorf("append history: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}

	return r.GetState(ctx, progressionKey)
}

func (r *Repo) History(ctx context.Context, progressionKey string) (_ []HistoryEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progression.history")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("progression.key", progressionKey))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, progression_key, date, workout_id, weight_kg, stage, tier, success, amrap_reps, change_type
			FROM exercise_history
			WHERE progression_key = $1
			ORDER BY id;`,
		progressionKey,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]HistoryEntry, 0)
	for rows.Next() {
		var e HistoryEntry
		var tier, changeType string
		if err := rows.Scan(
			&e.ID, &e.ProgressionKey, &e.Date, &e.WorkoutID, &e.WeightKg,
			&e.Stage, &tier, &e.Success, &e.AmrapReps, &changeType,
		); err != nil {
			return nil, err
		}
		e.Tier = program.Tier(tier)
		e.ChangeType = program.ChangeType(changeType)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// ProcessedWorkoutIDs returns the set of workout ids already folded into
// progression.
func (r *Repo) ProcessedWorkoutIDs(ctx context.Context) (_ map[string]struct{}, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progression.processedWorkoutIds")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `SELECT workout_id FROM processed_workout;`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make(map[string]struct{})
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids[id] = struct{}{}
	}
	return ids, rows.Err()
}

func (r *Repo) MarkWorkoutsProcessed(ctx context.Context, workoutIDs ...string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progression.markWorkoutsProcessed")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	for _, id := range workoutIDs {
		if id == "" {
			continue
		}
		if _, err := r.db.Exec(
			ctx,
			`INSERT INTO processed_workout (workout_id) VALUES ($1) ON CONFLICT DO NOTHING;`,
			id,
		); err != nil {
			return fmt.Errorf("mark workout %s processed: %w", id, err)
		}
	}
	return nil
}

func (r *Repo) AcknowledgedDiscrepancies(ctx context.Context) (_ []AcknowledgedDiscrepancy, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progression.acknowledgedDiscrepancies")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT exercise_id, tier, acknowledged_weight_kg, created_at FROM acknowledged_discrepancy;`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	acks := make([]AcknowledgedDiscrepancy, 0)
	for rows.Next() {
		var a AcknowledgedDiscrepancy
		var tier string
		if err := rows.Scan(&a.ExerciseID, &tier, &a.AcknowledgedWeightKg, &a.CreatedAt); err != nil {
			return nil, err
		}
		a.Tier = program.Tier(tier)
		acks = append(acks, a)
	}
	return acks, rows.Err()
}

// AcknowledgeDiscrepancy records "keep stored" for one (exercise, tier)
// pair, replacing any previous acknowledgement for the same pair.
func (r *Repo) AcknowledgeDiscrepancy(ctx context.Context, ack AcknowledgedDiscrepancy) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progression.acknowledgeDiscrepancy")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO acknowledged_discrepancy (exercise_id, tier, acknowledged_weight_kg, created_at)
			VALUES ($1, $2, $3, NOW())
			ON CONFLICT (exercise_id, tier)
			DO UPDATE SET acknowledged_weight_kg = EXCLUDED.acknowledged_weight_kg, created_at = NOW();`,
		ack.ExerciseID, ack.Tier, ack.AcknowledgedWeightKg,
	)
	return err
}

// ProgramState returns the day pointer and completion stats, defaulting
// to day A1 when nothing is stored yet.
func (r *Repo) ProgramState(ctx context.Context) (_ *ProgramState, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progression.programState")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var ps ProgramState
	var day string
	err = r.db.QueryRow(
		ctx,
		`SELECT current_day, total_workouts, last_workout_date FROM program_state WHERE id = 1;`,
	).Scan(&day, &ps.TotalWorkouts, &ps.LastWorkoutDate)
	if errors.Is(err, pgx.ErrNoRows) {
		return &ProgramState{CurrentDay: program.DayA1}, nil
	}
	if err != nil {
		return nil, err
	}
	ps.CurrentDay = program.Day(day)
	return &ps, nil
}

// ApplyChangeParams is one committed rule output: everything the ledger
// needs to move a slot forward.
type ApplyChangeParams struct {
	PendingChangeID string
	ProgressionKey  string
	ExerciseID      string
	Tier            program.Tier
	NewWeightKg     float64
	NewStage        program.Stage
	NewBaseWeightKg *float64
	WorkoutID       string
	WorkoutDate     time.Time
	Success         bool
	AmrapReps       *int
	NewPR           bool
	ChangeType      program.ChangeType
}

type ApplyParams struct {
	Changes []ApplyChangeParams
	// AdvanceDay rotates the program day pointer and bumps the completion
	// stats; computed once per batch by the caller.
	AdvanceDay bool
}

type ApplyOutcome struct {
	UpdatedStates     []State
	HistoryEntries    []HistoryEntry
	DayAdvanced       bool
	NewDay            program.Day
	WorkoutsProcessed []string
}

// ApplyChanges commits a batch of rule outputs as one transaction: state
// updates, history appends, processed-workout marks, pending-change
// deletions and the optional day rotation either all land or none do.
func (r *Repo) ApplyChanges(ctx context.Context, params ApplyParams) (_ *ApplyOutcome, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progression.applyChanges")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("changes.count", len(params.Changes)),
		attribute.Bool("advance.day", params.AdvanceDay),
	)

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer rollbackOnErr(ctx, tx, &err)

	outcome := &ApplyOutcome{}
	processedSet := make(map[string]struct{})

	for _, change := range params.Changes {
		var replacedWorkoutID *string
		err = tx.QueryRow(
			ctx,
			`SELECT last_workout_id FROM progression_state WHERE progression_key = $1 FOR UPDATE;`,
			change.ProgressionKey,
		).Scan(&replacedWorkoutID)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", ErrStateNotFound, change.ProgressionKey)
		}
		if err != nil {
			return nil, fmt.Errorf("lock state %s: %w", change.ProgressionKey, err)
		}

		if _, err = tx.Exec(
			ctx,
			`UPDATE progression_state SET
					current_weight_kg = $1,
					stage = $2,
					base_weight_kg = COALESCE($3, base_weight_kg),
					last_workout_id = $4,
					last_workout_date = $5,
					updated_at = NOW()
				WHERE progression_key = $6;`,
			change.NewWeightKg, change.NewStage, change.NewBaseWeightKg,
			change.WorkoutID, change.WorkoutDate, change.ProgressionKey,
		); err != nil {
			return nil, fmt.Errorf("update state %s: %w", change.ProgressionKey, err)
		}

		if change.NewPR && change.AmrapReps != nil {
			if _, err = tx.Exec(
				ctx,
				`UPDATE progression_state SET
						amrap_record = $1, amrap_record_date = $2, amrap_record_workout_id = $3
					WHERE progression_key = $4 AND amrap_record < $1;`,
				*change.AmrapReps, change.WorkoutDate, change.WorkoutID, change.ProgressionKey,
			); err != nil {
				return nil, fmt.Errorf("update amrap record %s: %w", change.ProgressionKey, err)
			}
		}

		entry := HistoryEntry{
			ProgressionKey: change.ProgressionKey,
			Date:           change.WorkoutDate,
			WorkoutID:      change.WorkoutID,
			WeightKg:       change.NewWeightKg,
			Stage:          change.NewStage,
			Tier:           change.Tier,
			Success:        change.Success,
			AmrapReps:      change.AmrapReps,
			ChangeType:     change.ChangeType,
		}
		if err = tx.QueryRow(
			ctx,
			`INSERT INTO exercise_history
					(progression_key, date, workout_id, weight_kg, stage, tier, success, amrap_reps, change_type)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
				RETURNING id;`,
			entry.ProgressionKey, entry.Date, entry.WorkoutID, entry.WeightKg,
			entry.Stage, entry.Tier, entry.Success, entry.AmrapReps, entry.ChangeType,
		).Scan(&entry.ID); err != nil {
			return nil, fmt.Errorf("append history %s: %w", change.ProgressionKey, err)
		}
		outcome.HistoryEntries = append(outcome.HistoryEntries, entry)

		// the change's workout, and the workout it replaces, are now folded in
		toProcess := []string{change.WorkoutID}
		if replacedWorkoutID != nil && *replacedWorkoutID != "" {
			toProcess = append(toProcess, *replacedWorkoutID)
		}
		for _, workoutID := range toProcess {
			if _, ok := processedSet[workoutID]; ok {
				continue
			}
			if _, err = tx.Exec(
				ctx,
				`INSERT INTO processed_workout (workout_id) VALUES ($1) ON CONFLICT DO NOTHING;`,
				workoutID,
			); err != nil {
				return nil, fmt.Errorf("mark workout %s processed: %w", workoutID, err)
			}
			processedSet[workoutID] = struct{}{}
			outcome.WorkoutsProcessed = append(outcome.WorkoutsProcessed, workoutID)
		}

		if change.PendingChangeID != "" {
			if _, err = tx.Exec(
				ctx,
				`DELETE FROM pending_change WHERE id = $1;`,
				change.PendingChangeID,
			); err != nil {
				return nil, fmt.Errorf("delete pending change %s: %w", change.PendingChangeID, err)
			}
		}
	}

	if params.AdvanceDay {
		var currentDay string
		err = tx.QueryRow(
			ctx,
			`INSERT INTO program_state (id, current_day, total_workouts)
				VALUES (1, $1, 0)
				ON CONFLICT (id) DO UPDATE SET current_day = program_state.current_day
				RETURNING current_day;`,
			program.DayA1,
		).Scan(&currentDay)
		if err != nil {
			return nil, fmt.Errorf("load program state: %w", err)
		}

		newDay := program.Day(currentDay).Next()
		lastWorkoutDate := latestWorkoutDate(params.Changes)
		if _, err = tx.Exec(
			ctx,
			`UPDATE program_state SET
					current_day = $1,
					total_workouts = total_workouts + 1,
					last_workout_date = COALESCE($2, last_workout_date)
				WHERE id = 1;`,
			newDay, lastWorkoutDate,
		); err != nil {
			return nil, fmt.Errorf("advance program day: %w", err)
		}

		outcome.DayAdvanced = true
		outcome.NewDay = newDay
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}

	// read back the updated states outside the tx
	for _, change := range params.Changes {
		state, err := r.GetState(ctx, change.ProgressionKey)
		if err != nil {
			log.Errorf("apply changes, read back state %s: %s", change.ProgressionKey, err)
			continue
		}
		outcome.UpdatedStates = append(outcome.UpdatedStates, *state)
	}

	return outcome, nil
}

func latestWorkoutDate(changes []ApplyChangeParams) *time.Time {
	var latest *time.Time
	for i := range changes {
		d := changes[i].WorkoutDate
		if d.IsZero() {
			continue
		}
		if latest == nil || d.After(*latest) {
			latest = &d
		}
	}
	return latest
}

const stateSelect = `
	SELECT progression_key, exercise_id, current_weight_kg, stage, base_weight_kg,
			last_workout_id, last_workout_date,
			amrap_record, amrap_record_date, amrap_record_workout_id, updated_at
		FROM progression_state`

func rows2states(rows pgx.Rows) ([]State, error) {
	var states []State
	for rows.Next() {
		var s State
		var lastWorkoutID, amrapWorkoutID *string
		if err := rows.Scan(
			&s.ProgressionKey, &s.ExerciseID, &s.CurrentWeightKg, &s.Stage, &s.BaseWeightKg,
			&lastWorkoutID, &s.LastWorkoutDate,
			&s.AmrapRecord, &s.AmrapRecordDate, &amrapWorkoutID, &s.UpdatedAt,
		); err != nil {
			return nil, err
		}
		if lastWorkoutID != nil {
			s.LastWorkoutID = *lastWorkoutID
		}
		if amrapWorkoutID != nil {
			s.AmrapRecordWorkoutID = *amrapWorkoutID
		}
		states = append(states, s)
	}
	if states == nil {
		states = make([]State, 0)
	}
	return states, rows.Err()
}

func rollbackOnErr(ctx context.Context, tx pgx.Tx, err *error) {
	if *err == nil {
		return
	}
	if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
		log.Errorf("tx rollback: %s", rbErr)
	}
}
