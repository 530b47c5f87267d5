package pending

import (
	"context"
	"errors"

	"github.com/2beens/gzclptracker/internal/program"
	"github.com/2beens/gzclptracker/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrChangeNotFound = errors.New("pending change not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Insert stages changes, skipping ids already present so that a re-sync
// never duplicates or overwrites an unresolved (possibly user-modified)
// change. Returns the number of newly staged changes.
func (r *Repo) Insert(ctx context.Context, changes ...Change) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.pending.insert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("changes.count", len(changes)))

	inserted := 0
	for _, change := range changes {
		tag, err := r.db.Exec(
			ctx,
			`INSERT INTO pending_change
					(id, exercise_id, exercise_name, tier, type, progression_key,
					current_weight_kg, current_stage, new_weight_kg, new_stage, new_base_weight_kg,
					new_scheme, reason, workout_id, workout_date, created_at,
					amrap_reps, new_pr, sets_completed, sets_target, success)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)
				ON CONFLICT (id) DO NOTHING;`,
			change.ID, change.ExerciseID, change.ExerciseName, change.Tier, change.Type, change.ProgressionKey,
			change.CurrentWeightKg, change.CurrentStage, change.NewWeightKg, change.NewStage, change.NewBaseWeightKg,
			change.NewScheme, change.Reason, change.WorkoutID, change.WorkoutDate, change.CreatedAt,
			change.AmrapReps, change.NewPR, change.SetsCompleted, change.SetsTarget, change.Success,
		)
		if err != nil {
			return inserted, err
		}
		inserted += int(tag.RowsAffected())
	}
	return inserted, nil
}

func (r *Repo) Get(ctx context.Context, id string) (_ *Change, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.pending.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("change.id", id))

	rows, err := r.db.Query(ctx, changeSelect+` WHERE id = $1;`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	changes, err := rows2changes(rows)
	if err != nil {
		return nil, err
	}
	if len(changes) != 1 {
		return nil, ErrChangeNotFound
	}
	return &changes[0], nil
}

func (r *Repo) List(ctx context.Context) (_ []Change, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.pending.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, changeSelect+` ORDER BY created_at, id;`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return rows2changes(rows)
}

func (r *Repo) Count(ctx context.Context) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.pending.count")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM pending_change;`).Scan(&count); err != nil {
		return -1, err
	}
	return count, nil
}

// UpdateWeight overrides the proposed weight of a staged change. The
// success/failure classification is deliberately not re-run.
func (r *Repo) UpdateWeight(ctx context.Context, id string, newWeightKg float64) (_ *Change, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.pending.updateWeight")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("change.id", id),
		attribute.Float64("weight.kg", newWeightKg),
	)

	tag, err := r.db.Exec(
		ctx,
		`UPDATE pending_change SET new_weight_kg = $1 WHERE id = $2;`,
		newWeightKg, id,
	)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, ErrChangeNotFound
	}
	return r.Get(ctx, id)
}

func (r *Repo) Delete(ctx context.Context, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.pending.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("change.id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM pending_change WHERE id = $1;`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrChangeNotFound
	}
	return nil
}

func (r *Repo) DeleteAll(ctx context.Context) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.pending.deleteAll")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	_, err = r.db.Exec(ctx, `DELETE FROM pending_change;`)
	return err
}

const changeSelect = `
	SELECT id, exercise_id, exercise_name, tier, type, progression_key,
			current_weight_kg, current_stage, new_weight_kg, new_stage, new_base_weight_kg,
			new_scheme, reason, workout_id, workout_date, created_at,
			amrap_reps, new_pr, sets_completed, sets_target, success
		FROM pending_change`

func rows2changes(rows pgx.Rows) ([]Change, error) {
	var changes []Change
	for rows.Next() {
		var c Change
		var tier, changeType string
		if err := rows.Scan(
			&c.ID, &c.ExerciseID, &c.ExerciseName, &tier, &changeType, &c.ProgressionKey,
			&c.CurrentWeightKg, &c.CurrentStage, &c.NewWeightKg, &c.NewStage, &c.NewBaseWeightKg,
			&c.NewScheme, &c.Reason, &c.WorkoutID, &c.WorkoutDate, &c.CreatedAt,
			&c.AmrapReps, &c.NewPR, &c.SetsCompleted, &c.SetsTarget, &c.Success,
		); err != nil {
			return nil, err
		}
		c.Tier = program.Tier(tier)
		c.Type = program.ChangeType(changeType)
		changes = append(changes, c)
	}
	if changes == nil {
		changes = make([]Change, 0)
	}
	return changes, rows.Err()
}
