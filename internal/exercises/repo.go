package exercises

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/gzclptracker/internal/program"
	"github.com/2beens/gzclptracker/internal/telemetry/tracing"
	"github.com/2beens/gzclptracker/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrExerciseNotFound = errors.New("exercise not found")
	ErrRoleTaken        = errors.New("main lift role already taken")
	ErrExerciseExists   = errors.New("exercise id or hevy template already configured")
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, exercise Exercise) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise.id", exercise.ID))

	if exercise.Role.IsMainLift() {
		taken, err := r.roleTaken(ctx, exercise.Role, exercise.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrRoleTaken
		}
	}

	if exercise.CreatedAt.IsZero() {
		exercise.CreatedAt = time.Now()
	}

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO exercise_config
				(id, hevy_template_id, name, role, muscle_group, custom_increment_kg, created_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7);`,
		exercise.ID, exercise.HevyTemplateID, exercise.Name,
		exercise.Role, exercise.MuscleGroup, exercise.CustomIncrementKg, exercise.CreatedAt,
	)
	if pkg.IsUniqueViolationError(err) {
		// id primary key or the unique hevy_template_id index
		return nil, ErrExerciseExists
	}
	if err != nil {
		return nil, fmt.Errorf("insert exercise config: %w", err)
	}

	return &exercise, nil
}

func (r *Repo) Get(ctx context.Context, id string) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise.id", id))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, hevy_template_id, name, role, muscle_group, custom_increment_kg, created_at
			FROM exercise_config WHERE id = $1;`,
		id,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	exercisesFound, err := rows2exercises(rows)
	if err != nil {
		return nil, err
	}
	if len(exercisesFound) != 1 {
		return nil, ErrExerciseNotFound
	}
	return &exercisesFound[0], nil
}

func (r *Repo) List(ctx context.Context) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, hevy_template_id, name, role, muscle_group, custom_increment_kg, created_at
			FROM exercise_config ORDER BY created_at;`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return rows2exercises(rows)
}

func (r *Repo) Update(ctx context.Context, exercise *Exercise) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise.id", exercise.ID))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE exercise_config
			SET hevy_template_id = $1, name = $2, muscle_group = $3, custom_increment_kg = $4
			WHERE id = $5;`,
		exercise.HevyTemplateID, exercise.Name, exercise.MuscleGroup, exercise.CustomIncrementKg, exercise.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrExerciseNotFound
	}
	return nil
}

func (r *Repo) Delete(ctx context.Context, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise.id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM exercise_config WHERE id = $1;`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrExerciseNotFound
	}
	return nil
}

// DayForRoutine resolves the program day a Hevy routine is mapped to.
func (r *Repo) DayForRoutine(ctx context.Context, routineID string) (_ program.Day, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.dayForRoutine")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("routine.id", routineID))

	var day string
	err = r.db.QueryRow(
		ctx,
		`SELECT day FROM routine_day WHERE routine_id = $1;`,
		routineID,
	).Scan(&day)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", ErrRoutineNotMapped
	}
	if err != nil {
		return "", err
	}
	return program.Day(day), nil
}

var ErrRoutineNotMapped = errors.New("routine not mapped to a program day")

func (r *Repo) SetRoutineDay(ctx context.Context, routineID string, day program.Day) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.setRoutineDay")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO routine_day (routine_id, day) VALUES ($1, $2)
			ON CONFLICT (routine_id) DO UPDATE SET day = EXCLUDED.day;`,
		routineID, day,
	)
	return err
}

func (r *Repo) RoutineDays(ctx context.Context) (_ map[string]program.Day, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.routineDays")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `SELECT routine_id, day FROM routine_day;`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	routine2day := make(map[string]program.Day)
	for rows.Next() {
		var routineID, day string
		if err := rows.Scan(&routineID, &day); err != nil {
			return nil, err
		}
		routine2day[routineID] = program.Day(day)
	}
	return routine2day, rows.Err()
}

func (r *Repo) roleTaken(ctx context.Context, role program.Role, exceptID string) (bool, error) {
	var count int
	err := r.db.QueryRow(
		ctx,
		`SELECT COUNT(*) FROM exercise_config WHERE role = $1 AND id != $2;`,
		role, exceptID,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("count role holders: %w", err)
	}
	return count > 0, nil
}

func rows2exercises(rows pgx.Rows) ([]Exercise, error) {
	var found []Exercise
	for rows.Next() {
		var e Exercise
		var role, muscleGroup string
		if err := rows.Scan(
			&e.ID, &e.HevyTemplateID, &e.Name, &role, &muscleGroup, &e.CustomIncrementKg, &e.CreatedAt,
		); err != nil {
			return nil, err
		}
		e.Role = program.Role(role)
		e.MuscleGroup = program.MuscleGroup(muscleGroup)
		found = append(found, e)
	}
	if found == nil {
		found = make([]Exercise, 0)
	}
	return found, rows.Err()
}
