package exercises

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/gzclptracker/internal/program"
	"github.com/2beens/gzclptracker/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

// Service wraps exercise configuration updates that cascade into the
// progression ledger. A role change is a two-phase update: first compute
// the progression-key delta for the role swap, then apply the config
// change and the ledger cleanup inside one transaction.
type Service struct {
	db   *pgxpool.Pool
	repo *Repo
}

func NewService(db *pgxpool.Pool, repo *Repo) *Service {
	return &Service{
		db:   db,
		repo: repo,
	}
}

type ChangeRoleResult struct {
	Exercise    *Exercise `json:"exercise"`
	RemovedKeys []string  `json:"removedKeys"`
	AddedKeys   []string  `json:"addedKeys"`
}

// ChangeRole moves an exercise to a new role. The progression slots owned
// by the old role are removed and fresh (zeroed) slots are created for the
// new role; exercise history stays untouched under the old keys. Fails with
// ErrRoleTaken when another exercise already holds the target main-lift role.
func (s *Service) ChangeRole(
	ctx context.Context,
	exerciseID string,
	newRole program.Role,
) (_ *ChangeRoleResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.exercises.changeRole")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("exercise.id", exerciseID),
		attribute.String("role.new", string(newRole)),
	)

	exercise, err := s.repo.Get(ctx, exerciseID)
	if err != nil {
		return nil, fmt.Errorf("get exercise: %w", err)
	}

	if exercise.Role == newRole {
		return &ChangeRoleResult{Exercise: exercise}, nil
	}

	if newRole.IsMainLift() {
		taken, err := s.repo.roleTaken(ctx, newRole, exerciseID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrRoleTaken
		}
	}

	// phase one: the key delta
	removedKeys := exercise.ProgressionKeys()
	moved := *exercise
	moved.Role = newRole
	addedKeys := moved.ProgressionKeys()

	// phase two: config change + ledger change, one transaction
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
				log.Errorf("change role, rollback: %s", rbErr)
			}
		}
	}()

	tag, err := tx.Exec(
		ctx,
		`UPDATE exercise_config SET role = $1 WHERE id = $2;`,
		newRole, exerciseID,
	)
	if err != nil {
		return nil, fmt.Errorf("update role: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, ErrExerciseNotFound
	}

	for _, key := range removedKeys {
		if _, err = tx.Exec(
			ctx, `DELETE FROM progression_state WHERE progression_key = $1;`, key,
		); err != nil {
			return nil, fmt.Errorf("remove progression state %s: %w", key, err)
		}
	}

	for _, key := range addedKeys {
		if _, err = tx.Exec(
			ctx,
			`INSERT INTO progression_state (progression_key, exercise_id, current_weight_kg, stage, base_weight_kg)
				VALUES ($1, $2, 0, 0, 0)
				ON CONFLICT (progression_key) DO NOTHING;`,
			key, exerciseID,
		); err != nil {
			return nil, fmt.Errorf("add progression state %s: %w", key, err)
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}

	log.Debugf(
		"exercise %s role change %s -> %s, removed keys %v, added keys %v",
		exerciseID, exercise.Role, newRole, removedKeys, addedKeys,
	)

	exercise.Role = newRole
	return &ChangeRoleResult{
		Exercise:    exercise,
		RemovedKeys: removedKeys,
		AddedKeys:   addedKeys,
	}, nil
}
