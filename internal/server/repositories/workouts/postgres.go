package workouts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/liftlog/internal/common"
	"github.com/dmitrijs2005/liftlog/internal/dbx"
	"github.com/dmitrijs2005/liftlog/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const pgColumns = `id, user_id, exercise, sets, reps, weight, weight_unit, workout_date`

func scanPostgres(row rowScanner) (*models.Workout, error) {
	w := &models.Workout{}
	var weight sql.NullFloat64
	var unit sql.NullString
	if err := row.Scan(&w.ID, &w.UserID, &w.Exercise, &w.Sets, &w.Reps, &weight, &unit, &w.WorkoutDate); err != nil {
		return nil, err
	}
	setWeight(w, weight, unit)
	w.WorkoutDate = w.WorkoutDate.UTC()
	return w, nil
}

func (r *PostgresRepository) Exists(ctx context.Context, userID int64, exercise string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM workouts WHERE user_id = $1 AND exercise = $2)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, userID, exercise).Scan(&exists); err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return exists, nil
}

func (r *PostgresRepository) Create(ctx context.Context, w *models.Workout) (*models.Workout, error) {
	query := `
		INSERT INTO workouts (user_id, exercise, sets, reps, weight, weight_unit, workout_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	weight, unit := nullWeight(w)
	err := r.db.QueryRowContext(ctx, query,
		w.UserID, w.Exercise, w.Sets, w.Reps, weight, unit, w.WorkoutDate.Format(common.DateLayout)).Scan(&w.ID)
	if err != nil {
		return nil, mapWriteError(err)
	}
	return w, nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID int64) ([]models.Workout, error) {
	query := `SELECT ` + pgColumns + ` FROM workouts WHERE user_id = $1 ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]models.Workout, 0)
	for rows.Next() {
		w, err := scanPostgres(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, *w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) GetForUpdate(ctx context.Context, userID, id int64) (*models.Workout, error) {
	query := `SELECT ` + pgColumns + ` FROM workouts WHERE id = $1 AND user_id = $2 FOR UPDATE`

	w, err := scanPostgres(r.db.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return w, nil
}

func (r *PostgresRepository) Update(ctx context.Context, w *models.Workout) error {
	query := `
		UPDATE workouts
		SET exercise = $1, sets = $2, reps = $3, weight = $4, weight_unit = $5, workout_date = $6
		WHERE id = $7 AND user_id = $8
	`
	weight, unit := nullWeight(w)
	res, err := r.db.ExecContext(ctx, query,
		w.Exercise, w.Sets, w.Reps, weight, unit, w.WorkoutDate.Format(common.DateLayout), w.ID, w.UserID)
	if err != nil {
		return mapWriteError(err)
	}
	n, err := rowsAffected(res)
	if err != nil {
		return err
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, userID, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM workouts WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	n, err := rowsAffected(res)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
