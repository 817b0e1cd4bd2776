package workouts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/liftlog/internal/common"
	"github.com/dmitrijs2005/liftlog/internal/dbx"
	"github.com/dmitrijs2005/liftlog/internal/server/models"
)

// SQLiteRepository stores workout_date as "YYYY-MM-DD" text. SQLite has no
// row locks; the single-connection pool serialises writers instead.
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

const sqliteColumns = `id, user_id, exercise, sets, reps, weight, weight_unit, workout_date`

func scanSQLite(row rowScanner) (*models.Workout, error) {
	w := &models.Workout{}
	var weight sql.NullFloat64
	var unit sql.NullString
	var date string
	if err := row.Scan(&w.ID, &w.UserID, &w.Exercise, &w.Sets, &w.Reps, &weight, &unit, &date); err != nil {
		return nil, err
	}
	setWeight(w, weight, unit)

	d, err := time.Parse(common.DateLayout, date)
	if err != nil {
		return nil, fmt.Errorf("workout %d: bad date %q: %w", w.ID, date, err)
	}
	w.WorkoutDate = d
	return w, nil
}

func (r *SQLiteRepository) Exists(ctx context.Context, userID int64, exercise string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM workouts WHERE user_id = ? AND exercise = ?)`, userID, exercise).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return exists, nil
}

func (r *SQLiteRepository) Create(ctx context.Context, w *models.Workout) (*models.Workout, error) {
	weight, unit := nullWeight(w)
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO workouts (user_id, exercise, sets, reps, weight, weight_unit, workout_date)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 RETURNING id`,
		w.UserID, w.Exercise, w.Sets, w.Reps, weight, unit, w.WorkoutDate.Format(common.DateLayout)).Scan(&w.ID)
	if err != nil {
		return nil, mapWriteError(err)
	}
	return w, nil
}

func (r *SQLiteRepository) ListByUser(ctx context.Context, userID int64) ([]models.Workout, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+sqliteColumns+` FROM workouts WHERE user_id = ? ORDER BY id`, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]models.Workout, 0)
	for rows.Next() {
		w, err := scanSQLite(rows)
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

func (r *SQLiteRepository) GetForUpdate(ctx context.Context, userID, id int64) (*models.Workout, error) {
	w, err := scanSQLite(r.db.QueryRowContext(ctx,
		`SELECT `+sqliteColumns+` FROM workouts WHERE id = ? AND user_id = ?`, id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return w, nil
}

func (r *SQLiteRepository) Update(ctx context.Context, w *models.Workout) error {
	weight, unit := nullWeight(w)
	res, err := r.db.ExecContext(ctx,
		`UPDATE workouts
		 SET exercise = ?, sets = ?, reps = ?, weight = ?, weight_unit = ?, workout_date = ?
		 WHERE id = ? AND user_id = ?`,
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

func (r *SQLiteRepository) Delete(ctx context.Context, userID, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM workouts WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	n, err := rowsAffected(res)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
