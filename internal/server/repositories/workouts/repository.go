// Package workouts stores per-user exercise records. Every lookup that can
// touch a single record is scoped by both record id and owner id.
package workouts

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/liftlog/internal/common"
	"github.com/dmitrijs2005/liftlog/internal/dbx"
	"github.com/dmitrijs2005/liftlog/internal/server/models"
)

type Repository interface {
	// Exists reports whether userID already logged exercise.
	Exists(ctx context.Context, userID int64, exercise string) (bool, error)
	// Create inserts w and fills in its ID. A duplicate exercise name for the
	// same user yields common.ErrExerciseExists.
	Create(ctx context.Context, w *models.Workout) (*models.Workout, error)
	// ListByUser returns the user's records in ascending id order.
	ListByUser(ctx context.Context, userID int64) ([]models.Workout, error)
	// GetForUpdate loads one record and, where the backend supports it, locks
	// the row for the rest of the transaction.
	GetForUpdate(ctx context.Context, userID, id int64) (*models.Workout, error)
	// Update overwrites every mutable column of the (w.ID, w.UserID) row.
	Update(ctx context.Context, w *models.Workout) error
	// Delete reports whether a row was removed.
	Delete(ctx context.Context, userID, id int64) (bool, error)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func nullWeight(w *models.Workout) (sql.NullFloat64, sql.NullString) {
	var weight sql.NullFloat64
	var unit sql.NullString
	if w.Weight != nil {
		weight = sql.NullFloat64{Float64: *w.Weight, Valid: true}
	}
	if w.WeightUnit != nil {
		unit = sql.NullString{String: string(*w.WeightUnit), Valid: true}
	}
	return weight, unit
}

func setWeight(w *models.Workout, weight sql.NullFloat64, unit sql.NullString) {
	w.Weight, w.WeightUnit = nil, nil
	if weight.Valid {
		v := weight.Float64
		w.Weight = &v
	}
	if unit.Valid {
		u := models.WeightUnit(unit.String)
		w.WeightUnit = &u
	}
}

func mapWriteError(err error) error {
	if _, ok := dbx.UniqueViolation(err); ok {
		return common.ErrExerciseExists
	}
	return fmt.Errorf("db error: %w", err)
}

func rowsAffected(res sql.Result) (int64, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}
