package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/liftlog/internal/common"
	"github.com/dmitrijs2005/liftlog/internal/dbx"
	"github.com/dmitrijs2005/liftlog/internal/logging"
	"github.com/dmitrijs2005/liftlog/internal/server/cache"
	"github.com/dmitrijs2005/liftlog/internal/server/models"
	"github.com/dmitrijs2005/liftlog/internal/server/repositories/repomanager"
)

// WorkoutService is the user-scoped store of exercise records. Each call runs
// in exactly one transaction; ListAll results are memoized per user and
// dropped on every mutation.
type WorkoutService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	cache       cache.WorkoutCache
	log         logging.Logger
	now         func() time.Time
}

func NewWorkoutService(db *sql.DB, m repomanager.RepositoryManager, c cache.WorkoutCache, log logging.Logger) *WorkoutService {
	if c == nil {
		c = cache.Nop{}
	}
	if log == nil {
		log = logging.Nop{}
	}
	return &WorkoutService{db: db, repomanager: m, cache: c, log: log, now: time.Now}
}

// today is the current calendar day at UTC midnight.
func (s *WorkoutService) today() time.Time {
	return truncateDay(s.now())
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Exists reports whether userID already logged an exercise with this name.
func (s *WorkoutService) Exists(ctx context.Context, userID int64, exercise string) (bool, error) {
	var found bool
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		found, err = s.repomanager.Workouts(tx).Exists(ctx, userID, strings.TrimSpace(exercise))
		return err
	})
	if err != nil {
		return false, fmt.Errorf("error checking exercise: %w", err)
	}
	return found, nil
}

// Insert stores a new workout and returns it with id and date filled in.
// A second record with the same exercise name yields common.ErrExerciseExists.
func (s *WorkoutService) Insert(ctx context.Context, userID int64, in models.NewWorkout) (*models.Workout, error) {
	in.Exercise = strings.TrimSpace(in.Exercise)
	if err := validate.Struct(in); err != nil {
		return nil, validationError(err)
	}

	w := &models.Workout{
		UserID:      userID,
		Exercise:    in.Exercise,
		Sets:        in.Sets,
		Reps:        in.Reps,
		Weight:      in.Weight,
		WeightUnit:  in.WeightUnit,
		WorkoutDate: s.today(),
	}
	if in.WorkoutDate != nil {
		w.WorkoutDate = truncateDay(*in.WorkoutDate)
	}

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		w, err = s.repomanager.Workouts(tx).Create(ctx, w)
		return err
	})
	if err != nil {
		return nil, s.writeError("insert", err)
	}

	s.cache.Invalidate(ctx, userID)
	s.log.Debug(ctx, "workout added", "user_id", userID, "workout_id", w.ID)
	return w, nil
}

// ListAll returns every workout of userID in insertion order. A user with no
// records gets an empty, non-nil slice.
func (s *WorkoutService) ListAll(ctx context.Context, userID int64) ([]models.Workout, error) {
	if list, ok := s.cache.Get(ctx, userID); ok {
		return list, nil
	}
	version := s.cache.Version(ctx, userID)

	var list []models.Workout
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		list, err = s.repomanager.Workouts(tx).ListByUser(ctx, userID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("error listing workouts: %w", err)
	}
	if list == nil {
		list = []models.Workout{}
	}

	s.cache.Set(ctx, userID, version, list)
	return list, nil
}

// Update applies patch to the workout id owned by userID. A missing or foreign
// record yields common.ErrorNotFound; the merged record must still be valid.
func (s *WorkoutService) Update(ctx context.Context, userID, id int64, patch models.WorkoutPatch) (*models.Workout, error) {
	if patch.Exercise != nil {
		trimmed := strings.TrimSpace(*patch.Exercise)
		patch.Exercise = &trimmed
	}
	if patch.WorkoutDate != nil {
		day := truncateDay(*patch.WorkoutDate)
		patch.WorkoutDate = &day
	}

	var updated models.Workout
	changed := false
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Workouts(tx)

		current, err := repo.GetForUpdate(ctx, userID, id)
		if err != nil {
			return err
		}
		if patch.IsEmpty() {
			updated = *current
			return nil
		}

		updated = patch.Apply(*current)
		if err := validate.Struct(updated); err != nil {
			return validationError(err)
		}
		changed = true
		return repo.Update(ctx, &updated)
	})
	if err != nil {
		return nil, s.writeError("update", err)
	}

	if changed {
		s.cache.Invalidate(ctx, userID)
	}
	return &updated, nil
}

// Delete removes workout id of userID and reports whether anything matched.
func (s *WorkoutService) Delete(ctx context.Context, userID, id int64) (bool, error) {
	var deleted bool
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		deleted, err = s.repomanager.Workouts(tx).Delete(ctx, userID, id)
		return err
	})
	if err != nil {
		return false, fmt.Errorf("error deleting workout: %w", err)
	}
	if deleted {
		s.cache.Invalidate(ctx, userID)
	}
	return deleted, nil
}

// writeError passes typed rejections through and wraps everything else.
func (s *WorkoutService) writeError(op string, err error) error {
	switch {
	case errors.Is(err, common.ErrExerciseExists),
		errors.Is(err, common.ErrorNotFound),
		errors.Is(err, common.ErrValidation):
		return err
	default:
		return fmt.Errorf("error on workout %s: %w", op, err)
	}
}
