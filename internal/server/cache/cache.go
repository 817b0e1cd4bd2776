// Package cache memoizes each user's workout list. Backends never fail
// loudly: a broken cache behaves like an empty one, so the database stays
// the source of truth.
package cache

import (
	"context"

	"github.com/dmitrijs2005/liftlog/internal/server/models"
)

// WorkoutCache stores the result of listing one user's workouts.
//
// Every user has a version that Invalidate bumps. A reader takes the
// version before querying the database and passes it to Set, which drops
// the list when an invalidation happened in between.
type WorkoutCache interface {
	Get(ctx context.Context, userID int64) ([]models.Workout, bool)
	Version(ctx context.Context, userID int64) uint64
	Set(ctx context.Context, userID int64, version uint64, list []models.Workout)
	Invalidate(ctx context.Context, userID int64)
}

// Nop caches nothing.
type Nop struct{}

func (Nop) Get(context.Context, int64) ([]models.Workout, bool)  { return nil, false }
func (Nop) Version(context.Context, int64) uint64                { return 0 }
func (Nop) Set(context.Context, int64, uint64, []models.Workout) {}
func (Nop) Invalidate(context.Context, int64)                    {}

// clone copies the list together with the optional weight fields.
func clone(list []models.Workout) []models.Workout {
	out := make([]models.Workout, len(list))
	copy(out, list)
	for i := range out {
		if w := out[i].Weight; w != nil {
			v := *w
			out[i].Weight = &v
		}
		if u := out[i].WeightUnit; u != nil {
			v := *u
			out[i].WeightUnit = &v
		}
	}
	return out
}
