package models

import "time"

// WeightUnit is the unit a lifted weight is recorded in.
type WeightUnit string

const (
	Pounds    WeightUnit = "lbs"
	Kilograms WeightUnit = "kg"
)

// Workout is one logged exercise. Weight and WeightUnit are either both set
// or both nil; nil means a bodyweight exercise. Sets and reps are capped at
// 10000 so they always fit the int32 wire fields.
type Workout struct {
	ID          int64       `json:"id"`
	UserID      int64       `json:"user_id"`
	Exercise    string      `json:"exercise" validate:"required,max=100"`
	Sets        int         `json:"sets" validate:"gte=1,lte=10000"`
	Reps        int         `json:"reps" validate:"gte=1,lte=10000"`
	Weight      *float64    `json:"weight,omitempty" validate:"omitempty,gte=0"`
	WeightUnit  *WeightUnit `json:"weight_unit,omitempty" validate:"omitempty,oneof=lbs kg"`
	WorkoutDate time.Time   `json:"workout_date"`
}

// IsBodyweight reports whether no weight is recorded.
func (w *Workout) IsBodyweight() bool {
	return w.Weight == nil
}

// NewWorkout is the payload for inserting a workout. A nil WorkoutDate means
// the day of insertion.
type NewWorkout struct {
	Exercise    string      `json:"exercise" validate:"required,max=100"`
	Sets        int         `json:"sets" validate:"gte=1,lte=10000"`
	Reps        int         `json:"reps" validate:"gte=1,lte=10000"`
	Weight      *float64    `json:"weight,omitempty" validate:"omitempty,gte=0"`
	WeightUnit  *WeightUnit `json:"weight_unit,omitempty" validate:"omitempty,oneof=lbs kg"`
	WorkoutDate *time.Time  `json:"workout_date,omitempty"`
}

// WorkoutPatch lists the fields an update may change. Nil fields are left
// untouched. ClearWeight removes both weight and unit and wins over Weight
// and WeightUnit.
type WorkoutPatch struct {
	Exercise    *string     `json:"exercise,omitempty"`
	Sets        *int        `json:"sets,omitempty"`
	Reps        *int        `json:"reps,omitempty"`
	Weight      *float64    `json:"weight,omitempty"`
	WeightUnit  *WeightUnit `json:"weight_unit,omitempty"`
	WorkoutDate *time.Time  `json:"workout_date,omitempty"`
	ClearWeight bool        `json:"clear_weight,omitempty"`
}

// IsEmpty reports whether applying p would change nothing.
func (p WorkoutPatch) IsEmpty() bool {
	return p.Exercise == nil && p.Sets == nil && p.Reps == nil &&
		p.Weight == nil && p.WeightUnit == nil && p.WorkoutDate == nil && !p.ClearWeight
}

// Apply returns a copy of w with the patch applied. w is not modified.
func (p WorkoutPatch) Apply(w Workout) Workout {
	if p.Exercise != nil {
		w.Exercise = *p.Exercise
	}
	if p.Sets != nil {
		w.Sets = *p.Sets
	}
	if p.Reps != nil {
		w.Reps = *p.Reps
	}
	if p.ClearWeight {
		w.Weight = nil
		w.WeightUnit = nil
	} else {
		if p.Weight != nil {
			v := *p.Weight
			w.Weight = &v
		}
		if p.WeightUnit != nil {
			u := *p.WeightUnit
			w.WeightUnit = &u
		}
	}
	if p.WorkoutDate != nil {
		w.WorkoutDate = *p.WorkoutDate
	}
	return w
}
