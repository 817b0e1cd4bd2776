package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/liftlog/internal/api"
	"github.com/dmitrijs2005/liftlog/internal/client/client"
	"github.com/dmitrijs2005/liftlog/internal/common"
)

const weightPrompt = "Weight, e.g. 80kg or 185lbs"

// parseCount reads a strictly positive integer.
func parseCount(s, field string) (int32, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 32)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%s must be a positive whole number", field)
	}
	return int32(n), nil
}

// parseWeight understands "80kg", "80 kg", "185.5LBS". An empty string means
// bodyweight and yields a nil weight.
func parseWeight(s string) (*float64, string, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return nil, "", nil
	}

	var unit string
	for _, u := range []string{"kg", "lbs"} {
		if strings.HasSuffix(s, u) {
			unit = u
			s = strings.TrimSpace(strings.TrimSuffix(s, u))
			break
		}
	}
	if unit == "" {
		return nil, "", fmt.Errorf("weight needs a unit: kg or lbs")
	}

	w, err := strconv.ParseFloat(s, 64)
	if err != nil || w < 0 {
		return nil, "", fmt.Errorf("weight must be a non-negative number")
	}
	return &w, unit, nil
}

func parseDate(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", nil
	}
	if _, err := time.Parse(common.DateLayout, s); err != nil {
		return "", fmt.Errorf("date must look like %s", common.DateLayout)
	}
	return s, nil
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid workout id %q", s)
	}
	return id, nil
}

func (a *App) AddWorkout(ctx context.Context) error {
	exercise, err := getSimpleText(a.reader, "Exercise", a.out)
	if err != nil {
		return err
	}
	if exercise == "" {
		return fmt.Errorf("exercise is required")
	}

	exists, err := a.api.ExerciseExists(ctx, exercise)
	if err != nil {
		return err
	}
	if exists {
		fmt.Fprintf(a.out, "%q is already logged, use 'edit' to change it\n", exercise)
		return nil
	}

	req := &api.AddWorkoutRequest{Exercise: exercise}

	s, err := getSimpleText(a.reader, "Sets", a.out)
	if err != nil {
		return err
	}
	if req.Sets, err = parseCount(s, "sets"); err != nil {
		return err
	}

	s, err = getSimpleText(a.reader, "Reps", a.out)
	if err != nil {
		return err
	}
	if req.Reps, err = parseCount(s, "reps"); err != nil {
		return err
	}

	s, err = getSimpleText(a.reader, weightPrompt+" (empty for bodyweight)", a.out)
	if err != nil {
		return err
	}
	if req.Weight, req.WeightUnit, err = parseWeight(s); err != nil {
		return err
	}

	s, err = getSimpleText(a.reader, "Date "+common.DateLayout+" (empty for today)", a.out)
	if err != nil {
		return err
	}
	if req.WorkoutDate, err = parseDate(s); err != nil {
		return err
	}

	w, err := a.api.AddWorkout(ctx, req)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Added", formatWorkout(w))
	return nil
}

func (a *App) ListWorkouts(ctx context.Context) error {
	list, err := a.api.ListWorkouts(ctx)
	if err != nil {
		return err
	}
	printWorkouts(a.out, list)
	return nil
}

func (a *App) findWorkout(ctx context.Context, id int64) (*api.Workout, error) {
	list, err := a.api.ListWorkouts(ctx)
	if err != nil {
		return nil, err
	}
	for _, w := range list {
		if w.GetId() == id {
			return w, nil
		}
	}
	return nil, fmt.Errorf("%w: workout %d", client.ErrNotFound, id)
}

// EditWorkout prompts for every field showing the current value. An empty
// answer keeps the field; "-" as weight makes the exercise bodyweight.
func (a *App) EditWorkout(ctx context.Context) error {
	s, err := getSimpleText(a.reader, "Workout id", a.out)
	if err != nil {
		return err
	}
	id, err := parseID(s)
	if err != nil {
		return err
	}

	cur, err := a.findWorkout(ctx, id)
	if err != nil {
		return err
	}

	req := &api.UpdateWorkoutRequest{Id: id}
	changed := false

	s, err = getSimpleText(a.reader, fmt.Sprintf("Exercise [%s]", cur.Exercise), a.out)
	if err != nil {
		return err
	}
	if s != "" && s != cur.Exercise {
		req.Exercise, changed = &s, true
	}

	for _, f := range []struct {
		name string
		cur  int32
		dst  **int32
	}{
		{"sets", cur.Sets, &req.Sets},
		{"reps", cur.Reps, &req.Reps},
	} {
		s, err = getSimpleText(a.reader, fmt.Sprintf("%s [%d]", strings.ToUpper(f.name[:1])+f.name[1:], f.cur), a.out)
		if err != nil {
			return err
		}
		if s == "" {
			continue
		}
		n, err := parseCount(s, f.name)
		if err != nil {
			return err
		}
		if n != f.cur {
			*f.dst, changed = &n, true
		}
	}

	s, err = getSimpleText(a.reader, fmt.Sprintf("%s, '-' for bodyweight [%s]", weightPrompt, formatWeight(cur.Weight, cur.WeightUnit)), a.out)
	if err != nil {
		return err
	}
	switch s {
	case "":
	case "-":
		if cur.Weight != nil {
			req.ClearWeight, changed = true, true
		}
	default:
		w, unit, err := parseWeight(s)
		if err != nil {
			return err
		}
		req.Weight, req.WeightUnit, changed = w, &unit, true
	}

	s, err = getSimpleText(a.reader, fmt.Sprintf("Date [%s]", cur.WorkoutDate), a.out)
	if err != nil {
		return err
	}
	if d, err := parseDate(s); err != nil {
		return err
	} else if d != "" && d != cur.WorkoutDate {
		req.WorkoutDate, changed = &d, true
	}

	if !changed {
		fmt.Fprintln(a.out, "Nothing to change")
		return nil
	}

	w, err := a.api.UpdateWorkout(ctx, req)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Updated", formatWorkout(w))
	return nil
}

func (a *App) DeleteWorkout(ctx context.Context) error {
	s, err := getSimpleText(a.reader, "Workout id", a.out)
	if err != nil {
		return err
	}
	id, err := parseID(s)
	if err != nil {
		return err
	}

	ok, err := GetConfirm(a.reader, fmt.Sprintf("Delete workout %d?", id), a.out)
	if err != nil || !ok {
		return err
	}

	deleted, err := a.api.DeleteWorkout(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		fmt.Fprintf(a.out, "No workout with id %d\n", id)
		return nil
	}
	fmt.Fprintln(a.out, "Deleted")
	return nil
}
