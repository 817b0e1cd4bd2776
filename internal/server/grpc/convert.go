package grpc

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/liftlog/internal/api"
	"github.com/dmitrijs2005/liftlog/internal/common"
	"github.com/dmitrijs2005/liftlog/internal/server/models"
	"github.com/dmitrijs2005/liftlog/internal/server/videometa"
)

func parseDate(s string) (time.Time, error) {
	d, err := time.Parse(common.DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: workout_date must look like %s", common.ErrValidation, common.DateLayout)
	}
	return d, nil
}

func unitPtr(s string) *models.WeightUnit {
	if s == "" {
		return nil
	}
	u := models.WeightUnit(strings.ToLower(strings.TrimSpace(s)))
	return &u
}

func intPtr(v *int32) *int {
	if v == nil {
		return nil
	}
	n := int(*v)
	return &n
}

func newWorkoutFromAPI(in *api.AddWorkoutRequest) (models.NewWorkout, error) {
	nw := models.NewWorkout{
		Exercise:   in.Exercise,
		Sets:       int(in.Sets),
		Reps:       int(in.Reps),
		Weight:     in.Weight,
		WeightUnit: unitPtr(in.WeightUnit),
	}
	if in.WorkoutDate != "" {
		d, err := parseDate(in.WorkoutDate)
		if err != nil {
			return nw, err
		}
		nw.WorkoutDate = &d
	}
	return nw, nil
}

func patchFromAPI(in *api.UpdateWorkoutRequest) (models.WorkoutPatch, error) {
	p := models.WorkoutPatch{
		Exercise:    in.Exercise,
		Sets:        intPtr(in.Sets),
		Reps:        intPtr(in.Reps),
		Weight:      in.Weight,
		ClearWeight: in.ClearWeight,
	}
	if in.WeightUnit != nil {
		p.WeightUnit = unitPtr(*in.WeightUnit)
		if p.WeightUnit == nil {
			return p, fmt.Errorf("%w: weight_unit must not be empty", common.ErrValidation)
		}
	}
	if in.WorkoutDate != nil {
		d, err := parseDate(*in.WorkoutDate)
		if err != nil {
			return p, err
		}
		p.WorkoutDate = &d
	}
	return p, nil
}

func workoutToAPI(w *models.Workout) *api.Workout {
	out := &api.Workout{
		Id:          w.ID,
		Exercise:    w.Exercise,
		Sets:        int32(w.Sets),
		Reps:        int32(w.Reps),
		Weight:      w.Weight,
		WorkoutDate: w.WorkoutDate.Format(common.DateLayout),
	}
	if w.WeightUnit != nil {
		out.WeightUnit = string(*w.WeightUnit)
	}
	return out
}

func videoToAPI(v *models.Video) *api.Video {
	return &api.Video{
		VideoId:    v.VideoID,
		Title:      v.Title,
		Channel:    v.Channel,
		ChannelId:  v.ChannelID,
		Duration:   v.Duration,
		ViewCount:  v.ViewCount,
		LikeCount:  v.LikeCount,
		Categories: v.Categories,
		Tags:       v.Tags,
		Url:        v.WatchURL(),
	}
}

func infoToAPI(i *videometa.Info) *api.Video {
	return videoToAPI(&models.Video{
		VideoID:    i.VideoID,
		Title:      i.Title,
		Channel:    i.Channel,
		ChannelID:  i.ChannelID,
		Duration:   i.Duration,
		ViewCount:  i.ViewCount,
		LikeCount:  i.LikeCount,
		Categories: i.Categories,
		Tags:       i.Tags,
	})
}
