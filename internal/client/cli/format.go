package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dmitrijs2005/liftlog/internal/api"
)

func formatWeight(w *float64, unit string) string {
	if w == nil {
		return "bodyweight"
	}
	return strconv.FormatFloat(*w, 'f', -1, 64) + " " + unit
}

func formatWorkout(w *api.Workout) string {
	return fmt.Sprintf("#%d %s: %dx%d, %s on %s", w.Id, w.Exercise, w.Sets, w.Reps, formatWeight(w.Weight, w.WeightUnit), w.WorkoutDate)
}

func printWorkouts(out io.Writer, list []*api.Workout) {
	if len(list) == 0 {
		fmt.Fprintln(out, "No workouts yet. Use 'add' to log one.")
		return
	}
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tEXERCISE\tSETS\tREPS\tWEIGHT\tDATE")
	for _, w := range list {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%s\t%s\n", w.Id, w.Exercise, w.Sets, w.Reps, formatWeight(w.Weight, w.WeightUnit), w.WorkoutDate)
	}
	_ = tw.Flush()
}

func formatDuration(seconds int64) string {
	return (time.Duration(seconds) * time.Second).String()
}

func printVideo(out io.Writer, v *api.Video) {
	fmt.Fprintf(out, "%s\n  by %s, %s\n  %d views, %d likes\n", v.Title, v.Channel, formatDuration(v.Duration), v.ViewCount, v.LikeCount)
	if len(v.Categories) > 0 {
		fmt.Fprintf(out, "  categories: %s\n", strings.Join(v.Categories, ", "))
	}
	if len(v.Tags) > 0 {
		fmt.Fprintf(out, "  tags: %s\n", strings.Join(v.Tags, ", "))
	}
	fmt.Fprintf(out, "  %s\n", v.Url)
}

func printVideos(out io.Writer, list []*api.Video) {
	if len(list) == 0 {
		fmt.Fprintln(out, "Your video library is empty. Use 'addvideo' to add one.")
		return
	}
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "VIDEO ID\tTITLE\tCHANNEL\tDURATION")
	for _, v := range list {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", v.VideoId, v.Title, v.Channel, formatDuration(v.Duration))
	}
	_ = tw.Flush()
}
