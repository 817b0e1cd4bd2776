package cli

import (
	"context"
	"fmt"
	"time"
)

// AddVideo shows what the server found for the URL and adds it to the
// library after confirmation.
func (a *App) AddVideo(ctx context.Context) error {
	url, err := getSimpleText(a.reader, "YouTube URL or video id", a.out)
	if err != nil {
		return err
	}

	v, err := a.api.PreviewVideo(ctx, url)
	if err != nil {
		return err
	}
	printVideo(a.out, v)

	ok, err := GetConfirm(a.reader, "Add to your library?", a.out)
	if err != nil || !ok {
		return err
	}

	if _, err := a.api.AddVideo(ctx, url); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Video added")
	return nil
}

func (a *App) ListVideos(ctx context.Context) error {
	list, err := a.api.ListVideos(ctx)
	if err != nil {
		return err
	}
	printVideos(a.out, list)
	return nil
}

func (a *App) DeleteVideo(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Video id", a.out)
	if err != nil {
		return err
	}

	deleted, err := a.api.DeleteVideo(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		fmt.Fprintf(a.out, "No video %q in your library\n", id)
		return nil
	}
	fmt.Fprintln(a.out, "Deleted")
	return nil
}

func (a *App) TodayVideo(ctx context.Context) error {
	v, err := a.api.TodayVideo(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Today's workout:")
	printVideo(a.out, v)
	return nil
}

func (a *App) Export(ctx context.Context) error {
	resp, err := a.api.ExportWorkouts(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Download your workouts (link valid for %s):\n%s\n", time.Duration(resp.ExpiresIn)*time.Second, resp.Url)
	return nil
}
