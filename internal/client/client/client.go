package client

import (
	"context"

	"github.com/dmitrijs2005/liftlog/internal/api"
)

// Client is what the terminal client needs from the LiftLog server.
type Client interface {
	Close() error
	SetTokens(accessToken, refreshToken string)
	Tokens() (accessToken, refreshToken string)
	OnTokensRefreshed(fn func(accessToken, refreshToken string))

	Ping(ctx context.Context) error
	Register(ctx context.Context, username, email, password string) (int64, error)
	Login(ctx context.Context, username, password string) error
	Logout(ctx context.Context) error

	ExerciseExists(ctx context.Context, exercise string) (bool, error)
	AddWorkout(ctx context.Context, req *api.AddWorkoutRequest) (*api.Workout, error)
	ListWorkouts(ctx context.Context) ([]*api.Workout, error)
	UpdateWorkout(ctx context.Context, req *api.UpdateWorkoutRequest) (*api.Workout, error)
	DeleteWorkout(ctx context.Context, id int64) (bool, error)

	PreviewVideo(ctx context.Context, url string) (*api.Video, error)
	AddVideo(ctx context.Context, url string) (*api.Video, error)
	ListVideos(ctx context.Context) ([]*api.Video, error)
	DeleteVideo(ctx context.Context, videoID string) (bool, error)
	TodayVideo(ctx context.Context) (*api.Video, error)
	ExportWorkouts(ctx context.Context) (*api.ExportResponse, error)
}
