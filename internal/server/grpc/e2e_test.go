package grpc

import (
	"context"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/dmitrijs2005/liftlog/internal/api"
	"github.com/dmitrijs2005/liftlog/internal/common"
	"github.com/dmitrijs2005/liftlog/internal/cryptox"
	"github.com/dmitrijs2005/liftlog/internal/dbx"
	"github.com/dmitrijs2005/liftlog/internal/logging"
	"github.com/dmitrijs2005/liftlog/internal/server/cache"
	"github.com/dmitrijs2005/liftlog/internal/server/config"
	"github.com/dmitrijs2005/liftlog/internal/server/dbtest"
	"github.com/dmitrijs2005/liftlog/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/liftlog/internal/server/services"
	"github.com/dmitrijs2005/liftlog/internal/server/videometa"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

type stubFetcher struct{}

func (stubFetcher) Fetch(_ context.Context, rawURL string) (*videometa.Info, error) {
	id, _, err := videometa.ParseURL(rawURL)
	if err != nil || id == "" {
		return nil, fmt.Errorf("%w: %s", common.ErrVideoUnavailable, rawURL)
	}
	return &videometa.Info{VideoID: id, Title: "Video " + id, Categories: []string{}, Tags: []string{}}, nil
}

// startStack serves real services backed by SQLite over an in-memory
// listener and returns a connected client.
func startStack(t *testing.T) api.LiftLogClient {
	t.Helper()

	db := dbtest.NewSQLite(t)
	rm, err := repomanager.New(dbx.SQLite)
	require.NoError(t, err)

	cfg := &config.Config{
		SecretKey:                    "e2e",
		AccessTokenValidityDuration:  time.Minute,
		RefreshTokenValidityDuration: time.Hour,
		MinPasswordLength:            8,
	}
	hasher, err := cryptox.NewPasswordHasher(cryptox.SchemeBcrypt)
	require.NoError(t, err)
	hasher.Register(cryptox.BcryptHasher{Cost: bcrypt.MinCost})

	workouts := services.NewWorkoutService(db, rm, cache.NewMemory(time.Minute), nil)
	srv := NewGRPCServer("", logging.Nop{}, Services{
		Users:    services.NewUserService(db, rm, hasher, cfg, nil),
		Workouts: workouts,
		Videos:   services.NewVideoService(db, rm, stubFetcher{}, nil),
		Exports:  services.NewExportService(workouts, cfg, nil),
	}, cfg.SecretKey)

	lis := bufconn.Listen(1 << 20)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, lis) }()
	t.Cleanup(func() {
		cancel()
		<-done
	})

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return api.NewLiftLogClient(conn)
}

func authed(token string) context.Context {
	return metadata.AppendToOutgoingContext(context.Background(), common.AccessTokenHeaderName, token)
}

func TestEndToEnd_WorkoutLifecycle(t *testing.T) {
	c := startStack(t)
	bg := context.Background()

	_, err := c.Register(bg, &api.RegisterRequest{Username: "alice", Email: "alice@example.com", Password: "s3cretpass"})
	require.NoError(t, err)

	_, err = c.Register(bg, &api.RegisterRequest{Username: "alice", Email: "other@example.com", Password: "s3cretpass"})
	assert.Equal(t, codes.AlreadyExists, status.Code(err))

	_, err = c.Login(bg, &api.LoginRequest{Username: "alice", Password: "wrong-pass"})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	tokens, err := c.Login(bg, &api.LoginRequest{Username: "alice", Password: "s3cretpass"})
	require.NoError(t, err)

	_, err = c.ListWorkouts(bg, &api.Empty{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	ctx := authed(tokens.AccessToken)

	var header metadata.MD
	list, err := c.ListWorkouts(ctx, &api.Empty{}, grpc.Header(&header))
	require.NoError(t, err)
	assert.Empty(t, list.Workouts)
	assert.Len(t, header.Get(common.RequestIDHeaderName), 1)

	w := 135.0
	added, err := c.AddWorkout(ctx, &api.AddWorkoutRequest{Exercise: "Squat", Sets: 3, Reps: 10, Weight: &w, WeightUnit: "lbs"})
	require.NoError(t, err)
	assert.Equal(t, time.Now().UTC().Format(common.DateLayout), added.Workout.WorkoutDate)

	exists, err := c.ExerciseExists(ctx, &api.ExerciseExistsRequest{Exercise: "Squat"})
	require.NoError(t, err)
	assert.True(t, exists.Exists)

	_, err = c.AddWorkout(ctx, &api.AddWorkoutRequest{Exercise: "Squat", Sets: 1, Reps: 1})
	assert.Equal(t, codes.AlreadyExists, status.Code(err))

	reps := int32(12)
	updated, err := c.UpdateWorkout(ctx, &api.UpdateWorkoutRequest{Id: added.Workout.Id, Reps: &reps})
	require.NoError(t, err)
	assert.Equal(t, int32(12), updated.Workout.Reps)
	assert.Equal(t, "lbs", updated.Workout.WeightUnit)

	list, err = c.ListWorkouts(ctx, &api.Empty{})
	require.NoError(t, err)
	require.Len(t, list.Workouts, 1)
	assert.Equal(t, int32(12), list.Workouts[0].Reps)

	del, err := c.DeleteWorkout(ctx, &api.DeleteWorkoutRequest{Id: added.Workout.Id})
	require.NoError(t, err)
	assert.True(t, del.Deleted)

	del, err = c.DeleteWorkout(ctx, &api.DeleteWorkoutRequest{Id: added.Workout.Id})
	require.NoError(t, err)
	assert.False(t, del.Deleted)

	_, err = c.ExportWorkouts(ctx, &api.Empty{})
	assert.Equal(t, codes.Unimplemented, status.Code(err))

	refreshed, err := c.RefreshToken(bg, &api.RefreshTokenRequest{RefreshToken: tokens.RefreshToken})
	require.NoError(t, err)
	_, err = c.Logout(bg, &api.LogoutRequest{RefreshToken: refreshed.RefreshToken})
	require.NoError(t, err)
	_, err = c.RefreshToken(bg, &api.RefreshTokenRequest{RefreshToken: refreshed.RefreshToken})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestEndToEnd_Videos(t *testing.T) {
	c := startStack(t)
	bg := context.Background()

	_, err := c.Register(bg, &api.RegisterRequest{Username: "bob", Email: "bob@example.com", Password: "s3cretpass"})
	require.NoError(t, err)
	tokens, err := c.Login(bg, &api.LoginRequest{Username: "bob", Password: "s3cretpass"})
	require.NoError(t, err)
	ctx := authed(tokens.AccessToken)

	_, err = c.TodayVideo(ctx, &api.Empty{})
	assert.Equal(t, codes.NotFound, status.Code(err))

	_, err = c.AddVideo(ctx, &api.VideoURLRequest{Url: "https://example.com/nope"})
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))

	added, err := c.AddVideo(ctx, &api.VideoURLRequest{Url: "https://youtu.be/abcdefghijk"})
	require.NoError(t, err)
	assert.Equal(t, "abcdefghijk", added.Video.VideoId)

	today, err := c.TodayVideo(ctx, &api.Empty{})
	require.NoError(t, err)
	assert.Equal(t, "abcdefghijk", today.Video.VideoId)

	list, err := c.ListVideos(ctx, &api.Empty{})
	require.NoError(t, err)
	assert.Len(t, list.Videos, 1)
}
