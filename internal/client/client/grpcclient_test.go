package client

import (
	"context"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/liftlog/internal/api"
	"github.com/dmitrijs2005/liftlog/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

// stubServer hands out A1/R1 on login, rejects A1 as expired and accepts
// the rotated A2.
type stubServer struct {
	api.UnimplementedLiftLogServer

	mu           sync.Mutex
	refreshCalls int
	logoutToken  string
	lastAdd      *api.AddWorkoutRequest
}

func tokenFrom(ctx context.Context) string {
	md, _ := metadata.FromIncomingContext(ctx)
	if v := md.Get(common.AccessTokenHeaderName); len(v) > 0 {
		return v[0]
	}
	return ""
}

func (s *stubServer) authorize(ctx context.Context) error {
	switch tokenFrom(ctx) {
	case "A2":
		return nil
	case "A1":
		return status.Error(codes.Unauthenticated, common.ErrTokenExpired.Error())
	default:
		return status.Error(codes.Unauthenticated, "invalid token")
	}
}

func (s *stubServer) Ping(context.Context, *api.Empty) (*api.PingResponse, error) {
	return &api.PingResponse{Status: "OK"}, nil
}

func (s *stubServer) Register(_ context.Context, in *api.RegisterRequest) (*api.RegisterResponse, error) {
	if in.Username == "taken" {
		return nil, status.Error(codes.AlreadyExists, common.ErrUsernameTaken.Error())
	}
	return &api.RegisterResponse{UserId: 7, Username: in.Username}, nil
}

func (s *stubServer) Login(_ context.Context, in *api.LoginRequest) (*api.TokenResponse, error) {
	if in.Password != "secret" {
		return nil, status.Error(codes.Unauthenticated, "unauthorized")
	}
	return &api.TokenResponse{AccessToken: "A1", RefreshToken: "R1"}, nil
}

func (s *stubServer) RefreshToken(_ context.Context, in *api.RefreshTokenRequest) (*api.TokenResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refreshCalls++
	if in.RefreshToken != "R1" {
		return nil, status.Error(codes.Unauthenticated, common.ErrRefreshTokenExpired.Error())
	}
	return &api.TokenResponse{AccessToken: "A2", RefreshToken: "R2"}, nil
}

func (s *stubServer) Logout(_ context.Context, in *api.LogoutRequest) (*api.Empty, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logoutToken = in.RefreshToken
	return &api.Empty{}, nil
}

func (s *stubServer) ListWorkouts(ctx context.Context, _ *api.Empty) (*api.ListWorkoutsResponse, error) {
	if err := s.authorize(ctx); err != nil {
		return nil, err
	}
	return &api.ListWorkoutsResponse{Workouts: []*api.Workout{{Id: 1, Exercise: "Squat", Sets: 3, Reps: 5}}}, nil
}

func (s *stubServer) AddWorkout(ctx context.Context, in *api.AddWorkoutRequest) (*api.WorkoutResponse, error) {
	if err := s.authorize(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.lastAdd = in
	s.mu.Unlock()
	if in.Sets <= 0 {
		return nil, status.Error(codes.InvalidArgument, "validation error: sets must be greater than 0")
	}
	return &api.WorkoutResponse{Workout: &api.Workout{Id: 2, Exercise: in.Exercise, Sets: in.Sets, Reps: in.Reps}}, nil
}

func (s *stubServer) DeleteWorkout(ctx context.Context, in *api.DeleteWorkoutRequest) (*api.DeleteResponse, error) {
	if err := s.authorize(ctx); err != nil {
		return nil, err
	}
	return &api.DeleteResponse{Deleted: in.Id == 1}, nil
}

func (s *stubServer) TodayVideo(ctx context.Context, _ *api.Empty) (*api.VideoResponse, error) {
	if err := s.authorize(ctx); err != nil {
		return nil, err
	}
	return nil, status.Error(codes.NotFound, "not found")
}

func newTestClient(t *testing.T, srv api.LiftLogServer) *GRPCClient {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	s := grpc.NewServer()
	api.RegisterLiftLogServer(s, srv)
	go func() { _ = s.Serve(lis) }()
	t.Cleanup(s.Stop)

	c, err := NewGRPCClient("passthrough:///bufnet", 5*time.Second,
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}))
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestGRPCClient_RefreshesExpiredTokenAndRetries(t *testing.T) {
	srv := &stubServer{}
	c := newTestClient(t, srv)
	ctx := context.Background()

	var rotated []string
	c.OnTokensRefreshed(func(a, r string) { rotated = append(rotated, a, r) })

	require.NoError(t, c.Login(ctx, "alice", "secret"))

	list, err := c.ListWorkouts(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Squat", list[0].Exercise)

	assert.Equal(t, []string{"A2", "R2"}, rotated)
	a, r := c.Tokens()
	assert.Equal(t, "A2", a)
	assert.Equal(t, "R2", r)

	// the new token is used directly, no second refresh
	_, err = c.ListWorkouts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, srv.refreshCalls)
}

func TestGRPCClient_RefreshFailureIsUnauthorized(t *testing.T) {
	c := newTestClient(t, &stubServer{})
	c.SetTokens("A1", "stale")

	_, err := c.ListWorkouts(context.Background())
	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Contains(t, err.Error(), "refresh token expired")
}

func TestGRPCClient_NoRefreshTokenNoRetry(t *testing.T) {
	srv := &stubServer{}
	c := newTestClient(t, srv)
	c.SetTokens("A1", "")

	_, err := c.ListWorkouts(context.Background())
	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Zero(t, srv.refreshCalls)
}

func TestGRPCClient_InvalidTokenIsNotRefreshed(t *testing.T) {
	srv := &stubServer{}
	c := newTestClient(t, srv)
	c.SetTokens("garbage", "R1")

	_, err := c.ListWorkouts(context.Background())
	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Zero(t, srv.refreshCalls)
}

func TestGRPCClient_ErrorMapping(t *testing.T) {
	c := newTestClient(t, &stubServer{})
	ctx := context.Background()
	c.SetTokens("A2", "R2")

	_, err := c.Register(ctx, "taken", "t@example.com", "password1")
	require.ErrorIs(t, err, ErrAlreadyExists)

	err = c.Login(ctx, "alice", "wrong")
	require.ErrorIs(t, err, ErrUnauthorized)

	_, err = c.AddWorkout(ctx, &api.AddWorkoutRequest{Exercise: "Squat", Sets: 0, Reps: 5})
	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, err.Error(), "sets must be greater than 0")

	_, err = c.TodayVideo(ctx)
	require.ErrorIs(t, err, ErrNotFound)

	_, err = c.ExportWorkouts(ctx)
	require.ErrorIs(t, err, ErrNotSupported)
}

func TestGRPCClient_Calls(t *testing.T) {
	srv := &stubServer{}
	c := newTestClient(t, srv)
	ctx := context.Background()

	require.NoError(t, c.Ping(ctx))

	id, err := c.Register(ctx, "alice", "a@example.com", "password1")
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)

	c.SetTokens("A2", "R2")

	w, err := c.AddWorkout(ctx, &api.AddWorkoutRequest{Exercise: "Bench", Sets: 3, Reps: 8})
	require.NoError(t, err)
	assert.Equal(t, int64(2), w.Id)
	assert.Equal(t, "Bench", srv.lastAdd.Exercise)

	deleted, err := c.DeleteWorkout(ctx, 1)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = c.DeleteWorkout(ctx, 99)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestGRPCClient_Logout(t *testing.T) {
	srv := &stubServer{}
	c := newTestClient(t, srv)
	ctx := context.Background()

	require.NoError(t, c.Logout(ctx))
	assert.Empty(t, srv.logoutToken, "nothing to revoke")

	c.SetTokens("A2", "R2")
	require.NoError(t, c.Logout(ctx))
	assert.Equal(t, "R2", srv.logoutToken)

	a, r := c.Tokens()
	assert.Empty(t, a)
	assert.Empty(t, r)
}

func TestWithAccessToken_ReplacesExisting(t *testing.T) {
	ctx := metadata.AppendToOutgoingContext(context.Background(), common.AccessTokenHeaderName, "old", "x-other", "1")

	ctx = withAccessToken(ctx, "new")

	md, _ := metadata.FromOutgoingContext(ctx)
	assert.Equal(t, []string{"new"}, md.Get(common.AccessTokenHeaderName))
	assert.Equal(t, []string{"1"}, md.Get("x-other"))

	md, _ = metadata.FromOutgoingContext(withAccessToken(ctx, ""))
	assert.Empty(t, md.Get(common.AccessTokenHeaderName))
}
