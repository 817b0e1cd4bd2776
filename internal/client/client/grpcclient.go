package client

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/liftlog/internal/api"
	"github.com/dmitrijs2005/liftlog/internal/common"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type GRPCClient struct {
	endpointURL string
	timeout     time.Duration
	conn        *grpc.ClientConn
	client      api.LiftLogClient

	mu           sync.Mutex
	accessToken  string
	refreshToken string
	onRefresh    func(accessToken, refreshToken string)
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	if token != "" {
		md.Set(common.AccessTokenHeaderName, token)
	}

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	if api.PublicMethods[method] {
		return invoker(ctx, method, req, reply, cc, opts...)
	}

	accessToken, refreshToken := s.Tokens()

	err := invoker(withAccessToken(ctx, accessToken), method, req, reply, cc, opts...)
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok || st.Code() != codes.Unauthenticated || st.Message() != common.ErrTokenExpired.Error() {
		return err
	}
	if refreshToken == "" {
		return err
	}

	resp, rerr := s.client.RefreshToken(ctx, &api.RefreshTokenRequest{RefreshToken: refreshToken})
	if rerr != nil {
		return rerr
	}

	s.storeTokens(resp.AccessToken, resp.RefreshToken)

	return invoker(withAccessToken(ctx, resp.AccessToken), method, req, reply, cc, opts...)
}

// NewGRPCClient connects lazily to endpointURL. Extra dial options are
// appended after the defaults.
func NewGRPCClient(endpointURL string, timeout time.Duration, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, timeout: timeout}

	dialOpts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(c.accessTokenInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(endpointURL, dialOpts...)
	if err != nil {
		return nil, err
	}
	c.conn = conn
	c.client = api.NewLiftLogClient(conn)
	return c, nil
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func (s *GRPCClient) SetTokens(accessToken, refreshToken string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessToken, s.refreshToken = accessToken, refreshToken
}

func (s *GRPCClient) Tokens() (string, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accessToken, s.refreshToken
}

// OnTokensRefreshed registers fn to be called after every automatic
// token rotation.
func (s *GRPCClient) OnTokensRefreshed(fn func(accessToken, refreshToken string)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onRefresh = fn
}

func (s *GRPCClient) storeTokens(accessToken, refreshToken string) {
	s.mu.Lock()
	s.accessToken, s.refreshToken = accessToken, refreshToken
	fn := s.onRefresh
	s.mu.Unlock()

	if fn != nil {
		fn(accessToken, refreshToken)
	}
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	resp, err := s.client.Ping(ctx, &api.Empty{})
	if err != nil {
		return s.mapError(err)
	}
	if resp.Status != "OK" {
		return ErrUnavailable
	}
	return nil
}

func (s *GRPCClient) Register(ctx context.Context, username, email, password string) (int64, error) {
	resp, err := s.client.Register(ctx, &api.RegisterRequest{Username: username, Email: email, Password: password})
	if err != nil {
		return 0, s.mapError(err)
	}
	return resp.UserId, nil
}

func (s *GRPCClient) Login(ctx context.Context, username, password string) error {
	resp, err := s.client.Login(ctx, &api.LoginRequest{Username: username, Password: password})
	if err != nil {
		return s.mapError(err)
	}

	s.SetTokens(resp.AccessToken, resp.RefreshToken)
	return nil
}

// Logout revokes the refresh token on the server and forgets both tokens.
// The local tokens are dropped even if the server call fails.
func (s *GRPCClient) Logout(ctx context.Context) error {
	_, refreshToken := s.Tokens()
	s.SetTokens("", "")

	if refreshToken == "" {
		return nil
	}
	if _, err := s.client.Logout(ctx, &api.LogoutRequest{RefreshToken: refreshToken}); err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) ExerciseExists(ctx context.Context, exercise string) (bool, error) {
	resp, err := s.client.ExerciseExists(ctx, &api.ExerciseExistsRequest{Exercise: exercise})
	if err != nil {
		return false, s.mapError(err)
	}
	return resp.Exists, nil
}

func (s *GRPCClient) AddWorkout(ctx context.Context, req *api.AddWorkoutRequest) (*api.Workout, error) {
	resp, err := s.client.AddWorkout(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.GetWorkout(), nil
}

func (s *GRPCClient) ListWorkouts(ctx context.Context) ([]*api.Workout, error) {
	resp, err := s.client.ListWorkouts(ctx, &api.Empty{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Workouts, nil
}

func (s *GRPCClient) UpdateWorkout(ctx context.Context, req *api.UpdateWorkoutRequest) (*api.Workout, error) {
	resp, err := s.client.UpdateWorkout(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.GetWorkout(), nil
}

func (s *GRPCClient) DeleteWorkout(ctx context.Context, id int64) (bool, error) {
	resp, err := s.client.DeleteWorkout(ctx, &api.DeleteWorkoutRequest{Id: id})
	if err != nil {
		return false, s.mapError(err)
	}
	return resp.Deleted, nil
}

func (s *GRPCClient) PreviewVideo(ctx context.Context, url string) (*api.Video, error) {
	resp, err := s.client.PreviewVideo(ctx, &api.VideoURLRequest{Url: url})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.GetVideo(), nil
}

func (s *GRPCClient) AddVideo(ctx context.Context, url string) (*api.Video, error) {
	resp, err := s.client.AddVideo(ctx, &api.VideoURLRequest{Url: url})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.GetVideo(), nil
}

func (s *GRPCClient) ListVideos(ctx context.Context) ([]*api.Video, error) {
	resp, err := s.client.ListVideos(ctx, &api.Empty{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Videos, nil
}

func (s *GRPCClient) DeleteVideo(ctx context.Context, videoID string) (bool, error) {
	resp, err := s.client.DeleteVideo(ctx, &api.DeleteVideoRequest{VideoId: videoID})
	if err != nil {
		return false, s.mapError(err)
	}
	return resp.Deleted, nil
}

func (s *GRPCClient) TodayVideo(ctx context.Context) (*api.Video, error) {
	resp, err := s.client.TodayVideo(ctx, &api.Empty{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.GetVideo(), nil
}

func (s *GRPCClient) ExportWorkouts(ctx context.Context) (*api.ExportResponse, error) {
	resp, err := s.client.ExportWorkouts(ctx, &api.Empty{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return fmt.Errorf("rpc error: %w", err)
	}
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return fmt.Errorf("%w: %s", ErrUnauthorized, st.Message())
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	case codes.NotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, st.Message())
	case codes.AlreadyExists:
		return fmt.Errorf("%w: %s", ErrAlreadyExists, st.Message())
	case codes.InvalidArgument, codes.FailedPrecondition:
		return fmt.Errorf("%w: %s", ErrInvalidInput, st.Message())
	case codes.Unimplemented:
		return fmt.Errorf("%w: %s", ErrNotSupported, st.Message())
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
