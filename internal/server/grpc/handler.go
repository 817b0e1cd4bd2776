package grpc

import (
	"context"

	"github.com/dmitrijs2005/liftlog/internal/api"
	"github.com/dmitrijs2005/liftlog/internal/server/services"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// fail logs unexpected errors before they are reduced to codes.Internal.
func (s *GRPCServer) fail(ctx context.Context, err error) error {
	st := toStatus(err)
	if status.Code(st) == codes.Internal {
		s.logger.Error(ctx, "request error", "error", err)
	}
	return st
}

func (s *GRPCServer) userID(ctx context.Context) (int64, error) {
	id, ok := UserIDFromContext(ctx)
	if !ok {
		return 0, status.Error(codes.Unauthenticated, "missing token")
	}
	return id, nil
}

func (s *GRPCServer) Ping(ctx context.Context, req *api.Empty) (*api.PingResponse, error) {
	return &api.PingResponse{Status: "OK"}, nil
}

func (s *GRPCServer) Register(ctx context.Context, req *api.RegisterRequest) (*api.RegisterResponse, error) {

	s.logger.Info(ctx, "Registration request")

	user, err := s.users.Register(ctx, req.Username, req.Email, req.Password)
	if err != nil {
		return nil, s.fail(ctx, err)
	}

	s.logger.Info(ctx, "Registered", "user_id", user.ID)
	return &api.RegisterResponse{UserId: user.ID, Username: user.UserName}, nil
}

func tokenResponse(p *services.TokenPair) *api.TokenResponse {
	return &api.TokenResponse{AccessToken: p.AccessToken, RefreshToken: p.RefreshToken}
}

func (s *GRPCServer) Login(ctx context.Context, req *api.LoginRequest) (*api.TokenResponse, error) {
	tokens, err := s.users.Login(ctx, req.Username, req.Password)
	if err != nil {
		return nil, s.fail(ctx, err)
	}
	return tokenResponse(tokens), nil
}

func (s *GRPCServer) RefreshToken(ctx context.Context, req *api.RefreshTokenRequest) (*api.TokenResponse, error) {
	tokens, err := s.users.RefreshToken(ctx, req.RefreshToken)
	if err != nil {
		return nil, s.fail(ctx, err)
	}
	return tokenResponse(tokens), nil
}

func (s *GRPCServer) Logout(ctx context.Context, req *api.LogoutRequest) (*api.Empty, error) {
	if err := s.users.Logout(ctx, req.RefreshToken); err != nil {
		return nil, s.fail(ctx, err)
	}
	return &api.Empty{}, nil
}

func (s *GRPCServer) ExerciseExists(ctx context.Context, req *api.ExerciseExistsRequest) (*api.ExerciseExistsResponse, error) {
	userID, err := s.userID(ctx)
	if err != nil {
		return nil, err
	}
	ok, err := s.workouts.Exists(ctx, userID, req.Exercise)
	if err != nil {
		return nil, s.fail(ctx, err)
	}
	return &api.ExerciseExistsResponse{Exists: ok}, nil
}

func (s *GRPCServer) AddWorkout(ctx context.Context, req *api.AddWorkoutRequest) (*api.WorkoutResponse, error) {
	userID, err := s.userID(ctx)
	if err != nil {
		return nil, err
	}
	in, err := newWorkoutFromAPI(req)
	if err != nil {
		return nil, s.fail(ctx, err)
	}
	w, err := s.workouts.Insert(ctx, userID, in)
	if err != nil {
		return nil, s.fail(ctx, err)
	}
	return &api.WorkoutResponse{Workout: workoutToAPI(w)}, nil
}

func (s *GRPCServer) ListWorkouts(ctx context.Context, req *api.Empty) (*api.ListWorkoutsResponse, error) {
	userID, err := s.userID(ctx)
	if err != nil {
		return nil, err
	}
	list, err := s.workouts.ListAll(ctx, userID)
	if err != nil {
		return nil, s.fail(ctx, err)
	}
	out := make([]*api.Workout, 0, len(list))
	for i := range list {
		out = append(out, workoutToAPI(&list[i]))
	}
	return &api.ListWorkoutsResponse{Workouts: out}, nil
}

func (s *GRPCServer) UpdateWorkout(ctx context.Context, req *api.UpdateWorkoutRequest) (*api.WorkoutResponse, error) {
	userID, err := s.userID(ctx)
	if err != nil {
		return nil, err
	}
	patch, err := patchFromAPI(req)
	if err != nil {
		return nil, s.fail(ctx, err)
	}
	w, err := s.workouts.Update(ctx, userID, req.Id, patch)
	if err != nil {
		return nil, s.fail(ctx, err)
	}
	return &api.WorkoutResponse{Workout: workoutToAPI(w)}, nil
}

func (s *GRPCServer) DeleteWorkout(ctx context.Context, req *api.DeleteWorkoutRequest) (*api.DeleteResponse, error) {
	userID, err := s.userID(ctx)
	if err != nil {
		return nil, err
	}
	deleted, err := s.workouts.Delete(ctx, userID, req.Id)
	if err != nil {
		return nil, s.fail(ctx, err)
	}
	return &api.DeleteResponse{Deleted: deleted}, nil
}

func (s *GRPCServer) PreviewVideo(ctx context.Context, req *api.VideoURLRequest) (*api.VideoResponse, error) {
	if _, err := s.userID(ctx); err != nil {
		return nil, err
	}
	info, err := s.videos.Preview(ctx, req.Url)
	if err != nil {
		return nil, s.fail(ctx, err)
	}
	return &api.VideoResponse{Video: infoToAPI(info)}, nil
}

func (s *GRPCServer) AddVideo(ctx context.Context, req *api.VideoURLRequest) (*api.VideoResponse, error) {
	userID, err := s.userID(ctx)
	if err != nil {
		return nil, err
	}
	v, err := s.videos.Add(ctx, userID, req.Url)
	if err != nil {
		return nil, s.fail(ctx, err)
	}
	return &api.VideoResponse{Video: videoToAPI(v)}, nil
}

func (s *GRPCServer) ListVideos(ctx context.Context, req *api.Empty) (*api.ListVideosResponse, error) {
	userID, err := s.userID(ctx)
	if err != nil {
		return nil, err
	}
	list, err := s.videos.List(ctx, userID)
	if err != nil {
		return nil, s.fail(ctx, err)
	}
	out := make([]*api.Video, 0, len(list))
	for i := range list {
		out = append(out, videoToAPI(&list[i]))
	}
	return &api.ListVideosResponse{Videos: out}, nil
}

func (s *GRPCServer) DeleteVideo(ctx context.Context, req *api.DeleteVideoRequest) (*api.DeleteResponse, error) {
	userID, err := s.userID(ctx)
	if err != nil {
		return nil, err
	}
	deleted, err := s.videos.Delete(ctx, userID, req.VideoId)
	if err != nil {
		return nil, s.fail(ctx, err)
	}
	return &api.DeleteResponse{Deleted: deleted}, nil
}

func (s *GRPCServer) TodayVideo(ctx context.Context, req *api.Empty) (*api.VideoResponse, error) {
	userID, err := s.userID(ctx)
	if err != nil {
		return nil, err
	}
	v, err := s.videos.Today(ctx, userID)
	if err != nil {
		return nil, s.fail(ctx, err)
	}
	return &api.VideoResponse{Video: videoToAPI(v)}, nil
}

func (s *GRPCServer) ExportWorkouts(ctx context.Context, req *api.Empty) (*api.ExportResponse, error) {
	userID, err := s.userID(ctx)
	if err != nil {
		return nil, err
	}
	url, err := s.exports.Export(ctx, userID)
	if err != nil {
		return nil, s.fail(ctx, err)
	}
	return &api.ExportResponse{Url: url, ExpiresIn: int64(services.ExportLinkValidity.Seconds())}, nil
}
