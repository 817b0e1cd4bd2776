// Package grpc exposes the LiftLog services over gRPC.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/liftlog/internal/api"
	"github.com/dmitrijs2005/liftlog/internal/logging"
	"github.com/dmitrijs2005/liftlog/internal/server/models"
	"github.com/dmitrijs2005/liftlog/internal/server/services"
	"github.com/dmitrijs2005/liftlog/internal/server/videometa"
	"google.golang.org/grpc"
)

type userSvc interface {
	Register(ctx context.Context, username, email, password string) (*models.User, error)
	Login(ctx context.Context, username, password string) (*services.TokenPair, error)
	RefreshToken(ctx context.Context, refreshToken string) (*services.TokenPair, error)
	Logout(ctx context.Context, refreshToken string) error
}

type workoutSvc interface {
	Exists(ctx context.Context, userID int64, exercise string) (bool, error)
	Insert(ctx context.Context, userID int64, in models.NewWorkout) (*models.Workout, error)
	ListAll(ctx context.Context, userID int64) ([]models.Workout, error)
	Update(ctx context.Context, userID, id int64, patch models.WorkoutPatch) (*models.Workout, error)
	Delete(ctx context.Context, userID, id int64) (bool, error)
}

type videoSvc interface {
	Preview(ctx context.Context, rawURL string) (*videometa.Info, error)
	Add(ctx context.Context, userID int64, rawURL string) (*models.Video, error)
	List(ctx context.Context, userID int64) ([]models.Video, error)
	Delete(ctx context.Context, userID int64, videoID string) (bool, error)
	Today(ctx context.Context, userID int64) (*models.Video, error)
}

type exportSvc interface {
	Export(ctx context.Context, userID int64) (string, error)
}

// Services bundles what the handlers call into.
type Services struct {
	Users    userSvc
	Workouts workoutSvc
	Videos   videoSvc
	Exports  exportSvc
}

type GRPCServer struct {
	api.UnimplementedLiftLogServer
	address   string
	users     userSvc
	workouts  workoutSvc
	videos    videoSvc
	exports   exportSvc
	logger    logging.Logger
	jwtSecret []byte
}

func NewGRPCServer(a string, l logging.Logger, svc Services, secretKey string) *GRPCServer {
	return &GRPCServer{
		address:   a,
		logger:    l.With("module", "grpc_server"),
		users:     svc.Users,
		workouts:  svc.Workouts,
		videos:    svc.Videos,
		exports:   svc.Exports,
		jwtSecret: []byte(secretKey),
	}
}

// newServer builds the grpc.Server with interceptors and the service
// registered.
func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.requestLogInterceptor, s.accessTokenInterceptor))
	api.RegisterLiftLogServer(srv, s)
	return srv
}

// Run serves until ctx is cancelled, then stops gracefully.
func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.Serve(ctx, listen)
}

// Serve is Run on an existing listener.
func (s *GRPCServer) Serve(ctx context.Context, listen net.Listener) error {
	srv := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", listen.Addr().String())

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
