package auth

import (
	"context"

	"github.com/AnnaRychkova1/smart-recruitment-grpc/internal/faults"
	"github.com/AnnaRychkova1/smart-recruitment-grpc/internal/rpc/authpb"
)

// Server implements authpb.AuthServiceServer.
type Server struct {
	authpb.UnimplementedAuthServiceServer
	svc *Service
}

// NewServer constructs the gRPC surface over svc.
func NewServer(svc *Service) *Server {
	return &Server{svc: svc}
}

func (s *Server) SignUp(ctx context.Context, req *authpb.SignUpRequest) (*authpb.AuthResponse, error) {
	u, signed, err := s.svc.SignUp(ctx, req.Name, req.Email, req.Password)
	if err != nil {
		return nil, faults.ToStatus(err)
	}
	return &authpb.AuthResponse{Name: u.Name, Token: signed}, nil
}

func (s *Server) SignIn(ctx context.Context, req *authpb.SignInRequest) (*authpb.AuthResponse, error) {
	u, signed, err := s.svc.SignIn(ctx, req.Email, req.Password)
	if err != nil {
		return nil, faults.ToStatus(err)
	}
	return &authpb.AuthResponse{Name: u.Name, Token: signed}, nil
}
