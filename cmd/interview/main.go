// The interview service: schedule building and rescheduling over gRPC.
// Privileged, so every call must carry a bearer token.
package main

import (
	"context"
	"os"

	"google.golang.org/grpc"

	"github.com/AnnaRychkova1/smart-recruitment-grpc/internal/config"
	"github.com/AnnaRychkova1/smart-recruitment-grpc/internal/db"
	"github.com/AnnaRychkova1/smart-recruitment-grpc/internal/events"
	"github.com/AnnaRychkova1/smart-recruitment-grpc/internal/grpcserver"
	"github.com/AnnaRychkova1/smart-recruitment-grpc/internal/interview"
	"github.com/AnnaRychkova1/smart-recruitment-grpc/internal/logger"
	"github.com/AnnaRychkova1/smart-recruitment-grpc/internal/rpc/interviewpb"
	"github.com/AnnaRychkova1/smart-recruitment-grpc/internal/token"
)

func main() {
	log := logger.New("interview", os.Getenv("LOG_LEVEL"), os.Getenv("LOG_PRETTY") == "true")
	defer log.Sync() //nolint:errcheck

	cfg, err := config.LoadService("InterviewService", "INTERVIEW_PORT", "50053")
	if err != nil {
		log.Fatal("config", logger.Error(err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal("postgres", logger.Error(err))
	}
	defer pool.Close()

	rdb, err := db.NewRedisClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatal("redis", logger.Error(err))
	}
	defer rdb.Close()

	svc := interview.NewService(
		interview.NewPostgresStore(pool),
		events.NewPublisher(rdb, log),
		log,
	)
	server := interview.NewServer(svc, cfg.MaxConcurrent, log)

	tokens := token.NewManager(cfg.JWTSecret)
	err = grpcserver.Run(ctx, cfg, log, func(s *grpc.Server) {
		interviewpb.RegisterInterviewServiceServer(s, server)
	},
		grpc.UnaryInterceptor(tokens.UnaryInterceptor()),
		grpc.StreamInterceptor(tokens.StreamInterceptor()),
	)
	if err != nil {
		log.Fatal("serve", logger.Error(err))
	}
}
