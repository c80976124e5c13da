// The hiring service: candidate CRUD plus CV-driven bulk intake over gRPC.
package main

import (
	"context"
	"os"

	"google.golang.org/grpc"

	"github.com/AnnaRychkova1/smart-recruitment-grpc/internal/ai"
	"github.com/AnnaRychkova1/smart-recruitment-grpc/internal/config"
	"github.com/AnnaRychkova1/smart-recruitment-grpc/internal/db"
	"github.com/AnnaRychkova1/smart-recruitment-grpc/internal/events"
	"github.com/AnnaRychkova1/smart-recruitment-grpc/internal/grpcserver"
	"github.com/AnnaRychkova1/smart-recruitment-grpc/internal/hiring"
	"github.com/AnnaRychkova1/smart-recruitment-grpc/internal/logger"
	"github.com/AnnaRychkova1/smart-recruitment-grpc/internal/rpc/hiringpb"
)

func main() {
	log := logger.New("hiring", os.Getenv("LOG_LEVEL"), os.Getenv("LOG_PRETTY") == "true")
	defer log.Sync() //nolint:errcheck

	cfg, err := config.LoadService("HiringService", "HIRING_PORT", "50051")
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

	reader := ai.FileTextReader{Root: os.Getenv("CV_ROOT")}
	svc := hiring.NewService(
		hiring.NewPostgresStore(pool),
		reader,
		ai.NewClient(),
		events.NewPublisher(rdb, log),
		log,
	)
	server := hiring.NewServer(svc, cfg.MaxConcurrent, log)

	err = grpcserver.Run(ctx, cfg, log, func(s *grpc.Server) {
		hiringpb.RegisterHiringServiceServer(s, server)
	})
	if err != nil {
		log.Fatal("serve", logger.Error(err))
	}
}
