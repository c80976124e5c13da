// The filtering service: CV relevance filtering over gRPC. Privileged, so
// every call must carry a bearer token.
package main

import (
	"context"
	"os"

	"google.golang.org/grpc"

	"github.com/AnnaRychkova1/smart-recruitment-grpc/internal/ai"
	"github.com/AnnaRychkova1/smart-recruitment-grpc/internal/config"
	"github.com/AnnaRychkova1/smart-recruitment-grpc/internal/db"
	"github.com/AnnaRychkova1/smart-recruitment-grpc/internal/events"
	"github.com/AnnaRychkova1/smart-recruitment-grpc/internal/filtering"
	"github.com/AnnaRychkova1/smart-recruitment-grpc/internal/grpcserver"
	"github.com/AnnaRychkova1/smart-recruitment-grpc/internal/logger"
	"github.com/AnnaRychkova1/smart-recruitment-grpc/internal/rpc/filteringpb"
	"github.com/AnnaRychkova1/smart-recruitment-grpc/internal/token"
)

func main() {
	log := logger.New("filtering", os.Getenv("LOG_LEVEL"), os.Getenv("LOG_PRETTY") == "true")
	defer log.Sync() //nolint:errcheck

	cfg, err := config.LoadService("FilteringService", "FILTERING_PORT", "50052")
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
	svc := filtering.NewService(
		filtering.NewPostgresStore(pool),
		reader,
		ai.NewClient(),
		events.NewPublisher(rdb, log),
		cfg.MaxConcurrent,
		log,
	)
	server := filtering.NewServer(svc, log)

	tokens := token.NewManager(cfg.JWTSecret)
	err = grpcserver.Run(ctx, cfg, log, func(s *grpc.Server) {
		filteringpb.RegisterFilteringServiceServer(s, server)
	},
		grpc.UnaryInterceptor(tokens.UnaryInterceptor()),
		grpc.StreamInterceptor(tokens.StreamInterceptor()),
	)
	if err != nil {
		log.Fatal("serve", logger.Error(err))
	}
}
