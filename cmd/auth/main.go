// The auth service: account sign-up and sign-in over gRPC.
package main

import (
	"context"
	"os"

	"google.golang.org/grpc"

	"github.com/AnnaRychkova1/smart-recruitment-grpc/internal/auth"
	"github.com/AnnaRychkova1/smart-recruitment-grpc/internal/config"
	"github.com/AnnaRychkova1/smart-recruitment-grpc/internal/db"
	"github.com/AnnaRychkova1/smart-recruitment-grpc/internal/events"
	"github.com/AnnaRychkova1/smart-recruitment-grpc/internal/grpcserver"
	"github.com/AnnaRychkova1/smart-recruitment-grpc/internal/logger"
	"github.com/AnnaRychkova1/smart-recruitment-grpc/internal/rpc/authpb"
	"github.com/AnnaRychkova1/smart-recruitment-grpc/internal/token"
)

func main() {
	log := logger.New("auth", os.Getenv("LOG_LEVEL"), os.Getenv("LOG_PRETTY") == "true")
	defer log.Sync() //nolint:errcheck

	cfg, err := config.LoadService("AuthService", "AUTH_PORT", "50054")
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

	svc := auth.NewService(
		auth.NewPostgresStore(pool),
		token.NewManager(cfg.JWTSecret),
		events.NewPublisher(rdb, log),
		log,
	)
	server := auth.NewServer(svc)

	err = grpcserver.Run(ctx, cfg, log, func(s *grpc.Server) {
		authpb.RegisterAuthServiceServer(s, server)
	})
	if err != nil {
		log.Fatal("serve", logger.Error(err))
	}
}
