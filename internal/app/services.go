package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/heartmarshall/attribution-portal/internal/adapter/postgres"
	"github.com/heartmarshall/attribution-portal/internal/adapter/postgres/attributeddomain"
	"github.com/heartmarshall/attribution-portal/internal/adapter/postgres/attributionmatch"
	"github.com/heartmarshall/attribution-portal/internal/adapter/postgres/clientconfig"
	"github.com/heartmarshall/attribution-portal/internal/adapter/postgres/domainevent"
	"github.com/heartmarshall/attribution-portal/internal/adapter/postgres/emailledger"
	"github.com/heartmarshall/attribution-portal/internal/adapter/postgres/pendingevent"
	"github.com/heartmarshall/attribution-portal/internal/adapter/postgres/personaldomain"
	"github.com/heartmarshall/attribution-portal/internal/adapter/redislock"
	"github.com/heartmarshall/attribution-portal/internal/config"
	"github.com/heartmarshall/attribution-portal/internal/service/attribution"
	personalsvc "github.com/heartmarshall/attribution-portal/internal/service/personaldomain"
	"github.com/heartmarshall/attribution-portal/internal/service/reprocess"
	"github.com/heartmarshall/attribution-portal/internal/service/review"
)

// Services holds the wired application services and the connections they
// share. Close releases the connections.
type Services struct {
	Pool  *pgxpool.Pool
	Redis *redis.Client

	Engine *attribution.Service
	Review *review.Service
	Queue  *reprocess.Service
}

type locker interface {
	Lock(ctx context.Context, clientID, emailDomain string) (func(), error)
}

// NewServices connects to the database (and Redis when enabled) and builds
// the service graph.
func NewServices(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Services, error) {
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	s := &Services{Pool: pool}

	var lk locker = attribution.NewLocalLocker()
	if cfg.Redis.Enabled {
		client, err := newRedisClient(ctx, cfg.Redis)
		if err != nil {
			pool.Close()
			return nil, err
		}
		s.Redis = client
		lk = redislock.New(client, logger, cfg.Attribution.LockTTL, cfg.Attribution.LockWait)
		logger.Info("using redis domain locks")
	}

	domains := attributeddomain.New(pool)
	matches := attributionmatch.New(pool)
	queue := pendingevent.New(pool)
	clients := clientconfig.New(pool)
	timeline := domainevent.New(pool)

	classifier := personalsvc.NewClassifier(logger, personaldomain.New(pool), cfg.Attribution.ExtraPersonalDomains)

	s.Engine = attribution.NewService(
		logger,
		clients,
		emailledger.New(pool),
		classifier,
		domains,
		timeline,
		matches,
		postgres.NewTxManager(pool),
		lk,
		attribution.WithDefaultWindowDays(cfg.Attribution.DefaultWindowDays),
	)
	s.Review = review.NewService(logger, domains, matches, timeline, clients, cfg.Attribution.ReviewExpiryDays)
	s.Queue = reprocess.NewService(logger, queue, s.Engine, reprocess.Options{
		BatchSize:   cfg.Attribution.BatchSize,
		Concurrency: cfg.Attribution.Concurrency,
		MaxAttempts: cfg.Attribution.MaxAttempts,
		StaleAfter:  cfg.Attribution.StaleAfter,
	})

	return s, nil
}

// Close releases the database pool and the Redis client.
func (s *Services) Close() {
	if s.Redis != nil {
		_ = s.Redis.Close()
	}
	s.Pool.Close()
}

func newRedisClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	opt, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}
