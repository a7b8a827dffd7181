package service_test

import (
	"context"
	"os"
	"strings"
	"testing"

	"museum-ticketing/config"
	"museum-ticketing/internal/cache"
	"museum-ticketing/internal/database"
	"museum-ticketing/internal/model"
	"museum-ticketing/internal/queue"
	"museum-ticketing/internal/repository"
	"museum-ticketing/internal/service"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

// integrationEnv 整合測試環境：真實 Postgres 與 Redis，不可用時跳過
type integrationEnv struct {
	pool        *pgxpool.Pool
	rdb         *redis.Client
	museumRepo  repository.MuseumRepository
	bookingRepo repository.BookingRepository
	reviewRepo  repository.ReviewRepository
	capacity    service.CapacityService
	booking     service.BookingService
	review      service.ReviewService
	notifyQueue queue.NotificationQueue
}

func setupIntegrationEnv(t *testing.T) *integrationEnv {
	t.Helper()

	cfg := config.LoadTestConfig()

	pool, err := database.InitDatabase(&cfg.Database)
	if err != nil {
		t.Skipf("test database unavailable: %v", err)
	}
	t.Cleanup(pool.Close)

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		t.Skipf("test redis unavailable: %v", err)
	}
	t.Cleanup(func() { _ = rdb.Close() })

	applySchema(t, pool)
	truncateAll(t, pool, rdb)

	museumRepo := repository.NewMuseumRepository(pool)
	bookingRepo := repository.NewBookingRepository(pool)
	reviewRepo := repository.NewReviewRepository(pool)

	holdStore := cache.NewRedisHoldStore(rdb, cfg.Booking.HoldTTL)
	notifyQueue := queue.NewNotificationQueue(100)

	capacitySvc := service.NewCapacityService(museumRepo, bookingRepo)
	bookingSvc := service.NewBookingService(pool, museumRepo, bookingRepo, capacitySvc, holdStore, notifyQueue)
	reviewSvc := service.NewReviewService(museumRepo, bookingRepo, reviewRepo)

	return &integrationEnv{
		pool:        pool,
		rdb:         rdb,
		museumRepo:  museumRepo,
		bookingRepo: bookingRepo,
		reviewRepo:  reviewRepo,
		capacity:    capacitySvc,
		booking:     bookingSvc,
		review:      reviewSvc,
		notifyQueue: notifyQueue,
	}
}

func applySchema(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	schema, err := os.ReadFile("../../migrations/schema.sql")
	require.NoError(t, err)

	ctx := context.Background()
	for _, stmt := range strings.Split(string(schema), ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		_, err := pool.Exec(ctx, stmt)
		require.NoError(t, err)
	}
}

func truncateAll(t *testing.T, pool *pgxpool.Pool, rdb *redis.Client) {
	t.Helper()

	ctx := context.Background()
	_, err := pool.Exec(ctx, `TRUNCATE reviews, feedbacks, bookings, museums RESTART IDENTITY CASCADE`)
	require.NoError(t, err)
	require.NoError(t, rdb.FlushDB(ctx).Err())
}

func mustSubscribe(t *testing.T, env *integrationEnv) <-chan queue.Delivery {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	msgs, err := env.notifyQueue.SubscribeTicketJobs(ctx)
	require.NoError(t, err)
	return msgs
}

func (env *integrationEnv) createMuseum(t *testing.T, name string, capacity int) *model.Museum {
	t.Helper()

	museum, err := env.museumRepo.Create(context.Background(), &model.Museum{
		MuseumID:         uuid.New(),
		Name:             name,
		MaxDailyCapacity: capacity,
	})
	require.NoError(t, err)
	return museum
}
