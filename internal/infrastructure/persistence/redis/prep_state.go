package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/houseoffoodsin/HOFBusiness/internal/config"
)

// prepTTL keeps a day's hash around long enough to survive late-night work
// across midnight, then lets it expire on its own.
const prepTTL = 48 * time.Hour

func NewClient(cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

// PrepStateRepository stores the kitchen's prepared checkmarks as one hash per
// calendar day, field = "name|size", value = "1" or "0".
type PrepStateRepository struct {
	client *redis.Client
}

func NewPrepStateRepository(client *redis.Client) *PrepStateRepository {
	return &PrepStateRepository{client: client}
}

func prepHashKey(dayKey string) string {
	return "prep:" + dayKey
}

func (r *PrepStateRepository) SetPrepared(ctx context.Context, dayKey, itemKey string, prepared bool) error {
	key := prepHashKey(dayKey)

	value := "0"
	if prepared {
		value = "1"
	}

	pipe := r.client.TxPipeline()
	pipe.HSet(ctx, key, itemKey, value)
	pipe.Expire(ctx, key, prepTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("set prep flag: %w", err)
	}
	return nil
}

func (r *PrepStateRepository) Flags(ctx context.Context, dayKey string) (map[string]bool, error) {
	fields, err := r.client.HGetAll(ctx, prepHashKey(dayKey)).Result()
	if err != nil {
		return nil, fmt.Errorf("load prep flags: %w", err)
	}

	flags := make(map[string]bool, len(fields))
	for field, value := range fields {
		flags[field] = value == "1"
	}
	return flags, nil
}

func (r *PrepStateRepository) MarkAll(ctx context.Context, dayKey string, itemKeys []string) error {
	if len(itemKeys) == 0 {
		return nil
	}
	key := prepHashKey(dayKey)

	values := make([]interface{}, 0, len(itemKeys)*2)
	for _, itemKey := range itemKeys {
		values = append(values, itemKey, "1")
	}

	pipe := r.client.TxPipeline()
	pipe.HSet(ctx, key, values...)
	pipe.Expire(ctx, key, prepTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("mark all prepared: %w", err)
	}
	return nil
}

func (r *PrepStateRepository) Reset(ctx context.Context, dayKey string) error {
	if err := r.client.Del(ctx, prepHashKey(dayKey)).Err(); err != nil {
		return fmt.Errorf("reset prep flags: %w", err)
	}
	return nil
}
