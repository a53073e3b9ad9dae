package webhook

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/crisis_dashboard/internal/models"
)

const (
	mutationQueueKey = "dashboard_mutations"
)

// RedisPublisher ставит успешные изменения панели в очередь Redis
type RedisPublisher struct {
	redisClient *redis.Client
}

// NewRedisPublisher создает новый RedisPublisher
func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{
		redisClient: client,
	}
}

// Notify кладет изменение в левую часть очереди; воркер забирает справа
func (p *RedisPublisher) Notify(ctx context.Context, mutation models.Mutation) error {
	payload, err := json.Marshal(mutation)
	if err != nil {
		return fmt.Errorf("failed to marshal mutation: %w", err)
	}

	if err := p.redisClient.LPush(ctx, mutationQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to enqueue mutation to Redis: %w", err)
	}
	return nil
}
