package refresh

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	DefaultKey     = "crisis_dashboard:refresh"
	DefaultChannel = "crisis_dashboard:refresh:events"
)

// RedisSignal хранит счетчик в Redis (INCR) и рассылает новые значения
// через PUBLISH, так что обновление видят все реплики панели.
type RedisSignal struct {
	client  *redis.Client
	key     string
	channel string
	logger  *logrus.Logger
}

func NewRedisSignal(client *redis.Client, key, channel string, logger *logrus.Logger) *RedisSignal {
	if key == "" {
		key = DefaultKey
	}
	if channel == "" {
		channel = DefaultChannel
	}
	return &RedisSignal{
		client:  client,
		key:     key,
		channel: channel,
		logger:  logger,
	}
}

func (s *RedisSignal) Bump(ctx context.Context) (uint64, error) {
	value, err := s.client.Incr(ctx, s.key).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to increment refresh counter: %w", err)
	}
	// Счетчик уже увеличен, поэтому ошибка публикации не фатальна:
	// локальный список обновится по возвращенному значению
	if err := s.client.Publish(ctx, s.channel, value).Err(); err != nil {
		s.logger.WithError(err).WithField("value", value).Warn("Failed to publish refresh value")
	}
	return uint64(value), nil
}

// Value возвращает текущее значение счетчика
func (s *RedisSignal) Value(ctx context.Context) (uint64, error) {
	raw, err := s.client.Get(ctx, s.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to read refresh counter: %w", err)
	}
	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("refresh counter is not a number: %w", err)
	}
	return value, nil
}

func (s *RedisSignal) Watch(ctx context.Context, fn func(ctx context.Context, value uint64)) error {
	sub := s.client.Subscribe(ctx, s.channel)
	defer sub.Close()

	// Дожидаемся подтверждения подписки, иначе первые значения могут потеряться
	if _, err := sub.Receive(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return fmt.Errorf("failed to subscribe to %s: %w", s.channel, err)
	}
	s.logger.WithField("channel", s.channel).Info("Watching refresh signal")

	messages := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Stopping refresh signal watcher.")
			return nil
		case msg, ok := <-messages:
			if !ok {
				return errors.New("refresh subscription closed")
			}
			value, err := strconv.ParseUint(msg.Payload, 10, 64)
			if err != nil {
				s.logger.WithError(err).WithField("payload", msg.Payload).Warn("Ignoring malformed refresh value")
				continue
			}
			fn(ctx, value)
		}
	}
}
