package webhook

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/crisis_dashboard/internal/config"
	"github.com/shenikar/crisis_dashboard/internal/models"
	"github.com/sirupsen/logrus"
)

// SignatureHeader - заголовок с HMAC-SHA256 подписью тела
const SignatureHeader = "X-Webhook-Signature"

// Worker забирает изменения из очереди и доставляет их на WEBHOOK_URL
type Worker struct {
	redisClient *redis.Client
	logger      *logrus.Logger
	cfg         *config.Config
	httpClient  *http.Client
	sleep       func(ctx context.Context, d time.Duration)
}

// NewWorker создает новый Worker
func NewWorker(redisClient *redis.Client, logger *logrus.Logger, cfg *config.Config) *Worker {
	return &Worker{
		redisClient: redisClient,
		logger:      logger,
		cfg:         cfg,
		httpClient: &http.Client{
			Timeout: cfg.WebhookTimeout,
		},
		sleep: sleepContext,
	}
}

// Start запускает горутину, обрабатывающую очередь до отмены ctx
func (w *Worker) Start(ctx context.Context) {
	w.logger.Info("Starting mutation webhook worker...")
	go func() {
		for {
			select {
			case <-ctx.Done():
				w.logger.Info("Stopping mutation webhook worker.")
				return
			default:
				// Ждем не дольше секунды, чтобы вовремя заметить отмену
				result, err := w.redisClient.BRPop(ctx, time.Second, mutationQueueKey).Result()
				if err != nil {
					if errors.Is(err, redis.Nil) || errors.Is(err, context.Canceled) {
						continue
					}
					w.logger.WithError(err).Error("Failed to pop mutation from Redis")
					w.sleep(ctx, w.cfg.WebhookBaseDelay)
					continue
				}

				// result[0] - ключ, result[1] - значение
				payload := result[1]
				var mutation models.Mutation
				if err := json.Unmarshal([]byte(payload), &mutation); err != nil {
					w.logger.WithError(err).Error("Failed to unmarshal mutation from Redis")
					continue
				}

				w.Deliver(ctx, mutation, payload)
			}
		}
	}()
}

// Deliver отправляет payload с повторами и экспоненциальной задержкой.
// Возвращает true, если получатель ответил 2xx.
func (w *Worker) Deliver(ctx context.Context, mutation models.Mutation, rawPayload string) bool {
	log := w.logger.WithFields(logrus.Fields{
		"mutation":  mutation.Kind,
		"crisis_id": mutation.CrisisID,
	})
	log.Debug("Delivering mutation webhook...")

	if w.cfg.WebhookURL == "" {
		log.Warn("Webhook URL is not configured. Skipping delivery.")
		return false
	}

	maxRetries := w.cfg.WebhookMaxRetries
	if maxRetries < 1 {
		maxRetries = 1
	}
	delay := w.cfg.WebhookBaseDelay

	for i := 0; i < maxRetries; i++ {
		if i > 0 {
			w.sleep(ctx, delay)
			delay *= 2
		}
		if ctx.Err() != nil {
			log.Warn("Context cancelled, abandoning webhook delivery")
			return false
		}

		status, err := w.post(ctx, rawPayload)
		if err != nil {
			log.WithError(err).Warnf("Failed to send webhook. Retries left: %d", maxRetries-1-i)
			continue
		}
		if status >= 200 && status < 300 {
			log.Info("Webhook delivered successfully.")
			return true
		}
		log.Warnf("Webhook delivery failed with status code %d. Retries left: %d", status, maxRetries-1-i)
	}

	log.Errorf("Failed to deliver webhook after %d attempts.", maxRetries)
	return false
}

func (w *Worker) post(ctx context.Context, rawPayload string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.cfg.WebhookURL, bytes.NewBufferString(rawPayload))
	if err != nil {
		return 0, fmt.Errorf("failed to create webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	// Подписываем тело, если задан WEBHOOK_SECRET
	if w.cfg.WebhookSecret != "" {
		req.Header.Set(SignatureHeader, Sign(rawPayload, w.cfg.WebhookSecret))
	}

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	return resp.StatusCode, nil
}

// Sign возвращает hex HMAC-SHA256 подпись данных
func Sign(data, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}

func sleepContext(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
