package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/ds124wfegd/catchcraft/internal/entity"
	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

const (
	minReadBackoff = 500 * time.Millisecond
	maxReadBackoff = 30 * time.Second
)

// ExportHandler is called for each export event read from the topic.
type ExportHandler func(ctx context.Context, event entity.ExportEvent) error

// ConsumeExportEvents reads export events until ctx is done.
func ConsumeExportEvents(ctx context.Context, brokers, topic, groupID string, handle ExportHandler) error {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        strings.Split(brokers, ","),
		Topic:          topic,
		GroupID:        groupID,
		MinBytes:       1,
		MaxBytes:       10e6, // 10MB
		CommitInterval: time.Second,
		StartOffset:    kafka.FirstOffset,
	})
	defer reader.Close()

	logrus.WithFields(logrus.Fields{"brokers": brokers, "topic": topic, "group": groupID}).
		Info("Export event consumer started")

	backoff := time.Duration(0)
	for {
		msg, err := reader.ReadMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				logrus.Info("Export event consumer stopped")
				return nil
			}
			backoff = nextBackoff(backoff)
			logrus.WithField("retry_in", backoff.String()).Errorf("Error reading message from Kafka: %v", err)
			if !sleepCtx(ctx, backoff) {
				logrus.Info("Export event consumer stopped")
				return nil
			}
			continue
		}
		backoff = 0

		event, err := DecodeExportEvent(msg.Value)
		if err != nil {
			logrus.WithFields(logrus.Fields{"partition": msg.Partition, "offset": msg.Offset}).
				Errorf("Failed to parse export event: %v", err)
			continue
		}

		if err := handle(ctx, event); err != nil {
			logrus.WithField("session_id", event.SessionID).Errorf("Export event handler failed: %v", err)
		}
	}
}

// nextBackoff doubles the read retry delay, starting at minReadBackoff and capped at maxReadBackoff.
func nextBackoff(current time.Duration) time.Duration {
	if current < minReadBackoff {
		return minReadBackoff
	}
	if current >= maxReadBackoff/2 {
		return maxReadBackoff
	}
	return current * 2
}

// sleepCtx waits for d and reports false if ctx ended first.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

func DecodeExportEvent(data []byte) (entity.ExportEvent, error) {
	var event entity.ExportEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return entity.ExportEvent{}, err
	}
	if event.SessionID == "" {
		return entity.ExportEvent{}, entity.ErrInvalidInput
	}
	return event, nil
}
