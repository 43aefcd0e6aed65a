// logs export events published by the editor service
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/ds124wfegd/catchcraft/config"
	"github.com/ds124wfegd/catchcraft/internal/entity"
	"github.com/ds124wfegd/catchcraft/internal/pkg/kafka"
	"github.com/sirupsen/logrus"
)

func main() {
	logrus.SetFormatter(new(logrus.JSONFormatter))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := kafka.ConsumeExportEvents(
		ctx,
		config.GetEnv("KAFKA_BROKERS", "localhost:9094"),
		config.GetEnv("KAFKA_TOPIC", "catchcraft-exports"),
		config.GetEnv("KAFKA_GROUP_ID", "catchcraft-export-log"),
		func(_ context.Context, event entity.ExportEvent) error {
			logrus.WithFields(logrus.Fields{
				"session_id": event.SessionID,
				"filename":   event.Filename,
				"width":      event.Width,
				"height":     event.Height,
				"bytes":      event.Bytes,
				"has_text":   event.HasText,
				"font":       event.Font,
				"exported":   event.ExportedAt,
			}).Info("Image exported")
			return nil
		},
	)
	if err != nil {
		logrus.Fatalf("Export event consumer failed: %s", err.Error())
	}
}
