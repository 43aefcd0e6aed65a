// launching the server, frame cache, kafka producer, session sweeper
package appServer

import (
	"context"
	"crypto/tls"
	"log"

	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ds124wfegd/catchcraft/config"
	"github.com/ds124wfegd/catchcraft/internal/database"
	"github.com/ds124wfegd/catchcraft/internal/editor"
	"github.com/ds124wfegd/catchcraft/internal/pkg/cache"
	"github.com/ds124wfegd/catchcraft/internal/pkg/compositor"
	"github.com/ds124wfegd/catchcraft/internal/pkg/kafka"
	"github.com/ds124wfegd/catchcraft/internal/pkg/processor"
	"github.com/ds124wfegd/catchcraft/internal/pkg/storage"
	"github.com/ds124wfegd/catchcraft/internal/service"
	"github.com/ds124wfegd/catchcraft/internal/transport"
	"github.com/ds124wfegd/catchcraft/internal/worker"
	"github.com/gin-gonic/gin"

	"github.com/sirupsen/logrus"
)

type Server struct {
	httpServer *http.Server
}

func (s *Server) Run(cfg *config.Config, handler http.Handler) error {
	s.httpServer = &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           handler,
		MaxHeaderBytes:    1 << 20,
		ReadTimeout:       30 * time.Second, // uploads can be large
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       cfg.Server.Idle_timeout,
		ReadHeaderTimeout: 3 * time.Second,
		TLSConfig:         &tls.Config{MinVersion: tls.VersionTLS12},
		ErrorLog:          log.New(os.Stderr, "SERVER ERROR: ", log.LstdFlags),
	}
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func NewServer(cfg *config.Config) {

	logrus.SetFormatter(new(logrus.JSONFormatter))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	fonts, err := compositor.NewFontRegistry(cfg.Fonts.Families)
	if err != nil {
		logrus.Fatalf("Cannot load fonts: %s", err.Error())
	}
	defer fonts.Close()
	logrus.WithField("families", fonts.Loaded()).Info("Fonts loaded")

	frameCache := cache.NewFrameCache(ctx, &cfg.Redis, cfg.App.CacheTTL)
	defer frameCache.Close()

	kafkaProducer := kafka.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.Topic)
	defer kafkaProducer.Close()

	var exportRepo database.ExportRepository
	if cfg.App.ExportDir != "" {
		exportRepo = database.NewExportRepository(storage.NewFileStorage(cfg.App.ExportDir))
		logrus.WithField("dir", cfg.App.ExportDir).Info("Export archive enabled")
	}

	editorService := service.NewEditorService(
		database.NewSessionRepository(),
		exportRepo,
		compositor.NewCompositor(fonts),
		processor.NewImageProcessor(),
		frameCache,
		kafkaProducer,
		service.Settings{
			Editor: editor.Settings{
				NudgeStep:       cfg.App.NudgeStep,
				DefaultText:     cfg.App.DefaultText,
				DefaultFontSize: cfg.App.DefaultFontSize,
			},
			SessionTTL: cfg.App.SessionTTL,
		},
	)
	editorHandler := transport.NewEditorHandler(editorService, cfg.App.MaxUploadBytes)

	go worker.NewSessionSweeper(editorService, cfg.App.SweepInterval).Start(ctx)

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	srv := new(Server)
	go func() {
		if err := srv.Run(cfg, transport.InitRoutes(editorHandler, cfg.App.RequestTimeout)); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("error occured while running http server: %s", err.Error())
		}
	}()

	logrus.Print("App Started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	logrus.Print("App Shutting Down")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.Errorf("error occured on server shutting down: %s", err.Error())
	}

}
