package api

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"oilevels/config"
	"oilevels/filestore"
	"oilevels/giftnifty"
	"oilevels/logger"
	"oilevels/notify"
	"oilevels/workbook"

	"github.com/gorilla/mux"
)

// Server is the HTTP front end: upload a workbook, download the processed
// one. All business logic lives in the workbook and levels packages.
type Server struct {
	router    *mux.Router
	server    *http.Server
	cfg       *config.Config
	processor *workbook.Processor
	quotes    *giftnifty.Fetcher
	store     *filestore.Store
	notifier  *notify.TelegramNotifier
	log       *logger.Logger
}

var (
	instance *Server
	once     sync.Once
)

// GetAPIServer returns the singleton instance of the API server
func GetAPIServer() *Server {
	once.Do(func() {
		cfg := config.GetConfig()
		instance = &Server{
			router:    mux.NewRouter(),
			cfg:       cfg,
			processor: workbook.NewProcessor(cfg.Levels),
			quotes:    giftnifty.NewFetcher(&cfg.GiftNifty),
			log:       logger.L(),
		}
		if cfg.Export.Enabled {
			instance.store = filestore.NewStore(cfg.Export.BaseDir)
		}
		if cfg.Telegram.Enabled {
			instance.notifier = notify.NewTelegramNotifier(&cfg.Telegram)
		}
		instance.setupRoutes()
	})
	return instance
}

// Start starts the HTTP server and blocks it on the given context.
func (s *Server) Start(ctx context.Context) error {
	s.server = &http.Server{
		Addr:         ":" + s.cfg.Server.Port,
		Handler:      s.router,
		ReadTimeout:  s.cfg.Server.GetReadTimeout(),
		WriteTimeout: s.cfg.Server.GetWriteTimeout(),
	}

	go func() {
		s.log.Info("Starting API server", map[string]interface{}{
			"port": s.cfg.Server.Port,
		})
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.log.Error("API server error", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}()

	go func() {
		<-ctx.Done()
		s.Shutdown()
	}()

	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown() error {
	s.log.Info("Shutting down API server", nil)

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.server != nil {
		if err := s.server.Shutdown(ctx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
	}
	return nil
}
