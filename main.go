package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"oilevels/api"
	"oilevels/config"
	"oilevels/logger"
)

func main() {
	log := logger.GetLogger()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := config.GetConfig()
	log.Info("Starting OI levels service", map[string]interface{}{
		"port":           cfg.Server.Port,
		"export_enabled": cfg.Export.Enabled,
	})

	server := api.GetAPIServer()
	if err := server.Start(ctx); err != nil {
		log.Fatal("Failed to start API server", map[string]interface{}{
			"error": err.Error(),
		})
	}

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	sig := <-sigChan
	log.Info("Received shutdown signal", map[string]interface{}{
		"signal": sig.String(),
	})

	cancel()

	// Give some time for cleanup
	time.Sleep(time.Second)
	log.Info("Shutdown complete", nil)
}
