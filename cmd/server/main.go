package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"duochat/domain/event"
	"duochat/gateway"
	"duochat/moderation"
	"duochat/runtime"
	"duochat/runtime/workers"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

const shutdownTimeout = 5 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components, manages the server lifecycle, and centralizes error reporting.
// This pattern is preferred over calling os.Exit or panic directly because:
// 1. It ensures all 'defer' statements are executed before the program exits.
// 2. It improves testability by decoupling the initialization logic from the main entry point.
// 3. It provides a structured way to handle graceful shutdowns for the gateway and background workers.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	mode := runtime.Mode(config.RoomMode)
	if mode != runtime.ModeExplicitRoom && mode != runtime.ModeImplicitSingleRoom {
		return fmt.Errorf("ROOM_MODE must be %q or %q, got %q",
			runtime.ModeExplicitRoom, runtime.ModeImplicitSingleRoom, config.RoomMode)
	}
	if config.Capacity < 1 {
		return fmt.Errorf("CAPACITY must be positive, got %d", config.Capacity)
	}

	// 2. Moderation
	censoredChar, err := config.CharacterRune()
	if err != nil {
		return err
	}
	data, err := moderation.LoadWords()
	if err != nil {
		return fmt.Errorf("loading censored words: %w", err)
	}
	log.Info(fmt.Sprintf("%d censored words loaded [%s]",
		len(data.Words), strings.Join(data.Languages, ",")))
	moderator, err := moderation.NewModerator(data.Words, censoredChar, log)
	if err != nil {
		return fmt.Errorf("building moderator: %w", err)
	}

	// 3. Core wiring
	registry := runtime.NewRegistry()
	rooms := runtime.NewRoomManager(log, registry, config.Capacity)
	router := runtime.NewBroadcastRouter(log, registry, rooms, config.SinkTimeout)
	telemetry := make(chan event.Event, config.TelemetryBufferSize)
	coordinator := runtime.NewCoordinator(log, mode, registry, rooms, router, moderator, telemetry)

	// 4. Observability workers under supervision
	counter := event.NewCounter()
	handlers := []event.Handler{
		event.NewMessageSentHandler(log, counter),
		event.NewPresenceHandler(log, counter),
	}
	sup := workers.NewSupervisor(log, config.RestartInterval)
	sup.Add(workers.NewTelemetryWorker(log, telemetry, handlers))
	sup.Add(workers.NewHealthWorker(log, counter, config.MetricInterval))

	// 5. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go sup.Run(ctx)

	// 6. HTTP server with the websocket gateway
	mux := http.NewServeMux()
	mux.Handle("/ws", gateway.New(log, coordinator, config.ConnectionBufferSize))

	address := fmt.Sprintf("%s:%d", config.Host, config.Port)
	server := &http.Server{Addr: address, Handler: mux}

	errChan := make(chan error, 1)
	go func() {
		log.Info("Starting gateway", "address", address, "mode", string(mode), "capacity", config.Capacity)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("http server error: %w", err)
		}
	}()

	// 7. Wait for Stop or Error
	select {
	case <-ctx.Done():
		log.Info("Shutting down gracefully...")
	case err := <-errChan:
		return err
	}

	// 8. Final Cleanup
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Warn("Forced server shutdown", "error", err)
	}
	sup.Stop()
	log.Info("Program stopped cleanly")

	return nil
}
