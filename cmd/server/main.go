// Package main provides the server entry point.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/exec"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kingpin/v2"
	"github.com/joho/godotenv"
	zlog "github.com/rs/zerolog/log"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	apiconnect "github.com/osa030/tilawah/internal/api/connect"
	"github.com/osa030/tilawah/internal/app/bookmarks"
	"github.com/osa030/tilawah/internal/app/playback"
	"github.com/osa030/tilawah/internal/app/provider"
	"github.com/osa030/tilawah/internal/app/reader"
	"github.com/osa030/tilawah/internal/app/share"
	"github.com/osa030/tilawah/internal/infra/config"
	"github.com/osa030/tilawah/internal/infra/kv"
	"github.com/osa030/tilawah/internal/infra/logger"
	"github.com/osa030/tilawah/internal/infra/mpv"
)

var (
	app        = kingpin.New("tilawah-server", "tilawah recitation reader server")
	configPath = app.Flag("config", "Path to config file").Default("config/server.yaml").String()
	verbose    = app.Flag("verbose", "Enable verbose (DEBUG) logging").Short('v').Bool()
	logfile    = app.Flag("logfile", "Path to log file (default: stdout)").String()

	// list-providers command
	listProvidersCmd = app.Command("list-providers", "List configured verse providers and exit")
)

func init() {
	// start command (default) - no need to store the command
	app.Command("start", "Start the server (default)").Default()
}

func main() {
	// Load .env file if it exists (errors are ignored)
	_ = godotenv.Load()

	// Parse command
	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	// Initialize logger
	loggerConfig := logger.Config{
		Level: "info",
	}
	if *verbose {
		loggerConfig.Level = "debug"
	}
	if *logfile != "" {
		loggerConfig.File = *logfile
	}
	closeLog, err := logger.Init(loggerConfig)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer closeLog()

	// Load config
	zlog.Info().Msgf("Loading config from %s", *configPath)
	cfg, err := config.Load(*configPath)
	if err != nil {
		zlog.Fatal().Msgf("Failed to load config: %v", err)
	}

	// Handle list-providers command
	if command == listProvidersCmd.FullCommand() {
		printProviders(cfg)
		return
	}

	// Run server (defer ensures shutdown hook is called)
	if err := run(cfg); err != nil {
		zlog.Error().Msgf("Server error: %v", err)
		os.Exit(1)
	}
}

// run executes the main server logic. Using a separate function ensures
// defer statements are executed even when returning with an error.
func run(cfg *config.Config) error {
	ctx := context.Background()

	// Create verse provider chain
	chain, err := provider.NewChainFromConfig(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to create provider chain: %w", err)
	}

	// Open bookmark store
	store, err := kv.Open(ctx, kv.Config{
		Backend: cfg.Bookmarks.Backend,
		Path:    cfg.Bookmarks.Path,
		DSN:     cfg.Bookmarks.DSN,
	})
	if err != nil {
		return fmt.Errorf("failed to open bookmark store: %w", err)
	}
	defer store.Close()

	// Share target is optional; without one verses go to the clipboard
	var target share.Target
	if cfg.Share.Endpoint != "" {
		target = share.NewHTTPTarget(cfg.Share.Endpoint, cfg.Share.Timeout())
	}

	// Audio output
	player := mpv.New(mpv.Config{
		Binary: cfg.Reader.Player.Binary,
		Args:   cfg.Reader.Player.Args,
	})
	gate := playback.NewGate(
		playback.PlatformFunc(cfg.Reader.GestureRequired),
		mpv.NewAudioContextFactory(cfg.Reader.Player.Binary),
	)

	// Create reader session
	readerMgr, err := reader.NewManager(cfg, reader.Deps{
		Provider:  chain,
		Opener:    player,
		Gate:      gate,
		Bookmarks: bookmarks.NewService(store, nil),
		Sharer:    share.NewSharer(target, nil, cfg.Share.ReaderURL),
	})
	if err != nil {
		return fmt.Errorf("failed to create reader session: %w", err)
	}

	// Determine server address
	serverAddr := cfg.Server.Addr
	// Create server with h2c (HTTP/2 cleartext) support
	server := &http.Server{
		Addr:              serverAddr,
		Handler:           h2c.NewHandler(apiconnect.NewRouter(readerMgr, cfg), &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Channel to capture server startup errors
	serverErrCh := make(chan error, 1)
	serverStartedCh := make(chan struct{})

	// Start session
	go func() {
		if err := readerMgr.Start(ctx); err != nil {
			zlog.Error().Msgf("Failed to start reader session: %v", err)
		}
	}()

	// Start server
	go func() {
		zlog.Info().Msgf("Starting server: addr=%s", serverAddr)
		// Signal that we're about to start listening
		close(serverStartedCh)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrCh <- err
		}
	}()

	// Wait for server to start listening
	<-serverStartedCh
	// Give the server a moment to fully initialize
	time.Sleep(100 * time.Millisecond)

	// Execute startup hook if configured (after server is running)
	executeHooks(cfg.Server.Hooks.OnStarted, "on_started")

	// Wait for shutdown signal, session end, or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sigCh:
		zlog.Info().Msg("Received shutdown signal...")
	case <-readerMgr.Done():
		zlog.Info().Msg("Reader session ended, shutting down...")
	case err := <-serverErrCh:
		readerMgr.Close()
		return fmt.Errorf("server error: %w", err)
	}

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Close reader session first to terminate notice streams
	readerMgr.Close()

	if err := server.Shutdown(shutdownCtx); err != nil {
		zlog.Error().Msgf("Failed to shutdown server: %v", err)
	}

	zlog.Info().Msg("Server stopped")

	// Execute shutdown hook if configured
	executeHooks(cfg.Server.Hooks.OnStopped, "on_stopped")

	return nil
}

// printProviders prints the configured verse providers in fallback order.
func printProviders(cfg *config.Config) {
	fmt.Println("Verse Providers (in fallback order):")
	for i, p := range cfg.Providers {
		fmt.Printf("  %d. %-16s - %s\n", i+1, p.Type, p.DisplayName)
	}
}

// executeHooks runs a list of shell commands.
func executeHooks(hooks []string, stage string) {
	if len(hooks) == 0 {
		return
	}

	zlog.Info().Msgf("Executing %s hooks (%d commands)", stage, len(hooks))

	for _, hook := range hooks {
		zlog.Info().Msgf("Executing hook: %s", hook)
		// Use sh -c to allow shell features like redirection or pipes
		cmd := exec.Command("sh", "-c", hook)
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr

		if err := cmd.Run(); err != nil {
			zlog.Error().Err(err).Msgf("Failed to execute hook: %s", hook)
		}
	}
}
