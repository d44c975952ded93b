package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/envelope-zero/networth/internal/repository"
	"github.com/envelope-zero/networth/internal/router"
	"github.com/envelope-zero/networth/internal/storage"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

func main() {
	// A .env file is optional, the environment always takes precedence
	_ = godotenv.Load()

	// gin uses debug as the default mode, we use release for
	// security reasons
	ginMode, ok := os.LookupEnv("GIN_MODE")
	if !ok {
		gin.SetMode("release")
	} else {
		gin.SetMode(ginMode)
	}

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	logFormat, ok := os.LookupEnv("LOG_FORMAT")
	output := io.Writer(os.Stdout)
	if (!ok && gin.IsDebugging()) || (ok && logFormat == "human") {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	if err := run(); err != nil {
		log.Fatal().Msg(err.Error())
	}

	log.Info().Msg("Server stopped gracefully")
}

// run starts the server and blocks until it is shut down. All resources
// are released before it returns.
func run() error {
	listenAddr, ok := os.LookupEnv("LISTEN_ADDR")
	if !ok {
		listenAddr = "127.0.0.1:8080"
	}

	apiURL, ok := os.LookupEnv("API_URL")
	if !ok {
		apiURL = "http://" + listenAddr
	}

	url, err := url.Parse(apiURL)
	if err != nil {
		return fmt.Errorf("environment variable API_URL must be a valid URL: %w", err)
	}

	// Create data directory
	dataDir, ok := os.LookupEnv("DATA_DIR")
	if !ok {
		dataDir = filepath.Join(".", "data")
	}

	err = os.MkdirAll(dataDir, os.ModePerm)
	if err != nil {
		return err
	}

	// Connect to the database
	db, err := storage.Connect(filepath.Join(dataDir, "networth.db"))
	if err != nil {
		return err
	}
	defer db.Close()

	protectNA := os.Getenv("PROTECT_NA_ACCOUNT") == "true"
	store := repository.NewStore(db, repository.WithNAProtection(protectNA))
	log.Debug().Bool("protectNA", protectNA).Str("dataDir", dataDir).Msg("Storage")

	r, teardown, err := router.Config(url)
	defer teardown()
	if err != nil {
		return err
	}
	router.AttachRoutes(r.Group("/"), store)

	server := &http.Server{
		Addr:              listenAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info().Str("addr", listenAddr).Msg("Starting server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		log.Info().Msg("Shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
