package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/Micah-Glenz/hierarchical-data-explorer/api"
	"github.com/Micah-Glenz/hierarchical-data-explorer/config"
	"github.com/Micah-Glenz/hierarchical-data-explorer/database"
	"github.com/Micah-Glenz/hierarchical-data-explorer/storage"
)

func main() {
	fmt.Println("Initializing app...")

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Warning: Error loading .env file: %v\n", err)
	}

	c := config.New()

	backend, err := newBackend(c)
	if err != nil {
		log.Fatal().Err(err).Msg("Error initializing storage backend")
	}

	// Snapshot every collection before overwriting it, unless disabled
	if config.GetBool(c, "BACKUPS_ENABLED", true) {
		backend = storage.WithBackups(backend, nil)
	}

	db, err := database.New(backend, nil)
	if err != nil {
		log.Fatal().Err(err).Msg("Error loading collections")
	}

	errChannel := make(chan error)
	defer close(errChannel)

	server, err := api.NewServer(db)
	if err != nil {
		log.Fatal().Err(err).Msg("Error initializing server")
	}

	go server.Start(errChannel)

	// Listen for interrupt signals to gracefully shutdown the server
	go listenToInterrupt(errChannel)

	fatalErr := <-errChannel
	fmt.Printf("Closing server: %v\n", fatalErr)

	server.ShutdownGracefully(30 * time.Second)
}

// newBackend builds the document backend named by STORE_BACKEND.
func newBackend(c map[string]string) (storage.Backend, error) {
	storeBackend := config.GetString(c, "STORE_BACKEND", "file")
	dataDir := config.GetString(c, "DATA_DIR", "data")

	fmt.Printf("STORE_BACKEND: %s\n", storeBackend)
	switch storeBackend {
	case "file":
		return storage.NewFileBackend(dataDir)
	case "sqlite":
		dsn := config.GetString(c, "SQLITE_PATH", filepath.Join(dataDir, "explorer.db"))
		if err := os.MkdirAll(filepath.Dir(dsn), 0o755); err != nil {
			return nil, err
		}
		return storage.NewGormBackend(dsn)
	case "memory":
		return storage.NewMemoryBackend(), nil
	default:
		return nil, fmt.Errorf("unsupported STORE_BACKEND %q", storeBackend)
	}
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-c)
}
