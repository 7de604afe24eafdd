package main

import (
	"fmt"
	"log"
	"os"

	"github.com/TypeTerrors/loadenv"
)

type Config struct {
	AppName  string  `env:"APP_NAME,required"`
	Port     int     `env:"PORT" envDefault:"8080"`
	LogLevel string  `env:"LOG_LEVEL" envDefault:"info"`
	DBName   string  `env:"DB_NAME"`
	Ratio    float64 `env:"SAMPLE_RATIO"`
}

func main() {
	// For the example, run against the configs/ directory next to this file.
	store := loadenv.New(
		loadenv.WithRoot("example"),
		loadenv.WithEnvironment("dev"),
	)

	if err := store.Load(loadenv.WithProject("billing")); err != nil {
		log.Fatalf("failed to load environment: %v", err)
	}

	cfg, err := loadenv.BindTo[Config](store)
	if err != nil {
		log.Fatalf("failed to bind config: %v", err)
	}

	log.Printf("Loaded config: app=%s port=%d db=%s ratio=%v root=%s",
		cfg.AppName, cfg.Port, cfg.DBName, cfg.Ratio, os.Getenv(loadenv.RootDirKey),
	)

	if err := store.Restore(); err != nil {
		log.Fatalf("failed to restore environment: %v", err)
	}
	fmt.Println("restored, APP_NAME set:", os.Getenv("APP_NAME") != "")
}
