package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

type Config struct {
	Env           string `yaml:"env" env:"ENV" env-default:"local"`
	Storage       string `yaml:"storage" env:"STORAGE" env-default:"postgres"`
	DefaultLocale string `yaml:"default_locale" env:"DEFAULT_LOCALE" env-default:"en"`
	Database      `yaml:"database"`
	HTTPServer    `yaml:"http_server"`
	Images        `yaml:"images"`
	Archive       `yaml:"archive"`
	Retention     `yaml:"retention"`
	Notify        `yaml:"notify"`
}

type Database struct {
	Host           string `yaml:"host" env:"DB_HOST" env-default:"localhost"`
	Port           int    `yaml:"port" env:"DB_PORT" env-default:"5432"`
	User           string `yaml:"user" env:"DB_USER" env-default:"postgres"`
	Password       string `yaml:"password" env:"DB_PASSWORD"`
	DBName         string `yaml:"dbname" env:"DB_NAME" env-default:"event_signup"`
	SSLMode        string `yaml:"sslmode" env:"DB_SSLMODE" env-default:"disable"`
	MigrationsPath string `yaml:"migrations_path" env:"DB_MIGRATIONS_PATH" env-default:"./migrations"`
}

type HTTPServer struct {
	Address        string        `yaml:"address" env:"HTTP_ADDRESS" env-default:"localhost:8080"`
	Timeout        time.Duration `yaml:"timeout" env-default:"4s"`
	IdleTimeout    time.Duration `yaml:"idle_timeout" env-default:"60s"`
	AllowedOrigins []string      `yaml:"allowed_origins" env:"HTTP_ALLOWED_ORIGINS" env-separator:","`
}

type Images struct {
	LiveDir    string `yaml:"live_dir" env:"IMAGES_LIVE_DIR" env-default:"./data/images"`
	ArchiveDir string `yaml:"archive_dir" env:"IMAGES_ARCHIVE_DIR" env-default:"./data/archive-images"`
}

// Archive configures the scheduled sweep that moves past events to the archive.
type Archive struct {
	Interval              time.Duration `yaml:"interval" env-default:"168h"`
	RetentionCutoffDays   int           `yaml:"retention_cutoff_days" env:"ARCHIVE_CUTOFF_DAYS" env-default:"30"`
	RelocateImagesInBatch bool          `yaml:"relocate_images_in_batch" env-default:"false"`
	RunOnStart            bool          `yaml:"run_on_start" env-default:"false"`
}

// Retention configures the sweep that permanently deletes old archive records.
type Retention struct {
	Interval   time.Duration `yaml:"interval" env-default:"8760h"`
	RunOnStart bool          `yaml:"run_on_start" env-default:"false"`
}

type Notify struct {
	BufferSize int `yaml:"buffer_size" env-default:"256"`
}

func MustLoad() *Config {
	// .env is optional; values may come straight from the environment.
	_ = godotenv.Load()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("config file does not exist: %s", configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}

	return &cfg
}
