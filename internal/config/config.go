package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	Env        string     `yaml:"env" env:"ENV" env-default:"local"`
	HTTPServer HTTPServer `yaml:"http_server"`
	Storage    Storage    `yaml:"storage"`
	Postgres   Postgres   `yaml:"postgres"`
	SQLite     SQLite     `yaml:"sqlite"`
	Gemini     Gemini     `yaml:"gemini"`
	YouTube    YouTube    `yaml:"youtube"`
	Extract    Extract    `yaml:"extract"`
	ES         ES         `yaml:"elasticsearch"`
	Minio      Minio      `yaml:"minio"`
	CORS       CORS       `yaml:"cors"`
}

type HTTPServer struct {
	Address      string        `yaml:"address" env:"HTTP_ADDRESS" env-default:"localhost:5000"`
	Timeout      time.Duration `yaml:"timeout" env-default:"5s"`
	WriteTimeout time.Duration `yaml:"write_timeout" env-default:"180s"`
	IdleTimeout  time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

type Storage struct {
	Driver string `yaml:"driver" env:"STORAGE_DRIVER" env-default:"memory"`
}

type Postgres struct {
	Host     string `yaml:"host" env-default:"localhost"`
	Port     string `yaml:"port" env-default:"5432"`
	User     string `yaml:"user"`
	Password string `yaml:"password" env:"POSTGRES_PASSWORD"`
	DBName   string `yaml:"dbname"`
}

type SQLite struct {
	Path string `yaml:"path" env-default:"tubecourse.db"`
}

type Gemini struct {
	APIKey string `yaml:"api_key" env:"GEMINI_API_KEY"`
	Model  string `yaml:"model" env-default:"gemini-1.5-pro-latest"`
	// Timeout bounds a generation call. Zero means no deadline.
	Timeout time.Duration `yaml:"timeout" env-default:"0s"`
}

type YouTube struct {
	APIKey     string `yaml:"api_key" env:"YOUTUBE_API_KEY"`
	MaxResults int64  `yaml:"max_results" env-default:"50"`
}

type Extract struct {
	RepairMode    string `yaml:"repair_mode" env-default:"scanner"`
	BalancedSlice bool   `yaml:"balanced_slice"`
}

// ES is disabled when Hosts is empty.
type ES struct {
	Hosts    []string `yaml:"hosts"`
	Index    string   `yaml:"index" env-default:"courses"`
	Username string   `yaml:"username"`
	Password string   `yaml:"password" env:"ES_PASSWORD"`
}

// Minio is disabled when Endpoint is empty.
type Minio struct {
	Endpoint   string        `yaml:"endpoint"`
	AccessKey  string        `yaml:"access_key" env:"MINIO_ACCESS_KEY"`
	SecretKey  string        `yaml:"secret_key" env:"MINIO_SECRET_KEY"`
	UseSSL     bool          `yaml:"use_ssl"`
	Bucket     string        `yaml:"bucket" env-default:"course-exports"`
	PresignTTL time.Duration `yaml:"presign_ttl" env-default:"15m"`
}

type CORS struct {
	AllowOrigins []string `yaml:"allow_origins" env-default:"http://localhost:5173"`
}

func (p Postgres) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s", p.User, p.Password, p.Host, p.Port, p.DBName)
}

// Load reads the YAML file at path and applies environment overrides.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}

	var cfg Config
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	switch cfg.Storage.Driver {
	case DriverMemory, DriverPostgres, DriverSQLite:
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
	switch cfg.Extract.RepairMode {
	case "scanner", "pattern":
	default:
		return nil, fmt.Errorf("unknown repair mode %q", cfg.Extract.RepairMode)
	}
	return &cfg, nil
}

func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}

	cfg, err := Load(configPath)
	if err != nil {
		log.Fatalf("Can not read config file %s", err)
	}

	return cfg
}
