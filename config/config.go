package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresSSLMode  string

	DefaultRows int
	DefaultSeed int64

	OutputDir   string
	ReportDir   string
	CSVFileName string

	Debug bool
}

// Load reads the .env file and returns a populated Config struct.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] No .env file found, falling back to system env vars")
	}

	return &Config{
		PostgresHost:     getEnv("POSTGRES_HOST", "localhost"),
		PostgresPort:     getEnv("POSTGRES_PORT", "5432"),
		PostgresUser:     getEnv("POSTGRES_USER", "cardata"),
		PostgresPassword: getEnv("POSTGRES_PASSWORD", "cardata123"),
		PostgresDB:       getEnv("POSTGRES_DB", "cardata_db"),
		PostgresSSLMode:  getEnv("POSTGRES_SSLMODE", "disable"),

		DefaultRows: getEnvInt("DATASET_ROWS", 30),
		DefaultSeed: int64(getEnvInt("DATASET_SEED", 7)),

		OutputDir:   getEnv("OUTPUT_DIR", "./generated_data"),
		ReportDir:   getEnv("REPORT_DIR", "./generated_data"),
		CSVFileName: getEnv("CSV_FILE_NAME", "raw_car_equipment.csv"),

		Debug: getEnvBool("DEBUG", false),
	}
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	return "host=" + c.PostgresHost +
		" port=" + c.PostgresPort +
		" user=" + c.PostgresUser +
		" password=" + c.PostgresPassword +
		" dbname=" + c.PostgresDB +
		" sslmode=" + c.PostgresSSLMode
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.Atoi(val)
		if err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		b, err := strconv.ParseBool(val)
		if err == nil {
			return b
		}
	}
	return fallback
}
