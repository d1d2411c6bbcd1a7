package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTP     HTTPConfig
	Database DatabaseConfig
	MinIO    MinIOConfig
	Kafka    KafkaConfig
}

type HTTPConfig struct {
	Port        string
	MetricsPort string
}

type DatabaseConfig struct {
	DBUser     string
	DBPassword string
	DBName     string
	DBHost     string
	DBPort     string
}

type MinIOConfig struct {
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	UseSSL          bool
	BucketName      string
	// Presigned download URL lifetime in hours.
	URLExpiryHours int
}

// Kafka producer configuration. Brokers empty disables event publishing.
type KafkaConfig struct {
	Brokers        string
	GeneratedTopic string
	DeletedTopic   string
}

func Load() *Config {
	_ = godotenv.Load()
	return &Config{
		HTTP: HTTPConfig{
			Port:        getEnv("TOOL_HTTP_PORT", "8080"),
			MetricsPort: getEnv("METRICS_PORT", "9090"),
		},
		Database: DatabaseConfig{
			DBUser:     os.Getenv("DB_USER"),
			DBPassword: os.Getenv("DB_PASSWORD"),
			DBName:     os.Getenv("DB_NAME"),
			DBHost:     os.Getenv("DB_HOST"),
			DBPort:     os.Getenv("DB_PORT"),
		},
		MinIO: MinIOConfig{
			Endpoint:        os.Getenv("MINIO_ENDPOINT"),
			AccessKeyID:     os.Getenv("MINIO_ACCESS_KEY"),
			SecretAccessKey: os.Getenv("MINIO_SECRET_KEY"),
			UseSSL:          false,
			BucketName:      getEnv("MINIO_BUCKET_NAME", "generated-tools"),
			URLExpiryHours:  getEnvInt("MINIO_URL_EXPIRY_HOURS", 168),
		},
		Kafka: KafkaConfig{
			Brokers:        os.Getenv("KAFKA_BROKERS"),
			GeneratedTopic: getEnv("KAFKA_TOPIC_TOOL_GENERATED", "tool.generated"),
			DeletedTopic:   getEnv("KAFKA_TOPIC_TOOL_DELETED", "tool.deleted"),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if out, err := strconv.Atoi(v); err == nil {
			return out
		}
	}
	return def
}
