package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type MongoDBConfig struct {
	URI    string
	DBName string
}

type KafkaConfig struct {
	BrokerAddress   string
	BrokerTopic     string
	BrokerPartition int
}

type TracingConfig struct {
	CollectorHost string
}

type Config struct {
	ServicePort   string
	MetricsPort   string
	MongoDBConfig MongoDBConfig
	KafkaConfig   KafkaConfig
	TracingConfig TracingConfig

	// EnableDocs gates the documented API profile: the /docs endpoint,
	// the served OpenAPI file, and the image_url format rule.
	EnableDocs bool
}

func CreateNewConfig() *Config {
	godotenv.Load(".env")

	conf := Config{
		ServicePort: getEnv("SERVICE_PORT", "3000"),
		MetricsPort: getEnv("METRICS_PORT", "3001"),
		MongoDBConfig: MongoDBConfig{
			URI:    getEnv("MONGO_URI", "mongodb://localhost:27017"),
			DBName: getEnv("DB_NAME", "product_catalog"),
		},
		KafkaConfig: KafkaConfig{
			BrokerAddress: os.Getenv("BROKER_ADDRESS"),
			BrokerTopic:   getEnv("BROKER_TOPIC", "product-events"),
		},
		TracingConfig: TracingConfig{
			CollectorHost: os.Getenv("COLLECTOR_HOST"),
		},
		EnableDocs: getEnv("ENABLE_DOCS", "true") == "true",
	}

	brokerPartition, err := strconv.Atoi(os.Getenv("BROKER_PARTITION"))
	if err != nil {
		brokerPartition = 0
	}

	conf.KafkaConfig.BrokerPartition = brokerPartition

	return &conf
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
