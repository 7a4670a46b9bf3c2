package kafka

import (
	"context"

	"github.com/marketbase/product-catalog-service/config"
	"github.com/segmentio/kafka-go"
)

// CreateKafkaProducer dials the partition leader for the product event topic.
// Event publishing is optional: callers treat a nil producer as disabled.
func CreateKafkaProducer(config *config.Config) (*kafka.Conn, error) {
	conn, err := kafka.DialLeader(
		context.Background(),
		"tcp",
		config.KafkaConfig.BrokerAddress,
		config.KafkaConfig.BrokerTopic,
		config.KafkaConfig.BrokerPartition,
	)
	if err != nil {
		return nil, err
	}

	return conn, nil
}
