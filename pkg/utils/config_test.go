package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKafkaBrokerList(t *testing.T) {
	cfg := &Config{Kafka: KafkaConfig{Brokers: "kafka-1:9092, kafka-2:9092 ,kafka-3:9092"}}
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092", "kafka-3:9092"}, cfg.KafkaBrokerList())
}

func TestKafkaBrokerList_Empty(t *testing.T) {
	cfg := &Config{}
	assert.Nil(t, cfg.KafkaBrokerList())

	cfg.Kafka.Brokers = " , "
	assert.Empty(t, cfg.KafkaBrokerList())
}
