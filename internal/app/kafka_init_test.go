package app

import (
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestInitKafkaProducer_EmptyBrokers(t *testing.T) {
	logger := log.WithField("test", "kafka")

	for _, brokers := range [][]string{nil, {}, {"", "  "}} {
		producer, err := initKafkaProducer(brokers, logger)
		assert.NoError(t, err)
		assert.Nil(t, producer)
	}
}

func TestInitKafkaProducer_InvalidBrokers(t *testing.T) {
	logger := log.WithField("test", "kafka")

	producer, err := initKafkaProducer([]string{"invalid-broker:9999"}, logger)

	assert.Error(t, err)
	assert.Nil(t, producer, "producer must be nil on error")
}

func TestNormalizeBrokers(t *testing.T) {
	got := normalizeBrokers([]string{"broker1:9092, broker2:9092", " broker3:9092 ", ""})
	assert.Equal(t, []string{"broker1:9092", "broker2:9092", "broker3:9092"}, got)
}

func TestCloseKafka_NilProducer(_ *testing.T) {
	logger := log.WithField("test", "kafka")

	// Не должно паниковать
	closeKafka(nil, logger)
}
