package infra

import (
	"fmt"
	"time"

	"github.com/dianestephani/laango-backend/internal/config"
	"github.com/dianestephani/laango-backend/internal/constant"

	"github.com/segmentio/kafka-go"
)

func NewDispatchStatusWriter(cfg config.Kafka) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)),
		Topic:        constant.KafkaDispatchStatusTopic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: constant.KafkaProducerAcks,
		Async:        false, // dispatch publishes sync with timeout; failures are logged, not retried
		BatchTimeout: 10 * time.Millisecond,
		BatchSize:    1024,
	}
}
