package constant

import (
	"time"

	"github.com/segmentio/kafka-go"
)

const (
	UserIdKey = "user_id"

	KafkaDispatchStatusTopic = "dispatch.status"
	KafkaProducerAcks        = kafka.RequireAll
	KafkaWriteTimeout        = 5 * time.Second

	// ProviderSendTimeout bounds a single SMS provider call; a timeout is
	// recorded as that recipient's failure, not the batch's.
	ProviderSendTimeout = 10 * time.Second

	DefaultDispatchWorkers = 4

	// IdempotencyKeyTTL is how long a completed dispatch request blocks an
	// identical retry.
	IdempotencyKeyTTL = 15 * time.Minute

	DBTxTimeout = 2 * time.Second // keep transactions short
)
