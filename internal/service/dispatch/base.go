package dispatch

import (
	"context"

	"github.com/dianestephani/laango-backend/internal/constant"
	"github.com/dianestephani/laango-backend/internal/domain"
	"github.com/dianestephani/laango-backend/internal/provider"

	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

type dispatchService struct {
	provider              provider.SMSProvider
	jobRepository         jobRepository
	interpreterRepository interpreterRepository
	contactRepository     contactRepository
	statusWriter          statusWriter
	logger                *logrus.Logger
	workerCount           int
}

type jobRepository interface {
	GetByID(ctx context.Context, id int64) (domain.Job, error)
}

type interpreterRepository interface {
	GetByPhone(ctx context.Context, phone string) (domain.Interpreter, error)
}

type contactRepository interface {
	Create(ctx context.Context, record domain.ContactRecord) (domain.ContactRecord, error)
}

// statusWriter is satisfied by *kafka.Writer. Publishing is best effort;
// a nil writer disables it.
type statusWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

func NewDispatchService(
	smsProvider provider.SMSProvider,
	jobRepo jobRepository,
	interpreterRepo interpreterRepository,
	contactRepo contactRepository,
	statusWriter statusWriter,
	logger *logrus.Logger,
	workerCount int,
) *dispatchService {
	if workerCount <= 0 {
		workerCount = constant.DefaultDispatchWorkers
	}

	return &dispatchService{
		provider:              smsProvider,
		jobRepository:         jobRepo,
		interpreterRepository: interpreterRepo,
		contactRepository:     contactRepo,
		statusWriter:          statusWriter,
		logger:                logger,
		workerCount:           workerCount,
	}
}
