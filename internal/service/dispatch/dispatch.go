package dispatch

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/dianestephani/laango-backend/internal/constant"
	"github.com/dianestephani/laango-backend/internal/domain"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"
)

// SendNotifications texts message to every phone in the batch, one send
// per recipient, each independent: a failed recipient is captured in the
// report and never aborts the rest. Once preconditions pass the call
// itself does not fail. Sends already attempted cannot be rolled back.
func (ds *dispatchService) SendNotifications(ctx context.Context, jobID int64, phones []string, message string) (domain.DispatchReport, error) {
	if ds.provider == nil {
		return domain.DispatchReport{}, errors.Wrap(constant.ConfigurationErr, "sms provider is not configured")
	}
	if jobID == 0 {
		return domain.DispatchReport{}, errors.Wrap(constant.ValidationErr, "job_id is required")
	}
	if len(phones) == 0 {
		return domain.DispatchReport{}, errors.Wrap(constant.ValidationErr, "phone_numbers is required")
	}
	if message == "" {
		return domain.DispatchReport{}, errors.Wrap(constant.ValidationErr, "message is required")
	}

	job, err := ds.jobRepository.GetByID(ctx, jobID)
	if err != nil {
		return domain.DispatchReport{}, err
	}

	dispatchID := uuid.NewString()
	results := make([]domain.RecipientResult, len(phones))

	// bounded fan-out: recipients have no ordering dependency between them
	sem := make(chan struct{}, ds.workerCount)
	var wg sync.WaitGroup
	for i, phone := range phones {
		wg.Add(1)
		go func(i int, phone string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			results[i] = ds.sendOne(ctx, job, phone, message)
			ds.publishStatus(dispatchID, job.ID, results[i])
		}(i, phone)
	}
	wg.Wait()

	report := domain.DispatchReport{
		DispatchID: dispatchID,
		JobID:      job.ID,
		Results:    results,
	}
	for _, r := range results {
		if r.Outcome == domain.OutcomeSent {
			report.SentCount++
		} else {
			report.FailedCount++
		}
	}

	return report, nil
}

func (ds *dispatchService) sendOne(ctx context.Context, job domain.Job, phone, message string) domain.RecipientResult {
	sendCtx, cancel := context.WithTimeout(ctx, constant.ProviderSendTimeout)
	defer cancel()

	messageID, err := ds.provider.Send(sendCtx, phone, message)
	if err != nil {
		ds.logger.Warnf("dispatch: send to %s failed: %v", phone, err)
		return domain.RecipientResult{
			PhoneNumber: phone,
			Outcome:     domain.OutcomeFailed,
			ErrorDetail: err.Error(),
		}
	}

	ds.recordContact(ctx, job, phone, message)

	return domain.RecipientResult{
		PhoneNumber:       phone,
		Outcome:           domain.OutcomeSent,
		ProviderMessageID: messageID,
	}
}

// recordContact appends the audit row for a delivered message. A number
// with no interpreter on file still counts as sent but leaves no record.
// An insert failure loses audit only, never the send outcome.
func (ds *dispatchService) recordContact(ctx context.Context, job domain.Job, phone, message string) {
	interp, err := ds.interpreterRepository.GetByPhone(ctx, phone)
	if err != nil {
		if !errors.Is(err, constant.NotFoundErr) {
			ds.logger.Warnf("dispatch: interpreter lookup for %s failed: %v", phone, err)
		}
		return
	}

	_, err = ds.contactRepository.Create(ctx, domain.ContactRecord{
		JobID:         job.ID,
		InterpreterID: interp.ID,
		MessageSent:   message,
		PhoneNumber:   phone,
	})
	if err != nil {
		ds.logger.Errorf("dispatch: failed to record contact for %s: %v", phone, err)
	}
}

// logging the outcome to kafka is not critical, so errors stop nothing
func (ds *dispatchService) publishStatus(dispatchID string, jobID int64, result domain.RecipientResult) {
	if ds.statusWriter == nil {
		return
	}

	event := domain.DispatchEvent{
		DispatchID:        dispatchID,
		JobID:             jobID,
		PhoneNumber:       result.PhoneNumber,
		Outcome:           result.Outcome,
		ProviderMessageID: result.ProviderMessageID,
		ErrorDetail:       result.ErrorDetail,
		CreatedAt:         time.Now(),
	}

	marshalled, err := json.Marshal(event)
	if err != nil {
		ds.logger.Warnf("dispatch: failed to marshal status event: %v", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), constant.KafkaWriteTimeout)
	defer cancel()

	err = ds.statusWriter.WriteMessages(ctx, kafka.Message{
		Key:   []byte(dispatchID),
		Value: marshalled,
		Time:  time.Now(),
	})
	if err != nil {
		ds.logger.Warnf("dispatch: failed to publish status event: %v", err)
	}
}
