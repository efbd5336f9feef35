package dispatch

import (
	"context"

	"github.com/dianestephani/laango-backend/internal/domain"
)

type DispatchHandler struct {
	dispatchService dispatchService
}

type dispatchService interface {
	SendNotifications(ctx context.Context, jobID int64, phones []string, message string) (domain.DispatchReport, error)
}

func New(dispatchService dispatchService) *DispatchHandler {
	return &DispatchHandler{
		dispatchService: dispatchService,
	}
}
