package provider

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// StubProvider logs instead of sending. Used in local and test
// environments where no twilio credentials exist.
type StubProvider struct{}

func NewStubProvider() *StubProvider {
	return &StubProvider{}
}

func (s *StubProvider) Send(_ context.Context, to, body string) (string, error) {
	log.Infof("stub provider: would send %q to %s", body, to)
	return fmt.Sprintf("stub-%s", uuid.NewString()), nil
}
