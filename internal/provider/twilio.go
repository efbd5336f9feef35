package provider

import (
	"context"

	"github.com/dianestephani/laango-backend/internal/config"
	"github.com/dianestephani/laango-backend/internal/constant"

	"github.com/pkg/errors"
	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

type TwilioProvider struct {
	client *twilio.RestClient
	from   string
}

// NewTwilioProvider validates the three injected secrets up front; a
// missing one is a configuration error, not a per-call error.
func NewTwilioProvider(cfg config.Twilio) (*TwilioProvider, error) {
	if cfg.AccountSID == "" || cfg.AuthToken == "" || cfg.FromNumber == "" {
		return nil, errors.Wrap(constant.ConfigurationErr, "twilio account_sid, auth_token and from_number are required")
	}

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.AccountSID,
		Password: cfg.AuthToken,
	})
	client.Client.SetTimeout(constant.ProviderSendTimeout)

	return &TwilioProvider{
		client: client,
		from:   cfg.FromNumber,
	}, nil
}

func (p *TwilioProvider) Send(ctx context.Context, to, body string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", errors.Wrap(constant.ProviderErr, err.Error())
	}

	params := &openapi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(p.from)
	params.SetBody(body)

	resp, err := p.client.Api.CreateMessage(params)
	if err != nil {
		return "", errors.Wrap(constant.ProviderErr, err.Error())
	}
	if resp.Sid == nil {
		return "", errors.Wrap(constant.ProviderErr, "twilio returned no message sid")
	}

	return *resp.Sid, nil
}
