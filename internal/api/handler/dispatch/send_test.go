package dispatch

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dianestephani/laango-backend/internal/constant"
	"github.com/dianestephani/laango-backend/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

type fakeDispatchService struct {
	report domain.DispatchReport
	err    error
}

func (f fakeDispatchService) SendNotifications(_ context.Context, _ int64, _ []string, _ string) (domain.DispatchReport, error) {
	return f.report, f.err
}

func setupRouter(svc fakeDispatchService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/v1/dispatch", New(svc).Send)
	return r
}

func TestSendReturnsReport(t *testing.T) {
	report := domain.DispatchReport{
		DispatchID:  "d-1",
		JobID:       7,
		SentCount:   2,
		FailedCount: 0,
		Results: []domain.RecipientResult{
			{PhoneNumber: "555-0001", Outcome: domain.OutcomeSent, ProviderMessageID: "SM1"},
			{PhoneNumber: "555-0002", Outcome: domain.OutcomeSent, ProviderMessageID: "SM2"},
		},
	}
	r := setupRouter(fakeDispatchService{report: report})

	body := `{"job_id":7,"phone_numbers":["555-0001","555-0002"],"message":"Hello"}`
	req := httptest.NewRequest("POST", "/v1/dispatch", strings.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var resp struct {
		Data domain.DispatchReport `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if resp.Data.SentCount != 2 || resp.Data.FailedCount != 0 {
		t.Fatalf("sent=%d failed=%d, want 2/0", resp.Data.SentCount, resp.Data.FailedCount)
	}
	if len(resp.Data.Results) != 2 {
		t.Fatalf("results = %d, want 2", len(resp.Data.Results))
	}
}

func TestSendErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "validation", err: errors.Wrap(constant.ValidationErr, "phone_numbers is required"), want: http.StatusBadRequest},
		{name: "not found", err: errors.Wrap(constant.NotFoundErr, "job 9"), want: http.StatusNotFound},
		{name: "not configured", err: errors.Wrap(constant.ConfigurationErr, "sms provider is not configured"), want: http.StatusServiceUnavailable},
		{name: "unexpected", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := setupRouter(fakeDispatchService{err: tt.err})

			req := httptest.NewRequest("POST", "/v1/dispatch", strings.NewReader(`{"job_id":7}`))
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			if rec.Code != tt.want {
				t.Fatalf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}

func TestSendUnexpectedErrorIsGeneric(t *testing.T) {
	r := setupRouter(fakeDispatchService{err: errors.New("connection reset by peer")})

	req := httptest.NewRequest("POST", "/v1/dispatch", strings.NewReader(`{"job_id":7}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if resp["error"] != "internal server error" {
		t.Fatalf("error = %q, want generic message", resp["error"])
	}
}

func TestSendRejectsMalformedBody(t *testing.T) {
	r := setupRouter(fakeDispatchService{})

	req := httptest.NewRequest("POST", "/v1/dispatch", strings.NewReader(`{not json`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}
