package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/FulloMyself/tassel-shop-backend/internal/models"
	"github.com/FulloMyself/tassel-shop-backend/internal/service"
)

type mockBookingSubmitter struct {
	err   error
	calls int
}

func (m *mockBookingSubmitter) Submit(ctx context.Context, req models.BookingRequest) error {
	m.calls++
	return m.err
}

func TestBookingHandler_SendBooking(t *testing.T) {
	validBody := `{"forWhom":"self","email":"thandi@example.com","services":[{"name":"Swedish Massage","price":450,"duration":60}]}`

	tests := []struct {
		name           string
		body           string
		submitErr      error
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "successful booking",
			body:           validBody,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing details",
			body:           `{"forWhom":"self","services":[]}`,
			submitErr:      service.ErrMissingBookingDetails,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "All booking details are required.",
		},
		{
			name:           "relay failure",
			body:           validBody,
			submitErr:      context.DeadlineExceeded,
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "Failed to send booking email.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewBookingHandler(&mockBookingSubmitter{err: tt.submitErr}, testLogger())

			req := httptest.NewRequest(http.MethodPost, "/send-massage-booking", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()

			h.SendBooking(rr, req)

			if rr.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d", tt.expectedStatus, rr.Code)
			}

			var response map[string]interface{}
			if err := json.NewDecoder(rr.Body).Decode(&response); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}

			if tt.expectedStatus == http.StatusOK {
				if success, _ := response["success"].(bool); !success {
					t.Errorf("expected success=true, got %v", response)
				}
				return
			}

			if msg, _ := response["error"].(string); msg != tt.expectedError {
				t.Errorf("expected error %q, got %q", tt.expectedError, msg)
			}
		})
	}
}

func TestBookingHandler_SendBooking_MalformedBody(t *testing.T) {
	submitter := &mockBookingSubmitter{}
	h := NewBookingHandler(submitter, testLogger())

	req := httptest.NewRequest(http.MethodPost, "/send-massage-booking", strings.NewReader("{not json"))
	rr := httptest.NewRecorder()

	h.SendBooking(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rr.Code)
	}

	if submitter.calls != 0 {
		t.Errorf("service must not be invoked for a malformed body, got %d calls", submitter.calls)
	}
}
