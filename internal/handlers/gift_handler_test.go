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

type mockGiftSubmitter struct {
	err   error
	calls int
}

func (m *mockGiftSubmitter) Submit(ctx context.Context, req models.GiftInquiry) error {
	m.calls++
	return m.err
}

func TestGiftHandler_SendGiftInquiry(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		submitErr      error
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "successful inquiry",
			body:           `{"name":"Jane","email":"jane@example.com","phone":"0821234567","message":"Gift wrapping?"}`,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "invalid email",
			body:           `{"name":"Jane","email":"not-an-email","phone":"0821234567","message":"Gift wrapping?"}`,
			submitErr:      service.ErrInvalidEmail,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "A valid email is required.",
		},
		{
			name:           "relay failure",
			body:           `{"name":"Jane","email":"jane@example.com","phone":"0821234567","message":"Gift wrapping?"}`,
			submitErr:      context.DeadlineExceeded,
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "Failed to send inquiry",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewGiftHandler(&mockGiftSubmitter{err: tt.submitErr}, testLogger())

			req := httptest.NewRequest(http.MethodPost, "/send-gift-inquiry", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()

			h.SendGiftInquiry(rr, req)

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
