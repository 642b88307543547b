package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/FulloMyself/tassel-shop-backend/internal/models"
)

func TestGiftService_Submit_Validation(t *testing.T) {
	tests := []struct {
		name  string
		email string
	}{
		{name: "missing email", email: ""},
		{name: "email without at sign", email: "not-an-email"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			relay := &mockRelay{}
			svc := NewGiftService(relay, discardLogger())

			err := svc.Submit(context.Background(), models.GiftInquiry{
				Name:    "Jane",
				Email:   tt.email,
				Phone:   "0821234567",
				Message: "Do you offer gift wrapping?",
			})

			if !errors.Is(err, ErrInvalidEmail) {
				t.Fatalf("expected ErrInvalidEmail, got %v", err)
			}

			if relay.calls != 0 {
				t.Errorf("relay must not be invoked on validation failure, got %d calls", relay.calls)
			}
		})
	}
}

func TestGiftService_Submit(t *testing.T) {
	relay := &mockRelay{}
	svc := NewGiftService(relay, discardLogger())

	req := models.GiftInquiry{
		Name:    "Jane",
		Email:   "jane@example.com",
		Phone:   "0821234567",
		Message: "Do you offer gift wrapping?",
	}

	if err := svc.Submit(context.Background(), req); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if relay.calls != 1 {
		t.Fatalf("expected one paired send, got %d", relay.calls)
	}

	for _, want := range []string{"Jane", "jane@example.com", "0821234567", "Do you offer gift wrapping?"} {
		if !strings.Contains(relay.business.Body, want) {
			t.Errorf("business body missing %q:\n%s", want, relay.business.Body)
		}
	}

	if relay.customer.To != "jane@example.com" {
		t.Errorf("customer message should go to the inquirer, got %q", relay.customer.To)
	}

	if !strings.Contains(relay.customer.Body, "Do you offer gift wrapping?") {
		t.Errorf("customer confirmation should echo the message:\n%s", relay.customer.Body)
	}
}

func TestGiftService_Submit_RelayFailure(t *testing.T) {
	relay := &mockRelay{err: errors.New("smtp down")}
	svc := NewGiftService(relay, discardLogger())

	err := svc.Submit(context.Background(), models.GiftInquiry{Email: "jane@example.com"})
	if err == nil {
		t.Fatal("expected relay failure to surface")
	}

	if errors.Is(err, ErrInvalidEmail) {
		t.Errorf("relay failure must not look like a validation error: %v", err)
	}
}
