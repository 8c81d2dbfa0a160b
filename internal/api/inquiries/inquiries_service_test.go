package inquiries

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/visitauburn/go-auburn-trips/internal/types"
)

func newTestService() *ServiceImpl {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewServiceImpl(time.Hour, logger)
}

func validContact() types.ContactRequest {
	return types.ContactRequest{
		Name:    "Jordan Reyes",
		Email:   "jordan@example.com",
		Subject: "Group visit",
		Message: "Do you offer group tours of Old Town?",
	}
}

func TestSubmitContact(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	receipt, err := svc.SubmitContact(ctx, validContact())
	require.NoError(t, err)
	assert.True(t, receipt.Success)
	assert.NotEmpty(t, receipt.ID)

	stored, found := svc.GetInquiry(ctx, receipt.ID)
	require.True(t, found)
	assert.Equal(t, "contact", stored.Kind)
	assert.Equal(t, "Jordan Reyes", stored.Name)
	assert.False(t, stored.SubmittedAt.IsZero())
}

func TestSubmitContactValidation(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(*types.ContactRequest)
		wantErr error
	}{
		{"missing name", func(r *types.ContactRequest) { r.Name = "  " }, ErrNameRequired},
		{"missing email", func(r *types.ContactRequest) { r.Email = "" }, ErrEmailInvalid},
		{"email without at sign", func(r *types.ContactRequest) { r.Email = "jordan.example.com" }, ErrEmailInvalid},
		{"email without dot", func(r *types.ContactRequest) { r.Email = "jordan@example" }, ErrEmailInvalid},
		{"missing subject", func(r *types.ContactRequest) { r.Subject = "" }, ErrSubjectRequired},
		{"missing message", func(r *types.ContactRequest) { r.Message = "" }, ErrMessageRequired},
		{"name too long", func(r *types.ContactRequest) { r.Name = strings.Repeat("x", 101) }, ErrFieldTooLong},
		{"message too long", func(r *types.ContactRequest) { r.Message = strings.Repeat("x", 5001) }, ErrFieldTooLong},
		{"phone too long", func(r *types.ContactRequest) { r.Phone = strings.Repeat("1", 21) }, ErrFieldTooLong},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validContact()
			tt.mutate(&req)
			_, err := svc.SubmitContact(ctx, req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSubscribeNewsletter(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	receipt, err := svc.SubscribeNewsletter(ctx, types.NewsletterRequest{Email: "visitor@example.com"})
	require.NoError(t, err)
	assert.True(t, receipt.Success)

	stored, found := svc.GetInquiry(ctx, receipt.ID)
	require.True(t, found)
	assert.Equal(t, "newsletter", stored.Kind)
	assert.Equal(t, "visitor@example.com", stored.Email)
}

func TestSubscribeNewsletterRejectsInvalidEmail(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.SubscribeNewsletter(ctx, types.NewsletterRequest{Email: "not-an-email"})
	assert.ErrorIs(t, err, ErrEmailInvalid)

	_, err = svc.SubscribeNewsletter(ctx, types.NewsletterRequest{})
	assert.ErrorIs(t, err, ErrEmailInvalid)
}

func TestGetInquiryMiss(t *testing.T) {
	svc := newTestService()

	_, found := svc.GetInquiry(context.Background(), "no-such-id")
	assert.False(t, found)
}

func TestInquiryIDsAreUnique(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		receipt, err := svc.SubmitContact(ctx, validContact())
		require.NoError(t, err)
		assert.False(t, seen[receipt.ID])
		seen[receipt.ID] = true
	}
}
