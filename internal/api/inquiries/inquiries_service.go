package inquiries

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/visitauburn/go-auburn-trips/internal/types"
)

// Validation failures surfaced to the handler as 400s.
var (
	ErrNameRequired    = errors.New("name is required")
	ErrEmailInvalid    = errors.New("valid email address is required")
	ErrSubjectRequired = errors.New("subject is required")
	ErrMessageRequired = errors.New("message is required")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
)

// Field length caps mirror what the public forms enforce.
const (
	maxNameLength    = 100
	maxEmailLength   = 255
	maxPhoneLength   = 20
	maxSubjectLength = 200
	maxMessageLength = 5000
)

// Ensure implementation satisfies the interface
var _ Service = (*ServiceImpl)(nil)

// Service defines the contract for visitor inquiry submissions.
type Service interface {
	SubmitContact(ctx context.Context, req types.ContactRequest) (*types.InquiryReceipt, error)
	SubscribeNewsletter(ctx context.Context, req types.NewsletterRequest) (*types.InquiryReceipt, error)
	GetInquiry(ctx context.Context, id string) (*types.Inquiry, bool)
}

// ServiceImpl validates submissions and holds them in a TTL-bounded store
// until a downstream CRM integration picks them up.
type ServiceImpl struct {
	logger *slog.Logger
	store  *cache.Cache
}

func NewServiceImpl(retention time.Duration, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger: logger,
		store:  cache.New(retention, 2*retention),
	}
}

func (s *ServiceImpl) SubmitContact(ctx context.Context, req types.ContactRequest) (*types.InquiryReceipt, error) {
	ctx, span := otel.Tracer("InquiriesService").Start(ctx, "SubmitContact")
	defer span.End()

	if err := validateContact(req); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Contact validation failed")
		return nil, err
	}

	inquiry := types.Inquiry{
		ID:          uuid.NewString(),
		Kind:        "contact",
		Name:        strings.TrimSpace(req.Name),
		Email:       strings.TrimSpace(req.Email),
		Phone:       strings.TrimSpace(req.Phone),
		Subject:     strings.TrimSpace(req.Subject),
		Message:     strings.TrimSpace(req.Message),
		SubmittedAt: time.Now().UTC(),
	}
	s.store.Set(inquiry.ID, inquiry, cache.DefaultExpiration)

	s.logger.InfoContext(ctx, "Contact inquiry accepted",
		slog.String("inquiryID", inquiry.ID),
		slog.String("subject", inquiry.Subject))
	span.SetAttributes(attribute.String("inquiry.id", inquiry.ID))
	span.SetStatus(codes.Ok, "Contact inquiry accepted")

	return &types.InquiryReceipt{Success: true, ID: inquiry.ID}, nil
}

func (s *ServiceImpl) SubscribeNewsletter(ctx context.Context, req types.NewsletterRequest) (*types.InquiryReceipt, error) {
	ctx, span := otel.Tracer("InquiriesService").Start(ctx, "SubscribeNewsletter")
	defer span.End()

	email := strings.TrimSpace(req.Email)
	if !validEmail(email) {
		span.RecordError(ErrEmailInvalid)
		span.SetStatus(codes.Error, "Newsletter validation failed")
		return nil, ErrEmailInvalid
	}
	if len(email) > maxEmailLength {
		return nil, fmt.Errorf("email: %w", ErrFieldTooLong)
	}

	inquiry := types.Inquiry{
		ID:          uuid.NewString(),
		Kind:        "newsletter",
		Name:        strings.TrimSpace(req.Name),
		Email:       email,
		SubmittedAt: time.Now().UTC(),
	}
	s.store.Set(inquiry.ID, inquiry, cache.DefaultExpiration)

	s.logger.InfoContext(ctx, "Newsletter signup accepted", slog.String("inquiryID", inquiry.ID))
	span.SetAttributes(attribute.String("inquiry.id", inquiry.ID))
	span.SetStatus(codes.Ok, "Newsletter signup accepted")

	return &types.InquiryReceipt{Success: true, ID: inquiry.ID}, nil
}

// GetInquiry returns a stored submission while it is still within retention.
func (s *ServiceImpl) GetInquiry(_ context.Context, id string) (*types.Inquiry, bool) {
	v, found := s.store.Get(id)
	if !found {
		return nil, false
	}
	inquiry := v.(types.Inquiry)
	return &inquiry, true
}

func validateContact(req types.ContactRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return ErrNameRequired
	}
	if !validEmail(req.Email) {
		return ErrEmailInvalid
	}
	if strings.TrimSpace(req.Subject) == "" {
		return ErrSubjectRequired
	}
	if strings.TrimSpace(req.Message) == "" {
		return ErrMessageRequired
	}
	switch {
	case len(req.Name) > maxNameLength:
		return fmt.Errorf("name: %w", ErrFieldTooLong)
	case len(req.Email) > maxEmailLength:
		return fmt.Errorf("email: %w", ErrFieldTooLong)
	case len(req.Phone) > maxPhoneLength:
		return fmt.Errorf("phone: %w", ErrFieldTooLong)
	case len(req.Subject) > maxSubjectLength:
		return fmt.Errorf("subject: %w", ErrFieldTooLong)
	case len(req.Message) > maxMessageLength:
		return fmt.Errorf("message: %w", ErrFieldTooLong)
	}
	return nil
}

func validEmail(email string) bool {
	email = strings.TrimSpace(email)
	return email != "" && strings.Contains(email, "@") && strings.Contains(email, ".")
}
