package inquiries

import (
	"errors"
	"log/slog"
	"net/http"

	"go.opentelemetry.io/otel"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/visitauburn/go-auburn-trips/internal/api"
	"github.com/visitauburn/go-auburn-trips/internal/types"
)

type Handler struct {
	inquiryService Service
	logger         *slog.Logger
}

func NewHandler(inquiryService Service, logger *slog.Logger) *Handler {
	return &Handler{
		inquiryService: inquiryService,
		logger:         logger,
	}
}

// SubmitContact handles POST /api/v1/contact.
func (h *Handler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("InquiriesHandler").Start(r.Context(), "SubmitContact", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/contact"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "SubmitContact"))

	var req types.ContactRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		l.ErrorContext(ctx, "Failed to decode contact request", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	receipt, err := h.inquiryService.SubmitContact(ctx, req)
	if err != nil {
		if isValidationError(err) {
			l.DebugContext(ctx, "Contact validation failed", slog.Any("error", err))
			api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
			return
		}
		l.ErrorContext(ctx, "Failed to submit contact inquiry", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to process submission")
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, receipt)
}

// SubscribeNewsletter handles POST /api/v1/newsletter.
func (h *Handler) SubscribeNewsletter(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("InquiriesHandler").Start(r.Context(), "SubscribeNewsletter", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/newsletter"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "SubscribeNewsletter"))

	var req types.NewsletterRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		l.ErrorContext(ctx, "Failed to decode newsletter request", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	receipt, err := h.inquiryService.SubscribeNewsletter(ctx, req)
	if err != nil {
		if isValidationError(err) {
			l.DebugContext(ctx, "Newsletter validation failed", slog.Any("error", err))
			api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
			return
		}
		l.ErrorContext(ctx, "Failed to process newsletter signup", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to process signup")
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, receipt)
}

func isValidationError(err error) bool {
	return errors.Is(err, ErrNameRequired) ||
		errors.Is(err, ErrEmailInvalid) ||
		errors.Is(err, ErrSubjectRequired) ||
		errors.Is(err, ErrMessageRequired) ||
		errors.Is(err, ErrFieldTooLong)
}
