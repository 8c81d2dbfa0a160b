package inquiries

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/visitauburn/go-auburn-trips/internal/types"
)

func newTestHandler() *Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewHandler(NewServiceImpl(time.Hour, logger), logger)
}

func TestSubmitContactHandler(t *testing.T) {
	handler := newTestHandler()

	body, err := json.Marshal(validContact())
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/contact", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	handler.SubmitContact(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var receipt types.InquiryReceipt
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &receipt))
	assert.True(t, receipt.Success)
	assert.NotEmpty(t, receipt.ID)
}

func TestSubmitContactHandlerValidation(t *testing.T) {
	handler := newTestHandler()

	invalid := validContact()
	invalid.Email = "not-an-email"
	body, err := json.Marshal(invalid)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/contact", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	handler.SubmitContact(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSubmitContactHandlerBadJSON(t *testing.T) {
	handler := newTestHandler()

	req := httptest.NewRequest(http.MethodPost, "/contact", bytes.NewReader([]byte("{")))
	rec := httptest.NewRecorder()
	handler.SubmitContact(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSubscribeNewsletterHandler(t *testing.T) {
	handler := newTestHandler()

	req := httptest.NewRequest(http.MethodPost, "/newsletter",
		bytes.NewReader([]byte(`{"email":"visitor@example.com"}`)))
	rec := httptest.NewRecorder()
	handler.SubscribeNewsletter(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var receipt types.InquiryReceipt
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &receipt))
	assert.True(t, receipt.Success)
}

func TestSubscribeNewsletterHandlerInvalidEmail(t *testing.T) {
	handler := newTestHandler()

	req := httptest.NewRequest(http.MethodPost, "/newsletter",
		bytes.NewReader([]byte(`{"email":"nope"}`)))
	rec := httptest.NewRecorder()
	handler.SubscribeNewsletter(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
