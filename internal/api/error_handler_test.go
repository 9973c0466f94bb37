package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/brijesh-0/job-board-backend/internal/core/domain"
)

func renderError(t *testing.T, err error) (int, string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if body.Success {
		t.Fatalf("error responses must have success=false")
	}
	return rec.Code, body.Error
}

func TestErrorHandler_DomainErrors(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{domain.ErrForbidden, http.StatusForbidden},
		{domain.ErrUserNotFound, http.StatusNotFound},
		{domain.ErrJobNotFound, http.StatusNotFound},
		{domain.ErrApplicationNotFound, http.StatusNotFound},
		{domain.ErrEmailTaken, http.StatusConflict},
		{domain.ErrDuplicateApplication, http.StatusConflict},
		{domain.ErrJobClosed, http.StatusConflict},
		{domain.ErrInvalidTransition, http.StatusUnprocessableEntity},
		{domain.ErrInvalidSalaryRange, http.StatusBadRequest},
		{domain.ErrCompanyRequired, http.StatusBadRequest},
		{domain.ErrInvalidUpload, http.StatusBadRequest},
	}

	for _, tc := range cases {
		if code, _ := renderError(t, tc.err); code != tc.code {
			t.Errorf("%v: expected %d, got %d", tc.err, tc.code, code)
		}
	}
}

func TestErrorHandler_InvalidTransitionMessage(t *testing.T) {
	err := fmt.Errorf("%w from %s to %s", domain.ErrInvalidTransition, domain.StatusScreening, domain.StatusOffer)
	code, msg := renderError(t, err)
	if code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", code)
	}
	if !strings.Contains(msg, "Screening") || !strings.Contains(msg, "Offer") {
		t.Fatalf("message should name both statuses: %s", msg)
	}
}

func TestErrorHandler_EchoHTTPError(t *testing.T) {
	code, msg := renderError(t, echo.NewHTTPError(http.StatusTooManyRequests, "too many requests, try again later"))
	if code != http.StatusTooManyRequests || msg == "" {
		t.Fatalf("expected 429 with message, got %d %q", code, msg)
	}
}

func TestErrorHandler_UnknownError(t *testing.T) {
	code, msg := renderError(t, errors.New("database exploded"))
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	if strings.Contains(msg, "exploded") {
		t.Fatalf("internal details leaked to the client: %s", msg)
	}
}
