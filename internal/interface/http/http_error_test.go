package http

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/yanqian/culture-compass/pkg/errors"
)

func TestDomainError(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"invalid input", apperrors.Wrap(apperrors.CodeInvalidInput, "message is required", nil), http.StatusBadRequest, "invalid_input"},
		{"not found", apperrors.Wrap(apperrors.CodeNotFound, "itinerary not found", nil), http.StatusNotFound, "not_found"},
		{"storage", apperrors.Wrap(apperrors.CodeStorage, "failed", errors.New("conn refused")), http.StatusInternalServerError, "storage_error"},
		{"render", apperrors.Wrap(apperrors.CodeRender, "failed", errors.New("font")), http.StatusInternalServerError, "render_error"},
		{"unknown code", apperrors.Wrap("mystery", "odd", nil), http.StatusInternalServerError, "internal_error"},
		{"plain error", errors.New("boom"), http.StatusInternalServerError, "internal_error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := domainError(tc.err)
			require.Equal(t, tc.status, got.Status)
			require.Equal(t, tc.code, got.Code)
			require.ErrorIs(t, got, tc.err)
		})
	}
}

func TestDomainErrorKeepsMessage(t *testing.T) {
	got := domainError(apperrors.Wrap(apperrors.CodeNotFound, "user preferences not found", nil))
	require.Equal(t, "user preferences not found", got.Message)

	got = domainError(errors.New("pq: password authentication failed"))
	require.Equal(t, "something went wrong", got.Message)
}

func TestAsHTTPErrorPassesThrough(t *testing.T) {
	original := NewHTTPError(http.StatusTooManyRequests, "rate_limit_exceeded", "too many requests", nil)
	require.Same(t, original, asHTTPError(original))
	require.Nil(t, asHTTPError(nil))
}
