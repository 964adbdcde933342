package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenFromHeader(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"no header", "", ""},
		{"token scheme", "Token deadbeef", "deadbeef"},
		{"token scheme with extra space", "Token  deadbeef", "deadbeef"},
		{"bearer scheme rejected", "Bearer deadbeef", ""},
		{"scheme only", "Token", ""},
		{"lowercase scheme rejected", "token deadbeef", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				r.Header.Set("Authorization", tc.header)
			}
			assert.Equal(t, tc.want, tokenFromHeader(r))
		})
	}
}

func TestStatusRecorder_CapturesStatus(t *testing.T) {
	rr := httptest.NewRecorder()
	rec := &statusRecorder{ResponseWriter: rr, status: http.StatusOK}

	rec.WriteHeader(http.StatusTeapot)

	assert.Equal(t, http.StatusTeapot, rec.status)
	assert.Equal(t, http.StatusTeapot, rr.Code)
}
