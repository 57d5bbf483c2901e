package security_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"gqlgate/internal/security"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllowlist(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name       string
		cidrs      []string
		remoteAddr string
		wantStatus int
	}{
		{
			name:       "Allowed peer",
			cidrs:      []string{"127.0.0.0/8"},
			remoteAddr: "127.0.0.1:54321",
			wantStatus: http.StatusOK,
		},
		{
			name:       "Blocked peer",
			cidrs:      []string{"127.0.0.0/8"},
			remoteAddr: "10.1.2.3:54321",
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "Empty list allows everything",
			cidrs:      nil,
			remoteAddr: "203.0.113.9:443",
			wantStatus: http.StatusOK,
		},
		{
			name:       "IPv6 peer",
			cidrs:      []string{"::1/128"},
			remoteAddr: "[::1]:8080",
			wantStatus: http.StatusOK,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			allow, err := security.Allowlist(tc.cidrs)
			require.NoError(t, err)

			req := httptest.NewRequest(http.MethodGet, "/graphql", nil)
			req.RemoteAddr = tc.remoteAddr
			rec := httptest.NewRecorder()

			allow(next).ServeHTTP(rec, req)
			assert.Equal(t, tc.wantStatus, rec.Code)
		})
	}
}

func TestAllowlistInvalidCIDR(t *testing.T) {
	_, err := security.Allowlist([]string{"not-a-cidr"})
	require.Error(t, err)
}
