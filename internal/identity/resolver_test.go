package identity_test

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Asamoah4284/PENNIT-sub001/internal/domain"
	"github.com/Asamoah4284/PENNIT-sub001/internal/identity"
)

func strPtr(s string) *string {
	return &s
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name         string
		userID       *string
		forwardedFor string
		remoteAddr   string
		wantUser     *string
		wantIP       string
		wantErr      bool
	}{
		{
			name:       "authenticated with peer address",
			userID:     strPtr("u1"),
			remoteAddr: "203.0.113.9:51234",
			wantUser:   strPtr("u1"),
			wantIP:     "203.0.113.9",
		},
		{
			name:         "forwarded-for wins over peer address",
			forwardedFor: "198.51.100.4",
			remoteAddr:   "10.0.0.1:80",
			wantIP:       "198.51.100.4",
		},
		{
			name:         "forwarded-for first entry of chained proxies",
			forwardedFor: "198.51.100.4, 10.0.0.2, 10.0.0.3",
			remoteAddr:   "10.0.0.1:80",
			wantIP:       "198.51.100.4",
		},
		{
			name:       "whitespace user id treated as anonymous",
			userID:     strPtr("   "),
			remoteAddr: "203.0.113.9:51234",
			wantIP:     "203.0.113.9",
		},
		{
			name:       "remote addr without port used verbatim",
			remoteAddr: "203.0.113.9",
			wantIP:     "203.0.113.9",
		},
		{
			name:    "no signal at all",
			wantErr: true,
		},
		{
			name:     "user id alone is enough",
			userID:   strPtr("u1"),
			wantUser: strPtr("u1"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := identity.Resolve(tt.userID, tt.forwardedFor, tt.remoteAddr)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrIdentityUnresolvable)
				return
			}
			require.NoError(t, err)
			if tt.wantUser != nil {
				require.NotNil(t, got.UserID)
				assert.Equal(t, *tt.wantUser, *got.UserID)
			} else {
				assert.Nil(t, got.UserID)
			}
			assert.Equal(t, tt.wantIP, got.IPAddress)
		})
	}
}

func TestFromRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("POST", "/api/v1/contents/1/view", nil)
	c.Request.RemoteAddr = "203.0.113.9:51234"
	c.Set(identity.ContextUserIDKey, "u1")

	got, err := identity.FromRequest(c)
	require.NoError(t, err)
	require.NotNil(t, got.UserID)
	assert.Equal(t, "u1", *got.UserID)
	assert.Equal(t, "203.0.113.9", got.IPAddress)

	// Anonymous request falls back to the transport address
	c, _ = gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("POST", "/api/v1/contents/1/view", nil)
	c.Request.RemoteAddr = "198.51.100.4:443"

	got, err = identity.FromRequest(c)
	require.NoError(t, err)
	assert.Nil(t, got.UserID)
	assert.Equal(t, "198.51.100.4", got.IPAddress)
}
