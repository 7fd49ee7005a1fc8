package identity

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Asamoah4284/PENNIT-sub001/internal/domain"
)

// ContextUserIDKey is where the auth middleware leaves the authenticated
// viewer's user id, when present
const ContextUserIDKey = "viewer_user_id"

// Resolve derives the stable viewer identity used as the dedup key. The IP is
// taken from the forwarded-for header's first entry when present, else the
// transport peer address. Without at least one signal the pipeline must not
// proceed, since IP is the dedup fallback of last resort.
func Resolve(userID *string, forwardedFor, remoteAddr string) (domain.Identity, error) {
	id := domain.Identity{
		UserID:    normalizeUserID(userID),
		IPAddress: resolveIP(forwardedFor, remoteAddr),
	}
	if !id.Resolvable() {
		return domain.Identity{}, domain.ErrIdentityUnresolvable
	}
	return id, nil
}

// FromRequest resolves the viewer identity from a gin request context
func FromRequest(c *gin.Context) (domain.Identity, error) {
	var userID *string
	if v, ok := c.Get(ContextUserIDKey); ok {
		if s, ok := v.(string); ok && s != "" {
			userID = &s
		}
	}
	return Resolve(userID, c.GetHeader("X-Forwarded-For"), c.Request.RemoteAddr)
}

func normalizeUserID(userID *string) *string {
	if userID == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*userID)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func resolveIP(forwardedFor, remoteAddr string) string {
	if forwardedFor != "" {
		first := strings.TrimSpace(strings.Split(forwardedFor, ",")[0])
		if first != "" {
			return first
		}
	}
	if host, _, err := net.SplitHostPort(remoteAddr); err == nil {
		return host
	}
	return strings.TrimSpace(remoteAddr)
}
