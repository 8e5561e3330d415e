package session

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// HeaderToken is the request header carrying the session token.
const HeaderToken = "X-Access-Token"

// Manager extracts session tokens from inbound requests.
type Manager struct {
	header string
}

func NewManager() *Manager {
	return &Manager{header: HeaderToken}
}

func (m *Manager) Header() string {
	return m.header
}

// ReadToken returns the raw token from the request, if any.
func (m *Manager) ReadToken(c *gin.Context) (string, bool) {
	token := strings.TrimSpace(c.GetHeader(m.header))
	if token == "" {
		return "", false
	}
	return token, true
}
