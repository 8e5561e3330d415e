package server

import (
	"github.com/gin-gonic/gin"
)

const (
	ctxKeyUserEmail = "session.user_email"
	ctxKeyToken     = "session.token"
)

// AuthRequired validates the session token on every request in the
// protected group. The authenticated user's email is stored on the
// context for downstream handlers.
func (s *Server) AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, ok := s.sessions.ReadToken(c)
		if !ok {
			AbortWithError(c, ErrUnauthorized)
			return
		}

		token, err := s.auth.Authenticate(c.Request.Context(), raw)
		if err != nil {
			AbortWithError(c, err)
			return
		}

		c.Set(ctxKeyUserEmail, token.UserEmail)
		c.Set(ctxKeyToken, raw)
		c.Next()
	}
}
