package middleware

import (
	"log"

	"tripplanner/internal/sessions"

	"github.com/gin-gonic/gin"
)

const (
	sessionKey        = "session"
	SessionCookieName = "trip_session"
	sessionCookieAge  = 12 * 60 * 60 // detik, selaras dengan masa idle store
)

// Session resolves the per-user session from the signed cookie, creating a
// fresh Idle session (and setting the cookie) when none resolves.
func Session(store *sessions.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, _ := c.Cookie(SessionCookieName)
		sess := store.Lookup(token)
		if sess == nil {
			created, newToken, err := store.Create()
			if err != nil {
				log.Printf("[SESSION] gagal membuat session: %v", err)
				c.Next()
				return
			}
			sess = created
			c.SetCookie(SessionCookieName, newToken, sessionCookieAge, "/", "", false, true)
		}
		c.Set(sessionKey, sess)
		c.Next()
	}
}

// GetSession extracts the resolved session from gin context.
func GetSession(c *gin.Context) *sessions.Session {
	if v, ok := c.Get(sessionKey); ok {
		if s, ok := v.(*sessions.Session); ok {
			return s
		}
	}
	return nil
}
