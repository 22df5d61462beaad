package web

import (
	"net/http"
	"time"

	"github.com/gorilla/sessions"
)

const sessionCookieName = "tpt_session"
const sessionTokenKey = "token"

// SessionCookies attaches the opaque session token to responses and
// reads it back from requests. The cookie payload is signed by
// gorilla/sessions; the token itself stays meaningless to the browser.
type SessionCookies struct {
	store *sessions.CookieStore
}

func NewSessionCookies(secret []byte, maxAge time.Duration) *SessionCookies {
	store := sessions.NewCookieStore(secret)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &SessionCookies{store: store}
}

// Token returns the session token carried by the request, or "" when
// the cookie is absent or fails signature verification.
func (c *SessionCookies) Token(r *http.Request) string {
	sess, err := c.store.Get(r, sessionCookieName)
	if err != nil {
		return ""
	}
	token, _ := sess.Values[sessionTokenKey].(string)
	return token
}

// Set writes the token to the response cookie.
func (c *SessionCookies) Set(w http.ResponseWriter, r *http.Request, token string) error {
	sess, _ := c.store.Get(r, sessionCookieName)
	sess.Values[sessionTokenKey] = token
	return sess.Save(r, w)
}

// Clear expires the cookie.
func (c *SessionCookies) Clear(w http.ResponseWriter, r *http.Request) error {
	sess, _ := c.store.Get(r, sessionCookieName)
	delete(sess.Values, sessionTokenKey)
	sess.Options.MaxAge = -1
	return sess.Save(r, w)
}
