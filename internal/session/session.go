package session

import (
	"encoding/base64"
	"net/http"
	"strings"
	"time"
)

// Sessions are bearer-token based. The default scheme reproduces the
// original application's: a reversibly-encoded email in a "uid" query
// parameter, or a plain cookie pair, both forgeable by construction. When a
// secret is configured the cookie becomes a signed token instead; the uid
// parameter stays unsigned for link-based navigation compatibility.

const (
	// TokenTTL is how long login cookies persist.
	TokenTTL = 30 * 24 * time.Hour

	uidCookie    = "vc_uid"
	nameCookie   = "vc_name"
	signedCookie = "vc_session"

	uidParam = "uid"
)

// Identity is the per-request caller identity, populated once at request
// entry from whatever token the client presented.
type Identity struct {
	Email   string
	Name    string
	IsAdmin bool
}

func (id Identity) LoggedIn() bool {
	return id.Email != ""
}

// IsAdmin gates the admin surface. A case-insensitive substring match on
// the email is all the original application had; it is not an access
// control mechanism anyone should trust, and it stays only because the
// observed behavior depends on it.
func IsAdmin(email string) bool {
	lower := strings.ToLower(email)
	return strings.Contains(lower, "admin") || strings.Contains(lower, "atishay")
}

// NameResolver maps an email to a display name.
type NameResolver interface {
	DisplayName(email string) string
}

// Manager resolves request tokens to identities and issues login tokens.
type Manager struct {
	names  NameResolver
	secret []byte // empty = plain cookie scheme
}

func NewManager(names NameResolver, secret string) *Manager {
	return &Manager{names: names, secret: []byte(secret)}
}

// EncodeUID produces the reversible uid token for an email. This is
// encoding, not encryption.
func EncodeUID(email string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(email))
}

// DecodeUID reverses EncodeUID. Failures mean "not logged in".
func DecodeUID(token string) (string, bool) {
	b, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil || len(b) == 0 {
		return "", false
	}
	return string(b), true
}

// Resolve maps the request's token, if any, to an identity. A missing or
// undecodable token yields the anonymous identity, never an error.
func (m *Manager) Resolve(r *http.Request) Identity {
	if email, ok := m.emailFromRequest(r); ok {
		return Identity{
			Email:   email,
			Name:    m.names.DisplayName(email),
			IsAdmin: IsAdmin(email),
		}
	}
	return Identity{}
}

func (m *Manager) emailFromRequest(r *http.Request) (string, bool) {
	// uid query parameter wins: it is how shared links carry identity.
	if token := r.URL.Query().Get(uidParam); token != "" {
		if email, ok := DecodeUID(token); ok {
			return email, true
		}
	}

	if len(m.secret) > 0 {
		c, err := r.Cookie(signedCookie)
		if err != nil {
			return "", false
		}
		email, err := parseToken(c.Value, m.secret)
		if err != nil {
			return "", false
		}
		return email, true
	}

	c, err := r.Cookie(uidCookie)
	if err != nil {
		return "", false
	}
	return DecodeUID(c.Value)
}

// IssueLogin sets the login cookies for a verified account and returns the
// uid token the client can carry in URLs.
func (m *Manager) IssueLogin(w http.ResponseWriter, email, name string) (string, error) {
	expires := time.Now().Add(TokenTTL)

	if len(m.secret) > 0 {
		tok, err := generateToken(email, m.secret, TokenTTL)
		if err != nil {
			return "", err
		}
		http.SetCookie(w, &http.Cookie{
			Name:     signedCookie,
			Value:    tok,
			Path:     "/",
			Expires:  expires,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
		return EncodeUID(email), nil
	}

	http.SetCookie(w, &http.Cookie{
		Name:    uidCookie,
		Value:   EncodeUID(email),
		Path:    "/",
		Expires: expires,
	})
	http.SetCookie(w, &http.Cookie{
		Name:    nameCookie,
		Value:   EncodeUID(name),
		Path:    "/",
		Expires: expires,
	})
	return EncodeUID(email), nil
}

// ClearLogin expires every session cookie.
func (m *Manager) ClearLogin(w http.ResponseWriter) {
	for _, name := range []string{uidCookie, nameCookie, signedCookie} {
		http.SetCookie(w, &http.Cookie{
			Name:    name,
			Value:   "",
			Path:    "/",
			MaxAge:  -1,
			Expires: time.Unix(0, 0),
		})
	}
}
