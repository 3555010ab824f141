package session_test

import (
	"net/http/httptest"
	"testing"

	"github.com/vchartered/backend/internal/session"
)

type staticNames map[string]string

func (n staticNames) DisplayName(email string) string {
	if name, ok := n[email]; ok {
		return name
	}
	return "Student"
}

func TestParsePage_DefaultsToHome(t *testing.T) {
	cases := map[string]session.Page{
		"Home":     session.PageHome,
		"Test":     session.PageTest,
		"Checker":  session.PageChecker,
		"Kuchu":    session.PageChat,
		"Chat":     session.PageChat,
		"Library":  session.PageLibrary,
		"Admin":    session.PageAdmin,
		"":         session.PageHome,
		"Nonsense": session.PageHome,
	}
	for in, want := range cases {
		if got := session.ParsePage(in); got != want {
			t.Errorf("ParsePage(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestIsAdmin(t *testing.T) {
	if !session.IsAdmin("admin@site.com") {
		t.Error("expected admin@site.com to pass the gate")
	}
	if !session.IsAdmin("Atishay@site.com") {
		t.Error("expected the match to be case-insensitive")
	}
	if session.IsAdmin("bob@site.com") {
		t.Error("expected bob@site.com to fail the gate")
	}
}

func TestUIDTokenRoundTrip(t *testing.T) {
	token := session.EncodeUID("alice@ca.com")
	email, ok := session.DecodeUID(token)
	if !ok {
		t.Fatal("expected token to decode")
	}
	if email != "alice@ca.com" {
		t.Errorf("expected alice@ca.com, got %q", email)
	}

	if _, ok := session.DecodeUID("%%% not base64 %%%"); ok {
		t.Error("expected garbage token to fail decoding")
	}
}

func TestResolve_UIDQueryParam(t *testing.T) {
	m := session.NewManager(staticNames{"alice@ca.com": "Alice"}, "")

	r := httptest.NewRequest("GET", "/pages/Home?uid="+session.EncodeUID("alice@ca.com"), nil)
	id := m.Resolve(r)

	if !id.LoggedIn() {
		t.Fatal("expected a logged-in identity")
	}
	if id.Name != "Alice" {
		t.Errorf("expected display name Alice, got %q", id.Name)
	}
	if id.IsAdmin {
		t.Error("alice must not be admin")
	}
}

func TestResolve_MissingOrBadTokenIsAnonymous(t *testing.T) {
	m := session.NewManager(staticNames{}, "")

	if id := m.Resolve(httptest.NewRequest("GET", "/pages/Home", nil)); id.LoggedIn() {
		t.Error("expected anonymous identity without a token")
	}
	if id := m.Resolve(httptest.NewRequest("GET", "/pages/Home?uid=!!!", nil)); id.LoggedIn() {
		t.Error("expected anonymous identity for an undecodable token")
	}
}

func TestResolve_CookiePair(t *testing.T) {
	m := session.NewManager(staticNames{"alice@ca.com": "Alice"}, "")

	w := httptest.NewRecorder()
	if _, err := m.IssueLogin(w, "alice@ca.com", "Alice"); err != nil {
		t.Fatalf("IssueLogin error: %v", err)
	}

	r := httptest.NewRequest("GET", "/pages/Home", nil)
	for _, c := range w.Result().Cookies() {
		r.AddCookie(c)
	}

	id := m.Resolve(r)
	if id.Email != "alice@ca.com" {
		t.Errorf("expected cookie login to resolve, got %q", id.Email)
	}
}

func TestResolve_SignedCookie(t *testing.T) {
	m := session.NewManager(staticNames{"alice@ca.com": "Alice"}, "super-secret")

	w := httptest.NewRecorder()
	if _, err := m.IssueLogin(w, "alice@ca.com", "Alice"); err != nil {
		t.Fatalf("IssueLogin error: %v", err)
	}

	r := httptest.NewRequest("GET", "/pages/Home", nil)
	for _, c := range w.Result().Cookies() {
		r.AddCookie(c)
	}
	if id := m.Resolve(r); id.Email != "alice@ca.com" {
		t.Errorf("expected signed cookie to resolve, got %q", id.Email)
	}

	// A manager with a different secret must reject the cookie.
	other := session.NewManager(staticNames{}, "different-secret")
	r2 := httptest.NewRequest("GET", "/pages/Home", nil)
	for _, c := range w.Result().Cookies() {
		r2.AddCookie(c)
	}
	if id := other.Resolve(r2); id.LoggedIn() {
		t.Error("expected forged/foreign signed cookie to be anonymous")
	}
}
