package domain

// Session holds the authenticated identity. Token and Username are set and
// cleared together; a session with only one of them never exists.
type Session struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

// IsAuthenticated returns true if a credential is present. No validity check
// is made against the server; a stale token stays "authenticated" until the
// server rejects a request carrying it.
func (s Session) IsAuthenticated() bool {
	return s.Token != ""
}
