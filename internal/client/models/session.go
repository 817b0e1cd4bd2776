// Package models holds the client-side data kept between runs.
package models

// Session is what the client remembers between runs after a login.
type Session struct {
	Username     string
	AccessToken  string
	RefreshToken string
}

// Active reports whether the session holds a refresh token that can be used
// to obtain new access tokens.
func (s *Session) Active() bool {
	return s != nil && s.RefreshToken != ""
}
