package entities

// User is the authenticated caller, as carried by the session token.
type User struct {
	ID       string
	Username string
}

// DisplayName falls back to the ID when the token carries no name.
func (u User) DisplayName() string {
	if u.Username != "" {
		return u.Username
	}
	return u.ID
}
