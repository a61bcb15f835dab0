package domain

// Claims is the payload of an access token: whatever the caller asked to
// sign, plus the registered iat and exp fields.
type Claims map[string]any

// Email returns the email claim or "" when absent.
func (c Claims) Email() string {
	s, _ := c[FieldEmail].(string)
	return s
}
