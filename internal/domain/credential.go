package domain

// Credential Model
type Credential struct {
	Email    string // Email entered on signup
	Password string // Password, stored as entered
}

// Matches reports whether the supplied pair equals the stored credential exactly
func (c Credential) Matches(email, password string) bool {
	return c.Email == email && c.Password == password // No normalisation, exact comparison
}
