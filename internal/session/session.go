// Package session manages the single stored credential and login flag of a
// browser scope.
package session

import (
	"context"                    // Context for store calls
	"errors"                     // Sentinel errors
	"fmt"                        // Error wrapping
	"storefront/internal/domain" // Credential model
	"storefront/internal/store"  // Persisted store
	"time"                       // Redirect delay
)

// ErrInvalidCredentials is returned by Login when the pair does not match the stored credential
var ErrInvalidCredentials = errors.New("invalid email or password")

// Messages shown above the signup and login forms
const (
	MsgSignupSuccess      = "Signup successful! Redirecting to homepage..."
	MsgLoginSuccess       = "Login successful! Redirecting to homepage..."
	MsgInvalidCredentials = "Invalid email or password"
)

// DefaultRedirectDelay is how long the success message stays before navigating home
const DefaultRedirectDelay = 2 * time.Second

// Outcome describes what the page shows after a successful signup or login
type Outcome struct {
	Message    string        // Success message rendered above the form
	RedirectTo View          // View to navigate to
	Delay      time.Duration // Delay before navigating
}

// Manager reads and writes the session keys of one store
type Manager struct {
	st    store.Store
	delay time.Duration
}

// Option configures a Manager
type Option func(*Manager)

// WithRedirectDelay overrides DefaultRedirectDelay
func WithRedirectDelay(d time.Duration) Option {
	return func(m *Manager) { m.delay = d }
}

// NewManager binds a Manager to st
func NewManager(st store.Store, opts ...Option) *Manager {
	m := &Manager{st: st, delay: DefaultRedirectDelay}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Signup overwrites the stored credential and sets the session flag.
// There is no validation and no duplicate detection: the last signup wins.
func (m *Manager) Signup(ctx context.Context, email, password string) (Outcome, error) {
	if err := m.st.Set(ctx, store.KeyEmail, email); err != nil {
		return Outcome{}, fmt.Errorf("store email: %w", err)
	}
	if err := m.st.Set(ctx, store.KeyPassword, password); err != nil {
		return Outcome{}, fmt.Errorf("store password: %w", err)
	}
	if err := m.setLoggedIn(ctx); err != nil {
		return Outcome{}, err
	}
	return m.outcome(MsgSignupSuccess), nil
}

// Login sets the session flag iff email and password equal the stored credential.
// Without a stored credential every attempt fails.
func (m *Manager) Login(ctx context.Context, email, password string) (Outcome, error) {
	_, registered, err := m.st.Get(ctx, store.KeyEmail)
	if err != nil {
		return Outcome{}, fmt.Errorf("read email: %w", err)
	}
	cred, err := m.Credential(ctx)
	if err != nil {
		return Outcome{}, err
	}
	if !registered || !cred.Matches(email, password) {
		return Outcome{}, ErrInvalidCredentials
	}
	if err := m.setLoggedIn(ctx); err != nil {
		return Outcome{}, err
	}
	return m.outcome(MsgLoginSuccess), nil
}

// Logout clears the credential, the session flag and the cart
func (m *Manager) Logout(ctx context.Context) error {
	for _, key := range []string{store.KeyEmail, store.KeyPassword, store.KeyIsLoggedIn, store.KeyCart} {
		if err := m.st.Remove(ctx, key); err != nil {
			return fmt.Errorf("remove %s: %w", key, err)
		}
	}
	return nil
}

// LoggedIn reports whether the session flag is set
func (m *Manager) LoggedIn(ctx context.Context) (bool, error) {
	v, _, err := m.st.Get(ctx, store.KeyIsLoggedIn)
	if err != nil {
		return false, fmt.Errorf("read session flag: %w", err)
	}
	return v == "true", nil
}

// Credential returns the stored credential; missing keys read as empty strings
func (m *Manager) Credential(ctx context.Context) (domain.Credential, error) {
	email, _, err := m.st.Get(ctx, store.KeyEmail)
	if err != nil {
		return domain.Credential{}, fmt.Errorf("read email: %w", err)
	}
	password, _, err := m.st.Get(ctx, store.KeyPassword)
	if err != nil {
		return domain.Credential{}, fmt.Errorf("read password: %w", err)
	}
	return domain.Credential{Email: email, Password: password}, nil
}

func (m *Manager) setLoggedIn(ctx context.Context) error {
	if err := m.st.Set(ctx, store.KeyIsLoggedIn, "true"); err != nil {
		return fmt.Errorf("set session flag: %w", err)
	}
	return nil
}

func (m *Manager) outcome(msg string) Outcome {
	return Outcome{Message: msg, RedirectTo: ViewHome, Delay: m.delay}
}
