package auth

import (
	"context"
	"errors"
	"net/url"

	"github.com/diewo77/invoice-dashboard/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// ProviderCredentials is the fixed id of the credentials provider.
const ProviderCredentials = "credentials"

// Kind categorizes sign-in failures so callers can decide which ones to
// translate for users and which ones to propagate.
type Kind string

const (
	KindCredentialsSignin Kind = "CredentialsSignin"
	KindUnknownProvider   Kind = "UnknownProvider"
	KindMissingFields     Kind = "MissingFields"
)

// Error is a categorized sign-in failure. Anything that is not an *Error
// coming out of SignIn is an infrastructure problem, not this layer's.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return string(e.Kind) + ": " + e.Err.Error()
	}
	return string(e.Kind)
}

func (e *Error) Unwrap() error { return e.Err }

// Provider verifies a credential submission and returns the matched user.
type Provider interface {
	SignIn(ctx context.Context, email, password string) (*models.User, error)
}

// Service dispatches sign-in requests to a named provider.
type Service struct {
	providers map[string]Provider
}

func NewService() *Service { return &Service{providers: make(map[string]Provider)} }

func (s *Service) Register(name string, p Provider) { s.providers[name] = p }

// SignIn routes the submitted form to the named provider.
func (s *Service) SignIn(ctx context.Context, provider string, data url.Values) (*models.User, error) {
	p, ok := s.providers[provider]
	if !ok {
		return nil, &Error{Kind: KindUnknownProvider, Err: errors.New("no provider registered as " + provider)}
	}
	email := data.Get("email")
	password := data.Get("password")
	if email == "" || password == "" {
		return nil, &Error{Kind: KindMissingFields, Err: errors.New("email and password required")}
	}
	return p.SignIn(ctx, email, password)
}

// CredentialsProvider checks an email/password pair against the users table.
type CredentialsProvider struct {
	DB *gorm.DB
}

func NewCredentialsProvider(db *gorm.DB) *CredentialsProvider { return &CredentialsProvider{DB: db} }

func (p *CredentialsProvider) SignIn(ctx context.Context, email, password string) (*models.User, error) {
	var user models.User
	if err := p.DB.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &Error{Kind: KindCredentialsSignin, Err: errors.New("unknown email")}
		}
		// Database trouble is not a credential failure; surface it as-is.
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, &Error{Kind: KindCredentialsSignin, Err: errors.New("password mismatch")}
	}
	return &user, nil
}
