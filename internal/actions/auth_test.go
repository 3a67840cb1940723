package actions

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"

	"github.com/diewo77/invoice-dashboard/internal/auth"
	"github.com/diewo77/invoice-dashboard/internal/models"
	"golang.org/x/crypto/bcrypt"
)

func loginForm(email, password string) url.Values {
	v := url.Values{}
	v.Set("email", email)
	v.Set("password", password)
	return v
}

func TestAuthenticateInvalidCredentials(t *testing.T) {
	a := &Actions{SignIn: func(ctx context.Context, provider string, data url.Values) (*models.User, error) {
		if provider != auth.ProviderCredentials {
			t.Fatalf("provider = %q, want %q", provider, auth.ProviderCredentials)
		}
		return nil, &auth.Error{Kind: auth.KindCredentialsSignin, Err: errors.New("password mismatch")}
	}}
	user, msg, err := a.Authenticate(context.Background(), "", loginForm("a@b.c", "nope"))
	if err != nil {
		t.Fatalf("categorized failure must not be an error: %v", err)
	}
	if user != nil {
		t.Fatal("no user expected")
	}
	if msg != "Invalid credentials." {
		t.Fatalf("msg = %q, want %q", msg, "Invalid credentials.")
	}
}

func TestAuthenticateOtherAuthError(t *testing.T) {
	a := &Actions{SignIn: func(ctx context.Context, provider string, data url.Values) (*models.User, error) {
		return nil, &auth.Error{Kind: auth.KindUnknownProvider, Err: errors.New("no provider registered as saml")}
	}}
	_, msg, err := a.Authenticate(context.Background(), "", loginForm("a@b.c", "x"))
	if err != nil {
		t.Fatalf("categorized failure must not be an error: %v", err)
	}
	if !strings.HasPrefix(msg, "Something went wrong.") {
		t.Fatalf("msg = %q", msg)
	}
}

func TestAuthenticatePropagatesUncategorizedErrors(t *testing.T) {
	boom := errors.New("database is on fire")
	a := &Actions{SignIn: func(ctx context.Context, provider string, data url.Values) (*models.User, error) {
		return nil, boom
	}}
	user, msg, err := a.Authenticate(context.Background(), "", loginForm("a@b.c", "x"))
	if user != nil || msg != "" {
		t.Fatalf("unexpected user=%v msg=%q", user, msg)
	}
	if !errors.Is(err, boom) {
		t.Fatalf("error must propagate unchanged, got %v", err)
	}
}

func TestAuthenticateAgainstRealProvider(t *testing.T) {
	db := setupActionsDB(t)
	hash, _ := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.DefaultCost)
	user := models.User{Email: "user@test", Password: string(hash), Name: "U"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	svc := auth.NewService()
	svc.Register(auth.ProviderCredentials, auth.NewCredentialsProvider(db))
	a := &Actions{SignIn: svc.SignIn}

	got, msg, err := a.Authenticate(context.Background(), "", loginForm("user@test", "s3cret"))
	if err != nil || msg != "" {
		t.Fatalf("expected success, msg=%q err=%v", msg, err)
	}
	if got == nil || got.ID != user.ID {
		t.Fatalf("wrong user: %#v", got)
	}

	_, msg, err = a.Authenticate(context.Background(), "", loginForm("user@test", "wrong"))
	if err != nil || msg != "Invalid credentials." {
		t.Fatalf("wrong password: msg=%q err=%v", msg, err)
	}

	_, msg, err = a.Authenticate(context.Background(), "", loginForm("nobody@test", "s3cret"))
	if err != nil || msg != "Invalid credentials." {
		t.Fatalf("unknown email: msg=%q err=%v", msg, err)
	}
}
