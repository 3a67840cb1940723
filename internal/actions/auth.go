package actions

import (
	"context"
	"errors"
	"net/url"

	"github.com/diewo77/invoice-dashboard/internal/auth"
	"github.com/diewo77/invoice-dashboard/internal/models"
)

// Sign-in failure copy.
const (
	msgInvalidCredentials = "Invalid credentials."
	msgSignInWentWrong    = "Something went wrong."
)

// Authenticate wraps the credentials sign-in flow. On success it returns
// the signed-in user. Categorized sign-in failures come back as a
// user-facing message; anything uncategorized is not this layer's
// responsibility and is returned unchanged as an error. prev is the
// previous message state and is not consulted.
func (a *Actions) Authenticate(ctx context.Context, prev string, data url.Values) (*models.User, string, error) {
	user, err := a.SignIn(ctx, auth.ProviderCredentials, data)
	if err == nil {
		return user, "", nil
	}
	var ae *auth.Error
	if !errors.As(err, &ae) {
		return nil, "", err
	}
	if ae.Kind == auth.KindCredentialsSignin {
		return nil, msgInvalidCredentials, nil
	}
	return nil, msgSignInWentWrong + " " + ae.Error(), nil
}
