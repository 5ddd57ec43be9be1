package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/pquerna/otp/totp"

	"github.com/verygoodsoftwarenotvirus/todo/internal/admin/storage"
	"github.com/verygoodsoftwarenotvirus/todo/pkg/todosdk"
	"github.com/verygoodsoftwarenotvirus/todo/pkg/types"
)

func (app *Application) runLogin(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	username := fs.String("username", "", "account username")
	password := fs.String("password", "", "account password")
	totpToken := fs.String("totp", "", "current 2FA token (generated from the cached secret when omitted)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	token := *totpToken
	if token == "" {
		generated, err := app.generateTOTPToken(ctx)
		if err != nil {
			return fmt.Errorf("no -totp given and no usable cached 2FA secret: %w", err)
		}
		token = generated
	}

	cookie, err := app.client.Login(ctx, &types.UserLoginInput{
		Username:  *username,
		Password:  *password,
		TOTPToken: token,
	})
	if err != nil {
		return err
	}

	app.saveSessionCookie(ctx, cookie)
	app.status.Refresh(ctx)

	fmt.Fprintln(app.out, app.t.Console.LoginSuccess)
	return nil
}

func (app *Application) runLogout(ctx context.Context) error {
	if err := app.client.Logout(ctx); err != nil {
		return err
	}

	app.status.Clear(ctx)
	if err := app.cache.Delete(ctx, storage.KeySessionCookie); err != nil {
		app.logger.Warn("failed to drop cached session cookie", "error", err)
	}

	fmt.Fprintln(app.out, app.t.Console.LoggedOut)
	return nil
}

func (app *Application) runRegister(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	username := fs.String("username", "", "desired username")
	password := fs.String("password", "", "desired password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	created, err := app.client.Register(ctx, &types.UserRegistrationInput{
		Username: *username,
		Password: *password,
	})
	if err != nil {
		return err
	}

	// Prove possession of the secret right away so the account is usable.
	token, err := totp.GenerateCode(created.TwoFactorSecret, time.Now())
	if err != nil {
		return fmt.Errorf("failed to generate verification token: %w", err)
	}

	if err := app.client.VerifyTOTPSecret(ctx, &types.TOTPSecretVerificationInput{
		UserID:    created.ID,
		TOTPToken: token,
	}); err != nil {
		return err
	}

	app.storeTOTPSecret(ctx, created.TwoFactorSecret)

	fmt.Fprintf(app.out, "registered user %d (%s)\n", created.ID, created.Username)
	return nil
}

func (app *Application) runStatus(ctx context.Context) error {
	status := app.status.Refresh(ctx)

	if !status.IsAuthenticated {
		fmt.Fprintln(app.out, app.t.Console.NotAuthenticated)
		return nil
	}

	fmt.Fprintf(app.out, "reputation: %s\n", status.UserReputation)
	if status.UserReputationExplanation != "" {
		fmt.Fprintf(app.out, "reputation explanation: %s\n", status.UserReputationExplanation)
	}
	fmt.Fprintf(app.out, "active account: %d\n", status.ActiveAccount)
	fmt.Fprintf(app.out, "service admin: %t\n", status.IsServiceAdmin())
	fmt.Fprintf(app.out, "%s: %t\n", app.t.Console.AdminMode, app.adminMode.Get())

	if token := app.client.BearerToken(); token != "" {
		app.printBearerTokenExpiry(token)
	}

	return nil
}

func (app *Application) runAdminMode(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintf(app.out, "%s: %t\n", app.t.Console.AdminMode, app.adminMode.Get())
		return nil
	}

	switch args[0] {
	case "on":
		app.adminMode.Set(true)
	case "off":
		app.adminMode.Set(false)
	default:
		return fmt.Errorf("admin: expected on or off, got %q", args[0])
	}

	fmt.Fprintf(app.out, "%s: %t\n", app.t.Console.AdminMode, app.adminMode.Get())
	return nil
}

func (app *Application) runChangePassword(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("change-password", flag.ContinueOnError)
	current := fs.String("current", "", "current password")
	next := fs.String("new", "", "new password")
	totpToken := fs.String("totp", "", "current 2FA token")
	if err := fs.Parse(args); err != nil {
		return err
	}

	token := *totpToken
	if token == "" {
		generated, err := app.generateTOTPToken(ctx)
		if err != nil {
			return fmt.Errorf("no -totp given and no usable cached 2FA secret: %w", err)
		}
		token = generated
	}

	if err := app.client.ChangePassword(ctx, &types.PasswordUpdateInput{
		CurrentPassword: *current,
		NewPassword:     *next,
		TOTPToken:       token,
	}); err != nil {
		return err
	}

	fmt.Fprintln(app.out, "password changed, please log in again")
	return nil
}

func (app *Application) runCycleTOTPSecret(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("cycle-totp-secret", flag.ContinueOnError)
	current := fs.String("current", "", "current password")
	totpToken := fs.String("totp", "", "current 2FA token")
	if err := fs.Parse(args); err != nil {
		return err
	}

	token := *totpToken
	if token == "" {
		generated, err := app.generateTOTPToken(ctx)
		if err != nil {
			return fmt.Errorf("no -totp given and no usable cached 2FA secret: %w", err)
		}
		token = generated
	}

	refreshed, err := app.client.CycleTOTPSecret(ctx, &types.TOTPSecretRefreshInput{
		CurrentPassword: *current,
		TOTPToken:       token,
	})
	if err != nil {
		return err
	}

	app.storeTOTPSecret(ctx, refreshed.TwoFactorSecret)

	fmt.Fprintln(app.out, "2FA secret rotated")
	return nil
}

func (app *Application) runCycleCookieSecret(ctx context.Context) error {
	if err := app.client.CycleCookieSecret(ctx); err != nil {
		return err
	}

	// Every session is now invalid, ours included.
	app.status.Clear(ctx)
	if err := app.cache.Delete(ctx, storage.KeySessionCookie); err != nil {
		app.logger.Warn("failed to drop cached session cookie", "error", err)
	}

	fmt.Fprintln(app.out, "cookie secret cycled; all sessions invalidated")
	return nil
}

// generateTOTPToken derives a fresh token from the sealed 2FA secret in the
// cache.
func (app *Application) generateTOTPToken(ctx context.Context) (string, error) {
	if app.cfg.CachePassphrase == "" {
		return "", errors.New("no cache passphrase configured")
	}

	secret, err := app.cache.GetSealed(ctx, storage.KeyTOTPSecret, app.cfg.CachePassphrase)
	if err != nil {
		return "", err
	}

	return totp.GenerateCode(string(secret), time.Now())
}

// storeTOTPSecret seals the 2FA secret into the cache when a passphrase is
// configured; otherwise the secret is only printed once.
func (app *Application) storeTOTPSecret(ctx context.Context, secret string) {
	if app.cfg.CachePassphrase == "" {
		fmt.Fprintf(app.out, "2FA secret (save it, it will not be shown again): %s\n", secret)
		return
	}

	if err := app.cache.SetSealed(ctx, storage.KeyTOTPSecret, app.cfg.CachePassphrase, []byte(secret)); err != nil {
		app.logger.Warn("failed to seal 2FA secret into cache", "error", err)
		fmt.Fprintf(app.out, "2FA secret (save it, it will not be shown again): %s\n", secret)
	}
}

func (app *Application) printBearerTokenExpiry(token string) {
	expiry, err := todosdk.BearerTokenExpiry(token)
	if err != nil {
		fmt.Fprintln(app.out, "api token: unparseable")
		return
	}

	switch {
	case expiry.IsZero():
		fmt.Fprintln(app.out, "api token: no expiry")
	case time.Now().After(expiry):
		fmt.Fprintf(app.out, "api token: expired %s\n", expiry.Format(time.RFC3339))
	default:
		fmt.Fprintf(app.out, "api token: valid until %s\n", expiry.Format(time.RFC3339))
	}
}
