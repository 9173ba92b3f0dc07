package cli

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/dmitrijs2005/stockdesk/internal/client/models"
	"github.com/dmitrijs2005/stockdesk/internal/client/router"
)

// Login prompts for credentials on the login page and, on success, opens
// the dashboard. A signed-in user is redirected without being asked.
func (a *App) Login(ctx context.Context) error {
	if !a.enter(ctx, router.PathLogin) {
		return nil
	}

	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out, "Password")
	if err != nil {
		return err
	}

	if _, err := a.auth.Login(ctx, models.LoginRequest{Email: email, Password: password}); err != nil {
		return a.fail(err)
	}

	fmt.Fprintf(a.out, "Welcome, %s!\n", a.session.DisplayName())
	return a.Dashboard(ctx)
}

// SignUp collects the registration form. The password is asked twice.
func (a *App) SignUp(ctx context.Context) error {
	if !a.enter(ctx, router.PathSignUp) {
		return nil
	}

	name, err := getSimpleText(a.reader, "Full name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out, "Password (letters and digits, at least 6)")
	if err != nil {
		return err
	}
	confirm, err := getPassword(a.out, "Repeat password")
	if err != nil {
		return err
	}

	_, err = a.auth.Register(ctx, models.RegisterRequest{
		Name:            name,
		Email:           email,
		Password:        password,
		ConfirmPassword: confirm,
	})
	if err != nil {
		return a.fail(err)
	}

	fmt.Fprintf(a.out, "Account created. Welcome, %s!\n", a.session.DisplayName())
	return a.Dashboard(ctx)
}

func (a *App) ForgotPassword(ctx context.Context) error {
	if !a.enter(ctx, router.PathForgotPassword) {
		return nil
	}

	email, err := getSimpleText(a.reader, "Email of your account", a.out)
	if err != nil {
		return err
	}

	msg, err := a.auth.ForgotPassword(ctx, models.ForgotPasswordRequest{Email: email})
	if err != nil {
		return a.fail(err)
	}
	if msg == "" {
		msg = "If the email is registered you will receive reset instructions."
	}
	fmt.Fprintln(a.out, msg)
	return nil
}

// ResetPassword opens the reset page. link may be the full link from the
// reset email, a /reset-password?token=... path, a bare token or empty.
func (a *App) ResetPassword(ctx context.Context, link string) error {
	loc, err := a.open(ctx, resetTarget(link))
	if err != nil {
		return a.fail(err)
	}
	if loc.Path != router.PathResetPassword {
		return nil
	}
	return a.resetPasswordAt(ctx, loc)
}

func resetTarget(link string) string {
	link = strings.TrimSpace(link)
	switch {
	case link == "":
		return router.PathResetPassword
	case strings.HasPrefix(link, "/"):
		return link
	case strings.Contains(link, "://"):
		if u, err := url.Parse(link); err == nil {
			return (&url.URL{Path: u.Path, RawQuery: u.RawQuery}).String()
		}
	}
	return router.PathResetPassword + "?" + url.Values{"token": {link}}.Encode()
}

func (a *App) resetPasswordAt(ctx context.Context, loc router.Location) error {
	a.title(router.PathResetPassword)

	token := loc.Param("token")
	if token == "" {
		var err error
		if token, err = getSimpleText(a.reader, "Reset token", a.out); err != nil {
			return err
		}
	}

	password, err := getPassword(a.out, "New password")
	if err != nil {
		return err
	}
	confirm, err := getPassword(a.out, "Repeat new password")
	if err != nil {
		return err
	}

	msg, err := a.auth.ResetPassword(ctx, models.ResetPasswordRequest{
		Token:           token,
		NewPassword:     password,
		ConfirmPassword: confirm,
	})
	if err != nil {
		return a.fail(err)
	}
	if msg == "" {
		msg = "Password updated."
	}
	fmt.Fprintln(a.out, msg, "You can sign in now.")

	_, err = a.open(ctx, router.PathLogin)
	return err
}

// ChangePassword is part of the settings page and needs a valid session.
func (a *App) ChangePassword(ctx context.Context) error {
	if !a.enter(ctx, router.PathSettings) {
		return nil
	}

	current, err := getPassword(a.out, "Current password")
	if err != nil {
		return err
	}
	password, err := getPassword(a.out, "New password")
	if err != nil {
		return err
	}
	confirm, err := getPassword(a.out, "Repeat new password")
	if err != nil {
		return err
	}

	msg, err := a.auth.ChangePassword(ctx, models.ChangePasswordRequest{
		CurrentPassword: current,
		NewPassword:     password,
		ConfirmPassword: confirm,
	})
	if err != nil {
		return a.fail(err)
	}
	if msg == "" {
		msg = "Password changed."
	}
	fmt.Fprintln(a.out, msg)
	return nil
}

// Logout ends the session; the router follows it back to the login page.
func (a *App) Logout(ctx context.Context) error {
	a.auth.Logout(ctx)
	a.queries = make(map[string]models.ListQuery)
	a.pages = make(map[string]models.Pagination)
	fmt.Fprintln(a.out, "Signed out.")
	return nil
}

// Go navigates to target and shows the page that was reached.
func (a *App) Go(ctx context.Context, target string) error {
	loc, err := a.open(ctx, target)
	if err != nil {
		return a.fail(err)
	}

	switch loc.Path {
	case router.PathDashboard:
		return a.showDashboard(ctx)
	case router.PathInventory:
		return a.showInventory(ctx, a.queries[loc.Path])
	case router.PathSettings:
		return a.showSettings(ctx)
	case router.PathResetPassword:
		return a.resetPasswordAt(ctx, loc)
	case router.PathLogin, router.PathSignUp, router.PathForgotPassword:
		a.title(loc.Path)
		printlnFn(guestHelp)
		return nil
	}
	return a.showListing(ctx, loc.Path, a.queries[loc.Path])
}

// enter navigates to path and reports whether the page was reached. The
// page title is printed when it was.
func (a *App) enter(ctx context.Context, path string) bool {
	loc, err := a.open(ctx, path)
	if err != nil {
		_ = a.fail(err)
		return false
	}
	if loc.Path != path {
		return false
	}
	a.title(path)
	return true
}
