package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/contactvault/internal/common"
)

// Register creates an account interactively. The password bytes are wiped
// as soon as the request completes.
func (a *App) Register(ctx context.Context) error {

	username, err := GetSimpleText(a.reader, "Enter user name", a.out)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	password, err := GetPassword(a.out)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}
	defer common.WipeByteArray(password)

	name, err := GetSimpleText(a.reader, "Enter display name", a.out)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	user, err := a.api.Register(ctx, username, string(password), name)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	fmt.Fprintf(a.out, "Registered %s. You can now log in.\n", user.Username)
	return nil
}

func (a *App) Login(ctx context.Context) error {

	username, err := GetSimpleText(a.reader, "Enter user name", a.out)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	password, err := GetPassword(a.out)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}
	defer common.WipeByteArray(password)

	user, err := a.api.Login(ctx, username, string(password))
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	a.user = user
	fmt.Fprintf(a.out, "Logged in as %s\n", user.Username)
	return nil
}

// Whoami fetches the profile from the server rather than showing the cached
// copy, so a profile edit from another session is visible.
func (a *App) Whoami(ctx context.Context) error {

	user, err := a.api.CurrentUser(ctx)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	fmt.Fprintf(a.out, "Username: %s\nName:     %s\n", user.Username, user.Name)
	return nil
}

func (a *App) UpdateProfile(ctx context.Context) error {

	name, err := GetSimpleText(a.reader, "Enter new display name", a.out)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	user, err := a.api.UpdateProfile(ctx, name)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	a.user = user
	fmt.Fprintln(a.out, "Profile updated.")
	return nil
}

// Logout drops the session locally even if the server call fails; a dead
// token is useless to keep around.
func (a *App) Logout(ctx context.Context) error {

	err := a.api.Logout(ctx)
	a.user = nil
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	fmt.Fprintln(a.out, "Logged out.")
	return nil
}
