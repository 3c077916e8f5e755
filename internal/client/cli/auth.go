package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/filehost/internal/client/models"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

var errNotLoggedIn = errors.New("not logged in, use signin first")

func (a *App) readCredentials() (string, string, error) {
	userName, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return "", "", err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return "", "", err
	}
	defer clear(password)

	return userName, string(password), nil
}

func (a *App) startSession(res *models.AuthResponse) {
	a.api.SetToken(res.Token)
	a.userName = res.User.Username
	printlnFn(res.Message)
}

// Signup creates an account and signs in with it.
func (a *App) Signup(ctx context.Context) error {
	userName, password, err := a.readCredentials()
	if err != nil {
		return report(err)
	}

	res, err := a.api.Signup(ctx, userName, password)
	if err != nil {
		return report(err)
	}

	a.startSession(res)
	return nil
}

func (a *App) Signin(ctx context.Context) error {
	userName, password, err := a.readCredentials()
	if err != nil {
		return report(err)
	}

	res, err := a.api.Signin(ctx, userName, password)
	if err != nil {
		return report(err)
	}

	a.startSession(res)
	return nil
}

// Logout forgets the session token.
func (a *App) Logout(ctx context.Context) error {
	a.api.SetToken("")
	a.userName = ""
	printlnFn("Logged out")
	return nil
}

// report prints err for the user and returns it unchanged.
func report(err error) error {
	printlnFn(fmt.Sprintf("Error: %v", err))
	return err
}
