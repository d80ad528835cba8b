package cli

import (
	"context"
	"fmt"

	"taskboard/internal/client/api"
	"taskboard/internal/client/session"
)

func (a *App) Register(ctx context.Context) {
	username, err := promptLine(a.scanner, "Enter username")
	if err != nil {
		printlnFn(fmt.Sprintf("error: %v", err))
		return
	}
	email, err := promptLine(a.scanner, "Enter email")
	if err != nil {
		printlnFn(fmt.Sprintf("error: %v", err))
		return
	}
	password, err := promptPassword("Enter password")
	if err != nil {
		printlnFn(fmt.Sprintf("error: %v", err))
		return
	}

	payload, err := a.api.Register(ctx, username, email, password)
	if err != nil {
		printlnFn(fmt.Sprintf("Registration failed: %v", err))
		return
	}

	a.startSession(payload)
	printlnFn(fmt.Sprintf("Registered as %s", a.session.User.Username))
}

func (a *App) Login(ctx context.Context) {
	username, err := promptLine(a.scanner, "Enter username")
	if err != nil {
		printlnFn(fmt.Sprintf("error: %v", err))
		return
	}
	password, err := promptPassword("Enter password")
	if err != nil {
		printlnFn(fmt.Sprintf("error: %v", err))
		return
	}

	payload, err := a.api.Login(ctx, username, password)
	if err != nil {
		printlnFn(fmt.Sprintf("Login failed: %v", err))
		return
	}

	a.startSession(payload)
	printlnFn(fmt.Sprintf("Logged in as %s", a.session.User.Username))
}

func (a *App) startSession(payload *api.AuthPayload) {
	a.session = session.Session{
		Token: payload.Token,
		User:  payload.User,
	}

	err := a.store.Save(a.session)
	if err != nil {
		printlnFn(fmt.Sprintf("Failed to persist session: %v", err))
	}
}

func (a *App) Logout(context.Context) {
	err := a.store.Clear()
	if err != nil {
		printlnFn(fmt.Sprintf("Failed to clear session: %v", err))
	}

	a.session = session.Session{}
	a.tasks = nil
	a.current = nil
	a.subTasks = nil
	printlnFn("Logged out")
}
