// Package cli is the terminal rendition of the task manager's browser UI:
// a read-eval-print loop over the REST API with a local dashboard list and
// a per-task kanban board. List mutations update local state from the
// server response instead of reloading, and status changes are optimistic
// with a rollback snapshot.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"taskboard/internal/client/api"
	"taskboard/internal/client/config"
	"taskboard/internal/client/session"
	"taskboard/internal/models"
)

type App struct {
	api     *api.Client
	store   session.Store
	session session.Session
	scanner *bufio.Scanner

	// dashboard state
	tasks []models.Task

	// currently opened task, nil when none
	current  *models.Task
	subTasks []models.SubTask
}

func NewApp(cfg *config.Config) *App {
	app := &App{
		store:   session.NewStore(cfg.SessionFile),
		scanner: bufio.NewScanner(os.Stdin),
	}

	// The session is read once at startup; the API client consults it
	// on every request so login and logout take effect immediately.
	app.session = app.store.Load()
	app.api = api.New(cfg.ServerURL, func() string { return app.session.Token })

	return app
}

func (a *App) Run(ctx context.Context) {
	if a.isLoggedIn() {
		printlnFn(fmt.Sprintf("Welcome back, %s", a.session.User.Username))
	}
	runREPL(ctx, a, a.status, a.scanner)
}

func (a *App) isLoggedIn() bool {
	return a.session.LoggedIn()
}

func (a *App) status() string {
	if !a.isLoggedIn() {
		return "logged out"
	}
	if a.current != nil {
		return fmt.Sprintf("%s / %s", a.session.User.Username, a.current.Title)
	}
	return a.session.User.Username
}
