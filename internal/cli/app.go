package cli

import (
	"github.com/smaamdev/esekolah/internal/cloud"
	"github.com/smaamdev/esekolah/internal/intelligence"
	"github.com/smaamdev/esekolah/internal/state"
	"github.com/smaamdev/esekolah/internal/store"
)

// App holds everything CLI commands need: the injected state container,
// the sync client, the storage adapter for module-owned collections and
// the optional AI assistant.
type App struct {
	State    *state.App
	Cloud    *cloud.Client
	Store    *store.Store
	Registry *store.Registry

	// Assistant is nil when the generative API is disabled.
	Assistant intelligence.AssistantService

	// IsInteractive reports whether stdin is a terminal, gating the
	// interactive edit forms.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}
