package cli

import (
	"github.com/google/uuid"

	"github.com/pawplan/pawplan/internal/custody/application/commands"
	"github.com/pawplan/pawplan/internal/custody/application/queries"
	"github.com/pawplan/pawplan/internal/custody/domain"
)

// App holds the CLI application dependencies.
type App struct {
	// Command Handlers
	GenerateScheduleHandler    *commands.GenerateScheduleHandler
	ApplyUnavailabilityHandler *commands.ApplyUnavailabilityHandler
	RevertDateHandler          *commands.RevertDateHandler

	// Query Handlers
	GetScheduleHandler      *queries.GetScheduleHandler
	GetPeriodsHandler       *queries.GetPeriodsHandler
	ValidateScheduleHandler *queries.ValidateScheduleHandler

	// Configured parties
	PartyA     uuid.UUID
	PartyB     uuid.UUID
	PartyNames domain.PartyNames

	// Configured rotation geometry, the fallback when flags leave it unset.
	RotationDays       int
	MaxConsecutiveDays int
}

var app *App

// SetApp sets the CLI application dependencies.
func SetApp(a *App) {
	app = a
}

// GetApp returns the CLI application dependencies.
func GetApp() *App {
	return app
}
