// Package cli is the terminal rendering of the client's views: login,
// the patient home, the doctor directory and the admin dashboard. All
// state and policy lives in the services; commands only collect input
// and print.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"clinicdesk/models"
	"clinicdesk/services/access"
	"clinicdesk/services/admin"
	"clinicdesk/services/patient"
	"clinicdesk/services/session"
)

// App bundles the service objects every command consumes. Consumers
// declare the capability they need instead of reaching into globals.
type App struct {
	Session session.SessionService
	Patient patient.PatientService
	Admin   admin.AdminService
}

// NewRootCommand creates the clinicdesk root command.
func NewRootCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "clinicdesk",
		Short:         "Terminal client for the clinic appointment system",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(newLoginCommand(app))
	cmd.AddCommand(newLogoutCommand(app))
	cmd.AddCommand(newWhoamiCommand(app))
	cmd.AddCommand(newHomeCommand(app))
	cmd.AddCommand(newDoctorsCommand(app))
	cmd.AddCommand(newAdminCommand(app))

	return cmd
}

// guard runs the access decision for a view and renders denial the way
// the pages do: unauthenticated goes to login (with the original path
// preserved), a role mismatch is a static denial.
func guard(app *App, required models.Role, path string) error {
	decision := access.Decide(app.Session.Current(), required, path)
	if decision.Allow {
		return nil
	}
	if decision.RedirectTo != "" {
		return fmt.Errorf("%s: run `clinicdesk login` first (wanted %s)", decision.Reason, decision.FromPath)
	}
	return fmt.Errorf("%s", decision.Reason)
}
