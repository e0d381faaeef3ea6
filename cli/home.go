package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"clinicdesk/models"
)

func newHomeCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "home",
		Short: "Show your next upcoming appointment",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := guard(app, "", "/"); err != nil {
				return err
			}

			sess := app.Session.Current()
			if sess.User.Role != models.RolePatient {
				// The next-appointment panel only exists for patients.
				fmt.Fprintln(cmd.OutOrStdout(), "No appointment panel for this account.")
				return nil
			}

			next, err := app.Patient.NextBooking(cmd.Context(), sess)
			if err != nil {
				return err
			}
			if next == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "You don't have any upcoming appointments. Use `clinicdesk doctors` to find one.")
				return nil
			}

			when := next.Booking.AppointmentDate
			if at, err := time.Parse(time.RFC3339, when); err == nil {
				when = at.Local().Format("Mon, 02 Jan 2006 15:04")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Dr. %s - %s\n%s (%s)\nLocation: %s\n",
				next.Doctor.Name, next.Doctor.Specialization,
				when, next.Booking.Status,
				next.Doctor.City,
			)
			return nil
		},
	}
}

func newDoctorsCommand(app *App) *cobra.Command {
	var city, specialization, consultationType string

	cmd := &cobra.Command{
		Use:   "doctors",
		Short: "Browse the doctor directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			doctors, err := app.Patient.BrowseDoctors(cmd.Context(), models.DoctorFilter{
				City:             city,
				Specialization:   specialization,
				ConsultationType: consultationType,
			})
			if err != nil {
				return err
			}
			if len(doctors) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No doctors found.")
				return nil
			}
			for _, d := range doctors {
				rating := "-"
				if d.Rating != nil {
					rating = fmt.Sprintf("%.1f", *d.Rating)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\t%s\t%s\t%.2f\t%s\n",
					d.ID, d.Name, d.Specialization, d.City, d.ConsultationType, d.ConsultationFee, rating)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&city, "city", "", "filter by city")
	cmd.Flags().StringVar(&specialization, "specialization", "", "filter by specialization")
	cmd.Flags().StringVar(&consultationType, "type", "", "filter by consultation type (IN_PERSON|ONLINE)")

	return cmd
}
