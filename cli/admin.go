package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"clinicdesk/models"
)

const adminPath = "/admin"

func newAdminCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Manage doctors and their appointment slots",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return guard(app, models.RoleAdmin, adminPath)
		},
	}

	cmd.AddCommand(newAdminDoctorsCommand(app))
	cmd.AddCommand(newAdminSlotsCommand(app))

	return cmd
}

func newAdminDoctorsCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doctors",
		Short: "Manage doctors",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List all doctors",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Admin.LoadDoctors(cmd.Context()); err != nil {
				return err
			}
			ws := app.Admin.Snapshot()
			if len(ws.Doctors) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No doctors found.")
				return nil
			}
			for _, d := range ws.Doctors {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\t%s\t%s\t%.2f\n",
					d.ID, d.Name, d.Specialization, d.City, d.ConsultationType, d.ConsultationFee)
			}
			return nil
		},
	}

	var in models.DoctorInput
	var rating float64
	create := &cobra.Command{
		Use:   "create",
		Short: "Create a doctor",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("rating") {
				in.Rating = &rating
			}
			if err := app.Admin.CreateDoctor(cmd.Context(), in); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Doctor created successfully")
			return nil
		},
	}
	create.Flags().StringVar(&in.Name, "name", "", "doctor name")
	create.Flags().StringVar(&in.Specialization, "specialization", "", "specialization")
	create.Flags().StringVar(&in.City, "city", "", "city")
	create.Flags().StringVar(&in.ConsultationType, "type", models.ConsultationInPerson, "consultation type (IN_PERSON|ONLINE)")
	create.Flags().Float64Var(&in.ConsultationFee, "fee", 0, "consultation fee")
	create.Flags().Float64Var(&rating, "rating", 0, "rating (optional)")

	var yes bool
	del := &cobra.Command{
		Use:   "delete <doctor-id>",
		Short: "Delete a doctor and everything scoped under it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if !yes {
				fmt.Fprint(cmd.OutOrStdout(), "Delete this doctor and all their slots/bookings? [y/N] ")
				var answer string
				fmt.Fscanln(cmd.InOrStdin(), &answer)
				yes = answer == "y" || answer == "Y"
			}
			if err := app.Admin.LoadDoctors(cmd.Context()); err != nil {
				return err
			}
			if err := app.Admin.DeleteDoctor(cmd.Context(), id, yes); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Doctor deleted")
			return nil
		},
	}
	del.Flags().BoolVar(&yes, "yes", false, "skip the confirmation prompt")

	cmd.AddCommand(list, create, del)
	return cmd
}

func newAdminSlotsCommand(app *App) *cobra.Command {
	var doctorID int64

	cmd := &cobra.Command{
		Use:   "slots",
		Short: "Manage slots of a selected doctor",
	}
	cmd.PersistentFlags().Int64Var(&doctorID, "doctor", 0, "doctor to select")
	_ = cmd.MarkPersistentFlagRequired("doctor")

	// selectDoctor brings the working set to the requested selection:
	// load the list, then select.
	selectDoctor := func(cmd *cobra.Command) error {
		if err := app.Admin.LoadDoctors(cmd.Context()); err != nil {
			return err
		}
		return app.Admin.SelectDoctor(cmd.Context(), doctorID)
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List slots for a doctor",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := selectDoctor(cmd); err != nil {
				return err
			}
			ws := app.Admin.Snapshot()
			if len(ws.Slots) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No slots for this doctor.")
				return nil
			}
			for _, s := range ws.Slots {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s - %s\t[%s]\n",
					s.ID,
					s.StartTime.Local().Format("2006-01-02 15:04"),
					s.EndTime.Local().Format("15:04"),
					s.Status,
				)
			}
			return nil
		},
	}

	var startStr, endStr string
	create := &cobra.Command{
		Use:   "create",
		Short: "Create a slot for a doctor",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := selectDoctor(cmd); err != nil {
				return err
			}
			start, err := parseLocalTime(startStr)
			if err != nil {
				return err
			}
			end, err := parseLocalTime(endStr)
			if err != nil {
				return err
			}
			if err := app.Admin.CreateSlot(cmd.Context(), start, end); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Slot created successfully")
			return nil
		},
	}
	create.Flags().StringVar(&startStr, "start", "", "start time (2006-01-02T15:04)")
	create.Flags().StringVar(&endStr, "end", "", "end time (2006-01-02T15:04)")
	_ = create.MarkFlagRequired("start")
	_ = create.MarkFlagRequired("end")

	del := &cobra.Command{
		Use:   "delete <slot-id>",
		Short: "Delete a slot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			slotID, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := selectDoctor(cmd); err != nil {
				return err
			}
			if err := app.Admin.DeleteSlot(cmd.Context(), slotID); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Slot deleted")
			return nil
		},
	}

	cmd.AddCommand(list, create, del)
	return cmd
}

func parseID(raw string) (int64, error) {
	var id int64
	if _, err := fmt.Sscanf(raw, "%d", &id); err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return id, nil
}

// parseLocalTime accepts the datetime-local style input the admin form
// uses and interprets it in the local timezone.
func parseLocalTime(raw string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02T15:04", "2006-01-02T15:04:05", time.RFC3339} {
		if t, err := time.ParseInLocation(layout, raw, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid time %q, want 2006-01-02T15:04", raw)
}
