package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smaamdev/esekolah/internal/cli/formatter"
	"github.com/smaamdev/esekolah/internal/domain"
)

func newGuruCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "guru",
		Short: "Urus direktori guru",
	}
	cmd.AddCommand(
		newGuruListCmd(app),
		newGuruAddCmd(app),
		newGuruEditCmd(app),
		newGuruRemoveCmd(app),
	)
	return cmd
}

func newGuruListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Senarai guru",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			teachers := app.State.Teachers()
			rows := make([][]string, 0, len(teachers))
			for _, t := range teachers {
				rows = append(rows, []string{t.ID, t.Name, t.Subject, t.Classes.String()})
			}
			fmt.Print(formatter.RenderTable([]string{"ID", "NAMA", "SUBJEK", "KELAS"}, rows))
			return nil
		},
	}
}

func newGuruAddCmd(app *App) *cobra.Command {
	var id, name, subject, classes string
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Tambah guru baharu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireLogin(app); err != nil {
				return err
			}

			t := domain.Teacher{
				ID:      id,
				Name:    name,
				Subject: subject,
				Classes: domain.SplitClasses(classes),
			}
			if t.Name == "" && app.interactive() {
				if err := runTeacherForm(&t); err != nil {
					return err
				}
			}
			if t.ID == "" {
				t.ID = domain.NewTeacherID()
			}
			if err := domain.Validate(t); err != nil {
				return err
			}
			return app.State.AddTeacher(t)
		},
	}
	cmd.Flags().StringVar(&id, "id", "", "kod guru, cth T004 (dijana jika kosong)")
	cmd.Flags().StringVar(&name, "nama", "", "nama guru")
	cmd.Flags().StringVar(&subject, "subjek", "", "subjek diajar")
	cmd.Flags().StringVar(&classes, "kelas", "", "kelas dipisah koma")
	return cmd
}

func newGuruEditCmd(app *App) *cobra.Command {
	var name, subject, classes string
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Kemaskini maklumat guru",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireLogin(app); err != nil {
				return err
			}

			var current *domain.Teacher
			for _, t := range app.State.Teachers() {
				if t.ID == args[0] {
					current = &t
					break
				}
			}
			if current == nil {
				return fmt.Errorf("guru tidak dijumpai: %q", args[0])
			}

			if name == "" && subject == "" && classes == "" && app.interactive() {
				if err := runTeacherForm(current); err != nil {
					return err
				}
			} else {
				if name != "" {
					current.Name = name
				}
				if subject != "" {
					current.Subject = subject
				}
				if classes != "" {
					current.Classes = domain.SplitClasses(classes)
				}
			}
			if err := domain.Validate(*current); err != nil {
				return err
			}
			return app.State.UpdateTeacher(*current)
		},
	}
	cmd.Flags().StringVar(&name, "nama", "", "nama guru")
	cmd.Flags().StringVar(&subject, "subjek", "", "subjek diajar")
	cmd.Flags().StringVar(&classes, "kelas", "", "kelas dipisah koma")
	return cmd
}

func newGuruRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Padam rekod guru",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireLogin(app); err != nil {
				return err
			}
			return app.State.DeleteTeacher(args[0])
		},
	}
}
