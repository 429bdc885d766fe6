package cli

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/smaamdev/esekolah/internal/cli/formatter"
	"github.com/smaamdev/esekolah/internal/domain"
)

func newAICmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ai",
		Short: "Pembantu AI: ulasan pelajar, RPH dan Cikgu AI",
	}
	cmd.AddCommand(
		newAIPelajarCmd(app),
		newAILaporanCmd(app),
		newAIRPHCmd(app),
		newAIChatCmd(app),
	)
	return cmd
}

func requireAssistant(app *App) error {
	if app.Assistant == nil {
		return fmt.Errorf("ciri AI dimatikan: tetapkan ESEKOLAH_AI_API_KEY dahulu")
	}
	return nil
}

func newAIPelajarCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pelajar",
		Short: "Data pelajar untuk laporan",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "Senarai pelajar",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := make([][]string, 0)
			for _, s := range domain.SeedStudents() {
				rows = append(rows, []string{
					s.ID, s.Name, s.Grade,
					strconv.Itoa(s.Attendance) + "%",
					strconv.Itoa(s.AverageScore),
					strconv.Itoa(s.BehaviorScore),
				})
			}
			fmt.Print(formatter.RenderTable([]string{"ID", "NAMA", "DARJAH", "KEHADIRAN", "PURATA", "SAHSIAH"}, rows))
			return nil
		},
	})
	return cmd
}

func newAILaporanCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "laporan <id-pelajar>",
		Short: "Jana ulasan guru besar untuk pelajar",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAssistant(app); err != nil {
				return err
			}

			var student *domain.Student
			for _, s := range domain.SeedStudents() {
				if s.ID == args[0] {
					student = &s
					break
				}
			}
			if student == nil {
				return fmt.Errorf("pelajar tidak dijumpai: %q", args[0])
			}

			var stop func()
			if app.interactive() {
				stop = formatter.StartSpinner("Menjana ulasan...")
			}
			text := app.Assistant.StudentReport(cmd.Context(), *student)
			if stop != nil {
				stop()
			}

			fmt.Println(formatter.Header("Ulasan untuk " + student.Name))
			fmt.Println(text)
			return nil
		},
	}
}

func newAIRPHCmd(app *App) *cobra.Command {
	var subject, topic, duration string
	cmd := &cobra.Command{
		Use:   "rph",
		Short: "Jana draf Rancangan Pengajaran Harian",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAssistant(app); err != nil {
				return err
			}
			if subject == "" || topic == "" {
				return fmt.Errorf("--subjek dan --topik diperlukan")
			}
			if duration == "" {
				duration = "60 minit"
			}

			var stop func()
			if app.interactive() {
				stop = formatter.StartSpinner("Menjana RPH...")
			}
			text := app.Assistant.LessonPlan(cmd.Context(), subject, topic, duration)
			if stop != nil {
				stop()
			}

			fmt.Println(formatter.Header("RPH: " + subject + " — " + topic))
			fmt.Println(text)
			return nil
		},
	}
	cmd.Flags().StringVar(&subject, "subjek", "", "mata pelajaran")
	cmd.Flags().StringVar(&topic, "topik", "", "tajuk pelajaran")
	cmd.Flags().StringVar(&duration, "masa", "", "tempoh, cth 60 minit")
	return cmd
}

func newAIChatCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "chat [mesej]",
		Short: "Sembang dengan Cikgu AI",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAssistant(app); err != nil {
				return err
			}

			if len(args) > 0 {
				question := strings.Join(args, " ")
				var stop func()
				if app.interactive() {
					stop = formatter.StartSpinner("Cikgu AI sedang berfikir...")
				}
				answer := app.Assistant.Chat(cmd.Context(), question)
				if stop != nil {
					stop()
				}
				fmt.Println(formatter.StylePurple.Render("Cikgu AI: ") + answer)
				return nil
			}

			if !app.interactive() {
				return fmt.Errorf("berikan mesej sebagai argumen, atau jalankan dalam terminal interaktif")
			}
			_, err := tea.NewProgram(newChatView(app)).Run()
			return err
		},
	}
}
