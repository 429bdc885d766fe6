package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/smaamdev/esekolah/internal/cli/formatter"
)

// dashboardView is the landing screen: identity, school profile summary,
// module permissions, collection counts and the transient toast line.
// Cloud sync runs off the update loop as a tea.Cmd.
type dashboardView struct {
	app      *App
	spin     spinner.Model
	syncing  bool
	quitting bool
}

type syncDoneMsg struct {
	err error
}

type toastTickMsg struct{}

func newDashboardView(app *App) *dashboardView {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = formatter.StyleBlue
	return &dashboardView{app: app, spin: sp}
}

func toastTick() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(time.Time) tea.Msg {
		return toastTickMsg{}
	})
}

func (v *dashboardView) Init() tea.Cmd {
	return toastTick()
}

func (v *dashboardView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			v.quitting = true
			return v, tea.Quit
		case "s":
			if v.syncing {
				return v, nil
			}
			v.syncing = true
			return v, tea.Batch(v.spin.Tick, v.sync(v.app.Cloud.Push))
		case "m":
			if v.syncing {
				return v, nil
			}
			v.syncing = true
			return v, tea.Batch(v.spin.Tick, v.sync(v.app.Cloud.Pull))
		case "r":
			// State is read on every render; nothing to do beyond a repaint.
			return v, nil
		}

	case syncDoneMsg:
		// Success and failure both end up in the toast; the error itself is
		// not shown separately on the dashboard.
		v.syncing = false
		return v, nil

	case toastTickMsg:
		return v, toastTick()

	case spinner.TickMsg:
		if !v.syncing {
			return v, nil
		}
		var cmd tea.Cmd
		v.spin, cmd = v.spin.Update(msg)
		return v, cmd
	}

	return v, nil
}

func (v *dashboardView) View() string {
	if v.quitting {
		return ""
	}

	st := v.app.State
	cfg := st.SiteConfig()
	profile := st.SchoolProfile()

	var b strings.Builder
	b.WriteString(formatter.Header(cfg.SystemTitle))
	b.WriteString("\n")
	b.WriteString(formatter.Dim(cfg.SchoolName))
	b.WriteString("\n\n")
	b.WriteString(cfg.WelcomeMessage)
	b.WriteString("\n\n")

	b.WriteString(formatter.StyleBold.Render("Sesi"))
	b.WriteString("\n")
	b.WriteString("  " + formatter.RenderIdentity(st.Identity()))
	b.WriteString("\n")
	b.WriteString("  " + formatter.Dim(profile.PrincipalTitle+": ") + profile.PrincipalName)
	b.WriteString("\n\n")

	b.WriteString(formatter.StyleBold.Render("Data"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s %d   %s %d   %s %d\n",
		formatter.Dim("Pengumuman"), len(st.Announcements()),
		formatter.Dim("Program"), len(st.Programs()),
		formatter.Dim("Guru"), len(st.Teachers()),
	))
	b.WriteString("  " + formatter.Dim(fmt.Sprintf("Generasi segerak: %d", st.Generation())))
	b.WriteString("\n\n")

	b.WriteString(formatter.StyleBold.Render("Modul"))
	b.WriteString("\n")
	b.WriteString(indent(formatter.RenderPermissions(st.Permissions()), "  "))
	b.WriteString("\n")

	if v.syncing {
		b.WriteString(v.spin.View() + formatter.Dim(" Menyegerak dengan Cloud..."))
		b.WriteString("\n")
	} else if toast, ok := st.Notifier().Current(); ok {
		b.WriteString(formatter.RenderToast(toast))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(formatter.Dim("s simpan ke Cloud · m muat turun · r segar semula · q keluar"))
	return b.String()
}

func (v *dashboardView) sync(fn func(context.Context) error) tea.Cmd {
	return func() tea.Msg {
		return syncDoneMsg{err: fn(context.Background())}
	}
}

func indent(s, prefix string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for i, l := range lines {
		lines[i] = prefix + l
	}
	return strings.Join(lines, "\n") + "\n"
}
