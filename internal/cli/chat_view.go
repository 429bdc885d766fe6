package cli

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/smaamdev/esekolah/internal/cli/formatter"
)

// chatView is the interactive Cikgu AI conversation. Each question runs as
// a tea.Cmd so the spinner keeps animating while the API call is in flight.
type chatView struct {
	app      *App
	input    textinput.Model
	spin     spinner.Model
	messages []string
	waiting  bool
	quitting bool
}

type chatAnswerMsg struct {
	text string
}

func newChatView(app *App) *chatView {
	ti := textinput.New()
	ti.Focus()
	ti.Prompt = ""
	ti.CharLimit = 500

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = formatter.StylePurple

	return &chatView{
		app:   app,
		input: ti,
		spin:  sp,
		messages: []string{
			formatter.StylePurple.Render("Cikgu AI: ") + "Assalamualaikum! Saya Cikgu AI. Ada apa yang boleh saya bantu?",
		},
	}
}

func (v *chatView) Init() tea.Cmd {
	return textinput.Blink
}

func (v *chatView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEsc, tea.KeyCtrlC:
			v.quitting = true
			return v, tea.Quit
		case tea.KeyEnter:
			if v.waiting {
				return v, nil
			}
			question := strings.TrimSpace(v.input.Value())
			v.input.Reset()
			if question == "" {
				return v, nil
			}
			if q := strings.ToLower(question); q == "/quit" || q == "/exit" || q == "quit" || q == "exit" {
				v.quitting = true
				return v, tea.Quit
			}
			v.messages = append(v.messages, formatter.Dim("Anda: ")+question)
			v.waiting = true
			return v, tea.Batch(v.spin.Tick, v.ask(question))
		}

	case chatAnswerMsg:
		v.waiting = false
		v.messages = append(v.messages, formatter.StylePurple.Render("Cikgu AI: ")+msg.text)
		return v, nil

	case spinner.TickMsg:
		if !v.waiting {
			return v, nil
		}
		var cmd tea.Cmd
		v.spin, cmd = v.spin.Update(msg)
		return v, cmd
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

func (v *chatView) View() string {
	if v.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(formatter.Header("Cikgu AI"))
	b.WriteString("\n\n")
	for _, m := range v.messages {
		b.WriteString(m)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	if v.waiting {
		b.WriteString(v.spin.View() + formatter.Dim(" Cikgu AI sedang berfikir..."))
	} else {
		b.WriteString(formatter.StylePurple.Render("chat") + formatter.Dim("> ") + v.input.View())
	}
	b.WriteString("\n")
	b.WriteString(formatter.Dim("enter hantar · esc keluar"))
	return b.String()
}

func (v *chatView) ask(question string) tea.Cmd {
	return func() tea.Msg {
		return chatAnswerMsg{text: v.app.Assistant.Chat(context.Background(), question)}
	}
}
