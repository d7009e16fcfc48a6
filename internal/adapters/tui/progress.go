package tui

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"tagcount/internal/adapters/tui/styles"
	"tagcount/internal/ports"
)

// progressMsg carries a scan progress update into the program
type progressMsg ports.Progress

// finishedMsg tells the program the scan returned
type finishedMsg struct{}

// ProgressModel renders a spinner, the current file and a progress bar
type ProgressModel struct {
	spinner spinner.Model
	bar     progress.Model
	current ports.Progress
	done    bool
}

// NewProgressModel creates a new progress view model
func NewProgressModel() *ProgressModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.Spinner

	return &ProgressModel{
		spinner: s,
		bar:     progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
	}
}

// Init starts the spinner
func (m *ProgressModel) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update handles messages for the progress view
func (m *ProgressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.bar.Width = min(max(msg.Width-20, 10), 60)
		return m, nil

	case progressMsg:
		m.current = ports.Progress(msg)
		return m, nil

	case finishedMsg:
		m.done = true
		return m, tea.Quit

	case spinner.TickMsg:
		if m.done {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// Percent returns the fraction of files handled
func (m *ProgressModel) Percent() float64 {
	if m.current.Done {
		return 1
	}
	if m.current.Total == 0 {
		return 0
	}
	return float64(m.current.Index) / float64(m.current.Total)
}

// View renders the progress view
func (m *ProgressModel) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	if m.current.Total == 0 && !m.current.Done {
		b.WriteString(styles.MutedText.Render("reading manifest..."))
	} else {
		b.WriteString(styles.Counter.Render(fmt.Sprintf("%d/%d", min(m.current.Index+1, m.current.Total), m.current.Total)))
		if m.current.Path != "" {
			b.WriteString(" ")
			b.WriteString(styles.FilePath.Render(filepath.Base(m.current.Path)))
		}
	}
	b.WriteString("\n")
	b.WriteString(m.bar.ViewAs(m.Percent()))
	b.WriteString("\n")
	return b.String()
}

// RunWithProgress runs work while rendering its progress to out.
// work runs on its own goroutine and its error is returned once the
// display has shut down.
func RunWithProgress(ctx context.Context, out io.Writer, work func(ports.ProgressFunc) error) error {
	p := tea.NewProgram(NewProgressModel(),
		tea.WithContext(ctx),
		tea.WithOutput(out),
		tea.WithInput(nil),
		tea.WithoutSignalHandler(),
	)

	errCh := make(chan error, 1)
	go func() {
		errCh <- work(func(pr ports.Progress) {
			p.Send(progressMsg(pr))
		})
		p.Send(finishedMsg{})
	}()

	// The display is best effort; a terminal failure must not lose the scan result.
	_, _ = p.Run()
	return <-errCh
}
