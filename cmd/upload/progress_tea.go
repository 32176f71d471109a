//go:build !no_bubbletea

package upload

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/krau/tgxfer/common/utils/strutil"
)

var (
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#626262"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F87"))
)

type (
	percentMsg float64
	errMsg     struct{ err error }
	doneMsg    struct{}
)

type uploadModel struct {
	bar      progress.Model
	fileName string
	fileSize int64
	sent     int64
	start    time.Time
	err      error
	done     bool
}

func newUploadModel(fileName string, fileSize int64) uploadModel {
	return uploadModel{
		bar:      progress.New(progress.WithDefaultGradient(), progress.WithWidth(50)),
		fileName: fileName,
		fileSize: fileSize,
		start:    time.Now(),
	}
}

func (m uploadModel) Init() tea.Cmd {
	return nil
}

func (m uploadModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.bar.Width = min(msg.Width-10, 80)
		return m, nil
	case percentMsg:
		m.sent = int64(float64(msg) * float64(m.fileSize))
		return m, m.bar.SetPercent(float64(msg))
	case errMsg:
		m.err = msg.err
		return m, tea.Quit
	case doneMsg:
		m.done = true
		m.sent = m.fileSize
		return m, tea.Sequence(m.bar.SetPercent(1.0), tea.Quit)
	case progress.FrameMsg:
		if m.done {
			return m, nil
		}
		bar, cmd := m.bar.Update(msg)
		m.bar = bar.(progress.Model)
		return m, cmd
	}
	return m, nil
}

func (m uploadModel) speed() float64 {
	elapsed := time.Since(m.start).Seconds()
	if elapsed <= 0 {
		return 0
	}
	return float64(m.sent) / elapsed
}

func (m uploadModel) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("\n  ❌ Error: %s\n\n", m.err))
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "\n  📁 %s\n", m.fileName)
	fmt.Fprintf(&sb, "  📊 %s / %s  %s\n\n",
		humanize.Bytes(uint64(m.sent)),
		humanize.Bytes(uint64(m.fileSize)),
		strutil.HumanReadableSpeed(m.speed()),
	)
	sb.WriteString("  " + m.bar.View() + "\n\n")
	if m.done {
		fmt.Fprintf(&sb, "  √ Uploaded in %s\n\n", strutil.FormatDuration(time.Since(m.start).Truncate(time.Second)))
	} else {
		sb.WriteString(helpStyle.Render("  Press Ctrl+C to cancel") + "\n\n")
	}
	return sb.String()
}

// UploadProgress renders upload progress in the terminal.
type UploadProgress struct {
	program *tea.Program
	cancel  context.CancelFunc
}

func NewUploadProgress(ctx context.Context, fileName string, fileSize int64) *UploadProgress {
	ctx, cancel := context.WithCancel(ctx)
	p := tea.NewProgram(
		newUploadModel(fileName, fileSize),
		tea.WithoutSignalHandler(),
		tea.WithContext(ctx),
		tea.WithInput(nil),
	)
	return &UploadProgress{
		program: p,
		cancel:  cancel,
	}
}

// Start runs the UI in the background.
func (up *UploadProgress) Start() {
	go up.program.Run()
}

// UpdateProgress moves the bar to percent, between 0 and 1.
func (up *UploadProgress) UpdateProgress(percent float64) {
	up.program.Send(percentMsg(percent))
}

func (up *UploadProgress) SetError(err error) {
	up.program.Send(errMsg{err: err})
}

func (up *UploadProgress) Done() {
	up.program.Send(doneMsg{})
}

func (up *UploadProgress) Wait() {
	up.program.Wait()
	up.cancel()
}

func (up *UploadProgress) Quit() {
	up.program.Quit()
}
