package panels

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abapcodestudio/codestudio/internal/studio"
)

// PipelineState summarizes a run for display.
type PipelineState string

const (
	PipelinePassed     PipelineState = "passed"
	PipelineFailed     PipelineState = "failed"
	PipelineInProgress PipelineState = "in progress"
)

// StateOf classifies a run. A failed step wins over unfinished ones.
func StateOf(run studio.PipelineRun) PipelineState {
	if run.Passed() {
		return PipelinePassed
	}
	for _, s := range run.Steps {
		if s.Status == studio.StepFail {
			return PipelineFailed
		}
	}
	return PipelineInProgress
}

// PipelinePanel shows the review pipeline of the current session.
type PipelinePanel struct {
	run studio.PipelineRun
}

func (*PipelinePanel) panel() {}

// NewPipelinePanel creates the pipeline view.
func NewPipelinePanel(run studio.PipelineRun) *PipelinePanel {
	return &PipelinePanel{run: run}
}

func (p *PipelinePanel) ID() ID        { return Pipeline }
func (p *PipelinePanel) Title() string { return "Pipeline" }

// Run returns the displayed run.
func (p *PipelinePanel) Run() studio.PipelineRun { return p.run }

// ApplyStep records a step update. An update for a different session starts
// a fresh run. It returns the resulting state.
func (p *PipelinePanel) ApplyStep(sessionID string, step studio.PipelineStep) PipelineState {
	if sessionID != "" && sessionID != p.run.SessionID {
		p.run = studio.PipelineRun{SessionID: sessionID}
	}
	p.run.Upsert(step)
	return StateOf(p.run)
}

// SetRun replaces the displayed run.
func (p *PipelinePanel) SetRun(run studio.PipelineRun) {
	p.run = run
}

func (p *PipelinePanel) Update(msg tea.Msg) (Panel, tea.Cmd) {
	switch msg := msg.(type) {
	case PipelineStepMsg:
		p.ApplyStep(msg.SessionID, msg.Step)
	case PipelineRunMsg:
		p.SetRun(msg.Run)
	}
	return p, nil
}

func statusGlyph(s studio.StepStatus) (string, color.Color) {
	switch s {
	case studio.StepPass:
		return "✓", ColorSuccess
	case studio.StepWarn:
		return "!", ColorWarning
	case studio.StepFail:
		return "✗", ColorError
	case studio.StepRunning:
		return "◌", ColorSecondary
	case studio.StepBlocked:
		return "⊘", ColorTextMuted
	}
	return "○", ColorTextMuted
}

func (p *PipelinePanel) View(width, height int) string {
	state := StateOf(p.run)
	stateColor := ColorSecondary
	switch state {
	case PipelinePassed:
		stateColor = ColorSuccess
	case PipelineFailed:
		stateColor = ColorError
	}

	lines := []string{
		TitleStyle.Render(p.Title()),
		MutedStyle.Render("session "+p.run.SessionID) + "  " +
			lipgloss.NewStyle().Foreground(stateColor).Bold(true).Render(string(state)),
		"",
	}
	for _, s := range p.run.Steps {
		glyph, c := statusGlyph(s.Status)
		row := fmt.Sprintf("%s  %-32s %-8s", lipgloss.NewStyle().Foreground(c).Render(glyph), s.Description, s.Status)
		if s.DurationMS > 0 {
			row += " " + (time.Duration(s.DurationMS) * time.Millisecond).String()
		}
		if s.Detail != "" {
			row += "  " + MutedStyle.Render(s.Detail)
		}
		lines = append(lines, ItemStyle.Width(width).Render(row))
	}
	if len(p.run.Steps) == 0 {
		lines = append(lines, MutedStyle.Italic(true).Render("No pipeline steps yet."))
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}
