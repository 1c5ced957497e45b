package modals

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"

	"github.com/abapcodestudio/codestudio/internal/studio"
)

// =============================================================================
// ReviewState - State for approving or rejecting an AI session
// =============================================================================

type ReviewState struct {
	SessionID string
	Objects   []string

	action  string
	comment string

	form *huh.Form
}

func (*ReviewState) modalState() {}

func (s *ReviewState) Title() string { return "Review Session " + s.SessionID }

func (s *ReviewState) Help() string {
	return "Tab: next field  Enter: submit  Esc: cancel"
}

func (s *ReviewState) Render() string {
	title := palette.Title.Render(s.Title())
	parts := []string{title}
	if len(s.Objects) > 0 {
		parts = append(parts, lipgloss.NewStyle().
			Foreground(palette.Muted).
			Render("Objects: "+strings.Join(s.Objects, ", ")))
	}
	parts = append(parts, s.form.View(), palette.Help.Render(s.Help()))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (s *ReviewState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.form, cmd = huhFormUpdate(s.form, msg)
	return s, cmd
}

// Action returns the selected review action, validated.
func (s *ReviewState) Action() (studio.ReviewAction, error) {
	return studio.ParseReviewAction(s.action)
}

// Comment returns the trimmed reviewer comment.
func (s *ReviewState) Comment() string { return strings.TrimSpace(s.comment) }

// NewReviewState creates a ReviewState with approve preselected.
func NewReviewState(sessionID string, objects []string) *ReviewState {
	s := &ReviewState{
		SessionID: sessionID,
		Objects:   objects,
		action:    string(studio.ActionApprove),
	}

	s.form = newForm(palette.Width-6,
		huh.NewSelect[string]().
			Title("Decision").
			Options(
				huh.NewOption("Approve", string(studio.ActionApprove)),
				huh.NewOption("Reject", string(studio.ActionReject)),
				huh.NewOption("Comment only", string(studio.ActionComment)),
			).
			Value(&s.action),
		huh.NewInput().
			Title("Comment").
			Placeholder("optional").
			CharLimit(palette.InputCharLimit).
			Value(&s.comment),
	)
	return s
}
