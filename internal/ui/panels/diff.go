package panels

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"

	"github.com/abapcodestudio/codestudio/internal/keys"
	"github.com/abapcodestudio/codestudio/internal/studio"
)

// DiffPanel shows a proposed change either as a unified diff or as the
// highlighted new source.
type DiffPanel struct {
	diff       studio.CodeDiff
	sessionID  string
	showSource bool
	viewport   viewport.Model
	width      int
	height     int
	dirty      bool
}

func (*DiffPanel) panel() {}

// NewDiffPanel creates a diff viewer showing d.
func NewDiffPanel(d studio.CodeDiff) *DiffPanel {
	vp := viewport.New()
	vp.MouseWheelEnabled = true
	return &DiffPanel{diff: d, viewport: vp, dirty: true}
}

func (p *DiffPanel) ID() ID        { return Diff }
func (p *DiffPanel) Title() string { return "Diff Viewer" }

// Diff returns the diff being shown.
func (p *DiffPanel) Diff() studio.CodeDiff { return p.diff }

// SessionID returns the session that produced the diff, if any.
func (p *DiffPanel) SessionID() string { return p.sessionID }

// SetDiff replaces the displayed diff.
func (p *DiffPanel) SetDiff(sessionID string, d studio.CodeDiff) {
	p.sessionID = sessionID
	p.diff = d
	p.dirty = true
}

func (p *DiffPanel) Update(msg tea.Msg) (Panel, tea.Cmd) {
	switch msg := msg.(type) {
	case DiffUpdateMsg:
		p.SetDiff(msg.SessionID, msg.Diff)
		return p, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "s":
			p.showSource = !p.showSource
			p.dirty = true
		case "y":
			text, label := p.diff.NewSource, p.diff.ObjectName
			return p, func() tea.Msg { return CopyTextMsg{Text: text, Label: label} }
		case "r":
			id := p.sessionID
			return p, func() tea.Msg { return OpenReviewMsg{SessionID: id} }
		case "g", keys.Home:
			p.viewport.GotoTop()
		case "G", keys.End:
			p.viewport.GotoBottom()
		default:
			var cmd tea.Cmd
			p.viewport, cmd = p.viewport.Update(msg)
			return p, cmd
		}
	}
	return p, nil
}

func (p *DiffPanel) content() string {
	if p.showSource {
		return highlightABAP(p.diff.NewSource)
	}
	return colorDiff(unifiedDiff(p.diff))
}

func (p *DiffPanel) View(width, height int) string {
	mode := "diff"
	if p.showSource {
		mode = "source"
	}
	summary := fmt.Sprintf("%s (%s)  +%d -%d  · %s · s toggle · y copy · r review",
		p.diff.ObjectName, p.diff.ObjectType, p.diff.AddedLines, p.diff.RemovedLines, mode)
	if p.sessionID != "" {
		summary = "session " + p.sessionID + " · " + summary
	}

	if width != p.width || height != p.height {
		p.width, p.height = width, height
		p.viewport.SetWidth(width)
		p.viewport.SetHeight(max(height-2, 1))
	}
	if p.dirty {
		p.viewport.SetContent(p.content())
		p.viewport.GotoTop()
		p.dirty = false
	}

	return strings.Join([]string{
		TitleStyle.Render(p.Title()),
		MutedStyle.Render(summary),
		p.viewport.View(),
	}, "\n")
}
