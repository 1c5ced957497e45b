package panels

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/textarea"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/google/uuid"

	"github.com/abapcodestudio/codestudio/internal/keys"
	"github.com/abapcodestudio/codestudio/internal/studio"
)

// chatModels is the order ctrl+t cycles through.
var chatModels = []studio.Model{
	studio.ModelAuto,
	studio.ModelSAPABAP1,
	studio.ModelClaude,
	studio.ModelGPT4,
	studio.ModelMistral,
}

const chatInputHeight = 3

// ChatMessage is one transcript entry.
type ChatMessage struct {
	ID      string
	Role    string // "user", "assistant" or "error"
	Model   string
	Content string
}

// ChatPanel shows the AI transcript and the prompt input.
type ChatPanel struct {
	messages []ChatMessage
	input    textarea.Model
	viewport viewport.Model
	model    int
	focused  bool
	pending  bool
	width    int
	height   int
	dirty    bool
}

func (*ChatPanel) panel() {}

// NewChatPanel creates the chat panel seeded with a sample exchange.
func NewChatPanel() *ChatPanel {
	ta := textarea.New()
	ta.Placeholder = "Describe a change, e.g. add a material check to ZCL_SALES_ORDER_VALIDATOR"
	ta.CharLimit = 0
	ta.ShowLineNumbers = false
	ta.Prompt = ""
	ta.SetHeight(chatInputHeight)

	vp := viewport.New()
	vp.MouseWheelEnabled = true

	p := &ChatPanel{input: ta, viewport: vp, dirty: true}
	p.append("user", "", "Add a check to ZCL_SALES_ORDER_VALIDATOR that rejects items without a material.")
	p.append("assistant", string(studio.ModelSAPABAP1), "I read ZCL_SALES_ORDER_VALIDATOR and ZTSD_ORDER_LOG. Proposed change to VALIDATE_ITEMS:\n\n```abap\nIF <ls_item>-material IS INITIAL.\n  APPEND VALUE #( item = <ls_item>-posnr msg = TEXT-e02 ) TO rt_errors.\nENDIF.\n```\n\nThe diff is ready in the diff viewer and the pipeline has started.")
	return p
}

func (p *ChatPanel) ID() ID        { return Chat }
func (p *ChatPanel) Title() string { return "AI Chat" }
func (p *ChatPanel) Focused() bool { return p.focused }
func (p *ChatPanel) Pending() bool { return p.pending }

// Model returns the model selected for the next prompt.
func (p *ChatPanel) Model() studio.Model {
	return chatModels[p.model]
}

// Messages returns a copy of the transcript.
func (p *ChatPanel) Messages() []ChatMessage {
	out := make([]ChatMessage, len(p.messages))
	copy(out, p.messages)
	return out
}

// Focus gives the prompt input keyboard focus.
func (p *ChatPanel) Focus() tea.Cmd {
	p.focused = true
	return p.input.Focus()
}

// Blur removes keyboard focus from the prompt input.
func (p *ChatPanel) Blur() {
	p.focused = false
	p.input.Blur()
}

// CapturesInput reports whether key presses should bypass global shortcuts.
func (p *ChatPanel) CapturesInput() bool {
	return p.focused
}

func (p *ChatPanel) append(role, model, content string) {
	p.messages = append(p.messages, ChatMessage{
		ID:      uuid.NewString(),
		Role:    role,
		Model:   model,
		Content: content,
	})
	p.dirty = true
}

func (p *ChatPanel) Update(msg tea.Msg) (Panel, tea.Cmd) {
	switch msg := msg.(type) {
	case AssistantReplyMsg:
		p.pending = false
		if msg.Err != nil {
			p.append("error", "", msg.Err.Error())
		} else {
			p.append("assistant", msg.Model, msg.Content)
		}
		return p, nil

	case tea.KeyPressMsg:
		if !p.focused {
			return p, p.scroll(msg)
		}
		switch msg.String() {
		case keys.Enter:
			return p, p.submit()
		case keys.AltEnter:
			p.input.InsertString("\n")
			return p, nil
		case keys.CtrlT:
			p.model = (p.model + 1) % len(chatModels)
			return p, nil
		case keys.PgUp, keys.PgDown:
			return p, p.scroll(msg)
		}
	}

	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

func (p *ChatPanel) scroll(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "k", keys.Up:
		p.viewport.ScrollUp(1)
	case "j", keys.Down:
		p.viewport.ScrollDown(1)
	case keys.PgUp:
		p.viewport.PageUp()
	case keys.PgDown:
		p.viewport.PageDown()
	}
	return nil
}

func (p *ChatPanel) submit() tea.Cmd {
	prompt := strings.TrimSpace(p.input.Value())
	if prompt == "" || p.pending {
		return nil
	}
	p.input.Reset()
	p.pending = true
	p.append("user", "", prompt)

	model := p.Model()
	hints := studio.ObjectHints(prompt)
	return func() tea.Msg {
		return SubmitPromptMsg{Prompt: prompt, Model: model, Hints: hints}
	}
}

// routePreview describes where the current draft would be routed and which
// objects it mentions.
func (p *ChatPanel) routePreview() string {
	draft := p.input.Value()
	model := p.Model()
	parts := []string{"model: " + string(model)}
	if model == studio.ModelAuto && strings.TrimSpace(draft) != "" {
		parts[0] += " → " + string(studio.RouteModel(draft, model))
	}
	if hints := studio.ObjectHints(draft); len(hints) > 0 {
		parts = append(parts, "objects: "+strings.Join(hints, ", "))
	}
	if p.pending {
		parts = append(parts, "waiting for response…")
	}
	parts = append(parts, "ctrl+t model")
	return strings.Join(parts, " · ")
}

func (p *ChatPanel) renderMessages(width int) string {
	userStyle := lipgloss.NewStyle().Foreground(ColorUser).Bold(true)
	assistantStyle := lipgloss.NewStyle().Foreground(ColorAssistant).Bold(true)
	body := lipgloss.NewStyle().Foreground(ColorText).Width(width)

	var sb strings.Builder
	for i, m := range p.messages {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		switch m.Role {
		case "user":
			sb.WriteString(userStyle.Render("You"))
		case "error":
			sb.WriteString(ErrorStyle.Render("Error"))
		default:
			label := "Assistant"
			if m.Model != "" {
				label = fmt.Sprintf("Assistant (%s)", m.Model)
			}
			sb.WriteString(assistantStyle.Render(label))
		}
		sb.WriteString("\n")
		sb.WriteString(renderContent(m.Content, body))
	}
	return sb.String()
}

// renderContent highlights fenced code blocks and wraps prose.
func renderContent(content string, body lipgloss.Style) string {
	segments := strings.Split(content, "```")
	var sb strings.Builder
	for i, seg := range segments {
		if i%2 == 0 {
			if s := strings.Trim(seg, "\n"); s != "" {
				if sb.Len() > 0 {
					sb.WriteString("\n")
				}
				sb.WriteString(body.Render(s))
			}
			continue
		}
		// drop the language tag on the fence line
		if nl := strings.IndexByte(seg, '\n'); nl >= 0 {
			seg = seg[nl+1:]
		}
		if sb.Len() > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(highlightABAP(strings.TrimRight(seg, "\n")))
	}
	return sb.String()
}

func (p *ChatPanel) View(width, height int) string {
	inputStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorTextMuted).
		Padding(0, 1)
	if p.focused {
		inputStyle = inputStyle.BorderForeground(ColorPrimary)
	}

	// input box: text rows plus top and bottom border
	transcriptHeight := max(height-chatInputHeight-2-2, 1)
	if width != p.width || height != p.height {
		p.width, p.height = width, height
		p.input.SetWidth(max(width-4, 10))
		p.viewport.SetWidth(width)
		p.viewport.SetHeight(transcriptHeight)
		p.dirty = true
	}
	if p.dirty {
		p.viewport.SetContent(p.renderMessages(width))
		p.viewport.GotoBottom()
		p.dirty = false
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		TitleStyle.Render(p.Title()),
		p.viewport.View(),
		inputStyle.Width(width).Render(p.input.View()),
		MutedStyle.Render(p.routePreview()),
	)
}
