package panels

import (
	"bytes"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/pmezard/go-difflib/difflib"

	"github.com/abapcodestudio/codestudio/internal/studio"
)

// highlightABAP applies syntax highlighting to ABAP source using chroma.
func highlightABAP(code string) string {
	lexer := lexers.Get("abap")
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := styles.Get("monokai")
	if style == nil {
		style = styles.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return code
	}

	var buf bytes.Buffer
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return code
	}
	return buf.String()
}

// unifiedDiff renders a CodeDiff as unified diff text.
func unifiedDiff(d studio.CodeDiff) string {
	name := d.ObjectName
	if d.ObjectType != "" {
		name += "." + strings.ToLower(string(d.ObjectType))
	}
	text, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(d.OldSource),
		B:        difflib.SplitLines(d.NewSource),
		FromFile: "a/" + name,
		ToFile:   "b/" + name,
		Context:  3,
	})
	if err != nil {
		return d.NewSource
	}
	return text
}

// colorDiff applies coloring to unified diff output.
func colorDiff(diff string) string {
	if diff == "" {
		return diff
	}

	header := lipgloss.NewStyle().Foreground(ColorDiffHeader).Bold(true)
	hunk := lipgloss.NewStyle().Foreground(ColorDiffHunk)
	added := lipgloss.NewStyle().Foreground(ColorDiffAdded)
	removed := lipgloss.NewStyle().Foreground(ColorDiffRemoved)

	lines := strings.Split(strings.TrimRight(diff, "\n"), "\n")
	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "+++") || strings.HasPrefix(line, "---"):
			lines[i] = header.Render(line)
		case strings.HasPrefix(line, "@@"):
			lines[i] = hunk.Render(line)
		case strings.HasPrefix(line, "+"):
			lines[i] = added.Render(line)
		case strings.HasPrefix(line, "-"):
			lines[i] = removed.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}
