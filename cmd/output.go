package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/abapcodestudio/codestudio/internal/client"
	"github.com/abapcodestudio/codestudio/internal/studio"
)

// printer renders command results either as tables or as indented JSON.
type printer struct {
	w    io.Writer
	json bool
}

func newPrinter(w io.Writer, asJSON bool) printer {
	return printer{w: w, json: asJSON}
}

func (p printer) printJSON(v any) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (p printer) table(header table.Row, rows []table.Row) {
	if len(rows) == 0 {
		_, _ = fmt.Fprintln(p.w, "(none)")
		return
	}
	t := table.NewWriter()
	t.SetOutputMirror(p.w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(header)
	t.AppendRows(rows)
	t.Render()
}

// keyValues renders a two-column table of labelled fields.
func (p printer) keyValues(pairs [][2]string) {
	rows := make([]table.Row, 0, len(pairs))
	for _, kv := range pairs {
		rows = append(rows, table.Row{kv[0], kv[1]})
	}
	t := table.NewWriter()
	t.SetOutputMirror(p.w)
	t.SetStyle(table.StyleLight)
	t.AppendRows(rows)
	t.Render()
}

func (p printer) health(h *client.Health) error {
	if p.json {
		return p.printJSON(h)
	}
	p.keyValues([][2]string{
		{"Status", h.Status},
		{"Agents connected", fmt.Sprint(h.AgentsConnected)},
		{"Version", h.Version},
	})
	return nil
}

func (p printer) systems(systems []studio.System) error {
	if p.json {
		return p.printJSON(systems)
	}
	rows := make([]table.Row, 0, len(systems))
	for _, s := range systems {
		agent := "offline"
		if s.AgentConnected {
			agent = "online"
		}
		rows = append(rows, table.Row{s.Name, s.Type, s.HostLabel, s.ClientNr, agent})
	}
	p.table(table.Row{"Name", "Type", "Host", "Client", "Agent"}, rows)
	return nil
}

func (p printer) registered(resp *client.RegisterSystemResponse) error {
	if p.json {
		return p.printJSON(resp)
	}
	p.keyValues([][2]string{
		{"ID", resp.ID},
		{"Name", resp.Name},
		{"Agent token", resp.AgentToken},
	})
	_, _ = fmt.Fprintln(p.w, "Configure the on-premise agent with this token; it is not shown again.")
	return nil
}

func (p printer) sessionResponse(s *client.SessionResponse) error {
	if p.json {
		return p.printJSON(s)
	}
	p.keyValues([][2]string{
		{"Session", s.SessionID},
		{"Status", s.Status},
		{"Model", s.ModelUsed},
		{"Confidence", fmt.Sprintf("%.0f%%", s.Confidence*100)},
		{"Objects read", strings.Join(s.ObjectsRead, ", ")},
		{"Objects modified", strings.Join(s.ObjectsModified, ", ")},
	})
	if len(s.Diffs) > 0 {
		rows := make([]table.Row, 0, len(s.Diffs))
		for _, d := range s.Diffs {
			rows = append(rows, table.Row{d.ObjectName, d.ObjectType, fmt.Sprintf("+%d", d.AddedLines), fmt.Sprintf("-%d", d.RemovedLines)})
		}
		p.table(table.Row{"Object", "Type", "Added", "Removed"}, rows)
	}
	return nil
}

func (p printer) session(s *client.Session) error {
	if p.json {
		return p.printJSON(s)
	}
	review := string(s.ReviewStatus)
	if review == "" {
		review = "-"
	}
	p.keyValues([][2]string{
		{"Session", s.ID},
		{"Prompt", s.Prompt},
		{"System", s.SystemTarget},
		{"Status", s.Status},
		{"Review", review},
		{"Created", s.CreatedAt},
	})
	return nil
}

func (p printer) review(r *client.ReviewResponse) error {
	if p.json {
		return p.printJSON(r)
	}
	_, err := fmt.Fprintf(p.w, "Session %s: %s\n", r.SessionID, r.Status)
	return err
}

func (p printer) objects(objects []studio.Object) error {
	if p.json {
		return p.printJSON(objects)
	}
	rows := make([]table.Row, 0, len(objects))
	for _, o := range objects {
		rows = append(rows, table.Row{o.Name, o.Type, o.Package, o.Status, o.Description})
	}
	p.table(table.Row{"Name", "Type", "Package", "Status", "Description"}, rows)
	return nil
}

func (p printer) audit(entries []client.AuditEntry) error {
	if p.json {
		return p.printJSON(entries)
	}
	rows := make([]table.Row, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, table.Row{e.Timestamp, e.UserID, e.Action, e.SessionID})
	}
	p.table(table.Row{"Time", "User", "Action", "Session"}, rows)
	return nil
}

func (p printer) generated(g *client.GenerateResponse) error {
	if p.json {
		return p.printJSON(g)
	}
	_, err := fmt.Fprintf(p.w, "Model: %s\n", g.ModelSelected)
	if err == nil && g.Note != "" {
		_, err = fmt.Fprintln(p.w, g.Note)
	}
	return err
}
