package panels

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/abapcodestudio/codestudio/internal/studio"
)

func steps(statuses ...studio.StepStatus) studio.PipelineRun {
	var run studio.PipelineRun
	for i, s := range statuses {
		run.Steps = append(run.Steps, studio.PipelineStep{Name: string(rune('a' + i)), Status: s})
	}
	return run
}

func TestStateOf(t *testing.T) {
	tests := []struct {
		name string
		run  studio.PipelineRun
		want PipelineState
	}{
		{"empty", steps(), PipelinePassed},
		{"all pass", steps(studio.StepPass, studio.StepPass), PipelinePassed},
		{"warnings pass", steps(studio.StepPass, studio.StepWarn), PipelinePassed},
		{"running", steps(studio.StepPass, studio.StepRunning), PipelineInProgress},
		{"blocked", steps(studio.StepBlocked), PipelineInProgress},
		{"fail wins", steps(studio.StepFail, studio.StepPending), PipelineFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StateOf(tt.run); got != tt.want {
				t.Errorf("StateOf = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPipelinePanel_ApplyStep(t *testing.T) {
	p := NewPipelinePanel(sampleRun)

	state := p.ApplyStep("demo", studio.PipelineStep{Name: "security", Description: "Security scan", Status: studio.StepPass})
	if len(p.Run().Steps) != len(sampleRun.Steps) {
		t.Errorf("same session should update in place, got %d steps", len(p.Run().Steps))
	}
	if state != PipelineInProgress {
		t.Errorf("state = %q", state)
	}

	state = p.ApplyStep("s-2", studio.PipelineStep{Name: "syntax", Status: studio.StepPass})
	run := p.Run()
	if run.SessionID != "s-2" || len(run.Steps) != 1 {
		t.Errorf("new session should start a fresh run: %+v", run)
	}
	if state != PipelinePassed {
		t.Errorf("state = %q", state)
	}
}

func TestPipelinePanel_Messages(t *testing.T) {
	p := NewPipelinePanel(studio.PipelineRun{})
	p.Update(PipelineRunMsg{Run: steps(studio.StepFail)})
	if StateOf(p.Run()) != PipelineFailed {
		t.Error("run message should replace the run")
	}

	p.Update(PipelineStepMsg{SessionID: "s-3", Step: studio.PipelineStep{Name: "unit", Description: "ABAP Unit tests", Status: studio.StepWarn, Detail: "1 skipped"}})
	view := ansi.Strip(p.View(100, 20))
	for _, want := range []string{"session s-3", "ABAP Unit tests", "1 skipped", "passed"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}
