package studio

import (
	"slices"
	"testing"
)

func TestPipelineRun_Passed(t *testing.T) {
	tests := []struct {
		name  string
		steps []StepStatus
		want  bool
	}{
		{"empty", nil, true},
		{"all pass", []StepStatus{StepPass, StepPass}, true},
		{"pass and warn", []StepStatus{StepPass, StepWarn}, true},
		{"one fail", []StepStatus{StepPass, StepFail}, false},
		{"pending", []StepStatus{StepPass, StepPending}, false},
		{"running", []StepStatus{StepRunning}, false},
		{"blocked", []StepStatus{StepWarn, StepBlocked}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var run PipelineRun
			for i, s := range tt.steps {
				run.Steps = append(run.Steps, PipelineStep{Name: string(rune('a' + i)), Status: s})
			}
			if got := run.Passed(); got != tt.want {
				t.Errorf("Passed() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPipelineRun_Upsert(t *testing.T) {
	run := PipelineRun{Steps: []PipelineStep{
		{Name: "syntax", Status: StepPass},
		{Name: "atc", Status: StepRunning},
	}}

	run.Upsert(PipelineStep{Name: "atc", Status: StepWarn})
	run.Upsert(PipelineStep{Name: "unit", Status: StepPending})

	if len(run.Steps) != 3 {
		t.Fatalf("expected 3 steps, got %d", len(run.Steps))
	}
	if run.Steps[1].Status != StepWarn {
		t.Errorf("atc should be replaced in place, got %v", run.Steps[1].Status)
	}
	if run.Steps[2].Name != "unit" {
		t.Errorf("new step should be appended, got %q", run.Steps[2].Name)
	}
}

func TestObjectHints(t *testing.T) {
	tests := []struct {
		prompt string
		want   []string
	}{
		{"Add a field to zcl_sales_order and ZSD_PRICING", []string{"ZCL_SALES_ORDER", "ZSD_PRICING"}},
		{"fix the report YREP_STOCK, then YREP_STOCK again", []string{"YREP_STOCK"}},
		{"explain the pricing logic", nil},
		{"ZX is too short", nil},
		{"AZCL_FOO is not a word boundary", nil},
	}

	for _, tt := range tests {
		t.Run(tt.prompt, func(t *testing.T) {
			if got := ObjectHints(tt.prompt); !slices.Equal(got, tt.want) {
				t.Errorf("ObjectHints() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPrimaryHint(t *testing.T) {
	if got := PrimaryHint("refactor zcl_a and zcl_b"); got != "ZCL_A" {
		t.Errorf("PrimaryHint = %q, want ZCL_A", got)
	}
	if got := PrimaryHint("nothing custom here"); got != WildcardHint {
		t.Errorf("PrimaryHint = %q, want %q", got, WildcardHint)
	}
}

func TestRouteModel(t *testing.T) {
	tests := []struct {
		prompt string
		pref   Model
		want   Model
	}{
		{"Refactor ZCL_SALES", ModelAuto, ModelClaude},
		{"please EXPLAIN this method", "", ModelClaude},
		{"review the Architecture", ModelAuto, ModelClaude},
		{"add field KUNNR to ZSD_ORDERS", ModelAuto, ModelSAPABAP1},
		{"refactor anyway", ModelSAPABAP1, ModelSAPABAP1},
		{"simple change", ModelGPT4, ModelGPT4},
	}

	for _, tt := range tests {
		t.Run(tt.prompt, func(t *testing.T) {
			if got := RouteModel(tt.prompt, tt.pref); got != tt.want {
				t.Errorf("RouteModel() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseReviewAction(t *testing.T) {
	for _, s := range []string{"approve", "reject", "comment"} {
		if _, err := ParseReviewAction(s); err != nil {
			t.Errorf("ParseReviewAction(%q) unexpected error: %v", s, err)
		}
	}
	for _, s := range []string{"", "APPROVE", "merge"} {
		if _, err := ParseReviewAction(s); err == nil {
			t.Errorf("ParseReviewAction(%q) expected error", s)
		}
	}
	if ActionApprove.ResultingStatus() != ReviewApproved {
		t.Error("approve should result in approved")
	}
	if ActionComment.ResultingStatus() != ReviewRejected {
		t.Error("non-approve actions result in rejected")
	}
}

func TestObjectType_Valid(t *testing.T) {
	if len(ObjectTypes()) != 16 {
		t.Errorf("expected 16 object types, got %d", len(ObjectTypes()))
	}
	for _, ot := range ObjectTypes() {
		if !ot.Valid() {
			t.Errorf("%s should be valid", ot)
		}
	}
	if ObjectType("XXXX").Valid() {
		t.Error("XXXX should not be valid")
	}
	if !SystemECC.Valid() || SystemType("s4").Valid() {
		t.Error("SystemType.Valid mismatch")
	}
}
