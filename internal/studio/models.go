// Package studio defines the ABAP Code Studio domain vocabulary shared by the
// HTTP client, the real-time channel handlers and the panels.
package studio

import (
	"slices"
	"time"
)

// SystemType distinguishes on-premise ECC systems from BTP ABAP Cloud.
type SystemType string

const (
	SystemECC          SystemType = "ecc"
	SystemBTPABAPCloud SystemType = "btp_abap_cloud"
)

// Valid reports whether t is a known system type.
func (t SystemType) Valid() bool {
	return t == SystemECC || t == SystemBTPABAPCloud
}

// ObjectType is the four-letter TADIR object type of an ABAP development object.
type ObjectType string

const (
	ObjectProgram           ObjectType = "PROG"
	ObjectClass             ObjectType = "CLAS"
	ObjectInterface         ObjectType = "INTF"
	ObjectFunctionGroup     ObjectType = "FUGR"
	ObjectFunctionModule    ObjectType = "FUNC"
	ObjectCDSView           ObjectType = "DDLS"
	ObjectMetadataExtension ObjectType = "DDLX"
	ObjectBehaviorDef       ObjectType = "BDEF"
	ObjectServiceDef        ObjectType = "SRVD"
	ObjectServiceBinding    ObjectType = "SRVB"
	ObjectTable             ObjectType = "TABL"
	ObjectDataElement       ObjectType = "DTEL"
	ObjectDomain            ObjectType = "DOMA"
	ObjectStructure         ObjectType = "STRU"
	ObjectAccessControl     ObjectType = "DCLS"
	ObjectInclude           ObjectType = "INCL"
)

var objectTypes = []ObjectType{
	ObjectProgram, ObjectClass, ObjectInterface, ObjectFunctionGroup,
	ObjectFunctionModule, ObjectCDSView, ObjectMetadataExtension, ObjectBehaviorDef,
	ObjectServiceDef, ObjectServiceBinding, ObjectTable, ObjectDataElement,
	ObjectDomain, ObjectStructure, ObjectAccessControl, ObjectInclude,
}

// ObjectTypes returns every known object type in catalog order.
func ObjectTypes() []ObjectType {
	return slices.Clone(objectTypes)
}

// Valid reports whether t is a known object type.
func (t ObjectType) Valid() bool {
	return slices.Contains(objectTypes, t)
}

// ObjectStatus is the activation state of an object.
type ObjectStatus string

const (
	StatusActive   ObjectStatus = "active"
	StatusInactive ObjectStatus = "inactive"
	StatusModified ObjectStatus = "modified"
)

// ReviewStatus tracks an AI session through review and deployment.
type ReviewStatus string

const (
	ReviewDraft    ReviewStatus = "draft"
	ReviewPending  ReviewStatus = "pending"
	ReviewApproved ReviewStatus = "approved"
	ReviewRejected ReviewStatus = "rejected"
	ReviewMerged   ReviewStatus = "merged"
	ReviewDeployed ReviewStatus = "deployed"
)

// StepStatus is the outcome of one pipeline step.
type StepStatus string

const (
	StepPass    StepStatus = "pass"
	StepFail    StepStatus = "fail"
	StepWarn    StepStatus = "warn"
	StepPending StepStatus = "pending"
	StepBlocked StepStatus = "blocked"
	StepRunning StepStatus = "running"
)

// Model names an AI model the backend can route a prompt to.
type Model string

const (
	ModelAuto         Model = "auto"
	ModelSAPABAP1     Model = "sap-abap-1"
	ModelClaude       Model = "claude"
	ModelClaudeOpus   Model = "claude-opus-4-6"
	ModelClaudeSonnet Model = "claude-sonnet-4-5"
	ModelGPT4         Model = "gpt-4"
	ModelMistral      Model = "mistral-large"
)

// System is the cloud-side metadata of a registered SAP system. No
// credentials or hostnames are ever part of it.
type System struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Type           SystemType     `json:"type"`
	HostLabel      string         `json:"host_label"`
	ClientNr       string         `json:"client_nr"`
	BasisVersion   string         `json:"basis_version,omitempty"`
	AgentID        string         `json:"agent_id,omitempty"`
	AgentConnected bool           `json:"agent_connected"`
	Features       map[string]any `json:"features,omitempty"`
}

// Object is catalog metadata for an ABAP object.
type Object struct {
	Name         string       `json:"name"`
	Type         ObjectType   `json:"type"`
	Package      string       `json:"package"`
	Description  string       `json:"description,omitempty"`
	Status       ObjectStatus `json:"status,omitempty"`
	SystemID     string       `json:"system_id,omitempty"`
	LineCount    int          `json:"line_count,omitempty"`
	AIGenerated  bool         `json:"ai_generated,omitempty"`
	ReviewStatus ReviewStatus `json:"review_status,omitempty"`
}

// CodeDiff is a proposed change to one object. Only diffs ever leave the
// customer's landscape, never full sources.
type CodeDiff struct {
	ObjectName   string     `json:"object_name"`
	ObjectType   ObjectType `json:"object_type"`
	OldSource    string     `json:"old_source,omitempty"`
	NewSource    string     `json:"new_source"`
	AddedLines   int        `json:"added_lines"`
	RemovedLines int        `json:"removed_lines"`
}

// PipelineStep is one quality gate in the review pipeline.
type PipelineStep struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Status      StepStatus `json:"status"`
	Detail      string     `json:"detail,omitempty"`
	DurationMS  int        `json:"duration_ms,omitempty"`
}

// PipelineRun is the full set of steps for one AI session.
type PipelineRun struct {
	SessionID   string         `json:"session_id"`
	Steps       []PipelineStep `json:"steps"`
	StartedAt   *time.Time     `json:"started_at,omitempty"`
	CompletedAt *time.Time     `json:"completed_at,omitempty"`
}

// Passed reports whether every step passed or only warned. A run with no
// steps has passed.
func (r PipelineRun) Passed() bool {
	for _, s := range r.Steps {
		if s.Status != StepPass && s.Status != StepWarn {
			return false
		}
	}
	return true
}

// Upsert replaces the step with the same name or appends it.
func (r *PipelineRun) Upsert(step PipelineStep) {
	for i := range r.Steps {
		if r.Steps[i].Name == step.Name {
			r.Steps[i] = step
			return
		}
	}
	r.Steps = append(r.Steps, step)
}

// Commit is the metadata attached to every git commit in the history view.
type Commit struct {
	SHA           string       `json:"sha"`
	Message       string       `json:"message"`
	Author        string       `json:"author"`
	Timestamp     time.Time    `json:"timestamp"`
	AIGenerated   bool         `json:"ai_generated"`
	Model         Model        `json:"model,omitempty"`
	Confidence    float64      `json:"confidence,omitempty"`
	TransportNr   string       `json:"transport_nr,omitempty"`
	ReviewStatus  ReviewStatus `json:"review_status,omitempty"`
	ObjectsChange []string     `json:"objects_changed,omitempty"`
}
