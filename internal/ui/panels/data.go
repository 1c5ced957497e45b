package panels

import (
	"time"

	"github.com/abapcodestudio/codestudio/internal/studio"
)

// Constant content shown until the backend pushes live data.

var sampleObjects = []studio.Object{
	{Name: "ZCL_SALES_ORDER_VALIDATOR", Type: studio.ObjectClass, Package: "ZSD_CORE", Description: "Validates sales order items before save", Status: studio.StatusModified, LineCount: 412, AIGenerated: true, ReviewStatus: studio.ReviewPending},
	{Name: "ZIF_PRICING_ENGINE", Type: studio.ObjectInterface, Package: "ZSD_CORE", Description: "Pricing engine contract", Status: studio.StatusActive, LineCount: 38},
	{Name: "ZI_SALESORDER", Type: studio.ObjectCDSView, Package: "ZSD_RAP", Description: "Sales order interface view", Status: studio.StatusActive, LineCount: 96},
	{Name: "ZC_SALESORDER", Type: studio.ObjectCDSView, Package: "ZSD_RAP", Description: "Sales order projection", Status: studio.StatusActive, LineCount: 54},
	{Name: "ZI_SALESORDER", Type: studio.ObjectBehaviorDef, Package: "ZSD_RAP", Description: "Behavior for sales orders", Status: studio.StatusInactive, LineCount: 71, AIGenerated: true, ReviewStatus: studio.ReviewDraft},
	{Name: "ZUI_SALESORDER_O4", Type: studio.ObjectServiceBinding, Package: "ZSD_RAP", Description: "OData V4 UI binding", Status: studio.StatusActive},
	{Name: "ZSD_ORDER_REPORT", Type: studio.ObjectProgram, Package: "ZSD_REPORTS", Description: "Open order list", Status: studio.StatusActive, LineCount: 1280},
	{Name: "ZFG_CREDIT_CHECK", Type: studio.ObjectFunctionGroup, Package: "ZFI_CREDIT", Description: "Credit limit checks", Status: studio.StatusActive, LineCount: 640},
	{Name: "ZTSD_ORDER_LOG", Type: studio.ObjectTable, Package: "ZSD_CORE", Description: "Order change log", Status: studio.StatusActive},
	{Name: "ZDE_ORDER_SOURCE", Type: studio.ObjectDataElement, Package: "ZSD_CORE", Description: "Order source channel", Status: studio.StatusActive},
	{Name: "YCL_DEMO_ALV", Type: studio.ObjectClass, Package: "$TMP", Description: "Local ALV playground", Status: studio.StatusInactive, LineCount: 88},
}

var sampleDiff = studio.CodeDiff{
	ObjectName: "ZCL_SALES_ORDER_VALIDATOR",
	ObjectType: studio.ObjectClass,
	OldSource: `METHOD validate_items.
  LOOP AT it_items INTO DATA(ls_item).
    IF ls_item-quantity <= 0.
      APPEND VALUE #( item = ls_item-posnr msg = 'Invalid quantity' ) TO rt_errors.
    ENDIF.
  ENDLOOP.
ENDMETHOD.`,
	NewSource: `METHOD validate_items.
  LOOP AT it_items ASSIGNING FIELD-SYMBOL(<ls_item>).
    IF <ls_item>-quantity <= 0.
      APPEND VALUE #( item = <ls_item>-posnr msg = TEXT-e01 ) TO rt_errors.
    ENDIF.
    IF <ls_item>-material IS INITIAL.
      APPEND VALUE #( item = <ls_item>-posnr msg = TEXT-e02 ) TO rt_errors.
    ENDIF.
  ENDLOOP.
ENDMETHOD.`,
	AddedLines:   6,
	RemovedLines: 3,
}

var sampleCommits = []studio.Commit{
	{SHA: "a3f9c21", Message: "Add material check to sales order validation", Author: "ACS Agent", Timestamp: time.Date(2026, 10, 17, 14, 12, 0, 0, time.UTC), AIGenerated: true, Model: studio.ModelSAPABAP1, Confidence: 0.94, TransportNr: "DEVK900123", ReviewStatus: studio.ReviewApproved, ObjectsChange: []string{"ZCL_SALES_ORDER_VALIDATOR"}},
	{SHA: "7be0d44", Message: "Refactor pricing engine into interface", Author: "ACS Agent", Timestamp: time.Date(2026, 10, 16, 9, 40, 0, 0, time.UTC), AIGenerated: true, Model: studio.ModelClaude, Confidence: 0.88, TransportNr: "DEVK900119", ReviewStatus: studio.ReviewMerged, ObjectsChange: []string{"ZIF_PRICING_ENGINE", "ZCL_PRICING_STANDARD"}},
	{SHA: "19d2e7f", Message: "Fix rounding in credit exposure", Author: "m.keller", Timestamp: time.Date(2026, 10, 15, 16, 5, 0, 0, time.UTC), TransportNr: "DEVK900117", ReviewStatus: studio.ReviewDeployed, ObjectsChange: []string{"ZFG_CREDIT_CHECK"}},
	{SHA: "c0418ab", Message: "Generate RAP projection for sales orders", Author: "ACS Agent", Timestamp: time.Date(2026, 10, 14, 11, 22, 0, 0, time.UTC), AIGenerated: true, Model: studio.ModelSAPABAP1, Confidence: 0.91, TransportNr: "DEVK900114", ReviewStatus: studio.ReviewDeployed, ObjectsChange: []string{"ZC_SALESORDER", "ZI_SALESORDER"}},
	{SHA: "5e77b90", Message: "Initial import of ZSD_CORE", Author: "j.berger", Timestamp: time.Date(2026, 10, 10, 8, 0, 0, 0, time.UTC), ReviewStatus: studio.ReviewDeployed, ObjectsChange: []string{"ZSD_CORE"}},
}

var sampleRun = studio.PipelineRun{
	SessionID: "demo",
	Steps: []studio.PipelineStep{
		{Name: "syntax", Description: "Syntax check", Status: studio.StepPass, DurationMS: 820},
		{Name: "atc", Description: "ATC checks (S/4HANA readiness)", Status: studio.StepWarn, Detail: "2 priority-3 findings", DurationMS: 5400},
		{Name: "unit", Description: "ABAP Unit tests", Status: studio.StepPass, Detail: "14/14 passed", DurationMS: 3100},
		{Name: "security", Description: "Security scan", Status: studio.StepRunning},
		{Name: "review", Description: "Human review", Status: studio.StepPending},
		{Name: "transport", Description: "Transport release", Status: studio.StepBlocked, Detail: "waiting for review"},
	},
}

// Tier is one pricing plan.
type Tier struct {
	Name      string
	Price     string
	Per       string
	Features  []string
	Highlight bool
}

var sampleTiers = []Tier{
	{Name: "Starter", Price: "€49", Per: "developer / month", Features: []string{"1 SAP system", "Chat + explorer", "Community support"}},
	{Name: "Team", Price: "€129", Per: "developer / month", Features: []string{"5 SAP systems", "Review pipeline", "Git history + transports", "Email support"}, Highlight: true},
	{Name: "Enterprise", Price: "Custom", Per: "annual contract", Features: []string{"Unlimited systems", "On-prem agent", "SSO + audit export", "Dedicated support"}},
}

// Control is one security commitment shown on the security panel.
type Control struct {
	Name   string
	Detail string
}

var securityControls = []Control{
	{Name: "Source stays on-prem", Detail: "Only diffs leave the customer landscape, never full sources."},
	{Name: "Outbound-only agent", Detail: "The agent dials out over TLS; no inbound firewall rules."},
	{Name: "No stored credentials", Detail: "System metadata only; hostnames and passwords are never uploaded."},
	{Name: "Human in the loop", Detail: "Every AI change passes the review pipeline before transport."},
	{Name: "Audit trail", Detail: "Each action is logged with actor, object and timestamp."},
}

const architectureDoc = `ABAP Code Studio

Terminal client
  Chat, explorer, diff and pipeline views talk to the cloud backend over
  HTTPS and receive live updates over a WebSocket channel.

Cloud backend
  /api/sessions   AI sessions and the review workflow
  /api/objects    object catalog per registered system
  /api/audit      audit log
  /ws             live pipeline, diff and agent status frames

On-prem agent
  Runs next to the SAP system, dials out to the backend and executes
  ADT calls locally. Source code never leaves the landscape; only diffs do.

Review pipeline
  syntax -> ATC -> ABAP Unit -> security scan -> human review -> transport
`

const setupDoc = `Setup

1. Log in
     codestudio login --token <token>
   The token is stored in ~/.codestudio/credentials.json.

2. Point the client at your backend
     export CODESTUDIO_API_URL=https://studio.example.com
   or set api_url in ~/.codestudio/config.yaml.

3. Register a system
     codestudio systems register --name S4D --type ecc --host-label "S/4 dev"

4. Check connectivity
     codestudio status

5. Start the studio
     codestudio
`

const apiDoc = `API Reference

GET  /health                      service health
GET  /api/systems                 registered systems
POST /api/systems                 register a system
POST /api/sessions                start an AI session
GET  /api/sessions/{id}           session details and pipeline
POST /api/sessions/{id}/review    approve, reject or comment
GET  /api/objects                 ?system=&object_type=
GET  /api/audit                   ?limit= (1-500, default 50)
POST /api/ai/generate             one-shot generation

WebSocket /ws
  first frame   {"type":"auth","token":"..."}
  inbound       pipeline, diff, agent_status, result, error, ping
  outbound      pong

All requests carry Authorization: Bearer <token>.
Errors return {"detail": "..."}.
`
