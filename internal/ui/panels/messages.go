package panels

import "github.com/abapcodestudio/codestudio/internal/studio"

// Messages emitted by panels and handled by the app.

// SubmitPromptMsg asks the app to start an AI session for Prompt.
type SubmitPromptMsg struct {
	Prompt string
	Model  studio.Model
	Hints  []string
}

// CopyTextMsg asks the app to place Text on the clipboard.
type CopyTextMsg struct {
	Text  string
	Label string
}

// OpenReviewMsg asks the app to open the review form for a session.
type OpenReviewMsg struct {
	SessionID string
}

// RefreshObjectsMsg asks the app to reload the object catalog.
type RefreshObjectsMsg struct {
	Type studio.ObjectType
}

// ObjectSelectedMsg is sent when an object is chosen in the explorer.
type ObjectSelectedMsg struct {
	Object studio.Object
}

// Messages delivered to panels by the app.

// AssistantReplyMsg carries the outcome of a submitted prompt.
type AssistantReplyMsg struct {
	SessionID string
	Model     string
	Content   string
	Err       error
}

// ObjectsLoadedMsg replaces the explorer's catalog.
type ObjectsLoadedMsg struct {
	Objects []studio.Object
	Err     error
}

// DiffUpdateMsg replaces the diff shown in the diff viewer.
type DiffUpdateMsg struct {
	SessionID string
	Diff      studio.CodeDiff
}

// PipelineStepMsg updates one step of a session's pipeline.
type PipelineStepMsg struct {
	SessionID string
	Step      studio.PipelineStep
}

// PipelineRunMsg replaces the whole pipeline run.
type PipelineRunMsg struct {
	Run studio.PipelineRun
}
