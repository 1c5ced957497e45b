package studio

import "fmt"

// ReviewAction is a reviewer's decision on an AI session.
type ReviewAction string

const (
	ActionApprove ReviewAction = "approve"
	ActionReject  ReviewAction = "reject"
	ActionComment ReviewAction = "comment"
)

// ParseReviewAction validates s as a review action.
func ParseReviewAction(s string) (ReviewAction, error) {
	switch a := ReviewAction(s); a {
	case ActionApprove, ActionReject, ActionComment:
		return a, nil
	}
	return "", fmt.Errorf("unknown review action %q (want approve, reject or comment)", s)
}

// ResultingStatus is the session status the backend records for a.
func (a ReviewAction) ResultingStatus() ReviewStatus {
	if a == ActionApprove {
		return ReviewApproved
	}
	return ReviewRejected
}
