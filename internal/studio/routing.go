package studio

import "strings"

var reasoningKeywords = []string{"architecture", "architektur", "design", "refactor", "explain"}

// RouteModel resolves the model for a prompt. An explicit preference wins;
// "auto" (or empty) sends reasoning-heavy prompts to Claude and everything
// else to SAP-ABAP-1.
func RouteModel(prompt string, preference Model) Model {
	if preference != "" && preference != ModelAuto {
		return preference
	}
	lower := strings.ToLower(prompt)
	for _, kw := range reasoningKeywords {
		if strings.Contains(lower, kw) {
			return ModelClaude
		}
	}
	return ModelSAPABAP1
}
