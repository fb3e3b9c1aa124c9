// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/financas-app/backend/internal/application/usecase/setup"
)

// SetupStepFieldResponse represents one money input on a wizard screen.
type SetupStepFieldResponse struct {
	Key         string `json:"key"`
	Label       string `json:"label"`
	Icon        string `json:"icon"`
	Placeholder string `json:"placeholder"`
}

// SetupStepResponse represents one wizard screen.
type SetupStepResponse struct {
	Key         string                   `json:"key"`
	Title       string                   `json:"title"`
	Description string                   `json:"description"`
	Fields      []SetupStepFieldResponse `json:"fields"`
}

// SetupStepsResponse represents the fixed wizard sequence.
type SetupStepsResponse struct {
	Steps []SetupStepResponse `json:"steps"`
}

// CompleteSetupRequest represents the request body for confirming the wizard.
// Values maps wizard field keys to masked money strings; untouched fields may
// be absent or empty.
type CompleteSetupRequest struct {
	Values map[string]string `json:"values" binding:"required"`
}

// CompleteSetupResponse represents the response of the setup confirmation.
type CompleteSetupResponse struct {
	SeededCount int `json:"seeded_count"`
}

// ToSetupStepsResponse converts the wizard step table to its DTO.
func ToSetupStepsResponse(steps []setup.Step) SetupStepsResponse {
	out := make([]SetupStepResponse, len(steps))
	for i, step := range steps {
		fields := make([]SetupStepFieldResponse, len(step.Fields))
		for j, field := range step.Fields {
			fields[j] = SetupStepFieldResponse{
				Key:         field.Key,
				Label:       field.Label,
				Icon:        field.Icon,
				Placeholder: field.Placeholder,
			}
		}
		out[i] = SetupStepResponse{
			Key:         step.Key,
			Title:       step.Title,
			Description: step.Description,
			Fields:      fields,
		}
	}
	return SetupStepsResponse{Steps: out}
}
