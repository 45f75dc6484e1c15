package completion

import (
	"encoding/json"

	service "github.com/bulatminnakhmetov/tsunagu-backend/internal/service/completion"
)

// API request models

// PreviewRequest carries unsaved profile edits. Fields left out of the body
// keep their persisted values.
type PreviewRequest struct {
	service.EditBuffer
	// Cohort forces the checklist instead of classifying the user
	Cohort string `json:"cohort,omitempty"`
}

// UnmarshalJSON decodes the edits and the cohort. The edit buffer has its
// own decoder, which would otherwise swallow the whole body.
func (r *PreviewRequest) UnmarshalJSON(data []byte) error {
	if err := json.Unmarshal(data, &r.EditBuffer); err != nil {
		return err
	}

	var aux struct {
		Cohort string `json:"cohort"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	r.Cohort = aux.Cohort
	return nil
}

// API response models

// ItemResponse is one checklist entry of a scored profile
type ItemResponse struct {
	Item    string `json:"item"`
	Present bool   `json:"present"`
}

// CompletionResponse represents a scored profile
type CompletionResponse struct {
	TraceID        string         `json:"trace_id"`
	Cohort         string         `json:"cohort"`
	CompletedCount int            `json:"completed_count"`
	TotalCount     int            `json:"total_count"`
	Percentage     int            `json:"percentage"`
	HasImage       bool           `json:"has_image"`
	Items          []ItemResponse `json:"items"`
	Missing        []string       `json:"missing"`
}

// ChecklistResponse lists the items a cohort is scored on
type ChecklistResponse struct {
	Cohort string   `json:"cohort"`
	Total  int      `json:"total"`
	Items  []string `json:"items"`
}

// ToCompletionResponse converts a service result to the API model
func ToCompletionResponse(c *service.Completion) CompletionResponse {
	resp := CompletionResponse{
		TraceID:        c.TraceID,
		Cohort:         c.Cohort.String(),
		CompletedCount: c.CompletedCount,
		TotalCount:     c.TotalCount,
		Percentage:     c.Percentage,
		HasImage:       c.HasImage,
		Items:          make([]ItemResponse, 0, len(c.Items)),
		Missing:        make([]string, 0, len(c.Missing)),
	}
	for _, v := range c.Items {
		resp.Items = append(resp.Items, ItemResponse{Item: string(v.Item), Present: v.Present})
	}
	for _, item := range c.Missing {
		resp.Missing = append(resp.Missing, string(item))
	}
	return resp
}
