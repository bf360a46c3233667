package meeting

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ActionItem is a single task extracted from the meeting.
type ActionItem struct {
	Description string `json:"description"`
	Owner       string `json:"owner,omitempty"`
	DueDate     string `json:"due_date,omitempty"`
}

// Label renders the action item in the "description (owner) - até due" form
// used in markdown minutes and follow-up emails.
func (a ActionItem) Label() string {
	label := a.Description
	if a.Owner != "" {
		label += fmt.Sprintf(" (%s)", a.Owner)
	}
	if a.DueDate != "" {
		label += " - até " + a.DueDate
	}
	return label
}

// MeetingSummary holds the structured minutes derived from one transcript.
type MeetingSummary struct {
	Title       string       `json:"title,omitempty"`
	Summary     string       `json:"summary"`
	KeyPoints   []string     `json:"key_points"`
	Decisions   []string     `json:"decisions"`
	ActionItems []ActionItem `json:"action_items"`
	Insights    []string     `json:"insights"`
}

// JSON serializes the summary with two-space indentation.
func (s *MeetingSummary) JSON() ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}

// Markdown renders the summary as meeting minutes. Empty sections are omitted.
func (s *MeetingSummary) Markdown() string {
	var sb strings.Builder

	title := s.Title
	if title == "" {
		title = "Ata da Reunião"
	}
	fmt.Fprintf(&sb, "# %s\n\n", title)

	fmt.Fprintf(&sb, "## Resumo\n\n%s\n", strings.TrimSpace(s.Summary))

	writeSection := func(heading string, items []string) {
		if len(items) == 0 {
			return
		}
		fmt.Fprintf(&sb, "\n## %s\n\n", heading)
		for _, item := range items {
			fmt.Fprintf(&sb, "- %s\n", item)
		}
	}

	writeSection("Pontos Principais", s.KeyPoints)
	writeSection("Decisões", s.Decisions)

	if len(s.ActionItems) > 0 {
		sb.WriteString("\n## Itens de Ação\n\n")
		for _, item := range s.ActionItems {
			fmt.Fprintf(&sb, "- %s\n", item.Label())
		}
	}

	writeSection("Insights", s.Insights)

	return sb.String()
}

// ParseSummaryJSON decodes the model output into a MeetingSummary. Models
// occasionally wrap the JSON object in prose; when direct decoding fails we
// retry on the outermost {...} block before giving up.
func ParseSummaryJSON(content string) (*MeetingSummary, error) {
	var s MeetingSummary
	if err := json.Unmarshal([]byte(content), &s); err == nil {
		return &s, nil
	}

	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("response does not contain a JSON object")
	}
	if err := json.Unmarshal([]byte(content[start:end+1]), &s); err != nil {
		return nil, fmt.Errorf("parsing summary JSON: %w", err)
	}
	return &s, nil
}
