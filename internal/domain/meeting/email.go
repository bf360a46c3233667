package meeting

import (
	"fmt"
	"html/template"
	"strings"
)

// EmailFollowUp is a structured follow-up email generated from a summary.
type EmailFollowUp struct {
	Subject      string   `json:"subject"`
	Greeting     string   `json:"greeting"`
	Summary      string   `json:"summary"`
	KeyDecisions []string `json:"key_decisions"`
	ActionItems  []string `json:"action_items"`
	NextSteps    string   `json:"next_steps"`
	Closing      string   `json:"closing"`
	MeetingDate  string   `json:"meeting_date,omitempty"`
}

var emailHTMLTemplate = template.Must(template.New("email").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>{{.Subject}}</title>
</head>
<body style="font-family: -apple-system, 'Segoe UI', Roboto, Arial, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
  <div style="background: #667eea; color: white; padding: 20px; border-radius: 10px; margin-bottom: 20px;">
    <h1 style="margin: 0; font-size: 24px;">📧 Follow-up da Reunião</h1>
    {{if .MeetingDate}}<p style="margin: 5px 0 0 0;">{{.MeetingDate}}</p>{{end}}
  </div>
  <p>{{.Greeting}}</p>
  <h3 style="color: #2c3e50;">📝 Resumo Executivo</h3>
  <p style="background: #e8f4f8; padding: 15px; border-radius: 6px;">{{.Summary}}</p>
  {{if .KeyDecisions}}<h3 style="color: #2c3e50;">🎯 Principais Decisões</h3>
  <ul>
  {{range .KeyDecisions}}  <li>{{.}}</li>
  {{end}}</ul>{{end}}
  {{if .ActionItems}}<h3 style="color: #e74c3c;">📋 Itens de Ação</h3>
  <ul>
  {{range .ActionItems}}  <li>{{.}}</li>
  {{end}}</ul>{{end}}
  <h3 style="color: #27ae60;">🚀 Próximos Passos</h3>
  <p style="background: #e8f5e8; padding: 15px; border-radius: 6px;">{{.NextSteps}}</p>
  <p>{{.Closing}}</p>
  <div style="text-align: center; margin-top: 30px; padding: 15px; background: #f1f3f4; border-radius: 6px;">
    <p style="margin: 0; font-size: 12px; color: #666;">
      📄 Este email foi gerado automaticamente pelo <strong>ClareIA</strong>
    </p>
  </div>
</body>
</html>
`))

// HTML renders the email as a standalone HTML document.
func (e *EmailFollowUp) HTML() (string, error) {
	var sb strings.Builder
	if err := emailHTMLTemplate.Execute(&sb, e); err != nil {
		return "", fmt.Errorf("rendering email HTML: %w", err)
	}
	return sb.String(), nil
}

// PlainText renders the email as plain text.
func (e *EmailFollowUp) PlainText() string {
	var sb strings.Builder

	sb.WriteString("📧 FOLLOW-UP DA REUNIÃO\n")
	sb.WriteString(strings.Repeat("=", 50) + "\n")
	if e.MeetingDate != "" {
		fmt.Fprintf(&sb, "Data da Reunião: %s\n", e.MeetingDate)
	}
	sb.WriteString("\n" + e.Greeting + "\n\n")

	sb.WriteString("📝 RESUMO EXECUTIVO:\n")
	sb.WriteString(e.Summary + "\n")

	if len(e.KeyDecisions) > 0 {
		sb.WriteString("\n🎯 PRINCIPAIS DECISÕES:\n")
		for _, d := range e.KeyDecisions {
			fmt.Fprintf(&sb, "  • %s\n", d)
		}
	}

	if len(e.ActionItems) > 0 {
		sb.WriteString("\n📋 ITENS DE AÇÃO:\n")
		for _, a := range e.ActionItems {
			fmt.Fprintf(&sb, "  • %s\n", a)
		}
	}

	sb.WriteString("\n🚀 PRÓXIMOS PASSOS:\n")
	sb.WriteString(e.NextSteps + "\n\n")
	sb.WriteString(e.Closing + "\n\n")
	sb.WriteString("---\n📄 Este email foi gerado automaticamente pelo ClareIA\n")

	return sb.String()
}

// FallbackEmail assembles a deterministic follow-up email from the summary
// when the model response cannot be used.
func FallbackEmail(summary *MeetingSummary, meetingDate, senderName string) *EmailFollowUp {
	title := summary.Title
	if title == "" {
		title = "Reunião"
	}
	if senderName == "" {
		senderName = "Equipe"
	}

	actions := make([]string, 0, len(summary.ActionItems))
	for _, item := range summary.ActionItems {
		actions = append(actions, item.Label())
	}

	return &EmailFollowUp{
		Subject:      "Follow-up: " + title,
		Greeting:     "Olá pessoal,",
		Summary:      summary.Summary,
		KeyDecisions: summary.Decisions,
		ActionItems:  actions,
		NextSteps:    "Aguardo retorno sobre os próximos passos discutidos.",
		Closing:      "Atenciosamente,\n" + senderName,
		MeetingDate:  meetingDate,
	}
}
