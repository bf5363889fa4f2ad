package email

import (
	"bytes"
	"fmt"
	"html/template"
)

var cancellationTmpl = template.Must(template.New("cancellation").Parse(`<!DOCTYPE html>
<html>
<body>
  <h2>Your cancellation has been recorded</h2>
  <p>Hi {{.Name}},</p>
  <p>We received your cancellation for ticket #{{.TicketID}}.</p>
  <p><strong>{{.Policy}}</strong></p>
  {{if .Eligible}}
  <p>You are eligible for a refund of {{.Amount}}. The refund can be
  initiated once the cancellation has been processed.</p>
  {{else}}
  <p>This cancellation is not eligible for a refund.</p>
  {{end}}
</body>
</html>`))

var refundTmpl = template.Must(template.New("refund").Parse(`<!DOCTYPE html>
<html>
<body>
  <h2>Your refund is on its way</h2>
  <p>Hi {{.Name}},</p>
  <p>Refund #{{.RefundID}} of {{.Amount}} ({{.Percentage}}% of {{.Original}})
  is being processed.</p>
  <p>Expected completion: {{.ExpectedBy}}.</p>
</body>
</html>`))

type CancellationEmailData struct {
	Name     string
	TicketID string
	Policy   string
	Eligible bool
	Amount   string
}

type RefundEmailData struct {
	Name       string
	RefundID   string
	Amount     string
	Original   string
	Percentage int
	ExpectedBy string
}

// RenderCancellation builds the cancellation-recorded notification.
func RenderCancellation(data CancellationEmailData) (subject, html string, err error) {
	var buf bytes.Buffer
	if err := cancellationTmpl.Execute(&buf, data); err != nil {
		return "", "", fmt.Errorf("render cancellation email: %w", err)
	}
	return fmt.Sprintf("Cancellation recorded for ticket #%s", data.TicketID), buf.String(), nil
}

// RenderRefund builds the refund-initiated notification.
func RenderRefund(data RefundEmailData) (subject, html string, err error) {
	var buf bytes.Buffer
	if err := refundTmpl.Execute(&buf, data); err != nil {
		return "", "", fmt.Errorf("render refund email: %w", err)
	}
	return fmt.Sprintf("Refund #%s initiated", data.RefundID), buf.String(), nil
}
