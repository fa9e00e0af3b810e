package mailer

import (
	"fmt"
	"strings"

	"github.com/travelbuff/TB-ConciergeService/internal/domain"
)

// formatField рендерит одно поле письма
func formatField(label, value string) string {
	return fmt.Sprintf(`
      <div class="field">
        <div class="label">%s:</div>
        <div class="value">%s</div>
      </div>`, label, value)
}

// emailShell оборачивает контент в общий HTML каркас письма
func emailShell(title, fields string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
  <head>
    <style>
      body { font-family: Arial, sans-serif; line-height: 1.6; color: #1F4788; }
      .container { max-width: 600px; margin: 0 auto; padding: 20px; }
      .header { background-color: #1F4788; color: white; padding: 20px; text-align: center; }
      .content { background-color: #F8F6F0; padding: 30px; margin-top: 20px; }
      .field { margin-bottom: 15px; }
      .label { font-weight: bold; color: #1F4788; }
      .value { color: #333; }
      .footer { text-align: center; margin-top: 30px; color: #666; font-size: 12px; }
    </style>
  </head>
  <body>
    <div class="container">
      <div class="header"><h1>%s</h1></div>
      <div class="content">%s
      </div>
      <div class="footer">
        <p>Travelbuff Concierge Services - Consultation Management System</p>
      </div>
    </div>
  </body>
</html>`, title, fields)
}

// formatBookingEmail рендерит письмо о новом бронировании консультации
func formatBookingEmail(b *domain.Booking) string {
	var fields strings.Builder

	fields.WriteString(formatField("Service Interest", b.ServiceInterest))
	fields.WriteString(formatField("Date", b.Date))
	fields.WriteString(formatField("Time", b.Time.String()))
	fields.WriteString(formatField("Name", b.Name))
	fields.WriteString(formatField("Email", b.Email))
	if b.Phone != nil {
		fields.WriteString(formatField("Phone", *b.Phone))
	}
	if b.Message != nil {
		fields.WriteString(formatField("Message", *b.Message))
	}
	fields.WriteString(formatField("Received", b.CreatedAt.Format("2006-01-02 15:04:05")))

	return emailShell("New Consultation Booking", fields.String())
}

// formatConsultationEmail рендерит письмо о новом запросе на консультацию
func formatConsultationEmail(c *domain.Consultation) string {
	var fields strings.Builder

	fields.WriteString(formatField("Service Interest", c.ServiceInterest))
	fields.WriteString(formatField("Name", c.Name))
	fields.WriteString(formatField("Email", c.Email))
	if c.Phone != nil {
		fields.WriteString(formatField("Phone", *c.Phone))
	}
	fields.WriteString(formatField("Message", c.Message))
	fields.WriteString(formatField("Received", c.CreatedAt.Format("2006-01-02 15:04:05")))

	return emailShell("New Consultation Request", fields.String())
}
