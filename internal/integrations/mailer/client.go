package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/travelbuff/TB-ConciergeService/internal/domain"
)

// Client клиент почтового API (Brevo-совместимый transactional API)
//
// Уведомления best-effort: если клиент не сконфигурирован (нет API
// ключа), отправка симулируется записью в лог. Ошибки отправки никогда
// не должны влиять на результат операции, породившей уведомление -
// за это отвечает вызывающая сторона
type Client struct {
	baseURL           string
	apiKey            string
	senderEmail       string
	senderName        string
	notificationEmail string
	httpClient        *http.Client
	log               Logger
}

// NewClient создает новый экземпляр почтового клиента
func NewClient(
	baseURL string,
	apiKey string,
	timeout time.Duration,
	senderEmail string,
	senderName string,
	notificationEmail string,
	log Logger,
) *Client {
	c := &Client{
		baseURL:           baseURL,
		apiKey:            apiKey,
		senderEmail:       senderEmail,
		senderName:        senderName,
		notificationEmail: notificationEmail,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}

	if c.Enabled() {
		log.Info("Mailer enabled: sender=%s, notifications to %s", senderEmail, notificationEmail)
	} else {
		log.Warn("Mailer disabled - API key not configured, notifications will be simulated")
	}

	return c
}

// Enabled возвращает true, если клиент сконфигурирован для реальной отправки
func (c *Client) Enabled() bool {
	return c.apiKey != "" && c.senderEmail != "" && c.notificationEmail != ""
}

// payload тело запроса к transactional API
type payload struct {
	Sender      map[string]string   `json:"sender"`
	To          []map[string]string `json:"to"`
	Subject     string              `json:"subject"`
	HTMLContent string              `json:"htmlContent"`
}

// SendBookingNotification уведомляет команду о новом бронировании консультации
func (c *Client) SendBookingNotification(ctx context.Context, booking *domain.Booking) error {
	subject := fmt.Sprintf("New Consultation Booking: %s at %s", booking.Date, booking.Time)
	html := formatBookingEmail(booking)

	return c.send(ctx, subject, html)
}

// SendConsultationNotification уведомляет команду о новом запросе на консультацию
func (c *Client) SendConsultationNotification(ctx context.Context, consultation *domain.Consultation) error {
	subject := fmt.Sprintf("New Consultation Request: %s", consultation.ServiceInterest)
	html := formatConsultationEmail(consultation)

	return c.send(ctx, subject, html)
}

func (c *Client) send(ctx context.Context, subject, html string) error {
	if !c.Enabled() {
		c.log.Info("Mailer (simulated): to=%s, subject=%q", c.notificationEmail, subject)
		return nil
	}

	body, err := json.Marshal(payload{
		Sender: map[string]string{
			"email": c.senderEmail,
			"name":  c.senderName,
		},
		To: []map[string]string{
			{"email": c.notificationEmail},
		},
		Subject:     subject,
		HTMLContent: html,
	})
	if err != nil {
		return fmt.Errorf("%w: failed to marshal payload: %v", ErrInternal, err)
	}

	url := c.baseURL + "/v3/smtp/email"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrSendFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrSendFailed, resp.StatusCode, string(respBody))
	}

	c.log.Info("Mailer: email sent, subject=%q", subject)
	return nil
}
