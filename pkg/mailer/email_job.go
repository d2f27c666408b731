package mailer

// TemplateOrderConfirmation is the template name for order confirmation
// emails enqueued by the order service.
const TemplateOrderConfirmation = "order_confirmation"

// EmailJob is the JSON payload put on the RabbitMQ queue for sending email.
// HTML is optional; Text is recommended as fallback. A job may instead
// name a Template rendered by the worker from Data.
type EmailJob struct {
	To       string         `json:"to"`
	Subject  string         `json:"subject,omitempty"`
	Text     string         `json:"text,omitempty"`
	HTML     string         `json:"html,omitempty"`
	Template string         `json:"template,omitempty"`
	Data     map[string]any `json:"data,omitempty"`
}
