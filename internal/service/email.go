package service

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/janellefernandes2005/tool-rental-system/internal/domain"
	"github.com/janellefernandes2005/tool-rental-system/internal/logger"
)

type sendGridService struct {
	apiKey     string
	fromEmail  string
	fromName   string
	adminEmail string
}

// NewSendGridService creates the admin alert mailer. With an empty API key it
// degrades to logging the alert instead of sending it.
func NewSendGridService(apiKey, fromEmail, fromName, adminEmail string) EmailService {
	return &sendGridService{
		apiKey:     apiKey,
		fromEmail:  fromEmail,
		fromName:   fromName,
		adminEmail: adminEmail,
	}
}

func (s *sendGridService) SendReviewAlert(ctx context.Context, entry domain.LogEntry, toolName string) error {
	subject := fmt.Sprintf("Return flagged for review: %s", toolName)
	plainText := fmt.Sprintf(
		"A return of %s (rental %s) by %s was flagged.\n\nAI confidence: %.0f\nDamage score: %.0f\nSimilarity: %.0f\n\nLog entry #%d awaits resolution.",
		toolName, entry.RentalID, entry.UserName,
		entry.AIConfidence, entry.DamageScore, entry.ImageSimilarity, entry.ID)
	htmlContent := fmt.Sprintf(`
		<html>
			<body>
				<h2>Return Flagged for Review</h2>
				<p>A return of <strong>%s</strong> (rental %s) by <strong>%s</strong> was flagged.</p>
				<ul>
					<li>AI confidence: %.0f</li>
					<li>Damage score: %.0f</li>
					<li>Similarity: %.0f</li>
				</ul>
				<p>Log entry #%d awaits resolution.</p>
			</body>
		</html>
	`, toolName, entry.RentalID, entry.UserName,
		entry.AIConfidence, entry.DamageScore, entry.ImageSimilarity, entry.ID)

	return s.send(subject, plainText, htmlContent)
}

func (s *sendGridService) SendOverdueSummary(ctx context.Context, rentals []RentalView) error {
	if len(rentals) == 0 {
		return nil
	}
	subject := fmt.Sprintf("%d overdue rental(s)", len(rentals))
	plainText := "The following rentals are past their rental period and still open:\n\n"
	htmlContent := "<html><body><h2>Overdue Rentals</h2><ul>"
	for _, r := range rentals {
		plainText += fmt.Sprintf("- %s rented by %s on %s for %d day(s)\n", r.ToolName, r.UserName, r.RentalDate, r.RentDays)
		htmlContent += fmt.Sprintf("<li><strong>%s</strong> rented by %s on %s for %d day(s)</li>", r.ToolName, r.UserName, r.RentalDate, r.RentDays)
	}
	htmlContent += "</ul></body></html>"

	return s.send(subject, plainText, htmlContent)
}

func (s *sendGridService) send(subject, plainText, htmlContent string) error {
	if s.apiKey == "" {
		logger.Info("Email disabled, logging alert instead", "subject", subject)
		return nil
	}

	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail("Administrator", s.adminEmail)
	message := mail.NewSingleEmail(from, subject, recipient, plainText, htmlContent)

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		logger.Error("Failed to send admin alert", "subject", subject, "error", err)
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		logger.Error("SendGrid rejected admin alert", "subject", subject, "status", response.StatusCode)
		return fmt.Errorf("sendgrid error: status %d", response.StatusCode)
	}
	return nil
}
