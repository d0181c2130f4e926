package mail

import (
	"fmt"
	"log"
	"strconv"

	"gopkg.in/gomail.v2"

	"github.com/filmwire/filmwire/internal/pkg/env"
)

// SendMail delivers one HTML email through the configured SMTP relay.
func SendMail(to string, subject string, htmlBody string) error {
	host := env.GetEnv("SMTP_HOST", "")
	port, err := strconv.Atoi(env.GetEnv("SMTP_PORT", "587"))
	if err != nil {
		return fmt.Errorf("invalid SMTP_PORT: %w", err)
	}
	username := env.GetEnv("SMTP_USERNAME", "")
	password := env.GetEnv("SMTP_PASSWORD", "")
	sender := env.GetEnv("SMTP_SENDER", "")

	if sender == "" {
		sender = "no-reply@localhost"
		log.Printf("SMTP_SENDER not set, using default sender: %s", sender)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", sender)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	dialer := gomail.NewDialer(host, port, username, password)
	if err := dialer.DialAndSend(m); err != nil {
		log.Printf("SMTP send error: %v", err)
		return fmt.Errorf("failed to send email: %w", err)
	}

	log.Printf("Email sent to %s via %s:%d", to, host, port)
	return nil
}

// SendPaymentConfirmation notifies a user that their plan purchase went
// through.
func SendPaymentConfirmation(to, name, planName string, amountCents int) error {
	subject := "Your FilmWire subscription is active"
	body := fmt.Sprintf(`
		<html>
		<body>
			<h2>Thank you, %s!</h2>
			<p>Your payment of $%.2f for the <strong>%s</strong> plan was received.</p>
			<p>Your films can now be submitted for distribution. Log in to get started.</p>
			<p>— The FilmWire team</p>
		</body>
		</html>
	`, name, float64(amountCents)/100, planName)

	return SendMail(to, subject, body)
}

// SendInvitation asks a filmmaker contact to create an account.
func SendInvitation(to, name string) error {
	baseURL := env.GetEnv("PUBLIC_DOMAIN", "http://localhost:8080")
	subject := "Distribute your film with FilmWire"
	body := fmt.Sprintf(`
		<html>
		<body>
			<h2>Hello %s,</h2>
			<p>We came across your film and would love to help you bring it to
			streaming platforms like Google TV, Prime Video, Apple TV and Peacock.</p>
			<p><a href="%s/register">Create your free account</a> to get started.</p>
			<p>If this isn't for you, feel free to ignore this email.</p>
			<p>— The FilmWire team</p>
		</body>
		</html>
	`, name, baseURL)

	return SendMail(to, subject, body)
}
