package utils

import (
	"edule/config"
	"fmt"
	"log"
	"net/smtp"
	"strings"
)

// Generic Send Email
func SendEmail(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	if from == "" || password == "" {
		log.Printf("Email disabled, skipping %q to %v", subject, to)
		return nil
	}

	// MIME basics
	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: EduLe <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	if err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg)); err != nil {
		log.Printf("Error sending email: %v", err)
		return err
	}
	return nil
}

// HTML wrapper shared by all outgoing mail
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #1B3764; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1B3764; line-height: 1.6; }
			.content h2 { color: #1B3764; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.info-box { background: #E8F0FE; padding: 15px; border-radius: 4px; border-left: 4px solid #FFB606; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>EDULE</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				&copy; 2026 EduLe. All rights reserved.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// --- Triggers ---

// SendContactNotification forwards a contact form submission to the support inbox
func SendContactNotification(name, email, subject, message string) {
	body := fmt.Sprintf(`
		<p><strong>%s</strong> (%s) wrote:</p>
		<div class="info-box">%s</div>
		<p>Subject: %s</p>
	`, name, email, message, subject)

	go SendEmail([]string{config.AppConfig.ContactInbox}, "New contact form submission", getEmailTemplate("Contact Form", body))
}

// SendInstructorAck acknowledges an instructor application
func SendInstructorAck(email, name string) {
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Thank you for applying to teach on <strong>EduLe</strong>.</p>
		<p>Our team will review your application and contact you soon.</p>
	`, name)

	go SendEmail([]string{email}, "We received your instructor application", getEmailTemplate("Application Received", body))
}
