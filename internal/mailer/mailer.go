package mailer

import (
	"fmt"
	"net/smtp"

	"github.com/rs/zerolog"
)

type Config struct {
	Host string
	Addr string
	From string
	Pass string
}

var cfg Config

func Configure(c Config) {
	cfg = c
}

// SendNotificationEmail delivers one meeting/slot notification. Kind matches
// the event kinds published by the service.
func SendNotificationEmail(log *zerolog.Logger, kind, meetingTitle, roleName, recipientEmail string) error {
	var subject, body string
	switch kind {
	case "slot_booked":
		subject = "Role confirmed: " + roleName
		body = fmt.Sprintf("Hello!\n\nYou are signed up as %s for \"%s\". See you there!", roleName, meetingTitle)
	case "slot_released":
		subject = "Role opened up: " + roleName
		body = fmt.Sprintf("Hello!\n\nThe role %s for \"%s\" is open again.", roleName, meetingTitle)
	case "meeting_reminder":
		subject = "Meeting tomorrow: " + meetingTitle
		body = fmt.Sprintf("Hello!\n\nA reminder that \"%s\" takes place tomorrow. Check your role on the agenda.", meetingTitle)
	case "meeting_created":
		subject = "New meeting: " + meetingTitle
		body = fmt.Sprintf("Hello!\n\nA new meeting \"%s\" has been scheduled. Roles are open for booking.", meetingTitle)
	default:
		return fmt.Errorf("unknown notification kind: %s", kind)
	}

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s",
		cfg.From, recipientEmail, subject, body,
	)

	auth := smtp.PlainAuth("", cfg.From, cfg.Pass, cfg.Host)

	if err := smtp.SendMail(cfg.Addr, auth, cfg.From, []string{recipientEmail}, []byte(msg)); err != nil {
		log.Warn().Msgf("Failed to send email to %s: %v", recipientEmail, err)
		return fmt.Errorf("send email: %w", err)
	}

	log.Info().Msgf("📧 Email sent to %s (kind: %s)", recipientEmail, kind)
	return nil
}
