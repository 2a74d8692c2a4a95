package email

import (
	"fmt"
)

// ConfirmationEmailData contains the data needed for the sign-up confirmation email.
type ConfirmationEmailData struct {
	DisplayName     string
	Email           string
	ConfirmationURL string
	AppName         string
}

// BuildConfirmationEmail creates the email sent after sign-up to verify an address.
func BuildConfirmationEmail(data ConfirmationEmailData) Message {
	appName := data.AppName
	if appName == "" {
		appName = "NeuroLink"
	}

	name := data.DisplayName
	if name == "" {
		name = "there"
	}

	subject := fmt.Sprintf("Confirm your %s account", appName)

	textBody := fmt.Sprintf(`Hi %s,

Welcome to %s!

Please confirm your email address by clicking the link below:
%s

If you did not create this account, you can ignore this email.

Thanks,
The %s Team`,
		name, appName, data.ConfirmationURL, appName)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #2563eb;">Hi %s,</h2>
    <p>Welcome to %s!</p>
    <p>Please confirm your email address by clicking the button below:</p>
    <p style="text-align: center; margin: 30px 0;">
        <a href="%s" style="background-color: #2563eb; color: #fff; padding: 12px 24px; border-radius: 6px; text-decoration: none; display: inline-block;">Confirm Email</a>
    </p>
    <p>If you did not create this account, you can ignore this email.</p>
    <p>Thanks,<br>The %s Team</p>
</body>
</html>`,
		name, appName, data.ConfirmationURL, appName)

	return Message{
		To:       []string{data.Email},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}

// AlertEmailData contains the data needed for the caregiver alert notification email.
type AlertEmailData struct {
	Email       string
	PatientName string
	AlertType   string
	AlertText   string
	OccurredAt  string
	AppName     string
}

// BuildAlertEmail creates the notification sent to a caregiver when a new
// alert is recorded for their patient.
func BuildAlertEmail(data AlertEmailData) Message {
	appName := data.AppName
	if appName == "" {
		appName = "NeuroLink"
	}

	patient := data.PatientName
	if patient == "" {
		patient = "your patient"
	}

	subject := fmt.Sprintf("[%s] New %s alert for %s", appName, data.AlertType, patient)

	textBody := fmt.Sprintf(`A new alert was recorded for %s.

Type: %s
Message: %s
Time: %s

Open your %s dashboard to see the full alert timeline.`,
		patient, data.AlertType, data.AlertText, data.OccurredAt, appName)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #dc2626;">New alert for %s</h2>
    <table style="border-collapse: collapse; width: 100%%;">
        <tr><td style="padding: 6px 12px; font-weight: bold;">Type</td><td style="padding: 6px 12px;">%s</td></tr>
        <tr><td style="padding: 6px 12px; font-weight: bold;">Message</td><td style="padding: 6px 12px;">%s</td></tr>
        <tr><td style="padding: 6px 12px; font-weight: bold;">Time</td><td style="padding: 6px 12px;">%s</td></tr>
    </table>
    <p>Open your %s dashboard to see the full alert timeline.</p>
</body>
</html>`,
		patient, data.AlertType, data.AlertText, data.OccurredAt, appName)

	return Message{
		To:       []string{data.Email},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}
