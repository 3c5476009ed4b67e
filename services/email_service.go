package services

import (
	"fmt"
	"sync"

	"github.com/MonkyMars/gecho"
	"github.com/avira1987/remix-of-dxb-dubi/structs"
	"github.com/avira1987/remix-of-dxb-dubi/structs/tables"
	"github.com/resend/resend-go/v3"
)

var (
	client     *resend.Client
	clientOnce = sync.Once{}
)

type EmailService struct {
	logger *gecho.Logger
	cfg    *structs.Config
	client *resend.Client
}

func NewEmailService(logger *gecho.Logger, cfg *structs.Config) *EmailService {
	return &EmailService{
		logger: logger,
		cfg:    cfg,
		client: getEmailClient(cfg.Email.ApiKey),
	}
}

func getEmailClient(apiKey string) *resend.Client {
	clientOnce.Do(func() {
		client = resend.NewClient(apiKey)
	})
	return client
}

func (es *EmailService) SendEmail(to []string, subject string, body string) error {
	params := &resend.SendEmailRequest{
		From:    es.cfg.Email.From,
		To:      to,
		Html:    body,
		Subject: subject,
	}

	_, err := client.Emails.Send(params)
	if err != nil {
		es.logger.Error("Failed to send email", gecho.Field("error", err), gecho.Field("to", to))
		return err
	}

	return nil
}

// SendWelcomeEmail greets a newly registered account with a link back to the
// storefront sign-in page. The destination always derives from the
// configured origin, never from request input.
func (es *EmailService) SendWelcomeEmail(user *tables.User) error {
	signInLink := fmt.Sprintf("%s/admin/login", es.cfg.Server.PublicOrigin)

	emailBody := fmt.Sprintf(`
		<!DOCTYPE html>
		<html>
		<head>
			<meta charset="UTF-8">
			<style>
				body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
				.container { max-width: 600px; margin: 0 auto; padding: 20px; }
				.header { background-color: #b8860b; color: white; padding: 20px; text-align: center; }
				.content { padding: 20px; background-color: #f9f9f9; }
				.button { display: inline-block; padding: 15px 30px; background-color: #b8860b; color: white; text-decoration: none; border-radius: 5px; margin: 20px 0; }
				.footer { text-align: center; padding: 20px; color: #666; font-size: 12px; }
			</style>
		</head>
		<body>
			<div class="container">
				<div class="header">
					<h1>Welcome to %s</h1>
				</div>
				<div class="content">
					<p>Dear %s,</p>
					<p>Your account has been created. You can sign in using the button below:</p>
					<p style="text-align: center;">
						<a href="%s" class="button">Sign In</a>
					</p>
					<p>Link not working? Copy and paste the following URL into your browser:</p>
					<p style="word-break: break-all;">%s</p>
					<p>If you did not create an account, please ignore this email.</p>
				</div>
				<div class="footer">
					<p>%s | Luxury Finds from Dubai</p>
				</div>
			</div>
		</body>
		</html>
	`, es.cfg.Server.AppName, user.FullName, signInLink, signInLink, es.cfg.Server.AppName)

	subject := fmt.Sprintf("Welcome to %s", es.cfg.Server.AppName)

	return es.SendEmail([]string{user.Email}, subject, emailBody)
}
