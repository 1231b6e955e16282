package utils

import (
	"fmt"
	"log"

	"elm/config"
	"elm/models"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendEmail delivers one HTML email through SendGrid
func SendEmail(toEmail, subject, htmlBody string) error {
	apiKey := config.AppConfig.SendGridApiKey
	if apiKey == "" {
		log.Println("SendGrid not configured, skipping email:", subject)
		return nil
	}

	from := mail.NewEmail("ELM Academy", config.AppConfig.EmailSender)
	to := mail.NewEmail("", toEmail)
	message := mail.NewSingleEmail(from, subject, to, "", htmlBody)

	client := sendgrid.NewSendClient(apiKey)
	resp, err := client.Send(message)
	if err != nil {
		log.Printf("Error sending email %q: %v", subject, err)
		return err
	}
	if resp.StatusCode >= 400 {
		log.Printf("SendGrid rejected email %q: %d %s", subject, resp.StatusCode, resp.Body)
		return fmt.Errorf("sendgrid status %d", resp.StatusCode)
	}
	return nil
}

// NotifyTalentRequest forwards a new hiring lead to the leads inbox
func NotifyTalentRequest(req *models.TalentRequest) {
	inbox := config.AppConfig.LeadsInbox
	if inbox == "" {
		return
	}
	body := fmt.Sprintf(
		"<h2>New Talent Request</h2><p><b>%s</b> (%s, %s)</p><p>Company: %s<br>Position: %s<br>Salary: %s</p><p>%s</p>",
		req.UserName, req.Email, req.Phone, req.CompanyName, req.Position, req.SalaryRange, req.JobDescription,
	)
	if err := SendEmail(inbox, "New talent request: "+req.CompanyName, body); err != nil {
		log.Printf("Failed to notify talent request %d: %v", req.ID, err)
	}
}

// NotifyContactMessage forwards a contact-form message to the leads inbox
func NotifyContactMessage(contact *models.Contact) {
	inbox := config.AppConfig.LeadsInbox
	if inbox == "" {
		return
	}
	body := fmt.Sprintf(
		"<h2>New Contact Message</h2><p><b>%s</b> (%s, %s)<br>Company: %s</p><p>%s</p>",
		contact.Username, contact.Email, contact.Phone, contact.CompanyName, contact.Message,
	)
	if err := SendEmail(inbox, "New contact message from "+contact.Username, body); err != nil {
		log.Printf("Failed to notify contact message %d: %v", contact.ID, err)
	}
}
