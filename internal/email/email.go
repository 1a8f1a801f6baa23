package email

import (
	"bytes"
	"fmt"
	"html/template"
	"log"

	"github.com/glossandgo/booking/config"
	"github.com/glossandgo/booking/internal/kafka"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

const customerTemplate = `<div style="font-family: sans-serif; max-width: 600px;">
  <h2>Booking Received</h2>
  <p>Hi {{.Name}},</p>
  <p>Thanks for booking with {{.Business}}! We've received your request and will confirm shortly.</p>
  <table cellpadding="4">
    <tr><td><strong>Service</strong></td><td>{{.Service}}</td></tr>
    <tr><td><strong>Date</strong></td><td>{{.Date}}</td></tr>
    <tr><td><strong>Time</strong></td><td>{{.Time}}</td></tr>
    <tr><td><strong>Vehicle</strong></td><td>{{.VehicleType}}</td></tr>
    <tr><td><strong>Address</strong></td><td>{{.Address}}</td></tr>
  </table>
  <p>If anything changes, just reply to this email.</p>
  <p>{{.Business}}</p>
</div>`

const businessTemplate = `<div style="font-family: sans-serif; max-width: 600px;">
  <h2>New Booking</h2>
  <table cellpadding="4">
    <tr><td><strong>Name</strong></td><td>{{.Name}}</td></tr>
    <tr><td><strong>Phone</strong></td><td>{{.Phone}}</td></tr>
    <tr><td><strong>Email</strong></td><td>{{.Email}}</td></tr>
    <tr><td><strong>Service</strong></td><td>{{.Service}}</td></tr>
    <tr><td><strong>Date</strong></td><td>{{.Date}}</td></tr>
    <tr><td><strong>Time</strong></td><td>{{.Time}}</td></tr>
    <tr><td><strong>Vehicle</strong></td><td>{{.VehicleType}}</td></tr>
    <tr><td><strong>Address</strong></td><td>{{.Address}}</td></tr>
    <tr><td><strong>Notes</strong></td><td>{{.Notes}}</td></tr>
  </table>
</div>`

type emailData struct {
	Business    string
	Name        string
	Phone       string
	Email       string
	Address     string
	VehicleType string
	Service     string
	Date        string
	Time        string
	Notes       string
}

type Sender struct {
	cfg          config.EmailConfig
	customerTmpl *template.Template
	businessTmpl *template.Template
}

func NewSender(cfg config.EmailConfig) *Sender {
	return &Sender{
		cfg:          cfg,
		customerTmpl: template.Must(template.New("customer").Parse(customerTemplate)),
		businessTmpl: template.Must(template.New("business").Parse(businessTemplate)),
	}
}

// SendBookingEmails sends the customer confirmation (when the booking
// carries an email address) and the alert to the business inbox. The
// first failure is returned but both sends are attempted.
func (s *Sender) SendBookingEmails(event kafka.BookingEvent) error {
	if s.cfg.SendGridAPIKey == "" {
		return fmt.Errorf("sendgrid api key is not configured")
	}

	data := emailData{
		Business:    s.cfg.FromName,
		Name:        event.Name,
		Phone:       event.Phone,
		Email:       event.Email,
		Address:     event.Address,
		VehicleType: event.VehicleType,
		Service:     event.Service,
		Date:        event.Date,
		Time:        event.Time,
		Notes:       event.Notes,
	}

	var firstErr error
	if event.Email != "" {
		subject := fmt.Sprintf("Booking received for %s at %s", event.Date, event.Time)
		if err := s.send(event.Email, event.Name, subject, data, s.customerTmpl, ""); err != nil {
			log.Printf("email: customer confirmation to %s failed: %v", event.Email, err)
			firstErr = err
		}
	}

	if s.cfg.BusinessEmail != "" {
		subject := fmt.Sprintf("New booking: %s on %s %s", event.Service, event.Date, event.Time)
		if err := s.send(s.cfg.BusinessEmail, s.cfg.FromName, subject, data, s.businessTmpl, event.Email); err != nil {
			log.Printf("email: business alert to %s failed: %v", s.cfg.BusinessEmail, err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

func (s *Sender) send(toEmail, toName, subject string, data emailData, tmpl *template.Template, replyTo string) error {
	var html bytes.Buffer
	if err := tmpl.Execute(&html, data); err != nil {
		return err
	}

	plain := fmt.Sprintf("%s\n\nService: %s\nDate: %s at %s\nVehicle: %s\nAddress: %s\n",
		subject, data.Service, data.Date, data.Time, data.VehicleType, data.Address)

	from := mail.NewEmail(s.cfg.FromName, s.cfg.FromEmail)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, plain, html.String())
	if replyTo != "" {
		message.SetReplyTo(mail.NewEmail(data.Name, replyTo))
	}

	client := sendgrid.NewSendClient(s.cfg.SendGridAPIKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("sendgrid send to %s: %w", toEmail, err)
	}
	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return fmt.Errorf("sendgrid returned status %d: %s", response.StatusCode, response.Body)
	}
	return nil
}
