package services

import (
	"fmt"
	"log"

	"inventory-app/config"
	"inventory-app/models"

	"gopkg.in/gomail.v2"
)

type Mailer struct {
	Host       string
	Port       int
	Sender     string
	Password   string
	Recipients []string
}

func NewMailerFromConfig() *Mailer {
	return &Mailer{
		Host:       config.SMTPHost,
		Port:       config.SMTPPort,
		Sender:     config.SMTPSender,
		Password:   config.SMTPPassword,
		Recipients: config.LowStockRecipients,
	}
}

func (m *Mailer) Enabled() bool {
	return m != nil && m.Host != "" && len(m.Recipients) > 0
}

// SendLowStockAlert notifies the configured recipients that a chemical has
// dropped to or below its minimum quantity.
func (m *Mailer) SendLowStockAlert(chemical *models.ChemicalStock) error {
	if !m.Enabled() {
		return nil
	}

	subject := "Low Stock Alert: " + chemical.Name
	body := fmt.Sprintf(`
		<html>
			<body>
				<h3>Low stock warning</h3>
				<p>Chemical: <strong>%s</strong></p>
				<p>Remaining quantity: <strong>%d %s</strong> (minimum: %d %s)</p>
				<p>This is an auto-generated email. Please do not reply.</p>
			</body>
		</html>
	`, chemical.Name, chemical.Quantity, chemical.Unit, chemical.MinQuantity, chemical.Unit)

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.Sender)
	msg.SetHeader("To", m.Recipients...)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	dialer := gomail.NewDialer(m.Host, m.Port, m.Sender, m.Password)
	if err := dialer.DialAndSend(msg); err != nil {
		log.Println("Failed to send low stock alert:", err)
		return err
	}

	return nil
}
