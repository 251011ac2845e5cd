package utils

import (
	"fmt"
	"net/smtp"
	"parkguide/config"
	"time"
)

const (
	smtpHost = "smtp.gmail.com"
	smtpPort = "587"
)

func sendHTMLEmail(to, subjectLine, body string) error {
	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password // App password

	subject := "Subject: " + subjectLine + "\nMIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n\n"
	message := []byte(subject + "\n" + body)

	auth := smtp.PlainAuth("", from, password, smtpHost)

	err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, []string{to}, message)
	if err != nil {
		fmt.Println("Error sending email:", err)
		return err
	}

	fmt.Println("Email sent successfully to", to)
	return nil
}

// SendAccountApprovedEmail notifies a park guide that an admin approved
// their registration.
func SendAccountApprovedEmail(email, name string) error {
	body := fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
				<div style="max-width: 600px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px; box-shadow: 0 2px 8px rgba(0, 0, 0, 0.1);">
					<h2 style="color: #333333; text-align: center;">Account Approved</h2>
					<p style="font-size: 16px; color: #555555;">Dear %s,</p>
					<p style="font-size: 16px; color: #555555;">Your park guide account has been approved. You can now log in, enrol in training modules and work towards your official license.</p>
					<p style="text-align: center; font-size: 12px; color: #bbbbbb; margin-top: 30px;">Sarawak Forestry Park Guide Programme</p>
				</div>
			</body>
		</html>
	`, name)

	return sendHTMLEmail(email, "Park Guide Account Approved", body)
}

// SendAccountRejectedEmail notifies a registrant that their application was
// declined.
func SendAccountRejectedEmail(email, name string) error {
	body := fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
				<div style="max-width: 600px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px; box-shadow: 0 2px 8px rgba(0, 0, 0, 0.1);">
					<h2 style="color: #333333; text-align: center;">Application Update</h2>
					<p style="font-size: 16px; color: #555555;">Dear %s,</p>
					<p style="font-size: 16px; color: #555555;">We are sorry to inform you that your park guide application was not approved at this time. Please contact the programme office for details.</p>
					<p style="text-align: center; font-size: 12px; color: #bbbbbb; margin-top: 30px;">Sarawak Forestry Park Guide Programme</p>
				</div>
			</body>
		</html>
	`, name)

	return sendHTMLEmail(email, "Park Guide Application Update", body)
}

// SendCertificationEmail congratulates a guide on earning a module
// certification.
func SendCertificationEmail(email, name, moduleName, certificateNumber string) error {
	body := fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
				<div style="max-width: 600px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px; box-shadow: 0 2px 8px rgba(0, 0, 0, 0.1);">
					<h2 style="color: #333333; text-align: center;">🎉 Certification Earned!</h2>
					<p style="font-size: 16px; color: #555555;">Dear %s,</p>
					<p style="font-size: 16px; color: #555555;">Congratulations! You passed the quiz for:</p>
					<h3 style="text-align: center; color: #4CAF50; margin: 20px 0;">%s</h3>
					<p style="font-size: 14px; color: #666666;">Your certificate number is <b>%s</b>. It is valid for one year from today.</p>
					<p style="text-align: center; font-size: 12px; color: #bbbbbb; margin-top: 30px;">Sarawak Forestry Park Guide Programme</p>
				</div>
			</body>
		</html>
	`, name, moduleName, certificateNumber)

	return sendHTMLEmail(email, "Module Certification Earned", body)
}

// SendLicenseApprovedEmail notifies a guide that their official license was
// granted.
func SendLicenseApprovedEmail(email, name, parkName string, expiry time.Time) error {
	body := fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
				<div style="max-width: 600px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px; box-shadow: 0 2px 8px rgba(0, 0, 0, 0.1);">
					<h2 style="color: #333333; text-align: center;">Official License Granted</h2>
					<p style="font-size: 16px; color: #555555;">Dear %s,</p>
					<p style="font-size: 16px; color: #555555;">Your official park guide license has been granted for:</p>
					<h3 style="text-align: center; color: #4CAF50; margin: 20px 0;">%s</h3>
					<p style="font-size: 14px; color: #666666;">The license is valid until %s.</p>
					<p style="text-align: center; font-size: 12px; color: #bbbbbb; margin-top: 30px;">Sarawak Forestry Park Guide Programme</p>
				</div>
			</body>
		</html>
	`, name, parkName, expiry.Format("2 January 2006"))

	return sendHTMLEmail(email, "Official Park Guide License Granted", body)
}

// SendExpiryReminderEmail warns a guide that a certification or license is
// about to lapse.
func SendExpiryReminderEmail(email, name, subjectName string, expiry time.Time) error {
	body := fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
				<div style="max-width: 600px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px; box-shadow: 0 2px 8px rgba(0, 0, 0, 0.1);">
					<h2 style="color: #333333; text-align: center;">Expiry Reminder</h2>
					<p style="font-size: 16px; color: #555555;">Dear %s,</p>
					<p style="font-size: 16px; color: #555555;">Your <b>%s</b> expires on %s. Please renew it to keep guiding.</p>
					<p style="text-align: center; font-size: 12px; color: #bbbbbb; margin-top: 30px;">Sarawak Forestry Park Guide Programme</p>
				</div>
			</body>
		</html>
	`, name, subjectName, expiry.Format("2 January 2006"))

	return sendHTMLEmail(email, "Expiry Reminder", body)
}
