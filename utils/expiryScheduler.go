package utils

import (
	"log"
	"parkguide/database"
	"parkguide/models"
	"parkguide/models/training"
	"time"

	"github.com/robfig/cron/v3"
)

// InitializeExpiryScheduler sets up the daily certification and license
// expiry checks.
func InitializeExpiryScheduler() {
	log.Println("[EXPIRY-SCHEDULER] Initializing expiry scheduler...")

	c := cron.New()

	// Run daily at 8 AM
	c.AddFunc("0 8 * * *", func() {
		log.Println("[EXPIRY-SCHEDULER] Running daily expiry check...")
		ProcessExpiringCertifications()
		ExpireCertifications()
		ProcessExpiringLicenses()
	})

	c.Start()
	log.Println("[EXPIRY-SCHEDULER] Expiry scheduler started - runs daily at 8 AM")
}

// ProcessExpiringCertifications sends reminder emails for certifications
// expiring within 14 days.
func ProcessExpiringCertifications() {
	db := database.Database.Db
	now := time.Now()
	twoWeeksFromNow := now.AddDate(0, 0, 14)

	var expiring []training.Certification
	if err := db.
		Where("status = ? AND reminder_sent = false AND is_deleted = false", "active").
		Where("expiry_date BETWEEN ? AND ?", now, twoWeeksFromNow).
		Find(&expiring).Error; err != nil {
		log.Printf("[EXPIRY-SCHEDULER] Error fetching expiring certifications: %v", err)
		return
	}

	log.Printf("[EXPIRY-SCHEDULER] Found %d certifications expiring soon", len(expiring))

	for _, cert := range expiring {
		var guide models.ParkGuide
		if err := db.Where("id = ?", cert.GuideID).First(&guide).Error; err != nil {
			log.Printf("[EXPIRY-SCHEDULER] Error fetching guide %d: %v", cert.GuideID, err)
			continue
		}

		var user models.User
		if err := db.Where("id = ?", guide.UserID).First(&user).Error; err != nil {
			log.Printf("[EXPIRY-SCHEDULER] Error fetching user %d: %v", guide.UserID, err)
			continue
		}

		var module training.Module
		db.Where("id = ?", cert.ModuleID).First(&module)

		SendExpiryReminderEmail(user.Email, user.FirstName, module.ModuleName+" certification", cert.ExpiryDate)

		db.Model(&cert).Update("reminder_sent", true)
		log.Printf("[EXPIRY-SCHEDULER] Sent expiry reminder for certification %d to %s", cert.ID, user.Email)
	}
}

// ExpireCertifications marks lapsed certifications as expired.
func ExpireCertifications() {
	db := database.Database.Db
	now := time.Now()

	result := db.Model(&training.Certification{}).
		Where("status = ? AND expiry_date < ? AND is_deleted = false", "active", now).
		Updates(map[string]interface{}{"status": "expired"})

	if result.Error != nil {
		log.Printf("[EXPIRY-SCHEDULER] Error expiring certifications: %v", result.Error)
		return
	}

	if result.RowsAffected > 0 {
		log.Printf("[EXPIRY-SCHEDULER] Marked %d certifications as expired", result.RowsAffected)
	}
}

// ProcessExpiringLicenses sends reminder emails for guide licenses expiring
// within 14 days.
func ProcessExpiringLicenses() {
	db := database.Database.Db
	now := time.Now()
	twoWeeksFromNow := now.AddDate(0, 0, 14)

	var guides []models.ParkGuide
	if err := db.
		Where("certification_status = ? AND license_reminder_sent = false AND is_deleted = false", models.CertStatusCertified).
		Where("license_expiry_date BETWEEN ? AND ?", now, twoWeeksFromNow).
		Find(&guides).Error; err != nil {
		log.Printf("[EXPIRY-SCHEDULER] Error fetching expiring licenses: %v", err)
		return
	}

	for _, guide := range guides {
		var user models.User
		if err := db.Where("id = ?", guide.UserID).First(&user).Error; err != nil {
			log.Printf("[EXPIRY-SCHEDULER] Error fetching user %d: %v", guide.UserID, err)
			continue
		}

		SendExpiryReminderEmail(user.Email, user.FirstName, "official park guide license", *guide.LicenseExpiryDate)

		db.Model(&guide).Update("license_reminder_sent", true)
		log.Printf("[EXPIRY-SCHEDULER] Sent license expiry reminder to %s", user.Email)
	}
}
