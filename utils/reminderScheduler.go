package utils

import (
	"log"

	"afapi/config"
	"afapi/database"
	"afapi/models"

	"github.com/robfig/cron/v3"
)

// InitializeReminderScheduler sets up the daily fee reminder job
func InitializeReminderScheduler() {
	log.Println("[REMINDER-SCHEDULER] Initializing fee reminder scheduler...")

	c := cron.New()

	if _, err := c.AddFunc(config.AppConfig.ReminderCron, ProcessOutstandingBalances); err != nil {
		log.Printf("[REMINDER-SCHEDULER] Invalid schedule %q: %v", config.AppConfig.ReminderCron, err)
		return
	}

	c.Start()
	log.Printf("[REMINDER-SCHEDULER] Fee reminder scheduler started - schedule %q", config.AppConfig.ReminderCron)
}

// ProcessOutstandingBalances emails every student carrying a fee balance.
// A failed send is logged and skipped; it never aborts the batch.
func ProcessOutstandingBalances() {
	db := database.Database.Db

	var students []models.Student
	if err := db.Where("balance > 0 AND is_deleted = ?", false).Find(&students).Error; err != nil {
		log.Printf("[REMINDER-SCHEDULER] Error fetching students with balance: %v", err)
		return
	}

	log.Printf("[REMINDER-SCHEDULER] Found %d students with outstanding balance", len(students))

	for _, student := range students {
		if student.Email == "" {
			continue
		}

		if err := SendBalanceReminderEmail(student.Name, student.Email, student.Course, student.Balance); err != nil {
			log.Printf("[REMINDER-SCHEDULER] Error sending reminder to %s: %v", student.Email, err)
			continue
		}

		log.Printf("[REMINDER-SCHEDULER] Reminder sent to %s", student.Email)
	}
}
