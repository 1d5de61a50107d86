package utils

import (
	"aptivo/config"
	"aptivo/database"
	"aptivo/models"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

func logScheduler(message string) {
	log.Printf("[SESSION-SCHEDULER] %s", message)
}

// abandonStaleSessions marks IN_PROGRESS practice sessions older than the
// configured TTL as ABANDONED so they stop counting as open work
func abandonStaleSessions() {
	cutoff := time.Now().Add(-time.Duration(config.AppConfig.SessionTTLHours) * time.Hour)

	result := database.Database.Db.Model(&models.PracticeSession{}).
		Where("status = ? AND created_at < ? AND is_deleted = ?", "IN_PROGRESS", cutoff, false).
		Update("status", "ABANDONED")

	if result.Error != nil {
		logScheduler("Failed to abandon stale sessions: " + result.Error.Error())
		return
	}

	if result.RowsAffected > 0 {
		logScheduler(time.Now().Format(time.RFC3339) + ": abandoned stale practice sessions")
	}
}

// StartSessionCleanupScheduler runs the stale-session sweep every hour
func StartSessionCleanupScheduler(c *cron.Cron) {
	c.AddFunc("0 * * * *", func() {
		abandonStaleSessions()
	})
	logScheduler("Stale session scheduler started - runs hourly")
}

// InitializeSchedulers initializes all background schedulers
func InitializeSchedulers() *cron.Cron {
	logScheduler("Initializing schedulers...")

	c := cron.New()

	StartSessionCleanupScheduler(c)

	c.Start()

	logScheduler("All schedulers initialized successfully")
	return c
}
