package services

import (
	"log"
	"time"

	"campus-connect/internal/adapters/persistence/models"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// CronService runs the daily housekeeping job: it reports the pending
// approval backlog and next-day calendar entries at 08:30.
type CronService struct {
	db   *gorm.DB
	cron *cron.Cron
}

// NewCronService creates a new cron service
func NewCronService(db *gorm.DB) *CronService {
	return &CronService{
		db:   db,
		cron: cron.New(),
	}
}

// Start schedules and launches the daily jobs
func (s *CronService) Start() {
	if _, err := s.cron.AddFunc("30 8 * * *", s.runDailyDigest); err != nil {
		log.Printf("❌ Failed to schedule daily digest: %v", err)
		return
	}
	s.cron.Start()
	log.Println("🚀 CronService started (daily digest at 08:30)")
}

// Stop stops the scheduler and waits for running jobs
func (s *CronService) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Println("🛑 CronService stopped")
}

// runDailyDigest logs the approval backlog and tomorrow's events
func (s *CronService) runDailyDigest() {
	var pending int64
	if err := s.db.Model(&models.User{}).Where("is_approved = ?", false).Count(&pending).Error; err != nil {
		log.Printf("❌ Daily digest: pending approvals query failed: %v", err)
	} else if pending > 0 {
		log.Printf("📋 Daily digest: %d account(s) awaiting admin approval", pending)
	}

	start := time.Now().Truncate(24 * time.Hour).Add(24 * time.Hour)
	end := start.Add(24 * time.Hour)

	var events []models.Event
	if err := s.db.Where("date >= ? AND date < ?", start, end).Order("date ASC").Find(&events).Error; err != nil {
		log.Printf("❌ Daily digest: events query failed: %v", err)
		return
	}
	for _, event := range events {
		log.Printf("📅 Tomorrow [%s]: %s", event.Type, event.Title)
	}
}
