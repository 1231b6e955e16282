package utils

import (
	"log"
	"time"

	"elm/database"
	"elm/services"

	"github.com/robfig/cron/v3"
)

// InitializeInstallmentScheduler starts the daily sweep that moves pending
// installments past their due date into overdue status
func InitializeInstallmentScheduler() {
	log.Println("[INSTALLMENT-SWEEP] Initializing installment scheduler...")

	c := cron.New()

	// Run daily shortly after midnight
	c.AddFunc("15 0 * * *", func() {
		SweepOverdueInstallments()
	})

	c.Start()
	log.Println("[INSTALLMENT-SWEEP] Installment scheduler started - runs daily at 00:15")
}

// SweepOverdueInstallments runs one sweep pass
func SweepOverdueInstallments() {
	count, err := services.SweepOverdueInstallments(database.Database.Db, time.Now())
	if err != nil {
		log.Printf("[INSTALLMENT-SWEEP] Sweep failed: %v", err)
		return
	}
	log.Printf("[INSTALLMENT-SWEEP] Marked %d installments overdue", count)
}
