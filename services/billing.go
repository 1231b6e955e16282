package services

import (
	"time"

	"elm/models/billing"

	"gorm.io/gorm"
)

// InstallmentSchedule derives the installment rows for an installment payment
// without touching the store. Due dates are anchored on the payment creation
// date: installment i (1-based) is due 30*(i+2) days out, so the first one falls
// 90 days after purchase. That offset matches the historically agreed plan terms.
func InstallmentSchedule(payment *billing.Payment) ([]billing.Installment, error) {
	if payment.TotalInstallments < 1 || payment.InstallmentAmount == nil {
		return nil, ErrInstallmentConfig
	}

	created := payment.CreatedAt
	anchor := time.Date(created.Year(), created.Month(), created.Day(), 0, 0, 0, 0, time.UTC)

	schedule := make([]billing.Installment, 0, payment.TotalInstallments)
	for i := uint(0); i < payment.TotalInstallments; i++ {
		schedule = append(schedule, billing.Installment{
			PaymentID:         payment.ID,
			InstallmentNumber: i + 1,
			Amount:            *payment.InstallmentAmount,
			DueDate:           anchor.AddDate(0, 0, 30*(int(i)+3)),
			Status:            billing.InstallmentPending,
		})
	}
	return schedule, nil
}

// GenerateInstallments creates the installment rows for a payment configured
// with an installment plan.
func GenerateInstallments(db *gorm.DB, payment *billing.Payment) ([]billing.Installment, error) {
	schedule, err := InstallmentSchedule(payment)
	if err != nil {
		return nil, err
	}
	if err := db.Create(&schedule).Error; err != nil {
		return nil, err
	}
	return schedule, nil
}

// PayInstallment settles one installment and rolls the paid counter up to the
// payment, completing it when the last installment lands.
func PayInstallment(db *gorm.DB, installmentID uint) (*billing.Installment, error) {
	var installment billing.Installment
	if err := db.First(&installment, installmentID).Error; err != nil {
		return nil, err
	}
	if installment.Status == billing.InstallmentPaid {
		return nil, ErrInstallmentPaid
	}

	tx := db.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	now := time.Now().UTC()
	installment.Status = billing.InstallmentPaid
	installment.PaidAt = &now
	if err := tx.Save(&installment).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	var payment billing.Payment
	if err := tx.First(&payment, installment.PaymentID).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	payment.PaidInstallments++
	if payment.IsCompleted() {
		payment.Status = billing.PaymentCompleted
	}
	if err := tx.Save(&payment).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	return &installment, nil
}

// SweepOverdueInstallments flips pending installments whose due date has passed
// to overdue. Run by the daily scheduler; IsOverdue stays a derived predicate
// for read paths in between runs.
func SweepOverdueInstallments(db *gorm.DB, now time.Time) (int64, error) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	res := db.Model(&billing.Installment{}).
		Where("status = ? AND due_date < ?", billing.InstallmentPending, today).
		Update("status", billing.InstallmentOverdue)
	return res.RowsAffected, res.Error
}
