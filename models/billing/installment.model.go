package billing

import (
	"time"

	"gorm.io/gorm"
)

// InstallmentStatus is the stored state of a scheduled partial payment
type InstallmentStatus string

const (
	InstallmentPending InstallmentStatus = "pending"
	InstallmentPaid    InstallmentStatus = "paid"
	InstallmentOverdue InstallmentStatus = "overdue"
)

// Installment is one scheduled partial payment within a Payment plan
type Installment struct {
	gorm.Model
	PaymentID         uint              `json:"payment_id" gorm:"index;not null"`
	InstallmentNumber uint              `json:"installment_number"`
	Amount            float64           `json:"amount" gorm:"type:decimal(10,2);not null"`
	DueDate           time.Time         `json:"due_date"`
	Status            InstallmentStatus `json:"status" gorm:"type:varchar(20);default:'pending'"`
	PaidAt            *time.Time        `json:"paid_at"`

	Payment Payment `json:"-" gorm:"foreignKey:PaymentID;constraint:OnDelete:CASCADE"`
}

// IsOverdue derives lateness from the clock. Stored status only moves to overdue
// through the daily sweep; a paid installment is never overdue.
func (i *Installment) IsOverdue(now time.Time) bool {
	if i.Status == InstallmentPaid {
		return false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return i.DueDate.Before(today)
}
