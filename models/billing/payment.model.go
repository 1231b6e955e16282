package billing

import (
	"elm/models"
	"elm/models/catalog"

	"gorm.io/gorm"
)

// PaymentMethod is how the money arrived
type PaymentMethod string

const (
	MethodCreditCard   PaymentMethod = "credit_card"
	MethodPaypal       PaymentMethod = "paypal"
	MethodBankTransfer PaymentMethod = "bank_transfer"
	MethodPaymob       PaymentMethod = "paymob"
)

// PaymentType is cash up front or an installment plan
type PaymentType string

const (
	TypeCash        PaymentType = "cash"
	TypeInstallment PaymentType = "installment"
)

// PaymentStatus is the lifecycle state of a payment
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
	PaymentRefunded  PaymentStatus = "refunded"
)

// Payment records a student's purchase of a course, optionally split into installments
type Payment struct {
	gorm.Model
	StudentID     uint          `json:"student_id" gorm:"index;not null"`
	CourseID      uint          `json:"course_id" gorm:"index;not null"`
	Amount        float64       `json:"amount" gorm:"type:decimal(10,2);not null"`
	PaymentMethod PaymentMethod `json:"payment_method" gorm:"type:varchar(20)"`
	PaymentType   PaymentType   `json:"payment_type" gorm:"type:varchar(20)"`
	Status        PaymentStatus `json:"status" gorm:"type:varchar(20);default:'pending'"`
	TransactionID string        `json:"transaction_id" gorm:"unique"`

	TotalInstallments uint     `json:"total_installments" gorm:"default:1"`
	PaidInstallments  uint     `json:"paid_installments" gorm:"default:0"`
	InstallmentAmount *float64 `json:"installment_amount" gorm:"type:decimal(10,2)"`

	Student      models.User    `json:"-" gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE"`
	Course       catalog.Course `json:"course,omitempty" gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`
	Installments []Installment  `json:"installments,omitempty" gorm:"foreignKey:PaymentID"`
}

// IsCompleted reports whether every installment of the plan has been paid
func (p *Payment) IsCompleted() bool {
	return p.PaidInstallments == p.TotalInstallments
}
