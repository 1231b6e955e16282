package services

import (
	"testing"
	"time"

	"elm/models"
	"elm/models/billing"
	"elm/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func floatPtr(v float64) *float64 { return &v }

func TestInstallmentScheduleDueDates(t *testing.T) {
	payment := billing.Payment{
		Amount:            300,
		PaymentType:       billing.TypeInstallment,
		TotalInstallments: 3,
		InstallmentAmount: floatPtr(100),
	}
	payment.CreatedAt = time.Date(2024, 1, 1, 14, 30, 0, 0, time.UTC)

	schedule, err := InstallmentSchedule(&payment)
	require.NoError(t, err)
	require.Len(t, schedule, 3)

	anchor := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, anchor.AddDate(0, 0, 90), schedule[0].DueDate)
	assert.Equal(t, anchor.AddDate(0, 0, 120), schedule[1].DueDate)
	assert.Equal(t, anchor.AddDate(0, 0, 150), schedule[2].DueDate)

	for i, installment := range schedule {
		assert.Equal(t, uint(i+1), installment.InstallmentNumber)
		assert.Equal(t, 100.0, installment.Amount)
		assert.Equal(t, billing.InstallmentPending, installment.Status)
	}
}

func TestInstallmentScheduleRejectsBadConfig(t *testing.T) {
	noAmount := billing.Payment{TotalInstallments: 3}
	_, err := InstallmentSchedule(&noAmount)
	assert.ErrorIs(t, err, ErrInstallmentConfig)

	zeroCount := billing.Payment{TotalInstallments: 0, InstallmentAmount: floatPtr(100)}
	_, err = InstallmentSchedule(&zeroCount)
	assert.ErrorIs(t, err, ErrInstallmentConfig)
}

func seedInstallmentPayment(t *testing.T, tx *gorm.DB, total uint) *billing.Payment {
	t.Helper()

	student := testutil.SeedUser(t, tx, models.RoleStudent)
	course := testutil.SeedCourse(t, tx, "Paid Course")

	payment := billing.Payment{
		StudentID:         student.ID,
		CourseID:          course.ID,
		Amount:            float64(total) * 100,
		PaymentMethod:     billing.MethodCreditCard,
		PaymentType:       billing.TypeInstallment,
		Status:            billing.PaymentPending,
		TransactionID:     uuid.NewString(),
		TotalInstallments: total,
		InstallmentAmount: floatPtr(100),
	}
	require.NoError(t, tx.Create(&payment).Error)
	return &payment
}

func TestPayInstallmentCompletesPayment(t *testing.T) {
	tx := testutil.Tx(t)
	payment := seedInstallmentPayment(t, tx, 2)

	schedule, err := GenerateInstallments(tx, payment)
	require.NoError(t, err)
	require.Len(t, schedule, 2)

	paid, err := PayInstallment(tx, schedule[0].ID)
	require.NoError(t, err)
	assert.Equal(t, billing.InstallmentPaid, paid.Status)
	require.NotNil(t, paid.PaidAt)

	var midway billing.Payment
	require.NoError(t, tx.First(&midway, payment.ID).Error)
	assert.Equal(t, uint(1), midway.PaidInstallments)
	assert.Equal(t, billing.PaymentPending, midway.Status)

	_, err = PayInstallment(tx, schedule[1].ID)
	require.NoError(t, err)

	var done billing.Payment
	require.NoError(t, tx.First(&done, payment.ID).Error)
	assert.Equal(t, uint(2), done.PaidInstallments)
	assert.Equal(t, billing.PaymentCompleted, done.Status)
	assert.True(t, done.IsCompleted())
}

func TestPayInstallmentTwice(t *testing.T) {
	tx := testutil.Tx(t)
	payment := seedInstallmentPayment(t, tx, 2)

	schedule, err := GenerateInstallments(tx, payment)
	require.NoError(t, err)

	_, err = PayInstallment(tx, schedule[0].ID)
	require.NoError(t, err)

	_, err = PayInstallment(tx, schedule[0].ID)
	assert.ErrorIs(t, err, ErrInstallmentPaid)
}

func TestSweepOverdueInstallments(t *testing.T) {
	tx := testutil.Tx(t)
	payment := seedInstallmentPayment(t, tx, 1)

	now := time.Now().UTC()
	overdue := billing.Installment{
		PaymentID:         payment.ID,
		InstallmentNumber: 1,
		Amount:            100,
		DueDate:           now.AddDate(0, 0, -2),
		Status:            billing.InstallmentPending,
	}
	upcoming := billing.Installment{
		PaymentID:         payment.ID,
		InstallmentNumber: 2,
		Amount:            100,
		DueDate:           now.AddDate(0, 0, 5),
		Status:            billing.InstallmentPending,
	}
	paidAt := now.AddDate(0, 0, -10)
	settled := billing.Installment{
		PaymentID:         payment.ID,
		InstallmentNumber: 3,
		Amount:            100,
		DueDate:           now.AddDate(0, 0, -30),
		Status:            billing.InstallmentPaid,
		PaidAt:            &paidAt,
	}
	require.NoError(t, tx.Create(&overdue).Error)
	require.NoError(t, tx.Create(&upcoming).Error)
	require.NoError(t, tx.Create(&settled).Error)

	flipped, err := SweepOverdueInstallments(tx, now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), flipped)

	var reread billing.Installment
	require.NoError(t, tx.First(&reread, overdue.ID).Error)
	assert.Equal(t, billing.InstallmentOverdue, reread.Status)

	require.NoError(t, tx.First(&reread, upcoming.ID).Error)
	assert.Equal(t, billing.InstallmentPending, reread.Status)

	require.NoError(t, tx.First(&reread, settled.ID).Error)
	assert.Equal(t, billing.InstallmentPaid, reread.Status)
}
