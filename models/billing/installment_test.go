package billing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestInstallmentIsOverdue(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	pastDue := Installment{
		DueDate: time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
		Status:  InstallmentPending,
	}
	assert.True(t, pastDue.IsOverdue(now))

	dueToday := Installment{
		DueDate: time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
		Status:  InstallmentPending,
	}
	assert.False(t, dueToday.IsOverdue(now), "due today is not yet overdue")

	future := Installment{
		DueDate: time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
		Status:  InstallmentPending,
	}
	assert.False(t, future.IsOverdue(now))

	paidLate := Installment{
		DueDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Status:  InstallmentPaid,
	}
	assert.False(t, paidLate.IsOverdue(now), "paid is never overdue")
}

func TestPaymentIsCompleted(t *testing.T) {
	inProgress := Payment{TotalInstallments: 3, PaidInstallments: 2}
	assert.False(t, inProgress.IsCompleted())

	done := Payment{TotalInstallments: 3, PaidInstallments: 3}
	assert.True(t, done.IsCompleted())
}
