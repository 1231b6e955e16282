// Package services holds the domain logic shared by the HTTP controllers:
// profile lifecycle, the track enrollment cascade, installment scheduling and
// derived pricing. Controllers stay thin and map these errors to responses.
package services

import "errors"

var (
	// ErrAlreadyEnrolled signals a duplicate (user, track) or (user, course) enrollment.
	ErrAlreadyEnrolled = errors.New("already enrolled")

	// ErrDuplicateAttempt signals a second quiz attempt for the same (user, quiz).
	ErrDuplicateAttempt = errors.New("quiz already attempted")

	// ErrDuplicateCertificate signals a second certificate for the same (user, course).
	ErrDuplicateCertificate = errors.New("certificate already issued")

	// ErrInstallmentConfig signals an installment payment without a usable plan
	// (zero installments or unset installment amount).
	ErrInstallmentConfig = errors.New("invalid installment configuration")

	// ErrInstallmentPaid signals paying an installment that is already settled.
	ErrInstallmentPaid = errors.New("installment already paid")
)
