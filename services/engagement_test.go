package services

import (
	"testing"
	"time"

	"elm/models"
	"elm/models/catalog"
	"elm/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordQuizAttemptDuplicate(t *testing.T) {
	tx := testutil.Tx(t)
	user := testutil.SeedUser(t, tx, models.RoleStudent)
	course := testutil.SeedCourse(t, tx, "Quizzed Course")

	quiz := catalog.Quiz{CourseID: course.ID, Title: "Final Quiz"}
	require.NoError(t, tx.Create(&quiz).Error)

	first := catalog.QuizAttempt{UserID: user.ID, QuizID: quiz.ID, Score: 3, CompletedAt: time.Now().UTC()}
	require.NoError(t, RecordQuizAttempt(tx, &first))

	second := catalog.QuizAttempt{UserID: user.ID, QuizID: quiz.ID, Score: 5, CompletedAt: time.Now().UTC()}
	err := RecordQuizAttempt(tx, &second)
	assert.ErrorIs(t, err, ErrDuplicateAttempt)

	var count int64
	tx.Model(&catalog.QuizAttempt{}).Where("user_id = ? AND quiz_id = ?", user.ID, quiz.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestCreateCourseCertificateDuplicate(t *testing.T) {
	tx := testutil.Tx(t)
	user := testutil.SeedUser(t, tx, models.RoleStudent)
	course := testutil.SeedCourse(t, tx, "Certified Course")

	first := catalog.CourseCertificate{
		UserID:            user.ID,
		CourseID:          course.ID,
		CertificateNumber: uuid.NewString(),
		IssuedAt:          time.Now().UTC(),
	}
	require.NoError(t, CreateCourseCertificate(tx, &first))

	second := catalog.CourseCertificate{
		UserID:            user.ID,
		CourseID:          course.ID,
		CertificateNumber: uuid.NewString(),
		IssuedAt:          time.Now().UTC(),
	}
	err := CreateCourseCertificate(tx, &second)
	assert.ErrorIs(t, err, ErrDuplicateCertificate)
}
