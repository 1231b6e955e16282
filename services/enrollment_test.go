package services

import (
	"testing"

	"elm/models"
	"elm/models/catalog"
	"elm/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnrollInTrackCascades(t *testing.T) {
	tx := testutil.Tx(t)
	user := testutil.SeedUser(t, tx, models.RoleStudent)

	courseA := testutil.SeedCourse(t, tx, "Go Basics")
	courseB := testutil.SeedCourse(t, tx, "Go Advanced")
	courseC := testutil.SeedCourse(t, tx, "Go Projects")
	groupA := testutil.SeedGroup(t, tx, courseA.ID)
	testutil.SeedGroup(t, tx, courseA.ID) // second group, must not be picked
	groupB := testutil.SeedGroup(t, tx, courseB.ID)
	groupC := testutil.SeedGroup(t, tx, courseC.ID)
	track := testutil.SeedTrack(t, tx, "Go Track", courseA, courseB, courseC)

	enrollment, err := EnrollInTrack(tx, user.ID, track.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, enrollment.UserID)
	assert.Equal(t, track.ID, enrollment.TrackID)

	var courseEnrollments []catalog.Enrollment
	require.NoError(t, tx.Where("user_id = ?", user.ID).Order("course_id").Find(&courseEnrollments).Error)
	require.Len(t, courseEnrollments, 3)
	assert.Equal(t, groupA.ID, courseEnrollments[0].GroupID)
	assert.Equal(t, groupB.ID, courseEnrollments[1].GroupID)
	assert.Equal(t, groupC.ID, courseEnrollments[2].GroupID)
}

func TestEnrollInTrackSkipsCoursesWithoutGroups(t *testing.T) {
	tx := testutil.Tx(t)
	user := testutil.SeedUser(t, tx, models.RoleStudent)

	withGroup := testutil.SeedCourse(t, tx, "Scheduled Course")
	noGroup := testutil.SeedCourse(t, tx, "Unscheduled Course")
	testutil.SeedGroup(t, tx, withGroup.ID)
	track := testutil.SeedTrack(t, tx, "Partial Track", withGroup, noGroup)

	_, err := EnrollInTrack(tx, user.ID, track.ID)
	require.NoError(t, err)

	var courseEnrollments []catalog.Enrollment
	require.NoError(t, tx.Where("user_id = ?", user.ID).Find(&courseEnrollments).Error)
	require.Len(t, courseEnrollments, 1)
	assert.Equal(t, withGroup.ID, courseEnrollments[0].CourseID)
}

func TestEnrollInTrackDuplicate(t *testing.T) {
	tx := testutil.Tx(t)
	user := testutil.SeedUser(t, tx, models.RoleStudent)
	track := testutil.SeedTrack(t, tx, "Dup Track")

	_, err := EnrollInTrack(tx, user.ID, track.ID)
	require.NoError(t, err)

	_, err = EnrollInTrack(tx, user.ID, track.ID)
	assert.ErrorIs(t, err, ErrAlreadyEnrolled)
}

func TestEnrollInTrackKeepsExistingCourseEnrollment(t *testing.T) {
	tx := testutil.Tx(t)
	user := testutil.SeedUser(t, tx, models.RoleStudent)

	course := testutil.SeedCourse(t, tx, "Shared Course")
	testutil.SeedGroup(t, tx, course.ID) // first group, cascade default
	groupTwo := testutil.SeedGroup(t, tx, course.ID)
	track := testutil.SeedTrack(t, tx, "Overlap Track", course)

	// Enrolled directly into the second group before joining the track
	_, err := EnrollInCourse(tx, user.ID, course.ID, groupTwo.ID)
	require.NoError(t, err)

	_, err = EnrollInTrack(tx, user.ID, track.ID)
	require.NoError(t, err)

	var courseEnrollments []catalog.Enrollment
	require.NoError(t, tx.Where("user_id = ? AND course_id = ?", user.ID, course.ID).Find(&courseEnrollments).Error)
	require.Len(t, courseEnrollments, 1)
	assert.Equal(t, groupTwo.ID, courseEnrollments[0].GroupID)
}

func TestEnrollInCourseDuplicateAcrossGroups(t *testing.T) {
	tx := testutil.Tx(t)
	user := testutil.SeedUser(t, tx, models.RoleStudent)

	course := testutil.SeedCourse(t, tx, "Single Course")
	groupOne := testutil.SeedGroup(t, tx, course.ID)
	groupTwo := testutil.SeedGroup(t, tx, course.ID)

	_, err := EnrollInCourse(tx, user.ID, course.ID, groupOne.ID)
	require.NoError(t, err)

	_, err = EnrollInCourse(tx, user.ID, course.ID, groupTwo.ID)
	assert.ErrorIs(t, err, ErrAlreadyEnrolled)
}
