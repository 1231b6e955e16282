package services

import (
	"errors"
	"testing"

	"elm/models"
	"elm/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestSyncProfileCreatesStudentProfile(t *testing.T) {
	tx := testutil.Tx(t)
	user := testutil.SeedUser(t, tx, models.RoleStudent)

	err := SyncProfile(tx, user.ID, "", models.RoleStudent)
	require.NoError(t, err)

	var profile models.StudentProfile
	require.NoError(t, tx.Where("user_id = ?", user.ID).First(&profile).Error)
	assert.Equal(t, uint(1), profile.Rate)
	assert.NotEmpty(t, profile.Code)
}

func TestSyncProfileSwapsProfileOnRoleChange(t *testing.T) {
	tx := testutil.Tx(t)
	user := testutil.SeedUser(t, tx, models.RoleStudent)
	require.NoError(t, SyncProfile(tx, user.ID, "", models.RoleStudent))

	err := SyncProfile(tx, user.ID, models.RoleStudent, models.RoleInstructor)
	require.NoError(t, err)

	var studentCount int64
	tx.Model(&models.StudentProfile{}).Where("user_id = ?", user.ID).Count(&studentCount)
	assert.Zero(t, studentCount)

	var profile models.InstructorProfile
	require.NoError(t, tx.Where("user_id = ?", user.ID).First(&profile).Error)
	assert.Equal(t, uint(1), profile.Rating)
}

func TestSyncProfileUnchangedRoleIsNoop(t *testing.T) {
	tx := testutil.Tx(t)
	user := testutil.SeedUser(t, tx, models.RoleStudent)
	require.NoError(t, SyncProfile(tx, user.ID, "", models.RoleStudent))

	var before models.StudentProfile
	require.NoError(t, tx.Where("user_id = ?", user.ID).First(&before).Error)

	require.NoError(t, SyncProfile(tx, user.ID, models.RoleStudent, models.RoleStudent))

	var after models.StudentProfile
	require.NoError(t, tx.Where("user_id = ?", user.ID).First(&after).Error)
	assert.Equal(t, before.ID, after.ID)
	assert.Equal(t, before.Code, after.Code)
}

func TestSyncProfileAdminCarriesNoProfile(t *testing.T) {
	tx := testutil.Tx(t)
	user := testutil.SeedUser(t, tx, models.RoleStudent)
	require.NoError(t, SyncProfile(tx, user.ID, "", models.RoleStudent))

	require.NoError(t, SyncProfile(tx, user.ID, models.RoleStudent, models.RoleAdmin))

	var studentCount, instructorCount int64
	tx.Model(&models.StudentProfile{}).Where("user_id = ?", user.ID).Count(&studentCount)
	tx.Model(&models.InstructorProfile{}).Where("user_id = ?", user.ID).Count(&instructorCount)
	assert.Zero(t, studentCount)
	assert.Zero(t, instructorCount)
}

func TestSyncProfileRecreateAfterRoundTrip(t *testing.T) {
	tx := testutil.Tx(t)
	user := testutil.SeedUser(t, tx, models.RoleStudent)
	require.NoError(t, SyncProfile(tx, user.ID, "", models.RoleStudent))
	require.NoError(t, SyncProfile(tx, user.ID, models.RoleStudent, models.RoleInstructor))

	// Back to student: the old row was hard deleted so the unique index is free
	require.NoError(t, SyncProfile(tx, user.ID, models.RoleInstructor, models.RoleStudent))

	var profile models.StudentProfile
	require.NoError(t, tx.Where("user_id = ?", user.ID).First(&profile).Error)
}

func TestChangeUserRoleSwapsRoleAndProfile(t *testing.T) {
	tx := testutil.Tx(t)
	user := testutil.SeedUser(t, tx, models.RoleStudent)
	require.NoError(t, SyncProfile(tx, user.ID, "", models.RoleStudent))

	require.NoError(t, ChangeUserRole(tx, user, models.RoleInstructor))
	assert.Equal(t, models.RoleInstructor, user.Role)

	var stored models.User
	require.NoError(t, tx.First(&stored, user.ID).Error)
	assert.Equal(t, models.RoleInstructor, stored.Role)

	var instructorCount, studentCount int64
	tx.Model(&models.InstructorProfile{}).Where("user_id = ?", user.ID).Count(&instructorCount)
	tx.Model(&models.StudentProfile{}).Where("user_id = ?", user.ID).Count(&studentCount)
	assert.Equal(t, int64(1), instructorCount)
	assert.Zero(t, studentCount)
}

func TestChangeUserRoleRollsBackOnProfileFailure(t *testing.T) {
	tx := testutil.Tx(t)
	user := testutil.SeedUser(t, tx, models.RoleInstructor)
	require.NoError(t, SyncProfile(tx, user.ID, "", models.RoleInstructor))

	// Make the new-role profile insert fail mid-change
	db := testutil.DB(t)
	err := db.Callback().Create().Before("gorm:create").Register("failStudentProfileInsert", func(d *gorm.DB) {
		if d.Statement.Table == "student_profiles" {
			d.AddError(errors.New("injected insert failure"))
		}
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		db.Callback().Create().Remove("failStudentProfileInsert")
	})

	err = ChangeUserRole(tx, user, models.RoleStudent)
	require.Error(t, err)
	assert.Equal(t, models.RoleInstructor, user.Role)

	// The role update rolled back with the failed profile swap
	var stored models.User
	require.NoError(t, tx.First(&stored, user.ID).Error)
	assert.Equal(t, models.RoleInstructor, stored.Role)

	var instructorCount, studentCount int64
	tx.Model(&models.InstructorProfile{}).Where("user_id = ?", user.ID).Count(&instructorCount)
	tx.Model(&models.StudentProfile{}).Where("user_id = ?", user.ID).Count(&studentCount)
	assert.Equal(t, int64(1), instructorCount)
	assert.Zero(t, studentCount)
}
