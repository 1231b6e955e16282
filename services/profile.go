package services

import (
	"errors"

	"elm/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SyncProfile keeps exactly one role-appropriate profile per user. Pass a zero
// oldRole on user creation; on updates pass the persisted prior role. An update
// that leaves the role unchanged is a no-op. Deletion of the old-role profile
// runs before creation of the new one so a user never transiently holds two.
// Creation is create-if-absent; the unique index on user_id is the final arbiter
// when two role changes race.
func SyncProfile(db *gorm.DB, userID uint, oldRole, newRole models.Role) error {
	if oldRole == newRole {
		return nil
	}

	switch oldRole {
	case models.RoleStudent:
		// Hard delete so the unique user_id index does not keep holding the slot
		if err := db.Unscoped().Where("user_id = ?", userID).Delete(&models.StudentProfile{}).Error; err != nil {
			return err
		}
	case models.RoleInstructor:
		if err := db.Unscoped().Where("user_id = ?", userID).Delete(&models.InstructorProfile{}).Error; err != nil {
			return err
		}
	}

	switch newRole {
	case models.RoleStudent:
		profile := models.StudentProfile{UserID: userID}
		err := db.Where(models.StudentProfile{UserID: userID}).
			Attrs(models.StudentProfile{Rate: 1, Code: uuid.NewString()}).
			FirstOrCreate(&profile).Error
		if err != nil && !pgDuplicate(err) {
			return err
		}
	case models.RoleInstructor:
		profile := models.InstructorProfile{UserID: userID}
		err := db.Where(models.InstructorProfile{UserID: userID}).
			Attrs(models.InstructorProfile{Rating: 1}).
			FirstOrCreate(&profile).Error
		if err != nil && !pgDuplicate(err) {
			return err
		}
	}
	// admins carry no profile record

	return nil
}

// ChangeUserRole commits a role change and its profile swap as one unit: a
// failure on either side rolls the whole change back, so the stored role and
// the profile kind can never disagree durably. Token revocation is left to the
// caller and must run after the commit. A matching role is a no-op.
func ChangeUserRole(db *gorm.DB, user *models.User, newRole models.Role) error {
	oldRole := user.Role
	if oldRole == newRole {
		return nil
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(user).Update("role", newRole).Error; err != nil {
			return err
		}
		return SyncProfile(tx, user.ID, oldRole, newRole)
	})
	if err != nil {
		// Update mutated the struct before the rollback
		user.Role = oldRole
		return err
	}
	return nil
}

// pgDuplicate reports whether err is a unique constraint rejection. Requires
// TranslateError on the gorm config. A concurrent writer winning the
// FirstOrCreate race is not a failure for create-if-absent.
func pgDuplicate(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
