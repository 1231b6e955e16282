package models_test

import (
	"errors"
	"testing"

	"elm/models"
	"elm/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestDuplicateEmailRejected(t *testing.T) {
	tx := testutil.Tx(t)
	user := testutil.SeedUser(t, tx, models.RoleStudent)

	dup := models.User{
		Name:     "Someone Else",
		Email:    user.Email,
		Password: "not-a-real-hash",
		Role:     models.RoleStudent,
	}
	err := tx.Create(&dup).Error
	require.Error(t, err)
	// TranslateError on the connection maps the unique violation
	assert.True(t, errors.Is(err, gorm.ErrDuplicatedKey))
}
