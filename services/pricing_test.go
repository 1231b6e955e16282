package services

import (
	"testing"

	"elm/models"
	"elm/models/catalog"
	"elm/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscountedPrice(t *testing.T) {
	assert.Equal(t, 150.0, DiscountedPrice(200, 25))
	assert.Equal(t, 200.0, DiscountedPrice(200, 0))
	assert.Equal(t, 0.0, DiscountedPrice(200, 100))
}

func TestRoundRating(t *testing.T) {
	assert.Equal(t, 4.5, RoundRating(4.5))
	assert.Equal(t, 4.3, RoundRating(4.333333))
	assert.Equal(t, 4.7, RoundRating(4.666666))
	assert.Equal(t, 0.0, RoundRating(0))
}

func TestAverageRating(t *testing.T) {
	tx := testutil.Tx(t)
	course := testutil.SeedCourse(t, tx, "Rated Course")

	for _, rating := range []uint{4, 5} {
		reviewer := testutil.SeedUser(t, tx, models.RoleStudent)
		review := catalog.CourseReview{
			UserID:   reviewer.ID,
			CourseID: course.ID,
			Rating:   rating,
			Review:   "fine",
		}
		require.NoError(t, tx.Create(&review).Error)
	}

	avg, err := AverageRating(tx, course.ID)
	require.NoError(t, err)
	assert.Equal(t, 4.5, avg)
}

func TestAverageRatingNoReviews(t *testing.T) {
	tx := testutil.Tx(t)
	course := testutil.SeedCourse(t, tx, "Silent Course")

	avg, err := AverageRating(tx, course.ID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, avg)
}
