package services

import (
	"math"

	"elm/models/catalog"

	"gorm.io/gorm"
)

// DiscountedPrice applies a percentage discount. Range validation of the
// discount (0-100) happens at input validation, not here.
func DiscountedPrice(price, discount float64) float64 {
	return price * (1 - discount/100)
}

// RoundRating rounds to one decimal place, the storefront display precision
func RoundRating(value float64) float64 {
	return math.Round(value*10) / 10
}

// AverageRating returns the mean review rating of a course rounded to one
// decimal place, 0 when the course has no reviews.
func AverageRating(db *gorm.DB, courseID uint) (float64, error) {
	var avg *float64
	err := db.Model(&catalog.CourseReview{}).
		Where("course_id = ?", courseID).
		Select("AVG(rating)").
		Scan(&avg).Error
	if err != nil {
		return 0, err
	}
	if avg == nil {
		return 0, nil
	}
	return RoundRating(*avg), nil
}
