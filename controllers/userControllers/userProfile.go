package userController

import (
	"encoding/json"
	"errors"
	"log"
	"time"

	"elm/database"
	"elm/middleware"
	"elm/models"
	"elm/services"
	"elm/validators"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// GetProfile returns the user together with the role-matching profile record
func GetProfile(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Preload("Country").Preload("City").Preload("Nationality").First(&user, userID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}
	user.Password = ""

	response := fiber.Map{"user": user}
	switch user.Role {
	case models.RoleStudent:
		var profile models.StudentProfile
		if err := db.Where("user_id = ?", user.ID).First(&profile).Error; err == nil {
			response["student_profile"] = profile
		}
	case models.RoleInstructor:
		var profile models.InstructorProfile
		if err := db.Where("user_id = ?", user.ID).First(&profile).Error; err == nil {
			response["instructor_profile"] = profile
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile fetched successfully.", response)
}

// UpdateProfile applies self-service profile edits. The role field is not
// reachable from here; role changes go through the admin endpoint.
func UpdateProfile(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	reqData, ok := c.Locals("validatedUpdateProfile").(*validators.UpdateProfileRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	updates := map[string]interface{}{}
	if reqData.Name != nil {
		updates["name"] = *reqData.Name
	}
	if reqData.Headline != nil {
		updates["headline"] = *reqData.Headline
	}
	if reqData.Phone1 != nil {
		updates["phone1"] = *reqData.Phone1
	}
	if reqData.Phone2 != nil {
		updates["phone2"] = *reqData.Phone2
	}
	if reqData.Gender != nil {
		updates["gender"] = *reqData.Gender
	}
	if reqData.DateOfBirth != nil {
		dob, err := time.Parse("2006-01-02", *reqData.DateOfBirth)
		if err == nil {
			updates["date_of_birth"] = dob
		}
	}
	if reqData.CountryID != nil {
		updates["country_id"] = *reqData.CountryID
	}
	if reqData.CityID != nil {
		// City must belong to the selected (or already stored) country
		countryID := user.CountryID
		if reqData.CountryID != nil {
			countryID = reqData.CountryID
		}
		if countryID != nil {
			var city models.City
			if err := db.Where("id = ? AND country_id = ?", *reqData.CityID, *countryID).First(&city).Error; err != nil {
				return middleware.JsonResponse(c, fiber.StatusUnprocessableEntity, false, "City does not belong to the selected country!", nil)
			}
		}
		updates["city_id"] = *reqData.CityID
	}
	if reqData.NationalityID != nil {
		updates["nationality_id"] = *reqData.NationalityID
	}

	if len(updates) > 0 {
		if err := db.Model(&user).Updates(updates).Error; err != nil {
			log.Printf("Error updating user %d: %v", userID, err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update profile!", nil)
		}
	}

	// Role-specific extras
	if user.Role == models.RoleInstructor && (reqData.Bio != nil || reqData.SocialLinks != nil) {
		profileUpdates := map[string]interface{}{}
		if reqData.Bio != nil {
			profileUpdates["bio"] = *reqData.Bio
		}
		if reqData.SocialLinks != nil {
			raw, err := json.Marshal(reqData.SocialLinks)
			if err == nil {
				profileUpdates["social_links"] = datatypes.JSON(raw)
			}
		}
		if err := db.Model(&models.InstructorProfile{}).Where("user_id = ?", user.ID).Updates(profileUpdates).Error; err != nil {
			log.Printf("Error updating instructor profile %d: %v", userID, err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update profile!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile updated successfully.", nil)
}

// UpdateUserRole is the admin write path that changes a user's role. The role
// update and the profile swap commit in one transaction; token revocation runs
// after the commit, so stale tokens cannot keep the old access level.
func UpdateUserRole(c *fiber.Ctx) error {
	targetID, ok := c.Locals("targetUserId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user ID!", nil)
	}
	reqData, ok := c.Locals("validatedUpdateRole").(*validators.UpdateRoleRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.First(&user, targetID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to load user!", nil)
	}

	newRole := models.Role(reqData.Role)
	if user.Role == newRole {
		// No-op update: no profile churn, no token revocation
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Role unchanged.", fiber.Map{"role": user.Role})
	}

	// Role and profile change together or not at all
	if err := services.ChangeUserRole(db, &user, newRole); err != nil {
		log.Printf("Error changing role for user %d: %v", targetID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update role!", nil)
	}

	// Privilege level changed: every outstanding token is now stale
	if err := services.RevokeAllTokens(db, user.ID); err != nil {
		log.Printf("Error revoking tokens for user %d: %v", targetID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to revoke tokens!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Role updated successfully.", fiber.Map{"role": newRole})
}
