package engagementController

import (
	"errors"
	"log"
	"time"

	"elm/database"
	"elm/middleware"
	"elm/models/catalog"
	"elm/services"
	"elm/validators"

	"github.com/gofiber/fiber/v2"
)

// GetCourseQuizzes lists the quizzes of a course with questions and answers.
// Correct-answer flags are stripped for non-admin callers.
func GetCourseQuizzes(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)
	db := database.Database.Db

	var quizzes []catalog.Quiz
	if err := db.Where("course_id = ?", courseID).Preload("Questions.Answers").Find(&quizzes).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch quizzes!", nil)
	}

	if role, _ := c.Locals("userRole").(string); role != "admin" {
		for qi := range quizzes {
			for qqi := range quizzes[qi].Questions {
				for ai := range quizzes[qi].Questions[qqi].Answers {
					quizzes[qi].Questions[qqi].Answers[ai].IsCorrect = false
				}
			}
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quizzes fetched successfully.", quizzes)
}

// SubmitQuizAttempt grades and records the single attempt a user gets per quiz
func SubmitQuizAttempt(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	quizID := c.Locals("quizID").(uint)
	reqData, ok := c.Locals("validatedSubmitAttempt").(*validators.SubmitAttemptRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var quiz catalog.Quiz
	if err := db.Preload("Questions.Answers").First(&quiz, quizID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
	}

	// One attempt per (user, quiz)
	var existing catalog.QuizAttempt
	if err := db.Where("user_id = ? AND quiz_id = ?", userID, quizID).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Quiz already attempted!", nil)
	}

	score := 0
	for _, question := range quiz.Questions {
		chosen, answered := reqData.Answers[question.ID]
		if !answered {
			continue
		}
		for _, answer := range question.Answers {
			if answer.ID == chosen && answer.IsCorrect {
				score++
				break
			}
		}
	}

	attempt := catalog.QuizAttempt{
		UserID:      userID,
		QuizID:      quiz.ID,
		Score:       score,
		CompletedAt: time.Now().UTC(),
	}
	if err := services.RecordQuizAttempt(db, &attempt); err != nil {
		// The unique index catches a concurrent duplicate submission
		if errors.Is(err, services.ErrDuplicateAttempt) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Quiz already attempted!", nil)
		}
		log.Printf("Error recording quiz attempt: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record attempt!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Quiz attempt recorded.", fiber.Map{
		"attempt":   attempt,
		"questions": len(quiz.Questions),
	})
}
