package catalog

import (
	"time"

	"elm/models"

	"gorm.io/gorm"
)

// Quiz belongs to a course
type Quiz struct {
	gorm.Model
	CourseID    uint   `json:"course_id" gorm:"index;not null"`
	Title       string `json:"title" gorm:"not null"`
	Description string `json:"description" gorm:"type:text"`

	Course    Course         `json:"-" gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`
	Questions []QuizQuestion `json:"questions,omitempty" gorm:"foreignKey:QuizID"`
}

// QuizQuestion belongs to a Quiz
type QuizQuestion struct {
	gorm.Model
	QuizID       uint   `json:"quiz_id" gorm:"index;not null"`
	QuestionText string `json:"question_text" gorm:"type:text;not null"`

	Quiz    Quiz         `json:"-" gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE"`
	Answers []QuizAnswer `json:"answers,omitempty" gorm:"foreignKey:QuestionID"`
}

// QuizAnswer belongs to a QuizQuestion
type QuizAnswer struct {
	gorm.Model
	QuestionID uint   `json:"question_id" gorm:"index;not null"`
	AnswerText string `json:"answer_text" gorm:"not null"`
	IsCorrect  bool   `json:"is_correct" gorm:"default:false"`

	Question QuizQuestion `json:"-" gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE"`
}

// QuizAttempt records the single attempt a user gets per quiz
type QuizAttempt struct {
	gorm.Model
	UserID      uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_attempt_user_quiz"`
	QuizID      uint      `json:"quiz_id" gorm:"not null;uniqueIndex:idx_attempt_user_quiz"`
	Score       int       `json:"score"`
	CompletedAt time.Time `json:"completed_at"`

	User models.User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Quiz Quiz        `json:"quiz,omitempty" gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE"`
}
