package catalog

import "gorm.io/gorm"

// CourseSyllabus is one ordered syllabus entry of a course
type CourseSyllabus struct {
	gorm.Model
	CourseID    uint   `json:"course_id" gorm:"index;not null"`
	Title       string `json:"title" gorm:"not null"`
	Description string `json:"description" gorm:"type:text"`
	Position    uint   `json:"position" gorm:"default:1"`

	Course Course `json:"-" gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`
}

// CourseLearningOutcome is a "what you will learn" bullet
type CourseLearningOutcome struct {
	gorm.Model
	CourseID uint   `json:"course_id" gorm:"index;not null"`
	Outcome  string `json:"outcome" gorm:"type:text;not null"`
	Position uint   `json:"position" gorm:"default:1"`

	Course Course `json:"-" gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`
}

// CourseRequirement is a prerequisite bullet
type CourseRequirement struct {
	gorm.Model
	CourseID    uint   `json:"course_id" gorm:"index;not null"`
	Requirement string `json:"requirement" gorm:"not null"`
	Position    uint   `json:"position" gorm:"default:1"`

	Course Course `json:"-" gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`
}

// CourseFAQ belongs to a Course
type CourseFAQ struct {
	gorm.Model
	CourseID uint   `json:"course_id" gorm:"index;not null"`
	Question string `json:"question" gorm:"not null"`
	Answer   string `json:"answer" gorm:"type:text"`
	Position uint   `json:"position" gorm:"default:1"` // frontend order

	Course Course `json:"-" gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`
}

// CourseSection is an ordered chapter of a course curriculum
type CourseSection struct {
	gorm.Model
	CourseID uint   `json:"course_id" gorm:"index;not null"`
	Title    string `json:"title" gorm:"not null"`
	Position uint   `json:"position" gorm:"default:1"`

	Course  Course         `json:"-" gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`
	Lessons []CourseLesson `json:"lessons,omitempty" gorm:"foreignKey:SectionID"`
}

// CourseLesson belongs to a CourseSection
type CourseLesson struct {
	gorm.Model
	SectionID uint   `json:"section_id" gorm:"index;not null"`
	Title     string `json:"title" gorm:"not null"`
	VideoURL  string `json:"video_url"`
	Content   string `json:"content" gorm:"type:text"`
	Position  uint   `json:"position" gorm:"default:1"`

	Section CourseSection `json:"-" gorm:"foreignKey:SectionID;constraint:OnDelete:CASCADE"`
}
