package catalog

import (
	"time"

	"elm/models"

	"gorm.io/gorm"
)

// CourseLevel is the advertised difficulty of a course
type CourseLevel string

const (
	LevelBeginner     CourseLevel = "beginner"
	LevelIntermediate CourseLevel = "intermediate"
	LevelAdvanced     CourseLevel = "advanced"
)

// CourseStatus is the publication state of a course
type CourseStatus string

const (
	StatusDraft     CourseStatus = "draft"
	StatusPublished CourseStatus = "published"
	StatusArchived  CourseStatus = "archived"
)

// Course is a single sellable course; it may belong to several tracks
type Course struct {
	gorm.Model
	Title         string       `json:"title" gorm:"not null"`
	Excerpt       string       `json:"excerpt" gorm:"type:text"`
	Description   string       `json:"description" gorm:"type:text;not null"`
	Platform      string       `json:"platform"` // zoom, skype, meetings ...
	Price         float64      `json:"price" gorm:"type:decimal(10,2);default:0"`
	Currency      string       `json:"currency" gorm:"type:varchar(20);default:'EGP'"` // EGP, USD, SAR, AED
	Discount      float64      `json:"discount" gorm:"type:decimal(5,2);default:0"`    // percentage 0-100
	CategoryID    *uint        `json:"category_id"`
	Thumbnail     string       `json:"thumbnail"`
	Duration      uint         `json:"duration"` // minutes
	Level         CourseLevel  `json:"level" gorm:"type:varchar(20)"`
	Status        CourseStatus `json:"status" gorm:"type:varchar(20);default:'draft'"`
	CountdownDate *time.Time   `json:"countdown_date"` // advertising on landing page
	Featured      bool         `json:"featured" gorm:"default:false"`    // badge on course card
	BestSeller    bool         `json:"best_seller" gorm:"default:false"` // badge on course card

	Category *Category     `json:"category,omitempty" gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL"`
	Tracks   []Track       `json:"tracks,omitempty" gorm:"many2many:course_tracks"`
	Students []models.User `json:"students,omitempty" gorm:"many2many:course_students"` // denormalized roster, independent of enrollments

	Syllabuses   []CourseSyllabus        `json:"syllabuses,omitempty" gorm:"foreignKey:CourseID"`
	Outcomes     []CourseLearningOutcome `json:"outcomes,omitempty" gorm:"foreignKey:CourseID"`
	Sections     []CourseSection         `json:"sections,omitempty" gorm:"foreignKey:CourseID"`
	Requirements []CourseRequirement     `json:"requirements,omitempty" gorm:"foreignKey:CourseID"`
	FAQs         []CourseFAQ             `json:"faqs,omitempty" gorm:"foreignKey:CourseID"`
	Groups       []CourseGroup           `json:"groups,omitempty" gorm:"foreignKey:CourseID"`
}
