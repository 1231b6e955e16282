package catalog

import "gorm.io/gorm"

// Track bundles several courses sold and enrolled as a unit
type Track struct {
	gorm.Model
	Title       string  `json:"title" gorm:"not null"`
	Description string  `json:"description" gorm:"type:text"`
	Image       string  `json:"image"`
	Price       float64 `json:"price" gorm:"type:decimal(10,2);default:0"` // website price, each course group has its own
	Discount    float64 `json:"discount" gorm:"type:decimal(5,2);default:0"`

	Courses []Course `json:"courses,omitempty" gorm:"many2many:course_tracks"`
	FAQs    []TrackFAQ `json:"faqs,omitempty" gorm:"foreignKey:TrackID"`
}

// TrackFAQ belongs to a Track
type TrackFAQ struct {
	gorm.Model
	TrackID  uint   `json:"track_id" gorm:"index;not null"`
	Question string `json:"question" gorm:"not null"`
	Answer   string `json:"answer" gorm:"type:text"`
	Position uint   `json:"position" gorm:"default:1"` // frontend order

	Track Track `json:"-" gorm:"foreignKey:TrackID;constraint:OnDelete:CASCADE"`
}
