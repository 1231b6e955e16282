package models

import (
	"time"

	"gorm.io/gorm"
)

// EventType categorizes marketing events
type EventType string

const (
	EventWebinar    EventType = "webinar"
	EventConference EventType = "conference"
	EventSeminar    EventType = "seminar"
	EventWorkshop   EventType = "workshop"
)

// Event is a webinar/conference entry shown on the landing pages
type Event struct {
	gorm.Model
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description" gorm:"type:text"`
	Type        EventType `json:"type" gorm:"type:varchar(20)"`
	Location    string    `json:"location"`
	Thumbnail   string    `json:"thumbnail"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`

	PhotoGallery []EventImage `json:"photo_gallery,omitempty" gorm:"foreignKey:EventID"`
}

// EventImage belongs to an Event photo gallery
type EventImage struct {
	gorm.Model
	EventID  uint   `json:"event_id" gorm:"index;not null"`
	Image    string `json:"image"`
	Position uint   `json:"position" gorm:"default:1"`

	Event Event `json:"-" gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE"`
}

// SitePageKind selects which static page a SitePage row belongs to
type SitePageKind string

const (
	PageAbout   SitePageKind = "about"
	PagePrivacy SitePageKind = "privacy"
	PageTerms   SitePageKind = "terms"
)

// SitePage is one ordered block of a static content page
type SitePage struct {
	gorm.Model
	Kind     SitePageKind `json:"kind" gorm:"type:varchar(20);index;not null"`
	Title    string       `json:"title" gorm:"not null"`
	Info     string       `json:"info" gorm:"type:text"`
	Position uint         `json:"position" gorm:"default:1"`
}
