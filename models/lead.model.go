package models

import "gorm.io/gorm"

// TalentRequest is a hiring lead submitted by a company looking for graduates
type TalentRequest struct {
	gorm.Model
	UserName       string `json:"user_name" gorm:"not null"`
	Email          string `json:"email" gorm:"not null"`
	Phone          string `json:"phone"`
	CountryID      *uint  `json:"country_id"`
	CompanyName    string `json:"company_name" gorm:"not null"`
	Position       string `json:"position"`
	JobDescription string `json:"job_description" gorm:"type:text"`
	SalaryRange    string `json:"salary_range"`

	Country *Country `json:"country,omitempty" gorm:"foreignKey:CountryID;constraint:OnDelete:SET NULL"`
}

// Contact is a plain contact-form message
type Contact struct {
	gorm.Model
	Username    string `json:"username" gorm:"not null"`
	Email       string `json:"email" gorm:"not null"`
	Phone       string `json:"phone"`
	CompanyName string `json:"company_name"`
	Message     string `json:"message" gorm:"type:text"`
}
