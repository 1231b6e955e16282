package database

import (
	"fmt"
	"log"
	"os"

	"elm/config"
	"elm/models"
	"elm/models/billing"
	"elm/models/catalog"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DbInstance struct holds the database connection instance
type DbInstance struct {
	Db *gorm.DB
}

// Database is the global database instance
var Database DbInstance

// ConnectDb establishes a connection to PostgreSQL
func ConnectDb() {
	cfg := config.AppConfig
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
		os.Exit(2)
	}

	// Set up connection pooling
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get database instance: %v", err)
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(0)

	runMigrations(db)

	Database = DbInstance{Db: db}
}

// runMigrations performs database migrations
func runMigrations(db *gorm.DB) {
	log.Println("Running Migrations...")

	if err := Migrate(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	log.Println("Migrations completed successfully.")
}

// Migrate applies the schema for every model to the given connection
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Country{},
		&models.Nationality{},
		&models.City{},
		&models.User{},
		&models.StudentProfile{},
		&models.InstructorProfile{},
		&models.AuthToken{},
		&models.TalentRequest{},
		&models.Contact{},
		&models.Event{},
		&models.EventImage{},
		&models.SitePage{},
		&catalog.Category{},
		&catalog.Track{},
		&catalog.TrackFAQ{},
		&catalog.Course{},
		&catalog.CourseSyllabus{},
		&catalog.CourseLearningOutcome{},
		&catalog.CourseRequirement{},
		&catalog.CourseFAQ{},
		&catalog.CourseSection{},
		&catalog.CourseLesson{},
		&catalog.CourseGroup{},
		&catalog.TrackEnrollment{},
		&catalog.Enrollment{},
		&catalog.CourseReview{},
		&catalog.TrackCertificate{},
		&catalog.CourseCertificate{},
		&catalog.Quiz{},
		&catalog.QuizQuestion{},
		&catalog.QuizAnswer{},
		&catalog.QuizAttempt{},
		&billing.Payment{},
		&billing.Installment{},
	)
}
