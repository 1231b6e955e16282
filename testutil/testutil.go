// Package testutil provides database fixtures for integration tests. Tests
// needing a real database are gated on TEST_POSTGRES_DSN and skipped when it
// is unset, so the unit suite stays runnable anywhere.
package testutil

import (
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"elm/database"
	"elm/models"
	"elm/models/catalog"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	once    sync.Once
	conn    *gorm.DB
	connErr error
)

// DB returns a migrated connection to the database named by TEST_POSTGRES_DSN.
// The connection is shared across the package; use Tx for isolation.
func DB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("TEST_POSTGRES_DSN not set, skipping database test")
	}

	once.Do(func() {
		conn, connErr = gorm.Open(postgres.Open(dsn), &gorm.Config{
			TranslateError: true,
			Logger:         logger.Default.LogMode(logger.Silent),
		})
		if connErr != nil {
			return
		}
		connErr = database.Migrate(conn)
	})
	if connErr != nil {
		t.Fatalf("test database setup: %v", connErr)
	}
	return conn
}

// Tx hands the test a transaction that is rolled back on cleanup, so fixtures
// never leak between tests.
func Tx(t *testing.T) *gorm.DB {
	t.Helper()

	tx := DB(t).Begin()
	if tx.Error != nil {
		t.Fatalf("begin transaction: %v", tx.Error)
	}
	t.Cleanup(func() {
		tx.Rollback()
	})
	return tx
}

// SeedUser inserts a user with the given role and a unique email.
func SeedUser(t *testing.T, tx *gorm.DB, role models.Role) *models.User {
	t.Helper()

	user := models.User{
		Name:     "Test User",
		Email:    fmt.Sprintf("user-%s@example.com", uuid.NewString()),
		Password: "not-a-real-hash",
		Role:     role,
	}
	if err := tx.Create(&user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return &user
}

// SeedCourse inserts a published course.
func SeedCourse(t *testing.T, tx *gorm.DB, title string) *catalog.Course {
	t.Helper()

	course := catalog.Course{
		Title:       title,
		Description: "fixture course",
		Price:       100,
		Status:      catalog.StatusPublished,
		Level:       catalog.LevelBeginner,
	}
	if err := tx.Create(&course).Error; err != nil {
		t.Fatalf("seed course: %v", err)
	}
	return &course
}

// SeedGroup inserts a group offering of the given course.
func SeedGroup(t *testing.T, tx *gorm.DB, courseID uint) *catalog.CourseGroup {
	t.Helper()

	group := catalog.CourseGroup{
		CourseID:  courseID,
		Price:     100,
		StartDate: time.Now().UTC(),
		EndDate:   time.Now().UTC().AddDate(0, 3, 0),
	}
	if err := tx.Create(&group).Error; err != nil {
		t.Fatalf("seed group: %v", err)
	}
	return &group
}

// SeedTrack inserts a track and links the given courses to it.
func SeedTrack(t *testing.T, tx *gorm.DB, title string, courses ...*catalog.Course) *catalog.Track {
	t.Helper()

	track := catalog.Track{
		Title:       title,
		Description: "fixture track",
		Price:       500,
	}
	if err := tx.Create(&track).Error; err != nil {
		t.Fatalf("seed track: %v", err)
	}
	for _, course := range courses {
		if err := tx.Model(&track).Association("Courses").Append(course); err != nil {
			t.Fatalf("link course %d to track: %v", course.ID, err)
		}
	}
	return &track
}
