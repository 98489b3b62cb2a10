package database

import (
	"log"
	"strings"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"

	"syllabushub/internal/domain/auth"
	"syllabushub/internal/domain/course"
	"syllabushub/internal/domain/professor"
	"syllabushub/internal/domain/tag"
	"syllabushub/internal/domain/upload"
)

func Connect(dsn string) (*gorm.DB, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		log.Println("Connecting to PostgreSQL...")
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}

	log.Println("Using SQLite for local development:", dsn)

	return gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		&gorm.Config{},
	)
}

// Migrate brings the schema up to date for every persisted entity.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&auth.User{},
		&professor.Professor{},
		&course.Course{},
		&tag.Tag{},
		&upload.Upload{},
		&upload.UploadTag{},
	)
}
