package main

import (
	"context"
	"encoding/csv"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"syllabushub/internal/config"
	"syllabushub/internal/database"
	"syllabushub/internal/domain/auth"
	"syllabushub/internal/domain/course"
	"syllabushub/internal/domain/tag"
)

// Seeds the catalog from the scraped course CSV, the reference tags and a
// couple of demo accounts.
func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("migration failed: %v", err)
	}
	ctx := context.Background()

	if err := tag.NewRepository(db).EnsureSeed(ctx); err != nil {
		log.Fatalf("tag seed failed: %v", err)
	}
	log.Println("Seeded reference tags")

	n, err := seedCourses(db.WithContext(ctx), cfg.CoursesCSV)
	if err != nil {
		log.Fatalf("course seed failed: %v", err)
	}
	log.Printf("Seeded %d courses from %s", n, cfg.CoursesCSV)

	if err := seedUsers(db.WithContext(ctx)); err != nil {
		log.Fatalf("user seed failed: %v", err)
	}
	log.Println("Seeded demo accounts")
}

// seedCourses reads the semicolon-separated catalog export. Columns:
// Course ID ("CS 1301"), Course Name, Description.
func seedCourses(db *gorm.DB, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = ';'
	r.FieldsPerRecord = -1

	var courses []course.Course
	first := true
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Scraped data has the odd malformed line; skip it like the
			// downstream consumers do.
			continue
		}
		if first {
			first = false
			if strings.EqualFold(strings.TrimSpace(record[0]), "Course ID") {
				continue
			}
		}
		if len(record) < 2 {
			continue
		}

		subject, number, ok := splitCourseID(record[0])
		if !ok {
			continue
		}
		c := course.Course{
			CourseSubject: subject,
			CourseNumber:  number,
			Name:          strings.TrimSpace(record[1]),
		}
		if len(record) > 2 {
			c.Description = strings.TrimSpace(record[2])
		}
		courses = append(courses, c)
	}

	if len(courses) == 0 {
		return 0, nil
	}
	err = db.Clauses(clause.OnConflict{DoNothing: true}).
		CreateInBatches(&courses, 500).Error
	return len(courses), err
}

// splitCourseID parses "CS 1301" into its subject and number.
func splitCourseID(id string) (string, int, bool) {
	parts := strings.Fields(strings.TrimSpace(id))
	if len(parts) < 2 {
		return "", 0, false
	}
	number, err := strconv.Atoi(parts[1])
	if err != nil {
		return "", 0, false
	}
	return strings.ToUpper(parts[0]), number, true
}

func seedUsers(db *gorm.DB) error {
	demo := []struct {
		email, password, name, role string
	}{
		{"professor@example.com", "professor123", "Demo Professor", auth.RoleProfessor},
		{"student@example.com", "student123", "Demo Student", auth.RoleStudent},
	}

	for _, d := range demo {
		hash, err := bcrypt.GenerateFromPassword([]byte(d.password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		user := auth.User{
			Email:        d.email,
			PasswordHash: string(hash),
			Name:         d.name,
			Role:         d.role,
		}
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&user).Error; err != nil {
			return err
		}
	}
	return nil
}
