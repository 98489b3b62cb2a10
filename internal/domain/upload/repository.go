package upload

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type Repository interface {
	CreateWithTags(ctx context.Context, u *Upload, tagIDs []int64) error
	GetByID(ctx context.Context, id int64) (*Upload, error)
	GetTagIDs(ctx context.Context, uploadID int64) ([]int64, error)
	UpdateWithTags(ctx context.Context, u *Upload, tagIDs []int64) error
	DeleteWithTags(ctx context.Context, id int64) error
	Search(ctx context.Context, f SearchFilter) ([]Upload, error)
	FindExisting(ctx context.Context, courseID int64, semester string, year int) (*Upload, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// CreateWithTags inserts the upload row and all of its tag links in a single
// transaction. Either everything lands or nothing does, so a tag failure
// never strands a row.
func (r *repository) CreateWithTags(ctx context.Context, u *Upload, tagIDs []int64) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(u).Error; err != nil {
			return err
		}
		return insertTags(tx, u.ID, tagIDs)
	})
	if isUniqueViolation(err) {
		return ErrDuplicate
	}
	return err
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Upload, error) {
	var u Upload
	err := r.db.WithContext(ctx).
		Preload("Course").
		Preload("Professor").
		Where("id = ?", id).
		First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return &u, err
}

func (r *repository) GetTagIDs(ctx context.Context, uploadID int64) ([]int64, error) {
	var ids []int64
	err := r.db.WithContext(ctx).Model(&UploadTag{}).
		Where("upload_id = ?", uploadID).
		Order("tag_id").
		Pluck("tag_id", &ids).Error
	return ids, err
}

// UpdateWithTags applies the metadata changes and replaces the tag set
// wholesale, all in one transaction.
func (r *repository) UpdateWithTags(ctx context.Context, u *Upload, tagIDs []int64) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		updates := map[string]any{
			"course_id": u.CourseID,
			"semester":  u.Semester,
			"year":      u.Year,
			"crn":       nil,
		}
		if err := tx.Model(&Upload{}).Where("id = ?", u.ID).Updates(updates).Error; err != nil {
			return err
		}
		if err := tx.Where("upload_id = ?", u.ID).Delete(&UploadTag{}).Error; err != nil {
			return err
		}
		return insertTags(tx, u.ID, tagIDs)
	})
	if isUniqueViolation(err) {
		return ErrDuplicate
	}
	return err
}

func (r *repository) DeleteWithTags(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("upload_id = ?", id).Delete(&UploadTag{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&Upload{}).Error
	})
}

func (r *repository) Search(ctx context.Context, f SearchFilter) ([]Upload, error) {
	q := r.db.WithContext(ctx).Model(&Upload{}).
		Joins("JOIN courses ON courses.id = uploads.course_id").
		Joins("JOIN professors ON professors.id = uploads.professor_id").
		Preload("Course").
		Preload("Professor")

	if f.ProfessorName != "" {
		q = q.Where("professors.name = ?", f.ProfessorName)
	}
	if f.Subject != "" {
		q = q.Where("courses.course_subject = ?", strings.ToUpper(f.Subject))
	}
	if f.Number != 0 {
		q = q.Where("courses.course_number = ?", f.Number)
	}
	if f.Semester != "" {
		q = q.Where("uploads.semester = ?", f.Semester)
	}
	if f.Year != 0 {
		q = q.Where("uploads.year = ?", f.Year)
	}
	if f.TagID != 0 {
		q = q.Joins("JOIN uploads_tags ON uploads_tags.upload_id = uploads.id").
			Where("uploads_tags.tag_id = ?", f.TagID)
	}
	if f.CourseName != "" {
		q = q.Where("LOWER(courses.name) LIKE ?", "%"+strings.ToLower(f.CourseName)+"%")
	}
	if f.Description != "" {
		q = q.Where("LOWER(courses.description) LIKE ?", "%"+strings.ToLower(f.Description)+"%")
	}

	var uploads []Upload
	err := q.Order("uploads.created_at DESC").Find(&uploads).Error
	return uploads, err
}

func (r *repository) FindExisting(ctx context.Context, courseID int64, semester string, year int) (*Upload, error) {
	var u Upload
	err := r.db.WithContext(ctx).
		Where("course_id = ? AND semester = ? AND year = ?", courseID, semester, year).
		First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return &u, err
}

func insertTags(tx *gorm.DB, uploadID int64, tagIDs []int64) error {
	if len(tagIDs) == 0 {
		return nil
	}
	links := make([]UploadTag, 0, len(tagIDs))
	for _, tagID := range tagIDs {
		links = append(links, UploadTag{UploadID: uploadID, TagID: tagID})
	}
	return tx.Create(&links).Error
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "constraint failed")
}
