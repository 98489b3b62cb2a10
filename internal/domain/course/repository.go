package course

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type Repository interface {
	Subjects(ctx context.Context) ([]string, error)
	NumbersBySubject(ctx context.Context, subject string) (map[int64]int, error)
	GetBySubjectNumber(ctx context.Context, subject string, number int) (*Course, error)
	List(ctx context.Context, subject string) ([]Course, error)
	All(ctx context.Context) ([]Course, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Subjects(ctx context.Context) ([]string, error) {
	var subjects []string
	err := r.db.WithContext(ctx).Model(&Course{}).
		Distinct("course_subject").Order("course_subject").
		Pluck("course_subject", &subjects).Error
	return subjects, err
}

func (r *repository) NumbersBySubject(ctx context.Context, subject string) (map[int64]int, error) {
	var courses []Course
	err := r.db.WithContext(ctx).
		Select("id", "course_number").
		Where("course_subject = ?", subject).
		Order("course_number").
		Find(&courses).Error
	if err != nil {
		return nil, err
	}
	numbers := make(map[int64]int, len(courses))
	for _, c := range courses {
		numbers[c.ID] = c.CourseNumber
	}
	return numbers, nil
}

func (r *repository) GetBySubjectNumber(ctx context.Context, subject string, number int) (*Course, error) {
	var c Course
	err := r.db.WithContext(ctx).
		Where("course_subject = ? AND course_number = ?", subject, number).
		First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return &c, err
}

func (r *repository) List(ctx context.Context, subject string) ([]Course, error) {
	q := r.db.WithContext(ctx).Order("course_subject, course_number")
	if subject != "" {
		q = q.Where("course_subject = ?", subject)
	}
	var courses []Course
	err := q.Find(&courses).Error
	return courses, err
}

func (r *repository) All(ctx context.Context) ([]Course, error) {
	return r.List(ctx, "")
}
