package professor

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("professor not found")

type Repository interface {
	Create(ctx context.Context, p *Professor) error
	GetByID(ctx context.Context, id int64) (*Professor, error)
	GetByUserID(ctx context.Context, userID int64) (*Professor, error)
	FindOrCreateByName(ctx context.Context, name string) (*Professor, error)
	Names(ctx context.Context) ([]string, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, p *Professor) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Professor, error) {
	var p Professor
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return &p, err
}

func (r *repository) GetByUserID(ctx context.Context, userID int64) (*Professor, error) {
	var p Professor
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return &p, err
}

func (r *repository) FindOrCreateByName(ctx context.Context, name string) (*Professor, error) {
	var p Professor
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&p).Error
	if err == nil {
		return &p, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	p = Professor{Name: name}
	if err := r.db.WithContext(ctx).Create(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) Names(ctx context.Context) ([]string, error) {
	var names []string
	err := r.db.WithContext(ctx).Model(&Professor{}).
		Distinct("name").Order("name").Pluck("name", &names).Error
	return names, err
}
