package tag

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	List(ctx context.Context) ([]Tag, error)
	IDsByName(ctx context.Context) (map[string]int64, error)
	EnsureSeed(ctx context.Context) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context) ([]Tag, error) {
	var tags []Tag
	err := r.db.WithContext(ctx).Order("id").Find(&tags).Error
	return tags, err
}

func (r *repository) IDsByName(ctx context.Context) (map[string]int64, error) {
	tags, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	ids := make(map[string]int64, len(tags))
	for _, t := range tags {
		ids[t.Name] = t.ID
	}
	return ids, nil
}

func (r *repository) EnsureSeed(ctx context.Context) error {
	seed := Seed()
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&seed).Error
}
