package course

import (
	"context"
	"strings"
)

// ProfessorLister is satisfied by the professor repository; professor names
// are exposed alongside the catalog because the search form populates both
// dropdowns from the same place.
type ProfessorLister interface {
	Names(ctx context.Context) ([]string, error)
}

type Service struct {
	repo  Repository
	profs ProfessorLister
}

func NewService(repo Repository, profs ProfessorLister) *Service {
	return &Service{repo: repo, profs: profs}
}

func (s *Service) Subjects(ctx context.Context) ([]string, error) {
	return s.repo.Subjects(ctx)
}

func (s *Service) NumbersBySubject(ctx context.Context, subject string) (map[int64]int, error) {
	return s.repo.NumbersBySubject(ctx, subject)
}

// Details looks up a course; the subject is uppercased so "cs 1301" style
// links resolve.
func (s *Service) Details(ctx context.Context, subject string, number int) (*Course, error) {
	return s.repo.GetBySubjectNumber(ctx, strings.ToUpper(subject), number)
}

func (s *Service) List(ctx context.Context, subject string) ([]Course, error) {
	return s.repo.List(ctx, subject)
}

func (s *Service) ProfessorNames(ctx context.Context) ([]string, error) {
	return s.profs.Names(ctx)
}
