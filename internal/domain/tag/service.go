package tag

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

type Service struct {
	repo   Repository
	tagger *Tagger
	client *http.Client
}

func NewService(repo Repository) *Service {
	return &Service{
		repo:   repo,
		tagger: NewTagger(),
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

func (s *Service) List(ctx context.Context) ([]Tag, error) {
	return s.repo.List(ctx)
}

// GenerateFromBytes tags a syllabus body and resolves each decision against
// the reference tag rows.
func (s *Service) GenerateFromBytes(ctx context.Context, data []byte) (map[string]Result, map[string]string, error) {
	if len(data) == 0 {
		return nil, nil, ErrNoFile
	}

	text, err := ExtractText(data)
	if err != nil {
		return nil, nil, err
	}

	results, reasoning := s.tagger.Generate(text)

	ids, err := s.repo.IDsByName(ctx)
	if err != nil {
		return nil, nil, err
	}
	for name, r := range results {
		if id, ok := ids[name]; ok {
			idCopy := id
			r.DBID = &idCopy
			results[name] = r
		}
	}
	return results, reasoning, nil
}

// GenerateFromURL downloads the blob first; used when the syllabus is
// already stored and the caller only has its public URL.
func (s *Service) GenerateFromURL(ctx context.Context, fileURL string) (map[string]Result, map[string]string, error) {
	if fileURL == "" {
		return nil, nil, ErrNoFile
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fileURL, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrDownloadFailed, err)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrDownloadFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, nil, fmt.Errorf("%w: status %d", ErrDownloadFailed, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, 50<<20))
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrDownloadFailed, err)
	}
	return s.GenerateFromBytes(ctx, data)
}
