package upload

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"syllabushub/internal/domain/course"
	"syllabushub/internal/domain/professor"
	"syllabushub/internal/storage"
)

// AccountDirectory resolves authenticated account ids to display data. It is
// satisfied by the auth repository.
type AccountDirectory interface {
	GetAccount(ctx context.Context, id int64) (name, email string, err error)
}

// CourseDirectory is the slice of the course repository the duplicate probe
// needs.
type CourseDirectory interface {
	GetBySubjectNumber(ctx context.Context, subject string, number int) (*course.Course, error)
}

type Service struct {
	repo     Repository
	profs    professor.Repository
	accounts AccountDirectory
	courses  CourseDirectory
	store    storage.ObjectStore
	log      *zap.Logger
	now      func() time.Time
}

func NewService(repo Repository, profs professor.Repository, accounts AccountDirectory, courses CourseDirectory, store storage.ObjectStore, log *zap.Logger) *Service {
	return &Service{
		repo:     repo,
		profs:    profs,
		accounts: accounts,
		courses:  courses,
		store:    store,
		log:      log,
		now:      time.Now,
	}
}

// CreateInput carries everything the create saga needs besides the identity
// of the caller.
type CreateInput struct {
	CourseID    int64
	Semester    string
	Year        int
	CRN         *int
	Filename    string
	Data        []byte
	ContentType string
	TagIDs      []int64
	Imported    bool
}

// Create runs the upload saga for an authenticated account: store the blob,
// then insert the row and its tag links in one transaction, and remove the
// blob again if the transaction fails. The blob is written first so a row
// never points at a missing object.
func (s *Service) Create(ctx context.Context, accountID int64, in CreateInput) (*CreateResponse, error) {
	if accountID == 0 {
		return nil, ErrUnauthenticated
	}
	if err := validateInput(in); err != nil {
		return nil, err
	}
	prof, err := s.resolveProfessor(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return s.create(ctx, prof.ID, in)
}

// CreateForProfessor runs the same saga for an already-resolved professor
// row. The Canvas importer uses this after find-or-create by display name.
func (s *Service) CreateForProfessor(ctx context.Context, professorID int64, in CreateInput) (*CreateResponse, error) {
	if professorID == 0 {
		return nil, ErrUnauthenticated
	}
	if err := validateInput(in); err != nil {
		return nil, err
	}
	return s.create(ctx, professorID, in)
}

func (s *Service) create(ctx context.Context, professorID int64, in CreateInput) (*CreateResponse, error) {
	key := s.blobKey(in.Filename, in.Imported)
	if err := s.store.Put(ctx, key, in.Data, in.ContentType); err != nil {
		return nil, &StoreError{Op: "put", Key: key, Err: err}
	}

	u := &Upload{
		CourseID:    in.CourseID,
		ProfessorID: professorID,
		Semester:    in.Semester,
		Year:        in.Year,
		CRN:         in.CRN,
		FileURL:     s.store.PublicURL(key),
		FileKey:     key,
	}

	if err := s.repo.CreateWithTags(ctx, u, in.TagIDs); err != nil {
		// Compensate: the blob must not outlive the failed insert. A failed
		// removal is logged and the record error still wins.
		if rmErr := s.store.Remove(ctx, key); rmErr != nil {
			s.log.Error("upload compensation failed, orphaned blob",
				zap.String("key", key), zap.Error(rmErr))
		} else {
			s.log.Warn("upload rolled back, blob removed",
				zap.String("key", key), zap.Error(err))
		}
		if errors.Is(err, ErrDuplicate) {
			return nil, err
		}
		return nil, &RecordError{Err: err}
	}

	return &CreateResponse{UploadID: u.ID, FileURL: u.FileURL}, nil
}

// Edit updates metadata and replaces the tag set in one transaction. The
// stored file is immutable; crn is cleared because it described the original
// section only.
func (s *Service) Edit(ctx context.Context, accountID, uploadID int64, req EditRequest) error {
	if accountID == 0 {
		return ErrUnauthenticated
	}
	if err := validateMeta(req.Semester, req.Year); err != nil {
		return err
	}
	u, err := s.ownedUpload(ctx, accountID, uploadID)
	if err != nil {
		return err
	}

	u.CourseID = req.CourseID
	u.Semester = req.Semester
	u.Year = req.Year
	if err := s.repo.UpdateWithTags(ctx, u, req.TagIDs); err != nil {
		if errors.Is(err, ErrDuplicate) {
			return err
		}
		return &RecordError{Err: err}
	}
	return nil
}

// Delete removes the blob first, then the row and its tag links. A failed
// blob removal aborts so the row never references a missing object.
func (s *Service) Delete(ctx context.Context, accountID, uploadID int64) error {
	if accountID == 0 {
		return ErrUnauthenticated
	}
	u, err := s.ownedUpload(ctx, accountID, uploadID)
	if err != nil {
		return err
	}

	if err := s.store.Remove(ctx, u.FileKey); err != nil {
		return &StoreError{Op: "remove", Key: u.FileKey, Err: err}
	}
	if err := s.repo.DeleteWithTags(ctx, u.ID); err != nil {
		s.log.Error("upload row delete failed after blob removal",
			zap.Int64("upload_id", u.ID), zap.Error(err))
		return &RecordError{Err: err}
	}
	return nil
}

// Detail is an upload with its tag ids attached.
type Detail struct {
	Upload
	TagIDs []int64 `json:"tag_ids"`
}

func (s *Service) Get(ctx context.Context, id int64) (*Detail, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	tagIDs, err := s.repo.GetTagIDs(ctx, u.ID)
	if err != nil {
		return nil, err
	}
	return &Detail{Upload: *u, TagIDs: tagIDs}, nil
}

func (s *Service) Search(ctx context.Context, f SearchFilter) ([]Upload, error) {
	return s.repo.Search(ctx, f)
}

// Check is the duplicate probe: does a syllabus already exist for this
// course and term.
func (s *Service) Check(ctx context.Context, req CheckRequest) (*CheckResponse, error) {
	c, err := s.courses.GetBySubjectNumber(ctx, strings.ToUpper(req.Subject), req.Number)
	if err != nil {
		if errors.Is(err, course.ErrNotFound) {
			return &CheckResponse{Upload: false}, nil
		}
		return nil, err
	}
	u, err := s.repo.FindExisting(ctx, c.ID, req.Semester, req.Year)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return &CheckResponse{Upload: false}, nil
		}
		return nil, err
	}
	return &CheckResponse{Upload: true, UploadID: &u.ID}, nil
}

// ResolveCourseID maps a subject/number pair to the catalog row id.
func (s *Service) ResolveCourseID(ctx context.Context, subject string, number int) (int64, error) {
	c, err := s.courses.GetBySubjectNumber(ctx, strings.ToUpper(subject), number)
	if err != nil {
		if errors.Is(err, course.ErrNotFound) {
			return 0, ErrNotFound
		}
		return 0, err
	}
	return c.ID, nil
}

func (s *Service) resolveProfessor(ctx context.Context, accountID int64) (*professor.Professor, error) {
	prof, err := s.profs.GetByUserID(ctx, accountID)
	if err == nil {
		return prof, nil
	}
	if !errors.Is(err, professor.ErrNotFound) {
		return nil, err
	}

	// First upload by this account: create the professor row from account
	// display data and link it by user id.
	name, email, err := s.accounts.GetAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	prof = &professor.Professor{Name: name, UserID: &accountID}
	if email != "" {
		prof.Email = &email
	}
	if err := s.profs.Create(ctx, prof); err != nil {
		return nil, err
	}
	return prof, nil
}

func (s *Service) ownedUpload(ctx context.Context, accountID, uploadID int64) (*Upload, error) {
	u, err := s.repo.GetByID(ctx, uploadID)
	if err != nil {
		return nil, err
	}
	if u.Professor.UserID == nil || *u.Professor.UserID != accountID {
		return nil, ErrNotOwner
	}
	return u, nil
}

func (s *Service) blobKey(filename string, imported bool) string {
	marker := ""
	if imported {
		marker = "IMPORT-"
	}
	return fmt.Sprintf("course_syllabuses/%s%d-%s", marker, s.now().UnixNano(), Sanitize(filename))
}

func validateInput(in CreateInput) error {
	if err := validateMeta(in.Semester, in.Year); err != nil {
		return err
	}
	if len(in.Data) == 0 || in.Filename == "" {
		return ErrNoFile
	}
	return nil
}

func validateMeta(semester string, year int) error {
	if !ValidSemester(semester) {
		return ErrInvalidSemester
	}
	if year < 2000 || year > 2100 {
		return ErrInvalidYear
	}
	return nil
}
