package upload

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"syllabushub/internal/domain/course"
	"syllabushub/internal/domain/professor"
)

// Mock upload repository implementing the interface
type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) CreateWithTags(ctx context.Context, u *Upload, tagIDs []int64) error {
	args := m.Called(ctx, u, tagIDs)
	return args.Error(0)
}

func (m *mockRepo) GetByID(ctx context.Context, id int64) (*Upload, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Upload), args.Error(1)
}

func (m *mockRepo) GetTagIDs(ctx context.Context, uploadID int64) ([]int64, error) {
	args := m.Called(ctx, uploadID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func (m *mockRepo) UpdateWithTags(ctx context.Context, u *Upload, tagIDs []int64) error {
	args := m.Called(ctx, u, tagIDs)
	return args.Error(0)
}

func (m *mockRepo) DeleteWithTags(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockRepo) Search(ctx context.Context, f SearchFilter) ([]Upload, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Upload), args.Error(1)
}

func (m *mockRepo) FindExisting(ctx context.Context, courseID int64, semester string, year int) (*Upload, error) {
	args := m.Called(ctx, courseID, semester, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Upload), args.Error(1)
}

// Mock professor repository
type mockProfRepo struct {
	mock.Mock
}

func (m *mockProfRepo) Create(ctx context.Context, p *professor.Professor) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *mockProfRepo) GetByID(ctx context.Context, id int64) (*professor.Professor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*professor.Professor), args.Error(1)
}

func (m *mockProfRepo) GetByUserID(ctx context.Context, userID int64) (*professor.Professor, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*professor.Professor), args.Error(1)
}

func (m *mockProfRepo) FindOrCreateByName(ctx context.Context, name string) (*professor.Professor, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*professor.Professor), args.Error(1)
}

func (m *mockProfRepo) Names(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

type mockAccounts struct {
	mock.Mock
}

func (m *mockAccounts) GetAccount(ctx context.Context, id int64) (string, string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.String(1), args.Error(2)
}

type mockCourses struct {
	mock.Mock
}

func (m *mockCourses) GetBySubjectNumber(ctx context.Context, subject string, number int) (*course.Course, error) {
	args := m.Called(ctx, subject, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*course.Course), args.Error(1)
}

// fakeStore records every blob operation in order.
type fakeStore struct {
	puts       []string
	removes    []string
	failPut    bool
	failRemove bool
}

func (f *fakeStore) Put(ctx context.Context, key string, data []byte, contentType string) error {
	if f.failPut {
		return errors.New("store unavailable")
	}
	f.puts = append(f.puts, key)
	return nil
}

func (f *fakeStore) Remove(ctx context.Context, key string) error {
	if f.failRemove {
		return errors.New("store unavailable")
	}
	f.removes = append(f.removes, key)
	return nil
}

func (f *fakeStore) PublicURL(key string) string {
	return "https://cdn.test/" + key
}

func ptr64(v int64) *int64 { return &v }

func newTestService(repo *mockRepo, profs *mockProfRepo, accounts *mockAccounts, courses *mockCourses, store *fakeStore) *Service {
	return NewService(repo, profs, accounts, courses, store, zap.NewNop())
}

func validInput() CreateInput {
	return CreateInput{
		CourseID:    1,
		Semester:    SemesterFall,
		Year:        2024,
		Filename:    "Syllabus (Fall 2024).pdf",
		Data:        []byte("%PDF fake"),
		ContentType: "application/pdf",
		TagIDs:      []int64{1, 2},
	}
}

func TestCreateUnauthenticated(t *testing.T) {
	repo := new(mockRepo)
	profs := new(mockProfRepo)
	store := &fakeStore{}
	svc := newTestService(repo, profs, new(mockAccounts), new(mockCourses), store)

	_, err := svc.Create(context.Background(), 0, validInput())

	assert.ErrorIs(t, err, ErrUnauthenticated)
	assert.Empty(t, store.puts)
	repo.AssertNotCalled(t, "CreateWithTags", mock.Anything, mock.Anything, mock.Anything)
	profs.AssertNotCalled(t, "GetByUserID", mock.Anything, mock.Anything)
}

func TestCreateInvalidSemester(t *testing.T) {
	repo := new(mockRepo)
	profs := new(mockProfRepo)
	store := &fakeStore{}
	svc := newTestService(repo, profs, new(mockAccounts), new(mockCourses), store)

	in := validInput()
	in.Semester = "Winter"
	_, err := svc.Create(context.Background(), 7, in)

	assert.ErrorIs(t, err, ErrInvalidSemester)
	assert.Empty(t, store.puts)
	profs.AssertNotCalled(t, "GetByUserID", mock.Anything, mock.Anything)
}

func TestCreateEmptyFile(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(new(mockRepo), new(mockProfRepo), new(mockAccounts), new(mockCourses), store)

	in := validInput()
	in.Data = nil
	_, err := svc.Create(context.Background(), 7, in)

	assert.ErrorIs(t, err, ErrNoFile)
	assert.Empty(t, store.puts)
}

func TestCreateSuccess(t *testing.T) {
	repo := new(mockRepo)
	profs := new(mockProfRepo)
	store := &fakeStore{}
	svc := newTestService(repo, profs, new(mockAccounts), new(mockCourses), store)

	profs.On("GetByUserID", mock.Anything, int64(7)).
		Return(&professor.Professor{ID: 3, Name: "Ada", UserID: ptr64(7)}, nil)
	repo.On("CreateWithTags", mock.Anything, mock.AnythingOfType("*upload.Upload"), []int64{1, 2}).
		Run(func(args mock.Arguments) {
			args.Get(1).(*Upload).ID = 42
		}).
		Return(nil)

	res, err := svc.Create(context.Background(), 7, validInput())

	require.NoError(t, err)
	assert.Equal(t, int64(42), res.UploadID)
	require.Len(t, store.puts, 1)
	key := store.puts[0]
	assert.True(t, strings.HasPrefix(key, "course_syllabuses/"), "key %q", key)
	assert.True(t, strings.HasSuffix(key, "-Syllabus_Fall_2024_.pdf"), "key %q", key)
	assert.Equal(t, "https://cdn.test/"+key, res.FileURL)
	assert.Empty(t, store.removes)
	repo.AssertExpectations(t)
}

func TestCreateFirstUploadCreatesProfessor(t *testing.T) {
	repo := new(mockRepo)
	profs := new(mockProfRepo)
	accounts := new(mockAccounts)
	store := &fakeStore{}
	svc := newTestService(repo, profs, accounts, new(mockCourses), store)

	profs.On("GetByUserID", mock.Anything, int64(7)).Return(nil, professor.ErrNotFound)
	accounts.On("GetAccount", mock.Anything, int64(7)).Return("Ada Lovelace", "ada@example.com", nil)
	profs.On("Create", mock.Anything, mock.MatchedBy(func(p *professor.Professor) bool {
		return p.Name == "Ada Lovelace" && p.UserID != nil && *p.UserID == 7
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*professor.Professor).ID = 11
	}).Return(nil)
	repo.On("CreateWithTags", mock.Anything, mock.MatchedBy(func(u *Upload) bool {
		return u.ProfessorID == 11
	}), mock.Anything).Return(nil)

	_, err := svc.Create(context.Background(), 7, validInput())

	require.NoError(t, err)
	profs.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestCreateRecordFailureRemovesBlob(t *testing.T) {
	repo := new(mockRepo)
	profs := new(mockProfRepo)
	store := &fakeStore{}
	svc := newTestService(repo, profs, new(mockAccounts), new(mockCourses), store)

	profs.On("GetByUserID", mock.Anything, int64(7)).
		Return(&professor.Professor{ID: 3, UserID: ptr64(7)}, nil)
	repo.On("CreateWithTags", mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("insert failed"))

	_, err := svc.Create(context.Background(), 7, validInput())

	var recErr *RecordError
	require.ErrorAs(t, err, &recErr)
	require.Len(t, store.puts, 1)
	require.Len(t, store.removes, 1)
	assert.Equal(t, store.puts[0], store.removes[0], "compensation must remove the blob it stored")
}

func TestCreateDuplicatePassesThrough(t *testing.T) {
	repo := new(mockRepo)
	profs := new(mockProfRepo)
	store := &fakeStore{}
	svc := newTestService(repo, profs, new(mockAccounts), new(mockCourses), store)

	profs.On("GetByUserID", mock.Anything, int64(7)).
		Return(&professor.Professor{ID: 3, UserID: ptr64(7)}, nil)
	repo.On("CreateWithTags", mock.Anything, mock.Anything, mock.Anything).Return(ErrDuplicate)

	_, err := svc.Create(context.Background(), 7, validInput())

	assert.ErrorIs(t, err, ErrDuplicate)
	require.Len(t, store.removes, 1, "duplicate insert still compensates the blob")
}

func TestCreateStoreFailure(t *testing.T) {
	repo := new(mockRepo)
	profs := new(mockProfRepo)
	store := &fakeStore{failPut: true}
	svc := newTestService(repo, profs, new(mockAccounts), new(mockCourses), store)

	profs.On("GetByUserID", mock.Anything, int64(7)).
		Return(&professor.Professor{ID: 3, UserID: ptr64(7)}, nil)

	_, err := svc.Create(context.Background(), 7, validInput())

	var storeErr *StoreError
	require.ErrorAs(t, err, &storeErr)
	assert.Equal(t, "put", storeErr.Op)
	repo.AssertNotCalled(t, "CreateWithTags", mock.Anything, mock.Anything, mock.Anything)
}

func TestEditReplacesTags(t *testing.T) {
	repo := new(mockRepo)
	store := &fakeStore{}
	svc := newTestService(repo, new(mockProfRepo), new(mockAccounts), new(mockCourses), store)

	existing := &Upload{
		ID:        42,
		CourseID:  1,
		Semester:  SemesterFall,
		Year:      2024,
		FileKey:   "course_syllabuses/123-x.pdf",
		Professor: professor.Professor{ID: 3, UserID: ptr64(7)},
	}
	repo.On("GetByID", mock.Anything, int64(42)).Return(existing, nil)
	repo.On("UpdateWithTags", mock.Anything, mock.MatchedBy(func(u *Upload) bool {
		return u.ID == 42 && u.CourseID == 2 && u.Semester == SemesterSpring && u.Year == 2025
	}), []int64{2, 3}).Return(nil)

	err := svc.Edit(context.Background(), 7, 42, EditRequest{
		CourseID: 2,
		Semester: SemesterSpring,
		Year:     2025,
		TagIDs:   []int64{2, 3},
	})

	require.NoError(t, err)
	assert.Empty(t, store.puts, "edit never touches the blob")
	assert.Empty(t, store.removes)
	repo.AssertExpectations(t)
}

func TestEditNotOwner(t *testing.T) {
	repo := new(mockRepo)
	svc := newTestService(repo, new(mockProfRepo), new(mockAccounts), new(mockCourses), &fakeStore{})

	repo.On("GetByID", mock.Anything, int64(42)).Return(&Upload{
		ID:        42,
		Professor: professor.Professor{ID: 3, UserID: ptr64(9)},
	}, nil)

	err := svc.Edit(context.Background(), 7, 42, EditRequest{
		CourseID: 2, Semester: SemesterSpring, Year: 2025,
	})

	assert.ErrorIs(t, err, ErrNotOwner)
	repo.AssertNotCalled(t, "UpdateWithTags", mock.Anything, mock.Anything, mock.Anything)
}

func TestEditUnlinkedProfessorIsNotOwner(t *testing.T) {
	repo := new(mockRepo)
	svc := newTestService(repo, new(mockProfRepo), new(mockAccounts), new(mockCourses), &fakeStore{})

	// Imported uploads have professor rows without a linked account.
	repo.On("GetByID", mock.Anything, int64(42)).Return(&Upload{
		ID:        42,
		Professor: professor.Professor{ID: 3},
	}, nil)

	err := svc.Edit(context.Background(), 7, 42, EditRequest{
		CourseID: 2, Semester: SemesterSpring, Year: 2025,
	})

	assert.ErrorIs(t, err, ErrNotOwner)
}

func TestDeleteRemovesBlobThenRow(t *testing.T) {
	repo := new(mockRepo)
	store := &fakeStore{}
	svc := newTestService(repo, new(mockProfRepo), new(mockAccounts), new(mockCourses), store)

	repo.On("GetByID", mock.Anything, int64(42)).Return(&Upload{
		ID:        42,
		FileKey:   "course_syllabuses/123-x.pdf",
		Professor: professor.Professor{ID: 3, UserID: ptr64(7)},
	}, nil)
	repo.On("DeleteWithTags", mock.Anything, int64(42)).
		Run(func(args mock.Arguments) {
			require.Len(t, store.removes, 1, "blob removal must happen before the row delete")
		}).
		Return(nil)

	err := svc.Delete(context.Background(), 7, 42)

	require.NoError(t, err)
	assert.Equal(t, []string{"course_syllabuses/123-x.pdf"}, store.removes)
	repo.AssertExpectations(t)
}

func TestDeleteStoreFailureKeepsRow(t *testing.T) {
	repo := new(mockRepo)
	store := &fakeStore{failRemove: true}
	svc := newTestService(repo, new(mockProfRepo), new(mockAccounts), new(mockCourses), store)

	repo.On("GetByID", mock.Anything, int64(42)).Return(&Upload{
		ID:        42,
		FileKey:   "course_syllabuses/123-x.pdf",
		Professor: professor.Professor{ID: 3, UserID: ptr64(7)},
	}, nil)

	err := svc.Delete(context.Background(), 7, 42)

	var storeErr *StoreError
	require.ErrorAs(t, err, &storeErr)
	repo.AssertNotCalled(t, "DeleteWithTags", mock.Anything, mock.Anything)
}

func TestCheck(t *testing.T) {
	repo := new(mockRepo)
	courses := new(mockCourses)
	svc := newTestService(repo, new(mockProfRepo), new(mockAccounts), courses, &fakeStore{})

	courses.On("GetBySubjectNumber", mock.Anything, "CS", 1301).
		Return(&course.Course{ID: 5, CourseSubject: "CS", CourseNumber: 1301}, nil)
	repo.On("FindExisting", mock.Anything, int64(5), SemesterFall, 2024).
		Return(&Upload{ID: 42}, nil)

	res, err := svc.Check(context.Background(), CheckRequest{
		Semester: SemesterFall, Year: 2024, Subject: "cs", Number: 1301,
	})

	require.NoError(t, err)
	assert.True(t, res.Upload)
	require.NotNil(t, res.UploadID)
	assert.Equal(t, int64(42), *res.UploadID)
}

func TestCheckNoUpload(t *testing.T) {
	repo := new(mockRepo)
	courses := new(mockCourses)
	svc := newTestService(repo, new(mockProfRepo), new(mockAccounts), courses, &fakeStore{})

	courses.On("GetBySubjectNumber", mock.Anything, "CS", 1301).
		Return(&course.Course{ID: 5}, nil)
	repo.On("FindExisting", mock.Anything, int64(5), SemesterFall, 2024).
		Return(nil, ErrNotFound)

	res, err := svc.Check(context.Background(), CheckRequest{
		Semester: SemesterFall, Year: 2024, Subject: "CS", Number: 1301,
	})

	require.NoError(t, err)
	assert.False(t, res.Upload)
	assert.Nil(t, res.UploadID)
}
