package canvas

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"syllabushub/internal/domain/professor"
	"syllabushub/internal/domain/upload"
)

var courseCodeRe = regexp.MustCompile(`\b([a-zA-Z]{2,4})[ -]?(\d{4})`)

type Service struct {
	client  *Client
	uploads *upload.Service
	profs   professor.Repository
	log     *zap.Logger
}

func NewService(client *Client, uploads *upload.Service, profs professor.Repository, log *zap.Logger) *Service {
	return &Service{client: client, uploads: uploads, profs: profs, log: log}
}

// CourseInfo is one LMS course resolved to a catalog term, annotated with
// whether a syllabus already exists for it.
type CourseInfo struct {
	CanvasCourseID int64  `json:"canvas_course_id"`
	Name           string `json:"name"`
	CreatedAt      string `json:"created_at"`
	Link           string `json:"link"`
	SemesterYear   int    `json:"semester_year"`
	Semester       string `json:"semester"`
	Code           string `json:"code"`
	Subject        string `json:"subject"`
	Number         int    `json:"number"`
	Upload         bool   `json:"upload"`
	UploadID       *int64 `json:"upload_id,omitempty"`
}

// Courses lists the caller's LMS courses grouped by year and semester. The
// term is inferred per course from assignment due dates, so each course
// needs one extra API round trip; those run concurrently.
func (s *Service) Courses(ctx context.Context) (map[int]map[string][]CourseInfo, error) {
	courses, err := s.client.Courses(ctx)
	if err != nil {
		return nil, err
	}

	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		infos   []CourseInfo
		workers = make(chan struct{}, 10)
	)
	for _, c := range courses {
		wg.Add(1)
		workers <- struct{}{}
		go func(c Course) {
			defer wg.Done()
			defer func() { <-workers }()

			info, err := s.resolveCourse(ctx, c)
			if err != nil {
				s.log.Debug("skipping lms course",
					zap.Int64("canvas_course_id", c.ID), zap.Error(err))
				return
			}
			mu.Lock()
			infos = append(infos, *info)
			mu.Unlock()
		}(c)
	}
	wg.Wait()

	for i := range infos {
		res, err := s.uploads.Check(ctx, upload.CheckRequest{
			Semester: infos[i].Semester,
			Year:     infos[i].SemesterYear,
			Subject:  infos[i].Subject,
			Number:   infos[i].Number,
		})
		if err != nil {
			return nil, err
		}
		infos[i].Upload = res.Upload
		infos[i].UploadID = res.UploadID
	}

	sort.Slice(infos, func(i, j int) bool { return infos[i].CanvasCourseID < infos[j].CanvasCourseID })

	grouped := map[int]map[string][]CourseInfo{}
	for _, info := range infos {
		if grouped[info.SemesterYear] == nil {
			grouped[info.SemesterYear] = map[string][]CourseInfo{}
		}
		grouped[info.SemesterYear][info.Semester] = append(grouped[info.SemesterYear][info.Semester], info)
	}
	return grouped, nil
}

// resolveCourse infers the term from the median assignment due date and
// parses subject/number out of the course code. Courses without assignments,
// due dates or a parseable code are skipped.
func (s *Service) resolveCourse(ctx context.Context, c Course) (*CourseInfo, error) {
	assignments, err := s.client.Assignments(ctx, c.ID)
	if err != nil {
		return nil, err
	}

	var dueDates []time.Time
	for _, a := range assignments {
		if a.DueAt != nil {
			dueDates = append(dueDates, *a.DueAt)
		}
		if len(dueDates) == 5 {
			break
		}
	}
	if len(dueDates) == 0 {
		return nil, fmt.Errorf("no dated assignments")
	}
	sort.Slice(dueDates, func(i, j int) bool { return dueDates[i].Before(dueDates[j]) })
	median := dueDates[len(dueDates)/2]

	semester := upload.SemesterFall
	if median.Month() <= 8 {
		semester = upload.SemesterSpring
	}

	m := courseCodeRe.FindStringSubmatch(c.CourseCode)
	if m == nil {
		return nil, fmt.Errorf("unparseable course code %q", c.CourseCode)
	}
	number, err := strconv.Atoi(m[2])
	if err != nil {
		return nil, err
	}

	return &CourseInfo{
		CanvasCourseID: c.ID,
		Name:           c.DisplayName(),
		CreatedAt:      c.CreatedAt,
		Link:           fmt.Sprintf("%s/courses/%d/assignments", s.client.baseURL, c.ID),
		SemesterYear:   median.Year(),
		Semester:       semester,
		Code:           c.CourseCode,
		Subject:        strings.ToUpper(m[1]),
		Number:         number,
	}, nil
}

// Syllabus fetches the raw syllabus body for one LMS course.
func (s *Service) Syllabus(ctx context.Context, courseID int64) (string, error) {
	c, err := s.client.Course(ctx, courseID)
	if err != nil {
		return "", err
	}
	if c.SyllabusBody == "" {
		return "", ErrNoSyllabus
	}
	return c.SyllabusBody, nil
}

// ImportRequest describes one course to pull out of the LMS.
type ImportRequest struct {
	CanvasCourseID int64  `json:"canvas_course_id" binding:"required"`
	Semester       string `json:"semester" binding:"required"`
	SemesterYear   int    `json:"semester_year" binding:"required"`
	Subject        string `json:"subject" binding:"required"`
	Number         int    `json:"number" binding:"required"`
	ProfessorName  string `json:"professor_name" binding:"required"`
}

// Import fetches the syllabus body and runs it through the upload pipeline:
// duplicate probe, blob store, row insert with compensation on failure. The
// professor row is found or created by display name since imported courses
// need no registered account.
func (s *Service) Import(ctx context.Context, req ImportRequest) (*upload.CreateResponse, error) {
	probe, err := s.uploads.Check(ctx, upload.CheckRequest{
		Semester: req.Semester,
		Year:     req.SemesterYear,
		Subject:  req.Subject,
		Number:   req.Number,
	})
	if err != nil {
		return nil, err
	}
	if probe.Upload {
		return nil, ErrAlreadyUploaded
	}

	courseID, err := s.uploads.ResolveCourseID(ctx, req.Subject, req.Number)
	if err != nil {
		if errors.Is(err, upload.ErrNotFound) {
			return nil, ErrUnknownCourse
		}
		return nil, err
	}

	syllabus, err := s.Syllabus(ctx, req.CanvasCourseID)
	if err != nil {
		return nil, err
	}

	prof, err := s.profs.FindOrCreateByName(ctx, req.ProfessorName)
	if err != nil {
		return nil, err
	}

	filename := fmt.Sprintf("syllabus_%s_%d_%s_%d.html",
		req.Semester, req.SemesterYear, strings.ToUpper(req.Subject), req.Number)

	res, err := s.uploads.CreateForProfessor(ctx, prof.ID, upload.CreateInput{
		CourseID:    courseID,
		Semester:    req.Semester,
		Year:        req.SemesterYear,
		Filename:    filename,
		Data:        []byte(syllabus),
		ContentType: "text/html",
		Imported:    true,
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("imported syllabus from lms",
		zap.Int64("canvas_course_id", req.CanvasCourseID),
		zap.Int64("upload_id", res.UploadID))
	return res, nil
}
