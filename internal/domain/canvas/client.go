package canvas

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Client is a thin LMS REST client. Only the three endpoints the importer
// needs are wrapped.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// Course is the subset of the LMS course object the importer reads.
type Course struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	OriginalName string `json:"original_name"`
	CourseCode   string `json:"course_code"`
	CreatedAt    string `json:"created_at"`
	SyllabusBody string `json:"syllabus_body"`
}

// DisplayName prefers the pre-nickname course name when present.
func (c Course) DisplayName() string {
	if c.OriginalName != "" {
		return c.OriginalName
	}
	return c.Name
}

type Assignment struct {
	ID    int64      `json:"id"`
	Name  string     `json:"name"`
	DueAt *time.Time `json:"due_at"`
}

func (c *Client) Courses(ctx context.Context) ([]Course, error) {
	var courses []Course
	q := url.Values{}
	q.Add("include[]", "syllabus_body")
	q.Set("per_page", "50")
	if err := c.get(ctx, "/api/v1/courses", q, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

func (c *Client) Course(ctx context.Context, id int64) (*Course, error) {
	var course Course
	q := url.Values{}
	q.Add("include[]", "syllabus_body")
	if err := c.get(ctx, "/api/v1/courses/"+strconv.FormatInt(id, 10), q, &course); err != nil {
		return nil, err
	}
	return &course, nil
}

func (c *Client) Assignments(ctx context.Context, courseID int64) ([]Assignment, error) {
	var assignments []Assignment
	q := url.Values{}
	q.Set("per_page", "20")
	path := fmt.Sprintf("/api/v1/courses/%d/assignments", courseID)
	if err := c.get(ctx, path, q, &assignments); err != nil {
		return nil, err
	}
	return assignments, nil
}

func (c *Client) get(ctx context.Context, path string, q url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d for %s", ErrUnreachable, resp.StatusCode, path)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
