package upload

// CreateRequest carries the multipart form fields that accompany the file.
type CreateRequest struct {
	CourseID int64   `form:"course_id" binding:"required"`
	Semester string  `form:"semester" binding:"required"`
	Year     int     `form:"year" binding:"required"`
	TagIDs   []int64 `form:"tag_ids"`
}

type EditRequest struct {
	CourseID int64   `json:"course_id" binding:"required"`
	Semester string  `json:"semester" binding:"required"`
	Year     int     `json:"year" binding:"required"`
	TagIDs   []int64 `json:"tag_ids"`
}

type CreateResponse struct {
	UploadID int64  `json:"upload_id"`
	FileURL  string `json:"fileurl"`
}

// SearchFilter holds the optional query parameters of the search endpoint.
// Zero values mean "not filtered".
type SearchFilter struct {
	ProfessorName string
	Subject       string
	Number        int
	Semester      string
	Year          int
	TagID         int64
	CourseName    string
	Description   string
}

type CheckRequest struct {
	Semester string `json:"semester" binding:"required"`
	Year     int    `json:"year" binding:"required"`
	Subject  string `json:"subject" binding:"required"`
	Number   int    `json:"number" binding:"required"`
}

type CheckResponse struct {
	Upload   bool   `json:"upload"`
	UploadID *int64 `json:"upload_id,omitempty"`
}
