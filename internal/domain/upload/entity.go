package upload

import (
	"time"

	"syllabushub/internal/domain/course"
	"syllabushub/internal/domain/professor"
)

const (
	SemesterSpring = "Spring"
	SemesterSummer = "Summer"
	SemesterFall   = "Fall"
)

func ValidSemester(s string) bool {
	return s == SemesterSpring || s == SemesterSummer || s == SemesterFall
}

// Upload is one shared syllabus: a stored blob plus its catalog metadata.
// FileKey records the blob path so deletion never has to re-derive it from
// the public URL.
type Upload struct {
	ID          int64               `gorm:"column:id;primaryKey" json:"id"`
	CourseID    int64               `gorm:"column:course_id;uniqueIndex:idx_uploads_course_term" json:"course_id"`
	Course      course.Course       `gorm:"foreignKey:CourseID" json:"course"`
	ProfessorID int64               `gorm:"column:professor_id" json:"professor_id"`
	Professor   professor.Professor `gorm:"foreignKey:ProfessorID" json:"professor"`
	Semester    string              `gorm:"column:semester;uniqueIndex:idx_uploads_course_term" json:"semester"`
	Year        int                 `gorm:"column:year;uniqueIndex:idx_uploads_course_term" json:"year"`
	CRN         *int                `gorm:"column:crn" json:"crn"`
	FileURL     string              `gorm:"column:fileurl" json:"fileurl"`
	FileKey     string              `gorm:"column:file_key" json:"-"`
	CreatedAt   time.Time           `gorm:"column:created_at" json:"created_at"`
}

func (Upload) TableName() string { return "uploads" }

// UploadTag links an upload to one reference tag. The set is replaced
// wholesale on edit and removed with the upload.
type UploadTag struct {
	ID       int64 `gorm:"column:id;primaryKey" json:"id"`
	UploadID int64 `gorm:"column:upload_id;index" json:"upload_id"`
	TagID    int64 `gorm:"column:tag_id" json:"tag_id"`
}

func (UploadTag) TableName() string { return "uploads_tags" }
