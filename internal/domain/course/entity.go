package course

// Course is read-only catalog data seeded from the scraped institution
// listing. Uploads reference courses by id.
type Course struct {
	ID            int64  `gorm:"column:id;primaryKey" json:"id"`
	CourseSubject string `gorm:"column:course_subject;uniqueIndex:idx_courses_subject_number" json:"course_subject"`
	CourseNumber  int    `gorm:"column:course_number;uniqueIndex:idx_courses_subject_number" json:"course_number"`
	Name          string `gorm:"column:name" json:"name"`
	Description   string `gorm:"column:description" json:"description"`
}

func (Course) TableName() string { return "courses" }
