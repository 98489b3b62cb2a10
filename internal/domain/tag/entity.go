package tag

const (
	CategoryGradeDistribution  = "Grade Distribution"
	CategoryCourseRequirements = "Course Requirements"
	CategoryGradeRequirements  = "Grade Requirements"
)

// Tag is reference data: the fixed set of labels an upload can carry.
type Tag struct {
	ID       int64  `gorm:"column:id;primaryKey" json:"id"`
	Name     string `gorm:"column:name;uniqueIndex" json:"name"`
	Category string `gorm:"column:category" json:"category"`
}

func (Tag) TableName() string { return "tags" }

// Seed is the canonical tag set, aligned with what the tagger can emit.
func Seed() []Tag {
	return []Tag{
		{Name: "Project Heavy", Category: CategoryGradeDistribution},
		{Name: "Exam Heavy", Category: CategoryGradeDistribution},
		{Name: "Assignment Heavy", Category: CategoryGradeDistribution},
		{Name: "Needs Prerequisite", Category: CategoryCourseRequirements},
		{Name: "Attendance Required", Category: CategoryCourseRequirements},
	}
}
