package recommend

// Request mirrors the companion form: a job posting plus optional
// comma-separated skills from the user.
type Request struct {
	JobTitle       string `json:"jobTitle" binding:"required"`
	JobDescription string `json:"jobDescription"`
	UserSkills     string `json:"userSkills"`
}

type WeightedSkill struct {
	Skill  string  `json:"skill"`
	Weight float64 `json:"weight"`
}

// CourseMatch is one scored catalog course.
type CourseMatch struct {
	CourseID       string   `json:"course_id"`
	CourseName     string   `json:"course_name"`
	Major          string   `json:"major"`
	Level          string   `json:"level"`
	Score          float64  `json:"score"`
	MatchingSkills []string `json:"matching_skills"`
}

// Recommendations is the full response payload.
type Recommendations struct {
	JobTitle       string                   `json:"job_title"`
	RelevantMajors []string                 `json:"relevant_majors"`
	Skills         []WeightedSkill          `json:"skills"`
	TopCourses     []CourseMatch            `json:"top_courses"`
	BySkill        map[string][]CourseMatch `json:"by_skill"`
}
