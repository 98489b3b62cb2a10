package recommend

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"syllabushub/internal/domain/course"
)

type staticCatalog struct {
	courses []course.Course
}

func (c *staticCatalog) All(ctx context.Context) ([]course.Course, error) {
	return c.courses, nil
}

func testCatalog() *staticCatalog {
	return &staticCatalog{courses: []course.Course{
		{ID: 1, CourseSubject: "CS", CourseNumber: 1301, Name: "Introduction to Computing in Python", Description: "Programming in Python for beginners."},
		{ID: 2, CourseSubject: "CS", CourseNumber: 7641, Name: "Machine Learning", Description: "Supervised and unsupervised machine learning."},
		{ID: 3, CourseSubject: "MGT", CourseNumber: 3000, Name: "Financial Accounting", Description: "Accounting fundamentals for managers."},
		{ID: 4, CourseSubject: "MATH", CourseNumber: 3670, Name: "Statistics and Applications", Description: "Probability and statistics with data analysis."},
	}}
}

func TestRelevantMajorsExactMatch(t *testing.T) {
	svc := NewService(testCatalog())
	majors := svc.RelevantMajors("Data Scientist")
	assert.Contains(t, majors, "Computer Science")
	assert.Contains(t, majors, "Mathematics")
	assert.NotContains(t, majors, "Business Administration")
}

func TestRelevantMajorsPartialMatch(t *testing.T) {
	svc := NewService(testCatalog())
	majors := svc.RelevantMajors("Senior Software Engineer")
	assert.Contains(t, majors, "Computer Science")
}

func TestRelevantMajorsFallback(t *testing.T) {
	svc := NewService(testCatalog())
	assert.Equal(t, defaultMajors, svc.RelevantMajors("Underwater Basket Weaver"))
}

func TestRecommendMissingTitle(t *testing.T) {
	svc := NewService(testCatalog())
	_, err := svc.Recommend(context.Background(), Request{JobTitle: "   "})
	assert.ErrorIs(t, err, ErrMissingTitle)
}

func TestRecommendFiltersByMajor(t *testing.T) {
	svc := NewService(testCatalog())

	recs, err := svc.Recommend(context.Background(), Request{
		JobTitle:       "Data Scientist",
		JobDescription: "Looking for python and machine learning experience with statistics.",
	})
	require.NoError(t, err)

	ids := make([]string, 0, len(recs.TopCourses))
	for _, c := range recs.TopCourses {
		ids = append(ids, c.CourseID)
	}
	assert.Contains(t, ids, "CS 1301")
	assert.Contains(t, ids, "CS 7641")
	assert.NotContains(t, ids, "MGT 3000", "business courses are outside data science majors")
}

func TestRecommendCourseLevels(t *testing.T) {
	svc := NewService(testCatalog())

	recs, err := svc.Recommend(context.Background(), Request{
		JobTitle:       "Data Scientist",
		JobDescription: "python and machine learning",
	})
	require.NoError(t, err)

	levels := map[string]string{}
	for _, c := range recs.TopCourses {
		levels[c.CourseID] = c.Level
	}
	assert.Equal(t, "Undergraduate", levels["CS 1301"])
	assert.Equal(t, "Graduate", levels["CS 7641"])
}

func TestRecommendUserSkills(t *testing.T) {
	svc := NewService(testCatalog())

	recs, err := svc.Recommend(context.Background(), Request{
		JobTitle:   "Data Scientist",
		UserSkills: "python, statistics",
	})
	require.NoError(t, err)

	skills := make([]string, 0, len(recs.Skills))
	for _, s := range recs.Skills {
		skills = append(skills, s.Skill)
	}
	assert.Contains(t, skills, "python")
	assert.Contains(t, skills, "statistics/math", "aliases fold onto canonical names")
}

func TestExtractSkillsCapAndDedupe(t *testing.T) {
	skills := extractSkills(
		"python python sql aws azure docker kubernetes machine learning deep learning "+
			"data analysis tensorflow pytorch nlp statistics linux git agile cloud",
		"Python, ML",
	)
	assert.LessOrEqual(t, len(skills), 10)

	seen := map[string]bool{}
	for _, s := range skills {
		assert.False(t, seen[s], "duplicate skill %q", s)
		seen[s] = true
	}
	assert.NotContains(t, skills, "ml", "alias should map to machine learning")
}

func TestWeightSkillsTitleBoost(t *testing.T) {
	weighted := weightSkills([]string{"python", "sql"}, "Senior Python Developer", "sql sql sql work")

	byName := map[string]float64{}
	for _, ws := range weighted {
		byName[ws.Skill] = ws.Weight
	}
	assert.Greater(t, byName["python"], 1.0, "title mention boosts the weight")
	assert.Greater(t, byName["sql"], 1.0, "repeated description mentions boost the weight")
}
