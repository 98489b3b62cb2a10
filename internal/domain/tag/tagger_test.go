package tag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const examHeavySyllabus = `
Course grading. Midterms 30% of the final grade. Final exam 25% of the
final grade. Homework 40%. Participation 5%.
`

const attendanceSyllabus = `
Attendance is mandatory. Students are expected to attend every lecture.
More than three absences will lower your grade.
`

func TestGradeDistribution(t *testing.T) {
	tagger := NewTagger()
	grades := tagger.GradeDistribution(examHeavySyllabus)

	assert.InDelta(t, 55.0, grades["exam"], 0.01)
	assert.InDelta(t, 40.0, grades["assignment"], 0.01)
	assert.InDelta(t, 5.0, grades["attendance"], 0.01)
	assert.Zero(t, grades["project"])
}

func TestGradeDistributionPointsNormalized(t *testing.T) {
	tagger := NewTagger()
	grades := tagger.GradeDistribution("Total 200 points. Exams 100 pts. Homework 60 pts.")

	assert.InDelta(t, 50.0, grades["exam"], 0.01)
	assert.InDelta(t, 30.0, grades["assignment"], 0.01)
}

func TestAttendanceStrength(t *testing.T) {
	tagger := NewTagger()

	strength := tagger.AttendanceStrength(attendanceSyllabus)
	assert.InDelta(t, 1.0, strength, 0.001, "three sentences with mandatory language max out")

	assert.Zero(t, tagger.AttendanceStrength("This course covers graph algorithms."))
}

func TestGenerateExamHeavy(t *testing.T) {
	tagger := NewTagger()
	results, reasoning := tagger.Generate(examHeavySyllabus)

	require.Contains(t, results, "Exam Heavy")
	assert.True(t, results["Exam Heavy"].IsTagged, "55 percent exam weight crosses the 30 percent threshold")
	assert.False(t, results["Project Heavy"].IsTagged)
	assert.NotEmpty(t, reasoning["Exam Heavy"])
}

func TestGenerateAttendanceRequired(t *testing.T) {
	tagger := NewTagger()
	results, _ := tagger.Generate(attendanceSyllabus)

	require.Contains(t, results, "Attendance Required")
	assert.True(t, results["Attendance Required"].IsTagged)
}

func TestGeneratePrerequisite(t *testing.T) {
	tagger := NewTagger()
	text := "Prerequisite: CS 1331. Students need prior knowledge of data structures."
	results, _ := tagger.Generate(text)

	assert.True(t, results["Needs Prerequisite"].IsTagged,
		"two prerequisite phrases meet the threshold")
}

func TestGenerateDeterministic(t *testing.T) {
	tagger := NewTagger()
	first, _ := tagger.Generate(examHeavySyllabus)
	second, _ := tagger.Generate(examHeavySyllabus)
	assert.Equal(t, first, second)
}

func TestGenerateCoversAllTags(t *testing.T) {
	tagger := NewTagger()
	results, reasoning := tagger.Generate("nothing relevant here")

	assert.Len(t, results, 5)
	assert.Len(t, reasoning, 5)
	for name, r := range results {
		assert.False(t, r.IsTagged, "tag %s should not fire on empty text", name)
	}
}

func TestExtractTextPassthrough(t *testing.T) {
	text, err := ExtractText([]byte("<p>Attendance is <b>mandatory</b>.</p>"))
	require.NoError(t, err)
	assert.Contains(t, text, "Attendance is ")
	assert.Contains(t, text, "mandatory")
	assert.NotContains(t, text, "<p>")
}

func TestExtractTextRejectsBrokenPDF(t *testing.T) {
	_, err := ExtractText([]byte("%PDF-1.7 not really a pdf"))
	assert.Error(t, err)
}
