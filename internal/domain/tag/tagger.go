package tag

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Tagger scores syllabus text against keyword lists and a parsed grade
// distribution to decide which reference tags apply. Deterministic: same text
// always yields the same tags.
type Tagger struct {
	keywords   map[string][]string
	thresholds map[string]threshold
}

type threshold struct {
	keywordCount   int
	gradePercent   float64
	policyStrength float64
}

// Result is one tagging decision, keyed by the display tag name. DBID is the
// matching tags-table row when reference data contains the name.
type Result struct {
	IsTagged bool   `json:"is_tagged"`
	DBID     *int64 `json:"db_id"`
}

const (
	categoryProject    = "project_heavy"
	categoryExam       = "exam_heavy"
	categoryAssignment = "assignment_heavy"
	categoryPrereq     = "needs_prerequisite"
	categoryAttendance = "attendance_required"
)

// displayNames maps internal categories to tag names as stored in the tags
// table.
var displayNames = map[string]string{
	categoryProject:    "Project Heavy",
	categoryExam:       "Exam Heavy",
	categoryAssignment: "Assignment Heavy",
	categoryPrereq:     "Needs Prerequisite",
	categoryAttendance: "Attendance Required",
}

func NewTagger() *Tagger {
	return &Tagger{
		keywords: map[string][]string{
			categoryProject: {
				"project", "projects", "group project", "individual project", "final project",
				"team project", "research project", "design project", "project-based",
				"deliverable", "portfolio", "case study",
			},
			categoryExam: {
				"exam", "exams", "midterm", "midterms", "final exam", "quiz", "quizzes",
				"test", "tests", "assessment", "assessments", "examination",
			},
			categoryAssignment: {
				"assignment", "assignments", "homework", "homeworks", "problem set",
				"problem sets", "exercise", "exercises", "lab", "labs", "paper", "papers",
				"essay", "essays", "report", "reports", "writing", "readings",
			},
			categoryPrereq: {
				"prerequisite", "prerequisites", "prior knowledge", "required course",
				"required courses", "previous course", "previous courses", "co-requisite",
				"foundations", "background in", "familiarity with", "experience with",
			},
			categoryAttendance: {
				"attendance", "attendances", "mandatory", "required", "participate",
				"participation", "present", "presence", "absence", "absences",
				"miss class", "missing class", "attend", "expected to attend",
				"students are expected", "arrive on time", "classroom participation",
				"attendance policy", "attend class", "attendance grade",
			},
		},
		thresholds: map[string]threshold{
			categoryProject:    {keywordCount: 5, gradePercent: 25},
			categoryExam:       {keywordCount: 7, gradePercent: 30},
			categoryAssignment: {keywordCount: 10, gradePercent: 40},
			categoryPrereq:     {keywordCount: 2},
			categoryAttendance: {keywordCount: 3, policyStrength: 0.3},
		},
	}
}

var (
	totalPointsRe = regexp.MustCompile(`(?i)total\D*(\d+)`)

	gradePatterns = []struct {
		bucket string
		re     *regexp.Regexp
	}{
		{"project", regexp.MustCompile(`(?i)(projects?|final project|team project)\D{0,40}?(\d{1,3})\s*%`)},
		{"exam", regexp.MustCompile(`(?i)(exams?|midterms?|final exam|quiz|quizzes)\D{0,40}?(\d{1,3})\s*%`)},
		{"assignment", regexp.MustCompile(`(?i)(assignments?|homeworks?|labs?)\D{0,40}?(\d{1,3})\s*%`)},
		{"attendance", regexp.MustCompile(`(?i)(participation|attendance)\D{0,40}?(\d{1,3})\s*%`)},
		{"project", regexp.MustCompile(`(?i)(projects?|final project|team project)\D{0,40}?(\d{1,3})\s*(?:pts|points)`)},
		{"exam", regexp.MustCompile(`(?i)(exams?|midterms?|final exam|quiz|quizzes)\D{0,40}?(\d{1,3})\s*(?:pts|points)`)},
		{"assignment", regexp.MustCompile(`(?i)(assignments?|homeworks?|labs?)\D{0,40}?(\d{1,3})\s*(?:pts|points)`)},
		{"attendance", regexp.MustCompile(`(?i)(participation|attendance)\D{0,40}?(\d{1,3})\s*(?:pts|points)`)},
	}

	mandatoryRe = regexp.MustCompile(`(?i)(mandatory|required|must attend|expected to attend|will lower your grade|counts toward)`)
)

// GradeDistribution pulls per-bucket grade percentages out of syllabus text.
// Points-based tables are normalized against a detected total.
func (t *Tagger) GradeDistribution(text string) map[string]float64 {
	grades := map[string]float64{}

	total := 100.0
	if m := totalPointsRe.FindStringSubmatch(text); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil && v > 0 {
			total = v
		}
	}

	for _, p := range gradePatterns {
		pointsBased := strings.Contains(p.re.String(), "pts")
		for _, m := range p.re.FindAllStringSubmatch(text, -1) {
			v, err := strconv.ParseFloat(m[2], 64)
			if err != nil {
				continue
			}
			if pointsBased && total != 100 {
				v = v / total * 100
			}
			grades[p.bucket] += v
		}
	}
	return grades
}

// AttendanceStrength scores how strict the attendance policy reads, 0..1.
func (t *Tagger) AttendanceStrength(text string) float64 {
	lower := strings.ToLower(text)

	var attendanceSentences []string
	for _, s := range splitSentences(lower) {
		if strings.Contains(s, "attendance") || strings.Contains(s, "attend") ||
			strings.Contains(s, "participation") || strings.Contains(s, "absence") {
			attendanceSentences = append(attendanceSentences, s)
		}
	}
	if len(attendanceSentences) == 0 {
		return 0
	}

	strength := 0.1 * float64(len(attendanceSentences))
	for _, s := range attendanceSentences {
		if mandatoryRe.MatchString(s) {
			strength += 0.25
		}
	}
	if _, ok := t.GradeDistribution(text)["attendance"]; ok {
		strength += 0.3
	}
	if strength > 1 {
		strength = 1
	}
	return strength
}

// Generate runs every category against the text and returns decisions keyed
// by display name plus a reasoning string per decision.
func (t *Tagger) Generate(text string) (map[string]Result, map[string]string) {
	lower := strings.ToLower(text)
	grades := t.GradeDistribution(text)

	results := make(map[string]Result, len(displayNames))
	reasoning := make(map[string]string, len(displayNames))

	for cat, th := range t.thresholds {
		hits := t.countKeywords(lower, cat)
		name := displayNames[cat]

		switch cat {
		case categoryPrereq:
			tagged := hits >= th.keywordCount
			results[name] = Result{IsTagged: tagged}
			reasoning[name] = fmt.Sprintf("%d prerequisite-related phrases (threshold %d)", hits, th.keywordCount)

		case categoryAttendance:
			strength := t.AttendanceStrength(text)
			tagged := hits >= th.keywordCount && strength >= th.policyStrength
			results[name] = Result{IsTagged: tagged}
			reasoning[name] = fmt.Sprintf("%d attendance keywords, policy strength %.2f (thresholds %d, %.2f)",
				hits, strength, th.keywordCount, th.policyStrength)

		default:
			bucket := strings.TrimSuffix(cat, "_heavy")
			tagged := hits >= th.keywordCount || grades[bucket] >= th.gradePercent
			results[name] = Result{IsTagged: tagged}
			reasoning[name] = fmt.Sprintf("%d keywords (threshold %d), %.0f%% of grade (threshold %.0f%%)",
				hits, th.keywordCount, grades[bucket], th.gradePercent)
		}
	}
	return results, reasoning
}

func (t *Tagger) countKeywords(lowerText, category string) int {
	count := 0
	for _, kw := range t.keywords[category] {
		count += strings.Count(lowerText, kw)
	}
	return count
}

func splitSentences(text string) []string {
	var sentences []string
	var cur strings.Builder
	for _, r := range text {
		cur.WriteRune(r)
		if r == '.' || r == '!' || r == '?' {
			if s := strings.TrimSpace(cur.String()); s != "" {
				sentences = append(sentences, s)
			}
			cur.Reset()
		}
	}
	if s := strings.TrimSpace(cur.String()); s != "" {
		sentences = append(sentences, s)
	}
	return sentences
}
