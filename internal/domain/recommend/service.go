package recommend

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"

	"syllabushub/internal/domain/course"
)

var ErrMissingTitle = errors.New("job title is required")

// Catalog is the slice of the course repository the recommender reads.
type Catalog interface {
	All(ctx context.Context) ([]course.Course, error)
}

type Service struct {
	catalog Catalog
}

func NewService(catalog Catalog) *Service {
	return &Service{catalog: catalog}
}

// RelevantMajors maps a job title to academic majors: exact match first,
// then substring either way, then the broad technical default.
func (s *Service) RelevantMajors(jobTitle string) []string {
	title := strings.ToLower(strings.TrimSpace(jobTitle))

	for job, majors := range jobToMajors {
		if strings.ToLower(job) == title {
			return majors
		}
	}
	for job, majors := range jobToMajors {
		jl := strings.ToLower(job)
		if strings.Contains(title, jl) || strings.Contains(jl, title) {
			return majors
		}
	}
	return defaultMajors
}

// Recommend scores the catalog against skills pulled from the posting and
// any user-provided skills, restricted to courses in relevant majors.
func (s *Service) Recommend(ctx context.Context, req Request) (*Recommendations, error) {
	if strings.TrimSpace(req.JobTitle) == "" {
		return nil, ErrMissingTitle
	}

	majors := s.RelevantMajors(req.JobTitle)
	skills := extractSkills(req.JobDescription, req.UserSkills)
	weighted := weightSkills(skills, req.JobTitle, req.JobDescription)

	courses, err := s.catalog.All(ctx)
	if err != nil {
		return nil, err
	}

	majorSet := make(map[string]bool, len(majors))
	for _, m := range majors {
		majorSet[m] = true
	}

	matchesByID := map[string]*CourseMatch{}
	for _, c := range courses {
		major, ok := prefixToMajor[c.CourseSubject]
		if !ok || !majorSet[major] {
			continue
		}
		for _, ws := range weighted {
			score := scoreCourse(c, ws)
			if score < 0.65 {
				continue
			}
			id := fmt.Sprintf("%s %d", c.CourseSubject, c.CourseNumber)
			m, seen := matchesByID[id]
			if !seen {
				m = &CourseMatch{
					CourseID:   id,
					CourseName: c.Name,
					Major:      major,
					Level:      courseLevel(c.CourseNumber),
				}
				matchesByID[id] = m
			}
			if score > m.Score {
				m.Score = score
			}
			m.MatchingSkills = append(m.MatchingSkills, ws.Skill)
		}
	}

	all := make([]CourseMatch, 0, len(matchesByID))
	for _, m := range matchesByID {
		if m.Score > 1 {
			m.Score = 1
		}
		all = append(all, *m)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].Score != all[j].Score {
			return all[i].Score > all[j].Score
		}
		return all[i].CourseID < all[j].CourseID
	})

	top := all
	if len(top) > 5 {
		top = top[:5]
	}

	bySkill := map[string][]CourseMatch{}
	for _, m := range all {
		for _, skill := range m.MatchingSkills {
			if len(bySkill[skill]) < 3 {
				bySkill[skill] = append(bySkill[skill], m)
			}
		}
	}

	return &Recommendations{
		JobTitle:       req.JobTitle,
		RelevantMajors: majors,
		Skills:         weighted,
		TopCourses:     top,
		BySkill:        bySkill,
	}, nil
}

// extractSkills scans the description for known skill keywords, merges in
// user-provided skills, folds aliases and caps the list at ten.
func extractSkills(description, userSkills string) []string {
	descLower := strings.ToLower(description)

	var raw []string
	for _, skill := range commonSkills {
		if wordBoundaryRe(skill).MatchString(descLower) {
			raw = append(raw, skill)
		}
	}
	for _, s := range strings.Split(userSkills, ",") {
		if s = strings.TrimSpace(s); s != "" {
			raw = append(raw, s)
		}
	}

	seen := map[string]bool{}
	var normalized []string
	for _, skill := range raw {
		lower := strings.ToLower(strings.TrimSpace(skill))
		if mapped, ok := skillAliases[lower]; ok {
			lower = mapped
		}
		if lower != "" && !seen[lower] {
			seen[lower] = true
			normalized = append(normalized, lower)
		}
	}
	if len(normalized) > 10 {
		normalized = normalized[:10]
	}
	return normalized
}

// weightSkills ranks skills by how prominently the posting features them.
func weightSkills(skills []string, jobTitle, jobDescription string) []WeightedSkill {
	titleLower := strings.ToLower(jobTitle)
	descLower := strings.ToLower(jobDescription)
	firstParagraph := descLower
	if i := strings.Index(descLower, "\n"); i >= 0 {
		firstParagraph = descLower[:i]
	}

	weighted := make([]WeightedSkill, 0, len(skills))
	for _, skill := range skills {
		weight := 1.0
		if strings.Contains(titleLower, skill) {
			weight += 0.5
		}
		if n := strings.Count(descLower, skill); n > 1 {
			weight += minf(0.3, float64(n)*0.1)
		}
		if strings.Contains(firstParagraph, skill) {
			weight += 0.2
		}
		weighted = append(weighted, WeightedSkill{Skill: skill, Weight: minf(2.0, weight)})
	}
	sort.SliceStable(weighted, func(i, j int) bool { return weighted[i].Weight > weighted[j].Weight })
	return weighted
}

// scoreCourse is a direct keyword match: name hits count more than
// description hits, both scaled by the skill weight.
func scoreCourse(c course.Course, ws WeightedSkill) float64 {
	re := wordBoundaryRe(ws.Skill)
	nameLower := strings.ToLower(c.Name)
	descLower := strings.ToLower(c.Description)

	if !re.MatchString(nameLower) && !re.MatchString(descLower) {
		return 0
	}

	score := 0.4 * ws.Weight
	if re.MatchString(nameLower) {
		score += 0.4 * ws.Weight
	} else if strings.Contains(nameLower, ws.Skill) {
		score += 0.2 * ws.Weight
	}
	if n := len(re.FindAllString(descLower, -1)); n > 0 {
		score += minf(0.3, 0.1*float64(n)) * ws.Weight
	}
	return score
}

func courseLevel(number int) string {
	for number >= 10 {
		number /= 10
	}
	if number >= 6 {
		return "Graduate"
	}
	return "Undergraduate"
}

var boundaryCache sync.Map

func wordBoundaryRe(skill string) *regexp.Regexp {
	if re, ok := boundaryCache.Load(skill); ok {
		return re.(*regexp.Regexp)
	}
	re := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(skill) + `\b`)
	boundaryCache.Store(skill, re)
	return re
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
