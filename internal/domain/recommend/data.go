package recommend

// jobToMajors maps well-known job titles to the academic majors that feed
// them. Titles are matched case-insensitively, with substring fallback.
var jobToMajors = map[string][]string{
	"IT":                        {"Computer Science", "Computational science and engineering", "Electrical and Computer Engineering", "Mathematics"},
	"Software Engineer":         {"Computer Science", "Computational science and engineering", "Electrical and Computer Engineering", "Mathematics"},
	"Data Scientist":            {"Computer Science", "Mathematics", "Economics", "Physics", "Computational science and engineering"},
	"Cybersecurity Analyst":     {"Computer Science", "Electrical and Computer Engineering", "Public Policy"},
	"Business Analyst":          {"Business Administration", "Information Systems Management", "Mathematics", "Economics"},
	"Project Manager":           {"Business Administration", "Industrial Engineering", "Systems Engineering"},
	"Machine Learning Engineer": {"Computer Science", "Mathematics", "Electrical and Computer Engineering", "Computational science and engineering"},
	"Web Developer":             {"Computer Science", "Human-Computer Interaction", "Digital Media"},
	"DevOps Engineer":           {"Computer Science", "Information Technology", "Systems Engineering"},
	"Database Administrator":    {"Computer Science", "Information Systems", "Information Technology"},
	"Network Engineer":          {"Computer Science", "Electrical and Computer Engineering", "Information Technology"},
	"Cloud Architect":           {"Computer Science", "Information Technology", "Systems Engineering"},
	"Product Manager":           {"Business Administration", "Computer Science", "Industrial Design"},
	"UX/UI Designer":            {"Human-Computer Interaction", "Digital Media", "Psychology", "Industrial Design"},
	"Biomedical Engineer":       {"Biomedical Engineering", "Electrical and Computer Engineering", "Mechanical Engineering"},
	"Financial Analyst":         {"Finance", "Economics", "Mathematics", "Business Administration"},
	"Marketing Analyst":         {"Marketing", "Business Administration", "Analytics"},
	"Civil Engineer":            {"Civil Engineering", "Environmental Engineering"},
	"Mechanical Engineer":       {"Mechanical Engineering", "Aerospace Engineering"},
	"Electrical Engineer":       {"Electrical and Computer Engineering", "Physics"},
}

// defaultMajors is the broad technical fallback when no title matches.
var defaultMajors = []string{"Computer Science", "Mathematics", "Business Administration", "Information Technology"}

// prefixToMajor maps course subject prefixes to majors.
var prefixToMajor = map[string]string{
	"CS":   "Computer Science",
	"CSE":  "Computational science and engineering",
	"ECE":  "Electrical and Computer Engineering",
	"MATH": "Mathematics",
	"ECON": "Economics",
	"PHYS": "Physics",
	"PUBP": "Public Policy",
	"MGT":  "Business Administration",
	"ISYE": "Industrial Engineering",
	"SYE":  "Systems Engineering",
	"HCI":  "Human-Computer Interaction",
	"DM":   "Digital Media",
	"IT":   "Information Technology",
	"IS":   "Information Systems",
	"BMED": "Biomedical Engineering",
	"ME":   "Mechanical Engineering",
	"FIN":  "Finance",
	"MKTG": "Marketing",
	"CE":   "Civil Engineering",
	"ENVE": "Environmental Engineering",
	"AE":   "Aerospace Engineering",
	"CX":   "Computational Science",
	"CYBR": "Cybersecurity",
	"ID":   "Industrial Design",
	"PSYC": "Psychology",
	"ACCT": "Accounting",
	"CP":   "City Planning",
}

// commonSkills is the keyword vocabulary scanned out of job descriptions.
var commonSkills = []string{
	"python", "java", "javascript", "c++", "sql", "nosql", "aws", "azure",
	"docker", "kubernetes", "machine learning", "deep learning", "data analysis",
	"visualization", "tensorflow", "pytorch", "nlp", "computer vision", "agile",
	"cloud", "devops", "ci/cd", "git", "data science", "statistics", "r programming",
	"big data", "hadoop", "spark", "tableau", "power bi", "excel", "web development",
	"mobile development", "api", "microservices", "security", "networking", "linux",
	"windows", "databases", "data engineering", "etl", "analytics", "full stack",
}

// skillAliases folds common variations onto one canonical name.
var skillAliases = map[string]string{
	"python programming":      "python",
	"python coding":           "python",
	"ml":                      "machine learning",
	"tensorflow":              "tensorflow/keras",
	"artificial intelligence": "machine learning",
	"visualization":           "data visualization",
	"postgresql":              "sql",
	"mysql":                   "sql",
	"database":                "databases",
	"cloud computing":         "cloud",
	"aws cloud":               "aws",
	"amazon web services":     "aws",
	"azure cloud":             "azure",
	"google cloud":            "gcp",
	"software development":    "software engineering",
	"javascript":              "js/javascript",
	"js":                      "js/javascript",
	"react":                   "react/frontend",
	"ui/ux":                   "ux design",
	"statistics":              "statistics/math",
	"mathematical":            "statistics/math",
	"deep learning":           "deep learning/neural networks",
	"nn":                      "deep learning/neural networks",
	"data analytics":          "data analysis",
	"nlp":                     "natural language processing",
	"cv":                      "computer vision",
	"ci/cd":                   "devops/ci/cd",
	"linux":                   "linux/unix",
	"unix":                    "linux/unix",
}
