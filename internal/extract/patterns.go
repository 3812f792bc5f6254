package extract

import "regexp"

// SectionKeywords maps canonical section names to the header phrases that
// open them. Matching is case-insensitive substring over a candidate
// header line; the first matching name wins.
var SectionKeywords = []struct {
	Name     string
	Keywords []string
}{
	{"summary", []string{"summary", "objective", "profile", "about me"}},
	{"experience", []string{"experience", "employment", "work history", "career history"}},
	{"education", []string{"education", "academic", "qualifications"}},
	{"skills", []string{"skills", "technologies", "competencies", "expertise"}},
	{"projects", []string{"projects", "portfolio"}},
	{"certifications", []string{"certifications", "certificates", "licenses"}},
	{"awards", []string{"awards", "honors", "achievements", "recognition"}},
}

// SkillVocabulary is the fixed set of technology and soft-skill tokens
// recognized during skills extraction. Matching is case-insensitive.
var SkillVocabulary = []string{
	// languages
	"JavaScript", "TypeScript", "Python", "Java", "Go", "Golang", "C++", "C#",
	"Ruby", "PHP", "Swift", "Kotlin", "Rust", "Scala", "SQL", "HTML", "CSS",
	// frameworks and runtimes
	"React", "Angular", "Vue", "Node.js", "Django", "Flask", "Spring",
	"Rails", ".NET", "Express", "FastAPI", "GraphQL", "REST",
	// data and infrastructure
	"PostgreSQL", "MySQL", "MongoDB", "Redis", "Elasticsearch", "Kafka",
	"RabbitMQ", "AWS", "Azure", "GCP", "Docker", "Kubernetes", "Terraform",
	"Jenkins", "Git", "CI/CD", "Linux", "Microservices",
	// data science
	"Machine Learning", "Deep Learning", "TensorFlow", "PyTorch", "Pandas",
	"NumPy", "Tableau", "Power BI", "Excel", "Spark", "Hadoop",
	// methodology and soft skills
	"Agile", "Scrum", "Kanban", "DevOps", "TDD", "Leadership",
	"Communication", "Project Management", "Stakeholder Management",
	"Problem Solving", "Mentoring",
}

// JobTitleKeywords mark a line inside the experience section as a new
// entry header.
var JobTitleKeywords = []string{
	"engineer", "developer", "manager", "analyst", "designer", "architect",
	"consultant", "director", "administrator", "specialist", "scientist",
	"lead", "intern", "coordinator",
}

// ActionVerbs is the fixed list counted as a language-quality signal.
var ActionVerbs = []string{
	"achieved", "built", "created", "delivered", "designed", "developed",
	"drove", "established", "implemented", "improved", "increased",
	"launched", "led", "managed", "optimized", "reduced", "spearheaded",
	"streamlined", "transformed",
}

// PassivePhrases is the fixed list of weak constructions counted as a
// negative language-quality signal.
var PassivePhrases = []string{
	"responsible for", "duties included", "was tasked with", "worked on",
	"helped with", "assisted with", "participated in", "involved in",
}

var (
	emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	phonePattern = regexp.MustCompile(`(\+?1[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}\b`)
	// City, ST with optional ZIP, or a bare ZIP.
	locationPattern = regexp.MustCompile(`\b[A-Z][A-Za-z .]+,\s*[A-Z]{2}(\s+\d{5})?\b|\b\d{5}(-\d{4})?\b`)

	yearPattern = regexp.MustCompile(`\b(19|20)\d{2}\b`)
	gpaPattern  = regexp.MustCompile(`(?i)\bGPA[:\s]*([0-4](\.\d{1,2})?)\b`)

	bulletPattern = regexp.MustCompile(`^\s*[•\-*]\s+`)

	sentenceSplitPattern = regexp.MustCompile(`[.!?]+`)
)

// metricPatterns are the numeric/quantifier shapes collected as evidence
// of quantified achievements.
var metricPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\d+(\.\d+)?%`),
	regexp.MustCompile(`[$€£]\s?\d[\d,]*(\.\d+)?[KkMmBb]?`),
	regexp.MustCompile(`\b\d[\d,]*\+`),
	regexp.MustCompile(`(?i)\b(?:increased|decreased|reduced|improved|grew|saved|cut)\b[^.\n]{0,40}?\bby\s+\d[\d,]*(\.\d+)?%?`),
}
