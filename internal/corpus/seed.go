package corpus

import "resumescore/internal/types"

// kw is a seed-table shorthand.
func kw(keyword, category string, weight int) types.Keyword {
	return types.Keyword{Keyword: keyword, Category: category, Weight: weight}
}

// BuiltinSets returns the built-in reference keyword sets. They cover the
// general default plus the industries the service is most used for; a seed
// file can extend or override them.
func BuiltinSets() []types.KeywordSet {
	return []types.KeywordSet{
		{
			Industry: "general", Level: "general",
			Keywords: []types.Keyword{
				kw("communication", types.KeywordCategorySoft, 4),
				kw("leadership", types.KeywordCategorySoft, 4),
				kw("teamwork", types.KeywordCategorySoft, 3),
				kw("problem solving", types.KeywordCategorySoft, 4),
				kw("project management", types.KeywordCategoryMethodology, 4),
				kw("time management", types.KeywordCategorySoft, 3),
				kw("analytical", types.KeywordCategorySoft, 3),
				kw("collaboration", types.KeywordCategorySoft, 3),
				kw("strategic planning", types.KeywordCategoryMethodology, 3),
				kw("customer service", types.KeywordCategoryIndustry, 2),
			},
		},
		{
			Industry: "technology", Level: "general",
			Keywords: []types.Keyword{
				kw("software development", types.KeywordCategoryTechnical, 5),
				kw("python", types.KeywordCategoryTechnical, 4),
				kw("javascript", types.KeywordCategoryTechnical, 4),
				kw("sql", types.KeywordCategoryTechnical, 4),
				kw("cloud", types.KeywordCategoryTechnical, 4),
				kw("aws", types.KeywordCategoryTechnical, 4),
				kw("git", types.KeywordCategoryTechnical, 3),
				kw("agile", types.KeywordCategoryMethodology, 4),
				kw("scrum", types.KeywordCategoryMethodology, 3),
				kw("ci/cd", types.KeywordCategoryMethodology, 3),
				kw("api", types.KeywordCategoryTechnical, 4),
				kw("testing", types.KeywordCategoryMethodology, 3),
				kw("communication", types.KeywordCategorySoft, 3),
				kw("teamwork", types.KeywordCategorySoft, 3),
			},
		},
		{
			Industry: "technology", Level: "entry",
			Keywords: []types.Keyword{
				kw("python", types.KeywordCategoryTechnical, 5),
				kw("javascript", types.KeywordCategoryTechnical, 5),
				kw("java", types.KeywordCategoryTechnical, 4),
				kw("sql", types.KeywordCategoryTechnical, 4),
				kw("git", types.KeywordCategoryTechnical, 4),
				kw("html", types.KeywordCategoryTechnical, 3),
				kw("css", types.KeywordCategoryTechnical, 3),
				kw("debugging", types.KeywordCategoryTechnical, 3),
				kw("agile", types.KeywordCategoryMethodology, 3),
				kw("internship", types.KeywordCategoryIndustry, 2),
				kw("teamwork", types.KeywordCategorySoft, 3),
				kw("eagerness to learn", types.KeywordCategorySoft, 2),
			},
		},
		{
			Industry: "technology", Level: "mid",
			Keywords: []types.Keyword{
				kw("python", types.KeywordCategoryTechnical, 5),
				kw("javascript", types.KeywordCategoryTechnical, 4),
				kw("aws", types.KeywordCategoryTechnical, 5),
				kw("docker", types.KeywordCategoryTechnical, 4),
				kw("kubernetes", types.KeywordCategoryTechnical, 4),
				kw("microservices", types.KeywordCategoryTechnical, 4),
				kw("rest", types.KeywordCategoryTechnical, 4),
				kw("sql", types.KeywordCategoryTechnical, 4),
				kw("ci/cd", types.KeywordCategoryMethodology, 4),
				kw("agile", types.KeywordCategoryMethodology, 4),
				kw("code review", types.KeywordCategoryMethodology, 3),
				kw("mentoring", types.KeywordCategorySoft, 3),
				kw("system design", types.KeywordCategoryTechnical, 4),
				kw("aws certified", types.KeywordCategoryCert, 3),
			},
		},
		{
			Industry: "technology", Level: "senior",
			Keywords: []types.Keyword{
				kw("architecture", types.KeywordCategoryTechnical, 5),
				kw("system design", types.KeywordCategoryTechnical, 5),
				kw("kubernetes", types.KeywordCategoryTechnical, 4),
				kw("aws", types.KeywordCategoryTechnical, 4),
				kw("terraform", types.KeywordCategoryTechnical, 3),
				kw("microservices", types.KeywordCategoryTechnical, 4),
				kw("scalability", types.KeywordCategoryTechnical, 4),
				kw("leadership", types.KeywordCategorySoft, 5),
				kw("mentoring", types.KeywordCategorySoft, 4),
				kw("stakeholder management", types.KeywordCategorySoft, 4),
				kw("roadmap", types.KeywordCategoryMethodology, 3),
				kw("agile", types.KeywordCategoryMethodology, 3),
				kw("cross-functional", types.KeywordCategorySoft, 3),
			},
		},
		{
			Industry: "finance", Level: "general",
			Keywords: []types.Keyword{
				kw("financial analysis", types.KeywordCategoryTechnical, 5),
				kw("excel", types.KeywordCategoryTechnical, 4),
				kw("financial modeling", types.KeywordCategoryTechnical, 4),
				kw("forecasting", types.KeywordCategoryTechnical, 4),
				kw("budgeting", types.KeywordCategoryTechnical, 4),
				kw("risk management", types.KeywordCategoryIndustry, 4),
				kw("compliance", types.KeywordCategoryIndustry, 3),
				kw("gaap", types.KeywordCategoryIndustry, 3),
				kw("cfa", types.KeywordCategoryCert, 3),
				kw("cpa", types.KeywordCategoryCert, 3),
				kw("attention to detail", types.KeywordCategorySoft, 3),
				kw("communication", types.KeywordCategorySoft, 3),
			},
		},
		{
			Industry: "healthcare", Level: "general",
			Keywords: []types.Keyword{
				kw("patient care", types.KeywordCategoryIndustry, 5),
				kw("hipaa", types.KeywordCategoryIndustry, 4),
				kw("electronic health records", types.KeywordCategoryTechnical, 4),
				kw("clinical", types.KeywordCategoryIndustry, 4),
				kw("medical terminology", types.KeywordCategoryIndustry, 3),
				kw("care coordination", types.KeywordCategoryIndustry, 3),
				kw("quality improvement", types.KeywordCategoryMethodology, 3),
				kw("bls", types.KeywordCategoryCert, 3),
				kw("compassion", types.KeywordCategorySoft, 3),
				kw("communication", types.KeywordCategorySoft, 4),
				kw("teamwork", types.KeywordCategorySoft, 3),
			},
		},
		{
			Industry: "marketing", Level: "general",
			Keywords: []types.Keyword{
				kw("digital marketing", types.KeywordCategoryTechnical, 5),
				kw("seo", types.KeywordCategoryTechnical, 4),
				kw("content marketing", types.KeywordCategoryTechnical, 4),
				kw("google analytics", types.KeywordCategoryTechnical, 4),
				kw("social media", types.KeywordCategoryTechnical, 4),
				kw("campaign management", types.KeywordCategoryMethodology, 4),
				kw("brand", types.KeywordCategoryIndustry, 3),
				kw("a/b testing", types.KeywordCategoryMethodology, 3),
				kw("copywriting", types.KeywordCategoryTechnical, 3),
				kw("crm", types.KeywordCategoryTechnical, 3),
				kw("creativity", types.KeywordCategorySoft, 3),
				kw("communication", types.KeywordCategorySoft, 3),
			},
		},
	}
}
