package dtos

type GenerateJobDescRequest struct {
	Role       string `json:"role" binding:"required"`
	Skills     string `json:"skills"`
	Experience string `json:"experience"`
	Perks      string `json:"perks"`
}

type SummarizeJobDescRequest struct {
	JobDescription string `json:"jobDescription" binding:"required"`
}

type InterviewQuestionsRequest struct {
	JobDescription string `json:"jobDescription" binding:"required"`
}

type SalaryGuidanceRequest struct {
	Role        string `json:"role" binding:"required"`
	Experience  string `json:"experience" binding:"required"`
	CompanyType string `json:"companyType" binding:"required"`
	City        string `json:"city" binding:"required"`
}

// ResumeMatchResult is the strict JSON shape the resume-match prompt asks the
// model for. When the model reply cannot be parsed, the raw text is returned
// as a single suggestion with a zero match.
type ResumeMatchResult struct {
	MatchedSkills   []string `json:"matchedSkills"`
	MissingSkills   []string `json:"missingSkills"`
	Suggestions     []string `json:"suggestions"`
	PercentageMatch float64  `json:"percentageMatch"`
}
