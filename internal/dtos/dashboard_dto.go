package dtos

// JobseekerDashboardRow is one applied-to job as the jobseeker sees it.
type JobseekerDashboardRow struct {
	JobID          uint   `json:"job_id"`
	JobName        string `json:"jobname"`
	CompanyName    string `json:"companyname"`
	JobType        string `json:"jobtype"`
	Location       string `json:"location"`
	Salary         string `json:"salary"`
	RecruiterID    uint   `json:"recruiter_id"`
	RecruiterName  string `json:"recruiter_name"`
	RecruiterEmail string `json:"recruiter_email"`
	ResumeURL      string `json:"resume_url"`
	Status         string `json:"status"`
}

type RecruiterApplicationRow struct {
	ApplicationID uint   `json:"application_id"`
	ApplicantID   uint   `json:"applicant_id"`
	ApplicantName string `json:"applicant_name"`
	ResumeURL     string `json:"resume_url"`
	Status        string `json:"status"`
}

// RecruiterDashboardRow is one posted job with its applications.
type RecruiterDashboardRow struct {
	JobID        uint                      `json:"job_id"`
	JobName      string                    `json:"jobname"`
	CompanyName  string                    `json:"companyname"`
	JobType      string                    `json:"jobtype"`
	Location     string                    `json:"location"`
	Salary       string                    `json:"salary"`
	RecruiterID  uint                      `json:"recruiter_id"`
	Applications []RecruiterApplicationRow `json:"applications"`
}

type ApplicantSkillGap struct {
	ApplicantID   uint     `json:"applicant_id"`
	ApplicantName string   `json:"applicant_name"`
	MissingSkills []string `json:"missing_skills"`
}

type SkillGap struct {
	Skill string `json:"skill"`
	Count int    `json:"count"`
}

// JobAnalytics summarizes, per posted job, which required skills applicants
// are missing and how often.
type JobAnalytics struct {
	JobID             uint                `json:"job_id"`
	JobName           string              `json:"jobname"`
	TotalApplications int                 `json:"total_applications"`
	Applications      []ApplicantSkillGap `json:"applications"`
	SkillGaps         []SkillGap          `json:"skill_gaps"`
}
