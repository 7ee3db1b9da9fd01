package dtos

type JobCreationRequest struct {
	RecruiterID uint   `json:"recruiter_id" binding:"required"`
	JobName     string `json:"jobname" binding:"required"`
	CompanyName string `json:"companyname" binding:"required"`
	JobType     string `json:"jobtype" binding:"required"`

	// Optional Fields
	Location       string   `json:"location"`
	Salary         string   `json:"salary"`
	Description    string   `json:"description"`
	RequiredSkills []string `json:"required_skills"`
}

// JobUpdateRequest carries a partial update; empty fields keep their current
// value.
type JobUpdateRequest struct {
	RecruiterID uint   `json:"recruiter_id" binding:"required"`
	JobName     string `json:"jobname"`
	CompanyName string `json:"companyname"`
	JobType     string `json:"jobtype"`
	Location    string `json:"location"`
	Salary      string `json:"salary"`
}
