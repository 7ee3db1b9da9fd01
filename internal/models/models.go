package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	RoleJobseeker = "jobseeker"
	RoleRecruiter = "recruiter"
)

type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name     string `gorm:"not null" json:"name"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Contact  string `gorm:"not null" json:"contact"`
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	// Password holds the bcrypt hash; never serialized.
	Password string `gorm:"not null" json:"-"`
	Role     string `gorm:"not null" json:"role"`
}

type Job struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	RecruiterID uint `gorm:"index;not null" json:"recruiter_id"`
	Recruiter   User `json:"recruiter,omitempty"`

	JobName        string                      `gorm:"not null" json:"jobname"`
	CompanyName    string                      `gorm:"not null" json:"companyname"`
	JobType        string                      `gorm:"not null" json:"jobtype"`
	Location       string                      `json:"location"`
	Salary         string                      `json:"salary"`
	Description    string                      `gorm:"type:text" json:"description"`
	RequiredSkills datatypes.JSONSlice[string] `json:"required_skills"`
}

// Application statuses a recruiter can assign.
const (
	StatusPending   = "Pending"
	StatusSelected  = "Selected"
	StatusRejected  = "Rejected"
	StatusInterview = "Call for Interview"
)

type Application struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	UserID uint `gorm:"index;not null" json:"user_id"`
	User   User `json:"user,omitempty"`
	JobID  uint `gorm:"index;not null" json:"job_id"`
	Job    Job  `json:"job,omitempty"`

	ResumeURL string                      `json:"resume_url"`
	Skills    datatypes.JSONSlice[string] `json:"skills"`
	Status    string                      `gorm:"default:'Pending'" json:"status"`
}

// Message is one chat message between two accounts, optionally scoped to a
// job posting. CreatedAt is the sole ordering key of a conversation.
type Message struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	SenderID   uint  `gorm:"index:idx_msg_pair;not null" json:"sender_id"`
	ReceiverID uint  `gorm:"index:idx_msg_pair;not null" json:"receiver_id"`
	JobID      *uint `gorm:"index" json:"job_id,omitempty"`

	Content string `gorm:"type:text;not null" json:"content"`
	Read    bool   `gorm:"default:false" json:"read"`
}
