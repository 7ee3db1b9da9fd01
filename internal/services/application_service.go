package services

import (
	"errors"
	"fmt"

	"github.com/careerconnect/careerconnect/internal/models"
	"github.com/careerconnect/careerconnect/internal/resume"
	"gorm.io/gorm"
)

type ApplicationService struct {
	DB *gorm.DB
}

func NewApplicationService(db *gorm.DB) *ApplicationService {
	return &ApplicationService{DB: db}
}

// Apply creates an application for a job. The resume file has already been
// stored at resumePath; its text is scanned for known skills so recruiters
// can see skill gaps later.
func (s *ApplicationService) Apply(userID, jobID uint, resumeURL, resumePath string) (*models.Application, error) {
	text, err := resume.Text(resumePath)
	if err != nil {
		return nil, fmt.Errorf("read resume: %w", err)
	}

	app := &models.Application{
		UserID:    userID,
		JobID:     jobID,
		ResumeURL: resumeURL,
		Skills:    resume.Skills(text),
		Status:    models.StatusPending,
	}
	if err := s.DB.Create(app).Error; err != nil {
		return nil, fmt.Errorf("create application: %w", err)
	}
	return app, nil
}

var validStatuses = map[string]bool{
	models.StatusPending:   true,
	models.StatusSelected:  true,
	models.StatusRejected:  true,
	models.StatusInterview: true,
}

// UpdateStatus moves an application through the recruiter pipeline.
func (s *ApplicationService) UpdateStatus(id uint, status string) (*models.Application, error) {
	if !validStatuses[status] {
		return nil, fmt.Errorf("%w: invalid status value %q", ErrValidation, status)
	}

	var app models.Application
	err := s.DB.First(&app, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find application: %w", err)
	}

	app.Status = status
	if err := s.DB.Save(&app).Error; err != nil {
		return nil, fmt.Errorf("update application: %w", err)
	}
	return &app, nil
}
