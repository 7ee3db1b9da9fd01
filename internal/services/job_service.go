package services

import (
	"errors"
	"fmt"

	"github.com/careerconnect/careerconnect/internal/dtos"
	"github.com/careerconnect/careerconnect/internal/models"
	"gorm.io/gorm"
)

type JobService struct {
	DB *gorm.DB
}

func NewJobService(db *gorm.DB) *JobService {
	return &JobService{DB: db}
}

func (s *JobService) Create(req *dtos.JobCreationRequest) (*models.Job, error) {
	job := &models.Job{
		RecruiterID:    req.RecruiterID,
		JobName:        req.JobName,
		CompanyName:    req.CompanyName,
		JobType:        req.JobType,
		Location:       req.Location,
		Salary:         req.Salary,
		Description:    req.Description,
		RequiredSkills: req.RequiredSkills,
	}
	if err := s.DB.Create(job).Error; err != nil {
		return nil, fmt.Errorf("create job: %w", err)
	}
	return job, nil
}

func (s *JobService) List() ([]models.Job, error) {
	var jobs []models.Job
	if err := s.DB.Find(&jobs).Error; err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	return jobs, nil
}

func (s *JobService) GetByID(id uint) (*models.Job, error) {
	var job models.Job
	err := s.DB.First(&job, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find job: %w", err)
	}
	return &job, nil
}

// Search filters jobs on a case-insensitive substring across name, company,
// type and description, plus an optional location filter, newest first.
func (s *JobService) Search(query, location string) ([]models.Job, error) {
	q := s.DB.Model(&models.Job{})
	if query != "" {
		like := "%" + query + "%"
		q = q.Where(
			"job_name ILIKE ? OR company_name ILIKE ? OR job_type ILIKE ? OR description ILIKE ?",
			like, like, like, like,
		)
	}
	if location != "" {
		q = q.Where("location ILIKE ?", "%"+location+"%")
	}

	var jobs []models.Job
	if err := q.Order("created_at DESC").Find(&jobs).Error; err != nil {
		return nil, fmt.Errorf("search jobs: %w", err)
	}
	return jobs, nil
}

// Update applies a partial update. Only the owning recruiter may edit.
func (s *JobService) Update(jobID uint, req *dtos.JobUpdateRequest) (*models.Job, error) {
	job, err := s.GetByID(jobID)
	if err != nil {
		return nil, err
	}
	if job.RecruiterID != req.RecruiterID {
		return nil, ErrNotAuthorized
	}

	if req.JobName != "" {
		job.JobName = req.JobName
	}
	if req.CompanyName != "" {
		job.CompanyName = req.CompanyName
	}
	if req.JobType != "" {
		job.JobType = req.JobType
	}
	if req.Location != "" {
		job.Location = req.Location
	}
	if req.Salary != "" {
		job.Salary = req.Salary
	}

	if err := s.DB.Save(job).Error; err != nil {
		return nil, fmt.Errorf("update job: %w", err)
	}
	return job, nil
}

func (s *JobService) Delete(jobID, recruiterID uint) error {
	job, err := s.GetByID(jobID)
	if err != nil {
		return err
	}
	if job.RecruiterID != recruiterID {
		return ErrNotAuthorized
	}
	if err := s.DB.Delete(job).Error; err != nil {
		return fmt.Errorf("delete job: %w", err)
	}
	return nil
}
