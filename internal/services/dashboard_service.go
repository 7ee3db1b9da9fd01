package services

import (
	"fmt"
	"sort"

	"github.com/careerconnect/careerconnect/internal/dtos"
	"github.com/careerconnect/careerconnect/internal/models"
	"github.com/careerconnect/careerconnect/internal/resume"
	"gorm.io/gorm"
)

// DashboardService aggregates jobs and applications into per-role views.
type DashboardService struct {
	DB *gorm.DB
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{DB: db}
}

// Jobseeker lists every job the user applied to, with recruiter contact info.
func (s *DashboardService) Jobseeker(userID uint) ([]dtos.JobseekerDashboardRow, error) {
	var apps []models.Application
	err := s.DB.Preload("Job").Preload("Job.Recruiter").
		Where("user_id = ?", userID).
		Find(&apps).Error
	if err != nil {
		return nil, fmt.Errorf("load applications: %w", err)
	}

	rows := make([]dtos.JobseekerDashboardRow, 0, len(apps))
	for _, app := range apps {
		rows = append(rows, dtos.JobseekerDashboardRow{
			JobID:          app.JobID,
			JobName:        app.Job.JobName,
			CompanyName:    app.Job.CompanyName,
			JobType:        app.Job.JobType,
			Location:       app.Job.Location,
			Salary:         app.Job.Salary,
			RecruiterID:    app.Job.RecruiterID,
			RecruiterName:  app.Job.Recruiter.Name,
			RecruiterEmail: app.Job.Recruiter.Email,
			ResumeURL:      app.ResumeURL,
			Status:         app.Status,
		})
	}
	return rows, nil
}

// Recruiter lists the recruiter's jobs, each with its applications.
func (s *DashboardService) Recruiter(recruiterID uint) ([]dtos.RecruiterDashboardRow, error) {
	jobs, apps, err := s.jobsWithApplications(recruiterID)
	if err != nil {
		return nil, err
	}

	rows := make([]dtos.RecruiterDashboardRow, 0, len(jobs))
	for _, job := range jobs {
		row := dtos.RecruiterDashboardRow{
			JobID:        job.ID,
			JobName:      job.JobName,
			CompanyName:  job.CompanyName,
			JobType:      job.JobType,
			Location:     job.Location,
			Salary:       job.Salary,
			RecruiterID:  job.RecruiterID,
			Applications: []dtos.RecruiterApplicationRow{},
		}
		for _, app := range apps[job.ID] {
			row.Applications = append(row.Applications, dtos.RecruiterApplicationRow{
				ApplicationID: app.ID,
				ApplicantID:   app.UserID,
				ApplicantName: app.User.Name,
				ResumeURL:     app.ResumeURL,
				Status:        app.Status,
			})
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// Analytics computes, for each of the recruiter's jobs, which required skills
// its applicants lack.
func (s *DashboardService) Analytics(recruiterID uint) ([]dtos.JobAnalytics, error) {
	jobs, apps, err := s.jobsWithApplications(recruiterID)
	if err != nil {
		return nil, err
	}

	out := make([]dtos.JobAnalytics, 0, len(jobs))
	for _, job := range jobs {
		out = append(out, analyzeJob(job, apps[job.ID]))
	}
	return out, nil
}

func (s *DashboardService) jobsWithApplications(recruiterID uint) ([]models.Job, map[uint][]models.Application, error) {
	var jobs []models.Job
	if err := s.DB.Where("recruiter_id = ?", recruiterID).Find(&jobs).Error; err != nil {
		return nil, nil, fmt.Errorf("load jobs: %w", err)
	}
	if len(jobs) == 0 {
		return jobs, nil, nil
	}

	ids := make([]uint, len(jobs))
	for i, job := range jobs {
		ids[i] = job.ID
	}

	var apps []models.Application
	if err := s.DB.Preload("User").Where("job_id IN ?", ids).Find(&apps).Error; err != nil {
		return nil, nil, fmt.Errorf("load applications: %w", err)
	}

	byJob := make(map[uint][]models.Application, len(jobs))
	for _, app := range apps {
		byJob[app.JobID] = append(byJob[app.JobID], app)
	}
	return jobs, byJob, nil
}

// analyzeJob diffs each applicant's extracted skills against the job's
// required skills and aggregates the per-skill gap counts.
func analyzeJob(job models.Job, apps []models.Application) dtos.JobAnalytics {
	analytics := dtos.JobAnalytics{
		JobID:             job.ID,
		JobName:           job.JobName,
		TotalApplications: len(apps),
		Applications:      []dtos.ApplicantSkillGap{},
		SkillGaps:         []dtos.SkillGap{},
	}

	counts := make(map[string]int)
	for _, app := range apps {
		missing := resume.Missing(job.RequiredSkills, app.Skills)
		for _, skill := range missing {
			counts[skill]++
		}
		analytics.Applications = append(analytics.Applications, dtos.ApplicantSkillGap{
			ApplicantID:   app.UserID,
			ApplicantName: app.User.Name,
			MissingSkills: missing,
		})
	}

	for skill, count := range counts {
		analytics.SkillGaps = append(analytics.SkillGaps, dtos.SkillGap{Skill: skill, Count: count})
	}
	sort.Slice(analytics.SkillGaps, func(i, j int) bool {
		if analytics.SkillGaps[i].Count != analytics.SkillGaps[j].Count {
			return analytics.SkillGaps[i].Count > analytics.SkillGaps[j].Count
		}
		return analytics.SkillGaps[i].Skill < analytics.SkillGaps[j].Skill
	})
	return analytics
}
