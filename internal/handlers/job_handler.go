package handlers

import (
	"net/http"
	"strconv"

	"github.com/careerconnect/careerconnect/internal/dtos"
	"github.com/careerconnect/careerconnect/internal/services"
	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	JobService *services.JobService
}

func NewJobHandler(jobs *services.JobService) *JobHandler {
	return &JobHandler{JobService: jobs}
}

// Create is POST /api/jobs.
func (h *JobHandler) Create(c *gin.Context) {
	var req dtos.JobCreationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid JSON format: "+err.Error())
		return
	}

	job, err := h.JobService.Create(&req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": job})
}

// List is GET /api/jobs.
func (h *JobHandler) List(c *gin.Context) {
	jobs, err := h.JobService.List()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": jobs})
}

// Search is GET /api/jobs/search?query=&location=.
func (h *JobHandler) Search(c *gin.Context) {
	jobs, err := h.JobService.Search(c.Query("query"), c.Query("location"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// Get is GET /api/jobs/:id.
func (h *JobHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		badRequest(c, "Invalid job id")
		return
	}

	job, err := h.JobService.GetByID(uint(id))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": job})
}

// Update is PUT /api/jobs/:id. Only the owning recruiter may edit.
func (h *JobHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		badRequest(c, "Invalid job id")
		return
	}

	var req dtos.JobUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid JSON format: "+err.Error())
		return
	}

	job, err := h.JobService.Update(uint(id), &req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Job updated successfully", "job": job})
}

// Delete is DELETE /api/jobs/:id?recruiterId=.
func (h *JobHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		badRequest(c, "Invalid job id")
		return
	}
	recruiterID, err := strconv.ParseUint(c.Query("recruiterId"), 10, 32)
	if err != nil {
		badRequest(c, "Invalid or missing recruiterId")
		return
	}

	if err := h.JobService.Delete(uint(id), uint(recruiterID)); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Job deleted successfully"})
}
