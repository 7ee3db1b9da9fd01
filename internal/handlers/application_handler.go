package handlers

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/careerconnect/careerconnect/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ApplicationHandler struct {
	Applications *services.ApplicationService
	UploadDir    string
}

func NewApplicationHandler(apps *services.ApplicationService, uploadDir string) *ApplicationHandler {
	return &ApplicationHandler{Applications: apps, UploadDir: uploadDir}
}

// Apply is POST /api/apply, a multipart form with userId, jobId and a resume
// file. The file is stored locally and scanned for known skills.
func (h *ApplicationHandler) Apply(c *gin.Context) {
	userID, err := strconv.ParseUint(c.PostForm("userId"), 10, 32)
	if err != nil {
		badRequest(c, "Missing required fields")
		return
	}
	jobID, err := strconv.ParseUint(c.PostForm("jobId"), 10, 32)
	if err != nil {
		badRequest(c, "Missing required fields")
		return
	}
	file, err := c.FormFile("resume")
	if err != nil {
		badRequest(c, "Missing required fields")
		return
	}

	// Randomized name keeps uploads from clobbering each other.
	stored := fmt.Sprintf("%s%s", uuid.NewString(), filepath.Ext(file.Filename))
	dest := filepath.Join(h.UploadDir, stored)
	if err := c.SaveUploadedFile(file, dest); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store resume: " + err.Error()})
		return
	}

	app, err := h.Applications.Apply(uint(userID), uint(jobID), "/uploads/"+stored, dest)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": app})
}

// UpdateStatus is PUT /api/application/status/:id.
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		badRequest(c, "Invalid application id")
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid JSON format: "+err.Error())
		return
	}

	app, err := h.Applications.UpdateStatus(uint(id), req.Status)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Status updated successfully", "application": app})
}
