package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/careerconnect/careerconnect/internal/dtos"
	"github.com/careerconnect/careerconnect/internal/resume"
	"github.com/careerconnect/careerconnect/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AIHandler struct {
	LLMService *services.LLMService
}

func NewAIHandler(llm *services.LLMService) *AIHandler {
	return &AIHandler{LLMService: llm}
}

// GenerateJobDesc is POST /api/ai/generate-jobdesc.
func (h *AIHandler) GenerateJobDesc(c *gin.Context) {
	var req dtos.GenerateJobDescRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Role is required")
		return
	}

	result, err := h.LLMService.GenerateJobDescription(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": result})
}

// SummarizeJobDesc is POST /api/ai/summarize-jobdesc.
func (h *AIHandler) SummarizeJobDesc(c *gin.Context) {
	var req dtos.SummarizeJobDescRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Job description required")
		return
	}

	result, err := h.LLMService.SummarizeJobDescription(c.Request.Context(), req.JobDescription)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": result})
}

// InterviewQuestions is POST /api/ai/interview-questions.
func (h *AIHandler) InterviewQuestions(c *gin.Context) {
	var req dtos.InterviewQuestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Job description required")
		return
	}

	result, err := h.LLMService.InterviewQuestions(c.Request.Context(), req.JobDescription)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": result})
}

// SalaryGuidance is POST /api/ai/salary-guidance.
func (h *AIHandler) SalaryGuidance(c *gin.Context) {
	var req dtos.SalaryGuidanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "All fields are required")
		return
	}

	result, err := h.LLMService.SalaryGuidance(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": result})
}

// ResumeMatch is POST /api/ai/resume-match, multipart with a jobDescription
// field and a resume PDF. The upload only lives as long as the request.
func (h *AIHandler) ResumeMatch(c *gin.Context) {
	jobDescription := c.PostForm("jobDescription")
	file, err := c.FormFile("resume")
	if jobDescription == "" || err != nil {
		badRequest(c, "Job description & resume required")
		return
	}

	tmp := filepath.Join(os.TempDir(), uuid.NewString()+filepath.Ext(file.Filename))
	if err := c.SaveUploadedFile(file, tmp); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error processing resume PDF"})
		return
	}
	defer os.Remove(tmp)

	text, err := resume.Text(tmp)
	if err != nil {
		badRequest(c, "Error processing resume PDF: "+err.Error())
		return
	}

	result, err := h.LLMService.MatchResume(c.Request.Context(), jobDescription, text)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}
