package handlers

import (
	"net/http"
	"strconv"

	"github.com/careerconnect/careerconnect/internal/services"
	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	Dashboards *services.DashboardService
}

func NewDashboardHandler(dash *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{Dashboards: dash}
}

// Jobseeker is GET /api/dashboard/jobseeker?userId=.
func (h *DashboardHandler) Jobseeker(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Query("userId"), 10, 32)
	if err != nil {
		badRequest(c, "Invalid or missing userId")
		return
	}

	rows, err := h.Dashboards.Jobseeker(uint(userID))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// Recruiter is GET /api/dashboard/recruiter?recruiterId=.
func (h *DashboardHandler) Recruiter(c *gin.Context) {
	recruiterID, err := strconv.ParseUint(c.Query("recruiterId"), 10, 32)
	if err != nil {
		badRequest(c, "Invalid or missing recruiterId")
		return
	}

	rows, err := h.Dashboards.Recruiter(uint(recruiterID))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// Analytics is GET /api/dashboard/recruiter/analytics?recruiterId=.
func (h *DashboardHandler) Analytics(c *gin.Context) {
	recruiterID, err := strconv.ParseUint(c.Query("recruiterId"), 10, 32)
	if err != nil {
		badRequest(c, "Invalid or missing recruiterId")
		return
	}

	rows, err := h.Dashboards.Analytics(uint(recruiterID))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}
