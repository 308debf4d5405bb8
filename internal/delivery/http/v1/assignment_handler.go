package v1

import (
	"net/http"

	"go-hr-backend/internal/delivery/http/response"
	"go-hr-backend/internal/domain"
	"go-hr-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type AssignmentHandler struct {
	assignmentUC domain.AssignmentUsecase
}

func NewAssignmentHandler(r *gin.RouterGroup, assignmentUC domain.AssignmentUsecase) {
	handler := &AssignmentHandler{assignmentUC: assignmentUC}

	r.POST("/assignments", handler.Assign)
	r.GET("/assignments", handler.List)
	r.DELETE("/candidates/:id/assignment", handler.Unassign)
}

type AssignRequest struct {
	CandidateID string `json:"candidate_id"`
	VacancyID   string `json:"vacancy_id"`
}

// Assign godoc
// @Summary      Assign candidate to vacancy
// @Description  Copies the vacancy title and id onto the candidate, replacing any previous assignment
// @Tags         assignments
// @Accept       json
// @Produce      json
// @Param        assignment  body      AssignRequest  true  "Candidate and vacancy"
// @Success      200         {object}  response.Response{data=domain.Assignment}
// @Failure      404         {object}  response.Response
// @Failure      422         {object}  response.Response
// @Router       /assignments [post]
// @Security     BearerAuth
func (h *AssignmentHandler) Assign(c *gin.Context) {
	var req AssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	assignment, err := h.assignmentUC.Assign(c.Request.Context(), req.CandidateID, req.VacancyID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Candidate assigned", assignment)
}

// List godoc
// @Summary      List assignments
// @Description  Every assigned candidate; dangling marks a vacancy that no longer exists
// @Tags         assignments
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.AssignmentView}
// @Router       /assignments [get]
// @Security     BearerAuth
func (h *AssignmentHandler) List(c *gin.Context) {
	views, err := h.assignmentUC.ListAssignments(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Assignments retrieved", views)
}

// Unassign godoc
// @Summary      Clear a candidate's assignment
// @Tags         assignments
// @Param        id   path      string  true  "Candidate ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /candidates/{id}/assignment [delete]
// @Security     BearerAuth
func (h *AssignmentHandler) Unassign(c *gin.Context) {
	if err := h.assignmentUC.Unassign(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Assignment cleared", nil)
}
