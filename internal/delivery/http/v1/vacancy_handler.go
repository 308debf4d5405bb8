package v1

import (
	"net/http"

	"go-hr-backend/internal/delivery/http/response"
	"go-hr-backend/internal/domain"
	"go-hr-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type VacancyHandler struct {
	vacancyUC domain.VacancyUsecase
}

func NewVacancyHandler(r *gin.RouterGroup, vacancyUC domain.VacancyUsecase) {
	handler := &VacancyHandler{vacancyUC: vacancyUC}

	vacancies := r.Group("/vacancies")
	{
		vacancies.GET("", handler.List)
		vacancies.GET("/:id", handler.Get)
		vacancies.GET("/:id/candidates", handler.Candidates)
		vacancies.POST("", handler.Create)
		vacancies.PATCH("/:id", handler.Update)
		vacancies.POST("/:id/toggle-status", handler.ToggleStatus)
		vacancies.DELETE("/:id", handler.Delete)
	}
}

// List godoc
// @Summary      List vacancies
// @Tags         vacancies
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Vacancy}
// @Failure      503  {object}  response.Response
// @Router       /vacancies [get]
// @Security     BearerAuth
func (h *VacancyHandler) List(c *gin.Context) {
	vacancies, err := h.vacancyUC.ListVacancies(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Vacancies retrieved", vacancies)
}

// Get godoc
// @Summary      Get vacancy
// @Tags         vacancies
// @Produce      json
// @Param        id   path      string  true  "Vacancy ID"
// @Success      200  {object}  response.Response{data=domain.Vacancy}
// @Failure      404  {object}  response.Response
// @Router       /vacancies/{id} [get]
// @Security     BearerAuth
func (h *VacancyHandler) Get(c *gin.Context) {
	vacancy, err := h.vacancyUC.GetVacancy(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Vacancy retrieved", vacancy)
}

// Candidates godoc
// @Summary      Candidates assigned to a vacancy
// @Tags         vacancies
// @Produce      json
// @Param        id   path      string  true  "Vacancy ID"
// @Success      200  {object}  response.Response{data=[]domain.Candidate}
// @Failure      404  {object}  response.Response
// @Router       /vacancies/{id}/candidates [get]
// @Security     BearerAuth
func (h *VacancyHandler) Candidates(c *gin.Context) {
	candidates, err := h.vacancyUC.ListVacancyCandidates(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Candidates retrieved", candidates)
}

// Create godoc
// @Summary      Register vacancy
// @Description  Title, description, salary, employment type, location and at least one requirement are required. Status defaults to Disponible.
// @Tags         vacancies
// @Accept       json
// @Produce      json
// @Param        vacancy  body      domain.Vacancy  true  "Vacancy JSON"
// @Success      201      {object}  response.Response{data=domain.Vacancy}
// @Failure      422      {object}  response.Response
// @Router       /vacancies [post]
// @Security     BearerAuth
func (h *VacancyHandler) Create(c *gin.Context) {
	var vacancy domain.Vacancy
	if err := c.ShouldBindJSON(&vacancy); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	if err := h.vacancyUC.RegisterVacancy(c.Request.Context(), &vacancy); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Vacancy registered", vacancy)
}

// Update godoc
// @Summary      Update vacancy
// @Description  Partial update. Requisitos, when present, replaces the whole sequence.
// @Tags         vacancies
// @Accept       json
// @Produce      json
// @Param        id     path      string               true  "Vacancy ID"
// @Param        patch  body      domain.VacancyPatch  true  "Fields to overwrite"
// @Success      200    {object}  response.Response{data=domain.Vacancy}
// @Failure      404    {object}  response.Response
// @Failure      422    {object}  response.Response
// @Router       /vacancies/{id} [patch]
// @Security     BearerAuth
func (h *VacancyHandler) Update(c *gin.Context) {
	var patch domain.VacancyPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	vacancy, err := h.vacancyUC.UpdateVacancy(c.Request.Context(), c.Param("id"), &patch)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Vacancy updated", vacancy)
}

// ToggleStatus godoc
// @Summary      Toggle vacancy status
// @Description  Disponible becomes No Disponible; any other status becomes Disponible
// @Tags         vacancies
// @Produce      json
// @Param        id   path      string  true  "Vacancy ID"
// @Success      200  {object}  response.Response{data=domain.Vacancy}
// @Failure      404  {object}  response.Response
// @Router       /vacancies/{id}/toggle-status [post]
// @Security     BearerAuth
func (h *VacancyHandler) ToggleStatus(c *gin.Context) {
	vacancy, err := h.vacancyUC.ToggleStatus(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Vacancy status updated", vacancy)
}

// Delete godoc
// @Summary      Delete vacancy
// @Description  Candidates assigned to the vacancy keep their reference
// @Tags         vacancies
// @Param        id   path      string  true  "Vacancy ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /vacancies/{id} [delete]
// @Security     BearerAuth
func (h *VacancyHandler) Delete(c *gin.Context) {
	if err := h.vacancyUC.DeleteVacancy(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Vacancy deleted", nil)
}
