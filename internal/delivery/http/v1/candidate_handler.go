package v1

import (
	"errors"
	"io"
	"net/http"

	"go-hr-backend/internal/delivery/http/response"
	"go-hr-backend/internal/domain"
	"go-hr-backend/pkg/apperror"
	"go-hr-backend/pkg/imaging"

	"github.com/gin-gonic/gin"
)

const maxImageSize = 5 << 20

type CandidateHandler struct {
	candidateUC domain.CandidateUsecase
}

func NewCandidateHandler(r *gin.RouterGroup, candidateUC domain.CandidateUsecase, upload gin.HandlerFunc) {
	handler := &CandidateHandler{candidateUC: candidateUC}

	candidates := r.Group("/candidates")
	{
		candidates.GET("", handler.List)
		candidates.GET("/:id", handler.Get)
		candidates.POST("", handler.Create)
		candidates.PATCH("/:id", handler.Update)
		candidates.DELETE("/:id", handler.Delete)
		candidates.POST("/:id/image", upload, handler.UploadImage)
	}
}

// List godoc
// @Summary      List candidates
// @Description  Every candidate in store order
// @Tags         candidates
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Candidate}
// @Failure      503  {object}  response.Response
// @Router       /candidates [get]
// @Security     BearerAuth
func (h *CandidateHandler) List(c *gin.Context) {
	candidates, err := h.candidateUC.ListCandidates(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Candidates retrieved", candidates)
}

// Get godoc
// @Summary      Get candidate
// @Tags         candidates
// @Produce      json
// @Param        id   path      string  true  "Candidate ID"
// @Success      200  {object}  response.Response{data=domain.Candidate}
// @Failure      404  {object}  response.Response
// @Router       /candidates/{id} [get]
// @Security     BearerAuth
func (h *CandidateHandler) Get(c *gin.Context) {
	candidate, err := h.candidateUC.GetCandidate(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Candidate retrieved", candidate)
}

// Create godoc
// @Summary      Register candidate
// @Description  Name, email, phone, address and gender are required. Phone must be 8-15 digits.
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        candidate  body      domain.Candidate  true  "Candidate JSON"
// @Success      201        {object}  response.Response{data=domain.Candidate}
// @Failure      400        {object}  response.Response
// @Failure      422        {object}  response.Response
// @Router       /candidates [post]
// @Security     BearerAuth
func (h *CandidateHandler) Create(c *gin.Context) {
	var candidate domain.Candidate
	if err := c.ShouldBindJSON(&candidate); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	if err := h.candidateUC.RegisterCandidate(c.Request.Context(), &candidate); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Candidate registered", candidate)
}

// Update godoc
// @Summary      Update candidate
// @Description  Overwrites only the fields present in the body. Last write wins.
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        id     path      string                 true  "Candidate ID"
// @Param        patch  body      domain.CandidatePatch  true  "Fields to overwrite"
// @Success      200    {object}  response.Response{data=domain.Candidate}
// @Failure      404    {object}  response.Response
// @Failure      422    {object}  response.Response
// @Router       /candidates/{id} [patch]
// @Security     BearerAuth
func (h *CandidateHandler) Update(c *gin.Context) {
	var patch domain.CandidatePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	candidate, err := h.candidateUC.UpdateCandidate(c.Request.Context(), c.Param("id"), &patch)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Candidate updated", candidate)
}

// Delete godoc
// @Summary      Delete candidate
// @Tags         candidates
// @Param        id   path      string  true  "Candidate ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /candidates/{id} [delete]
// @Security     BearerAuth
func (h *CandidateHandler) Delete(c *gin.Context) {
	if err := h.candidateUC.DeleteCandidate(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Candidate deleted", nil)
}

// UploadImage godoc
// @Summary      Upload profile image
// @Description  JPEG or PNG up to 5MB, stored downscaled to 512px
// @Tags         candidates
// @Accept       multipart/form-data
// @Produce      json
// @Param        id    path      string  true  "Candidate ID"
// @Param        file  formData  file    true  "Image"
// @Success      200   {object}  response.Response{data=domain.Candidate}
// @Failure      400   {object}  response.Response
// @Failure      503   {object}  response.Response
// @Router       /candidates/{id}/image [post]
// @Security     BearerAuth
func (h *CandidateHandler) UploadImage(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxImageSize+1<<20)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.Error(apperror.BadRequest("Multipart field \"file\" is required"))
		return
	}
	if fileHeader.Size > maxImageSize {
		c.Error(apperror.BadRequest("Image must be 5MB or smaller"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.Error(apperror.BadRequest("Could not read uploaded file"))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.Error(apperror.BadRequest("Could not read uploaded file"))
		return
	}
	if err := imaging.ValidateUpload(fileHeader.Filename, data); err != nil {
		if errors.Is(err, imaging.ErrTooLarge) {
			c.Error(apperror.New(http.StatusRequestEntityTooLarge, "Image dimensions are too large", nil))
			return
		}
		c.Error(apperror.BadRequest("Only JPEG or PNG images are accepted"))
		return
	}

	candidate, err := h.candidateUC.UploadProfileImage(c.Request.Context(), c.Param("id"), data)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Profile image updated", candidate)
}
