package v1

import (
	"net/http"

	"muto-jobboard/internal/delivery/http/response"
	"muto-jobboard/internal/domain"
	"muto-jobboard/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	applyUC domain.ApplyJobUsecase
}

// NewApplicationHandler registers the apply-to-job routes. Loading the page is
// public; submitting checks the identity inside the controller so an
// anonymous visitor gets "Please sign in to apply".
func NewApplicationHandler(public *gin.RouterGroup, writeLimit gin.HandlerFunc, applyUC domain.ApplyJobUsecase) {
	handler := &ApplicationHandler{applyUC: applyUC}

	public.GET("/jobs/:id/apply", handler.ApplyPage)
	public.POST("/jobs/:id/apply", writeLimit, handler.Apply)
}

// ApplyPage godoc
// @Summary      Apply-to-job page
// @Description  Title, company and location of the job being applied to
// @Tags         applications
// @Produce      json
// @Param        id   path      string  true  "Job ID (uuid)"
// @Success      200  {object}  response.Response{data=domain.ApplyJobView}
// @Failure      404  {object}  response.Response{data=domain.ApplyJobView}
// @Router       /jobs/{id}/apply [get]
func (h *ApplicationHandler) ApplyPage(c *gin.Context) {
	view := h.applyUC.Load(c.Request.Context(), c.Param("id"))
	if view.State == domain.PageStateNotFound {
		response.Page(c, http.StatusNotFound, view.Message, view)
		return
	}
	response.Page(c, http.StatusOK, "Job details", view)
}

// Apply godoc
// @Summary      Apply to a job
// @Description  Submit a resume URL and cover letter. On success the client navigates to the profile page.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id    path      string                  true  "Job ID (uuid)"
// @Param        body  body      domain.ApplicationForm  true  "Application data"
// @Success      201   {object}  response.Response{data=domain.SubmitResult}
// @Failure      401   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Failure      409   {object}  response.Response
// @Failure      422   {object}  response.Response
// @Failure      429   {object}  response.Response
// @Failure      502   {object}  response.Response
// @Router       /jobs/{id}/apply [post]
// @Security     BearerAuth
func (h *ApplicationHandler) Apply(c *gin.Context) {
	var form domain.ApplicationForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	result, err := h.applyUC.Submit(c.Request.Context(), c.Param("id"), form)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Application submitted", result)
}
