package v1

import (
	"net/http"

	"muto-jobboard/internal/delivery/http/response"
	"muto-jobboard/internal/domain"
	"muto-jobboard/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	listingUC domain.JobsListingUsecase
	postJobUC domain.PostJobUsecase
}

// NewJobHandler registers the jobs listing and post-job routes. Both are
// public; the post route gets the stricter write limiter.
func NewJobHandler(public *gin.RouterGroup, writeLimit gin.HandlerFunc, listingUC domain.JobsListingUsecase, postJobUC domain.PostJobUsecase) {
	handler := &JobHandler{listingUC: listingUC, postJobUC: postJobUC}

	public.GET("/jobs", handler.List)
	public.GET("/post-job", handler.PostForm)
	public.POST("/jobs", writeLimit, handler.Create)
}

// ListJobs godoc
// @Summary      List open jobs
// @Description  Active job listings, newest first, optionally filtered by a search term over title, company and location
// @Tags         jobs
// @Produce      json
// @Param        q    query     string  false  "Search term"
// @Success      200  {object}  response.Response{data=domain.JobsListingView}
// @Failure      503  {object}  response.Response{data=domain.JobsListingView}
// @Router       /jobs [get]
func (h *JobHandler) List(c *gin.Context) {
	view := h.listingUC.Load(c.Request.Context(), c.Query("q"))

	switch view.State {
	case domain.PageStateFailed:
		response.Page(c, http.StatusServiceUnavailable, view.Message, view)
	case domain.PageStateEmpty:
		response.Page(c, http.StatusOK, view.Message, view)
	default:
		response.Page(c, http.StatusOK, "Job list", view)
	}
}

// PostJobForm godoc
// @Summary      Post-job form definition
// @Description  Employment type options plus required and optional fields of the post-job form
// @Tags         jobs
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.JobFormDefinition}
// @Router       /post-job [get]
func (h *JobHandler) PostForm(c *gin.Context) {
	response.Success(c, http.StatusOK, "Post job form", h.postJobUC.Form())
}

// CreateJob godoc
// @Summary      Post a job
// @Description  Publish a new job listing. The listing is always stored as active.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        job  body      domain.PostJobForm  true  "Job JSON"
// @Success      201  {object}  response.Response{data=domain.SubmitResult}
// @Failure      400  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Failure      422  {object}  response.Response
// @Failure      429  {object}  response.Response
// @Failure      502  {object}  response.Response
// @Router       /jobs [post]
func (h *JobHandler) Create(c *gin.Context) {
	var form domain.PostJobForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	result, err := h.postJobUC.Submit(c.Request.Context(), form, c.ClientIP())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Job posted", result)
}
