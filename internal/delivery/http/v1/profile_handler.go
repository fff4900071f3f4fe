package v1

import (
	"fmt"
	"net/http"

	"muto-jobboard/internal/delivery/http/response"
	"muto-jobboard/internal/domain"
	"muto-jobboard/pkg/apperror"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ProfileHandler struct {
	profileUC domain.ProfileUsecase
}

// NewProfileHandler registers the profile routes on a group that already
// requires a signed-in identity.
func NewProfileHandler(protected *gin.RouterGroup, profileUC domain.ProfileUsecase) {
	handler := &ProfileHandler{profileUC: profileUC}

	profile := protected.Group("/profile")
	{
		profile.GET("", handler.Get)
		profile.PUT("", handler.Save)
		profile.GET("/applications/export", handler.Export)
	}
}

// GetProfile godoc
// @Summary      Profile page
// @Description  The signed-in user's profile form and their applications. Each panel degrades on its own when its read fails.
// @Tags         profile
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.ProfileView}
// @Failure      401  {object}  response.Response
// @Router       /profile [get]
// @Security     BearerAuth
func (h *ProfileHandler) Get(c *gin.Context) {
	view, err := h.profileUC.Load(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Profile", view)
}

// SaveProfile godoc
// @Summary      Save profile
// @Description  Create or replace the signed-in user's profile. Skills are a comma-separated list.
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        body  body      domain.ProfileForm  true  "Profile data"
// @Success      200   {object}  response.Response{data=domain.ProfileForm}
// @Failure      400   {object}  response.Response
// @Failure      401   {object}  response.Response
// @Failure      422   {object}  response.Response
// @Failure      502   {object}  response.Response
// @Router       /profile [put]
// @Security     BearerAuth
func (h *ProfileHandler) Save(c *gin.Context) {
	var form domain.ProfileForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	saved, err := h.profileUC.Save(c.Request.Context(), form)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Profile saved", saved)
}

// ExportApplications godoc
// @Summary      Export my applications
// @Description  Download the signed-in user's applications as an Excel workbook
// @Tags         profile
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}    binary
// @Failure      401  {object}  response.Response
// @Failure      503  {object}  response.Response
// @Router       /profile/applications/export [get]
// @Security     BearerAuth
func (h *ProfileHandler) Export(c *gin.Context) {
	data, filename, err := h.profileUC.ExportApplications(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, xlsxContentType, data)
}
