package healthz

import (
	"net/http"

	"github.com/envelope-zero/networth/internal/httputil"
	"github.com/envelope-zero/networth/internal/repository"
	"github.com/gin-gonic/gin"
)

type httpError struct {
	Error string `json:"error" example:"storage is unavailable"`
}

type Controller struct {
	store *repository.Store
}

func New(store *repository.Store) Controller {
	return Controller{store: store}
}

func (co Controller) RegisterRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", Options)
	r.GET("", co.Get)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/healthz [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get health
// @Description	Returns 204 when the storage is available and an error otherwise
// @Tags			General
// @Produce		json
// @Success		204
// @Failure		500	{object}	httpError
// @Router			/healthz [get]
func (co Controller) Get(c *gin.Context) {
	err := co.store.Ping(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, httpError{
			Error: err.Error(),
		})
		return
	}

	c.Status(http.StatusNoContent)
}
