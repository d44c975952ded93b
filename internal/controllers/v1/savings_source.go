package v1

import (
	"net/http"

	"github.com/envelope-zero/networth/internal/httputil"
	"github.com/gin-gonic/gin"
	"github.com/ryanuber/go-glob"
)

// RegisterSavingsSourceRoutes registers the routes for savings sources with
// the RouterGroup that is passed.
func (co Controller) RegisterSavingsSourceRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsSavingsSourceList)
		r.GET("", co.GetSavingsSources)
		r.POST("", co.CreateSavingsSource)
	}

	// Savings source with ID
	{
		r.OPTIONS("/:id", co.OptionsSavingsSourceDetail)
		r.GET("/:id", co.GetSavingsSource)
		r.PATCH("/:id", co.UpdateSavingsSource)
		r.DELETE("/:id", co.DeleteSavingsSource)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Savings Sources
// @Success		204
// @Router			/v1/savings-sources [options]
func OptionsSavingsSourceList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Savings Sources
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path	string	true	"ID of the savings source"
// @Router			/v1/savings-sources/{id} [options]
func (co Controller) OptionsSavingsSourceDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	_, err = co.SavingsSources.Get(c.Request.Context(), uri.ID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		List savings sources
// @Description	Returns all savings sources
// @Tags			Savings Sources
// @Produce		json
// @Success		200	{object}	SavingsSourceListResponse
// @Failure		500	{object}	SavingsSourceListResponse
// @Param			name	query	string	false	"Filter by name. Supports glob patterns, e.g. \"Bank*\""
// @Router			/v1/savings-sources [get]
func (co Controller) GetSavingsSources(c *gin.Context) {
	var filter SavingsSourceQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	sources, err := co.SavingsSources.List(c.Request.Context())
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SavingsSourceListResponse{
			Error: &s,
		})
		return
	}

	data := make([]SavingsSource, 0, len(sources))
	for _, source := range sources {
		if filter.Name != "" && !glob.Glob(filter.Name, source.Name) {
			continue
		}

		data = append(data, newSavingsSource(c, source))
	}

	c.JSON(http.StatusOK, SavingsSourceListResponse{
		Data: data,
	})
}

// @Summary		Get savings source
// @Description	Returns a specific savings source
// @Tags			Savings Sources
// @Produce		json
// @Success		200	{object}	SavingsSourceResponse
// @Failure		400	{object}	SavingsSourceResponse
// @Failure		404	{object}	SavingsSourceResponse
// @Failure		500	{object}	SavingsSourceResponse
// @Param			id	path	string	true	"ID of the savings source"
// @Router			/v1/savings-sources/{id} [get]
func (co Controller) GetSavingsSource(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SavingsSourceResponse{
			Error: &s,
		})
		return
	}

	source, err := co.SavingsSources.Get(c.Request.Context(), uri.ID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SavingsSourceResponse{
			Error: &s,
		})
		return
	}

	data := newSavingsSource(c, source)
	c.JSON(http.StatusOK, SavingsSourceResponse{
		Data: &data,
	})
}

// @Summary		Create savings source
// @Description	Creates a new savings source. All financial records get a value of 0 for it
// @Tags			Savings Sources
// @Accept			json
// @Produce		json
// @Success		201	{object}	SavingsSourceResponse
// @Failure		400	{object}	SavingsSourceResponse
// @Failure		500	{object}	SavingsSourceResponse
// @Param			savingsSource	body	SavingsSourceEditable	true	"Savings source"
// @Router			/v1/savings-sources [post]
func (co Controller) CreateSavingsSource(c *gin.Context) {
	var editable SavingsSourceEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SavingsSourceResponse{
			Error: &s,
		})
		return
	}

	source, err := co.SavingsSources.Create(c.Request.Context(), editable.Name)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SavingsSourceResponse{
			Error: &s,
		})
		return
	}

	data := newSavingsSource(c, source)
	c.JSON(http.StatusCreated, SavingsSourceResponse{
		Data: &data,
	})
}

// @Summary		Update savings source
// @Description	Renames a savings source. The copy embedded in every financial record is updated, too
// @Tags			Savings Sources
// @Accept			json
// @Produce		json
// @Success		200	{object}	SavingsSourceResponse
// @Failure		400	{object}	SavingsSourceResponse
// @Failure		403	{object}	SavingsSourceResponse
// @Failure		404	{object}	SavingsSourceResponse
// @Failure		500	{object}	SavingsSourceResponse
// @Param			id	path	string	true	"ID of the savings source"
// @Param			savingsSource	body	SavingsSourcePatch	true	"Savings source"
// @Router			/v1/savings-sources/{id} [patch]
func (co Controller) UpdateSavingsSource(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SavingsSourceResponse{
			Error: &s,
		})
		return
	}

	var patch SavingsSourcePatch
	err = httputil.BindData(c, &patch)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SavingsSourceResponse{
			Error: &s,
		})
		return
	}

	source, err := co.SavingsSources.Update(c.Request.Context(), uri.ID, patch.Name)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SavingsSourceResponse{
			Error: &s,
		})
		return
	}

	data := newSavingsSource(c, source)
	c.JSON(http.StatusOK, SavingsSourceResponse{
		Data: &data,
	})
}

// @Summary		Delete savings source
// @Description	Deletes a savings source. Its amounts are added to the NA savings source in all financial records
// @Tags			Savings Sources
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		403	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path	string	true	"ID of the savings source"
// @Router			/v1/savings-sources/{id} [delete]
func (co Controller) DeleteSavingsSource(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = co.SavingsSources.Delete(c.Request.Context(), uri.ID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.Status(http.StatusNoContent)
}
