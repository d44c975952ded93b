package v1

import (
	"net/http"

	"github.com/envelope-zero/networth/internal/calculation"
	"github.com/envelope-zero/networth/internal/httputil"
	"github.com/envelope-zero/networth/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterFinancialRecordRoutes registers the routes for financial records
// and their expenses with the RouterGroup that is passed.
func (co Controller) RegisterFinancialRecordRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsFinancialRecordList)
		r.GET("", co.GetFinancialRecords)
		r.POST("", co.CreateFinancialRecord)
		r.OPTIONS("/seed", OptionsFinancialRecordSeed)
		r.GET("/seed", co.GetFinancialRecordSeed)
	}

	// Financial record with ID
	{
		r.OPTIONS("/:id", co.OptionsFinancialRecordDetail)
		r.GET("/:id", co.GetFinancialRecord)
		r.PATCH("/:id", co.UpdateFinancialRecord)
		r.DELETE("/:id", co.DeleteFinancialRecord)
	}

	co.RegisterExpenseRoutes(r.Group("/:id/expenses"))
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Financial Records
// @Success		204
// @Router			/v1/financial-records [options]
func OptionsFinancialRecordList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Financial Records
// @Success		204
// @Router			/v1/financial-records/seed [options]
func OptionsFinancialRecordSeed(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Financial Records
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path	string	true	"ID of the financial record"
// @Router			/v1/financial-records/{id} [options]
func (co Controller) OptionsFinancialRecordDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	_, err = co.FinancialRecords.Get(c.Request.Context(), uri.ID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		List financial records
// @Description	Returns all financial records, newest first. Every record contains the change of its total compared to the record before it
// @Tags			Financial Records
// @Produce		json
// @Success		200	{object}	FinancialRecordListResponse
// @Failure		500	{object}	FinancialRecordListResponse
// @Router			/v1/financial-records [get]
func (co Controller) GetFinancialRecords(c *gin.Context) {
	records, err := co.FinancialRecords.List(c.Request.Context())
	if err != nil {
		s := err.Error()
		c.JSON(status(err), FinancialRecordListResponse{
			Error: &s,
		})
		return
	}

	data := make([]FinancialRecordSummary, 0, len(records))
	for i, record := range records {
		pair := models.FinancialRecordPair{Current: record}
		if i+1 < len(records) {
			pair.Previous = &records[i+1]
		}

		data = append(data, FinancialRecordSummary{
			FinancialRecord: newFinancialRecord(c, record),
			Difference:      calculation.PairDifference(pair),
		})
	}

	c.JSON(http.StatusOK, FinancialRecordListResponse{
		Data: data,
	})
}

// @Summary		Values for a new financial record
// @Description	Returns the values of the newest financial record for all current savings sources. Savings sources without a value get 0
// @Tags			Financial Records
// @Produce		json
// @Success		200	{object}	SeedResponse
// @Failure		500	{object}	SeedResponse
// @Router			/v1/financial-records/seed [get]
func (co Controller) GetFinancialRecordSeed(c *gin.Context) {
	values, err := co.FinancialRecords.Seed(c.Request.Context())
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SeedResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, SeedResponse{
		Data: values,
	})
}

// @Summary		Get financial record
// @Description	Returns a financial record together with the record before it and the changes between the two
// @Tags			Financial Records
// @Produce		json
// @Success		200	{object}	FinancialRecordPairResponse
// @Failure		400	{object}	FinancialRecordPairResponse
// @Failure		404	{object}	FinancialRecordPairResponse
// @Failure		500	{object}	FinancialRecordPairResponse
// @Param			id	path	string	true	"ID of the financial record"
// @Router			/v1/financial-records/{id} [get]
func (co Controller) GetFinancialRecord(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), FinancialRecordPairResponse{
			Error: &s,
		})
		return
	}

	pair, err := co.FinancialRecords.Pair(c.Request.Context(), uri.ID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), FinancialRecordPairResponse{
			Error: &s,
		})
		return
	}

	data := newFinancialRecordPair(c, pair)
	c.JSON(http.StatusOK, FinancialRecordPairResponse{
		Data: &data,
	})
}

// @Summary		Create financial record
// @Description	Creates a new financial record with one value per savings source. Savings sources without an amount get 0, unknown savings sources are ignored
// @Tags			Financial Records
// @Accept			json
// @Produce		json
// @Success		201	{object}	FinancialRecordResponse
// @Failure		400	{object}	FinancialRecordResponse
// @Failure		500	{object}	FinancialRecordResponse
// @Param			financialRecord	body	FinancialRecordEditable	true	"Financial record"
// @Router			/v1/financial-records [post]
func (co Controller) CreateFinancialRecord(c *gin.Context) {
	var editable FinancialRecordEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), FinancialRecordResponse{
			Error: &s,
		})
		return
	}

	record, err := co.FinancialRecords.Create(c.Request.Context(), editable.model())
	if err != nil {
		s := err.Error()
		c.JSON(status(err), FinancialRecordResponse{
			Error: &s,
		})
		return
	}

	data := newFinancialRecord(c, record)
	c.JSON(http.StatusCreated, FinancialRecordResponse{
		Data: &data,
	})
}

// @Summary		Update financial record
// @Description	Replaces the values of a financial record
// @Tags			Financial Records
// @Accept			json
// @Produce		json
// @Success		200	{object}	FinancialRecordResponse
// @Failure		400	{object}	FinancialRecordResponse
// @Failure		404	{object}	FinancialRecordResponse
// @Failure		500	{object}	FinancialRecordResponse
// @Param			id	path	string	true	"ID of the financial record"
// @Param			financialRecord	body	FinancialRecordEditable	true	"Financial record"
// @Router			/v1/financial-records/{id} [patch]
func (co Controller) UpdateFinancialRecord(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), FinancialRecordResponse{
			Error: &s,
		})
		return
	}

	var editable FinancialRecordEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), FinancialRecordResponse{
			Error: &s,
		})
		return
	}

	record, err := co.FinancialRecords.Update(c.Request.Context(), uri.ID, editable.model())
	if err != nil {
		s := err.Error()
		c.JSON(status(err), FinancialRecordResponse{
			Error: &s,
		})
		return
	}

	data := newFinancialRecord(c, record)
	c.JSON(http.StatusOK, FinancialRecordResponse{
		Data: &data,
	})
}

// @Summary		Delete financial record
// @Description	Deletes a financial record together with its expenses
// @Tags			Financial Records
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path	string	true	"ID of the financial record"
// @Router			/v1/financial-records/{id} [delete]
func (co Controller) DeleteFinancialRecord(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = co.FinancialRecords.Delete(c.Request.Context(), uri.ID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.Status(http.StatusNoContent)
}
