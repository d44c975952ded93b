package v1

import (
	"net/http"

	"github.com/envelope-zero/networth/internal/httputil"
	"github.com/envelope-zero/networth/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterExpenseRoutes registers the routes for the expenses of a financial
// record with the RouterGroup that is passed.
func (co Controller) RegisterExpenseRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsExpenseList)
		r.GET("", co.GetExpenses)
		r.POST("", co.CreateExpense)
	}

	// Expense with ID
	{
		r.OPTIONS("/:expenseId", OptionsExpenseDetail)
		r.PATCH("/:expenseId", co.UpdateExpense)
		r.DELETE("/:expenseId", co.DeleteExpense)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Param			id	path	string	true	"ID of the financial record"
// @Router			/v1/financial-records/{id}/expenses [options]
func OptionsExpenseList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Param			id	path	string	true	"ID of the financial record"
// @Param			expenseId	path	string	true	"ID of the expense"
// @Router			/v1/financial-records/{id}/expenses/{expenseId} [options]
func OptionsExpenseDetail(c *gin.Context) {
	httputil.OptionsPatchDelete(c)
}

// @Summary		List expenses
// @Description	Returns the expenses of a financial record
// @Tags			Expenses
// @Produce		json
// @Success		200	{object}	ExpenseListResponse
// @Failure		400	{object}	ExpenseListResponse
// @Failure		404	{object}	ExpenseListResponse
// @Failure		500	{object}	ExpenseListResponse
// @Param			id	path	string	true	"ID of the financial record"
// @Router			/v1/financial-records/{id}/expenses [get]
func (co Controller) GetExpenses(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseListResponse{
			Error: &s,
		})
		return
	}

	expenses, err := co.Expenses.List(c.Request.Context(), uri.ID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseListResponse{
			Error: &s,
		})
		return
	}

	data := make([]Expense, 0, len(expenses))
	for _, expense := range expenses {
		data = append(data, newExpense(c, uri.ID, expense))
	}

	c.JSON(http.StatusOK, ExpenseListResponse{
		Data: data,
	})
}

// @Summary		Create expense
// @Description	Adds an expense to a financial record
// @Tags			Expenses
// @Accept			json
// @Produce		json
// @Success		201	{object}	ExpenseResponse
// @Failure		400	{object}	ExpenseResponse
// @Failure		404	{object}	ExpenseResponse
// @Failure		500	{object}	ExpenseResponse
// @Param			id	path	string	true	"ID of the financial record"
// @Param			expense	body	models.ExpenseInput	true	"Expense"
// @Router			/v1/financial-records/{id}/expenses [post]
func (co Controller) CreateExpense(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &s,
		})
		return
	}

	var input models.ExpenseInput
	err = httputil.BindData(c, &input)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &s,
		})
		return
	}

	expense, err := co.Expenses.Add(c.Request.Context(), uri.ID, input)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &s,
		})
		return
	}

	data := newExpense(c, uri.ID, expense)
	c.JSON(http.StatusCreated, ExpenseResponse{
		Data: &data,
	})
}

// @Summary		Update expense
// @Description	Updates an expense. Only values to be updated need to be specified
// @Tags			Expenses
// @Accept			json
// @Produce		json
// @Success		200	{object}	ExpenseResponse
// @Failure		400	{object}	ExpenseResponse
// @Failure		404	{object}	ExpenseResponse
// @Failure		500	{object}	ExpenseResponse
// @Param			id	path	string	true	"ID of the financial record"
// @Param			expenseId	path	string	true	"ID of the expense"
// @Param			expense	body	models.ExpenseUpdate	true	"Expense"
// @Router			/v1/financial-records/{id}/expenses/{expenseId} [patch]
func (co Controller) UpdateExpense(c *gin.Context) {
	var uri URIExpenseID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &s,
		})
		return
	}

	var update models.ExpenseUpdate
	err = httputil.BindData(c, &update)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &s,
		})
		return
	}

	expense, err := co.Expenses.Update(c.Request.Context(), uri.ID, uri.ExpenseID, update)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &s,
		})
		return
	}

	data := newExpense(c, uri.ID, expense)
	c.JSON(http.StatusOK, ExpenseResponse{
		Data: &data,
	})
}

// @Summary		Delete expense
// @Description	Removes an expense from a financial record
// @Tags			Expenses
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path	string	true	"ID of the financial record"
// @Param			expenseId	path	string	true	"ID of the expense"
// @Router			/v1/financial-records/{id}/expenses/{expenseId} [delete]
func (co Controller) DeleteExpense(c *gin.Context) {
	var uri URIExpenseID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = co.Expenses.Delete(c.Request.Context(), uri.ID, uri.ExpenseID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.Status(http.StatusNoContent)
}
