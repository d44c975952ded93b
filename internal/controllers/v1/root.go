package v1

import (
	"net/http"

	"github.com/envelope-zero/networth/internal/httputil"
	"github.com/gin-gonic/gin"
)

type Response struct {
	Links Links `json:"links"` // Links for the v1 API
}

type Links struct {
	SavingsSources   string `json:"savingsSources" example:"https://example.com/api/v1/savings-sources"`     // URL of the savings source collection endpoint
	FinancialRecords string `json:"financialRecords" example:"https://example.com/api/v1/financial-records"` // URL of the financial record collection endpoint
	Export           string `json:"export" example:"https://example.com/api/v1/export"`                      // URL of the export endpoint
	Import           string `json:"import" example:"https://example.com/api/v1/import"`                      // URL of the import endpoint
}

// @Summary		v1 API
// @Description	Returns the links to all v1 endpoints
// @Tags			v1
// @Success		200	{object}	Response
// @Router			/v1 [get]
func Get(c *gin.Context) {
	url := httputil.BaseURL(c)

	c.JSON(http.StatusOK, Response{
		Links: Links{
			SavingsSources:   url + "/v1/savings-sources",
			FinancialRecords: url + "/v1/financial-records",
			Export:           url + "/v1/export",
			Import:           url + "/v1/import",
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			v1
// @Success		204
// @Router			/v1 [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}
