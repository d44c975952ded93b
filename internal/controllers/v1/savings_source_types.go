package v1

import (
	"fmt"

	"github.com/envelope-zero/networth/internal/httputil"
	"github.com/envelope-zero/networth/internal/models"
	"github.com/gin-gonic/gin"
)

// SavingsSourceEditable represents all user configurable parameters
type SavingsSourceEditable struct {
	Name string `json:"name" example:"Savings account"` // Name of the savings source
}

// SavingsSourcePatch contains the parameters of a savings source to update.
// An empty or missing name keeps the current name.
type SavingsSourcePatch struct {
	Name *string `json:"name" example:"Brokerage"` // New name of the savings source
}

type SavingsSourceLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/savings-sources/8e7c1a0f-4a4b-4f0d-b3d3-4dd1d2b3a6c9"` // The savings source itself
}

// SavingsSource is the API v1 representation of a savings source.
type SavingsSource struct {
	models.SavingsSource
	Links SavingsSourceLinks `json:"links"`
}

func newSavingsSource(c *gin.Context, model models.SavingsSource) SavingsSource {
	return SavingsSource{
		SavingsSource: model,
		Links: SavingsSourceLinks{
			Self: fmt.Sprintf("%s/v1/savings-sources/%s", httputil.BaseURL(c), model.ID),
		},
	}
}

type SavingsSourceQueryFilter struct {
	Name string `form:"name"` // Glob pattern the name must match, e.g. "Bank*"
}

type SavingsSourceListResponse struct {
	Data  []SavingsSource `json:"data"`                                                       // List of savings sources
	Error *string         `json:"error" example:"there is no savings source matching your query"` // The error, if any occurred
}

type SavingsSourceResponse struct {
	Data  *SavingsSource `json:"data"`                                                       // Data for the savings source
	Error *string        `json:"error" example:"there is no savings source matching your query"` // The error, if any occurred
}
