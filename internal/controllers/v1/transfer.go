package v1

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/envelope-zero/networth/internal/httputil"
	"github.com/envelope-zero/networth/internal/models"
	"github.com/gin-gonic/gin"
)

// exportFileDate is the date layout used in the name of export files.
const exportFileDate = "2006-01-02"

type ImportResponse struct {
	Data  *ImportSummary `json:"data"`                                                                                          // Summary of the imported data
	Error *string        `json:"error" example:"invalid file format. Expected 'financialRecords' and 'savingsSources' arrays"` // The error, if any occurred
}

type ImportSummary struct {
	FinancialRecords int `json:"financialRecords" example:"24"` // Number of imported financial records
	SavingsSources   int `json:"savingsSources" example:"5"`    // Number of imported savings sources
}

// RegisterExportRoutes registers the routes for the export with
// the RouterGroup that is passed.
func (co Controller) RegisterExportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsExport)
	r.GET("", co.GetExport)
}

// RegisterImportRoutes registers the routes for the import with
// the RouterGroup that is passed.
func (co Controller) RegisterImportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsImport)
	r.POST("", co.Import)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Import/Export
// @Success		204
// @Router			/v1/export [options]
func OptionsExport(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Import/Export
// @Success		204
// @Router			/v1/import [options]
func OptionsImport(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Export
// @Description	Returns all savings sources and financial records as a file download
// @Tags			Import/Export
// @Produce		json
// @Success		200	{object}	models.Document
// @Failure		500	{object}	httpError
// @Router			/v1/export [get]
func (co Controller) GetExport(c *gin.Context) {
	doc, err := co.Transfer.Export(c.Request.Context())
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	filename := fmt.Sprintf("finance-app-data-%s.json", models.Now().Format(exportFileDate))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.JSON(http.StatusOK, doc)
}

// @Summary		Import
// @Description	Replaces all savings sources and financial records with the contents of an exported file
// @Tags			Import/Export
// @Accept			multipart/form-data
// @Produce		json
// @Success		200	{object}	ImportResponse
// @Failure		400	{object}	ImportResponse
// @Failure		500	{object}	ImportResponse
// @Param			file	formData	file	true	"File to import"
// @Router			/v1/import [post]
func (co Controller) Import(c *gin.Context) {
	f, err := getUploadedFile(c, ".json")
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ImportResponse{
			Error: &s,
		})
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ImportResponse{
			Error: &s,
		})
		return
	}

	doc, err := co.Transfer.Import(c.Request.Context(), data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ImportResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, ImportResponse{
		Data: &ImportSummary{
			FinancialRecords: len(doc.FinancialRecords),
			SavingsSources:   len(doc.SavingsSources),
		},
	})
}

// getUploadedFile returns the form file and handles potential errors.
func getUploadedFile(c *gin.Context, suffix string) (multipart.File, error) {
	formFile, err := c.FormFile("file")
	if formFile == nil {
		return nil, errNoFilePost
	}

	if err != nil {
		return nil, err
	}

	if !strings.HasSuffix(formFile.Filename, suffix) {
		return nil, fmt.Errorf("%w: %s", errWrongFileSuffix, suffix)
	}

	f, err := formFile.Open()
	if err != nil {
		return nil, err
	}

	return f, nil
}
