package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/SscSPs/statement_converter/internal/apperrors"
	"github.com/SscSPs/statement_converter/internal/core/domain"
	portssvc "github.com/SscSPs/statement_converter/internal/core/ports/services"
	"github.com/SscSPs/statement_converter/internal/dto"
	"github.com/SscSPs/statement_converter/internal/middleware"
	"github.com/SscSPs/statement_converter/internal/utils"
	"github.com/gin-gonic/gin"
)

// ConversionIDHeader carries the ID of the conversion record on every conversion response.
const ConversionIDHeader = "X-Conversion-ID"

// anonymousRequester is recorded when the API runs without authentication.
const anonymousRequester = "anonymous"

var contentTypes = map[domain.Format]string{
	domain.FormatCAMT053: "application/xml; charset=utf-8",
	domain.FormatMT940:   "text/plain; charset=utf-8",
	domain.FormatCSV:     "text/csv; charset=utf-8",
}

// conversionHandler handles HTTP requests related to statement conversions.
type conversionHandler struct {
	conversionService portssvc.ConversionSvcFacade
	posthogClient     *utils.PosthogClientWrapper
	maxUploadBytes    int64
}

// newConversionHandler creates a new conversionHandler.
func newConversionHandler(cs portssvc.ConversionSvcFacade, posthogClient *utils.PosthogClientWrapper, maxUploadBytes int64) *conversionHandler {
	return &conversionHandler{
		conversionService: cs,
		posthogClient:     posthogClient,
		maxUploadBytes:    maxUploadBytes,
	}
}

// RegisterConversionRoutes registers routes related to conversions.
func RegisterConversionRoutes(rg *gin.RouterGroup, conversionService portssvc.ConversionSvcFacade, posthogClient *utils.PosthogClientWrapper, maxUploadBytes int64) {
	h := newConversionHandler(conversionService, posthogClient, maxUploadBytes)

	conversions := rg.Group("/conversions")
	{
		conversions.POST("/:from/:to", h.convert)
		conversions.GET("", h.listConversions)
		conversions.GET("/:conversionID", h.getConversion)
	}
}

// convert godoc
// @Summary Convert a bank statement
// @Description Converts the raw request body from one statement format to another. "stdout" on either side means "same format as the other side".
// @Tags conversions
// @Accept plain
// @Produce plain
// @Param from path string true "Source format" Enums(camt053, mt940, csv, stdout)
// @Param to path string true "Target format" Enums(camt053, mt940, csv, stdout)
// @Param statement body string true "Statement in the source format"
// @Success 200 {string} string "Statement in the target format"
// @Header 200 {string} X-Conversion-ID "Conversion record ID"
// @Failure 400 {object} dto.ErrorResponse "Unsupported format combination"
// @Failure 413 {object} dto.ErrorResponse "Statement too large"
// @Failure 422 {object} dto.ErrorResponse "Statement could not be converted"
// @Failure 429 {object} map[string]string "Too many requests"
// @Failure 500 {object} dto.ErrorResponse "Internal error"
// @Security BearerAuth
// @Router /conversions/{from}/{to} [post]
func (h *conversionHandler) convert(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	var params dto.ConvertParams
	if err := c.ShouldBindUri(&params); err != nil {
		respondError(c, fmt.Errorf("%w: %v", apperrors.ErrUnsupportedFormat, err))
		return
	}

	route, err := h.conversionService.ResolveRoute(params.From, params.To)
	if err != nil {
		respondError(c, err)
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			logger.Warn("Statement exceeds upload limit", slog.Int64("limit", tooLarge.Limit))
			c.JSON(http.StatusRequestEntityTooLarge, dto.ErrorResponse{
				Error: fmt.Sprintf("statement exceeds %d bytes", tooLarge.Limit),
				Kind:  apperrors.Kind(apperrors.ErrValidation),
			})
			return
		}
		respondError(c, fmt.Errorf("%w: read request body: %v", apperrors.ErrMalformedInput, err))
		return
	}

	requestedBy, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		requestedBy = anonymousRequester
	}

	var out bytes.Buffer
	result, err := h.conversionService.Convert(c.Request.Context(), route, bytes.NewReader(body), &out, requestedBy)
	if err != nil {
		respondError(c, err)
		return
	}

	middleware.PosthogEvent(c, h.posthogClient, "statement_converted", map[string]any{
		"from":        string(route.From),
		"to":          string(route.To),
		"entry_count": result.EntryCount,
		"bytes_in":    result.BytesIn,
	})

	c.Header(ConversionIDHeader, result.ConversionID)
	c.Data(http.StatusOK, contentTypes[route.To], out.Bytes())
}

// getConversion godoc
// @Summary Get a conversion record
// @Description Retrieves the metadata kept about one conversion
// @Tags conversions
// @Produce json
// @Param conversionID path string true "Conversion ID" Format(uuid)
// @Success 200 {object} dto.ConversionRecordResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid conversion ID"
// @Failure 404 {object} dto.ErrorResponse "Conversion not found or history disabled"
// @Failure 500 {object} dto.ErrorResponse "Internal error"
// @Security BearerAuth
// @Router /conversions/{conversionID} [get]
func (h *conversionHandler) getConversion(c *gin.Context) {
	var params dto.GetConversionParams
	if err := c.ShouldBindUri(&params); err != nil {
		respondError(c, fmt.Errorf("%w: %v", apperrors.ErrValidation, err))
		return
	}

	record, err := h.conversionService.GetConversionRecord(c.Request.Context(), params.ConversionID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToConversionRecordResponse(record))
}

// listConversions godoc
// @Summary List conversion records
// @Description Lists conversion records newest first with token-based pagination
// @Tags conversions
// @Produce json
// @Param limit query int false "Page size" minimum(1) maximum(100) default(20)
// @Param nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListConversionRecordsResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid query parameters"
// @Failure 404 {object} dto.ErrorResponse "History disabled"
// @Failure 500 {object} dto.ErrorResponse "Internal error"
// @Security BearerAuth
// @Router /conversions [get]
func (h *conversionHandler) listConversions(c *gin.Context) {
	var params dto.ListConversionRecordsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondError(c, fmt.Errorf("%w: %v", apperrors.ErrValidation, err))
		return
	}

	resp, err := h.conversionService.ListConversionRecords(c.Request.Context(), params)
	if err != nil {
		respondError(c, err)
		return
	}

	middleware.GetLoggerFromContext(c).Info("Conversion records listed", slog.Int("count", len(resp.Conversions)))
	c.JSON(http.StatusOK, resp)
}
