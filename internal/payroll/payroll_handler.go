package payroll

import (
	"net/http"

	"lt-att-backend/internal/middleware"
	"lt-att-backend/internal/shared/apperror"
	"lt-att-backend/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func bindReportQuery(c *gin.Context) (SalaryReportRequest, bool) {
	var req SalaryReportRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Input tidak valid", apperror.MapValidationError(err).Error())
		return req, false
	}
	return req, true
}

func (h *Handler) GetSalaryReport(c *gin.Context) {
	req, ok := bindReportQuery(c)
	if !ok {
		return
	}

	resp, err := h.service.GenerateSalaryReport(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) ExportSalaryReport(c *gin.Context) {
	req, ok := bindReportQuery(c)
	if !ok {
		return
	}

	file, err := h.service.ExportSalaryReport(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Attachment(c, http.StatusOK, file.ContentType, file.Name, file.Content)
}

func (h *Handler) GetPayslip(c *gin.Context) {
	var req PayslipRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Input tidak valid", apperror.MapValidationError(err).Error())
		return
	}

	file, err := h.service.GetPayslip(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Attachment(c, http.StatusOK, file.ContentType, file.Name, file.Content)
}

func (h *Handler) RequestExport(c *gin.Context) {
	var req SalaryReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Input tidak valid", apperror.MapValidationError(err).Error())
		return
	}

	resp, err := h.service.RequestSalaryReportExport(c.Request.Context(), middleware.ActorFromContext(c), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.Set(middleware.IdempotencyResultKey, resp)
	response.Success(c, http.StatusAccepted, resp, nil)
}

func (h *Handler) GetExport(c *gin.Context) {
	resp, err := h.service.GetSalaryReportExport(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) DownloadExport(c *gin.Context) {
	file, err := h.service.DownloadSalaryReportExport(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Attachment(c, http.StatusOK, file.ContentType, file.Name, file.Content)
}
