package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/andikurnia/siperjaka/internal/application/service"
	"github.com/andikurnia/siperjaka/internal/document"
	"github.com/andikurnia/siperjaka/internal/domain/entity"
	"github.com/andikurnia/siperjaka/internal/domain/workflow"
	"github.com/andikurnia/siperjaka/internal/importer"
)

// Handlers contains all HTTP request handlers
type Handlers struct {
	employeeService service.EmployeeService
	settingsService service.SettingsService
	documentService service.DocumentService
	logger          Logger
}

// NewHandlers creates a new Handlers instance
func NewHandlers(
	employeeService service.EmployeeService,
	settingsService service.SettingsService,
	documentService service.DocumentService,
	logger Logger,
) *Handlers {
	return &Handlers{
		employeeService: employeeService,
		settingsService: settingsService,
		documentService: documentService,
		logger:          logger,
	}
}

// Response represents a standard JSON response
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
}

// actor builds the caller identity from the request headers. Authentication
// happens upstream; these headers are trusted.
func actor(c *gin.Context) service.Actor {
	return service.Actor{
		Role: workflow.Role(c.GetHeader("X-Actor-Role")),
		NIP:  c.GetHeader("X-Actor-Nip"),
	}
}

// respondError maps service errors onto HTTP status codes
func (h *Handlers) respondError(c *gin.Context, err error) {
	var vErr *service.ValidationError

	switch {
	case errors.Is(err, service.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, Response{Success: false, Error: err.Error()})
	case errors.Is(err, workflow.ErrIllegalTransition),
		errors.Is(err, service.ErrRenderingUnavailable):
		c.JSON(http.StatusConflict, Response{Success: false, Error: err.Error()})
	case errors.As(err, &vErr):
		status := http.StatusBadRequest
		if vErr.Field == "role" {
			status = http.StatusForbidden
		}
		c.JSON(status, Response{Success: false, Error: err.Error()})
	default:
		h.logger.Error("Request failed", "error", err)
		c.JSON(http.StatusInternalServerError, Response{Success: false, Error: "internal error"})
	}
}

// HealthCheck handles GET /health
func (h *Handlers) HealthCheck(c *gin.Context) {
	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Version:   "1.0.0",
	}

	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    response,
	})
}

// ListEmployees handles GET /api/employees
func (h *Handlers) ListEmployees(c *gin.Context) {
	employees, err := h.employeeService.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, Response{Success: true, Data: employees})
}

// GetEmployee handles GET /api/employees/:id
func (h *Handlers) GetEmployee(c *gin.Context) {
	emp, err := h.employeeService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, Response{Success: true, Data: emp})
}

// CreateEmployee handles POST /api/employees
func (h *Handlers) CreateEmployee(c *gin.Context) {
	var input service.EmployeeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, Response{Success: false, Error: "invalid request body"})
		return
	}

	emp, err := h.employeeService.Create(c.Request.Context(), actor(c), input)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, Response{Success: true, Data: emp})
}

// UpdateEmployee handles PUT /api/employees/:id. An admin replaces the full
// field set; an employee corrects their own personal fields.
func (h *Handlers) UpdateEmployee(c *gin.Context) {
	act := actor(c)
	id := c.Param("id")

	if act.Role == workflow.RoleAdmin {
		var input service.EmployeeInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, Response{Success: false, Error: "invalid request body"})
			return
		}

		emp, err := h.employeeService.AdminUpdate(c.Request.Context(), act, id, input)
		if err != nil {
			h.respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, Response{Success: true, Data: emp})
		return
	}

	var edit service.EmployeeEdit
	if err := c.ShouldBindJSON(&edit); err != nil {
		c.JSON(http.StatusBadRequest, Response{Success: false, Error: "invalid request body"})
		return
	}

	emp, err := h.employeeService.EmployeeEdit(c.Request.Context(), act, id, edit)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, Response{Success: true, Data: emp})
}

// DeleteEmployee handles DELETE /api/employees/:id
func (h *Handlers) DeleteEmployee(c *gin.Context) {
	if err := h.employeeService.AdminDelete(c.Request.Context(), actor(c), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, Response{Success: true})
}

// SetStatusRequest is the body of PUT /api/employees/:id/status
type SetStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// SetEmployeeStatus handles PUT /api/employees/:id/status
func (h *Handlers) SetEmployeeStatus(c *gin.Context) {
	var req SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, Response{Success: false, Error: "invalid request body"})
		return
	}

	emp, err := h.employeeService.AdminSetStatus(c.Request.Context(), actor(c), c.Param("id"), req.Status)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, Response{Success: true, Data: emp})
}

// SubmitEmployee handles POST /api/employees/:id/submit
func (h *Handlers) SubmitEmployee(c *gin.Context) {
	emp, err := h.employeeService.SubmitForVerification(c.Request.Context(), actor(c), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, Response{Success: true, Data: emp})
}

// ApproveEmployee handles POST /api/employees/:id/approve
func (h *Handlers) ApproveEmployee(c *gin.Context) {
	emp, err := h.employeeService.VerifierApprove(c.Request.Context(), actor(c), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, Response{Success: true, Data: emp})
}

// ImportEmployees handles POST /api/employees/import (multipart upload,
// field name "file")
func (h *Handlers) ImportEmployees(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, Response{Success: false, Error: "missing file upload"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.respondError(c, err)
		return
	}
	defer file.Close()

	rows, err := importer.ParseWorkbook(file)
	if err != nil {
		h.logger.Error("Failed to parse import workbook", "filename", fileHeader.Filename, "error", err)
		c.JSON(http.StatusBadRequest, Response{Success: false, Error: "unreadable workbook: " + err.Error()})
		return
	}

	result, err := h.employeeService.ApplyImport(c.Request.Context(), actor(c), rows)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, Response{Success: true, Data: result})
}

// RenderContract handles GET /api/employees/:id/documents/contract
func (h *Handlers) RenderContract(c *gin.Context) {
	doc, err := h.documentService.RenderContract(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.respondDocument(c, "perjanjian-kerja", doc)
}

// RenderSPMT handles GET /api/employees/:id/documents/spmt
func (h *Handlers) RenderSPMT(c *gin.Context) {
	doc, err := h.documentService.RenderSPMT(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.respondDocument(c, "spmt", doc)
}

// VerificationRequest is the body of POST /api/employees/:id/documents/verification
type VerificationRequest struct {
	VerifierName string `json:"verifier_name"`
	VerifierNIP  string `json:"verifier_nip"`
	VerifyDate   string `json:"verify_date"`
}

// RenderVerification handles POST /api/employees/:id/documents/verification
func (h *Handlers) RenderVerification(c *gin.Context) {
	var req VerificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, Response{Success: false, Error: "invalid request body"})
		return
	}

	doc, err := h.documentService.RenderVerification(c.Request.Context(), c.Param("id"), document.VerifierInput{
		Name: req.VerifierName,
		NIP:  req.VerifierNIP,
		Date: req.VerifyDate,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.respondDocument(c, "lembar-verifikasi", doc)
}

// respondDocument writes a rendered document as plain text, or as PDF when
// ?format=pdf is requested
func (h *Handlers) respondDocument(c *gin.Context, name, doc string) {
	if c.Query("format") == "pdf" {
		pdf, err := document.ToPDF(doc)
		if err != nil {
			h.respondError(c, err)
			return
		}
		c.Header("Content-Disposition", `attachment; filename="`+name+`.pdf"`)
		c.Data(http.StatusOK, "application/pdf", pdf)
		return
	}

	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(doc))
}

// GetSettings handles GET /api/settings
func (h *Handlers) GetSettings(c *gin.Context) {
	set, err := h.settingsService.Get(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, Response{Success: true, Data: set})
}

// UpdateSettings handles PUT /api/settings
func (h *Handlers) UpdateSettings(c *gin.Context) {
	var set entity.Settings
	if err := c.ShouldBindJSON(&set); err != nil {
		c.JSON(http.StatusBadRequest, Response{Success: false, Error: "invalid request body"})
		return
	}

	if err := h.settingsService.Update(c.Request.Context(), actor(c), &set); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, Response{Success: true, Data: set})
}
