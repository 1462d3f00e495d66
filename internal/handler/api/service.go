package api

import (
	"errors"
	"net/http"

	"talent-services/internal/domain/resource"
	reqdto "talent-services/internal/handler/dto/request"
	resdto "talent-services/internal/handler/dto/response"
	"talent-services/internal/handler/httperr"
	"talent-services/internal/handler/middleware"
	"talent-services/internal/pkg/errs"
	"talent-services/internal/usecase/commands"
	"talent-services/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// 32 MiB, enough for the largest vendor export seen so far
const maxImportSize = 32 << 20

type ServiceHandler struct {
	cmds commands.ServiceCommands
	q    queries.ServiceQueries
}

func NewServiceHandler(cmds commands.ServiceCommands, q queries.ServiceQueries) *ServiceHandler {
	return &ServiceHandler{cmds: cmds, q: q}
}

// @Summary Assign a service to a candidate
// @Description Reserve the next available resource unit and assign it to the candidate
// @Tags services
// @Produce json
// @Security BearerAuth
// @Param provider path string true "Provider key"
// @Param serviceCode path string true "Service code"
// @Param candidateId path string true "Candidate ID"
// @Success 201 {object} resdto.AssignmentResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/services/{provider}/{serviceCode}/assign/candidate/{candidateId} [post]
func (h *ServiceHandler) AssignToCandidate(c *gin.Context) {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	code, ok := h.serviceCodeParam(c)
	if !ok {
		return
	}
	candidateID, err := uuid.Parse(c.Param("candidateId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid candidate id", nil)
		return
	}

	a, err := h.cmds.Assign(c.Request.Context(), c.Param("provider"), code, candidateID, actorID)
	if err != nil {
		abortDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromAssignment(a))
}

// @Summary Assign a service to a list of candidates
// @Description Assign resource units to every listed candidate that does not already hold one
// @Tags services
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param provider path string true "Provider key"
// @Param serviceCode path string true "Service code"
// @Param request body reqdto.AssignToListRequest true "Candidate IDs"
// @Success 201 {array} resdto.AssignmentResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/services/{provider}/{serviceCode}/assign/list [post]
func (h *ServiceHandler) AssignToList(c *gin.Context) {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	code, ok := h.serviceCodeParam(c)
	if !ok {
		return
	}
	var req reqdto.AssignToListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	as, err := h.cmds.AssignToList(c.Request.Context(), c.Param("provider"), code, req.CandidateIDs, actorID)
	if err != nil {
		abortDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromAssignments(as))
}

// @Summary Import resource inventory
// @Description Bulk-load resource units from an uploaded vendor file
// @Tags services
// @Accept multipart/form-data
// @Security BearerAuth
// @Param provider path string true "Provider key"
// @Param serviceCode path string true "Service code"
// @Param file formData file true "Vendor export file"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /admin/services/{provider}/{serviceCode}/import [post]
func (h *ServiceHandler) ImportInventory(c *gin.Context) {
	code, ok := h.serviceCodeParam(c)
	if !ok {
		return
	}
	fileHeader, err := c.FormFile("file")
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "File is required", nil)
		return
	}
	if fileHeader.Size > maxImportSize {
		httperr.AbortWithError(c, http.StatusBadRequest, nil, "File too large", nil)
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Failed to read file", nil)
		return
	}
	defer file.Close()

	if err := h.cmds.ImportInventory(c.Request.Context(), c.Param("provider"), code, file); err != nil {
		abortDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Redeem an assignment
// @Description Mark an active assignment and its resource unit as redeemed
// @Tags services
// @Produce json
// @Security BearerAuth
// @Param id path string true "Assignment ID"
// @Success 200 {object} resdto.AssignmentResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/services/assignments/{id}/redeem [post]
func (h *ServiceHandler) Redeem(c *gin.Context) {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid assignment id", nil)
		return
	}

	a, err := h.cmds.Redeem(c.Request.Context(), id, actorID)
	if err != nil {
		abortDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAssignment(a))
}

// @Summary Update resource status
// @Description Move a resource unit forward in its lifecycle
// @Tags services
// @Accept json
// @Security BearerAuth
// @Param provider path string true "Provider key"
// @Param resourceCode path string true "Resource code"
// @Param request body reqdto.UpdateResourceStatusRequest true "Target status"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/services/{provider}/resource/{resourceCode}/status [put]
func (h *ServiceHandler) UpdateResourceStatus(c *gin.Context) {
	var req reqdto.UpdateResourceStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	status, err := resource.ParseStatus(req.Status)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Unknown status", nil)
		return
	}

	if err := h.cmds.UpdateResourceStatus(c.Request.Context(), c.Param("provider"), c.Param("resourceCode"), status); err != nil {
		abortDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List candidate assignments
// @Description List all service assignments of a candidate across providers
// @Tags services
// @Produce json
// @Security BearerAuth
// @Param candidateId path string true "Candidate ID"
// @Success 200 {array} resdto.AssignmentViewResponse
// @Failure 400 {object} map[string]string
// @Router /admin/services/assignments/candidate/{candidateId} [get]
func (h *ServiceHandler) ListCandidateAssignments(c *gin.Context) {
	candidateID, err := uuid.Parse(c.Param("candidateId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid candidate id", nil)
		return
	}

	views, err := h.q.ListAssignmentsForCandidate(c.Request.Context(), candidateID)
	if err != nil {
		abortDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAssignmentViews(views))
}

// @Summary List candidate resources
// @Description List the resource units a candidate holds for an offering
// @Tags services
// @Produce json
// @Security BearerAuth
// @Param provider path string true "Provider key"
// @Param serviceCode path string true "Service code"
// @Param candidateId path string true "Candidate ID"
// @Success 200 {array} resdto.ResourceViewResponse
// @Failure 400 {object} map[string]string
// @Router /admin/services/{provider}/{serviceCode}/resources/candidate/{candidateId} [get]
func (h *ServiceHandler) ListCandidateResources(c *gin.Context) {
	code, ok := h.serviceCodeParam(c)
	if !ok {
		return
	}
	candidateID, err := uuid.Parse(c.Param("candidateId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid candidate id", nil)
		return
	}

	views, err := h.q.ListResourcesForCandidate(c.Request.Context(), c.Param("provider"), code, candidateID)
	if err != nil {
		abortDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromResourceViews(views))
}

// @Summary Count available resources
// @Description Count unassigned resource units for an offering
// @Tags services
// @Produce json
// @Security BearerAuth
// @Param provider path string true "Provider key"
// @Param serviceCode path string true "Service code"
// @Success 200 {object} resdto.AvailableCountResponse
// @Failure 400 {object} map[string]string
// @Router /admin/services/{provider}/{serviceCode}/available/count [get]
func (h *ServiceHandler) CountAvailable(c *gin.Context) {
	code, ok := h.serviceCodeParam(c)
	if !ok {
		return
	}

	count, err := h.q.CountAvailable(c.Request.Context(), c.Param("provider"), code)
	if err != nil {
		abortDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.AvailableCountResponse{
		Provider:    c.Param("provider"),
		ServiceCode: string(code),
		Available:   count,
	})
}

func (h *ServiceHandler) serviceCodeParam(c *gin.Context) (resource.ServiceCode, bool) {
	code, err := resource.ParseServiceCode(c.Param("serviceCode"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, err, "Unknown service code", nil)
		return "", false
	}
	return code, true
}

func abortDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrResourceExhausted):
		httperr.AbortWithError(c, http.StatusConflict, err, "No available resources", nil)
	case errors.Is(err, errs.ErrUnknownProvider):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Unknown provider", nil)
	case errors.Is(err, errs.ErrUnknownServiceCode):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Unknown service code", nil)
	case errors.Is(err, errs.ErrImportFailed):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Import failed", nil)
	case errors.Is(err, errs.ErrInvalidStateTransition):
		httperr.AbortWithError(c, http.StatusConflict, err, "Invalid state transition", nil)
	case errors.Is(err, errs.ErrNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
