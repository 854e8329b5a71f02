package handler

import (
	"net/http"
	"strconv"

	domainUser "postal-pickup-api/internal/domain/user"
	"postal-pickup-api/internal/usecase/pickup"
	"postal-pickup-api/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PickupHandler struct {
	service *pickup.Service
}

func NewPickupHandler(service *pickup.Service) *PickupHandler {
	return &PickupHandler{service: service}
}

// RegisterPublicRoutes mounts the unauthenticated tracking endpoint.
func (h *PickupHandler) RegisterPublicRoutes(router *gin.RouterGroup) {
	requests := router.Group("/pickup")
	{
		requests.GET("/track/:trackingNumber", h.Track)
	}
}

// RegisterCustomerRoutes mounts endpoints available to any signed-in user.
func (h *PickupHandler) RegisterCustomerRoutes(router *gin.RouterGroup) {
	requests := router.Group("/pickup")
	{
		requests.POST("/request", h.Create)
		requests.GET("/my-requests", h.ListMine)
		requests.PATCH("/:id/cancel", h.Cancel)
	}
}

// RegisterOperatorRoutes mounts endpoints for operators and admins.
func (h *PickupHandler) RegisterOperatorRoutes(router *gin.RouterGroup) {
	requests := router.Group("/pickup")
	{
		requests.PATCH("/:id/status", h.UpdateStatus)
	}
}

// RegisterAdminRoutes mounts admin-only endpoints.
func (h *PickupHandler) RegisterAdminRoutes(router *gin.RouterGroup) {
	requests := router.Group("/pickup")
	{
		requests.PATCH("/:id/assign", h.AssignAgent)
	}
}

func (h *PickupHandler) Create(c *gin.Context) {
	var req pickup.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	result, err := h.service.Create(c.Request.Context(), userID, &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Pickup request created successfully", result)
}

func (h *PickupHandler) ListMine(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	result, err := h.service.ListMine(c.Request.Context(), userID, page, limit)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Pickup requests retrieved successfully", result)
}

func (h *PickupHandler) Track(c *gin.Context) {
	trackingNumber := c.Param("trackingNumber")

	result, err := h.service.Track(c.Request.Context(), trackingNumber)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Tracking details retrieved successfully", result)
}

func (h *PickupHandler) UpdateStatus(c *gin.Context) {
	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request ID")
		return
	}

	var req pickup.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	role := domainUser.Role(c.GetString("role"))

	result, err := h.service.UpdateStatus(c.Request.Context(), role, requestID, &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Status updated successfully", result)
}

func (h *PickupHandler) Cancel(c *gin.Context) {
	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request ID")
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	result, err := h.service.Cancel(c.Request.Context(), userID, requestID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Pickup request cancelled successfully", result)
}

func (h *PickupHandler) AssignAgent(c *gin.Context) {
	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request ID")
		return
	}

	var req pickup.AssignAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.AssignAgent(c.Request.Context(), requestID, &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Agent assigned successfully", result)
}
