package workorder

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"workdesk/internal/application/workorder/usecases"
	"workdesk/internal/shared/errors"
	"workdesk/internal/shared/logger"
	"workdesk/internal/shared/utils"
)

type WorkOrderHandler struct {
	createUC       usecases.CreateWorkOrderExecutor
	getUC          usecases.GetWorkOrderExecutor
	listUC         usecases.ListWorkOrdersExecutor
	updateUC       usecases.UpdateWorkOrderExecutor
	changeStatusUC usecases.ChangeStatusExecutor
	assignUC       usecases.AssignWorkOrderExecutor
	addCommentUC   usecases.AddCommentExecutor
	deleteUC       usecases.DeleteWorkOrderExecutor
	logger         logger.Interface
}

func NewWorkOrderHandler(
	createUC usecases.CreateWorkOrderExecutor,
	getUC usecases.GetWorkOrderExecutor,
	listUC usecases.ListWorkOrdersExecutor,
	updateUC usecases.UpdateWorkOrderExecutor,
	changeStatusUC usecases.ChangeStatusExecutor,
	assignUC usecases.AssignWorkOrderExecutor,
	addCommentUC usecases.AddCommentExecutor,
	deleteUC usecases.DeleteWorkOrderExecutor,
) *WorkOrderHandler {
	return &WorkOrderHandler{
		createUC:       createUC,
		getUC:          getUC,
		listUC:         listUC,
		updateUC:       updateUC,
		changeStatusUC: changeStatusUC,
		assignUC:       assignUC,
		addCommentUC:   addCommentUC,
		deleteUC:       deleteUC,
		logger:         logger.NewLogger(),
	}
}

// CreateWorkOrder handles POST /workorders
func (h *WorkOrderHandler) CreateWorkOrder(c *gin.Context) {
	var req CreateWorkOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create work order", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	requesterID, err := actingUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), req.ToCommand(requesterID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Work order created successfully")
}

// GetWorkOrder handles GET /workorders/:id
func (h *WorkOrderHandler) GetWorkOrder(c *gin.Context) {
	workOrderID, err := parseWorkOrderID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), usecases.GetWorkOrderQuery{WorkOrderID: workOrderID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListWorkOrders handles GET /workorders
func (h *WorkOrderHandler) ListWorkOrders(c *gin.Context) {
	req, err := parseListWorkOrdersRequest(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listUC.Execute(c.Request.Context(), req.ToQuery())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.WorkOrders, result.Total, result.Page, result.PageSize)
}

// UpdateWorkOrder handles PUT /workorders/:id
func (h *WorkOrderHandler) UpdateWorkOrder(c *gin.Context) {
	workOrderID, err := parseWorkOrderID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateWorkOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update work order", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), usecases.UpdateWorkOrderCommand{
		WorkOrderID:  workOrderID,
		Title:        req.Title,
		Description:  req.Description,
		Priority:     req.Priority,
		Difficulty:   req.Difficulty,
		DueDate:      req.DueDate,
		LocationName: req.LocationName,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Work order updated successfully", result)
}

// ChangeStatus handles PATCH /workorders/:id/status
func (h *WorkOrderHandler) ChangeStatus(c *gin.Context) {
	workOrderID, err := parseWorkOrderID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for change status", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.changeStatusUC.Execute(c.Request.Context(), usecases.ChangeStatusCommand{
		WorkOrderID: workOrderID,
		NewStatus:   req.Status,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Work order status updated successfully", result)
}

// AssignWorkOrder handles POST /workorders/:id/assign
func (h *WorkOrderHandler) AssignWorkOrder(c *gin.Context) {
	workOrderID, err := parseWorkOrderID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AssignWorkOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.assignUC.Execute(c.Request.Context(), usecases.AssignWorkOrderCommand{
		WorkOrderID: workOrderID,
		AssigneeIDs: req.AssigneeIDs,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Work order assigned successfully", result)
}

// AddComment handles POST /workorders/:id/comments
func (h *WorkOrderHandler) AddComment(c *gin.Context) {
	workOrderID, err := parseWorkOrderID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	authorID, err := actingUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.addCommentUC.Execute(c.Request.Context(), usecases.AddCommentCommand{
		WorkOrderID: workOrderID,
		AuthorID:    authorID,
		Content:     req.Content,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Comment added successfully")
}

// DeleteWorkOrder handles DELETE /workorders/:id
func (h *WorkOrderHandler) DeleteWorkOrder(c *gin.Context) {
	workOrderID, err := parseWorkOrderID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), usecases.DeleteWorkOrderCommand{WorkOrderID: workOrderID}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

func parseWorkOrderID(c *gin.Context) (uint, error) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid work order ID")
	}
	return uint(id), nil
}

func actingUserID(c *gin.Context) (uint, error) {
	userID, exists := c.Get("user_id")
	if !exists {
		return 0, errors.NewValidationError("X-User-ID header is required")
	}
	return userID.(uint), nil
}
