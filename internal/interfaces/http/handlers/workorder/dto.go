package workorder

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"workdesk/internal/application/workorder/usecases"
	"workdesk/internal/shared/errors"
)

type CreateWorkOrderRequest struct {
	Title        string     `json:"title" binding:"required,max=200"`
	Description  string     `json:"description" binding:"required,max=5000"`
	TaskTypeID   uint       `json:"task_type_id" binding:"required"`
	CategoryID   uint       `json:"category_id" binding:"required"`
	Priority     string     `json:"priority" binding:"required,oneof=low medium high urgent"`
	AssigneeIDs  []uint     `json:"assignee_ids,omitempty"`
	Difficulty   int        `json:"difficulty" binding:"required,min=1,max=5"`
	DueDate      *time.Time `json:"due_date,omitempty"`
	LocationName string     `json:"location_name,omitempty" binding:"max=255"`
	Latitude     *float64   `json:"latitude,omitempty"`
	Longitude    *float64   `json:"longitude,omitempty"`
}

func (r *CreateWorkOrderRequest) ToCommand(requesterID uint) usecases.CreateWorkOrderCommand {
	return usecases.CreateWorkOrderCommand{
		Title:        r.Title,
		Description:  r.Description,
		TaskTypeID:   r.TaskTypeID,
		CategoryID:   r.CategoryID,
		Priority:     r.Priority,
		RequesterID:  requesterID,
		AssigneeIDs:  r.AssigneeIDs,
		Difficulty:   r.Difficulty,
		DueDate:      r.DueDate,
		LocationName: r.LocationName,
		Latitude:     r.Latitude,
		Longitude:    r.Longitude,
	}
}

type UpdateWorkOrderRequest struct {
	Title        string     `json:"title" binding:"required,max=200"`
	Description  string     `json:"description" binding:"required,max=5000"`
	Priority     string     `json:"priority" binding:"required,oneof=low medium high urgent"`
	Difficulty   int        `json:"difficulty" binding:"required,min=1,max=5"`
	DueDate      *time.Time `json:"due_date,omitempty"`
	LocationName *string    `json:"location_name,omitempty"`
	Latitude     *float64   `json:"latitude,omitempty"`
	Longitude    *float64   `json:"longitude,omitempty"`
}

type AssignWorkOrderRequest struct {
	AssigneeIDs []uint `json:"assignee_ids" binding:"required"`
}

type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=open in_progress waiting resolved closed"`
}

type AddCommentRequest struct {
	Content string `json:"content" binding:"required,max=10000"`
}

type ListWorkOrdersRequest struct {
	Page        int
	PageSize    int
	Status      string
	Priority    string
	TaskTypeID  *uint
	CategoryID  *uint
	RequesterID *uint
	AssigneeID  *uint
	Search      string
	CreatedFrom *time.Time
	CreatedTo   *time.Time
	OrderBy     string
}

func (r *ListWorkOrdersRequest) ToQuery() usecases.ListWorkOrdersQuery {
	return usecases.ListWorkOrdersQuery{
		Status:      r.Status,
		Priority:    r.Priority,
		TaskTypeID:  r.TaskTypeID,
		CategoryID:  r.CategoryID,
		RequesterID: r.RequesterID,
		AssigneeID:  r.AssigneeID,
		Search:      r.Search,
		CreatedFrom: r.CreatedFrom,
		CreatedTo:   r.CreatedTo,
		Page:        r.Page,
		PageSize:    r.PageSize,
		OrderBy:     r.OrderBy,
	}
}

func parseListWorkOrdersRequest(c *gin.Context) (*ListWorkOrdersRequest, error) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}

	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	req := &ListWorkOrdersRequest{
		Page:     page,
		PageSize: pageSize,
		Status:   c.Query("status"),
		Priority: c.Query("priority"),
		Search:   c.Query("search"),
		OrderBy:  c.Query("order_by"),
	}

	var err error
	if req.TaskTypeID, err = parseOptionalID(c, "task_type_id"); err != nil {
		return nil, err
	}
	if req.CategoryID, err = parseOptionalID(c, "category_id"); err != nil {
		return nil, err
	}
	if req.RequesterID, err = parseOptionalID(c, "requester_id"); err != nil {
		return nil, err
	}
	if req.AssigneeID, err = parseOptionalID(c, "assignee_id"); err != nil {
		return nil, err
	}
	if req.CreatedFrom, err = parseOptionalTime(c, "created_from"); err != nil {
		return nil, err
	}
	if req.CreatedTo, err = parseOptionalTime(c, "created_to"); err != nil {
		return nil, err
	}

	return req, nil
}

func parseOptionalID(c *gin.Context, name string) (*uint, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	parsed, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return nil, errors.NewValidationError("invalid " + name)
	}
	id := uint(parsed)
	return &id, nil
}

func parseOptionalTime(c *gin.Context, name string) (*time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, errors.NewValidationError("invalid " + name + ", expected RFC3339")
	}
	return &parsed, nil
}
