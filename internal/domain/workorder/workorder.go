package workorder

import (
	"fmt"
	"time"

	vo "workdesk/internal/domain/workorder/valueobjects"
)

const (
	MaxTitleLength       = 200
	MaxDescriptionLength = 5000
	MinDifficulty        = 1
	MaxDifficulty        = 5
)

// WorkOrder is the ticket aggregate. Points stay at zero until the order
// first transitions into resolved; resolvedAt is stamped exactly once.
type WorkOrder struct {
	id           uint
	number       string
	title        string
	description  string
	taskTypeID   uint
	categoryID   uint
	priority     vo.Priority
	status       vo.Status
	requesterID  uint
	assigneeIDs  []uint
	locationName string
	latitude     *float64
	longitude    *float64
	difficulty   int
	dueDate      *time.Time
	resolvedAt   *time.Time
	pointsEarned int
	awarded      bool
	createdAt    time.Time
	updatedAt    time.Time
	comments     []*Comment
}

func NewWorkOrder(
	title string,
	description string,
	taskTypeID uint,
	categoryID uint,
	priority vo.Priority,
	requesterID uint,
	difficulty int,
) (*WorkOrder, error) {
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > MaxTitleLength {
		return nil, fmt.Errorf("title exceeds maximum length of %d characters", MaxTitleLength)
	}
	if len(description) == 0 {
		return nil, fmt.Errorf("description is required")
	}
	if len(description) > MaxDescriptionLength {
		return nil, fmt.Errorf("description exceeds maximum length of %d characters", MaxDescriptionLength)
	}
	if taskTypeID == 0 {
		return nil, fmt.Errorf("task type is required")
	}
	if categoryID == 0 {
		return nil, fmt.Errorf("task category is required")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if requesterID == 0 {
		return nil, fmt.Errorf("requester ID is required")
	}
	if difficulty < MinDifficulty || difficulty > MaxDifficulty {
		return nil, fmt.Errorf("difficulty must be between %d and %d", MinDifficulty, MaxDifficulty)
	}

	now := time.Now()

	return &WorkOrder{
		title:       title,
		description: description,
		taskTypeID:  taskTypeID,
		categoryID:  categoryID,
		priority:    priority,
		status:      vo.StatusOpen,
		requesterID: requesterID,
		assigneeIDs: []uint{},
		difficulty:  difficulty,
		createdAt:   now,
		updatedAt:   now,
		comments:    []*Comment{},
	}, nil
}

func ReconstructWorkOrder(
	id uint,
	number string,
	title string,
	description string,
	taskTypeID uint,
	categoryID uint,
	priority vo.Priority,
	status vo.Status,
	requesterID uint,
	assigneeIDs []uint,
	locationName string,
	latitude *float64,
	longitude *float64,
	difficulty int,
	dueDate *time.Time,
	resolvedAt *time.Time,
	pointsEarned int,
	createdAt, updatedAt time.Time,
) (*WorkOrder, error) {
	if id == 0 {
		return nil, fmt.Errorf("work order ID cannot be zero")
	}
	if len(number) == 0 {
		return nil, fmt.Errorf("work order number is required")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}

	if assigneeIDs == nil {
		assigneeIDs = []uint{}
	}

	return &WorkOrder{
		id:           id,
		number:       number,
		title:        title,
		description:  description,
		taskTypeID:   taskTypeID,
		categoryID:   categoryID,
		priority:     priority,
		status:       status,
		requesterID:  requesterID,
		assigneeIDs:  assigneeIDs,
		locationName: locationName,
		latitude:     latitude,
		longitude:    longitude,
		difficulty:   difficulty,
		dueDate:      dueDate,
		resolvedAt:   resolvedAt,
		pointsEarned: pointsEarned,
		awarded:      resolvedAt != nil,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
		comments:     []*Comment{},
	}, nil
}

func (w *WorkOrder) ID() uint               { return w.id }
func (w *WorkOrder) Number() string         { return w.number }
func (w *WorkOrder) Title() string          { return w.title }
func (w *WorkOrder) Description() string    { return w.description }
func (w *WorkOrder) TaskTypeID() uint       { return w.taskTypeID }
func (w *WorkOrder) CategoryID() uint       { return w.categoryID }
func (w *WorkOrder) Priority() vo.Priority  { return w.priority }
func (w *WorkOrder) Status() vo.Status      { return w.status }
func (w *WorkOrder) RequesterID() uint      { return w.requesterID }
func (w *WorkOrder) LocationName() string   { return w.locationName }
func (w *WorkOrder) Latitude() *float64     { return w.latitude }
func (w *WorkOrder) Longitude() *float64    { return w.longitude }
func (w *WorkOrder) Difficulty() int        { return w.difficulty }
func (w *WorkOrder) DueDate() *time.Time    { return w.dueDate }
func (w *WorkOrder) ResolvedAt() *time.Time { return w.resolvedAt }
func (w *WorkOrder) PointsEarned() int      { return w.pointsEarned }
func (w *WorkOrder) CreatedAt() time.Time   { return w.createdAt }
func (w *WorkOrder) UpdatedAt() time.Time   { return w.updatedAt }

func (w *WorkOrder) AssigneeIDs() []uint {
	ids := make([]uint, len(w.assigneeIDs))
	copy(ids, w.assigneeIDs)
	return ids
}

func (w *WorkOrder) Comments() []*Comment {
	comments := make([]*Comment, len(w.comments))
	copy(comments, w.comments)
	return comments
}

func (w *WorkOrder) SetID(id uint) error {
	if w.id != 0 {
		return fmt.Errorf("work order ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("work order ID cannot be zero")
	}
	w.id = id
	return nil
}

func (w *WorkOrder) SetNumber(number string) error {
	if len(w.number) > 0 {
		return fmt.Errorf("work order number is already set")
	}
	if len(number) == 0 {
		return fmt.Errorf("work order number cannot be empty")
	}
	w.number = number
	return nil
}

func (w *WorkOrder) SetDueDate(due *time.Time) {
	w.dueDate = due
	w.updatedAt = time.Now()
}

func (w *WorkOrder) SetLocation(name string, latitude, longitude *float64) {
	w.locationName = name
	w.latitude = latitude
	w.longitude = longitude
	w.updatedAt = time.Now()
}

func (w *WorkOrder) UpdateDetails(title, description string, priority vo.Priority, difficulty int) error {
	if len(title) == 0 {
		return fmt.Errorf("title is required")
	}
	if len(title) > MaxTitleLength {
		return fmt.Errorf("title exceeds maximum length of %d characters", MaxTitleLength)
	}
	if len(description) == 0 {
		return fmt.Errorf("description is required")
	}
	if !priority.IsValid() {
		return fmt.Errorf("invalid priority")
	}
	if difficulty < MinDifficulty || difficulty > MaxDifficulty {
		return fmt.Errorf("difficulty must be between %d and %d", MinDifficulty, MaxDifficulty)
	}

	w.title = title
	w.description = description
	w.priority = priority
	w.difficulty = difficulty
	w.updatedAt = time.Now()
	return nil
}

// SetAssignees replaces the assignee set. Duplicate IDs are collapsed.
func (w *WorkOrder) SetAssignees(assigneeIDs []uint) error {
	seen := make(map[uint]bool, len(assigneeIDs))
	unique := make([]uint, 0, len(assigneeIDs))
	for _, id := range assigneeIDs {
		if id == 0 {
			return fmt.Errorf("assignee ID cannot be zero")
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		unique = append(unique, id)
	}

	w.assigneeIDs = unique
	w.updatedAt = time.Now()
	return nil
}

// ChangeStatus applies the explicit transition table. The first transition
// into resolved stamps resolvedAt; later updates never touch it.
func (w *WorkOrder) ChangeStatus(newStatus vo.Status) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid status: %s", newStatus)
	}

	if w.status == newStatus {
		return nil
	}

	if !w.status.CanTransitionTo(newStatus) {
		return fmt.Errorf("cannot transition from %s to %s", w.status, newStatus)
	}

	w.status = newStatus
	w.updatedAt = time.Now()

	if newStatus.IsResolved() && w.resolvedAt == nil {
		now := time.Now()
		w.resolvedAt = &now
	}

	return nil
}

// AwardPoints records the computed score for a freshly resolved order.
// A work order is scored at most once; re-saving a resolved order must not
// recompute or overwrite its points.
func (w *WorkOrder) AwardPoints(points int) error {
	if w.resolvedAt == nil {
		return fmt.Errorf("work order is not resolved")
	}
	if w.awarded {
		return fmt.Errorf("points already awarded")
	}
	if points < 0 {
		return fmt.Errorf("points cannot be negative")
	}

	w.pointsEarned = points
	w.awarded = true
	w.updatedAt = time.Now()
	return nil
}

// BackfillPoints scores a resolved order that predates the scoring engine.
// Orders with a nonzero score are left alone; a legitimately zero score is
// indistinguishable from an unscored one and gets recomputed.
func (w *WorkOrder) BackfillPoints(points int) error {
	if w.resolvedAt == nil {
		return fmt.Errorf("work order is not resolved")
	}
	if w.pointsEarned != 0 {
		return fmt.Errorf("work order already scored")
	}
	if points < 0 {
		return fmt.Errorf("points cannot be negative")
	}

	w.pointsEarned = points
	w.awarded = true
	w.updatedAt = time.Now()
	return nil
}

// ResolutionDuration returns the wall time from creation to resolution.
func (w *WorkOrder) ResolutionDuration() (time.Duration, bool) {
	if w.resolvedAt == nil {
		return 0, false
	}
	return w.resolvedAt.Sub(w.createdAt), true
}

func (w *WorkOrder) AddComment(comment *Comment) error {
	if comment == nil {
		return fmt.Errorf("comment cannot be nil")
	}

	if comment.WorkOrderID() != w.id {
		return fmt.Errorf("comment work order ID mismatch")
	}

	w.comments = append(w.comments, comment)
	w.updatedAt = time.Now()
	return nil
}

func (w *WorkOrder) Validate() error {
	if len(w.title) == 0 {
		return fmt.Errorf("title is required")
	}
	if len(w.description) == 0 {
		return fmt.Errorf("description is required")
	}
	if !w.priority.IsValid() {
		return fmt.Errorf("invalid priority")
	}
	if !w.status.IsValid() {
		return fmt.Errorf("invalid status")
	}
	if w.requesterID == 0 {
		return fmt.Errorf("requester ID is required")
	}
	if w.difficulty < MinDifficulty || w.difficulty > MaxDifficulty {
		return fmt.Errorf("difficulty must be between %d and %d", MinDifficulty, MaxDifficulty)
	}
	return nil
}
