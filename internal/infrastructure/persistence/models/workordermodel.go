package models

type WorkOrderModel struct {
	ID           uint     `gorm:"primaryKey"`
	Number       string   `gorm:"uniqueIndex;size:50;not null"`
	Title        string   `gorm:"size:200;not null"`
	Description  string   `gorm:"type:text;not null"`
	TaskTypeID   uint     `gorm:"not null;index"`
	CategoryID   uint     `gorm:"not null;index"`
	Priority     string   `gorm:"size:20;not null;index"`
	Status       string   `gorm:"size:20;not null;index"`
	RequesterID  uint     `gorm:"not null;index"`
	AssigneeIDs  string   `gorm:"type:json"`
	LocationName string   `gorm:"size:255"`
	Latitude     *float64 `gorm:"type:decimal(10,7)"`
	Longitude    *float64 `gorm:"type:decimal(10,7)"`
	Difficulty   int      `gorm:"not null;default:1"`
	DueDate      *int64   `gorm:"index"`
	ResolvedAt   *int64   `gorm:"index"`
	PointsEarned int      `gorm:"not null;default:0"`
	CreatedAt    int64    `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt    int64    `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (WorkOrderModel) TableName() string {
	return "work_orders"
}

type WorkOrderCommentModel struct {
	ID          uint   `gorm:"primaryKey"`
	WorkOrderID uint   `gorm:"not null;index"`
	AuthorID    uint   `gorm:"not null;index"`
	Content     string `gorm:"type:text;not null"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null;index"`
}

func (WorkOrderCommentModel) TableName() string {
	return "work_order_comments"
}
