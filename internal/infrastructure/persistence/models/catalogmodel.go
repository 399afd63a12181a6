package models

type TaskTypeModel struct {
	ID         uint   `gorm:"primaryKey"`
	Name       string `gorm:"uniqueIndex;size:100;not null"`
	BasePoints int    `gorm:"not null;default:0"`
	Active     bool   `gorm:"not null;default:true;index"`
	CreatedAt  int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt  int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (TaskTypeModel) TableName() string {
	return "task_types"
}

type TaskCategoryModel struct {
	ID         uint    `gorm:"primaryKey"`
	Name       string  `gorm:"size:100;not null"`
	Color      string  `gorm:"size:20"`
	Multiplier float64 `gorm:"not null;default:1"`
	CreatedAt  int64   `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt  int64   `gorm:"autoUpdateTime:milli;not null"`
}

func (TaskCategoryModel) TableName() string {
	return "task_categories"
}
