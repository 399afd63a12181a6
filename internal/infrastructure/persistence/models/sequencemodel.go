package models

// NumberSequenceModel backs the work order number generator. One row per
// sequence name, incremented under a row lock.
type NumberSequenceModel struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"uniqueIndex;size:50;not null"`
	Value     int64  `gorm:"not null;default:0"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (NumberSequenceModel) TableName() string {
	return "number_sequences"
}
