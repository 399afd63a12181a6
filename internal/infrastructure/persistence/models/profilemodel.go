package models

type ScoreProfileModel struct {
	ID                 uint    `gorm:"primaryKey"`
	UserID             uint    `gorm:"uniqueIndex;not null"`
	TotalPoints        int     `gorm:"not null;default:0;index"`
	Level              int     `gorm:"not null;default:1"`
	ResolvedCount      int     `gorm:"not null;default:0"`
	AvgResolutionHours float64 `gorm:"not null;default:0"`
	Badges             string  `gorm:"type:json"`
	CreatedAt          int64   `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt          int64   `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (ScoreProfileModel) TableName() string {
	return "score_profiles"
}
