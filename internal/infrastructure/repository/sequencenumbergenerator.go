package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"workdesk/internal/infrastructure/persistence/models"
	"workdesk/internal/shared/db"
	"workdesk/internal/shared/errors"
)

const workOrderSequenceName = "work_order"

// SequenceNumberGenerator hands out work order numbers from a single counter
// row, incremented under a row lock so concurrent callers never collide.
type SequenceNumberGenerator struct {
	db *gorm.DB
}

func NewSequenceNumberGenerator(gormDB *gorm.DB) *SequenceNumberGenerator {
	return &SequenceNumberGenerator{db: gormDB}
}

func (g *SequenceNumberGenerator) Next(ctx context.Context) (string, error) {
	tx := db.GetTxFromContext(ctx, g.db)

	var value int64
	err := tx.Transaction(func(inner *gorm.DB) error {
		var seq models.NumberSequenceModel
		err := inner.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("name = ?", workOrderSequenceName).
			First(&seq).Error

		if err == gorm.ErrRecordNotFound {
			seq = models.NumberSequenceModel{Name: workOrderSequenceName}
			if err := inner.Create(&seq).Error; err != nil {
				if errors.IsDuplicateError(err) {
					// Another caller created the row first; reread under lock.
					if err := inner.
						Clauses(clause.Locking{Strength: "UPDATE"}).
						Where("name = ?", workOrderSequenceName).
						First(&seq).Error; err != nil {
						return fmt.Errorf("failed to reread number sequence: %w", err)
					}
				} else {
					return fmt.Errorf("failed to create number sequence: %w", err)
				}
			}
		} else if err != nil {
			return fmt.Errorf("failed to load number sequence: %w", err)
		}

		value = seq.Value + 1
		if err := inner.
			Model(&models.NumberSequenceModel{}).
			Where("id = ?", seq.ID).
			Update("value", value).Error; err != nil {
			return fmt.Errorf("failed to advance number sequence: %w", err)
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("WO-%06d", value), nil
}
