package entity

import (
	"berries/internal/domain/constant"
	"time"
)

// Berry is a repeating reminder owned by a single user.
type Berry struct {
	ID             string          `gorm:"column:id;primaryKey;type:text"`
	Subject        string          `gorm:"column:subject;type:text"`
	Period         constant.Period `gorm:"column:period;type:text"`
	OwnerID        string          `gorm:"column:owner_id;index"`
	NextOccurrence time.Time       `gorm:"column:next_occurrence;index"`
	LastOccurrence time.Time       `gorm:"column:last_occurrence"`
}

// TableName specifies the table name for the Berry entity.
func (Berry) TableName() string {
	return "berry"
}

// NeverFired is the last occurrence of a berry that was not dispatched yet.
var NeverFired = time.Unix(0, 0).UTC()
