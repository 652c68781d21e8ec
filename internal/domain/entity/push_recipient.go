package entity

import "time"

// PushRecipient maps an owner to the LINE user the push notifier delivers to.
type PushRecipient struct {
	OwnerID     string    `gorm:"column:owner_id;primaryKey"`
	RecipientID string    `gorm:"column:recipient_id"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

// TableName specifies the table name for the PushRecipient entity.
func (PushRecipient) TableName() string {
	return "push_recipient"
}
