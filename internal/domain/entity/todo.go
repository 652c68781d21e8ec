package entity

import "time"

// Todo is the richer item model served by the list endpoints.
type Todo struct {
	ID          string     `gorm:"column:id;primaryKey;type:text"`
	OwnerID     string     `gorm:"column:owner_id;index:idx_todo_listing,priority:1"`
	Title       string     `gorm:"column:title;type:text"`
	State       string     `gorm:"column:state;index:idx_todo_listing,priority:2"`
	Priority    string     `gorm:"column:priority;index:idx_todo_listing,priority:3"`
	Description *string    `gorm:"column:description;type:text"`
	Tags        []string   `gorm:"column:tags;serializer:json"`
	Created     time.Time  `gorm:"column:created;index:idx_todo_listing,priority:4"`
	Updated     *time.Time `gorm:"column:updated"`
}

// TableName specifies the table name for the Todo entity.
func (Todo) TableName() string {
	return "todo"
}

// HasTag reports whether the todo carries tag.
func (t *Todo) HasTag(tag string) bool {
	for _, candidate := range t.Tags {
		if candidate == tag {
			return true
		}
	}
	return false
}
