package dto

// RegisterPushRecipientRequest is the DTO for registering the LINE user that
// receives the caller's reminders.
type RegisterPushRecipientRequest struct {
	RecipientID string `json:"recipient_id" validate:"required,max=64"`
}
