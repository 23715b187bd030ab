package models

import "time"

// Message is a note between users, optionally about an event.
type Message struct {
	ID            int64     `json:"id" db:"id"`
	SenderID      int64     `json:"sender_id" db:"sender_id" binding:"required"`
	RecipientID   *int64    `json:"recipient_id,omitempty" db:"recipient_id"`
	EventID       *int64    `json:"event_id,omitempty" db:"event_id"`
	Body          string    `json:"body" db:"body" binding:"required"`
	AttachmentURL *string   `json:"attachment_url,omitempty" db:"attachment_url"`
	IsRead        bool      `json:"is_read" db:"is_read"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

func (Message) Schema() Schema {
	return Schema{
		Table: TableMessages,
		ForeignKeys: []ForeignKey{
			{Field: "SenderID", Column: "sender_id", References: TableUsers, Required: true},
			{Field: "RecipientID", Column: "recipient_id", References: TableUsers},
			{Field: "EventID", Column: "event_id", References: TableEvents},
		},
	}
}

// MessageAttachment is the server's acknowledgement of an uploaded attachment.
type MessageAttachment struct {
	MessageID int64  `json:"message_id"`
	FileName  string `json:"file_name"`
	URL       string `json:"url"`
	Size      int64  `json:"size"`
}
