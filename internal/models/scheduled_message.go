// Package models defines data structures used throughout the application.
package models

import (
	"database/sql"
	"time"
)

// MessageType enumerates supported scheduled message payloads.
type MessageType string

const (
	MessageTypeText     MessageType = "text"
	MessageTypeImage    MessageType = "image"
	MessageTypeDocument MessageType = "document"
	MessageTypeVideo    MessageType = "video"
)

// MessageStatus is the delivery lifecycle state of a scheduled message.
// This service only ever writes MessageStatusPending; the delivery worker
// owns every later transition.
type MessageStatus string

const (
	MessageStatusPending MessageStatus = "pending"
	MessageStatusSent    MessageStatus = "sent"
	MessageStatusFailed  MessageStatus = "failed"
)

// Media is the normalized descriptor stored alongside non-text messages.
// FileExtension is derived from the MIME type at validation time.
type Media struct {
	URL           string `json:"url"`
	Type          string `json:"type"`
	Name          string `json:"name"`
	FileExtension string `json:"file_extension"`
}

// ScheduledMessage represents a row in whatsapp_scheduled_messages.
// Groups is stored comma-joined; MediaJSON holds the serialized Media
// descriptor or NULL for text messages.
type ScheduledMessage struct {
	ID           int64          `db:"id" json:"id"`
	TenantID     string         `db:"tenant_id" json:"tenant_id"`
	Groups       string         `db:"groups" json:"groups"`
	MessageType  MessageType    `db:"message_type" json:"message_type"`
	Content      string         `db:"message_content" json:"message_content"`
	ScheduleTime time.Time      `db:"schedule_time" json:"schedule_time"`
	MediaJSON    sql.NullString `db:"media" json:"media,omitempty"`
	Status       MessageStatus  `db:"status" json:"status"`
	CreatedAt    time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at" json:"updated_at"`
}

// MediaInput is the media object as submitted by callers.
type MediaInput struct {
	URL  string `json:"url" validate:"required,url"`
	Type string `json:"type" validate:"required"`
	Name string `json:"name" validate:"required"`
}

// ScheduleMessageRequest is the payload for create and update.
// ScheduledTime is kept as a string so the service can accept both the
// frontend's "YYYY-MM-DD HH:MM:SS" shape and RFC 3339.
type ScheduleMessageRequest struct {
	Groups        []string    `json:"groups" validate:"required,min=1,dive,required"`
	MessageType   MessageType `json:"messageType" validate:"required"`
	Content       string      `json:"content"`
	Media         *MediaInput `json:"media,omitempty"`
	ScheduledTime string      `json:"scheduledTime" validate:"required"`
}

// ScheduledMessageResponse is the API view of a stored row, with groups
// split back into list form and media decoded from its stored JSON.
type ScheduledMessageResponse struct {
	ID           int64         `json:"id"`
	Groups       []string      `json:"groups"`
	MessageType  MessageType   `json:"messageType"`
	Content      string        `json:"messageContent"`
	ScheduleTime time.Time     `json:"scheduleTime"`
	Media        *Media        `json:"media"`
	Status       MessageStatus `json:"status"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`
}
