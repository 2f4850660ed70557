package models

import "time"

// Spam action tags the live bot runtime understands.
const (
	SpamActionWarn   = "warn"
	SpamActionRemove = "remove"
	SpamActionMute   = "mute"
)

// BotConfig represents a row in whatsapp_bot_configs. KeywordsJSON is the raw
// stored spam_keywords_actions column; reads decode it leniently so a corrupt
// record cannot break listing.
type BotConfig struct {
	ID                 int64     `db:"id" json:"id"`
	TenantID           string    `db:"tenant_id" json:"tenant_id"`
	Name               string    `db:"name" json:"name"`
	IsBotEnabled       bool      `db:"is_bot_enabled" json:"isBotEnabled"`
	KeywordsJSON       []byte    `db:"spam_keywords_actions" json:"-"`
	MessageLimit       int       `db:"message_limit" json:"messageLimit"`
	ReplyMessage       string    `db:"reply_message" json:"replyMessage"`
	AIDetection        bool      `db:"ai_detection" json:"aiDetection"`
	AIReply            bool      `db:"ai_reply" json:"aiReply"`
	AISpamActionPrompt string    `db:"ai_spam_action_prompt" json:"aiSpamActionPrompt"`
	CreatedAt          time.Time `db:"created_at" json:"created_at"`
	UpdatedAt          time.Time `db:"updated_at" json:"updated_at"`
}

// BotLog is an immutable log entry appended by the live bot runtime.
type BotLog struct {
	ID          int64     `db:"id" json:"id"`
	BotConfigID int64     `db:"bot_config_id" json:"bot_config_id"`
	Message     string    `db:"message" json:"message"`
	Action      string    `db:"action" json:"action"`
	PhoneOrName string    `db:"phone_or_name" json:"phone_or_name"`
	GroupName   string    `db:"group_name" json:"group_name"`
	LogTime     time.Time `db:"log_time" json:"time"`
}

// BotConfigRequest is the payload for add_bot_config. All fields are set
// explicitly on create.
type BotConfigRequest struct {
	Name                string            `json:"name" validate:"required"`
	IsBotEnabled        bool              `json:"isBotEnabled"`
	SpamKeywordsActions map[string]string `json:"spamKeywordsActions"`
	MessageLimit        int               `json:"messageLimit" validate:"gte=0"`
	ReplyMessage        string            `json:"replyMessage"`
	AIDetection         bool              `json:"aiDetection"`
	AIReply             bool              `json:"aiReply"`
	AISpamActionPrompt  string            `json:"aiSpamActionPrompt"`
}

// BotConfigPatch is the payload for update_bot_config. Nil fields preserve
// the stored value.
type BotConfigPatch struct {
	Name                *string            `json:"name,omitempty"`
	IsBotEnabled        *bool              `json:"isBotEnabled,omitempty"`
	SpamKeywordsActions *map[string]string `json:"spamKeywordsActions,omitempty"`
	MessageLimit        *int               `json:"messageLimit,omitempty" validate:"omitempty,gte=0"`
	ReplyMessage        *string            `json:"replyMessage,omitempty"`
	AIDetection         *bool              `json:"aiDetection,omitempty"`
	AIReply             *bool              `json:"aiReply,omitempty"`
	AISpamActionPrompt  *string            `json:"aiSpamActionPrompt,omitempty"`
}

// BotConfigResponse is the API view of a config joined with its recent logs.
type BotConfigResponse struct {
	ID                  int64             `json:"id"`
	Name                string            `json:"name"`
	IsBotEnabled        bool              `json:"isBotEnabled"`
	SpamKeywordsActions map[string]string `json:"spamKeywordsActions"`
	MessageLimit        int               `json:"messageLimit"`
	ReplyMessage        string            `json:"replyMessage"`
	AIDetection         bool              `json:"aiDetection"`
	AIReply             bool              `json:"aiReply"`
	AISpamActionPrompt  string            `json:"aiSpamActionPrompt"`
	Logs                []BotLog          `json:"logs"`
	CreatedAt           time.Time         `json:"createdAt"`
	UpdatedAt           time.Time         `json:"updatedAt"`
}
