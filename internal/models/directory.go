package models

import (
	"database/sql"
	"time"
)

// Group is a row in whatsapp_groups, maintained by the live bot runtime and
// read-only from this service.
type Group struct {
	ID          int64     `db:"id" json:"id"`
	TenantID    string    `db:"tenant_id" json:"tenant_id"`
	Name        string    `db:"group_name" json:"group_name"`
	Description string    `db:"group_description" json:"group_description"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// GroupMember is a row in whatsapp_group_members.
type GroupMember struct {
	ID          int64          `db:"id" json:"id"`
	GroupID     int64          `db:"group_id" json:"group_id"`
	Name        sql.NullString `db:"name" json:"name"`
	PhoneNumber sql.NullString `db:"phone_number" json:"phone_number"`
	Role        sql.NullString `db:"role" json:"role"`
	Status      sql.NullString `db:"status" json:"status"`
	Rating      sql.NullInt64  `db:"rating" json:"rating"`
	Avatar      sql.NullString `db:"avatar" json:"avatar"`
}

// GroupDetails joins a group with its member list.
type GroupDetails struct {
	GroupName        string        `json:"group_name"`
	GroupDescription string        `json:"group_description"`
	Members          []GroupMember `json:"members"`
}

// GroupActivityPoint is the message count for one calendar day.
type GroupActivityPoint struct {
	MessageDate  string `json:"message_date"`
	MessageCount int    `json:"message_count"`
}

// TopMember is the sender with the most messages in a group.
type TopMember struct {
	Sender       string `db:"sender" json:"sender"`
	MessageCount int    `db:"message_count" json:"message_count"`
}

// GroupActivity is the engagement summary for one group: daily message
// counts, the all-time total, members who posted on every recent day, and
// the most active sender.
type GroupActivity struct {
	GroupName      string               `json:"group_name"`
	MessagesPerDay []GroupActivityPoint `json:"messages_per_day"`
	TotalMessages  int                  `json:"total_messages"`
	ActiveMembers  []string             `json:"active_members"`
	TopMember      *TopMember           `json:"top_member"`
}

// SentimentPoint aggregates classified messages for one day.
type SentimentPoint struct {
	Day        string `json:"day"`
	Positive   int    `json:"Positive"`
	Neutral    int    `json:"Neutral"`
	Negative   int    `json:"Negative"`
	Commercial int    `json:"Commercial"`
}

// TopicFrequency is one entry of a group's top-topics list.
type TopicFrequency struct {
	Topic     string `db:"topic" json:"topic"`
	Frequency int    `db:"frequency" json:"frequency"`
}

// DashboardGroup is the engagement view of a single group: sentiment counts
// per day plus the ten most frequent topics.
type DashboardGroup struct {
	Name          string           `json:"name"`
	SentimentData []SentimentPoint `json:"sentimentData"`
	TopicsData    []TopicFrequency `json:"topicsData"`
}
