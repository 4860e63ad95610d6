package clientmodels

import (
	"time"
)

type Chat struct {
	ID                  string
	Members             []ChatMember
	Type                string
	Topic               string
	LastMessagePreview  string
	LastMessageDateTime time.Time
}

type ChatMember struct {
	DisplayName string
	UserID      string
	Email       string
}

type Reaction struct {
	UserID          string
	UserDisplayName string
	Reaction        string
	CreateAt        time.Time
}

// MessageBody is the outgoing body of a channel or chat message.
type MessageBody struct {
	Content     string
	ContentType string
	Attachments []Attachment
}

type Attachment struct {
	ID          string
	ContentType string
	Content     string
	Name        string
	ContentURL  string
}

type Message struct {
	ID              string
	UserID          string
	UserDisplayName string
	Text            string
	ContentType     string
	ReplyToID       string
	Attachments     []Attachment
	Reactions       []Reaction
	ChannelID       string
	TeamID          string
	ChatID          string
	CreateAt        time.Time
	LastUpdateAt    time.Time
}

type Channel struct {
	ID          string
	DisplayName string
	Description string
}

type User struct {
	DisplayName       string
	ID                string
	Mail              string
	UserPrincipalName string
}

type Team struct {
	ID          string
	DisplayName string
	Description string
}

type Event struct {
	ID              string
	Subject         string
	Start           string
	End             string
	OrganizerName   string
	JoinURL         string
	IsOnlineMeeting bool
	AttendeeNames   []string
}

// NewEvent describes a calendar event to create with an online meeting attached.
type NewEvent struct {
	Subject        string
	Start          string
	End            string
	TimeZone       string
	AttendeeEmails []string
}

type DriveItem struct {
	ID                   string
	Name                 string
	Size                 int64
	WebURL               string
	DownloadURL          string
	MimeType             string
	CreatedDateTime      time.Time
	LastModifiedDateTime time.Time
	CreatedBy            string
	IsFolder             bool
}

type SharingLink struct {
	WebURL string
	Type   string
}

type Member struct {
	ID          string
	UserID      string
	DisplayName string
	Email       string
	Roles       []string
}

type Presence struct {
	UserID        string
	Availability  string
	Activity      string
	StatusMessage string
}
