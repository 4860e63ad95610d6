package tools

import (
	"github.com/mattermost/msteams-mcp-server/server/services"
)

// Argument records, one per tool. Field names follow the wire names through the json tags and
// validation reports them by those names.

type noArgs struct{}

type teamArgs struct {
	TeamID string `json:"teamId" validate:"required"`
}

type channelArgs struct {
	TeamID    string `json:"teamId" validate:"required"`
	ChannelID string `json:"channelId" validate:"required"`
}

type readMessagesArgs struct {
	TeamID     string `json:"teamId" validate:"required"`
	ChannelID  string `json:"channelId" validate:"required"`
	Limit      int    `json:"limit"`
	AsMarkdown bool   `json:"asMarkdown"`
}

type sendMessageArgs struct {
	TeamID    string `json:"teamId" validate:"required"`
	ChannelID string `json:"channelId" validate:"required"`
	Message   string `json:"message" validate:"required"`
}

type messageArgs struct {
	TeamID    string `json:"teamId" validate:"required"`
	ChannelID string `json:"channelId" validate:"required"`
	MessageID string `json:"messageId" validate:"required"`
}

type replyArgs struct {
	TeamID    string `json:"teamId" validate:"required"`
	ChannelID string `json:"channelId" validate:"required"`
	MessageID string `json:"messageId" validate:"required"`
	Message   string `json:"message" validate:"required"`
}

type editMessageArgs struct {
	TeamID     string `json:"teamId" validate:"required"`
	ChannelID  string `json:"channelId" validate:"required"`
	MessageID  string `json:"messageId" validate:"required"`
	NewContent string `json:"newContent" validate:"required"`
}

type reactionArgs struct {
	TeamID       string `json:"teamId" validate:"required"`
	ChannelID    string `json:"channelId" validate:"required"`
	MessageID    string `json:"messageId" validate:"required"`
	ReactionType string `json:"reactionType" validate:"required,oneof=like heart laugh surprised sad angry"`
}

type adaptiveCardArgs struct {
	TeamID    string                     `json:"teamId" validate:"required"`
	ChannelID string                     `json:"channelId" validate:"required"`
	Title     string                     `json:"title" validate:"required"`
	Text      string                     `json:"text" validate:"required"`
	Actions   []services.CardActionInput `json:"actions" validate:"dive"`
}

type richMessageArgs struct {
	TeamID    string `json:"teamId" validate:"required"`
	ChannelID string `json:"channelId" validate:"required"`
	Content   string `json:"content" validate:"required"`
	Format    string `json:"format" validate:"oneof=html markdown"`
}

type chatArgs struct {
	ChatID     string `json:"chatId" validate:"required"`
	Limit      int    `json:"limit"`
	AsMarkdown bool   `json:"asMarkdown"`
}

type sendChatMessageArgs struct {
	ChatID  string `json:"chatId" validate:"required"`
	Message string `json:"message" validate:"required"`
}

type userEmailArgs struct {
	UserEmail string `json:"userEmail" validate:"required,email"`
}

type groupChatArgs struct {
	Topic        string   `json:"topic" validate:"required"`
	MemberEmails []string `json:"memberEmails" validate:"required,min=1,dive,email"`
}

type meetingsArgs struct {
	Limit int `json:"limit"`
}

type meetingArgs struct {
	MeetingID string `json:"meetingId" validate:"required"`
}

type createMeetingArgs struct {
	Subject       string   `json:"subject" validate:"required"`
	StartDateTime string   `json:"startDateTime" validate:"required"`
	EndDateTime   string   `json:"endDateTime" validate:"required"`
	Attendees     []string `json:"attendees" validate:"required,dive,email"`
}

type fileArgs struct {
	TeamID    string `json:"teamId" validate:"required"`
	ChannelID string `json:"channelId" validate:"required"`
	FileID    string `json:"fileId" validate:"required"`
}

type uploadFileArgs struct {
	TeamID    string  `json:"teamId" validate:"required"`
	ChannelID string  `json:"channelId" validate:"required"`
	FileName  string  `json:"fileName" validate:"required"`
	// Content may be empty, only the key is required.
	Content   *string `json:"content" validate:"required"`
}

type createFolderArgs struct {
	TeamID     string `json:"teamId" validate:"required"`
	ChannelID  string `json:"channelId" validate:"required"`
	FolderName string `json:"folderName" validate:"required"`
}

type searchFilesArgs struct {
	TeamID    string `json:"teamId" validate:"required"`
	ChannelID string `json:"channelId" validate:"required"`
	Query     string `json:"query" validate:"required"`
}

type shareFileArgs struct {
	TeamID    string `json:"teamId" validate:"required"`
	ChannelID string `json:"channelId" validate:"required"`
	FileID    string `json:"fileId" validate:"required"`
	Scope     string `json:"scope" validate:"oneof=anonymous organization"`
}

type setPresenceArgs struct {
	Availability       string `json:"availability" validate:"required,oneof=Available Busy DoNotDisturb BeRightBack Away"`
	Activity           string `json:"activity" validate:"required"`
	ExpirationDuration string `json:"expirationDuration"`
}

type multiplePresencesArgs struct {
	UserEmails []string `json:"userEmails" validate:"required,min=1,dive,required"`
}

type statusMessageArgs struct {
	Message        string `json:"message" validate:"required"`
	ExpiryDateTime string `json:"expiryDateTime"`
}

type addMemberArgs struct {
	TeamID    string `json:"teamId" validate:"required"`
	UserEmail string `json:"userEmail" validate:"required,email"`
	Role      string `json:"role" validate:"oneof=owner member"`
}

type membershipArgs struct {
	TeamID       string `json:"teamId" validate:"required"`
	MembershipID string `json:"membershipId" validate:"required"`
}

type updateMemberRoleArgs struct {
	TeamID       string `json:"teamId" validate:"required"`
	MembershipID string `json:"membershipId" validate:"required"`
	Role         string `json:"role" validate:"required,oneof=owner member"`
}

type findMemberArgs struct {
	TeamID    string `json:"teamId" validate:"required"`
	UserEmail string `json:"userEmail" validate:"required,email"`
}
