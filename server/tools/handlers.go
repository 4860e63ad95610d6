package tools

import (
	"context"
	"fmt"

	"github.com/mattermost/msteams-mcp-server/server/services"
)

var handlers = map[Name]handler{
	ListChannels: typed(ListChannels, func(ctx context.Context, s *services.Services, _ *noArgs) (string, error) {
		return dataResult(s.Channels.ListChannels(ctx))
	}),
	GetChannel: typed(GetChannel, func(ctx context.Context, s *services.Services, a *channelArgs) (string, error) {
		return dataResult(s.Channels.GetChannel(ctx, a.TeamID, a.ChannelID))
	}),
	ReadMessages: typed(ReadMessages, func(ctx context.Context, s *services.Services, a *readMessagesArgs) (string, error) {
		return dataResult(s.Messages.ReadMessages(ctx, a.TeamID, a.ChannelID, clampLimit(a.Limit), a.AsMarkdown))
	}),
	SendMessage: typed(SendMessage, func(ctx context.Context, s *services.Services, a *sendMessageArgs) (string, error) {
		return confirmResult("Message sent: ")(s.Messages.SendMessage(ctx, a.TeamID, a.ChannelID, a.Message))
	}),
	ReplyToMessage: typed(ReplyToMessage, func(ctx context.Context, s *services.Services, a *replyArgs) (string, error) {
		return confirmResult("Reply sent: ")(s.Messages.ReplyToMessage(ctx, a.TeamID, a.ChannelID, a.MessageID, a.Message))
	}),
	EditMessage: typed(EditMessage, func(ctx context.Context, s *services.Services, a *editMessageArgs) (string, error) {
		return confirmResult("Message edited: ")(s.Messages.EditMessage(ctx, a.TeamID, a.ChannelID, a.MessageID, a.NewContent))
	}),
	DeleteMessage: typed(DeleteMessage, func(ctx context.Context, s *services.Services, a *messageArgs) (string, error) {
		return fixedResult("Message deleted", s.Messages.DeleteMessage(ctx, a.TeamID, a.ChannelID, a.MessageID))
	}),
	AddReaction: typed(AddReaction, func(ctx context.Context, s *services.Services, a *reactionArgs) (string, error) {
		return fixedResult(fmt.Sprintf("Reaction %q added", a.ReactionType), s.Messages.AddReaction(ctx, a.TeamID, a.ChannelID, a.MessageID, a.ReactionType))
	}),
	RemoveReaction: typed(RemoveReaction, func(ctx context.Context, s *services.Services, a *reactionArgs) (string, error) {
		return fixedResult(fmt.Sprintf("Reaction %q removed", a.ReactionType), s.Messages.RemoveReaction(ctx, a.TeamID, a.ChannelID, a.MessageID, a.ReactionType))
	}),
	GetMessageReactions: typed(GetMessageReactions, func(ctx context.Context, s *services.Services, a *messageArgs) (string, error) {
		return dataResult(s.Messages.GetMessageReactions(ctx, a.TeamID, a.ChannelID, a.MessageID))
	}),
	SendAdaptiveCard: typed(SendAdaptiveCard, func(ctx context.Context, s *services.Services, a *adaptiveCardArgs) (string, error) {
		card := services.NewSimpleAdaptiveCard(a.Title, a.Text, a.Actions)
		return confirmResult("Adaptive card sent: ")(s.Messages.SendAdaptiveCard(ctx, a.TeamID, a.ChannelID, card))
	}),
	SendRichMessage: typed(SendRichMessage, func(ctx context.Context, s *services.Services, a *richMessageArgs) (string, error) {
		return confirmResult("Rich message sent: ")(s.Messages.SendRichMessage(ctx, a.TeamID, a.ChannelID, a.Content, a.Format))
	}),

	ListChats: typed(ListChats, func(ctx context.Context, s *services.Services, _ *noArgs) (string, error) {
		return dataResult(s.Chats.ListChats(ctx))
	}),
	ReadChatMessages: typed(ReadChatMessages, func(ctx context.Context, s *services.Services, a *chatArgs) (string, error) {
		return dataResult(s.Chats.ReadChatMessages(ctx, a.ChatID, clampLimit(a.Limit), a.AsMarkdown))
	}),
	SendChatMessage: typed(SendChatMessage, func(ctx context.Context, s *services.Services, a *sendChatMessageArgs) (string, error) {
		return confirmResult("Chat message sent: ")(s.Chats.SendChatMessage(ctx, a.ChatID, a.Message))
	}),
	CreateChat: typed(CreateChat, func(ctx context.Context, s *services.Services, a *userEmailArgs) (string, error) {
		return confirmResult("One-on-one chat created: ")(s.Chats.CreateOneOnOneChat(ctx, a.UserEmail))
	}),
	CreateGroupChat: typed(CreateGroupChat, func(ctx context.Context, s *services.Services, a *groupChatArgs) (string, error) {
		return confirmResult("Group chat created: ")(s.Chats.CreateGroupChat(ctx, a.Topic, a.MemberEmails))
	}),
	FindChatByEmail: typed(FindChatByEmail, func(ctx context.Context, s *services.Services, a *userEmailArgs) (string, error) {
		return dataResult(s.Chats.FindOneOnOneChatByEmail(ctx, a.UserEmail))
	}),

	GetMeetings: typed(GetMeetings, func(ctx context.Context, s *services.Services, a *meetingsArgs) (string, error) {
		return dataResult(s.Meetings.GetMeetings(ctx, clampLimit(a.Limit)))
	}),
	GetMeetingByID: typed(GetMeetingByID, func(ctx context.Context, s *services.Services, a *meetingArgs) (string, error) {
		return dataResult(s.Meetings.GetMeetingByID(ctx, a.MeetingID))
	}),
	CreateMeeting: typed(CreateMeeting, func(ctx context.Context, s *services.Services, a *createMeetingArgs) (string, error) {
		return confirmResult("Meeting created: ")(s.Meetings.CreateMeeting(ctx, a.Subject, a.StartDateTime, a.EndDateTime, a.Attendees))
	}),

	ListFiles: typed(ListFiles, func(ctx context.Context, s *services.Services, a *channelArgs) (string, error) {
		return dataResult(s.Files.ListFiles(ctx, a.TeamID, a.ChannelID))
	}),
	UploadFile: typed(UploadFile, func(ctx context.Context, s *services.Services, a *uploadFileArgs) (string, error) {
		return confirmResult("File uploaded: ")(s.Files.UploadFile(ctx, a.TeamID, a.ChannelID, a.FileName, *a.Content))
	}),
	DownloadFile: typed(DownloadFile, func(ctx context.Context, s *services.Services, a *fileArgs) (string, error) {
		return dataResult(s.Files.DownloadFile(ctx, a.TeamID, a.ChannelID, a.FileID))
	}),
	DeleteFile: typed(DeleteFile, func(ctx context.Context, s *services.Services, a *fileArgs) (string, error) {
		return fixedResult("File deleted", s.Files.DeleteFile(ctx, a.TeamID, a.ChannelID, a.FileID))
	}),
	CreateFolder: typed(CreateFolder, func(ctx context.Context, s *services.Services, a *createFolderArgs) (string, error) {
		return confirmResult("Folder created: ")(s.Files.CreateFolder(ctx, a.TeamID, a.ChannelID, a.FolderName))
	}),
	SearchFiles: typed(SearchFiles, func(ctx context.Context, s *services.Services, a *searchFilesArgs) (string, error) {
		return dataResult(s.Files.SearchFiles(ctx, a.TeamID, a.ChannelID, a.Query))
	}),
	GetFileMetadata: typed(GetFileMetadata, func(ctx context.Context, s *services.Services, a *fileArgs) (string, error) {
		return dataResult(s.Files.GetFileMetadata(ctx, a.TeamID, a.ChannelID, a.FileID))
	}),
	ShareFile: typed(ShareFile, func(ctx context.Context, s *services.Services, a *shareFileArgs) (string, error) {
		return confirmResult("Sharing link created: ")(s.Files.ShareFile(ctx, a.TeamID, a.ChannelID, a.FileID, a.Scope))
	}),

	GetUserPresence: typed(GetUserPresence, func(ctx context.Context, s *services.Services, a *userEmailArgs) (string, error) {
		return dataResult(s.Presence.GetUserPresence(ctx, a.UserEmail))
	}),
	GetMyPresence: typed(GetMyPresence, func(ctx context.Context, s *services.Services, _ *noArgs) (string, error) {
		return dataResult(s.Presence.GetMyPresence(ctx))
	}),
	SetPresence: typed(SetPresence, func(ctx context.Context, s *services.Services, a *setPresenceArgs) (string, error) {
		text := fmt.Sprintf("Presence set: %s (%s)", a.Availability, a.Activity)
		return fixedResult(text, s.Presence.SetPresence(ctx, a.Availability, a.Activity, a.ExpirationDuration))
	}),
	GetMultiplePresences: typed(GetMultiplePresences, func(ctx context.Context, s *services.Services, a *multiplePresencesArgs) (string, error) {
		return dataResult(s.Presence.GetMultiplePresences(ctx, a.UserEmails))
	}),
	GetTeamMembersPresence: typed(GetTeamMembersPresence, func(ctx context.Context, s *services.Services, a *teamArgs) (string, error) {
		return dataResult(s.Presence.GetTeamMembersPresence(ctx, a.TeamID))
	}),
	SetStatusMessage: typed(SetStatusMessage, func(ctx context.Context, s *services.Services, a *statusMessageArgs) (string, error) {
		return fixedResult("Status message set", s.Presence.SetStatusMessage(ctx, a.Message, a.ExpiryDateTime))
	}),
	ClearStatusMessage: typed(ClearStatusMessage, func(ctx context.Context, s *services.Services, _ *noArgs) (string, error) {
		return fixedResult("Status message cleared", s.Presence.ClearStatusMessage(ctx))
	}),

	ListMembers: typed(ListMembers, func(ctx context.Context, s *services.Services, a *teamArgs) (string, error) {
		return dataResult(s.Members.ListMembers(ctx, a.TeamID))
	}),
	AddMember: typed(AddMember, func(ctx context.Context, s *services.Services, a *addMemberArgs) (string, error) {
		return confirmResult("Member added: ")(s.Members.AddMember(ctx, a.TeamID, a.UserEmail, a.Role))
	}),
	RemoveMember: typed(RemoveMember, func(ctx context.Context, s *services.Services, a *membershipArgs) (string, error) {
		return fixedResult("Member removed", s.Members.RemoveMember(ctx, a.TeamID, a.MembershipID))
	}),
	GetMember: typed(GetMember, func(ctx context.Context, s *services.Services, a *membershipArgs) (string, error) {
		return dataResult(s.Members.GetMember(ctx, a.TeamID, a.MembershipID))
	}),
	UpdateMemberRole: typed(UpdateMemberRole, func(ctx context.Context, s *services.Services, a *updateMemberRoleArgs) (string, error) {
		return confirmResult("Member role updated: ")(s.Members.UpdateMemberRole(ctx, a.TeamID, a.MembershipID, a.Role))
	}),
	FindMemberByEmail: typed(FindMemberByEmail, func(ctx context.Context, s *services.Services, a *findMemberArgs) (string, error) {
		return dataResult(s.Members.FindMemberByEmail(ctx, a.TeamID, a.UserEmail))
	}),
	ListTeamOwners: typed(ListTeamOwners, func(ctx context.Context, s *services.Services, a *teamArgs) (string, error) {
		return dataResult(s.Members.ListTeamOwners(ctx, a.TeamID))
	}),
}
