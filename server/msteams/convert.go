package msteams

import (
	"fmt"
	"time"

	"github.com/microsoftgraph/msgraph-sdk-go/models"

	"github.com/mattermost/msteams-mcp-server/server/msteams/clientmodels"
)

func str(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func timeOrZero(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}

func newChatMessage(body clientmodels.MessageBody) models.ChatMessageable {
	rmsg := models.NewChatMessage()

	contentType := models.TEXT_BODYTYPE
	if body.ContentType == "html" {
		contentType = models.HTML_BODYTYPE
	}
	content := body.Content
	itemBody := models.NewItemBody()
	itemBody.SetContent(&content)
	itemBody.SetContentType(&contentType)
	rmsg.SetBody(itemBody)

	if len(body.Attachments) > 0 {
		attachments := make([]models.ChatMessageAttachmentable, 0, len(body.Attachments))
		for _, a := range body.Attachments {
			attachment := models.NewChatMessageAttachment()
			id, attachmentContentType, name, contentURL := a.ID, a.ContentType, a.Name, a.ContentURL
			attachment.SetId(&id)
			attachment.SetContentType(&attachmentContentType)
			attachment.SetName(&name)
			if contentURL != "" {
				attachment.SetContentUrl(&contentURL)
			}
			if a.Content != "" {
				attachmentContent := a.Content
				attachment.SetContent(&attachmentContent)
			}
			attachments = append(attachments, attachment)
		}
		rmsg.SetAttachments(attachments)
	}

	return rmsg
}

func newConversationMember(userID string, roles []string) models.ConversationMemberable {
	member := models.NewAadUserConversationMember()
	if roles == nil {
		roles = []string{}
	}
	member.SetRoles(roles)
	member.SetAdditionalData(map[string]any{
		"user@odata.bind": fmt.Sprintf("https://graph.microsoft.com/v1.0/users('%s')", userID),
	})
	return member
}

func newDateTimeTimeZone(dateTime, timeZone string) models.DateTimeTimeZoneable {
	dt := models.NewDateTimeTimeZone()
	dt.SetDateTime(&dateTime)
	dt.SetTimeZone(&timeZone)
	return dt
}

func convertToUser(u models.Userable) *clientmodels.User {
	if u == nil {
		return nil
	}
	return &clientmodels.User{
		ID:                str(u.GetId()),
		DisplayName:       str(u.GetDisplayName()),
		Mail:              str(u.GetMail()),
		UserPrincipalName: str(u.GetUserPrincipalName()),
	}
}

func convertToMessage(msg models.ChatMessageable, teamID, channelID, chatID string) *clientmodels.Message {
	userID := ""
	userDisplayName := ""
	if msg.GetFrom() != nil && msg.GetFrom().GetUser() != nil {
		userID = str(msg.GetFrom().GetUser().GetId())
		userDisplayName = str(msg.GetFrom().GetUser().GetDisplayName())
	}

	text := ""
	contentType := ""
	if msg.GetBody() != nil {
		text = str(msg.GetBody().GetContent())
		if msg.GetBody().GetContentType() != nil {
			contentType = msg.GetBody().GetContentType().String()
		}
	}

	attachments := []clientmodels.Attachment{}
	for _, attachment := range msg.GetAttachments() {
		attachments = append(attachments, clientmodels.Attachment{
			ID:          str(attachment.GetId()),
			ContentType: str(attachment.GetContentType()),
			Content:     str(attachment.GetContent()),
			Name:        str(attachment.GetName()),
			ContentURL:  str(attachment.GetContentUrl()),
		})
	}

	reactions := []clientmodels.Reaction{}
	for _, reaction := range msg.GetReactions() {
		r := clientmodels.Reaction{
			Reaction: str(reaction.GetReactionType()),
			CreateAt: timeOrZero(reaction.GetCreatedDateTime()),
		}
		if reaction.GetUser() != nil && reaction.GetUser().GetUser() != nil {
			r.UserID = str(reaction.GetUser().GetUser().GetId())
			r.UserDisplayName = str(reaction.GetUser().GetUser().GetDisplayName())
		}
		reactions = append(reactions, r)
	}

	if chatID == "" {
		chatID = str(msg.GetChatId())
	}
	if msg.GetChannelIdentity() != nil {
		if teamID == "" {
			teamID = str(msg.GetChannelIdentity().GetTeamId())
		}
		if channelID == "" {
			channelID = str(msg.GetChannelIdentity().GetChannelId())
		}
	}

	lastUpdateAt := timeOrZero(msg.GetLastModifiedDateTime())
	if msg.GetLastEditedDateTime() != nil {
		lastUpdateAt = *msg.GetLastEditedDateTime()
	}

	return &clientmodels.Message{
		ID:              str(msg.GetId()),
		UserID:          userID,
		UserDisplayName: userDisplayName,
		Text:            text,
		ContentType:     contentType,
		ReplyToID:       str(msg.GetReplyToId()),
		Attachments:     attachments,
		Reactions:       reactions,
		TeamID:          teamID,
		ChannelID:       channelID,
		ChatID:          chatID,
		CreateAt:        timeOrZero(msg.GetCreatedDateTime()),
		LastUpdateAt:    lastUpdateAt,
	}
}

func convertToChat(c models.Chatable) *clientmodels.Chat {
	members := []clientmodels.ChatMember{}
	for _, member := range c.GetMembers() {
		members = append(members, convertToChatMember(member))
	}

	chatType := ""
	if c.GetChatType() != nil {
		chatType = c.GetChatType().String()
	}

	chat := &clientmodels.Chat{
		ID:      str(c.GetId()),
		Type:    chatType,
		Topic:   str(c.GetTopic()),
		Members: members,
	}

	if preview := c.GetLastMessagePreview(); preview != nil {
		if preview.GetBody() != nil {
			chat.LastMessagePreview = str(preview.GetBody().GetContent())
		}
		chat.LastMessageDateTime = timeOrZero(preview.GetCreatedDateTime())
	}

	return chat
}

func convertToChatMember(member models.ConversationMemberable) clientmodels.ChatMember {
	m := convertToMember(member)
	return clientmodels.ChatMember{
		DisplayName: m.DisplayName,
		UserID:      m.UserID,
		Email:       m.Email,
	}
}

func convertToMember(member models.ConversationMemberable) *clientmodels.Member {
	m := &clientmodels.Member{
		ID:          str(member.GetId()),
		DisplayName: str(member.GetDisplayName()),
		Roles:       member.GetRoles(),
	}
	if m.Roles == nil {
		m.Roles = []string{}
	}

	if aadMember, ok := member.(models.AadUserConversationMemberable); ok {
		m.UserID = str(aadMember.GetUserId())
		m.Email = str(aadMember.GetEmail())
	}

	additionalData := member.GetAdditionalData()
	if m.UserID == "" {
		m.UserID = stringFromAdditionalData(additionalData, "userId")
	}
	if m.Email == "" {
		m.Email = stringFromAdditionalData(additionalData, "email")
	}

	return m
}

func convertToEvent(e models.Eventable) *clientmodels.Event {
	event := &clientmodels.Event{
		ID:            str(e.GetId()),
		Subject:       str(e.GetSubject()),
		AttendeeNames: []string{},
	}

	if e.GetStart() != nil {
		event.Start = str(e.GetStart().GetDateTime())
	}
	if e.GetEnd() != nil {
		event.End = str(e.GetEnd().GetDateTime())
	}
	if e.GetOrganizer() != nil && e.GetOrganizer().GetEmailAddress() != nil {
		event.OrganizerName = str(e.GetOrganizer().GetEmailAddress().GetName())
	}
	if e.GetOnlineMeeting() != nil {
		event.JoinURL = str(e.GetOnlineMeeting().GetJoinUrl())
	}
	if e.GetIsOnlineMeeting() != nil {
		event.IsOnlineMeeting = *e.GetIsOnlineMeeting()
	}

	for _, attendee := range e.GetAttendees() {
		if attendee.GetEmailAddress() == nil {
			continue
		}
		name := str(attendee.GetEmailAddress().GetName())
		if name == "" {
			name = str(attendee.GetEmailAddress().GetAddress())
		}
		event.AttendeeNames = append(event.AttendeeNames, name)
	}

	return event
}

func convertToDriveItem(item models.DriveItemable) *clientmodels.DriveItem {
	d := &clientmodels.DriveItem{
		ID:                   str(item.GetId()),
		Name:                 str(item.GetName()),
		WebURL:               str(item.GetWebUrl()),
		CreatedDateTime:      timeOrZero(item.GetCreatedDateTime()),
		LastModifiedDateTime: timeOrZero(item.GetLastModifiedDateTime()),
		IsFolder:             item.GetFolder() != nil,
		DownloadURL:          stringFromAdditionalData(item.GetAdditionalData(), downloadURLKey),
	}

	if item.GetSize() != nil {
		d.Size = *item.GetSize()
	}
	if item.GetFile() != nil {
		d.MimeType = str(item.GetFile().GetMimeType())
	}
	if item.GetCreatedBy() != nil && item.GetCreatedBy().GetUser() != nil {
		d.CreatedBy = str(item.GetCreatedBy().GetUser().GetDisplayName())
	}

	return d
}

func convertToPresence(p models.Presenceable) *clientmodels.Presence {
	presence := &clientmodels.Presence{
		UserID:       str(p.GetId()),
		Availability: str(p.GetAvailability()),
		Activity:     str(p.GetActivity()),
	}
	if p.GetStatusMessage() != nil && p.GetStatusMessage().GetMessage() != nil {
		presence.StatusMessage = str(p.GetStatusMessage().GetMessage().GetContent())
	}
	return presence
}

// stringFromAdditionalData reads a string value that the serializer may have stored either as
// a string or as a *string.
func stringFromAdditionalData(data map[string]any, key string) string {
	switch v := data[key].(type) {
	case string:
		return v
	case *string:
		return str(v)
	default:
		return ""
	}
}
