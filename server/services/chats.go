package services

import (
	"context"
	"strings"

	"github.com/mattermost/msteams-mcp-server/server/markdown"
	"github.com/mattermost/msteams-mcp-server/server/msteams/clientmodels"
)

const (
	ChatTypeOneOnOne = "oneOnOne"
	ChatTypeGroup    = "group"

	listChatsTop = 50
)

type Chat struct {
	ID                  string   `json:"id"`
	ChatType            string   `json:"chatType"`
	Topic               string   `json:"topic,omitempty"`
	Members             []string `json:"members"`
	LastMessagePreview  string   `json:"lastMessagePreview,omitempty"`
	LastMessageDateTime string   `json:"lastMessageDateTime,omitempty"`
}

type ChatMessage struct {
	ID              string `json:"id"`
	Content         string `json:"content"`
	From            string `json:"from"`
	CreatedDateTime string `json:"createdDateTime"`
	ChatID          string `json:"chatId"`
}

type ChatService struct {
	*base
}

func convertChat(c *clientmodels.Chat) Chat {
	members := make([]string, 0, len(c.Members))
	for _, m := range c.Members {
		members = append(members, orUnknown(m.DisplayName))
	}
	return Chat{
		ID:                  c.ID,
		ChatType:            c.Type,
		Topic:               c.Topic,
		Members:             members,
		LastMessagePreview:  c.LastMessagePreview,
		LastMessageDateTime: formatTime(c.LastMessageDateTime),
	}
}

func (s *ChatService) ListChats(ctx context.Context) ([]Chat, error) {
	chats, err := s.client.ListChats(ctx, listChatsTop)
	if err != nil {
		return nil, remoteError("list chats", err)
	}

	result := make([]Chat, 0, len(chats))
	for i := range chats {
		result = append(result, convertChat(&chats[i]))
	}
	return result, nil
}

func (s *ChatService) ReadChatMessages(ctx context.Context, chatID string, limit int, asMarkdown bool) ([]ChatMessage, error) {
	msgs, err := s.client.ListChatMessages(ctx, chatID, limit)
	if err != nil {
		return nil, remoteError("read chat messages", err)
	}

	messages := make([]ChatMessage, 0, len(msgs))
	for _, msg := range msgs {
		content := msg.Text
		if asMarkdown {
			content = markdown.ConvertToMD(content)
		}
		messages = append(messages, ChatMessage{
			ID:              msg.ID,
			Content:         content,
			From:            orUnknown(msg.UserDisplayName),
			CreatedDateTime: formatTime(msg.CreateAt),
			ChatID:          chatID,
		})
	}
	return messages, nil
}

func (s *ChatService) SendChatMessage(ctx context.Context, chatID, content string) (*ChatMessage, error) {
	finalContent := s.cfg.sign(content)
	msg, err := s.client.SendChat(ctx, chatID, clientmodels.MessageBody{Content: finalContent, ContentType: "text"})
	if err != nil {
		return nil, remoteError("send chat message", err)
	}

	text := msg.Text
	if text == "" {
		text = finalContent
	}
	return &ChatMessage{
		ID:              msg.ID,
		Content:         text,
		From:            s.selfDisplayName(msg.UserDisplayName),
		CreatedDateTime: formatTime(msg.CreateAt),
		ChatID:          chatID,
	}, nil
}

// resolveUsers looks up every email in order. Any failed lookup fails the whole call.
func (s *ChatService) resolveUsers(ctx context.Context, op string, emails []string) ([]*clientmodels.User, error) {
	return fanOut(ctx, s.base, "resolve_users", emails, func(ctx context.Context, email string) (*clientmodels.User, error) {
		user, err := s.client.GetUser(ctx, email)
		if err != nil {
			return nil, remoteError(op, err)
		}
		return user, nil
	})
}

// createChat adds the caller to the requested members, as Graph requires the creator to be
// part of a new chat.
func (s *ChatService) createChat(ctx context.Context, op, chatType, topic string, users []*clientmodels.User) (*Chat, error) {
	me, err := s.client.GetMe(ctx)
	if err != nil {
		return nil, remoteError(op, err)
	}

	userIDs := []string{me.ID}
	displayNames := make([]string, 0, len(users))
	for _, u := range users {
		if u.ID != me.ID {
			userIDs = append(userIDs, u.ID)
		}
		displayNames = append(displayNames, orUnknown(u.DisplayName))
	}

	chat, err := s.client.CreateChat(ctx, chatType, topic, userIDs)
	if err != nil {
		return nil, remoteError(op, err)
	}

	chatTypeResult := chat.Type
	if chatTypeResult == "" {
		chatTypeResult = chatType
	}
	chatTopic := chat.Topic
	if chatTopic == "" {
		chatTopic = topic
	}
	return &Chat{
		ID:       chat.ID,
		ChatType: chatTypeResult,
		Topic:    chatTopic,
		Members:  displayNames,
	}, nil
}

func (s *ChatService) CreateOneOnOneChat(ctx context.Context, userEmail string) (*Chat, error) {
	const op = "create one-on-one chat"

	user, err := s.client.GetUser(ctx, userEmail)
	if err != nil {
		return nil, remoteError(op, err)
	}
	return s.createChat(ctx, op, ChatTypeOneOnOne, "", []*clientmodels.User{user})
}

func (s *ChatService) CreateGroupChat(ctx context.Context, topic string, memberEmails []string) (*Chat, error) {
	const op = "create group chat"

	users, err := s.resolveUsers(ctx, op, memberEmails)
	if err != nil {
		return nil, err
	}
	return s.createChat(ctx, op, ChatTypeGroup, topic, users)
}

// FindOneOnOneChatByEmail re-reads the members of every one-on-one chat until one of them
// matches the email.
func (s *ChatService) FindOneOnOneChatByEmail(ctx context.Context, userEmail string) (*Chat, error) {
	const op = "find one-on-one chat"

	chats, err := s.client.ListChats(ctx, listChatsTop)
	if err != nil {
		return nil, remoteError(op, err)
	}

	candidates := []clientmodels.Chat{}
	for _, c := range chats {
		if c.Type == ChatTypeOneOnOne {
			candidates = append(candidates, c)
		}
	}

	matches, err := fanOut(ctx, s.base, "find_chat_members", candidates, func(ctx context.Context, candidate clientmodels.Chat) (bool, error) {
		details, err := s.client.GetChat(ctx, candidate.ID)
		if err != nil {
			return false, remoteError(op, err)
		}
		for _, member := range details.Members {
			if strings.EqualFold(member.Email, userEmail) {
				return true, nil
			}
		}
		return false, nil
	})
	if err != nil {
		return nil, err
	}

	for i, matched := range matches {
		if matched {
			chat := convertChat(&candidates[i])
			return &chat, nil
		}
	}
	return nil, notFoundError(op, "no one-on-one chat with %s", userEmail)
}
