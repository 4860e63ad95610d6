package services

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/mattermost/msteams-mcp-server/server/markdown"
	"github.com/mattermost/msteams-mcp-server/server/msteams/clientmodels"
)

const (
	adaptiveCardAttachmentID   = "adaptive-card"
	adaptiveCardContentType    = "application/vnd.microsoft.card.adaptive"
	adaptiveCardVersion        = "1.4"
	adaptiveCardMessageContent = "Adaptive Card"

	FormatHTML     = "html"
	FormatMarkdown = "markdown"
)

var ReactionTypes = []string{"like", "heart", "laugh", "surprised", "sad", "angry"}

type Message struct {
	ID              string     `json:"id"`
	Content         string     `json:"content"`
	From            string     `json:"from"`
	CreatedDateTime string     `json:"createdDateTime"`
	ChannelID       string     `json:"channelId"`
	TeamID          string     `json:"teamId"`
	Reactions       []Reaction `json:"reactions,omitempty"`
}

type Reaction struct {
	ReactionType    string `json:"reactionType"`
	User            string `json:"user"`
	CreatedDateTime string `json:"createdDateTime"`
}

type AdaptiveCard struct {
	Type    string        `json:"type"`
	Version string        `json:"version"`
	Body    []CardElement `json:"body"`
	Actions []CardAction  `json:"actions,omitempty"`
}

type CardElement struct {
	Type   string `json:"type"`
	Text   string `json:"text"`
	Weight string `json:"weight,omitempty"`
	Size   string `json:"size,omitempty"`
	Wrap   bool   `json:"wrap"`
}

type CardAction struct {
	Type  string `json:"type"`
	Title string `json:"title"`
	URL   string `json:"url"`
}

// CardActionInput is a button requested by the caller. Only URL buttons are rendered.
type CardActionInput struct {
	Type  string `json:"type"`
	Title string `json:"title"`
	URL   string `json:"url,omitempty"`
}

// NewSimpleAdaptiveCard builds a card with a title block, a text block and optional URL
// buttons.
func NewSimpleAdaptiveCard(title, text string, actions []CardActionInput) AdaptiveCard {
	card := AdaptiveCard{
		Type:    "AdaptiveCard",
		Version: adaptiveCardVersion,
		Body: []CardElement{
			{Type: "TextBlock", Text: title, Weight: "bolder", Size: "large", Wrap: true},
			{Type: "TextBlock", Text: text, Wrap: true},
		},
	}

	for _, action := range actions {
		url := action.URL
		if url == "" {
			url = "#"
		}
		card.Actions = append(card.Actions, CardAction{
			Type:  "Action.OpenUrl",
			Title: action.Title,
			URL:   url,
		})
	}

	return card
}

type MessageService struct {
	*base
}

func (s *MessageService) toMessage(msg *clientmodels.Message, teamID, channelID, sentContent string) *Message {
	content := msg.Text
	if content == "" {
		content = sentContent
	}
	return &Message{
		ID:              msg.ID,
		Content:         content,
		From:            s.selfDisplayName(msg.UserDisplayName),
		CreatedDateTime: formatTime(msg.CreateAt),
		ChannelID:       channelID,
		TeamID:          teamID,
	}
}

func convertReactions(reactions []clientmodels.Reaction) []Reaction {
	result := make([]Reaction, 0, len(reactions))
	for _, r := range reactions {
		result = append(result, Reaction{
			ReactionType:    r.Reaction,
			User:            orUnknown(r.UserDisplayName),
			CreatedDateTime: formatTime(r.CreateAt),
		})
	}
	return result
}

// ReadMessages returns the most recent top level messages of a channel.
func (s *MessageService) ReadMessages(ctx context.Context, teamID, channelID string, limit int, asMarkdown bool) ([]Message, error) {
	msgs, err := s.client.ListChannelMessages(ctx, teamID, channelID, limit)
	if err != nil {
		return nil, remoteError("read messages", err)
	}

	messages := make([]Message, 0, len(msgs))
	for _, msg := range msgs {
		content := msg.Text
		if asMarkdown {
			content = markdown.ConvertToMD(content)
		}
		m := Message{
			ID:              msg.ID,
			Content:         content,
			From:            orUnknown(msg.UserDisplayName),
			CreatedDateTime: formatTime(msg.CreateAt),
			ChannelID:       channelID,
			TeamID:          teamID,
		}
		if len(msg.Reactions) > 0 {
			m.Reactions = convertReactions(msg.Reactions)
		}
		messages = append(messages, m)
	}
	return messages, nil
}

func (s *MessageService) SendMessage(ctx context.Context, teamID, channelID, content string) (*Message, error) {
	finalContent := s.cfg.sign(content)
	msg, err := s.client.SendMessage(ctx, teamID, channelID, "", clientmodels.MessageBody{Content: finalContent, ContentType: "text"})
	if err != nil {
		return nil, remoteError("send message", err)
	}
	return s.toMessage(msg, teamID, channelID, finalContent), nil
}

func (s *MessageService) ReplyToMessage(ctx context.Context, teamID, channelID, messageID, content string) (*Message, error) {
	finalContent := s.cfg.sign(content)
	msg, err := s.client.SendMessage(ctx, teamID, channelID, messageID, clientmodels.MessageBody{Content: finalContent, ContentType: "text"})
	if err != nil {
		return nil, remoteError("reply to message", err)
	}
	return s.toMessage(msg, teamID, channelID, finalContent), nil
}

// EditMessage replaces the body of a message. Only the caller's own messages can be edited.
func (s *MessageService) EditMessage(ctx context.Context, teamID, channelID, messageID, newContent string) (*Message, error) {
	finalContent := s.cfg.sign(newContent)
	msg, err := s.client.UpdateMessage(ctx, teamID, channelID, messageID, clientmodels.MessageBody{Content: finalContent, ContentType: "text"})
	if err != nil {
		return nil, remoteError("edit message", err)
	}
	return s.toMessage(msg, teamID, channelID, finalContent), nil
}

func (s *MessageService) DeleteMessage(ctx context.Context, teamID, channelID, messageID string) error {
	if err := s.client.SoftDeleteMessage(ctx, teamID, channelID, messageID); err != nil {
		return remoteError("delete message", err)
	}
	return nil
}

func (s *MessageService) AddReaction(ctx context.Context, teamID, channelID, messageID, reactionType string) error {
	if err := s.client.SetReaction(ctx, teamID, channelID, messageID, reactionType); err != nil {
		return remoteError("add reaction", err)
	}
	return nil
}

func (s *MessageService) RemoveReaction(ctx context.Context, teamID, channelID, messageID, reactionType string) error {
	if err := s.client.UnsetReaction(ctx, teamID, channelID, messageID, reactionType); err != nil {
		return remoteError("remove reaction", err)
	}
	return nil
}

func (s *MessageService) GetMessageReactions(ctx context.Context, teamID, channelID, messageID string) ([]Reaction, error) {
	msg, err := s.client.GetMessage(ctx, teamID, channelID, messageID)
	if err != nil {
		return nil, remoteError("get message reactions", err)
	}
	return convertReactions(msg.Reactions), nil
}

func (s *MessageService) SendAdaptiveCard(ctx context.Context, teamID, channelID string, card AdaptiveCard) (*Message, error) {
	const op = "send adaptive card"

	cardContent, err := json.Marshal(card)
	if err != nil {
		return nil, InvalidArgumentError(op, errors.Wrap(err, "unable to serialize the card"))
	}

	body := clientmodels.MessageBody{
		Content:     `<attachment id="` + adaptiveCardAttachmentID + `"></attachment>`,
		ContentType: "html",
		Attachments: []clientmodels.Attachment{
			{
				ID:          adaptiveCardAttachmentID,
				ContentType: adaptiveCardContentType,
				Content:     string(cardContent),
			},
		},
	}

	msg, err := s.client.SendMessage(ctx, teamID, channelID, "", body)
	if err != nil {
		return nil, remoteError(op, err)
	}

	result := s.toMessage(msg, teamID, channelID, adaptiveCardMessageContent)
	result.Content = adaptiveCardMessageContent
	return result, nil
}

// SendRichMessage posts an HTML body. Markdown content is rendered to HTML first.
func (s *MessageService) SendRichMessage(ctx context.Context, teamID, channelID, content, format string) (*Message, error) {
	const op = "send rich message"

	var htmlContent string
	switch format {
	case FormatMarkdown:
		htmlContent = markdown.RenderHTML(s.cfg.sign(content))
	case FormatHTML, "":
		htmlContent = s.cfg.signHTML(content)
	default:
		return nil, InvalidArgumentError(op, errors.Errorf("unsupported format %q", format))
	}

	msg, err := s.client.SendMessage(ctx, teamID, channelID, "", clientmodels.MessageBody{Content: htmlContent, ContentType: "html"})
	if err != nil {
		return nil, remoteError(op, err)
	}
	return s.toMessage(msg, teamID, channelID, htmlContent), nil
}
