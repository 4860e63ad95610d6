//go:generate go run ./layer_generators
package msteams

import (
	"context"
	"time"

	"github.com/mattermost/msteams-mcp-server/server/msteams/clientmodels"
)

// MaxBatchSize is the largest number of requests Graph accepts in a single $batch call.
const MaxBatchSize = 20

type Client interface {
	Connect() error
	CheckConnection(ctx context.Context) error
	GetMe(ctx context.Context) (*clientmodels.User, error)
	GetUser(ctx context.Context, userIDOrEmail string) (*clientmodels.User, error)
	ListTeams(ctx context.Context) ([]clientmodels.Team, error)
	GetTeam(ctx context.Context, teamID string) (*clientmodels.Team, error)
	ListChannels(ctx context.Context, teamID string) ([]clientmodels.Channel, error)
	GetChannel(ctx context.Context, teamID, channelID string) (*clientmodels.Channel, error)
	ListChannelMessages(ctx context.Context, teamID, channelID string, top int) ([]clientmodels.Message, error)
	GetMessage(ctx context.Context, teamID, channelID, messageID string) (*clientmodels.Message, error)
	SendMessage(ctx context.Context, teamID, channelID, parentID string, body clientmodels.MessageBody) (*clientmodels.Message, error)
	UpdateMessage(ctx context.Context, teamID, channelID, messageID string, body clientmodels.MessageBody) (*clientmodels.Message, error)
	SoftDeleteMessage(ctx context.Context, teamID, channelID, messageID string) error
	SetReaction(ctx context.Context, teamID, channelID, messageID, reactionType string) error
	UnsetReaction(ctx context.Context, teamID, channelID, messageID, reactionType string) error
	ListChats(ctx context.Context, top int) ([]clientmodels.Chat, error)
	GetChat(ctx context.Context, chatID string) (*clientmodels.Chat, error)
	CreateChat(ctx context.Context, chatType, topic string, userIDs []string) (*clientmodels.Chat, error)
	ListChatMessages(ctx context.Context, chatID string, top int) ([]clientmodels.Message, error)
	SendChat(ctx context.Context, chatID string, body clientmodels.MessageBody) (*clientmodels.Message, error)
	ListEvents(ctx context.Context, from, to time.Time, top int) ([]clientmodels.Event, error)
	GetEvent(ctx context.Context, eventID string) (*clientmodels.Event, error)
	CreateEvent(ctx context.Context, event clientmodels.NewEvent) (*clientmodels.Event, error)
	ListChannelFiles(ctx context.Context, teamID, channelID string) ([]clientmodels.DriveItem, error)
	GetChannelFile(ctx context.Context, teamID, channelID, fileID string) (*clientmodels.DriveItem, error)
	GetChannelFileContent(ctx context.Context, teamID, channelID, fileID string) ([]byte, error)
	UploadChannelFile(ctx context.Context, teamID, channelID, fileName string, data []byte) (*clientmodels.DriveItem, error)
	CreateChannelFolder(ctx context.Context, teamID, channelID, folderName string) (*clientmodels.DriveItem, error)
	DeleteChannelFile(ctx context.Context, teamID, channelID, fileID string) error
	ShareChannelFile(ctx context.Context, teamID, channelID, fileID, linkType, scope string) (*clientmodels.SharingLink, error)
	GetPresence(ctx context.Context, userID string) (*clientmodels.Presence, error)
	GetMyPresence(ctx context.Context) (*clientmodels.Presence, error)
	GetPresences(ctx context.Context, userIDs []string) (map[string]*clientmodels.Presence, error)
	SetMyPresence(ctx context.Context, availability, activity, expirationDuration string) error
	SetMyStatusMessage(ctx context.Context, message string, expiry *time.Time) error
	ListMembers(ctx context.Context, teamID string) ([]clientmodels.Member, error)
	GetMember(ctx context.Context, teamID, membershipID string) (*clientmodels.Member, error)
	AddMember(ctx context.Context, teamID, userID string, roles []string) (*clientmodels.Member, error)
	UpdateMemberRoles(ctx context.Context, teamID, membershipID string, roles []string) (*clientmodels.Member, error)
	RemoveMember(ctx context.Context, teamID, membershipID string) error
}
