//go:generate mockery --name=Client
package msteams

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/microsoft/kiota-abstractions-go/authentication"
	"github.com/microsoft/kiota-abstractions-go/serialization"
	a "github.com/microsoft/kiota-authentication-azure-go"
	khttp "github.com/microsoft/kiota-http-go"
	msgraphsdk "github.com/microsoftgraph/msgraph-sdk-go"
	"github.com/microsoftgraph/msgraph-sdk-go/chats"
	"github.com/microsoftgraph/msgraph-sdk-go/drives"
	"github.com/microsoftgraph/msgraph-sdk-go/models"
	"github.com/microsoftgraph/msgraph-sdk-go/models/odataerrors"
	"github.com/microsoftgraph/msgraph-sdk-go/teams"
	"github.com/microsoftgraph/msgraph-sdk-go/users"
	msgraphcore "github.com/microsoftgraph/msgraph-sdk-go-core"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/mattermost/msteams-mcp-server/server/msteams/clientmodels"
)

const (
	clientTypeApp       = "app"
	clientTypeDevice    = "device"
	clientTypeAnonymous = "anonymous"

	DefaultBaseURL = "https://graph.microsoft.com/v1.0"

	downloadURLKey = "@microsoft.graph.downloadUrl"
)

var teamsDefaultScopes = []string{"https://graph.microsoft.com/.default"}

var teamsDelegatedScopes = []string{
	"https://graph.microsoft.com/User.Read",
	"https://graph.microsoft.com/User.ReadBasic.All",
	"https://graph.microsoft.com/Team.ReadBasic.All",
	"https://graph.microsoft.com/TeamMember.ReadWrite.All",
	"https://graph.microsoft.com/Channel.ReadBasic.All",
	"https://graph.microsoft.com/ChannelMessage.Read.All",
	"https://graph.microsoft.com/ChannelMessage.Send",
	"https://graph.microsoft.com/ChannelMessage.ReadWrite",
	"https://graph.microsoft.com/Chat.ReadWrite",
	"https://graph.microsoft.com/ChatMessage.Send",
	"https://graph.microsoft.com/Chat.Create",
	"https://graph.microsoft.com/Files.ReadWrite.All",
	"https://graph.microsoft.com/Calendars.ReadWrite",
	"https://graph.microsoft.com/OnlineMeetings.ReadWrite",
	"https://graph.microsoft.com/Presence.ReadWrite",
	"https://graph.microsoft.com/Presence.Read.All",
}

// Options tune a Graph client regardless of how it authenticates.
type Options struct {
	// BaseURL overrides the Graph root, e.g. for national clouds.
	BaseURL string
	// MeUserID routes every "me" request to /users/{MeUserID}. Required for app-only tokens.
	MeUserID string
	Logger   logrus.FieldLogger
	Observer RequestObserver
}

type ClientImpl struct {
	client       *msgraphsdk.GraphServiceClient
	adapter      *msgraphsdk.GraphRequestAdapter
	authProvider authentication.AuthenticationProvider
	tenantID     string
	clientID     string
	clientSecret string
	clientType   string
	baseURL      string
	meUserID     string
	logger       logrus.FieldLogger
	observer     RequestObserver
}

func newClient(clientType, tenantID, clientID string, opts Options) *ClientImpl {
	logger := opts.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &ClientImpl{
		clientType: clientType,
		tenantID:   tenantID,
		clientID:   clientID,
		baseURL:    baseURL,
		meUserID:   opts.MeUserID,
		logger:     logger,
		observer:   opts.Observer,
	}
}

// NewApp returns a client authenticating with the application's client secret.
func NewApp(tenantID, clientID, clientSecret string, opts Options) Client {
	client := newClient(clientTypeApp, tenantID, clientID, opts)
	client.clientSecret = clientSecret
	return client
}

// NewDeviceCode returns a client acting as a signed-in user. The device code prompt is logged
// the first time a token is needed.
func NewDeviceCode(tenantID, clientID string, opts Options) Client {
	return newClient(clientTypeDevice, tenantID, clientID, opts)
}

// NewWithAuthProvider returns a client using an already configured kiota authentication
// provider.
func NewWithAuthProvider(authProvider authentication.AuthenticationProvider, clientID string, opts Options) Client {
	client := newClient(clientTypeAnonymous, "", clientID, opts)
	client.authProvider = authProvider
	return client
}

func (tc *ClientImpl) credential() (azcore.TokenCredential, []string, error) {
	clientOptions := azcore.ClientOptions{Transport: getAuthClient()}

	switch tc.clientType {
	case clientTypeApp:
		cred, err := azidentity.NewClientSecretCredential(tc.tenantID, tc.clientID, tc.clientSecret, &azidentity.ClientSecretCredentialOptions{
			ClientOptions: clientOptions,
		})
		if err != nil {
			return nil, nil, err
		}
		return cred, teamsDefaultScopes, nil
	case clientTypeDevice:
		cred, err := azidentity.NewDeviceCodeCredential(&azidentity.DeviceCodeCredentialOptions{
			ClientOptions: clientOptions,
			TenantID:      tc.tenantID,
			ClientID:      tc.clientID,
			UserPrompt: func(_ context.Context, dc azidentity.DeviceCodeMessage) error {
				tc.logger.WithFields(logrus.Fields{
					"verification_url": dc.VerificationURL,
					"user_code":        dc.UserCode,
				}).Warn(dc.Message)
				return nil
			},
		})
		if err != nil {
			return nil, nil, err
		}
		return cred, teamsDelegatedScopes, nil
	default:
		return nil, nil, errors.New("not valid client type, this shouldn't happen ever")
	}
}

func (tc *ClientImpl) Connect() error {
	authProvider := tc.authProvider
	if tc.clientType != clientTypeAnonymous {
		cred, scopes, err := tc.credential()
		if err != nil {
			return errors.Wrap(err, "unable to create the credential")
		}
		authProvider, err = a.NewAzureIdentityAuthenticationProviderWithScopes(cred, scopes)
		if err != nil {
			return errors.Wrap(err, "unable to create the authentication provider")
		}
	}

	var middleware []khttp.Middleware
	if tc.observer != nil {
		middleware = append(middleware, newMetricsMiddleware(tc.observer))
	}

	adapter, err := msgraphsdk.NewGraphRequestAdapterWithParseNodeFactoryAndSerializationWriterFactoryAndHttpClient(authProvider, nil, nil, getHTTPClient(middleware...))
	if err != nil {
		return errors.Wrap(err, "unable to create the graph request adapter")
	}
	adapter.SetBaseUrl(tc.baseURL)

	tc.adapter = adapter
	tc.client = msgraphsdk.NewGraphServiceClient(adapter)
	return nil
}

// me returns the request builder for the acting user.
func (tc *ClientImpl) me() *users.UserItemRequestBuilder {
	if tc.meUserID != "" {
		return tc.client.Users().ByUserId(tc.meUserID)
	}
	return tc.client.Me()
}

func (tc *ClientImpl) CheckConnection(ctx context.Context) error {
	if tc.clientType == clientTypeApp && tc.meUserID == "" {
		_, err := tc.client.Organization().Get(ctx, nil)
		return err
	}
	_, err := tc.GetMe(ctx)
	return err
}

var userSelect = []string{"id", "displayName", "mail", "userPrincipalName"}

func (tc *ClientImpl) GetMe(ctx context.Context) (*clientmodels.User, error) {
	u, err := tc.me().Get(ctx, &users.UserItemRequestBuilderGetRequestConfiguration{
		QueryParameters: &users.UserItemRequestBuilderGetQueryParameters{Select: userSelect},
	})
	if err != nil {
		return nil, err
	}
	return convertToUser(u), nil
}

func (tc *ClientImpl) GetUser(ctx context.Context, userIDOrEmail string) (*clientmodels.User, error) {
	u, err := tc.client.Users().ByUserId(userIDOrEmail).Get(ctx, &users.UserItemRequestBuilderGetRequestConfiguration{
		QueryParameters: &users.UserItemRequestBuilderGetQueryParameters{Select: userSelect},
	})
	if err != nil {
		return nil, err
	}
	return convertToUser(u), nil
}

func (tc *ClientImpl) ListTeams(ctx context.Context) ([]clientmodels.Team, error) {
	r, err := tc.me().JoinedTeams().Get(ctx, &users.ItemJoinedTeamsRequestBuilderGetRequestConfiguration{
		QueryParameters: &users.ItemJoinedTeamsRequestBuilderGetQueryParameters{
			Select: []string{"id", "displayName", "description"},
		},
	})
	if err != nil {
		return nil, err
	}

	teamsList := make([]clientmodels.Team, 0, len(r.GetValue()))
	for _, t := range r.GetValue() {
		teamsList = append(teamsList, clientmodels.Team{
			ID:          str(t.GetId()),
			DisplayName: str(t.GetDisplayName()),
			Description: str(t.GetDescription()),
		})
	}
	return teamsList, nil
}

func (tc *ClientImpl) GetTeam(ctx context.Context, teamID string) (*clientmodels.Team, error) {
	res, err := tc.client.Teams().ByTeamId(teamID).Get(ctx, nil)
	if err != nil {
		return nil, err
	}

	return &clientmodels.Team{
		ID:          teamID,
		DisplayName: str(res.GetDisplayName()),
		Description: str(res.GetDescription()),
	}, nil
}

func (tc *ClientImpl) ListChannels(ctx context.Context, teamID string) ([]clientmodels.Channel, error) {
	r, err := tc.client.Teams().ByTeamId(teamID).Channels().Get(ctx, &teams.ItemChannelsRequestBuilderGetRequestConfiguration{
		QueryParameters: &teams.ItemChannelsRequestBuilderGetQueryParameters{
			Select: []string{"id", "displayName", "description"},
		},
	})
	if err != nil {
		return nil, err
	}

	channels := make([]clientmodels.Channel, 0, len(r.GetValue()))
	for _, c := range r.GetValue() {
		channels = append(channels, clientmodels.Channel{
			ID:          str(c.GetId()),
			DisplayName: str(c.GetDisplayName()),
			Description: str(c.GetDescription()),
		})
	}
	return channels, nil
}

func (tc *ClientImpl) GetChannel(ctx context.Context, teamID, channelID string) (*clientmodels.Channel, error) {
	res, err := tc.client.Teams().ByTeamId(teamID).Channels().ByChannelId(channelID).Get(ctx, nil)
	if err != nil {
		return nil, err
	}

	return &clientmodels.Channel{
		ID:          channelID,
		DisplayName: str(res.GetDisplayName()),
		Description: str(res.GetDescription()),
	}, nil
}

func (tc *ClientImpl) ListChannelMessages(ctx context.Context, teamID, channelID string, top int) ([]clientmodels.Message, error) {
	top32 := int32(top)
	r, err := tc.client.Teams().ByTeamId(teamID).Channels().ByChannelId(channelID).Messages().Get(ctx, &teams.ItemChannelsItemMessagesRequestBuilderGetRequestConfiguration{
		QueryParameters: &teams.ItemChannelsItemMessagesRequestBuilderGetQueryParameters{Top: &top32},
	})
	if err != nil {
		return nil, err
	}

	messages := make([]clientmodels.Message, 0, len(r.GetValue()))
	for _, m := range r.GetValue() {
		messages = append(messages, *convertToMessage(m, teamID, channelID, ""))
	}
	return messages, nil
}

func (tc *ClientImpl) GetMessage(ctx context.Context, teamID, channelID, messageID string) (*clientmodels.Message, error) {
	res, err := tc.client.Teams().ByTeamId(teamID).Channels().ByChannelId(channelID).Messages().ByChatMessageId(messageID).Get(ctx, nil)
	if err != nil {
		return nil, err
	}
	return convertToMessage(res, teamID, channelID, ""), nil
}

func (tc *ClientImpl) SendMessage(ctx context.Context, teamID, channelID, parentID string, body clientmodels.MessageBody) (*clientmodels.Message, error) {
	rmsg := newChatMessage(body)

	messages := tc.client.Teams().ByTeamId(teamID).Channels().ByChannelId(channelID).Messages()

	var res models.ChatMessageable
	var err error
	if parentID != "" {
		res, err = messages.ByChatMessageId(parentID).Replies().Post(ctx, rmsg, nil)
	} else {
		res, err = messages.Post(ctx, rmsg, nil)
	}
	if err != nil {
		return nil, err
	}
	return convertToMessage(res, teamID, channelID, ""), nil
}

func (tc *ClientImpl) UpdateMessage(ctx context.Context, teamID, channelID, messageID string, body clientmodels.MessageBody) (*clientmodels.Message, error) {
	rmsg := newChatMessage(body)

	res, err := tc.client.Teams().ByTeamId(teamID).Channels().ByChannelId(channelID).Messages().ByChatMessageId(messageID).Patch(ctx, rmsg, nil)
	if err != nil {
		return nil, err
	}

	// PATCH answers 204 without a body.
	if res == nil {
		rmsg.SetId(&messageID)
		res = rmsg
	}
	return convertToMessage(res, teamID, channelID, ""), nil
}

func (tc *ClientImpl) SoftDeleteMessage(ctx context.Context, teamID, channelID, messageID string) error {
	return tc.client.Teams().ByTeamId(teamID).Channels().ByChannelId(channelID).Messages().ByChatMessageId(messageID).SoftDelete().Post(ctx, nil)
}

func (tc *ClientImpl) SetReaction(ctx context.Context, teamID, channelID, messageID, reactionType string) error {
	body := teams.NewItemChannelsItemMessagesItemSetReactionPostRequestBody()
	body.SetReactionType(&reactionType)
	return tc.client.Teams().ByTeamId(teamID).Channels().ByChannelId(channelID).Messages().ByChatMessageId(messageID).SetReaction().Post(ctx, body, nil)
}

func (tc *ClientImpl) UnsetReaction(ctx context.Context, teamID, channelID, messageID, reactionType string) error {
	body := teams.NewItemChannelsItemMessagesItemUnsetReactionPostRequestBody()
	body.SetReactionType(&reactionType)
	return tc.client.Teams().ByTeamId(teamID).Channels().ByChannelId(channelID).Messages().ByChatMessageId(messageID).UnsetReaction().Post(ctx, body, nil)
}

func (tc *ClientImpl) ListChats(ctx context.Context, top int) ([]clientmodels.Chat, error) {
	top32 := int32(top)
	r, err := tc.me().Chats().Get(ctx, &users.ItemChatsRequestBuilderGetRequestConfiguration{
		QueryParameters: &users.ItemChatsRequestBuilderGetQueryParameters{
			Expand:  []string{"members", "lastMessagePreview"},
			Top:     &top32,
			Orderby: []string{"lastMessagePreview/createdDateTime desc"},
		},
	})
	if err != nil {
		return nil, err
	}

	chatList := make([]clientmodels.Chat, 0, len(r.GetValue()))
	for _, c := range r.GetValue() {
		chatList = append(chatList, *convertToChat(c))
	}
	return chatList, nil
}

func (tc *ClientImpl) GetChat(ctx context.Context, chatID string) (*clientmodels.Chat, error) {
	res, err := tc.client.Chats().ByChatId(chatID).Get(ctx, &chats.ChatItemRequestBuilderGetRequestConfiguration{
		QueryParameters: &chats.ChatItemRequestBuilderGetQueryParameters{
			Expand: []string{"members", "lastMessagePreview"},
		},
	})
	if err != nil {
		return nil, err
	}
	return convertToChat(res), nil
}

func (tc *ClientImpl) CreateChat(ctx context.Context, chatType, topic string, userIDs []string) (*clientmodels.Chat, error) {
	chat := models.NewChat()
	ct := models.ONEONONE_CHATTYPE
	if chatType == "group" {
		ct = models.GROUP_CHATTYPE
	}
	chat.SetChatType(&ct)
	if topic != "" {
		chat.SetTopic(&topic)
	}

	members := make([]models.ConversationMemberable, 0, len(userIDs))
	for _, userID := range userIDs {
		members = append(members, newConversationMember(userID, []string{"owner"}))
	}
	chat.SetMembers(members)

	res, err := tc.client.Chats().Post(ctx, chat, nil)
	if err != nil {
		return nil, err
	}
	return convertToChat(res), nil
}

func (tc *ClientImpl) ListChatMessages(ctx context.Context, chatID string, top int) ([]clientmodels.Message, error) {
	top32 := int32(top)
	r, err := tc.client.Chats().ByChatId(chatID).Messages().Get(ctx, &chats.ItemMessagesRequestBuilderGetRequestConfiguration{
		QueryParameters: &chats.ItemMessagesRequestBuilderGetQueryParameters{
			Top:     &top32,
			Orderby: []string{"createdDateTime desc"},
		},
	})
	if err != nil {
		return nil, err
	}

	messages := make([]clientmodels.Message, 0, len(r.GetValue()))
	for _, m := range r.GetValue() {
		messages = append(messages, *convertToMessage(m, "", "", chatID))
	}
	return messages, nil
}

func (tc *ClientImpl) SendChat(ctx context.Context, chatID string, body clientmodels.MessageBody) (*clientmodels.Message, error) {
	res, err := tc.client.Chats().ByChatId(chatID).Messages().Post(ctx, newChatMessage(body), nil)
	if err != nil {
		return nil, err
	}
	return convertToMessage(res, "", "", chatID), nil
}

var eventSelect = []string{"id", "subject", "start", "end", "organizer", "onlineMeeting", "attendees", "isOnlineMeeting"}

func (tc *ClientImpl) ListEvents(ctx context.Context, from, to time.Time, top int) ([]clientmodels.Event, error) {
	top32 := int32(top)
	filter := fmt.Sprintf("isOnlineMeeting eq true and start/dateTime ge '%s' and start/dateTime le '%s'",
		from.UTC().Format(time.RFC3339), to.UTC().Format(time.RFC3339))

	r, err := tc.me().Calendar().Events().Get(ctx, &users.ItemCalendarEventsRequestBuilderGetRequestConfiguration{
		QueryParameters: &users.ItemCalendarEventsRequestBuilderGetQueryParameters{
			Filter:  &filter,
			Select:  eventSelect,
			Top:     &top32,
			Orderby: []string{"start/dateTime"},
		},
	})
	if err != nil {
		return nil, err
	}

	events := make([]clientmodels.Event, 0, len(r.GetValue()))
	for _, e := range r.GetValue() {
		events = append(events, *convertToEvent(e))
	}
	return events, nil
}

func (tc *ClientImpl) GetEvent(ctx context.Context, eventID string) (*clientmodels.Event, error) {
	res, err := tc.me().Calendar().Events().ByEventId(eventID).Get(ctx, nil)
	if err != nil {
		return nil, err
	}
	return convertToEvent(res), nil
}

func (tc *ClientImpl) CreateEvent(ctx context.Context, event clientmodels.NewEvent) (*clientmodels.Event, error) {
	timeZone := event.TimeZone
	if timeZone == "" {
		timeZone = "UTC"
	}

	e := models.NewEvent()
	e.SetSubject(&event.Subject)
	e.SetStart(newDateTimeTimeZone(event.Start, timeZone))
	e.SetEnd(newDateTimeTimeZone(event.End, timeZone))
	isOnline := true
	e.SetIsOnlineMeeting(&isOnline)
	provider := models.TEAMSFORBUSINESS_ONLINEMEETINGPROVIDERTYPE
	e.SetOnlineMeetingProvider(&provider)

	attendees := make([]models.Attendeeable, 0, len(event.AttendeeEmails))
	for _, email := range event.AttendeeEmails {
		address := email
		emailAddress := models.NewEmailAddress()
		emailAddress.SetAddress(&address)
		attendee := models.NewAttendee()
		attendee.SetEmailAddress(emailAddress)
		attendeeType := models.REQUIRED_ATTENDEETYPE
		attendee.SetTypeEscaped(&attendeeType)
		attendees = append(attendees, attendee)
	}
	e.SetAttendees(attendees)

	res, err := tc.me().Calendar().Events().Post(ctx, e, nil)
	if err != nil {
		return nil, err
	}
	return convertToEvent(res), nil
}

// channelFolder resolves the drive and the folder that back a channel's files tab.
func (tc *ClientImpl) channelFolder(ctx context.Context, teamID, channelID string) (string, string, error) {
	folderInfo, err := tc.client.Teams().ByTeamId(teamID).Channels().ByChannelId(channelID).FilesFolder().Get(ctx, nil)
	if err != nil {
		return "", "", err
	}
	if folderInfo.GetParentReference() == nil || folderInfo.GetParentReference().GetDriveId() == nil || folderInfo.GetId() == nil {
		return "", "", errors.New("channel files folder has no drive reference")
	}
	return *folderInfo.GetParentReference().GetDriveId(), *folderInfo.GetId(), nil
}

func (tc *ClientImpl) driveItem(ctx context.Context, teamID, channelID, itemID string) (*drives.ItemItemsDriveItemItemRequestBuilder, error) {
	driveID, _, err := tc.channelFolder(ctx, teamID, channelID)
	if err != nil {
		return nil, err
	}
	return tc.client.Drives().ByDriveId(driveID).Items().ByDriveItemId(itemID), nil
}

func (tc *ClientImpl) ListChannelFiles(ctx context.Context, teamID, channelID string) ([]clientmodels.DriveItem, error) {
	driveID, folderID, err := tc.channelFolder(ctx, teamID, channelID)
	if err != nil {
		return nil, err
	}

	r, err := tc.client.Drives().ByDriveId(driveID).Items().ByDriveItemId(folderID).Children().Get(ctx, nil)
	if err != nil {
		return nil, err
	}

	items := make([]clientmodels.DriveItem, 0, len(r.GetValue()))
	for _, item := range r.GetValue() {
		items = append(items, *convertToDriveItem(item))
	}
	return items, nil
}

func (tc *ClientImpl) GetChannelFile(ctx context.Context, teamID, channelID, fileID string) (*clientmodels.DriveItem, error) {
	item, err := tc.driveItem(ctx, teamID, channelID, fileID)
	if err != nil {
		return nil, err
	}
	res, err := item.Get(ctx, nil)
	if err != nil {
		return nil, err
	}
	return convertToDriveItem(res), nil
}

func (tc *ClientImpl) GetChannelFileContent(ctx context.Context, teamID, channelID, fileID string) ([]byte, error) {
	item, err := tc.driveItem(ctx, teamID, channelID, fileID)
	if err != nil {
		return nil, err
	}
	return item.Content().Get(ctx, nil)
}

func (tc *ClientImpl) UploadChannelFile(ctx context.Context, teamID, channelID, fileName string, data []byte) (*clientmodels.DriveItem, error) {
	driveID, folderID, err := tc.channelFolder(ctx, teamID, channelID)
	if err != nil {
		return nil, err
	}

	res, err := tc.client.Drives().ByDriveId(driveID).Items().ByDriveItemId(folderID+":/"+fileName+":").Content().Put(ctx, data, nil)
	if err != nil {
		return nil, err
	}
	return convertToDriveItem(res), nil
}

func (tc *ClientImpl) CreateChannelFolder(ctx context.Context, teamID, channelID, folderName string) (*clientmodels.DriveItem, error) {
	driveID, folderID, err := tc.channelFolder(ctx, teamID, channelID)
	if err != nil {
		return nil, err
	}

	folder := models.NewDriveItem()
	folder.SetName(&folderName)
	folder.SetFolder(models.NewFolder())
	folder.SetAdditionalData(map[string]any{
		"@microsoft.graph.conflictBehavior": "rename",
	})

	res, err := tc.client.Drives().ByDriveId(driveID).Items().ByDriveItemId(folderID).Children().Post(ctx, folder, nil)
	if err != nil {
		return nil, err
	}
	return convertToDriveItem(res), nil
}

func (tc *ClientImpl) DeleteChannelFile(ctx context.Context, teamID, channelID, fileID string) error {
	item, err := tc.driveItem(ctx, teamID, channelID, fileID)
	if err != nil {
		return err
	}
	return item.Delete(ctx, nil)
}

func (tc *ClientImpl) ShareChannelFile(ctx context.Context, teamID, channelID, fileID, linkType, scope string) (*clientmodels.SharingLink, error) {
	item, err := tc.driveItem(ctx, teamID, channelID, fileID)
	if err != nil {
		return nil, err
	}

	body := drives.NewItemItemsItemCreateLinkPostRequestBody()
	body.SetTypeEscaped(&linkType)
	body.SetScope(&scope)

	res, err := item.CreateLink().Post(ctx, body, nil)
	if err != nil {
		return nil, err
	}

	link := &clientmodels.SharingLink{Type: linkType}
	if res != nil && res.GetLink() != nil {
		link.WebURL = str(res.GetLink().GetWebUrl())
		if t := res.GetLink().GetTypeEscaped(); t != nil {
			link.Type = *t
		}
	}
	return link, nil
}

func (tc *ClientImpl) GetPresence(ctx context.Context, userID string) (*clientmodels.Presence, error) {
	res, err := tc.client.Users().ByUserId(userID).Presence().Get(ctx, nil)
	if err != nil {
		return nil, err
	}
	return convertToPresence(res), nil
}

func (tc *ClientImpl) GetMyPresence(ctx context.Context) (*clientmodels.Presence, error) {
	res, err := tc.me().Presence().Get(ctx, nil)
	if err != nil {
		return nil, err
	}
	return convertToPresence(res), nil
}

// GetPresences fetches the presence of up to MaxBatchSize users with a single $batch call.
// Users whose individual response failed are missing from the result.
func (tc *ClientImpl) GetPresences(ctx context.Context, userIDs []string) (map[string]*clientmodels.Presence, error) {
	if len(userIDs) > MaxBatchSize {
		return nil, errors.Errorf("a batch holds at most %d requests, got %d", MaxBatchSize, len(userIDs))
	}
	result := make(map[string]*clientmodels.Presence, len(userIDs))
	if len(userIDs) == 0 {
		return result, nil
	}

	batch := msgraphcore.NewBatchRequest(tc.adapter)
	steps := make(map[string]string, len(userIDs))
	for _, userID := range userIDs {
		info, err := tc.client.Users().ByUserId(userID).Presence().ToGetRequestInformation(ctx, nil)
		if err != nil {
			return nil, err
		}
		item, err := batch.AddBatchRequestStep(*info)
		if err != nil {
			return nil, errors.Wrap(err, "unable to add the presence request to the batch")
		}
		steps[userID] = *item.GetId()
	}

	res, err := batch.Send(ctx, tc.adapter)
	if err != nil {
		return nil, err
	}

	for userID, stepID := range steps {
		item := res.GetResponseById(stepID)
		if item == nil || item.GetStatus() == nil || *item.GetStatus() != 200 {
			tc.logger.WithFields(logrus.Fields{"user_id": userID, "step_id": stepID}).Debug("Skipping failed presence batch item")
			continue
		}
		presence, err := msgraphcore.GetBatchResponseById[models.Presenceable](res, stepID, models.CreatePresenceFromDiscriminatorValue)
		if err != nil {
			tc.logger.WithError(err).WithField("user_id", userID).Debug("Unable to parse presence batch item")
			continue
		}
		result[userID] = convertToPresence(presence)
	}
	return result, nil
}

func (tc *ClientImpl) SetMyPresence(ctx context.Context, availability, activity, expirationDuration string) error {
	body := users.NewItemPresenceSetPresencePostRequestBody()
	sessionID := tc.clientID
	body.SetSessionId(&sessionID)
	body.SetAvailability(&availability)
	body.SetActivity(&activity)
	if expirationDuration != "" {
		duration, err := serialization.ParseISODuration(expirationDuration)
		if err != nil {
			return errors.Wrapf(err, "invalid expiration duration %q", expirationDuration)
		}
		body.SetExpirationDuration(duration)
	}
	return tc.me().Presence().SetPresence().Post(ctx, body, nil)
}

func (tc *ClientImpl) SetMyStatusMessage(ctx context.Context, message string, expiry *time.Time) error {
	content := message
	contentType := models.TEXT_BODYTYPE
	itemBody := models.NewItemBody()
	itemBody.SetContent(&content)
	itemBody.SetContentType(&contentType)

	status := models.NewPresenceStatusMessage()
	status.SetMessage(itemBody)
	if expiry != nil {
		status.SetExpiryDateTime(newDateTimeTimeZone(expiry.UTC().Format("2006-01-02T15:04:05"), "UTC"))
	}

	body := users.NewItemPresenceSetStatusMessagePostRequestBody()
	body.SetStatusMessage(status)
	return tc.me().Presence().SetStatusMessage().Post(ctx, body, nil)
}

func (tc *ClientImpl) ListMembers(ctx context.Context, teamID string) ([]clientmodels.Member, error) {
	r, err := tc.client.Teams().ByTeamId(teamID).Members().Get(ctx, nil)
	if err != nil {
		return nil, err
	}

	members := make([]clientmodels.Member, 0, len(r.GetValue()))
	for _, m := range r.GetValue() {
		members = append(members, *convertToMember(m))
	}
	return members, nil
}

func (tc *ClientImpl) GetMember(ctx context.Context, teamID, membershipID string) (*clientmodels.Member, error) {
	res, err := tc.client.Teams().ByTeamId(teamID).Members().ByConversationMemberId(membershipID).Get(ctx, nil)
	if err != nil {
		return nil, err
	}
	return convertToMember(res), nil
}

func (tc *ClientImpl) AddMember(ctx context.Context, teamID, userID string, roles []string) (*clientmodels.Member, error) {
	res, err := tc.client.Teams().ByTeamId(teamID).Members().Post(ctx, newConversationMember(userID, roles), nil)
	if err != nil {
		return nil, err
	}
	return convertToMember(res), nil
}

func (tc *ClientImpl) UpdateMemberRoles(ctx context.Context, teamID, membershipID string, roles []string) (*clientmodels.Member, error) {
	member := models.NewAadUserConversationMember()
	member.SetRoles(roles)

	res, err := tc.client.Teams().ByTeamId(teamID).Members().ByConversationMemberId(membershipID).Patch(ctx, member, nil)
	if err != nil {
		return nil, err
	}
	return convertToMember(res), nil
}

func (tc *ClientImpl) RemoveMember(ctx context.Context, teamID, membershipID string) error {
	return tc.client.Teams().ByTeamId(teamID).Members().ByConversationMemberId(membershipID).Delete(ctx, nil)
}

// StatusCode extracts the HTTP status of a failed Graph call, or 0 when the failure never
// reached the service.
func StatusCode(err error) int {
	var apiErr interface{ GetStatusCode() int }
	if errors.As(err, &apiErr) {
		return apiErr.GetStatusCode()
	}
	return 0
}

// ErrorDetail returns the Graph error code and message carried by err, if any.
func ErrorDetail(err error) string {
	var odataErr *odataerrors.ODataError
	if errors.As(err, &odataErr) && odataErr.GetErrorEscaped() != nil {
		main := odataErr.GetErrorEscaped()
		return strconv.Quote(str(main.GetCode())) + ": " + str(main.GetMessage())
	}
	return ""
}
