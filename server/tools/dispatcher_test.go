package tools

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"sync"
	"testing"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mattermost/msteams-mcp-server/server/msteams/clientmodels"
	"github.com/mattermost/msteams-mcp-server/server/msteams/mocks"
	"github.com/mattermost/msteams-mcp-server/server/services"
)

type toolCall struct {
	tool   string
	result string
}

type fakeMetrics struct {
	mu       sync.Mutex
	calls    []toolCall
	failures []string
}

func (m *fakeMetrics) ObserveToolCall(tool, result string, _ float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, toolCall{tool, result})
}

func (m *fakeMetrics) ObserveGoroutineFailure(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failures = append(m.failures, name)
}

type notFoundError struct{}

func (notFoundError) Error() string      { return "item not found" }
func (notFoundError) GetStatusCode() int { return http.StatusNotFound }

func newTestDispatcher(t *testing.T, cfg services.Config) (*Dispatcher, *mocks.Client, *fakeMetrics) {
	t.Helper()

	client := mocks.NewClient(t)
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	metrics := &fakeMetrics{}
	return NewDispatcher(services.New(client, cfg, logger, nil), logger, metrics), client, metrics
}

func resultText(t *testing.T, result *mcplib.CallToolResult) string {
	t.Helper()
	require.NotNil(t, result)
	require.Len(t, result.Content, 1)
	text, ok := result.Content[0].(mcplib.TextContent)
	require.True(t, ok, "content is not text")
	assert.Equal(t, "text", text.Type)
	return text.Text
}

func TestRegistryMatchesHandlers(t *testing.T) {
	descriptors := Descriptors()
	assert.Len(t, descriptors, 43)
	assert.Len(t, handlers, len(descriptors))

	seen := map[Name]bool{}
	for _, d := range descriptors {
		assert.False(t, seen[d.Name], "duplicate tool %s", d.Name)
		seen[d.Name] = true

		_, ok := handlers[d.Name]
		assert.True(t, ok, "no handler for %s", d.Name)

		tool := d.MCPTool()
		assert.Equal(t, string(d.Name), tool.Name)
		assert.NotEmpty(t, tool.Description)
	}
}

func TestMCPToolSchema(t *testing.T) {
	for _, tc := range []struct {
		Tool     Name
		Param    string
		Default  any
		Enum     []string
		Required []string
	}{
		{Tool: ReadMessages, Param: "limit", Default: float64(DefaultMessageLimit), Required: []string{"teamId", "channelId"}},
		{Tool: ReadChatMessages, Param: "asMarkdown", Default: false, Required: []string{"chatId"}},
		{Tool: GetMeetings, Param: "limit", Default: float64(DefaultMeetingLimit)},
		{Tool: AddMember, Param: "role", Default: "member", Enum: []string{"owner", "member"}, Required: []string{"teamId", "userEmail"}},
		{Tool: AddReaction, Param: "reactionType", Enum: services.ReactionTypes, Required: []string{"teamId", "channelId", "messageId", "reactionType"}},
		{Tool: SetPresence, Param: "availability", Enum: services.Availabilities, Required: []string{"availability", "activity"}},
	} {
		t.Run(string(tc.Tool), func(t *testing.T) {
			d, ok := Lookup(string(tc.Tool))
			require.True(t, ok)

			tool := d.MCPTool()
			prop, ok := tool.InputSchema.Properties[tc.Param].(map[string]any)
			require.True(t, ok)
			if tc.Default != nil {
				assert.Equal(t, tc.Default, prop["default"])
			}
			if tc.Enum != nil {
				assert.Equal(t, tc.Enum, prop["enum"])
			}
			assert.ElementsMatch(t, tc.Required, tool.InputSchema.Required)
		})
	}
}

func TestDispatchUnknownTool(t *testing.T) {
	d, _, metrics := newTestDispatcher(t, services.Config{})

	result := d.Dispatch(context.Background(), "__unknown__", map[string]any{})
	assert.True(t, result.IsError)
	assert.Equal(t, "unknown tool: __unknown__", resultText(t, result))
	assert.Equal(t, []toolCall{{"__unknown__", ResultUnknown}}, metrics.calls)
}

func TestDispatchSendMessage(t *testing.T) {
	for _, tc := range []struct {
		Name     string
		Config   services.Config
		Expected string
	}{
		{Name: "signature disabled", Config: services.Config{}, Expected: "hello"},
		{Name: "configured signature", Config: services.Config{AddSignature: true, Signature: "--sig--"}, Expected: "hello\n\n--sig--"},
		{Name: "default signature", Config: services.Config{AddSignature: true}, Expected: "hello\n\n" + services.DefaultSignature},
	} {
		t.Run(tc.Name, func(t *testing.T) {
			d, client, metrics := newTestDispatcher(t, tc.Config)
			client.On("SendMessage", mock.Anything, "T1", "C1", "", clientmodels.MessageBody{Content: tc.Expected, ContentType: "text"}).
				Return(&clientmodels.Message{ID: "m1"}, nil).Once()

			result := d.Dispatch(context.Background(), string(SendMessage), map[string]any{
				"teamId":    "T1",
				"channelId": "C1",
				"message":   "hello",
			})
			require.False(t, result.IsError)

			text := resultText(t, result)
			require.True(t, strings.HasPrefix(text, "Message sent: "))

			var msg services.Message
			require.NoError(t, json.Unmarshal([]byte(strings.TrimPrefix(text, "Message sent: ")), &msg))
			assert.Equal(t, tc.Expected, msg.Content)
			assert.Equal(t, []toolCall{{string(SendMessage), ResultSuccess}}, metrics.calls)
		})
	}
}

func TestDispatchDefaultsAndLimits(t *testing.T) {
	for _, tc := range []struct {
		Name          string
		Args          map[string]any
		ExpectedLimit int
	}{
		{Name: "default", Args: map[string]any{}, ExpectedLimit: DefaultMessageLimit},
		{Name: "explicit", Args: map[string]any{"limit": 5}, ExpectedLimit: 5},
		{Name: "above maximum", Args: map[string]any{"limit": 500}, ExpectedLimit: MaxLimit},
		{Name: "below minimum", Args: map[string]any{"limit": -3}, ExpectedLimit: MinLimit},
		{Name: "null", Args: map[string]any{"limit": nil}, ExpectedLimit: DefaultMessageLimit},
	} {
		t.Run(tc.Name, func(t *testing.T) {
			d, client, _ := newTestDispatcher(t, services.Config{})
			client.On("ListChatMessages", mock.Anything, "chat1", tc.ExpectedLimit).Return([]clientmodels.Message{}, nil).Once()

			args := map[string]any{"chatId": "chat1"}
			for k, v := range tc.Args {
				args[k] = v
			}

			result := d.Dispatch(context.Background(), string(ReadChatMessages), args)
			require.False(t, result.IsError, resultText(t, result))
			assert.Equal(t, "[]", resultText(t, result))
		})
	}

	t.Run("meetings default", func(t *testing.T) {
		d, client, _ := newTestDispatcher(t, services.Config{})
		client.On("ListEvents", mock.Anything, mock.Anything, mock.Anything, DefaultMeetingLimit).Return([]clientmodels.Event{}, nil).Once()

		result := d.Dispatch(context.Background(), string(GetMeetings), nil)
		require.False(t, result.IsError)
	})

	t.Run("member role default", func(t *testing.T) {
		d, client, _ := newTestDispatcher(t, services.Config{})
		client.On("GetUser", mock.Anything, "new@example.com").Return(&clientmodels.User{ID: "u1", DisplayName: "New"}, nil).Once()
		client.On("AddMember", mock.Anything, "T1", "u1", []string{}).Return(&clientmodels.Member{ID: "m1"}, nil).Once()

		result := d.Dispatch(context.Background(), string(AddMember), map[string]any{"teamId": "T1", "userEmail": "new@example.com"})
		require.False(t, result.IsError)
		assert.True(t, strings.HasPrefix(resultText(t, result), "Member added: "))
	})
}

func TestDispatchInvalidArguments(t *testing.T) {
	for _, tc := range []struct {
		Name     string
		Tool     Name
		Args     map[string]any
		Expected string
	}{
		{
			Name:     "missing required",
			Tool:     SendMessage,
			Args:     map[string]any{"channelId": "C1", "message": "hi"},
			Expected: "error executing send_message: failed to validate arguments: teamId is required",
		},
		{
			Name:     "enum",
			Tool:     AddReaction,
			Args:     map[string]any{"teamId": "T1", "channelId": "C1", "messageId": "m1", "reactionType": "thumbsup"},
			Expected: "reactionType must be one of [like heart laugh surprised sad angry]",
		},
		{
			Name:     "email",
			Tool:     CreateChat,
			Args:     map[string]any{"userEmail": "not-an-email"},
			Expected: "userEmail must be a valid email address",
		},
		{
			Name:     "wrong type",
			Tool:     ReadMessages,
			Args:     map[string]any{"teamId": "T1", "channelId": "C1", "limit": "ten"},
			Expected: "failed to decode arguments: invalid arguments",
		},
		{
			Name:     "empty array",
			Tool:     CreateGroupChat,
			Args:     map[string]any{"topic": "x", "memberEmails": []any{}},
			Expected: "memberEmails must contain at least 1 item(s)",
		},
	} {
		t.Run(tc.Name, func(t *testing.T) {
			d, _, metrics := newTestDispatcher(t, services.Config{})

			result := d.Dispatch(context.Background(), string(tc.Tool), tc.Args)
			assert.True(t, result.IsError)
			assert.Contains(t, resultText(t, result), tc.Expected)
			assert.Equal(t, []toolCall{{string(tc.Tool), ResultError}}, metrics.calls)
		})
	}
}

func TestDispatchConfirmations(t *testing.T) {
	for _, tc := range []struct {
		Name     string
		Tool     Name
		Args     map[string]any
		Setup    func(client *mocks.Client)
		Expected string
	}{
		{
			Name: "delete message",
			Tool: DeleteMessage,
			Args: map[string]any{"teamId": "T1", "channelId": "C1", "messageId": "m1"},
			Setup: func(client *mocks.Client) {
				client.On("SoftDeleteMessage", mock.Anything, "T1", "C1", "m1").Return(nil).Once()
			},
			Expected: "Message deleted",
		},
		{
			Name: "add reaction",
			Tool: AddReaction,
			Args: map[string]any{"teamId": "T1", "channelId": "C1", "messageId": "m1", "reactionType": "like"},
			Setup: func(client *mocks.Client) {
				client.On("SetReaction", mock.Anything, "T1", "C1", "m1", "like").Return(nil).Once()
			},
			Expected: `Reaction "like" added`,
		},
		{
			Name: "set presence",
			Tool: SetPresence,
			Args: map[string]any{"availability": "Busy", "activity": "InAMeeting", "expirationDuration": "PT1H"},
			Setup: func(client *mocks.Client) {
				client.On("SetMyPresence", mock.Anything, "Busy", "InAMeeting", "PT1H").Return(nil).Once()
			},
			Expected: "Presence set: Busy (InAMeeting)",
		},
		{
			Name: "remove member",
			Tool: RemoveMember,
			Args: map[string]any{"teamId": "T1", "membershipId": "mem1"},
			Setup: func(client *mocks.Client) {
				client.On("RemoveMember", mock.Anything, "T1", "mem1").Return(nil).Once()
			},
			Expected: "Member removed",
		},
		{
			Name: "clear status message",
			Tool: ClearStatusMessage,
			Setup: func(client *mocks.Client) {
				client.On("SetMyStatusMessage", mock.Anything, "", mock.Anything).Return(nil).Once()
			},
			Expected: "Status message cleared",
		},
	} {
		t.Run(tc.Name, func(t *testing.T) {
			d, client, _ := newTestDispatcher(t, services.Config{})
			tc.Setup(client)

			result := d.Dispatch(context.Background(), string(tc.Tool), tc.Args)
			require.False(t, result.IsError)
			assert.Equal(t, tc.Expected, resultText(t, result))
		})
	}
}

func TestDispatchNotFound(t *testing.T) {
	t.Run("remote 404", func(t *testing.T) {
		d, client, _ := newTestDispatcher(t, services.Config{})
		client.On("GetChannel", mock.Anything, "T1", "missing").Return(nil, notFoundError{}).Once()

		result := d.Dispatch(context.Background(), string(GetChannel), map[string]any{"teamId": "T1", "channelId": "missing"})
		assert.True(t, result.IsError)
		assert.Equal(t, "error executing get_channel: failed to get channel: item not found", resultText(t, result))
	})

	t.Run("event without meeting", func(t *testing.T) {
		d, client, _ := newTestDispatcher(t, services.Config{})
		client.On("GetEvent", mock.Anything, "e1").Return(&clientmodels.Event{ID: "e1"}, nil).Once()

		result := d.Dispatch(context.Background(), string(GetMeetingByID), map[string]any{"meetingId": "e1"})
		assert.True(t, result.IsError)
		assert.Contains(t, resultText(t, result), "is not an online meeting")
	})
}

func TestDispatchRecoversPanics(t *testing.T) {
	d, client, metrics := newTestDispatcher(t, services.Config{})
	client.On("ListTeams", mock.Anything).Run(func(mock.Arguments) {
		panic("boom")
	}).Return(nil, nil).Once()

	result := d.Dispatch(context.Background(), string(ListChannels), nil)
	assert.True(t, result.IsError)
	assert.Equal(t, "error executing list_channels: panic in tool_list_channels: boom", resultText(t, result))
	assert.Equal(t, []string{"tool_list_channels"}, metrics.failures)
	assert.Equal(t, []toolCall{{string(ListChannels), ResultError}}, metrics.calls)
}

func TestDispatchDataResult(t *testing.T) {
	d, client, _ := newTestDispatcher(t, services.Config{})
	client.On("ListTeams", mock.Anything).Return([]clientmodels.Team{}, nil).Once()

	result := d.Dispatch(context.Background(), string(ListChannels), map[string]any{})
	require.False(t, result.IsError)
	assert.Equal(t, "[]", resultText(t, result))
}

func TestClampLimit(t *testing.T) {
	assert.Equal(t, 1, clampLimit(0))
	assert.Equal(t, 20, clampLimit(20))
	assert.Equal(t, 50, clampLimit(51))
}

// stubClient answers every client call a tool can make with a small, valid record.
func stubClient(client *mocks.Client) {
	user := &clientmodels.User{ID: "u1", DisplayName: "User", Mail: "user@example.com"}
	message := &clientmodels.Message{ID: "m1", Text: "hello", UserDisplayName: "User"}
	file := &clientmodels.DriveItem{ID: "f1", Name: "report.txt", Size: 2}
	member := &clientmodels.Member{ID: "mem1", UserID: "u1", DisplayName: "User", Email: "user@example.com", Roles: []string{"owner"}}
	presence := &clientmodels.Presence{UserID: "u1", Availability: "Available", Activity: "Available"}
	chat := &clientmodels.Chat{ID: "chat1", Type: services.ChatTypeOneOnOne, Members: []clientmodels.ChatMember{{DisplayName: "User", Email: "user@example.com"}}}

	client.On("GetMe", mock.Anything).Return(&clientmodels.User{ID: "me", DisplayName: "Me"}, nil).Maybe()
	client.On("GetUser", mock.Anything, mock.Anything).Return(user, nil).Maybe()
	client.On("ListTeams", mock.Anything).Return([]clientmodels.Team{{ID: "T1", DisplayName: "Team"}}, nil).Maybe()
	client.On("GetTeam", mock.Anything, mock.Anything).Return(&clientmodels.Team{ID: "T1", DisplayName: "Team"}, nil).Maybe()
	client.On("ListChannels", mock.Anything, mock.Anything).Return([]clientmodels.Channel{{ID: "C1", DisplayName: "General"}}, nil).Maybe()
	client.On("GetChannel", mock.Anything, mock.Anything, mock.Anything).Return(&clientmodels.Channel{ID: "C1", DisplayName: "General"}, nil).Maybe()
	client.On("ListChannelMessages", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return([]clientmodels.Message{*message}, nil).Maybe()
	client.On("GetMessage", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(message, nil).Maybe()
	client.On("SendMessage", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(message, nil).Maybe()
	client.On("UpdateMessage", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(message, nil).Maybe()
	client.On("SoftDeleteMessage", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
	client.On("SetReaction", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
	client.On("UnsetReaction", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
	client.On("ListChats", mock.Anything, mock.Anything).Return([]clientmodels.Chat{*chat}, nil).Maybe()
	client.On("GetChat", mock.Anything, mock.Anything).Return(chat, nil).Maybe()
	client.On("CreateChat", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(chat, nil).Maybe()
	client.On("ListChatMessages", mock.Anything, mock.Anything, mock.Anything).Return([]clientmodels.Message{*message}, nil).Maybe()
	client.On("SendChat", mock.Anything, mock.Anything, mock.Anything).Return(message, nil).Maybe()
	client.On("ListEvents", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return([]clientmodels.Event{{ID: "e1", Subject: "Sync", IsOnlineMeeting: true}}, nil).Maybe()
	client.On("GetEvent", mock.Anything, mock.Anything).Return(&clientmodels.Event{ID: "e1", Subject: "Sync", IsOnlineMeeting: true}, nil).Maybe()
	client.On("CreateEvent", mock.Anything, mock.Anything).Return(&clientmodels.Event{ID: "e2", Subject: "Sync", IsOnlineMeeting: true}, nil).Maybe()
	client.On("ListChannelFiles", mock.Anything, mock.Anything, mock.Anything).Return([]clientmodels.DriveItem{*file}, nil).Maybe()
	client.On("GetChannelFile", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(file, nil).Maybe()
	client.On("GetChannelFileContent", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return([]byte("hi"), nil).Maybe()
	client.On("UploadChannelFile", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(file, nil).Maybe()
	client.On("CreateChannelFolder", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(&clientmodels.DriveItem{ID: "d1", Name: "Docs", IsFolder: true}, nil).Maybe()
	client.On("DeleteChannelFile", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
	client.On("ShareChannelFile", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(&clientmodels.SharingLink{WebURL: "https://link", Type: "edit"}, nil).Maybe()
	client.On("GetPresence", mock.Anything, mock.Anything).Return(presence, nil).Maybe()
	client.On("GetMyPresence", mock.Anything).Return(presence, nil).Maybe()
	client.On("GetPresences", mock.Anything, mock.Anything).Return(map[string]*clientmodels.Presence{"u1": presence}, nil).Maybe()
	client.On("SetMyPresence", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
	client.On("SetMyStatusMessage", mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
	client.On("ListMembers", mock.Anything, mock.Anything).Return([]clientmodels.Member{*member}, nil).Maybe()
	client.On("GetMember", mock.Anything, mock.Anything, mock.Anything).Return(member, nil).Maybe()
	client.On("AddMember", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(member, nil).Maybe()
	client.On("UpdateMemberRoles", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(member, nil).Maybe()
	client.On("RemoveMember", mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
}

func TestDispatchEveryTool(t *testing.T) {
	channel := map[string]any{"teamId": "T1", "channelId": "C1"}
	with := func(base map[string]any, extra map[string]any) map[string]any {
		args := map[string]any{}
		for k, v := range base {
			args[k] = v
		}
		for k, v := range extra {
			args[k] = v
		}
		return args
	}

	wellFormed := map[Name]map[string]any{
		ListChannels:           {},
		GetChannel:             channel,
		ReadMessages:           channel,
		SendMessage:            with(channel, map[string]any{"message": "hello"}),
		ReplyToMessage:         with(channel, map[string]any{"messageId": "m1", "message": "hello"}),
		EditMessage:            with(channel, map[string]any{"messageId": "m1", "newContent": "hello"}),
		DeleteMessage:          with(channel, map[string]any{"messageId": "m1"}),
		AddReaction:            with(channel, map[string]any{"messageId": "m1", "reactionType": "like"}),
		RemoveReaction:         with(channel, map[string]any{"messageId": "m1", "reactionType": "heart"}),
		GetMessageReactions:    with(channel, map[string]any{"messageId": "m1"}),
		SendAdaptiveCard:       with(channel, map[string]any{"title": "Title", "text": "Body"}),
		SendRichMessage:        with(channel, map[string]any{"content": "**bold**", "format": "markdown"}),
		ListChats:              {},
		ReadChatMessages:       {"chatId": "chat1"},
		SendChatMessage:        {"chatId": "chat1", "message": "hello"},
		CreateChat:             {"userEmail": "user@example.com"},
		CreateGroupChat:        {"topic": "Topic", "memberEmails": []any{"user@example.com"}},
		FindChatByEmail:        {"userEmail": "user@example.com"},
		GetMeetings:            {},
		GetMeetingByID:         {"meetingId": "e1"},
		CreateMeeting:          {"subject": "Sync", "startDateTime": "2024-05-01T10:00:00", "endDateTime": "2024-05-01T11:00:00", "attendees": []any{"user@example.com"}},
		ListFiles:              channel,
		UploadFile:             with(channel, map[string]any{"fileName": "report.txt", "content": "hi"}),
		DownloadFile:           with(channel, map[string]any{"fileId": "f1"}),
		DeleteFile:             with(channel, map[string]any{"fileId": "f1"}),
		CreateFolder:           with(channel, map[string]any{"folderName": "Docs"}),
		SearchFiles:            with(channel, map[string]any{"query": "report"}),
		GetFileMetadata:        with(channel, map[string]any{"fileId": "f1"}),
		ShareFile:              with(channel, map[string]any{"fileId": "f1"}),
		GetUserPresence:        {"userEmail": "user@example.com"},
		GetMyPresence:          {},
		SetPresence:            {"availability": "Busy", "activity": "InACall"},
		GetMultiplePresences:   {"userEmails": []any{"user@example.com"}},
		GetTeamMembersPresence: {"teamId": "T1"},
		SetStatusMessage:       {"message": "Out"},
		ClearStatusMessage:     {},
		ListMembers:            {"teamId": "T1"},
		AddMember:              {"teamId": "T1", "userEmail": "user@example.com"},
		RemoveMember:           {"teamId": "T1", "membershipId": "mem1"},
		GetMember:              {"teamId": "T1", "membershipId": "mem1"},
		UpdateMemberRole:       {"teamId": "T1", "membershipId": "mem1", "role": "owner"},
		FindMemberByEmail:      {"teamId": "T1", "userEmail": "user@example.com"},
		ListTeamOwners:         {"teamId": "T1"},
	}
	require.Len(t, wellFormed, len(Descriptors()))

	for _, descriptor := range Descriptors() {
		t.Run(string(descriptor.Name), func(t *testing.T) {
			args, ok := wellFormed[descriptor.Name]
			require.True(t, ok, "no arguments for %s", descriptor.Name)

			d, client, metrics := newTestDispatcher(t, services.Config{AddSignature: true})
			stubClient(client)

			result := d.Dispatch(context.Background(), string(descriptor.Name), args)
			text := resultText(t, result)
			assert.False(t, result.IsError, text)
			assert.NotEmpty(t, text)
			assert.Equal(t, []toolCall{{string(descriptor.Name), ResultSuccess}}, metrics.calls)
		})
	}
}

func TestDispatchUploadEmptyFile(t *testing.T) {
	d, client, _ := newTestDispatcher(t, services.Config{})
	client.On("UploadChannelFile", mock.Anything, "T1", "C1", "empty.txt", []byte{}).
		Return(&clientmodels.DriveItem{ID: "f1", Name: "empty.txt"}, nil).Once()

	result := d.Dispatch(context.Background(), string(UploadFile), map[string]any{
		"teamId":    "T1",
		"channelId": "C1",
		"fileName":  "empty.txt",
		"content":   "",
	})
	require.False(t, result.IsError, resultText(t, result))
	assert.True(t, strings.HasPrefix(resultText(t, result), "File uploaded: "))

	t.Run("content key is still required", func(t *testing.T) {
		d, _, _ := newTestDispatcher(t, services.Config{})
		descriptor, ok := Lookup(string(UploadFile))
		require.True(t, ok)
		assert.Contains(t, descriptor.MCPTool().InputSchema.Required, "content")

		result := d.Dispatch(context.Background(), string(UploadFile), map[string]any{
			"teamId":    "T1",
			"channelId": "C1",
			"fileName":  "empty.txt",
		})
		assert.True(t, result.IsError)
		assert.Contains(t, resultText(t, result), "content is required")
	})
}
