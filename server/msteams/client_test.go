package msteams

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/microsoft/kiota-abstractions-go/authentication"
	"github.com/microsoftgraph/msgraph-sdk-go/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mattermost/msteams-mcp-server/server/msteams/clientmodels"
)

func TestConvertToMessage(t *testing.T) {
	teamsUserID := "mockTeamsUserID"
	teamsUserDisplayName := "mockTeamsUserDisplayName"
	teamsReplyID := "mockTeamsReplyID"
	content := "mockContent"
	reactionType := "like"
	attachmentID := "mockAttachmentID"
	attachmentContent := "mockAttachmentContent"
	attachmentContentType := "mockAttachmentContentType"
	attachmentName := "mockAttachmentName"
	attachmentURL := "mockAttachmentURL"
	createdAt := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	editedAt := time.Date(2024, 3, 1, 11, 0, 0, 0, time.UTC)
	for _, test := range []struct {
		Name           string
		ChatMessage    models.ChatMessageable
		ExpectedResult clientmodels.Message
	}{
		{
			Name: "ConvertToMessage: With data filled",
			ChatMessage: func() models.ChatMessageable {
				from := models.NewChatMessageFromIdentitySet()
				user := models.NewIdentity()
				user.SetId(&teamsUserID)
				user.SetDisplayName(&teamsUserDisplayName)
				from.SetUser(user)

				body := models.NewItemBody()
				body.SetContent(&content)
				contentType := models.HTML_BODYTYPE
				body.SetContentType(&contentType)

				attachment := models.NewChatMessageAttachment()
				attachment.SetId(&attachmentID)
				attachment.SetContentType(&attachmentContentType)
				attachment.SetContent(&attachmentContent)
				attachment.SetName(&attachmentName)
				attachment.SetContentUrl(&attachmentURL)

				reactionUserSet := models.NewChatMessageReactionIdentitySet()
				reactionUser := models.NewIdentity()
				reactionUser.SetId(&teamsUserID)
				reactionUser.SetDisplayName(&teamsUserDisplayName)
				reactionUserSet.SetUser(reactionUser)
				reaction := models.NewChatMessageReaction()
				reaction.SetUser(reactionUserSet)
				reaction.SetReactionType(&reactionType)
				reaction.SetCreatedDateTime(&createdAt)

				message := models.NewChatMessage()
				message.SetFrom(from)
				message.SetReplyToId(&teamsReplyID)
				message.SetBody(body)
				message.SetCreatedDateTime(&createdAt)
				message.SetLastModifiedDateTime(&createdAt)
				message.SetLastEditedDateTime(&editedAt)
				message.SetAttachments([]models.ChatMessageAttachmentable{attachment})
				message.SetReactions([]models.ChatMessageReactionable{reaction})
				return message
			}(),
			ExpectedResult: clientmodels.Message{
				UserID:          teamsUserID,
				UserDisplayName: teamsUserDisplayName,
				ReplyToID:       teamsReplyID,
				Text:            content,
				ContentType:     "html",
				CreateAt:        createdAt,
				LastUpdateAt:    editedAt,
				Attachments: []clientmodels.Attachment{
					{
						ID:          attachmentID,
						ContentType: attachmentContentType,
						Content:     attachmentContent,
						Name:        attachmentName,
						ContentURL:  attachmentURL,
					},
				},
				Reactions: []clientmodels.Reaction{
					{
						Reaction:        reactionType,
						UserID:          teamsUserID,
						UserDisplayName: teamsUserDisplayName,
						CreateAt:        createdAt,
					},
				},
				ChannelID: "mockChannelID",
				TeamID:    "mockTeamsTeamID",
				ChatID:    "mockChatID",
			},
		},
		{
			Name: "ConvertToMessage: With no data filled",
			ChatMessage: func() models.ChatMessageable {
				message := models.NewChatMessage()
				message.SetLastModifiedDateTime(&time.Time{})
				return message
			}(),
			ExpectedResult: clientmodels.Message{
				Attachments:  []clientmodels.Attachment{},
				Reactions:    []clientmodels.Reaction{},
				LastUpdateAt: time.Time{},
				ChannelID:    "mockChannelID",
				TeamID:       "mockTeamsTeamID",
				ChatID:       "mockChatID",
			},
		},
	} {
		t.Run(test.Name, func(t *testing.T) {
			assert := assert.New(t)
			resp := convertToMessage(test.ChatMessage, "mockTeamsTeamID", "mockChannelID", "mockChatID")

			assert.Equal(test.ExpectedResult, *resp)
		})
	}
}

func TestConvertToChat(t *testing.T) {
	chatID := "mockChatID"
	topic := "mockTopic"
	previewContent := "see you tomorrow"
	previewAt := time.Date(2024, 5, 2, 8, 30, 0, 0, time.UTC)

	member := models.NewAadUserConversationMember()
	memberName := "Alice"
	memberUserID := "mockUserID"
	memberEmail := "alice@example.com"
	member.SetDisplayName(&memberName)
	member.SetUserId(&memberUserID)
	member.SetEmail(&memberEmail)

	previewBody := models.NewItemBody()
	previewBody.SetContent(&previewContent)
	preview := models.NewChatMessageInfo()
	preview.SetBody(previewBody)
	preview.SetCreatedDateTime(&previewAt)

	chat := models.NewChat()
	chatType := models.GROUP_CHATTYPE
	chat.SetId(&chatID)
	chat.SetTopic(&topic)
	chat.SetChatType(&chatType)
	chat.SetMembers([]models.ConversationMemberable{member})
	chat.SetLastMessagePreview(preview)

	assert.Equal(t, &clientmodels.Chat{
		ID:    chatID,
		Type:  "group",
		Topic: topic,
		Members: []clientmodels.ChatMember{
			{DisplayName: memberName, UserID: memberUserID, Email: memberEmail},
		},
		LastMessagePreview:  previewContent,
		LastMessageDateTime: previewAt,
	}, convertToChat(chat))
}

func TestConvertToMember(t *testing.T) {
	for _, test := range []struct {
		Name           string
		Member         models.ConversationMemberable
		ExpectedResult *clientmodels.Member
	}{
		{
			Name: "ConvertToMember: Aad user member",
			Member: func() models.ConversationMemberable {
				m := models.NewAadUserConversationMember()
				id, name, userID, email := "mockMembershipID", "Bob", "mockUserID", "bob@example.com"
				m.SetId(&id)
				m.SetDisplayName(&name)
				m.SetUserId(&userID)
				m.SetEmail(&email)
				m.SetRoles([]string{"owner"})
				return m
			}(),
			ExpectedResult: &clientmodels.Member{
				ID:          "mockMembershipID",
				UserID:      "mockUserID",
				DisplayName: "Bob",
				Email:       "bob@example.com",
				Roles:       []string{"owner"},
			},
		},
		{
			Name: "ConvertToMember: Identity only in additional data",
			Member: func() models.ConversationMemberable {
				m := models.NewConversationMember()
				id, name := "mockMembershipID", "Carol"
				m.SetId(&id)
				m.SetDisplayName(&name)
				email := "carol@example.com"
				m.SetAdditionalData(map[string]any{
					"userId": "mockUserID",
					"email":  &email,
				})
				return m
			}(),
			ExpectedResult: &clientmodels.Member{
				ID:          "mockMembershipID",
				UserID:      "mockUserID",
				DisplayName: "Carol",
				Email:       "carol@example.com",
				Roles:       []string{},
			},
		},
	} {
		t.Run(test.Name, func(t *testing.T) {
			assert.Equal(t, test.ExpectedResult, convertToMember(test.Member))
		})
	}
}

func TestConvertToEvent(t *testing.T) {
	id, subject, joinURL := "mockEventID", "Standup", "https://teams.microsoft.com/l/meetup-join/1"
	organizerName := "Dana"
	isOnline := true

	organizerAddress := models.NewEmailAddress()
	organizerAddress.SetName(&organizerName)
	organizer := models.NewRecipient()
	organizer.SetEmailAddress(organizerAddress)

	onlineMeeting := models.NewOnlineMeetingInfo()
	onlineMeeting.SetJoinUrl(&joinURL)

	named := models.NewAttendee()
	namedAddress := models.NewEmailAddress()
	attendeeName := "Eve"
	namedAddress.SetName(&attendeeName)
	named.SetEmailAddress(namedAddress)

	unnamed := models.NewAttendee()
	unnamedAddress := models.NewEmailAddress()
	attendeeAddress := "frank@example.com"
	unnamedAddress.SetAddress(&attendeeAddress)
	unnamed.SetEmailAddress(unnamedAddress)

	event := models.NewEvent()
	event.SetId(&id)
	event.SetSubject(&subject)
	event.SetStart(newDateTimeTimeZone("2024-06-01T09:00:00.0000000", "UTC"))
	event.SetEnd(newDateTimeTimeZone("2024-06-01T09:30:00.0000000", "UTC"))
	event.SetOrganizer(organizer)
	event.SetOnlineMeeting(onlineMeeting)
	event.SetIsOnlineMeeting(&isOnline)
	event.SetAttendees([]models.Attendeeable{named, unnamed})

	assert.Equal(t, &clientmodels.Event{
		ID:              id,
		Subject:         subject,
		Start:           "2024-06-01T09:00:00.0000000",
		End:             "2024-06-01T09:30:00.0000000",
		OrganizerName:   organizerName,
		JoinURL:         joinURL,
		IsOnlineMeeting: true,
		AttendeeNames:   []string{"Eve", "frank@example.com"},
	}, convertToEvent(event))
}

func TestConvertToDriveItem(t *testing.T) {
	t.Run("file with download url", func(t *testing.T) {
		id, name, webURL, mimeType, creator := "mockItemID", "report.pdf", "https://contoso/report.pdf", "application/pdf", "Grace"
		size := int64(2048)

		file := models.NewFile()
		file.SetMimeType(&mimeType)
		creatorUser := models.NewIdentity()
		creatorUser.SetDisplayName(&creator)
		createdBy := models.NewIdentitySet()
		createdBy.SetUser(creatorUser)

		item := models.NewDriveItem()
		item.SetId(&id)
		item.SetName(&name)
		item.SetWebUrl(&webURL)
		item.SetSize(&size)
		item.SetFile(file)
		item.SetCreatedBy(createdBy)
		item.SetAdditionalData(map[string]any{downloadURLKey: "https://download/report.pdf"})

		assert.Equal(t, &clientmodels.DriveItem{
			ID:          id,
			Name:        name,
			Size:        size,
			WebURL:      webURL,
			DownloadURL: "https://download/report.pdf",
			MimeType:    mimeType,
			CreatedBy:   creator,
		}, convertToDriveItem(item))
	})

	t.Run("folder", func(t *testing.T) {
		name := "Specs"
		item := models.NewDriveItem()
		item.SetName(&name)
		item.SetFolder(models.NewFolder())

		converted := convertToDriveItem(item)
		assert.True(t, converted.IsFolder)
		assert.Empty(t, converted.DownloadURL)
	})
}

func TestConvertToPresence(t *testing.T) {
	id, availability, activity, message := "mockUserID", "Busy", "InACall", "Back at 3"
	body := models.NewItemBody()
	body.SetContent(&message)
	status := models.NewPresenceStatusMessage()
	status.SetMessage(body)

	presence := models.NewPresence()
	presence.SetId(&id)
	presence.SetAvailability(&availability)
	presence.SetActivity(&activity)
	presence.SetStatusMessage(status)

	assert.Equal(t, &clientmodels.Presence{
		UserID:        id,
		Availability:  availability,
		Activity:      activity,
		StatusMessage: message,
	}, convertToPresence(presence))
}

func TestNewChatMessage(t *testing.T) {
	msg := newChatMessage(clientmodels.MessageBody{Content: "<p>hi</p>", ContentType: "html"})
	require.NotNil(t, msg.GetBody())
	assert.Equal(t, "<p>hi</p>", *msg.GetBody().GetContent())
	assert.Equal(t, models.HTML_BODYTYPE, *msg.GetBody().GetContentType())
	assert.Empty(t, msg.GetAttachments())

	msg = newChatMessage(clientmodels.MessageBody{Content: "plain"})
	assert.Equal(t, models.TEXT_BODYTYPE, *msg.GetBody().GetContentType())
}

type observerMock struct {
	mu       sync.Mutex
	observed []string
}

func (o *observerMock) ObserveGraphRequest(method, statusCode string, _ float64) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.observed = append(o.observed, method+" "+statusCode)
}

func newTestClient(t *testing.T, handler http.Handler, opts Options) (*ClientImpl, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	opts.BaseURL = server.URL
	opts.Logger = logrus.New()
	client := NewWithAuthProvider(&authentication.AnonymousAuthenticationProvider{}, "mockClientID", opts).(*ClientImpl)
	require.NoError(t, client.Connect())
	return client, server
}

func TestListTeams(t *testing.T) {
	observer := &observerMock{}
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/me/joinedTeams", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"value":[{"id":"t1","displayName":"Engineering","description":"Builders"},{"id":"t2","displayName":"Sales"}]}`)
	}), Options{Observer: observer})

	teamsList, err := client.ListTeams(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []clientmodels.Team{
		{ID: "t1", DisplayName: "Engineering", Description: "Builders"},
		{ID: "t2", DisplayName: "Sales"},
	}, teamsList)
	assert.Equal(t, []string{"GET 200"}, observer.observed)
}

func TestMeUserIDRouting(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/mockUserID", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"id":"mockUserID","displayName":"Service Account","mail":"svc@example.com"}`)
	}), Options{MeUserID: "mockUserID"})

	me, err := client.GetMe(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &clientmodels.User{ID: "mockUserID", DisplayName: "Service Account", Mail: "svc@example.com"}, me)
}

func TestStatusCode(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"error":{"code":"NotFound","message":"No team found with Group Id t404"}}`)
	}), Options{})

	_, err := client.GetTeam(context.Background(), "t404")
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, StatusCode(err))
	assert.Contains(t, ErrorDetail(err), "No team found")

	assert.Equal(t, 0, StatusCode(fmt.Errorf("dial tcp: connection refused")))
}

func TestGetPresences(t *testing.T) {
	type batchRequest struct {
		Requests []struct {
			ID  string `json:"id"`
			URL string `json:"url"`
		} `json:"requests"`
	}

	calls := 0
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		require.Equal(t, "/$batch", r.URL.Path)

		var req batchRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		responses := make([]map[string]any, 0, len(req.Requests))
		for _, step := range req.Requests {
			parts := strings.Split(strings.Trim(step.URL, "/"), "/")
			userID := parts[len(parts)-2]
			if userID == "missing" {
				responses = append(responses, map[string]any{
					"id":      step.ID,
					"status":  404,
					"headers": map[string]string{"Content-Type": "application/json"},
					"body":    map[string]any{"error": map[string]string{"code": "NotFound"}},
				})
				continue
			}
			responses = append(responses, map[string]any{
				"id":      step.ID,
				"status":  200,
				"headers": map[string]string{"Content-Type": "application/json"},
				"body":    map[string]string{"id": userID, "availability": "Available", "activity": "Available"},
			})
		}

		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(map[string]any{"responses": responses}))
	}), Options{})

	presences, err := client.GetPresences(context.Background(), []string{"u1", "missing", "u2"})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Len(t, presences, 2)
	assert.Equal(t, "Available", presences["u1"].Availability)
	assert.Equal(t, "u2", presences["u2"].UserID)
	assert.NotContains(t, presences, "missing")

	t.Run("empty input does not reach the service", func(t *testing.T) {
		presences, err := client.GetPresences(context.Background(), nil)
		require.NoError(t, err)
		assert.Empty(t, presences)
		assert.Equal(t, 1, calls)
	})

	t.Run("batch larger than the limit is rejected", func(t *testing.T) {
		userIDs := make([]string, MaxBatchSize+1)
		_, err := client.GetPresences(context.Background(), userIDs)
		require.Error(t, err)
	})
}
