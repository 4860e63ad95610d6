package tools

import (
	mcplib "github.com/mark3labs/mcp-go/mcp"

	"github.com/mattermost/msteams-mcp-server/server/services"
)

// Name identifies a tool. The set of names is closed: every constant has one descriptor in the
// registry and one handler in the dispatcher.
type Name string

const (
	ListChannels        Name = "list_channels"
	GetChannel          Name = "get_channel"
	ReadMessages        Name = "read_messages"
	SendMessage         Name = "send_message"
	ReplyToMessage      Name = "reply_to_message"
	EditMessage         Name = "edit_message"
	DeleteMessage       Name = "delete_message"
	AddReaction         Name = "add_reaction"
	RemoveReaction      Name = "remove_reaction"
	GetMessageReactions Name = "get_message_reactions"
	SendAdaptiveCard    Name = "send_adaptive_card"
	SendRichMessage     Name = "send_rich_message"

	ListChats        Name = "list_chats"
	ReadChatMessages Name = "read_chat_messages"
	SendChatMessage  Name = "send_chat_message"
	CreateChat       Name = "create_chat"
	CreateGroupChat  Name = "create_group_chat"
	FindChatByEmail  Name = "find_chat_by_email"

	GetMeetings    Name = "get_meetings"
	GetMeetingByID Name = "get_meeting_by_id"
	CreateMeeting  Name = "create_meeting"

	ListFiles       Name = "list_files"
	UploadFile      Name = "upload_file"
	DownloadFile    Name = "download_file"
	DeleteFile      Name = "delete_file"
	CreateFolder    Name = "create_folder"
	SearchFiles     Name = "search_files"
	GetFileMetadata Name = "get_file_metadata"
	ShareFile       Name = "share_file"

	GetUserPresence        Name = "get_user_presence"
	GetMyPresence          Name = "get_my_presence"
	SetPresence            Name = "set_presence"
	GetMultiplePresences   Name = "get_multiple_presences"
	GetTeamMembersPresence Name = "get_team_members_presence"
	SetStatusMessage       Name = "set_status_message"
	ClearStatusMessage     Name = "clear_status_message"

	ListMembers       Name = "list_members"
	AddMember         Name = "add_member"
	RemoveMember      Name = "remove_member"
	GetMember         Name = "get_member"
	UpdateMemberRole  Name = "update_member_role"
	FindMemberByEmail Name = "find_member_by_email"
	ListTeamOwners    Name = "list_team_owners"
)

type ParamType string

const (
	TypeString  ParamType = "string"
	TypeNumber  ParamType = "number"
	TypeBoolean ParamType = "boolean"
	TypeArray   ParamType = "array"
)

const (
	DefaultMessageLimit = 20
	DefaultMeetingLimit = 10
	MinLimit            = 1
	MaxLimit            = 50
)

// Param describes one tool argument. Default, when set, is advertised in the schema and merged
// into the arguments of every call that omits it.
type Param struct {
	Name        string         `json:"name" yaml:"name"`
	Type        ParamType      `json:"type" yaml:"type"`
	Description string         `json:"description" yaml:"description"`
	Required    bool           `json:"required,omitempty" yaml:"required,omitempty"`
	Default     any            `json:"default,omitempty" yaml:"default,omitempty"`
	Enum        []string       `json:"enum,omitempty" yaml:"enum,omitempty"`
	Items       map[string]any `json:"items,omitempty" yaml:"items,omitempty"`
}

type Descriptor struct {
	Name        Name    `json:"name" yaml:"name"`
	Description string  `json:"description" yaml:"description"`
	ReadOnly    bool    `json:"readOnly,omitempty" yaml:"readOnly,omitempty"`
	Destructive bool    `json:"destructive,omitempty" yaml:"destructive,omitempty"`
	Params      []Param `json:"params,omitempty" yaml:"params,omitempty"`
}

// Defaults returns the default value of every optional parameter that declares one.
func (d Descriptor) Defaults() map[string]any {
	defaults := map[string]any{}
	for _, p := range d.Params {
		if p.Default != nil {
			defaults[p.Name] = p.Default
		}
	}
	return defaults
}

// MCPTool builds the advertised tool schema.
func (d Descriptor) MCPTool() mcplib.Tool {
	opts := []mcplib.ToolOption{mcplib.WithDescription(d.Description)}
	if d.ReadOnly {
		opts = append(opts, mcplib.WithReadOnlyHintAnnotation(true))
	}
	if d.Destructive {
		opts = append(opts, mcplib.WithDestructiveHintAnnotation(true))
	}
	for _, p := range d.Params {
		opts = append(opts, p.toolOption())
	}
	return mcplib.NewTool(string(d.Name), opts...)
}

func (p Param) toolOption() mcplib.ToolOption {
	props := []mcplib.PropertyOption{mcplib.Description(p.Description)}
	if p.Required {
		props = append(props, mcplib.Required())
	}

	switch p.Type {
	case TypeNumber:
		if def, ok := p.Default.(int); ok {
			props = append(props, mcplib.DefaultNumber(float64(def)), mcplib.Min(MinLimit), mcplib.Max(MaxLimit))
		}
		return mcplib.WithNumber(p.Name, props...)
	case TypeBoolean:
		if def, ok := p.Default.(bool); ok {
			props = append(props, mcplib.DefaultBool(def))
		}
		return mcplib.WithBoolean(p.Name, props...)
	case TypeArray:
		if p.Items != nil {
			props = append(props, mcplib.Items(p.Items))
		}
		return mcplib.WithArray(p.Name, props...)
	default:
		if len(p.Enum) > 0 {
			props = append(props, mcplib.Enum(p.Enum...))
		}
		if def, ok := p.Default.(string); ok {
			props = append(props, mcplib.DefaultString(def))
		}
		return mcplib.WithString(p.Name, props...)
	}
}

var (
	teamIDParam       = Param{Name: "teamId", Type: TypeString, Description: "ID of the team", Required: true}
	channelIDParam    = Param{Name: "channelId", Type: TypeString, Description: "ID of the channel", Required: true}
	messageIDParam    = Param{Name: "messageId", Type: TypeString, Description: "ID of the message", Required: true}
	chatIDParam       = Param{Name: "chatId", Type: TypeString, Description: "ID of the chat", Required: true}
	fileIDParam       = Param{Name: "fileId", Type: TypeString, Description: "ID of the file", Required: true}
	membershipIDParam = Param{Name: "membershipId", Type: TypeString, Description: "Membership ID of the member in the team (not the user ID)", Required: true}
	userEmailParam    = Param{Name: "userEmail", Type: TypeString, Description: "Email address of the user", Required: true}

	asMarkdownParam = Param{Name: "asMarkdown", Type: TypeBoolean, Description: "Convert HTML message bodies to markdown", Default: false}

	reactionTypeParam = Param{
		Name:        "reactionType",
		Type:        TypeString,
		Description: "Type of reaction",
		Required:    true,
		Enum:        services.ReactionTypes,
	}

	stringItems = map[string]any{"type": "string"}
)

func messageLimitParam() Param {
	return Param{Name: "limit", Type: TypeNumber, Description: "Maximum number of messages to return", Default: DefaultMessageLimit}
}

var registry = []Descriptor{
	{
		Name:        ListChannels,
		Description: "List the channels of every team the user has joined",
		ReadOnly:    true,
	},
	{
		Name:        GetChannel,
		Description: "Get the details of a channel",
		ReadOnly:    true,
		Params:      []Param{teamIDParam, channelIDParam},
	},
	{
		Name:        ReadMessages,
		Description: "Read the most recent messages of a channel",
		ReadOnly:    true,
		Params:      []Param{teamIDParam, channelIDParam, messageLimitParam(), asMarkdownParam},
	},
	{
		Name:        SendMessage,
		Description: "Send a message to a channel",
		Params: []Param{teamIDParam, channelIDParam,
			{Name: "message", Type: TypeString, Description: "Content of the message", Required: true},
		},
	},
	{
		Name:        ReplyToMessage,
		Description: "Reply to a message in a channel",
		Params: []Param{teamIDParam, channelIDParam, messageIDParam,
			{Name: "message", Type: TypeString, Description: "Content of the reply", Required: true},
		},
	},
	{
		Name:        EditMessage,
		Description: "Edit a message previously sent by the user",
		Params: []Param{teamIDParam, channelIDParam, messageIDParam,
			{Name: "newContent", Type: TypeString, Description: "New content of the message", Required: true},
		},
	},
	{
		Name:        DeleteMessage,
		Description: "Delete a message from a channel",
		Destructive: true,
		Params:      []Param{teamIDParam, channelIDParam, messageIDParam},
	},
	{
		Name:        AddReaction,
		Description: "Add a reaction to a message",
		Params:      []Param{teamIDParam, channelIDParam, messageIDParam, reactionTypeParam},
	},
	{
		Name:        RemoveReaction,
		Description: "Remove a reaction from a message",
		Params:      []Param{teamIDParam, channelIDParam, messageIDParam, reactionTypeParam},
	},
	{
		Name:        GetMessageReactions,
		Description: "List the reactions of a message",
		ReadOnly:    true,
		Params:      []Param{teamIDParam, channelIDParam, messageIDParam},
	},
	{
		Name:        SendAdaptiveCard,
		Description: "Send an adaptive card with a title, a text and optional URL buttons to a channel",
		Params: []Param{teamIDParam, channelIDParam,
			{Name: "title", Type: TypeString, Description: "Title of the card", Required: true},
			{Name: "text", Type: TypeString, Description: "Body text of the card", Required: true},
			{
				Name:        "actions",
				Type:        TypeArray,
				Description: "Buttons of the card",
				Items: map[string]any{
					"type": "object",
					"properties": map[string]any{
						"type":  map[string]any{"type": "string", "description": "Action type, Action.OpenUrl"},
						"title": map[string]any{"type": "string", "description": "Button title"},
						"url":   map[string]any{"type": "string", "description": "URL opened by the button"},
					},
					"required": []string{"title"},
				},
			},
		},
	},
	{
		Name:        SendRichMessage,
		Description: "Send an HTML or markdown formatted message to a channel",
		Params: []Param{teamIDParam, channelIDParam,
			{Name: "content", Type: TypeString, Description: "Content of the message", Required: true},
			{Name: "format", Type: TypeString, Description: "Format of the content", Enum: []string{services.FormatHTML, services.FormatMarkdown}, Default: services.FormatHTML},
		},
	},
	{
		Name:        ListChats,
		Description: "List the chats of the user",
		ReadOnly:    true,
	},
	{
		Name:        ReadChatMessages,
		Description: "Read the most recent messages of a chat",
		ReadOnly:    true,
		Params:      []Param{chatIDParam, messageLimitParam(), asMarkdownParam},
	},
	{
		Name:        SendChatMessage,
		Description: "Send a message to a chat",
		Params: []Param{chatIDParam,
			{Name: "message", Type: TypeString, Description: "Content of the message", Required: true},
		},
	},
	{
		Name:        CreateChat,
		Description: "Create a one-on-one chat with a user",
		Params:      []Param{userEmailParam},
	},
	{
		Name:        CreateGroupChat,
		Description: "Create a group chat",
		Params: []Param{
			{Name: "topic", Type: TypeString, Description: "Topic of the chat", Required: true},
			{Name: "memberEmails", Type: TypeArray, Description: "Email addresses of the members", Required: true, Items: stringItems},
		},
	},
	{
		Name:        FindChatByEmail,
		Description: "Find the one-on-one chat with a user",
		ReadOnly:    true,
		Params:      []Param{userEmailParam},
	},
	{
		Name:        GetMeetings,
		Description: "List the online meetings of the next seven days",
		ReadOnly:    true,
		Params: []Param{
			{Name: "limit", Type: TypeNumber, Description: "Maximum number of meetings to return", Default: DefaultMeetingLimit},
		},
	},
	{
		Name:        GetMeetingByID,
		Description: "Get the details of an online meeting",
		ReadOnly:    true,
		Params: []Param{
			{Name: "meetingId", Type: TypeString, Description: "ID of the meeting", Required: true},
		},
	},
	{
		Name:        CreateMeeting,
		Description: "Create an online meeting",
		Params: []Param{
			{Name: "subject", Type: TypeString, Description: "Subject of the meeting", Required: true},
			{Name: "startDateTime", Type: TypeString, Description: "Start date and time (ISO 8601, UTC)", Required: true},
			{Name: "endDateTime", Type: TypeString, Description: "End date and time (ISO 8601, UTC)", Required: true},
			{Name: "attendees", Type: TypeArray, Description: "Email addresses of the attendees", Required: true, Items: stringItems},
		},
	},
	{
		Name:        ListFiles,
		Description: "List the files of a channel",
		ReadOnly:    true,
		Params:      []Param{teamIDParam, channelIDParam},
	},
	{
		Name:        UploadFile,
		Description: "Upload a text file to a channel",
		Params: []Param{teamIDParam, channelIDParam,
			{Name: "fileName", Type: TypeString, Description: "Name of the file", Required: true},
			{Name: "content", Type: TypeString, Description: "Content of the file", Required: true},
		},
	},
	{
		Name:        DownloadFile,
		Description: "Download a file from a channel. The content is base64-encoded",
		ReadOnly:    true,
		Params:      []Param{teamIDParam, channelIDParam, fileIDParam},
	},
	{
		Name:        DeleteFile,
		Description: "Delete a file from a channel",
		Destructive: true,
		Params:      []Param{teamIDParam, channelIDParam, fileIDParam},
	},
	{
		Name:        CreateFolder,
		Description: "Create a folder in the files of a channel",
		Params: []Param{teamIDParam, channelIDParam,
			{Name: "folderName", Type: TypeString, Description: "Name of the folder", Required: true},
		},
	},
	{
		Name:        SearchFiles,
		Description: "Search the files of a channel by name",
		ReadOnly:    true,
		Params: []Param{teamIDParam, channelIDParam,
			{Name: "query", Type: TypeString, Description: "Text to look for in file names", Required: true},
		},
	},
	{
		Name:        GetFileMetadata,
		Description: "Get the metadata of a file",
		ReadOnly:    true,
		Params:      []Param{teamIDParam, channelIDParam, fileIDParam},
	},
	{
		Name:        ShareFile,
		Description: "Create a sharing link for a file",
		Params: []Param{teamIDParam, channelIDParam, fileIDParam,
			{
				Name:        "scope",
				Type:        TypeString,
				Description: "Audience of the link",
				Enum:        []string{services.ShareScopeAnonymous, services.ShareScopeOrganization},
				Default:     services.ShareScopeOrganization,
			},
		},
	},
	{
		Name:        GetUserPresence,
		Description: "Get the presence of a user",
		ReadOnly:    true,
		Params:      []Param{userEmailParam},
	},
	{
		Name:        GetMyPresence,
		Description: "Get the presence of the current user",
		ReadOnly:    true,
	},
	{
		Name:        SetPresence,
		Description: "Set the presence of the current user",
		Params: []Param{
			{Name: "availability", Type: TypeString, Description: "Availability", Required: true, Enum: services.Availabilities},
			{Name: "activity", Type: TypeString, Description: "Activity", Required: true},
			{Name: "expirationDuration", Type: TypeString, Description: "How long the presence lasts (ISO 8601 duration, e.g. PT1H)"},
		},
	},
	{
		Name:        GetMultiplePresences,
		Description: "Get the presence of several users",
		ReadOnly:    true,
		Params: []Param{
			{Name: "userEmails", Type: TypeArray, Description: "Email addresses of the users", Required: true, Items: stringItems},
		},
	},
	{
		Name:        GetTeamMembersPresence,
		Description: "Get the presence of every member of a team",
		ReadOnly:    true,
		Params:      []Param{teamIDParam},
	},
	{
		Name:        SetStatusMessage,
		Description: "Set the status message of the current user",
		Params: []Param{
			{Name: "message", Type: TypeString, Description: "Status message", Required: true},
			{Name: "expiryDateTime", Type: TypeString, Description: "When the message expires (ISO 8601, UTC)"},
		},
	},
	{
		Name:        ClearStatusMessage,
		Description: "Clear the status message of the current user",
	},
	{
		Name:        ListMembers,
		Description: "List the members of a team",
		ReadOnly:    true,
		Params:      []Param{teamIDParam},
	},
	{
		Name:        AddMember,
		Description: "Add a user to a team",
		Params: []Param{teamIDParam, userEmailParam,
			{Name: "role", Type: TypeString, Description: "Role of the new member", Enum: []string{services.RoleOwner, services.RoleMember}, Default: services.RoleMember},
		},
	},
	{
		Name:        RemoveMember,
		Description: "Remove a member from a team",
		Destructive: true,
		Params:      []Param{teamIDParam, membershipIDParam},
	},
	{
		Name:        GetMember,
		Description: "Get a member of a team",
		ReadOnly:    true,
		Params:      []Param{teamIDParam, membershipIDParam},
	},
	{
		Name:        UpdateMemberRole,
		Description: "Change the role of a team member",
		Params: []Param{teamIDParam, membershipIDParam,
			{Name: "role", Type: TypeString, Description: "New role of the member", Required: true, Enum: []string{services.RoleOwner, services.RoleMember}},
		},
	},
	{
		Name:        FindMemberByEmail,
		Description: "Find a member of a team by email address",
		ReadOnly:    true,
		Params:      []Param{teamIDParam, userEmailParam},
	},
	{
		Name:        ListTeamOwners,
		Description: "List the owners of a team",
		ReadOnly:    true,
		Params:      []Param{teamIDParam},
	},
}

var registryByName = func() map[Name]Descriptor {
	byName := make(map[Name]Descriptor, len(registry))
	for _, d := range registry {
		byName[d.Name] = d
	}
	return byName
}()

// Descriptors returns the catalog in advertising order.
func Descriptors() []Descriptor {
	return append([]Descriptor(nil), registry...)
}

func Lookup(name string) (Descriptor, bool) {
	d, ok := registryByName[Name(name)]
	return d, ok
}
