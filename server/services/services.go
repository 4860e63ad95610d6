package services

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/mattermost/msteams-mcp-server/server/msteams"
	"github.com/mattermost/msteams-mcp-server/server/recovery"
)

const (
	unknownName = "Unknown"
	selfName    = "Me"

	DefaultFanoutConcurrency = 4
)

// Config is the immutable messaging and concurrency snapshot shared by every service.
type Config struct {
	AddSignature      bool
	Signature         string
	DisplayName       string
	FanoutConcurrency int
}

type base struct {
	client  msteams.Client
	cfg     Config
	logger  logrus.FieldLogger
	metrics recovery.Metrics
	now     func() time.Time
}

// selfDisplayName is the sender shown for a message this server just posted when the response
// does not carry one.
func (b *base) selfDisplayName(fromResponse string) string {
	if fromResponse != "" {
		return fromResponse
	}
	if b.cfg.DisplayName != "" {
		return b.cfg.DisplayName
	}
	return selfName
}

type noopMetrics struct{}

func (noopMetrics) ObserveGoroutineFailure(string) {}

// Services groups the domain services behind the tool dispatcher.
type Services struct {
	Channels *ChannelService
	Messages *MessageService
	Chats    *ChatService
	Meetings *MeetingService
	Files    *FileService
	Presence *PresenceService
	Members  *MemberService
}

func New(client msteams.Client, cfg Config, logger logrus.FieldLogger, metrics recovery.Metrics) *Services {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	if metrics == nil {
		metrics = noopMetrics{}
	}
	if cfg.FanoutConcurrency == 0 {
		cfg.FanoutConcurrency = DefaultFanoutConcurrency
	}

	b := &base{
		client:  client,
		cfg:     cfg,
		logger:  logger,
		metrics: metrics,
		now:     time.Now,
	}

	return &Services{
		Channels: &ChannelService{b},
		Messages: &MessageService{b},
		Chats:    &ChatService{b},
		Meetings: &MeetingService{b},
		Files:    &FileService{b},
		Presence: &PresenceService{b},
		Members:  &MemberService{b},
	}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func orUnknown(s string) string {
	if s == "" {
		return unknownName
	}
	return s
}
