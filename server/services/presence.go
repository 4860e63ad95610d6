package services

import (
	"context"
	"time"

	"github.com/microsoft/kiota-abstractions-go/serialization"
	"github.com/pkg/errors"

	"github.com/mattermost/msteams-mcp-server/server/msteams"
	"github.com/mattermost/msteams-mcp-server/server/msteams/clientmodels"
)

var Availabilities = []string{"Available", "Busy", "DoNotDisturb", "BeRightBack", "Away"}

var statusExpiryLayouts = []string{time.RFC3339, "2006-01-02T15:04:05"}

type Presence struct {
	UserID        string `json:"userId"`
	UserEmail     string `json:"userEmail,omitempty"`
	UserName      string `json:"userName,omitempty"`
	Availability  string `json:"availability"`
	Activity      string `json:"activity"`
	StatusMessage string `json:"statusMessage,omitempty"`
}

type PresenceService struct {
	*base
}

func convertPresence(p *clientmodels.Presence, user *clientmodels.User) *Presence {
	presence := &Presence{
		UserID:        p.UserID,
		Availability:  p.Availability,
		Activity:      p.Activity,
		StatusMessage: p.StatusMessage,
	}
	if user != nil {
		if presence.UserID == "" {
			presence.UserID = user.ID
		}
		presence.UserEmail = userEmail(user)
		presence.UserName = user.DisplayName
	}
	return presence
}

func userEmail(u *clientmodels.User) string {
	if u.Mail != "" {
		return u.Mail
	}
	return u.UserPrincipalName
}

func (s *PresenceService) GetUserPresence(ctx context.Context, email string) (*Presence, error) {
	const op = "get user presence"

	user, err := s.client.GetUser(ctx, email)
	if err != nil {
		return nil, remoteError(op, err)
	}

	presence, err := s.client.GetPresence(ctx, user.ID)
	if err != nil {
		return nil, remoteError(op, err)
	}
	return convertPresence(presence, user), nil
}

func (s *PresenceService) GetMyPresence(ctx context.Context) (*Presence, error) {
	const op = "get my presence"

	me, err := s.client.GetMe(ctx)
	if err != nil {
		return nil, remoteError(op, err)
	}

	presence, err := s.client.GetMyPresence(ctx)
	if err != nil {
		return nil, remoteError(op, err)
	}
	return convertPresence(presence, me), nil
}

// SetPresence sets the caller's presence for this application session. An empty
// expirationDuration lets Graph apply its default.
func (s *PresenceService) SetPresence(ctx context.Context, availability, activity, expirationDuration string) error {
	const op = "set presence"

	if expirationDuration != "" {
		if _, err := serialization.ParseISODuration(expirationDuration); err != nil {
			return InvalidArgumentError(op, errors.Wrapf(err, "invalid expiration duration %q", expirationDuration))
		}
	}

	if err := s.client.SetMyPresence(ctx, availability, activity, expirationDuration); err != nil {
		return remoteError(op, err)
	}
	return nil
}

// GetMultiplePresences resolves every email, skipping the ones that fail, and fetches the
// presences of the resolved users in batches. The result keeps the order of the resolved users
// and omits users the batch did not answer for.
func (s *PresenceService) GetMultiplePresences(ctx context.Context, emails []string) ([]Presence, error) {
	resolved, err := fanOut(ctx, s.base, "resolve_presence_users", emails, func(ctx context.Context, email string) (*clientmodels.User, error) {
		user, err := s.client.GetUser(ctx, email)
		if err != nil {
			s.logger.WithError(err).WithField("email", email).Debug("Skipping user that could not be resolved")
			return nil, nil
		}
		return user, nil
	})
	if err != nil {
		return nil, err
	}

	users := make([]*clientmodels.User, 0, len(resolved))
	for _, u := range resolved {
		if u != nil {
			users = append(users, u)
		}
	}

	return s.presencesForUsers(ctx, "get multiple presences", users)
}

// GetTeamMembersPresence returns the presence of every member of a team.
func (s *PresenceService) GetTeamMembersPresence(ctx context.Context, teamID string) ([]Presence, error) {
	const op = "get team members presence"

	members, err := s.client.ListMembers(ctx, teamID)
	if err != nil {
		return nil, remoteError(op, err)
	}

	users := make([]*clientmodels.User, 0, len(members))
	for _, m := range members {
		if m.UserID == "" {
			continue
		}
		users = append(users, &clientmodels.User{ID: m.UserID, DisplayName: m.DisplayName, Mail: m.Email})
	}

	return s.presencesForUsers(ctx, op, users)
}

func (s *PresenceService) presencesForUsers(ctx context.Context, op string, users []*clientmodels.User) ([]Presence, error) {
	result := []Presence{}
	for _, group := range chunk(users, msteams.MaxBatchSize) {
		ids := make([]string, 0, len(group))
		for _, u := range group {
			ids = append(ids, u.ID)
		}

		presences, err := s.client.GetPresences(ctx, ids)
		if err != nil {
			return nil, remoteError(op, err)
		}

		for _, u := range group {
			p, ok := presences[u.ID]
			if !ok || p == nil {
				continue
			}
			result = append(result, *convertPresence(p, u))
		}
	}
	return result, nil
}

// SetStatusMessage sets the caller's status message. expiry is optional and accepts RFC 3339
// or a date time without offset, read as UTC.
func (s *PresenceService) SetStatusMessage(ctx context.Context, message, expiry string) error {
	const op = "set status message"

	var expiryTime *time.Time
	if expiry != "" {
		t, err := parseStatusExpiry(expiry)
		if err != nil {
			return InvalidArgumentError(op, err)
		}
		expiryTime = &t
	}

	if err := s.client.SetMyStatusMessage(ctx, message, expiryTime); err != nil {
		return remoteError(op, err)
	}
	return nil
}

func (s *PresenceService) ClearStatusMessage(ctx context.Context) error {
	if err := s.client.SetMyStatusMessage(ctx, "", nil); err != nil {
		return remoteError("clear status message", err)
	}
	return nil
}

func parseStatusExpiry(value string) (time.Time, error) {
	for _, layout := range statusExpiryLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, errors.Errorf("invalid expiry date time %q", value)
}
