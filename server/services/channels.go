package services

import (
	"context"

	"github.com/mattermost/msteams-mcp-server/server/msteams/clientmodels"
)

type Channel struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Description string `json:"description,omitempty"`
	TeamID      string `json:"teamId"`
	TeamName    string `json:"teamName"`
}

type ChannelService struct {
	*base
}

// ListChannels returns the channels of every team the caller has joined, one request per team.
func (s *ChannelService) ListChannels(ctx context.Context) ([]Channel, error) {
	const op = "list channels"

	teams, err := s.client.ListTeams(ctx)
	if err != nil {
		return nil, remoteError(op, err)
	}

	perTeam, err := fanOut(ctx, s.base, "list_team_channels", teams, func(ctx context.Context, team clientmodels.Team) ([]Channel, error) {
		teamChannels, err := s.client.ListChannels(ctx, team.ID)
		if err != nil {
			return nil, remoteError(op, err)
		}

		channels := make([]Channel, 0, len(teamChannels))
		for _, c := range teamChannels {
			channels = append(channels, Channel{
				ID:          c.ID,
				DisplayName: c.DisplayName,
				Description: c.Description,
				TeamID:      team.ID,
				TeamName:    team.DisplayName,
			})
		}
		return channels, nil
	})
	if err != nil {
		return nil, err
	}

	type channelKey struct{ teamID, channelID string }
	seen := map[channelKey]bool{}
	channels := []Channel{}
	for _, teamChannels := range perTeam {
		for _, c := range teamChannels {
			key := channelKey{c.TeamID, c.ID}
			if seen[key] {
				continue
			}
			seen[key] = true
			channels = append(channels, c)
		}
	}

	s.logger.WithField("teams", len(teams)).WithField("channels", len(channels)).Debug("Listed channels")
	return channels, nil
}

func (s *ChannelService) GetChannel(ctx context.Context, teamID, channelID string) (*Channel, error) {
	const op = "get channel"

	channel, err := s.client.GetChannel(ctx, teamID, channelID)
	if err != nil {
		return nil, remoteError(op, err)
	}

	team, err := s.client.GetTeam(ctx, teamID)
	if err != nil {
		return nil, remoteError(op, err)
	}

	return &Channel{
		ID:          channel.ID,
		DisplayName: channel.DisplayName,
		Description: channel.Description,
		TeamID:      teamID,
		TeamName:    team.DisplayName,
	}, nil
}
