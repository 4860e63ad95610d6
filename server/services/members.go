package services

import (
	"context"
	"strings"

	"github.com/pkg/errors"

	"github.com/mattermost/msteams-mcp-server/server/msteams/clientmodels"
)

const (
	RoleOwner  = "owner"
	RoleMember = "member"
)

type TeamMember struct {
	ID          string   `json:"id"`
	UserID      string   `json:"userId"`
	DisplayName string   `json:"displayName"`
	Email       string   `json:"email,omitempty"`
	Roles       []string `json:"roles"`
}

type MemberService struct {
	*base
}

func convertMember(m *clientmodels.Member) TeamMember {
	roles := m.Roles
	if roles == nil {
		roles = []string{}
	}
	return TeamMember{
		ID:          m.ID,
		UserID:      m.UserID,
		DisplayName: orUnknown(m.DisplayName),
		Email:       m.Email,
		Roles:       roles,
	}
}

// rolesFor maps a role name to the Graph role list. Plain members carry no role.
func rolesFor(op, role string) ([]string, error) {
	switch role {
	case RoleOwner:
		return []string{RoleOwner}, nil
	case RoleMember, "":
		return []string{}, nil
	default:
		return nil, InvalidArgumentError(op, errors.Errorf("unsupported role %q", role))
	}
}

func (s *MemberService) ListMembers(ctx context.Context, teamID string) ([]TeamMember, error) {
	members, err := s.client.ListMembers(ctx, teamID)
	if err != nil {
		return nil, remoteError("list members", err)
	}

	result := make([]TeamMember, 0, len(members))
	for i := range members {
		result = append(result, convertMember(&members[i]))
	}
	return result, nil
}

func (s *MemberService) GetMember(ctx context.Context, teamID, membershipID string) (*TeamMember, error) {
	member, err := s.client.GetMember(ctx, teamID, membershipID)
	if err != nil {
		return nil, remoteError("get member", err)
	}
	m := convertMember(member)
	return &m, nil
}

func (s *MemberService) AddMember(ctx context.Context, teamID, userEmail, role string) (*TeamMember, error) {
	const op = "add member"

	roles, err := rolesFor(op, role)
	if err != nil {
		return nil, err
	}

	user, err := s.client.GetUser(ctx, userEmail)
	if err != nil {
		return nil, remoteError(op, err)
	}

	member, err := s.client.AddMember(ctx, teamID, user.ID, roles)
	if err != nil {
		return nil, remoteError(op, err)
	}

	m := convertMember(member)
	if m.UserID == "" {
		m.UserID = user.ID
	}
	if member.DisplayName == "" {
		m.DisplayName = orUnknown(user.DisplayName)
	}
	if m.Email == "" {
		m.Email = userEmail
	}
	return &m, nil
}

// RemoveMember removes a membership. The id is the membership id, not the user id.
func (s *MemberService) RemoveMember(ctx context.Context, teamID, membershipID string) error {
	if err := s.client.RemoveMember(ctx, teamID, membershipID); err != nil {
		return remoteError("remove member", err)
	}
	return nil
}

func (s *MemberService) UpdateMemberRole(ctx context.Context, teamID, membershipID, role string) (*TeamMember, error) {
	const op = "update member role"

	roles, err := rolesFor(op, role)
	if err != nil {
		return nil, err
	}

	member, err := s.client.UpdateMemberRoles(ctx, teamID, membershipID, roles)
	if err != nil {
		return nil, remoteError(op, err)
	}
	m := convertMember(member)
	return &m, nil
}

func (s *MemberService) FindMemberByEmail(ctx context.Context, teamID, userEmail string) (*TeamMember, error) {
	const op = "find member by email"

	members, err := s.client.ListMembers(ctx, teamID)
	if err != nil {
		return nil, remoteError(op, err)
	}

	for i := range members {
		if strings.EqualFold(members[i].Email, userEmail) {
			m := convertMember(&members[i])
			return &m, nil
		}
	}
	return nil, notFoundError(op, "no member of team %s with email %s", teamID, userEmail)
}

func (s *MemberService) ListTeamOwners(ctx context.Context, teamID string) ([]TeamMember, error) {
	members, err := s.client.ListMembers(ctx, teamID)
	if err != nil {
		return nil, remoteError("list team owners", err)
	}

	owners := []TeamMember{}
	for i := range members {
		for _, role := range members[i].Roles {
			if role == RoleOwner {
				owners = append(owners, convertMember(&members[i]))
				break
			}
		}
	}
	return owners, nil
}
