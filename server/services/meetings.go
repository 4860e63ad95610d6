package services

import (
	"context"
	"time"

	"github.com/mattermost/msteams-mcp-server/server/msteams/clientmodels"
)

const meetingsWindow = 7 * 24 * time.Hour

type Meeting struct {
	ID           string   `json:"id"`
	Subject      string   `json:"subject"`
	Start        string   `json:"start"`
	End          string   `json:"end"`
	Organizer    string   `json:"organizer"`
	JoinURL      string   `json:"joinUrl,omitempty"`
	Participants []string `json:"participants"`
}

type MeetingService struct {
	*base
}

func convertMeeting(e *clientmodels.Event, organizerFallback string) *Meeting {
	participants := make([]string, 0, len(e.AttendeeNames))
	for _, name := range e.AttendeeNames {
		participants = append(participants, orUnknown(name))
	}

	organizer := e.OrganizerName
	if organizer == "" {
		organizer = organizerFallback
	}

	return &Meeting{
		ID:           e.ID,
		Subject:      e.Subject,
		Start:        e.Start,
		End:          e.End,
		Organizer:    organizer,
		JoinURL:      e.JoinURL,
		Participants: participants,
	}
}

// GetMeetings returns the online meetings starting within the next seven days.
func (s *MeetingService) GetMeetings(ctx context.Context, limit int) ([]Meeting, error) {
	from := s.now()
	events, err := s.client.ListEvents(ctx, from, from.Add(meetingsWindow), limit)
	if err != nil {
		return nil, remoteError("get meetings", err)
	}

	meetings := make([]Meeting, 0, len(events))
	for i := range events {
		meetings = append(meetings, *convertMeeting(&events[i], unknownName))
	}
	return meetings, nil
}

// GetMeetingByID fails with NotFound when the event exists but is not an online meeting.
func (s *MeetingService) GetMeetingByID(ctx context.Context, meetingID string) (*Meeting, error) {
	const op = "get meeting"

	event, err := s.client.GetEvent(ctx, meetingID)
	if err != nil {
		return nil, remoteError(op, err)
	}
	if !event.IsOnlineMeeting {
		return nil, notFoundError(op, "event %s is not an online meeting", meetingID)
	}
	return convertMeeting(event, unknownName), nil
}

func (s *MeetingService) CreateMeeting(ctx context.Context, subject, startDateTime, endDateTime string, attendees []string) (*Meeting, error) {
	event, err := s.client.CreateEvent(ctx, clientmodels.NewEvent{
		Subject:        subject,
		Start:          startDateTime,
		End:            endDateTime,
		TimeZone:       "UTC",
		AttendeeEmails: attendees,
	})
	if err != nil {
		return nil, remoteError("create meeting", err)
	}

	meeting := convertMeeting(event, selfName)
	meeting.Participants = append([]string{}, attendees...)
	return meeting, nil
}
