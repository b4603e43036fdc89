package content_test

import (
	"testing"
	"time"

	"github.com/clc-tz/legalbridge-backend/content"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShapeAnnouncementsNestsDate(t *testing.T) {
	now := time.Date(2025, 5, 19, 10, 0, 0, 0, time.UTC)
	records := []*content.Announcement{
		{
			ID:          uuid.New(),
			Title:       "Research Week Exhibition",
			Description: "Showcasing ICT in legal access.",
			Day:         "19",
			Month:       "MAY",
			Year:        "2025",
			IsNew:       true,
			Status:      content.StatusActive,
			CreatedAt:   &now,
			UpdatedAt:   &now,
		},
	}

	payload := content.ShapeAnnouncements(records)

	require.Len(t, payload.Announcements, 1)
	assert.Equal(t, "ANNOUNCEMENTS", payload.Title)

	view := payload.Announcements[0]
	assert.Equal(t, "19", view.Date.Day)
	assert.Equal(t, "MAY", view.Date.Month)
	assert.Equal(t, "2025", view.Date.Year)
	assert.True(t, view.IsNew)
	assert.NotEmpty(t, view.CreatedAt)
}

func TestShapeAnnouncementsEmpty(t *testing.T) {
	payload := content.ShapeAnnouncements(nil)
	assert.Equal(t, "ANNOUNCEMENTS", payload.Title)
	assert.Empty(t, payload.Announcements)
}

func TestShapeHeroNestsChatData(t *testing.T) {
	hero := &content.Hero{
		ID:          uuid.New(),
		Headline:    "FACING A LEGAL ISSUE?",
		Subheadline: "Start on WhatsApp.",
		CTAText:     "CHAT WITH LEGAL EXPERTS",
		UserMessage: "Hi, I need legal Service Can you help?",
		BotResponse: "Thanks for reaching out!",
		UserName:    "Emma",
		Status:      content.StatusActive,
		Options: []*content.HeroOption{
			{Text: "Book an Appointment", Icon: "calendar"},
		},
	}

	payload := content.ShapeHero(hero)

	assert.Equal(t, hero.Headline, payload.Headline)
	assert.Equal(t, "Emma", payload.ChatData.UserName)
	assert.Equal(t, "Hi, I need legal Service Can you help?", payload.ChatData.UserMessage)
	require.Len(t, payload.ChatData.Options, 1)
	assert.Equal(t, "calendar", payload.ChatData.Options[0].Icon)
}

func TestShapeHeroNilOptions(t *testing.T) {
	payload := content.ShapeHero(&content.Hero{Headline: "x"})
	assert.NotNil(t, payload.ChatData.Options)
	assert.Empty(t, payload.ChatData.Options)
}

func TestShapeHowKeepsSteps(t *testing.T) {
	section := &content.HowSection{
		ID:       uuid.New(),
		Title:    "HOW IT WORKS",
		Subtitle: "Simple steps",
		Status:   content.StatusActive,
		Steps: []*content.HowStep{
			{StepID: 1, Title: "Start", Description: "Message us", Icon: "whatsapp"},
			{StepID: 2, Title: "Chat", Description: "Expert review", Icon: "chat"},
		},
	}

	payload := content.ShapeHow(section)
	require.Len(t, payload.Steps, 2)
	assert.Equal(t, 1, payload.Steps[0].StepID)
}

func TestNormalizePhone(t *testing.T) {
	cases := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"international format", "+255745118253", "+255 745 118 253", false},
		{"national format uses region", "0745118253", "+255 745 118 253", false},
		{"already formatted", "+255 745 118 253", "+255 745 118 253", false},
		{"garbage", "not-a-phone", "", true},
		{"too short", "+2551", "", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := content.NormalizePhone(tc.input)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestIsValidStatus(t *testing.T) {
	for _, status := range []content.Status{"active", "pending", "ongoing", "inactive"} {
		assert.True(t, content.IsValidStatus(status), status)
	}
	assert.False(t, content.IsValidStatus("deleted"))
	assert.False(t, content.IsValidStatus(""))
}
