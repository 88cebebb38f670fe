package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidRole(t *testing.T) {
	for _, role := range ValidRoles {
		assert.True(t, IsValidRole(role), role)
	}
	assert.False(t, IsValidRole("superuser"))
	assert.False(t, IsValidRole(""))
}

func TestUserToResponseOmitsPassword(t *testing.T) {
	user := &User{
		ID:       7,
		Email:    "bob@campus.edu",
		Password: "$2a$10$hash",
		Role:     RoleAdmin,
	}

	resp := user.ToResponse()
	assert.Equal(t, uint(7), resp.ID)
	assert.Equal(t, "bob@campus.edu", resp.Email)
	assert.Equal(t, RoleAdmin, resp.Role)
}

func TestSeatingManagerRoomsRoundTrip(t *testing.T) {
	profile := &SeatingManagerProfile{}
	profile.SetRooms([]string{" Hall A ", "Hall B", "", "  "})

	assert.Equal(t, "Hall A,Hall B", profile.RoomsManaged)
	assert.Equal(t, []string{"Hall A", "Hall B"}, profile.RoomsList())
}

func TestSeatingManagerRoomsEmpty(t *testing.T) {
	profile := &SeatingManagerProfile{RoomsManaged: "  "}
	assert.Empty(t, profile.RoomsList())
}

func TestExamRoomCapacityDerived(t *testing.T) {
	room := &ExamRoom{Rows: 10, Cols: 6}
	require.NoError(t, room.BeforeSave(nil))
	assert.Equal(t, 60, room.Capacity)
}

func TestExamRoomCapacityExplicitWins(t *testing.T) {
	room := &ExamRoom{Rows: 10, Cols: 6, Capacity: 45}
	require.NoError(t, room.BeforeSave(nil))
	assert.Equal(t, 45, room.Capacity)
}

func TestIsValidEventType(t *testing.T) {
	for _, valid := range []string{EventTypeExam, EventTypeHoliday, EventTypeEvent, EventTypeDeadline} {
		assert.True(t, IsValidEventType(valid), valid)
	}
	assert.False(t, IsValidEventType("party"))
}

func TestIsValidAttachmentType(t *testing.T) {
	for _, valid := range []string{AttachmentTypePDF, AttachmentTypePPT, AttachmentTypeImage, AttachmentTypeLink} {
		assert.True(t, IsValidAttachmentType(valid), valid)
	}
	assert.False(t, IsValidAttachmentType("docx"))
}
