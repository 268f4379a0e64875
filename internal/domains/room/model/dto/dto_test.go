package dto_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"hotel/internal/domains/room/model"
	"hotel/internal/domains/room/model/dto"
)

func TestCreateRoomRequest_ToModelDefaults(t *testing.T) {
	req := dto.CreateRoomRequest{
		RoomNumber:  101,
		FloorNumber: 1,
		HasView:     true,
	}

	room := req.ToModel()

	assert.Equal(t, 101, room.ID)
	assert.Equal(t, 1, room.Floor)
	assert.True(t, room.HasView)
	assert.Equal(t, model.StatusAvailable, room.Status)
	assert.Equal(t, 2, room.Capacity)
}

func TestCreateRoomRequest_ToModelExplicitValues(t *testing.T) {
	req := dto.CreateRoomRequest{
		RoomNumber:  205,
		FloorNumber: 2,
		HasView:     false,
		Status:      stringPtr("maintenance"),
		Capacity:    intPtr(6),
	}

	room := req.ToModel()

	assert.Equal(t, 205, room.ID)
	assert.Equal(t, 2, room.Floor)
	assert.False(t, room.HasView)
	assert.Equal(t, model.StatusMaintenance, room.Status)
	assert.Equal(t, 6, room.Capacity)
}

func TestUpdateRoomRequest_FieldsPartial(t *testing.T) {
	req := dto.UpdateRoomRequest{
		Floor:  intPtr(3),
		Status: stringPtr("occupied"),
	}

	fields := req.Fields()

	assert.Len(t, fields, 2)
	assert.Equal(t, 3, fields["floor"])
	assert.Equal(t, "occupied", fields["status"])
	assert.NotContains(t, fields, "hasView")
	assert.NotContains(t, fields, "capacity")
}

func TestUpdateRoomRequest_FieldsKeepsFalseAndBoundaryValues(t *testing.T) {
	req := dto.UpdateRoomRequest{
		HasView:  boolPtr(false),
		Capacity: intPtr(1),
	}

	fields := req.Fields()

	assert.Len(t, fields, 2)
	assert.Equal(t, false, fields["hasView"])
	assert.Equal(t, 1, fields["capacity"])
}

func TestUpdateRoomRequest_FieldsEmpty(t *testing.T) {
	req := dto.UpdateRoomRequest{}

	assert.Empty(t, req.Fields())
}

func TestRoomResponse_FromModel(t *testing.T) {
	room := model.Room{
		ID:       304,
		Floor:    3,
		HasView:  true,
		Status:   model.StatusOccupied,
		Capacity: 4,
	}

	var response dto.RoomResponse
	response.FromModel(room)

	assert.Equal(t, room.ID, response.ID)
	assert.Equal(t, room.Floor, response.Floor)
	assert.Equal(t, room.HasView, response.HasView)
	assert.Equal(t, room.Status, response.Status)
	assert.Equal(t, room.Capacity, response.Capacity)
}

func TestGetRoomsResponse_FromModelsEmptyMarshalsAsArray(t *testing.T) {
	var response dto.GetRoomsResponse
	response.FromModels(nil)

	assert.NotNil(t, response.Rooms)

	payload, err := json.Marshal(response)
	assert.NoError(t, err)
	assert.JSONEq(t, `{"rooms":[]}`, string(payload))
}

func TestGetRoomsResponse_FromModels(t *testing.T) {
	rooms := []model.Room{
		{ID: 101, Floor: 1, HasView: true, Status: model.StatusAvailable, Capacity: 2},
		{ID: 102, Floor: 1, HasView: false, Status: model.StatusMaintenance, Capacity: 8},
	}

	var response dto.GetRoomsResponse
	response.FromModels(rooms)

	assert.Len(t, response.Rooms, 2)
	assert.Equal(t, 101, response.Rooms[0].ID)
	assert.Equal(t, model.StatusMaintenance, response.Rooms[1].Status)
}

// Helper functions to create pointers
func stringPtr(s string) *string {
	return &s
}

func intPtr(i int) *int {
	return &i
}

func boolPtr(b bool) *bool {
	return &b
}
