package dto

import (
	"hotel/internal/domains/room/model"
	"hotel/shared"
)

// CreateRoomRequest is the wire shape for room creation. The wire names differ from the
// stored ones on purpose: roomNumber maps to id and floorNumber to floor, an explicit
// translation owned by ToModel so the wire contract stays stable independent of the
// storage naming.
type CreateRoomRequest struct {
	RoomNumber  int     `json:"roomNumber"`
	FloorNumber int     `json:"floorNumber"`
	HasView     bool    `json:"hasView"`
	Status      *string `json:"status"`
	Capacity    *int    `json:"capacity"`
}

// ToModel translates the wire shape into the stored shape and injects the creation
// defaults, so every persisted room carries all five fields.
func (c *CreateRoomRequest) ToModel() model.Room {
	status := model.DefaultStatus
	if c.Status != nil {
		status = model.Status(*c.Status)
	}

	capacity := model.DefaultCapacity
	if c.Capacity != nil {
		capacity = *c.Capacity
	}

	return model.Room{
		ID:       c.RoomNumber,
		Floor:    c.FloorNumber,
		HasView:  c.HasView,
		Status:   status,
		Capacity: capacity,
	}
}

// UpdateRoomRequest carries a partial update. Nil fields were not provided and must
// never touch the stored value. The id is not part of this shape.
type UpdateRoomRequest struct {
	Floor    *int    `json:"floor"    dynamodbav:"floor"`
	HasView  *bool   `json:"hasView"  dynamodbav:"hasView"`
	Status   *string `json:"status"   dynamodbav:"status"`
	Capacity *int    `json:"capacity" dynamodbav:"capacity"`
}

// Fields returns the attribute map of only the provided values.
func (u *UpdateRoomRequest) Fields() map[string]any {
	return shared.TransformFields(*u)
}

type RoomResponse struct {
	ID       int          `json:"id"`
	Floor    int          `json:"floor"`
	HasView  bool         `json:"hasView"`
	Status   model.Status `json:"status"`
	Capacity int          `json:"capacity"`
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.Floor = model.Floor
	r.HasView = model.HasView
	r.Status = model.Status
	r.Capacity = model.Capacity
}

// GetRoomResponse wraps a single room for the create and update endpoints.
type GetRoomResponse struct {
	Room RoomResponse `json:"room"`
}

func (r *GetRoomResponse) FromModel(model model.Room) {
	r.Room.FromModel(model)
}

type GetRoomsResponse struct {
	Rooms []RoomResponse `json:"rooms"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room) {
	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}

type DeleteRoomResponse struct {
	Message string `json:"message"`
	ID      int    `json:"id"`
}

// RoomEvent is the broker payload emitted after a successful mutation. Deletions carry
// the id only.
type RoomEvent struct {
	Event string        `json:"event"`
	ID    int           `json:"id"`
	Room  *RoomResponse `json:"room,omitempty"`
}
