package model

const (
	EntityName = "room"

	FieldID       = "id"
	FieldFloor    = "floor"
	FieldHasView  = "hasView"
	FieldStatus   = "status"
	FieldCapacity = "capacity"
)

type Status string

const (
	StatusAvailable   Status = "available"
	StatusOccupied    Status = "occupied"
	StatusMaintenance Status = "maintenance"
)

const (
	DefaultStatus   = StatusAvailable
	DefaultCapacity = 2

	MinCapacity = 1
	MaxCapacity = 10
)

// Room is the stored entity. Attribute names match the wire names, so the JSON shape and
// the DynamoDB item stay in lockstep. The id doubles as the user-facing room number and
// is the partition key; it never changes after creation.
type Room struct {
	ID       int    `json:"id"       dynamodbav:"id"`
	Floor    int    `json:"floor"    dynamodbav:"floor"`
	HasView  bool   `json:"hasView"  dynamodbav:"hasView"`
	Status   Status `json:"status"   dynamodbav:"status"`
	Capacity int    `json:"capacity" dynamodbav:"capacity"`
}

// ValidStatus reports whether the given value is one of the three room states.
func ValidStatus(value string) bool {
	switch Status(value) {
	case StatusAvailable, StatusOccupied, StatusMaintenance:
		return true
	default:
		return false
	}
}
