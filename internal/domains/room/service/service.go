package service

import (
	"context"
	"errors"
	"strconv"

	"github.com/rs/zerolog/log"

	"hotel/config"
	"hotel/infras/kafka"
	"hotel/infras/otel"
	"hotel/internal/domains/room/model"
	"hotel/internal/domains/room/model/dto"
	"hotel/internal/domains/room/repository"
	"hotel/shared/constant"
	"hotel/shared/failure"
)

const (
	eventRoomCreated = "room.created"
	eventRoomUpdated = "room.updated"
	eventRoomDeleted = "room.deleted"
)

type Room interface {
	GetAll(ctx context.Context) (dto.GetRoomsResponse, error)
	Create(ctx context.Context, req dto.CreateRoomRequest) (dto.GetRoomResponse, error)
	Update(ctx context.Context, id int, req dto.UpdateRoomRequest) (dto.GetRoomResponse, error)
	Delete(ctx context.Context, id int) error
}

type serviceImpl struct {
	repo  repository.Room
	cfg   *config.Config
	kafka kafka.Client
	otel  otel.Otel
}

func New(repo repository.Room, cfg *config.Config, kafka kafka.Client, otel otel.Otel) Room {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		kafka: kafka,
		otel:  otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetRoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	rooms, err := s.repo.ListAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to list rooms")

		return res, failure.InternalFromString("Failed to retrieve rooms")
	}

	res.FromModels(rooms)

	return res, nil
}

// Create persists the room under its wire-assigned id. An id that already exists is
// overwritten, matching the storage adapter's upsert semantics.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateRoomRequest) (res dto.GetRoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	room, err := s.repo.Put(ctx, req.ToModel())
	if err != nil {
		log.Error().Err(err).Msg("failed to store new room")

		return res, failure.InternalFromString("Failed to add room")
	}

	s.publishEvent(ctx, eventRoomCreated, room.ID, &room)

	res.FromModel(room)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, id int, req dto.UpdateRoomRequest) (res dto.GetRoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	room, err := s.repo.UpdateByKey(ctx, id, req.Fields())
	if err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			return res, failure.NotFound("Room not found")
		}

		log.Error().Err(err).Int("id", id).Msg("failed to update room")

		return res, failure.InternalFromString("Failed to update room")
	}

	s.publishEvent(ctx, eventRoomUpdated, room.ID, &room)

	res.FromModel(room)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id int) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.repo.DeleteByKey(ctx, id); err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			return failure.NotFound("Room not found")
		}

		log.Error().Err(err).Int("id", id).Msg("failed to delete room")

		return failure.InternalFromString("Failed to delete room")
	}

	s.publishEvent(ctx, eventRoomDeleted, id, nil)

	return nil
}

// publishEvent emits the mutation to the broker. The writer is asynchronous, so the
// call does not block the request. Publish failures are logged and swallowed; the
// stored state is already committed.
func (s *serviceImpl) publishEvent(ctx context.Context, event string, id int, room *model.Room) {
	payload := dto.RoomEvent{Event: event, ID: id}
	if room != nil {
		var response dto.RoomResponse
		response.FromModel(*room)
		payload.Room = &response
	}

	message := kafka.Message{Key: strconv.Itoa(id), Value: payload}
	if err := s.kafka.SendMessages(ctx, s.cfg.Broker.Kafka.Topic, message); err != nil {
		log.Error().Err(err).Str("event", event).Msg("failed to publish room event")
	}
}
