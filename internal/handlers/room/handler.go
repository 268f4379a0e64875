package room

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"hotel/infras/otel"
	"hotel/internal/domains/room/model/dto"
	"hotel/internal/domains/room/service"
	"hotel/internal/domains/room/validation"
	"hotel/shared/constant"
	"hotel/shared/failure"
	"hotel/transport/http/response"
)

type Handler struct {
	service service.Room
	otel    otel.Otel
}

func New(service service.Room, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/rooms", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetRooms)
		routerGroup.Post("/", handler.AddRoom)
		routerGroup.Put("/{id}", handler.UpdateRoom)
		routerGroup.Delete("/{id}", handler.DeleteRoom)
	})
}

// GetRooms retrieves every stored room.
// @Summary Get all rooms
// @Description Retrieve every room in the store.
// @Tags Room
// @Produce json
// @Success 200 {object} dto.GetRoomsResponse
// @Failure 500 {object} response.Error
// @Router /api/rooms [get]
func (handler *Handler) GetRooms(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRooms")
	defer scope.End()

	res, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to retrieve rooms")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// AddRoom handles the creation of a new room.
// @Summary Add a new room
// @Description Add a new room. Status and capacity fall back to their defaults when omitted.
// @Tags Room
// @Accept json
// @Produce json
// @Param body body dto.CreateRoomRequest true "Room payload"
// @Success 201 {object} dto.GetRoomResponse
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/rooms [post]
func (handler *Handler) AddRoom(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddRoom")
	defer scope.End()

	raw, body, err := readBody(request)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to read create room request")

		response.WithError(writer, err)

		return
	}

	if details := validation.ValidateNewRoom(body); len(details) > 0 {
		err := failure.Validation(details)
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate create room request")

		response.WithError(writer, err)

		return
	}

	// Safe after validation: every present field matches the typed shape.
	var req dto.CreateRoomRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to decode create room request")

		response.WithError(writer, failure.BadRequestFromString("Invalid JSON in request body"))

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create room")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, res)
}

// UpdateRoom applies a partial update to an existing room.
// @Summary Update a room
// @Description Update any subset of floor, hasView, status and capacity. The id is not updatable.
// @Tags Room
// @Accept json
// @Produce json
// @Param id path int true "Room id"
// @Param body body dto.UpdateRoomRequest true "Fields to update"
// @Success 200 {object} dto.GetRoomResponse
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/rooms/{id} [put]
func (handler *Handler) UpdateRoom(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRoom")
	defer scope.End()

	id, err := parseID(request)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("invalid room id")

		response.WithError(writer, err)

		return
	}

	raw, body, err := readBody(request)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to read update room request")

		response.WithError(writer, err)

		return
	}

	if details := validation.ValidateUpdateRoom(body); len(details) > 0 {
		err := failure.Validation(details)
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate update room request")

		response.WithError(writer, err)

		return
	}

	var req dto.UpdateRoomRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to decode update room request")

		response.WithError(writer, failure.BadRequestFromString("Invalid JSON in request body"))

		return
	}

	res, err := handler.service.Update(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update room")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// DeleteRoom removes an existing room.
// @Summary Delete a room
// @Description Delete a room by id.
// @Tags Room
// @Produce json
// @Param id path int true "Room id"
// @Success 200 {object} dto.DeleteRoomResponse
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/rooms/{id} [delete]
func (handler *Handler) DeleteRoom(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteRoom")
	defer scope.End()

	id, err := parseID(request)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("invalid room id")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete room")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, dto.DeleteRoomResponse{
		Message: "Room deleted successfully",
		ID:      id,
	})
}

// parseID extracts the path id, which must be a base-10 integer greater than zero.
func parseID(request *http.Request) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(request, constant.RequestParamID))
	if err != nil || id <= 0 {
		return 0, failure.BadRequestFromString("Invalid room ID")
	}

	return id, nil
}

// readBody returns the raw body bytes along with their loosely decoded form. Numbers
// stay json.Number so the validation rules can tell integers from fractions.
func readBody(request *http.Request) ([]byte, any, error) {
	raw, err := io.ReadAll(request.Body)
	if err != nil || len(raw) == 0 {
		return nil, nil, failure.BadRequestFromString("Request body is required")
	}

	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()

	var body any
	if err := decoder.Decode(&body); err != nil {
		return nil, nil, failure.BadRequestFromString("Invalid JSON in request body")
	}

	return raw, body, nil
}
