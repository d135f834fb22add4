package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"

	"space-finder-api/internal/models"
	"space-finder-api/internal/repositories"
	"space-finder-api/internal/services"
	"space-finder-api/pkg/lambda"
)

// AdminGroup is the user pool group allowed to delete spaces
const AdminGroup = "admins"

// MessageResponse is the body of every non-data response
type MessageResponse struct {
	Message       string   `json:"message"`
	Errors        []string `json:"errors,omitempty"`
	MissingFields []string `json:"missingFields,omitempty"`
}

// CreatedResponse is returned after a space is created
type CreatedResponse struct {
	Message string        `json:"message"`
	SpaceID string        `json:"spaceId"`
	Space   *models.Space `json:"space"`
}

// SpaceHandler routes space requests by HTTP method
type SpaceHandler struct {
	spaceService services.SpaceService
	logger       *logrus.Logger
}

// NewSpaceHandler creates a new space handler
func NewSpaceHandler(spaceService services.SpaceService, logger *logrus.Logger) *SpaceHandler {
	if logger == nil {
		logger = logrus.New()
	}
	return &SpaceHandler{
		spaceService: spaceService,
		logger:       logger,
	}
}

// Handle dispatches a request on its method. It never returns an error:
// failures are reported as 500 responses.
func (h *SpaceHandler) Handle(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	var resp *lambda.Response
	var err error

	switch req.Method {
	case http.MethodGet:
		resp, err = h.HandleGet(ctx, req)
	case http.MethodPost:
		resp, err = h.HandlePost(ctx, req)
	case http.MethodPut:
		resp, err = h.HandlePut(ctx, req)
	case http.MethodDelete:
		resp, err = h.HandleDelete(ctx, req)
	default:
		resp, err = message(http.StatusMethodNotAllowed, "Method Not Allowed")
	}

	if err != nil {
		h.logger.WithError(err).WithField("method", req.Method).Error("Error occurred")
		return internalError("Internal Server Error"), nil
	}

	return resp, nil
}

// HandleGet returns one space when ?id= is given, otherwise every space
func (h *SpaceHandler) HandleGet(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	id := req.QueryParams["id"]
	if id == "" {
		spaces, err := h.spaceService.ListSpaces(ctx)
		if err != nil {
			h.logger.WithError(err).Error("Error getting spaces")
			return message(http.StatusInternalServerError, "Internal server error")
		}
		return lambda.JSONResponse(http.StatusOK, spaces)
	}

	space, err := h.spaceService.GetSpace(ctx, id)
	if err != nil {
		if ve, ok := services.AsValidationError(err); ok {
			return validationFailure(ve)
		}
		if repositories.IsNotFound(err) {
			return message(http.StatusNotFound, "Space not found")
		}
		h.logger.WithError(err).WithField("space_id", id).Error("Error getting spaces")
		return message(http.StatusInternalServerError, "Internal server error")
	}

	return lambda.JSONResponse(http.StatusOK, space)
}

// HandlePost creates a space from the JSON body
func (h *SpaceHandler) HandlePost(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	if len(req.Body) == 0 {
		return message(http.StatusBadRequest, "Request body is required")
	}

	var body map[string]interface{}
	if err := json.Unmarshal(req.Body, &body); err != nil || body == nil {
		return message(http.StatusBadRequest, "Invalid JSON in request body")
	}

	var missing []string
	for _, field := range []string{models.AttrLocation, models.AttrWard} {
		if !truthy(body[field]) {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return lambda.JSONResponse(http.StatusBadRequest, MessageResponse{
			Message:       services.MsgMissingFields,
			MissingFields: missing,
		})
	}

	createReq, typeErrs := parseCreateRequest(body)
	if len(typeErrs) > 0 {
		return lambda.JSONResponse(http.StatusBadRequest, MessageResponse{
			Message: services.MsgValidationFailed,
			Errors:  typeErrs,
		})
	}

	space, err := h.spaceService.CreateSpace(ctx, createReq)
	if err != nil {
		if ve, ok := services.AsValidationError(err); ok {
			return validationFailure(ve)
		}
		h.logger.WithError(err).Error("Error creating space")
		return message(http.StatusInternalServerError, "Internal server error")
	}

	return lambda.JSONResponse(http.StatusCreated, CreatedResponse{
		Message: "Space created successfully",
		SpaceID: space.ID,
		Space:   space,
	})
}

// HandlePut updates the space named by ?id= with the string attributes in the body
func (h *SpaceHandler) HandlePut(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	id, resp, err := h.requireID(req)
	if resp != nil || err != nil {
		return resp, err
	}

	if len(req.Body) == 0 {
		return message(http.StatusBadRequest, "Request body is required")
	}

	var body interface{}
	if err := json.Unmarshal(req.Body, &body); err != nil {
		h.logger.WithError(err).WithField("space_id", id).Error("Error updating space")
		return message(http.StatusInternalServerError, "Internal Server Error")
	}

	fields := make(map[string]string)
	if obj, ok := body.(map[string]interface{}); ok {
		for _, name := range models.UpdatableAttributes {
			if value, ok := obj[name].(string); ok {
				fields[name] = value
			}
		}
	}

	space, err := h.spaceService.UpdateSpace(ctx, id, fields)
	if err != nil {
		if ve, ok := services.AsValidationError(err); ok {
			return validationFailure(ve)
		}
		if repositories.IsNotFound(err) {
			return message(http.StatusNotFound, "Space not found")
		}
		h.logger.WithError(err).WithField("space_id", id).Error("Error updating space")
		return message(http.StatusInternalServerError, "Internal Server Error")
	}

	return lambda.JSONResponse(http.StatusOK, space)
}

// HandleDelete deletes the space named by ?id=. Only admins may delete.
func (h *SpaceHandler) HandleDelete(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	if !req.HasGroup(AdminGroup) {
		return message(http.StatusForbidden, "Forbidden")
	}

	id, resp, err := h.requireID(req)
	if resp != nil || err != nil {
		return resp, err
	}

	if err := h.spaceService.DeleteSpace(ctx, id); err != nil {
		if ve, ok := services.AsValidationError(err); ok {
			return validationFailure(ve)
		}
		h.logger.WithError(err).WithField("space_id", id).Error("Error deleting space")
		return message(http.StatusInternalServerError, "Internal Server Error")
	}

	return message(http.StatusOK, fmt.Sprintf("Space with id %s deleted successfully", id))
}

// requireID extracts and validates ?id= for PUT and DELETE. A non-nil
// response means the request was rejected.
func (h *SpaceHandler) requireID(req *lambda.Request) (string, *lambda.Response, error) {
	if !req.HasQueryParam("id") {
		resp, err := message(http.StatusBadRequest, "Space ID is required in query parameters")
		return "", resp, err
	}

	id := req.QueryParams["id"]
	if id == "" {
		resp, err := message(http.StatusBadRequest, services.MsgIDRequired)
		return "", resp, err
	}

	if result := models.ValidateID(id); !result.IsValid {
		resp, err := lambda.JSONResponse(http.StatusBadRequest, MessageResponse{
			Message: services.MsgInvalidID,
			Errors:  result.Errors,
		})
		return "", resp, err
	}

	return id, nil, nil
}

// parseCreateRequest reads the create fields from a decoded body. Values of
// the wrong JSON type are reported as validation errors.
func parseCreateRequest(body map[string]interface{}) (*services.CreateSpaceRequest, []string) {
	req := &services.CreateSpaceRequest{}
	var errs []string

	if s, ok := body[models.AttrLocation].(string); ok {
		req.Location = s
	} else {
		errs = append(errs, "Location is required and must be a string")
	}

	if s, ok := body[models.AttrWard].(string); ok {
		req.Ward = s
	} else {
		errs = append(errs, "Ward is required and must be a string")
	}

	switch v := body[models.AttrPhotoURL].(type) {
	case string:
		req.PhotoURL = &v
	case nil:
	default:
		if truthy(v) {
			errs = append(errs, "Photo URL must be a string")
		}
	}

	return req, errs
}

// truthy reports whether a decoded JSON value counts as provided
func truthy(v interface{}) bool {
	switch x := v.(type) {
	case nil:
		return false
	case string:
		return x != ""
	case bool:
		return x
	case float64:
		return x != 0
	default:
		return true
	}
}

func message(statusCode int, msg string) (*lambda.Response, error) {
	return lambda.JSONResponse(statusCode, MessageResponse{Message: msg})
}

func validationFailure(ve *services.ValidationError) (*lambda.Response, error) {
	return lambda.JSONResponse(http.StatusBadRequest, MessageResponse{
		Message:       ve.Message,
		Errors:        ve.Errors,
		MissingFields: ve.MissingFields,
	})
}

func internalError(msg string) *lambda.Response {
	return &lambda.Response{
		StatusCode: http.StatusInternalServerError,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       []byte(`{"message":"` + msg + `"}`),
	}
}
