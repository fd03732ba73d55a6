package http

import (
	"encoding/json"
	"net/http"

	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/breaktype"
	"github.com/cmlabs-hris/attendance-engine-go/internal/handler/http/response"
)

type BreakTypeHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type breakTypeHandlerImpl struct {
	breakTypeService breaktype.BreakTypeService
}

func NewBreakTypeHandler(breakTypeService breaktype.BreakTypeService) BreakTypeHandler {
	return &breakTypeHandlerImpl{breakTypeService: breakTypeService}
}

// Create implements BreakTypeHandler.
func (h *breakTypeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req breaktype.CreateBreakTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.breakTypeService.CreateBreakType(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Break type created", result)
}

// List implements BreakTypeHandler.
func (h *breakTypeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.breakTypeService.ListBreakTypes(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
