package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-code-tutor/internal/app"
	"github.com/MKhiriev/go-code-tutor/internal/logger"
	"github.com/MKhiriev/go-code-tutor/internal/utils"
	"github.com/MKhiriev/go-code-tutor/models"
)

// maxChatBody caps /chat bodies. The line cap is enforced by the chat
// service; this only bounds decoding.
const maxChatBody = 1 << 20

// chat answers one prompt for the user authenticated by the auth middleware.
func (h *Handler) chat(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("user id is missing in context")
		utils.WriteError(w, http.StatusUnauthorized, app.MsgNoTokenProvided, "")
		return
	}

	var req models.ChatRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxChatBody)).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, http.StatusBadRequest, app.MsgInvalidDataProvided, "")
		return
	}

	resp, err := h.services.ChatService.Chat(ctx, userID, req)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Str("lang", req.Lang).Msg("chat request failed")
		h.writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}
