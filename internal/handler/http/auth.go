package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-code-tutor/internal/app"
	"github.com/MKhiriev/go-code-tutor/internal/logger"
	"github.com/MKhiriev/go-code-tutor/internal/utils"
	"github.com/MKhiriev/go-code-tutor/models"
)

// maxCredentialsBody caps /register and /login bodies.
const maxCredentialsBody = 4 << 10

// register creates an account. It does not issue a token: clients log in
// afterwards.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creds models.Credentials
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxCredentialsBody)).Decode(&creds); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, http.StatusBadRequest, app.MsgInvalidDataProvided, "")
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, creds)
	if err != nil {
		log.Err(err).Str("username", creds.Username).Msg("user registration failed")
		h.writeServiceError(w, err)
		return
	}

	log.Info().Int64("id", registeredUser.UserID).Str("username", registeredUser.Username).Msg("user registered")

	utils.WriteJSON(w, models.RegisterResponse{Message: app.MsgUserRegistered}, http.StatusCreated)
}

// login verifies credentials and returns a bearer token together with the
// canonical username and the user id.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creds models.Credentials
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxCredentialsBody)).Decode(&creds); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, http.StatusBadRequest, app.MsgInvalidDataProvided, "")
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, creds)
	if err != nil {
		log.Err(err).Str("username", creds.Username).Msg("no user was found/wrong password")
		h.writeServiceError(w, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		utils.WriteError(w, http.StatusInternalServerError, app.MsgInternalServerError, "")
		return
	}

	log.Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, models.LoginResponse{
		Token:    token.SignedString,
		UserID:   strconv.FormatInt(foundUser.UserID, 10),
		Username: foundUser.Username,
	}, http.StatusOK)
}
