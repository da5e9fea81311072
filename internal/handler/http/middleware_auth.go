package http

import (
	"net/http"

	"github.com/MKhiriev/go-code-tutor/internal/app"
	"github.com/MKhiriev/go-code-tutor/internal/logger"
	"github.com/MKhiriev/go-code-tutor/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// A missing or malformed "Authorization" header is answered with 401
// {"error": "No token provided"}; a token that fails verification with 401
// {"error": "Invalid or expired token"}. On success the user id is stored in
// the request context under [utils.UserIDCtxKey] and added to the
// request-scoped logger.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			utils.WriteError(w, http.StatusUnauthorized, app.MsgNoTokenProvided, "")
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Send()
			utils.WriteError(w, http.StatusUnauthorized, app.MsgNoTokenProvided, "")
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			utils.WriteError(w, http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid, "")
			return
		}

		ctx = utils.WithUserID(ctx, token.UserID)
		ctx = log.With().Int64("user_id", token.UserID).Logger().WithContext(ctx)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
