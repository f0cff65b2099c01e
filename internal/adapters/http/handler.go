package httpadapter

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"github.com/google/uuid"

	"github.com/compentube/compentube-server/internal/app/auth"
	"github.com/compentube/compentube-server/internal/app/summarize"
	"github.com/compentube/compentube-server/internal/config"
	"github.com/compentube/compentube-server/internal/domain"
	"github.com/compentube/compentube-server/internal/observability"
)

const sessionCookieName = "compentube_sid"

type Server struct {
	auth         *auth.Service
	summarize    *summarize.Service
	clientOrigin string
}

func NewServer(authSvc *auth.Service, sumSvc *summarize.Service, clientOrigin string) http.Handler {
	s := &Server{
		auth:         authSvc,
		summarize:    sumSvc,
		clientOrigin: clientOrigin,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", s.handleHealthz)
	mux.HandleFunc("GET /auth/callback", s.handleAuthCallback)
	mux.HandleFunc("GET /auth/status", s.handleAuthStatus)
	mux.HandleFunc("POST /auth/logout", s.handleLogout)
	mux.HandleFunc("POST /summarize", s.handleSummarize)

	return chainMiddlewares(mux, withCORS(clientOrigin), withLogging)
}

// ─────────────────────────────────────────────
// DTOs (request/response)
// ─────────────────────────────────────────────

type userResponse struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Picture string `json:"picture"`
}

type statusResponse struct {
	LoggedIn bool          `json:"loggedIn"`
	User     *userResponse `json:"user,omitempty"`
}

type summarizeRequest struct {
	ItemReference  string `json:"itemReference"`
	OutputLanguage string `json:"outputLanguage"`
	LengthMode     string `json:"lengthMode"`
}

type metadataResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Channel   string `json:"channel"`
	ChannelID string `json:"channelId"`
	Thumbnail string `json:"thumbnail"`
}

type summarizeResponse struct {
	Success  bool             `json:"success"`
	Summary  string           `json:"summary"`
	Metadata metadataResponse `json:"metadata"`
}

// ─────────────────────────────────────────────
// Concrete handlers
// ─────────────────────────────────────────────

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// handleAuthCallback completes the login. Failures never surface as raw
// errors: every path out of here is a redirect to the client origin, with a
// sanitized message when something went wrong. The success redirect is only
// issued after the session has been persisted.
func (s *Server) handleAuthCallback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := observability.LoggerFromContext(ctx)

	code := r.URL.Query().Get("code")
	if code == "" {
		log.Error("auth callback without authorization code")
		s.redirectWithError(w, r, "Authorization code missing.")
		return
	}

	sessionID := s.sessionID(r)
	if sessionID == "" {
		sessionID = domain.SessionID(uuid.NewString())
	}

	if _, err := s.auth.CompleteLogin(ctx, sessionID, code); err != nil {
		s.redirectWithError(w, r, clientMessage(err))
		return
	}

	s.setSessionCookie(w, sessionID)
	http.Redirect(w, r, s.clientOrigin, http.StatusFound)
}

func (s *Server) handleAuthStatus(w http.ResponseWriter, r *http.Request) {
	session := s.auth.Lookup(s.sessionID(r))
	if !session.IsAuthenticated() {
		writeJSON(w, http.StatusOK, statusResponse{LoggedIn: false})
		return
	}

	writeJSON(w, http.StatusOK, statusResponse{
		LoggedIn: true,
		User: &userResponse{
			Name:    session.Profile.DisplayName,
			Email:   session.Profile.Email,
			Picture: session.Profile.AvatarURL,
		},
	})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if err := s.auth.Logout(r.Context(), s.sessionID(r)); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"message": "Could not log out.",
		})
		return
	}

	s.clearSessionCookie(w)
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Logged out successfully.",
	})
}

func (s *Server) handleSummarize(w http.ResponseWriter, r *http.Request) {
	session := s.auth.Lookup(s.sessionID(r))
	if !session.IsAuthenticated() {
		writeJSON(w, http.StatusUnauthorized, map[string]string{
			"message": "User not authenticated.",
		})
		return
	}

	var req summarizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"message": "Invalid JSON body.",
		})
		return
	}

	result, err := s.summarize.Summarize(r.Context(), session, domain.SummarizationRequest{
		ItemReference:  req.ItemReference,
		OutputLanguage: req.OutputLanguage,
		LengthMode:     domain.LengthMode(req.LengthMode),
	})
	if err != nil {
		writeJSON(w, statusForError(err), map[string]string{
			"message": clientMessage(err),
		})
		return
	}

	writeJSON(w, http.StatusOK, summarizeResponse{
		Success: true,
		Summary: result.SummaryText,
		Metadata: metadataResponse{
			ID:        string(result.Metadata.ID),
			Title:     result.Metadata.Title,
			Channel:   result.Metadata.Channel,
			ChannelID: result.Metadata.ChannelID,
			Thumbnail: result.Metadata.Thumbnail,
		},
	})
}

// ─────────────────────────────────────────────
// Session cookie helpers
// ─────────────────────────────────────────────

func (s *Server) sessionID(r *http.Request) domain.SessionID {
	c, err := r.Cookie(sessionCookieName)
	if err != nil {
		return ""
	}
	return domain.SessionID(c.Value)
}

func (s *Server) setSessionCookie(w http.ResponseWriter, id domain.SessionID) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    string(id),
		Path:     "/",
		MaxAge:   int(config.SessionTTL.Seconds()),
		HttpOnly: true,
		Secure:   true,
		// The front-end lives on another origin.
		SameSite: http.SameSiteNoneMode,
	})
}

func (s *Server) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
}

func (s *Server) redirectWithError(w http.ResponseWriter, r *http.Request, message string) {
	q := url.Values{}
	q.Set("error", "auth_failed")
	q.Set("message", message)
	http.Redirect(w, r, s.clientOrigin+"?"+q.Encode(), http.StatusFound)
}

// ─────────────────────────────────────────────
// Error mapping
// ─────────────────────────────────────────────

func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrBadRequest), errors.Is(err, domain.ErrInvalidReference):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// clientMessage maps an error to its sanitized client-facing message. The
// wrapped diagnostic detail stays in the server log.
func clientMessage(err error) string {
	for _, sentinel := range []error{
		domain.ErrUnauthenticated,
		domain.ErrBadRequest,
		domain.ErrInvalidReference,
		domain.ErrTranscriptUnavailable,
		domain.ErrMetadataNotFound,
		domain.ErrGenerationFailed,
		domain.ErrSessionPersistence,
		domain.ErrIdentityExchange,
	} {
		if errors.Is(err, sentinel) {
			return sentinel.Error()
		}
	}
	return "An internal server error occurred."
}

// ─────────────────────────────────────────────
// HTTP Helpers
// ─────────────────────────────────────────────

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
