package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/tvasilyev/rosterbook/internal/api/apierr"
	"github.com/tvasilyev/rosterbook/internal/api/request"
	"github.com/tvasilyev/rosterbook/internal/api/response"
	"github.com/tvasilyev/rosterbook/internal/model"
	"github.com/tvasilyev/rosterbook/internal/services/roster"
)

// RosterHandler handles roster endpoints
type RosterHandler struct {
	manager *roster.Manager
}

// NewRosterHandler creates a new roster handler
func NewRosterHandler(manager *roster.Manager) *RosterHandler {
	return &RosterHandler{
		manager: manager,
	}
}

// List handles GET /api/v1/roster
// Query parameters: query (substring), field (id|nickname), sort (insertion|comments)
func (h *RosterHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	field := roster.SearchField(q.Get("field"))
	if q.Get("field") == "" {
		field = roster.FieldNickname
	}
	order := roster.SortOrder(q.Get("sort"))
	if q.Get("sort") == "" {
		order = roster.SortInsertion
	}

	players, err := h.manager.FilterAndSort(q.Get("query"), field, order)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.RosterFromModel(players))
}

// AddPlayer handles POST /api/v1/roster/players
func (h *RosterHandler) AddPlayer(w http.ResponseWriter, r *http.Request) {
	var req request.AddPlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	player, err := h.manager.AddPlayer(r.Context(), model.PlayerID(req.ID), req.Nickname, req.Avatar, req.Comment)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.PlayerFromModel(&player))
}

// AddComment handles POST /api/v1/roster/players/{id}/comments
func (h *RosterHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	playerID := model.PlayerID(mux.Vars(r)["id"])

	var req request.AddCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	comment, err := h.manager.AddComment(r.Context(), playerID, req.Text, req.Author)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.CommentFromModel(comment))
}

// DeleteComment handles DELETE /api/v1/roster/players/{id}/comments/{comment_id}
func (h *RosterHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	playerID := model.PlayerID(vars["id"])

	commentID, err := strconv.ParseInt(vars["comment_id"], 10, 64)
	if err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("comment_id must be an integer"))
		return
	}

	if err := h.manager.DeleteComment(r.Context(), playerID, model.CommentID(commentID)); err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// GetUsername handles GET /api/v1/username
func (h *RosterHandler) GetUsername(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.Username{Username: h.manager.Username()})
}

// SetUsername handles PUT /api/v1/username
func (h *RosterHandler) SetUsername(w http.ResponseWriter, r *http.Request) {
	var req request.SetUsernameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	if err := h.manager.SetUsername(r.Context(), req.Username); err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.Username{Username: h.manager.Username()})
}
