package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/tvasilyev/rosterbook/internal/api/apierr"
	"github.com/tvasilyev/rosterbook/internal/api/request"
	"github.com/tvasilyev/rosterbook/internal/api/response"
	"github.com/tvasilyev/rosterbook/internal/dependencies/mocks"
	"github.com/tvasilyev/rosterbook/internal/model"
	"github.com/tvasilyev/rosterbook/internal/services/roster"
	"github.com/tvasilyev/rosterbook/internal/storage/memory"
	"github.com/tvasilyev/rosterbook/internal/testutil"
)

type APISuite struct {
	suite.Suite
	storage *memory.Storage
	manager *roster.Manager
	server  *httptest.Server
}

func TestAPISuite(t *testing.T) {
	suite.Run(t, new(APISuite))
}

func (s *APISuite) SetupTest() {
	s.storage = memory.New()
	clk := mocks.NewMockClock(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))
	s.manager = roster.New(s.storage, clk, mocks.NewMockRandom(), testutil.NopLogger())

	router := NewRouter(RouterConfig{
		Logger:        testutil.NopLogger(),
		RosterManager: s.manager,
	})
	s.server = httptest.NewServer(router)
}

func (s *APISuite) TearDownTest() {
	s.server.Close()
}

// seed hydrates the manager from the given roster
func (s *APISuite) seed(roster model.Roster) {
	s.Require().NoError(s.storage.SaveRoster(context.Background(), roster))
	s.Require().NoError(s.manager.Load(context.Background()))
}

func (s *APISuite) do(method, path string, body any) *http.Response {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequest(method, s.server.URL+path, reader)
	s.Require().NoError(err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.server.Client().Do(req)
	s.Require().NoError(err)
	return resp
}

func (s *APISuite) decode(resp *http.Response, out any) {
	defer func() { _ = resp.Body.Close() }()
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(out))
}

func (s *APISuite) decodeError(resp *http.Response) apierr.ErrorResponse {
	var errResp apierr.ErrorResponse
	s.decode(resp, &errResp)
	return errResp
}

func (s *APISuite) TestHealth() {
	resp := s.do(http.MethodGet, "/api/v1/health", nil)
	s.Equal(http.StatusOK, resp.StatusCode)

	var body map[string]string
	s.decode(resp, &body)
	s.Equal("ok", body["status"])
}

func (s *APISuite) TestListRoster() {
	s.seed(model.Roster{
		{ID: "1", Nickname: "PlayerOne", Comments: []model.Comment{{ID: 1, Text: "gg", Author: "x"}}},
		{ID: "2", Nickname: "NoobMaster", Comments: []model.Comment{}},
	})

	resp := s.do(http.MethodGet, "/api/v1/roster", nil)
	s.Equal(http.StatusOK, resp.StatusCode)

	var body response.Roster
	s.decode(resp, &body)
	s.Require().Len(body.Players, 2)
	s.Equal("PlayerOne", body.Players[0].Nickname)
	s.Equal(1, body.Players[0].CommentCount)
	s.Equal(model.DefaultAvatar, body.Players[0].Avatar)
}

func (s *APISuite) TestListRosterFiltered() {
	s.seed(model.Roster{
		{ID: "1", Nickname: "PlayerOne", Comments: []model.Comment{}},
		{ID: "2", Nickname: "NoobMaster", Comments: []model.Comment{}},
	})

	resp := s.do(http.MethodGet, "/api/v1/roster?query=noob&field=nickname", nil)
	s.Equal(http.StatusOK, resp.StatusCode)

	var body response.Roster
	s.decode(resp, &body)
	s.Require().Len(body.Players, 1)
	s.Equal("NoobMaster", body.Players[0].Nickname)
}

func (s *APISuite) TestListRosterSortedByComments() {
	s.seed(model.Roster{
		{ID: "1", Nickname: "Quiet", Comments: []model.Comment{}},
		{ID: "2", Nickname: "Loud", Comments: []model.Comment{
			{ID: 1, Text: "a", Author: "x"},
			{ID: 2, Text: "b", Author: "x"},
		}},
	})

	resp := s.do(http.MethodGet, "/api/v1/roster?sort=comments", nil)
	s.Equal(http.StatusOK, resp.StatusCode)

	var body response.Roster
	s.decode(resp, &body)
	s.Require().Len(body.Players, 2)
	s.Equal("Loud", body.Players[0].Nickname)
}

func (s *APISuite) TestListRosterHidesHiddenComments() {
	s.seed(model.Roster{
		{ID: "1", Nickname: "PlayerOne", Comments: []model.Comment{
			{ID: 1, Text: "visible", Author: "x"},
			{ID: 2, Text: "flagged", Author: "x", Hidden: true},
		}},
	})

	resp := s.do(http.MethodGet, "/api/v1/roster", nil)
	s.Equal(http.StatusOK, resp.StatusCode)

	var body response.Roster
	s.decode(resp, &body)
	s.Require().Len(body.Players[0].Comments, 1)
	s.Equal("visible", body.Players[0].Comments[0].Text)
	s.Equal(1, body.Players[0].CommentCount)
}

func (s *APISuite) TestListRosterInvalidField() {
	s.seed(model.Roster{})

	resp := s.do(http.MethodGet, "/api/v1/roster?field=avatar", nil)
	s.Equal(http.StatusBadRequest, resp.StatusCode)
	s.Equal(apierr.CodeInvalidRequest, s.decodeError(resp).Error.Code)
}

func (s *APISuite) TestAddPlayer() {
	s.seed(model.Roster{})

	resp := s.do(http.MethodPost, "/api/v1/roster/players", request.AddPlayerRequest{
		ID:       "42",
		Nickname: "Smurf",
		Comment:  "fresh blood",
	})
	s.Equal(http.StatusCreated, resp.StatusCode)

	var body response.Player
	s.decode(resp, &body)
	s.Equal("42", body.ID)
	s.Equal("Smurf", body.Nickname)
	s.Require().Len(body.Comments, 1)
	s.Equal("fresh blood", body.Comments[0].Text)
	s.Equal(model.DefaultUsername, body.Comments[0].Author)
}

func (s *APISuite) TestAddPlayerValidation() {
	s.seed(model.Roster{})

	resp := s.do(http.MethodPost, "/api/v1/roster/players", request.AddPlayerRequest{
		Nickname: "Smurf",
	})
	s.Equal(http.StatusBadRequest, resp.StatusCode)
	s.Equal(apierr.CodeInvalidRequest, s.decodeError(resp).Error.Code)
}

func (s *APISuite) TestAddPlayerDuplicate() {
	s.seed(model.Roster{{ID: "42", Nickname: "First", Comments: []model.Comment{}}})

	resp := s.do(http.MethodPost, "/api/v1/roster/players", request.AddPlayerRequest{
		ID:       "42",
		Nickname: "Second",
	})
	s.Equal(http.StatusConflict, resp.StatusCode)
	s.Equal(apierr.CodePlayerExists, s.decodeError(resp).Error.Code)
}

func (s *APISuite) TestAddPlayerBadBody() {
	s.seed(model.Roster{})

	req, err := http.NewRequest(http.MethodPost, s.server.URL+"/api/v1/roster/players", bytes.NewReader([]byte("{nope")))
	s.Require().NoError(err)
	resp, err := s.server.Client().Do(req)
	s.Require().NoError(err)

	s.Equal(http.StatusBadRequest, resp.StatusCode)
	s.Equal(apierr.CodeInvalidRequest, s.decodeError(resp).Error.Code)
}

func (s *APISuite) TestAddComment() {
	s.seed(model.Roster{{ID: "1", Nickname: "PlayerOne", Comments: []model.Comment{}}})

	resp := s.do(http.MethodPost, "/api/v1/roster/players/1/comments", request.AddCommentRequest{
		Text:   "nice clutch",
		Author: "alice",
	})
	s.Equal(http.StatusCreated, resp.StatusCode)

	var body response.Comment
	s.decode(resp, &body)
	s.Equal("nice clutch", body.Text)
	s.Equal("alice", body.Author)

	// Commenting switches the current username to the author
	resp = s.do(http.MethodGet, "/api/v1/username", nil)
	var username response.Username
	s.decode(resp, &username)
	s.Equal("alice", username.Username)
}

func (s *APISuite) TestAddCommentPlayerNotFound() {
	s.seed(model.Roster{})

	resp := s.do(http.MethodPost, "/api/v1/roster/players/ghost/comments", request.AddCommentRequest{
		Text:   "hello",
		Author: "alice",
	})
	s.Equal(http.StatusNotFound, resp.StatusCode)
	s.Equal(apierr.CodePlayerNotFound, s.decodeError(resp).Error.Code)
}

func (s *APISuite) TestDeleteComment() {
	s.seed(model.Roster{{ID: "1", Nickname: "PlayerOne", Comments: []model.Comment{
		{ID: 77, Text: "bye", Author: "x"},
	}}})

	resp := s.do(http.MethodDelete, "/api/v1/roster/players/1/comments/77", nil)
	s.Equal(http.StatusNoContent, resp.StatusCode)
	_ = resp.Body.Close()

	resp = s.do(http.MethodGet, "/api/v1/roster", nil)
	var body response.Roster
	s.decode(resp, &body)
	s.Empty(body.Players[0].Comments)
}

func (s *APISuite) TestDeleteCommentNotFound() {
	s.seed(model.Roster{{ID: "1", Nickname: "PlayerOne", Comments: []model.Comment{}}})

	resp := s.do(http.MethodDelete, "/api/v1/roster/players/1/comments/12345", nil)
	s.Equal(http.StatusNotFound, resp.StatusCode)
	s.Equal(apierr.CodeCommentNotFound, s.decodeError(resp).Error.Code)
}

func (s *APISuite) TestDeleteCommentBadID() {
	s.seed(model.Roster{{ID: "1", Nickname: "PlayerOne", Comments: []model.Comment{}}})

	resp := s.do(http.MethodDelete, "/api/v1/roster/players/1/comments/notanumber", nil)
	s.Equal(http.StatusBadRequest, resp.StatusCode)
	s.Equal(apierr.CodeInvalidRequest, s.decodeError(resp).Error.Code)
}

func (s *APISuite) TestUsernameRoundTrip() {
	s.seed(model.Roster{})

	resp := s.do(http.MethodGet, "/api/v1/username", nil)
	s.Equal(http.StatusOK, resp.StatusCode)
	var username response.Username
	s.decode(resp, &username)
	s.Equal(model.DefaultUsername, username.Username)

	resp = s.do(http.MethodPut, "/api/v1/username", request.SetUsernameRequest{Username: "carol"})
	s.Equal(http.StatusOK, resp.StatusCode)
	s.decode(resp, &username)
	s.Equal("carol", username.Username)

	resp = s.do(http.MethodGet, "/api/v1/username", nil)
	s.decode(resp, &username)
	s.Equal("carol", username.Username)
}

func (s *APISuite) TestSetUsernameValidation() {
	s.seed(model.Roster{})

	resp := s.do(http.MethodPut, "/api/v1/username", request.SetUsernameRequest{})
	s.Equal(http.StatusBadRequest, resp.StatusCode)
	s.Equal(apierr.CodeInvalidRequest, s.decodeError(resp).Error.Code)
}

func (s *APISuite) TestRequestIDHeader() {
	s.seed(model.Roster{})

	resp := s.do(http.MethodGet, "/api/v1/health", nil)
	_ = resp.Body.Close()
	s.NotEmpty(resp.Header.Get("X-Request-Id"))
}

func (s *APISuite) TestDeletePersistsAcrossReload() {
	s.seed(model.Roster{{ID: "1", Nickname: "PlayerOne", Comments: []model.Comment{
		{ID: 77, Text: "bye", Author: "x"},
	}}})

	resp := s.do(http.MethodDelete, "/api/v1/roster/players/1/comments/77", nil)
	s.Equal(http.StatusNoContent, resp.StatusCode)
	_ = resp.Body.Close()

	persisted, err := s.storage.LoadRoster(context.Background())
	s.Require().NoError(err)
	s.Empty(persisted[0].Comments)
}
