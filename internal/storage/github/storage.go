package github

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tvasilyev/rosterbook/internal/model"
	"github.com/tvasilyev/rosterbook/internal/storage"
)

// Storage persists the roster against a GitHub-contents-style document
// API. The full collection lives in one JSON document; every write is a
// read-modify-write conditioned on the revision token (sha) returned by
// the preceding read. A stale token surfaces as model.ErrRevisionConflict;
// there is no retry and no merge at this layer.
type Storage struct {
	cfg        Config
	httpClient *http.Client
}

// document is the JSON envelope stored in the remote file. The username
// shares the document because the remote medium persists a single path.
type document struct {
	Players  model.Roster `json:"players"`
	Username string       `json:"username,omitempty"`
}

// contentsResponse is the API's read payload
type contentsResponse struct {
	Content string `json:"content"`
	SHA     string `json:"sha"`
}

// contentsRequest is the API's write payload
type contentsRequest struct {
	Message string `json:"message"`
	Content string `json:"content"`
	SHA     string `json:"sha,omitempty"`
}

// New creates a remote document record store
func New(cfg Config) *Storage {
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultConfig().Timeout
	}
	return &Storage{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// NewWithClient creates a remote document store with an existing HTTP
// client (for testing)
func NewWithClient(cfg Config, client *http.Client) *Storage {
	s := New(cfg)
	s.httpClient = client
	return s
}

// Ensure Storage implements the interface
var _ storage.RecordStore = (*Storage)(nil)

func (s *Storage) LoadRoster(ctx context.Context) (model.Roster, error) {
	doc, _, err := s.fetch(ctx)
	if err != nil {
		return nil, err
	}
	if doc.Players == nil {
		return nil, model.ErrRosterNotFound
	}
	return doc.Players, nil
}

func (s *Storage) SaveRoster(ctx context.Context, roster model.Roster) error {
	doc, sha, err := s.fetch(ctx)
	if err != nil && !errors.Is(err, model.ErrRosterNotFound) {
		return err
	}
	doc.Players = roster
	return s.put(ctx, doc, sha)
}

func (s *Storage) LoadUsername(ctx context.Context) (string, error) {
	doc, _, err := s.fetch(ctx)
	if err != nil {
		return "", err
	}
	if doc.Username == "" {
		return "", model.ErrUsernameNotFound
	}
	return doc.Username, nil
}

func (s *Storage) SaveUsername(ctx context.Context, username string) error {
	doc, sha, err := s.fetch(ctx)
	if err != nil && !errors.Is(err, model.ErrRosterNotFound) {
		return err
	}
	doc.Username = username
	return s.put(ctx, doc, sha)
}

// fetch reads the current document and its revision token. A missing
// document returns model.ErrRosterNotFound with an empty sha, which put
// treats as a create.
func (s *Storage) fetch(ctx context.Context) (document, string, error) {
	// Cache-busting query parameter to defeat intermediary caching
	url := fmt.Sprintf("%s/%s?ts=%d", strings.TrimSuffix(s.cfg.APIURL, "/"), s.cfg.RepoPath, time.Now().UnixMilli())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return document{}, "", err
	}
	s.setHeaders(req)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return document{}, "", err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return document{}, "", model.ErrRosterNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return document{}, "", fmt.Errorf("document read failed: HTTP %d", resp.StatusCode)
	}

	var contents contentsResponse
	if err := json.NewDecoder(resp.Body).Decode(&contents); err != nil {
		return document{}, "", err
	}

	// The API wraps base64 content in newlines
	raw, err := base64.StdEncoding.DecodeString(strings.ReplaceAll(contents.Content, "\n", ""))
	if err != nil {
		return document{}, "", err
	}

	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return document{}, "", err
	}

	return doc, contents.SHA, nil
}

// put writes the document back, conditioned on the revision token from
// the read that produced it.
func (s *Storage) put(ctx context.Context, doc document, sha string) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	body, err := json.Marshal(contentsRequest{
		Message: fmt.Sprintf("rosterbook update %s", uuid.NewString()),
		Content: base64.StdEncoding.EncodeToString(raw),
		SHA:     sha,
	})
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/%s", strings.TrimSuffix(s.cfg.APIURL, "/"), s.cfg.RepoPath)
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	s.setHeaders(req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusConflict || resp.StatusCode == http.StatusPreconditionFailed:
		return model.ErrRevisionConflict
	case resp.StatusCode >= 400:
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("document write failed: HTTP %d: %s", resp.StatusCode, string(msg))
	}

	return nil
}

func (s *Storage) setHeaders(req *http.Request) {
	req.Header.Set("Accept", "application/vnd.github+json")
	if s.cfg.Token != "" {
		req.Header.Set("Authorization", "Bearer "+s.cfg.Token)
	}
}
