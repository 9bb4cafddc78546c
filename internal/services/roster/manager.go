package roster

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/tvasilyev/rosterbook/internal/dependencies/clock"
	"github.com/tvasilyev/rosterbook/internal/dependencies/random"
	"github.com/tvasilyev/rosterbook/internal/model"
	"github.com/tvasilyev/rosterbook/internal/storage"
)

// SearchField selects which player field a query matches against
type SearchField string

// SortOrder selects how query results are ordered
type SortOrder string

const (
	FieldID       SearchField = "id"
	FieldNickname SearchField = "nickname"

	// SortInsertion keeps players in roster order
	SortInsertion SortOrder = "insertion"
	// SortComments orders players by descending visible-comment count,
	// ties keeping roster order
	SortComments SortOrder = "comments"
)

// commentIDRandomRange bounds the random disambiguator appended to the
// millisecond timestamp when generating comment IDs.
const commentIDRandomRange = 1000

// Manager owns the canonical in-memory roster and the current username.
// Every mutation applies to memory first and then persists through the
// record store; a failed persist is reported to the caller but never
// rolls back the in-memory change.
type Manager struct {
	store  storage.RecordStore
	clock  clock.Clock
	random random.Random
	logger *slog.Logger

	mu       sync.RWMutex
	roster   model.Roster
	username string
	ready    bool
}

// New creates a roster manager. Call Load before using it.
func New(store storage.RecordStore, clk clock.Clock, rnd random.Random, logger *slog.Logger) *Manager {
	return &Manager{
		store:  store,
		clock:  clk,
		random: rnd,
		logger: logger,
	}
}

// Load hydrates the roster and username from the record store. Read
// failures are non-fatal: the manager falls back to the seed roster and
// default username, logs the error, and reports ready. When the store is
// cleanly empty the seed is persisted as a side effect so the next load
// finds it.
func (m *Manager) Load(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.ready {
		return nil
	}

	roster, err := m.store.LoadRoster(ctx)
	switch {
	case err == nil:
		m.roster = roster
	case errors.Is(err, model.ErrRosterNotFound):
		m.roster = model.SeedRoster()
		if saveErr := m.store.SaveRoster(ctx, m.roster); saveErr != nil {
			m.logger.Warn("could not persist seed roster", slog.String("error", saveErr.Error()))
		}
	default:
		m.logger.Warn("roster load failed, using seed data", slog.String("error", err.Error()))
		m.roster = model.SeedRoster()
	}

	username, err := m.store.LoadUsername(ctx)
	if err != nil {
		if !errors.Is(err, model.ErrUsernameNotFound) {
			m.logger.Warn("username load failed, using default", slog.String("error", err.Error()))
		}
		username = model.DefaultUsername
	}
	m.username = username

	m.ready = true
	return nil
}

// Ready reports whether Load has completed. Once ready the manager never
// reverts.
func (m *Manager) Ready() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.ready
}

// Username returns the current username
func (m *Manager) Username() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.username
}

// Players returns a snapshot of the roster in insertion order
func (m *Manager) Players() model.Roster {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.roster.Clone()
}

// AddPlayer appends a new player to the roster. A non-empty
// initialComment becomes the player's first comment, authored by the
// current username. The player stays in memory even when the persist
// fails; the returned error then reports the persist failure.
func (m *Manager) AddPlayer(ctx context.Context, id model.PlayerID, nickname, avatar, initialComment string) (model.Player, error) {
	if id == "" {
		return model.Player{}, model.NewValidationError("id")
	}
	if nickname == "" {
		return model.Player{}, model.NewValidationError("nickname")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.roster.FindPlayer(id) >= 0 {
		return model.Player{}, model.ErrPlayerExists
	}

	now := m.clock.Now()
	player := model.Player{
		ID:        id,
		Nickname:  nickname,
		Avatar:    avatar,
		Comments:  []model.Comment{},
		CreatedAt: now,
	}

	if initialComment != "" {
		player.Comments = append(player.Comments, model.Comment{
			ID:        m.newCommentID(),
			Text:      initialComment,
			Author:    m.username,
			CreatedAt: now,
		})
	}

	m.roster = append(m.roster, player)

	return player, m.persistRoster(ctx)
}

// AddComment appends a comment to the identified player and makes author
// the current username. Returns model.ErrPlayerNotFound when the target
// is missing rather than silently doing nothing.
func (m *Manager) AddComment(ctx context.Context, playerID model.PlayerID, text, author string) (model.Comment, error) {
	if text == "" {
		return model.Comment{}, model.NewValidationError("text")
	}
	if author == "" {
		return model.Comment{}, model.NewValidationError("author")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	idx := m.roster.FindPlayer(playerID)
	if idx < 0 {
		return model.Comment{}, model.ErrPlayerNotFound
	}

	comment := model.Comment{
		ID:        m.newCommentID(),
		Text:      text,
		Author:    author,
		CreatedAt: m.clock.Now(),
	}
	m.roster[idx].Comments = append(m.roster[idx].Comments, comment)

	// The comment author becomes the session's current username.
	// Username persistence is best-effort, logged only.
	if author != m.username {
		m.username = author
		if err := m.store.SaveUsername(ctx, author); err != nil {
			m.logger.Warn("could not persist username", slog.String("error", err.Error()))
		}
	}

	return comment, m.persistRoster(ctx)
}

// DeleteComment removes a comment by identity. Returns
// model.ErrPlayerNotFound or model.ErrCommentNotFound when the target is
// missing.
func (m *Manager) DeleteComment(ctx context.Context, playerID model.PlayerID, commentID model.CommentID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	idx := m.roster.FindPlayer(playerID)
	if idx < 0 {
		return model.ErrPlayerNotFound
	}

	comments := m.roster[idx].Comments
	for i := range comments {
		if comments[i].ID == commentID {
			m.roster[idx].Comments = append(comments[:i:i], comments[i+1:]...)
			return m.persistRoster(ctx)
		}
	}

	return model.ErrCommentNotFound
}

// SetUsername updates the current username and persists it independently
// of the roster. Persistence failure is logged and swallowed.
func (m *Manager) SetUsername(ctx context.Context, username string) error {
	if username == "" {
		return model.NewValidationError("username")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.username = username
	if err := m.store.SaveUsername(ctx, username); err != nil {
		m.logger.Warn("could not persist username", slog.String("error", err.Error()))
	}
	return nil
}

// FilterAndSort returns the players whose selected field contains query
// as a case-insensitive substring, ordered by the given criterion. It is
// a pure derivation over a snapshot and never mutates state.
func (m *Manager) FilterAndSort(query string, field SearchField, order SortOrder) (model.Roster, error) {
	switch field {
	case FieldID, FieldNickname:
	default:
		return nil, model.NewValidationError("field")
	}
	switch order {
	case SortInsertion, SortComments:
	default:
		return nil, model.NewValidationError("sort")
	}

	m.mu.RLock()
	snapshot := m.roster.Clone()
	m.mu.RUnlock()

	needle := strings.ToLower(query)
	result := make(model.Roster, 0, len(snapshot))
	for _, p := range snapshot {
		haystack := string(p.ID)
		if field == FieldNickname {
			haystack = p.Nickname
		}
		if needle == "" || strings.Contains(strings.ToLower(haystack), needle) {
			result = append(result, p)
		}
	}

	if order == SortComments {
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].VisibleCommentCount() > result[j].VisibleCommentCount()
		})
	}

	return result, nil
}

// persistRoster writes the full roster. Callers must hold the lock.
// The in-memory state is already updated; an error here means memory and
// storage have diverged, which the caller may surface for an explicit
// reload-and-retry.
func (m *Manager) persistRoster(ctx context.Context) error {
	if err := m.store.SaveRoster(ctx, m.roster); err != nil {
		m.logger.Error("roster persist failed", slog.String("error", err.Error()))
		return err
	}
	return nil
}

// newCommentID derives an ID from the clock plus a random disambiguator
func (m *Manager) newCommentID() model.CommentID {
	return model.CommentID(m.clock.Now().UnixMilli()*commentIDRandomRange + int64(m.random.Intn(commentIDRandomRange)))
}
