package response

import (
	"time"

	"github.com/tvasilyev/rosterbook/internal/model"
)

// Comment represents a comment in API responses; hidden comments are
// never included
type Comment struct {
	ID        int64     `json:"id"`
	Text      string    `json:"text"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"created_at"`
}

// CommentFromModel converts a model.Comment to a response Comment
func CommentFromModel(c model.Comment) Comment {
	return Comment{
		ID:        int64(c.ID),
		Text:      c.Text,
		Author:    c.Author,
		CreatedAt: c.CreatedAt,
	}
}

// Player represents a roster record in API responses
type Player struct {
	ID           string    `json:"id"`
	Nickname     string    `json:"nickname"`
	Avatar       string    `json:"avatar"`
	Comments     []Comment `json:"comments"`
	CommentCount int       `json:"comment_count"`
}

// PlayerFromModel converts a model.Player to a response Player. Only
// visible comments appear, and the avatar falls back to the default.
func PlayerFromModel(p *model.Player) Player {
	visible := p.VisibleComments()
	comments := make([]Comment, len(visible))
	for i, c := range visible {
		comments[i] = CommentFromModel(c)
	}
	return Player{
		ID:           string(p.ID),
		Nickname:     p.Nickname,
		Avatar:       p.AvatarOrDefault(),
		Comments:     comments,
		CommentCount: len(visible),
	}
}

// Roster is the player list response
type Roster struct {
	Players []Player `json:"players"`
}

// RosterFromModel converts a model.Roster
func RosterFromModel(r model.Roster) Roster {
	players := make([]Player, len(r))
	for i := range r {
		players[i] = PlayerFromModel(&r[i])
	}
	return Roster{Players: players}
}

// Username is the current-username response
type Username struct {
	Username string `json:"username"`
}
