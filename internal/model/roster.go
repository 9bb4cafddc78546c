package model

import "time"

// PlayerID uniquely identifies a player in the roster.
// IDs are externally sourced and treated as opaque.
type PlayerID string

// CommentID identifies a comment within a player's comment list.
// Generated from a millisecond timestamp plus a random disambiguator,
// so collisions between near-simultaneous comments are negligible.
type CommentID int64

// DefaultAvatar is served when a player has no avatar set.
const DefaultAvatar = "/static/default-avatar.png"

// DefaultUsername is the author attributed to comments when no
// username has been stored.
const DefaultUsername = "anonymous"

// Comment is a free-text note attached to a player.
type Comment struct {
	ID        CommentID `json:"id"`
	Text      string    `json:"text"`
	Author    string    `json:"author"`
	Hidden    bool      `json:"hidden"`
	CreatedAt time.Time `json:"created_at"`
}

// Player is a single roster record
type Player struct {
	ID        PlayerID  `json:"id"`
	Nickname  string    `json:"nickname"`
	Avatar    string    `json:"avatar,omitempty"`
	Comments  []Comment `json:"comments"`
	CreatedAt time.Time `json:"created_at"`
}

// Roster is the full ordered collection of players.
type Roster []Player

// AvatarOrDefault returns the player's avatar, falling back to
// DefaultAvatar when none is set.
func (p *Player) AvatarOrDefault() string {
	if p.Avatar == "" {
		return DefaultAvatar
	}
	return p.Avatar
}

// VisibleComments returns the player's comments excluding hidden ones,
// preserving insertion order.
func (p *Player) VisibleComments() []Comment {
	visible := make([]Comment, 0, len(p.Comments))
	for _, c := range p.Comments {
		if !c.Hidden {
			visible = append(visible, c)
		}
	}
	return visible
}

// VisibleCommentCount is the single comment-count quantity used for both
// display and the comment-count sort.
func (p *Player) VisibleCommentCount() int {
	count := 0
	for _, c := range p.Comments {
		if !c.Hidden {
			count++
		}
	}
	return count
}

// FindPlayer returns the index of the player with the given ID, or -1.
func (r Roster) FindPlayer(id PlayerID) int {
	for i := range r {
		if r[i].ID == id {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy of the roster. Mutations on the copy do not
// affect the original.
func (r Roster) Clone() Roster {
	if r == nil {
		return nil
	}
	out := make(Roster, len(r))
	for i := range r {
		out[i] = r[i]
		out[i].Comments = make([]Comment, len(r[i].Comments))
		copy(out[i].Comments, r[i].Comments)
	}
	return out
}
