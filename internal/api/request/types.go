package request

// AddPlayerRequest is the body for POST /api/v1/roster/players
type AddPlayerRequest struct {
	ID       string `json:"id"`
	Nickname string `json:"nickname"`
	Avatar   string `json:"avatar,omitempty"`
	Comment  string `json:"comment,omitempty"`
}

// AddCommentRequest is the body for POST /api/v1/roster/players/{id}/comments
type AddCommentRequest struct {
	Text   string `json:"text"`
	Author string `json:"author"`
}

// SetUsernameRequest is the body for PUT /api/v1/username
type SetUsernameRequest struct {
	Username string `json:"username"`
}
