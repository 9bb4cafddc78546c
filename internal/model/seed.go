package model

import "time"

// SeedRoster returns the built-in fallback roster used when no persisted
// data is reachable. Returned fresh on each call so callers can mutate it.
func SeedRoster() Roster {
	created := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	return Roster{
		{
			ID:       "123",
			Nickname: "PlayerOne",
			Avatar:   "/static/avatars/player-one.png",
			Comments: []Comment{
				{ID: 1709251200000000, Text: "Solid player", Author: DefaultUsername, CreatedAt: created},
				{ID: 1709251200000001, Text: "A bit toxic in ranked", Author: DefaultUsername, CreatedAt: created},
			},
			CreatedAt: created,
		},
		{
			ID:        "456",
			Nickname:  "NoobMaster",
			Avatar:    "https://via.placeholder.com/50",
			Comments:  []Comment{},
			CreatedAt: created,
		},
		{
			ID:       "789",
			Nickname: "MegaPro",
			Avatar:   "https://via.placeholder.com/50",
			Comments: []Comment{
				{ID: 1709251200000002, Text: "Godlike support", Author: DefaultUsername, CreatedAt: created},
			},
			CreatedAt: created,
		},
	}
}
