package redis

import "fmt"

// Key prefix for all roster data
const keyPrefix = "rosterbook"

// rosterKey returns the Redis key holding the full roster document
func rosterKey() string {
	return fmt.Sprintf("%s:roster", keyPrefix)
}

// usernameKey returns the Redis key holding the current username
func usernameKey() string {
	return fmt.Sprintf("%s:username", keyPrefix)
}
