package redis

import "fmt"

// stateKey returns the Redis key for the current game
func stateKey(prefix string) string {
	return fmt.Sprintf("%s:state", prefix)
}
