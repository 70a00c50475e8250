package leaderboard

import (
	"hash/fnv"
	"strconv"
)

var placeholderNames = []string{
	"Mysterious Logger 🕵️‍♀️",
	"Anonymous Alpaca 🦙",
	"No-Name Ninja 🧤",
	"Nameless Narwhal 🐋",
	"Unknown Unicorn 🦄",
	"Froggy Ghost 🐸👻",
	"Secret Squirrel 🐿️",
	"Shadow Sloth 🦥",
}

// Pseudonym picks a placeholder for a user without a display name. The
// choice only depends on the user id, so it is the same on every render.
func Pseudonym(userID int64) string {
	h := fnv.New32a()
	_, _ = h.Write([]byte(strconv.FormatInt(userID, 10)))
	return placeholderNames[h.Sum32()%uint32(len(placeholderNames))]
}
