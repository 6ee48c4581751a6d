package utils

import (
	"math/rand"
	"strconv"
	"time"
)

// NewAccessToken builds an opaque tracking token from the current time and a
// random fragment, both base36. Tokens are not credentials and uniqueness is
// not guaranteed: there is no collision check, which is acceptable for a
// string that only tags the guide link and the CRM note.
func NewAccessToken() string {
	ts := strconv.FormatInt(time.Now().UnixMilli(), 36)
	frag := strconv.FormatInt(rand.Int63(), 36)
	return ts + "-" + frag
}
