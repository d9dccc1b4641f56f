// File: internal/services/chat/session.go
package chat

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewSessionID mints an opaque session identifier of the form
// session_<unixmillis>_<random>. Sessions are created implicitly on the
// first message of a conversation and never explicitly closed.
func NewSessionID() string {
	random := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return fmt.Sprintf("session_%d_%s", time.Now().UnixMilli(), random)
}
