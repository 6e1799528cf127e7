package entity

import (
	"fmt"

	"github.com/google/uuid"
)

// InvalidChildID marks a token that does not belong to any renderer process.
const InvalidChildID = -1

// ContextToken identifies one browsing context (a document in a frame).
// It is stable for one document load and is only ever compared, never resolved
// by the permission core itself.
type ContextToken struct {
	ChildID int
	Frame   uuid.UUID
}

// NoContext is the token used for profile-wide operations such as pre-grants.
var NoContext = ContextToken{ChildID: InvalidChildID}

// NewContextToken creates a fresh token for a context hosted by childID.
func NewContextToken(childID int) ContextToken {
	return ContextToken{ChildID: childID, Frame: uuid.New()}
}

// ParseContextToken rebuilds a token from its serialized frame part.
// Returns NoContext when the serialized value cannot be parsed.
func ParseContextToken(childID int, serialized string) ContextToken {
	frame, err := uuid.Parse(serialized)
	if err != nil || frame == uuid.Nil {
		return NoContext
	}
	return ContextToken{ChildID: childID, Frame: frame}
}

// IsValid reports whether the token refers to a browsing context.
func (t ContextToken) IsValid() bool {
	return t.ChildID != InvalidChildID && t.Frame != uuid.Nil
}

// String returns the serialized form used in logs.
func (t ContextToken) String() string {
	if !t.IsValid() {
		return "none"
	}
	return fmt.Sprintf("%d:%s", t.ChildID, t.Frame)
}
