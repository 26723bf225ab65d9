// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package access

import (
	"errors"
	"fmt"

	"github.com/danielhkuo/globoquiz/models"
)

// ErrDenied is returned when a requester may not perform a write
var ErrDenied = errors.New("access denied")

// Action names a write operation checked by CanWrite
type Action string

const (
	ActionCreateQuiz Action = "create_quiz"
)

// CanRead reports whether requesterID may read q.
// An empty requesterID is an anonymous session.
func CanRead(requesterID string, q models.Quiz) bool {
	return q.IsPublic || (requesterID != "" && requesterID == q.OwnerID)
}

// CanWrite reports whether requesterID may perform action.
// Anonymous sessions never write.
func CanWrite(requesterID string, action Action) bool {
	if requesterID == "" {
		return false
	}
	switch action {
	case ActionCreateQuiz:
		return true
	}
	return false
}

// VisibleSQL renders the CanRead rule as a SQL predicate over the given
// columns. param is the placeholder bound to the requester ID; binding ""
// for anonymous sessions never matches an owner since IDs are non-empty.
func VisibleSQL(publicCol, ownerCol, param string) string {
	return fmt.Sprintf("(%s = TRUE OR %s = %s)", publicCol, ownerCol, param)
}
