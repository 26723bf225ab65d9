// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package access holds the single visibility and ownership rule for quizzes.

# Reads

A quiz is readable when it is public, or when the requester owns it:

	if !access.CanRead(userID, quiz) {
		// respond exactly as if the quiz did not exist
	}

The same rule is pushed into list and search queries with VisibleSQL:

	where := access.VisibleSQL("q.is_public", "q.owner_id", "$1")
	// (q.is_public = TRUE OR q.owner_id = $1)

# Writes

Writes require an authenticated requester:

	if !access.CanWrite(userID, access.ActionCreateQuiz) {
		return access.ErrDenied
	}

The owner of a created quiz is always the requester, never a client value.
*/
package access
