// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package access

import (
	"testing"

	"github.com/danielhkuo/globoquiz/models"
)

func TestCanRead(t *testing.T) {
	tests := []struct {
		name      string
		requester string
		quiz      models.Quiz
		want      bool
	}{
		{"anonymous reads public", "", models.Quiz{OwnerID: "5", IsPublic: true}, true},
		{"anonymous cannot read private", "", models.Quiz{OwnerID: "5", IsPublic: false}, false},
		{"owner reads own private", "5", models.Quiz{OwnerID: "5", IsPublic: false}, true},
		{"other user cannot read private", "6", models.Quiz{OwnerID: "5", IsPublic: false}, false},
		{"other user reads public", "6", models.Quiz{OwnerID: "5", IsPublic: true}, true},
		{"anonymous never matches empty owner", "", models.Quiz{OwnerID: "", IsPublic: false}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanRead(tt.requester, tt.quiz); got != tt.want {
				t.Errorf("CanRead(%q, %+v) = %v, want %v", tt.requester, tt.quiz, got, tt.want)
			}
		})
	}
}

func TestCanWrite(t *testing.T) {
	tests := []struct {
		name      string
		requester string
		action    Action
		want      bool
	}{
		{"anonymous create", "", ActionCreateQuiz, false},
		{"anonymous unknown action", "", Action("delete_everything"), false},
		{"user create", "5", ActionCreateQuiz, true},
		{"user unknown action", "5", Action("delete_everything"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanWrite(tt.requester, tt.action); got != tt.want {
				t.Errorf("CanWrite(%q, %q) = %v, want %v", tt.requester, tt.action, got, tt.want)
			}
		})
	}
}

func TestVisibleSQL(t *testing.T) {
	got := VisibleSQL("q.is_public", "q.owner_id", "$1")
	want := "(q.is_public = TRUE OR q.owner_id = $1)"
	if got != want {
		t.Errorf("VisibleSQL() = %q, want %q", got, want)
	}
}
