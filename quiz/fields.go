// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package quiz

import (
	"net/url"
	"strconv"
)

// Form keys of the quiz authoring form
const (
	KeyTitle  = "quiz-title"
	KeyPublic = "quiz-public"
)

// Question group slots, used as question-<n>-<slot>
const (
	SlotPrompt = "prompt"
	SlotAnswer = "answer"
	SlotFlag   = "flag"
)

// Fields is one submitted form, flattened to a single value per key
type Fields map[string]string

// FieldsFromForm keeps the first value of every key
func FieldsFromForm(form url.Values) Fields {
	fields := make(Fields, len(form))
	for key, values := range form {
		if len(values) > 0 {
			fields[key] = values[0]
		}
	}
	return fields
}

// Lookup reports the value of key and whether the key was submitted at all
func (f Fields) Lookup(key string) (string, bool) {
	v, ok := f[key]
	return v, ok
}

// QuestionKey builds the form key for slot of question group n
func QuestionKey(n int, slot string) string {
	return "question-" + strconv.Itoa(n) + "-" + slot
}

// OptionSlot returns the slot name of option i (1-4)
func OptionSlot(i int) string {
	return "option-" + strconv.Itoa(i)
}
