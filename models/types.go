package models

import "time"

// Correct answers are 1-indexed option slots
const (
	MinOption = 1
	MaxOption = 4
)

// Domain types

type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Password  string    `json:"-"` // Never expose in JSON
	CreatedAt time.Time `json:"createdAt"`
}

type Quiz struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"ownerId"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"createdAt"`
	IsPublic  bool      `json:"isPublic"`
}

type Question struct {
	QuizID         string  `json:"quizId"`
	Number         int     `json:"number"`
	Prompt         string  `json:"prompt"`
	Option1        string  `json:"option1"`
	Option2        string  `json:"option2"`
	Option3        string  `json:"option3"`
	Option4        string  `json:"option4"`
	CorrectOption  int     `json:"correctOption"`
	ImageAssetName *string `json:"imageAssetName"`
}

// Options returns the four option texts in slot order
func (q Question) Options() [4]string {
	return [4]string{q.Option1, q.Option2, q.Option3, q.Option4}
}

type QuizWithQuestions struct {
	Quiz      Quiz       `json:"quiz"`
	Questions []Question `json:"questions"`
}

// QuizSummary is one row of the browse and search listings
type QuizSummary struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	OwnerID       string    `json:"ownerId"`
	OwnerUsername string    `json:"ownerUsername"`
	IsPublic      bool      `json:"isPublic"`
	CreatedAt     time.Time `json:"createdAt"`
	QuestionCount int       `json:"questionCount"`
}

// Response types

type CreateQuizResponse struct {
	ID string `json:"id"`
}

type QuizListResponse struct {
	Quizzes []QuizSummary `json:"quizzes"`
}

type AssetListResponse struct {
	Assets []string `json:"assets"`
}

type AccountResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
