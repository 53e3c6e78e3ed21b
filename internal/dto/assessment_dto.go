package dto

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// QuizQuestion is one generated multiple-choice question. It is never stored
// standalone, only inside a generated quiz or an assessment's result list.
type QuizQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
}

// QuizPayload is the JSON shape the model is instructed to return for a quiz.
type QuizPayload struct {
	Questions []QuizQuestion `json:"questions"`
}

func (p *QuizPayload) Validate() error {
	if len(p.Questions) == 0 {
		return fmt.Errorf("questions is empty")
	}
	for i, q := range p.Questions {
		if q.Question == "" {
			return fmt.Errorf("questions[%d].question is empty", i)
		}
		if len(q.Options) != 4 {
			return fmt.Errorf("questions[%d] has %d options, want 4", i, len(q.Options))
		}
		found := false
		for _, opt := range q.Options {
			if opt == q.CorrectAnswer {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("questions[%d].correctAnswer is not among its options", i)
		}
	}
	return nil
}

// QuestionResult is one graded entry of an assessment, kept in submission
// order.
type QuestionResult struct {
	Question    string `json:"question"`
	Answer      string `json:"answer"` // the correct answer
	UserAnswer  string `json:"userAnswer"`
	IsCorrect   bool   `json:"isCorrect"`
	Explanation string `json:"explanation"`
}

type SaveQuizResultRequest struct {
	Questions []QuizQuestion `json:"questions"`
	Answers   []string       `json:"answers"`
	Score     float64        `json:"score"`
}

func (r *SaveQuizResultRequest) Validate() error {
	if len(r.Questions) == 0 {
		return fmt.Errorf("questions is empty")
	}
	if len(r.Answers) != len(r.Questions) {
		return fmt.Errorf("got %d answers for %d questions", len(r.Answers), len(r.Questions))
	}
	if r.Score < 0 || r.Score > 100 {
		return fmt.Errorf("score %.2f is out of range 0-100", r.Score)
	}
	return nil
}

type AssessmentDTO struct {
	ID             uuid.UUID        `json:"id"`
	UserID         uuid.UUID        `json:"user_id"`
	QuizScore      float64          `json:"quiz_score"`
	Questions      []QuestionResult `json:"questions"`
	Category       string           `json:"category"`
	ImprovementTip string           `json:"improvement_tip,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
}
