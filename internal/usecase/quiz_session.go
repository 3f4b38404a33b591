package usecase

import (
	"strings"

	"github.com/chatman-insurance/funnel-api/internal/entity"
)

// QuizQuestion describes one quiz step. Only question 1 is multi-select.
type QuizQuestion struct {
	ID          int
	Question    string
	Subtitle    string
	MultiSelect bool
	Options     []QuizOption
}

type QuizOption struct {
	Label string
	Value string
}

func QuizQuestions() []QuizQuestion {
	return []QuizQuestion{
		{
			ID: 1, Question: "What do you need to protect?", Subtitle: "Select all that apply", MultiSelect: true,
			Options: []QuizOption{
				{"My Vehicle", "auto"}, {"My Home", "home"}, {"My Family", "life"}, {"My Business", "business"},
			},
		},
		{
			ID: 2, Question: "How many people are in your household?", Subtitle: "Including yourself",
			Options: []QuizOption{{"Just Me", "1"}, {"2 People", "2"}, {"3-4 People", "3-4"}, {"5+ People", "5+"}},
		},
		{
			ID: 3, Question: "Do you own or rent your home?", Subtitle: "This helps us recommend the right coverage",
			Options: []QuizOption{{"I Own", "own"}, {"I Rent", "rent"}, {"Living with Family", "family"}},
		},
		{
			ID: 4, Question: "What's most important to you?", Subtitle: "Choose your top priority",
			Options: []QuizOption{{"Lowest Price", "price"}, {"Best Coverage", "coverage"}, {"Fast Claims", "claims"}, {"24/7 Support", "support"}},
		},
		{
			ID: 5, Question: "Have you had insurance claims in the past 3 years?", Subtitle: "This won't affect your eligibility",
			Options: []QuizOption{{"No Claims", "no"}, {"1-2 Claims", "few"}, {"3+ Claims", "many"}},
		},
		{
			ID: 6, Question: "What's your estimated monthly budget for insurance?", Subtitle: "We'll find options that fit",
			Options: []QuizOption{{"$50 - $100", "50-100"}, {"$100 - $200", "100-200"}, {"$200 - $300", "200-300"}, {"$300+", "300+"}},
		},
	}
}

// Quiz session phases.
const (
	PhaseQuestions   = "questions"
	PhaseLeadCapture = "lead_capture"
	PhaseResults     = "results"
)

// QuizSession tracks one visitor's progression through the quiz: linear
// forward/backward through the six questions, then the lead-capture gate,
// then results. Single-goroutine, interaction scoped.
type QuizSession struct {
	questions []QuizQuestion
	step      int // index into questions while in PhaseQuestions
	phase     string
	selected  []string
	answers   []entity.QuizAnswer
}

func NewQuizSession() *QuizSession {
	return &QuizSession{
		questions: QuizQuestions(),
		phase:     PhaseQuestions,
	}
}

func (s *QuizSession) Phase() string                 { return s.phase }
func (s *QuizSession) Step() int                     { return s.step }
func (s *QuizSession) Selected() []string            { return s.selected }
func (s *QuizSession) Answers() []entity.QuizAnswer  { return s.answers }
func (s *QuizSession) CurrentQuestion() QuizQuestion { return s.questions[s.step] }

// Select toggles an option on a multi-select question and replaces the
// selection on a single-select one.
func (s *QuizSession) Select(value string) {
	if s.phase != PhaseQuestions {
		return
	}

	if s.CurrentQuestion().MultiSelect {
		for i, v := range s.selected {
			if v == value {
				s.selected = append(s.selected[:i], s.selected[i+1:]...)
				return
			}
		}
		s.selected = append(s.selected, value)
		return
	}
	s.selected = []string{value}
}

// Next records the current selection and advances. A question cannot be
// passed with nothing selected. Finishing question 6 moves to lead capture.
func (s *QuizSession) Next() bool {
	if s.phase != PhaseQuestions || len(s.selected) == 0 {
		return false
	}

	answer := entity.QuizAnswer{
		QuestionID:     s.CurrentQuestion().ID,
		Answer:         strings.Join(s.selected, ", "),
		SelectedValues: append([]string(nil), s.selected...),
	}
	s.storeAnswer(answer)

	if s.step < len(s.questions)-1 {
		s.step++
		s.selected = nil
	} else {
		s.phase = PhaseLeadCapture
		s.selected = nil
	}
	return true
}

// Back returns to the previous question and restores its prior answer.
func (s *QuizSession) Back() bool {
	if s.phase != PhaseQuestions || s.step == 0 {
		return false
	}
	s.step--

	s.selected = nil
	for _, a := range s.answers {
		if a.QuestionID == s.CurrentQuestion().ID {
			s.selected = append([]string(nil), a.SelectedValues...)
			break
		}
	}
	return true
}

// Complete transitions from lead capture to results once contact fields
// are present. Name, email, and phone are presence-checked only.
func (s *QuizSession) Complete(name, email, phone string) bool {
	if s.phase != PhaseLeadCapture {
		return false
	}
	if strings.TrimSpace(name) == "" || strings.TrimSpace(email) == "" || strings.TrimSpace(phone) == "" {
		return false
	}
	s.phase = PhaseResults
	return true
}

// Restart clears all state back to question 1.
func (s *QuizSession) Restart() {
	s.step = 0
	s.phase = PhaseQuestions
	s.selected = nil
	s.answers = nil
}

// storeAnswer keeps exactly one answer per question; re-answering replaces.
func (s *QuizSession) storeAnswer(answer entity.QuizAnswer) {
	for i, a := range s.answers {
		if a.QuestionID == answer.QuestionID {
			s.answers[i] = answer
			return
		}
	}
	s.answers = append(s.answers, answer)
}
