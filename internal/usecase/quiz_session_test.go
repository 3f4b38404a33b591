package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuizSessionForwardGuard(t *testing.T) {
	s := NewQuizSession()

	assert.False(t, s.Next(), "advancing with nothing selected must fail")

	s.Select("auto")
	assert.True(t, s.Next())
	assert.Equal(t, 1, s.Step())
}

func TestQuizSessionMultiSelectOnlyOnFirstQuestion(t *testing.T) {
	s := NewQuizSession()

	s.Select("auto")
	s.Select("home")
	assert.Equal(t, []string{"auto", "home"}, s.Selected())

	// Selecting again toggles off.
	s.Select("home")
	assert.Equal(t, []string{"auto"}, s.Selected())

	assert.True(t, s.Next())

	// Question 2 is single-select: new choice replaces the old one.
	s.Select("2")
	s.Select("3-4")
	assert.Equal(t, []string{"3-4"}, s.Selected())
}

func TestQuizSessionBackRestoresAnswer(t *testing.T) {
	s := NewQuizSession()

	s.Select("auto")
	s.Select("life")
	assert.True(t, s.Next())

	assert.True(t, s.Back())
	assert.Equal(t, 0, s.Step())
	assert.Equal(t, []string{"auto", "life"}, s.Selected())

	assert.False(t, s.Back(), "cannot go back past question 1")
}

func TestQuizSessionReAnswerReplaces(t *testing.T) {
	s := NewQuizSession()

	s.Select("auto")
	assert.True(t, s.Next())
	assert.True(t, s.Back())

	s.Select("home")
	assert.True(t, s.Next())

	answers := s.Answers()
	assert.Len(t, answers, 1)
	assert.Equal(t, []string{"auto", "home"}, answers[0].SelectedValues)
}

func TestQuizSessionFullProgression(t *testing.T) {
	s := NewQuizSession()

	selections := [][]string{
		{"auto", "home"},
		{"3-4"},
		{"own"},
		{"coverage"},
		{"no"},
		{"100-200"},
	}

	for _, values := range selections {
		for _, v := range values {
			s.Select(v)
		}
		assert.True(t, s.Next())
	}

	assert.Equal(t, PhaseLeadCapture, s.Phase())
	assert.Len(t, s.Answers(), 6)

	// Lead capture requires all three contact fields.
	assert.False(t, s.Complete("", "jane@example.com", "555-0101"))
	assert.False(t, s.Complete("Jane", "", "555-0101"))
	assert.False(t, s.Complete("Jane", "jane@example.com", " "))
	assert.True(t, s.Complete("Jane", "jane@example.com", "555-0101"))
	assert.Equal(t, PhaseResults, s.Phase())
}

func TestQuizSessionRestartClearsEverything(t *testing.T) {
	s := NewQuizSession()

	s.Select("auto")
	assert.True(t, s.Next())
	s.Restart()

	assert.Equal(t, PhaseQuestions, s.Phase())
	assert.Equal(t, 0, s.Step())
	assert.Empty(t, s.Selected())
	assert.Empty(t, s.Answers())
}
