// Package formengine decides which questions are visible, required and
// answered for a questionnaire given the answers recorded so far. Every
// function is a pure function of its inputs.
package formengine

import (
	"ortoform-service/internal/app/models"
)

// IsVisible reports whether a question should be shown. A question without a
// dependency is always visible; a dependent question is visible iff the gating
// question's recorded answer equals the expected value exactly, with no type
// coercion. A dependency on an unknown question id therefore never matches:
// the question stays hidden rather than failing.
func IsVisible(question *models.Question, responses models.ResponseMap) bool {
	if question.DependsOn == nil {
		return true
	}
	answer, ok := responses[question.DependsOn.QuestionID]
	if !ok {
		return false
	}
	return models.AnswersEqual(answer, question.DependsOn.ExpectedValue)
}

// IsRequired is the same predicate as IsVisible: a hidden question is never
// required.
func IsRequired(question *models.Question, responses models.ResponseMap) bool {
	return IsVisible(question, responses)
}

// RecordResponse returns a new response map with the answer applied. When the
// new answer no longer satisfies a direct child's dependency, that child's
// recorded answer is pruned. Deeper chains are reconciled by the full
// visibility recomputation in Prune/VisibleQuestions, which runs before
// scoring and persistence.
func RecordResponse(definition *models.Questionnaire, responses models.ResponseMap, questionID string, value interface{}) models.ResponseMap {
	out := responses.Clone()
	out[questionID] = value

	for _, q := range definition.AllQuestions() {
		if q.DependsOn == nil || q.DependsOn.QuestionID != questionID {
			continue
		}
		if !models.AnswersEqual(value, q.DependsOn.ExpectedValue) {
			delete(out, q.ID)
		}
	}
	return out
}

// Prune removes every recorded answer whose question is not currently
// visible, repeating until stable so multi-level dependency chains are fully
// reconciled. Answers to question ids unknown to the definition are dropped
// too; they can never be shown or scored.
func Prune(definition *models.Questionnaire, responses models.ResponseMap) models.ResponseMap {
	out := responses.Clone()
	for {
		changed := false
		for id := range out {
			q := definition.FindQuestion(id)
			if q == nil || !IsVisible(q, out) {
				delete(out, id)
				changed = true
			}
		}
		if !changed {
			return out
		}
	}
}

// VisibleQuestions recomputes visibility from scratch for the whole
// definition, in definition order.
func VisibleQuestions(definition *models.Questionnaire, responses models.ResponseMap) []*models.Question {
	var out []*models.Question
	for _, q := range definition.AllQuestions() {
		if IsVisible(q, responses) {
			out = append(out, q)
		}
	}
	return out
}

// IsComplete reports whether every currently-required question has a recorded
// answer. Any present key counts, so an empty free-text answer still counts
// as answered.
func IsComplete(definition *models.Questionnaire, responses models.ResponseMap) bool {
	for _, q := range definition.AllQuestions() {
		if !IsRequired(q, responses) {
			continue
		}
		if _, ok := responses[q.ID]; !ok {
			return false
		}
	}
	return true
}

// Progress counts answered visible questions against the currently-visible
// total, for the filler's progress indicator.
func Progress(definition *models.Questionnaire, responses models.ResponseMap) (answered, total int) {
	for _, q := range definition.AllQuestions() {
		if !IsVisible(q, responses) {
			continue
		}
		total++
		if _, ok := responses[q.ID]; ok {
			answered++
		}
	}
	return answered, total
}
