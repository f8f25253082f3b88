// Package quiz builds shelving quizzes from call-number templates and grades
// the order a learner proposes. Ground truth always comes from the shelving
// comparator; the templates carry no answer key of their own.
package quiz
