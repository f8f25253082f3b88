// Package domain contains the core value types of the application: call
// numbers as they appear on a library shelf label and the quiz items built
// from them. It has no knowledge of ordering rules; those live in the
// shelving subpackage.
package domain
