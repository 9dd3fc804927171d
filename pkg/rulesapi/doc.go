// Package rulesapi exposes the validator pattern table over HTTP so browser
// forms can run the same checks before submitting. It only publishes the
// table; it never evaluates candidate values.
package rulesapi
