// Package validator holds the form-field validation patterns shared by the
// sign-up and profile forms, together with small helpers for applying them.
//
// The pattern table is a fixed, ordered set of named regular expressions, each
// paired with the message shown to the user when a candidate does not match.
// It is built once at package init and never modified, so it is safe to read
// from any number of goroutines without locking.
//
// # Patterns
//
//   - validatePasswordLength              - at least 8 characters
//   - passwordContainsNumericCharacters   - at least one 0-9
//   - passwordContainsUpperCaseCharacter  - at least one A-Z
//   - passwordContainsLowerCaseCharacter  - at least one a-z
//   - validateUsernameLength              - at least 5 characters
//   - validateUsernameCharacters          - 5+ of a-z, A-Z, 0-9, '-', '_' and nothing else
//   - validateName                        - two leading letters, then letters with single
//     inner separators (' , . space -)
//
// A non-match is an ordinary false result, never an error. The table does not
// combine patterns; use Apply for that.
//
// # Usage
//
//	p, ok := validator.Lookup(validator.PatternPasswordDigit)
//	if ok && !p.Matches(password) {
//	    return p.Message
//	}
//
//	err := validator.Apply(append(
//	    validator.PasswordPatterns("password", password),
//	    validator.PersonalNamePattern("name", name),
//	)...)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    for _, field := range verrs.Fields() {
//	        // render verrs.Get(field) next to the input
//	    }
//	}
//
// # Error Handling
//
// Apply returns ValidationErrors, which matches ErrValidationFailed under
// errors.Is. MatchesPattern with a name that is not in the table yields a rule
// that always fails with ErrUnknownPattern's text.
package validator
