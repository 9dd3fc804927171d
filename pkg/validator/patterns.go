package validator

import "regexp"

// Pattern names as used by the form layer.
const (
	PatternPasswordLength     = "validatePasswordLength"
	PatternPasswordDigit      = "passwordContainsNumericCharacters"
	PatternPasswordUppercase  = "passwordContainsUpperCaseCharacter"
	PatternPasswordLowercase  = "passwordContainsLowerCaseCharacter"
	PatternUsernameLength     = "validateUsernameLength"
	PatternUsernameCharacters = "validateUsernameCharacters"
	PatternPersonalName       = "validateName"
)

// lineChar matches any character except a line terminator (\n, \r, U+2028, U+2029),
// which is what "." means in the browser-side copies of these patterns.
const lineChar = `[^\n\r\x{2028}\x{2029}]`

// Pattern is a named regular expression paired with the message shown to the
// user when a candidate does not match it.
type Pattern struct {
	Name           string
	Message        string
	TranslationKey string

	re *regexp.Regexp
}

// Matches reports whether candidate satisfies the pattern.
// It is total: every string, including "" and invalid UTF-8, yields a bool.
func (p Pattern) Matches(candidate string) bool {
	if p.re == nil {
		return false
	}
	return p.re.MatchString(candidate)
}

// Source returns the pattern's regular expression text.
func (p Pattern) Source() string {
	if p.re == nil {
		return ""
	}
	return p.re.String()
}

// patterns is the rule table. It is built once at package init and never mutated;
// exported accessors hand out copies.
var patterns = []Pattern{
	{
		Name:           PatternPasswordLength,
		Message:        "Password must have at least 8 characters",
		TranslationKey: "validation.password_length",
		re:             regexp.MustCompile(lineChar + `{8,}`),
	},
	{
		Name:           PatternPasswordDigit,
		Message:        "Password must have at least 1 numeric characters",
		TranslationKey: "validation.password_digit",
		re:             regexp.MustCompile(`[0-9]`),
	},
	{
		Name:           PatternPasswordUppercase,
		Message:        "Password must have at least 1 uppercase alphabetical character",
		TranslationKey: "validation.password_uppercase",
		re:             regexp.MustCompile(`[A-Z]`),
	},
	{
		Name:           PatternPasswordLowercase,
		Message:        "Password must have at least 1 lowercase alphabetical character",
		TranslationKey: "validation.password_lowercase",
		re:             regexp.MustCompile(`[a-z]`),
	},
	{
		// The message says 8 while the pattern enforces 5. Both are kept as the form layer expects them.
		Name:           PatternUsernameLength,
		Message:        "Username must have at least 8 characters",
		TranslationKey: "validation.username_length",
		re:             regexp.MustCompile(lineChar + `{5,}`),
	},
	{
		Name:           PatternUsernameCharacters,
		Message:        "Only characters (a-z), (A-Z), (0-9), -, _ are available",
		TranslationKey: "validation.username_characters",
		re:             regexp.MustCompile(`^[a-zA-Z0-9_-]{5,}$`),
	},
	{
		Name:           PatternPersonalName,
		Message:        "Invalid name",
		TranslationKey: "validation.personal_name",
		re:             regexp.MustCompile(`^[a-zA-Z]{2,}(([',. -][a-zA-Z ])?[a-zA-Z]*)*$`),
	},
}

var patternIndex = func() map[string]int {
	idx := make(map[string]int, len(patterns))
	for i, p := range patterns {
		if _, dup := idx[p.Name]; dup {
			panic("validator: duplicate pattern name " + p.Name)
		}
		idx[p.Name] = i
	}
	return idx
}()

// Lookup returns the pattern registered under name.
func Lookup(name string) (Pattern, bool) {
	i, ok := patternIndex[name]
	if !ok {
		return Pattern{}, false
	}
	return patterns[i], true
}

// MustLookup is like Lookup but panics for unknown names.
// Intended for static wiring where the name is a package constant.
func MustLookup(name string) Pattern {
	p, ok := Lookup(name)
	if !ok {
		panic("validator: unknown pattern " + name)
	}
	return p
}

// Names returns pattern names in declaration order.
func Names() []string {
	names := make([]string, len(patterns))
	for i, p := range patterns {
		names[i] = p.Name
	}
	return names
}

// All returns a copy of every pattern in declaration order.
func All() []Pattern {
	out := make([]Pattern, len(patterns))
	copy(out, patterns)
	return out
}
