package validator

// Rule adapts the pattern into a Rule for field, evaluated against value.
func (p Pattern) Rule(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return p.Matches(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        p.Message,
			TranslationKey: p.TranslationKey,
			TranslationValues: map[string]any{
				"field":   field,
				"pattern": p.Name,
			},
		},
	}
}

// MatchesPattern validates value against the named pattern from the table.
// Unknown names produce a rule that always fails instead of panicking, so a
// typo in a form definition surfaces as a validation error.
func MatchesPattern(field, value, name string) Rule {
	p, ok := Lookup(name)
	if !ok {
		return Rule{
			Check: func() bool { return false },
			Error: ValidationError{
				Field:          field,
				Message:        ErrUnknownPattern.Error() + ": " + name,
				TranslationKey: "validation.unknown_pattern",
				TranslationValues: map[string]any{
					"field":   field,
					"pattern": name,
				},
			},
		}
	}
	return p.Rule(field, value)
}

// PasswordPatterns returns the length, digit, uppercase and lowercase rules
// in table order. Pass the result to Apply to collect every failure at once.
func PasswordPatterns(field, value string) []Rule {
	return []Rule{
		MustLookup(PatternPasswordLength).Rule(field, value),
		MustLookup(PatternPasswordDigit).Rule(field, value),
		MustLookup(PatternPasswordUppercase).Rule(field, value),
		MustLookup(PatternPasswordLowercase).Rule(field, value),
	}
}

func UsernamePatterns(field, value string) []Rule {
	return []Rule{
		MustLookup(PatternUsernameLength).Rule(field, value),
		MustLookup(PatternUsernameCharacters).Rule(field, value),
	}
}

func PersonalNamePattern(field, value string) Rule {
	return MustLookup(PatternPersonalName).Rule(field, value)
}
