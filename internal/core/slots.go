package core

import (
    "strings"

    "safewatch-chatbot/pkg"
)

// ExtractSlots pulls the age and gender slots out of a report message.
// Both extractions run over the lower-cased text and are independent of
// each other; an absent slot is simply a zero value, never an error. Age
// rules are tried in cascade order and the first numeric capture wins —
// a later rule never overrides an earlier match.
func ExtractSlots(text string) (age string, gender pkg.Gender) {
    lowered := strings.ToLower(strings.TrimSpace(text))
    if caps := firstMatch(ageRules, lowered); caps != nil {
        age = caps["age"]
    }
    switch {
    case maleRule.re.MatchString(lowered):
        gender = pkg.GenderMale
    case femaleRule.re.MatchString(lowered):
        gender = pkg.GenderFemale
    }
    return age, gender
}
