package core

import (
    "strings"

    "safewatch-chatbot/pkg"
)

// Classify determines the intent of a raw message and extracts the drug
// (and, for reports, the reaction). The query cascade always runs before
// the report cascade, so a message that structurally matches both
// resolves to a query. Classification is pure: identical input yields an
// identical ParsedMessage with no side effects.
func Classify(text string) pkg.ParsedMessage {
    trimmed := strings.TrimSpace(text)
    if trimmed == "" {
        return pkg.ParsedMessage{Intent: pkg.IntentUnknown}
    }
    // Query rules run over the normalised text, so the extracted drug
    // name comes out lower-cased.
    normalized := strings.ToLower(trimmed)
    if caps := firstMatch(queryRules, normalized); caps != nil {
        return pkg.ParsedMessage{
            Intent: pkg.IntentQuery,
            Drug:   strings.Trim(caps["drug"], "? ."),
        }
    }
    // Report rules run over the original-case text so the reaction keeps
    // its casing for display.
    if caps := firstMatch(reportRules, trimmed); caps != nil {
        drug := strings.TrimSpace(caps["drug"])
        reaction := strings.TrimSpace(caps["reaction"])
        if drug == "" || reaction == "" {
            return pkg.ParsedMessage{Intent: pkg.IntentUnknown}
        }
        return pkg.ParsedMessage{
            Intent:   pkg.IntentReport,
            Drug:     drug,
            Reaction: reaction,
        }
    }
    return pkg.ParsedMessage{Intent: pkg.IntentUnknown}
}

// Parse is the full rule-cascade parser: classification plus, for report
// intent, age and gender slot extraction. It is the fallback used when no
// alternate parser is configured or the alternate parser declines a
// message.
func Parse(text string) pkg.ParsedMessage {
    parsed := Classify(text)
    if parsed.Intent == pkg.IntentReport {
        parsed.Age, parsed.Gender = ExtractSlots(text)
    }
    return parsed
}
