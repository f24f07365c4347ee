package core

import "regexp"

// patterns.go holds the rule tables driving intent classification and
// slot extraction. Each table is an ordered cascade: rules are evaluated
// top to bottom and the first match wins, so more specific phrasings must
// stay listed before the generic catch-alls. The tables are compiled once
// at package init and never mutated afterwards, which keeps classification
// deterministic and safe to share across concurrent requests.

// rule pairs a compiled pattern with the names of the capture groups it
// contributes. captures returns the named submatches for the first match
// in text, or nil when the rule does not apply.
type rule struct {
    re *regexp.Regexp
}

// captures returns a map of named capture group to matched text for the
// first occurrence of the rule in text, or nil on no match.
func (r rule) captures(text string) map[string]string {
    m := r.re.FindStringSubmatch(text)
    if m == nil {
        return nil
    }
    out := make(map[string]string)
    for i, name := range r.re.SubexpNames() {
        if i == 0 || name == "" {
            continue
        }
        out[name] = m[i]
    }
    return out
}

// firstMatch scans a rule cascade in order and returns the captures of
// the first matching rule.
func firstMatch(rules []rule, text string) map[string]string {
    for _, r := range rules {
        if caps := r.captures(text); caps != nil {
            return caps
        }
    }
    return nil
}

func mustRules(patterns ...string) []rule {
    rules := make([]rule, 0, len(patterns))
    for _, p := range patterns {
        rules = append(rules, rule{re: regexp.MustCompile(p)})
    }
    return rules
}

// queryRules detect lookup requests. They run against the lower-cased,
// whitespace-trimmed message and capture the drug name to end of input.
var queryRules = mustRules(
    // Explicit "show me" / "list"
    `(?:please\s+)?(?:show|list|give|display|tell)\s+(?:me\s+)?(?:all\s+)?(?:the\s+)?(?:common\s+|potential\s+|possible\s+)?(?:adverse\s+events|side\s+effects|reactions|adverse\s+reactions|negative\s+effects|bad\s+effects|symptoms|issues|problems|complications|hazards|risks|dangers)\s+(?:associated\s+with|related\s+to|caused\s+by|for|of|from)\s+(?P<drug>.*)`,

    // "What are" questions
    `what\s+(?:are|can\s+be)\s+(?:the\s+)?(?:common\s+|potential\s+|possible\s+)?(?:adverse\s+events|side\s+effects|reactions|adverse\s+reactions|negative\s+effects|bad\s+effects|symptoms|issues|problems|complications|hazards|risks|dangers)(?:\s+reported)?\s+(?:associated\s+with|related\s+to|caused\s+by|for|of|from|to|with)\s+(?P<drug>.*)`,
    `what\s+(?:happens|can\s+happen)\s+(?:if|when)\s+(?:i|you|someone|one)\s+(?:take|takes|use|uses)\s+(?P<drug>.*)`,
    `what\s+(?:issues|problems)\s+(?:do|does)\s+(?P<drug>.*)\s+(?:cause|have)`,

    // Safety / danger questions
    `(?:is|are)\s+(?P<drug>.*)\s+(?:safe|dangerous|harmful|bad|risky)(?:\s+to\s+take|to\s+use)?`,
    `how\s+(?:safe|dangerous|bad|risky)\s+is\s+(?P<drug>.*)`,
    `(?:safety|danger|risk)\s+(?:profile\s+)?of\s+(?P<drug>.*)`,

    // "Does X cause Y?"
    `does\s+(?P<drug>.*?)\s+(?:cause|lead\s+to|result\s+in|trigger|produce|create|have)\s+(?:any\s+)?(?:side\s+effects|adverse\s+events|reactions|issues|problems)`,
    `can\s+(?P<drug>.*?)\s+(?:make\s+you|cause|lead\s+to|result\s+in)\s+(?:feel|have|experience)`,

    // "Reports on" / "problems with"
    `(?:any\s+)?(?:reports|information|data|details|facts|complaints)\s+(?:on|about|regarding|concerning)\s+(?:the\s+)?(?:safety|side\s+effects|adverse\s+events)\s+(?:of|for|with)\s+(?P<drug>.*)`,
    `(?:problems|issues|concerns|trouble|complications)\s+(?:with|caused\s+by|from|using|taking)\s+(?P<drug>.*)`,
    `bad\s+(?:reactions|experiences?|things?)\s+(?:to|from|with)\s+(?P<drug>.*)`,

    // Short / conversational. The reversed "X side effects" form is last
    // of these because it would otherwise greedily consume sentences the
    // more specific forms should win.
    `tell\s+me\s+about\s+(?P<drug>.*)`,
    `(?:side\s+effects|adverse\s+events|reactions)\s+(?:of|for)\s+(?P<drug>.*)`,
    // This bare form shadows the trailing "reactions to X" catch-all:
    // "reactions to aspirin" captures drug "to aspirin" here and the
    // catch-all never runs. The ordering is a compatibility contract;
    // do not reorder.
    `(?:side\s+effects|adverse\s+events|reactions)\s+(?P<drug>.*)`,
    `(?P<drug>.*?)\s+(?:side\s+effects|adverse\s+events|reactions|safety)`,

    // Catch-all
    `reactions\s+to\s+(?P<drug>.*)`,
)

// reportRules detect first-person adverse event disclosures. They run
// case-insensitively against the original-case message so the captured
// reaction keeps its casing for display. Drug is non-greedy up to the
// connective; reaction is greedy to end of input.
var reportRules = mustRules(
    `(?i)took\s+(?P<drug>.*?)\s+and\s+experienced\s+(?P<reaction>.*)`,
    `(?i)took\s+(?P<drug>.*?)\s+and\s+felt\s+(?P<reaction>.*)`,
    `(?i)took\s+(?P<drug>.*?)\s+and\s+had\s+(?P<reaction>.*)`,
    `(?i)after\s+taking\s+(?P<drug>.*?)\s*,\s*i\s+had\s+(?P<reaction>.*)`,
    `(?i)used\s+(?P<drug>.*?)\s+and\s+got\s+(?P<reaction>.*)`,
)

// ageRules extract a 1-3 digit age from the lower-cased message. The bare
// parenthetical form is a low-confidence fallback for context the client
// appends when re-sending a report.
var ageRules = mustRules(
    `age\s*(?:is|:|of)?\s*(?P<age>\d{1,3})`,
    `(?P<age>\d{1,3})\s*(?:years?|yrs?|yo)(?:\s+old)?`,
    `\((?P<age>\d{1,3})\)`,
)

// genderRules map keyword classes to a gender. The male class is tried
// first; the keyword sets are disjoint so order only matters for inputs
// containing both.
var maleRule = rule{re: regexp.MustCompile(`\b(?:male|man|boy)\b`)}
var femaleRule = rule{re: regexp.MustCompile(`\b(?:female|woman|girl)\b`)}
