package pkg

import "time"

// Intent is the coarse category of an incoming message: asking for
// information about a drug, reporting a personal adverse event, or
// neither.
type Intent string

const (
    IntentQuery   Intent = "query"
    IntentReport  Intent = "report"
    IntentUnknown Intent = "unknown"
)

// Gender is the reported patient gender. Only the two values the
// extraction rules recognise exist; an empty string means "not stated".
type Gender string

const (
    GenderMale   Gender = "Male"
    GenderFemale Gender = "Female"
)

// ParsedMessage is the parser's output for a single message. Empty
// strings mean the field was not extracted. Unknown intent carries no
// fields; Query carries at most a drug; Age and Gender are filled during
// report slot extraction only.
type ParsedMessage struct {
    Intent   Intent `json:"intent"`
    Drug     string `json:"drug,omitempty"`
    Reaction string `json:"reaction,omitempty"`
    Age      string `json:"age,omitempty"`
    Gender   Gender `json:"gender,omitempty"`
}

// AdverseEventReport is the persisted unit. It is only constructed once
// all four slots are present; ID and Timestamp are stamped at that
// moment. Reports are append-only: there are no update or delete
// operations.
type AdverseEventReport struct {
    ID        string    `json:"id"`
    Drug      string    `json:"drug"`
    Reaction  string    `json:"reaction"`
    Age       string    `json:"age"`
    Gender    Gender    `json:"gender"`
    Timestamp time.Time `json:"timestamp"`
}

// ChatRequest represents a message sent by the user.
type ChatRequest struct {
    Message string `json:"message"`
}

// ChatResponse is the wire-visible response shape. Field names and
// optionality are a compatibility contract: Data is present only for
// successful queries, MissingInfo only when a report lacks slots, and
// ReportSaved defaults to false.
type ChatResponse struct {
    Response    string   `json:"response"`
    Data        []string `json:"data,omitempty"`
    ReportSaved bool     `json:"report_saved"`
    MissingInfo []string `json:"missing_info,omitempty"`
}
