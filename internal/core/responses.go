package core

// responses.go defines the user-facing reply texts used by the chat
// service.  Keeping these strings in a separate file makes them easy to
// tweak without touching the resolver logic.  The lookup texts are format
// strings; note that a failed lookup and an empty lookup must render
// through the same NoReportsFound text so the two are indistinguishable
// to the caller.

const (
    // EmptyPrompt is returned when the message is blank after trimming.
    EmptyPrompt = "Please say something!"

    // QueryMissingDrug is returned when a query intent arrives without a
    // drug name. Only an alternate parser can produce that shape; the
    // rule cascade always captures a drug for query matches.
    QueryMissingDrug = "I couldn't identify the drug name. Could you specify which drug you are asking about?"

    // ReportsFound is the success text for a lookup. Args: report count,
    // drug name.
    ReportsFound = "Found %d recent reports for %s."

    // NoReportsFound is returned for both an empty lookup result and a
    // lookup failure. Arg: drug name.
    NoReportsFound = "I couldn't find any specific adverse event reports for '%s' right now."

    // ReportMissingDrug and ReportMissingReaction ask for the core report
    // fields, drug first.
    ReportMissingDrug     = "I couldn't identify the drug name. What drug did you take?"
    ReportMissingReaction = "I couldn't identify the reaction. What happened?"

    // ReportMissingSlots asks for the remaining slots. Arg: the missing
    // slot names joined with " and ", in age-then-gender order.
    ReportMissingSlots = "I need a few more details to complete the report. Could you tell me the patient's %s?"

    // ReportSaved confirms a persisted report, echoing all four fields.
    ReportSaved = "I detected a potential adverse event and saved it.\nDrug: %s\nReaction: %s\nAge: %s\nGender: %s"

    // Fallback is the guidance reply for messages no rule matches.
    Fallback = "I didn't quite catch that. Try asking 'What are the side effects of [drug]?' or 'I took [drug] and felt [symptom]'."
)
