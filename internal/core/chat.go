package core

import (
    "context"
    "fmt"
    "log"
    "strings"
    "time"

    "github.com/google/uuid"

    "safewatch-chatbot/pkg"
)

// LookupSource fetches adverse event summaries for a drug from an
// external data source. Each summary is a display string of the form
// "Report <id>: <reaction1>, <reaction2>, ...". The service treats a
// failure and an empty result identically.
type LookupSource interface {
    Fetch(ctx context.Context, drug string) ([]string, error)
}

// ReportSink persists a completed adverse event report. At-least-once
// delivery is acceptable; the service only needs success or failure for
// logging.
type ReportSink interface {
    Save(ctx context.Context, report *pkg.AdverseEventReport) error
}

// AlternateParser is an optional front-end to the same parsing contract
// as the rule cascade. A nil result (or an error) means the parser
// declines the message and the rule cascade is used instead.
type AlternateParser interface {
    Parse(ctx context.Context, text string) (*pkg.ParsedMessage, error)
}

// ChatService resolves a single message into a reply: it parses the
// intent, fills report slots, delegates queries to the lookup source and
// completed reports to the sink. The service is stateless across
// requests — slot completion relies on the client re-sending an enriched
// message, not on server-side session state.
type ChatService struct {
    Lookup LookupSource
    Sink   ReportSink
    Parser AlternateParser // optional; nil disables the alternate parser
}

// NewChatService constructs a ChatService. parser may be nil, in which
// case every message goes through the rule cascade.
func NewChatService(lookup LookupSource, sink ReportSink, parser AlternateParser) *ChatService {
    return &ChatService{Lookup: lookup, Sink: sink, Parser: parser}
}

// Handle processes one user message and always returns a well-formed
// response; collaborator failures never surface as errors to the caller.
func (s *ChatService) Handle(ctx context.Context, message string) *pkg.ChatResponse {
    text := strings.TrimSpace(message)
    if text == "" {
        return &pkg.ChatResponse{Response: EmptyPrompt}
    }

    parsed := s.parse(ctx, text)

    switch parsed.Intent {
    case pkg.IntentQuery:
        return s.handleQuery(ctx, parsed)
    case pkg.IntentReport:
        return s.handleReport(ctx, parsed)
    default:
        return &pkg.ChatResponse{Response: Fallback}
    }
}

// parse runs the alternate parser when configured, falling back silently
// to the rule cascade on error or a nil result.
func (s *ChatService) parse(ctx context.Context, text string) pkg.ParsedMessage {
    if s.Parser != nil {
        parsed, err := s.Parser.Parse(ctx, text)
        if err != nil {
            log.Printf("alternate parser unavailable, using rule cascade: %v", err)
        } else if parsed != nil {
            return *parsed
        }
    }
    return Parse(text)
}

func (s *ChatService) handleQuery(ctx context.Context, parsed pkg.ParsedMessage) *pkg.ChatResponse {
    if parsed.Drug == "" {
        return &pkg.ChatResponse{Response: QueryMissingDrug}
    }
    events, err := s.Lookup.Fetch(ctx, parsed.Drug)
    if err != nil {
        // A failed lookup degrades to "no reports found"; the caller
        // cannot distinguish it from an empty result.
        log.Printf("lookup failed for %q: %v", parsed.Drug, err)
        events = nil
    }
    if len(events) == 0 {
        return &pkg.ChatResponse{Response: fmt.Sprintf(NoReportsFound, parsed.Drug)}
    }
    return &pkg.ChatResponse{
        Response: fmt.Sprintf(ReportsFound, len(events), parsed.Drug),
        Data:     events,
    }
}

func (s *ChatService) handleReport(ctx context.Context, parsed pkg.ParsedMessage) *pkg.ChatResponse {
    // Drug and reaction are guaranteed by the rule cascade but not by an
    // alternate parser; ask for them specifically, drug first.
    if strings.TrimSpace(parsed.Drug) == "" {
        return &pkg.ChatResponse{Response: ReportMissingDrug}
    }
    if strings.TrimSpace(parsed.Reaction) == "" {
        return &pkg.ChatResponse{Response: ReportMissingReaction}
    }

    var missing []string
    if parsed.Age == "" {
        missing = append(missing, "age")
    }
    if parsed.Gender == "" {
        missing = append(missing, "gender")
    }
    if len(missing) > 0 {
        return &pkg.ChatResponse{
            Response:    fmt.Sprintf(ReportMissingSlots, strings.Join(missing, " and ")),
            MissingInfo: missing,
        }
    }

    report := &pkg.AdverseEventReport{
        ID:        uuid.NewString(),
        Drug:      parsed.Drug,
        Reaction:  parsed.Reaction,
        Age:       parsed.Age,
        Gender:    parsed.Gender,
        Timestamp: time.Now(),
    }
    if err := s.Sink.Save(ctx, report); err != nil {
        // Known weakness: the save failure is logged but the user still
        // sees the confirmation.
        log.Printf("failed to save adverse event report: %v", err)
    }
    return &pkg.ChatResponse{
        Response:    fmt.Sprintf(ReportSaved, report.Drug, report.Reaction, report.Age, report.Gender),
        ReportSaved: true,
    }
}
