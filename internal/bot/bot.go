// Package bot orchestrates the per-request support flow: load transcript,
// build prompt, call the oracle, wrap escalations, persist the turn.
package bot

import (
	"context"
	"fmt"
	"strings"

	"github.com/Aviral-Dwivedi-0/ai-customer-support-bot/internal/llm"
	"github.com/Aviral-Dwivedi-0/ai-customer-support-bot/internal/log"
	"github.com/Aviral-Dwivedi-0/ai-customer-support-bot/internal/prompt"
)

// Completer is the completion oracle as seen by the orchestrator.
type Completer interface {
	Complete(ctx context.Context, prompt string) llm.Result
}

// HistoryStore persists conversation transcripts keyed by session ID.
type HistoryStore interface {
	History(ctx context.Context, sessionID string) (string, error)
	Save(ctx context.Context, sessionID, history string) error
}

// NoHistoryMessage is returned by Summarize for an empty transcript,
// without consulting the oracle.
const NoHistoryMessage = "No conversation history available."

// escalationTemplate wraps an agent summary into the chat response sent
// when the oracle cannot answer from the FAQs.
const escalationTemplate = "I can't answer that question. I will escalate this to a human agent.\n\nSummary for agent:\n%s"

// Service ties the session store, FAQ corpus, and completion oracle into
// the request flow. The FAQ content is fixed at construction and read-only
// for the life of the process, so Service is safe for concurrent use.
type Service struct {
	store  HistoryStore
	oracle Completer
	faqs   string
	logger log.Logger
}

// New creates a Service. faqs may be empty, in which case every question
// escalates.
func New(store HistoryStore, oracle Completer, faqs string, logger log.Logger) *Service {
	if logger == nil {
		logger = log.NewNop()
	}
	return &Service{
		store:  store,
		oracle: oracle,
		faqs:   faqs,
		logger: logger,
	}
}

// Chat handles one conversational turn. It loads the session transcript,
// asks the oracle to answer the query from the FAQ corpus, and on an
// unanswerable result substitutes the escalation notice with a generated
// summary. The turn is persisted either way: escalated turns are
// remembered identically to answered ones, so later turns in the session
// see the escalation notice as "Bot:" history.
//
// Returned errors are storage failures; oracle failures never surface as
// errors.
func (s *Service) Chat(ctx context.Context, sessionID, query string) (string, error) {
	history, err := s.store.History(ctx, sessionID)
	if err != nil {
		return "", fmt.Errorf("loading history: %w", err)
	}

	result := s.oracle.Complete(ctx, prompt.Support(query, history, s.faqs))

	response := result.Text
	if result.Unanswerable {
		// The pending query joins the summarization input even though it
		// has not been appended to the stored transcript yet.
		summary := s.summarize(ctx, history+"\nUser: "+query)
		response = fmt.Sprintf(escalationTemplate, summary)
		s.logger.Info("escalating turn", "session_id", sessionID)
	}

	newHistory := history + "\nUser: " + query + "\nBot: " + response
	if err := s.store.Save(ctx, sessionID, newHistory); err != nil {
		return "", fmt.Errorf("saving history: %w", err)
	}

	return response, nil
}

// Escalate returns an agent-readable summary of the session transcript.
// It never mutates the session store.
func (s *Service) Escalate(ctx context.Context, sessionID string) (string, error) {
	history, err := s.store.History(ctx, sessionID)
	if err != nil {
		return "", fmt.Errorf("loading history: %w", err)
	}
	return s.summarize(ctx, history), nil
}

// summarize compresses a transcript for a human agent. An empty or
// whitespace-only transcript short-circuits to NoHistoryMessage. If the
// oracle itself comes back unanswerable, the raw sentinel text is returned
// as-is.
func (s *Service) summarize(ctx context.Context, history string) string {
	if strings.TrimSpace(history) == "" {
		return NoHistoryMessage
	}

	result := s.oracle.Complete(ctx, prompt.Summary(history))
	if result.Unanswerable {
		return llm.Sentinel
	}
	return result.Text
}
