// Package prompt assembles the text prompts sent to the completion oracle.
//
// Both builders are pure functions of their inputs: no randomness, no
// external calls, no truncation. If FAQ content plus history exceeds the
// model's input limit the oracle call fails downstream; nothing here
// detects or mitigates that. User input is passed through verbatim with no
// escaping against the instruction block.
package prompt

import "fmt"

const supportTemplate = `You are a helpful customer support assistant. Your job is to answer customer questions based ONLY on the FAQ information provided below.

IMPORTANT RULES:
1. If the answer to the question is found in the FAQs below, provide a helpful, friendly answer based on that information.
2. If the answer is NOT in the FAQs, respond with ONLY the word: ESCALATE
3. Be conversational and helpful when answering from the FAQs.
4. Use the conversation history to understand context.

FAQs:
%s

Conversation History:
%s

Customer Question: %s

Your Answer:`

const summaryTemplate = `Summarize the following customer support conversation concisely for a human agent:

%s

Summary:`

// Support builds the prompt for answering a customer question from the FAQ
// corpus. The instruction block tells the model to answer only from the
// supplied FAQs, to reply with exactly the escalation sentinel when the
// answer is not present, and to use the history for context.
func Support(userQuery, history, faqs string) string {
	return fmt.Sprintf(supportTemplate, faqs, history, userQuery)
}

// Summary builds the prompt that compresses a transcript into an
// agent-readable summary.
func Summary(history string) string {
	return fmt.Sprintf(summaryTemplate, history)
}
