package service

import "strings"

// sqlSystemPrompt frames the model's role for every completion.
const sqlSystemPrompt = `You are an expert SQL assistant for a manufacturing batch-tracking database.`

// promptTemplate is the fixed instruction template. It has exactly two
// slots, {context} and {question}. The "do not guess" instruction is a soft
// constraint; the extractor and executor enforce the hard ones.
const promptTemplate = `You are an expert SQL assistant. Use only the column and table names provided in the examples and schema.

Examples:
{context}

Question:
{question}

Only write valid SQL using exact column and table names. Do not guess.

SQL Query:
`

// composePrompt renders the instruction template with the retrieved context
// documents and the resolved question. Pure string formatting, no side effects.
func composePrompt(contextDocs []string, question string) string {
	prompt := strings.Replace(promptTemplate, "{context}", strings.Join(contextDocs, "\n"), 1)
	return strings.Replace(prompt, "{question}", question, 1)
}
