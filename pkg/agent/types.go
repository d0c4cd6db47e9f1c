// Package agent picks the research persona for a task by asking a language
// model and parsing its reply through strict, lenient and extraction stages,
// falling back to a fixed persona when nothing usable comes back.
package agent

import "time"

// Record is the persona the research pipeline runs as.
type Record struct {
	Name       string `json:"server"`
	RolePrompt string `json:"agent_role_prompt"`
}

// Valid reports whether both fields are non-empty.
func (r Record) Valid() bool {
	return r.Name != "" && r.RolePrompt != ""
}

// IsFallback reports whether r is the default persona.
func (r Record) IsFallback() bool {
	return r == Fallback()
}

// Query is the task text sent to the model. The zero value is an empty task.
type Query struct {
	text   string
	query  string
	parent string
}

// NewQuery combines a subtopic with its parent research question as
// "parent - query". An empty parent leaves query unchanged.
func NewQuery(query, parent string) Query {
	text := query
	if parent != "" {
		text = parent + " - " + query
	}
	return Query{text: text, query: query, parent: parent}
}

// String returns the combined task text.
func (q Query) String() string { return q.text }

// Task returns the original query without its parent.
func (q Query) Task() string { return q.query }

// Parent returns the parent query, or "" for a top-level task.
func (q Query) Parent() string { return q.parent }

// RawResponse is what the completion call produced. Err is set when the call
// failed; Text then holds whatever arrived before the failure, usually nothing.
type RawResponse struct {
	Text string
	Err  error
}

// Failed reports whether the completion call itself failed.
func (r RawResponse) Failed() bool { return r.Err != nil }

// Selection is the outcome of one agent choice.
type Selection struct {
	ID       string
	Query    Query
	Record   Record
	Stage    string
	Raw      RawResponse
	Started  time.Time
	Duration time.Duration
}
