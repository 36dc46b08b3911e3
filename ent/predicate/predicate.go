// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AskedQuestion is the predicate function for askedquestion builders.
type AskedQuestion func(*sql.Selector)

// InterviewMessage is the predicate function for interviewmessage builders.
type InterviewMessage func(*sql.Selector)

// InterviewSession is the predicate function for interviewsession builders.
type InterviewSession func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// Question is the predicate function for question builders.
type Question func(*sql.Selector)

// SeenQuestion is the predicate function for seenquestion builders.
type SeenQuestion func(*sql.Selector)
