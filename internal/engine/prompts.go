package engine

import (
	"bytes"
	"text/template"
)

const greetingSystemPrompt = `You are a friendly, professional technical interviewer opening a mock interview session. Write a short greeting (2-3 sentences): welcome the candidate, introduce yourself briefly, and ask how they are doing. Do not ask any interview questions yet. Return plain text only.`

var greetingUserTemplate = template.Must(template.New("greeting").Parse(`Candidate is interviewing for a {{.Role}} position on the {{.Track}} track. It is {{.TimeOfDay}} for the candidate. Greet them.`))

const warmupSystemPrompt = `You are a technical interviewer reading the candidate's reply to your opening greeting. Classify the tone and energy, and if the reply mentions something worth a quick smalltalk exchange (their studies, a project, work, their commute, the weekend, the weather), name the topic and propose one short, natural smalltalk question about it. Keep the question to a single sentence.`

var warmupUserTemplate = template.Must(template.New("warmup").Parse(`The candidate replied to the greeting with:

"{{.Text}}"`))

const intentSystemPrompt = `You are a technical interviewer. The candidate gave a short or ambiguous reply to the current question. Decide what they are trying to do: actually answer, ask for clarification, ask to move on, admit they don't know, or make smalltalk. Be conservative: only use move_on or dont_know when the reply clearly says so.`

var intentUserTemplate = template.Must(template.New("intent").Parse(`Current question: {{.QuestionTitle}}

Candidate's reply:
"{{.Text}}"`))

const turnDecisionSystemPrompt = `You are running a mock job interview. Given the current question, the candidate's latest response, and a summary of their performance so far, decide the next dialogue action:

- FOLLOWUP: probe one specific gap in the response with a short follow-up question.
- MOVE_TO_NEXT_QUESTION: the question is sufficiently covered (or further probing won't help); transition on.
- WRAP_UP: enough of the interview is done; begin closing.

Rules:
- Score the response 0-10 on each rubric dimension (communication, problem solving, correctness reasoning, complexity, edge cases) based only on this turn.
- A follow-up must target exactly one missing element; name it in next_focus.
- Write message as the interviewer would actually say it: one or two sentences, no preamble, no meta commentary.
- Be honest in confidence: low confidence when the response is ambiguous or off-script.`

var turnDecisionUserTemplate = template.Must(template.New("turn").Parse(`Question ({{.QuestionType}}, difficulty {{.Difficulty}}): {{.QuestionTitle}}
{{.QuestionPrompt}}
{{if .ExpectedTopics}}
Expected topics: {{range .ExpectedTopics}}{{.}} {{end}}{{end}}
Candidate's response:
"{{.Text}}"

Heuristic read: quality={{.Quality}}{{if .MissingFocus}}, missing elements: {{range .MissingFocus}}{{.}} {{end}}{{end}}
Interview progress: question {{.QuestionsAsked}} of {{.MaxQuestions}}, follow-ups used on this question: {{.FollowupsUsed}} of {{.MaxFollowups}}.
Weakest rubric dimension so far: {{.WeakestDimension}}.`))

func renderTemplate(t *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
