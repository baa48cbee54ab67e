package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"resume-builder/internal/domain"
)

var (
	boldMarks   = regexp.MustCompile(`\*\*`)
	headingRuns = regexp.MustCompile(`#+`)
	preamble    = regexp.MustCompile(`(?i)Here's the rewritten content.*?:`)
	percentages = regexp.MustCompile(`\b\d+%\b`)
)

// Sanitize strips markdown emphasis, heading marks and chatty preambles
// from model output. A percentage is only removed when a word runs straight
// into it ("50%off"); ordinary metrics are kept.
func Sanitize(text string) string {
	text = boldMarks.ReplaceAllString(text, "")
	text = headingRuns.ReplaceAllString(text, "")
	text = preamble.ReplaceAllString(text, "")
	text = percentages.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

// SummaryContext describes the profile the summary is generated from.
func SummaryContext(doc domain.ResumeDocument) string {
	var parts []string
	if doc.PersonalDetails.JobTitle != "" {
		parts = append(parts, "Job Title: "+doc.PersonalDetails.JobTitle)
	}
	if len(doc.Experience) > 0 {
		exp := make([]string, 0, len(doc.Experience))
		for _, e := range doc.Experience {
			end := e.End().Display()
			if end == "" {
				end = domain.PresentLabel
			}
			exp = append(exp, fmt.Sprintf("%s at %s (%s - %s)", e.Role, e.Company, e.StartDate, end))
		}
		parts = append(parts, "Experience: "+strings.Join(exp, "; "))
	}
	if len(doc.Skills) > 0 {
		var items []string
		for _, c := range doc.Skills {
			items = append(items, c.Items...)
		}
		parts = append(parts, "Skills: "+strings.Join(items, ", "))
	}
	if len(doc.Education) > 0 {
		edu := make([]string, 0, len(doc.Education))
		for _, e := range doc.Education {
			edu = append(edu, e.Degree+" from "+e.Institution)
		}
		parts = append(parts, "Education: "+strings.Join(edu, "; "))
	}
	if len(parts) == 0 {
		return "User is creating a resume"
	}
	return strings.Join(parts, "\n")
}

// Assistant runs the resume text operations on a Completer.
type Assistant struct {
	completer Completer
}

func NewAssistant(c Completer) *Assistant { return &Assistant{completer: c} }

// Transform rewrites text with op. The result replaces the text as a whole.
func (a *Assistant) Transform(ctx context.Context, op Operation, text string) (string, error) {
	p, ok := transforms[op]
	if !ok || op == OpSummary {
		return "", fmt.Errorf("%w: operation %q", domain.ErrInvalidInput, op)
	}
	out, err := a.completer.Complete(ctx, []Message{
		{Role: RoleSystem, Content: p.system},
		{Role: RoleUser, Content: p.user + text},
	})
	if err != nil {
		return "", err
	}
	return Sanitize(out), nil
}

// Summary generates a professional summary from doc.
func (a *Assistant) Summary(ctx context.Context, doc domain.ResumeDocument) (string, error) {
	p := transforms[OpSummary]
	out, err := a.completer.Complete(ctx, []Message{
		{Role: RoleSystem, Content: p.system},
		{Role: RoleUser, Content: p.user + SummaryContext(doc)},
	})
	if err != nil {
		return "", err
	}
	return Sanitize(out), nil
}

// Chat answers a free-form career question. The reply is not sanitized.
func (a *Assistant) Chat(ctx context.Context, question string) (string, error) {
	return a.completer.Complete(ctx, []Message{
		{Role: RoleSystem, Content: chatSystemPrompt},
		{Role: RoleUser, Content: question},
	})
}

// Analyze returns a markdown critique of resumeData.
func (a *Assistant) Analyze(ctx context.Context, resumeData json.RawMessage) (string, error) {
	if len(resumeData) == 0 {
		resumeData = json.RawMessage("null")
	}
	return a.completer.Complete(ctx, []Message{
		{Role: RoleSystem, Content: analyzeSystemPrompt},
		{Role: RoleUser, Content: "Resume Data: " + string(resumeData)},
	})
}
