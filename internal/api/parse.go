package api

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/mailopolis/mailopolis/pkg/models"
)

// Defensive parsers for free-text collaborator responses. The structured
// interfaces in the politics package are the real contract; these adapters
// recover a usable result when the model drifts from the requested format.

var confidencePattern = regexp.MustCompile(`(?i)confidence[:\s]*([1-9]|10)\b`)

// ParseEvaluation extracts a structured verdict from labeled lines
// (Decision:, Reasoning:, Confidence:, Concerns:), falling back to keyword
// scanning when labels are missing. Confidence is expressed 1-10 by the
// collaborator and scaled to 0-100 here.
func ParseEvaluation(response string) models.Evaluation {
	eval := models.Evaluation{
		Reasoning:  "Based on my analysis, this proposal requires careful consideration.",
		Confidence: 70,
	}

	lines := nonEmptyLines(response)

	decided := false
	for _, line := range lines {
		if rest, ok := labelValue(line, "Decision:"); ok {
			switch strings.ToUpper(rest) {
			case "SUPPORT":
				eval.Accept = true
				decided = true
			case "OPPOSE":
				eval.Accept = false
				decided = true
			}
			break
		}
	}
	if !decided {
		lower := strings.ToLower(response)
		if containsAny(lower, "support", "approve", "accept", "favor") {
			eval.Accept = true
		} else if containsAny(lower, "oppose", "reject", "against", "decline") {
			eval.Accept = false
		}
	}

	confFound := false
	for _, line := range lines {
		if rest, ok := labelValue(line, "Confidence:"); ok {
			rest = strings.TrimSuffix(rest, "/10")
			if n, err := strconv.Atoi(strings.TrimSpace(rest)); err == nil && n >= 1 && n <= 10 {
				eval.Confidence = n * 10
				confFound = true
			}
			break
		}
	}
	if !confFound {
		if m := confidencePattern.FindStringSubmatch(response); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil {
				eval.Confidence = n * 10
			}
		}
	}

	for _, line := range lines {
		if rest, ok := labelValue(line, "Reasoning:"); ok && rest != "" {
			eval.Reasoning = rest
			break
		}
	}

	for _, line := range lines {
		if rest, ok := labelValue(line, "Concerns:"); ok {
			if rest != "" && !strings.EqualFold(rest, "none") {
				eval.Concerns = append(eval.Concerns, rest)
			}
			break
		}
	}

	return eval
}

// ParseLobby extracts a lobbying strategy and message from STRATEGY: and
// MESSAGE: labeled lines. If parsing fails, the strategy defaults to support
// and the message to the raw response.
func ParseLobby(response string) models.LobbyMessage {
	lobby := models.LobbyMessage{
		Strategy: models.LobbySupport,
		Message:  strings.TrimSpace(response),
	}

	for _, line := range nonEmptyLines(response) {
		if rest, ok := labelValue(line, "STRATEGY:"); ok {
			switch strings.ToLower(rest) {
			case "support":
				lobby.Strategy = models.LobbySupport
			case "oppose":
				lobby.Strategy = models.LobbyOppose
			case "modify":
				lobby.Strategy = models.LobbyModify
			}
			continue
		}
		if rest, ok := labelValue(line, "MESSAGE:"); ok && rest != "" {
			lobby.Message = rest
		}
	}

	return lobby
}

// ParseCounterProposal builds a new proposal from TITLE:, DESCRIPTION:,
// SUSTAINABILITY_IMPACT: and EXPLANATION: labeled lines. Returns false when
// the response does not contain a usable title and description.
func ParseCounterProposal(response string, original models.Proposal) (models.Proposal, bool) {
	var title, description, explanation string
	sustainability := original.SustainabilityImpact / 2

	for _, line := range nonEmptyLines(response) {
		upper := strings.ToUpper(line)
		switch {
		case strings.HasPrefix(upper, "TITLE:"):
			title = strings.TrimSpace(line[len("TITLE:"):])
		case strings.HasPrefix(upper, "DESCRIPTION:"):
			description = strings.TrimSpace(line[len("DESCRIPTION:"):])
		case strings.HasPrefix(upper, "SUSTAINABILITY_IMPACT:"):
			raw := strings.TrimSpace(line[len("SUSTAINABILITY_IMPACT:"):])
			if n, err := strconv.Atoi(strings.TrimPrefix(raw, "+")); err == nil {
				sustainability = n
			}
		case strings.HasPrefix(upper, "EXPLANATION:"):
			explanation = strings.TrimSpace(line[len("EXPLANATION:"):])
		}
	}

	if title == "" || description == "" {
		return models.Proposal{}, false
	}

	if explanation != "" {
		description += "\n\nDepartment rationale: " + explanation
	}
	counter := models.NewProposal(
		title,
		description,
		string(original.TargetDepartment)+"_counter",
		original.TargetDepartment,
		sustainability,
		original.EconomicImpact+1,
		original.PoliticalImpact+2,
	)
	return counter, true
}

func nonEmptyLines(s string) []string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}

// labelValue returns the text after the label when the line starts with it,
// case-insensitively.
func labelValue(line, label string) (string, bool) {
	if len(line) < len(label) || !strings.EqualFold(line[:len(label)], label) {
		return "", false
	}
	return strings.TrimSpace(line[len(label):]), true
}

func containsAny(s string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
