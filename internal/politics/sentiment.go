package politics

import (
	"sort"
	"strings"
	"unicode"

	"github.com/mailopolis/mailopolis/pkg/models"
)

// Keyword heuristics for reading negotiation text. These are deliberately
// crude; they classify tone, they do not understand it. Swap here for a real
// classifier without touching the orchestration. Matching is whole-word so
// that "disagree" never counts as "agree".

var agreementPhrases = []string{"agree", "support", "together", "coalition", "alliance", "work with"}

var positiveWords = []string{"support", "good", "agree", "beneficial"}
var negativeWords = []string{"oppose", "bad", "disagree", "harmful"}

// sentimentTokens splits text into lowercase words, stripping punctuation.
func sentimentTokens(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func countToken(tokens []string, word string) int {
	n := 0
	for _, tok := range tokens {
		if tok == word {
			n++
		}
	}
	return n
}

// hasPhrase reports whether the phrase's words appear consecutively in tokens.
func hasPhrase(tokens []string, phrase string) bool {
	want := strings.Fields(phrase)
	if len(want) == 0 || len(want) > len(tokens) {
		return false
	}
	for i := 0; i+len(want) <= len(tokens); i++ {
		match := true
		for j, w := range want {
			if tokens[i+j] != w {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}

// ClassifySentiment scores text by counting positive keyword hits against
// negative ones. A positive balance reads as support, a negative one as
// opposition, a tie as neutral.
func ClassifySentiment(text string) models.Position {
	tokens := sentimentTokens(text)
	score := 0
	for _, w := range positiveWords {
		score += countToken(tokens, w)
	}
	for _, w := range negativeWords {
		score -= countToken(tokens, w)
	}
	switch {
	case score > 0:
		return models.PositionSupport
	case score < 0:
		return models.PositionOppose
	default:
		return models.PositionNeutral
	}
}

// indicatesAgreement reports whether conversation text contains any of the
// fixed agreement phrases as whole words, case-insensitively.
func indicatesAgreement(text string) bool {
	tokens := sentimentTokens(text)
	for _, phrase := range agreementPhrases {
		if hasPhrase(tokens, phrase) {
			return true
		}
	}
	return false
}

// detectCoalitions promotes coalition-building conversations whose combined
// text signals agreement into two-member coalitions. Coalitions are
// deduplicated by sorted participant names and never merged transitively:
// three mutually agreeing agents yield three separate pairs.
func detectCoalitions(conversations []models.PrivateConversation) [][]string {
	seen := make(map[[2]string]bool)
	var coalitions [][]string
	for _, conv := range conversations {
		if conv.Purpose != models.PurposeCoalitionBuilding || len(conv.Messages) != 2 {
			continue
		}
		combined := conv.Messages[0].Content + " " + conv.Messages[1].Content
		if !indicatesAgreement(combined) {
			continue
		}
		key := [2]string{conv.Participants[0], conv.Participants[1]}
		if key[0] > key[1] {
			key[0], key[1] = key[1], key[0]
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		coalitions = append(coalitions, []string{key[0], key[1]})
	}
	return coalitions
}

// finalPositions derives each participant's stance from their own Phase 1
// messages. This is a pure function of the conversation record; lobbying is
// intentionally not consulted.
func finalPositions(conversations []models.PrivateConversation) map[string]models.Position {
	texts := make(map[string][]string)
	for _, conv := range conversations {
		for _, msg := range conv.Messages {
			texts[msg.Speaker] = append(texts[msg.Speaker], msg.Content)
		}
	}

	positions := make(map[string]models.Position, len(texts))
	names := make([]string, 0, len(texts))
	for name := range texts {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		positions[name] = ClassifySentiment(strings.Join(texts[name], " "))
	}
	return positions
}
