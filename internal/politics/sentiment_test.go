package politics

import (
	"testing"

	"github.com/mailopolis/mailopolis/pkg/models"
)

func TestClassifySentiment(t *testing.T) {
	tests := []struct {
		name string
		text string
		want models.Position
	}{
		{"plain support", "I support this, it is beneficial for everyone", models.PositionSupport},
		{"plain opposition", "I oppose this, it would be harmful", models.PositionOppose},
		{"balanced", "Some good aspects but I disagree overall", models.PositionNeutral},
		{"no keywords", "Let me think about the budget implications", models.PositionNeutral},
		{"case insensitive", "I SUPPORT this initiative", models.PositionSupport},
		{"repeated negatives outweigh", "bad idea, bad timing, though the intent is good", models.PositionOppose},
		{"disagree counts only as opposition", "I disagree with this approach", models.PositionOppose},
		{"keyword inside larger word ignored", "This plan is unsupported by the evidence", models.PositionNeutral},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifySentiment(tt.text); got != tt.want {
				t.Errorf("ClassifySentiment(%q) = %s, want %s", tt.text, got, tt.want)
			}
		})
	}
}

func TestIndicatesAgreement(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"plain agree", "I agree, let us move forward", true},
		{"multi-word phrase", "We should work with your office on this", true},
		{"disagreement is not agreement", "I strongly disagree with the premise", false},
		{"keyword inside larger word ignored", "Their position is unsupportable", false},
		{"no keywords", "Let me check the numbers first", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := indicatesAgreement(tt.text); got != tt.want {
				t.Errorf("indicatesAgreement(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func conv(a, b string, purpose models.ConversationPurpose, msgA, msgB string) models.PrivateConversation {
	return models.PrivateConversation{
		Participants: [2]string{a, b},
		Messages: []models.ConversationMessage{
			{Speaker: a, Content: msgA},
			{Speaker: b, Content: msgB},
		},
		Purpose: purpose,
	}
}

func TestDetectCoalitions(t *testing.T) {
	conversations := []models.PrivateConversation{
		conv("A", "B", models.PurposeCoalitionBuilding,
			"We should form a coalition on this.", "Count me in."),
		// Agreement text in a non-coalition conversation does not count.
		conv("C", "D", models.PurposeInformationSharing,
			"I agree with the direction.", "Same here."),
		// Coalition conversation without agreement language.
		conv("E", "F", models.PurposeCoalitionBuilding,
			"I am not sure about this.", "Neither am I."),
		// Duplicate pair in reversed order must be deduplicated.
		conv("B", "A", models.PurposeCoalitionBuilding,
			"Still on board for the alliance?", "Absolutely."),
	}

	coalitions := detectCoalitions(conversations)
	if len(coalitions) != 1 {
		t.Fatalf("expected 1 coalition, got %d: %v", len(coalitions), coalitions)
	}
	if coalitions[0][0] != "A" || coalitions[0][1] != "B" {
		t.Errorf("coalition = %v, want [A B]", coalitions[0])
	}
}

func TestDetectCoalitionsNoTransitiveMerge(t *testing.T) {
	conversations := []models.PrivateConversation{
		conv("A", "B", models.PurposeCoalitionBuilding, "Let us work with each other.", "Agreed."),
		conv("B", "C", models.PurposeCoalitionBuilding, "Join our alliance.", "I support that."),
		conv("A", "C", models.PurposeCoalitionBuilding, "Together we are stronger.", "Agreed."),
	}

	coalitions := detectCoalitions(conversations)
	if len(coalitions) != 3 {
		t.Fatalf("expected 3 pairwise coalitions, got %d: %v", len(coalitions), coalitions)
	}
	for _, c := range coalitions {
		if len(c) != 2 {
			t.Errorf("coalition %v has %d members, want 2", c, len(c))
		}
	}
}

func TestFinalPositionsPerSpeakerOwnMessages(t *testing.T) {
	conversations := []models.PrivateConversation{
		conv("A", "B", models.PurposeGeneralDiscussion,
			"I support this, it is good policy.", "I oppose it, frankly it is harmful."),
		conv("A", "C", models.PurposeGeneralDiscussion,
			"Still beneficial in my view.", "No strong feelings either way."),
	}

	positions := finalPositions(conversations)
	if len(positions) != 3 {
		t.Fatalf("expected 3 positions, got %d", len(positions))
	}
	if positions["A"] != models.PositionSupport {
		t.Errorf("A = %s, want %s", positions["A"], models.PositionSupport)
	}
	if positions["B"] != models.PositionOppose {
		t.Errorf("B = %s, want %s", positions["B"], models.PositionOppose)
	}
	if positions["C"] != models.PositionNeutral {
		t.Errorf("C = %s, want %s", positions["C"], models.PositionNeutral)
	}
}

func TestFinalPositionsEmptyWithoutConversations(t *testing.T) {
	positions := finalPositions(nil)
	if len(positions) != 0 {
		t.Errorf("expected no positions, got %v", positions)
	}
}
