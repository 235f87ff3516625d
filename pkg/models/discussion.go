package models

// ConversationPurpose classifies why two agents talked privately.
type ConversationPurpose string

const (
	// PurposeCoalitionBuilding marks a conversation between value-aligned agents.
	PurposeCoalitionBuilding ConversationPurpose = "coalition_building"
	// PurposeInformationSharing marks a conversation between related departments.
	PurposeInformationSharing ConversationPurpose = "information_sharing"
	// PurposeGeneralDiscussion marks an incidental conversation.
	PurposeGeneralDiscussion ConversationPurpose = "general_discussion"
)

// ConversationMessage is one agent's contribution to a private conversation.
type ConversationMessage struct {
	// Speaker is the agent's name.
	Speaker string `json:"speaker"`
	// Content is the message text.
	Content string `json:"content"`
}

// PrivateConversation records a two-agent exchange about a proposal.
// Immutable once generated; it exists only within one PoliticalDiscussion.
type PrivateConversation struct {
	// Participants are the two speakers, initiator first.
	Participants [2]string `json:"participants"`
	// Messages holds one message per participant.
	Messages []ConversationMessage `json:"messages"`
	// Purpose is why the pair was selected.
	Purpose ConversationPurpose `json:"purpose"`
}

// Involves reports whether the named agent took part in the conversation.
func (c PrivateConversation) Involves(name string) bool {
	return c.Participants[0] == name || c.Participants[1] == name
}

// LobbyStrategy is how a lobbying agent tries to sway the decision-maker.
type LobbyStrategy string

const (
	// LobbySupport argues for accepting the proposal.
	LobbySupport LobbyStrategy = "support"
	// LobbyOppose argues for rejecting the proposal.
	LobbyOppose LobbyStrategy = "oppose"
	// LobbyModify argues for accepting a changed version.
	LobbyModify LobbyStrategy = "modify"
)

// MayorLobby is one agent's attempt to influence the decision-maker
// outside the peer negotiation. At most one exists per agent per proposal.
type MayorLobby struct {
	// AgentName is the lobbying agent.
	AgentName string `json:"agent_name"`
	// Department is the lobbying agent's department.
	Department Department `json:"department"`
	// Message is the lobbying text delivered to the mayor.
	Message string `json:"message"`
	// InfluenceAttempt is the lobbying strategy.
	InfluenceAttempt LobbyStrategy `json:"influence_attempt"`
}

// Position is an agent's final stance on a proposal.
type Position string

const (
	// PositionSupport indicates the agent backs the proposal.
	PositionSupport Position = "SUPPORT"
	// PositionOppose indicates the agent is against the proposal.
	PositionOppose Position = "OPPOSE"
	// PositionNeutral indicates the agent takes no side.
	PositionNeutral Position = "NEUTRAL"
)

// PoliticalDiscussion is the structured record of one proposal's negotiation:
// private conversations, coalitions, lobbying, and final positions.
// It is built once per proposal and consumed by the mayor's resolution.
type PoliticalDiscussion struct {
	// ProposalID links the discussion to the proposal that spawned it.
	ProposalID string `json:"proposal_id"`
	// PrivateConversations are the Phase 1 pairwise exchanges.
	PrivateConversations []PrivateConversation `json:"private_conversations"`
	// MayorLobbying are the Phase 3 influence attempts.
	MayorLobbying []MayorLobby `json:"mayor_lobbying"`
	// CoalitionsFormed are detected agreement pairs, each a two-name list.
	CoalitionsFormed [][]string `json:"coalitions_formed"`
	// FinalPositions maps agent name to final stance.
	FinalPositions map[string]Position `json:"final_positions"`
}

// SupportRatio returns the fraction of final positions that are SUPPORT.
// It returns 0 when no positions were recorded.
func (d PoliticalDiscussion) SupportRatio() float64 {
	if len(d.FinalPositions) == 0 {
		return 0
	}
	support := 0
	for _, pos := range d.FinalPositions {
		if pos == PositionSupport {
			support++
		}
	}
	return float64(support) / float64(len(d.FinalPositions))
}
