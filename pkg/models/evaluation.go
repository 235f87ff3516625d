package models

// Evaluation is a structured verdict on a proposal from a single agent.
type Evaluation struct {
	// Accept is the accept/reject decision.
	Accept bool `json:"accept"`
	// Reasoning is the agent's rationale in its own voice.
	Reasoning string `json:"reasoning"`
	// Confidence is how sure the agent is, 0-100.
	Confidence int `json:"confidence"`
	// Concerns lists reservations raised during evaluation.
	Concerns []string `json:"concerns,omitempty"`
}

// LobbyMessage is the parsed result of a lobbying collaborator call.
type LobbyMessage struct {
	// Strategy is the influence approach chosen by the agent.
	Strategy LobbyStrategy `json:"strategy"`
	// Message is the lobbying text.
	Message string `json:"message"`
}
