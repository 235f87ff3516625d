package api

import (
	"fmt"
	"strings"

	"github.com/mailopolis/mailopolis/pkg/models"
)

// systemPrompt renders an agent profile into the persona instructions that
// scope every collaborator call to that agent.
func systemPrompt(profile models.AgentProfile) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are %s, %s in Mailopolis.\n\n", profile.Name, profile.Role)
	b.WriteString("PERSONALITY & VALUES:\n")
	fmt.Fprintf(&b, "- Core Values: %s\n", strings.Join(profile.CoreValues, ", "))
	fmt.Fprintf(&b, "- Communication Style: %s\n", profile.CommunicationStyle)
	fmt.Fprintf(&b, "- Corruption Resistance: %d%% (how likely you are to resist bribes/influence)\n", profile.CorruptionResistance)
	fmt.Fprintf(&b, "- Sustainability Focus: %d%% (how much you prioritize environmental issues)\n", profile.SustainabilityFocus)
	fmt.Fprintf(&b, "- Political Awareness: %d%% (how much you consider political implications)\n", profile.PoliticalAwareness)
	fmt.Fprintf(&b, "- Risk Tolerance: %d%% (willingness to try new/experimental approaches)\n", profile.RiskTolerance)
	b.WriteString("\nDECISION FACTORS (in order of importance):\n")
	for _, factor := range profile.DecisionFactors {
		fmt.Fprintf(&b, "- %s\n", factor)
	}
	b.WriteString("\nYou always respond authentically according to your personality. When evaluating proposals, consider them through the lens of your department's needs and your personal values.")
	return b.String()
}

// proposalBlock renders the shared proposal summary used by several prompts.
func proposalBlock(proposal models.Proposal) string {
	var b strings.Builder
	fmt.Fprintf(&b, "- Title: %s\n", proposal.Title)
	fmt.Fprintf(&b, "- Description: %s\n", proposal.Description)
	fmt.Fprintf(&b, "- Target Department: %s\n", proposal.TargetDepartment)
	fmt.Fprintf(&b, "- Proposed by: %s\n", proposal.ProposedBy)
	fmt.Fprintf(&b, "- Sustainability Impact: %+d\n", proposal.SustainabilityImpact)
	fmt.Fprintf(&b, "- Economic Impact: %+d\n", proposal.EconomicImpact)
	fmt.Fprintf(&b, "- Political Impact: %+d\n", proposal.PoliticalImpact)
	if proposal.BribeAmount > 0 {
		fmt.Fprintf(&b, "- Bribe Amount: $%d\n", proposal.BribeAmount)
	}
	return b.String()
}

// contextBlock renders the current city situation.
func contextBlock(gameCtx models.GameContext) string {
	var b strings.Builder
	b.WriteString("CURRENT CITY CONTEXT:\n")
	fmt.Fprintf(&b, "- Sustainability Score: %d/100\n", gameCtx.SustainabilityScore)
	fmt.Fprintf(&b, "- Budget Remaining: $%d\n", gameCtx.BudgetRemaining)
	fmt.Fprintf(&b, "- Public Approval: %d/100\n", gameCtx.PublicApproval)
	fmt.Fprintf(&b, "- Population Happiness: %d/100\n", gameCtx.PopulationHappiness)
	fmt.Fprintf(&b, "- Infrastructure Health: %d/100\n", gameCtx.InfrastructureHealth)
	fmt.Fprintf(&b, "- Turn: %d\n", gameCtx.TurnNumber)
	if len(gameCtx.ActiveEvents) > 0 {
		fmt.Fprintf(&b, "- Active Events: %s\n", strings.Join(gameCtx.ActiveEvents, "; "))
	}
	fmt.Fprintf(&b, "- Crisis Level: %s\n", gameCtx.CrisisLevel)
	return b.String()
}

// evaluationPrompt asks an agent for a structured verdict on a proposal.
func evaluationPrompt(proposal models.Proposal, gameCtx models.GameContext) string {
	return fmt.Sprintf(`POLICY PROPOSAL EVALUATION:

%s
PROPOSAL DETAILS:
%s
Please evaluate this proposal considering your role, values, and decision factors.

RESPONSE FORMAT (use this EXACT format):
Decision: [SUPPORT/OPPOSE/NEUTRAL]
Reasoning: [2-3 sentences explaining your position in your communication style]
Confidence: [Rate 1-10]
Concerns: [Any concerns, or "None" if no concerns]`, contextBlock(gameCtx), proposalBlock(proposal))
}

// mayorBriefingPrompt asks the decision-maker for a final verdict, informed
// by the negotiation record.
func mayorBriefingPrompt(proposal models.Proposal, gameCtx models.GameContext, briefing string) string {
	return fmt.Sprintf(`FINAL DECISION REQUIRED:

%s
PROPOSAL DETAILS:
%s
POLITICAL BRIEFING FROM YOUR STAFF:
%s

Weigh the lobbying effort, coalition strength, and each department's expertise
against your own judgment, then decide.

RESPONSE FORMAT (use this EXACT format):
Decision: [SUPPORT/OPPOSE]
Reasoning: [2-3 sentences explaining your decision in your communication style]
Confidence: [Rate 1-10]
Concerns: [Any concerns, or "None" if no concerns]`, contextBlock(gameCtx), proposalBlock(proposal), briefing)
}

// conversePrompt asks an agent to speak to a colleague in a private
// conversation. priorMessage is empty for the initiating agent.
func conversePrompt(other models.AgentProfile, topic string, purpose models.ConversationPurpose, priorMessage string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "PRIVATE CONVERSATION with %s (%s, %s).\n\n", other.Name, other.Role, other.Department)
	fmt.Fprintf(&b, "TOPIC: %s\n", topic)
	fmt.Fprintf(&b, "PURPOSE: %s\n\n", strings.ReplaceAll(string(purpose), "_", " "))
	switch purpose {
	case models.PurposeCoalitionBuilding:
		b.WriteString("You share several core values with this colleague. Explore whether you can form a coalition on this proposal.\n")
	case models.PurposeInformationSharing:
		b.WriteString("Your departments regularly collaborate. Share the information your colleague needs to judge this proposal.\n")
	default:
		b.WriteString("Have a candid off-the-record exchange about this proposal.\n")
	}
	if priorMessage != "" {
		fmt.Fprintf(&b, "\nTHEY SAID:\n%s\n\nRespond to them directly.", priorMessage)
	} else {
		b.WriteString("\nOpen the conversation.")
	}
	b.WriteString(" Keep your message to 2-3 sentences and stay in character.")
	return b.String()
}

// lobbyPrompt asks an agent to craft a one-shot lobbying message for the mayor.
func lobbyPrompt(proposal models.Proposal, gameCtx models.GameContext) string {
	return fmt.Sprintf(`LOBBYING THE MAYOR:

%s
PROPOSAL DETAILS:
%s
You have one chance to influence the Mayor's decision on this proposal before
the final vote. Choose a strategy and craft your message.

RESPONSE FORMAT (use this EXACT format):
STRATEGY: [support/oppose/modify]
MESSAGE: [Your lobbying message to the Mayor, 2-3 sentences, in character]`, contextBlock(gameCtx), proposalBlock(proposal))
}

// counterProposalPrompt asks the target department to rework a rejected proposal.
func counterProposalPrompt(original models.Proposal) string {
	return fmt.Sprintf(`The following proposal was rejected:

ORIGINAL PROPOSAL:
%s
Given your expertise and values, suggest a counter-proposal that addresses the
same issue but might be more acceptable.

Format your response as:
TITLE: [new title]
DESCRIPTION: [modified description]
SUSTAINABILITY_IMPACT: [number between -20 and +20]
EXPLANATION: [why this version might work better]`, proposalBlock(original))
}
