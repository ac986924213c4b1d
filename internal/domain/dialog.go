package domain

// Flow is the conversational mode a user is currently in
type Flow string

const (
	FlowNone       Flow = "none"
	FlowTechAssist Flow = "tech_assist"
	FlowLegal      Flow = "legal"
	FlowReport     Flow = "report"
	FlowNewsEdit   Flow = "news_edit"
	FlowBroadcast  Flow = "broadcast"
)

// Speaker identifies who produced a dialogue turn
type Speaker string

const (
	SpeakerUser      Speaker = "user"
	SpeakerAssistant Speaker = "assistant"
)

// Turn is a single message in a dialogue history
type Turn struct {
	Speaker Speaker
	Text    string
}

// HistoryCap is the sliding-window limit on retained turns (5 exchanges)
const HistoryCap = 10

// DialogState holds a user's current flow and bounded history.
// Flow and History are always read and replaced together as a unit.
type DialogState struct {
	Flow    Flow
	History []Turn
}

// InDialogue reports whether the state is one of the AI persona flows
func (s DialogState) InDialogue() bool {
	return s.Flow == FlowTechAssist || s.Flow == FlowLegal
}
