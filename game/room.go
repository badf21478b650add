package game

import "encoding/json"

const (
	PhaseLobby Phase = iota
	PhaseRoundActive
	PhaseJudging
	PhaseSettled
)

type Phase int

// HandSize is the number of response cards every non-judge player holds
// at a round boundary.
const HandSize = 7

type Player struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// Room is the authoritative state of one game session. All mutation goes
// through the Manager under that room's lock.
type Room struct {
	// Persisted state
	code            string
	players         []*Player
	judgeIndex      int
	promptDeck      *Deck
	responseDeck    *Deck
	hands           map[string][]string
	submissions     map[string]string
	submissionOrder []string
	currentPrompt   string
	phase           Phase
	round           int

	// Ephemeral, excluded from serialization
	conns *registry
}

func NewRoom(code string, prompts, responses []string, shuffler Shuffler) *Room {
	return &Room{
		code:         code,
		players:      make([]*Player, 0, 8),
		promptDeck:   NewDeck(prompts, shuffler),
		responseDeck: NewDeck(responses, shuffler),
		hands:        make(map[string][]string),
		submissions:  make(map[string]string),
		phase:        PhaseLobby,
		conns:        newRegistry(),
	}
}

func (r *Room) Code() string       { return r.code }
func (r *Room) Phase() Phase       { return r.phase }
func (r *Room) Players() []*Player { return r.players }

func (r *Room) player(id string) *Player {
	for _, p := range r.players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// judge is only valid while players is non-empty.
func (r *Room) judge() *Player {
	return r.players[r.judgeIndex]
}

func (r *Room) nonJudgeCount() int {
	if len(r.players) == 0 {
		return 0
	}
	return len(r.players) - 1
}

// submissionList returns the round's submissions in the order they were
// received.
func (r *Room) submissionList() []Submission {
	subs := make([]Submission, 0, len(r.submissionOrder))
	for _, id := range r.submissionOrder {
		subs = append(subs, Submission{PlayerID: id, Card: r.submissions[id]})
	}
	return subs
}

// roomState is the wire form written to the store under room:<code>.
// Channel references never appear here.
type roomState struct {
	Code            string              `json:"code"`
	Players         []*Player           `json:"players"`
	JudgeIndex      int                 `json:"judgeIndex"`
	PromptDeck      []string            `json:"promptDeck"`
	ResponseDeck    []string            `json:"responseDeck"`
	Hands           map[string][]string `json:"hands"`
	Submissions     map[string]string   `json:"submissions"`
	SubmissionOrder []string            `json:"submissionOrder,omitempty"`
	CurrentPrompt   string              `json:"currentPrompt,omitempty"`
	Phase           Phase               `json:"phase"`
	Round           int                 `json:"round"`
}

func (r *Room) snapshot() ([]byte, error) {
	return json.Marshal(roomState{
		Code:            r.code,
		Players:         r.players,
		JudgeIndex:      r.judgeIndex,
		PromptDeck:      r.promptDeck.cards,
		ResponseDeck:    r.responseDeck.cards,
		Hands:           r.hands,
		Submissions:     r.submissions,
		SubmissionOrder: r.submissionOrder,
		CurrentPrompt:   r.currentPrompt,
		Phase:           r.phase,
		Round:           r.round,
	})
}

// restoreRoom rebuilds a room from its persisted form. Players come back
// with detached channels; deck piles are reattached to the configured
// source sets for future reshuffles.
func restoreRoom(data []byte, prompts, responses []string, shuffler Shuffler) (*Room, error) {
	var st roomState
	if err := json.Unmarshal(data, &st); err != nil {
		return nil, err
	}
	r := &Room{
		code:            st.Code,
		players:         st.Players,
		judgeIndex:      st.JudgeIndex,
		promptDeck:      restoreDeck(st.PromptDeck, prompts, shuffler),
		responseDeck:    restoreDeck(st.ResponseDeck, responses, shuffler),
		hands:           st.Hands,
		submissions:     st.Submissions,
		submissionOrder: st.SubmissionOrder,
		currentPrompt:   st.CurrentPrompt,
		phase:           st.Phase,
		round:           st.Round,
		conns:           newRegistry(),
	}
	if r.players == nil {
		r.players = make([]*Player, 0, 8)
	}
	if r.hands == nil {
		r.hands = make(map[string][]string)
	}
	if r.submissions == nil {
		r.submissions = make(map[string]string)
	}
	return r, nil
}
