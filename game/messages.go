package game

// Inbound frame. Unknown kinds are ignored; unparsable frames are dropped
// with a log entry and the connection stays open.
type Message struct {
	Kind     string `json:"kind"`
	Card     string `json:"card,omitempty"`
	PlayerID string `json:"playerId,omitempty"`
}

const (
	kindStart      = "start"
	kindPlayCard   = "play_card"
	kindPickWinner = "pick_winner"
)

type Submission struct {
	PlayerID string `json:"playerId"`
	Card     string `json:"card"`
}

type initMsg struct {
	Kind     string    `json:"kind"`
	PlayerID string    `json:"playerId"`
	Players  []*Player `json:"players"`
	Hand     []string  `json:"hand"`
	JudgeID  string    `json:"judgeId"`
}

type playerListMsg struct {
	Kind    string    `json:"kind"`
	Players []*Player `json:"players"`
}

type roundStartMsg struct {
	Kind    string `json:"kind"`
	Prompt  string `json:"prompt"`
	JudgeID string `json:"judgeId"`
}

type handMsg struct {
	Kind string   `json:"kind"`
	Hand []string `json:"hand"`
}

type chooseWinnerMsg struct {
	Kind        string       `json:"kind"`
	Submissions []Submission `json:"submissions"`
}

type roundEndMsg struct {
	Kind     string    `json:"kind"`
	WinnerID string    `json:"winnerId"`
	Card     string    `json:"card"`
	Scores   []*Player `json:"scores"`
}

type errorMsg struct {
	Kind  string `json:"kind"`
	Error string `json:"error"`
}
