package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoomSnapshotRoundTrip(t *testing.T) {
	prompts := []string{"p1", "p2", "p3"}
	responses := []string{"r1", "r2", "r3", "r4", "r5"}

	r := NewRoom("AB12", prompts, responses, noopShuffler{})
	r.players = append(r.players,
		&Player{ID: "alice", Name: "Alice", Score: 2},
		&Player{ID: "bob", Name: "Bob", Score: 1},
	)
	r.judgeIndex = 1
	r.hands["alice"] = []string{"r1", "r2"}
	r.hands["bob"] = []string{"r3"}
	r.submissions["alice"] = "r2"
	r.submissionOrder = []string{"alice"}
	r.currentPrompt = "p3"
	r.phase = PhaseJudging
	r.round = 4
	r.conns.attach("alice", &fakeConn{})

	data, err := r.snapshot()
	require.NoError(t, err)

	restored, err := restoreRoom(data, prompts, responses, noopShuffler{})
	require.NoError(t, err)

	assert.Equal(t, r.code, restored.code)
	assert.Equal(t, r.players, restored.players)
	assert.Equal(t, r.judgeIndex, restored.judgeIndex)
	assert.Equal(t, r.promptDeck.cards, restored.promptDeck.cards)
	assert.Equal(t, r.responseDeck.cards, restored.responseDeck.cards)
	assert.Equal(t, r.hands, restored.hands)
	assert.Equal(t, r.submissions, restored.submissions)
	assert.Equal(t, r.submissionOrder, restored.submissionOrder)
	assert.Equal(t, r.currentPrompt, restored.currentPrompt)
	assert.Equal(t, r.phase, restored.phase)
	assert.Equal(t, r.round, restored.round)

	// Channels never survive serialization.
	assert.Equal(t, 0, restored.conns.size())
}

func TestRestoreRoomBadData(t *testing.T) {
	_, err := restoreRoom([]byte("not json"), nil, nil, noopShuffler{})
	assert.Error(t, err)
}

func TestRoomSubmissionListOrder(t *testing.T) {
	r := NewRoom("CD34", []string{"p"}, []string{"r"}, noopShuffler{})
	r.submissions = map[string]string{"b": "card-b", "a": "card-a", "c": "card-c"}
	r.submissionOrder = []string{"b", "a", "c"}

	subs := r.submissionList()

	assert.Equal(t, []Submission{
		{PlayerID: "b", Card: "card-b"},
		{PlayerID: "a", Card: "card-a"},
		{PlayerID: "c", Card: "card-c"},
	}, subs)
}
