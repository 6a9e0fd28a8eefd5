package hub

import (
	"encoding/json"
	"testing"

	"lobby-service/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dispatchJSON(t *testing.T, h *Hub, c *domain.Client, v interface{}) {
	t.Helper()
	payload, err := json.Marshal(v)
	require.NoError(t, err)
	h.dispatch(c, payload)
}

func TestDispatchRejectsMalformedJSON(t *testing.T) {
	h, _ := newTestHub()
	c := newTestClient()

	h.dispatch(c, []byte("{not json"))

	msg := receive(t, c)
	assert.Equal(t, domain.MsgError, msg["type"])
	assert.Equal(t, "invalid message format", msg["error"])
}

func TestDispatchRejectsUnknownType(t *testing.T) {
	h, _ := newTestHub()
	c := newTestClient()

	dispatchJSON(t, h, c, map[string]string{"type": "DANCE"})

	msg := receive(t, c)
	assert.Equal(t, domain.MsgError, msg["type"])
	assert.Equal(t, "unknown message type: DANCE", msg["error"])
}

func TestDispatchRejectsMissingType(t *testing.T) {
	h, _ := newTestHub()
	c := newTestClient()

	dispatchJSON(t, h, c, map[string]string{"roomId": "R1"})

	msg := receive(t, c)
	assert.Equal(t, domain.MsgError, msg["type"])
	assert.Equal(t, "message type not specified", msg["error"])
}

func TestDispatchRejectsMissingFields(t *testing.T) {
	h, _ := newTestHub()
	c := newTestClient()

	dispatchJSON(t, h, c, map[string]string{"type": domain.MsgJoinRoom, "roomId": "R1"})

	msg := receive(t, c)
	assert.Equal(t, domain.MsgError, msg["type"])
	assert.Equal(t, "JOIN_ROOM requires roomId, userId and username", msg["error"])
	assert.Equal(t, 0, h.RoomClientCount("R1"))
}

func TestJoinRoomConfirmsAndBroadcasts(t *testing.T) {
	h, _ := newTestHub()
	first := newTestClient()
	second := newTestClient()

	dispatchJSON(t, h, first, domain.Envelope{
		Type: domain.MsgJoinRoom, RoomID: "R1", UserID: "u1", Username: "alice",
	})
	success := receive(t, first)
	require.Equal(t, domain.MsgJoinRoomSuccess, success["type"])
	assert.Equal(t, "R1", success["roomId"])
	roomInfo := success["roomInfo"].(map[string]interface{})
	assert.EqualValues(t, 1, roomInfo["playerCount"])

	dispatchJSON(t, h, second, domain.Envelope{
		Type: domain.MsgJoinRoom, RoomID: "R1", UserID: "u2", Username: "bob",
	})
	joined := receive(t, first)
	assert.Equal(t, domain.MsgPlayerJoined, joined["type"])
	assert.Equal(t, "u2", joined["userId"])

	// the joiner gets the confirmation, not its own PLAYER_JOINED
	msg := receive(t, second)
	assert.Equal(t, domain.MsgJoinRoomSuccess, msg["type"])
	assertNoMessage(t, second)
}

func TestJoinRoomSwitchesRooms(t *testing.T) {
	h, _ := newTestHub()
	c := newTestClient()
	joinClient(t, h, c, "R1", "u1", "alice")

	dispatchJSON(t, h, c, domain.Envelope{
		Type: domain.MsgJoinRoom, RoomID: "R2", UserID: "u1", Username: "alice",
	})

	left := receive(t, c)
	assert.Equal(t, domain.MsgLeaveRoomSuccess, left["type"])
	assert.Equal(t, "R1", left["roomId"])
	joined := receive(t, c)
	assert.Equal(t, domain.MsgJoinRoomSuccess, joined["type"])
	assert.Equal(t, "R2", joined["roomId"])
	assert.Equal(t, 0, h.RoomClientCount("R1"))
	assert.Equal(t, 1, h.RoomClientCount("R2"))
}

func TestLeaveRoomWhenNotMemberIsNoOp(t *testing.T) {
	h, _ := newTestHub()
	c := newTestClient()

	dispatchJSON(t, h, c, domain.Envelope{
		Type: domain.MsgLeaveRoom, RoomID: "R1", UserID: "u1",
	})

	assertNoMessage(t, c)
}

func TestLeaveRoomConfirmsAndBroadcasts(t *testing.T) {
	h, _ := newTestHub()
	first := newTestClient()
	second := newTestClient()
	joinClient(t, h, first, "R1", "u1", "alice")
	joinClient(t, h, second, "R1", "u2", "bob")
	receive(t, first)

	dispatchJSON(t, h, second, domain.Envelope{
		Type: domain.MsgLeaveRoom, RoomID: "R1", UserID: "u2",
	})

	msg := receive(t, second)
	assert.Equal(t, domain.MsgLeaveRoomSuccess, msg["type"])
	left := receive(t, first)
	assert.Equal(t, domain.MsgPlayerLeft, left["type"])
	assert.Equal(t, "u2", left["userId"])
	roomInfo := left["roomInfo"].(map[string]interface{})
	assert.EqualValues(t, 1, roomInfo["playerCount"])
}

func TestLastLeaveRemovesRoom(t *testing.T) {
	h, _ := newTestHub()
	c := newTestClient()
	joinClient(t, h, c, "R1", "u1", "alice")

	dispatchJSON(t, h, c, domain.Envelope{
		Type: domain.MsgLeaveRoom, RoomID: "R1", UserID: "u1",
	})

	assert.Equal(t, 0, h.RoomClientCount("R1"))
}

func TestChatRequiresMembership(t *testing.T) {
	h, _ := newTestHub()
	c := newTestClient()

	dispatchJSON(t, h, c, domain.Envelope{
		Type: domain.MsgChatMessage, RoomID: "R1", UserID: "u1", Username: "alice", Message: "hi",
	})

	msg := receive(t, c)
	assert.Equal(t, domain.MsgError, msg["type"])
}

func TestChatBroadcastIncludesSender(t *testing.T) {
	h, _ := newTestHub()
	first := newTestClient()
	second := newTestClient()
	joinClient(t, h, first, "R1", "u1", "alice")
	joinClient(t, h, second, "R1", "u2", "bob")
	receive(t, first)

	dispatchJSON(t, h, first, domain.Envelope{
		Type: domain.MsgChatMessage, RoomID: "R1", UserID: "u1", Username: "alice", Message: "hi all",
	})

	for _, c := range []*domain.Client{first, second} {
		msg := receive(t, c)
		assert.Equal(t, domain.MsgChatMessage, msg["type"])
		assert.Equal(t, "hi all", msg["message"])
		assert.Equal(t, "u1", msg["userId"])
	}
}

func TestJoinTeamBroadcastsAndConfirms(t *testing.T) {
	h, _ := newTestHub()
	first := newTestClient()
	second := newTestClient()
	joinClient(t, h, first, "R1", "u1", "alice")
	joinClient(t, h, second, "R1", "u2", "bob")
	receive(t, first)

	dispatchJSON(t, h, first, domain.Envelope{
		Type: domain.MsgJoinTeam, RoomID: "R1", UserID: "u1", Username: "alice", Team: "red", Role: "guesser",
	})

	change := receive(t, second)
	assert.Equal(t, domain.MsgTeamChange, change["type"])
	assert.Equal(t, "red", change["team"])
	assert.Equal(t, "guesser", change["role"])

	// sender is confirmed before it sees the broadcast
	confirm := receive(t, first)
	assert.Equal(t, domain.MsgJoinTeamSuccess, confirm["type"])
	msg := receive(t, first)
	assert.Equal(t, domain.MsgTeamChange, msg["type"])
}

func TestJoinTeamRequiresMembership(t *testing.T) {
	h, _ := newTestHub()
	c := newTestClient()

	dispatchJSON(t, h, c, domain.Envelope{
		Type: domain.MsgJoinTeam, RoomID: "R1", UserID: "u1", Username: "alice", Team: "red", Role: "guesser",
	})

	msg := receive(t, c)
	assert.Equal(t, domain.MsgError, msg["type"])
}

func TestPlayerReadyBroadcastsToWholeRoom(t *testing.T) {
	h, _ := newTestHub()
	first := newTestClient()
	second := newTestClient()
	joinClient(t, h, first, "R1", "u1", "alice")
	joinClient(t, h, second, "R1", "u2", "bob")
	receive(t, first)

	dispatchJSON(t, h, first, domain.Envelope{
		Type: domain.MsgPlayerReady, RoomID: "R1", UserID: "u1", Username: "alice",
	})

	for _, c := range []*domain.Client{first, second} {
		msg := receive(t, c)
		assert.Equal(t, domain.MsgPlayerReady, msg["type"])
		assert.Equal(t, "u1", msg["userId"])
	}
}

func TestStartGameBroadcastsToWholeRoom(t *testing.T) {
	h, _ := newTestHub()
	first := newTestClient()
	second := newTestClient()
	joinClient(t, h, first, "R1", "u1", "alice")
	joinClient(t, h, second, "R1", "u2", "bob")
	receive(t, first)

	dispatchJSON(t, h, second, domain.Envelope{
		Type: domain.MsgStartGame, RoomID: "R1",
	})

	for _, c := range []*domain.Client{first, second} {
		msg := receive(t, c)
		assert.Equal(t, domain.MsgStartGame, msg["type"])
		assert.Equal(t, "R1", msg["roomId"])
	}
}
