package broker

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"wargame/game"
)

func TestMoveRoundTrip(t *testing.T) {
	srv := httptest.NewServer(NewServer().Handler())
	defer srv.Close()
	client := NewClient(srv.URL)

	played := game.Move{From: game.Coord{Row: 2, Col: 2}, To: game.Coord{Row: 1, Col: 2}}
	require.NoError(t, client.PostMove(played, 3))

	got, ok, err := client.GetMove(3)
	require.NoError(t, err)
	require.True(t, ok, "the move posted for turn 3 should be ready")
	require.Equal(t, played, got)
}

func TestGetMoveBeforeAnyPost(t *testing.T) {
	srv := httptest.NewServer(NewServer().Handler())
	defer srv.Close()

	_, ok, err := NewClient(srv.URL).GetMove(1)
	require.NoError(t, err)
	require.False(t, ok, "an empty relay has nothing to hand out")
}

func TestGetMoveIgnoresStaleTurn(t *testing.T) {
	srv := httptest.NewServer(NewServer().Handler())
	defer srv.Close()
	client := NewClient(srv.URL)

	stale := game.Move{From: game.Coord{Row: 0, Col: 2}, To: game.Coord{Row: 1, Col: 2}}
	require.NoError(t, client.PostMove(stale, 1))

	_, ok, err := client.GetMove(2)
	require.NoError(t, err)
	require.False(t, ok, "a move from an earlier turn must not satisfy a later poll")
}

func TestNewerPostReplacesOlder(t *testing.T) {
	srv := httptest.NewServer(NewServer().Handler())
	defer srv.Close()
	client := NewClient(srv.URL)

	first := game.Move{From: game.Coord{Row: 4, Col: 2}, To: game.Coord{Row: 3, Col: 2}}
	second := game.Move{From: game.Coord{Row: 0, Col: 2}, To: game.Coord{Row: 1, Col: 2}}
	require.NoError(t, client.PostMove(first, 1))
	require.NoError(t, client.PostMove(second, 2))

	got, ok, err := client.GetMove(2)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, second, got)
}

func TestPostRejectsMalformedBody(t *testing.T) {
	srv := httptest.NewServer(NewServer().Handler())
	defer srv.Close()

	resp, err := srv.Client().Post(srv.URL+"/move", "application/json", strings.NewReader("{not json"))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, 400, resp.StatusCode)
}

func TestUnsupportedMethod(t *testing.T) {
	srv := httptest.NewServer(NewServer().Handler())
	defer srv.Close()

	req := httptest.NewRequest("DELETE", "/move", nil)
	rec := httptest.NewRecorder()
	NewServer().Handler().ServeHTTP(rec, req)
	require.Equal(t, 405, rec.Code)
}
