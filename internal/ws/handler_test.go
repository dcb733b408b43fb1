package ws

import (
	"context"
	"errors"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/DoyleJ11/lol-cooldowns/internal/aggregator"
	"github.com/DoyleJ11/lol-cooldowns/internal/champion"
	"github.com/DoyleJ11/lol-cooldowns/internal/types"
	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// flakyCollector fails every other call, starting with a success.
type flakyCollector struct {
	calls atomic.Int32
}

func (f *flakyCollector) Collect(ctx context.Context) (aggregator.Result, error) {
	if f.calls.Add(1)%2 == 0 {
		return aggregator.Result{}, errors.New("no game")
	}
	return aggregator.Result{
		ChampionCooldowns: map[string]champion.Profile{"Ahri": champion.EmptyProfile()},
		TeamChampDict:     map[string]champion.Team{"Ahri": champion.TeamBlue},
	}, nil
}

type lineupCollector struct{}

func (lineupCollector) Collect(ctx context.Context) (aggregator.Result, error) {
	l := champion.Lineup{"Ahri", "Wukong", "Garen", "Thresh", "Vi", "Zed", "Lux", "Jinx", "Nami", "Darius"}
	return aggregator.Result{
		ChampionCooldowns: map[string]champion.Profile{},
		TeamChampDict:     map[string]champion.Team{},
		Lineup:            &l,
	}, nil
}

func TestHandler_PushCarriesLineup(t *testing.T) {
	srv := httptest.NewServer(Handler(lineupCollector{}, Options{Interval: time.Second, OriginPatterns: []string{"*"}}, zap.NewNop()))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, "ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	defer conn.Close(websocket.StatusNormalClosure, "")

	var msg types.ServerMessage
	require.NoError(t, wsjson.Read(ctx, conn, &msg))
	require.NotNil(t, msg.Lineup)
	assert.Equal(t, []string{"Zed", "Lux", "Jinx", "Nami", "Darius"}, msg.Lineup.Team(champion.TeamRed))
}

func TestHandler_PushesOnConnectAndEveryInterval(t *testing.T) {
	c := &flakyCollector{}
	srv := httptest.NewServer(Handler(c, Options{Interval: 10 * time.Millisecond, OriginPatterns: []string{"*"}}, zap.NewNop()))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, "ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	defer conn.Close(websocket.StatusNormalClosure, "")

	var first types.ServerMessage
	require.NoError(t, wsjson.Read(ctx, conn, &first))
	assert.Equal(t, types.MsgCooldowns, first.Type)
	assert.Equal(t, 0, first.Version)
	require.NotNil(t, first.Payload)
	assert.Equal(t, champion.TeamBlue, first.Payload.TeamChampDict["Ahri"])
	assert.Nil(t, first.Lineup)

	var second types.ServerMessage
	require.NoError(t, wsjson.Read(ctx, conn, &second))
	assert.Equal(t, types.MsgError, second.Type)
	assert.Equal(t, types.LiveDataError, second.Error)
	assert.Nil(t, second.Payload)

	var third types.ServerMessage
	require.NoError(t, wsjson.Read(ctx, conn, &third))
	assert.Equal(t, types.MsgCooldowns, third.Type)
	assert.Equal(t, 2, third.Version)
}
