package httpadapter_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/HamletSargsyan/livebot/internal/adapter/repo/memory"
	"github.com/HamletSargsyan/livebot/internal/adapter/weather/static"
	"github.com/HamletSargsyan/livebot/internal/bootstrap"
	"github.com/HamletSargsyan/livebot/internal/domain/inventory"
	"github.com/HamletSargsyan/livebot/internal/domain/player"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/ut"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

type clock struct{ now time.Time }

type nopNotifier struct{}

func (nopNotifier) Notify(context.Context, int64, string) error { return nil }

type testServer struct {
	h     *server.Hertz
	clock *clock
	store *memory.Store
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	store := memory.NewStore()
	c := &clock{now: time.Date(2026, 7, 1, 10, 0, 0, 0, time.UTC)}
	n := 0
	a := bootstrap.New(bootstrap.Deps{
		Stores:   store.Stores(),
		Notifier: nopNotifier{},
		Weather:  static.Source{Weather: player.Weather{Kind: player.WeatherClear, TempC: 20}},
		Rand:     rand.New(rand.NewPCG(7, 7)),
		NewID: func() string {
			n++
			return fmt.Sprintf("id-%d", n)
		},
		Now: func() time.Time { return c.now },
	})
	h := server.Default()
	a.Handler.RegisterRoutes(h)
	return &testServer{h: h, clock: c, store: store}
}

func (s *testServer) do(method, path, playerID, body string) (int, map[string]any) {
	headers := []ut.Header{{Key: "Content-Type", Value: "application/json"}}
	if playerID != "" {
		headers = append(headers, ut.Header{Key: "X-Player-ID", Value: playerID})
	}
	var b *ut.Body
	if body != "" {
		b = &ut.Body{Body: bytes.NewBufferString(body), Len: len(body)}
	}
	w := ut.PerformRequest(s.h.Engine, method, path, b, headers...)
	resp := w.Result()
	out := map[string]any{}
	_ = json.Unmarshal(resp.Body(), &out)
	return resp.StatusCode(), out
}

func TestRoutes_RegisterActionAndStatus(t *testing.T) {
	s := newTestServer(t)

	code, body := s.do("POST", "/api/player/register", "5", `{"name":"neo"}`)
	if code != consts.StatusCreated || body["created"] != true {
		t.Fatalf("register: %d %v", code, body)
	}
	code, _ = s.do("POST", "/api/player/register", "5", `{"name":"neo"}`)
	if code != consts.StatusOK {
		t.Fatalf("second register should be 200, got %d", code)
	}

	code, body = s.do("POST", "/api/player/action", "5", `{"type":"work"}`)
	if code != consts.StatusOK || body["outcome"] != "started" || body["text"] == "" {
		t.Fatalf("start work: %d %v", code, body)
	}
	code, body = s.do("POST", "/api/player/action", "5", `{"type":"sleep"}`)
	if code != consts.StatusConflict {
		t.Fatalf("busy player should get 409, got %d %v", code, body)
	}

	code, body = s.do("GET", "/api/player/status", "5", "")
	if code != consts.StatusOK {
		t.Fatalf("status: %d %v", code, body)
	}
	if body["remaining_seconds"] != float64(3*60*60) {
		t.Fatalf("unexpected remaining: %v", body["remaining_seconds"])
	}

	s.clock.now = s.clock.now.Add(3 * time.Hour)
	code, body = s.do("POST", "/api/player/action", "5", `{"type":"work"}`)
	if code != consts.StatusOK || body["outcome"] != "completed" {
		t.Fatalf("complete work: %d %v", code, body)
	}
}

func TestRoutes_Errors(t *testing.T) {
	s := newTestServer(t)

	if code, _ := s.do("GET", "/api/player/status", "", ""); code != consts.StatusBadRequest {
		t.Fatalf("missing header should be 400, got %d", code)
	}
	if code, _ := s.do("GET", "/api/player/status", "404", ""); code != consts.StatusNotFound {
		t.Fatalf("unknown player should be 404, got %d", code)
	}
	s.do("POST", "/api/player/register", "1", "")
	if code, _ := s.do("POST", "/api/player/action", "1", `{"type":"fly"}`); code != consts.StatusBadRequest {
		t.Fatalf("unknown action should be 400, got %d", code)
	}
	if code, _ := s.do("POST", "/api/player/action", "1", `{bad`); code != consts.StatusBadRequest {
		t.Fatalf("malformed json should be 400, got %d", code)
	}
	code, body := s.do("POST", "/api/player/craft", "1", `{"item":"bread"}`)
	if code != consts.StatusConflict {
		t.Fatalf("craft without ingredients should be 409, got %d %v", code, body)
	}
	if code, _ := s.do("POST", "/api/player/quest/complete", "1", ""); code != consts.StatusConflict {
		t.Fatalf("completing a missing quest should be 409, got %d", code)
	}
}

func TestRoutes_QuestGiftAndCrafts(t *testing.T) {
	s := newTestServer(t)
	s.do("POST", "/api/player/register", "9", "")

	code, body := s.do("POST", "/api/player/quest", "9", "")
	if code != consts.StatusOK || body["quest"] == nil {
		t.Fatalf("quest: %d %v", code, body)
	}
	code, body = s.do("POST", "/api/player/gift", "9", "")
	if code != consts.StatusOK || len(body["gains"].([]any)) == 0 {
		t.Fatalf("gift: %d %v", code, body)
	}
	if code, _ := s.do("POST", "/api/player/gift", "9", ""); code != consts.StatusConflict {
		t.Fatalf("second gift should be 409, got %d", code)
	}
	code, body = s.do("GET", "/api/player/crafts", "9", "")
	if code != consts.StatusOK {
		t.Fatalf("crafts: %d %v", code, body)
	}
	if code, body := s.do("GET", "/ops/kpi", "", ""); code != consts.StatusOK || body["action_total"] == nil {
		t.Fatalf("kpi: %d %v", code, body)
	}
}

func errorCode(body map[string]any) any {
	e, _ := body["error"].(map[string]any)
	return e["code"]
}

func TestRoutes_TradeAndUpgrades(t *testing.T) {
	s := newTestServer(t)
	s.do("POST", "/api/player/register", "9", "")
	s.do("POST", "/api/player/register", "10", "")

	checks := []struct {
		method, path, body string
		code               int
		errCode            string
	}{
		{"POST", "/api/player/quest", `{"regenerate":true}`, consts.StatusConflict, "insufficient_items"},
		{"GET", "/api/player/exchanger", "", consts.StatusConflict, "level_required"},
		{"POST", "/api/player/casino", `{"stake":5}`, consts.StatusConflict, "insufficient_items"},
		{"POST", "/api/player/upgrade", `{"choice":"market"}`, consts.StatusConflict, "precondition_failed"},
		{"POST", "/api/player/market", `{"item":"grass","quantity":2,"price":30}`, consts.StatusConflict, "insufficient_items"},
		{"POST", "/api/player/market", `{"item":"coin","quantity":2,"price":30}`, consts.StatusBadRequest, "bad_request"},
		{"POST", "/api/player/market/buy", `{"listing_id":"nope"}`, consts.StatusNotFound, "not_found"},
	}
	for _, c := range checks {
		code, body := s.do(c.method, c.path, "9", c.body)
		if code != c.code || errorCode(body) != c.errCode {
			t.Fatalf("%s %s: got %d %v", c.method, c.path, code, body)
		}
	}

	if err := s.store.Stores().Inventory.Add(context.Background(), inventory.NewCountable("seed-grass", 9, "grass", 5)); err != nil {
		t.Fatalf("seed grass: %v", err)
	}
	code, body := s.do("POST", "/api/player/market", "9", `{"item":"grass","quantity":2,"price":30}`)
	if code != consts.StatusCreated {
		t.Fatalf("publish: %d %v", code, body)
	}
	lot, _ := body["listing"].(map[string]any)
	id, _ := lot["id"].(string)

	code, body = s.do("GET", "/api/market?page=1", "", "")
	if code != consts.StatusOK || len(body["listings"].([]any)) != 1 {
		t.Fatalf("browse: %d %v", code, body)
	}
	if code, _ := s.do("GET", "/api/market?page=x", "", ""); code != consts.StatusBadRequest {
		t.Fatalf("bad page should be 400, got %d", code)
	}
	code, body = s.do("GET", "/api/player/market", "9", "")
	if code != consts.StatusOK || len(body["listings"].([]any)) != 1 {
		t.Fatalf("own lots: %d %v", code, body)
	}

	lotBody := fmt.Sprintf(`{"listing_id":%q}`, id)
	if code, body := s.do("POST", "/api/player/market/buy", "10", lotBody); code != consts.StatusConflict || errorCode(body) != "insufficient_items" {
		t.Fatalf("broke buyer: %d %v", code, body)
	}
	if code, body := s.do("POST", "/api/player/market/buy", "9", lotBody); code != consts.StatusBadRequest {
		t.Fatalf("own lot: %d %v", code, body)
	}
	if code, body := s.do("POST", "/api/player/market/withdraw", "9", lotBody); code != consts.StatusOK {
		t.Fatalf("withdraw: %d %v", code, body)
	}
}
