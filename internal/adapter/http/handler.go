package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"github.com/HamletSargsyan/livebot/internal/app/account"
	"github.com/HamletSargsyan/livebot/internal/app/action"
	"github.com/HamletSargsyan/livebot/internal/app/casino"
	"github.com/HamletSargsyan/livebot/internal/app/consume"
	"github.com/HamletSargsyan/livebot/internal/app/encounter"
	"github.com/HamletSargsyan/livebot/internal/app/exchanger"
	"github.com/HamletSargsyan/livebot/internal/app/inventory"
	"github.com/HamletSargsyan/livebot/internal/app/market"
	"github.com/HamletSargsyan/livebot/internal/app/ports"
	"github.com/HamletSargsyan/livebot/internal/app/quest"
	"github.com/HamletSargsyan/livebot/internal/app/status"
	"github.com/HamletSargsyan/livebot/internal/app/workshop"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

const playerIDHeader = "X-Player-ID"

var (
	ErrMissingPlayerID = errors.New("missing x-player-id header")
	ErrInvalidPlayerID = errors.New("invalid x-player-id header")
)

type Handler struct {
	RegisterUC  account.RegisterUseCase
	ActionUC    action.UseCase
	WorkshopUC  workshop.UseCase
	ConsumeUC   consume.UseCase
	EncounterUC encounter.UseCase
	QuestUC     quest.UseCase
	ExchangerUC exchanger.UseCase
	MarketUC    market.UseCase
	CasinoUC    casino.UseCase
	UpgradeUC   account.UpgradeUseCase
	StatusUC    status.UseCase
	KPI         kpiSnapshotProvider
}

func (h Handler) RegisterRoutes(s *server.Hertz) {
	s.Use(corsMiddleware())

	p := s.Group("/api/player")
	p.POST("/register", h.register)
	p.POST("/action", h.action)
	p.POST("/craft", h.craft)
	p.GET("/crafts", h.crafts)
	p.POST("/use", h.use)
	p.POST("/transfer", h.transfer)
	p.POST("/encounter", h.encounter)
	p.POST("/quest", h.quest)
	p.POST("/quest/complete", h.questComplete)
	p.POST("/gift", h.gift)
	p.GET("/status", h.status)
	p.POST("/upgrade", h.upgrade)
	p.GET("/exchanger", h.exchangerOffer)
	p.POST("/exchanger", h.exchangerSell)
	p.POST("/casino", h.casino)
	p.GET("/market", h.marketMine)
	p.POST("/market", h.marketPublish)
	p.POST("/market/buy", h.marketBuy)
	p.POST("/market/withdraw", h.marketWithdraw)

	s.GET("/api/market", h.marketBrowse)

	s.GET("/ops/kpi", h.kpi)
}

type registerRequest struct {
	Name string `json:"name"`
}

type useRequest struct {
	Item string `json:"item"`
}

type questRequest struct {
	Regenerate bool `json:"regenerate"`
}

type actionResponse struct {
	action.Response
	Text string `json:"text"`
}

func (h Handler) register(c context.Context, ctx *app.RequestContext) {
	id, err := playerID(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	var body registerRequest
	if !bindJSON(ctx, &body) {
		return
	}
	resp, err := h.RegisterUC.Execute(c, account.RegisterRequest{PlayerID: id, Name: body.Name})
	if err != nil {
		writeError(ctx, err)
		return
	}
	code := consts.StatusOK
	if resp.Created {
		code = consts.StatusCreated
	}
	ctx.JSON(code, resp)
}

func (h Handler) action(c context.Context, ctx *app.RequestContext) {
	id, err := playerID(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	var body action.Request
	if !bindJSON(ctx, &body) {
		return
	}
	body.PlayerID = id
	resp, err := h.ActionUC.Execute(c, body)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, actionResponse{Response: resp, Text: resp.Text()})
}

func (h Handler) craft(c context.Context, ctx *app.RequestContext) {
	id, err := playerID(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	var body workshop.CraftRequest
	if !bindJSON(ctx, &body) {
		return
	}
	body.PlayerID = id
	resp, err := h.WorkshopUC.Craft(c, body)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) crafts(c context.Context, ctx *app.RequestContext) {
	id, err := playerID(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	opts, err := h.WorkshopUC.Crafts(c, id)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, map[string]any{"crafts": opts})
}

func (h Handler) use(c context.Context, ctx *app.RequestContext) {
	id, err := playerID(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	var body useRequest
	if !bindJSON(ctx, &body) {
		return
	}
	resp, err := h.ConsumeUC.Use(c, id, body.Item)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) transfer(c context.Context, ctx *app.RequestContext) {
	id, err := playerID(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	var body workshop.TransferRequest
	if !bindJSON(ctx, &body) {
		return
	}
	body.From = id
	resp, err := h.WorkshopUC.Transfer(c, body)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) encounter(c context.Context, ctx *app.RequestContext) {
	id, err := playerID(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	var body encounter.Request
	if !bindJSON(ctx, &body) {
		return
	}
	body.PlayerID = id
	resp, err := h.EncounterUC.Resolve(c, body)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) quest(c context.Context, ctx *app.RequestContext) {
	id, err := playerID(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	var body questRequest
	if !bindJSON(ctx, &body) {
		return
	}
	if body.Regenerate {
		resp, err := h.QuestUC.Generate(c, id)
		if err != nil {
			writeError(ctx, err)
			return
		}
		ctx.JSON(consts.StatusOK, resp)
		return
	}
	q, err := h.QuestUC.Current(c, id)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, map[string]any{"quest": q})
}

func (h Handler) questComplete(c context.Context, ctx *app.RequestContext) {
	id, err := playerID(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	resp, err := h.QuestUC.Complete(c, id)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) gift(c context.Context, ctx *app.RequestContext) {
	id, err := playerID(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	resp, err := h.QuestUC.ClaimGift(c, id)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) status(c context.Context, ctx *app.RequestContext) {
	id, err := playerID(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	resp, err := h.StatusUC.Execute(c, status.Request{PlayerID: id})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

type kpiSnapshotProvider interface {
	SnapshotAny() any
}

func (h Handler) kpi(_ context.Context, ctx *app.RequestContext) {
	if h.KPI == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "kpi provider not configured", nil)
		return
	}
	ctx.JSON(consts.StatusOK, h.KPI.SnapshotAny())
}

func playerID(ctx *app.RequestContext) (int64, error) {
	raw := strings.TrimSpace(string(ctx.GetHeader(playerIDHeader)))
	if raw == "" {
		return 0, ErrMissingPlayerID
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidPlayerID
	}
	return id, nil
}

// bindJSON decodes an optional body and writes a 400 on malformed input.
func bindJSON(ctx *app.RequestContext, out any) bool {
	body := ctx.Request.Body()
	if len(body) == 0 {
		return true
	}
	if err := json.Unmarshal(body, out); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json", nil)
		return false
	}
	return true
}

func writeError(ctx *app.RequestContext, err error) {
	var (
		busy         *action.BusyError
		insufficient *inventory.InsufficientItemError
		cooldown     *quest.GiftCooldownError
		level        *exchanger.LevelRequiredError
		full         *market.SlotLimitError
	)
	switch {
	case errors.Is(err, ErrMissingPlayerID):
		writeErrorBody(ctx, consts.StatusBadRequest, "missing_player_id", err.Error(), nil)
	case errors.Is(err, ErrInvalidPlayerID):
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_player_id", err.Error(), nil)
	case errors.As(err, &busy):
		writeErrorBody(ctx, consts.StatusConflict, "action_in_progress", err.Error(), map[string]any{
			"current":           busy.Current,
			"remaining_seconds": int64(busy.Remaining.Seconds()),
		})
	case errors.As(err, &insufficient):
		writeErrorBody(ctx, consts.StatusConflict, "insufficient_items", err.Error(), map[string]any{
			"item":      insufficient.Item,
			"required":  insufficient.Required,
			"available": insufficient.Available,
		})
	case errors.As(err, &cooldown):
		writeErrorBody(ctx, consts.StatusConflict, "gift_cooldown", err.Error(), map[string]any{
			"remaining_seconds": int64(cooldown.Remaining.Seconds()),
		})
	case errors.As(err, &level):
		writeErrorBody(ctx, consts.StatusConflict, "level_required", err.Error(), map[string]any{
			"required": level.Required,
			"level":    level.Level,
		})
	case errors.As(err, &full):
		writeErrorBody(ctx, consts.StatusConflict, "market_full", err.Error(), map[string]any{
			"limit": full.Limit,
		})
	case errors.Is(err, ports.ErrNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "not_found", err.Error(), nil)
	case errors.Is(err, ports.ErrInvalidOperation):
		writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", err.Error(), nil)
	case errors.Is(err, ports.ErrPreconditionFailed):
		writeErrorBody(ctx, consts.StatusConflict, "precondition_failed", err.Error(), nil)
	case errors.Is(err, ports.ErrConflict):
		writeErrorBody(ctx, consts.StatusConflict, "conflict", err.Error(), nil)
	default:
		writeErrorBody(ctx, consts.StatusInternalServerError, "internal_error", "internal error", nil)
	}
}

func writeErrorBody(ctx *app.RequestContext, status int, code, message string, details map[string]any) {
	body := map[string]any{
		"code":    code,
		"message": message,
	}
	if details != nil {
		body["details"] = details
	}
	ctx.JSON(status, map[string]any{"error": body})
}
