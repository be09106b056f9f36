package httpadapter

import (
	"context"
	"strconv"

	"github.com/HamletSargsyan/livebot/internal/app/account"
	"github.com/HamletSargsyan/livebot/internal/app/casino"
	"github.com/HamletSargsyan/livebot/internal/app/exchanger"
	"github.com/HamletSargsyan/livebot/internal/app/market"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

func (h Handler) upgrade(c context.Context, ctx *app.RequestContext) {
	id, err := playerID(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	var body account.UpgradeRequest
	if !bindJSON(ctx, &body) {
		return
	}
	body.PlayerID = id
	resp, err := h.UpgradeUC.Execute(c, body)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) exchangerOffer(c context.Context, ctx *app.RequestContext) {
	id, err := playerID(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	offer, err := h.ExchangerUC.Current(c, id)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, map[string]any{"offer": offer})
}

func (h Handler) exchangerSell(c context.Context, ctx *app.RequestContext) {
	id, err := playerID(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	var body exchanger.SellRequest
	if !bindJSON(ctx, &body) {
		return
	}
	body.PlayerID = id
	resp, err := h.ExchangerUC.Sell(c, body)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) casino(c context.Context, ctx *app.RequestContext) {
	id, err := playerID(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	var body casino.Request
	if !bindJSON(ctx, &body) {
		return
	}
	body.PlayerID = id
	resp, err := h.CasinoUC.Play(c, body)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

// marketBrowse is public: browsing needs no player.
func (h Handler) marketBrowse(c context.Context, ctx *app.RequestContext) {
	page := 1
	if raw := ctx.Query("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", "invalid page", nil)
			return
		}
		page = n
	}
	resp, err := h.MarketUC.Browse(c, page)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) marketMine(c context.Context, ctx *app.RequestContext) {
	id, err := playerID(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	lots, err := h.MarketUC.Mine(c, id)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, map[string]any{"listings": lots})
}

func (h Handler) marketPublish(c context.Context, ctx *app.RequestContext) {
	id, err := playerID(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	var body market.PublishRequest
	if !bindJSON(ctx, &body) {
		return
	}
	body.PlayerID = id
	resp, err := h.MarketUC.Publish(c, body)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusCreated, resp)
}

func (h Handler) marketBuy(c context.Context, ctx *app.RequestContext) {
	h.marketLot(c, ctx, h.MarketUC.Buy)
}

func (h Handler) marketWithdraw(c context.Context, ctx *app.RequestContext) {
	h.marketLot(c, ctx, h.MarketUC.Withdraw)
}

func (h Handler) marketLot(c context.Context, ctx *app.RequestContext, run func(context.Context, market.LotRequest) (market.Result, error)) {
	id, err := playerID(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	var body market.LotRequest
	if !bindJSON(ctx, &body) {
		return
	}
	body.PlayerID = id
	resp, err := run(c, body)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}
