// Package market lets players list item stacks for a fixed price and buy
// each other's lots.
package market

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/HamletSargsyan/livebot/internal/app/inventory"
	"github.com/HamletSargsyan/livebot/internal/app/ports"
	"github.com/HamletSargsyan/livebot/internal/app/progression"
	"github.com/HamletSargsyan/livebot/internal/app/txretry"
	"github.com/HamletSargsyan/livebot/internal/domain/items"
	"github.com/HamletSargsyan/livebot/internal/domain/player"
	"github.com/HamletSargsyan/livebot/internal/domain/trade"
)

// PageSize is how many lots one market page shows.
const PageSize = 6

const (
	spentAchievement = "tycoon"
	soldAchievement  = "merchant"
)

var (
	ErrInvalidRequest = fmt.Errorf("%w: invalid market request", ports.ErrInvalidOperation)
	ErrOwnListing     = fmt.Errorf("%w: cannot buy your own lot", ports.ErrInvalidOperation)
	// ErrListingGone is returned for a lot that was bought or withdrawn meanwhile.
	ErrListingGone = fmt.Errorf("%w: lot sold or withdrawn", ports.ErrNotFound)
)

// SlotLimitError rejects a new lot while every market slot is taken.
type SlotLimitError struct {
	Limit int64
}

func (e *SlotLimitError) Error() string {
	return fmt.Sprintf("all %d market slots are taken", e.Limit)
}

func (e *SlotLimitError) Unwrap() error { return ports.ErrPreconditionFailed }

type Page struct {
	Page     int             `json:"page"`
	Listings []trade.Listing `json:"listings"`
	HasMore  bool            `json:"has_more"`
}

// PublishRequest puts Quantity units of Item up for Price coin in total.
type PublishRequest struct {
	PlayerID int64  `json:"-"`
	Item     string `json:"item"`
	Quantity int64  `json:"quantity"`
	Price    int64  `json:"price"`
}

type LotRequest struct {
	PlayerID  int64  `json:"-"`
	ListingID string `json:"listing_id"`
}

type Result struct {
	Listing trade.Listing `json:"listing"`
	Player  player.Player `json:"player"`
}

type UseCase struct {
	TxManager ports.TxManager
	Players   ports.PlayerRepository
	Listings  ports.MarketRepository
	Inventory inventory.Service
	Regulator progression.Regulator
	Notifier  ports.Notifier
	NewID     ports.IDGenerator
	Now       func() time.Time
	Logger    *slog.Logger
	Retry     txretry.Policy
}

func (u UseCase) now() time.Time {
	if u.Now == nil {
		return time.Now()
	}
	return u.Now()
}

func (u UseCase) logger() *slog.Logger {
	if u.Logger == nil {
		return slog.Default()
	}
	return u.Logger
}

// Browse returns the 1-based page of every player's lots, oldest first.
func (u UseCase) Browse(ctx context.Context, page int) (Page, error) {
	if page < 1 {
		page = 1
	}
	found, err := u.Listings.List(ctx, (page-1)*PageSize, PageSize+1)
	if err != nil {
		return Page{}, err
	}
	out := Page{Page: page, Listings: found}
	if len(found) > PageSize {
		out.Listings = found[:PageSize]
		out.HasMore = true
	}
	return out, nil
}

// Mine lists the player's own lots.
func (u UseCase) Mine(ctx context.Context, playerID int64) ([]trade.Listing, error) {
	if _, err := u.Players.Get(ctx, playerID); err != nil {
		return nil, err
	}
	return u.Listings.GetAll(ctx, playerID)
}

func (u UseCase) Publish(ctx context.Context, req PublishRequest) (Result, error) {
	if req.Quantity == 0 {
		req.Quantity = 1
	}
	if req.Item == "" || req.Quantity < 0 || req.Price <= 0 {
		return Result{}, ErrInvalidRequest
	}
	it, err := items.Lookup(req.Item)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", ports.ErrNotFound, err)
	}
	if !trade.Listable(it) {
		return Result{}, &inventory.InvalidItemError{Item: it.Name, Reason: "cannot be sold on the market"}
	}

	var (
		out Result
		rep progression.Report
	)
	err = u.Retry.InTx(ctx, u.TxManager, func(txCtx context.Context) error {
		p, err := u.Players.Get(txCtx, req.PlayerID)
		if err != nil {
			return err
		}
		mine, err := u.Listings.GetAll(txCtx, p.ID)
		if err != nil {
			return err
		}
		if limit := p.MarketSlotLimit(); int64(len(mine)) >= limit {
			return &SlotLimitError{Limit: limit}
		}
		if err := u.Inventory.RemoveByName(txCtx, p.ID, it.Name, req.Quantity); err != nil {
			return err
		}
		l := trade.Listing{
			ID:          u.NewID(),
			OwnerID:     p.ID,
			Item:        it.Name,
			Quantity:    req.Quantity,
			Price:       req.Price,
			PublishedAt: u.now(),
		}
		if err := u.Listings.Add(txCtx, l); err != nil {
			return err
		}
		// the revision save serialises slot checks of one seller
		rep, err = u.Regulator.NormalizeAndLevelUp(txCtx, &p)
		if err != nil {
			return err
		}
		out = Result{Listing: l, Player: p}
		return nil
	})
	if err != nil {
		return Result{}, err
	}
	u.Regulator.Announce(ctx, rep)
	return out, nil
}

// Buy pays the lot's price to its owner and hands the items to the buyer.
// The seller is told after the purchase commits.
func (u UseCase) Buy(ctx context.Context, req LotRequest) (Result, error) {
	if req.ListingID == "" {
		return Result{}, ErrInvalidRequest
	}
	var (
		out    Result
		buyer  player.Player
		reps   []progression.Report
		seller int64
	)
	err := u.Retry.InTx(ctx, u.TxManager, func(txCtx context.Context) error {
		reps = reps[:0]
		l, err := u.lot(txCtx, req.ListingID)
		if err != nil {
			return err
		}
		buyer, err = u.Players.Get(txCtx, req.PlayerID)
		if err != nil {
			return err
		}
		if l.OwnerID == buyer.ID {
			return ErrOwnListing
		}
		if buyer.Coin < l.Price {
			return &inventory.InsufficientItemError{Item: items.CoinName, Required: l.Price, Available: buyer.Coin}
		}
		owner, err := u.Players.Get(txCtx, l.OwnerID)
		if err != nil {
			return err
		}
		buyer.Coin -= l.Price
		owner.Coin += l.Price
		if err := u.Inventory.AddByName(txCtx, buyer.ID, l.Item, l.Quantity); err != nil {
			return err
		}
		if err := u.Listings.Delete(txCtx, l.ID); err != nil {
			return err
		}
		if err := u.Regulator.Tracker.IncrementProgress(txCtx, &buyer, spentAchievement, l.Price); err != nil {
			return err
		}
		if err := u.Regulator.Tracker.IncrementProgress(txCtx, &owner, soldAchievement, 1); err != nil {
			return err
		}
		for _, p := range []*player.Player{&buyer, &owner} {
			rep, err := u.Regulator.NormalizeAndLevelUp(txCtx, p)
			if err != nil {
				return err
			}
			reps = append(reps, rep)
		}
		seller = owner.ID
		out = Result{Listing: l, Player: buyer}
		return nil
	})
	if err != nil {
		return Result{}, err
	}
	for _, rep := range reps {
		u.Regulator.Announce(ctx, rep)
	}
	u.notifySeller(ctx, seller, buyer, out.Listing)
	return out, nil
}

func (u UseCase) notifySeller(ctx context.Context, seller int64, buyer player.Player, l trade.Listing) {
	if u.Notifier == nil {
		return
	}
	name := buyer.Name
	if name == "" {
		name = fmt.Sprintf("player %d", buyer.ID)
	}
	text := fmt.Sprintf("%s bought your %d %s for %d coin", name, l.Quantity, items.MustLookup(l.Item).Glyph, l.Price)
	if err := u.Notifier.Notify(ctx, seller, text); err != nil {
		u.logger().Warn("sale notice not delivered", "player_id", seller, "listing_id", l.ID, "err", err)
	}
}

// Withdraw takes one of the player's lots off the market and returns the items.
func (u UseCase) Withdraw(ctx context.Context, req LotRequest) (Result, error) {
	if req.ListingID == "" {
		return Result{}, ErrInvalidRequest
	}
	var (
		out Result
		rep progression.Report
	)
	err := u.Retry.InTx(ctx, u.TxManager, func(txCtx context.Context) error {
		l, err := u.lot(txCtx, req.ListingID)
		if err != nil {
			return err
		}
		p, err := u.Players.Get(txCtx, req.PlayerID)
		if err != nil {
			return err
		}
		if l.OwnerID != p.ID {
			return ErrListingGone
		}
		if err := u.Inventory.AddByName(txCtx, p.ID, l.Item, l.Quantity); err != nil {
			return err
		}
		if err := u.Listings.Delete(txCtx, l.ID); err != nil {
			return err
		}
		rep, err = u.Regulator.NormalizeAndLevelUp(txCtx, &p)
		if err != nil {
			return err
		}
		out = Result{Listing: l, Player: p}
		return nil
	})
	if err != nil {
		return Result{}, err
	}
	u.Regulator.Announce(ctx, rep)
	return out, nil
}

func (u UseCase) lot(ctx context.Context, id string) (trade.Listing, error) {
	l, err := u.Listings.Get(ctx, id)
	if errors.Is(err, ports.ErrNotFound) {
		return trade.Listing{}, ErrListingGone
	}
	return l, err
}
