package main

import (
	"fmt"
	"io"
	"time"

	"github.com/HamletSargsyan/livebot/internal/app/status"
	"github.com/HamletSargsyan/livebot/internal/domain/items"

	"github.com/fatih/color"
)

var (
	accent  = color.New(color.FgCyan, color.Bold)
	good    = color.New(color.FgGreen)
	warn    = color.New(color.FgYellow)
	danger  = color.New(color.FgRed, color.Bold)
	neutral = color.New(color.FgHiWhite)
)

// gauge colors a 0..100 vital; high is good unless invert is set.
func gauge(v int64, invert bool) string {
	score := v
	if invert {
		score = 100 - v
	}
	switch {
	case score >= 60:
		return good.Sprintf("%3d", v)
	case score >= 30:
		return warn.Sprintf("%3d", v)
	default:
		return danger.Sprintf("%3d", v)
	}
}

func renderPlayer(w io.Writer, v status.Response) {
	p := v.Player
	accent.Fprintf(w, "%s (%d)\n", p.Name, p.ID)
	fmt.Fprintf(w, "level %d  xp %.1f/%.1f  coin %d  luck %d\n",
		p.Progress.Level, p.Progress.XP, p.Progress.MaxXP, p.Coin, p.Luck)
	fmt.Fprintf(w, "health %s  mood %s  hunger %s  fatigue %s\n",
		gauge(p.Vitals.Health, false), gauge(p.Vitals.Mood, false),
		gauge(p.Vitals.Hunger, true), gauge(p.Vitals.Fatigue, true))

	if p.Action != nil {
		left := time.Duration(v.RemainingSeconds) * time.Second
		if left > 0 {
			warn.Fprintf(w, "busy: %s, %s left\n", p.Action.Type, left)
		} else {
			good.Fprintf(w, "done: %s, waiting to be collected\n", p.Action.Type)
		}
	}
	if v.Pet != nil {
		fmt.Fprintf(w, "pet %s  level %d\n", v.Pet.Name, v.Pet.Progress.Level)
	}

	accent.Fprintln(w, "inventory")
	if len(v.Inventory) == 0 {
		neutral.Fprintln(w, "  (empty)")
	}
	for _, e := range v.Inventory {
		glyph := ""
		if it, err := items.Lookup(e.Name); err == nil {
			glyph = it.Glyph + " "
		}
		if e.Kind == items.Usable {
			fmt.Fprintf(w, "  %s%s  %.0f%%\n", glyph, e.Name, e.Condition)
			continue
		}
		fmt.Fprintf(w, "  %s%s x%d\n", glyph, e.Name, e.Quantity)
	}

	for _, a := range v.Achievements {
		if a.Awarded {
			good.Fprintf(w, "%s %s\n", a.Glyph, a.Name)
		}
	}
}
