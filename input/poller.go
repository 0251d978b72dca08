package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/vi-weather/constants"
	"github.com/lixenwraith/vi-weather/core"
)

// Source is a non-blocking key supply
type Source interface {
	// Available reports whether a key is waiting
	Available() bool
	// Next consumes one pending key as a lowercase rune, 0 when none is waiting
	Next() rune
}

// Poller turns tcell key events into a non-blocking Source
// PollEvent blocks, so a goroutine forwards keys into a buffered queue the loop drains without waiting
type Poller struct {
	keys        chan rune
	onInterrupt func()
	log         zerolog.Logger
}

// NewPoller starts forwarding events from screen
// onInterrupt is called for Ctrl+C, which raw mode delivers as a key instead of a signal
// The goroutine exits once the screen is finalized
func NewPoller(screen tcell.Screen, onInterrupt func(), log zerolog.Logger) *Poller {
	p := &Poller{
		keys:        make(chan rune, constants.InputQueueSize),
		onInterrupt: onInterrupt,
		log:         log,
	}
	core.Go(func() { p.run(screen) })
	return p
}

func (p *Poller) run(screen tcell.Screen) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		p.handle(ev)
	}
}

func (p *Poller) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyCtrlC:
			p.log.Debug().Msg("ctrl+c received")
			if p.onInterrupt != nil {
				p.onInterrupt()
			}
		case tcell.KeyRune:
			p.push(unicode.ToLower(ev.Rune()))
		}
	case *tcell.EventResize:
		w, h := ev.Size()
		p.log.Debug().Int("width", w).Int("height", h).Msg("resize ignored")
	}
}

func (p *Poller) push(key rune) {
	select {
	case p.keys <- key:
	default:
		p.log.Warn().Str("key", string(key)).Msg("input queue full, key dropped")
	}
}

// Available reports whether a key is waiting
func (p *Poller) Available() bool {
	return len(p.keys) > 0
}

// Next consumes one pending key without blocking
func (p *Poller) Next() rune {
	select {
	case k := <-p.keys:
		return k
	default:
		return 0
	}
}
