package tabu

import (
	"time"

	"github.com/rs/zerolog"
)

// Phase is the state of the current turn.
type Phase string

const (
	PhaseReady     Phase = "ready"
	PhaseCountdown Phase = "countdown"
	PhasePlaying   Phase = "playing"
	PhaseTurnEnd   Phase = "turnEnd"
)

// CountdownTicks is the length of the lead-in before a turn starts.
const CountdownTicks = 3

const tickInterval = time.Second

// Tally counts what happened during the current turn.
type Tally struct {
	Correct int `json:"correct"`
	Tabu    int `json:"tabu"`
	Passed  int `json:"passed"`
}

// Engine drives the turns of one Session.
//
// Every action reports whether it was applied. Actions that arrive in the
// wrong phase, after the game is over, while paused, or beyond the pass
// limit are ignored without changing any state; they happen when a stale
// tick or a double tap races a phase change.
//
// The Engine holds at most one timer at a time and stops it on every exit
// from countdown or playing. Ticks from a stopped timer are discarded.
type Engine struct {
	session *Session
	pool    []WordCard
	rng     Rand
	sched   Scheduler
	log     zerolog.Logger

	// OnTick, if set, is called after a timer tick changed the engine.
	OnTick func()

	phase     Phase
	paused    bool
	countdown int
	timeLeft  int
	card      *WordCard
	noCard    bool
	passes    int
	tally     Tally
	describer string

	timer Timer
	gen   uint64
}

// NewEngine returns an engine in PhaseReady for s.
func NewEngine(s *Session, pool []WordCard, r Rand, sched Scheduler, log zerolog.Logger) *Engine {
	return &Engine{
		session:  s,
		pool:     pool,
		rng:      r,
		sched:    sched,
		log:      log,
		phase:    PhaseReady,
		timeLeft: s.Settings.TurnDuration,
	}
}

func (e *Engine) Session() *Session { return e.session }
func (e *Engine) Phase() Phase      { return e.phase }
func (e *Engine) Paused() bool      { return e.paused }
func (e *Engine) Over() bool        { return e.session.Over }
func (e *Engine) PassesUsed() int   { return e.passes }
func (e *Engine) TimeLeft() int     { return e.timeLeft }
func (e *Engine) Countdown() int    { return e.countdown }
func (e *Engine) Tally() Tally      { return e.tally }

// Card returns the card on display, or false when the deck ran out.
func (e *Engine) Card() (WordCard, bool) {
	if e.card == nil {
		return WordCard{}, false
	}
	return *e.card, true
}

// Ready starts the countdown for the current describer.
func (e *Engine) Ready() bool {
	if e.phase != PhaseReady || e.session.Over {
		return false
	}
	d, ok := e.session.Describer()
	if !ok {
		return false
	}

	e.phase = PhaseCountdown
	e.countdown = CountdownTicks
	e.timeLeft = e.session.Settings.TurnDuration
	e.passes = 0
	e.tally = Tally{}
	e.card = nil
	e.noCard = false
	e.describer = d.ID
	e.startTimer()

	return true
}

// Correct scores for the describer's team. Reaching the target score ends
// the turn and the game without dealing another card. It still scores once
// the deck has run out.
func (e *Engine) Correct() bool {
	if !e.scoring() {
		return false
	}

	won := e.session.Correct()
	e.tally.Correct++
	if won {
		e.log.Debug().Str("session", e.session.ID).Str("team", string(e.session.Team)).Msg("target score reached")
		e.endTurn()
		return true
	}

	e.deal()
	return true
}

// Tabu penalizes the acting team and deals the next card. catcherID may be
// empty; otherwise that player is credited with the catch.
func (e *Engine) Tabu(catcherID string) bool {
	if !e.scoring() {
		return false
	}

	e.session.Tabu(catcherID)
	e.tally.Tabu++
	e.deal()
	return true
}

// Pass skips the card on display while passes remain for this turn. With
// no card on display there is nothing to skip.
func (e *Engine) Pass() bool {
	if !e.scoring() || e.card == nil || e.passes >= e.session.Settings.PassLimit {
		return false
	}

	e.passes++
	e.tally.Passed++
	e.deal()
	return true
}

// Finish ends a playing turn before its timer runs out.
func (e *Engine) Finish() bool {
	if e.phase != PhasePlaying {
		return false
	}
	e.endTurn()
	return true
}

// Next rotates to the other team after a turn has ended. It is refused once
// the game is over.
func (e *Engine) Next() bool {
	if e.phase != PhaseTurnEnd || e.session.Over {
		return false
	}

	e.session.Rotate()
	e.phase = PhaseReady
	e.timeLeft = e.session.Settings.TurnDuration
	e.countdown = 0
	return true
}

// Pause stops the countdown or turn timer, keeping the remaining time.
func (e *Engine) Pause() bool {
	if e.paused || (e.phase != PhaseCountdown && e.phase != PhasePlaying) {
		return false
	}
	e.stopTimer()
	e.paused = true
	return true
}

// Resume restarts the timer stopped by Pause.
func (e *Engine) Resume() bool {
	if !e.paused {
		return false
	}
	e.paused = false
	e.startTimer()
	return true
}

// Stop cancels any running timer. The engine must not be used afterwards.
func (e *Engine) Stop() {
	e.stopTimer()
}

func (e *Engine) scoring() bool {
	return e.phase == PhasePlaying && !e.paused && !e.session.Over
}

func (e *Engine) deal() {
	c, ok := e.session.Deal(e.pool, e.rng)
	if !ok {
		e.card = nil
		e.noCard = true
		e.log.Debug().Str("session", e.session.ID).Int("dealt", len(e.session.Dealt)).Msg("no more cards available")
		return
	}
	e.card = &c
	e.noCard = false
}

func (e *Engine) endTurn() {
	e.stopTimer()
	e.paused = false
	e.phase = PhaseTurnEnd
	e.card = nil
	e.session.record(TurnResult{
		DescriberID: e.describer,
		Team:        e.session.Team,
		Correct:     e.tally.Correct,
		Tabu:        e.tally.Tabu,
		Passed:      e.tally.Passed,
	})
}

func (e *Engine) startTimer() {
	e.stopTimer()
	gen := e.gen
	e.timer = e.sched.Every(tickInterval, func() {
		if gen != e.gen {
			return
		}
		e.tick()
		if e.OnTick != nil {
			e.OnTick()
		}
	})
}

func (e *Engine) stopTimer() {
	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}
	e.gen++
}

func (e *Engine) tick() {
	switch e.phase {
	case PhaseCountdown:
		e.countdown--
		if e.countdown > 0 {
			return
		}
		e.countdown = 0
		e.phase = PhasePlaying
		e.deal()
		e.startTimer()

	case PhasePlaying:
		if e.timeLeft <= 1 {
			e.timeLeft = 0
			e.endTurn()
			return
		}
		e.timeLeft--
	}
}
