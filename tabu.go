// tabugo tables
//
// A table is one group of people playing around a shared screen (or
// several). Its roster, settings and running game live in a tabu.Table that
// is owned by a single Hub goroutine; every websocket message and every
// timer tick is funneled through that goroutine.
//
// Features:
// - WebSockets per table ID: /tabu/:table and /tabu/:table/ws
// - First connection to a table becomes the host (cookie based)
// - Only the host edits the roster, settings and language, starts and resets
// - Anyone at the table can drive the turn (ready, correct, tabu, pass, ...)
// - Out-of-order actions are ignored rather than reported
// - Every connection is rate limited
// - Finished games are archived once, on paid tiers only
// - Tables auto-reaped after a configurable idle timeout
// - In-browser QR button to share the table, backed by go-qrcode

package main

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/Seednode/tabugo/games/tabu"
	"github.com/gorilla/websocket"
	"golang.org/x/time/rate"
)

const (
	// Per-connection message budget: a sustained rate plus a burst for
	// fast tapping on correct/tabu.
	messageRate  rate.Limit = 8
	messageBurst            = 16

	maxMessageSize = 4096
	archiveTimeout = 5 * time.Second
)

// Messages coming from clients
type ClientMessage struct {
	Type      string         `json:"type"`
	Nickname  string         `json:"nickname,omitempty"`   // add_player
	Team      string         `json:"team,omitempty"`       // add_player
	PlayerID  string         `json:"player_id,omitempty"`  // remove_player / switch_team
	CatcherID string         `json:"catcher_id,omitempty"` // tabu
	Language  string         `json:"language,omitempty"`   // set_language
	Settings  *tabu.Settings `json:"settings,omitempty"`   // update_settings
}

// SessionInfoMessage is sent immediately on connect.
type SessionInfoMessage struct {
	Type      string   `json:"type"` // "session_info"
	Table     string   `json:"table"`
	IsHost    bool     `json:"is_host"`
	Languages []string `json:"languages"`
	History   bool     `json:"history"`
}

// LobbyState is the table before a game starts.
type LobbyState struct {
	Players  []tabu.Player `json:"players"`
	Settings tabu.Settings `json:"settings"`
	Language string        `json:"language"`
	CanStart bool          `json:"can_start"`
}

// GameStateMessage carries either the lobby or the running game.
type GameStateMessage struct {
	Type  string      `json:"type"` // "game_state"
	Lobby *LobbyState `json:"lobby,omitempty"`
	Game  *tabu.View  `json:"game,omitempty"`
}

// SimpleMessage is for notifications ("error", "archived").
type SimpleMessage struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

var errNotHost = errors.New("only the host can do that")

type Client struct {
	conn     *websocket.Conn
	send     chan any
	playerID string
	limiter  *rate.Limiter
}

type action struct {
	client *Client
	msg    ClientMessage
}

type Hub struct {
	id      string
	cfg     *Config
	table   *tabu.Table
	catalog *tabu.Catalog
	ledger  *tabu.Ledger

	clients  map[*Client]bool
	hostID   string
	saved    string          // last session handed to the ledger
	archives *sync.WaitGroup // in-flight ledger writes, shared by a manager

	register chan *Client
	unreg    chan *Client
	actions  chan action
	posts    chan func()
	done     chan struct{}
	stopOnce sync.Once

	mu         sync.RWMutex
	lastActive time.Time
}

func newHub(cfg *Config, id string, catalog *tabu.Catalog, ledger *tabu.Ledger, r tabu.Rand) *Hub {
	h := &Hub{
		id:         id,
		cfg:        cfg,
		catalog:    catalog,
		ledger:     ledger,
		clients:    make(map[*Client]bool),
		archives:   new(sync.WaitGroup),
		register:   make(chan *Client),
		unreg:      make(chan *Client),
		actions:    make(chan action),
		posts:      make(chan func()),
		done:       make(chan struct{}),
		lastActive: time.Now(),
	}

	log := cfg.log.With().Str("table", id).Logger()
	h.table = tabu.NewTable(catalog, cfg.language, r, tabu.ClockScheduler{Post: h.post}, log)
	h.table.OnTick = h.changed

	return h
}

// post runs fn on the hub goroutine. It gives up once the hub is stopped.
func (h *Hub) post(fn func()) {
	select {
	case h.posts <- fn:
	case <-h.done:
	}
}

func (h *Hub) submit(a action) bool {
	select {
	case h.actions <- a:
		return true
	case <-h.done:
		return false
	}
}

func (h *Hub) stop() {
	h.stopOnce.Do(func() {
		close(h.done)
	})
}

func (h *Hub) touch() {
	h.mu.Lock()
	h.lastActive = time.Now()
	h.mu.Unlock()
}

func (h *Hub) idleSince() time.Time {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return h.lastActive
}

func (h *Hub) run() {
	defer h.shutdown()

	for {
		select {
		case <-h.done:
			return

		case c := <-h.register:
			h.touch()
			h.join(c)

		case c := <-h.unreg:
			h.touch()
			if _, ok := h.clients[c]; ok {
				h.drop(c)
			}

		case a := <-h.actions:
			h.touch()
			h.handle(a)

		case fn := <-h.posts:
			fn()
		}
	}
}

// shutdown stops the game timer and disconnects everyone.
func (h *Hub) shutdown() {
	h.table.Reset()

	for c := range h.clients {
		h.drop(c)
		_ = c.conn.Close()
	}

	logf(h.cfg, "GAMES: Closed table %s", h.id)
}

func (h *Hub) join(c *Client) {
	// First connection becomes host
	if h.hostID == "" {
		h.hostID = c.playerID
	}

	h.clients[c] = true

	h.sendTo(c, SessionInfoMessage{
		Type:      "session_info",
		Table:     h.id,
		IsHost:    c.playerID == h.hostID,
		Languages: h.catalog.Languages(),
		History:   h.cfg.keepsHistory(),
	})
	h.sendTo(c, h.state())
}

func (h *Hub) drop(c *Client) {
	delete(h.clients, c)
	close(c.send)
}

// sendTo drops clients that cannot keep up. A dropped client's channel is
// closed, so it is never written to again.
func (h *Hub) sendTo(c *Client, msg any) {
	if _, ok := h.clients[c]; !ok {
		return
	}

	select {
	case c.send <- msg:
	default:
		h.drop(c)
	}
}

func (h *Hub) broadcast(msg any) {
	for c := range h.clients {
		h.sendTo(c, msg)
	}
}

func (h *Hub) state() GameStateMessage {
	msg := GameStateMessage{Type: "game_state"}

	if e, ok := h.table.Active(); ok {
		v := e.View()
		msg.Game = &v

		return msg
	}

	players := h.table.Players()
	if players == nil {
		players = []tabu.Player{}
	}

	msg.Lobby = &LobbyState{
		Players:  players,
		Settings: h.table.Settings(),
		Language: h.table.Language(),
		CanStart: h.table.CanStart(),
	}

	return msg
}

// changed runs after every applied action and every timer tick.
func (h *Hub) changed() {
	h.archiveIfOver()
	h.broadcast(h.state())
}

func (h *Hub) handle(a action) {
	var (
		applied bool
		err     error
	)

	switch a.msg.Type {
	case "add_player", "remove_player", "switch_team", "update_settings", "set_language", "start_game", "reset":
		if a.client.playerID != h.hostID {
			err = errNotHost
			break
		}
		applied, err = true, h.setup(a.msg)

	case "ready", "correct", "tabu", "pass", "finish", "next", "pause", "resume":
		applied, err = h.play(a.msg)

	default:
		return
	}

	if err != nil {
		h.sendTo(a.client, SimpleMessage{Type: "error", Message: err.Error()})

		return
	}

	if !applied {
		logf(h.cfg, "GAMES: Ignored %q at table %s", a.msg.Type, h.id)

		return
	}

	h.changed()
}

func (h *Hub) setup(msg ClientMessage) error {
	switch msg.Type {
	case "add_player":
		var team tabu.Team
		if msg.Team != "" {
			t, err := tabu.ParseTeam(msg.Team)
			if err != nil {
				return err
			}
			team = t
		}

		p, err := h.table.AddPlayer(msg.Nickname, team)
		if err != nil {
			return err
		}
		logf(h.cfg, "GAMES: Player %q joined team %s at table %s", p.Nickname, p.Team, h.id)

	case "remove_player":
		return h.table.RemovePlayer(msg.PlayerID)

	case "switch_team":
		return h.table.SwitchTeam(msg.PlayerID)

	case "update_settings":
		if msg.Settings == nil {
			return tabu.ErrInvalidSettings
		}
		return h.table.UpdateSettings(*msg.Settings)

	case "set_language":
		return h.table.SetLanguage(msg.Language)

	case "start_game":
		e, err := h.table.Start()
		if err != nil {
			return err
		}
		logf(h.cfg, "GAMES: Started session %s at table %s", e.Session().ID, h.id)

	case "reset":
		h.table.Reset()
		logf(h.cfg, "GAMES: Reset table %s", h.id)
	}

	return nil
}

// play applies a gameplay action. A false result with no error means the
// action was not valid in the current phase.
func (h *Hub) play(msg ClientMessage) (bool, error) {
	e, err := h.table.Engine()
	if err != nil {
		return false, err
	}

	switch msg.Type {
	case "ready":
		return e.Ready(), nil
	case "correct":
		return e.Correct(), nil
	case "tabu":
		return e.Tabu(msg.CatcherID), nil
	case "pass":
		return e.Pass(), nil
	case "finish":
		return e.Finish(), nil
	case "next":
		return e.Next(), nil
	case "pause":
		return e.Pause(), nil
	case "resume":
		return e.Resume(), nil
	}

	return false, nil
}

// archiveIfOver hands a finished session to the ledger exactly once. The
// write happens off the hub goroutine so a slow store never stalls play.
func (h *Hub) archiveIfOver() {
	if !h.cfg.keepsHistory() {
		return
	}

	e, ok := h.table.Active()
	if !ok || !e.Over() {
		return
	}

	s := e.Session()
	if h.saved == s.ID {
		return
	}
	h.saved = s.ID

	h.archives.Go(func() {
		ctx, cancel := context.WithTimeout(context.Background(), archiveTimeout)
		defer cancel()

		entry, added, err := h.ledger.Archive(ctx, s, time.Now())
		if err != nil {
			errorf(h.cfg, "STORE: Archiving session %s from table %s: %v", s.ID, h.id, err)
		}
		if !added {
			return
		}

		logf(h.cfg, "GAMES: Archived %s from table %s (%d-%d)", entry.ID, h.id, entry.Scores.A, entry.Scores.B)

		h.post(func() {
			h.broadcast(SimpleMessage{Type: "archived", Message: entry.ID})
		})
	})
}

func (c *Client) readPump(h *Hub) {
	defer func() {
		select {
		case h.unreg <- c:
		case <-h.done:
		}
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)

	for {
		var msg ClientMessage
		if err := c.conn.ReadJSON(&msg); err != nil {
			return
		}

		if !c.limiter.Allow() {
			continue
		}

		if !h.submit(action{client: c, msg: msg}) {
			return
		}
	}
}

func (c *Client) writePump() {
	defer c.conn.Close()

	for msg := range c.send {
		if err := c.conn.WriteJSON(msg); err != nil {
			return
		}
	}
}
