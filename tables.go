package main

import (
	"crypto/rand"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/Seednode/tabugo/games/tabu"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
	"github.com/skip2/go-qrcode"
	"golang.org/x/time/rate"
)

const (
	playerCookieName = "tabugo_id"
	tableIDLength    = 6
	// No 0/O or 1/I/l, table IDs get read aloud and typed on phones.
	tableIDLetters = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

func getOrSetPlayerID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(playerCookieName); err == nil && c.Value != "" {
		return c.Value
	}

	id := uuid.NewString()

	http.SetCookie(w, &http.Cookie{
		Name:     playerCookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return id
}

func validTableID(id string) bool {
	if len(id) != tableIDLength {
		return false
	}
	for _, r := range id {
		if !strings.ContainsRune(tableIDLetters, r) {
			return false
		}
	}
	return true
}

// TableManager holds a set of hubs keyed by table ID, so each /tabu/:table
// is its own isolated table.
type TableManager struct {
	cfg     *Config
	catalog *tabu.Catalog
	ledger  *tabu.Ledger

	mu          sync.Mutex
	hubs        map[string]*Hub
	idleTimeout time.Duration
	done        chan struct{}
	closeOnce   sync.Once

	// archives tracks ledger writes from every table so Close can wait
	// for them before the store goes away.
	archives sync.WaitGroup
}

func newTableManager(cfg *Config, catalog *tabu.Catalog, ledger *tabu.Ledger) *TableManager {
	tm := &TableManager{
		cfg:         cfg,
		catalog:     catalog,
		ledger:      ledger,
		hubs:        make(map[string]*Hub),
		idleTimeout: cfg.sessionTimeout,
		done:        make(chan struct{}),
	}
	if tm.idleTimeout > 0 {
		go tm.reaperLoop()
	}
	return tm
}

// newRand seeds each table's dealing. A fixed --seed makes every table deal
// the same sequence.
func (tm *TableManager) newRand() tabu.Rand {
	seed := tm.cfg.seed
	if seed == 0 {
		s, err := tabu.NewSeed()
		if err != nil {
			errorf(tm.cfg, "GAMES: Falling back to clock seed: %v", err)
			s = uint64(time.Now().UnixNano())
		}
		seed = s
	}
	return tabu.NewRand(seed)
}

func (tm *TableManager) getHub(tableID string) *Hub {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	if hub, ok := tm.hubs[tableID]; ok {
		return hub
	}

	hub := newHub(tm.cfg, tableID, tm.catalog, tm.ledger, tm.newRand())
	hub.archives = &tm.archives
	tm.hubs[tableID] = hub
	go hub.run()

	logf(tm.cfg, "GAMES: Opened table %s", tableID)

	return hub
}

// Len reports the number of open tables.
func (tm *TableManager) Len() int {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	return len(tm.hubs)
}

// newTableID generates a crypto-random table ID and ensures it doesn't
// collide with an open table.
func (tm *TableManager) newTableID() string {
	for {
		buf := make([]byte, tableIDLength)
		if _, err := rand.Read(buf); err != nil {
			panic("crypto/rand failure: " + err.Error())
		}
		out := make([]byte, tableIDLength)
		for i := range out {
			out[i] = tableIDLetters[int(buf[i])%len(tableIDLetters)]
		}
		id := string(out)

		tm.mu.Lock()
		_, exists := tm.hubs[id]
		tm.mu.Unlock()

		if !exists {
			return id
		}
	}
}

// reap closes tables idle since before cutoff and returns how many closed.
func (tm *TableManager) reap(cutoff time.Time) int {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	n := 0
	for id, hub := range tm.hubs {
		if hub.idleSince().Before(cutoff) {
			delete(tm.hubs, id)
			hub.stop()
			n++
		}
	}
	return n
}

func (tm *TableManager) reaperLoop() {
	ticker := time.NewTicker(tm.idleTimeout / 2)
	defer ticker.Stop()

	for {
		select {
		case <-tm.done:
			return
		case <-ticker.C:
			if n := tm.reap(time.Now().Add(-tm.idleTimeout)); n > 0 {
				logf(tm.cfg, "GAMES: Reaped %d idle tables", n)
			}
		}
	}
}

// Close stops the reaper and every open table, then waits for pending
// archive writes to finish.
func (tm *TableManager) Close() {
	tm.closeOnce.Do(func() {
		close(tm.done)
	})

	tm.mu.Lock()
	for id, hub := range tm.hubs {
		delete(tm.hubs, id)
		hub.stop()
	}
	tm.mu.Unlock()

	tm.archives.Wait()
}

// WebSocket handler that picks the hub based on :table
func serveWSForManager(cfg *Config, tm *TableManager) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		tableID := ps.ByName("table")
		if !validTableID(tableID) {
			http.Error(w, "invalid table id", http.StatusBadRequest)
			return
		}

		playerID := getOrSetPlayerID(w, r)

		hub := tm.getHub(tableID)

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logf(cfg, "SERVE: Websocket upgrade for %s failed: %v", realIP(r), err)
			return
		}

		client := &Client{
			conn:     conn,
			send:     make(chan any, 16),
			playerID: playerID,
			limiter:  rate.NewLimiter(messageRate, messageBurst),
		}

		select {
		case hub.register <- client:
		case <-hub.done:
			_ = conn.Close()
			return
		}

		go client.writePump()
		client.readPump(hub)
	}
}

// QR handler: generates a PNG QR code for the current table URL using go-qrcode.
func qrHandler(cfg *Config) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		if !validTableID(ps.ByName("table")) {
			http.Error(w, "invalid table id", http.StatusBadRequest)
			return
		}

		scheme := cfg.scheme()
		if proto := r.Header.Get("X-Forwarded-Proto"); proto == "http" || proto == "https" {
			scheme = proto
		}

		// We are at /.../:table/qr; strip trailing "/qr" to get the table URL.
		url := scheme + "://" + r.Host + strings.TrimSuffix(r.URL.Path, "/qr")

		const qrSize = 320
		png, err := qrcode.Encode(url, qrcode.Medium, qrSize)
		if err != nil {
			http.Error(w, "qr generation failed", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "image/png")
		w.Header().Set("Cache-Control", "public, max-age=3600")
		securityHeaders(cfg, w)
		_, _ = w.Write(png)
	}
}

func serveTable(cfg *Config, errs chan<- error) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		if !validTableID(ps.ByName("table")) {
			http.NotFound(w, r)
			return
		}

		data, err := assets.ReadFile("assets/tabu/index.html")
		if err != nil {
			errs <- err
			http.Error(w, "missing page", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Cache-Control", "no-cache")
		securityHeaders(cfg, w)

		_ = getOrSetPlayerID(w, r)

		if _, err := w.Write(data); err != nil {
			errs <- err
		}
	}
}

// redirectNewTable handles GET /tabu by generating a new table ID and
// redirecting to /tabu/:table.
func redirectNewTable(cfg *Config, path string, tm *TableManager) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		tableID := tm.newTableID()
		logf(cfg, "GAMES: Created table %s for %s", tableID, realIP(r))
		http.Redirect(w, r, cfg.prefix+path+"/"+tableID, http.StatusTemporaryRedirect)
	}
}

// registerTabuGame sets up routes so that:
//   - $path                → redirects to a new table
//   - $path/:table         → HTML client
//   - $path/:table/ws      → WebSocket for that table
//   - $path/:table/qr      → PNG QR code for that table URL
func registerTabuGame(cfg *Config, path string, mux *httprouter.Router, catalog *tabu.Catalog, ledger *tabu.Ledger, errs chan<- error) *TableManager {
	tm := newTableManager(cfg, catalog, ledger)

	mux.GET(cfg.prefix+path, redirectNewTable(cfg, path, tm))
	mux.GET(cfg.prefix+path+"/:table", serveTable(cfg, errs))
	mux.GET(cfg.prefix+path+"/:table/ws", serveWSForManager(cfg, tm))
	mux.GET(cfg.prefix+path+"/:table/qr", qrHandler(cfg))

	return tm
}
