package net

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"LocalPaint/internal/export"
	"LocalPaint/internal/render"
	"LocalPaint/internal/state"
)

const (
	MsgReset   = "reset"
	MsgSegment = "segment"

	sendBuffer = 256
)

// Message is what viewers receive. A reset carries the whole canvas; a
// segment carries one appended segment.
type Message struct {
	Type       string          `json:"type"`
	Background string          `json:"background,omitempty"`
	Segments   []state.Segment `json:"segments,omitempty"`
	Segment    *state.Segment  `json:"segment,omitempty"`
}

type viewer struct {
	id   string
	conn *websocket.Conn
	send chan []byte
}

// Hub mirrors the canvas to read-only viewers. It keeps its own copy of
// the background and log so HTTP handlers never touch the board.
type Hub struct {
	ID            string
	width, height int

	mu         sync.RWMutex
	background string
	segments   []state.Segment
	viewers    map[string]*viewer

	upgrader websocket.Upgrader
}

func NewHub(width, height int, background string) *Hub {
	return &Hub{
		ID:         uuid.NewString(),
		width:      width,
		height:     height,
		background: background,
		segments:   make([]state.Segment, 0),
		viewers:    make(map[string]*viewer),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

// Reset replaces the mirrored canvas and tells every viewer.
func (h *Hub) Reset(background string, segs []state.Segment) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.background = background
	h.segments = make([]state.Segment, len(segs))
	copy(h.segments, segs)
	h.broadcast(h.resetMessage())
}

// Append mirrors one new segment.
func (h *Hub) Append(seg state.Segment) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.segments = append(h.segments, seg)
	h.broadcast(Message{Type: MsgSegment, Segment: &seg})
}

// Snapshot returns the mirrored background and a copy of the log.
func (h *Hub) Snapshot() (string, []state.Segment) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	segs := make([]state.Segment, len(h.segments))
	copy(segs, h.segments)
	return h.background, segs
}

func (h *Hub) Viewers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.viewers)
}

// Handler serves /ws, /segments.json and /snapshot.jpeg.
func (h *Hub) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", h.serveWS)
	mux.HandleFunc("/segments.json", h.serveSegments)
	mux.HandleFunc("/snapshot.jpeg", h.serveSnapshot)
	return mux
}

// Close disconnects every viewer.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for id, v := range h.viewers {
		close(v.send)
		delete(h.viewers, id)
	}
}

func (h *Hub) serveWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[SHARE] Upgrade failed for %s: %v", r.RemoteAddr, err)
		return
	}
	v := &viewer{id: uuid.NewString(), conn: conn, send: make(chan []byte, sendBuffer)}

	h.mu.Lock()
	h.viewers[v.id] = v
	// queued under the lock so no segment can slip in before the reset
	if data, err := json.Marshal(h.resetMessage()); err == nil {
		v.send <- data
	}
	h.mu.Unlock()
	log.Printf("[SHARE] Viewer %s connected from %s", v.id, r.RemoteAddr)

	go h.writeLoop(v)
	h.readLoop(v)
}

// readLoop discards anything viewers send; they can not draw.
func (h *Hub) readLoop(v *viewer) {
	defer h.drop(v)
	for {
		if _, _, err := v.conn.ReadMessage(); err != nil {
			log.Printf("[SHARE] Viewer %s disconnected: %v", v.id, err)
			return
		}
	}
}

func (h *Hub) writeLoop(v *viewer) {
	defer v.conn.Close()
	for data := range v.send {
		if err := v.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			log.Printf("[SHARE] Error sending to %s: %v", v.id, err)
			return
		}
	}
	_ = v.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}

func (h *Hub) drop(v *viewer) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.viewers[v.id]; ok {
		close(v.send)
		delete(h.viewers, v.id)
	}
}

// broadcast must be called with h.mu held. Viewers that fall behind are
// disconnected.
func (h *Hub) broadcast(msg Message) {
	if len(h.viewers) == 0 {
		return
	}
	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("[SHARE] Encoding %s message: %v", msg.Type, err)
		return
	}
	for id, v := range h.viewers {
		select {
		case v.send <- data:
		default:
			log.Printf("[SHARE] Viewer %s too slow, dropping", id)
			close(v.send)
			delete(h.viewers, id)
		}
	}
}

func (h *Hub) resetMessage() Message {
	segs := make([]state.Segment, len(h.segments))
	copy(segs, h.segments)
	return Message{Type: MsgReset, Background: h.background, Segments: segs}
}

func (h *Hub) serveSegments(w http.ResponseWriter, r *http.Request) {
	bg, segs := h.Snapshot()
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(Message{Type: MsgReset, Background: bg, Segments: segs}); err != nil {
		log.Printf("[SHARE] Writing segments: %v", err)
	}
}

func (h *Hub) serveSnapshot(w http.ResponseWriter, r *http.Request) {
	bg, segs := h.Snapshot()
	img := render.Render(h.width, h.height, bg, segs).Image()
	w.Header().Set("Content-Type", "image/jpeg")
	if err := export.WriteJPEG(w, img, export.DefaultQuality); err != nil {
		log.Printf("[SHARE] Writing snapshot: %v", err)
	}
}
