package ws

import (
	"log"
	"net/http"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/niksankarkee/restosaas-sub000/entity"
	"github.com/niksankarkee/restosaas-sub000/services"
	"github.com/niksankarkee/restosaas-sub000/utils"
)

// ReservationHub pushes live reservation events to owner dashboards, one room
// per restaurant.
type ReservationHub struct {
	clients    map[uint]map[*websocket.Conn]bool // restaurantID -> set of clients
	broadcast  chan ReservationEvent
	register   chan Subscription
	unregister chan Subscription
	mu         sync.Mutex
	restSvc    *services.RestaurantService
}

// Subscription is one owner connection watching one restaurant.
type Subscription struct {
	Conn         *websocket.Conn
	RestaurantID uint
	UserID       uint
}

// ReservationEvent is what owner dashboards receive.
type ReservationEvent struct {
	RestaurantID uint                `json:"restaurantId"`
	Kind         string              `json:"kind"` // created / confirmed / cancelled / completed
	Reservation  *entity.Reservation `json:"reservation"`
}

func NewReservationHub(restSvc *services.RestaurantService) *ReservationHub {
	return &ReservationHub{
		clients:    make(map[uint]map[*websocket.Conn]bool),
		broadcast:  make(chan ReservationEvent),
		register:   make(chan Subscription),
		unregister: make(chan Subscription),
		restSvc:    restSvc,
	}
}

// Run loops over register/unregister/broadcast forever; start it once from main.
func (h *ReservationHub) Run() {
	for {
		select {
		case sub := <-h.register:
			h.mu.Lock()
			if h.clients[sub.RestaurantID] == nil {
				h.clients[sub.RestaurantID] = make(map[*websocket.Conn]bool)
			}
			h.clients[sub.RestaurantID][sub.Conn] = true
			h.mu.Unlock()

		case sub := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[sub.RestaurantID][sub.Conn]; ok {
				delete(h.clients[sub.RestaurantID], sub.Conn)
				sub.Conn.Close()
			}
			h.mu.Unlock()

		case event := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients[event.RestaurantID] {
				if err := conn.WriteJSON(event); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients[event.RestaurantID], conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Notify publishes a reservation event without blocking the HTTP request that
// produced it.
func (h *ReservationHub) Notify(kind string, res *entity.Reservation) {
	if res == nil {
		return
	}
	go func() {
		h.broadcast <- ReservationEvent{
			RestaurantID: res.RestaurantID,
			Kind:         kind,
			Reservation:  res,
		}
	}()
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/partner/reservations/:restaurantId (token auth via middleware)
func (h *ReservationHub) HandleWebSocket(c *gin.Context) {
	restIDStr := c.Param("restaurantId")
	restID64, err := strconv.ParseUint(restIDStr, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad restaurant id"})
		return
	}
	restID := uint(restID64)

	userID := utils.CurrentUserID(c)
	role := utils.CurrentRole(c)

	// only the owner of this restaurant (or an admin) may watch its feed
	if role != "admin" {
		rest, err := h.restSvc.GetByOwner(userID)
		if err != nil || rest.ID != restID {
			c.JSON(http.StatusForbidden, gin.H{"error": "no access"})
			return
		}
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	sub := Subscription{Conn: conn, RestaurantID: restID, UserID: userID}
	h.register <- sub

	go h.keepAlive(sub)
}

// keepAlive drains client frames (dashboards only listen) and unregisters on
// disconnect.
func (h *ReservationHub) keepAlive(sub Subscription) {
	defer func() { h.unregister <- sub }()

	for {
		if _, _, err := sub.Conn.ReadMessage(); err != nil {
			break
		}
	}
}
