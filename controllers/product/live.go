package productcontroller

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/malikdesigner/mobile-sale-store/catalog"
	"github.com/malikdesigner/mobile-sale-store/models"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// liveQuery is what a connected client may adjust: search text, filter
// state, sort key. Every change triggers a full recompute, same as the
// storefront does per keystroke.
type liveQuery struct {
	Search  string              `json:"search"`
	Filters catalog.FilterState `json:"filters"`
	SortBy  catalog.SortKey     `json:"sortBy"`
}

type liveResult struct {
	Products          []models.Product `json:"products"`
	Count             int              `json:"count"`
	ActiveFilterCount int              `json:"activeFilterCount"`
}

// LiveProducts streams the visible product list over a websocket. The
// client receives a recomputed list on every product snapshot and after
// every query update it sends.
func LiveProducts(engine *catalog.Engine, feed catalog.Feed) gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		var mu sync.Mutex // one writer at a time on the socket
		query := liveQuery{Filters: catalog.DefaultFilters(), SortBy: catalog.SortNewest}

		send := func() {
			mu.Lock()
			defer mu.Unlock()
			visible := engine.Query(query.Search, query.Filters, query.SortBy)
			result := liveResult{
				Products:          visible,
				Count:             len(visible),
				ActiveFilterCount: query.Filters.ActiveCount(),
			}
			data, err := json.Marshal(result)
			if err != nil {
				return
			}
			_ = conn.WriteMessage(websocket.TextMessage, data)
		}

		unsubscribe := feed.Subscribe(func([]models.Product) { send() })
		defer unsubscribe()

		// Initial view, then recompute per client message.
		send()
		for {
			_, data, err := conn.ReadMessage()
			if err != nil {
				break
			}
			next := liveQuery{Filters: catalog.DefaultFilters(), SortBy: catalog.SortNewest}
			if err := json.Unmarshal(data, &next); err != nil {
				continue
			}
			mu.Lock()
			query = next
			mu.Unlock()
			send()
		}
	}
}
