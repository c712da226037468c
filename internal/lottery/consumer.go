package lottery

import (
	"encoding/json"

	"loto-platform/internal/event"
	"loto-platform/internal/history"
)

type Broadcaster interface {
	Broadcast(data []byte)
}

// RegisterConsumers fans settled wagers out to the in-memory
// leaderboard and to connected websocket clients.
func RegisterConsumers(bus *event.Bus, lb *Leaderboard, ws Broadcaster) {

	bus.Subscribe(event.EventWagerSettled, func(payload interface{}) {
		entry, ok := payload.(*history.Entry)
		if !ok {
			return
		}

		lb.Record(entry.UserID, entry.CoinAfter-entry.CoinBefore)

		if ws != nil {
			if data, err := json.Marshal(entry); err == nil {
				ws.Broadcast(data)
			}
		}
	})
}
