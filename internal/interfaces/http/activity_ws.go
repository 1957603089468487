package http

import (
	"github.com/gorilla/websocket"
	"github.com/lingua-launchpad/academy-server/internal/progress"
)

// HandleActivityFeed stream activity entries to the client as they are
// recorded. The session ends when the client goes away or the write fails.
func HandleActivityFeed(broker *progress.ActivityBroker) func(*websocket.Conn) error {
	return func(conn *websocket.Conn) error {
		entries, cancel := broker.Subscribe()
		defer cancel()

		// drain the read side, pong frames are handled there
		closed := make(chan struct{})
		go func() {
			defer close(closed)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		for {
			select {
			case entry := <-entries:
				if err := conn.WriteJSON(entry); err != nil {
					return err
				}
			case <-closed:
				return nil
			}
		}
	}
}
