package main

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/spf13/cobra"

	htmltok "github.com/dpotapov/go-htmltok"
)

// wsUpgrader is a Gorilla WebSocket instance used to turn inspector HTTP
// requests into token streams.
var wsUpgrader = websocket.Upgrader{
	CheckOrigin: func(*http.Request) bool { return true },
}

var (
	serveAddr string

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Run the websocket token inspector",
		Long: `Serves a websocket endpoint at /tokenize. Every text message is fed to
a per-connection tokenizer as one chunk; the tokens and parse errors it
produces are sent back as a JSON array. Closing the socket ends the
stream.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger()
			mux := http.NewServeMux()
			mux.HandleFunc("/tokenize", func(w http.ResponseWriter, r *http.Request) {
				ws, err := wsUpgrader.Upgrade(w, r, nil)
				if err != nil {
					log.Error("websocket upgrade failed", "error", err)
					return
				}
				defer ws.Close()

				rec := &recorder{locInfo: true}
				tok := htmltok.New(htmltok.Options{SourceCodeLocationInfo: true}, rec)
				log.Info("inspector connected", "remote", ws.RemoteAddr())

				for {
					kind, msg, err := ws.ReadMessage()
					if err != nil {
						if websocket.IsCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
							log.Info("inspector disconnected", "remote", ws.RemoteAddr())
						} else {
							log.Error("read websocket message", "error", err)
						}
						return
					}
					if kind != websocket.TextMessage {
						continue
					}
					rec.records = rec.records[:0]
					tok.Write(string(msg), false, nil)
					payload, err := json.Marshal(rec.records)
					if err != nil {
						log.Error("marshal records", "error", err)
						return
					}
					if err := ws.WriteMessage(websocket.TextMessage, payload); err != nil {
						log.Error("write websocket message", "error", err)
						return
					}
				}
			})
			log.Info("inspector listening", "addr", serveAddr)
			return http.ListenAndServe(serveAddr, mux)
		},
	}
)

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8811", "listen address")
	rootCmd.AddCommand(serveCmd)
}
