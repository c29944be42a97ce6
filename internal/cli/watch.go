package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gorilla/websocket"
	"github.com/spf13/cobra"

	"github.com/mcoot/pebbles-game/internal/api/response"
)

func newWatchCmd() *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Stream game events as they happen",
		Long: `Connect to the server's event stream and print every event with the
game state it produced.

Press Ctrl+C to disconnect.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return watchEvents(ctx, cmd, count)
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 0, "Exit after this many events (0 streams forever)")

	return cmd
}

func watchEvents(ctx context.Context, cmd *cobra.Command, count int) error {
	url := client.WebsocketURL("/api/v1/game/events")
	client.tracef("> GET %s (websocket)\n", url)

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return fmt.Errorf("connection failed: %w", err)
	}
	defer func() { _ = conn.Close() }()

	// Unblock ReadMessage on Ctrl+C
	go func() {
		<-ctx.Done()
		_ = conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		_ = conn.Close()
	}()

	jsonLines := cfg.Output == "json"
	out := NewOutput(cfg.Output, cmd.OutOrStdout())
	if !jsonLines {
		out.PrintMessage("Watching for game events")
	}

	for received := 0; count == 0 || received < count; received++ {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil || websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return nil
			}
			return fmt.Errorf("stream error: %w", err)
		}

		var event response.ActionResponse
		if err := json.Unmarshal(msg, &event); err != nil {
			return errors.New("stream sent a malformed event")
		}
		if jsonLines {
			out.PrintJSONLine(event)
		} else {
			out.Print(event)
		}
	}
	return nil
}
