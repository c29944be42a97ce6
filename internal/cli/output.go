package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/mcoot/pebbles-game/internal/api/response"
	"github.com/mcoot/pebbles-game/internal/model"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter writing to w
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintJSONLine outputs data as a single line of JSON
func (o *Output) PrintJSONLine(data any) {
	_ = json.NewEncoder(o.w).Encode(data)
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		o.PrintJSONLine(map[string]string{"message": msg})
	} else {
		_, _ = fmt.Fprintln(o.w, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case response.ActionResponse:
		o.printActionResponse(v)
	case response.GameState:
		o.printGameState(v)
	case response.HealthResponse:
		o.printf("Status: %s\n", v.Status)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

func (o *Output) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(o.w, format, args...)
}

func displayName(p string) string {
	return model.Player(p).DisplayName()
}

func pebbles(n uint32) string {
	if n == 1 {
		return "1 pebble"
	}
	return fmt.Sprintf("%d pebbles", n)
}

func (o *Output) printActionResponse(r response.ActionResponse) {
	switch model.EventType(r.Event.Type) {
	case model.EventCounterTurn:
		o.printf("Computer took %s.\n", pebbles(r.Event.Pebbles))
	case model.EventWon:
		if r.State.IsOver {
			o.printf("%s won the game!\n", displayName(r.Event.Player))
		} else {
			// Also sent when a game starts and for an out-of-range move
			o.printf("Won: %s (game continues)\n", displayName(r.Event.Player))
		}
	default:
		o.printf("Event: %s\n", r.Event.Type)
	}
	o.printf("\n")
	o.printGameState(r.State)
}

func (o *Output) printGameState(g response.GameState) {
	o.printf("Pile: %s left of %d\n", pebbles(g.PebblesRemaining), g.PebblesCount)
	o.printf("Take: 1 to %d per turn\n", g.MaxPebblesPerTurn)
	o.printf("Difficulty: %s\n", g.Difficulty)
	o.printf("First move: %s\n", displayName(g.FirstPlayer))

	if g.Winner != nil {
		o.printf("Winner: %s\n", displayName(*g.Winner))
	} else {
		o.printf("To move: %s\n", displayName(g.CurrentPlayer))
	}
}
