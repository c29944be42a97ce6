package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mcoot/pebbles-game/internal/api/request"
	"github.com/mcoot/pebbles-game/internal/api/response"
)

// addConfigFlags registers the game configuration flags shared by start and restart
func addConfigFlags(cmd *cobra.Command, req *request.StartRequest) {
	cmd.Flags().StringVarP(&req.Difficulty, "difficulty", "d", "easy", "Difficulty: easy, hard")
	cmd.Flags().Uint32VarP(&req.PebblesCount, "pebbles", "p", 15, "Pebbles in the pile")
	cmd.Flags().Uint32VarP(&req.MaxPebblesPerTurn, "max", "m", 3, "Most pebbles a player may take per turn")
}

func newStartCmd() *cobra.Command {
	var req request.StartRequest

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start the game",
		Long: `Start the game. A coin flip decides who moves first; if the computer wins
the flip it makes its opening move straight away.

Fails if a game already exists; use restart instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.ActionResponse

			if err := client.Post("/api/v1/game", req, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}
	addConfigFlags(cmd, &req)

	return cmd
}

func newTurnCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "turn <pebbles>",
		Short: "Take pebbles from the pile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.ParseUint(args[0], 10, 32)
			if err != nil {
				return fmt.Errorf("pebbles must be a non-negative whole number: %q", args[0])
			}

			return postAction(cmd, request.NewTurnRequest(uint32(n)))
		},
	}
}

func newGiveUpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "give-up",
		Short: "Forfeit the current game",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return postAction(cmd, request.NewGiveUpRequest())
		},
	}
}

func newRestartCmd() *cobra.Command {
	var req request.StartRequest

	cmd := &cobra.Command{
		Use:   "restart",
		Short: "Discard the current game and start a new one",
		Long: `Discard the current game and start a new one. A coin flip decides who
moves first; no move is played, even when the computer wins the flip.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return postAction(cmd, request.NewRestartRequest(req))
		},
	}
	addConfigFlags(cmd, &req)

	return cmd
}

func newStateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "state",
		Short: "Show the current game",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.GameState

			if err := client.Get("/api/v1/game", &result); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}
}

func postAction(cmd *cobra.Command, action request.ActionRequest) error {
	var result response.ActionResponse

	if err := client.Post("/api/v1/game/actions", action, &result); err != nil {
		return err
	}

	NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
	return nil
}
