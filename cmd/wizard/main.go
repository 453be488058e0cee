// Command wizard drives and inspects the Wizard trick-taking engine: it
// plays self-play episodes with heuristic bots, prints a configuration's
// GameType shape constants, and demonstrates information-state resampling.
package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/bastiscode/wizard-spiel/internal/bot"
	"github.com/bastiscode/wizard-spiel/internal/round"
	"github.com/bastiscode/wizard-spiel/internal/wizard"
)

func main() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	app := &cli.App{
		Name:  "wizard",
		Usage: "Drive and inspect the Wizard trick-taking engine",
		Commands: []*cli.Command{
			playCommand(),
			infoCommand(),
			resampleCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func configFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{Name: "players", Value: 4, Usage: "number of seats, 3-6"},
		&cli.IntFlag{Name: "round", Value: 1, Usage: "cards dealt to each seat this round"},
		&cli.IntFlag{Name: "start", Value: 0, Usage: "seat that leads guessing and the first trick"},
		&cli.StringFlag{Name: "reward", Value: "normal", Usage: "normal or binary"},
		&cli.Int64Flag{Name: "seed", Value: 1, Usage: "rng seed"},
	}
}

func configFromContext(c *cli.Context) (wizard.GameConfig, int64) {
	mode := round.Normal
	if c.String("reward") == "binary" {
		mode = round.Binary
	}
	return wizard.GameConfig{
		NumPlayers:  c.Int("players"),
		RoundNr:     c.Int("round"),
		StartPlayer: c.Int("start"),
		RewardMode:  mode,
	}, c.Int64("seed")
}

func playCommand() *cli.Command {
	return &cli.Command{
		Name:  "play",
		Usage: "Play one self-play episode with heuristic bots and log each action",
		Flags: configFlags(),
		Action: func(c *cli.Context) error {
			cfg, seed := configFromContext(c)
			g, err := wizard.NewGame(cfg)
			if err != nil {
				return err
			}
			st, err := g.NewInitialState()
			if err != nil {
				return err
			}

			rng := rand.New(rand.NewSource(seed))
			policy := bot.HeuristicPolicy{}
			for !st.IsTerminal() {
				if _, ok := st.Round().Phase().(round.DealingPhase); ok {
					outcomes, err := st.ChanceOutcomes()
					if err != nil {
						return err
					}
					if err := st.ApplyAction(sampleOutcome(outcomes, rng)); err != nil {
						return err
					}
					continue
				}

				player := st.CurrentPlayer()
				action := policy.SelectAction(st)
				log.Info().
					Int("player", player).
					Str("phase", st.Round().Phase().String()).
					Str("action", st.ActionToString(player, action)).
					Msg("action")
				if err := st.ApplyAction(action); err != nil {
					return err
				}
			}

			for p, ret := range st.Returns() {
				log.Info().Int("player", p).Float64("return", ret).Msg("final return")
			}
			return nil
		},
	}
}

func infoCommand() *cli.Command {
	return &cli.Command{
		Name:  "info",
		Usage: "Print the GameType shape constants for a configuration",
		Flags: configFlags(),
		Action: func(c *cli.Context) error {
			cfg, _ := configFromContext(c)
			g, err := wizard.NewGame(cfg)
			if err != nil {
				return err
			}
			fmt.Printf("num_players:             %d\n", g.NumPlayers())
			fmt.Printf("num_distinct_actions:    %d\n", g.NumDistinctActions())
			fmt.Printf("max_chance_outcomes:     %d\n", g.MaxChanceOutcomes())
			fmt.Printf("max_game_length:         %d\n", g.MaxGameLength())
			fmt.Printf("min_utility:             %v\n", g.MinUtility())
			fmt.Printf("max_utility:             %v\n", g.MaxUtility())
			fmt.Printf("observation_shape:       %v\n", g.ObservationShape())
			fmt.Printf("information_state_shape: %v\n", g.InformationStateShape())
			return nil
		},
	}
}

func resampleCommand() *cli.Command {
	flags := append(configFlags(),
		&cli.IntFlag{Name: "player", Value: 0, Usage: "seat whose information state to resample from"},
		&cli.IntFlag{Name: "steps", Value: 6, Usage: "number of actions to play before resampling"},
	)
	return &cli.Command{
		Name:  "resample",
		Usage: "Play partway through an episode, then print an alternate world consistent with one seat's information state",
		Flags: flags,
		Action: func(c *cli.Context) error {
			cfg, seed := configFromContext(c)
			g, err := wizard.NewGame(cfg)
			if err != nil {
				return err
			}
			st, err := g.NewInitialState()
			if err != nil {
				return err
			}

			rng := rand.New(rand.NewSource(seed))
			policy := bot.HeuristicPolicy{}
			for i := 0; i < c.Int("steps") && !st.IsTerminal(); i++ {
				if _, ok := st.Round().Phase().(round.DealingPhase); ok {
					outcomes, err := st.ChanceOutcomes()
					if err != nil {
						return err
					}
					if err := st.ApplyAction(sampleOutcome(outcomes, rng)); err != nil {
						return err
					}
					continue
				}
				if err := st.ApplyAction(policy.SelectAction(st)); err != nil {
					return err
				}
			}

			player := c.Int("player")
			fmt.Println("real state:")
			fmt.Print(st.ToString())

			resampled, err := st.ResampleFromInfostate(player, rng)
			if err != nil {
				return err
			}
			fmt.Printf("\nresampled world from player %d's information state:\n", player)
			fmt.Print(resampled.ToString())
			return nil
		},
	}
}

func sampleOutcome(outcomes []wizard.ChanceOutcome, rng *rand.Rand) int {
	target := rng.Float64()
	cumulative := 0.0
	for _, o := range outcomes {
		cumulative += o.Probability
		if target <= cumulative {
			return o.Action
		}
	}
	return outcomes[len(outcomes)-1].Action
}
