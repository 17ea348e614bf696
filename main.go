// Command solver plays interactive tic-tac-toe against the possibility-tree
// solver, or benchmarks it with "solver bench".
package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	"solver/experiments"
	"solver/tictactoe"
)

func main() {
	initConfig()
	setupLogging()

	if len(os.Args) > 1 && os.Args[1] == "bench" {
		cfg := experiments.Config{
			Games:  viper.GetInt("bench.games"),
			Depths: viper.GetIntSlice("bench.depths"),
			Seed:   uint64(viper.GetInt("bench.seed")),
			OutDir: viper.GetString("bench.out"),
		}
		if err := experiments.Run(cfg); err != nil {
			log.Fatal().Err(err).Msg("benchmark failed")
		}
		return
	}

	if err := play(); err != nil {
		log.Fatal().Err(err).Msg("game aborted")
	}
}

func initConfig() {
	viper.SetDefault("mark", "X")
	viper.SetDefault("log-level", "info")
	viper.SetDefault("bench.games", 20)
	viper.SetDefault("bench.depths", []int{2, 4, 0})
	viper.SetDefault("bench.seed", 1)
	viper.SetDefault("bench.out", "results")

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.SetEnvPrefix("solver")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			log.Warn().Err(err).Msg("ignoring unreadable config file")
		}
	}
}

func setupLogging() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	level, err := zerolog.ParseLevel(viper.GetString("log-level"))
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
}

func play() error {
	human := tictactoe.X
	if strings.EqualFold(viper.GetString("mark"), "O") {
		human = tictactoe.O
	}
	machine := human.Other()

	board := tictactoe.NewBoard()
	s := tictactoe.NewSolver(tictactoe.Eval{Us: machine}, board)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "move> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return fmt.Errorf("failed to start prompt: %w", err)
	}
	defer rl.Close()

	fmt.Printf("You are %s. Enter moves as \"row col\" (0-2); commands: hint, exit.\n", human)
	for {
		fmt.Print(board)
		if reportOutcome(board) {
			return nil
		}

		var move tictactoe.Move
		if board.Turn() == human {
			var quit bool
			move, quit, err = readMove(rl, board, human)
			if err != nil {
				return err
			}
			if quit {
				return nil
			}
		} else {
			value, chosen, ok := s.Choose()
			if !ok {
				fmt.Println("tie")
				return nil
			}
			move = chosen
			fmt.Printf("%s plays %d %d\n", machine, move.Row, move.Col)
			log.Debug().Float64("value", float64(value)).Msgf("machine chose %v", move)
		}
		s.Select(move)
		board = board.Apply(move)
	}
}

// reportOutcome prints the result if the game has ended.
func reportOutcome(board tictactoe.Board) bool {
	if winner := board.Winner(); winner != tictactoe.None {
		fmt.Printf("%s won\n", winner)
		return true
	}
	if board.Full() {
		fmt.Println("tie")
		return true
	}
	return false
}

// readMove prompts until the human enters a legal move or quits. Input
// validation happens here: the solver treats an illegal change as a contract
// violation.
func readMove(rl *readline.Instance, board tictactoe.Board, human tictactoe.Player) (tictactoe.Move, bool, error) {
	for {
		line, err := rl.Readline()
		if err != nil { // interrupt or EOF
			return tictactoe.Move{}, true, nil
		}
		line = strings.TrimSpace(line)
		switch line {
		case "":
			continue
		case "exit", "quit":
			return tictactoe.Move{}, true, nil
		case "hint":
			hinter := tictactoe.NewSolver(tictactoe.Eval{Us: human}, board)
			if value, move, ok := hinter.Choose(); ok {
				fmt.Printf("try %d %d (value %.2f)\n", move.Row, move.Col, float64(value))
			}
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 2 {
			fmt.Println("enter a move as \"row col\"")
			continue
		}
		row, errRow := strconv.Atoi(fields[0])
		col, errCol := strconv.Atoi(fields[1])
		if errRow != nil || errCol != nil || row < 0 || row > 2 || col < 0 || col > 2 {
			fmt.Println("rows and columns run 0-2")
			continue
		}
		move := tictactoe.Move{Row: row, Col: col}
		if !legal(board, move) {
			fmt.Println("that cell is taken")
			continue
		}
		return move, false, nil
	}
}

func legal(board tictactoe.Board, move tictactoe.Move) bool {
	for w := range board.Changes() {
		if w.Change == move {
			return true
		}
	}
	return false
}
