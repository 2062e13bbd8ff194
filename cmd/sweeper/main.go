package main

import (
	"flag"
	"fmt"
	"hash/maphash"
	"math/rand/v2"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"

	"github.com/vancomm/minesweeper-agent/internal/board"
	"github.com/vancomm/minesweeper-agent/internal/game"
)

var log = logrus.New()

var (
	width     int
	height    int
	mineCount int
	seed      uint64
	delay     time.Duration
	logPath   string
	quiet     bool
)

func init() {
	flag.IntVar(&width, "width", 9, "board width")
	flag.IntVar(&height, "height", 9, "board height")
	flag.IntVar(&mineCount, "mines", 10, "mine count")
	flag.Uint64Var(&seed, "seed", 0, "random seed (0 picks one)")
	flag.DurationVar(&delay, "delay", 0, "pause between moves")
	flag.StringVar(&logPath, "log", "", "log file path")
	flag.BoolVar(&quiet, "quiet", false, "only print the final summary")
}

func setupLogging() {
	log.SetFormatter(&logrus.TextFormatter{ForceColors: true})
	if logPath == "" {
		return
	}
	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   logPath,
		MaxSize:    10, // Mb
		MaxBackups: 3,
		MaxAge:     28, // days
		Level:      logrus.DebugLevel,
		Formatter:  &logrus.JSONFormatter{},
	})
	if err != nil {
		log.Fatal("unable to create log file hook: ", err)
	}
	log.AddHook(hook)
	log.SetLevel(logrus.DebugLevel)
}

func main() {
	flag.Parse()
	setupLogging()

	if seed == 0 {
		seed = new(maphash.Hash).Sum64()
	}
	r := rand.New(rand.NewPCG(seed, seed+1))

	params := board.Params{Width: width, Height: height, MineCount: mineCount}
	g, err := game.New(params, r)
	if err != nil {
		log.Fatal("unable to create game: ", err)
	}
	log.WithFields(logrus.Fields{
		"params": params.String(),
		"seed":   seed,
	}).Info("game started")

	for g.Status == game.Playing {
		move, err := g.Step(r)
		if err != nil {
			log.Fatal("agent step failed: ", err)
		}
		log.WithFields(logrus.Fields{
			"cell":    move.Cell.String(),
			"guessed": move.Guessed,
			"count":   move.Count,
			"mine":    move.Mine,
		}).Debug("move played")

		if !quiet {
			verb := "deduced"
			if move.Guessed {
				verb = "guessed"
			}
			fmt.Printf("move %d: %s %s\n", len(g.Moves), verb, move.Cell)
			fmt.Println(g.Render())
			time.Sleep(delay)
		}
	}

	fmt.Printf(
		"%s in %d moves (%d guesses), %d/%d mines deduced\n",
		g.Status, len(g.Moves), g.GuessCount(),
		len(g.Knowledge.KnownMines()), g.Board.MineCount,
	)
	if g.Status == game.Lost {
		fmt.Println("mine layout was:")
		fmt.Println(g.Board.Render())
	}
}
