package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"blackjack-server/internal/config"
	"blackjack-server/internal/console"
	"blackjack-server/pkg/blackjack"
	"blackjack-server/pkg/cardsource"
	"blackjack-server/pkg/currency"

	"github.com/sirupsen/logrus"
)

var local = flag.Bool("local", false, "shuffle decks in process instead of using the deck service")
var noDelay = flag.Bool("no-delay", false, "do not pause between deals")

func main() {
	flag.Parse()
	setupLogger()

	cfg := config.Instance()

	opts := blackjack.Options{
		StartingWallet: currency.Dollars(cfg.Game.StartingWallet),
		MinimumBet:     currency.Dollars(cfg.Game.MinimumBet),
	}

	dealDelay := time.Duration(cfg.Game.DealDelayMS) * time.Millisecond
	if *noDelay {
		dealDelay = 0
	}

	presenter := console.New(os.Stdin, os.Stdout, console.Options{
		DealDelay:   dealDelay,
		ClearScreen: true,
	})

	fmt.Println("=============== WELCOME TO BLACKJACK ===============")

	table := blackjack.NewTable(logrus.StandardLogger(), provider(), opts)
	if err := table.Run(context.Background(), presenter); err != nil {
		if errors.Is(err, console.ErrInputClosed) {
			return
		}

		logrus.WithError(err).Fatal("game ended unexpectedly")
	}

	presenter.Goodbye(opts.StartingWallet)
}

func provider() cardsource.Provider {
	cs := config.Instance().CardSource
	if *local || cs.Mode == "local" {
		return cardsource.NewLocalProvider(logrus.StandardLogger())
	}

	return cardsource.NewRemoteProvider(cs.BaseURL, logrus.StandardLogger())
}

func setupLogger() {
	if lvl := config.Instance().LogLevel; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}
}
