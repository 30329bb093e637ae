package blackjack

import (
	"context"
	"testing"

	"blackjack-server/pkg/cardsource"
	"blackjack-server/pkg/currency"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

// scriptedProvider hands out one scripted deck per round
type scriptedProvider struct {
	decks []*cardsource.Scripted
}

func (p *scriptedProvider) NewDeck(ctx context.Context) (cardsource.Source, error) {
	if len(p.decks) == 0 {
		return nil, cardsource.ErrSourceUnavailable
	}

	deck := p.decks[0]
	p.decks = p.decks[1:]
	return deck, nil
}

func newScriptedProvider(scripts ...string) *scriptedProvider {
	p := &scriptedProvider{}
	for _, script := range scripts {
		p.decks = append(p.decks, cardsource.NewScripted(script))
	}

	return p
}

// scriptedPresenter replays queued answers and records what it was told
type scriptedPresenter struct {
	bets       []currency.Cents
	actions    []Action
	insurances []struct {
		stake    currency.Cents
		accepted bool
	}
	playAgain []bool

	views    []HandView
	results  []Result
	failures []error
}

func (p *scriptedPresenter) PromptBet(min, max currency.Cents) (currency.Cents, error) {
	bet := p.bets[0]
	p.bets = p.bets[1:]
	return bet, nil
}

func (p *scriptedPresenter) PromptAction(actions []Action) (Action, error) {
	action := p.actions[0]
	p.actions = p.actions[1:]
	return action, nil
}

func (p *scriptedPresenter) PromptInsurance(maxStake currency.Cents) (currency.Cents, bool, error) {
	answer := p.insurances[0]
	p.insurances = p.insurances[1:]
	return answer.stake, answer.accepted, nil
}

func (p *scriptedPresenter) PromptPlayAgain() (bool, error) {
	again := p.playAgain[0]
	p.playAgain = p.playAgain[1:]
	return again, nil
}

func (p *scriptedPresenter) HandUpdated(view HandView) {
	p.views = append(p.views, view)
}

func (p *scriptedPresenter) RoundOutcome(result Result) {
	p.results = append(p.results, result)
}

func (p *scriptedPresenter) SourceFailure(err error) {
	p.failures = append(p.failures, err)
}

func (p *scriptedPresenter) insure(stake currency.Cents, accepted bool) {
	p.insurances = append(p.insurances, struct {
		stake    currency.Cents
		accepted bool
	}{stake, accepted})
}

func TestTable_Run(t *testing.T) {
	a := assert.New(t)

	// round one: stand on 19, dealer draws to 18, win $50
	// round two: player blackjack, win $15
	table := NewTable(logrus.StandardLogger(), newScriptedProvider(
		"10s,7d,9h,6c,5s",
		"14s,9d,13h,7c",
	), DefaultOptions())

	presenter := &scriptedPresenter{
		bets:      []currency.Cents{currency.Dollars(50), currency.Dollars(10)},
		actions:   []Action{ActionStand},
		playAgain: []bool{true, false},
	}

	a.NoError(table.Run(context.Background(), presenter))

	a.Equal(2, len(presenter.results))
	a.Equal(OutcomeWin, presenter.results[0].Outcome)
	a.Equal(currency.Dollars(150), presenter.results[0].Wallet)
	a.Equal(OutcomeBlackjack, presenter.results[1].Outcome)
	a.Equal(currency.Dollars(165), presenter.results[1].Wallet)
	a.Equal(currency.Dollars(165), table.Ledger().Wallet())
	a.Empty(presenter.failures)
}

func TestTable_Run_rePromptsOnBadBet(t *testing.T) {
	a := assert.New(t)

	table := NewTable(logrus.StandardLogger(), newScriptedProvider(
		"14s,9d,13h,7c",
	), DefaultOptions())

	// $1 is below the minimum, $500 exceeds the wallet; the third answer sticks
	presenter := &scriptedPresenter{
		bets:      []currency.Cents{currency.Dollars(1), currency.Dollars(500), currency.Dollars(10)},
		playAgain: []bool{false},
	}

	a.NoError(table.Run(context.Background(), presenter))
	a.Equal(1, len(presenter.results))
	a.Equal(currency.Dollars(115), table.Ledger().Wallet())
}

func TestTable_Run_insurance(t *testing.T) {
	a := assert.New(t)

	table := NewTable(logrus.StandardLogger(), newScriptedProvider(
		"10s,14h,9h,13c",
	), DefaultOptions())

	presenter := &scriptedPresenter{
		bets:      []currency.Cents{currency.Dollars(20)},
		playAgain: []bool{false},
	}
	presenter.insure(currency.Dollars(50), true) // over the cap, re-prompted
	presenter.insure(currency.Dollars(10), true)

	a.NoError(table.Run(context.Background(), presenter))

	a.Equal(1, len(presenter.results))
	a.Equal(OutcomeDealerBlackjack, presenter.results[0].Outcome)
	a.Equal(currency.Cents(0), presenter.results[0].WalletDelta)
	a.Equal(currency.Dollars(100), table.Ledger().Wallet())
}

func TestTable_Run_sourceFailure(t *testing.T) {
	a := assert.New(t)

	provider := &scriptedProvider{decks: []*cardsource.Scripted{
		cardsource.NewScripted("10s,7d").FailAfterScript(),
	}}
	table := NewTable(logrus.StandardLogger(), provider, DefaultOptions())

	presenter := &scriptedPresenter{
		bets:      []currency.Cents{currency.Dollars(50)},
		playAgain: []bool{false},
	}

	a.NoError(table.Run(context.Background(), presenter))

	a.Equal(1, len(presenter.failures))
	a.ErrorIs(presenter.failures[0], cardsource.ErrSourceUnavailable)
	a.Empty(presenter.results)
	a.Nil(table.Round())

	// the aborted round never touched the wallet
	a.Equal(currency.Dollars(100), table.Ledger().Wallet())
}

func TestTable_Run_endsWhenBroke(t *testing.T) {
	a := assert.New(t)

	// lose the whole wallet in one round; Run returns without asking again
	table := NewTable(logrus.StandardLogger(), newScriptedProvider(
		"10s,10d,9h,9c,10h",
	), Options{StartingWallet: currency.Dollars(100), MinimumBet: currency.Dollars(5)})

	presenter := &scriptedPresenter{
		bets:      []currency.Cents{currency.Dollars(100)},
		actions:   []Action{ActionHit},
		playAgain: []bool{true},
	}

	a.NoError(table.Run(context.Background(), presenter))

	a.Equal(1, len(presenter.results))
	a.Equal(OutcomeLoss, presenter.results[0].Outcome)
	a.Equal(currency.Dollars(0), table.Ledger().Wallet())
	a.Empty(presenter.playAgain, "the play-again answer was consumed before going broke ended the session")
}

func TestTable_StartRound_freshRoundPerDeck(t *testing.T) {
	a := assert.New(t)

	table := NewTable(logrus.StandardLogger(), newScriptedProvider("2s", "3s"), DefaultOptions())

	first, err := table.StartRound(context.Background())
	a.NoError(err)
	a.Equal(first, table.Round())

	second, err := table.StartRound(context.Background())
	a.NoError(err)
	a.NotEqual(first.ID, second.ID)
	a.Equal(second, table.Round())

	// no decks left
	_, err = table.StartRound(context.Background())
	a.ErrorIs(err, cardsource.ErrSourceUnavailable)
}