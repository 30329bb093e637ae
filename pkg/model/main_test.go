package model

import (
	"context"
	"os"
	"testing"

	"blackjack-server/internal/util"
	"blackjack-server/pkg/db"
)

var cbg = context.Background()

// the model tests need a live database. Set BJ_TEST_PG_DSN to run them.
func TestMain(m *testing.M) {
	dsn := os.Getenv("BJ_TEST_PG_DSN")
	if dsn == "" {
		return
	}

	_ = os.Setenv("BJ_PG_DSN", dsn)
	db.Migrate()
	os.Exit(m.Run())
}

func player(t *testing.T) *Player {
	t.Helper()

	p, err := CreatePlayer(cbg, util.RandomEmail(), "test player", "my-password", "127.0.0.1")
	if err != nil {
		t.Fatalf("could not create player: %v", err)
	}

	return p
}
