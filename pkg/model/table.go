package model

import (
	"context"
	"database/sql"
	"time"

	"blackjack-server/pkg/db"

	"github.com/google/uuid"
)

const tableColumns = `
tables.uuid,
tables.name,
tables.player_id,
tables.balance,
tables.minimum_bet,
tables.created,
tables.updated`

// ErrTableNotFound is an error when a table does not exist
var ErrTableNotFound = UserError("table not found")

// Table is a record in the `tables` table: one player's seat at a blackjack
// table. The balance is the player's wallet at that table, in cents, and is
// written back after every settled round.
type Table struct {
	UUID       string    `json:"uuid"`
	Name       string    `json:"name"`
	PlayerID   int64     `json:"playerId"`
	Balance    int       `json:"balance"`
	MinimumBet int       `json:"minimumBet"`
	Created    time.Time `json:"created"`
	Updated    time.Time `json:"updated"`
}

func getTableByRow(row db.Scanner) (*Table, error) {
	var table Table
	if err := row.Scan(&table.UUID, &table.Name, &table.PlayerID, &table.Balance, &table.MinimumBet, &table.Created, &table.Updated); err != nil {
		return nil, err
	}

	return &table, nil
}

// CreateTable creates a new table for the player with the starting balance
// and table minimum, both in cents
func (p *Player) CreateTable(ctx context.Context, name string, balance, minimumBet int) (*Table, error) {
	const query = `
INSERT INTO tables (uuid, name, player_id, balance, minimum_bet)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + tableColumns

	row := db.Instance().QueryRowContext(ctx, query, uuid.New().String(), name, p.ID, balance, minimumBet)
	return getTableByRow(row)
}

// GetTableByUUID returns the table by its UUID
func GetTableByUUID(ctx context.Context, tableUUID string) (*Table, error) {
	const query = `
SELECT ` + tableColumns + `
FROM tables
WHERE uuid = $1`

	row := db.Instance().QueryRowContext(ctx, query, tableUUID)
	table, err := getTableByRow(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrTableNotFound
		}

		return nil, err
	}

	return table, nil
}

// GetTables returns the player's tables, most recent first
func (p *Player) GetTables(ctx context.Context, offset int64, limit int) ([]*Table, error) {
	const query = `
SELECT ` + tableColumns + `
FROM tables
WHERE player_id = $1
ORDER BY created DESC
OFFSET $2
LIMIT $3`

	rows, err := db.Instance().QueryContext(ctx, query, p.ID, offset, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tables := make([]*Table, 0)
	for rows.Next() {
		table, err := getTableByRow(rows)
		if err != nil {
			return nil, err
		}

		tables = append(tables, table)
	}

	return tables, nil
}

// GetTables returns every table, most recent first
func GetTables(ctx context.Context, offset int64, limit int) ([]*Table, error) {
	const query = `
SELECT ` + tableColumns + `
FROM tables
ORDER BY created DESC
OFFSET $1
LIMIT $2`

	rows, err := db.Instance().QueryContext(ctx, query, offset, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tables := make([]*Table, 0)
	for rows.Next() {
		table, err := getTableByRow(rows)
		if err != nil {
			return nil, err
		}

		tables = append(tables, table)
	}

	return tables, nil
}

// SetBalance persists the wallet after a settled round
func (t *Table) SetBalance(ctx context.Context, balance int) error {
	const query = `
UPDATE tables
SET balance = $1, updated = (NOW() AT TIME ZONE 'utc')
WHERE uuid = $2
RETURNING updated`

	var updated sql.NullTime
	if err := db.Instance().QueryRowContext(ctx, query, balance, t.UUID).Scan(&updated); err != nil {
		return err
	}

	t.Balance = balance
	t.Updated = updated.Time
	return nil
}
