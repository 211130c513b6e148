// README: Driver lookup backed by PostgreSQL.
package driver

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"mishwar/internal/types"
)

var ErrNotFound = errors.New("driver not found")

// Directory resolves driver ids for the dispatch engine. Profile CRUD lives
// elsewhere; the engine only reads.
type Directory interface {
	Get(ctx context.Context, id types.ID) (*Driver, error)
}

type PGDirectory struct {
	db *pgxpool.Pool
}

func NewPGDirectory(db *pgxpool.Pool) *PGDirectory {
	return &PGDirectory{db: db}
}

func (d *PGDirectory) Get(ctx context.Context, id types.ID) (*Driver, error) {
	row := d.db.QueryRow(ctx, `
		SELECT id, name, phone, accepts_cash, active
		FROM drivers
		WHERE id = $1`, string(id),
	)
	var drv Driver
	err := row.Scan(&drv.ID, &drv.Name, &drv.Phone, &drv.AcceptsCash, &drv.Active)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &drv, nil
}
