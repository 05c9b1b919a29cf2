package handlers

import (
	"database/sql"

	"github.com/mdan/duka-golang/internal/store"
)

// Handlers holds all dependencies for the HTTP layer. The stores share
// one connection pool; nothing else is shared between requests.
type Handlers struct {
	DB        *sql.DB
	Users     *store.UserStore
	Catalog   *store.CatalogStore
	Ledger    *store.LedgerStore
	Dashboard *store.DashboardStore
}

func New(db *sql.DB) *Handlers {
	return &Handlers{
		DB:        db,
		Users:     &store.UserStore{DB: db},
		Catalog:   &store.CatalogStore{DB: db},
		Ledger:    &store.LedgerStore{DB: db},
		Dashboard: &store.DashboardStore{DB: db},
	}
}
