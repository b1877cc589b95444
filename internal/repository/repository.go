package repository

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repositories struct {
	TxManager   TxManager
	Transaction TransactionRepository
	Ativo       AtivoRepository
	Meta        MetaRepository
	Divida      DividaRepository
	Patrimonio  PatrimonioRepository
	Preferencia PreferenciaRepository
}

func NewRepositories(pool *pgxpool.Pool) *Repositories {
	return &Repositories{
		TxManager:   NewTxManager(pool),
		Transaction: NewTransactionRepository(pool),
		Ativo:       NewAtivoRepository(pool),
		Meta:        NewMetaRepository(pool),
		Divida:      NewDividaRepository(pool),
		Patrimonio:  NewPatrimonioRepository(pool),
		Preferencia: NewPreferenciaRepository(pool),
	}
}
