package database

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

// RunMigrations aplica o schema na ordem. A identidade fica no provedor
// hospedado: user_id é UUID sem FK local.
func RunMigrations(pool *pgxpool.Pool) error {
	log.Println("Executando migrações do banco...")

	ctx := context.Background()

	migrations := []string{
		migrationCreateExtensions,
		migrationCreateTransactions,
		migrationCreateAtivos,
		migrationCreateMetas,
		migrationCreateDividas,
		migrationCreatePatrimonioHistorico,
		migrationCreatePreferencias,
		migrationCreateIndexes,
	}

	for i, migration := range migrations {
		if _, err := pool.Exec(ctx, migration); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}

	log.Println("Migrações concluídas")
	return nil
}

const migrationCreateExtensions = `
CREATE EXTENSION IF NOT EXISTS "uuid-ossp";
`

const migrationCreateTransactions = `
CREATE TABLE IF NOT EXISTS transactions (
    id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
    user_id UUID NOT NULL,
    title VARCHAR(200) NOT NULL,
    value DECIMAL(18, 2) NOT NULL,
    type VARCHAR(20) NOT NULL,
    method VARCHAR(20) NOT NULL,
    date DATE NOT NULL,
    month VARCHAR(20) NOT NULL,
    category VARCHAR(100),
    description TEXT,
    paga BOOLEAN DEFAULT false,
    created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
);
`

const migrationCreateAtivos = `
CREATE TABLE IF NOT EXISTS ativos (
    id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
    user_id UUID NOT NULL,
    nome VARCHAR(200) NOT NULL,
    ticker VARCHAR(20),
    tipo VARCHAR(30) NOT NULL,
    valor_investido DECIMAL(18, 2) DEFAULT 0,
    valor_atual DECIMAL(18, 2) DEFAULT 0,
    quantidade DECIMAL(18, 8) DEFAULT 0,
    data_compra DATE,
    taxa_selic_anual DECIMAL(8, 4),
    emergencia BOOLEAN DEFAULT false,
    created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
);
`

const migrationCreateMetas = `
CREATE TABLE IF NOT EXISTS metas (
    id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
    user_id UUID NOT NULL,
    title VARCHAR(200) NOT NULL,
    target_value DECIMAL(18, 2) NOT NULL,
    current_value DECIMAL(18, 2) DEFAULT 0,
    deadline DATE,
    category VARCHAR(100) DEFAULT '',
    image_url TEXT,
    completed BOOLEAN DEFAULT false,
    completed_at TIMESTAMP WITH TIME ZONE,
    created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
);
`

const migrationCreateDividas = `
CREATE TABLE IF NOT EXISTS dividas (
    id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
    user_id UUID NOT NULL,
    title VARCHAR(200) NOT NULL,
    total_value DECIMAL(18, 2) NOT NULL,
    paid_value DECIMAL(18, 2) DEFAULT 0,
    due_date DATE,
    creditor VARCHAR(200) DEFAULT '',
    category VARCHAR(100) DEFAULT '',
    description TEXT DEFAULT '',
    is_paid BOOLEAN DEFAULT false,
    paid_at TIMESTAMP WITH TIME ZONE,
    created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
);
`

const migrationCreatePatrimonioHistorico = `
CREATE TABLE IF NOT EXISTS patrimonio_historico (
    id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
    user_id UUID NOT NULL,
    mes VARCHAR(20) NOT NULL,
    ano INTEGER NOT NULL,
    total_patrimonio DECIMAL(18, 2) NOT NULL,
    created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP,
    UNIQUE(user_id, mes, ano)
);
`

const migrationCreatePreferencias = `
CREATE TABLE IF NOT EXISTS preferencias (
    user_id UUID PRIMARY KEY,
    gasto_mensal_manual DECIMAL(18, 2) DEFAULT 0,
    reserva_meses INTEGER DEFAULT 6,
    valores_ocultos BOOLEAN DEFAULT false,
    updated_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
);
`

const migrationCreateIndexes = `
CREATE INDEX IF NOT EXISTS idx_transactions_user_id ON transactions(user_id);
CREATE INDEX IF NOT EXISTS idx_transactions_date ON transactions(date);
CREATE INDEX IF NOT EXISTS idx_transactions_type ON transactions(type);
CREATE INDEX IF NOT EXISTS idx_ativos_user_id ON ativos(user_id);
CREATE INDEX IF NOT EXISTS idx_ativos_tipo ON ativos(tipo);
CREATE INDEX IF NOT EXISTS idx_metas_user_id ON metas(user_id);
CREATE INDEX IF NOT EXISTS idx_dividas_user_id ON dividas(user_id);
CREATE INDEX IF NOT EXISTS idx_patrimonio_historico_user_id ON patrimonio_historico(user_id);
`
