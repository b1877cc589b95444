package service

import (
	"github.com/PhabloC/oakio-backend/internal/config"
	"github.com/PhabloC/oakio-backend/internal/images"
	"github.com/PhabloC/oakio-backend/internal/repository"
)

type Services struct {
	Transaction TransactionService
	Ativo       AtivoService
	Meta        MetaService
	Divida      DividaService
	Patrimonio  PatrimonioService
	Preferencia PreferenciaService
	Dashboard   DashboardService
	Simulador   SimuladorService
	Imagem      ImagemService
}

func NewServices(repos *repository.Repositories, imagesProvider *images.MultiProvider, cfg *config.Config) *Services {
	patrimonio := NewPatrimonioService(repos.Patrimonio, repos.Ativo)
	return &Services{
		Transaction: NewTransactionService(repos.Transaction),
		Ativo:       NewAtivoService(repos.TxManager, repos.Ativo, repos.Transaction, patrimonio),
		Meta:        NewMetaService(repos.Meta, cfg),
		Divida:      NewDividaService(repos.Divida),
		Patrimonio:  patrimonio,
		Preferencia: NewPreferenciaService(repos.Preferencia),
		Dashboard:   NewDashboardService(repos),
		Simulador:   NewSimuladorService(),
		Imagem:      NewImagemService(imagesProvider),
	}
}
