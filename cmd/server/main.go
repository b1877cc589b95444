package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/PhabloC/oakio-backend/internal/api"
	"github.com/PhabloC/oakio-backend/internal/config"
	"github.com/PhabloC/oakio-backend/internal/database"
	"github.com/PhabloC/oakio-backend/internal/images"
	"github.com/PhabloC/oakio-backend/internal/repository"
	"github.com/PhabloC/oakio-backend/internal/service"
)

func main() {
	// carrega o .env local; em produção as variáveis já vêm do ambiente
	if err := godotenv.Load(); err != nil {
		log.Println("Arquivo .env não encontrado, usando variáveis de ambiente")
	}

	cfg := config.Load()

	db, err := database.NewPostgresDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Erro ao conectar no banco de dados: %v", err)
	}
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Erro ao rodar migrações: %v", err)
	}

	repos := repository.NewRepositories(db)

	imagesProvider := images.NewMultiProvider(cfg)

	services := service.NewServices(repos, imagesProvider, cfg)

	server := api.NewServer(cfg, services)

	log.Printf("Servidor Oakio escutando na porta %s", cfg.Port)
	if err := server.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Erro ao subir o servidor: %v", err)
	}
}
