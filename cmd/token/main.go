// Command token creates (or finds) a user by email and prints a JWT for it.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/saulo-duarte/enade-questoes/internal/auth"
	"github.com/saulo-duarte/enade-questoes/internal/config"
	"github.com/saulo-duarte/enade-questoes/internal/user"
)

func main() {
	email := flag.String("email", "", "email do docente")
	name := flag.String("name", "", "nome exibido")
	ttl := flag.Duration("ttl", 7*24*time.Hour, "validade do token")
	flag.Parse()

	if *email == "" {
		flag.Usage()
		os.Exit(2)
	}

	config.Init()
	auth.Init()
	settings := config.Load()

	ctx := context.Background()
	if err := config.Connect(ctx, settings.DatabaseDSN); err != nil {
		config.Logger.WithError(err).Fatal("Falha ao conectar ao banco")
	}
	if err := config.DB.AutoMigrate(&user.User{}); err != nil {
		config.Logger.WithError(err).Fatal("Falha ao migrar tabela de usuários")
	}

	users := user.NewUserContainer(config.DB, settings)
	u, err := users.Service.EnsureByEmail(ctx, *email, *name)
	if err != nil {
		config.Logger.WithError(err).Fatal("Falha ao obter usuário")
	}

	token, err := auth.GenerateJWT(u.ID.String(), u.Role, *ttl)
	if err != nil {
		config.Logger.WithError(err).Fatal("Falha ao gerar token")
	}
	fmt.Println(token)
}
