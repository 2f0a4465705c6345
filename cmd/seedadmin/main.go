// cmd/seedadmin — crea la cuenta de admin inicial del dashboard.
// La API no expone registro de admins, así que el bootstrap es por CLI.
// Uso: go run ./cmd/seedadmin -email admin@papeleria.pe -nombre "Admin" -password <pass>
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jmcastillo/papeleria-api/internal/domain/entity"
	"github.com/jmcastillo/papeleria-api/internal/infrastructure/postgres"
	"github.com/jmcastillo/papeleria-api/pkg/config"
)

func main() {
	email := flag.String("email", "", "email del admin (login)")
	nombre := flag.String("nombre", "", "nombre completo")
	password := flag.String("password", "", "contraseña en claro (se almacena el hash bcrypt)")
	flag.Parse()

	if *email == "" || *nombre == "" || *password == "" {
		fmt.Fprintln(os.Stderr, "uso: seedadmin -email <email> -nombre <nombre> -password <pass>")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cargar configuración:", err)
		os.Exit(1)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintln(os.Stderr, "bcrypt:", err)
		os.Exit(1)
	}

	pool, err := postgres.NewPool(context.Background(), cfg.DB)
	if err != nil {
		fmt.Fprintln(os.Stderr, "conexión a PostgreSQL:", err)
		os.Exit(1)
	}
	defer pool.Close()

	admin := &entity.Admin{
		ID:             uuid.New().String(),
		Email:          *email,
		PasswordHash:   string(hash),
		NombreCompleto: *nombre,
		Activo:         true,
	}
	if err := postgres.NewAdminRepository(pool).Create(admin); err != nil {
		fmt.Fprintln(os.Stderr, "crear admin:", err)
		os.Exit(1)
	}

	fmt.Printf("admin %s creado (id %s)\n", admin.Email, admin.ID)
}
