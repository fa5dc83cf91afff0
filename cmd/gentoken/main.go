// gentoken emite un Bearer token para operadores que registran productos, compras y ventas.
//
// Uso: go run ./cmd/gentoken -sub bodega-1 -role bodeguero
// Lee JWT_SECRET, JWT_ISSUER y JWT_EXPIRATION_MINUTES de la misma configuración que la API.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/jhoicas/stock-ledger/pkg/config"
	"github.com/jhoicas/stock-ledger/pkg/jwt"
)

func main() {
	sub := flag.String("sub", "", "identificador del operador (requerido)")
	role := flag.String("role", "operador", "rol incluido en el token")
	exp := flag.Int("exp", 0, "minutos de validez (0 = JWT_EXPIRATION_MINUTES)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	if cfg.JWT.Secret == "" {
		fmt.Fprintln(os.Stderr, "JWT_SECRET no está definido")
		os.Exit(1)
	}
	minutes := cfg.JWT.Expiration
	if *exp > 0 {
		minutes = *exp
	}

	token, err := jwt.Generate(cfg.JWT.Secret, *sub, *role, cfg.JWT.Issuer, minutes)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Generar token: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(token)
}
