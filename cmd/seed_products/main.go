// seed_products genera un script SQL con el catálogo inicial de productos (y su compra de apertura)
// a partir de un CSV exportado desde hojas de cálculo en ISO-8859-1.
//
// Formato del CSV (separador ';'): nombre;precio[;cantidad_inicial]
// La primera fila se omite si es un encabezado. El precio admite coma decimal ("1500,50").
//
// Uso: go run ./cmd/seed_products [ruta/productos.csv] [-utf8]
// Escribe: internal/infrastructure/postgres/migrations/900_seed_products.sql
package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// seedNamespace fija los UUID v5 derivados del nombre para que regenerar el script sea idempotente.
var seedNamespace = uuid.MustParse("3f0e6a3c-9a4b-4d55-8f3e-5b1c2f7a9d10")

type seedProduct struct {
	ID       uuid.UUID
	Name     string
	Price    decimal.Decimal
	Quantity int64
}

func main() {
	csvPath := "productos.csv"
	latin1 := true
	for _, arg := range os.Args[1:] {
		if arg == "-utf8" {
			latin1 = false
			continue
		}
		csvPath = arg
	}
	f, err := os.Open(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	products, err := parseProducts(f, latin1)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
		os.Exit(1)
	}

	outPath := filepath.Join(findModuleRoot(), "internal", "infrastructure", "postgres", "migrations", "900_seed_products.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	if err := writeSQL(out, products, time.Now().UTC()); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir SQL: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Generado %s: %d productos\n", outPath, len(products))
}

// parseProducts lee el CSV; con latin1 decodifica ISO-8859-1 a UTF-8.
func parseProducts(r io.Reader, latin1 bool) ([]seedProduct, error) {
	if latin1 {
		r = transform.NewReader(r, charmap.ISO8859_1.NewDecoder())
	}
	cr := csv.NewReader(r)
	cr.Comma = ';'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var products []seedProduct
	seen := make(map[string]bool)
	line := 0
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		line++
		if line == 1 && isHeader(rec) {
			continue
		}
		if len(rec) < 2 {
			return nil, fmt.Errorf("línea %d: se esperan al menos nombre y precio", line)
		}
		name := strings.TrimSpace(rec[0])
		if name == "" {
			return nil, fmt.Errorf("línea %d: nombre vacío", line)
		}
		if seen[name] {
			continue
		}
		price, err := decimal.NewFromString(strings.ReplaceAll(strings.TrimSpace(rec[1]), ",", "."))
		if err != nil || price.IsNegative() {
			return nil, fmt.Errorf("línea %d: precio inválido %q", line, rec[1])
		}
		var qty int64
		if len(rec) > 2 && strings.TrimSpace(rec[2]) != "" {
			qty, err = strconv.ParseInt(strings.TrimSpace(rec[2]), 10, 64)
			if err != nil || qty < 0 || qty > 1_000_000_000 {
				return nil, fmt.Errorf("línea %d: cantidad inválida %q", line, rec[2])
			}
		}
		seen[name] = true
		products = append(products, seedProduct{
			ID:       uuid.NewSHA1(seedNamespace, []byte(name)),
			Name:     name,
			Price:    price,
			Quantity: qty,
		})
	}
	return products, nil
}

func isHeader(rec []string) bool {
	if len(rec) == 0 {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(rec[0])) {
	case "nombre", "name", "producto":
		return true
	}
	return false
}

// writeSQL escribe los INSERT de productos y, para cantidades > 0, una compra de apertura.
func writeSQL(w io.Writer, products []seedProduct, now time.Time) error {
	var b strings.Builder
	b.WriteString("-- Catálogo inicial de productos\n")
	b.WriteString("-- Generado por cmd/seed_products\n\n")
	ts := now.Format(time.RFC3339)
	for _, p := range products {
		fmt.Fprintf(&b, "INSERT INTO products (id, name, price, created_at, updated_at)\n")
		fmt.Fprintf(&b, "VALUES ('%s', '%s', %s, '%s', '%s')\n", p.ID, escapeSQL(p.Name), p.Price.String(), ts, ts)
		b.WriteString("ON CONFLICT (id) DO NOTHING;\n")
		if p.Quantity > 0 {
			openingID := uuid.NewSHA1(p.ID, []byte("apertura"))
			fmt.Fprintf(&b, "INSERT INTO purchases (id, product_id, quantity, purchase_date, created_at)\n")
			fmt.Fprintf(&b, "VALUES ('%s', '%s', %d, '%s', '%s')\n", openingID, p.ID, p.Quantity, ts, ts)
			b.WriteString("ON CONFLICT (id) DO NOTHING;\n")
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
