package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
)

func latin1(t *testing.T, s string) []byte {
	t.Helper()
	out, err := charmap.ISO8859_1.NewEncoder().Bytes([]byte(s))
	require.NoError(t, err)
	return out
}

func TestParseProducts_Latin1(t *testing.T) {
	raw := latin1(t, "nombre;precio;cantidad\nCañería PVC;1500,50;10\nTornillo;200\nCañería PVC;9;9\n")

	products, err := parseProducts(bytes.NewReader(raw), true)
	require.NoError(t, err)
	require.Len(t, products, 2, "duplicados por nombre se ignoran")

	assert.Equal(t, "Cañería PVC", products[0].Name)
	assert.Equal(t, "1500.5", products[0].Price.String())
	assert.Equal(t, int64(10), products[0].Quantity)
	assert.Equal(t, int64(0), products[1].Quantity)
}

func TestParseProducts_IDsDeterministas(t *testing.T) {
	a, err := parseProducts(strings.NewReader("Broca;10\n"), false)
	require.NoError(t, err)
	b, err := parseProducts(strings.NewReader("Broca;99\n"), false)
	require.NoError(t, err)
	assert.Equal(t, a[0].ID, b[0].ID)
}

func TestParseProducts_Errores(t *testing.T) {
	_, err := parseProducts(strings.NewReader("Broca\n"), false)
	assert.Error(t, err)

	_, err = parseProducts(strings.NewReader("Broca;-5\n"), false)
	assert.Error(t, err)

	_, err = parseProducts(strings.NewReader("Broca;5;x\n"), false)
	assert.Error(t, err)
}

func TestWriteSQL(t *testing.T) {
	products, err := parseProducts(strings.NewReader("Llave O'Brien;2500;3\nLija;100\n"), false)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, writeSQL(&buf, products, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)))
	sql := buf.String()

	assert.Contains(t, sql, "'Llave O''Brien'")
	assert.Equal(t, 2, strings.Count(sql, "INSERT INTO products"))
	assert.Equal(t, 1, strings.Count(sql, "INSERT INTO purchases"), "solo productos con cantidad inicial")
	assert.Contains(t, sql, "2025-01-01T00:00:00Z")
}
