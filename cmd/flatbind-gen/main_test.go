package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flatbind/internal/config"
)

const (
	stockLayout    = "../../store/testdata/stock.yaml"
	supplierLayout = "../../store/testdata/supplier.yaml"
)

func testConfig(t *testing.T, layouts ...string) *config.Config {
	t.Helper()

	cfg, err := config.LoadConfig("")
	require.NoError(t, err)

	cfg.Layouts = layouts
	cfg.Generator.PackageName = "storebind"
	cfg.Generator.OutputDir = filepath.Join(t.TempDir(), "storebind")

	return cfg
}

func TestRun(t *testing.T) {
	cfg := testConfig(t, stockLayout, supplierLayout)

	require.NoError(t, run(context.Background(), cfg))

	stock, err := os.ReadFile(filepath.Join(cfg.Generator.OutputDir, "stock_binding.go"))
	require.NoError(t, err)
	assert.Contains(t, string(stock), "package storebind")
	assert.Contains(t, string(stock), "func PopulateStockLine(e *store.StockLine, values []any) error {")

	supplier, err := os.ReadFile(filepath.Join(cfg.Generator.OutputDir, "supplier_binding.go"))
	require.NoError(t, err)
	assert.Contains(t, string(supplier), "func ReadSupplier(e *store.Supplier, values []any) error {")
	assert.Contains(t, string(supplier), "func WriteSupplier(e *store.Supplier) []any {")
}

func TestRun_SameOutputTwice(t *testing.T) {
	cfg := testConfig(t, stockLayout, stockLayout)

	err := run(context.Background(), cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "both write stock_binding.go")
}

func TestRun_BrokenLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
package: flatbind/store
entities:
  - type: StockLine
    columns: [SKU, Quantiy]
`), 0o600))

	cfg := testConfig(t, path)

	err := run(context.Background(), cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 layout errors")

	_, statErr := os.Stat(cfg.Generator.OutputDir)
	assert.True(t, os.IsNotExist(statErr))
}

func TestApp_Flags(t *testing.T) {
	out := filepath.Join(t.TempDir(), "gen")

	err := newApp().Run([]string{
		"flatbind-gen",
		"--layout", supplierLayout,
		"--out", out,
		"--package", "suppliers",
	})
	require.NoError(t, err)

	src, err := os.ReadFile(filepath.Join(out, "supplier_binding.go"))
	require.NoError(t, err)
	assert.Contains(t, string(src), "package suppliers")
}

func TestApp_NoLayouts(t *testing.T) {
	err := newApp().Run([]string{"flatbind-gen"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no layout files given")
}

func TestInitLogger(t *testing.T) {
	defer logrus.SetLevel(logrus.GetLevel())
	defer logrus.SetFormatter(logrus.StandardLogger().Formatter)

	initLogger(config.LoggerCfg{Level: "debug"})
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logrus.StandardLogger().Formatter)

	initLogger(config.LoggerCfg{Level: "bogus", HumanReadable: true})
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, logrus.StandardLogger().Formatter)
}
