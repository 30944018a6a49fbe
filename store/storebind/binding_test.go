package storebind_test

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flatbind/binder"
	"flatbind/column"
	"flatbind/mapping"
	"flatbind/store"
	"flatbind/store/storebind"
)

type anyMapping struct {
	member mapping.Member
	column column.Definition
}

func (m anyMapping) Member() (mapping.Member, bool)      { return m.member, true }
func (m anyMapping) ColumnDefinition() column.Definition { return m.column }

func field(name string) anyMapping {
	return anyMapping{
		member: mapping.MustField[store.StockLine](name),
		column: column.NewStringColumn(name),
	}
}

// stockMappings mirrors testdata/stock.yaml.
func stockMappings() []mapping.PropertyMapping {
	return []mapping.PropertyMapping{
		mapping.String(mapping.MustField[store.StockLine]("SKU")),
		mapping.UInt32(mapping.MustField[store.StockLine]("Quantity")).ColumnName("qty"),
		mapping.UInt32(mapping.MustField[store.StockLine]("Reserved")),
		mapping.Ignored().ColumnName("warehouse"),
		field("Status"),
		mapping.Boolean(mapping.MustField[store.StockLine]("Active")),
		mapping.String(mapping.MustField[store.StockLine]("Note")),
		field("UpdatedAt"),
		field("TTL"),
		mapping.Ignored(),
		field("Tags"),
	}
}

func runtimeBinders(t *testing.T) map[string]*binder.Binder[store.StockLine] {
	t.Helper()

	out := map[string]*binder.Binder[store.StockLine]{}
	for _, s := range []binder.Strategy{binder.StrategyCompiled, binder.StrategyReflective} {
		b, err := binder.New[store.StockLine](stockMappings(), s)
		require.NoError(t, err)

		out[s.String()] = b
	}

	return out
}

func validValues() []any {
	return []any{
		"SKU-1", uint32(12), uint32(3), store.StatusActive, true, "fragile",
		time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC), 90 * time.Minute, []string{"cold"},
	}
}

var ignoreUnexported = cmpopts.IgnoreUnexported(store.StockLine{})

func TestPopulateStockLine_MatchesRuntime(t *testing.T) {
	reserved := uint32(7)

	cases := map[string]func(v []any){
		"valid":             func([]any) {},
		"nil pointers":      func(v []any) { v[2], v[5], v[8] = nil, nil, nil },
		"pointer value":     func(v []any) { v[2] = &reserved },
		"plain string enum": func(v []any) { v[3] = "discontinued" },
		"nil scalar":        func(v []any) { v[0] = nil },
		"wrong number type": func(v []any) { v[1] = int64(12) },
		"wrong pointer":     func(v []any) { v[2] = "3" },
		"wrong time":        func(v []any) { v[6] = "2025-03-01" },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			values := validValues()
			mutate(values)

			var generated store.StockLine
			genErr := storebind.PopulateStockLine(&generated, values)

			for strategy, b := range runtimeBinders(t) {
				var built store.StockLine
				err := b.Populate(&built, values)

				assert.Equal(t, err, genErr, strategy)
				if diff := cmp.Diff(built, generated, ignoreUnexported); diff != "" {
					t.Errorf("%s: entity mismatch (-runtime +generated):\n%s", strategy, diff)
				}
			}
		})
	}
}

func TestPopulateStockLine_TypeMismatch(t *testing.T) {
	values := validValues()
	values[1] = "12"

	var line store.StockLine
	err := storebind.PopulateStockLine(&line, values)
	require.ErrorIs(t, err, binder.ErrTypeMismatch)

	var mismatch *binder.TypeMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "qty", mismatch.Column)
	assert.Equal(t, "Quantity", mismatch.Member)
	assert.Equal(t, "SKU-1", line.SKU)
}

func TestExtractStockLine_MatchesRuntime(t *testing.T) {
	note := "fragile"
	lines := map[string]store.StockLine{
		"zero": {},
		"full": {
			Audit:    store.Audit{UpdatedAt: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC), UpdatedBy: "ops"},
			SKU:      "SKU-9",
			Quantity: 40,
			Reserved: new(uint32),
			Status:   store.StatusDiscontinued,
			Active:   true,
			Note:     &note,
			TTL:      time.Hour,
			Tags:     []string{"a", "b"},
		},
	}

	for name, line := range lines {
		t.Run(name, func(t *testing.T) {
			generated := storebind.ExtractStockLine(&line)
			require.Len(t, generated, 9)

			for strategy, b := range runtimeBinders(t) {
				if diff := cmp.Diff(b.Extract(&line), generated); diff != "" {
					t.Errorf("%s: values mismatch (-runtime +generated):\n%s", strategy, diff)
				}
			}
		})
	}
}

func TestStockLine_RoundTrip(t *testing.T) {
	values := validValues()

	var line store.StockLine
	require.NoError(t, storebind.PopulateStockLine(&line, values))
	require.NotNil(t, line.Reserved)
	assert.Equal(t, uint32(3), *line.Reserved)

	assert.Equal(t, values, storebind.ExtractStockLine(&line))
}

func TestStockLine_ShortValues(t *testing.T) {
	var line store.StockLine
	assert.Panics(t, func() {
		_ = storebind.PopulateStockLine(&line, validValues()[:4])
	})
}

func TestSupplier(t *testing.T) {
	since := time.Date(2019, 6, 1, 0, 0, 0, 0, time.UTC)

	var s store.Supplier
	require.NoError(t, storebind.ReadSupplier(&s, []any{"ACME", "Acme Corp", nil, since}))

	assert.Equal(t, "ACME", s.Code)
	assert.Nil(t, s.Rating)
	require.NotNil(t, s.Since)
	assert.True(t, since.Equal(*s.Since))
	assert.Nil(t, s.Audit)

	assert.Equal(t, []any{"ACME", "Acme Corp", nil, since}, storebind.WriteSupplier(&s))
}
