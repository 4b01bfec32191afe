package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassifyStock(t *testing.T) {
	cases := []struct {
		name      string
		stock     int
		threshold int
		want      StockStatus
	}{
		{"zero stock wins over zero threshold", 0, 0, StockStatusOut},
		{"zero stock wins over high threshold", 0, 100, StockStatusOut},
		{"at threshold is low", 5, 5, StockStatusLow},
		{"below threshold is low", 3, 10, StockStatusLow},
		{"above threshold is in stock", 11, 10, StockStatusIn},
		{"one unit with zero threshold is in stock", 1, 0, StockStatusIn},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, ClassifyStock(tc.stock, tc.threshold))
		})
	}
}

func TestStockStatusLabels(t *testing.T) {
	require.Equal(t, "Agotado", StockStatusOut.Label())
	require.Equal(t, "Stock bajo", StockStatusLow.Label())
	require.Equal(t, "En stock", StockStatusIn.Label())
}

func TestCategoryValid(t *testing.T) {
	for _, c := range Categories {
		require.True(t, c.Valid())
	}
	require.False(t, Category("Electrónica").Valid())
	require.False(t, Category("").Valid())
}
