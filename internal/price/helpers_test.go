package price_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/price-engine/internal/price"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func must(t *testing.T) func(price.Price, error) price.Price {
	t.Helper()
	return func(p price.Price, err error) price.Price {
		t.Helper()
		require.NoError(t, err)
		return p
	}
}

func assertAmounts(t *testing.T, p price.Price, nett, gross string) {
	t.Helper()
	assert.True(t, p.Nett().Equal(d(nett)), "nett: got %s, want %s", p.Nett(), nett)
	assert.True(t, p.Gross().Equal(d(gross)), "gross: got %s, want %s", p.Gross(), gross)
}
