package price_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/price-engine/internal/price"
)

func TestNew_NettGreaterThanGross(t *testing.T) {
	_, err := price.New(d("120"), d("100"), price.WithCurrency("PLN"), price.WithTaxRate(23))
	require.Error(t, err)
	assert.True(t, errors.Is(err, price.ErrInvalidArgument))
	assert.Contains(t, err.Error(), "Nett must not be greater than gross")
}

func TestNew_NettSameAsGross(t *testing.T) {
	p := must(t)(price.New(d("100"), d("100"), price.WithCurrency("USD"), price.WithTaxRate(0)))
	assert.Equal(t, 0, p.TaxRate())
	assert.True(t, p.HasTaxRate())
}

func TestNew_ToleratesFloatNoise(t *testing.T) {
	p := must(t)(price.New(d("100.0000001"), d("100"), price.WithCurrency("USD")))
	assertAmounts(t, p, "100", "100")
}

func TestNew_InvalidCurrencySymbol(t *testing.T) {
	_, err := price.New(d("100"), d("200"), price.WithCurrency("PLNG"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `Invalid currency symbol: "PLNG"`)
}

func TestNew_CurrencyRequiredForNonZero(t *testing.T) {
	_, err := price.New(d("100"), d("123"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, price.ErrInvalidArgument))
}

func TestNew_NegativeAmounts(t *testing.T) {
	_, err := price.New(d("-10"), d("20"), price.WithCurrency("USD"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Money value must be positive")

	_, err = price.New(d("10"), d("-15"), price.WithCurrency("USD"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Money value must be positive")
}

func TestNew_WithoutTaxRateIsMixed(t *testing.T) {
	p := must(t)(price.New(d("100"), d("123"), price.WithCurrency("usd")))
	assert.Equal(t, 23, p.TaxRate())
	assert.False(t, p.HasTaxRate())
	assert.Equal(t, "USD", p.CurrencySymbol())
}

func TestNew_RoundsToPrecision(t *testing.T) {
	p := must(t)(price.New(d("100.0014"), d("123.0021"), price.WithCurrency("USD")))
	assert.True(t, p.Value().Nett().Value().Equal(d("100")))
	assert.True(t, p.Value().Gross().Value().Equal(d("123")))
}

func TestCreating(t *testing.T) {
	tests := []struct {
		nett, gross string
		tax         int
	}{
		{"100", "123", 23},
		{"68.2927", "84.0000", 23},
		{"31.7073", "39.0000", 23},
		{"109.7561", "135.0000", 23},
		{"109.7561", "135.0005", 23},
		{"109.7561", "135.0040", 23},
		{"110.16", "135.5000", 23},
		{"0.81", "0.8748", 8},
	}

	for _, tt := range tests {
		t.Run(tt.nett+"/"+tt.gross, func(t *testing.T) {
			p := must(t)(price.New(d(tt.nett), d(tt.gross), price.WithCurrency("USD"), price.WithTaxRate(tt.tax)))
			assert.Equal(t, tt.tax, p.TaxRate())

			byGross := must(t)(price.BuildByGross(d(tt.gross), tt.tax, "USD"))
			assert.True(t, byGross.Nett().Equal(d(tt.nett).Round(2)),
				"nett from gross: got %s, want %s", byGross.Nett(), d(tt.nett).Round(2))

			byNett := must(t)(price.BuildByNett(d(tt.nett), tt.tax, "USD"))
			assert.True(t, byNett.Gross().Equal(d(tt.gross).Round(2)),
				"gross from nett: got %s, want %s", byNett.Gross(), d(tt.gross).Round(2))

			// round trip
			again := must(t)(price.BuildByNett(byGross.Nett(), tt.tax, "USD"))
			assert.InDelta(t, byGross.Nett().InexactFloat64(), again.Nett().InexactFloat64(), 0.01)
		})
	}
}

func TestBuildByNett(t *testing.T) {
	p := must(t)(price.BuildByNett(d("100"), 23, "GBP"))
	assertAmounts(t, p, "100", "123")
	assert.Equal(t, 23, p.TaxRate())
	assert.True(t, p.HasTaxRate())
}

func TestBuildByNett_NegativeTax(t *testing.T) {
	_, err := price.BuildByNett(d("100"), -2, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Tax percent must positive")
}

func TestBuildByGross(t *testing.T) {
	p := must(t)(price.BuildByGross(d("123"), 23, "USD"))
	assertAmounts(t, p, "100", "123")
}

func TestBuild(t *testing.T) {
	p := must(t)(price.Build(d("19.99"), "EUR"))
	assertAmounts(t, p, "19.99", "19.99")
	assert.Equal(t, 0, p.TaxRate())
	assert.True(t, p.HasTaxRate())
}

func TestBuildEmpty(t *testing.T) {
	withTax := must(t)(price.BuildEmpty("PLN", true))
	assert.True(t, withTax.IsEmpty())
	assert.True(t, withTax.HasTaxRate())
	assert.Equal(t, "PLN", withTax.CurrencySymbol())

	withoutTax := must(t)(price.BuildEmpty("", false))
	assert.True(t, withoutTax.IsEmpty())
	assert.False(t, withoutTax.HasTaxRate())
	assert.Equal(t, "", withoutTax.CurrencySymbol())
}

func TestEmptyPrice_CurrencyIsUnknown(t *testing.T) {
	p := must(t)(price.BuildEmpty("", true))
	_, err := p.Currency()
	require.Error(t, err)
	assert.True(t, errors.Is(err, price.ErrIllegalState))

	var zero price.Price
	_, err = zero.Currency()
	assert.True(t, errors.Is(err, price.ErrIllegalState))
}

func TestZeroPrice(t *testing.T) {
	var zero price.Price
	assert.True(t, zero.IsEmpty())
	assert.True(t, zero.Nett().IsZero())
	assert.True(t, zero.Gross().IsZero())
	assert.Equal(t, "0.00 ", zero.String())
}

func TestAdd_SameTax(t *testing.T) {
	a := must(t)(price.BuildByNett(d("100"), 20, "PLN"))
	b := must(t)(price.BuildByNett(d("200"), 20, "PLN"))

	result := must(t)(a.Add(b))

	assertAmounts(t, result, "300", "360")
	assert.Equal(t, 20, result.TaxRate())
	assert.True(t, result.HasTaxRate())
}

func TestAdd_DifferentTax(t *testing.T) {
	a := must(t)(price.BuildByNett(d("100"), 20, "PLN"))
	b := must(t)(price.BuildByNett(d("200"), 10, "PLN"))

	result := must(t)(a.Add(b))

	assertAmounts(t, result, "300", "340")
	assert.False(t, result.HasTaxRate())
}

func TestAdd_Symmetric(t *testing.T) {
	tests := []struct {
		grossA, grossB, want string
	}{
		{"123.00", "246.00", "369.00"},
		{"32.21", "33.32", "65.53"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			nettA := d(tt.grossA).Div(d("123")).Mul(d("100"))
			nettB := d(tt.grossB).Div(d("123")).Mul(d("100"))

			a := must(t)(price.New(nettA, d(tt.grossA), price.WithCurrency("USD"), price.WithTaxRate(23)))
			b := must(t)(price.New(nettB, d(tt.grossB), price.WithCurrency("USD"), price.WithTaxRate(23)))

			ab := must(t)(a.Add(b))
			ba := must(t)(b.Add(a))

			assert.True(t, ab.Gross().Equal(d(tt.want)))
			assert.True(t, ba.Gross().Equal(d(tt.want)))
			assert.Equal(t, 23, ab.TaxRate())
			assert.Equal(t, 23, ba.TaxRate())
			assert.InDelta(t, nettA.InexactFloat64(), a.Nett().InexactFloat64(), 0.01)
		})
	}
}

func TestAdd_KeepsOperandsUnchanged(t *testing.T) {
	a := must(t)(price.New(d("100"), d("120"), price.WithCurrency("PLN")))
	b := must(t)(price.New(d("200"), d("300"), price.WithCurrency("PLN")))

	_, err := a.Add(b)
	require.NoError(t, err)

	assertAmounts(t, a, "100", "120")
	assertAmounts(t, b, "200", "300")
}

func TestAdd_SameCurrencies(t *testing.T) {
	a := must(t)(price.New(d("100"), d("130"), price.WithCurrency("USD")))
	b := must(t)(price.New(d("300"), d("330"), price.WithCurrency("USD")))

	c := must(t)(a.Add(b))
	assertAmounts(t, c, "400", "460")
	assert.Equal(t, "USD", c.CurrencySymbol())
}

func TestAdd_DifferentCurrencies(t *testing.T) {
	usd := must(t)(price.New(d("100"), d("130"), price.WithCurrency("USD")))
	gbp := must(t)(price.New(d("300"), d("330"), price.WithCurrency("GBP")))

	_, err := usd.Add(gbp)
	require.Error(t, err)
	assert.True(t, errors.Is(err, price.ErrIncompatibleCurrency))
	assert.Contains(t, err.Error(), `Can not operate on different currencies ("USD" and "GBP")`)

	_, err = usd.Subtract(gbp)
	require.Error(t, err)
	assert.True(t, errors.Is(err, price.ErrIncompatibleCurrency))
}

func TestAdd_EmptyIsIdentity(t *testing.T) {
	empty := must(t)(price.BuildEmpty("", true))
	b := must(t)(price.BuildByGross(d("10.50"), 19, "EUR"))

	r1 := must(t)(empty.Add(b))
	r2 := must(t)(b.Add(empty))

	assert.True(t, r1.IsEqual(r2))
	assert.True(t, r1.IsEqual(b))
	assert.Equal(t, 19, r1.TaxRate())
	assert.Equal(t, "EUR", r1.CurrencySymbol())
	assert.Equal(t, 19, r2.TaxRate())
	assert.Equal(t, "EUR", r2.CurrencySymbol())
}

func TestAdd_Empties(t *testing.T) {
	list := []price.Price{
		must(t)(price.New(decimal.Zero, decimal.Zero, price.WithCurrency("PLN"))),
		must(t)(price.New(decimal.Zero, decimal.Zero, price.WithCurrency("PLN"))),
	}

	var total price.Price
	for _, p := range list {
		total = must(t)(total.Add(p))
	}

	assert.True(t, total.Gross().IsZero())
	c, err := total.Currency()
	require.NoError(t, err)
	assert.Equal(t, "PLN", c.Symbol())
}

func TestSubtract_Simple(t *testing.T) {
	a := must(t)(price.BuildByNett(d("180"), 23, "PLN"))
	b := must(t)(price.BuildByNett(d("220"), 23, "PLN"))

	result := must(t)(b.Subtract(a))

	assertAmounts(t, result, "40", "49.2")
	assert.True(t, result.HasTaxRate())
}

func TestSubtract_DifferentTax(t *testing.T) {
	a := must(t)(price.BuildByNett(d("160"), 20, "PLN"))
	b := must(t)(price.BuildByNett(d("120"), 10, "PLN"))

	result := must(t)(a.Subtract(b))

	assertAmounts(t, result, "40", "60")
	assert.False(t, result.HasTaxRate())
}

func TestSubtract_GreaterPriceClampsToEmpty(t *testing.T) {
	smaller := must(t)(price.New(d("1"), d("1.10"), price.WithCurrency("EUR"), price.WithTaxRate(10)))
	bigger := must(t)(price.New(d("2"), d("2.20"), price.WithCurrency("EUR"), price.WithTaxRate(10)))

	result := must(t)(smaller.Subtract(bigger))

	assertAmounts(t, result, "0", "0")
	assert.True(t, result.HasTaxRate())
	assert.Equal(t, "EUR", result.CurrencySymbol())
}

func TestSubtract_MixedShortfallHasNoTaxRate(t *testing.T) {
	smaller := must(t)(price.BuildByNett(d("1"), 10, "EUR"))
	bigger := must(t)(price.BuildByNett(d("2"), 20, "EUR"))

	result := must(t)(smaller.Subtract(bigger))

	assert.True(t, result.IsEmpty())
	assert.False(t, result.HasTaxRate())
	assert.Equal(t, "EUR", result.CurrencySymbol())
}

func TestSubtract_Empty(t *testing.T) {
	p := must(t)(price.BuildByNett(d("10"), 23, "PLN"))
	var empty price.Price

	result := must(t)(p.Subtract(empty))
	assert.True(t, result.IsEqual(p))

	result = must(t)(empty.Subtract(p))
	assert.True(t, result.IsEmpty())
	assert.Equal(t, "", result.CurrencySymbol())
}

func TestMultiply(t *testing.T) {
	p := must(t)(price.New(d("120"), d("150"), price.WithCurrency("PLN")))
	result := must(t)(p.Multiply(d("5")))

	assertAmounts(t, result, "600", "750")
	assert.Equal(t, "PLN", result.CurrencySymbol())
}

func TestMultiply_SpecificPrice(t *testing.T) {
	p := must(t)(price.New(d("1.36"), d("1.67"), price.WithCurrency("PLN"), price.WithTaxRate(23)))
	result := must(t)(p.Multiply(d("1.41")))

	assertAmounts(t, result, "1.92", "2.35")
	assert.Equal(t, "PLN", result.CurrencySymbol())
	assert.Equal(t, 23, result.TaxRate())
	assert.True(t, result.HasTaxRate())
}

func TestMultiply_ByZero(t *testing.T) {
	p := must(t)(price.BuildByNett(d("10"), 23, "PLN"))
	result := must(t)(p.Multiply(decimal.Zero))

	assertAmounts(t, result, "0", "0")
	assert.Equal(t, 23, result.TaxRate())
}

func TestMultiply_Negative(t *testing.T) {
	p := must(t)(price.BuildByNett(d("10"), 23, "PLN"))
	_, err := p.Multiply(d("-5"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, price.ErrInvalidArgument))
	assert.Contains(t, err.Error(), "Multiply param must greater than 0")
}

func TestDivide(t *testing.T) {
	p := must(t)(price.BuildByGross(d("233.29"), 23, "PLN"))
	result := must(t)(p.Divide(d("3")))

	assertAmounts(t, result, "63.22", "77.76")
	assert.Equal(t, 23, result.TaxRate())
}

func TestDivide_SpecificPrice(t *testing.T) {
	p := must(t)(price.New(d("0.67"), d("0.82"), price.WithCurrency("PLN"), price.WithTaxRate(23)))
	result := must(t)(p.Divide(decimal.NewFromInt(1)))

	assertAmounts(t, result, "0.67", "0.82")
	assert.Equal(t, 23, result.TaxRate())
}

func TestDivide_GrossFollowsTaxRate(t *testing.T) {
	p := must(t)(price.BuildByNett(d("100"), 23, "PLN"))
	result := must(t)(p.Divide(d("3")))

	tax, err := price.NewTax(23)
	require.NoError(t, err)
	want := tax.GrossFromNett(d("100").Div(d("3"))).Round(2)

	assert.True(t, result.Gross().Equal(want), "got %s, want %s", result.Gross(), want)
	assertAmounts(t, result, "33.33", "41")
}

func TestDivide_InvalidFactor(t *testing.T) {
	p := must(t)(price.BuildByNett(d("10"), 23, "PLN"))

	for _, factor := range []string{"0", "-1"} {
		_, err := p.Divide(d(factor))
		require.Error(t, err)
		assert.True(t, errors.Is(err, price.ErrInvalidArgument))
	}
}

func TestFluentChain(t *testing.T) {
	p := must(t)(price.BuildByGross(d("100"), 23, "PLN"))

	sum := must(t)(p.Add(p))
	doubled := must(t)(sum.Multiply(d("2")))
	result := must(t)(doubled.Divide(d("3")))

	assert.InDelta(t, 400.0/3, result.Gross().InexactFloat64(), 0.01)
}

func TestSubtractGross(t *testing.T) {
	p := must(t)(price.New(d("13.34"), d("15.53"), price.WithCurrency("USD")))
	result := must(t)(p.SubtractGross(d("10"), "USD"))

	assert.True(t, result.Gross().Equal(d("5.53")))
}

func TestSubtractGross_BiggerThanPrice(t *testing.T) {
	p := must(t)(price.New(d("100"), d("140"), price.WithCurrency("PLN"), price.WithTaxRate(40)))
	result := must(t)(p.SubtractGross(d("150"), "PLN"))

	assertAmounts(t, result, "0", "0")
	assert.False(t, result.HasTaxRate())
	assert.Equal(t, "PLN", result.CurrencySymbol())
}

func TestSubtractGross_Zero(t *testing.T) {
	p := must(t)(price.New(d("13.34"), d("15.53"), price.WithCurrency("USD")))
	result := must(t)(p.SubtractGross(decimal.Zero, "USD"))
	assert.True(t, p.IsEqual(result))
}

func TestSubtractGross_Negative(t *testing.T) {
	p := must(t)(price.New(d("13.34"), d("15.53"), price.WithCurrency("USD")))
	_, err := p.SubtractGross(d("-10"), "USD")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Money value must be positive")
}

func TestSubtractGross_DifferentCurrency(t *testing.T) {
	p := must(t)(price.New(d("13.34"), d("15.53"), price.WithCurrency("USD")))
	_, err := p.SubtractGross(d("1"), "EUR")
	require.Error(t, err)
	assert.True(t, errors.Is(err, price.ErrIncompatibleCurrency))
}

func TestSubtractNett(t *testing.T) {
	p := must(t)(price.New(d("10"), d("12"), price.WithCurrency("USD")))
	result := must(t)(p.SubtractNett(d("5"), "USD"))

	assertAmounts(t, result, "5", "6")
	assert.Equal(t, 20, result.TaxRate())
	assert.True(t, result.HasTaxRate())
}

func TestSubtractNett_Negative(t *testing.T) {
	p := must(t)(price.New(d("13.34"), d("15.53"), price.WithCurrency("USD")))
	_, err := p.SubtractNett(d("-10"), "USD")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Money value must be positive")
}

func TestSubtractNett_Zero(t *testing.T) {
	p := must(t)(price.New(d("13.34"), d("15.53"), price.WithCurrency("USD")))
	result := must(t)(p.SubtractNett(decimal.Zero, "USD"))

	assert.True(t, p.IsEqual(result))
	assert.False(t, result.HasTaxRate())
}

func TestAddGross(t *testing.T) {
	a := must(t)(price.New(d("13.24"), d("20.99"), price.WithCurrency("USD")))
	result := must(t)(a.AddGross(d("10.01"), ""))

	assert.True(t, result.Gross().Equal(d("31")))
	assert.Equal(t, "USD", result.CurrencySymbol())
	assert.True(t, a.Gross().Equal(d("20.99")))
}

func TestAddGross_RederivesNett(t *testing.T) {
	a := must(t)(price.New(d("100"), d("123"), price.WithCurrency("USD")))
	result := must(t)(a.AddGross(d("123"), "USD"))

	assertAmounts(t, result, "200", "246")
	assert.Equal(t, 23, result.TaxRate())
	assert.Equal(t, "USD", result.CurrencySymbol())
}

func TestAddGross_DifferentCurrency(t *testing.T) {
	a := must(t)(price.New(d("100"), d("123"), price.WithCurrency("USD")))
	_, err := a.AddGross(d("1"), "EUR")
	require.Error(t, err)
	assert.True(t, errors.Is(err, price.ErrIncompatibleCurrency))
}

func TestAddGross_RequiresCurrency(t *testing.T) {
	var zero price.Price
	untagged := must(t)(price.BuildEmpty("", false))

	for _, p := range []price.Price{zero, untagged} {
		result, err := p.AddGross(d("50"), "")
		require.Error(t, err)
		assert.True(t, errors.Is(err, price.ErrIllegalState))
		assert.True(t, result.IsEmpty())
	}
}

func TestAdjust_RateBecomesAuthoritative(t *testing.T) {
	tests := []struct {
		name      string
		adjust    func(p price.Price) (price.Price, error)
		wantNett  string
		wantGross string
	}{
		{"add gross", func(p price.Price) (price.Price, error) { return p.AddGross(d("10"), "PLN") }, "128", "160"},
		{"subtract gross", func(p price.Price) (price.Price, error) { return p.SubtractGross(d("30"), "PLN") }, "96", "120"},
		{"subtract nett", func(p price.Price) (price.Price, error) { return p.SubtractNett(d("20"), "PLN") }, "100", "125"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := must(t)(price.New(d("120"), d("150"), price.WithCurrency("PLN")))
			require.False(t, p.HasTaxRate())

			result := must(t)(tt.adjust(p))

			assertAmounts(t, result, tt.wantNett, tt.wantGross)
			assert.Equal(t, 25, result.TaxRate())
			assert.True(t, result.HasTaxRate())
		})
	}
}

func TestIsEqual(t *testing.T) {
	tests := []struct {
		name           string
		nettA, grossA  string
		symbolA        string
		nettB, grossB  string
		symbolB        string
		want           bool
	}{
		{"same", "100", "123", "USD", "100", "123", "USD", true},
		{"cent off", "100", "123", "USD", "100.01", "123.02", "USD", false},
		{"below precision", "100", "123", "USD", "100.0014", "123.0021", "USD", true},
		{"other currency", "100", "123", "USD", "100", "123", "EUR", false},
		{"other currency and amount", "100", "123", "USD", "100.01", "123.02", "EUR", false},
		{"empty without currency", "0", "0", "", "0", "0", "", true},
		{"empty vs tagged empty", "0", "0", "", "0", "0", "EUR", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := must(t)(price.New(d(tt.nettA), d(tt.grossA), price.WithCurrency(tt.symbolA)))
			b := must(t)(price.New(d(tt.nettB), d(tt.grossB), price.WithCurrency(tt.symbolB)))

			assert.Equal(t, tt.want, a.IsEqual(b))
			assert.Equal(t, tt.want, b.IsEqual(a))
		})
	}
}

func TestIsEqual_NettVersusGrossBuilt(t *testing.T) {
	byNett := must(t)(price.BuildByNett(d("10"), 23, "PLN"))
	byGross := must(t)(price.BuildByGross(d("10"), 23, "PLN"))
	again := must(t)(price.BuildByGross(d("10"), 23, "PLN"))

	assert.False(t, byNett.IsEqual(byGross))
	assert.False(t, byGross.IsEqual(byNett))
	assert.True(t, byGross.IsEqual(again))
}

func TestComparison(t *testing.T) {
	low := must(t)(price.BuildByGross(d("10"), 23, "PLN"))
	high := must(t)(price.BuildByNett(d("10"), 23, "PLN"))

	assert.True(t, low.IsLowerThan(high))
	assert.False(t, high.IsLowerThan(low))
	assert.True(t, high.IsGreaterThan(low))
	assert.False(t, low.IsGreaterThan(low))
}

func TestTaxDiff(t *testing.T) {
	p := must(t)(price.BuildByNett(d("10"), 23, "PLN"))
	assert.True(t, p.TaxDiff().Equal(d("2.3")))
}

func TestIsCurrencyMergeable(t *testing.T) {
	p := must(t)(price.BuildByNett(d("10"), 23, "PLN"))
	assert.True(t, p.IsCurrencyMergeable("PLN"))
	assert.False(t, p.IsCurrencyMergeable("EUR"))

	var empty price.Price
	assert.True(t, empty.IsCurrencyMergeable("EUR"))
}

func TestString(t *testing.T) {
	tests := []struct {
		name  string
		build func() (price.Price, error)
		want  string
	}{
		{"by nett", func() (price.Price, error) { return price.BuildByNett(d("10"), 23, "PLN") }, "12.30 PLN"},
		{"thousands", func() (price.Price, error) { return price.Build(d("1234567.5"), "EUR") }, "1 234 567.50 EUR"},
		{"lowercase symbol", func() (price.Price, error) { return price.Build(d("5"), "usd") }, "5.00 USD"},
		{"tagged empty", func() (price.Price, error) { return price.BuildEmpty("GBP", true) }, "0.00 GBP"},
		{"beyond float precision", func() (price.Price, error) { return price.Build(d("12345678901234567.89"), "PLN") }, "12 345 678 901 234 567.89 PLN"},
		{"untagged empty", func() (price.Price, error) { return price.BuildEmpty("", false) }, "0.00 "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := must(t)(tt.build())
			assert.Equal(t, tt.want, p.String())
		})
	}
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "0.00"},
		{"999.999", "1 000.00"},
		{"1234.5", "1 234.50"},
		{"0.005", "0.01"},
		{"98765432109876543210.123", "98 765 432 109 876 543 210.12"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, price.FormatAmount(d(tt.in)))
		})
	}
}
