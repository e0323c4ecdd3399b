package quantize_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/quantize"
	"github.com/hupe1980/quantize/testutil"
)

const propertySamples = 2000

var propertyFactors = []int{2, 3, 5, 10, 1000}

func TestProperties_Float64(t *testing.T) {
	rng := testutil.NewRNG(42)

	for _, factor := range propertyFactors {
		q := quantize.NewFloat64(factor)
		f := float64(factor)

		for range propertySamples {
			v := rng.Float64Range(-1e12, 1e12)
			key := q.Quantize(v)

			require.Equal(t, key, q.Quantize(v), "determinism for %v", v)
			require.Equal(t, key, q.Quantize(key), "idempotence for %v", v)
			require.Zero(t, math.Mod(key, f), "alignment for %v (factor %d)", v, factor)
			require.LessOrEqual(t, math.Abs(key), math.Abs(v))
			require.Less(t, math.Abs(v-key), f)
			if key != 0 {
				require.Equal(t, math.Signbit(v), math.Signbit(key))
			}
		}
	}
}

func TestProperties_Float64Truncating(t *testing.T) {
	rng := testutil.NewRNG(7)
	q := quantize.NewFloat64(1)

	for range propertySamples {
		v := rng.Float64Range(-1e6, 1e6)
		key := q.Quantize(v)
		require.Equal(t, math.Trunc(v)+0, key, "truncation for %v", v)
		require.Equal(t, key, q.Quantize(key))
	}
}

func TestProperties_Decimal(t *testing.T) {
	rng := testutil.NewRNG(43)

	for _, factor := range propertyFactors {
		q := quantize.NewDecimal(factor)
		f := decimal.NewFromInt(int64(factor))

		for range propertySamples {
			v := rng.Decimal(1_000_000_000, 4)
			key := q.Quantize(v)

			require.True(t, key.Equal(q.Quantize(v)), "determinism for %s", v)
			require.True(t, key.Equal(q.Quantize(key)), "idempotence for %s", v)
			require.True(t, key.Mod(f).IsZero(), "alignment for %s (factor %d)", v, factor)
			require.True(t, key.Abs().LessThanOrEqual(v.Abs()))
			require.True(t, v.Sub(key).Abs().LessThan(f))
			require.Equal(t, int32(0), key.Exponent())
			if !key.IsZero() {
				require.Equal(t, v.Sign(), key.Sign())
			}
		}
	}
}

func TestProperties_DecimalTruncating(t *testing.T) {
	rng := testutil.NewRNG(8)
	q := quantize.NewDecimal(0)

	for range propertySamples {
		v := rng.Decimal(1_000_000, 6)
		require.True(t, v.Truncate(0).Equal(q.Quantize(v)), "truncation for %s", v)
	}
}

func TestProperties_BigInt(t *testing.T) {
	rng := testutil.NewRNG(44)

	for _, factor := range propertyFactors {
		q, err := quantize.NewBigInt(factor)
		require.NoError(t, err)
		f := big.NewInt(int64(factor))

		for range propertySamples {
			v := rng.BigInt(160)
			key := q.Quantize(v)

			require.Zero(t, key.Cmp(q.Quantize(v)), "determinism for %s", v)
			require.Zero(t, key.Cmp(q.Quantize(key)), "idempotence for %s", v)
			require.Zero(t, new(big.Int).Rem(key, f).Sign(), "alignment for %s (factor %d)", v, factor)
			require.LessOrEqual(t, new(big.Int).Abs(key).Cmp(new(big.Int).Abs(v)), 0)
			require.Negative(t, new(big.Int).Abs(new(big.Int).Sub(v, key)).Cmp(f))
			if key.Sign() != 0 {
				require.Equal(t, v.Sign(), key.Sign())
			}
		}
	}
}

func TestProperties_MonotonicWithinBucket(t *testing.T) {
	rng := testutil.NewRNG(45)

	for _, factor := range propertyFactors {
		fq := quantize.NewFloat64(factor)
		dq := quantize.NewDecimal(factor)
		f := float64(factor)

		for range propertySamples / 10 {
			k := float64(rng.Intn(1_000_000))
			lo, hi := k*f, (k+1)*f

			// [k*f, (k+1)*f) on the positive side, mirrored on the negative side.
			v1 := rng.Float64Range(lo, hi)
			v2 := rng.Float64Range(lo, hi)
			require.Equal(t, lo, fq.Quantize(v1))
			require.Equal(t, fq.Quantize(v1), fq.Quantize(v2))
			require.Equal(t, -lo+0, fq.Quantize(-v1)+0)
			require.Equal(t, fq.Quantize(-v1), fq.Quantize(-v2))

			d1 := decimal.NewFromFloat(v1)
			d2 := decimal.NewFromFloat(v2)
			require.True(t, dq.Quantize(d1).Equal(dq.Quantize(d2)))
			require.True(t, dq.Quantize(d1.Neg()).Equal(dq.Quantize(d2.Neg())))
		}
	}
}

func TestProperties_CrossDomain(t *testing.T) {
	fq := quantize.NewFloat64(5)
	dq := quantize.NewDecimal(5)

	inputs := []float64{0, 4.2, 5.0, 9.9, math.Copysign(0, -1), -4.2, -5.0, -9.9}
	want := []float64{0, 0, 5, 5, 0, 0, -5, -5}

	for i, v := range inputs {
		assert.Equal(t, want[i], fq.Quantize(v), "float64 %v", v)
		assert.True(t, decimal.NewFromFloat(want[i]).Equal(dq.Quantize(decimal.NewFromFloat(v))), "decimal %v", v)
	}

	bq, err := quantize.NewBigInt(5)
	require.NoError(t, err)
	iq, err := quantize.NewInt[int64](5)
	require.NoError(t, err)

	ints := []int64{0, 4, 5, 9, -4, -5, -9}
	wantInts := []int64{0, 0, 5, 5, 0, -5, -5}
	for i, v := range ints {
		assert.Equal(t, wantInts[i], bq.Quantize(big.NewInt(v)).Int64(), "bigint %d", v)
		assert.Equal(t, wantInts[i], iq.Quantize(v), "int64 %d", v)
	}

	rng := testutil.NewRNG(46)
	for range propertySamples {
		v := rng.Float64Range(-1e9, 1e9)
		assert.True(t,
			decimal.NewFromFloat(fq.Quantize(v)).Equal(dq.Quantize(decimal.NewFromFloat(v))),
			"float64 and decimal disagree for %v", v)
	}
}
