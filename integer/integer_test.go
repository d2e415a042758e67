package integer

import (
	"fmt"
	"math"
	"math/big"
	"math/rand/v2"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/packed"
	"github.com/calebcase/packed/digits"
)

func mustParse(t *testing.T, s string) Block {
	t.Helper()

	b, err := Parse(s)
	require.NoError(t, err)

	return b
}

func randBlock(rng *rand.Rand, max int) Block {
	n := 1 + rng.IntN(max)

	value := make(digits.Digits, n)
	for i := range value {
		value[i] = byte(rng.IntN(10))
	}

	return New(rng.IntN(2) == 0, value)
}

func TestMarshalUnmarshal(t *testing.T) {
	type TC struct {
		name string
		blk  Block
	}

	tcs := []TC{
		{
			name: "0",
			blk:  Block{Value: digits.Digits{0}},
		},
		{
			name: "1",
			blk:  Block{Value: digits.Digits{1}},
		},
		{
			name: "-1",
			blk:  Block{Value: digits.Digits{1}, Negative: true},
		},
		{
			name: "-127",
			blk:  Block{Value: digits.Digits{1, 2, 7}, Negative: true},
		},
		{
			name: "9999999",
			blk:  Block{Value: digits.Digits{9, 9, 9, 9, 9, 9, 9}},
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			t.Run("marshal", func(t *testing.T) {
				text, err := tc.blk.MarshalText()
				require.NoError(t, err)
				require.Equal(t, tc.name, string(text))
			})

			t.Run("unmarshal", func(t *testing.T) {
				blk := &Block{}
				err := blk.UnmarshalText([]byte(tc.name))
				require.NoError(t, err)
				require.Equal(t, tc.blk, *blk)

				// These checks ensure that our test case name matches the value.
				i := new(big.Int)
				err = i.UnmarshalText([]byte(tc.name))
				require.NoError(t, err)
				require.Equal(t, 0, i.Cmp(blk.BigInt()))
				require.Equal(t, i.Sign(), blk.Sign())
			})
		})
	}
}

func TestParse(t *testing.T) {
	require.Equal(t, "0", mustParse(t, "-0").String())
	require.False(t, mustParse(t, "-000").Negative)
	require.Equal(t, "42", mustParse(t, "+0042").String())

	for _, s := range []string{"", "-", "+", "--1", "1.5", "1e3"} {
		_, err := Parse(s)
		require.Error(t, err, s)
		require.True(t, packed.Invalid.Has(err), s)
	}
}

func TestFromInt(t *testing.T) {
	require.Equal(t, "-9223372036854775808", FromInt(int64(math.MinInt64)).String())
	require.Equal(t, "18446744073709551615", FromInt(uint64(math.MaxUint64)).String())
	require.Equal(t, "-128", FromInt(int8(-128)).String())
	require.Equal(t, "0", FromInt(0).String())

	v, err := FromInt(int64(math.MinInt64)).Int64()
	require.NoError(t, err)
	require.Equal(t, int64(math.MinInt64), v)

	_, err = FromInt(uint64(math.MaxUint64)).Int64()
	require.Error(t, err)
	require.True(t, packed.Overflow.Has(err))
}

func TestTruncate(t *testing.T) {
	require.Equal(t, "-567", mustParse(t, "-1234567").Truncate(3).String())
	require.Equal(t, Zero(), mustParse(t, "-1000").Truncate(3))
	require.Equal(t, "12", mustParse(t, "12").Truncate(4).String())
}

func TestArith(t *testing.T) {
	type TC struct {
		name string
		a, b string

		sum, diff, product, quo, rem string
	}

	tcs := []TC{
		{name: "positive", a: "7", b: "2", sum: "9", diff: "5", product: "14", quo: "3", rem: "1"},
		{name: "negative dividend", a: "-7", b: "2", sum: "-5", diff: "-9", product: "-14", quo: "-3", rem: "-1"},
		{name: "negative divisor", a: "7", b: "-2", sum: "5", diff: "9", product: "-14", quo: "-3", rem: "1"},
		{name: "both negative", a: "-7", b: "-2", sum: "-9", diff: "-5", product: "14", quo: "3", rem: "-1"},
		{name: "exact negative", a: "-6", b: "3", sum: "-3", diff: "-9", product: "-18", quo: "-2", rem: "0"},
		{name: "small negative", a: "-1", b: "5", sum: "4", diff: "-6", product: "-5", quo: "0", rem: "-1"},
		{name: "zero", a: "0", b: "-5", sum: "-5", diff: "5", product: "0", quo: "0", rem: "0"},
		{name: "cancel", a: "-12345", b: "-12345", sum: "-24690", diff: "0", product: "152399025", quo: "1", rem: "0"},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			a, b := mustParse(t, tc.a), mustParse(t, tc.b)

			require.Equal(t, tc.sum, a.Add(b).String())
			require.Equal(t, tc.diff, a.Sub(b).String())
			require.Equal(t, tc.product, a.Mul(b).String())

			q, r, err := a.QuoRem(b)
			require.NoError(t, err)
			require.Equal(t, tc.quo, q.String())
			require.Equal(t, tc.rem, r.String())

			// Canonical zero: the sign must be cleared.
			for _, z := range []Block{a.Add(b), a.Sub(b), a.Mul(b), q, r} {
				if z.IsZero() {
					require.False(t, z.Negative, spew.Sdump(z))
				}
			}
		})
	}
}

func TestDivideByZero(t *testing.T) {
	for _, s := range []string{"0", "-0", "1", "-152399025"} {
		a := mustParse(t, s)

		_, err := a.Quo(Zero())
		require.True(t, packed.DivideByZero.Has(err), s)

		_, err = a.Rem(Block{Value: digits.Digits{0, 0}, Negative: true})
		require.True(t, packed.DivideByZero.Has(err), s)
	}
}

func TestCmp(t *testing.T) {
	negZero := Block{Value: digits.Digits{0}, Negative: true}

	require.Equal(t, 0, Cmp(negZero, Zero()))
	require.Equal(t, 0, Cmp(Zero(), negZero))
	require.Equal(t, -1, Cmp(negZero, mustParse(t, "1")))
	require.Equal(t, 1, Cmp(negZero, mustParse(t, "-1")))
	require.Equal(t, -1, Cmp(mustParse(t, "-100"), mustParse(t, "-99")))
	require.Equal(t, 1, Cmp(mustParse(t, "100"), mustParse(t, "99")))
	require.Equal(t, 0, Cmp(Block{Value: digits.Digits{0, 0, 5}}, mustParse(t, "5")))
}

func TestProperties(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))

	for i := 0; i < 300; i++ {
		a, b := randBlock(rng, 30), randBlock(rng, 20)
		x, y := a.BigInt(), b.BigInt()

		require.Equal(t, Zero(), a.Add(a.Neg()))
		require.Equal(t, a.Add(b), b.Add(a))
		require.Equal(t, a.Sub(b), a.Add(b.Neg()))

		require.Equal(t, new(big.Int).Add(x, y).String(), a.Add(b).String())
		require.Equal(t, new(big.Int).Sub(x, y).String(), a.Sub(b).String())
		require.Equal(t, new(big.Int).Mul(x, y).String(), a.Mul(b).String())
		require.Equal(t, x.Cmp(y), Cmp(a, b))

		if b.IsZero() {
			continue
		}

		q, r, err := a.QuoRem(b)
		require.NoError(t, err)

		// big.Int.QuoRem implements truncated division.
		wq, wr := new(big.Int).QuoRem(x, y, new(big.Int))
		require.Equal(t, wq.String(), q.String())
		require.Equal(t, wr.String(), r.String())
		require.Equal(t, a, q.Mul(b).Add(r))
	}
}
