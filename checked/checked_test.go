package checked

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

// -----------------------------------------------------------------------------
// Exhaustive 8-bit grids against wide-integer arithmetic
// -----------------------------------------------------------------------------

func TestAdd_ExhaustiveInt8(t *testing.T) {
	for a := math.MinInt8; a <= math.MaxInt8; a++ {
		for b := math.MinInt8; b <= math.MaxInt8; b++ {
			got, ok := Add(int8(a), int8(b))
			sum := a + b
			fits := sum >= math.MinInt8 && sum <= math.MaxInt8
			if ok != fits {
				t.Fatalf("Add(int8 %d, %d): ok = %v, want %v", a, b, ok, fits)
			}
			if ok && int(got) != sum {
				t.Fatalf("Add(int8 %d, %d) = %d, want %d", a, b, got, sum)
			}
			if !ok && got != 0 {
				t.Fatalf("Add(int8 %d, %d): value %d on overflow, want 0", a, b, got)
			}
		}
	}
}

func TestSub_ExhaustiveInt8(t *testing.T) {
	for a := math.MinInt8; a <= math.MaxInt8; a++ {
		for b := math.MinInt8; b <= math.MaxInt8; b++ {
			got, ok := Sub(int8(a), int8(b))
			diff := a - b
			fits := diff >= math.MinInt8 && diff <= math.MaxInt8
			if ok != fits {
				t.Fatalf("Sub(int8 %d, %d): ok = %v, want %v", a, b, ok, fits)
			}
			if ok && int(got) != diff {
				t.Fatalf("Sub(int8 %d, %d) = %d, want %d", a, b, got, diff)
			}
		}
	}
}

func TestMul_ExhaustiveInt8(t *testing.T) {
	for a := math.MinInt8; a <= math.MaxInt8; a++ {
		for b := math.MinInt8; b <= math.MaxInt8; b++ {
			got, ok := Mul(int8(a), int8(b))
			prod := a * b
			fits := prod >= math.MinInt8 && prod <= math.MaxInt8
			if ok != fits {
				t.Fatalf("Mul(int8 %d, %d): ok = %v, want %v", a, b, ok, fits)
			}
			if ok && int(got) != prod {
				t.Fatalf("Mul(int8 %d, %d) = %d, want %d", a, b, got, prod)
			}
		}
	}
}

func TestMul_ExhaustiveUint8(t *testing.T) {
	for a := 0; a <= math.MaxUint8; a++ {
		for b := 0; b <= math.MaxUint8; b++ {
			got, ok := Mul(uint8(a), uint8(b))
			prod := a * b
			fits := prod <= math.MaxUint8
			if ok != fits {
				t.Fatalf("Mul(uint8 %d, %d): ok = %v, want %v", a, b, ok, fits)
			}
			if ok && int(got) != prod {
				t.Fatalf("Mul(uint8 %d, %d) = %d, want %d", a, b, got, prod)
			}
		}
	}
}

// -----------------------------------------------------------------------------
// 64-bit edges against math/big
// -----------------------------------------------------------------------------

func TestMul_Int64Edges(t *testing.T) {
	edges := []int64{
		math.MinInt64, math.MinInt64 + 1, -(1 << 32), -3, -2, -1, 0, 1, 2, 3,
		1 << 32, math.MaxInt64 - 1, math.MaxInt64,
	}
	minB, maxB := big.NewInt(math.MinInt64), big.NewInt(math.MaxInt64)
	for _, a := range edges {
		for _, b := range edges {
			got, ok := Mul(a, b)
			want := new(big.Int).Mul(big.NewInt(a), big.NewInt(b))
			fits := want.Cmp(minB) >= 0 && want.Cmp(maxB) <= 0
			require.Equal(t, fits, ok, "Mul(%d, %d)", a, b)
			if ok {
				require.Equal(t, want.Int64(), got, "Mul(%d, %d)", a, b)
			} else {
				require.Zero(t, got, "Mul(%d, %d)", a, b)
			}
		}
	}
}

func TestAdd_Int64Edges(t *testing.T) {
	edges := []int64{
		math.MinInt64, math.MinInt64 + 1, -1, 0, 1, math.MaxInt64 - 1, math.MaxInt64,
	}
	minB, maxB := big.NewInt(math.MinInt64), big.NewInt(math.MaxInt64)
	for _, a := range edges {
		for _, b := range edges {
			got, ok := Add(a, b)
			want := new(big.Int).Add(big.NewInt(a), big.NewInt(b))
			fits := want.Cmp(minB) >= 0 && want.Cmp(maxB) <= 0
			require.Equal(t, fits, ok, "Add(%d, %d)", a, b)
			if ok {
				require.Equal(t, want.Int64(), got, "Add(%d, %d)", a, b)
			}

			gotSub, okSub := Sub(a, b)
			wantSub := new(big.Int).Sub(big.NewInt(a), big.NewInt(b))
			fitsSub := wantSub.Cmp(minB) >= 0 && wantSub.Cmp(maxB) <= 0
			require.Equal(t, fitsSub, okSub, "Sub(%d, %d)", a, b)
			if okSub {
				require.Equal(t, wantSub.Int64(), gotSub, "Sub(%d, %d)", a, b)
			}
		}
	}
}

func TestMul_Uint64Edges(t *testing.T) {
	edges := []uint64{0, 1, 2, 3, 1 << 31, 1 << 32, 1 << 63, math.MaxUint64 - 1, math.MaxUint64}
	maxB := new(big.Int).SetUint64(math.MaxUint64)
	for _, a := range edges {
		for _, b := range edges {
			got, ok := Mul(a, b)
			want := new(big.Int).Mul(new(big.Int).SetUint64(a), new(big.Int).SetUint64(b))
			fits := want.Cmp(maxB) <= 0
			require.Equal(t, fits, ok, "Mul(%d, %d)", a, b)
			if ok {
				require.Equal(t, want.Uint64(), got, "Mul(%d, %d)", a, b)
			}
		}
	}
}

// -----------------------------------------------------------------------------
// The classic traps
// -----------------------------------------------------------------------------

func TestMul_MinTimesMinusOne(t *testing.T) {
	_, ok := Mul(int64(math.MinInt64), int64(-1))
	require.False(t, ok)
	_, ok = Mul(int64(-1), int64(math.MinInt64))
	require.False(t, ok)

	// Min times one is fine in both orders.
	v, ok := Mul(int64(math.MinInt64), int64(1))
	require.True(t, ok)
	require.Equal(t, int64(math.MinInt64), v)
	v, ok = Mul(int64(1), int64(math.MinInt64))
	require.True(t, ok)
	require.Equal(t, int64(math.MinInt64), v)
}

func TestSub_UnsignedBorrow(t *testing.T) {
	_, ok := Sub(uint32(0), uint32(1))
	require.False(t, ok)

	v, ok := Sub(uint32(1), uint32(1))
	require.True(t, ok)
	require.Zero(t, v)
}

func TestAdd_UnsignedWrap(t *testing.T) {
	_, ok := Add(uint16(math.MaxUint16), uint16(1))
	require.False(t, ok)

	v, ok := Add(uint16(math.MaxUint16), uint16(0))
	require.True(t, ok)
	require.Equal(t, uint16(math.MaxUint16), v)
}

// -----------------------------------------------------------------------------
// Platform-width and named types
// -----------------------------------------------------------------------------

func TestChecked_PlatformWidth(t *testing.T) {
	_, ok := Add(math.MaxInt, 1)
	require.False(t, ok)

	_, ok = Mul(math.MaxInt/2+1, 2)
	require.False(t, ok)

	end, ok := Mul(1024, 64)
	require.True(t, ok)
	require.Equal(t, 65536, end)

	_, ok = Mul(uint(math.MaxUint), uint(2))
	require.False(t, ok)
}

func TestChecked_NamedTypes(t *testing.T) {
	type count uint32

	total, ok := Mul(count(1000), count(4))
	require.True(t, ok)
	require.Equal(t, count(4000), total)

	_, ok = Mul(count(math.MaxUint32), count(2))
	require.False(t, ok)
}
