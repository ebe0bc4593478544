package numeric

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSwap32(t *testing.T) {
	assert.Equal(t, uint32(0x78563412), Swap32(0x12345678))
	assert.Equal(t, uint32(0), Swap32(0))
	assert.Equal(t, uint32(0xFFFFFFFF), Swap32(0xFFFFFFFF))
	assert.Equal(t, uint32(0x12345678), Swap32(Swap32(0x12345678)))
}

func TestSwapUint32s(t *testing.T) {
	v := []uint32{0x11223344, 0xAABBCCDD, 0}
	SwapUint32s(v)
	assert.Equal(t, []uint32{0x44332211, 0xDDCCBBAA, 0}, v)
}

func TestSwapUint32s_LargeSliceRoundTrip(t *testing.T) {
	// Large enough to cross the parallel threshold.
	v := make([]uint32, parallelThreshold+1234)
	for i := range v {
		v[i] = uint32(i) * 2654435761
	}

	SwapUint32s(v)
	SwapUint32s(v)

	for i := range v {
		require.Equal(t, uint32(i)*2654435761, v[i], "element %d", i)
	}
}

func TestAdjustFloat32s(t *testing.T) {
	testCases := []struct {
		name         string
		scale, shift float32
		want         []float32
	}{
		{"identity", 1, 0, []float32{1, 2, 3}},
		{"scale only", 2, 0, []float32{2, 4, 6}},
		{"shift only", 1, 10, []float32{11, 12, 13}},
		{"scale and shift", 2, 10, []float32{12, 14, 16}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v := []float32{1, 2, 3}
			AdjustFloat32s(v, tc.scale, tc.shift)
			assert.Equal(t, tc.want, v)
		})
	}
}

func TestAdjustInt32s(t *testing.T) {
	v := []int32{-1, 0, 5}
	AdjustInt32s(v, 3, -2)
	assert.Equal(t, []int32{-5, -2, 13}, v)
}

func TestAdjustFloat64s(t *testing.T) {
	v := []float64{0.5, 1.5}
	AdjustFloat64s(v, 4, 1)
	assert.Equal(t, []float64{3, 7}, v)
}

func TestViews_RoundTrip(t *testing.T) {
	orders := []binary.ByteOrder{binary.LittleEndian, binary.BigEndian}

	for _, order := range orders {
		ints := []int32{-2147483648, -1, 0, 1, 2147483647}
		gotInts, err := Int32s(PutInt32s(ints, order), order)
		require.NoError(t, err)
		assert.Equal(t, ints, gotInts)

		floats := []float32{-1.5, 0, 3.25e7}
		gotFloats, err := Float32s(PutFloat32s(floats, order), order)
		require.NoError(t, err)
		assert.Equal(t, floats, gotFloats)

		doubles := []float64{-2.5e-300, 0, 1.25e300}
		gotDoubles, err := Float64s(PutFloat64s(doubles, order), order)
		require.NoError(t, err)
		assert.Equal(t, doubles, gotDoubles)
	}
}

func TestViews_LengthMismatch(t *testing.T) {
	raw := make([]byte, 7)

	_, err := Int32s(raw, binary.LittleEndian)
	assert.Error(t, err)
	_, err = Float32s(raw, binary.LittleEndian)
	assert.Error(t, err)
	_, err = Float64s(raw, binary.LittleEndian)
	assert.Error(t, err)
}

func TestViews_CrossOrderMatchesSwap(t *testing.T) {
	// Decoding little-endian bytes as big-endian is the same as swapping.
	ints := []int32{0x01020304, -0x01020304}
	raw := PutInt32s(ints, binary.LittleEndian)

	crossed, err := Int32s(raw, binary.BigEndian)
	require.NoError(t, err)
	for i, v := range ints {
		assert.Equal(t, uint32(crossed[i]), Swap32(uint32(v)))
	}
}
