package numeric

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Int32s interprets a raw payload as a contiguous array of signed 32-bit
// integers in the given byte order.
func Int32s(raw []byte, order binary.ByteOrder) ([]int32, error) {
	if len(raw)%4 != 0 {
		return nil, fmt.Errorf("payload length %d is not a multiple of 4", len(raw))
	}
	out := make([]int32, len(raw)/4)
	for i := range out {
		out[i] = int32(order.Uint32(raw[4*i:]))
	}
	return out, nil
}

// Float32s interprets a raw payload as a contiguous array of 32-bit floats
// in the given byte order.
func Float32s(raw []byte, order binary.ByteOrder) ([]float32, error) {
	if len(raw)%4 != 0 {
		return nil, fmt.Errorf("payload length %d is not a multiple of 4", len(raw))
	}
	out := make([]float32, len(raw)/4)
	for i := range out {
		out[i] = math.Float32frombits(order.Uint32(raw[4*i:]))
	}
	return out, nil
}

// Float64s interprets a raw payload as a contiguous array of 64-bit floats
// in the given byte order.
func Float64s(raw []byte, order binary.ByteOrder) ([]float64, error) {
	if len(raw)%8 != 0 {
		return nil, fmt.Errorf("payload length %d is not a multiple of 8", len(raw))
	}
	out := make([]float64, len(raw)/8)
	for i := range out {
		out[i] = math.Float64frombits(order.Uint64(raw[8*i:]))
	}
	return out, nil
}

// PutInt32s encodes values into a payload buffer in the given byte order,
// the inverse of Int32s.
func PutInt32s(values []int32, order binary.ByteOrder) []byte {
	raw := make([]byte, 4*len(values))
	for i, v := range values {
		order.PutUint32(raw[4*i:], uint32(v))
	}
	return raw
}

// PutFloat32s encodes values into a payload buffer in the given byte order.
func PutFloat32s(values []float32, order binary.ByteOrder) []byte {
	raw := make([]byte, 4*len(values))
	for i, v := range values {
		order.PutUint32(raw[4*i:], math.Float32bits(v))
	}
	return raw
}

// PutFloat64s encodes values into a payload buffer in the given byte order.
func PutFloat64s(values []float64, order binary.ByteOrder) []byte {
	raw := make([]byte, 8*len(values))
	for i, v := range values {
		order.PutUint64(raw[8*i:], math.Float64bits(v))
	}
	return raw
}
