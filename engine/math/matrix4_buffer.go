package math

import (
	"encoding/binary"
	"fmt"
	"io"
	m "math"
)

// matrixBytes is the size of the serialized form: 16 float64 values.
const matrixBytes = 16 * 8

/**
 * @brief Copies the 16 elements in column-major order into dest starting at
 * offset.
 *
 * @return ErrBufferTooSmall when dest cannot hold 16 values past offset.
 */
func (mat *Matrix4d) Float64s(dest []float64, offset int) error {
	if offset < 0 || len(dest)-offset < 16 {
		return bufferError("[]float64", len(dest), offset, 16)
	}
	a := mat.Array()
	copy(dest[offset:], a[:])
	return nil
}

// Float64sTransposed copies the elements in row-major order.
func (mat *Matrix4d) Float64sTransposed(dest []float64, offset int) error {
	var t Matrix4d
	return mat.TransposeTo(&t).Float64s(dest, offset)
}

// Float32s copies the 16 elements into dest, narrowing each one to float32.
func (mat *Matrix4d) Float32s(dest []float32, offset int) error {
	if offset < 0 || len(dest)-offset < 16 {
		return bufferError("[]float32", len(dest), offset, 16)
	}
	for i, v := range mat.Array() {
		dest[offset+i] = float32(v)
	}
	return nil
}

// SetFloat64s reads 16 column-major elements from src starting at offset.
func (mat *Matrix4d) SetFloat64s(src []float64, offset int) (*Matrix4d, error) {
	if offset < 0 || len(src)-offset < 16 {
		return mat, bufferError("[]float64", len(src), offset, 16)
	}
	var a [16]float64
	copy(a[:], src[offset:offset+16])
	return mat.SetArray(a), nil
}

// SetFloat64sTransposed reads 16 row-major elements from src.
func (mat *Matrix4d) SetFloat64sTransposed(src []float64, offset int) (*Matrix4d, error) {
	if _, err := mat.SetFloat64s(src, offset); err != nil {
		return mat, err
	}
	return mat.Transpose(), nil
}

// SetFloat32s reads 16 column-major elements from src, widening each one.
func (mat *Matrix4d) SetFloat32s(src []float32, offset int) (*Matrix4d, error) {
	if offset < 0 || len(src)-offset < 16 {
		return mat, bufferError("[]float32", len(src), offset, 16)
	}
	var a [16]float64
	for i := range a {
		a[i] = float64(src[offset+i])
	}
	return mat.SetArray(a), nil
}

/**
 * @brief Encodes the 16 elements as float64 values in column-major order
 * into dest at offset, using order for the byte layout.
 */
func (mat *Matrix4d) PutBytes(dest []byte, offset int, order binary.ByteOrder) error {
	if offset < 0 || len(dest)-offset < matrixBytes {
		return bufferError("[]byte", len(dest), offset, matrixBytes)
	}
	for i, v := range mat.Array() {
		order.PutUint64(dest[offset+i*8:], m.Float64bits(v))
	}
	return nil
}

// PutFloat32Bytes encodes the elements narrowed to float32 values.
func (mat *Matrix4d) PutFloat32Bytes(dest []byte, offset int, order binary.ByteOrder) error {
	if offset < 0 || len(dest)-offset < 64 {
		return bufferError("[]byte", len(dest), offset, 64)
	}
	for i, v := range mat.Array() {
		order.PutUint32(dest[offset+i*4:], m.Float32bits(float32(v)))
	}
	return nil
}

// SetBytes decodes 16 float64 values written by PutBytes.
func (mat *Matrix4d) SetBytes(src []byte, offset int, order binary.ByteOrder) (*Matrix4d, error) {
	if offset < 0 || len(src)-offset < matrixBytes {
		return mat, bufferError("[]byte", len(src), offset, matrixBytes)
	}
	var a [16]float64
	for i := range a {
		a[i] = m.Float64frombits(order.Uint64(src[offset+i*8:]))
	}
	return mat.SetArray(a), nil
}

// SetFloat32Bytes decodes 16 float32 values written by PutFloat32Bytes.
func (mat *Matrix4d) SetFloat32Bytes(src []byte, offset int, order binary.ByteOrder) (*Matrix4d, error) {
	if offset < 0 || len(src)-offset < 64 {
		return mat, bufferError("[]byte", len(src), offset, 64)
	}
	var a [16]float64
	for i := range a {
		a[i] = float64(m.Float32frombits(order.Uint32(src[offset+i*4:])))
	}
	return mat.SetArray(a), nil
}

// MarshalBinary encodes the matrix as 16 big-endian float64 values.
func (mat *Matrix4d) MarshalBinary() ([]byte, error) {
	buf := make([]byte, matrixBytes)
	if err := mat.PutBytes(buf, 0, binary.BigEndian); err != nil {
		return nil, err
	}
	return buf, nil
}

// UnmarshalBinary decodes the form written by MarshalBinary.
func (mat *Matrix4d) UnmarshalBinary(data []byte) error {
	if len(data) != matrixBytes {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrBufferTooSmall, len(data), matrixBytes)
	}
	_, err := mat.SetBytes(data, 0, binary.BigEndian)
	return err
}

// WriteTo writes the 16 elements as big-endian float64 values.
func (mat *Matrix4d) WriteTo(w io.Writer) (int64, error) {
	buf, err := mat.MarshalBinary()
	if err != nil {
		return 0, err
	}
	n, err := w.Write(buf)
	return int64(n), err
}

// ReadFrom reads 16 big-endian float64 values written by WriteTo.
func (mat *Matrix4d) ReadFrom(r io.Reader) (int64, error) {
	buf := make([]byte, matrixBytes)
	n, err := io.ReadFull(r, buf)
	if err != nil {
		return int64(n), fmt.Errorf("reading matrix: %w", err)
	}
	return int64(n), mat.UnmarshalBinary(buf)
}
