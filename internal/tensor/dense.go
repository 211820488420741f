package tensor

import (
	"fmt"
	"strings"
	"unsafe"
)

// Dense is a fixed-shape numeric buffer with row-major layout.
//
// The backing buffer is flat bytes reinterpreted through zero-copy typed
// views (Float32s, Float64s). Invariant: len(data) == Numel * dtype.Size().
//
// Dense values are plainly owned by whoever created them; the type carries
// no reference counting and is not safe for concurrent mutation.
type Dense struct {
	shape  Shape
	stride []int
	dtype  DataType
	data   []byte
}

// NewDense creates a zero-filled tensor with the given shape and type.
func NewDense(shape Shape, dtype DataType) (*Dense, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	return &Dense{
		shape:  shape.Clone(),
		stride: shape.Strides(),
		dtype:  dtype,
		data:   make([]byte, shape.Numel()*dtype.Size()),
	}, nil
}

// Shape returns the tensor's shape.
func (d *Dense) Shape() Shape {
	return d.shape
}

// Strides returns the tensor's row-major memory strides.
func (d *Dense) Strides() []int {
	return d.stride
}

// DType returns the tensor's data type.
func (d *Dense) DType() DataType {
	return d.dtype
}

// Numel returns the total number of elements.
func (d *Dense) Numel() int {
	return d.shape.Numel()
}

// Data returns the raw byte slice backing the tensor.
func (d *Dense) Data() []byte {
	return d.data
}

// Float32s interprets the buffer as []float32.
// Panics if the tensor's dtype is not Float32.
func (d *Dense) Float32s() []float32 {
	if d.dtype != Float32 {
		panic(fmt.Sprintf("tensor dtype is %s, not float32", d.dtype))
	}
	return unsafe.Slice((*float32)(unsafe.Pointer(&d.data[0])), d.Numel())
}

// Float64s interprets the buffer as []float64.
// Panics if the tensor's dtype is not Float64.
func (d *Dense) Float64s() []float64 {
	if d.dtype != Float64 {
		panic(fmt.Sprintf("tensor dtype is %s, not float64", d.dtype))
	}
	return unsafe.Slice((*float64)(unsafe.Pointer(&d.data[0])), d.Numel())
}

// At returns the element at the given flat index as float64,
// regardless of the underlying dtype.
func (d *Dense) At(i int) float64 {
	switch d.dtype {
	case Float32:
		return float64(d.Float32s()[i])
	default:
		return d.Float64s()[i]
	}
}

// SetAt stores v (converted to the underlying dtype) at flat index i.
func (d *Dense) SetAt(i int, v float64) {
	switch d.dtype {
	case Float32:
		d.Float32s()[i] = float32(v)
	default:
		d.Float64s()[i] = v
	}
}

// Clone returns a deep copy of the tensor.
func (d *Dense) Clone() *Dense {
	out := &Dense{
		shape:  d.shape.Clone(),
		stride: append([]int(nil), d.stride...),
		dtype:  d.dtype,
		data:   make([]byte, len(d.data)),
	}
	copy(out.data, d.data)
	return out
}

// CopyFrom copies src's buffer into d. Shapes and dtypes must match.
func (d *Dense) CopyFrom(src *Dense) error {
	if !d.shape.Equal(src.shape) {
		return fmt.Errorf("copy: shape mismatch %v vs %v", d.shape, src.shape)
	}
	if d.dtype != src.dtype {
		return fmt.Errorf("copy: dtype mismatch %s vs %s", d.dtype, src.dtype)
	}
	copy(d.data, src.data)
	return nil
}

// Zero resets every element to zero in place.
func (d *Dense) Zero() {
	clear(d.data)
}

// Equal reports whether two tensors have identical shape, dtype and contents.
func (d *Dense) Equal(other *Dense) bool {
	if !d.shape.Equal(other.shape) || d.dtype != other.dtype {
		return false
	}
	for i := 0; i < d.Numel(); i++ {
		if d.At(i) != other.At(i) {
			return false
		}
	}
	return true
}

// String renders the tensor for debugging, e.g. "Dense[2 2]float32{1 0 0 1}".
func (d *Dense) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Dense%v%s{", d.shape, d.dtype)
	for i := 0; i < d.Numel(); i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%g", d.At(i))
	}
	sb.WriteByte('}')
	return sb.String()
}
