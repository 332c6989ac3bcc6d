package opengl

import (
	"fmt"
	"unsafe"
)

// Buffer owns a GPU buffer object. Immutable buffers get their size and
// storage flags from glNamedBufferStorage and keep them for their lifetime;
// mutable buffers may be reallocated with new data.
type Buffer struct {
	noCopy noCopy

	driver    Driver
	handle    Handle
	immutable bool
}

// NewImmutableBuffer allocates a buffer whose storage is fixed at len(data)
// bytes.
func NewImmutableBuffer(d Driver, data []byte, flags StorageFlags) (*Buffer, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	b, err := createBuffer(d)
	if err != nil {
		return nil, err
	}
	b.immutable = true
	d.NamedBufferStorage(b.handle, data, flags)
	if err := checkDriver(d, "glNamedBufferStorage"); err != nil {
		b.Destroy()
		return nil, err
	}
	return b, nil
}

// NewMutableBuffer allocates a buffer initialised with data. The storage may
// later be replaced with Reallocate.
func NewMutableBuffer(d Driver, data []byte, usage BufferUsage) (*Buffer, error) {
	b, err := createBuffer(d)
	if err != nil {
		return nil, err
	}
	d.NamedBufferData(b.handle, data, usage)
	if err := checkDriver(d, "glNamedBufferData"); err != nil {
		b.Destroy()
		return nil, err
	}
	return b, nil
}

func createBuffer(d Driver) (*Buffer, error) {
	h := d.CreateBuffer()
	if h == InvalidHandle {
		return nil, newGraphicsError(d, "glCreateBuffers")
	}
	return &Buffer{driver: d, handle: h}, nil
}

func (b *Buffer) Handle() Handle {
	return b.handle
}

// Valid reports whether the buffer still owns a handle.
func (b *Buffer) Valid() bool {
	return b.handle != InvalidHandle
}

// Move transfers ownership of the handle to a new Buffer. b is left invalid.
func (b *Buffer) Move() *Buffer {
	moved := &Buffer{driver: b.driver, handle: b.handle, immutable: b.immutable}
	b.handle = InvalidHandle
	return moved
}

// Destroy releases the handle. It is a no-op on an invalid buffer.
func (b *Buffer) Destroy() {
	if b.handle == InvalidHandle {
		return
	}
	b.driver.DeleteBuffer(b.handle)
	b.handle = InvalidHandle
}

// Reallocate replaces the storage of a mutable buffer.
func (b *Buffer) Reallocate(data []byte, usage BufferUsage) error {
	if b.handle == InvalidHandle {
		return ErrInvalidHandle
	}
	if b.immutable {
		return ErrImmutableBuffer
	}
	b.driver.NamedBufferData(b.handle, data, usage)
	return checkDriver(b.driver, "glNamedBufferData")
}

// SetData overwrites len(data) bytes starting at offset.
func (b *Buffer) SetData(offset int, data []byte) error {
	if b.handle == InvalidHandle {
		return ErrInvalidHandle
	}
	if b.immutable && b.StorageFlags()&DynamicStorageBit == 0 {
		return ErrBufferNotDynamic
	}
	if err := b.checkRange(offset, len(data)); err != nil {
		return err
	}
	b.driver.NamedBufferSubData(b.handle, offset, data)
	return checkDriver(b.driver, "glNamedBufferSubData")
}

// Data reads n bytes starting at offset.
func (b *Buffer) Data(offset, n int) ([]byte, error) {
	if b.handle == InvalidHandle {
		return nil, ErrInvalidHandle
	}
	if err := b.checkRange(offset, n); err != nil {
		return nil, err
	}
	dst := make([]byte, n)
	b.driver.GetNamedBufferSubData(b.handle, offset, dst)
	if err := checkDriver(b.driver, "glGetNamedBufferSubData"); err != nil {
		return nil, err
	}
	return dst, nil
}

// Map maps the whole buffer into client memory. The returned slice is valid
// until Unmap.
func (b *Buffer) Map(access MapAccess) ([]byte, error) {
	if b.handle == InvalidHandle {
		return nil, ErrInvalidHandle
	}
	data := b.driver.MapNamedBuffer(b.handle, access)
	if data == nil {
		return nil, newGraphicsError(b.driver, "glMapNamedBuffer")
	}
	return data, nil
}

func (b *Buffer) Unmap() error {
	if b.handle == InvalidHandle {
		return ErrInvalidHandle
	}
	if !b.driver.UnmapNamedBuffer(b.handle) {
		if err := checkDriver(b.driver, "glUnmapNamedBuffer"); err != nil {
			return err
		}
		return ErrUnmapCorrupted
	}
	return nil
}

func (b *Buffer) checkRange(offset, n int) error {
	size := b.Size()
	if offset < 0 || n < 0 || offset+n > size {
		return fmt.Errorf("%w: [%d, %d) of %d bytes", ErrBufferRange, offset, offset+n, size)
	}
	return nil
}

// Size returns the size of the buffer storage in bytes.
func (b *Buffer) Size() int {
	return int(b.driver.GetNamedBufferParameteri64v(b.handle, ParamBufferSize))
}

func (b *Buffer) IsImmutable() bool {
	return b.driver.GetNamedBufferParameteriv(b.handle, ParamBufferImmutableStorage) != 0
}

func (b *Buffer) StorageFlags() StorageFlags {
	return StorageFlags(b.driver.GetNamedBufferParameteriv(b.handle, ParamBufferStorageFlags))
}

func (b *Buffer) Usage() BufferUsage {
	return BufferUsage(b.driver.GetNamedBufferParameteriv(b.handle, ParamBufferUsage))
}

func (b *Buffer) IsMapped() bool {
	return b.driver.GetNamedBufferParameteriv(b.handle, ParamBufferMapped) != 0
}

func (b *Buffer) MapOffset() int {
	return int(b.driver.GetNamedBufferParameteri64v(b.handle, ParamBufferMapOffset))
}

func (b *Buffer) MapLength() int {
	return int(b.driver.GetNamedBufferParameteri64v(b.handle, ParamBufferMapLength))
}

func (b *Buffer) MapAccess() MapAccess {
	return MapAccess(b.driver.GetNamedBufferParameteriv(b.handle, ParamBufferAccess))
}

// Bytes reinterprets a slice of plain values as its backing bytes without
// copying. T must not contain pointers.
func Bytes[T any](items []T) []byte {
	if len(items) == 0 {
		return nil
	}
	var zero T
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(items))), len(items)*int(unsafe.Sizeof(zero)))
}
