package opengl

// Handle is a driver-assigned name for a GPU resource.
type Handle uint32

// InvalidHandle is never issued by the driver. Moved-from and destroyed
// wrappers hold it.
const InvalidHandle Handle = 0

// InvalidLocation is returned by attribute and uniform lookups when the
// linked program has no active input with the requested name.
const InvalidLocation int32 = -1

// Bindable is the capability handed to the context facade and to vertex
// arrays. It exposes the native handle for binding and nothing else.
type Bindable interface {
	Handle() Handle
}

func handleOf(b Bindable) Handle {
	if b == nil {
		return InvalidHandle
	}
	return b.Handle()
}

// noCopy may be embedded into structs which must not be copied after first
// use. go vet's copylocks check reports copies of it.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
