package byteorder

import "github.com/joshuapare/bytekit/internal/platform"

// HostToNetwork converts v from host byte order to network (big-endian)
// order. On big-endian targets it is the identity. The branch condition is
// a compile-time constant, so only one side is ever compiled in.
func HostToNetwork[T Integer](v T) T {
	if platform.LittleEndian {
		return ReverseBytes(v)
	}
	return v
}

// NetworkToHost converts v from network (big-endian) order to host byte
// order. It is the same involution as HostToNetwork.
func NetworkToHost[T Integer](v T) T {
	return HostToNetwork(v)
}
