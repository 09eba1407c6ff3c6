package crypto

import (
	"runtime"
	"sync/atomic"
	"unsafe"
)

// secureEraseNoop keeps the compiler from proving the cleared buffer dead.
var secureEraseNoop atomic.Uint64

// SecureErase overwrites the contents of a byte slice with zeros.
//
// Remnants of the data may still survive in registers, caches or swap.
func SecureErase(b []byte) {
	if len(b) == 0 {
		return
	}

	p := unsafe.Pointer(&b[0])
	for i := 0; i < len(b); i++ {
		*(*byte)(unsafe.Add(p, i)) = 0
	}
	runtime.KeepAlive(b)

	var sum uint64
	for _, v := range b {
		sum += uint64(v)
	}
	secureEraseNoop.Add(sum)
}
