package mdc

import (
	"bytes"
	"runtime"
	"strconv"
)

// goroutineID extracts the numeric goroutine id from the first line of a
// runtime.Stack dump ("goroutine 123 [running]:"). The runtime exposes no
// public API for this; the header format has been stable since Go 1.4.
func goroutineID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	s := bytes.TrimPrefix(buf[:n], []byte("goroutine "))
	if i := bytes.IndexByte(s, ' '); i >= 0 {
		s = s[:i]
	}
	id, err := strconv.ParseUint(string(s), 10, 64)
	if err != nil {
		return 0
	}
	return id
}
