package handler

import (
	"bytes"
	"sync"
)

const (
	// initialBufferSize fits a claimable total or a short entry list
	initialBufferSize = 512
	// maxPooledBufferSize keeps one large entry listing from pinning memory in the pool
	maxPooledBufferSize = 64 << 10
)

// responseBuffers holds encode buffers for respondJSON
var responseBuffers = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, initialBufferSize))
	},
}

func getBuffer() *bytes.Buffer {
	return responseBuffers.Get().(*bytes.Buffer)
}

// putBuffer returns buf to the pool unless it grew past maxPooledBufferSize
func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > maxPooledBufferSize {
		return
	}
	buf.Reset()
	responseBuffers.Put(buf)
}
