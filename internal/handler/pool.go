package handler

import (
	"bytes"
	"sync"
)

// initialBufferSize fits a typical outcome set without growing
const initialBufferSize = 4096

// bufferPool recycles JSON encoding buffers across responses
var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, initialBufferSize))
	},
}

func getBuffer() *bytes.Buffer {
	return bufferPool.Get().(*bytes.Buffer)
}

// putBuffer resets buf and returns it to the pool. Oversized buffers from
// large batch reports are dropped so the pool doesn't pin them.
func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*initialBufferSize {
		return
	}
	buf.Reset()
	bufferPool.Put(buf)
}
