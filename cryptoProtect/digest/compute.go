// SPDX-LICENSE-IDENTIFIER: GPL-2.0-ONLY
// (C) 2024 Author: <kisfg@hotmail.com>
package digest

import (
	"context"
	"errors"
	"io"
	"sync"

	"cryptobase/defErr"
)

const ReadChunkSize int = 81920

var chunkPool = sync.Pool{
	New: func() any {
		buf := make([]byte, ReadChunkSize)
		return &buf
	},
}

/*
ComputeHash feeds r into s chunk by chunk and returns the digest.

	ctx is checked between chunks. On any error the stream is reset so it can
	be reused; the partial input is dropped.
*/
func ComputeHash(ctx context.Context, s StreamHash, r io.Reader) ([]byte, error) {
	bufp := chunkPool.Get().(*[]byte)
	defer chunkPool.Put(bufp)
	buf := *bufp

	for {
		if err := ctx.Err(); err != nil {
			return nil, abandon(s, err)
		}
		n, err := r.Read(buf)
		if n > 0 {
			if uerr := s.Update(buf[:n]); uerr != nil {
				return nil, uerr
			}
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, abandon(s, err)
		}
	}

	res := make([]byte, s.Size())
	if err := s.GetHash(res); err != nil {
		return nil, err
	}
	return res, nil
}

func abandon(s StreamHash, cause error) error {
	if err := s.Reset(); err != nil {
		return defErr.PushErrorToErrChain(cause, err)
	}
	return cause
}
