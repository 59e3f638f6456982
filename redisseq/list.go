// Package redisseq exposes a Redis list as a lazy, restartable sequence.
// Elements are fetched page by page with LRANGE only as they are pulled.
package redisseq

import (
	"context"
	"fmt"

	backend "github.com/redis/go-redis/v9"

	"github.com/charmingruby/lazyseq/result"
	"github.com/charmingruby/lazyseq/seq"
)

const defaultPageSize = 100

// List reads and appends to one Redis list.
type List struct {
	client   backend.Cmdable
	key      string
	pageSize int64
}

// Option configures a List.
type Option func(*List)

// WithPageSize sets how many elements each LRANGE fetches.
func WithPageSize(n int) Option {
	return func(l *List) {
		if n > 0 {
			l.pageSize = int64(n)
		}
	}
}

// New creates a List over key.
func New(client backend.Cmdable, key string, opts ...Option) *List {
	l := &List{
		client:   client,
		key:      key,
		pageSize: defaultPageSize,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Sequence returns the list elements in order. Every terminal call reads
// the list again from index 0. A failed read yields a single error Result
// and ends the sequence; use seq.CollectResults to stop on it.
func (l *List) Sequence(ctx context.Context) seq.Sequence[result.Result[string]] {
	return seq.Defer(func() seq.Sequence[result.Result[string]] {
		p := &pager{list: l, ctx: ctx}
		return seq.FromFunc(p.next)
	})
}

// Append drains s and pushes its elements to the end of the list, one
// RPUSH per page. It returns how many elements were written.
func (l *List) Append(ctx context.Context, s seq.Sequence[string]) (int, error) {
	written := 0
	err := seq.TryForEach(seq.Chunk(s, int(l.pageSize)), func(page []string) error {
		values := make([]any, len(page))
		for i, v := range page {
			values[i] = v
		}
		if err := l.client.RPush(ctx, l.key, values...).Err(); err != nil {
			return fmt.Errorf("redisseq: rpush %s: %w", l.key, err)
		}
		written += len(page)
		return nil
	})
	return written, err
}

type pager struct {
	list  *List
	ctx   context.Context
	page  []string
	idx   int
	start int64
	last  bool
	done  bool
}

func (p *pager) next() (result.Result[string], bool) {
	if p.idx < len(p.page) {
		v := p.page[p.idx]
		p.idx++
		return result.Ok(v), true
	}
	if p.done || p.last {
		return result.Result[string]{}, false
	}
	stop := p.start + p.list.pageSize - 1
	page, err := p.list.client.LRange(p.ctx, p.list.key, p.start, stop).Result()
	if err != nil {
		p.done = true
		return result.Err[string](fmt.Errorf("redisseq: lrange %s [%d,%d]: %w", p.list.key, p.start, stop, err)), true
	}
	if len(page) == 0 {
		p.done = true
		return result.Result[string]{}, false
	}
	p.page, p.idx = page, 1
	p.start += int64(len(page))
	p.last = int64(len(page)) < p.list.pageSize
	return result.Ok(page[0]), true
}
