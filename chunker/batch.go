package chunker

import (
	"context"
	"sync"

	"go.uber.org/atomic"

	"github.com/bububa/chunklet/types"
)

// chunkBatch runs fn over each text independently. Results preserve input
// order; per-text results are identical to sequential runs since no state is
// shared between texts.
func chunkBatch(
	ctx context.Context,
	texts []string,
	concurrency int,
	progress func(done, total int),
	fn func(context.Context, string) ([]types.Chunk, error),
) ([][]types.Chunk, error) {
	total := len(texts)
	if total == 0 {
		return nil, nil
	}
	results := make([][]types.Chunk, total)
	done := atomic.NewInt64(0)
	report := func() {
		if progress != nil {
			progress(int(done.Inc()), total)
		} else {
			done.Inc()
		}
	}
	if concurrency < 2 || total < 2 {
		for i, text := range texts {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			chunks, err := fn(ctx, text)
			if err != nil {
				return nil, err
			}
			results[i] = chunks
			report()
		}
		return results, nil
	}
	if concurrency > total {
		concurrency = total
	}
	var (
		wg       sync.WaitGroup
		errOnce  sync.Once
		firstErr error
	)
	jobs := make(chan int, total)
	for i := range texts {
		jobs <- i
	}
	close(jobs)
	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				if ctx.Err() != nil {
					return
				}
				chunks, err := fn(ctx, texts[i])
				if err != nil {
					errOnce.Do(func() { firstErr = err })
					return
				}
				results[i] = chunks
				report()
			}
		}()
	}
	wg.Wait()
	if firstErr != nil {
		return nil, firstErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
