// Package record implements parallel processing of record streams, where a
// record is anything a bufio.SplitFunc can delineate: a JSON line, a binary
// MARC record, or a MODS element cut out of a modsCollection.
package record

import (
	"bufio"
	"context"
	"io"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
)

const (
	initialBufferSize   = 1 << 20 // 1MB
	defaultMaxTokenSize = 1 << 26 // 64MB
)

// ProcessFunc transforms one record into output bytes. A nil result with a
// nil error skips the record.
type ProcessFunc func([]byte) ([]byte, error)

// Option configures a Processor.
type Option func(*Processor)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) Option {
	return func(p *Processor) {
		if n > 0 {
			p.workers = n
		}
	}
}

// WithSplit sets the split function. The default splits on lines.
func WithSplit(f bufio.SplitFunc) Option {
	return func(p *Processor) {
		p.split = f
	}
}

// WithMaxTokenSize sets the size limit for a single record.
func WithMaxTokenSize(size int) Option {
	return func(p *Processor) {
		if size > 0 {
			p.maxTokenSize = size
		}
	}
}

// Processor fans records out to workers and funnels their results through a
// single writer goroutine. Output order is not the input order.
type Processor struct {
	split        bufio.SplitFunc
	process      ProcessFunc
	workers      int
	maxTokenSize int
}

// NewProcessor returns a line-splitting processor with one worker per CPU.
func NewProcessor(process ProcessFunc, opts ...Option) *Processor {
	p := &Processor{
		split:        bufio.ScanLines,
		process:      process,
		workers:      runtime.NumCPU(),
		maxTokenSize: defaultMaxTokenSize,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Process reads records from r, processes them in parallel, and writes the
// results to w. The first error from any stage cancels the run.
func (p *Processor) Process(ctx context.Context, r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	scanner.Split(p.split)
	scanner.Buffer(make([]byte, 0, initialBufferSize), p.maxTokenSize)

	var (
		work    = make(chan []byte, p.workers)
		results = make(chan []byte, p.workers)
		wg      sync.WaitGroup
	)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(work)
		for scanner.Scan() {
			data := append([]byte(nil), scanner.Bytes()...)
			select {
			case work <- data:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return scanner.Err()
	})
	for i := 0; i < p.workers; i++ {
		wg.Add(1)
		g.Go(func() error {
			defer wg.Done()
			for data := range work {
				result, err := p.process(data)
				if err != nil {
					return err
				}
				if result == nil {
					continue
				}
				select {
				case results <- result:
				case <-ctx.Done():
					return ctx.Err()
				}
			}
			return nil
		})
	}
	go func() {
		wg.Wait()
		close(results)
	}()
	g.Go(func() error {
		bw := bufio.NewWriter(w)
		for result := range results {
			if _, err := bw.Write(result); err != nil {
				return err
			}
		}
		return bw.Flush()
	})
	return g.Wait()
}
