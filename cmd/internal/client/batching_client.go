package client

import (
	"context"
	"errors"
	"github.com/OctopusSolutionsEngineering/ServiceFabricQuery/cmd/internal/model/servicefabric"
)

// PageFetcher returns the page identified by the continuation token. An empty token is the first page.
type PageFetcher[T any] func(ctx context.Context, continuationToken string) (servicefabric.PagedList[T], error)

type ResultError[T any] struct {
	Res T
	Err error
}

// Pager walks a paged query by following continuation tokens.
type Pager[T any] struct {
	Fetch PageFetcher[T]
}

func NewPager[T any](fetch PageFetcher[T]) *Pager[T] {
	return &Pager[T]{Fetch: fetch}
}

// GetAllItemsBatch retrieves every item of a paged query one page at a time, sending each item on the
// returned channel. Closing done stops the goroutine. A failed page is sent as a single error result
// and ends the stream.
func (p *Pager[T]) GetAllItemsBatch(ctx context.Context, done <-chan struct{}) <-chan ResultError[T] {
	chnl := make(chan ResultError[T])

	go func() {
		defer func() {
			close(chnl)
		}()

		token := ""
		seen := map[string]bool{}

		for {
			page, err := p.Fetch(ctx, token)

			if err != nil {
				select {
				case <-done:
				case chnl <- ResultError[T]{Res: *new(T), Err: err}:
				}
				return
			}

			for _, item := range page.Items {
				// https://go.dev/blog/pipelines#explicit-cancellation
				select {
				case <-done:
					// Any signal on the done channel means we should stop processing
					return
				case chnl <- ResultError[T]{Res: item, Err: nil}:
				}
			}

			if !page.HasMore() {
				return
			}

			// a repeated token means the query is not advancing
			if seen[page.ContinuationToken] {
				select {
				case <-done:
				case chnl <- ResultError[T]{Res: *new(T), Err: errors.New("continuation token " + page.ContinuationToken + " was returned twice")}:
				}
				return
			}

			seen[page.ContinuationToken] = true
			token = page.ContinuationToken
		}
	}()

	return chnl
}

// CollectAll reads every page into a single slice.
func CollectAll[T any](ctx context.Context, fetch PageFetcher[T]) ([]T, error) {
	done := make(chan struct{})
	defer close(done)

	items := []T{}
	for result := range NewPager(fetch).GetAllItemsBatch(ctx, done) {
		if result.Err != nil {
			return nil, result.Err
		}

		items = append(items, result.Res)
	}

	return items, nil
}
