package client

import (
	"context"
	"errors"
	"github.com/OctopusSolutionsEngineering/ServiceFabricQuery/cmd/internal/model/servicefabric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"strconv"
	"testing"
)

// countingFetcher serves pages of two items until the requested number of pages is reached.
func countingFetcher(pages int, requested *[]string) PageFetcher[int] {
	return func(ctx context.Context, continuationToken string) (servicefabric.PagedList[int], error) {
		*requested = append(*requested, continuationToken)

		page := 0
		if continuationToken != "" {
			page, _ = strconv.Atoi(continuationToken)
		}

		next := ""
		if page+1 < pages {
			next = strconv.Itoa(page + 1)
		}

		return servicefabric.PagedList[int]{
			ContinuationToken: next,
			Items:             []int{page * 2, page*2 + 1},
		}, nil
	}
}

func TestCollectAllReadsEveryPage(t *testing.T) {
	requested := []string{}
	items, err := CollectAll(context.Background(), countingFetcher(3, &requested))

	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, items)
	assert.Equal(t, []string{"", "1", "2"}, requested)
}

func TestCollectAllReturnsFetchErrors(t *testing.T) {
	fetchErr := errors.New("boom")
	_, err := CollectAll(context.Background(), func(ctx context.Context, continuationToken string) (servicefabric.PagedList[int], error) {
		return servicefabric.PagedList[int]{}, fetchErr
	})

	assert.ErrorIs(t, err, fetchErr)
}

func TestGetAllItemsBatchStopsOnDone(t *testing.T) {
	requested := []string{}
	done := make(chan struct{})
	results := NewPager(countingFetcher(100, &requested)).GetAllItemsBatch(context.Background(), done)

	first := <-results
	require.NoError(t, first.Err)
	assert.Equal(t, 0, first.Res)

	close(done)

	// drain until the producer notices the done channel and closes the results
	for range results {
	}

	assert.Less(t, len(requested), 100)
}

func TestRepeatedContinuationTokenIsAnError(t *testing.T) {
	_, err := CollectAll(context.Background(), func(ctx context.Context, continuationToken string) (servicefabric.PagedList[int], error) {
		return servicefabric.PagedList[int]{ContinuationToken: "same", Items: []int{1}}, nil
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "same")
}
