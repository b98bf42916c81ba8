package skyeng

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedPages serves n pages of one item each, all reporting lastPage.
func scriptedPages(n, lastPage int, requested *[]int) pageFetcher[int] {
	return func(_ context.Context, number int) (page[int], error) {
		*requested = append(*requested, number)
		p := page[int]{Meta: pageMeta{LastPage: lastPage}}
		if number <= n {
			p.Data = []int{number * 10}
		}
		return p, nil
	}
}

func TestWalkPages_RequestsExactlyLastPage(t *testing.T) {
	for k := 1; k <= 5; k++ {
		t.Run(fmt.Sprintf("k=%d", k), func(t *testing.T) {
			var requested []int

			items, err := walkPages(context.Background(), scriptedPages(k, k, &requested))

			require.NoError(t, err)
			assert.Len(t, requested, k)
			assert.Equal(t, k, requested[len(requested)-1])
			assert.Len(t, items, k)
			assert.Equal(t, 10, items[0])
		})
	}
}

func TestWalkPages_LastPageBelowOne(t *testing.T) {
	for _, last := range []int{0, -3} {
		var requested []int

		items, err := walkPages(context.Background(), scriptedPages(1, last, &requested))

		require.NoError(t, err)
		assert.Equal(t, []int{1}, requested)
		assert.Equal(t, []int{10}, items)
	}
}

func TestWalkPages_LastPageReadOnce(t *testing.T) {
	var requested []int
	fetch := func(_ context.Context, number int) (page[int], error) {
		requested = append(requested, number)
		// Later pages claim more pages exist; only page 1 counts.
		return page[int]{Meta: pageMeta{LastPage: 2 + number*10}, Data: []int{number}}, nil
	}

	items, err := walkPages(context.Background(), fetch)

	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}, requested)
	assert.Len(t, items, 12)
}

func TestWalkPages_StopsOnError(t *testing.T) {
	boom := errors.New("boom")
	var requested []int
	fetch := func(_ context.Context, number int) (page[int], error) {
		requested = append(requested, number)
		if number == 2 {
			return page[int]{}, boom
		}
		return page[int]{Meta: pageMeta{LastPage: 4}, Data: []int{number}}, nil
	}

	items, err := walkPages(context.Background(), fetch)

	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "fetch page 2")
	assert.Nil(t, items)
	assert.Equal(t, []int{1, 2}, requested)
}

func TestWalkPages_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var requested []int

	_, err := walkPages(ctx, scriptedPages(3, 3, &requested))

	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, requested)
}
