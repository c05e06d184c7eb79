package bitvec

import (
	"context"
	"fmt"
	"testing"

	"github.com/hupe1980/bitvec/testutil"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestConcurrentReaders(t *testing.T) {
	rng := testutil.NewRNG(11)
	pattern := rng.Runs(MaxSize-1, 40)
	ref := testutil.Reference(pattern)

	v, err := New(len(pattern))
	require.NoError(t, err)
	for i, b := range pattern {
		if b {
			require.NoError(t, v.Set(i))
		}
	}

	g, _ := errgroup.WithContext(context.Background())
	for w := range 8 {
		g.Go(func() error {
			for i := w; i < v.Len(); i += 8 {
				set, err := v.IsIndexSet(i)
				if err != nil {
					return err
				}
				if set != ref.Get(i) {
					return fmt.Errorf("position %d: got %v", i, set)
				}
				n, err := v.LongestSetSequenceStartingAt(i)
				if err != nil {
					return err
				}
				if n != ref.LongestRun(i) {
					return fmt.Errorf("run at %d: got %d", i, n)
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
	require.Equal(t, ref.Count(), v.Count())
}
