package registry

import (
	"errors"
	"sync"
	"testing"

	"edu_crm/internal/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	r := NewRegistry[int]()

	isNew, err := r.Register("forms", 1)
	require.NoError(t, err)
	assert.True(t, isNew)

	isNew, err = r.Register("forms", 2)
	require.NoError(t, err)
	assert.False(t, isNew)

	_, err = r.Register("", 3)
	assert.ErrorIs(t, err, common.ErrRequiredField)

	v, err := r.MustGet("forms")
	require.NoError(t, err)
	assert.Equal(t, 2, v)

	_, err = r.MustGet("teams")
	assert.ErrorIs(t, err, common.ErrNotFound)

	_, _ = r.Register("blogs", 4)
	assert.Equal(t, []string{"blogs", "forms"}, r.Names())

	deleted, err := r.Clear("blogs", func(int) error { return errors.New("close failed") })
	assert.Error(t, err)
	assert.False(t, deleted)

	deleted, err = r.Clear("blogs", nil)
	require.NoError(t, err)
	assert.True(t, deleted)
}

func TestRegistryConcurrentAccess(t *testing.T) {
	r := NewRegistry[int]()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _ = r.Register("k", i)
			_, _ = r.Get("k")
		}(i)
	}
	wg.Wait()
	_, ok := r.Get("k")
	assert.True(t, ok)
}
