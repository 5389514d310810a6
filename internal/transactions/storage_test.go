package transactions

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage_SetRejectsEmptyID(t *testing.T) {
	l := NewLocalStorage()
	err := l.Set(context.Background(), &Transaction{SessionID: "s"})
	assert.ErrorIs(t, err, ErrEmptyID)
}

func TestLocalStorage_SetRejectsDuplicateID(t *testing.T) {
	l := NewLocalStorage()
	ctx := context.Background()
	require.NoError(t, l.Set(ctx, &Transaction{ID: "1", SessionID: "s"}))
	assert.Error(t, l.Set(ctx, &Transaction{ID: "1", SessionID: "s"}))
}

func TestLocalStorage_ReadIsSessionScoped(t *testing.T) {
	l := NewLocalStorage()
	ctx := context.Background()
	require.NoError(t, l.Set(ctx, &Transaction{ID: "1", SessionID: "a", Amount: 1}))

	got, err := l.Read(ctx, "a", "1")
	require.NoError(t, err)
	assert.Equal(t, "1", got.ID)

	_, err = l.Read(ctx, "b", "1")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = l.Read(ctx, "a", "2")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLocalStorage_ReturnsCopies(t *testing.T) {
	l := NewLocalStorage()
	ctx := context.Background()
	in := &Transaction{ID: "1", SessionID: "a", Title: "original"}
	require.NoError(t, l.Set(ctx, in))
	in.Title = "mutated"

	got, err := l.Read(ctx, "a", "1")
	require.NoError(t, err)
	assert.Equal(t, "original", got.Title)
}

func TestLocalStorage_SumUsesExactArithmetic(t *testing.T) {
	l := NewLocalStorage()
	ctx := context.Background()
	for i := 0; i < 10; i++ {
		require.NoError(t, l.Set(ctx, &Transaction{ID: fmt.Sprint(i), SessionID: "s", Amount: 0.1}))
	}

	total, err := l.Sum(ctx, "s")
	require.NoError(t, err)
	assert.Equal(t, 1.0, total)
}

func TestLocalStorage_ConcurrentSet(t *testing.T) {
	l := NewLocalStorage()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = l.Set(ctx, &Transaction{ID: fmt.Sprint(i), SessionID: "s", Amount: 1})
		}(i)
	}
	wg.Wait()

	all, err := l.GetAll(ctx, "s")
	require.NoError(t, err)
	assert.Len(t, all, 50)
}
