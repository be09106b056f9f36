package memory

import "context"

// TxManager serializes transactions on the store mutex and restores the
// previous contents when fn fails.
type TxManager struct {
	store *Store
}

func NewTxManager(store *Store) TxManager {
	return TxManager{store: store}
}

func (t TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if held, _ := ctx.Value(lockedKey).(bool); held {
		return fn(ctx)
	}
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	restore := t.store.snapshot()
	if err := fn(withLock(ctx)); err != nil {
		restore()
		return err
	}
	return nil
}
