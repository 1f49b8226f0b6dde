package store

// MemBatch records writes and applies them in order on Write. A failing
// write leaves the earlier ones applied, so it can only serve stores
// without persistence, like a Cache or the iavl working tree.
type MemBatch struct {
	out SetDeleter
	ops []func(SetDeleter) error
}

var _ Batch = (*MemBatch)(nil)

func NewMemBatch(out SetDeleter) *MemBatch {
	return &MemBatch{out: out}
}

func (b *MemBatch) Set(key, value []byte) error {
	b.ops = append(b.ops, func(db SetDeleter) error { return db.Set(key, value) })
	return nil
}

func (b *MemBatch) Delete(key []byte) error {
	b.ops = append(b.ops, func(db SetDeleter) error { return db.Delete(key) })
	return nil
}

// Write applies the recorded writes and clears the batch.
func (b *MemBatch) Write() error {
	ops := b.ops
	b.ops = nil
	for _, op := range ops {
		if err := op(b.out); err != nil {
			return err
		}
	}
	return nil
}

// Len returns the number of writes waiting.
func (b *MemBatch) Len() int {
	return len(b.ops)
}
