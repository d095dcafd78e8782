package typemanager

import "sync/atomic"

// lazy memoizes a value derived from configuration. Concurrent first use may
// compute the value more than once; all results are equal so the first
// stored one wins. Failed computations are not cached.
type lazy[T any] struct {
	p atomic.Pointer[T]
}

func (l *lazy[T]) get(compute func() (T, error)) (T, error) {
	if v := l.p.Load(); v != nil {
		return *v, nil
	}
	v, err := compute()
	if err != nil {
		return v, err
	}
	if !l.p.CompareAndSwap(nil, &v) {
		return *l.p.Load(), nil
	}
	return v, nil
}

func (l *lazy[T]) reset() {
	l.p.Store(nil)
}
