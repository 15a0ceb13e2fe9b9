package decoder

import "iter"

// Pair is one key/value entry of a decoded map. Both slices alias the input buffer.
type Pair struct {
	Key   []byte
	Value []byte
}

// MapIter iterates the entries of a block-encoded map.
//
// A zero byte where a key would start ends the map even if the current block
// declared more entries; the byte is consumed. When a block is exhausted the next
// block count is read at once, so a caller that pulls exactly SizeHint entries per
// block and a caller that ranges until Next reports false both leave the cursor
// right after the map.
//
// The iterator is owned by its engine and is invalidated by the next NextFieldName,
// SkipValue or Finish call, which drain it first.
type MapIter struct {
	e         *Engine
	remaining int64
	done      bool
	err       error
}

// DecodeMap starts iterating a map value. The pending type must be a map whose
// values are strings or bytes.
func (e *Engine) DecodeMap() (*MapIter, error) {
	if err := e.mapType(); err != nil {
		return nil, err
	}

	n, err := e.readBlockCount()
	if err != nil {
		return nil, err
	}

	it := &e.mapIter
	*it = MapIter{e: e, remaining: n}
	if n == 0 {
		it.finish()
	}
	e.iter = it

	return it, nil
}

// DecodeBlockCount reads one block count of a map value for callers that handle
// block framing themselves, typically around DecodeSequence. A negative count is
// returned as its absolute value. A zero count ends the map value.
func (e *Engine) DecodeBlockCount() (int, error) {
	if err := e.mapType(); err != nil {
		return 0, err
	}

	n, err := e.readBlockCount()
	if err != nil {
		return 0, err
	}
	if n == 0 {
		e.consume()
	}

	return int(n), nil
}

// Next returns the next entry. ok is false once the map is exhausted or a read
// failed; Err tells the two apart.
func (it *MapIter) Next() (key, value []byte, ok bool) {
	if it.done || it.err != nil {
		return nil, nil, false
	}

	c := &it.e.cur

	b, err := c.PeekByte()
	if err != nil {
		it.fail(err)
		return nil, nil, false
	}
	if b == 0 {
		_ = c.Skip(1)
		it.finish()

		return nil, nil, false
	}

	key, value, err = it.e.readPair()
	if err != nil {
		it.fail(err)
		return nil, nil, false
	}

	it.remaining--
	if it.remaining == 0 {
		n, err := it.e.readBlockCount()
		switch {
		case err != nil:
			it.err = err
		case n == 0:
			it.finish()
		default:
			it.remaining = n
		}
	}

	return key, value, true
}

// Err returns the error that stopped the iteration, if any.
func (it *MapIter) Err() error {
	return it.err
}

// SizeHint returns the number of entries the current block still declares. Fewer
// may be yielded when the map ends early.
func (it *MapIter) SizeHint() int {
	return int(it.remaining)
}

// All returns an iterator over the remaining entries. Check Err after ranging.
func (it *MapIter) All() iter.Seq2[[]byte, []byte] {
	return func(yield func([]byte, []byte) bool) {
		for {
			k, v, ok := it.Next()
			if !ok || !yield(k, v) {
				return
			}
		}
	}
}

// Collect gathers the remaining entries in wire order.
func (it *MapIter) Collect() ([]Pair, error) {
	pairs := make([]Pair, 0, pairCapacity(it.remaining, it.e.cur.Len()))
	for {
		k, v, ok := it.Next()
		if !ok {
			break
		}
		pairs = append(pairs, Pair{Key: k, Value: v})
	}

	return pairs, it.err
}

func (it *MapIter) finish() {
	it.done = true
	it.remaining = 0
	it.e.consume()
}

func (it *MapIter) fail(err error) {
	it.err = err
	it.remaining = 0
}

func (it *MapIter) drain() error {
	for {
		if _, _, ok := it.Next(); !ok {
			return it.err
		}
	}
}

func (it *MapIter) exhausted() bool {
	return it.done || it.err != nil
}

// pairCapacity bounds a declared entry count by what the remaining input can hold;
// every entry takes at least two bytes.
func pairCapacity(declared int64, remaining int) int {
	limit := int64(remaining / 2)
	if declared > limit {
		return int(limit)
	}

	return int(declared)
}
