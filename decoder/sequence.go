package decoder

import "iter"

// SeqIter yields the entries of a map position as a flat sequence of pairs for
// targets that store a list rather than an associative container.
type SeqIter struct {
	e         *Engine
	remaining int64
	framed    bool
	done      bool
	err       error
}

// DecodeSequence starts a sequence over the pending map value.
//
// With n >= 0 exactly n entries are read and no framing is checked; the caller
// supplies n from an earlier DecodeBlockCount and reads the following counts itself.
// With n < 0 one block count is read from the input and up to that many entries are
// yielded, stopping early at a zero sentinel byte, which is consumed and ends the
// map. Blocks after the first and the terminator are left to DecodeBlockCount.
func (e *Engine) DecodeSequence(n int) (*SeqIter, error) {
	if err := e.mapType(); err != nil {
		return nil, err
	}

	it := &e.seqIter
	*it = SeqIter{e: e, remaining: int64(n)}

	if n < 0 {
		count, err := e.readBlockCount()
		if err != nil {
			return nil, err
		}
		it.remaining = count
		it.framed = true
		if count == 0 {
			e.consume()
		}
	}
	if it.remaining == 0 {
		it.done = true
	}
	e.iter = it

	return it, nil
}

// Next returns the next entry. ok is false once the sequence is exhausted or a read
// failed; Err tells the two apart.
func (it *SeqIter) Next() (key, value []byte, ok bool) {
	if it.done || it.err != nil {
		return nil, nil, false
	}

	if it.framed {
		b, err := it.e.cur.PeekByte()
		if err != nil {
			it.err = err
			return nil, nil, false
		}
		if b == 0 {
			_ = it.e.cur.Skip(1)
			it.done = true
			it.remaining = 0
			it.e.consume()

			return nil, nil, false
		}
	}

	key, value, err := it.e.readPair()
	if err != nil {
		it.err = err
		return nil, nil, false
	}

	it.remaining--
	if it.remaining == 0 {
		it.done = true
	}

	return key, value, true
}

// Err returns the error that stopped the sequence, if any.
func (it *SeqIter) Err() error {
	return it.err
}

// SizeHint returns the number of entries still expected.
func (it *SeqIter) SizeHint() int {
	return int(it.remaining)
}

// All returns an iterator over the remaining entries. Check Err after ranging.
func (it *SeqIter) All() iter.Seq2[[]byte, []byte] {
	return func(yield func([]byte, []byte) bool) {
		for {
			k, v, ok := it.Next()
			if !ok || !yield(k, v) {
				return
			}
		}
	}
}

// Collect gathers the remaining entries in order.
func (it *SeqIter) Collect() ([]Pair, error) {
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

func (it *SeqIter) drain() error {
	for {
		if _, _, ok := it.Next(); !ok {
			return it.err
		}
	}
}

func (it *SeqIter) exhausted() bool {
	return it.done || it.err != nil
}
