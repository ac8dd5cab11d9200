// Copyright 2026 The jsondoc Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/jsondoc/jsondoc/document"
)

// jsonWriter serializes a document tree to compact JSON through the
// visitor interface. Raw string cells are emitted verbatim; everything
// else goes through standard escaping.
type jsonWriter struct {
	pool *document.Pool
	buf  bytes.Buffer
}

func newJSONWriter(pool *document.Pool) *jsonWriter {
	return &jsonWriter{pool: pool}
}

func (w *jsonWriter) String() string {
	return w.buf.String()
}

func (w *jsonWriter) VisitNull() error {
	w.buf.WriteString("null")
	return nil
}

func (w *jsonWriter) VisitBoolean(value bool) error {
	w.buf.WriteString(strconv.FormatBool(value))
	return nil
}

func (w *jsonWriter) VisitSignedInteger(value int64) error {
	w.buf.WriteString(strconv.FormatInt(value, 10))
	return nil
}

func (w *jsonWriter) VisitUnsignedInteger(value uint64) error {
	w.buf.WriteString(strconv.FormatUint(value, 10))
	return nil
}

func (w *jsonWriter) VisitFloat(value float64) error {
	w.buf.WriteString(strconv.FormatFloat(value, 'g', -1, 64))
	return nil
}

func (w *jsonWriter) VisitString(value string) error {
	bs, err := json.Marshal(value)
	if err != nil {
		return err
	}
	w.buf.Write(bs)
	return nil
}

func (w *jsonWriter) VisitRawString(value string) error {
	w.buf.WriteString(value)
	return nil
}

func (w *jsonWriter) VisitArray(arr *document.CollectionData) error {
	w.buf.WriteByte('[')
	first := true
	for id := arr.Head(); id != document.NilSlot; {
		s := w.pool.Slot(id)
		if !first {
			w.buf.WriteByte(',')
		}
		first = false
		if err := document.Accept(w.pool, s.Data(), w); err != nil {
			return err
		}
		id = s.Next()
	}
	w.buf.WriteByte(']')
	return nil
}

func (w *jsonWriter) VisitObject(obj *document.CollectionData) error {
	w.buf.WriteByte('{')
	first := true
	for id := obj.Head(); id != document.NilSlot; {
		s := w.pool.Slot(id)
		if !first {
			w.buf.WriteByte(',')
		}
		first = false
		if err := w.VisitString(s.Key(w.pool)); err != nil {
			return err
		}
		w.buf.WriteByte(':')
		if err := document.Accept(w.pool, s.Data(), w); err != nil {
			return err
		}
		id = s.Next()
	}
	w.buf.WriteByte('}')
	return nil
}
