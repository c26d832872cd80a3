package fleet

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

// The snapshot format is a binary, versioned encoding of a whole fleet.
//
//	magic    "FLTS"
//	version  uint16
//	currency string
//	count    uint32
//	count records, each one a uint32 byte length followed by:
//	    kind byte, name string, year varint, make string,
//	    lengthFeet varint, pricePaid decimal, expenses decimal
//
// Fixed size integers are big endian, varints are zig-zag encoded, strings
// are a uvarint length followed by UTF-8 bytes, and decimals are encoded as
// their canonical text representation in a string.
//
// A snapshot is all or nothing, any error discards the whole snapshot.
const (
	snapshotMagic   = "FLTS"
	snapshotVersion = uint16(1)
)

// EncodeSnapshot writes the fleet to 'w' in the snapshot format.
func EncodeSnapshot(w io.Writer, f *Fleet) error {
	b := []byte(snapshotMagic)
	b = binary.BigEndian.AppendUint16(b, snapshotVersion)
	b = appendString(b, f.currency)
	b = binary.BigEndian.AppendUint32(b, uint32(len(f.boats)))
	for _, boat := range f.boats {
		rec := encodeBoat(boat)
		b = binary.BigEndian.AppendUint32(b, uint32(len(rec)))
		b = append(b, rec...)
	}
	if _, err := w.Write(b); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	return nil
}

func encodeBoat(b *Boat) []byte {
	rec := []byte{byte(b.Kind)}
	rec = appendString(rec, b.Name)
	rec = binary.AppendVarint(rec, int64(b.Year))
	rec = appendString(rec, b.Make)
	rec = binary.AppendVarint(rec, int64(b.LengthFeet))
	rec = appendString(rec, b.PricePaid.value.String())
	rec = appendString(rec, b.Expenses.value.String())
	return rec
}

func appendString(b []byte, s string) []byte {
	b = binary.AppendUvarint(b, uint64(len(s)))
	return append(b, s...)
}

// DecodeSnapshot reads a fleet from 'r' in the snapshot format.
// Every decoding failure matches ErrSnapshotCorrupt.
func DecodeSnapshot(r io.Reader) (*Fleet, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSnapshotCorrupt, err)
	}
	sr := &snapshotReader{buf: data}

	if magic := sr.take(len(snapshotMagic)); sr.err == nil && string(magic) != snapshotMagic {
		sr.fail("bad magic %q", magic)
	}
	if version := sr.uint16(); sr.err == nil && version != snapshotVersion {
		sr.fail("unsupported version %d", version)
	}
	currency := sr.string()
	if sr.err == nil && !IsKnownCurrency(currency) {
		sr.fail("unknown currency %q", currency)
	}
	count := sr.uint32()
	if sr.err != nil {
		return nil, sr.err
	}

	f := New(currency)
	for i := 1; i <= int(count); i++ {
		size := sr.uint32()
		rec := &snapshotReader{buf: sr.take(int(size))}
		if sr.err != nil {
			return nil, fmt.Errorf("record %d: %w", i, sr.err)
		}
		b := decodeBoat(rec, currency)
		if rec.err == nil && len(rec.buf) > 0 {
			rec.fail("%d unexpected bytes", len(rec.buf))
		}
		if rec.err != nil {
			return nil, fmt.Errorf("record %d: %w", i, rec.err)
		}
		if err := b.Validate(); err != nil {
			return nil, fmt.Errorf("%w: record %d: %w", ErrSnapshotCorrupt, i, err)
		}
		f.Append(b)
	}
	if len(sr.buf) > 0 {
		return nil, fmt.Errorf("%w: %d unexpected trailing bytes", ErrSnapshotCorrupt, len(sr.buf))
	}
	return f, nil
}

func decodeBoat(r *snapshotReader, currency string) *Boat {
	b := &Boat{}
	if k := r.take(1); k != nil {
		b.Kind = Kind(k[0])
	}
	b.Name = r.string()
	b.Year = int(r.varint())
	b.Make = r.string()
	b.LengthFeet = int(r.varint())
	b.PricePaid = Money{value: r.decimal("pricePaid"), cur: currency}
	b.Expenses = Money{value: r.decimal("expenses"), cur: currency}
	return b
}

// snapshotReader consumes a snapshot buffer. The first error sticks and
// turns every subsequent read into a no-op.
type snapshotReader struct {
	buf []byte
	err error
}

func (r *snapshotReader) fail(format string, args ...any) {
	if r.err == nil {
		r.err = fmt.Errorf("%w: "+format, append([]any{ErrSnapshotCorrupt}, args...)...)
	}
}

func (r *snapshotReader) take(n int) []byte {
	if r.err != nil {
		return nil
	}
	if n < 0 || n > len(r.buf) {
		r.fail("unexpected end of data")
		return nil
	}
	p := r.buf[:n:n]
	r.buf = r.buf[n:]
	return p
}

func (r *snapshotReader) uint16() uint16 {
	p := r.take(2)
	if p == nil {
		return 0
	}
	return binary.BigEndian.Uint16(p)
}

func (r *snapshotReader) uint32() uint32 {
	p := r.take(4)
	if p == nil {
		return 0
	}
	return binary.BigEndian.Uint32(p)
}

func (r *snapshotReader) varint() int64 {
	if r.err != nil {
		return 0
	}
	v, n := binary.Varint(r.buf)
	if n <= 0 {
		r.fail("invalid varint")
		return 0
	}
	r.buf = r.buf[n:]
	return v
}

func (r *snapshotReader) uvarint() uint64 {
	if r.err != nil {
		return 0
	}
	v, n := binary.Uvarint(r.buf)
	if n <= 0 {
		r.fail("invalid uvarint")
		return 0
	}
	r.buf = r.buf[n:]
	return v
}

func (r *snapshotReader) string() string {
	n := r.uvarint()
	if r.err != nil {
		return ""
	}
	if n > uint64(len(r.buf)) {
		r.fail("string length %d overflows data", n)
		return ""
	}
	return string(r.take(int(n)))
}

func (r *snapshotReader) decimal(field string) decimal.Decimal {
	s := r.string()
	if r.err != nil {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err == nil {
		err = checkAmount(d)
	}
	if err != nil {
		r.fail("%s: %v", field, err)
		return decimal.Zero
	}
	return d
}
