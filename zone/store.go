package zone

import (
	"fmt"
	"log/slog"
	"os"
	"reflect"
	"sync"
	"sync/atomic"

	"github.com/vmihailenco/msgpack/v5"
)

// Record is what a provider supplies for a zone name: either a static
// offset, or a packed DST zone when DST is set.
type Record struct {
	Std  Offset
	DST  bool
	Zone DstZone
}

// Record wire format, little-endian style flat bytes:
//
//	+-----+-----+------------------+
//	| std | dst | zone (4 b, LE)   |
//	+-----+-----+------------------+
const recordSize = 6

// Zone record external type id in the msgpack stream.
const recordExtID = 1

var _ msgpack.Marshaler = Record{}
var _ msgpack.Unmarshaler = (*Record)(nil)

func init() {
	msgpack.RegisterExt(recordExtID, (*Record)(nil))
	// RegisterExt binds the encoder to *Record, which rejects
	// nonaddressable Record values such as map entries. Rebind it to the
	// value type, which carries MarshalMsgpack itself.
	msgpack.RegisterExtEncoder(recordExtID, Record{}, func(_ *msgpack.Encoder, v reflect.Value) ([]byte, error) {
		return v.Interface().(msgpack.Marshaler).MarshalMsgpack()
	})
}

// MarshalMsgpack implements a custom msgpack marshaler.
func (r Record) MarshalMsgpack() ([]byte, error) {
	buf := make([]byte, recordSize)
	buf[0] = r.Std.Byte()
	if r.DST {
		buf[1] = 1
	}
	v := r.Zone.Uint32()
	buf[2] = byte(v)
	buf[3] = byte(v >> 8)
	buf[4] = byte(v >> 16)
	buf[5] = byte(v >> 24)
	return buf, nil
}

// UnmarshalMsgpack implements a custom msgpack unmarshaler.
func (r *Record) UnmarshalMsgpack(b []byte) error {
	if len(b) != recordSize {
		return fmt.Errorf("invalid zone record length: got %d, wanted %d", len(b), recordSize)
	}
	r.Std = OffsetFromByte(b[0])
	r.DST = b[1] != 0
	r.Zone = DstZoneFromUint32(uint32(b[2]) | uint32(b[3])<<8 | uint32(b[4])<<16 | uint32(b[5])<<24)
	return nil
}

// Provider supplies zone records by name. Acquisition (files, network,
// OS databases) is the provider's concern; the core only consumes the
// lookup.
type Provider interface {
	Zone(name string) (Record, bool)
}

// MemStore is an in-memory provider.
type MemStore map[string]Record

// Zone implements Provider.
func (s MemStore) Zone(name string) (Record, bool) {
	rec, ok := s[name]
	return rec, ok
}

// SaveFile writes the store as a msgpack map.
func (s MemStore) SaveFile(path string) error {
	buf, err := msgpack.Marshal(map[string]Record(s))
	if err != nil {
		return fmt.Errorf("zone: can't encode store: %w", err)
	}
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		return fmt.Errorf("zone: can't write store: %w", err)
	}
	return nil
}

// LoadFile reads a store written by SaveFile.
func LoadFile(path string) (MemStore, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("zone: can't read store: %w", err)
	}
	var m map[string]Record
	if err := msgpack.Unmarshal(buf, &m); err != nil {
		return nil, fmt.Errorf("zone: can't decode store: %w", err)
	}
	return MemStore(m), nil
}

// The process-wide record cache. Populated at most once and published
// atomically, so lookups may run concurrently with the first Populate.
var cache struct {
	once  sync.Once
	store atomic.Pointer[MemStore]
}

// Populate installs the provider's records as the process-wide cache.
// Only the first call has any effect; later calls are ignored and
// report false.
func Populate(p Provider, names ...string) bool {
	installed := false
	cache.once.Do(func() {
		store := make(MemStore, len(names))
		for _, name := range names {
			rec, ok := p.Zone(name)
			if !ok {
				slog.Warn("zone record missing from provider", "zone", name)
				continue
			}
			store[name] = rec
		}
		slog.Info("zone cache populated", "zones", len(store))
		cache.store.Store(&store)
		installed = true
	})
	return installed
}

// Lookup resolves a zone name against the process-wide cache, falling
// back to the built-in records.
func Lookup(name string) (Record, bool) {
	if store := cache.store.Load(); store != nil {
		if rec, ok := (*store)[name]; ok {
			return rec, true
		}
	}
	rec, ok := builtin[name]
	return rec, ok
}
