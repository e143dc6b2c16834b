package binuuid

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
)

func TestUUID_ToStorageOrder(t *testing.T) {
	want := UUID{0x10, 0x26, 0xba, 0xba, 0x6c, 0xcd, 0x78, 0x0c, 0x95, 0x64, 0x5b, 0x8c, 0x65, 0x60, 0x24, 0xdb}
	if diff := cmp.Diff(want, v1UUID.ToStorageOrder()); diff != "" {
		t.Errorf("ToStorageOrder() mismatch (-want +got):\n%s", diff)
	}
}

func TestUUID_FromStorageOrder(t *testing.T) {
	stored := UUID{0x10, 0x26, 0xba, 0xba, 0x6c, 0xcd, 0x78, 0x0c, 0x95, 0x64, 0x5b, 0x8c, 0x65, 0x60, 0x24, 0xdb}
	if diff := cmp.Diff(v1UUID, stored.FromStorageOrder()); diff != "" {
		t.Errorf("FromStorageOrder() mismatch (-want +got):\n%s", diff)
	}
}

func TestSwap_Permutation(t *testing.T) {
	u := UUID{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}

	wantStorage := UUID{6, 7, 4, 5, 0, 1, 2, 3, 8, 9, 10, 11, 12, 13, 14, 15}
	if got := u.ToStorageOrder(); got != wantStorage {
		t.Errorf("ToStorageOrder() = %v, want %v", got[:], wantStorage[:])
	}

	wantNatural := UUID{4, 5, 6, 7, 2, 3, 0, 1, 8, 9, 10, 11, 12, 13, 14, 15}
	if got := u.FromStorageOrder(); got != wantNatural {
		t.Errorf("FromStorageOrder() = %v, want %v", got[:], wantNatural[:])
	}
}

func TestSwap_Involution(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		var u UUID
		rng.Read(u[:])

		s := u.ToStorageOrder()
		if got := s.FromStorageOrder(); got != u {
			t.Fatalf("FromStorageOrder(ToStorageOrder(%v)) = %v", u, got)
		}
		if got := u.FromStorageOrder().ToStorageOrder(); got != u {
			t.Fatalf("ToStorageOrder(FromStorageOrder(%v)) = %v", u, got)
		}
		if !bytes.Equal(s[8:], u[8:]) || !bytes.Equal(u.FromStorageOrder().Bytes()[8:], u[8:]) {
			t.Fatalf("swap altered clock_seq/node of %v", u)
		}
	}
}

func TestSwap_TimeBasedOrdering(t *testing.T) {
	prev := UUID(uuid.Must(uuid.NewUUID())).ToStorageOrder()
	for i := 0; i < 1000; i++ {
		g, err := uuid.NewUUID()
		if err != nil {
			t.Fatalf("NewUUID() error = %v", err)
		}
		if g.Version() != 1 {
			t.Fatalf("NewUUID() version = %d, want 1", g.Version())
		}
		cur := UUID(g).ToStorageOrder()
		// the first 8 bytes of storage order are the 60 bit timestamp, big endian
		if bytes.Compare(prev[:8], cur[:8]) > 0 {
			t.Fatalf("storage order went backwards: %x then %x", prev[:8], cur[:8])
		}
		prev = cur
	}
}
