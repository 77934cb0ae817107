package ref

import "testing"

func TestTo_BlankIsAbsent(t *testing.T) {
	if To("  ").IsSet() {
		t.Fatalf("blank id must be absent")
	}
	r := To(" abc ")
	if id, ok := r.ID(); !ok || id != "abc" {
		t.Fatalf("unexpected ref: %q %t", id, ok)
	}
	if !r.Is("abc") || None().Is("") {
		t.Fatalf("unexpected Is result")
	}
}

func TestPtrRoundTrip(t *testing.T) {
	if None().Ptr() != nil {
		t.Fatalf("absent ref must map to nil")
	}
	if FromPtr(nil).IsSet() {
		t.Fatalf("nil pointer must map to absent ref")
	}

	p := To("x").Ptr()
	*p = "mutated"
	if got := FromPtr(p); !got.Is("mutated") {
		t.Fatalf("unexpected ref: %s", got)
	}
}

func TestScanAndValue(t *testing.T) {
	var r Ref
	for _, src := range []any{"id-1", []byte("id-1")} {
		if err := r.Scan(src); err != nil {
			t.Fatalf("scan %T: %v", src, err)
		}
		if !r.Is("id-1") {
			t.Fatalf("scan %T: got %s", src, r)
		}
	}

	if err := r.Scan(nil); err != nil || r.IsSet() {
		t.Fatalf("scan nil: ref=%s err=%v", r, err)
	}
	if err := r.Scan(42); err == nil {
		t.Fatalf("expected error scanning int")
	}

	v, err := None().Value()
	if err != nil || v != nil {
		t.Fatalf("absent value: %v %v", v, err)
	}
	v, err = To("id-2").Value()
	if err != nil || v != "id-2" {
		t.Fatalf("present value: %v %v", v, err)
	}
	if None().String() != "<none>" {
		t.Fatalf("unexpected absent label: %q", None().String())
	}
}
