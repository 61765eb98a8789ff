package query

import (
	"testing"
	"time"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestEncode_AllNilFieldsIsEmpty(t *testing.T) {
	type model struct {
		Name *string
		Age  *int
		Tags []string
		Meta map[string]string
	}

	got, err := Encode(model{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "" {
		t.Errorf("Encode = %q, want empty", got)
	}
}

func TestEncode_Scalars(t *testing.T) {
	type model struct {
		Name   string
		Page   int
		Limit  uint
		Ratio  float64
		Active bool
	}

	got, err := Encode(model{Name: "alice", Page: 2, Limit: 50, Ratio: 0.5, Active: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "Name=alice&Page=2&Limit=50&Ratio=0.5&Active=true"
	if got != want {
		t.Errorf("Encode = %q, want %q", got, want)
	}
}

func TestEncode_DeclarationOrder(t *testing.T) {
	type model struct {
		Zebra string
		Apple string
	}

	got, _ := Encode(model{Zebra: "z", Apple: "a"})
	if got != "Zebra=z&Apple=a" {
		t.Errorf("fields must keep declaration order, got %q", got)
	}
}

func TestEncode_SequenceCommaJoinedSingleEncoded(t *testing.T) {
	type model struct {
		Tags []string `query:"tags"`
	}

	got, err := Encode(model{Tags: []string{"a", "b"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "tags=a%2Cb" {
		t.Errorf("Encode = %q, want tags=a%%2Cb", got)
	}
}

func TestEncode_SequenceSkipsNilElements(t *testing.T) {
	type model struct {
		IDs []*int `query:"ids"`
	}

	got, _ := Encode(model{IDs: []*int{intPtr(1), nil, intPtr(3)}})
	if got != "ids=1%2C3" {
		t.Errorf("Encode = %q, want ids=1%%2C3", got)
	}

	// All elements filtered out: field skipped entirely.
	got, _ = Encode(model{IDs: []*int{nil, nil}})
	if got != "" {
		t.Errorf("Encode = %q, want empty", got)
	}
}

func TestEncode_PercentEncodesOnce(t *testing.T) {
	type model struct {
		Q string `query:"q"`
	}

	got, _ := Encode(model{Q: "50% off & more"})
	if got != "q=50%25+off+%26+more" {
		t.Errorf("Encode = %q", got)
	}

	// Already-encoded input is treated as a raw value, encoded exactly once.
	got, _ = Encode(model{Q: "a%2Cb"})
	if got != "q=a%252Cb" {
		t.Errorf("Encode = %q, want q=a%%252Cb", got)
	}
}

func TestEncode_TagOverridesAndSkip(t *testing.T) {
	type model struct {
		UserName string `query:"user_name"`
		Secret   string `query:"-"`
		Plain    string
	}

	got, _ := Encode(model{UserName: "u", Secret: "s", Plain: "p"})
	if got != "user_name=u&Plain=p" {
		t.Errorf("Encode = %q", got)
	}
}

func TestEncode_PointerAndTime(t *testing.T) {
	type model struct {
		Name  *string   `query:"name"`
		Since time.Time `query:"since"`
	}

	since := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	got, _ := Encode(model{Name: strPtr("bob"), Since: since})
	if got != "name=bob&since=2026-01-02T03%3A04%3A05Z" {
		t.Errorf("Encode = %q", got)
	}
}

func TestEncode_ByteSliceIsText(t *testing.T) {
	type model struct {
		Data []byte `query:"data"`
	}

	got, _ := Encode(model{Data: []byte("ab")})
	if got != "data=ab" {
		t.Errorf("Encode = %q, want data=ab", got)
	}
}

func TestEncode_PointerModel(t *testing.T) {
	type model struct {
		A string
	}

	got, _ := Encode(&model{A: "x"})
	if got != "A=x" {
		t.Errorf("Encode = %q", got)
	}

	var m *model
	got, err := Encode(m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "" {
		t.Errorf("nil model should encode to empty, got %q", got)
	}
}

func TestEncode_NonStruct(t *testing.T) {
	if _, err := Encode(42); err == nil {
		t.Error("expected error for non-struct model")
	}
}

func TestAppend(t *testing.T) {
	type model struct {
		B *string `query:"b"`
	}

	tests := []struct {
		name string
		url  string
		m    any
		want string
	}{
		{"no existing query", "https://api.example.com/x", model{B: strPtr("2")}, "https://api.example.com/x?b=2"},
		{"existing query", "https://api.example.com/x?a=1", model{B: strPtr("2")}, "https://api.example.com/x?a=1&b=2"},
		{"empty projection", "https://api.example.com/x?a=1", model{}, "https://api.example.com/x?a=1"},
		{"nil model", "https://api.example.com/x", nil, "https://api.example.com/x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Append(tt.url, tt.m)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Append = %q, want %q", got, tt.want)
			}
		})
	}
}
