// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package jsrender_test

import (
	"errors"
	"testing"

	"github.com/mdhender/jsrender"
)

func TestDecode_NumberValueKeepsSourceText(t *testing.T) {
	for _, tc := range []struct {
		name  string
		input string
		want  string
	}{
		{"integer", `{"type":"NUMBER","value":15}`, "15"},
		{"float", `{"type":"NUMBER","value":3.25}`, "3.25"},
		{"exponent", `{"type":"NUMBER","value":1e21}`, "1e21"},
		{"string", `{"type":"NUMBER","value":"0x1F"}`, "0x1F"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			n, err := jsrender.Decode([]byte(tc.input))
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if n.Value == nil {
				t.Fatalf("Value = nil, want %q", tc.want)
			}
			if got := n.Value.String(); got != tc.want {
				t.Fatalf("Value = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestDecode_RejectsNonScalarValue(t *testing.T) {
	for _, input := range []string{
		`{"type":"IDENTIFIER","value":true}`,
		`{"type":"IDENTIFIER","value":[1]}`,
		`{"type":"IDENTIFIER","value":{"x":1}}`,
	} {
		if _, err := jsrender.Decode([]byte(input)); err == nil {
			t.Errorf("decode %s: want error, got nil", input)
		}
	}
}

func TestDecode_MissingVersusEmpty(t *testing.T) {
	n, err := jsrender.Decode([]byte(`{"type":"function","name":"f","params":[],"body":{"type":"BLOCK"}}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if n.Params == nil {
		t.Errorf("Params = nil, want empty slice")
	}
	if n.Body == nil {
		t.Fatalf("Body = nil, want node")
	}
	if n.Body.Children != nil {
		t.Errorf("Body.Children = %v, want nil", n.Body.Children)
	}

	n, err = jsrender.Decode([]byte(`{"type":"if","elsePart":null,"lineno":7}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if n.ElsePart != nil {
		t.Errorf("ElsePart = %v, want nil", n.ElsePart)
	}
	if n.Line != 7 {
		t.Errorf("Line = %d, want 7", n.Line)
	}
}

func TestDecode_IgnoresUnusedAttributes(t *testing.T) {
	n, err := jsrender.Decode([]byte(`{"type":"IDENTIFIER","value":"x","start":10,"end":11,"c":null,"varName":"x"}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got, want := n.Type, jsrender.IDENTIFIER; got != want {
		t.Fatalf("Type = %q, want %q", got, want)
	}
}

func TestDecode_Errors(t *testing.T) {
	if _, err := jsrender.Decode([]byte("null")); !errors.Is(err, jsrender.ErrEmptyDocument) {
		t.Errorf("decode null: got %v, want %v", err, jsrender.ErrEmptyDocument)
	}
	for _, input := range []string{``, `{`, `[]`, `{"type":"SCRIPT"} {}`, `{"type":1}`} {
		if _, err := jsrender.Decode([]byte(input)); err == nil {
			t.Errorf("decode %q: want error, got nil", input)
		}
	}
}

func TestKind_IsBinary(t *testing.T) {
	for _, k := range []jsrender.Kind{jsrender.LT, jsrender.GT, jsrender.LE, jsrender.GE, jsrender.PLUS, jsrender.MOD, jsrender.STRICT_EQ} {
		if !k.IsBinary() {
			t.Errorf("%q.IsBinary() = false, want true", k)
		}
	}
	for _, k := range []jsrender.Kind{jsrender.INCREMENT, jsrender.CALL, jsrender.SEMI, "-"} {
		if k.IsBinary() {
			t.Errorf("%q.IsBinary() = true, want false", k)
		}
	}
}
