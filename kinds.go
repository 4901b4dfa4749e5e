// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package jsrender

// Kind is the type tag carried by every node in the input tree.
// The values are the literal strings the upstream parser emits.
type Kind string

const (
	SCRIPT   Kind = "SCRIPT"
	BLOCK    Kind = "BLOCK"
	FUNCTION Kind = "function"
	FOR      Kind = "for"
	IF       Kind = "if"
	VAR      Kind = "var"
	SEMI     Kind = ";" // expression statement
	CALL     Kind = "CALL"
	LIST     Kind = "LIST" // e.g. argument list

	// binary operators
	LT        Kind = "<"
	GT        Kind = ">"
	LE        Kind = "<="
	GE        Kind = ">="
	PLUS      Kind = "+"
	MOD       Kind = "%"
	STRICT_EQ Kind = "==="

	// unary operators
	INCREMENT Kind = "++"

	IDENTIFIER Kind = "IDENTIFIER"
	NUMBER     Kind = "NUMBER"
	STRING     Kind = "STRING"
)

// BinaryOperators lists the tags rendered as "a <op> b".
var BinaryOperators = []Kind{LT, GT, LE, GE, PLUS, MOD, STRICT_EQ}

// IsBinary reports whether k is one of the binary operator tags.
func (k Kind) IsBinary() bool {
	for _, op := range BinaryOperators {
		if k == op {
			return true
		}
	}
	return false
}

func (k Kind) String() string {
	return string(k)
}
