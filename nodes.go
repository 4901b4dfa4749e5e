// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package jsrender

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Node is one element of the syntax tree produced by the upstream parser.
//
// A single struct carries the attributes of every tag. Which attributes are
// meaningful depends on Type; the renderer checks for the ones it needs.
// Pointer and slice fields are nil when the attribute is absent (or null)
// in the input, which lets the renderer tell "missing" from "empty".
//
// Declarators in a var node's Children are Nodes too. They use Name and,
// optionally, Initializer.
type Node struct {
	Type Kind `json:"type"`
	Line int  `json:"lineno,omitempty"`

	// SCRIPT, BLOCK, LIST, var
	Children []*Node `json:"children,omitempty"`

	// function
	Name   *string  `json:"name,omitempty"`
	Params []string `json:"params,omitempty"`
	Body   *Node    `json:"body,omitempty"`

	// for (Body is shared with function)
	Setup  *Node `json:"setup,omitempty"`
	Update *Node `json:"update,omitempty"`

	// if, for
	Condition *Node `json:"condition,omitempty"`
	ThenPart  *Node `json:"thenPart,omitempty"`
	ElsePart  *Node `json:"elsePart,omitempty"`

	// ;
	Expression *Node `json:"expression,omitempty"`

	// var declarator
	Initializer *Node `json:"initializer,omitempty"`

	// CALL, binary and unary operators
	A *Node `json:"a,omitempty"`
	B *Node `json:"b,omitempty"`

	// ++; the upstream parser only sets postfix when it is true
	Postfix bool `json:"postfix,omitempty"`

	// IDENTIFIER, NUMBER, STRING
	Value *Literal `json:"value,omitempty"`
}

// Literal is the text of a leaf node's value.
// The upstream parser emits strings for identifiers and strings,
// but plain JSON numbers for NUMBER nodes. Numbers keep the exact
// text they had in the input.
type Literal string

// UnmarshalJSON accepts a JSON string or number.
func (l *Literal) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return err
	}
	switch t := v.(type) {
	case string:
		*l = Literal(t)
	case json.Number:
		*l = Literal(t.String())
	default:
		return fmt.Errorf("value: want string or number, got %s", bytes.TrimSpace(data))
	}
	return nil
}

func (l Literal) String() string {
	return string(l)
}

// Decode returns the tree described by a single JSON document.
func Decode(data []byte) (*Node, error) {
	var root *Node
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, err
	} else if root == nil {
		return nil, ErrEmptyDocument
	}
	return root, nil
}
