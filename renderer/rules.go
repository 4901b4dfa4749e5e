// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package renderer

import (
	"fmt"
	"strings"

	"github.com/mdhender/jsrender"
)

// rule renders a single node. Rules recurse through the walker.
type rule func(w *walker, n *jsrender.Node, at cursor) (string, error)

func ruleTable() map[jsrender.Kind]rule {
	rules := map[jsrender.Kind]rule{
		jsrender.SCRIPT:     renderSequence("\n"),
		jsrender.BLOCK:      renderSequence("\n"),
		jsrender.FUNCTION:   renderFunction,
		jsrender.FOR:        renderFor,
		jsrender.IF:         renderIf,
		jsrender.VAR:        renderVar,
		jsrender.SEMI:       renderStatement,
		jsrender.CALL:       renderCall,
		jsrender.LIST:       renderSequence(","),
		jsrender.INCREMENT:  renderIncrement,
		jsrender.IDENTIFIER: renderValue,
		jsrender.NUMBER:     renderValue,
		jsrender.STRING:     renderString,
	}
	for _, op := range jsrender.BinaryOperators {
		rules[op] = renderBinary
	}
	return rules
}

// renderSequence joins the rendered children with sep.
// The upstream parser omits children when there are none, so a
// missing list renders as empty.
func renderSequence(sep string) rule {
	return func(w *walker, n *jsrender.Node, at cursor) (string, error) {
		list, err := w.children(n, at)
		if err != nil {
			return "", err
		}
		return strings.Join(list, sep), nil
	}
}

func renderFunction(w *walker, n *jsrender.Node, at cursor) (string, error) {
	if n.Name == nil {
		return "", missing(n, at, "name")
	} else if n.Params == nil {
		return "", missing(n, at, "params")
	}
	body, err := w.child(n, at, "body", n.Body)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("function %s(%s) {\n%s\n}", *n.Name, strings.Join(n.Params, ", "), body), nil
}

func renderFor(w *walker, n *jsrender.Node, at cursor) (string, error) {
	setup, err := w.child(n, at, "setup", n.Setup)
	if err != nil {
		return "", err
	}
	condition, err := w.child(n, at, "condition", n.Condition)
	if err != nil {
		return "", err
	}
	update, err := w.child(n, at, "update", n.Update)
	if err != nil {
		return "", err
	}
	body, err := w.child(n, at, "body", n.Body)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("for (%s; %s; %s) {\n%s\n}", setup, condition, update, body), nil
}

func renderIf(w *walker, n *jsrender.Node, at cursor) (string, error) {
	condition, err := w.child(n, at, "condition", n.Condition)
	if err != nil {
		return "", err
	}
	thenPart, err := w.child(n, at, "thenPart", n.ThenPart)
	if err != nil {
		return "", err
	}
	elsePart, err := w.child(n, at, "elsePart", n.ElsePart)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("if (%s) {\n%s\n} else {\n%s\n}", condition, thenPart, elsePart), nil
}

// renderVar renders each declarator as "name" or "name = initializer".
func renderVar(w *walker, n *jsrender.Node, at cursor) (string, error) {
	if n.Children == nil {
		return "", missing(n, at, "children")
	}
	list := make([]string, 0, len(n.Children))
	for i, decl := range n.Children {
		if decl == nil {
			return "", missing(n, at, fmt.Sprintf("children[%d]", i))
		}
		declAt := at.index("children", i)
		if decl.Name == nil {
			return "", missing(decl, declAt, "name")
		}
		if decl.Initializer == nil {
			list = append(list, *decl.Name)
			continue
		}
		value, err := w.child(decl, declAt, "initializer", decl.Initializer)
		if err != nil {
			return "", err
		}
		list = append(list, *decl.Name+" = "+value)
	}
	return "var " + strings.Join(list, ",") + ";", nil
}

func renderStatement(w *walker, n *jsrender.Node, at cursor) (string, error) {
	expr, err := w.child(n, at, "expression", n.Expression)
	if err != nil {
		return "", err
	}
	return expr + ";", nil
}

func renderCall(w *walker, n *jsrender.Node, at cursor) (string, error) {
	callee, err := w.child(n, at, "a", n.A)
	if err != nil {
		return "", err
	}
	args, err := w.child(n, at, "b", n.B)
	if err != nil {
		return "", err
	}
	return callee + "(" + args + ")", nil
}

// renderBinary uses the tag itself as the operator.
func renderBinary(w *walker, n *jsrender.Node, at cursor) (string, error) {
	a, err := w.child(n, at, "a", n.A)
	if err != nil {
		return "", err
	}
	b, err := w.child(n, at, "b", n.B)
	if err != nil {
		return "", err
	}
	return a + " " + string(n.Type) + " " + b, nil
}

// renderIncrement renders prefix form unless postfix is set.
func renderIncrement(w *walker, n *jsrender.Node, at cursor) (string, error) {
	a, err := w.child(n, at, "a", n.A)
	if err != nil {
		return "", err
	}
	if n.Postfix {
		return a + "++", nil
	}
	return "++" + a, nil
}

func renderValue(w *walker, n *jsrender.Node, at cursor) (string, error) {
	if n.Value == nil {
		return "", missing(n, at, "value")
	}
	return n.Value.String(), nil
}

// renderString quotes the value without escaping it.
// A value containing a double quote produces invalid source.
// TODO: escape quotes and control characters once callers can opt in to the change.
func renderString(w *walker, n *jsrender.Node, at cursor) (string, error) {
	if n.Value == nil {
		return "", missing(n, at, "value")
	}
	return `"` + n.Value.String() + `"`, nil
}
