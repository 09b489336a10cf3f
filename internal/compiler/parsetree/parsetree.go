// Package parsetree defines the concrete, parent-linked parse tree the
// parser builds as it consumes tokens, along with its fixed-column
// pre-order printer.
package parsetree

import (
	"fmt"
	"io"
	"strconv"

	"github.com/dekarrin/mimic/internal/compiler/grammar"
	"github.com/dekarrin/mimic/internal/compiler/token"
)

// Node is one entry in the parse tree. A leaf (Children empty) holds the
// matched token's lexeme and line; an interior node holds one child per
// RHS symbol of the production that expanded it.
type Node struct {
	Symbol     grammar.SymbolID
	Parent     *Node
	Children   []*Node
	IsTerminal bool
	IsEpsilon  bool

	Lexeme string
	Line   int
}

// NewRoot creates the tree's root node for the grammar's start symbol. It
// has no parent, matching the reference implementation's use of "$" as the
// printed stand-in for a root's parent.
func NewRoot(start grammar.SymbolID) *Node {
	return &Node{Symbol: start}
}

// Expand attaches one child per RHS symbol of p to n, in left-to-right
// order, and returns the newly created children. Epsilon productions
// produce a single non-pushed epsilon leaf.
func (n *Node) Expand(p grammar.Production) []*Node {
	children := make([]*Node, len(p.RHS))
	for i, sym := range p.RHS {
		c := &Node{Symbol: sym, Parent: n}
		if sym == grammar.Epsilon {
			c.IsEpsilon = true
		} else if sym.IsTerminal() {
			c.IsTerminal = true
		}
		children[i] = c
	}
	n.Children = children
	return children
}

// SetMatch records a successful terminal match against tok onto a leaf node
// created by Expand.
func (n *Node) SetMatch(tok token.Token) {
	n.Lexeme = tok.Lexeme
	n.Line = tok.Line
}

// header is the fixed column header the reference printer writes before
// walking the tree.
const header = "%-15s %-3s %-22s %-10s %-22s %-4s %-22s\n"
const row = "%-15s\t %-3d\t %-22s\t %-10s\t %-22s\t %-4s\t %-22s\t \n"

// Print writes a pre-order dump of the tree rooted at root, one line per
// node, in the reference implementation's fixed-width columns: lexeme,
// line number, token/non-terminal name, numeric value (if a TK_NUM/TK_RNUM
// leaf), parent name, whether the node is a leaf, and the node's own name.
func Print(w io.Writer, root *Node) {
	fmt.Fprintf(w, header, "Lexeme", "LineNo", "TokenName", "ValueIfNumber", "Parent", "isLeaf  ", "Node")
	printNode(w, root)
}

func printNode(w io.Writer, n *Node) {
	if len(n.Children) >= 1 {
		printNode(w, n.Children[0])
	}

	leaf := "no"
	lexeme := "----"
	value := "----"
	parentName := "----"

	if n.Parent == nil {
		// Root: printed with the reference's literal stand-ins for a
		// parent-less node.
		fmt.Fprintf(w, row, "----", n.Line, n.Symbol.Name(), "----", "$", "no", n.Symbol.Name())
	} else {
		parentName = n.Parent.Symbol.Name()
		if len(n.Children) == 0 {
			if n.IsEpsilon {
				lexeme = "eps"
			} else {
				lexeme = n.Lexeme
			}
			leaf = "yes"

			switch n.Symbol {
			case grammar.SNum:
				if iv, err := strconv.Atoi(n.Lexeme); err == nil {
					value = fmt.Sprintf("%-10d", iv)
				}
			case grammar.SRnum:
				if fv, err := strconv.ParseFloat(n.Lexeme, 64); err == nil {
					value = fmt.Sprintf("%-10.5f", fv)
				}
			}
		}

		fmt.Fprintf(w, row, lexeme, n.Line, n.Symbol.Name(), value, parentName, leaf, n.Symbol.Name())
	}

	for i := 1; i < len(n.Children); i++ {
		printNode(w, n.Children[i])
	}
}
