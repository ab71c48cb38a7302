package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/lugassawan/colz/internal/columnize"
	"gopkg.in/yaml.v3"
)

const maxLineSize = 1 << 20

// nodeSource returns the next row node, or io.EOF.
type nodeSource func() (*yaml.Node, error)

// nodeReader builds rows from YAML nodes. JSON Lines go through the same
// path since every JSON document is valid YAML, and nodes keep key order.
type nodeReader struct {
	next    nodeSource
	headers []string
	peeked  *yaml.Node
}

func newNodeReader(next nodeSource, headers []string) (*nodeReader, error) {
	r := &nodeReader{next: next, headers: headers}
	if len(headers) > 0 {
		return r, nil
	}

	n, err := next()
	if errors.Is(err, io.EOF) {
		return nil, ErrNoHeaders
	}
	if err != nil {
		return nil, err
	}
	if n.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: first row is not a mapping", ErrNoHeaders)
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		r.headers = append(r.headers, n.Content[i].Value)
	}
	r.peeked = n
	return r, nil
}

func (r *nodeReader) Headers() []string {
	return r.headers
}

func (r *nodeReader) Next() (columnize.Row, error) {
	n := r.peeked
	r.peeked = nil
	if n == nil {
		var err error
		if n, err = r.next(); err != nil {
			return columnize.Row{}, err
		}
	}
	return rowFromNode(n)
}

func rowFromNode(n *yaml.Node) (columnize.Row, error) {
	switch n.Kind {
	case yaml.MappingNode:
		fields := make(map[string]any, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			fields[n.Content[i].Value] = nodeValue(n.Content[i+1])
		}
		return columnize.Keyed(fields), nil
	case yaml.SequenceNode:
		values := make([]any, len(n.Content))
		for i, c := range n.Content {
			values[i] = nodeValue(c)
		}
		return columnize.Positional(values...), nil
	}
	return columnize.Row{}, fmt.Errorf("row must be a mapping or a sequence, got %q", n.Value)
}

// nodeValue returns scalars as their text, null as nil and collections
// re-encoded in flow style.
func nodeValue(n *yaml.Node) any {
	if n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	if n.Kind == yaml.ScalarNode {
		if n.Tag == "!!null" {
			return nil
		}
		return n.Value
	}
	flow := *n
	flow.Style = yaml.FlowStyle
	b, err := yaml.Marshal(&flow)
	if err != nil {
		return n.Value
	}
	return strings.TrimSpace(string(b))
}

func documentContent(doc *yaml.Node) *yaml.Node {
	if doc.Kind == yaml.DocumentNode {
		if len(doc.Content) == 0 {
			return nil
		}
		return doc.Content[0]
	}
	return doc
}

// lineSource parses one JSON document per non-blank line.
func lineSource(r io.Reader) nodeSource {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	line := 0
	return func() (*yaml.Node, error) {
		for sc.Scan() {
			line++
			text := strings.TrimSpace(sc.Text())
			if text == "" {
				continue
			}
			var doc yaml.Node
			if err := yaml.Unmarshal([]byte(text), &doc); err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			if n := documentContent(&doc); n != nil {
				return n, nil
			}
		}
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("read line %d: %w", line+1, err)
		}
		return nil, io.EOF
	}
}

// docSource walks YAML documents. A document holding a list of mappings or
// lists yields one row per item; any other document is a single row.
func docSource(r io.Reader) nodeSource {
	dec := yaml.NewDecoder(r)
	var pending []*yaml.Node
	return func() (*yaml.Node, error) {
		for len(pending) == 0 {
			var doc yaml.Node
			if err := dec.Decode(&doc); err != nil {
				if errors.Is(err, io.EOF) {
					return nil, io.EOF
				}
				return nil, fmt.Errorf("decode yaml: %w", err)
			}
			n := documentContent(&doc)
			switch {
			case n == nil:
			case isRowList(n):
				pending = n.Content
			default:
				pending = []*yaml.Node{n}
			}
		}
		n := pending[0]
		pending = pending[1:]
		return n, nil
	}
}

func isRowList(n *yaml.Node) bool {
	if n.Kind != yaml.SequenceNode {
		return false
	}
	for _, c := range n.Content {
		if c.Kind != yaml.MappingNode && c.Kind != yaml.SequenceNode {
			return false
		}
	}
	return true
}
