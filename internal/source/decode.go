package source

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/five82/hiremap/internal/hiring"
)

// Format identifies a document encoding.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

func (f Format) String() string {
	if f == FormatYAML {
		return "yaml"
	}
	return "json"
}

// maxNesting bounds decoder recursion on hostile input.
const maxNesting = 512

var errTooDeep = errors.New("document nested too deeply")

// Decode parses a document in the given format, keeping mapping key order.
func Decode(data []byte, format Format) (hiring.Document, error) {
	var (
		root hiring.Value
		err  error
	)
	switch format {
	case FormatYAML:
		root, err = decodeYAML(data)
	default:
		root, err = decodeJSON(bytes.NewReader(data))
	}
	if err != nil {
		return hiring.Document{}, fmt.Errorf("decode %s: %w", format, err)
	}
	doc, err := hiring.DecodeDocument(root)
	if err != nil {
		return hiring.Document{}, fmt.Errorf("decode %s: %w", format, err)
	}
	return doc, nil
}

func decodeJSON(r io.Reader) (hiring.Value, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	v, err := readJSON(dec, 0)
	if err != nil {
		return hiring.Value{}, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return hiring.Value{}, fmt.Errorf("unexpected data after top-level value")
	}
	return v, nil
}

func readJSON(dec *json.Decoder, depth int) (hiring.Value, error) {
	if depth > maxNesting {
		return hiring.Value{}, errTooDeep
	}
	tok, err := dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return hiring.Value{}, io.ErrUnexpectedEOF
		}
		return hiring.Value{}, err
	}
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return readJSONObject(dec, depth)
		case '[':
			var items []hiring.Value
			for dec.More() {
				item, err := readJSON(dec, depth+1)
				if err != nil {
					return hiring.Value{}, err
				}
				items = append(items, item)
			}
			if _, err := dec.Token(); err != nil {
				return hiring.Value{}, err
			}
			return hiring.Sequence(items...), nil
		}
		return hiring.Value{}, fmt.Errorf("unexpected delimiter %q", t)
	case string:
		return hiring.String(t), nil
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			// Out of float range: keep the literal rather than failing the load.
			return hiring.String(t.String()), nil
		}
		return hiring.Number(f), nil
	default:
		// bool and null
		return hiring.Empty(), nil
	}
}

// readJSONObject reads fields after an opening brace. A repeated key keeps its
// first position and its last value.
func readJSONObject(dec *json.Decoder, depth int) (hiring.Value, error) {
	var fields []hiring.Field
	index := make(map[string]int)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return hiring.Value{}, err
		}
		key, ok := tok.(string)
		if !ok {
			return hiring.Value{}, fmt.Errorf("object key is %T, want string", tok)
		}
		val, err := readJSON(dec, depth+1)
		if err != nil {
			return hiring.Value{}, err
		}
		if i, seen := index[key]; seen {
			fields[i].Value = val
			continue
		}
		index[key] = len(fields)
		fields = append(fields, hiring.F(key, val))
	}
	if _, err := dec.Token(); err != nil {
		return hiring.Value{}, err
	}
	return hiring.Mapping(fields...), nil
}

func decodeYAML(data []byte) (hiring.Value, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return hiring.Value{}, err
	}
	if node.Kind == 0 {
		// Empty input.
		return hiring.Empty(), nil
	}
	return convertYAML(&node, 0)
}

func convertYAML(n *yaml.Node, depth int) (hiring.Value, error) {
	if depth > maxNesting {
		return hiring.Value{}, errTooDeep
	}
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return hiring.Empty(), nil
		}
		return convertYAML(n.Content[0], depth)
	case yaml.AliasNode:
		if n.Alias == nil {
			return hiring.Empty(), nil
		}
		return convertYAML(n.Alias, depth+1)
	case yaml.SequenceNode:
		items := make([]hiring.Value, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := convertYAML(c, depth+1)
			if err != nil {
				return hiring.Value{}, err
			}
			items = append(items, v)
		}
		return hiring.Sequence(items...), nil
	case yaml.MappingNode:
		var fields []hiring.Field
		index := make(map[string]int)
		for i := 0; i+1 < len(n.Content); i += 2 {
			key := n.Content[i].Value
			v, err := convertYAML(n.Content[i+1], depth+1)
			if err != nil {
				return hiring.Value{}, err
			}
			if j, seen := index[key]; seen {
				fields[j].Value = v
				continue
			}
			index[key] = len(fields)
			fields = append(fields, hiring.F(key, v))
		}
		return hiring.Mapping(fields...), nil
	case yaml.ScalarNode:
		return convertYAMLScalar(n)
	default:
		return hiring.Empty(), nil
	}
}

func convertYAMLScalar(n *yaml.Node) (hiring.Value, error) {
	switch n.ShortTag() {
	case "!!null", "!!bool":
		return hiring.Empty(), nil
	case "!!int", "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return hiring.String(n.Value), nil
		}
		return hiring.Number(f), nil
	default:
		return hiring.String(n.Value), nil
	}
}
