package insights

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Number is a numeric cell kept in its canonical decimal text.
type Number string

func (n Number) MarshalJSON() ([]byte, error) {
	return []byte(n), nil
}

func (n Number) Float64() float64 {
	f, _ := strconv.ParseFloat(string(n), 64)
	return f
}

// Field is one column of a report row.
type Field struct {
	Name  string
	Value any
}

// ReportRow is a spreadsheet row rendered for the category report. Fields keep
// the spreadsheet column order.
type ReportRow []Field

// Get returns the value of column name.
func (r ReportRow) Get(name string) (any, bool) {
	for _, f := range r {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}

// Names returns the column names in order.
func (r ReportRow) Names() []string {
	names := make([]string, len(r))
	for i, f := range r {
		names[i] = f.Name
	}
	return names
}

func (r ReportRow) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range r {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := marshalLiteral(f.Name)
		if err != nil {
			return nil, err
		}
		val, err := marshalLiteral(f.Value)
		if err != nil {
			return nil, fmt.Errorf("column %s: %w", f.Name, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// marshalLiteral is json.Marshal without HTML escaping, so "&", "<" and ">"
// stay as written.
func marshalLiteral(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

func (r ReportRow) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, f := range r {
		key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: f.Name}
		val := &yaml.Node{Kind: yaml.ScalarNode}
		switch v := f.Value.(type) {
		case nil:
			val.Tag, val.Value = "!!null", "null"
		case Number:
			val.Tag, val.Value = "!!float", string(v)
			if _, err := strconv.ParseInt(string(v), 10, 64); err == nil {
				val.Tag = "!!int"
			}
		case string:
			val.Tag, val.Value = "!!str", v
		default:
			val.Tag, val.Value = "!!str", fmt.Sprint(v)
		}
		node.Content = append(node.Content, key, val)
	}
	return node, nil
}
