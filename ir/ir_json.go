package ir

import (
	"encoding/json"
	"fmt"
)

type irBase struct {
	Type       Type    `json:"type"`
	Name       string  `json:"name,omitempty"`
	Root       bool    `json:"root,omitempty"`
	Identifier string  `json:"identifier,omitempty"`
	Children   []*Node `json:"children,omitempty"`
}

func (y *Node) MarshalJSON() ([]byte, error) {
	base := &irBase{
		Type:       y.Type,
		Name:       y.Name,
		Root:       y.Root,
		Identifier: y.Identifier,
		Children:   y.Children,
	}
	switch y.Type {
	case LeafType:
		type C struct {
			irBase
			Value string `json:"value"`
		}
		return json.Marshal(C{irBase: *base, Value: y.Value})
	default:
		return json.Marshal(base)
	}
}

func (y *Node) UnmarshalJSON(d []byte) error {
	type C struct {
		irBase
		Value string `json:"value"`
	}
	tmp := &C{}
	if err := json.Unmarshal(d, tmp); err != nil {
		return err
	}
	y.Type = tmp.Type
	y.Name = tmp.Name
	y.Root = tmp.Root
	y.Value = tmp.Value
	y.Identifier = tmp.Identifier
	y.Children = tmp.Children

	switch y.Type {
	case LeafType:
		if len(y.Children) != 0 {
			return fmt.Errorf("%w: leaf %q with %d children", ErrMalformed, y.Name, len(y.Children))
		}
	case StructType:
		seen := make(map[string]bool, len(y.Children))
		for _, c := range y.Children {
			if c == nil {
				return fmt.Errorf("%w: nil child in %q", ErrMalformed, y.Identifier)
			}
			if seen[c.Name] {
				return fmt.Errorf("%w: %q in %q", ErrDuplicateChild, c.Name, y.Identifier)
			}
			seen[c.Name] = true
		}
	}
	return nil
}
