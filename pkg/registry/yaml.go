package registry

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// document is the decoded form of an associations file. Field order is kept
// as written.
type document struct {
	entries []entry
}

type entry struct {
	option string
	rule   string
	fields []FieldRule
}

// LoadYAML registers the associations described by a YAML document:
//
//	options:
//	  site_email: email_address
//	  theme_opts:
//	    title: no_html
//	    color: url
//
// A scalar value binds the whole option. A mapping binds fields in document
// order. The document is checked completely before anything is registered, so
// a malformed document leaves the registry untouched.
func (r *Registry) LoadYAML(rd io.Reader) error {
	var root yaml.Node
	if err := yaml.NewDecoder(rd).Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return errors.Join(ErrInvalidDocument, err)
	}

	doc, err := parseDocument(&root)
	if err != nil {
		return errors.Join(ErrInvalidDocument, err)
	}

	for _, e := range doc.entries {
		if len(e.fields) == 0 {
			r.Register(e.option, e.rule)
			continue
		}
		for _, f := range e.fields {
			r.Register(e.option, f.Rule, f.Field)
		}
	}
	return nil
}

// LoadFile reads associations from a YAML file.
func (r *Registry) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Join(ErrInvalidDocument, err)
	}
	defer f.Close()
	return r.LoadYAML(f)
}

func parseDocument(root *yaml.Node) (document, error) {
	var doc document

	node := root
	if node.Kind == yaml.DocumentNode {
		if len(node.Content) == 0 {
			return doc, nil
		}
		node = node.Content[0]
	}
	if node.Kind != yaml.MappingNode {
		return doc, fmt.Errorf("line %d: expected a mapping at the document root", node.Line)
	}

	options := mappingValue(node, "options")
	if options == nil {
		return doc, fmt.Errorf("line %d: missing \"options\" key", node.Line)
	}
	if options.Kind != yaml.MappingNode {
		return doc, fmt.Errorf("line %d: \"options\" must be a mapping", options.Line)
	}

	for i := 0; i+1 < len(options.Content); i += 2 {
		key, value := options.Content[i], options.Content[i+1]
		if key.Value == "" {
			return doc, fmt.Errorf("line %d: empty option name", key.Line)
		}

		e := entry{option: key.Value}
		switch value.Kind {
		case yaml.ScalarNode:
			if value.Value == "" {
				return doc, fmt.Errorf("line %d: option %q has no rule", value.Line, key.Value)
			}
			e.rule = value.Value
		case yaml.MappingNode:
			if len(value.Content) == 0 {
				return doc, fmt.Errorf("line %d: option %q has no fields", value.Line, key.Value)
			}
			for j := 0; j+1 < len(value.Content); j += 2 {
				field, rule := value.Content[j], value.Content[j+1]
				if rule.Kind != yaml.ScalarNode || field.Value == "" || rule.Value == "" {
					return doc, fmt.Errorf("line %d: field rules of %q must be name: rule pairs", field.Line, key.Value)
				}
				e.fields = append(e.fields, FieldRule{Field: field.Value, Rule: rule.Value})
			}
		default:
			return doc, fmt.Errorf("line %d: option %q must map to a rule or to field rules", value.Line, key.Value)
		}
		doc.entries = append(doc.entries, e)
	}
	return doc, nil
}

func mappingValue(node *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1]
		}
	}
	return nil
}
