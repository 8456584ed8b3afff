package declare

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/wrapkit"
)

// document is the top-level shape of a kind declaration.
type document struct {
	Name     string      `yaml:"name"`
	Sanitize []yaml.Node `yaml:"sanitize"`
	Validate *yaml.Node  `yaml:"validate"`
	Upgrades []string    `yaml:"upgrades"`
}

// Parse reads a YAML or JSON declaration and defines the kind it
// describes. Step and rule arguments are decoded through the registry's
// factories, so every problem in the document surfaces here rather than
// during later construction calls.
func (r *Registry[T]) Parse(src []byte) (*wrapkit.Kind[T], error) {
	dec := yaml.NewDecoder(bytes.NewReader(src))
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidDocument)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	return r.define(doc)
}

// ParseNode defines a kind from an already decoded document node, for
// declarations embedded inside a larger configuration file. The node must
// be a mapping (or a document wrapping one) with the same keys Parse
// accepts.
func (r *Registry[T]) ParseNode(node *yaml.Node) (*wrapkit.Kind[T], error) {
	node = resolve(node)
	if node != nil && node.Kind == yaml.DocumentNode {
		if len(node.Content) == 0 {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidDocument)
		}
		node = resolve(node.Content[0])
	}
	if node == nil {
		return nil, fmt.Errorf("%w: empty document", ErrInvalidDocument)
	}
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: declaration must be a mapping", ErrInvalidDocument)
	}
	// yaml.Node.Decode has no KnownFields mode; unknown keys are policed here.
	for i := 0; i+1 < len(node.Content); i += 2 {
		switch key := node.Content[i].Value; key {
		case "name", "sanitize", "validate", "upgrades":
		default:
			return nil, fmt.Errorf("%w: unknown key %q", ErrInvalidDocument, key)
		}
	}

	var doc document
	if err := node.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	return r.define(doc)
}

// define lowers a decoded document onto the engine.
func (r *Registry[T]) define(doc document) (*wrapkit.Kind[T], error) {
	chain := make(wrapkit.Chain[T], 0, len(doc.Sanitize))
	for i := range doc.Sanitize {
		step, err := r.buildTransform(&doc.Sanitize[i])
		if err != nil {
			return nil, err
		}
		chain = append(chain, step)
	}

	check, err := r.buildCheck(doc.Validate)
	if err != nil {
		return nil, err
	}

	upgrades := make([]wrapkit.Upgrade, 0, len(doc.Upgrades))
	for _, tag := range doc.Upgrades {
		u, err := wrapkit.ParseUpgrade(tag)
		if err != nil {
			return nil, err
		}
		upgrades = append(upgrades, u)
	}

	return wrapkit.Define(doc.Name, wrapkit.Config[T]{
		Sanitize: chain,
		Validate: check,
		Upgrades: upgrades,
	})
}

// buildTransform resolves one entry of the sanitize list.
func (r *Registry[T]) buildTransform(node *yaml.Node) (wrapkit.Transform[T], error) {
	name, args, err := splitStep(node)
	if err != nil {
		return nil, err
	}
	factory, ok := r.transforms[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownTransform)
	}
	step, err := factory(args)
	if err != nil {
		return nil, fmt.Errorf("transform %q: %w", name, err)
	}
	return step, nil
}

// buildCheck resolves a rule tree node: a scalar names a rule, a sequence
// is an implicit "all", and a single-key mapping is either a combinator
// or a rule with arguments.
func (r *Registry[T]) buildCheck(node *yaml.Node) (wrapkit.Check[T], error) {
	node = resolve(node)
	if node == nil {
		return nil, nil
	}

	switch node.Kind {
	case yaml.ScalarNode:
		return r.leafCheck(node.Value, nil)

	case yaml.SequenceNode:
		kids, err := r.buildChecks(node.Content)
		if err != nil {
			return nil, err
		}
		return wrapkit.All(kids...), nil

	case yaml.MappingNode:
		if len(node.Content) != 2 {
			return nil, fmt.Errorf("%w: a rule mapping holds exactly one key, got %d", ErrInvalidDocument, len(node.Content)/2)
		}
		key, value := node.Content[0], resolve(node.Content[1])
		if key.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("%w: rule name must be a scalar", ErrInvalidDocument)
		}

		switch key.Value {
		case "all", "any":
			if value == nil || value.Kind != yaml.SequenceNode {
				return nil, fmt.Errorf("%w: %q takes a sequence of rules", ErrInvalidDocument, key.Value)
			}
			kids, err := r.buildChecks(value.Content)
			if err != nil {
				return nil, err
			}
			if key.Value == "all" {
				return wrapkit.All(kids...), nil
			}
			return wrapkit.Any(kids...), nil

		case "not":
			child, err := r.buildCheck(value)
			if err != nil {
				return nil, err
			}
			if child == nil {
				return nil, fmt.Errorf(`%w: "not" takes a rule`, ErrInvalidDocument)
			}
			return wrapkit.Not(child), nil

		case "when":
			return r.buildWhen(value)

		default:
			return r.leafCheck(key.Value, value)
		}
	}

	return nil, fmt.Errorf("%w: unsupported rule node", ErrInvalidDocument)
}

// buildWhen resolves a conditional rule. Values that fail the "if" branch
// pass the rule outright; values that satisfy it must satisfy "then".
func (r *Registry[T]) buildWhen(node *yaml.Node) (wrapkit.Check[T], error) {
	if node == nil || node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf(`%w: "when" takes a mapping with "if" and "then"`, ErrInvalidDocument)
	}

	var ifNode, thenNode *yaml.Node
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		switch key.Value {
		case "if":
			ifNode = value
		case "then":
			thenNode = value
		default:
			return nil, fmt.Errorf(`%w: "when" allows only "if" and "then", got %q`, ErrInvalidDocument, key.Value)
		}
	}

	guard, err := r.buildCheck(ifNode)
	if err != nil {
		return nil, err
	}
	child, err := r.buildCheck(thenNode)
	if err != nil {
		return nil, err
	}
	if guard == nil || child == nil {
		return nil, fmt.Errorf(`%w: "when" needs both "if" and "then"`, ErrInvalidDocument)
	}
	return wrapkit.When(guard.Check, child), nil
}

func (r *Registry[T]) buildChecks(nodes []*yaml.Node) ([]wrapkit.Check[T], error) {
	kids := make([]wrapkit.Check[T], 0, len(nodes))
	for _, n := range nodes {
		kid, err := r.buildCheck(n)
		if err != nil {
			return nil, err
		}
		if kid == nil {
			return nil, fmt.Errorf("%w: null rule in sequence", ErrInvalidDocument)
		}
		kids = append(kids, kid)
	}
	return kids, nil
}

func (r *Registry[T]) leafCheck(name string, args *yaml.Node) (wrapkit.Check[T], error) {
	factory, ok := r.checks[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownCheck)
	}
	check, err := factory(args)
	if err != nil {
		return nil, fmt.Errorf("check %q: %w", name, err)
	}
	return check, nil
}

// splitStep breaks a sanitize entry into its name and optional arguments.
func splitStep(node *yaml.Node) (string, *yaml.Node, error) {
	node = resolve(node)
	if node == nil {
		return "", nil, fmt.Errorf("%w: empty step", ErrInvalidDocument)
	}
	switch node.Kind {
	case yaml.ScalarNode:
		return node.Value, nil, nil
	case yaml.MappingNode:
		if len(node.Content) != 2 || node.Content[0].Kind != yaml.ScalarNode {
			return "", nil, fmt.Errorf("%w: a step mapping holds exactly one name", ErrInvalidDocument)
		}
		return node.Content[0].Value, resolve(node.Content[1]), nil
	}
	return "", nil, fmt.Errorf("%w: a step is a name or a single-key mapping", ErrInvalidDocument)
}

// resolve follows alias nodes and treats explicit nulls as absent.
func resolve(node *yaml.Node) *yaml.Node {
	if node == nil {
		return nil
	}
	if node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	if node.Kind == yaml.ScalarNode && node.Tag == "!!null" {
		return nil
	}
	return node
}
