package permissions

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"sort"

	"go.yaml.in/yaml/v3"
)

// Access is the effect of a rule: allow or deny. The zero value is neither,
// so a rule that never set it cannot be encoded or decoded.
type Access int

const (
	Allow Access = iota + 1
	Deny
)

var errMissingAccess = errors.New("rule has no access")

func (a Access) String() string {
	switch a {
	case Allow:
		return "allow"
	case Deny:
		return "deny"
	default:
		return fmt.Sprintf("Access(%d)", int(a))
	}
}

func (a Access) MarshalText() ([]byte, error) {
	switch a {
	case Allow, Deny:
		return []byte(a.String()), nil
	default:
		return nil, fmt.Errorf("unknown access %d", int(a))
	}
}

func (a *Access) UnmarshalText(text []byte) error {
	switch string(text) {
	case "allow":
		*a = Allow
	case "deny":
		*a = Deny
	default:
		return fmt.Errorf("unknown access %q", string(text))
	}
	return nil
}

// StringSet is an unordered collection of names kept in declaration order.
type StringSet []string

// Contains reports whether s holds v.
func (s StringSet) Contains(v string) bool {
	return slices.Contains(s, v)
}

// Equal compares as sets; order and duplicates are ignored.
func (s StringSet) Equal(other StringSet) bool {
	a := s.sorted()
	b := other.sorted()
	return slices.Equal(a, b)
}

func (s StringSet) sorted() []string {
	out := slices.Clone([]string(s))
	sort.Strings(out)
	return slices.Compact(out)
}

func (s StringSet) clone() StringSet {
	if s == nil {
		return nil
	}
	return slices.Clone(s)
}

// Rule is a single access-control entry for an index.
type Rule struct {
	Access        Access    `json:"access" yaml:"access"`
	Fields        StringSet `json:"fields" yaml:"fields"`
	SourceFilters StringSet `json:"source_filters" yaml:"source_filters"`
	Roles         StringSet `json:"roles,omitempty" yaml:"roles,omitempty"`
}

func (r *Rule) UnmarshalJSON(data []byte) error {
	type plain Rule
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	if p.Access == 0 {
		return errMissingAccess
	}
	*r = Rule(p)
	return nil
}

func (r *Rule) UnmarshalYAML(value *yaml.Node) error {
	type plain Rule
	var p plain
	if err := value.Decode(&p); err != nil {
		return err
	}
	if p.Access == 0 {
		return errMissingAccess
	}
	*r = Rule(p)
	return nil
}

// Equal compares two rules, treating every name list as a set.
func (r Rule) Equal(other Rule) bool {
	return r.Access == other.Access &&
		r.Fields.Equal(other.Fields) &&
		r.SourceFilters.Equal(other.SourceFilters) &&
		r.Roles.Equal(other.Roles)
}

func (r Rule) clone() Rule {
	return Rule{
		Access:        r.Access,
		Fields:        r.Fields.clone(),
		SourceFilters: r.SourceFilters.clone(),
		Roles:         r.Roles.clone(),
	}
}

// Policy maps index names to their ordered rule lists.
type Policy struct {
	IndexRules map[string][]Rule `json:"indices" yaml:"indices"`
}

// Indices returns the index names in sorted order.
func (p Policy) Indices() []string {
	names := make([]string, 0, len(p.IndexRules))
	for name := range p.IndexRules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Rules returns a copy of the rules declared for index. There is no fallback
// to _default here; that choice belongs to whoever enforces the policy.
func (p Policy) Rules(index string) ([]Rule, bool) {
	rules, ok := p.IndexRules[index]
	if !ok {
		return nil, false
	}
	return cloneRules(rules), true
}

// Equal compares two policies index by index. Rule order matters.
func (p Policy) Equal(other Policy) bool {
	if len(p.IndexRules) != len(other.IndexRules) {
		return false
	}
	for name, rules := range p.IndexRules {
		otherRules, ok := other.IndexRules[name]
		if !ok || len(rules) != len(otherRules) {
			return false
		}
		for i := range rules {
			if !rules[i].Equal(otherRules[i]) {
				return false
			}
		}
	}
	return true
}

func (p Policy) clone() Policy {
	indices := make(map[string][]Rule, len(p.IndexRules))
	for name, rules := range p.IndexRules {
		indices[name] = cloneRules(rules)
	}
	return Policy{IndexRules: indices}
}

func cloneRules(rules []Rule) []Rule {
	out := make([]Rule, len(rules))
	for i, r := range rules {
		out[i] = r.clone()
	}
	return out
}
