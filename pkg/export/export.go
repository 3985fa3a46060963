// Package export projects an ini.Cache into plain document structs and
// renders them as YAML or JSON, preserving section and key order.
package export

import (
	"encoding/json"

	"sigs.k8s.io/yaml"

	"inicache/pkg/ini"
)

// Section is one cache section in document form.
type Section struct {
	Name string `json:"name"`
	Keys []Key  `json:"keys,omitempty"`
}

// Key is one name/value entry in document form.
type Key struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Snapshot copies the cache's current contents into document structs.
// The result is detached: later cache mutations do not affect it.
func Snapshot(c *ini.Cache) []Section {
	sections := c.Sections()
	out := make([]Section, 0, len(sections))
	for _, s := range sections {
		doc := Section{Name: s.Name()}
		name, value, it, ok := s.FirstValue()
		for ok {
			doc.Keys = append(doc.Keys, Key{Name: name, Value: value})
			name, value, ok = it.NextValue()
		}
		if it != nil {
			it.Close()
		}
		out = append(out, doc)
	}
	return out
}

// YAML renders the cache as a YAML document.
func YAML(c *ini.Cache) ([]byte, error) {
	return yaml.Marshal(Snapshot(c))
}

// JSON renders the cache as indented JSON.
func JSON(c *ini.Cache) ([]byte, error) {
	return json.MarshalIndent(Snapshot(c), "", "  ")
}
