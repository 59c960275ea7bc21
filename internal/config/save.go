package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SaveKeywords updates the keywords list in the config file. Comments
// and formatting in other sections are preserved by editing the
// yaml.Node tree instead of re-marshalling the whole document.
func SaveKeywords(configPath string, kws []string) error {
	return saveSequence(configPath, "keywords", kws, false)
}

// SaveColors updates the palette in the config file, preserving the
// rest of the document.
func SaveColors(configPath string, colors []string) error {
	return saveSequence(configPath, "colors", colors, true)
}

func saveSequence(configPath, key string, values []string, quoted bool) error {
	data, err := os.ReadFile(configPath)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("reading config: %w", err)
	}

	var doc yaml.Node
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("parsing config: %w", err)
		}
	}

	seq := buildSequenceNode(values, quoted)

	if doc.Kind == 0 {
		// Empty or missing file. Create the document structure.
		doc = yaml.Node{
			Kind: yaml.DocumentNode,
			Content: []*yaml.Node{
				{
					Kind: yaml.MappingNode,
					Content: []*yaml.Node{
						{Kind: yaml.ScalarNode, Value: key},
						seq,
					},
				},
			},
		}
	} else if doc.Kind == yaml.DocumentNode && len(doc.Content) > 0 {
		root := doc.Content[0]
		if root.Kind == yaml.MappingNode {
			found := false
			for i := 0; i < len(root.Content)-1; i += 2 {
				if root.Content[i].Value == key {
					root.Content[i+1] = seq
					found = true
					break
				}
			}
			if !found {
				root.Content = append(root.Content,
					&yaml.Node{Kind: yaml.ScalarNode, Value: key}, seq)
			}
		}
	}

	out, err := yaml.Marshal(&doc)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}

	if err := os.WriteFile(configPath, out, 0o600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

func buildSequenceNode(values []string, quoted bool) *yaml.Node {
	seq := &yaml.Node{Kind: yaml.SequenceNode}
	for _, v := range values {
		node := &yaml.Node{Kind: yaml.ScalarNode, Value: v}
		if quoted {
			// Hex colors start with '#'; unquoted they parse as comments.
			node.Style = yaml.DoubleQuotedStyle
		}
		seq.Content = append(seq.Content, node)
	}
	return seq
}
