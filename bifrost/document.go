// Package bifrost parses the per-sample YAML result documents that the
// Bifrost pipeline leaves in each sample directory, one file per analysis
// tool, and normalizes them into tables.
package bifrost

import (
	"fmt"
	"os"
	"strconv"

	"github.com/carbocation/pfx"
	"gopkg.in/yaml.v3"
)

// Document is one parsed result file. Bifrost exports come out of MongoDB
// and carry !bson.objectid.ObjectId tags; scalars with tags we do not
// recognize are kept as plain strings.
type Document struct {
	Status  string
	Sample  string
	Summary map[string]interface{}
	Results map[string]interface{}
}

// Success reports whether the pipeline component completed for this sample.
func (d *Document) Success() bool {
	return d.Status == "Success"
}

// Load reads and parses one result document from disk.
func Load(path string) (*Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, pfx.Err(err)
	}
	return Parse(raw)
}

// Parse decodes a result document from raw YAML.
func Parse(raw []byte) (*Document, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(raw, &root); err != nil {
		return nil, pfx.Err(err)
	}

	doc, ok := decodeNode(&root).(map[string]interface{})
	if !ok {
		return nil, pfx.Err(fmt.Errorf("result document is not a mapping"))
	}

	out := &Document{}
	out.Status, _ = doc["status"].(string)
	if sample, ok := doc["sample"].(map[string]interface{}); ok {
		out.Sample, _ = sample["name"].(string)
	}
	out.Summary, _ = doc["summary"].(map[string]interface{})
	out.Results, _ = doc["results"].(map[string]interface{})

	return out, nil
}

// decodeNode converts a YAML node tree into plain Go values. Unlike a
// straight yaml.Unmarshal into interface{}, application-specific tags such
// as !bson.objectid.ObjectId decode to their scalar text instead of
// failing the whole document.
func decodeNode(n *yaml.Node) interface{} {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil
		}
		return decodeNode(n.Content[0])
	case yaml.MappingNode:
		out := make(map[string]interface{}, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			out[n.Content[i].Value] = decodeNode(n.Content[i+1])
		}
		return out
	case yaml.SequenceNode:
		out := make([]interface{}, 0, len(n.Content))
		for _, c := range n.Content {
			out = append(out, decodeNode(c))
		}
		return out
	case yaml.AliasNode:
		return decodeNode(n.Alias)
	case yaml.ScalarNode:
		switch n.Tag {
		case "!!int":
			if v, err := strconv.ParseInt(n.Value, 10, 64); err == nil {
				return v
			}
		case "!!float":
			if v, err := strconv.ParseFloat(n.Value, 64); err == nil {
				return v
			}
		case "!!bool":
			if v, err := strconv.ParseBool(n.Value); err == nil {
				return v
			}
		case "!!null":
			return nil
		}
		return n.Value
	}
	return nil
}

// ParseError reports a result document whose payload did not match the
// schema expected for its analysis type. The affected sample is dropped for
// that analysis; the run continues.
type ParseError struct {
	Analysis string
	Sample   string
	Err      error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: sample %q: %v", e.Analysis, e.Sample, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// cellString renders a decoded YAML value the way the upstream reports
// print it.
func cellString(v interface{}) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	}
	return fmt.Sprintf("%v", v)
}

// intString coerces a decoded YAML value to an integer string, falling back
// to 0 the way the upstream reports fill absent percentages.
func intString(v interface{}) string {
	switch v := v.(type) {
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatInt(int64(v), 10)
	case string:
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return strconv.FormatInt(int64(f), 10)
		}
	}
	return "0"
}

func asFloat(v interface{}) (float64, bool) {
	switch v := v.(type) {
	case int64:
		return float64(v), true
	case float64:
		return v, true
	}
	return 0, false
}
