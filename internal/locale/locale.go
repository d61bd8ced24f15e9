// Package locale loads per-language dictionaries from JSON, TOML or YAML
// files. Nested objects are flattened into dotted keys so that
// {"hero": {"title": "x"}} and {"hero.title": "x"} produce the same
// dictionary.
package locale

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"
)

// Dictionary maps a placeholder key to its display string.
type Dictionary map[string]string

// TitleKey is the dictionary key used for the page <title>.
const TitleKey = "title"

type Format string

const (
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported locale format")
	ErrMalformed         = errors.New("malformed locale file")
)

type FileReader interface {
	ReadFile(path string) ([]byte, error)
}

func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
}

// Load reads and parses the locale file at path.
func Load(fs FileReader, path string) (Dictionary, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}

	data, err := fs.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return Parse(data, format)
}

func Parse(data []byte, format Format) (Dictionary, error) {
	switch format {
	case FormatJSON:
		return parseJSON(data)
	case FormatTOML:
		var raw map[string]any
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		return flattenMap(raw), nil
	case FormatYAML:
		var raw map[string]any
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		return flattenMap(raw), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
}

func parseJSON(data []byte) (Dictionary, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: invalid JSON", ErrMalformed)
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, fmt.Errorf("%w: top level must be an object", ErrMalformed)
	}

	dict := make(Dictionary)
	flattenJSON(dict, "", root)
	return dict, nil
}

func flattenJSON(dict Dictionary, prefix string, value gjson.Result) {
	if value.IsObject() || value.IsArray() {
		index := 0
		value.ForEach(func(key, child gjson.Result) bool {
			name := key.String()
			if value.IsArray() {
				name = strconv.Itoa(index)
				index++
			}
			flattenJSON(dict, joinKey(prefix, name), child)
			return true
		})
		return
	}

	switch value.Type {
	case gjson.Null:
		return
	case gjson.String:
		dict[prefix] = value.Str
	default:
		dict[prefix] = value.Raw
	}
}

func flattenMap(raw map[string]any) Dictionary {
	dict := make(Dictionary)
	for key, value := range raw {
		flattenValue(dict, key, value)
	}
	return dict
}

func flattenValue(dict Dictionary, key string, value any) {
	switch v := value.(type) {
	case nil:
		return
	case map[string]any:
		for k, child := range v {
			flattenValue(dict, joinKey(key, k), child)
		}
	case map[any]any:
		for k, child := range v {
			flattenValue(dict, joinKey(key, fmt.Sprint(k)), child)
		}
	case []any:
		for i, child := range v {
			flattenValue(dict, joinKey(key, strconv.Itoa(i)), child)
		}
	case string:
		dict[key] = v
	case bool:
		dict[key] = strconv.FormatBool(v)
	case int:
		dict[key] = strconv.Itoa(v)
	case int64:
		dict[key] = strconv.FormatInt(v, 10)
	case float64:
		dict[key] = strconv.FormatFloat(v, 'f', -1, 64)
	case time.Time:
		dict[key] = v.Format(time.RFC3339)
	default:
		dict[key] = fmt.Sprint(v)
	}
}

func joinKey(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}

// Title returns the dictionary's title, or the literal {title} placeholder
// when the dictionary has none.
func (d Dictionary) Title() string {
	if title, ok := d[TitleKey]; ok {
		return title
	}
	return "{" + TitleKey + "}"
}

