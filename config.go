package weave

import (
	"fmt"

	gojson "github.com/goccy/go-json"
	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"
)

// Config is the declarative description of a tag set: every tag the
// registry should recognize, with its delimiters, flags, per-format codec
// references, and validator references.
//
// The same structure loads from JSON and from YAML:
//
//	{
//	  "tags": [
//	    {
//	      "start": "[b]",
//	      "end": "[/b]",
//	      "name": "bold",
//	      "codecs": {
//	        "html": {
//	          "encoder": "bbcode-html-bold-encoder",
//	          "decoder": "bbcode-html-bold-decoder"
//	        }
//	      },
//	      "validators": ["balanced-validator"]
//	    }
//	  ]
//	}
type Config struct {
	Tags []TagConfig `json:"tags" yaml:"tags"`
}

// TagConfig describes one tag before resolution: raw delimiters and flags
// for the Tag itself, plus the capability references the registry resolves
// into its validator and per-format codecs.
type TagConfig struct {
	Start             string                 `json:"start" yaml:"start"`
	End               string                 `json:"end,omitempty" yaml:"end,omitempty"`
	Name              string                 `json:"name,omitempty" yaml:"name,omitempty"`
	Description       string                 `json:"description,omitempty" yaml:"description,omitempty"`
	SelfClosing       bool                   `json:"self_closing,omitempty" yaml:"self_closing,omitempty"`
	AllowsChildren    *bool                  `json:"allows_children,omitempty" yaml:"allows_children,omitempty"`
	AllowsSelfNesting bool                   `json:"allows_self_nesting,omitempty" yaml:"allows_self_nesting,omitempty"`
	Codecs            map[string]CodecConfig `json:"codecs,omitempty" yaml:"codecs,omitempty"`
	Validators        []string               `json:"validators,omitempty" yaml:"validators,omitempty"`
}

// CodecConfig names the encoder and optional decoder references for one
// target format.
type CodecConfig struct {
	Encoder string `json:"encoder" yaml:"encoder"`
	Decoder string `json:"decoder,omitempty" yaml:"decoder,omitempty"`
}

// ConfigFromJSON unmarshals a JSON configuration document.
func ConfigFromJSON(data []byte) (Config, error) {
	var cfg Config
	if err := gojson.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing json tag configuration: %w", err)
	}
	return cfg, nil
}

// ConfigFromYAML unmarshals a YAML configuration document.
func ConfigFromYAML(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing yaml tag configuration: %w", err)
	}
	return cfg, nil
}

// ParseConfig loads a configuration from raw bytes, accepting either JSON
// or YAML. Bytes that form a valid JSON document with a "tags" array take
// the JSON path; everything else is treated as YAML, which also covers
// JSON documents that only differ in shape.
func ParseConfig(data []byte) (Config, error) {
	if gjson.ValidBytes(data) && gjson.GetBytes(data, "tags").IsArray() {
		return ConfigFromJSON(data)
	}
	return ConfigFromYAML(data)
}
