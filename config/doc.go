// Package config loads bfsviz settings from YAML or TOML, validates them and
// watches the file for edits.
//
// The format follows the file extension: .yaml/.yml through gopkg.in/yaml.v3,
// .toml through BurntSushi/toml. Decoding starts from Default(), so a file
// only needs the keys it changes.
package config
