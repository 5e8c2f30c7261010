// Package config is for app wide settings that are unmarshalled
// from Viper: an optional settings file, overridden by command
// line arguments
package config

import (
	"fmt"

	"github.com/feliixx/gosplice/composition"
	"github.com/spf13/viper"
)

// Settings keys
const (
	GeneKey         = "inputs.gene"
	ExonsKey        = "inputs.exons"
	CodeKey         = "inputs.code"
	TableKey        = "inputs.table"
	StopKey         = "inputs.stop-sentinel"
	OutDirKey       = "out-dir"
	PositionKey     = "mutation.position"
	BaseKey         = "mutation.base"
	CategoriesKey   = "categories"
	defaultPosition = 30049
)

// InputConfig locates the input files
type InputConfig struct {
	// path to the raw gene sequence
	Gene string `mapstructure:"gene"`

	// path to the exon intervals
	Exons string `mapstructure:"exons"`

	// path to the codon table. If empty, the NCBI
	// table Table is used
	Code string `mapstructure:"code"`

	// NCBI genetic code
	Table int `mapstructure:"table"`

	// AA code marking a stop codon in the codon table file
	StopSentinel string `mapstructure:"stop-sentinel"`
}

// MutationConfig is the point mutation to evaluate
type MutationConfig struct {
	// 0-based index in the raw DNA. Out of range positions
	// leave the sequence unchanged
	Position int `mapstructure:"position"`

	// replacement base
	Base string `mapstructure:"base"`
}

// Config is the root-level settings struct. It is built once
// and passed by value afterwards
type Config struct {
	Inputs     InputConfig            `mapstructure:"inputs"`
	OutDir     string                 `mapstructure:"out-dir"`
	Mutation   MutationConfig         `mapstructure:"mutation"`
	Categories []composition.Category `mapstructure:"categories"`
}

// Stop returns the stop sentinel as a byte
func (c Config) Stop() byte {
	return c.Inputs.StopSentinel[0]
}

// Base returns the mutation base as a byte
func (c Config) Base() byte {
	return c.Mutation.Base[0]
}

func setDefaults(v *viper.Viper) {

	v.SetDefault(GeneKey, "inputs/gene_sequence.txt")
	v.SetDefault(ExonsKey, "inputs/exon_positions.txt")
	v.SetDefault(CodeKey, "inputs/code.txt")
	v.SetDefault(TableKey, 0)
	v.SetDefault(StopKey, "X")
	v.SetDefault(OutDirKey, "figures")
	v.SetDefault(PositionKey, defaultPosition)
	v.SetDefault(BaseKey, "A")

	categories := make([]map[string]interface{}, 0, len(composition.DefaultCategories))
	for _, cat := range composition.DefaultCategories {
		categories = append(categories, map[string]interface{}{
			"name":    cat.Name,
			"members": cat.Members,
		})
	}
	v.SetDefault(CategoriesKey, categories)
}

// NewConfig returns a new Config populated from the settings file
// (skipped if empty) and the overrides, keyed by settings keys
func NewConfig(settings string, overrides map[string]interface{}) (Config, error) {

	var c Config

	v := viper.New()
	setDefaults(v)

	if settings != "" {
		v.SetConfigFile(settings)
		if err := v.ReadInConfig(); err != nil {
			return c, fmt.Errorf("fail to read settings file: %w", err)
		}
	}
	for key, value := range overrides {
		v.Set(key, value)
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("unable to decode settings: %w", err)
	}
	return c, c.validate()
}

func (c Config) validate() error {

	if len(c.Inputs.StopSentinel) != 1 {
		return fmt.Errorf("stop sentinel must be a single character, got %q", c.Inputs.StopSentinel)
	}
	if len(c.Mutation.Base) != 1 {
		return fmt.Errorf("mutation base must be a single character, got %q", c.Mutation.Base)
	}
	if len(c.Categories) == 0 {
		return fmt.Errorf("at least one AA category is required")
	}
	for _, cat := range c.Categories {
		if cat.Name == "" {
			return fmt.Errorf("AA category without a name")
		}
	}
	return nil
}
