package validator

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/arcanaland/carddeck/internal/card"
	"github.com/arcanaland/carddeck/internal/config"
	"github.com/arcanaland/carddeck/internal/deck"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

// Validator checks a config or presets TOML file.
type Validator struct {
	Path    string
	Results ValidationResults

	config *config.Config
}

func NewValidator(path string) *Validator {
	return &Validator{
		Path:    path,
		Results: ValidationResults{},
	}
}

func (v *Validator) Validate() (ValidationResults, error) {
	if err := v.validateToml(); err != nil {
		return v.Results, err
	}

	v.validateDefaultPreset()
	for _, name := range v.config.PresetNames() {
		v.validatePreset(name, v.config.Presets[name])
	}

	return v.Results, nil
}

func (v *Validator) errorf(format string, args ...any) {
	v.Results.Errors = append(v.Results.Errors, fmt.Sprintf(format, args...))
}

func (v *Validator) warnf(format string, args ...any) {
	v.Results.Warnings = append(v.Results.Warnings, fmt.Sprintf(format, args...))
}

// validateToml decodes the file and warns about keys nothing reads
func (v *Validator) validateToml() error {
	if _, err := os.Stat(v.Path); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", v.Path)
	}

	var cfg config.Config
	meta, err := toml.DecodeFile(v.Path, &cfg)
	if err != nil {
		return fmt.Errorf("error parsing %s: %v", v.Path, err)
	}
	if cfg.Presets == nil {
		cfg.Presets = map[string]*config.Preset{}
	}
	v.config = &cfg

	for _, key := range meta.Undecoded() {
		v.warnf("unknown key %s", key.String())
	}

	if len(cfg.Presets) == 0 {
		v.Results.Errors = append(v.Results.Errors, "no presets defined")
	}

	return nil
}

// validateDefaultPreset checks that default_preset names a defined preset
func (v *Validator) validateDefaultPreset() {
	if v.config.DefaultPreset == "" {
		return
	}
	if _, ok := v.config.Presets[v.config.DefaultPreset]; !ok {
		v.errorf("default_preset %q is not defined", v.config.DefaultPreset)
	}
}

// validatePreset checks field values, then builds the deck to catch
// combinations that only fail together
func (v *Validator) validatePreset(name string, p *config.Preset) {
	if p == nil {
		return
	}
	before := len(v.Results.Errors)

	if p.StartingRank != "" {
		if _, err := card.ParseRank(p.StartingRank); err != nil {
			v.errorf("presets.%s.starting_rank: %v", name, err)
		}
	}

	for _, s := range p.Suits {
		suit, err := card.ParseSuit(s)
		if err != nil {
			v.errorf("presets.%s.suits: %v", name, err)
		} else if suit == card.JokerSuit {
			v.errorf("presets.%s.suits: use the jokers key to add jokers", name)
		}
	}

	for _, r := range p.Ranks {
		rank, err := card.ParseRank(r)
		if err != nil {
			v.errorf("presets.%s.ranks: %v", name, err)
		} else if rank == card.Joker {
			v.errorf("presets.%s.ranks: use the jokers key to add jokers", name)
		}
	}

	if p.Jokers != nil && (*p.Jokers < deck.MinJokers || *p.Jokers > deck.MaxJokers) {
		v.errorf("presets.%s.jokers: %d is outside %d-%d", name, *p.Jokers, deck.MinJokers, deck.MaxJokers)
	}

	if p.Decks < 0 || p.Decks > config.MaxExtraDecks {
		v.errorf("presets.%s.decks: %d is outside 0-%d", name, p.Decks, config.MaxExtraDecks)
	}

	if p.StartingRank != "" && (len(p.Suits) > 0 || len(p.Ranks) > 0) {
		v.warnf("presets.%s: starting_rank replaces the suits/ranks filter", name)
	}

	if p.Seed != nil && !p.Shuffle {
		v.warnf("presets.%s: seed has no effect without shuffle", name)
	}

	if len(v.Results.Errors) > before {
		return
	}

	d, err := p.NewDeck(nil)
	if err != nil {
		v.errorf("presets.%s: %s", name, strings.TrimPrefix(err.Error(), card.ErrInvalidArgument.Error()+": "))
		return
	}
	if d.Size() == 0 {
		v.warnf("presets.%s: selects no cards", name)
	}
}
