package config

import (
	"os"

	"paymaker/internal/customize"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Preset is the YAML form of a starting snapshot. Absent keys keep the defaults.
//
//	title: Coffee Corner
//	checks:
//	  - label: Compliance Check
//	    link: https://example.com/compliance
//	darkMode: false
type Preset struct {
	Title          *string                    `yaml:"title"`
	Recipient      *string                    `yaml:"recipient"`
	Checks         *[]customize.Check         `yaml:"checks"`
	ButtonText     *string                    `yaml:"buttonText"`
	PictureSquares *[]customize.PictureSquare `yaml:"pictureSquares"`
	DarkMode       *bool                      `yaml:"darkMode"`
	ShowPoints     *bool                      `yaml:"showPoints"`
}

// Apply overlays the preset onto base.
func (p Preset) Apply(base customize.State) customize.State {
	s := base.Clone()
	if p.Title != nil {
		s.Title = *p.Title
	}
	if p.Recipient != nil {
		s.Recipient = *p.Recipient
	}
	if p.Checks != nil {
		s.Checks = *p.Checks
	}
	if p.ButtonText != nil {
		s.ButtonText = *p.ButtonText
	}
	if p.PictureSquares != nil {
		s.PictureSquares = *p.PictureSquares
	}
	if p.DarkMode != nil {
		s.DarkMode = *p.DarkMode
	}
	if p.ShowPoints != nil {
		s.ShowPoints = *p.ShowPoints
	}
	return s
}

// ParsePreset decodes YAML into a Preset.
func ParsePreset(data []byte) (Preset, error) {
	var p Preset
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Preset{}, errors.Wrap(err, "parse preset")
	}
	return p, nil
}

// LoadInitialState returns the default snapshot with the preset at path
// applied. An empty path yields the default snapshot.
func LoadInitialState(path string) (customize.State, error) {
	base := customize.Default()
	if path == "" {
		return base, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return base, errors.Wrapf(err, "read preset %s", path)
	}
	p, err := ParsePreset(data)
	if err != nil {
		return base, errors.Wrapf(err, "preset %s", path)
	}
	return p.Apply(base), nil
}
