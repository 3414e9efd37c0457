package cli

import (
	"io/ioutil"

	"github.com/lyraproj/confres/confres"
	"gopkg.in/yaml.v3"
)

// settings holds defaults for the locate command flags, read from a YAML file. A flag given
// on the command line takes precedence over the corresponding settings entry.
type settings struct {
	Base     string   `yaml:"base"`
	Home     string   `yaml:"home"`
	Roots    []string `yaml:"roots"`
	RenderAs string   `yaml:"render-as"`
}

func readSettings(path string) (*settings, error) {
	bs, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s := &settings{}
	if err = yaml.Unmarshal(bs, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *settings) applyTo(opts *confres.CommandOptions) {
	if opts.Base == `` {
		opts.Base = s.Base
	}
	if opts.Home == `` {
		opts.Home = s.Home
	}
	if len(opts.Roots) == 0 {
		opts.Roots = s.Roots
	}
	if opts.RenderAs == `` {
		opts.RenderAs = s.RenderAs
	}
}
