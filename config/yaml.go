package config

import (
	"io/ioutil"

	"github.com/lyraproj/dgo/dgo"
	"github.com/lyraproj/dgoyaml/yaml"
	"github.com/lyraproj/confres/api"
)

// FromYaml creates a flat configuration from the given YAML text. The text must describe a
// hash. The source argument is only used in error messages. A panic is raised when the text
// cannot be parsed or does not describe a hash.
func FromYaml(content []byte, source string) api.Configuration {
	yv, err := yaml.Unmarshal(content)
	if err != nil {
		panic(err)
	}
	m, ok := yv.(dgo.Map)
	if !ok {
		panic(api.YamlNotHash(source))
	}
	return FlatFromMap(m)
}

// FromYamlFile creates a flat configuration from the YAML hash contained in the given file
func FromYamlFile(path string) api.Configuration {
	content, err := ioutil.ReadFile(path)
	if err != nil {
		panic(err)
	}
	return FromYaml(content, path)
}
