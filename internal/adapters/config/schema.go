package config

// Settingsfile represents the structure of the blackcheck.yaml settings file.
// Every field is optional; unset fields keep their defaults.
type Settingsfile struct {
	Formatter     []string `yaml:"formatter"`
	Extensions    []string `yaml:"extensions"`
	NoRecurseDirs []string `yaml:"norecursedirs"`
	CacheDir      string   `yaml:"cacheDir"`
}

// Pyproject represents the part of pyproject.toml read by blackcheck.
type Pyproject struct {
	Tool struct {
		Black *BlackTable `toml:"black"`
	} `toml:"tool"`
}

// BlackTable is the [tool.black] table.
type BlackTable struct {
	Include *string `toml:"include"`
	Exclude *string `toml:"exclude"`
}
