package repo

import "time"

type Config struct {
	URL     string        `yaml:"url"`
	Timeout time.Duration `yaml:"timeout"`

	Database string `yaml:"database"`

	Sources struct {
		Interviews DataSource `yaml:"interviews"`
		Jobs       DataSource `yaml:"jobs"`
	} `yaml:"sources"`

	Auth struct {
		Username string `yaml:"username"`
		Password string `yaml:"password"`
	} `yaml:"auth"`
}

type DataSource string
