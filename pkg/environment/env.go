package environment

import "github.com/hireloop/slotd/pkg/errors"

type Env int

const (
	Development Env = iota + 1
	Production
)

// Parse maps the config spelling of an environment to its Env.
func Parse(raw string) (Env, error) {
	switch raw {
	case "dev":
		return Development, nil
	case "prod":
		return Production, nil
	}
	return 0, errors.Errorf("unknown environment %q", raw)
}

func (e Env) String() string {
	if e == Production {
		return "prod"
	}
	return "dev"
}

func (e *Env) UnmarshalYAML(unmarshal func(any) error) error {
	var raw string

	err := unmarshal(&raw)
	if err != nil {
		return err
	}

	parsed, err := Parse(raw)
	if err != nil {
		return err
	}

	*e = parsed
	return nil
}
