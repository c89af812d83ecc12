package environment

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParse(t *testing.T) {
	type testcase struct {
		name    string
		raw     string
		want    Env
		wantErr bool
	}

	tests := [...]testcase{
		{name: "dev", raw: "dev", want: Development},
		{name: "prod", raw: "prod", want: Production},
		{name: "unknown", raw: "staging", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.Equal(t, tt.raw, got.String())
		})
	}
}

func TestEnv_UnmarshalYAML(t *testing.T) {
	var cfg struct {
		Environment Env `yaml:"environment"`
	}

	require.NoError(t, yaml.Unmarshal([]byte("environment: prod"), &cfg))
	require.Equal(t, Production, cfg.Environment)

	require.Error(t, yaml.Unmarshal([]byte("environment: staging"), &cfg))
}
