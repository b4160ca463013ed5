package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "separate value",
			args:    []string{"-c", "conf.json", "-a", "localhost"},
			allowed: []string{"-c"},
			want:    []string{"-c", "conf.json"},
		},
		{
			name:    "equals form",
			args:    []string{"-config=alt.json", "-a", "localhost"},
			allowed: []string{"-c", "-config"},
			want:    []string{"-config=alt.json"},
		},
		{
			name:    "flag followed by another flag has no value",
			args:    []string{"-v", "-s", "secret"},
			allowed: []string{"-v", "-s"},
			want:    []string{"-v", "-s", "secret"},
		},
		{
			name:    "nothing allowed",
			args:    []string{"-a", "x"},
			allowed: nil,
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowed))
		})
	}
}

func TestConfigFileFlag(t *testing.T) {
	orig := os.Args
	t.Cleanup(func() { os.Args = orig })

	os.Args = []string{"bin", "-p", "3001", "-c", "auth.json"}
	assert.Equal(t, "auth.json", ConfigFileFlag())

	os.Args = []string{"bin", "-config=gw.json"}
	assert.Equal(t, "gw.json", ConfigFileFlag())

	os.Args = []string{"bin", "-p", "3001"}
	assert.Equal(t, "", ConfigFileFlag())
}
