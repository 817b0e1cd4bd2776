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
			name:    "separate values",
			args:    []string{"-a", ":8080", "-x", "1", "-d", "dsn"},
			allowed: []string{"-a", "-d"},
			want:    []string{"-a", ":8080", "-d", "dsn"},
		},
		{
			name:    "equals form",
			args:    []string{"-a=:8080", "-x=1"},
			allowed: []string{"-a"},
			want:    []string{"-a=:8080"},
		},
		{
			name:    "double dash matches single dash",
			args:    []string{"--config", "cfg.json", "--config=other.json"},
			allowed: []string{"-config"},
			want:    []string{"--config", "cfg.json", "--config=other.json"},
		},
		{
			name:    "flag without value",
			args:    []string{"-v", "-a", "x"},
			allowed: []string{"-v"},
			want:    []string{"-v"},
		},
		{
			name:    "nothing allowed",
			args:    []string{"-a", "1"},
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

func TestJsonConfigFlags(t *testing.T) {
	orig := os.Args
	t.Cleanup(func() { os.Args = orig })

	os.Args = []string{"bin", "-a", ":1", "-c", "conf.json"}
	assert.Equal(t, "conf.json", JsonConfigFlags())

	os.Args = []string{"bin", "-config=other.json"}
	assert.Equal(t, "other.json", JsonConfigFlags())

	os.Args = []string{"bin", "-a", ":1"}
	assert.Equal(t, "", JsonConfigFlags())
}
