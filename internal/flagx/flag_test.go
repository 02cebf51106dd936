package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOwned_Filter(t *testing.T) {
	tests := []struct {
		name  string
		owned Owned
		args  []string
		want  []string
	}{
		{
			name:  "short flag with separate value",
			owned: Owned{Value: []string{"-c"}},
			args:  []string{"-c", "conf.json", "-a", "localhost"},
			want:  []string{"-c", "conf.json"},
		},
		{
			name:  "long form matches short declaration",
			owned: Owned{Value: []string{"-config"}},
			args:  []string{"--config=alt.json", "-a", "localhost"},
			want:  []string{"--config=alt.json"},
		},
		{
			name:  "unknown flags and positionals ignored",
			owned: Owned{Value: []string{"-c"}},
			args:  []string{"-x", "1", "--y=2", "positional"},
			want:  []string{},
		},
		{
			name:  "value flag at the end kept without value",
			owned: Owned{Value: []string{"-c"}},
			args:  []string{"-c"},
			want:  []string{"-c"},
		},
		{
			name:  "next dash token is not a value",
			owned: Owned{Value: []string{"-c"}},
			args:  []string{"-c", "-notvalue"},
			want:  []string{"-c"},
		},
		{
			name:  "bool flag does not swallow the next token",
			owned: Owned{Value: []string{"-d"}, Bool: []string{"-purge-notes"}},
			args:  []string{"-purge-notes", "stray", "-d", "notes.db"},
			want:  []string{"-purge-notes", "-d", "notes.db"},
		},
		{
			name:  "bool flag with explicit value",
			owned: Owned{Bool: []string{"-purge-notes"}},
			args:  []string{"-purge-notes=false"},
			want:  []string{"-purge-notes=false"},
		},
		{
			name:  "empty args",
			owned: Owned{Value: []string{"-c"}},
			args:  []string{},
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.owned.Filter(tt.args))
		})
	}
}

func TestFilterArgs_KeepsOrder(t *testing.T) {
	got := FilterArgs([]string{"-a", "localhost:8080", "-c", "conf.json", "--other", "x"}, []string{"-c", "-a"})
	assert.Equal(t, []string{"-a", "localhost:8080", "-c", "conf.json"}, got)
}

func TestConfigPath(t *testing.T) {
	assert.Equal(t, "conf.json", ConfigPath([]string{"-a", "x", "-c", "conf.json"}))
	assert.Equal(t, "alt.json", ConfigPath([]string{"-config=alt.json"}))
	assert.Equal(t, "", ConfigPath([]string{"-a", "x"}))
}
