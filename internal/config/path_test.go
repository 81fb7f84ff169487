package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	t.Setenv("MONEYMAN_TEST_DIR", "/data")

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty stays empty", in: "", want: ""},
		{name: "absolute passes through", in: "/var/lib/db", want: "/var/lib/db"},
		{name: "tilde prefix", in: "~/ledger.db", want: filepath.Join(home, "ledger.db")},
		{name: "bare tilde", in: "~", want: home},
		{name: "env var", in: "$MONEYMAN_TEST_DIR/ledger.db", want: "/data/ledger.db"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandPath(tt.in))
		})
	}
}
