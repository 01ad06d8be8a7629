package admin

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadPassword_FromPipe(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "newline terminated", input: "s3cret-pass\n", want: "s3cret-pass"},
		{name: "crlf", input: "s3cret-pass\r\n", want: "s3cret-pass"},
		{name: "no newline", input: "s3cret-pass", want: "s3cret-pass"},
		{name: "only first line", input: "one\ntwo\n", want: "one"},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var prompt bytes.Buffer
			got, err := readPassword(strings.NewReader(tt.input), &prompt)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Empty(t, prompt.String(), "no prompt when stdin is not a terminal")
		})
	}
}

func TestNewCommand_RequiresUsername(t *testing.T) {
	cmd := NewCommand()
	cmd.SetArgs([]string{"create-user"})
	cmd.SetIn(strings.NewReader("s3cret-pass\n"))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "username")
}
