package winapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchName(t *testing.T) {
	cases := []struct {
		image, name string
		want        bool
	}{
		{"Code.exe", "Code", true},
		{"code.EXE", "Code", true},
		{"Code.exe", "code.exe", true},
		{"Code", "Code", true},
		{"CodeHelper.exe", "Code", false},
		{"Code.exe", "", false},
		{".exe", ".exe", true},
		{"notepad.exe", "Code", false},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, matchName(c.image, c.name), "%q vs %q", c.image, c.name)
	}
}

func TestFindProcessesUnknownName(t *testing.T) {
	d := &Desktop{}
	procs, err := d.FindProcesses("no-such-process-3f1c9e")
	assert.NoError(t, err)
	assert.Empty(t, procs)
}
