// Package winapi talks to the Windows desktop: it finds processes by image
// name, resolves their main windows and edits layered-window attributes.
package winapi

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shirou/gopsutil/v3/process"
	"github.com/shu-go/rog"

	"github.com/shu-go/opac/opacity"
)

var ErrUnsupported = errors.New("layered windows are only available on Windows")

// FindProcesses lists live processes whose image name is name, ignoring
// case and an ".exe" suffix.
func (d *Desktop) FindProcesses(name string) ([]opacity.Process, error) {
	procs, err := process.Processes()
	if err != nil {
		return nil, fmt.Errorf("enumerate processes: %w", err)
	}

	var found []opacity.Process
	for _, p := range procs {
		pname, err := p.Name()
		if err != nil {
			// exited or not ours to read
			continue
		}
		if matchName(pname, name) {
			rog.Debug("found ", pname, "(", p.Pid, ")")
			found = append(found, opacity.Process{PID: p.Pid, Name: pname})
		}
	}
	return found, nil
}

func matchName(image, name string) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}
	return strings.EqualFold(trimExe(image), trimExe(name))
}

func trimExe(s string) string {
	if len(s) > 4 && strings.EqualFold(s[len(s)-4:], ".exe") {
		return s[:len(s)-4]
	}
	return s
}
