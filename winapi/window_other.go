//go:build !windows

package winapi

import "github.com/shu-go/opac/opacity"

type Desktop struct{}

func Open() (*Desktop, error) {
	return nil, ErrUnsupported
}

func (d *Desktop) MainWindow(p opacity.Process) (opacity.Handle, error) {
	return 0, ErrUnsupported
}

func (d *Desktop) ExStyle(h opacity.Handle) (uint32, error) {
	return 0, ErrUnsupported
}

func (d *Desktop) SetExStyle(h opacity.Handle, style uint32) error {
	return ErrUnsupported
}

func (d *Desktop) SetLayeredAlpha(h opacity.Handle, alpha uint8) error {
	return ErrUnsupported
}

func (d *Desktop) LayeredAlpha(h opacity.Handle) (uint8, bool, error) {
	return 0, false, ErrUnsupported
}
