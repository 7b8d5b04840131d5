//go:build windows

package winapi

import (
	"errors"
	"fmt"
	"runtime"
	"unsafe"

	"github.com/lxn/win"
	"golang.org/x/sys/windows"

	"github.com/shu-go/opac/opacity"
)

const (
	LWA_COLORKEY = 0x1
	LWA_ALPHA    = 0x2
)

var (
	user32   = windows.NewLazySystemDLL("user32.dll")
	kernel32 = windows.NewLazySystemDLL("kernel32.dll")

	enumWindows                = user32.NewProc("EnumWindows")
	isWindow                   = user32.NewProc("IsWindow")
	getWindowLong              = user32.NewProc("GetWindowLongW")
	setWindowLong              = user32.NewProc("SetWindowLongW")
	getLayeredWindowAttributes = user32.NewProc("GetLayeredWindowAttributes")
	setLayeredWindowAttributes = user32.NewProc("SetLayeredWindowAttributes")
	setLastError               = kernel32.NewProc("SetLastError")
)

var exStyleIndex int32 = win.GWL_EXSTYLE

var errNotWindow = errors.New("not a window")

type Desktop struct{}

// Open checks that every user32 entry point is present.
func Open() (*Desktop, error) {
	for _, p := range []*windows.LazyProc{
		enumWindows,
		isWindow,
		getWindowLong,
		setWindowLong,
		getLayeredWindowAttributes,
		setLayeredWindowAttributes,
		setLastError,
	} {
		if err := p.Find(); err != nil {
			return nil, err
		}
	}
	return &Desktop{}, nil
}

// one callback for the whole process; NewCallback slots are never freed.
var enumMainWindow = windows.NewCallback(func(hwnd windows.HWND, lparam uintptr) uintptr {
	s := lookupSearch(lparam)
	if s == nil {
		return 0
	}

	var pid uint32
	if _, err := windows.GetWindowThreadProcessId(hwnd, &pid); err != nil || pid != s.pid {
		return 1
	}
	if !isMainWindow(win.HWND(hwnd)) {
		return 1
	}

	s.found = uintptr(hwnd)
	return 0 // stop
})

// isMainWindow: visible and not owned by another window.
func isMainWindow(hwnd win.HWND) bool {
	return win.GetWindow(hwnd, win.GW_OWNER) == 0 && win.IsWindowVisible(hwnd)
}

// MainWindow returns the first visible unowned top-level window of p, or 0.
func (d *Desktop) MainWindow(p opacity.Process) (opacity.Handle, error) {
	id, s := beginSearch(uint32(p.PID))
	defer endSearch(id)

	r, _, e := enumWindows.Call(enumMainWindow, id)
	if s.found != 0 {
		// EnumWindows reports FALSE when the callback stops it
		return opacity.Handle(s.found), nil
	}
	if r == 0 {
		return 0, fmt.Errorf("USER32.EnumWindows: %w", e)
	}
	return 0, nil
}

func (d *Desktop) ExStyle(h opacity.Handle) (uint32, error) {
	if err := checkWindow(h); err != nil {
		return 0, err
	}

	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	setLastError.Call(0)
	r, _, e := getWindowLong.Call(uintptr(h), uintptr(exStyleIndex))
	if r == 0 && failed(e) {
		return 0, fmt.Errorf("USER32.GetWindowLongW: %w", e)
	}
	return uint32(r), nil
}

func (d *Desktop) SetExStyle(h opacity.Handle, style uint32) error {
	if err := checkWindow(h); err != nil {
		return err
	}

	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	// the previous style comes back, and it may legitimately be 0
	setLastError.Call(0)
	r, _, e := setWindowLong.Call(uintptr(h), uintptr(exStyleIndex), uintptr(style))
	if r == 0 && failed(e) {
		return fmt.Errorf("USER32.SetWindowLongW: %w", e)
	}
	return nil
}

func (d *Desktop) SetLayeredAlpha(h opacity.Handle, alpha uint8) error {
	r, _, e := setLayeredWindowAttributes.Call(uintptr(h), 0, uintptr(alpha), LWA_ALPHA)
	if r == 0 {
		return fmt.Errorf("USER32.SetLayeredWindowAttributes: %w", e)
	}
	return nil
}

func (d *Desktop) LayeredAlpha(h opacity.Handle) (uint8, bool, error) {
	var (
		key   uint32
		alpha byte
		flags uint32
	)
	r, _, e := getLayeredWindowAttributes.Call(
		uintptr(h),
		uintptr(unsafe.Pointer(&key)),
		uintptr(unsafe.Pointer(&alpha)),
		uintptr(unsafe.Pointer(&flags)),
	)
	if r == 0 {
		return 0, false, fmt.Errorf("USER32.GetLayeredWindowAttributes: %w", e)
	}
	if flags&LWA_ALPHA == 0 {
		return 0, false, nil
	}
	return alpha, true, nil
}

func checkWindow(h opacity.Handle) error {
	if b, _, _ := isWindow.Call(uintptr(h)); b == 0 {
		return fmt.Errorf("hwnd %#x: %w", uintptr(h), errNotWindow)
	}
	return nil
}

func failed(e error) bool {
	errno, ok := e.(windows.Errno)
	return ok && errno != 0
}
