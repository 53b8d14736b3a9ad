//go:build aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris

package main

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strconv"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"golang.org/x/crypto/ssh/terminal"
	"golang.org/x/sys/unix"
)

type TermSize struct {
	WSRow, WSCol       uint
	WSXPixel, WSYPixel uint
}

var kittyPixelReply = regexp.MustCompile(`\[4;(\d+);(\d+)t`)

// GetTermSize returns the size of the controlling terminal, in cells and,
// where the terminal reports it, in pixels.
func GetTermSize() (TermSize, error) {
	f, err := os.OpenFile("/dev/tty", unix.O_NOCTTY|unix.O_CLOEXEC|unix.O_NDELAY|unix.O_RDWR, 0666)
	if err != nil {
		return stdinTermSize()
	}
	defer f.Close()

	sz, err := unix.IoctlGetWinsize(int(f.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return stdinTermSize()
	}
	ts := TermSize{WSRow: uint(sz.Row), WSCol: uint(sz.Col), WSXPixel: uint(sz.Xpixel), WSYPixel: uint(sz.Ypixel)}
	if ts.WSXPixel == 0 && ts.WSYPixel == 0 && os.Getenv("TERM") == "xterm-kitty" {
		if w, h, err := queryPixelSize(f); err == nil {
			ts.WSXPixel, ts.WSYPixel = w, h
		} else {
			glog.V(1).Infof("kitty did not report its pixel size: %v", err)
		}
	}
	return ts, nil
}

// queryPixelSize asks the terminal for its size in pixels with CSI 14 t.
// The reply is <ESC>[4;<height>;<width>t.
//
// https://sw.kovidgoyal.net/kitty/graphics-protocol/#getting-the-window-size
func queryPixelSize(tty *os.File) (w, h uint, err error) {
	state, err := terminal.MakeRaw(int(tty.Fd()))
	if err != nil {
		return 0, 0, errors.Wrap(err, "switching terminal to raw mode")
	}
	defer terminal.Restore(int(tty.Fd()), state)

	fmt.Printf("\033[14t")
	// TODO: time out if the terminal never replies.
	reader := bufio.NewReader(os.Stdin)
	if b, err := reader.ReadByte(); err != nil || b != 033 {
		return 0, 0, errors.New("unexpected reply to pixel size query")
	}
	s, err := reader.ReadString('t')
	if err != nil {
		return 0, 0, errors.Wrap(err, "reading pixel size reply")
	}
	return parsePixelReply(s)
}

// parsePixelReply parses the "[4;height;widtht" answer to a pixel size
// query.
func parsePixelReply(s string) (w, h uint, err error) {
	matches := kittyPixelReply.FindStringSubmatch(s)
	if len(matches) != 3 {
		return 0, 0, errors.Errorf("malformed reply %q", s)
	}
	height, errH := strconv.Atoi(matches[1])
	width, errW := strconv.Atoi(matches[2])
	if errH != nil || errW != nil {
		return 0, 0, errors.Errorf("malformed reply %q", s)
	}
	return uint(width), uint(height), nil
}

func stdinTermSize() (TermSize, error) {
	w, h, err := terminal.GetSize(0)
	if err != nil {
		return TermSize{}, errors.Wrap(err, "getting terminal size")
	}
	return TermSize{WSRow: uint(h), WSCol: uint(w)}, nil
}
