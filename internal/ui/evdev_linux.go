//go:build linux

package ui

import (
	"errors"
	"log"
	"os"
	"path/filepath"
	"sync/atomic"
	"syscall"

	"golang.org/x/sys/unix"
)

var remotePressed [remoteKeyCount]atomic.Bool

func init() {
	go watchRemote()
}

// watchRemote opens every readable /dev/input/event* device and waits on
// all of them with a single epoll loop.
func watchRemote() {
	matches, err := filepath.Glob("/dev/input/event*")
	if err != nil || len(matches) == 0 {
		return
	}

	var files []*os.File
	for _, path := range matches {
		f, err := os.Open(path)
		if err != nil {
			// No permission or device not accessible, skip silently
			continue
		}
		files = append(files, f)
	}
	if len(files) == 0 {
		return
	}
	if err := readRemoteEpoll(files); err != nil {
		log.Printf("evdev: %v", err)
	}
}

func readRemoteEpoll(files []*os.File) error {
	epfd, err := unix.EpollCreate1(0)
	if err != nil {
		return err
	}
	defer unix.Close(epfd)

	fdToFile := make(map[int]*os.File, len(files))
	for _, f := range files {
		fd := int(f.Fd())
		ev := unix.EpollEvent{Events: unix.EPOLLIN, Fd: int32(fd)}
		if err := unix.EpollCtl(epfd, unix.EPOLL_CTL_ADD, fd, &ev); err != nil {
			f.Close()
			continue
		}
		fdToFile[fd] = f
	}

	const maxEvents = 16
	ready := make([]unix.EpollEvent, maxEvents)
	buf := make([]byte, inputEventSize)
	for len(fdToFile) > 0 {
		n, err := unix.EpollWait(epfd, ready, -1)
		if err != nil {
			if errors.Is(err, syscall.EINTR) {
				continue
			}
			return err
		}

		for i := 0; i < n; i++ {
			fd := int(ready[i].Fd)
			f := fdToFile[fd]
			if f == nil {
				continue
			}
			// A device that went away (e.g. an unplugged remote) is
			// dropped; the others keep working.
			if ready[i].Events&(unix.EPOLLERR|unix.EPOLLHUP) != 0 {
				dropDevice(epfd, fdToFile, fd)
				continue
			}
			if _, err := f.Read(buf); err != nil {
				dropDevice(epfd, fdToFile, fd)
				continue
			}
			ev, ok := decodeInputEvent(buf)
			if !ok {
				continue
			}
			if k, ok := remotePress(ev); ok {
				log.Printf("evdev: remote key %d on %s", k, filepath.Base(f.Name()))
				remotePressed[k].Store(true)
			}
		}
	}
	return nil
}

func dropDevice(epfd int, fdToFile map[int]*os.File, fd int) {
	unix.EpollCtl(epfd, unix.EPOLL_CTL_DEL, fd, nil)
	fdToFile[fd].Close()
	delete(fdToFile, fd)
}

// RemoteJustPressed returns true once per press of k, then resets.
func RemoteJustPressed(k RemoteKey) bool {
	return remotePressed[k].CompareAndSwap(true, false)
}
