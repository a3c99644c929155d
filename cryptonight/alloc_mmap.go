//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package cryptonight

import "golang.org/x/sys/unix"

// allocate maps anonymous private memory, page aligned.
func allocate(size int) ([]byte, func([]byte) error, error) {
	mem, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, nil, err
	}
	adviseHugePages(mem)
	return mem, unix.Munmap, nil
}
