package clix

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	gzip "github.com/klauspost/pgzip"
	"github.com/shenwei356/util/pathutil"
)

// InStream opens file ("-" means stdin) for reading, auto-detecting and
// transparently unwrapping gzip compression, matching
// unikmer/cmd/util-io.go's inStream.
func InStream(file string) (*bufio.Reader, io.Closer, error) {
	var r *os.File
	var err error
	if file == "-" {
		if !detectStdin() {
			return nil, nil, errors.New("clix: stdin not detected")
		}
		r = os.Stdin
	} else {
		r, err = os.Open(file)
		if err != nil {
			return nil, nil, fmt.Errorf("clix: fail to read %s: %w", file, err)
		}
	}

	br := bufio.NewReaderSize(r, os.Getpagesize())

	gzipped, err := isGzip(br)
	if err != nil {
		return nil, r, fmt.Errorf("clix: fail to check whether %s is gzipped: %w", file, err)
	}
	if gzipped {
		gr, err := gzip.NewReader(br)
		if err != nil {
			return nil, r, fmt.Errorf("clix: fail to create gzip reader for %s: %w", file, err)
		}
		br = bufio.NewReaderSize(gr, os.Getpagesize())
	}

	return br, r, nil
}

// OutStream opens file ("-" means stdout) for writing, gzip-compressing
// when gzipped is true, matching unikmer/cmd/util-io.go's outStream.
func OutStream(file string, gzipped bool) (*bufio.Writer, io.Closer, error) {
	var w *os.File
	var err error
	if file == "-" {
		w = os.Stdout
	} else {
		w, err = os.Create(file)
		if err != nil {
			return nil, nil, fmt.Errorf("clix: fail to write %s: %w", file, err)
		}
	}

	if gzipped {
		gw := gzip.NewWriter(w)
		return bufio.NewWriterSize(gw, os.Getpagesize()), gw, nil
	}
	return bufio.NewWriterSize(w, os.Getpagesize()), w, nil
}

func isGzip(b *bufio.Reader) (bool, error) {
	magic, err := b.Peek(2)
	if err != nil {
		return false, nil
	}
	return magic[0] == 0x1f && magic[1] == 0x8b, nil
}

func detectStdin() bool {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) == 0
}

// IsStdin reports whether file denotes stdin.
func IsStdin(file string) bool { return file == "-" }

// CheckFilesExist dies with a fatal-usage error if any of files
// (besides "-") do not exist on disk, matching checkFiles in
// unikmer/cmd/util.go.
func CheckFilesExist(files ...string) {
	for _, file := range files {
		if IsStdin(file) {
			continue
		}
		ok, err := pathutil.Exists(file)
		if err != nil {
			CheckError(fmt.Errorf("clix: fail to check file %s: %w", file, err))
		}
		if !ok {
			Die("file does not exist: %s", file)
		}
	}
}
