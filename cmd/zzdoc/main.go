package main

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/muesli/reflow/wordwrap"
	"github.com/rockorager/zzdoc"
	"github.com/spf13/pflag"
	"golang.org/x/term"
	"pkt.systems/version"
)

func init() {
	version.SetDefaultModule("github.com/rockorager/zzdoc")
}

func main() {
	var (
		outPath     string
		dateFlag    string
		validate    bool
		showVersion bool
	)

	flags := pflag.NewFlagSet("zzdoc", pflag.ExitOnError)
	flags.StringVarP(&outPath, "output", "o", "", "Output file instead of stdout (written atomically)")
	flags.StringVarP(&dateFlag, "date", "d", "", "Header date as YYYY-MM-DD or RFC 3339 (default: today, or SOURCE_DATE_EPOCH)")
	flags.BoolVar(&validate, "validate", false, "Reject input that is not valid UTF-8 text before converting")
	flags.BoolVarP(&showVersion, "version", "v", false, "Print version and exit")

	flags.SetInterspersed(true)
	flags.Usage = func() {
		fmt.Fprintln(os.Stderr, version.Module(), version.Current())
		fmt.Fprintf(os.Stderr, "Usage: zzdoc [flags] [inputs...]\n")
		fmt.Fprintln(os.Stderr, "\nInputs are file paths or http(s):// URLs; without inputs, source is read from stdin.")
		fmt.Fprintln(os.Stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}
	if showVersion {
		fmt.Fprintln(os.Stdout, version.Module(), version.Current())
		return
	}

	args := flags.Args()
	if len(args) == 0 && term.IsTerminal(int(os.Stdin.Fd())) {
		flags.Usage()
		os.Exit(2)
	}

	date, err := resolveDate(dateFlag)
	if err != nil {
		diag("invalid --date %q: %v", dateFlag, err)
		os.Exit(2)
	}

	reader, closer, err := openInputs(args)
	if err != nil {
		diag("open input: %v", err)
		os.Exit(1)
	}
	if closer != nil {
		defer func() { _ = closer.Close() }()
	}

	if validate {
		src, err := io.ReadAll(reader)
		if err != nil {
			diag("read input: %v", err)
			os.Exit(1)
		}
		if err := zzdoc.ValidateInput(src); err != nil {
			diag("validate input: %v", err)
			os.Exit(1)
		}
		reader = bytes.NewReader(src)
	}

	writer, commit, err := resolveOutput(outPath)
	if err != nil {
		diag("open output: %v", err)
		os.Exit(1)
	}

	if err := zzdoc.Generate(zzdoc.GenerateRequest{
		Reader: reader,
		Writer: writer,
		Date:   date,
	}); err != nil {
		_ = commit(false)
		diag("%s: %v", inputName(args), err)
		os.Exit(1)
	}
	if err := commit(true); err != nil {
		diag("write output: %v", err)
		os.Exit(1)
	}
}

// diag prints a diagnostic to stderr, wrapped to the terminal width when
// stderr is a terminal.
func diag(format string, a ...any) {
	msg := fmt.Sprintf(format, a...)
	fd := int(os.Stderr.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			msg = wordwrap.String(msg, w)
		}
	}
	fmt.Fprintln(os.Stderr, msg)
}

func inputName(args []string) string {
	if len(args) == 0 {
		return "<stdin>"
	}
	return strings.Join(args, ",")
}

// resolveDate picks the .TH header date: the --date flag wins, then
// SOURCE_DATE_EPOCH for reproducible builds, then the zero value (today).
func resolveDate(flag string) (time.Time, error) {
	flag = strings.TrimSpace(flag)
	if flag != "" {
		if t, err := time.Parse("2006-01-02", flag); err == nil {
			return t, nil
		}
		return time.Parse(time.RFC3339, flag)
	}
	if epoch := os.Getenv("SOURCE_DATE_EPOCH"); epoch != "" {
		secs, err := strconv.ParseInt(epoch, 10, 64)
		if err != nil {
			return time.Time{}, fmt.Errorf("SOURCE_DATE_EPOCH: %w", err)
		}
		return time.Unix(secs, 0).UTC(), nil
	}
	return time.Time{}, nil
}

type inputSource struct {
	open func() (io.Reader, io.Closer, error)
}

type multiInputReader struct {
	sources   []inputSource
	idx       int
	cur       io.Reader
	curCloser io.Closer
	closed    bool
}

func (m *multiInputReader) Read(p []byte) (int, error) {
	for {
		if m.closed {
			return 0, io.EOF
		}
		if m.cur == nil {
			if m.idx >= len(m.sources) {
				m.closed = true
				return 0, io.EOF
			}
			reader, closer, err := m.sources[m.idx].open()
			if err != nil {
				return 0, err
			}
			m.cur = reader
			m.curCloser = closer
			m.idx++
		}
		n, err := m.cur.Read(p)
		if n > 0 {
			return n, nil
		}
		if err == io.EOF {
			if m.curCloser != nil {
				_ = m.curCloser.Close()
			}
			m.cur = nil
			m.curCloser = nil
			continue
		}
		if err != nil {
			return 0, err
		}
	}
}

func (m *multiInputReader) Close() error {
	m.closed = true
	if m.curCloser != nil {
		return m.curCloser.Close()
	}
	return nil
}

func openInputs(args []string) (io.Reader, io.Closer, error) {
	if len(args) == 0 {
		return os.Stdin, nil, nil
	}
	sources := make([]inputSource, 0, len(args))
	for _, raw := range args {
		src, err := makeInputSource(raw)
		if err != nil {
			return nil, nil, err
		}
		sources = append(sources, src)
	}
	return &multiInputReader{sources: sources}, nil, nil
}

func makeInputSource(raw string) (inputSource, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return inputSource{}, fmt.Errorf("empty input argument")
	}
	u, err := url.Parse(raw)
	if err == nil && u.Scheme != "" {
		switch strings.ToLower(u.Scheme) {
		case "http", "https":
			return inputSource{open: func() (io.Reader, io.Closer, error) {
				return openURL(raw)
			}}, nil
		case "file":
			path := u.Path
			if path == "" {
				path = u.Host
			}
			if unescaped, err := url.PathUnescape(path); err == nil {
				path = unescaped
			}
			return inputSource{open: func() (io.Reader, io.Closer, error) {
				return openFile(path)
			}}, nil
		}
	}
	return inputSource{open: func() (io.Reader, io.Closer, error) {
		return openFile(raw)
	}}, nil
}

func openURL(raw string) (io.Reader, io.Closer, error) {
	resp, err := http.Get(raw)
	if err != nil {
		return nil, nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_ = resp.Body.Close()
		return nil, nil, fmt.Errorf("http %s: %s", raw, resp.Status)
	}
	return resp.Body, resp.Body, nil
}

func openFile(path string) (io.Reader, io.Closer, error) {
	f, err := os.Open(normalizePath(path))
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

// resolveOutput returns the writer plus a commit function. With no path the
// writer is stdout and commit is a no-op. With a path the writer is a temp
// file in the target directory; commit(true) renames it into place and
// commit(false) discards it, so a failed conversion never leaves a partial
// file behind.
func resolveOutput(path string) (io.Writer, func(bool) error, error) {
	if strings.TrimSpace(path) == "" {
		return os.Stdout, func(bool) error { return nil }, nil
	}
	clean := normalizePath(path)
	dir := filepath.Dir(clean)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, err
		}
	}
	f, err := os.CreateTemp(dir, filepath.Base(clean)+".tmp-*")
	if err != nil {
		return nil, nil, err
	}
	commit := func(keep bool) error {
		if cerr := f.Close(); cerr != nil && keep {
			return cerr
		}
		if !keep {
			return os.Remove(f.Name())
		}
		return os.Rename(f.Name(), clean)
	}
	return f, commit, nil
}

func normalizePath(path string) string {
	if strings.HasPrefix(path, "~/") || path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			if path == "~" {
				path = home
			} else {
				path = filepath.Join(home, path[2:])
			}
		}
	}
	abs, err := filepath.Abs(path)
	if err == nil {
		return abs
	}
	return path
}
