// Package source resolves and fetches starter template artifacts. A
// location is either a well-formed absolute URL (fetched with a plain
// HTTP GET) or a local filesystem path (copied as-is).
package source

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
)

// IsRemote reports whether location is a well-formed absolute URL with
// both a scheme and a host. Relative and local filesystem paths are not
// remote.
func IsRemote(location string) bool {
	u, err := url.Parse(location)
	return err == nil && u.Scheme != "" && u.Host != ""
}

// DeriveFileName returns the last path segment of rawURL, ignoring any
// query string and fragment. It is the file name under which a fetched
// artifact is stored locally.
func DeriveFileName(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return path.Base(rawURL)
	}
	return path.Base(u.Path)
}

// Fetch stores the artifact at location into dest. Remote locations are
// downloaded; local locations are copied.
func Fetch(location, dest string) error {
	if IsRemote(location) {
		return download(location, dest)
	}
	return copyLocal(location, dest)
}

func download(rawURL, dest string) error {
	resp, err := http.Get(rawURL)
	if err != nil {
		return fmt.Errorf("downloading %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("downloading %s: HTTP %d", rawURL, resp.StatusCode)
	}

	return writeTo(dest, resp.Body)
}

func copyLocal(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("opening %s: %w", src, err)
	}
	defer in.Close()

	return writeTo(dest, in)
}

func writeTo(dest string, r io.Reader) error {
	f, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("creating %s: %w", dest, err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", dest, err)
	}
	return f.Close()
}
