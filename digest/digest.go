// Package digest computes MD5 content hashes rendered as lowercase hex.
//
// MD5 is used as a fast content fingerprint (cache keys, change detection),
// not for anything security-sensitive.
package digest

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"io"
	"os"
)

// MD5 returns the hex MD5 of data.
func MD5(data []byte) string {
	sum := md5.Sum(data)

	return hex.EncodeToString(sum[:])
}

// MD5String returns the hex MD5 of s.
func MD5String(s string) string { return MD5([]byte(s)) }

// MD5Reader streams r into the hash and returns its hex MD5.
func MD5Reader(r io.Reader) (string, error) {
	h := md5.New()
	if _, err := io.Copy(h, r); err != nil {
		return "", fmt.Errorf("digest: read: %w", err)
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

// MD5File returns the hex MD5 of the file at path.
func MD5File(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("digest: %w", err)
	}
	defer f.Close()

	return MD5Reader(f)
}
