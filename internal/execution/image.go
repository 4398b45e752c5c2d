package execution

import (
	"fmt"
	"path"
	"strings"

	"github.com/google/go-containerregistry/pkg/name"
)

// ImageFor maps a real-world case directory to its container image.
//
// The tag is the first hyphen-delimited token of the last path segment:
// "docker/zlib-1.3" with namespace "thebesttv/arch" gives
// "thebesttv/arch:zlib". A segment without a hyphen is used whole.
func ImageFor(namespace, dir string) (string, error) {
	segment := path.Base(strings.TrimSuffix(dir, "/"))
	token, _, _ := strings.Cut(segment, "-")
	if token == "" || token == "." || token == "/" {
		return "", fmt.Errorf("cannot derive image tag from %q", dir)
	}

	ref := namespace + ":" + token
	if _, err := name.NewTag(ref); err != nil {
		return "", fmt.Errorf("invalid image reference %q for case %s: %w", ref, dir, err)
	}
	return ref, nil
}
