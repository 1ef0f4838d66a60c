// Package naming builds deterministic artifact locations from experiment
// parameters, so the same parameters always land on the same artifact.
package naming

import (
	"fmt"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// MaxSlotName is the longest rendered file name Slot will emit. Longer
// renderings collapse to the digest form to stay under common filesystem
// limits.
const MaxSlotName = 200

// Slot renders an artifact location under dir: the prefix, the parameters
// as sorted key=value segments, and the extension. When the rendered name
// would exceed MaxSlotName the parameter segments collapse to the digest
// of the same rendering, so equal parameters keep mapping to the same
// location.
func Slot(dir, prefix string, params map[string]any, ext string) string {
	name := prefix
	if segs := segments(params); len(segs) > 0 {
		name += "_" + strings.Join(segs, "_")
	}
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	if len(name)+len(ext) > MaxSlotName {
		name = prefix + "_" + Digest(params)
	}
	return filepath.Join(dir, name+ext)
}

// Digest returns the xxhash of the canonical parameter rendering as a
// fixed-width hex string.
func Digest(params map[string]any) string {
	h := xxhash.New()
	for _, seg := range segments(params) {
		_, _ = h.WriteString(seg)
		_, _ = h.Write([]byte{0})
	}
	return fmt.Sprintf("%016x", h.Sum64())
}

func segments(params map[string]any) []string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	segs := make([]string, 0, len(keys))
	for _, k := range keys {
		segs = append(segs, k+"="+render(params[k]))
	}
	return segs
}

func render(v any) string {
	switch x := v.(type) {
	case string:
		return sanitize(x)
	case float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	default:
		return sanitize(fmt.Sprintf("%v", x))
	}
}

// sanitize replaces characters that are hostile in file names.
func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|', ' ', '\t', '\n':
			return '-'
		}
		return r
	}, s)
}
