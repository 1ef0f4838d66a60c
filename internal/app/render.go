package app

import (
	"encoding/hex"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"go.trai.ch/memo/codec"
)

// Brand colors.
var (
	keyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8B5CF6")).Bold(true)
	faintStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#667085"))
)

// renderEnvelope writes a provenance header followed by the value tree.
// Container nodes get a one-word shape summary; children indent below it.
func renderEnvelope(w io.Writer, location string, env *codec.Envelope, styled bool) error {
	started, err := env.StartedTime()
	if err != nil {
		return err
	}

	p := &printer{styled: styled}
	p.header("Location", location)
	p.header("Tool version", env.ToolVersion)
	p.header("Started at", started.Format(time.RFC3339Nano))
	p.header("Duration", env.Duration().String())
	p.sb.WriteByte('\n')
	p.value(env.Value, 0, "")

	_, err = io.WriteString(w, p.sb.String())
	return err
}

type printer struct {
	sb     strings.Builder
	styled bool
}

func (p *printer) style(s lipgloss.Style, text string) string {
	if !p.styled {
		return text
	}
	return s.Render(text)
}

func (p *printer) header(label, value string) {
	p.sb.WriteString(p.style(faintStyle, fmt.Sprintf("%-13s", label)))
	p.sb.WriteString(value)
	p.sb.WriteByte('\n')
}

func (p *printer) value(v codec.Value, indent int, label string) {
	pad := strings.Repeat("  ", indent)
	write := func(text string) {
		if label == "" {
			p.sb.WriteString(pad + text + "\n")
			return
		}
		p.sb.WriteString(pad + p.style(keyStyle, label) + ": " + text + "\n")
	}

	switch v.Kind {
	case codec.KindList:
		write(p.style(faintStyle, fmt.Sprintf("list(%d)", len(v.Elems))))
		for i, elem := range v.Elems {
			p.value(elem, indent+1, strconv.Itoa(i))
		}
	case codec.KindMap:
		write(p.style(faintStyle, fmt.Sprintf("map(%d)", len(v.Entries))))
		for _, key := range sortedKeys(v.Entries) {
			p.value(v.Entries[key], indent+1, key)
		}
	case codec.KindObject:
		name := v.Type
		if name == "" {
			name = "object"
		}
		write(p.style(faintStyle, name))
		for _, key := range sortedKeys(v.Fields) {
			p.value(v.Fields[key], indent+1, key)
		}
	default:
		write(scalar(v))
	}
}

func sortedKeys(m map[string]codec.Value) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func scalar(v codec.Value) string {
	switch v.Kind {
	case codec.KindNil:
		return "null"
	case codec.KindBool:
		return strconv.FormatBool(v.Bool)
	case codec.KindInt:
		return strconv.FormatInt(v.Int, 10)
	case codec.KindUint:
		return strconv.FormatUint(v.Uint, 10)
	case codec.KindFloat:
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	case codec.KindString:
		return strconv.Quote(v.Str)
	case codec.KindBytes:
		return bytesPreview(v.Bytes)
	case codec.KindTime:
		return v.Time
	case codec.KindDuration:
		return time.Duration(v.Dur).String()
	default:
		return string(v.Kind)
	}
}

func bytesPreview(b []byte) string {
	const previewLen = 16
	if len(b) <= previewLen {
		return fmt.Sprintf("0x%s (%d bytes)", hex.EncodeToString(b), len(b))
	}
	return fmt.Sprintf("0x%s... (%d bytes)", hex.EncodeToString(b[:previewLen]), len(b))
}
