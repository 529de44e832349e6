package menu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/atomicstack/xitems/internal/keysym"
	"github.com/atomicstack/xitems/internal/logging"
	"github.com/atomicstack/xitems/internal/logging/events"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// ErrPartialInput reports that the line source failed after input had
// already been consumed.
var ErrPartialInput = errors.New("partial input")

// Resolver maps a key symbol name to its identifier.
type Resolver func(name string) (keysym.Keysym, bool)

// ParseLine splits the leading quick-select tokens of line from its text.
// Names of bindings dropped because the item was full are returned.
func ParseLine(line string, resolve Resolver) (Item, []string) {
	if resolve == nil {
		resolve = keysym.Lookup
	}
	var (
		it      Item
		dropped []string
	)
	rest := line
	for {
		rest = strings.TrimLeftFunc(rest, unicode.IsSpace)
		end := strings.IndexFunc(rest, unicode.IsSpace)
		if end < 0 {
			end = len(rest)
		}
		token := rest[:end]
		if token == "" {
			break
		}
		ks, ok := resolve(token)
		if !ok {
			break
		}
		if !it.addKey(ks) {
			dropped = append(dropped, token)
		}
		rest = rest[end:]
	}
	it.Text = rest
	it.Display = displayText(rest)
	it.Length = len(rest)
	it.Width = runewidth.StringWidth(it.Display)
	it.Dirty = true
	return it, dropped
}

func displayText(text string) string {
	clean := ansi.Strip(text)
	if !utf8.ValidString(clean) {
		clean = strings.ToValidUTF8(clean, string(utf8.RuneError))
	}
	return strings.Map(func(r rune) rune {
		if r == '\t' {
			return ' '
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, clean)
}

// Build reads newline-delimited entries from r until EOF. An empty source,
// or one that fails before producing anything, yields a nil list.
func Build(r io.Reader, resolve Resolver) (*List, error) {
	br := bufio.NewReader(r)
	var list *List
	lineNo := 0
	for {
		line, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			if lineNo > 0 || line != "" {
				return nil, fmt.Errorf("reading line %d: %w: %w", lineNo+1, ErrPartialInput, err)
			}
			events.Items.ReadError(err)
			return nil, nil
		}
		if line == "" && err == io.EOF {
			break
		}
		lineNo++
		it, dropped := ParseLine(strings.TrimSuffix(line, "\n"), resolve)
		for _, name := range dropped {
			logging.Warn("too many key symbols, dropping binding", "line", lineNo, "keysym", name, "limit", MaxKeySyms)
			events.Items.KeySymDropped(lineNo, name, MaxKeySyms)
		}
		if list == nil {
			list = NewList()
		}
		list.Append(it)
		if err == io.EOF {
			break
		}
	}
	if list != nil {
		events.Items.Built(list.Len())
	}
	return list, nil
}
