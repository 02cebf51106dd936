// Package flagx lets several components parse their own subset of the
// command line without tripping over each other's flags.
package flagx

import (
	"flag"
	"strings"
)

// Owned lists the flags a component understands. Value flags take an
// argument ("-a host" or "-a=host"); Bool flags never consume the next token.
type Owned struct {
	Value []string
	Bool  []string
}

// Filter returns the subsequence of args that belongs to o, keeping order.
// Long forms ("--config") are matched the same way as single-dash forms.
// A value flag followed by another dash-prefixed token is kept without a value.
func (o Owned) Filter(args []string) []string {
	value := toSet(o.Value)
	boolean := toSet(o.Bool)

	filtered := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, "-") {
			continue
		}

		name, _, hasValue := strings.Cut(arg, "=")
		name = normalize(name)

		if _, ok := boolean[name]; ok {
			filtered = append(filtered, arg)
			continue
		}
		if _, ok := value[name]; !ok {
			continue
		}

		filtered = append(filtered, arg)
		if !hasValue && i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			filtered = append(filtered, args[i+1])
			i++
		}
	}
	return filtered
}

// FilterArgs keeps only the value flags in allowed. It is Owned{Value: allowed}.Filter.
func FilterArgs(args []string, allowed []string) []string {
	return Owned{Value: allowed}.Filter(args)
}

// ConfigPath extracts the JSON config path given by -c or -config.
// It returns "" when neither flag is present.
func ConfigPath(args []string) string {
	var path string

	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.StringVar(&path, "config", "", "path to config file")
	fs.StringVar(&path, "c", "", "path to config file (short)")
	_ = fs.Parse(FilterArgs(args, []string{"-c", "-config"}))

	return path
}

func toSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[normalize(n)] = struct{}{}
	}
	return set
}

func normalize(name string) string {
	return "-" + strings.TrimLeft(name, "-")
}
