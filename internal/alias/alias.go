// Package alias collapses sibling commands registered under several names.
package alias

import (
	"sort"
	"strconv"
	"strings"

	"github.com/agentflare-ai/refdoc/internal/model"
)

// signature identifies a command's immediate grammar: its description and
// the name and help of each argument, in order. Subcommands are not part
// of it.
type signature struct {
	description string
	arguments   string
}

func signatureOf(cmd *model.CommandDoc) signature {
	var b strings.Builder
	for _, arg := range cmd.Arguments {
		b.WriteString(strconv.Quote(arg.DisplayName))
		b.WriteByte(':')
		b.WriteString(strconv.Quote(arg.Help))
		b.WriteByte(';')
	}
	return signature{description: cmd.Description, arguments: b.String()}
}

// Resolve groups the direct subcommands of one parent by signature.
//
// The canonical name of a group is its longest name, ties broken by the
// lexically smallest; the remaining names are its sorted aliases. Groups
// are returned sorted by canonical name, so the result does not depend on
// map iteration order.
func Resolve(subcommands map[string]*model.CommandDoc) []model.AliasGroup {
	names := make([]string, 0, len(subcommands))
	for name, cmd := range subcommands {
		if cmd != nil {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	bySignature := make(map[signature][]string)
	var order []signature
	for _, name := range names {
		sig := signatureOf(subcommands[name])
		if _, ok := bySignature[sig]; !ok {
			order = append(order, sig)
		}
		bySignature[sig] = append(bySignature[sig], name)
	}

	groups := make([]model.AliasGroup, 0, len(order))
	for _, sig := range order {
		members := bySignature[sig]
		canonical := Canonical(members)
		aliases := make([]string, 0, len(members)-1)
		for _, name := range members {
			if name != canonical {
				aliases = append(aliases, name)
			}
		}
		groups = append(groups, model.AliasGroup{
			Canonical: canonical,
			Aliases:   aliases,
			Command:   subcommands[canonical],
		})
	}
	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Canonical < groups[j].Canonical
	})
	return groups
}

// Canonical picks the longest name, preferring the lexically smallest on
// ties. It returns "" for no names.
func Canonical(names []string) string {
	var best string
	for i, name := range names {
		if i == 0 || len(name) > len(best) || (len(name) == len(best) && name < best) {
			best = name
		}
	}
	return best
}

// Names lists every name covered by groups, sorted.
func Names(groups []model.AliasGroup) []string {
	var names []string
	for _, g := range groups {
		names = append(names, g.Canonical)
		names = append(names, g.Aliases...)
	}
	sort.Strings(names)
	return names
}
