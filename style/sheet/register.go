package sheet

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/vdoc/style"
	"github.com/npillmayer/vdoc/undo"
)

// ErrSelector is returned for rules with selectors other than class
// selectors, "*" or ":root".
var ErrSelector = errors.New("unsupported selector in style sheet")

// Register defines a named dynamic style in reg for every class rule of
// sheet, and sets document defaults for rules with selector "*" or ":root".
// Unknown properties are skipped.
//
// Register is atomic: if a rule cannot be registered, e.g. because its name
// is taken, all styles registered so far are removed again.
// It returns the names of the styles defined.
func Register(reg *style.Registry, sheet StyleSheet) ([]string, undo.Entry, error) {
	if sheet == nil || sheet.Empty() {
		return nil, undo.Null, nil
	}
	log := undo.NewLog()
	defer log.Rollback()
	var names []string
	for _, rule := range sheet.Rules() {
		props, err := properties(rule)
		if err != nil {
			return nil, undo.Null, err
		}
		for _, sel := range strings.Split(rule.Selector(), ",") {
			sel = strings.TrimSpace(sel)
			switch {
			case sel == "*" || sel == ":root":
				for _, kv := range props {
					u, err := reg.SetDefault(kv.Key, kv.Value)
					if err != nil {
						return nil, undo.Null, err
					}
					log.Add(u)
				}
			case strings.HasPrefix(sel, ".") && len(sel) > 1 && !strings.ContainsAny(sel, " >+~:[#"):
				_, u, err := reg.Define(sel[1:], props...)
				if err != nil {
					return nil, undo.Null, fmt.Errorf("style sheet rule %q: %w", sel, err)
				}
				log.Add(u)
				names = append(names, sel[1:])
			default:
				return nil, undo.Null, fmt.Errorf("%q: %w", sel, ErrSelector)
			}
		}
	}
	tracer().Infof("style sheet: registered %d styles", len(names))
	return names, log.Commit(), nil
}

func properties(rule Rule) ([]style.KeyValue, error) {
	var props []style.KeyValue
	for _, key := range rule.Properties() {
		kv, err := style.ExpandProperty(key, rule.Value(key))
		if errors.Is(err, style.ErrCompound) {
			tracer().Infof("style sheet: ignoring unknown property %q", key)
			continue
		} else if err != nil {
			return nil, fmt.Errorf("rule %q: %w", rule.Selector(), err)
		}
		props = append(props, kv...)
	}
	return props, nil
}
