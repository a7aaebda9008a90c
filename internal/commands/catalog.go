// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package commands

import (
	"sort"

	"github.com/specialistvlad/gokickstart/internal/options"
	"github.com/specialistvlad/gokickstart/internal/version"
)

// AutoStep steps through the installer screens automatically.
type AutoStep struct {
	base
	AutoScreenshot bool `ks:"autoscreenshot"`
}

var autoStepSchema = &options.Schema{
	Command: "autostep",
	Options: []options.Option{{Name: "autoscreenshot", Kind: options.Bool}},
}

func newAutoStep(t Type) Command {
	return &AutoStep{base: newBase(t)}
}

func (c *AutoStep) Parse(inv *Invocation) error {
	res, err := c.parse(inv)
	if err != nil {
		return err
	}
	return options.Decode(res, c)
}

func (c *AutoStep) String() string {
	if !c.seen {
		return ""
	}
	return options.NewLine("autostep").Flag("autoscreenshot", c.AutoScreenshot).String()
}

var retiredTypes = []Type{
	{Name: "F20_AutoStep", Keyword: "autostep", Version: version.F20, Schemas: schemas(autoStepSchema), New: newAutoStep},
	deprecatedType("F29_AutoStep", "autostep", version.F29),
	deprecatedType("F29_Install", "install", version.F29),
	deprecatedType("F20_Interactive", "interactive", version.F20),
	deprecatedType("F20_Monitor", "monitor", version.F20),
	deprecatedType("F20_Upgrade", "upgrade", version.F20),
}

var (
	catalog     = map[string]Type{}
	dataCatalog = map[string]DataType{}
)

func init() {
	for _, group := range [][]Type{
		storageTypes, partitionTypes, lvmTypes, networkTypes, userTypes,
		bootloaderTypes, systemTypes, displayTypes, methodTypes, repoTypes,
		retiredTypes,
	} {
		for _, t := range group {
			if _, dup := catalog[t.Name]; dup {
				panic("commands: duplicate type " + t.Name)
			}
			catalog[t.Name] = t
		}
	}
	for _, group := range [][]DataType{
		partitionDataTypes, lvmDataTypes, networkDataTypes, userDataTypes, repoDataTypes,
	} {
		for _, t := range group {
			if _, dup := dataCatalog[t.Name]; dup {
				panic("commands: duplicate data type " + t.Name)
			}
			dataCatalog[t.Name] = t
		}
	}
}

// Lookup returns the command variant called name, e.g. "F20_Bootloader".
func Lookup(name string) (Type, bool) {
	t, ok := catalog[name]
	return t, ok
}

// LookupData returns the data variant called name, e.g. "F29_PartData".
func LookupData(name string) (DataType, bool) {
	t, ok := dataCatalog[name]
	return t, ok
}

// Types returns every command variant sorted by name.
func Types() []Type {
	out := make([]Type, 0, len(catalog))
	for _, t := range catalog {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// DataTypes returns every data variant sorted by name.
func DataTypes() []DataType {
	out := make([]DataType, 0, len(dataCatalog))
	for _, t := range dataCatalog {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
