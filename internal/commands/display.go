// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package commands

import (
	"github.com/specialistvlad/gokickstart/internal/options"
	"github.com/specialistvlad/gokickstart/internal/version"
)

// DisplayMode selects the installer interface. graphical, text and cmdline
// are one command; the last one given wins.
type DisplayMode struct {
	base
	Mode           string
	NonInteractive bool `ks:"non-interactive"`
}

var displayModeSchema = &options.Schema{
	Command: "graphical",
	Options: []options.Option{
		{Name: "non-interactive", Kind: options.Bool, Introduced: version.F26},
	},
}

func newDisplayMode(t Type) Command {
	return &DisplayMode{base: newBase(t)}
}

func (c *DisplayMode) Parse(inv *Invocation) error {
	res, err := c.parse(inv)
	if err != nil {
		return err
	}
	c.Mode = inv.Keyword
	c.NonInteractive = false
	return options.Decode(res, c)
}

func (c *DisplayMode) String() string {
	if !c.seen {
		return ""
	}
	mode := c.Mode
	if mode == "" {
		mode = "graphical"
	}
	return options.NewLine(mode).Flag("non-interactive", c.NonInteractive).String()
}

// Vnc enables remote access to the graphical installer.
type Vnc struct {
	base
	Host     string `ks:"host"`
	Port     string `ks:"port"`
	Password string `ks:"password"`
}

var vncSchema = &options.Schema{
	Command: "vnc",
	Options: []options.Option{
		{Name: "host", Kind: options.String},
		{Name: "port", Kind: options.String},
		{Name: "password", Kind: options.String},
		{Name: "connect", Kind: options.String, Deprecated: version.F20},
	},
}

func newVnc(t Type) Command {
	return &Vnc{base: newBase(t)}
}

func (c *Vnc) Parse(inv *Invocation) error {
	res, err := c.parse(inv)
	if err != nil {
		return err
	}
	return options.Decode(res, c)
}

func (c *Vnc) String() string {
	if !c.seen {
		return ""
	}
	return options.NewLine("vnc").Str("host", c.Host).Str("port", c.Port).Str("password", c.Password).String()
}

// XConfig configures the X Window System of the installed system. Only
// the desktop options survive; the hardware ones are accepted and ignored.
type XConfig struct {
	base
	DefaultDesktop string `ks:"defaultdesktop"`
	StartX         bool   `ks:"startxonboot"`
}

func xconfigHardwareOptions() []options.Option {
	var out []options.Option
	for _, name := range []string{"card", "driver", "hsync", "monitor", "resolution", "server", "videoram", "vsync", "depth"} {
		out = append(out, options.Option{Name: name, Kind: options.String, Deprecated: version.F20})
	}
	return append(out,
		options.Option{Name: "noprobe", Kind: options.Bool, Deprecated: version.F20},
		options.Option{Name: "defaultdesktop", Kind: options.String},
		options.Option{Name: "startxonboot", Kind: options.Bool},
	)
}

var xconfigSchema = &options.Schema{
	Command: "xconfig",
	Options: xconfigHardwareOptions(),
}

func newXConfig(t Type) Command {
	return &XConfig{base: newBase(t)}
}

func (c *XConfig) Parse(inv *Invocation) error {
	res, err := c.parse(inv)
	if err != nil {
		return err
	}
	return options.Decode(res, c)
}

func (c *XConfig) String() string {
	if !c.seen || (c.DefaultDesktop == "" && !c.StartX) {
		return ""
	}
	return options.NewLine("xconfig").Str("defaultdesktop", c.DefaultDesktop).Flag("startxonboot", c.StartX).String()
}

var displayTypes = []Type{
	{Name: "F20_DisplayMode", Keyword: "graphical", Version: version.F20, Schemas: schemas(displayModeSchema), New: newDisplayMode},
	{Name: "F26_DisplayMode", Keyword: "graphical", Version: version.F26, Schemas: schemas(displayModeSchema), New: newDisplayMode},
	{Name: "F20_Vnc", Keyword: "vnc", Version: version.F20, Schemas: schemas(vncSchema), New: newVnc},
	{Name: "F20_XConfig", Keyword: "xconfig", Version: version.F20, Schemas: schemas(xconfigSchema), New: newXConfig},
}
