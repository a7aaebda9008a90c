// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package commands

import (
	"github.com/specialistvlad/gokickstart/internal/kserrors"
	"github.com/specialistvlad/gokickstart/internal/options"
	"github.com/specialistvlad/gokickstart/internal/version"
)

// Method is the installation source. url, cdrom, harddrive, liveimg and nfs
// are one command with a keyword specific schema; a later method replaces
// an earlier one entirely.
type Method struct {
	base
	Method      string
	URL         string `ks:"url"`
	Mirrorlist  string `ks:"mirrorlist"`
	Metalink    string `ks:"metalink"`
	Proxy       string `ks:"proxy"`
	NoVerifySSL bool   `ks:"noverifyssl"`
	Checksum    string `ks:"checksum"`
	Partition   string `ks:"partition"`
	BiosPart    string `ks:"biospart"`
	Dir         string `ks:"dir"`
	Server      string `ks:"server"`
	Opts        string `ks:"opts"`
}

var methodSchemas = schemas(
	&options.Schema{
		Command: "url",
		Options: []options.Option{
			{Name: "url", Kind: options.String},
			{Name: "mirrorlist", Kind: options.String},
			{Name: "metalink", Kind: options.String, Introduced: version.F27},
			{Name: "proxy", Kind: options.String},
			{Name: "noverifyssl", Kind: options.Bool},
		},
	},
	&options.Schema{Command: "cdrom"},
	&options.Schema{
		Command: "harddrive",
		Options: []options.Option{
			{Name: "partition", Kind: options.String},
			{Name: "biospart", Kind: options.String},
			{Name: "dir", Kind: options.String, Required: true},
		},
	},
	&options.Schema{
		Command: "liveimg",
		Options: []options.Option{
			{Name: "url", Kind: options.String, Required: true},
			{Name: "proxy", Kind: options.String},
			{Name: "noverifyssl", Kind: options.Bool},
			{Name: "checksum", Kind: options.String},
		},
	},
	&options.Schema{
		Command: "nfs",
		Options: []options.Option{
			{Name: "server", Kind: options.String, Required: true},
			{Name: "dir", Kind: options.String, Required: true},
			{Name: "opts", Kind: options.String},
		},
	},
)

func newMethod(t Type) Command {
	return &Method{base: newBase(t)}
}

func (c *Method) Parse(inv *Invocation) error {
	res, err := c.parse(inv)
	if err != nil {
		return err
	}
	switch inv.Keyword {
	case "url":
		if err := exclusive(res, inv.Keyword, "url", "mirrorlist", "metalink"); err != nil {
			return err
		}
		if !res.Has("url") && !res.Has("mirrorlist") && !res.Has("metalink") {
			return kserrors.New(kserrors.Value, "one of --url, --mirrorlist or --metalink must be provided for the url command")
		}
	case "harddrive":
		if res.Has("partition") == res.Has("biospart") {
			return kserrors.New(kserrors.Value, "exactly one of --partition or --biospart must be provided for the harddrive command")
		}
	}
	*c = Method{base: c.base, Method: inv.Keyword}
	return options.Decode(res, c)
}

func (c *Method) String() string {
	if !c.seen {
		return ""
	}
	l := options.NewLine(c.Method)
	switch c.Method {
	case "url":
		l.Str("url", c.URL).Str("mirrorlist", c.Mirrorlist).Str("metalink", c.Metalink).
			Str("proxy", c.Proxy).Flag("noverifyssl", c.NoVerifySSL)
	case "harddrive":
		l.Str("partition", c.Partition).Str("biospart", c.BiosPart).Str("dir", c.Dir)
	case "liveimg":
		l.Str("url", c.URL).Str("proxy", c.Proxy).Flag("noverifyssl", c.NoVerifySSL).Str("checksum", c.Checksum)
	case "nfs":
		l.Str("server", c.Server).Str("dir", c.Dir).Str("opts", c.Opts)
	}
	return l.String()
}

// OSTreeSetup installs from an OSTree repository instead of packages.
type OSTreeSetup struct {
	base
	OSName string `ks:"osname"`
	Remote string `ks:"remote"`
	URL    string `ks:"url"`
	Ref    string `ks:"ref"`
	NoGPG  bool   `ks:"nogpg"`
}

var ostreeSetupSchema = &options.Schema{
	Command: "ostreesetup",
	Options: []options.Option{
		{Name: "osname", Kind: options.String, Required: true},
		{Name: "remote", Kind: options.String},
		{Name: "url", Kind: options.String, Required: true},
		{Name: "ref", Kind: options.String, Required: true},
		{Name: "nogpg", Kind: options.Bool},
	},
}

func newOSTreeSetup(t Type) Command {
	return &OSTreeSetup{base: newBase(t)}
}

func (c *OSTreeSetup) Parse(inv *Invocation) error {
	res, err := c.parse(inv)
	if err != nil {
		return err
	}
	return options.Decode(res, c)
}

func (c *OSTreeSetup) String() string {
	if !c.seen {
		return ""
	}
	return options.NewLine("ostreesetup").
		Str("osname", c.OSName).
		Str("remote", c.Remote).
		Str("url", c.URL).
		Str("ref", c.Ref).
		Flag("nogpg", c.NoGPG).
		String()
}

var methodTypes = []Type{
	{Name: "F20_Method", Keyword: "url", Version: version.F20, Schemas: methodSchemas, New: newMethod},
	{Name: "F27_Method", Keyword: "url", Version: version.F27, Schemas: methodSchemas, New: newMethod},
	{Name: "F21_OSTreeSetup", Keyword: "ostreesetup", Version: version.F21, Schemas: schemas(ostreeSetupSchema), New: newOSTreeSetup},
}
