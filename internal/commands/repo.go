// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package commands

import (
	"github.com/specialistvlad/gokickstart/internal/kserrors"
	"github.com/specialistvlad/gokickstart/internal/options"
	"github.com/specialistvlad/gokickstart/internal/version"
	"github.com/zclconf/go-cty/cty"
)

// RepoData is one additional package repository.
type RepoData struct {
	dataLine
	Name          string   `ks:"name"`
	BaseURL       string   `ks:"baseurl"`
	Mirrorlist    string   `ks:"mirrorlist"`
	Metalink      string   `ks:"metalink"`
	Cost          *int     `ks:"cost"`
	ExcludePkgs   []string `ks:"excludepkgs"`
	IncludePkgs   []string `ks:"includepkgs"`
	Proxy         string   `ks:"proxy"`
	IgnoreGroups  *bool    `ks:"ignoregroups"`
	NoVerifySSL   bool     `ks:"noverifyssl"`
	Install       bool     `ks:"install"`
	SSLCACert     string   `ks:"sslcacert"`
	SSLClientCert string   `ks:"sslclientcert"`
	SSLClientKey  string   `ks:"sslclientkey"`
}

func (d *RepoData) String() string {
	return options.NewLine("repo").
		Str("name", d.Name).
		Str("baseurl", d.BaseURL).
		Str("mirrorlist", d.Mirrorlist).
		Str("metalink", d.Metalink).
		Int("cost", d.Cost).
		List("excludepkgs", d.ExcludePkgs).
		List("includepkgs", d.IncludePkgs).
		Str("proxy", d.Proxy).
		BoolValue("ignoregroups", d.IgnoreGroups).
		Flag("noverifyssl", d.NoVerifySSL).
		Flag("install", d.Install).
		Str("sslcacert", d.SSLCACert).
		Str("sslclientcert", d.SSLClientCert).
		Str("sslclientkey", d.SSLClientKey).
		String()
}

func explicitBool(raw string) (cty.Value, error) {
	on, err := options.ParseBool(raw)
	if err != nil {
		return cty.NilVal, err
	}
	return cty.BoolVal(on), nil
}

var repoSchema = &options.Schema{
	Command: "repo",
	Options: []options.Option{
		{Name: "name", Kind: options.String, Required: true},
		{Name: "baseurl", Kind: options.String},
		{Name: "mirrorlist", Kind: options.String},
		{Name: "metalink", Kind: options.String, Introduced: version.F27},
		{Name: "cost", Kind: options.Int},
		{Name: "excludepkgs", Kind: options.List},
		{Name: "includepkgs", Kind: options.List},
		{Name: "proxy", Kind: options.String},
		{Name: "ignoregroups", Kind: options.Custom, Type: cty.Bool, Convert: explicitBool},
		{Name: "noverifyssl", Kind: options.Bool},
		{Name: "install", Kind: options.Bool, Introduced: version.F21},
		{Name: "sslcacert", Kind: options.String, Introduced: version.F27},
		{Name: "sslclientcert", Kind: options.String, Introduced: version.F27},
		{Name: "sslclientkey", Kind: options.String, Introduced: version.F27},
	},
}

func newRepo(t Type) Command {
	c := newRepeatable(t)
	c.check = func(inv *Invocation, res *options.Result) error {
		if !res.Has("baseurl") && !res.Has("mirrorlist") && !res.Has("metalink") {
			return kserrors.New(kserrors.Value, "one of --baseurl, --mirrorlist or --metalink must be provided for the repo command")
		}
		return exclusive(res, inv.Keyword, "baseurl", "mirrorlist", "metalink")
	}
	c.key = dest("name")
	c.duplicate = "a repo with the name %s has already been defined"
	return c
}

// ModuleData enables one module stream.
type ModuleData struct {
	dataLine
	Name   string `ks:"name"`
	Stream string `ks:"stream"`
}

func (d *ModuleData) String() string {
	return options.NewLine("module").Str("name", d.Name).Str("stream", d.Stream).String()
}

var moduleSchema = &options.Schema{
	Command: "module",
	Options: []options.Option{
		{Name: "name", Kind: options.String, Required: true},
		{Name: "stream", Kind: options.String},
	},
}

func newModule(t Type) Command {
	c := newRepeatable(t)
	c.key = dest("name")
	c.duplicate = "the module %s has already been enabled"
	return c
}

var repoTypes = []Type{
	{Name: "F20_Repo", Keyword: "repo", Version: version.F20, DataKind: "RepoData", Schemas: schemas(repoSchema), New: newRepo},
	{Name: "F21_Repo", Keyword: "repo", Version: version.F21, DataKind: "RepoData", Schemas: schemas(repoSchema), New: newRepo},
	{Name: "F27_Repo", Keyword: "repo", Version: version.F27, DataKind: "RepoData", Schemas: schemas(repoSchema), New: newRepo},
	{Name: "F29_Module", Keyword: "module", Version: version.F29, DataKind: "ModuleData", Schemas: schemas(moduleSchema), New: newModule},
}

var repoDataTypes = []DataType{
	{Name: "F20_RepoData", Kind: "RepoData", New: func() Data { return &RepoData{} }},
	{Name: "F21_RepoData", Kind: "RepoData", New: func() Data { return &RepoData{} }},
	{Name: "F27_RepoData", Kind: "RepoData", New: func() Data { return &RepoData{} }},
	{Name: "F29_ModuleData", Kind: "ModuleData", New: func() Data { return &ModuleData{} }},
}
