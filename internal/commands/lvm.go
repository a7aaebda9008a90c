// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package commands

import (
	"github.com/specialistvlad/gokickstart/internal/kserrors"
	"github.com/specialistvlad/gokickstart/internal/options"
	"github.com/specialistvlad/gokickstart/internal/version"
)

// VolGroupData is one LVM volume group.
type VolGroupData struct {
	dataLine
	VGName          string   `ks:"name"`
	PhysVols        []string `ks:"physvols"`
	PESize          int      `ks:"pesize"`
	ReservedSpace   int      `ks:"reserved-space"`
	ReservedPercent int      `ks:"reserved-percent"`
	UseExisting     bool     `ks:"useexisting"`
}

func (d *VolGroupData) String() string {
	return options.NewLine("volgroup", d.VGName).
		Num("pesize", d.PESize).
		Num("reserved-space", d.ReservedSpace).
		Num("reserved-percent", d.ReservedPercent).
		Flag("useexisting", d.UseExisting).
		Args(d.PhysVols).
		String()
}

var volGroupSchema = &options.Schema{
	Command: "volgroup",
	Args:    []options.Arg{{Dest: "name", Required: true}},
	Rest:    "physvols",
	Options: []options.Option{
		{Name: "pesize", Kind: options.Int},
		{Name: "reserved-space", Kind: options.Int, Introduced: version.F21},
		{Name: "reserved-percent", Kind: options.Int, Introduced: version.F21},
		{Name: "useexisting", Aliases: []string{"noformat"}, Kind: options.Bool},
	},
}

func newVolGroup(t Type) Command {
	c := newRepeatable(t)
	c.check = func(inv *Invocation, res *options.Result) error {
		if err := exclusive(res, inv.Keyword, "reserved-space", "reserved-percent"); err != nil {
			return err
		}
		if res.Has("reserved-percent") {
			if pct := res.Int("reserved-percent"); pct <= 0 || pct >= 100 {
				return kserrors.New(kserrors.Value, "volume group reserved space percentage must be between 1 and 99")
			}
		}
		if len(res.List("physvols")) == 0 && !res.Bool("useexisting") {
			return kserrors.New(kserrors.Value, "volume group %s requires at least one physical volume", res.String("name"))
		}
		return nil
	}
	c.key = dest("name")
	c.duplicate = "a volume group with the name %s has already been defined"
	return c
}

// LogVolData is one LVM logical volume.
type LogVolData struct {
	dataLine
	Encryption
	Mountpoint   string   `ks:"mountpoint"`
	VGName       string   `ks:"vgname"`
	Name         string   `ks:"name"`
	Size         int      `ks:"size"`
	MaxSize      int      `ks:"maxsize"`
	Percent      int      `ks:"percent"`
	Grow         bool     `ks:"grow"`
	Recommended  bool     `ks:"recommended"`
	Hibernation  bool     `ks:"hibernation"`
	Resize       bool     `ks:"resize"`
	UseExisting  bool     `ks:"useexisting"`
	Thin         bool     `ks:"thin"`
	ThinPool     bool     `ks:"thinpool"`
	PoolName     string   `ks:"poolname"`
	ChunkSize    int      `ks:"chunksize"`
	MetadataSize int      `ks:"metadatasize"`
	CacheSize    int      `ks:"cachesize"`
	CacheMode    string   `ks:"cachemode"`
	CachePVs     []string `ks:"cachepvs"`
	FSType       string   `ks:"fstype"`
	FSOptions    string   `ks:"fsoptions"`
	MkfsOptions  string   `ks:"mkfsoptions"`
	FSProfile    string   `ks:"fsprofile"`
	Label        string   `ks:"label"`
	NoFormat     bool     `ks:"noformat"`
}

func (d *LogVolData) String() string {
	l := options.NewLine("logvol", d.Mountpoint).
		Str("vgname", d.VGName).
		Str("name", d.Name).
		Str("fstype", d.FSType).
		Num("size", d.Size).
		Flag("grow", d.Grow).
		Num("maxsize", d.MaxSize).
		Num("percent", d.Percent).
		Flag("recommended", d.Recommended).
		Flag("hibernation", d.Hibernation).
		Flag("resize", d.Resize).
		Flag("useexisting", d.UseExisting).
		Flag("thin", d.Thin).
		Flag("thinpool", d.ThinPool).
		Str("poolname", d.PoolName).
		Num("chunksize", d.ChunkSize).
		Num("metadatasize", d.MetadataSize).
		Num("cachesize", d.CacheSize).
		Str("cachemode", d.CacheMode).
		List("cachepvs", d.CachePVs).
		Str("fsoptions", d.FSOptions).
		Str("mkfsoptions", d.MkfsOptions).
		Str("fsprofile", d.FSProfile).
		Str("label", d.Label).
		Flag("noformat", d.NoFormat)
	d.Encryption.write(l)
	return l.String()
}

var logVolSchema = &options.Schema{
	Command: "logvol",
	Args:    []options.Arg{{Dest: "mountpoint", Required: true}},
	Options: join([]options.Option{
		{Name: "vgname", Kind: options.String, Required: true},
		{Name: "name", Kind: options.String, Required: true},
		{Name: "size", Kind: options.Int},
		{Name: "maxsize", Kind: options.Int},
		{Name: "percent", Kind: options.Int},
		{Name: "grow", Kind: options.Bool},
		{Name: "recommended", Kind: options.Bool},
		{Name: "hibernation", Kind: options.Bool, Introduced: version.F22},
		{Name: "resize", Kind: options.Bool},
		{Name: "useexisting", Kind: options.Bool},
		{Name: "thin", Kind: options.Bool},
		{Name: "thinpool", Kind: options.Bool},
		{Name: "poolname", Kind: options.String},
		{Name: "chunksize", Kind: options.Int},
		{Name: "metadatasize", Kind: options.Int},
		{Name: "cachesize", Kind: options.Int, Introduced: version.F23},
		{Name: "cachemode", Kind: options.String, Choices: []string{"writeback", "writethrough"}, Introduced: version.F23},
		{Name: "cachepvs", Kind: options.List, Introduced: version.F23},
	}, formatOptions(), encryptionOptions()),
}

func newLogVol(t Type) Command {
	c := newRepeatable(t)
	c.check = func(inv *Invocation, res *options.Result) error {
		if res.Bool("thin") && !res.Has("poolname") {
			return kserrors.New(kserrors.Value, "thin volumes require --poolname to specify a thin pool")
		}
		if res.Bool("thin") && res.Bool("thinpool") {
			return kserrors.New(kserrors.Value, "--thin and --thinpool cannot both be given")
		}
		if res.Bool("resize") && !res.Has("size") {
			return kserrors.New(kserrors.Value, "--resize requires --size to specify the new size of the logical volume")
		}
		if res.Has("cachesize") != res.Has("cachepvs") {
			return kserrors.New(kserrors.Value, "--cachesize and --cachepvs must be given together")
		}
		return exclusive(res, inv.Keyword, "size", "percent", "recommended")
	}
	c.key = mountpointKey
	c.duplicate = "a logical volume with the mountpoint %s has already been defined"
	return c
}

var lvmTypes = []Type{
	{Name: "F20_VolGroup", Keyword: "volgroup", Version: version.F20, Priority: priorityVolGroup, DataKind: "VolGroupData", Schemas: schemas(volGroupSchema), New: newVolGroup},
	{Name: "F21_VolGroup", Keyword: "volgroup", Version: version.F21, Priority: priorityVolGroup, DataKind: "VolGroupData", Schemas: schemas(volGroupSchema), New: newVolGroup},

	{Name: "F20_LogVol", Keyword: "logvol", Version: version.F20, Priority: priorityLogVol, DataKind: "LogVolData", Schemas: schemas(logVolSchema), New: newLogVol},
	{Name: "F22_LogVol", Keyword: "logvol", Version: version.F22, Priority: priorityLogVol, DataKind: "LogVolData", Schemas: schemas(logVolSchema), New: newLogVol},
	{Name: "F23_LogVol", Keyword: "logvol", Version: version.F23, Priority: priorityLogVol, DataKind: "LogVolData", Schemas: schemas(logVolSchema), New: newLogVol},
	{Name: "F25_LogVol", Keyword: "logvol", Version: version.F25, Priority: priorityLogVol, DataKind: "LogVolData", Schemas: schemas(logVolSchema), New: newLogVol},
	{Name: "F29_LogVol", Keyword: "logvol", Version: version.F29, Priority: priorityLogVol, DataKind: "LogVolData", Schemas: schemas(logVolSchema), New: newLogVol},
}

var lvmDataTypes = []DataType{
	{Name: "F20_VolGroupData", Kind: "VolGroupData", New: func() Data { return &VolGroupData{} }},
	{Name: "F21_VolGroupData", Kind: "VolGroupData", New: func() Data { return &VolGroupData{} }},
	{Name: "F20_LogVolData", Kind: "LogVolData", New: func() Data { return &LogVolData{} }},
	{Name: "F23_LogVolData", Kind: "LogVolData", New: func() Data { return &LogVolData{} }},
	{Name: "F29_LogVolData", Kind: "LogVolData", New: func() Data { return &LogVolData{} }},
}
