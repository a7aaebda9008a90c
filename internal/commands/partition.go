// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package commands

import (
	"fmt"
	"strings"

	"github.com/specialistvlad/gokickstart/internal/kserrors"
	"github.com/specialistvlad/gokickstart/internal/options"
	"github.com/specialistvlad/gokickstart/internal/version"
	"github.com/zclconf/go-cty/cty"
)

// PartData is one partition declared with part (or partition).
type PartData struct {
	dataLine
	Encryption
	Mountpoint  string `ks:"mountpoint"`
	Size        int    `ks:"size"`
	MaxSize     int    `ks:"maxsize"`
	Grow        bool   `ks:"grow"`
	Recommended bool   `ks:"recommended"`
	Hibernation bool   `ks:"hibernation"`
	Resize      bool   `ks:"resize"`
	OnPart      string `ks:"onpart"`
	Disk        string `ks:"ondisk"`
	OnBiosDisk  string `ks:"onbiosdisk"`
	AsPrimary   bool   `ks:"asprimary"`
	FSType      string `ks:"fstype"`
	FSOptions   string `ks:"fsoptions"`
	MkfsOptions string `ks:"mkfsoptions"`
	FSProfile   string `ks:"fsprofile"`
	Label       string `ks:"label"`
	NoFormat    bool   `ks:"noformat"`
}

func (d *PartData) String() string {
	l := options.NewLine("part", d.Mountpoint).
		Str("fstype", d.FSType).
		Str("onpart", d.OnPart).
		Str("ondisk", d.Disk).
		Str("onbiosdisk", d.OnBiosDisk).
		Num("size", d.Size).
		Flag("grow", d.Grow).
		Num("maxsize", d.MaxSize).
		Flag("recommended", d.Recommended).
		Flag("hibernation", d.Hibernation).
		Flag("resize", d.Resize).
		Flag("asprimary", d.AsPrimary).
		Str("fsoptions", d.FSOptions).
		Str("mkfsoptions", d.MkfsOptions).
		Str("fsprofile", d.FSProfile).
		Str("label", d.Label).
		Flag("noformat", d.NoFormat)
	d.Encryption.write(l)
	return l.String()
}

var partitionSchema = &options.Schema{
	Command: "part",
	Args:    []options.Arg{{Dest: "mountpoint", Required: true}},
	Options: join([]options.Option{
		{Name: "size", Kind: options.Int},
		{Name: "maxsize", Kind: options.Int},
		{Name: "grow", Kind: options.Bool},
		{Name: "recommended", Kind: options.Bool},
		{Name: "hibernation", Kind: options.Bool, Introduced: version.F22},
		{Name: "resize", Kind: options.Bool, Introduced: version.F23},
		{Name: "onpart", Aliases: []string{"usepart"}, Kind: options.String},
		{Name: "ondisk", Aliases: []string{"ondrive"}, Kind: options.String},
		{Name: "onbiosdisk", Kind: options.String},
		{Name: "asprimary", Kind: options.Bool},
		{Name: "active", Kind: options.Bool, Deprecated: version.F20, Removed: version.F29},
		{Name: "start", Kind: options.Int, Deprecated: version.F20, Removed: version.F29},
		{Name: "end", Kind: options.Int, Deprecated: version.F20, Removed: version.F29},
	}, formatOptions(), encryptionOptions()),
}

func newPartition(t Type) Command {
	c := newRepeatable(t)
	c.check = func(inv *Invocation, res *options.Result) error {
		if res.Bool("resize") && !res.Has("size") {
			return kserrors.New(kserrors.Value, "--resize requires --size to specify the new size of the partition")
		}
		if res.Has("size") && res.Has("recommended") {
			return kserrors.New(kserrors.Value, "options --size and --recommended of the %s command are mutually exclusive", inv.Keyword)
		}
		return nil
	}
	c.key = mountpointKey
	c.duplicate = "a partition with the mountpoint %s has already been defined"
	return c
}

// mountpointKey skips mountpoints that may legitimately repeat.
func mountpointKey(res *options.Result) string {
	mp := res.String("mountpoint")
	if mp == "swap" || mp == "none" || strings.HasPrefix(mp, "raid.") || strings.HasPrefix(mp, "pv.") || strings.HasPrefix(mp, "btrfs.") {
		return ""
	}
	return mp
}

// RaidData is one software RAID device.
type RaidData struct {
	dataLine
	Encryption
	Mountpoint  string   `ks:"mountpoint"`
	Members     []string `ks:"members"`
	Level       string   `ks:"level"`
	Device      string   `ks:"device"`
	Spares      int      `ks:"spares"`
	ChunkSize   int      `ks:"chunksize"`
	FSType      string   `ks:"fstype"`
	FSOptions   string   `ks:"fsoptions"`
	MkfsOptions string   `ks:"mkfsoptions"`
	FSProfile   string   `ks:"fsprofile"`
	Label       string   `ks:"label"`
	NoFormat    bool     `ks:"noformat"`
	UseExisting bool     `ks:"useexisting"`
}

func (d *RaidData) String() string {
	l := options.NewLine("raid", d.Mountpoint).
		Str("device", d.Device).
		Str("level", d.Level).
		Str("fstype", d.FSType).
		Num("spares", d.Spares).
		Num("chunksize", d.ChunkSize).
		Str("fsoptions", d.FSOptions).
		Str("mkfsoptions", d.MkfsOptions).
		Str("fsprofile", d.FSProfile).
		Str("label", d.Label).
		Flag("noformat", d.NoFormat).
		Flag("useexisting", d.UseExisting)
	d.Encryption.write(l)
	return l.Args(d.Members).String()
}

var raidLevels = map[string]string{
	"0": "RAID0", "1": "RAID1", "4": "RAID4", "5": "RAID5", "6": "RAID6", "10": "RAID10",
}

// raidLevel accepts "1", "raid1" and "RAID1" alike.
func raidLevel(raw string) (cty.Value, error) {
	s := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(raw)), "raid")
	if level, ok := raidLevels[s]; ok {
		return cty.StringVal(level), nil
	}
	return cty.NilVal, fmt.Errorf("raid level %q is not supported", raw)
}

var raidSchema = &options.Schema{
	Command: "raid",
	Args:    []options.Arg{{Dest: "mountpoint", Required: true}},
	Rest:    "members",
	Options: join([]options.Option{
		{Name: "level", Kind: options.Custom, Type: cty.String, Convert: raidLevel, Required: true},
		{Name: "device", Kind: options.String, Required: true},
		{Name: "spares", Kind: options.Int},
		{Name: "chunksize", Kind: options.Int},
		{Name: "useexisting", Kind: options.Bool},
	}, formatOptions(), encryptionOptions()),
}

func newRaid(t Type) Command {
	c := newRepeatable(t)
	c.check = func(inv *Invocation, res *options.Result) error {
		if len(res.List("members")) == 0 && !res.Bool("useexisting") && !res.Bool("noformat") {
			return kserrors.New(kserrors.Value, "partitions required for raid")
		}
		return nil
	}
	c.key = dest("device")
	c.duplicate = "a RAID device with the name %s has already been defined"
	return c
}

var partitionTypes = []Type{
	{Name: "F20_Partition", Keyword: "part", Version: version.F20, Priority: priorityPartition, DataKind: "PartData", Schemas: schemas(partitionSchema), New: newPartition},
	{Name: "F22_Partition", Keyword: "part", Version: version.F22, Priority: priorityPartition, DataKind: "PartData", Schemas: schemas(partitionSchema), New: newPartition},
	{Name: "F23_Partition", Keyword: "part", Version: version.F23, Priority: priorityPartition, DataKind: "PartData", Schemas: schemas(partitionSchema), New: newPartition},
	{Name: "F25_Partition", Keyword: "part", Version: version.F25, Priority: priorityPartition, DataKind: "PartData", Schemas: schemas(partitionSchema), New: newPartition},
	{Name: "F29_Partition", Keyword: "part", Version: version.F29, Priority: priorityPartition, DataKind: "PartData", Schemas: schemas(partitionSchema), New: newPartition},

	{Name: "F20_Raid", Keyword: "raid", Version: version.F20, Priority: priorityRaid, DataKind: "RaidData", Schemas: schemas(raidSchema), New: newRaid},
	{Name: "F23_Raid", Keyword: "raid", Version: version.F23, Priority: priorityRaid, DataKind: "RaidData", Schemas: schemas(raidSchema), New: newRaid},
	{Name: "F25_Raid", Keyword: "raid", Version: version.F25, Priority: priorityRaid, DataKind: "RaidData", Schemas: schemas(raidSchema), New: newRaid},
	{Name: "F29_Raid", Keyword: "raid", Version: version.F29, Priority: priorityRaid, DataKind: "RaidData", Schemas: schemas(raidSchema), New: newRaid},
}

var partitionDataTypes = []DataType{
	{Name: "F20_PartData", Kind: "PartData", New: func() Data { return &PartData{} }},
	{Name: "F23_PartData", Kind: "PartData", New: func() Data { return &PartData{} }},
	{Name: "F29_PartData", Kind: "PartData", New: func() Data { return &PartData{} }},
	{Name: "F20_RaidData", Kind: "RaidData", New: func() Data { return &RaidData{} }},
	{Name: "F25_RaidData", Kind: "RaidData", New: func() Data { return &RaidData{} }},
}
