// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package commands

import (
	"github.com/specialistvlad/gokickstart/internal/kserrors"
	"github.com/specialistvlad/gokickstart/internal/options"
	"github.com/specialistvlad/gokickstart/internal/version"
	"github.com/zclconf/go-cty/cty"
)

// Bootloader configures the boot loader. Repeated invocations overwrite the
// fields they name.
type Bootloader struct {
	base
	Location       string   `ks:"location"`
	Append         string   `ks:"append"`
	BootDrive      string   `ks:"boot-drive"`
	DriveOrder     []string `ks:"driveorder"`
	Password       string   `ks:"password"`
	IsCrypted      bool     `ks:"iscrypted"`
	Timeout        *int     `ks:"timeout"`
	Default        string   `ks:"default"`
	LeaveBootOrder bool     `ks:"leavebootorder"`
	ExtLinux       bool     `ks:"extlinux"`
	Disabled       bool     `ks:"disabled"`
	NoMBR          bool     `ks:"nombr"`
	Upgrade        bool     `ks:"upgrade"`
}

var bootloaderSchema = &options.Schema{
	Command: "bootloader",
	Options: []options.Option{
		{Name: "location", Kind: options.String, Choices: []string{"mbr", "partition", "none", "boot"}},
		{Name: "append", Kind: options.String},
		{Name: "boot-drive", Kind: options.String},
		{Name: "driveorder", Kind: options.List},
		{Name: "password", Kind: options.String},
		{Name: "iscrypted", Kind: options.Bool},
		{Name: "md5pass", Dest: "password", Kind: options.String, Removed: version.F22},
		{Name: "timeout", Kind: options.Int},
		{Name: "default", Kind: options.String},
		{Name: "leavebootorder", Kind: options.Bool},
		{Name: "extlinux", Kind: options.Bool},
		{Name: "disabled", Kind: options.Bool, Introduced: version.F21},
		{Name: "nombr", Kind: options.Bool, Introduced: version.F21},
		{Name: "upgrade", Kind: options.Bool, Deprecated: version.F21, Removed: version.F29},
		{Name: "lba32", Kind: options.Bool, Deprecated: version.F20, Removed: version.F29},
		{Name: "linear", Kind: options.Bool, Deprecated: version.F20, Removed: version.F29},
		{Name: "nolinear", Kind: options.Bool, Deprecated: version.F20, Removed: version.F29},
		{Name: "useLilo", Kind: options.Bool, Deprecated: version.F20, Removed: version.F29},
	},
}

func newBootloader(t Type) Command {
	return &Bootloader{base: newBase(t)}
}

func (c *Bootloader) Parse(inv *Invocation) error {
	res, err := c.parse(inv)
	if err != nil {
		return err
	}
	if hasSeen(res, "md5pass") {
		res.Values["iscrypted"] = cty.True
	}
	if res.Bool("disabled") && len(res.Values) > 1 {
		inv.Warn(kserrors.General, "bootloader --disabled ignores every other option")
	}
	return options.Decode(res, c)
}

func (c *Bootloader) String() string {
	if !c.seen {
		return ""
	}
	if c.Disabled {
		return "bootloader --disabled\n"
	}
	return options.NewLine("bootloader").
		Str("location", c.Location).
		Str("append", c.Append).
		Str("boot-drive", c.BootDrive).
		List("driveorder", c.DriveOrder).
		Flag("iscrypted", c.IsCrypted).
		Str("password", c.Password).
		Int("timeout", c.Timeout).
		Str("default", c.Default).
		Flag("leavebootorder", c.LeaveBootOrder).
		Flag("extlinux", c.ExtLinux).
		Flag("nombr", c.NoMBR).
		Flag("upgrade", c.Upgrade).
		String()
}

func hasSeen(res *options.Result, name string) bool {
	for _, s := range res.Seen {
		if s == name {
			return true
		}
	}
	return false
}

var bootloaderTypes = []Type{
	{Name: "F20_Bootloader", Keyword: "bootloader", Version: version.F20, Schemas: schemas(bootloaderSchema), New: newBootloader},
	{Name: "F21_Bootloader", Keyword: "bootloader", Version: version.F21, Schemas: schemas(bootloaderSchema), New: newBootloader},
	{Name: "F22_Bootloader", Keyword: "bootloader", Version: version.F22, Schemas: schemas(bootloaderSchema), New: newBootloader},
	{Name: "F29_Bootloader", Keyword: "bootloader", Version: version.F29, Schemas: schemas(bootloaderSchema), New: newBootloader},
}
