// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package commands

import (
	"github.com/specialistvlad/gokickstart/internal/kserrors"
	"github.com/specialistvlad/gokickstart/internal/options"
	"github.com/specialistvlad/gokickstart/internal/version"
)

// cryptOptions are the password encoding switches; --plaintext undoes
// --iscrypted.
func cryptOptions() []options.Option {
	return []options.Option{
		{Name: "iscrypted", Kind: options.Bool},
		{Name: "plaintext", Dest: "iscrypted", Kind: options.Bool, Const: false},
		{Name: "lock", Kind: options.Bool},
	}
}

// RootPw sets the root password. Each invocation replaces the previous
// one, since the switches only make sense with the password they came with.
type RootPw struct {
	base
	Password  string `ks:"password"`
	IsCrypted bool   `ks:"iscrypted"`
	Lock      bool   `ks:"lock"`
}

var rootPwSchema = &options.Schema{
	Command: "rootpw",
	Args:    []options.Arg{{Dest: "password"}},
	Options: cryptOptions(),
}

func newRootPw(t Type) Command {
	return &RootPw{base: newBase(t)}
}

func (c *RootPw) Parse(inv *Invocation) error {
	res, err := c.parse(inv)
	if err != nil {
		return err
	}
	if !res.Has("password") && !res.Bool("lock") {
		return kserrors.New(kserrors.Value, "a single argument is expected for the rootpw command")
	}
	c.Password, c.IsCrypted, c.Lock = "", false, false
	return options.Decode(res, c)
}

func (c *RootPw) String() string {
	if !c.seen {
		return ""
	}
	return options.NewLine("rootpw").
		Flag("iscrypted", c.IsCrypted).
		Flag("lock", c.Lock).
		Arg(c.Password).
		String()
}

// UserData is one user account.
type UserData struct {
	dataLine
	Name      string   `ks:"name"`
	Gecos     string   `ks:"gecos"`
	Groups    []string `ks:"groups"`
	HomeDir   string   `ks:"homedir"`
	Shell     string   `ks:"shell"`
	UID       *int     `ks:"uid"`
	GID       *int     `ks:"gid"`
	Password  string   `ks:"password"`
	IsCrypted bool     `ks:"iscrypted"`
	Lock      bool     `ks:"lock"`
}

func (d *UserData) String() string {
	return options.NewLine("user").
		Str("name", d.Name).
		Str("gecos", d.Gecos).
		List("groups", d.Groups).
		Str("homedir", d.HomeDir).
		Str("shell", d.Shell).
		Int("uid", d.UID).
		Int("gid", d.GID).
		Flag("iscrypted", d.IsCrypted).
		Flag("lock", d.Lock).
		Str("password", d.Password).
		String()
}

var userSchema = &options.Schema{
	Command: "user",
	Options: join([]options.Option{
		{Name: "name", Kind: options.String, Required: true},
		{Name: "gecos", Kind: options.String},
		{Name: "groups", Kind: options.List},
		{Name: "homedir", Kind: options.String},
		{Name: "shell", Kind: options.String},
		{Name: "uid", Kind: options.Int},
		{Name: "gid", Kind: options.Int},
		{Name: "password", Kind: options.String},
	}, cryptOptions()),
}

func newUser(t Type) Command {
	c := newRepeatable(t)
	c.key = dest("name")
	c.duplicate = "a user with the name %s has already been defined"
	return c
}

// GroupData is one user group.
type GroupData struct {
	dataLine
	Name string `ks:"name"`
	GID  *int   `ks:"gid"`
}

func (d *GroupData) String() string {
	return options.NewLine("group").Str("name", d.Name).Int("gid", d.GID).String()
}

var groupSchema = &options.Schema{
	Command: "group",
	Options: []options.Option{
		{Name: "name", Kind: options.String, Required: true},
		{Name: "gid", Kind: options.Int},
	},
}

func newGroup(t Type) Command {
	c := newRepeatable(t)
	c.key = dest("name")
	c.duplicate = "a group with the name %s has already been defined"
	return c
}

// SshKeyData is one authorized key installed for a user.
type SshKeyData struct {
	dataLine
	Username string `ks:"username"`
	Key      string `ks:"key"`
}

func (d *SshKeyData) String() string {
	return options.NewLine("sshkey").Str("username", d.Username).Arg(d.Key).String()
}

var sshKeySchema = &options.Schema{
	Command: "sshkey",
	Args:    []options.Arg{{Dest: "key", Required: true}},
	Options: []options.Option{{Name: "username", Kind: options.String, Required: true}},
}

func newSshKey(t Type) Command {
	c := newRepeatable(t)
	c.key = func(res *options.Result) string {
		return res.String("username") + " " + res.String("key")
	}
	c.duplicate = "the ssh key %q has already been defined"
	return c
}

// SshPwData is one account of the installation environment ssh server.
type SshPwData struct {
	dataLine
	Username  string `ks:"username"`
	Password  string `ks:"password"`
	IsCrypted bool   `ks:"iscrypted"`
	Lock      bool   `ks:"lock"`
	SshKey    bool   `ks:"sshkey"`
}

func (d *SshPwData) String() string {
	return options.NewLine("sshpw").
		Str("username", d.Username).
		Flag("iscrypted", d.IsCrypted).
		Flag("lock", d.Lock).
		Flag("sshkey", d.SshKey).
		Arg(d.Password).
		String()
}

var sshPwSchema = &options.Schema{
	Command: "sshpw",
	Args:    []options.Arg{{Dest: "password", Required: true}},
	Options: join([]options.Option{
		{Name: "username", Kind: options.String, Required: true},
		{Name: "sshkey", Kind: options.Bool, Introduced: version.F24},
	}, cryptOptions()),
}

func newSshPw(t Type) Command {
	c := newRepeatable(t)
	c.key = dest("username")
	c.duplicate = "an ssh user with the name %s has already been defined"
	return c
}

var userTypes = []Type{
	{Name: "F20_RootPw", Keyword: "rootpw", Version: version.F20, Schemas: schemas(rootPwSchema), New: newRootPw},

	{Name: "F20_User", Keyword: "user", Version: version.F20, DataKind: "UserData", Schemas: schemas(userSchema), New: newUser},
	{Name: "F20_Group", Keyword: "group", Version: version.F20, DataKind: "GroupData", Schemas: schemas(groupSchema), New: newGroup},
	{Name: "F22_SshKey", Keyword: "sshkey", Version: version.F22, DataKind: "SshKeyData", Schemas: schemas(sshKeySchema), New: newSshKey},

	{Name: "F20_SshPw", Keyword: "sshpw", Version: version.F20, DataKind: "SshPwData", Schemas: schemas(sshPwSchema), New: newSshPw},
	{Name: "F24_SshPw", Keyword: "sshpw", Version: version.F24, DataKind: "SshPwData", Schemas: schemas(sshPwSchema), New: newSshPw},
}

var userDataTypes = []DataType{
	{Name: "F20_UserData", Kind: "UserData", New: func() Data { return &UserData{} }},
	{Name: "F20_GroupData", Kind: "GroupData", New: func() Data { return &GroupData{} }},
	{Name: "F22_SshKeyData", Kind: "SshKeyData", New: func() Data { return &SshKeyData{} }},
	{Name: "F20_SshPwData", Kind: "SshPwData", New: func() Data { return &SshPwData{} }},
	{Name: "F24_SshPwData", Kind: "SshPwData", New: func() Data { return &SshPwData{} }},
}
