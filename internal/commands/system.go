// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package commands

import (
	"github.com/specialistvlad/gokickstart/internal/kserrors"
	"github.com/specialistvlad/gokickstart/internal/options"
	"github.com/specialistvlad/gokickstart/internal/version"
)

// Switch is a command that takes no arguments; only its presence counts.
type Switch struct {
	base
}

func newSwitch(t Type) Command {
	return &Switch{base: newBase(t)}
}

func (c *Switch) Parse(inv *Invocation) error {
	if err := noArgs(inv); err != nil {
		return err
	}
	c.line = inv.Line
	c.seen = true
	return nil
}

func (c *Switch) String() string {
	if !c.seen {
		return ""
	}
	return c.typ.Keyword + "\n"
}

// Raw keeps its arguments verbatim. Used by commands that pass their
// options through to another tool.
type Raw struct {
	base
	Args []string
}

func newRaw(t Type) Command {
	return &Raw{base: newBase(t)}
}

func (c *Raw) Parse(inv *Invocation) error {
	if len(inv.Args) == 0 {
		return kserrors.New(kserrors.Value, "the %s command requires arguments", inv.Keyword)
	}
	if c.typ.Keyword == "auth" && c.typ.Version >= version.F28 {
		inv.Warn(kserrors.Deprecation, "the %s command will be deprecated, use authselect instead", inv.Keyword)
	}
	c.Args = append([]string(nil), inv.Args...)
	c.line = inv.Line
	c.seen = true
	return nil
}

func (c *Raw) String() string {
	if !c.seen {
		return ""
	}
	return options.NewLine(c.typ.Keyword).Args(c.Args).String()
}

// Keyboard sets the console and X layouts.
type Keyboard struct {
	base
	Layout   string   `ks:"layout"`
	VCKeymap string   `ks:"vckeymap"`
	XLayouts []string `ks:"xlayouts"`
	Switches []string `ks:"switch"`
}

var keyboardSchema = &options.Schema{
	Command: "keyboard",
	Args:    []options.Arg{{Dest: "layout"}},
	Options: []options.Option{
		{Name: "vckeymap", Kind: options.String},
		{Name: "xlayouts", Kind: options.List},
		{Name: "switch", Kind: options.List},
	},
}

func newKeyboard(t Type) Command {
	return &Keyboard{base: newBase(t)}
}

func (c *Keyboard) Parse(inv *Invocation) error {
	res, err := c.parse(inv)
	if err != nil {
		return err
	}
	if !res.Has("layout") && !res.Has("vckeymap") && !res.Has("xlayouts") {
		return kserrors.New(kserrors.Value, "at least one of a layout argument, --vckeymap or --xlayouts must be given for the keyboard command")
	}
	return options.Decode(res, c)
}

func (c *Keyboard) String() string {
	if !c.seen {
		return ""
	}
	return options.NewLine("keyboard").
		Str("vckeymap", c.VCKeymap).
		List("xlayouts", c.XLayouts).
		List("switch", c.Switches).
		Arg(c.Layout).
		String()
}

// Lang sets the system language.
type Lang struct {
	base
	Lang       string   `ks:"lang"`
	AddSupport []string `ks:"addsupport"`
}

var langSchema = &options.Schema{
	Command: "lang",
	Args:    []options.Arg{{Dest: "lang", Required: true}},
	Options: []options.Option{{Name: "addsupport", Kind: options.List}},
}

func newLang(t Type) Command {
	return &Lang{base: newBase(t)}
}

func (c *Lang) Parse(inv *Invocation) error {
	res, err := c.parse(inv)
	if err != nil {
		return err
	}
	return options.Decode(res, c)
}

func (c *Lang) String() string {
	if !c.seen {
		return ""
	}
	return options.NewLine("lang", c.Lang).List("addsupport", c.AddSupport).String()
}

// Timezone sets the system time zone and time synchronization.
type Timezone struct {
	base
	Timezone   string   `ks:"timezone"`
	IsUTC      bool     `ks:"isutc"`
	NoNTP      bool     `ks:"nontp"`
	NTPServers []string `ks:"ntpservers"`
}

var timezoneSchema = &options.Schema{
	Command: "timezone",
	Args:    []options.Arg{{Dest: "timezone"}},
	Options: []options.Option{
		{Name: "utc", Aliases: []string{"isUtc"}, Dest: "isutc", Kind: options.Bool},
		{Name: "nontp", Kind: options.Bool},
		{Name: "ntpservers", Kind: options.List},
	},
}

func newTimezone(t Type) Command {
	return &Timezone{base: newBase(t)}
}

func (c *Timezone) Parse(inv *Invocation) error {
	res, err := c.parse(inv)
	if err != nil {
		return err
	}
	if !res.Has("timezone") && (c.typ.Version < version.F25 || len(res.Values) == 0) {
		return kserrors.New(kserrors.Value, "a single argument is expected for the timezone command")
	}
	if c.typ.Version >= version.F25 {
		if err := exclusive(res, inv.Keyword, "nontp", "ntpservers"); err != nil {
			return err
		}
	}
	return options.Decode(res, c)
}

func (c *Timezone) String() string {
	if !c.seen {
		return ""
	}
	return options.NewLine("timezone", c.Timezone).
		Flag("utc", c.IsUTC).
		Flag("nontp", c.NoNTP).
		List("ntpservers", c.NTPServers).
		String()
}

// SELinux sets the SELinux mode; the last mode switch wins.
type SELinux struct {
	base
	Mode string `ks:"selinux"`
}

var selinuxSchema = &options.Schema{
	Command: "selinux",
	Options: []options.Option{
		{Name: "enforcing", Dest: "selinux", Kind: options.Bool, Const: "enforcing"},
		{Name: "permissive", Dest: "selinux", Kind: options.Bool, Const: "permissive"},
		{Name: "disabled", Dest: "selinux", Kind: options.Bool, Const: "disabled"},
	},
}

func newSELinux(t Type) Command {
	return &SELinux{base: newBase(t)}
}

func (c *SELinux) Parse(inv *Invocation) error {
	res, err := c.parse(inv)
	if err != nil {
		return err
	}
	return options.Decode(res, c)
}

func (c *SELinux) String() string {
	if !c.seen || c.Mode == "" {
		return ""
	}
	return options.NewLine("selinux").Flag(c.Mode, true).String()
}

// Services enables and disables systemd units. Each invocation replaces
// the lists it names.
type Services struct {
	base
	Enabled  []string `ks:"enabled"`
	Disabled []string `ks:"disabled"`
}

var servicesSchema = &options.Schema{
	Command: "services",
	Options: []options.Option{
		{Name: "enabled", Kind: options.List},
		{Name: "disabled", Kind: options.List},
	},
}

func newServices(t Type) Command {
	return &Services{base: newBase(t)}
}

func (c *Services) Parse(inv *Invocation) error {
	res, err := c.parse(inv)
	if err != nil {
		return err
	}
	if !res.Has("enabled") && !res.Has("disabled") {
		return kserrors.New(kserrors.Value, "one of --disabled or --enabled must be provided for the services command")
	}
	return options.Decode(res, c)
}

func (c *Services) String() string {
	if !c.seen {
		return ""
	}
	return options.NewLine("services").List("disabled", c.Disabled).List("enabled", c.Enabled).String()
}

// Firewall configures the installed system firewall. It is enabled unless
// --disabled is given.
type Firewall struct {
	base
	Enabled           bool     `ks:"enabled"`
	Trusts            []string `ks:"trust"`
	Ports             []string `ks:"port"`
	Services          []string `ks:"service"`
	RemoveServices    []string `ks:"remove-service"`
	SSH               bool     `ks:"ssh"`
	SMTP              bool     `ks:"smtp"`
	HTTP              bool     `ks:"http"`
	FTP               bool     `ks:"ftp"`
	UseSystemDefaults bool     `ks:"use-system-defaults"`
}

var firewallSchema = &options.Schema{
	Command: "firewall",
	Options: []options.Option{
		{Name: "enabled", Aliases: []string{"enable"}, Kind: options.Bool},
		{Name: "disabled", Aliases: []string{"disable"}, Dest: "enabled", Kind: options.Bool, Const: false},
		{Name: "trust", Kind: options.List, Append: true},
		{Name: "port", Kind: options.List, Append: true},
		{Name: "service", Kind: options.List, Append: true},
		{Name: "remove-service", Kind: options.List, Append: true},
		{Name: "ssh", Kind: options.Bool},
		{Name: "smtp", Kind: options.Bool},
		{Name: "http", Kind: options.Bool},
		{Name: "ftp", Kind: options.Bool},
		{Name: "use-system-defaults", Kind: options.Bool, Introduced: version.F28},
	},
}

func newFirewall(t Type) Command {
	return &Firewall{base: newBase(t), Enabled: true}
}

func (c *Firewall) Parse(inv *Invocation) error {
	res, err := c.parse(inv)
	if err != nil {
		return err
	}
	if res.Bool("use-system-defaults") && len(res.Values) > 1 {
		inv.Warn(kserrors.General, "firewall --use-system-defaults ignores every other option")
	}
	return options.Decode(res, c)
}

func (c *Firewall) String() string {
	if !c.seen {
		return ""
	}
	if c.UseSystemDefaults {
		return "firewall --use-system-defaults\n"
	}
	l := options.NewLine("firewall")
	if !c.Enabled {
		return l.Flag("disabled", true).String()
	}
	return l.Flag("enabled", true).
		Flag("ssh", c.SSH).
		Flag("smtp", c.SMTP).
		Flag("http", c.HTTP).
		Flag("ftp", c.FTP).
		List("trust", c.Trusts).
		List("port", c.Ports).
		List("service", c.Services).
		List("remove-service", c.RemoveServices).
		String()
}

// Firstboot controls the initial setup tool on first boot.
type Firstboot struct {
	base
	Mode string `ks:"firstboot"`
}

var firstbootSchema = &options.Schema{
	Command: "firstboot",
	Options: []options.Option{
		{Name: "enable", Aliases: []string{"enabled"}, Dest: "firstboot", Kind: options.Bool, Const: "enable"},
		{Name: "disable", Aliases: []string{"disabled"}, Dest: "firstboot", Kind: options.Bool, Const: "disable"},
		{Name: "reconfig", Dest: "firstboot", Kind: options.Bool, Const: "reconfig"},
	},
}

func newFirstboot(t Type) Command {
	return &Firstboot{base: newBase(t)}
}

func (c *Firstboot) Parse(inv *Invocation) error {
	res, err := c.parse(inv)
	if err != nil {
		return err
	}
	return options.Decode(res, c)
}

func (c *Firstboot) String() string {
	if !c.seen || c.Mode == "" {
		return ""
	}
	return options.NewLine("firstboot").Flag(c.Mode, true).String()
}

// Logging sends installer logs to a remote host.
type Logging struct {
	base
	Host  string `ks:"host"`
	Port  int    `ks:"port"`
	Level string `ks:"level"`
}

var loggingSchema = &options.Schema{
	Command: "logging",
	Options: []options.Option{
		{Name: "host", Kind: options.String},
		{Name: "port", Kind: options.Int},
		{Name: "level", Kind: options.String, Choices: []string{"debug", "info", "warning", "error", "critical"}, Deprecated: version.F29},
	},
}

func newLogging(t Type) Command {
	return &Logging{base: newBase(t)}
}

func (c *Logging) Parse(inv *Invocation) error {
	res, err := c.parse(inv)
	if err != nil {
		return err
	}
	if res.Has("port") && !res.Has("host") && c.Host == "" {
		return kserrors.New(kserrors.Value, "can't specify --port without --host")
	}
	return options.Decode(res, c)
}

func (c *Logging) String() string {
	if !c.seen {
		return ""
	}
	return options.NewLine("logging").Str("host", c.Host).Num("port", c.Port).Str("level", c.Level).String()
}

// Eula records acceptance of the license agreement.
type Eula struct {
	base
	Agreed bool `ks:"agreed"`
}

var eulaSchema = &options.Schema{
	Command: "eula",
	Options: []options.Option{
		{Name: "agreed", Aliases: []string{"agree", "accepted", "accept"}, Kind: options.Bool, Required: true},
	},
}

func newEula(t Type) Command {
	return &Eula{base: newBase(t)}
}

func (c *Eula) Parse(inv *Invocation) error {
	res, err := c.parse(inv)
	if err != nil {
		return err
	}
	return options.Decode(res, c)
}

func (c *Eula) String() string {
	if !c.seen {
		return ""
	}
	return options.NewLine("eula").Flag("agreed", c.Agreed).String()
}

// Realm joins an Active Directory or IPA domain.
type Realm struct {
	base
	Action             string `ks:"action"`
	Domain             string `ks:"domain"`
	NoPassword         bool   `ks:"no-password"`
	OneTimePassword    string `ks:"one-time-password"`
	ClientSoftware     string `ks:"client-software"`
	ServerSoftware     string `ks:"server-software"`
	MembershipSoftware string `ks:"membership-software"`
	ComputerOU         string `ks:"computer-ou"`
}

var realmSchema = &options.Schema{
	Command: "realm",
	Args:    []options.Arg{{Dest: "action", Required: true}, {Dest: "domain", Required: true}},
	Options: []options.Option{
		{Name: "no-password", Kind: options.Bool},
		{Name: "one-time-password", Kind: options.String},
		{Name: "client-software", Kind: options.String},
		{Name: "server-software", Kind: options.String},
		{Name: "membership-software", Kind: options.String},
		{Name: "computer-ou", Kind: options.String},
	},
}

func newRealm(t Type) Command {
	return &Realm{base: newBase(t)}
}

func (c *Realm) Parse(inv *Invocation) error {
	res, err := c.parse(inv)
	if err != nil {
		return err
	}
	if res.String("action") != "join" {
		return kserrors.New(kserrors.Value, "unsupported realm %q command", res.String("action"))
	}
	return options.Decode(res, c)
}

func (c *Realm) String() string {
	if !c.seen {
		return ""
	}
	return options.NewLine("realm", c.Action).
		Flag("no-password", c.NoPassword).
		Str("one-time-password", c.OneTimePassword).
		Str("client-software", c.ClientSoftware).
		Str("server-software", c.ServerSoftware).
		Str("membership-software", c.MembershipSoftware).
		Str("computer-ou", c.ComputerOU).
		Arg(c.Domain).
		String()
}

// Reboot selects what happens after the installation; the keyword it was
// written with is the action.
type Reboot struct {
	base
	Action string
	Eject  bool `ks:"eject"`
	Kexec  bool `ks:"kexec"`
}

var rebootSchema = &options.Schema{
	Command: "reboot",
	Options: []options.Option{
		{Name: "eject", Kind: options.Bool},
		{Name: "kexec", Kind: options.Bool, Introduced: version.F23},
	},
}

func newReboot(t Type) Command {
	return &Reboot{base: newBase(t)}
}

func (c *Reboot) Parse(inv *Invocation) error {
	res, err := c.parse(inv)
	if err != nil {
		return err
	}
	c.Action = inv.Keyword
	return options.Decode(res, c)
}

func (c *Reboot) String() string {
	if !c.seen {
		return ""
	}
	action := c.Action
	if action == "" {
		action = "reboot"
	}
	return options.NewLine(action).Flag("eject", c.Eject).Flag("kexec", c.Kexec).String()
}

var systemTypes = []Type{
	{Name: "F20_Auth", Keyword: "auth", Version: version.F20, New: newRaw},
	{Name: "F28_Auth", Keyword: "auth", Version: version.F28, New: newRaw},
	{Name: "F28_Authselect", Keyword: "authselect", Version: version.F28, New: newRaw},

	{Name: "F20_Keyboard", Keyword: "keyboard", Version: version.F20, Schemas: schemas(keyboardSchema), New: newKeyboard},
	{Name: "F20_Lang", Keyword: "lang", Version: version.F20, Schemas: schemas(langSchema), New: newLang},
	{Name: "F20_Timezone", Keyword: "timezone", Version: version.F20, Schemas: schemas(timezoneSchema), New: newTimezone},
	{Name: "F25_Timezone", Keyword: "timezone", Version: version.F25, Schemas: schemas(timezoneSchema), New: newTimezone},
	{Name: "F20_SELinux", Keyword: "selinux", Version: version.F20, Schemas: schemas(selinuxSchema), New: newSELinux},
	{Name: "F20_Services", Keyword: "services", Version: version.F20, Schemas: schemas(servicesSchema), New: newServices},
	{Name: "F20_Firewall", Keyword: "firewall", Version: version.F20, Schemas: schemas(firewallSchema), New: newFirewall},
	{Name: "F28_Firewall", Keyword: "firewall", Version: version.F28, Schemas: schemas(firewallSchema), New: newFirewall},
	{Name: "F20_Firstboot", Keyword: "firstboot", Version: version.F20, Schemas: schemas(firstbootSchema), New: newFirstboot},
	{Name: "F20_Logging", Keyword: "logging", Version: version.F20, Schemas: schemas(loggingSchema), New: newLogging},
	{Name: "F29_Logging", Keyword: "logging", Version: version.F29, Schemas: schemas(loggingSchema), New: newLogging},
	{Name: "F20_Eula", Keyword: "eula", Version: version.F20, Schemas: schemas(eulaSchema), New: newEula},
	{Name: "F20_Realm", Keyword: "realm", Version: version.F20, Schemas: schemas(realmSchema), New: newRealm},
	{Name: "F20_Reboot", Keyword: "reboot", Version: version.F20, Schemas: schemas(rebootSchema), New: newReboot},
	{Name: "F23_Reboot", Keyword: "reboot", Version: version.F23, Schemas: schemas(rebootSchema), New: newReboot},

	{Name: "F20_SkipX", Keyword: "skipx", Version: version.F20, New: newSwitch},
	{Name: "F20_MediaCheck", Keyword: "mediacheck", Version: version.F20, New: newSwitch},
	{Name: "F20_Install", Keyword: "install", Version: version.F20, New: newSwitch},
}
