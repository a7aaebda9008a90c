// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package commands

import (
	"fmt"

	"github.com/specialistvlad/gokickstart/internal/kserrors"
	"github.com/specialistvlad/gokickstart/internal/options"
	"github.com/specialistvlad/gokickstart/internal/version"
	"github.com/zclconf/go-cty/cty"
)

// NetworkData is one network device configuration. A line without
// --device configures the first device or only sets the hostname.
type NetworkData struct {
	dataLine
	BootProto     string            `ks:"bootproto"`
	Device        string            `ks:"device"`
	IP            string            `ks:"ip"`
	IPv6          string            `ks:"ipv6"`
	Gateway       string            `ks:"gateway"`
	IPv6Gateway   string            `ks:"ipv6gateway"`
	Netmask       string            `ks:"netmask"`
	Nameservers   []string          `ks:"nameserver"`
	Hostname      string            `ks:"hostname"`
	MTU           string            `ks:"mtu"`
	Onboot        *bool             `ks:"onboot"`
	Activate      *bool             `ks:"activate"`
	NoDNS         bool              `ks:"nodns"`
	NoIPv4        bool              `ks:"noipv4"`
	NoIPv6        bool              `ks:"noipv6"`
	NoDefRoute    bool              `ks:"nodefroute"`
	DHCPClass     string            `ks:"dhcpclass"`
	Ethtool       string            `ks:"ethtool"`
	ESSID         string            `ks:"essid"`
	WEPKey        string            `ks:"wepkey"`
	WPAKey        string            `ks:"wpakey"`
	VlanID        string            `ks:"vlanid"`
	InterfaceName string            `ks:"interfacename"`
	BondSlaves    []string          `ks:"bondslaves"`
	BondOpts      map[string]string `ks:"bondopts"`
	TeamSlaves    []string          `ks:"teamslaves"`
	TeamConfig    string            `ks:"teamconfig"`
	BridgeSlaves  []string          `ks:"bridgeslaves"`
	BridgeOpts    map[string]string `ks:"bridgeopts"`
	BindTo        string            `ks:"bindto"`
}

func (d *NetworkData) String() string {
	l := options.NewLine("network").
		Str("bootproto", d.BootProto).
		Str("device", d.Device).
		BoolValue("onboot", d.Onboot)
	if d.Activate != nil {
		if *d.Activate {
			l.Flag("activate", true)
		} else {
			l.Flag("no-activate", true)
		}
	}
	return l.Str("ip", d.IP).
		Str("netmask", d.Netmask).
		Str("gateway", d.Gateway).
		Str("ipv6", d.IPv6).
		Str("ipv6gateway", d.IPv6Gateway).
		List("nameserver", d.Nameservers).
		Flag("nodns", d.NoDNS).
		Flag("noipv4", d.NoIPv4).
		Flag("noipv6", d.NoIPv6).
		Flag("nodefroute", d.NoDefRoute).
		Str("mtu", d.MTU).
		Str("dhcpclass", d.DHCPClass).
		Str("ethtool", d.Ethtool).
		Str("essid", d.ESSID).
		Str("wepkey", d.WEPKey).
		Str("wpakey", d.WPAKey).
		Str("vlanid", d.VlanID).
		Str("interfacename", d.InterfaceName).
		List("bondslaves", d.BondSlaves).
		Map("bondopts", d.BondOpts).
		List("teamslaves", d.TeamSlaves).
		Str("teamconfig", d.TeamConfig).
		List("bridgeslaves", d.BridgeSlaves).
		Map("bridgeopts", d.BridgeOpts).
		Str("bindto", d.BindTo).
		Str("hostname", d.Hostname).
		String()
}

// onboot takes an explicit yes/no value, unlike plain switches.
func onboot(raw string) (cty.Value, error) {
	on, err := options.ParseBool(raw)
	if err != nil || raw == "" {
		return cty.NilVal, fmt.Errorf("--onboot requires yes or no")
	}
	return cty.BoolVal(on), nil
}

// bondOpts splits bonding options on commas, or on semicolons when the
// option values themselves contain commas.
func bondOpts(raw string) (cty.Value, error) {
	m, err := options.SplitPairs(raw)
	if err != nil {
		return cty.NilVal, err
	}
	for k, v := range m {
		if v == "" {
			return cty.NilVal, fmt.Errorf("bonding option %s has no value", k)
		}
	}
	return options.MapValue(m), nil
}

var networkSchema = &options.Schema{
	Command: "network",
	Options: []options.Option{
		{Name: "bootproto", Kind: options.String, Choices: []string{"dhcp", "bootp", "static", "query", "ibft"}},
		{Name: "device", Kind: options.String},
		{Name: "ip", Kind: options.String},
		{Name: "ipv6", Kind: options.String},
		{Name: "gateway", Kind: options.String},
		{Name: "ipv6gateway", Kind: options.String},
		{Name: "netmask", Kind: options.String},
		{Name: "nameserver", Kind: options.List, Append: true},
		{Name: "hostname", Kind: options.String},
		{Name: "mtu", Kind: options.String},
		{Name: "onboot", Kind: options.Custom, Type: cty.Bool, Convert: onboot},
		{Name: "activate", Kind: options.Bool},
		{Name: "no-activate", Dest: "activate", Kind: options.Bool, Const: false, Introduced: version.F25},
		{Name: "nodns", Kind: options.Bool},
		{Name: "noipv4", Kind: options.Bool},
		{Name: "noipv6", Kind: options.Bool},
		{Name: "nodefroute", Kind: options.Bool},
		{Name: "dhcpclass", Kind: options.String},
		{Name: "ethtool", Kind: options.String},
		{Name: "essid", Kind: options.String},
		{Name: "wepkey", Kind: options.String},
		{Name: "wpakey", Kind: options.String},
		{Name: "vlanid", Kind: options.String},
		{Name: "interfacename", Kind: options.String},
		{Name: "bondslaves", Kind: options.List},
		{Name: "bondopts", Kind: options.Custom, Type: cty.Map(cty.String), Convert: bondOpts},
		{Name: "teamslaves", Kind: options.List},
		{Name: "teamconfig", Kind: options.String},
		{Name: "bridgeslaves", Kind: options.List, Introduced: version.F22},
		{Name: "bridgeopts", Kind: options.Custom, Type: cty.Map(cty.String), Convert: bondOpts, Introduced: version.F22},
		{Name: "bindto", Kind: options.String, Choices: []string{"mac"}, Introduced: version.F25},
	},
}

func newNetwork(t Type) Command {
	c := newRepeatable(t)
	c.check = func(inv *Invocation, res *options.Result) error {
		if res.Has("bondopts") && !res.Has("bondslaves") {
			return kserrors.New(kserrors.Value, "--bondopts requires --bondslaves")
		}
		if res.Has("bridgeopts") && !res.Has("bridgeslaves") {
			return kserrors.New(kserrors.Value, "--bridgeopts requires --bridgeslaves")
		}
		if res.Has("bindto") && !res.Has("device") {
			return kserrors.New(kserrors.Value, "--bindto requires --device")
		}
		return nil
	}
	c.key = dest("device")
	c.duplicate = "a network device with the name %s has already been defined"
	return c
}

var networkTypes = []Type{
	{Name: "F20_Network", Keyword: "network", Version: version.F20, DataKind: "NetworkData", Schemas: schemas(networkSchema), New: newNetwork},
	{Name: "F22_Network", Keyword: "network", Version: version.F22, DataKind: "NetworkData", Schemas: schemas(networkSchema), New: newNetwork},
	{Name: "F25_Network", Keyword: "network", Version: version.F25, DataKind: "NetworkData", Schemas: schemas(networkSchema), New: newNetwork},
}

var networkDataTypes = []DataType{
	{Name: "F20_NetworkData", Kind: "NetworkData", New: func() Data { return &NetworkData{} }},
	{Name: "F22_NetworkData", Kind: "NetworkData", New: func() Data { return &NetworkData{} }},
	{Name: "F25_NetworkData", Kind: "NetworkData", New: func() Data { return &NetworkData{} }},
}
