// internal/commands/commands_test.go
package commands

import (
	"strings"
	"testing"

	"github.com/google/shlex"
	"github.com/specialistvlad/gokickstart/internal/kserrors"
	"github.com/specialistvlad/gokickstart/internal/options"
	"github.com/specialistvlad/gokickstart/internal/version"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run feeds lines to a fresh command of the named variant.
func run(t *testing.T, typeName string, lines ...string) (Command, []kserrors.Warning, error) {
	t.Helper()
	typ, ok := Lookup(typeName)
	require.True(t, ok, "unknown type %s", typeName)
	cmd := typ.Make()
	if dc, ok := cmd.(DataCommand); ok {
		dt := dataTypeFor(t, dc.DataKind())
		dc.BindData(NewDataList(dt))
	}

	var warnings []kserrors.Warning
	for i, line := range lines {
		words, err := shlex.Split(line)
		require.NoError(t, err)
		inv := &Invocation{
			Keyword: words[0],
			Args:    words[1:],
			Line:    i + 1,
			Sink:    func(w kserrors.Warning) { warnings = append(warnings, w) },
		}
		if err := cmd.Parse(inv); err != nil {
			return cmd, warnings, err
		}
	}
	return cmd, warnings, nil
}

func dataTypeFor(t *testing.T, kind string) DataType {
	t.Helper()
	for _, dt := range DataTypes() {
		if dt.Kind == kind {
			return dt
		}
	}
	t.Fatalf("no data type of kind %s", kind)
	return DataType{}
}

func TestCommandRoundTrip(t *testing.T) {
	testCases := []struct {
		name     string
		typeName string
		lines    []string
		want     string
	}{
		{"bootloader", "F29_Bootloader", []string{`bootloader --location=mbr --append="rhgb quiet" --timeout=5`}, `bootloader --location=mbr --append="rhgb quiet" --timeout=5` + "\n"},
		{"bootloader disabled", "F21_Bootloader", []string{"bootloader --disabled"}, "bootloader --disabled\n"},
		{"bootloader fields accumulate", "F20_Bootloader", []string{"bootloader --location=mbr --timeout=5", "bootloader --append=quiet"}, "bootloader --location=mbr --append=quiet --timeout=5\n"},
		{"clearpart list", "F20_ClearPart", []string{"clearpart --list=sda1,sda2 --initlabel"}, "clearpart --list=sda1,sda2 --initlabel\n"},
		{"clearpart all", "F20_ClearPart", []string{"clearpart --all --drives=sda"}, "clearpart --all --drives=sda\n"},
		{"selinux", "F20_SELinux", []string{"selinux --enforcing --permissive"}, "selinux --permissive\n"},
		{"display mode", "F20_DisplayMode", []string{"graphical", "text"}, "text\n"},
		{"display mode non-interactive", "F26_DisplayMode", []string{"cmdline --non-interactive"}, "cmdline --non-interactive\n"},
		{"reboot action", "F23_Reboot", []string{"poweroff --eject"}, "poweroff --eject\n"},
		{"url metalink", "F27_Method", []string{"url --metalink=https://example.com/metalink"}, "url --metalink=https://example.com/metalink\n"},
		{"later method replaces earlier", "F20_Method", []string{"nfs --server=host --dir=/path", "cdrom"}, "cdrom\n"},
		{"harddrive", "F20_Method", []string{"harddrive --partition=sdb2 --dir=/isos"}, "harddrive --partition=sdb2 --dir=/isos\n"},
		{"partitions", "F20_Partition", []string{"part /boot --size=500 --fstype=ext4", "part / --grow --ondrive=sda"}, "part /boot --fstype=ext4 --size=500\npart / --ondisk=sda --grow\n"},
		{"raid level normalized", "F20_Raid", []string{"raid / --level=1 --device=md0 raid.01 raid.02"}, "raid / --device=md0 --level=RAID1 raid.01 raid.02\n"},
		{"volgroup", "F21_VolGroup", []string{"volgroup vg00 --pesize=4096 pv.01"}, "volgroup vg00 --pesize=4096 pv.01\n"},
		{"logvol", "F20_LogVol", []string{"logvol / --vgname=vg00 --name=root --size=1000"}, "logvol / --vgname=vg00 --name=root --size=1000\n"},
		{"network bond", "F25_Network", []string{"network --device=eth0 --bootproto=dhcp --onboot=yes --no-activate --bondslaves=a,b --bondopts=mode=active-backup;primary=a"}, "network --bootproto=dhcp --device=eth0 --onboot=yes --no-activate --bondslaves=a,b --bondopts=mode=active-backup,primary=a\n"},
		{"network nameservers append", "F20_Network", []string{"network --hostname=box --nameserver=1.1.1.1 --nameserver=8.8.8.8"}, "network --nameserver=1.1.1.1,8.8.8.8 --hostname=box\n"},
		{"rootpw crypted", "F20_RootPw", []string{"rootpw --iscrypted $6$abc"}, "rootpw --iscrypted $6$abc\n"},
		{"rootpw locked", "F20_RootPw", []string{"rootpw --lock"}, "rootpw --lock\n"},
		{"rootpw later line drops crypted switch", "F20_RootPw", []string{"rootpw --iscrypted $6$abc", "rootpw plainpw"}, "rootpw plainpw\n"},
		{"rootpw later line drops lock", "F20_RootPw", []string{"rootpw --lock", "rootpw secret"}, "rootpw secret\n"},
		{"rootpw plaintext undoes iscrypted", "F20_RootPw", []string{"rootpw --iscrypted abc", "rootpw --plaintext def"}, "rootpw def\n"},
		{"user", "F20_User", []string{"user --name=alice --groups=wheel,adm --uid=1000"}, "user --name=alice --groups=wheel,adm --uid=1000\n"},
		{"group", "F20_Group", []string{"group --name=admins --gid=0"}, "group --name=admins --gid=0\n"},
		{"sshkey", "F22_SshKey", []string{`sshkey --username=root "ssh-rsa AAAA root@host"`}, `sshkey --username=root "ssh-rsa AAAA root@host"` + "\n"},
		{"sshpw", "F24_SshPw", []string{"sshpw --username=install --sshkey --lock secret"}, "sshpw --username=install --lock --sshkey secret\n"},
		{"timezone", "F20_Timezone", []string{"timezone America/New_York --isUtc"}, "timezone America/New_York --utc\n"},
		{"timezone ntp only", "F25_Timezone", []string{"timezone --ntpservers=a,b"}, "timezone --ntpservers=a,b\n"},
		{"keyboard", "F20_Keyboard", []string{"keyboard --vckeymap=us --xlayouts=us,cz"}, "keyboard --vckeymap=us --xlayouts=us,cz\n"},
		{"lang", "F20_Lang", []string{"lang en_US.UTF-8 --addsupport=cs_CZ"}, "lang en_US.UTF-8 --addsupport=cs_CZ\n"},
		{"services", "F20_Services", []string{"services --enabled=sshd --disabled=cups"}, "services --disabled=cups --enabled=sshd\n"},
		{"firewall", "F20_Firewall", []string{"firewall --enabled --ssh --port=22:tcp --port=80:tcp"}, "firewall --enabled --ssh --port=22:tcp,80:tcp\n"},
		{"firewall disabled", "F20_Firewall", []string{"firewall --disable"}, "firewall --disabled\n"},
		{"firewall system defaults", "F28_Firewall", []string{"firewall --use-system-defaults"}, "firewall --use-system-defaults\n"},
		{"firstboot", "F20_Firstboot", []string{"firstboot --disabled"}, "firstboot --disable\n"},
		{"realm", "F20_Realm", []string{"realm join --one-time-password=secret example.com"}, "realm join --one-time-password=secret example.com\n"},
		{"auth passthrough", "F20_Auth", []string{"authconfig --enableshadow --passalgo=sha512"}, "auth --enableshadow --passalgo=sha512\n"},
		{"zerombr", "F20_ZeroMBR", []string{"zerombr"}, "zerombr\n"},
		{"eula", "F20_Eula", []string{"eula --accept"}, "eula --agreed\n"},
		{"repo", "F20_Repo", []string{"repo --name=updates --baseurl=http://example.com/updates --cost=10 --ignoregroups=true"}, "repo --name=updates --baseurl=http://example.com/updates --cost=10 --ignoregroups=yes\n"},
		{"vnc", "F20_Vnc", []string{"vnc --password=x"}, "vnc --password=x\n"},
		{"xconfig", "F20_XConfig", []string{"xconfig --startxonboot --defaultdesktop=GNOME"}, "xconfig --defaultdesktop=GNOME --startxonboot\n"},
		{"logging", "F20_Logging", []string{"logging --host=loghost --port=514 --level=debug"}, "logging --host=loghost --port=514 --level=debug\n"},
		{"ostreesetup", "F21_OSTreeSetup", []string{"ostreesetup --osname=fedora-atomic --remote=fedora --url=https://example.com/repo --ref=fedora/x86_64 --nogpg"}, "ostreesetup --osname=fedora-atomic --remote=fedora --url=https://example.com/repo --ref=fedora/x86_64 --nogpg\n"},
		{"module", "F29_Module", []string{"module --name=nodejs --stream=10"}, "module --name=nodejs --stream=10\n"},
		{"autopart nolvm", "F20_AutoPart", []string{"autopart --nolvm --encrypted --passphrase=pw"}, "autopart --type=plain --encrypted --passphrase=pw\n"},
		{"reqpart", "F23_ReqPart", []string{"reqpart --add-boot"}, "reqpart --add-boot\n"},
		{"ignoredisk alias", "F20_IgnoreDisk", []string{"ignoredisk --onlyuse=sda"}, "ignoredisk --only-use=sda\n"},
		{"skipx", "F20_SkipX", []string{"skipx"}, "skipx\n"},
		{"autostep", "F20_AutoStep", []string{"autostep --autoscreenshot"}, "autostep --autoscreenshot\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cmd, _, err := run(t, tc.typeName, tc.lines...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, cmd.String())
			assert.Equal(t, len(tc.lines), cmd.Line())

			// The written form parses back into the same text.
			again, _, err := run(t, tc.typeName, strings.Split(strings.TrimSuffix(tc.want, "\n"), "\n")...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, again.String())
		})
	}
}

func TestCommandErrors(t *testing.T) {
	testCases := []struct {
		name     string
		typeName string
		line     string
		kind     kserrors.Kind
		contains string
	}{
		{"ignoredisk exclusive", "F20_IgnoreDisk", "ignoredisk --drives=sda --only-use=sdb", kserrors.Value, "mutually exclusive"},
		{"ignoredisk empty", "F20_IgnoreDisk", "ignoredisk", kserrors.Value, "one of --drives or --only-use"},
		{"repo without source", "F20_Repo", "repo --name=x", kserrors.Value, "one of --baseurl"},
		{"repo with two sources", "F20_Repo", "repo --name=x --baseurl=a --mirrorlist=b", kserrors.Value, "--baseurl and --mirrorlist"},
		{"repo requires name", "F20_Repo", "repo --baseurl=a", kserrors.Value, "option --name is required for the repo command"},
		{"rootpw without password", "F20_RootPw", "rootpw", kserrors.Value, "a single argument is expected"},
		{"services empty", "F20_Services", "services", kserrors.Value, "one of --disabled or --enabled"},
		{"timezone ntp conflict", "F25_Timezone", "timezone Europe/Prague --nontp --ntpservers=a", kserrors.Value, "--nontp and --ntpservers"},
		{"timezone missing zone before F25", "F20_Timezone", "timezone --utc", kserrors.Value, "a single argument is expected"},
		{"volgroup reserved conflict", "F21_VolGroup", "volgroup vg --reserved-space=1 --reserved-percent=2 pv.01", kserrors.Value, "mutually exclusive"},
		{"volgroup reserved option in F20", "F20_VolGroup", "volgroup vg --reserved-space=1 pv.01", kserrors.Parse, "not available in F20"},
		{"logvol thin without pool", "F20_LogVol", "logvol /srv --vgname=vg --name=srv --thin", kserrors.Value, "--poolname"},
		{"part resize without size", "F23_Partition", "part / --resize", kserrors.Value, "--resize requires --size"},
		{"part missing mountpoint", "F20_Partition", "part --size=1", kserrors.Value, "requires a mountpoint argument"},
		{"autopart fstype with btrfs", "F26_AutoPart", "autopart --type=btrfs --fstype=ext4", kserrors.Value, "--fstype cannot be used"},
		{"raid bad level", "F20_Raid", "raid / --level=7 --device=md0 raid.01", kserrors.Value, "raid level"},
		{"raid without members", "F20_Raid", "raid / --level=1 --device=md0", kserrors.Value, "partitions required"},
		{"keyboard empty", "F20_Keyboard", "keyboard", kserrors.Value, "at least one of"},
		{"eula requires agreement", "F20_Eula", "eula", kserrors.Value, "option --agreed is required"},
		{"skipx takes no arguments", "F20_SkipX", "skipx now", kserrors.Value, "does not take any arguments"},
		{"realm only joins", "F20_Realm", "realm leave example.com", kserrors.Value, `unsupported realm "leave"`},
		{"url two sources", "F20_Method", "url --url=a --mirrorlist=b", kserrors.Value, "mutually exclusive"},
		{"url metalink before F27", "F20_Method", "url --metalink=a", kserrors.Parse, "not available in F20"},
		{"bootloader upgrade removed", "F29_Bootloader", "bootloader --upgrade", kserrors.Parse, "--upgrade"},
		{"bootloader unknown option", "F20_Bootloader", "bootloader --locaton=mbr", kserrors.Parse, "did you mean --location?"},
		{"network bondopts without slaves", "F20_Network", "network --bondopts=mode=1", kserrors.Value, "--bondopts requires --bondslaves"},
		{"network onboot needs a value", "F20_Network", "network --onboot", kserrors.Value, "requires an argument"},
		{"harddrive needs a partition", "F20_Method", "harddrive --dir=/isos", kserrors.Value, "exactly one of --partition or --biospart"},
		{"auth needs arguments", "F28_Authselect", "authselect", kserrors.Value, "requires arguments"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := run(t, tc.typeName, tc.line)
			require.Error(t, err)
			assert.Equal(t, tc.kind, kserrors.KindOf(err))
			assert.Contains(t, err.Error(), tc.contains)
		})
	}
}

func TestDeprecatedCommand(t *testing.T) {
	cmd, warnings, err := run(t, "F20_Upgrade", "upgrade --root-device=sda1")
	require.NoError(t, err)
	assert.Empty(t, cmd.String())
	require.Len(t, warnings, 1)
	assert.Equal(t, kserrors.Deprecation, warnings[0].Kind)
	assert.Contains(t, warnings[0].String(), "line 1: the upgrade command has been deprecated")
	assert.True(t, cmd.Type().Deprecated)
}

func TestDeprecatedOption(t *testing.T) {
	cmd, warnings, err := run(t, "F21_Bootloader", "bootloader --upgrade --location=none")
	require.NoError(t, err)
	assert.Equal(t, "bootloader --location=none\n", cmd.String())
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0].Msg, "--upgrade")

	_, warnings, err = run(t, "F20_XConfig", "xconfig --driver=vesa --startxonboot")
	require.NoError(t, err)
	require.Len(t, warnings, 1)
	assert.Equal(t, kserrors.Deprecation, warnings[0].Kind)
}

func TestZeroMBRIgnoresArguments(t *testing.T) {
	cmd, warnings, err := run(t, "F20_ZeroMBR", "zerombr yes")
	require.NoError(t, err)
	assert.Equal(t, "zerombr\n", cmd.String())
	assert.Len(t, warnings, 1)
}

func TestAuthconfigDeprecationWarning(t *testing.T) {
	_, warnings, err := run(t, "F28_Auth", "auth --enableshadow")
	require.NoError(t, err)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0].Msg, "use authselect instead")
}

func TestDuplicateWarnings(t *testing.T) {
	testCases := []struct {
		name     string
		typeName string
		lines    []string
		warnings int
		contains string
	}{
		{"same mountpoint", "F20_Partition", []string{"part /home --size=1", "part /home --size=2"}, 1, "mountpoint /home has already been defined"},
		{"swap may repeat", "F20_Partition", []string{"part swap --size=1", "part swap --size=2"}, 0, ""},
		{"same user", "F20_User", []string{"user --name=a", "user --name=a"}, 1, "user with the name a"},
		{"same repo", "F20_Repo", []string{"repo --name=r --baseurl=a", "repo --name=r --baseurl=b"}, 1, "repo with the name r"},
		{"same device", "F20_Network", []string{"network --device=eth0", "network --device=eth0"}, 1, "network device with the name eth0"},
		{"hostname only", "F20_Network", []string{"network --hostname=a", "network --hostname=b"}, 0, ""},
		{"same logvol mountpoint", "F20_LogVol", []string{"logvol /a --vgname=v --name=a", "logvol /a --vgname=v --name=b"}, 1, "logical volume"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cmd, warnings, err := run(t, tc.typeName, tc.lines...)
			require.NoError(t, err)
			require.Len(t, warnings, tc.warnings)
			if tc.contains != "" {
				assert.Contains(t, warnings[0].Msg, tc.contains)
				assert.Equal(t, 2, warnings[0].Line)
			}
			dc := cmd.(*repeatable)
			assert.Equal(t, len(tc.lines), dc.Data().Len())
		})
	}
}

func TestDataRecordsKeepTheirLines(t *testing.T) {
	cmd, _, err := run(t, "F20_Partition", "part /boot --size=500", "part / --size=1000")
	require.NoError(t, err)
	list := cmd.(*repeatable).Data()
	require.Equal(t, 2, list.Len())
	assert.Equal(t, 1, list.Items[0].Line())
	assert.Equal(t, 2, list.Items[1].Line())

	first := list.Items[0].(*PartData)
	assert.Equal(t, "/boot", first.Mountpoint)
	assert.Equal(t, 500, first.Size)
}

func TestUnboundDataCommand(t *testing.T) {
	typ, ok := Lookup("F20_Partition")
	require.True(t, ok)
	err := typ.Make().Parse(&Invocation{Keyword: "part", Args: []string{"/"}})
	require.Error(t, err)
	assert.Equal(t, kserrors.Generic, kserrors.KindOf(err))
}

func TestWithFields(t *testing.T) {
	typ, ok := Lookup("F20_RootPw")
	require.True(t, ok)

	cmd := typ.Make()
	assert.Empty(t, cmd.String())

	cmd, err := WithFields(cmd, map[string]any{"password": "secret", "lock": true})
	require.NoError(t, err)
	assert.Equal(t, "rootpw --lock secret\n", cmd.String())

	_, err = WithFields(cmd, map[string]any{"shell": "/bin/sh"})
	require.Error(t, err)
}

func TestSortByPriority(t *testing.T) {
	var cmds []Command
	for _, name := range []string{"F20_Raid", "F20_Lang", "F20_ZeroMBR", "F20_Keyboard", "F20_Partition", "F20_ClearPart", "F20_AutoPart"} {
		typ, ok := Lookup(name)
		require.True(t, ok)
		cmds = append(cmds, typ.Make())
	}
	SortByPriority(cmds)

	var got []string
	for _, c := range cmds {
		got = append(got, c.Type().Keyword)
	}
	assert.Equal(t, []string{"keyboard", "lang", "autopart", "zerombr", "clearpart", "part", "raid"}, got)
}

func TestCatalog(t *testing.T) {
	for _, typ := range Types() {
		t.Run(typ.Name, func(t *testing.T) {
			prefix, _, ok := strings.Cut(typ.Name, "_")
			require.True(t, ok)
			v, err := version.StringToVersion(prefix)
			require.NoError(t, err)
			assert.Equal(t, v, typ.Version, "variant name and version disagree")
			require.NotNil(t, typ.New)
			require.NotEmpty(t, typ.Keyword)

			if typ.Deprecated {
				return
			}
			for _, s := range typ.Schemas {
				if typ.DataKind != "" {
					for _, dt := range DataTypes() {
						if dt.Kind == typ.DataKind {
							assert.NoError(t, options.Validate(s, dt.New()), dt.Name)
						}
					}
					continue
				}
				assert.NoError(t, options.Validate(s, typ.Make()))
			}
		})
	}
}

func TestDataCatalog(t *testing.T) {
	kinds := map[string]bool{}
	for _, dt := range DataTypes() {
		kinds[dt.Kind] = true
		assert.NotNil(t, dt.New(), dt.Name)
	}
	for _, typ := range Types() {
		if typ.DataKind != "" {
			assert.True(t, kinds[typ.DataKind], "%s produces unknown data kind %s", typ.Name, typ.DataKind)
			_, ok := typ.Make().(DataCommand)
			assert.True(t, ok, "%s does not implement DataCommand", typ.Name)
		}
	}
}

func TestTypeSchemaByKeyword(t *testing.T) {
	typ, ok := Lookup("F27_Method")
	require.True(t, ok)
	assert.Equal(t, "nfs", typ.Schema("nfs").Command)
	assert.Equal(t, "url", typ.Schema("unknown").Command)

	raw, ok := Lookup("F20_Auth")
	require.True(t, ok)
	assert.Nil(t, raw.Schema("auth"))
}
