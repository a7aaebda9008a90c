package registry

import "github.com/specialistvlad/gokickstart/internal/version"

// commandTables maps every supported version's keywords to command
// variants. Each version is spelled out in full so what a release accepts
// can be read off its table.
var commandTables = map[version.Version]map[string]string{
	version.F20: {
		"auth":        "F20_Auth",
		"authconfig":  "F20_Auth",
		"autopart":    "F20_AutoPart",
		"autostep":    "F20_AutoStep",
		"bootloader":  "F20_Bootloader",
		"cdrom":       "F20_Method",
		"clearpart":   "F20_ClearPart",
		"cmdline":     "F20_DisplayMode",
		"eula":        "F20_Eula",
		"firewall":    "F20_Firewall",
		"firstboot":   "F20_Firstboot",
		"graphical":   "F20_DisplayMode",
		"group":       "F20_Group",
		"halt":        "F20_Reboot",
		"harddrive":   "F20_Method",
		"ignoredisk":  "F20_IgnoreDisk",
		"install":     "F20_Install",
		"interactive": "F20_Interactive",
		"keyboard":    "F20_Keyboard",
		"lang":        "F20_Lang",
		"liveimg":     "F20_Method",
		"logging":     "F20_Logging",
		"logvol":      "F20_LogVol",
		"mediacheck":  "F20_MediaCheck",
		"monitor":     "F20_Monitor",
		"network":     "F20_Network",
		"nfs":         "F20_Method",
		"part":        "F20_Partition",
		"partition":   "F20_Partition",
		"poweroff":    "F20_Reboot",
		"raid":        "F20_Raid",
		"realm":       "F20_Realm",
		"reboot":      "F20_Reboot",
		"repo":        "F20_Repo",
		"rootpw":      "F20_RootPw",
		"selinux":     "F20_SELinux",
		"services":    "F20_Services",
		"shutdown":    "F20_Reboot",
		"skipx":       "F20_SkipX",
		"sshpw":       "F20_SshPw",
		"text":        "F20_DisplayMode",
		"timezone":    "F20_Timezone",
		"upgrade":     "F20_Upgrade",
		"url":         "F20_Method",
		"user":        "F20_User",
		"vnc":         "F20_Vnc",
		"volgroup":    "F20_VolGroup",
		"xconfig":     "F20_XConfig",
		"zerombr":     "F20_ZeroMBR",
	},
	version.F21: {
		"auth":        "F20_Auth",
		"authconfig":  "F20_Auth",
		"autopart":    "F20_AutoPart",
		"autostep":    "F20_AutoStep",
		"bootloader":  "F21_Bootloader",
		"cdrom":       "F20_Method",
		"clearpart":   "F21_ClearPart",
		"cmdline":     "F20_DisplayMode",
		"eula":        "F20_Eula",
		"firewall":    "F20_Firewall",
		"firstboot":   "F20_Firstboot",
		"graphical":   "F20_DisplayMode",
		"group":       "F20_Group",
		"halt":        "F20_Reboot",
		"harddrive":   "F20_Method",
		"ignoredisk":  "F20_IgnoreDisk",
		"install":     "F20_Install",
		"interactive": "F20_Interactive",
		"keyboard":    "F20_Keyboard",
		"lang":        "F20_Lang",
		"liveimg":     "F20_Method",
		"logging":     "F20_Logging",
		"logvol":      "F20_LogVol",
		"mediacheck":  "F20_MediaCheck",
		"monitor":     "F20_Monitor",
		"network":     "F20_Network",
		"nfs":         "F20_Method",
		"ostreesetup": "F21_OSTreeSetup",
		"part":        "F20_Partition",
		"partition":   "F20_Partition",
		"poweroff":    "F20_Reboot",
		"raid":        "F20_Raid",
		"realm":       "F20_Realm",
		"reboot":      "F20_Reboot",
		"repo":        "F21_Repo",
		"rootpw":      "F20_RootPw",
		"selinux":     "F20_SELinux",
		"services":    "F20_Services",
		"shutdown":    "F20_Reboot",
		"skipx":       "F20_SkipX",
		"sshpw":       "F20_SshPw",
		"text":        "F20_DisplayMode",
		"timezone":    "F20_Timezone",
		"upgrade":     "F20_Upgrade",
		"url":         "F20_Method",
		"user":        "F20_User",
		"vnc":         "F20_Vnc",
		"volgroup":    "F21_VolGroup",
		"xconfig":     "F20_XConfig",
		"zerombr":     "F20_ZeroMBR",
	},
	version.RHEL7: {
		"auth":        "F20_Auth",
		"authconfig":  "F20_Auth",
		"autopart":    "F20_AutoPart",
		"autostep":    "F20_AutoStep",
		"bootloader":  "F21_Bootloader",
		"cdrom":       "F20_Method",
		"clearpart":   "F21_ClearPart",
		"cmdline":     "F20_DisplayMode",
		"eula":        "F20_Eula",
		"firewall":    "F20_Firewall",
		"firstboot":   "F20_Firstboot",
		"graphical":   "F20_DisplayMode",
		"group":       "F20_Group",
		"halt":        "F20_Reboot",
		"harddrive":   "F20_Method",
		"ignoredisk":  "F20_IgnoreDisk",
		"install":     "F20_Install",
		"interactive": "F20_Interactive",
		"keyboard":    "F20_Keyboard",
		"lang":        "F20_Lang",
		"liveimg":     "F20_Method",
		"logging":     "F20_Logging",
		"logvol":      "F20_LogVol",
		"mediacheck":  "F20_MediaCheck",
		"monitor":     "F20_Monitor",
		"network":     "F20_Network",
		"nfs":         "F20_Method",
		"ostreesetup": "F21_OSTreeSetup",
		"part":        "F20_Partition",
		"partition":   "F20_Partition",
		"poweroff":    "F20_Reboot",
		"raid":        "F20_Raid",
		"realm":       "F20_Realm",
		"reboot":      "F20_Reboot",
		"repo":        "F21_Repo",
		"reqpart":     "F23_ReqPart",
		"rootpw":      "F20_RootPw",
		"selinux":     "F20_SELinux",
		"services":    "F20_Services",
		"shutdown":    "F20_Reboot",
		"skipx":       "F20_SkipX",
		"sshpw":       "F20_SshPw",
		"text":        "F20_DisplayMode",
		"timezone":    "F20_Timezone",
		"upgrade":     "F20_Upgrade",
		"url":         "F20_Method",
		"user":        "F20_User",
		"vnc":         "F20_Vnc",
		"volgroup":    "F21_VolGroup",
		"xconfig":     "F20_XConfig",
		"zerombr":     "F20_ZeroMBR",
	},
	version.F22: {
		"auth":        "F20_Auth",
		"authconfig":  "F20_Auth",
		"autopart":    "F20_AutoPart",
		"autostep":    "F20_AutoStep",
		"bootloader":  "F22_Bootloader",
		"cdrom":       "F20_Method",
		"clearpart":   "F21_ClearPart",
		"cmdline":     "F20_DisplayMode",
		"eula":        "F20_Eula",
		"firewall":    "F20_Firewall",
		"firstboot":   "F20_Firstboot",
		"graphical":   "F20_DisplayMode",
		"group":       "F20_Group",
		"halt":        "F20_Reboot",
		"harddrive":   "F20_Method",
		"ignoredisk":  "F20_IgnoreDisk",
		"install":     "F20_Install",
		"interactive": "F20_Interactive",
		"keyboard":    "F20_Keyboard",
		"lang":        "F20_Lang",
		"liveimg":     "F20_Method",
		"logging":     "F20_Logging",
		"logvol":      "F22_LogVol",
		"mediacheck":  "F20_MediaCheck",
		"monitor":     "F20_Monitor",
		"network":     "F22_Network",
		"nfs":         "F20_Method",
		"ostreesetup": "F21_OSTreeSetup",
		"part":        "F22_Partition",
		"partition":   "F22_Partition",
		"poweroff":    "F20_Reboot",
		"raid":        "F20_Raid",
		"realm":       "F20_Realm",
		"reboot":      "F20_Reboot",
		"repo":        "F21_Repo",
		"rootpw":      "F20_RootPw",
		"selinux":     "F20_SELinux",
		"services":    "F20_Services",
		"shutdown":    "F20_Reboot",
		"skipx":       "F20_SkipX",
		"sshkey":      "F22_SshKey",
		"sshpw":       "F20_SshPw",
		"text":        "F20_DisplayMode",
		"timezone":    "F20_Timezone",
		"upgrade":     "F20_Upgrade",
		"url":         "F20_Method",
		"user":        "F20_User",
		"vnc":         "F20_Vnc",
		"volgroup":    "F21_VolGroup",
		"xconfig":     "F20_XConfig",
		"zerombr":     "F20_ZeroMBR",
	},
	version.F23: {
		"auth":        "F20_Auth",
		"authconfig":  "F20_Auth",
		"autopart":    "F23_AutoPart",
		"autostep":    "F20_AutoStep",
		"bootloader":  "F22_Bootloader",
		"cdrom":       "F20_Method",
		"clearpart":   "F23_ClearPart",
		"cmdline":     "F20_DisplayMode",
		"eula":        "F20_Eula",
		"firewall":    "F20_Firewall",
		"firstboot":   "F20_Firstboot",
		"graphical":   "F20_DisplayMode",
		"group":       "F20_Group",
		"halt":        "F23_Reboot",
		"harddrive":   "F20_Method",
		"ignoredisk":  "F20_IgnoreDisk",
		"install":     "F20_Install",
		"interactive": "F20_Interactive",
		"keyboard":    "F20_Keyboard",
		"lang":        "F20_Lang",
		"liveimg":     "F20_Method",
		"logging":     "F20_Logging",
		"logvol":      "F23_LogVol",
		"mediacheck":  "F20_MediaCheck",
		"monitor":     "F20_Monitor",
		"network":     "F22_Network",
		"nfs":         "F20_Method",
		"ostreesetup": "F21_OSTreeSetup",
		"part":        "F23_Partition",
		"partition":   "F23_Partition",
		"poweroff":    "F23_Reboot",
		"raid":        "F23_Raid",
		"realm":       "F20_Realm",
		"reboot":      "F23_Reboot",
		"repo":        "F21_Repo",
		"reqpart":     "F23_ReqPart",
		"rootpw":      "F20_RootPw",
		"selinux":     "F20_SELinux",
		"services":    "F20_Services",
		"shutdown":    "F23_Reboot",
		"skipx":       "F20_SkipX",
		"sshkey":      "F22_SshKey",
		"sshpw":       "F20_SshPw",
		"text":        "F20_DisplayMode",
		"timezone":    "F20_Timezone",
		"upgrade":     "F20_Upgrade",
		"url":         "F20_Method",
		"user":        "F20_User",
		"vnc":         "F20_Vnc",
		"volgroup":    "F21_VolGroup",
		"xconfig":     "F20_XConfig",
		"zerombr":     "F20_ZeroMBR",
	},
	version.F24: {
		"auth":        "F20_Auth",
		"authconfig":  "F20_Auth",
		"autopart":    "F23_AutoPart",
		"autostep":    "F20_AutoStep",
		"bootloader":  "F22_Bootloader",
		"cdrom":       "F20_Method",
		"clearpart":   "F23_ClearPart",
		"cmdline":     "F20_DisplayMode",
		"eula":        "F20_Eula",
		"firewall":    "F20_Firewall",
		"firstboot":   "F20_Firstboot",
		"graphical":   "F20_DisplayMode",
		"group":       "F20_Group",
		"halt":        "F23_Reboot",
		"harddrive":   "F20_Method",
		"ignoredisk":  "F20_IgnoreDisk",
		"install":     "F20_Install",
		"interactive": "F20_Interactive",
		"keyboard":    "F20_Keyboard",
		"lang":        "F20_Lang",
		"liveimg":     "F20_Method",
		"logging":     "F20_Logging",
		"logvol":      "F23_LogVol",
		"mediacheck":  "F20_MediaCheck",
		"monitor":     "F20_Monitor",
		"network":     "F22_Network",
		"nfs":         "F20_Method",
		"ostreesetup": "F21_OSTreeSetup",
		"part":        "F23_Partition",
		"partition":   "F23_Partition",
		"poweroff":    "F23_Reboot",
		"raid":        "F23_Raid",
		"realm":       "F20_Realm",
		"reboot":      "F23_Reboot",
		"repo":        "F21_Repo",
		"reqpart":     "F23_ReqPart",
		"rootpw":      "F20_RootPw",
		"selinux":     "F20_SELinux",
		"services":    "F20_Services",
		"shutdown":    "F23_Reboot",
		"skipx":       "F20_SkipX",
		"sshkey":      "F22_SshKey",
		"sshpw":       "F24_SshPw",
		"text":        "F20_DisplayMode",
		"timezone":    "F20_Timezone",
		"upgrade":     "F20_Upgrade",
		"url":         "F20_Method",
		"user":        "F20_User",
		"vnc":         "F20_Vnc",
		"volgroup":    "F21_VolGroup",
		"xconfig":     "F20_XConfig",
		"zerombr":     "F20_ZeroMBR",
	},
	version.F25: {
		"auth":        "F20_Auth",
		"authconfig":  "F20_Auth",
		"autopart":    "F23_AutoPart",
		"autostep":    "F20_AutoStep",
		"bootloader":  "F22_Bootloader",
		"cdrom":       "F20_Method",
		"clearpart":   "F23_ClearPart",
		"cmdline":     "F20_DisplayMode",
		"eula":        "F20_Eula",
		"firewall":    "F20_Firewall",
		"firstboot":   "F20_Firstboot",
		"graphical":   "F20_DisplayMode",
		"group":       "F20_Group",
		"halt":        "F23_Reboot",
		"harddrive":   "F20_Method",
		"ignoredisk":  "F20_IgnoreDisk",
		"install":     "F20_Install",
		"interactive": "F20_Interactive",
		"keyboard":    "F20_Keyboard",
		"lang":        "F20_Lang",
		"liveimg":     "F20_Method",
		"logging":     "F20_Logging",
		"logvol":      "F25_LogVol",
		"mediacheck":  "F20_MediaCheck",
		"monitor":     "F20_Monitor",
		"network":     "F25_Network",
		"nfs":         "F20_Method",
		"ostreesetup": "F21_OSTreeSetup",
		"part":        "F25_Partition",
		"partition":   "F25_Partition",
		"poweroff":    "F23_Reboot",
		"raid":        "F25_Raid",
		"realm":       "F20_Realm",
		"reboot":      "F23_Reboot",
		"repo":        "F21_Repo",
		"reqpart":     "F23_ReqPart",
		"rootpw":      "F20_RootPw",
		"selinux":     "F20_SELinux",
		"services":    "F20_Services",
		"shutdown":    "F23_Reboot",
		"skipx":       "F20_SkipX",
		"sshkey":      "F22_SshKey",
		"sshpw":       "F24_SshPw",
		"text":        "F20_DisplayMode",
		"timezone":    "F25_Timezone",
		"upgrade":     "F20_Upgrade",
		"url":         "F20_Method",
		"user":        "F20_User",
		"vnc":         "F20_Vnc",
		"volgroup":    "F21_VolGroup",
		"xconfig":     "F20_XConfig",
		"zerombr":     "F20_ZeroMBR",
	},
	version.F26: {
		"auth":        "F20_Auth",
		"authconfig":  "F20_Auth",
		"autopart":    "F26_AutoPart",
		"autostep":    "F20_AutoStep",
		"bootloader":  "F22_Bootloader",
		"cdrom":       "F20_Method",
		"clearpart":   "F23_ClearPart",
		"cmdline":     "F26_DisplayMode",
		"eula":        "F20_Eula",
		"firewall":    "F20_Firewall",
		"firstboot":   "F20_Firstboot",
		"graphical":   "F26_DisplayMode",
		"group":       "F20_Group",
		"halt":        "F23_Reboot",
		"harddrive":   "F20_Method",
		"ignoredisk":  "F20_IgnoreDisk",
		"install":     "F20_Install",
		"interactive": "F20_Interactive",
		"keyboard":    "F20_Keyboard",
		"lang":        "F20_Lang",
		"liveimg":     "F20_Method",
		"logging":     "F20_Logging",
		"logvol":      "F25_LogVol",
		"mediacheck":  "F20_MediaCheck",
		"monitor":     "F20_Monitor",
		"network":     "F25_Network",
		"nfs":         "F20_Method",
		"ostreesetup": "F21_OSTreeSetup",
		"part":        "F25_Partition",
		"partition":   "F25_Partition",
		"poweroff":    "F23_Reboot",
		"raid":        "F25_Raid",
		"realm":       "F20_Realm",
		"reboot":      "F23_Reboot",
		"repo":        "F21_Repo",
		"reqpart":     "F23_ReqPart",
		"rootpw":      "F20_RootPw",
		"selinux":     "F20_SELinux",
		"services":    "F20_Services",
		"shutdown":    "F23_Reboot",
		"skipx":       "F20_SkipX",
		"sshkey":      "F22_SshKey",
		"sshpw":       "F24_SshPw",
		"text":        "F26_DisplayMode",
		"timezone":    "F25_Timezone",
		"upgrade":     "F20_Upgrade",
		"url":         "F20_Method",
		"user":        "F20_User",
		"vnc":         "F20_Vnc",
		"volgroup":    "F21_VolGroup",
		"xconfig":     "F20_XConfig",
		"zerombr":     "F20_ZeroMBR",
	},
	version.F27: {
		"auth":        "F20_Auth",
		"authconfig":  "F20_Auth",
		"autopart":    "F26_AutoPart",
		"autostep":    "F20_AutoStep",
		"bootloader":  "F22_Bootloader",
		"cdrom":       "F27_Method",
		"clearpart":   "F23_ClearPart",
		"cmdline":     "F26_DisplayMode",
		"eula":        "F20_Eula",
		"firewall":    "F20_Firewall",
		"firstboot":   "F20_Firstboot",
		"graphical":   "F26_DisplayMode",
		"group":       "F20_Group",
		"halt":        "F23_Reboot",
		"harddrive":   "F27_Method",
		"ignoredisk":  "F20_IgnoreDisk",
		"install":     "F20_Install",
		"interactive": "F20_Interactive",
		"keyboard":    "F20_Keyboard",
		"lang":        "F20_Lang",
		"liveimg":     "F27_Method",
		"logging":     "F20_Logging",
		"logvol":      "F25_LogVol",
		"mediacheck":  "F20_MediaCheck",
		"monitor":     "F20_Monitor",
		"network":     "F25_Network",
		"nfs":         "F27_Method",
		"ostreesetup": "F21_OSTreeSetup",
		"part":        "F25_Partition",
		"partition":   "F25_Partition",
		"poweroff":    "F23_Reboot",
		"raid":        "F25_Raid",
		"realm":       "F20_Realm",
		"reboot":      "F23_Reboot",
		"repo":        "F27_Repo",
		"reqpart":     "F23_ReqPart",
		"rootpw":      "F20_RootPw",
		"selinux":     "F20_SELinux",
		"services":    "F20_Services",
		"shutdown":    "F23_Reboot",
		"skipx":       "F20_SkipX",
		"sshkey":      "F22_SshKey",
		"sshpw":       "F24_SshPw",
		"text":        "F26_DisplayMode",
		"timezone":    "F25_Timezone",
		"upgrade":     "F20_Upgrade",
		"url":         "F27_Method",
		"user":        "F20_User",
		"vnc":         "F20_Vnc",
		"volgroup":    "F21_VolGroup",
		"xconfig":     "F20_XConfig",
		"zerombr":     "F20_ZeroMBR",
	},
	version.F28: {
		"auth":        "F28_Auth",
		"authconfig":  "F28_Auth",
		"authselect":  "F28_Authselect",
		"autopart":    "F26_AutoPart",
		"autostep":    "F20_AutoStep",
		"bootloader":  "F22_Bootloader",
		"cdrom":       "F27_Method",
		"clearpart":   "F23_ClearPart",
		"cmdline":     "F26_DisplayMode",
		"eula":        "F20_Eula",
		"firewall":    "F28_Firewall",
		"firstboot":   "F20_Firstboot",
		"graphical":   "F26_DisplayMode",
		"group":       "F20_Group",
		"halt":        "F23_Reboot",
		"harddrive":   "F27_Method",
		"ignoredisk":  "F20_IgnoreDisk",
		"install":     "F20_Install",
		"interactive": "F20_Interactive",
		"keyboard":    "F20_Keyboard",
		"lang":        "F20_Lang",
		"liveimg":     "F27_Method",
		"logging":     "F20_Logging",
		"logvol":      "F25_LogVol",
		"mediacheck":  "F20_MediaCheck",
		"monitor":     "F20_Monitor",
		"network":     "F25_Network",
		"nfs":         "F27_Method",
		"ostreesetup": "F21_OSTreeSetup",
		"part":        "F25_Partition",
		"partition":   "F25_Partition",
		"poweroff":    "F23_Reboot",
		"raid":        "F25_Raid",
		"realm":       "F20_Realm",
		"reboot":      "F23_Reboot",
		"repo":        "F27_Repo",
		"reqpart":     "F23_ReqPart",
		"rootpw":      "F20_RootPw",
		"selinux":     "F20_SELinux",
		"services":    "F20_Services",
		"shutdown":    "F23_Reboot",
		"skipx":       "F20_SkipX",
		"sshkey":      "F22_SshKey",
		"sshpw":       "F24_SshPw",
		"text":        "F26_DisplayMode",
		"timezone":    "F25_Timezone",
		"upgrade":     "F20_Upgrade",
		"url":         "F27_Method",
		"user":        "F20_User",
		"vnc":         "F20_Vnc",
		"volgroup":    "F21_VolGroup",
		"xconfig":     "F20_XConfig",
		"zerombr":     "F20_ZeroMBR",
	},
	version.RHEL8: {
		"auth":        "F28_Auth",
		"authconfig":  "F28_Auth",
		"authselect":  "F28_Authselect",
		"autopart":    "F26_AutoPart",
		"autostep":    "F20_AutoStep",
		"bootloader":  "F22_Bootloader",
		"cdrom":       "F27_Method",
		"clearpart":   "F23_ClearPart",
		"cmdline":     "F26_DisplayMode",
		"eula":        "F20_Eula",
		"firewall":    "F28_Firewall",
		"firstboot":   "F20_Firstboot",
		"graphical":   "F26_DisplayMode",
		"group":       "F20_Group",
		"halt":        "F23_Reboot",
		"harddrive":   "F27_Method",
		"ignoredisk":  "F20_IgnoreDisk",
		"install":     "F20_Install",
		"interactive": "F20_Interactive",
		"keyboard":    "F20_Keyboard",
		"lang":        "F20_Lang",
		"liveimg":     "F27_Method",
		"logging":     "F20_Logging",
		"logvol":      "F25_LogVol",
		"mediacheck":  "F20_MediaCheck",
		"module":      "F29_Module",
		"monitor":     "F20_Monitor",
		"network":     "F25_Network",
		"nfs":         "F27_Method",
		"ostreesetup": "F21_OSTreeSetup",
		"part":        "F25_Partition",
		"partition":   "F25_Partition",
		"poweroff":    "F23_Reboot",
		"raid":        "F25_Raid",
		"realm":       "F20_Realm",
		"reboot":      "F23_Reboot",
		"repo":        "F27_Repo",
		"reqpart":     "F23_ReqPart",
		"rootpw":      "F20_RootPw",
		"selinux":     "F20_SELinux",
		"services":    "F20_Services",
		"shutdown":    "F23_Reboot",
		"skipx":       "F20_SkipX",
		"sshkey":      "F22_SshKey",
		"sshpw":       "F24_SshPw",
		"text":        "F26_DisplayMode",
		"timezone":    "F25_Timezone",
		"upgrade":     "F20_Upgrade",
		"url":         "F27_Method",
		"user":        "F20_User",
		"vnc":         "F20_Vnc",
		"volgroup":    "F21_VolGroup",
		"xconfig":     "F20_XConfig",
		"zerombr":     "F20_ZeroMBR",
	},
	version.F29: {
		"auth":        "F28_Auth",
		"authconfig":  "F28_Auth",
		"authselect":  "F28_Authselect",
		"autopart":    "F29_AutoPart",
		"autostep":    "F29_AutoStep",
		"bootloader":  "F29_Bootloader",
		"cdrom":       "F27_Method",
		"clearpart":   "F23_ClearPart",
		"cmdline":     "F26_DisplayMode",
		"eula":        "F20_Eula",
		"firewall":    "F28_Firewall",
		"firstboot":   "F20_Firstboot",
		"graphical":   "F26_DisplayMode",
		"group":       "F20_Group",
		"halt":        "F23_Reboot",
		"harddrive":   "F27_Method",
		"ignoredisk":  "F20_IgnoreDisk",
		"install":     "F29_Install",
		"interactive": "F20_Interactive",
		"keyboard":    "F20_Keyboard",
		"lang":        "F20_Lang",
		"liveimg":     "F27_Method",
		"logging":     "F29_Logging",
		"logvol":      "F29_LogVol",
		"mediacheck":  "F20_MediaCheck",
		"module":      "F29_Module",
		"monitor":     "F20_Monitor",
		"network":     "F25_Network",
		"nfs":         "F27_Method",
		"ostreesetup": "F21_OSTreeSetup",
		"part":        "F29_Partition",
		"partition":   "F29_Partition",
		"poweroff":    "F23_Reboot",
		"raid":        "F29_Raid",
		"realm":       "F20_Realm",
		"reboot":      "F23_Reboot",
		"repo":        "F27_Repo",
		"reqpart":     "F23_ReqPart",
		"rootpw":      "F20_RootPw",
		"selinux":     "F20_SELinux",
		"services":    "F20_Services",
		"shutdown":    "F23_Reboot",
		"skipx":       "F20_SkipX",
		"sshkey":      "F22_SshKey",
		"sshpw":       "F24_SshPw",
		"text":        "F26_DisplayMode",
		"timezone":    "F25_Timezone",
		"upgrade":     "F20_Upgrade",
		"url":         "F27_Method",
		"user":        "F20_User",
		"vnc":         "F20_Vnc",
		"volgroup":    "F21_VolGroup",
		"xconfig":     "F20_XConfig",
		"zerombr":     "F20_ZeroMBR",
	},
	version.F30: {
		"auth":        "F28_Auth",
		"authconfig":  "F28_Auth",
		"authselect":  "F28_Authselect",
		"autopart":    "F29_AutoPart",
		"autostep":    "F29_AutoStep",
		"bootloader":  "F29_Bootloader",
		"cdrom":       "F27_Method",
		"clearpart":   "F23_ClearPart",
		"cmdline":     "F26_DisplayMode",
		"eula":        "F20_Eula",
		"firewall":    "F28_Firewall",
		"firstboot":   "F20_Firstboot",
		"graphical":   "F26_DisplayMode",
		"group":       "F20_Group",
		"halt":        "F23_Reboot",
		"harddrive":   "F27_Method",
		"ignoredisk":  "F20_IgnoreDisk",
		"install":     "F29_Install",
		"interactive": "F20_Interactive",
		"keyboard":    "F20_Keyboard",
		"lang":        "F20_Lang",
		"liveimg":     "F27_Method",
		"logging":     "F29_Logging",
		"logvol":      "F29_LogVol",
		"mediacheck":  "F20_MediaCheck",
		"module":      "F29_Module",
		"monitor":     "F20_Monitor",
		"network":     "F25_Network",
		"nfs":         "F27_Method",
		"ostreesetup": "F21_OSTreeSetup",
		"part":        "F29_Partition",
		"partition":   "F29_Partition",
		"poweroff":    "F23_Reboot",
		"raid":        "F29_Raid",
		"realm":       "F20_Realm",
		"reboot":      "F23_Reboot",
		"repo":        "F27_Repo",
		"reqpart":     "F23_ReqPart",
		"rootpw":      "F20_RootPw",
		"selinux":     "F20_SELinux",
		"services":    "F20_Services",
		"shutdown":    "F23_Reboot",
		"skipx":       "F20_SkipX",
		"sshkey":      "F22_SshKey",
		"sshpw":       "F24_SshPw",
		"text":        "F26_DisplayMode",
		"timezone":    "F25_Timezone",
		"upgrade":     "F20_Upgrade",
		"url":         "F27_Method",
		"user":        "F20_User",
		"vnc":         "F20_Vnc",
		"volgroup":    "F21_VolGroup",
		"xconfig":     "F20_XConfig",
		"zerombr":     "F20_ZeroMBR",
	},
}

// dataTables maps every supported version's data kinds to data variants.
var dataTables = map[version.Version]map[string]string{
	version.F20: {
		"GroupData":    "F20_GroupData",
		"LogVolData":   "F20_LogVolData",
		"NetworkData":  "F20_NetworkData",
		"PartData":     "F20_PartData",
		"RaidData":     "F20_RaidData",
		"RepoData":     "F20_RepoData",
		"SshPwData":    "F20_SshPwData",
		"UserData":     "F20_UserData",
		"VolGroupData": "F20_VolGroupData",
	},
	version.F21: {
		"GroupData":    "F20_GroupData",
		"LogVolData":   "F20_LogVolData",
		"NetworkData":  "F20_NetworkData",
		"PartData":     "F20_PartData",
		"RaidData":     "F20_RaidData",
		"RepoData":     "F21_RepoData",
		"SshPwData":    "F20_SshPwData",
		"UserData":     "F20_UserData",
		"VolGroupData": "F21_VolGroupData",
	},
	version.RHEL7: {
		"GroupData":    "F20_GroupData",
		"LogVolData":   "F20_LogVolData",
		"NetworkData":  "F20_NetworkData",
		"PartData":     "F20_PartData",
		"RaidData":     "F20_RaidData",
		"RepoData":     "F21_RepoData",
		"SshPwData":    "F20_SshPwData",
		"UserData":     "F20_UserData",
		"VolGroupData": "F21_VolGroupData",
	},
	version.F22: {
		"GroupData":    "F20_GroupData",
		"LogVolData":   "F20_LogVolData",
		"NetworkData":  "F22_NetworkData",
		"PartData":     "F20_PartData",
		"RaidData":     "F20_RaidData",
		"RepoData":     "F21_RepoData",
		"SshKeyData":   "F22_SshKeyData",
		"SshPwData":    "F20_SshPwData",
		"UserData":     "F20_UserData",
		"VolGroupData": "F21_VolGroupData",
	},
	version.F23: {
		"GroupData":    "F20_GroupData",
		"LogVolData":   "F23_LogVolData",
		"NetworkData":  "F22_NetworkData",
		"PartData":     "F23_PartData",
		"RaidData":     "F20_RaidData",
		"RepoData":     "F21_RepoData",
		"SshKeyData":   "F22_SshKeyData",
		"SshPwData":    "F20_SshPwData",
		"UserData":     "F20_UserData",
		"VolGroupData": "F21_VolGroupData",
	},
	version.F24: {
		"GroupData":    "F20_GroupData",
		"LogVolData":   "F23_LogVolData",
		"NetworkData":  "F22_NetworkData",
		"PartData":     "F23_PartData",
		"RaidData":     "F20_RaidData",
		"RepoData":     "F21_RepoData",
		"SshKeyData":   "F22_SshKeyData",
		"SshPwData":    "F24_SshPwData",
		"UserData":     "F20_UserData",
		"VolGroupData": "F21_VolGroupData",
	},
	version.F25: {
		"GroupData":    "F20_GroupData",
		"LogVolData":   "F23_LogVolData",
		"NetworkData":  "F25_NetworkData",
		"PartData":     "F23_PartData",
		"RaidData":     "F25_RaidData",
		"RepoData":     "F21_RepoData",
		"SshKeyData":   "F22_SshKeyData",
		"SshPwData":    "F24_SshPwData",
		"UserData":     "F20_UserData",
		"VolGroupData": "F21_VolGroupData",
	},
	version.F26: {
		"GroupData":    "F20_GroupData",
		"LogVolData":   "F23_LogVolData",
		"NetworkData":  "F25_NetworkData",
		"PartData":     "F23_PartData",
		"RaidData":     "F25_RaidData",
		"RepoData":     "F21_RepoData",
		"SshKeyData":   "F22_SshKeyData",
		"SshPwData":    "F24_SshPwData",
		"UserData":     "F20_UserData",
		"VolGroupData": "F21_VolGroupData",
	},
	version.F27: {
		"GroupData":    "F20_GroupData",
		"LogVolData":   "F23_LogVolData",
		"NetworkData":  "F25_NetworkData",
		"PartData":     "F23_PartData",
		"RaidData":     "F25_RaidData",
		"RepoData":     "F27_RepoData",
		"SshKeyData":   "F22_SshKeyData",
		"SshPwData":    "F24_SshPwData",
		"UserData":     "F20_UserData",
		"VolGroupData": "F21_VolGroupData",
	},
	version.F28: {
		"GroupData":    "F20_GroupData",
		"LogVolData":   "F23_LogVolData",
		"NetworkData":  "F25_NetworkData",
		"PartData":     "F23_PartData",
		"RaidData":     "F25_RaidData",
		"RepoData":     "F27_RepoData",
		"SshKeyData":   "F22_SshKeyData",
		"SshPwData":    "F24_SshPwData",
		"UserData":     "F20_UserData",
		"VolGroupData": "F21_VolGroupData",
	},
	version.RHEL8: {
		"GroupData":    "F20_GroupData",
		"LogVolData":   "F23_LogVolData",
		"ModuleData":   "F29_ModuleData",
		"NetworkData":  "F25_NetworkData",
		"PartData":     "F23_PartData",
		"RaidData":     "F25_RaidData",
		"RepoData":     "F27_RepoData",
		"SshKeyData":   "F22_SshKeyData",
		"SshPwData":    "F24_SshPwData",
		"UserData":     "F20_UserData",
		"VolGroupData": "F21_VolGroupData",
	},
	version.F29: {
		"GroupData":    "F20_GroupData",
		"LogVolData":   "F29_LogVolData",
		"ModuleData":   "F29_ModuleData",
		"NetworkData":  "F25_NetworkData",
		"PartData":     "F29_PartData",
		"RaidData":     "F25_RaidData",
		"RepoData":     "F27_RepoData",
		"SshKeyData":   "F22_SshKeyData",
		"SshPwData":    "F24_SshPwData",
		"UserData":     "F20_UserData",
		"VolGroupData": "F21_VolGroupData",
	},
	version.F30: {
		"GroupData":    "F20_GroupData",
		"LogVolData":   "F29_LogVolData",
		"ModuleData":   "F29_ModuleData",
		"NetworkData":  "F25_NetworkData",
		"PartData":     "F29_PartData",
		"RaidData":     "F25_RaidData",
		"RepoData":     "F27_RepoData",
		"SshKeyData":   "F22_SshKeyData",
		"SshPwData":    "F24_SshPwData",
		"UserData":     "F20_UserData",
		"VolGroupData": "F21_VolGroupData",
	},
}
