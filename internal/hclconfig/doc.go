// Package hclconfig implements config.Loader for ksparse settings files
// written in HCL:
//
//	version               = "F29"
//	follow_includes       = true
//	missing_include_fatal = false
//	keep_comments         = true
//	mask_all_except       = ["part", "raid", "volgroup", "logvol"]
//
//	override "bootloader" {
//	  variant = "F21_Bootloader"
//	}
//
//	data_override "PartData" {
//	  variant = "F23_PartData"
//	}
//
// Attribute expressions are evaluated with an "env" object holding the
// process environment, so `version = env.KS_VERSION` works.
package hclconfig
