package hclconfig

import "github.com/hashicorp/hcl/v2"

// fileRoot is the top-level schema of a settings file. Scalar settings stay
// expressions so they can be evaluated against the environment and so an
// omitted attribute can be told apart from a zero value.
type fileRoot struct {
	Version             hcl.Expression   `hcl:"version,optional"`
	FollowIncludes      hcl.Expression   `hcl:"follow_includes,optional"`
	MissingIncludeFatal hcl.Expression   `hcl:"missing_include_fatal,optional"`
	KeepComments        hcl.Expression   `hcl:"keep_comments,optional"`
	MaskAllExcept       hcl.Expression   `hcl:"mask_all_except,optional"`
	Overrides           []*overrideBlock `hcl:"override,block"`
	DataOverrides       []*overrideBlock `hcl:"data_override,block"`
}

// overrideBlock swaps the variant behind one keyword or data kind.
type overrideBlock struct {
	Name    string `hcl:"name,label"`
	Variant string `hcl:"variant"`
}
