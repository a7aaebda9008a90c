// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package commands

import (
	"strings"

	"github.com/specialistvlad/gokickstart/internal/kserrors"
	"github.com/specialistvlad/gokickstart/internal/options"
)

// Data is one record produced by a repeatable command, e.g. one partition.
// Implementations bind their fields with `ks:"dest"` tags.
type Data interface {
	String() string
	Line() int
	SetLine(int)
}

// DataType describes a data object variant.
type DataType struct {
	// Name identifies the variant, e.g. "F29_PartData".
	Name string
	// Kind is the name data commands ask the registry for, e.g. "PartData".
	Kind string
	New  func() Data
}

func (t DataType) String() string {
	return t.Name
}

// DataList is the ordered list of records of one kind. The handler owns it.
type DataList struct {
	Type  DataType
	Items []Data
}

// NewDataList returns an empty list producing records of t.
func NewDataList(t DataType) *DataList {
	return &DataList{Type: t}
}

// Add creates, appends and returns a new record.
func (l *DataList) Add() Data {
	d := l.Type.New()
	l.Items = append(l.Items, d)
	return d
}

// Append adds records built by the caller.
func (l *DataList) Append(items ...Data) {
	l.Items = append(l.Items, items...)
}

// Len returns the number of records.
func (l *DataList) Len() int {
	return len(l.Items)
}

// DataCommand is implemented by commands that produce data objects.
type DataCommand interface {
	Command
	DataKind() string
	BindData(*DataList)
}

// dataLine is embedded by data objects for their line bookkeeping.
type dataLine struct {
	line int
}

func (d *dataLine) Line() int { return d.line }

func (d *dataLine) SetLine(n int) { d.line = n }

// repeatable is the command side of every data object family: each
// invocation appends one record to the bound list.
type repeatable struct {
	base
	list *DataList
	// check runs cross-field validation before the record is created.
	check func(inv *Invocation, res *options.Result) error
	// key identifies a record for duplicate detection; "" skips the check.
	key func(res *options.Result) string
	// duplicate is the warning format for a repeated key.
	duplicate string
	seenKeys  map[string]bool
}

func newRepeatable(t Type) *repeatable {
	return &repeatable{base: newBase(t), seenKeys: make(map[string]bool)}
}

func (c *repeatable) DataKind() string { return c.typ.DataKind }

func (c *repeatable) BindData(l *DataList) { c.list = l }

// Data returns the bound list.
func (c *repeatable) Data() *DataList { return c.list }

func (c *repeatable) Parse(inv *Invocation) error {
	if c.list == nil {
		return kserrors.New(kserrors.Generic, "no %s list bound to the %s command", c.typ.DataKind, inv.Keyword)
	}
	res, err := c.parse(inv)
	if err != nil {
		return err
	}
	if c.check != nil {
		if err := c.check(inv, res); err != nil {
			return err
		}
	}
	if c.key != nil {
		if k := c.key(res); k != "" {
			if c.seenKeys[k] {
				inv.Warn(kserrors.General, c.duplicate, k)
			}
			c.seenKeys[k] = true
		}
	}
	d := c.list.Type.New()
	if err := options.Decode(res, d); err != nil {
		return err
	}
	d.SetLine(inv.Line)
	c.list.Append(d)
	return nil
}

// String writes every record in list order.
func (c *repeatable) String() string {
	if c.list == nil {
		return ""
	}
	var b strings.Builder
	for _, d := range c.list.Items {
		b.WriteString(d.String())
	}
	return b.String()
}

// dest returns a key function reading one string dest.
func dest(name string) func(*options.Result) string {
	return func(res *options.Result) string {
		return res.String(name)
	}
}
