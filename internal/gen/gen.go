// Copyright (C) 2024 The jot Authors. All Rights Reserved.

// Package gen emits Go source that registers bind capabilities for the
// shape of a sample JSON document. It is a consumer of the public bind
// contract; nothing in it touches the lexer or parser internals.
package gen

import (
	"errors"
	"fmt"
	"strings"

	"github.com/arbelos/jot/ast"
	"github.com/iancoleman/strcase"
)

// Options control generated output.
type Options struct {
	Package string // package clause, default "main"
	Type    string // root struct name, default "Root"
}

func (o Options) pkg() string {
	if o.Package == "" {
		return "main"
	}
	return o.Package
}

func (o Options) typeName() string {
	if o.Type == "" {
		return "Root"
	}
	return strcase.ToCamel(o.Type)
}

type generator struct {
	decls     []string // struct and binder declarations, in emission order
	needValue bool     // whether value.Maybe appears in a field type
}

// Source generates Go source declaring struct types for the sample
// document root, along with bind.Record registrations that populate them.
// The sample must be a JSON object.
//
// Inference is by example: a null member is treated as an optional string,
// and an empty array as a slice of strings.
func Source(root ast.Value, opts Options) (string, error) {
	obj, ok := root.(ast.Object)
	if !ok {
		return "", errors.New("sample document must be an object")
	}

	g := &generator{}
	g.emitRecord(opts.typeName(), obj)

	var sb strings.Builder
	fmt.Fprintf(&sb, "// Code generated by jot gen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&sb, "package %s\n\n", opts.pkg())
	sb.WriteString("import (\n")
	sb.WriteString("\t\"github.com/arbelos/jot/bind\"\n")
	if g.needValue {
		sb.WriteString("\n\t\"github.com/creachadair/mds/value\"\n")
	}
	sb.WriteString(")\n")
	for _, d := range g.decls {
		sb.WriteString("\n")
		sb.WriteString(d)
	}
	return sb.String(), nil
}

// emitRecord declares a struct named name for obj and a bind.Record binder
// named <name>Binder, recursing into nested objects first.
func (g *generator) emitRecord(name string, obj ast.Object) {
	type field struct {
		key        string // JSON key
		goName     string // struct field name
		goType     string // struct field type
		binderExpr string // bind.Func expression for the member
	}
	fields := make([]field, 0, len(obj))
	for _, m := range obj {
		typ, expr := g.infer(name, m.Key, m.Value)
		fields = append(fields, field{
			key:        m.Key,
			goName:     strcase.ToCamel(m.Key),
			goType:     typ,
			binderExpr: expr,
		})
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "type %s struct {\n", name)
	for _, f := range fields {
		fmt.Fprintf(&sb, "\t%s %s\n", f.goName, f.goType)
	}
	sb.WriteString("}\n")

	fmt.Fprintf(&sb, "\nvar %sBinder = bind.Record[%s](\n", name, name)
	for _, f := range fields {
		fmt.Fprintf(&sb, "\tbind.Field(%q, %s, func(t *%s, v %s) { t.%s = v }),\n",
			f.key, f.binderExpr, name, f.goType, f.goName)
	}
	sb.WriteString(")\n")

	g.decls = append(g.decls, sb.String())
}

// infer maps a sample member value to a Go field type and the bind
// expression that converts it.
func (g *generator) infer(parent, key string, v ast.Value) (goType, binderExpr string) {
	switch t := v.(type) {
	case ast.String:
		return "string", "bind.String"
	case ast.Number:
		return "float64", "bind.Float64"
	case ast.Bool:
		return "bool", "bind.Bool"
	case ast.Null:
		g.needValue = true
		return "value.Maybe[string]", "bind.Maybe(bind.String)"
	case ast.Array:
		if len(t) == 0 {
			return "[]string", "bind.Slice(bind.String)"
		}
		et, ee := g.infer(parent, key, t[0])
		return "[]" + et, fmt.Sprintf("bind.Slice(%s)", ee)
	case ast.Object:
		name := parent + strcase.ToCamel(key)
		g.emitRecord(name, t)
		return name, name + "Binder"
	}
	panic(fmt.Sprintf("unknown value type %T", v))
}
