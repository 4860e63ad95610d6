// Copyright (c) 2015-present Mattermost, Inc. All Rights Reserved.
// See LICENSE.txt for license information.

// Command layer_generators writes client_timerlayer/timerlayer.go, a msteams.Client wrapper
// reporting the duration and outcome of every Graph method.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"
	"go/types"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/template"
)

// Connect only builds the request adapter, nothing reaches Graph.
var skippedMethods = map[string]bool{
	"Connect": true,
}

type layerMethod struct {
	Name      string
	Params    string
	Args      string
	Results   string
	Vars      string
	Succeeded string
}

type layer struct {
	Name    string
	Methods []layerMethod
}

func main() {
	source := flag.String("source", "interface.go", "file declaring the Client interface")
	tmpl := flag.String("template", filepath.Join("layer_generators", "timer_layer.go.tmpl"), "layer template")
	out := flag.String("out", filepath.Join("client_timerlayer", "timerlayer.go"), "generated file")
	name := flag.String("name", "ClientTimerLayer", "name of the generated type")
	flag.Parse()

	if err := generate(*source, *tmpl, *out, *name); err != nil {
		log.Fatal(err)
	}
}

func generate(source, tmpl, out, name string) error {
	methods, err := clientMethods(source)
	if err != nil {
		return err
	}

	t, err := template.ParseFiles(tmpl)
	if err != nil {
		return fmt.Errorf("unable to parse %s: %w", tmpl, err)
	}

	var buf bytes.Buffer
	if err = t.Execute(&buf, layer{Name: name, Methods: methods}); err != nil {
		return fmt.Errorf("unable to render %s: %w", tmpl, err)
	}

	code, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("unable to format the generated layer: %w", err)
	}

	if err = os.MkdirAll(filepath.Dir(out), 0700); err != nil {
		return err
	}
	return os.WriteFile(out, code, 0600)
}

// clientMethods returns the methods of the Client interface declared in source, sorted by name.
func clientMethods(source string) ([]layerMethod, error) {
	f, err := parser.ParseFile(token.NewFileSet(), source, nil, parser.AllErrors)
	if err != nil {
		return nil, fmt.Errorf("unable to parse %s: %w", source, err)
	}

	var iface *ast.InterfaceType
	ast.Inspect(f, func(n ast.Node) bool {
		if spec, ok := n.(*ast.TypeSpec); ok && spec.Name.Name == "Client" {
			iface, _ = spec.Type.(*ast.InterfaceType)
			return false
		}
		return iface == nil
	})
	if iface == nil {
		return nil, fmt.Errorf("no Client interface in %s", source)
	}

	var methods []layerMethod
	for _, field := range iface.Methods.List {
		fn, ok := field.Type.(*ast.FuncType)
		if !ok || len(field.Names) == 0 || skippedMethods[field.Names[0].Name] {
			continue
		}
		methods = append(methods, describe(field.Names[0].Name, fn))
	}
	sort.Slice(methods, func(i, j int) bool { return methods[i].Name < methods[j].Name })

	return methods, nil
}

func describe(name string, fn *ast.FuncType) layerMethod {
	m := layerMethod{Name: name, Succeeded: "true"}

	var params, args []string
	for _, p := range fn.Params.List {
		typ := types.ExprString(p.Type)
		for _, n := range p.Names {
			params = append(params, n.Name+" "+typ)
			if _, variadic := p.Type.(*ast.Ellipsis); variadic {
				args = append(args, n.Name+"...")
			} else {
				args = append(args, n.Name)
			}
		}
	}
	m.Params = strings.Join(params, ", ")
	m.Args = strings.Join(args, ", ")

	if fn.Results == nil {
		return m
	}

	var results, vars []string
	for i, r := range fn.Results.List {
		typ := types.ExprString(r.Type)
		results = append(results, typ)
		switch {
		case typ == "error":
			vars = append(vars, "err")
			m.Succeeded = "err == nil"
		case i == 0:
			vars = append(vars, "result")
		default:
			vars = append(vars, fmt.Sprintf("result%d", i))
		}
	}
	m.Results = strings.Join(results, ", ")
	if len(results) > 1 {
		m.Results = "(" + m.Results + ")"
	}
	m.Vars = strings.Join(vars, ", ")

	return m
}
