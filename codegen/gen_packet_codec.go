//go:build ignore
// +build ignore

package main

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"text/template"
)

// Field represents a single field in a packet struct
type Field struct {
	Name      string // The Struct field name (e.g., "ProtocolVersion")
	FieldType string // The codec suffix (e.g., "VarInt" selects WriteVarInt/ReadVarInt)
	Max       string // Length limit passed to the reader, required for String
}

// GeneratedStruct represents a struct found in the source code marked for generation
type GeneratedStruct struct {
	Name              string
	Fields            []Field
	GenRead, GenWrite bool
}

type File struct {
	Name    string
	Structs []GeneratedStruct
}

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: go run gen_packet_codec.go -- path/to/dir")
		os.Exit(1)
	}

	targetDir := os.Args[len(os.Args)-1] // Take the last argument as the directory
	fset := token.NewFileSet()
	var parsedFiles []File
	var pkgName string

	filePaths, _ := filepath.Glob(filepath.Join(targetDir, "*.go"))

	for _, filePath := range filePaths {
		// Skip generated and test files
		base := filepath.Base(filePath)
		if strings.HasPrefix(base, "zz_generated") || strings.HasSuffix(base, "_test.go") {
			continue
		}

		node, err := parser.ParseFile(fset, filePath, nil, parser.ParseComments)
		if err != nil {
			panic(err)
		}

		if pkgName == "" {
			pkgName = node.Name.Name
		}

		var fileStructs []GeneratedStruct

		// Walk through top-level declarations
		for _, decl := range node.Decls {
			gen, ok := decl.(*ast.GenDecl)

			// filter for only type declarations with comments
			if !ok || gen.Tok != token.TYPE || gen.Doc == nil {
				continue
			}

			// Check for @gen marker and parse options, e.g. @gen:r,w
			var isGen bool
			var genRead, genWrite bool

			for _, comment := range gen.Doc.List {
				text := comment.Text
				if !strings.Contains(text, "@gen:") {
					continue
				}
				isGen = true
				parts := strings.Split(text, "@gen:")
				for _, opt := range strings.Split(strings.TrimSpace(parts[1]), ",") {
					switch strings.TrimSpace(opt) {
					case "r":
						genRead = true
					case "w":
						genWrite = true
					}
				}
				break
			}

			if !isGen {
				continue
			}

			for _, spec := range gen.Specs {
				tspec, ok := spec.(*ast.TypeSpec)
				if !ok {
					continue
				}

				structType, ok := tspec.Type.(*ast.StructType)
				if !ok {
					continue
				}

				var fields []Field
				for _, field := range structType.Fields.List {
					for _, name := range field.Names {
						// Get the raw tag string
						rawTag := ""
						if field.Tag != nil {
							rawTag = field.Tag.Value
							if len(rawTag) > 1 && rawTag[0] == '`' && rawTag[len(rawTag)-1] == '`' {
								rawTag = rawTag[1 : len(rawTag)-1] // Remove backticks
							}
						}

						parsedTag := reflect.StructTag(rawTag)
						fieldType := parsedTag.Get("field")
						if fieldType == "" {
							continue // Skip fields without the "field" tag
						}

						f := Field{
							Name:      name.Name,
							FieldType: fieldType,
							Max:       parsedTag.Get("max"),
						}
						if f.FieldType == "String" && f.Max == "" {
							panic(fmt.Sprintf("%s.%s: String field needs a max tag", tspec.Name.Name, name.Name))
						}

						fields = append(fields, f)
					}
				}

				fileStructs = append(fileStructs, GeneratedStruct{
					Name:     tspec.Name.Name,
					Fields:   fields,
					GenRead:  genRead,
					GenWrite: genWrite,
				})
			}
		}
		if len(fileStructs) > 0 {
			parsedFiles = append(parsedFiles, File{
				Name:    filepath.Base(filePath),
				Structs: fileStructs,
			})
		}
	}

	const tmpl = `// Code generated by gen_packet_codec.go; DO NOT EDIT.

package {{.PkgName}}

import (
	"io"
)
{{range .Files}}
// Source: {{.Name}}
{{range .Structs}}
{{- if .GenWrite}}
func (p {{.Name}}) Encode(w io.Writer) (err error) {
	if err = WriteVarInt(w, p.ID()); err != nil {
		return
	}
{{- range .Fields}}
	if err = Write{{.FieldType}}(w, p.{{.Name}}); err != nil {
		return
	}
{{- end}}
	return
}
{{end}}
{{- if .GenRead}}
func (p *{{.Name}}) Decode(r *FrameReader) (err error) {
{{- range .Fields}}
	{{- if .Max}}
	if p.{{.Name}}, err = Read{{.FieldType}}(r, {{.Max}}); err != nil {
	{{- else}}
	if p.{{.Name}}, err = Read{{.FieldType}}(r); err != nil {
	{{- end}}
		return
	}
{{- end}}
	return nil
}
{{end}}
{{- end}}
{{- end}}
`

	var buf bytes.Buffer
	t := template.Must(template.New("code").Parse(tmpl))
	data := struct {
		PkgName string
		Files   []File
	}{
		PkgName: pkgName,
		Files:   parsedFiles,
	}

	if err := t.Execute(&buf, data); err != nil {
		panic(err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		panic(err)
	}

	// Output next to the source files
	outFile := filepath.Join(targetDir, "zz_generated_codec.go")
	if err := os.WriteFile(outFile, src, 0o644); err != nil {
		panic(err)
	}

	fmt.Printf("Generated %s for package %s\n", outFile, pkgName)
}
