// SPDX-License-Identifier: MPL-2.0

package extract

import (
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/scanner"
	"go/token"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/invowk/clisort/pkg/sortcheck"
)

// directiveIgnore excludes a declaration or field from extraction.
const directiveIgnore = "//clisort:ignore"

// ErrParse is the sentinel error wrapped by ParseError.
var ErrParse = errors.New("source is not valid Go")

type (
	// Declaration is one detected subcommand set.
	Declaration struct {
		// Name is the type or variable name, or the external name for an
		// inline nested command.
		Name string
		// Pos is the position of the declaring identifier.
		Pos token.Pos
		// Variants lists the `cmd` fields in declaration order.
		Variants []Variant
		// Args lists the declaration's own arguments in declaration order.
		Args []sortcheck.Argument
	}

	// Variant is one subcommand of a Declaration.
	Variant struct {
		// Ident is the Go field name.
		Ident string
		// Name is the external command name.
		Name string
		// Pos is the position of the field identifier.
		Pos token.Pos
		// Nested holds the inline anonymous struct body of the variant, or nil
		// when the variant refers to a named type.
		Nested *Declaration
	}

	// ParseError reports source that could not be parsed. It is a per-file
	// input error, distinct from ordering violations.
	ParseError struct {
		File string
		Err  error
	}
)

// Error implements the error interface.
func (e *ParseError) Error() string {
	var list scanner.ErrorList
	if errors.As(e.Err, &list) && len(list) > 0 {
		return fmt.Sprintf("parse %s: %s", e.File, list[0])
	}
	return fmt.Sprintf("parse %s: %v", e.File, e.Err)
}

// Unwrap returns ErrParse for errors.Is() compatibility.
func (e *ParseError) Unwrap() []error { return []error{ErrParse, e.Err} }

// Source parses one Go source file and returns its subcommand sets in
// source order. Malformed source returns a *ParseError and no declarations.
func Source(fset *token.FileSet, filename string, src []byte) ([]Declaration, error) {
	f, err := parser.ParseFile(fset, filename, src, parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		return nil, &ParseError{File: filename, Err: err}
	}
	return File(f), nil
}

// File returns the subcommand sets declared at the top level of f.
func File(f *ast.File) []Declaration {
	var decls []Declaration
	for _, d := range f.Decls {
		gen, ok := d.(*ast.GenDecl)
		if !ok || hasIgnoreDirective(gen.Doc) {
			continue
		}
		for _, spec := range gen.Specs {
			switch s := spec.(type) {
			case *ast.TypeSpec:
				if hasIgnoreDirective(s.Doc) {
					continue
				}
				if st, ok := s.Type.(*ast.StructType); ok && isSubcommandSet(st) {
					decls = append(decls, structDeclaration(s.Name.Name, s.Name.Pos(), st))
				}
			case *ast.ValueSpec:
				if hasIgnoreDirective(s.Doc) {
					continue
				}
				st, ok := s.Type.(*ast.StructType)
				if !ok || !isSubcommandSet(st) {
					continue
				}
				for _, name := range s.Names {
					decls = append(decls, structDeclaration(name.Name, name.Pos(), st))
				}
			}
		}
	}
	return decls
}

// VariantNames returns the external names of the variants in declaration order.
func (d Declaration) VariantNames() []string {
	names := make([]string, len(d.Variants))
	for i, v := range d.Variants {
		names[i] = v.Name
	}
	return names
}

// Command converts the declaration into a command tree rooted at the
// declaration. Variants referring to named types are leaves.
func (d Declaration) Command() sortcheck.Command {
	children := make([]sortcheck.Command, len(d.Variants))
	for i, v := range d.Variants {
		if v.Nested != nil {
			children[i] = v.Nested.Command()
			continue
		}
		children[i] = sortcheck.NewNode(v.Name, nil)
	}
	return sortcheck.NewNode(d.Name, d.Args, children...)
}

// isSubcommandSet reports whether any direct field carries a `cmd` tag.
func isSubcommandSet(st *ast.StructType) bool {
	for _, field := range st.Fields.List {
		if fieldTag(field).Has(tagCmd) {
			return true
		}
	}
	return false
}

func structDeclaration(name string, pos token.Pos, st *ast.StructType) Declaration {
	d := Declaration{Name: name, Pos: pos}
	for _, field := range st.Fields.List {
		if hasIgnoreDirective(field.Doc) || hasIgnoreDirective(field.Comment) {
			continue
		}
		tag := fieldTag(field)
		if tag.skipped() || tag.Has(tagEmbed) || len(field.Names) == 0 {
			continue
		}

		for _, ident := range field.Names {
			if !ident.IsExported() {
				continue
			}
			external := tag.Get(tagName)
			if external == "" {
				external = DefaultName(ident.Name)
			}

			switch {
			case tag.Has(tagCmd):
				v := Variant{Ident: ident.Name, Name: external, Pos: ident.Pos()}
				if inline, ok := field.Type.(*ast.StructType); ok {
					nested := structDeclaration(external, ident.Pos(), inline)
					v.Nested = &nested
				}
				d.Variants = append(d.Variants, v)
			case tag.Has(tagArg):
				d.Args = append(d.Args, sortcheck.Positional(external))
			default:
				d.Args = append(d.Args, sortcheck.Flag(external, shortRune(tag.Get(tagShort)), external))
			}
		}
	}
	return d
}

func fieldTag(field *ast.Field) structTag {
	if field.Tag == nil {
		return parseTag("")
	}
	raw, err := strconv.Unquote(field.Tag.Value)
	if err != nil {
		return parseTag("")
	}
	return parseTag(raw)
}

func shortRune(s string) rune {
	if s == "" {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return 0
	}
	return r
}

func hasIgnoreDirective(cg *ast.CommentGroup) bool {
	if cg == nil {
		return false
	}
	for _, c := range cg.List {
		text := strings.TrimSpace(c.Text)
		if text == directiveIgnore || strings.HasPrefix(text, directiveIgnore+" ") {
			return true
		}
	}
	return false
}
