package registry

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"go/ast"
	"go/doc"
	"go/format"
	"go/token"
	"go/types"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/tools/go/packages"
)

const loadMode = packages.NeedName | packages.NeedCompiledGoFiles | packages.NeedFiles |
	packages.NeedSyntax | packages.NeedTypes | packages.NeedTypesInfo |
	packages.NeedTypesSizes | packages.NeedModule | packages.NeedImports

// Loader builds a Library from the Go package tree rooted at Root.
//
// The root package's doc comment becomes the library text. Every package
// below it becomes a module named by its directory relative to Root, with
// path separators replaced by dots.
type Loader struct {
	Root    string
	Version string
	// IncludeInternal marks internal and main packages visible.
	IncludeInternal bool
}

// Library loads the package tree and describes it.
func (l *Loader) Library(ctx context.Context) (*Library, error) {
	pkgs, err := loadPackageTree(ctx, l.Root)
	if err != nil {
		return nil, err
	}
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("no packages matched %q", l.Root)
	}
	rootDir, err := resolveBaseDir(l.Root, pkgs)
	if err != nil {
		return nil, err
	}
	lib := &Library{Version: l.Version}
	for _, pkg := range pkgs {
		docPkg, err := doc.NewFromFiles(pkg.Fset, pkg.Syntax, pkg.PkgPath, doc.AllDecls)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", pkg.PkgPath, err)
		}
		rel, ok := relativeName(rootDir, packageDir(pkg))
		if !ok {
			continue
		}
		if rel == "" {
			lib.Doc = strings.TrimSpace(docPkg.Doc)
			continue
		}
		lib.Modules = append(lib.Modules, &Module{
			Name:    rel,
			Path:    pkg.PkgPath,
			Doc:     strings.TrimSpace(docPkg.Doc),
			Visible: l.IncludeInternal || (pkg.Name != "main" && !isInternal(rel)),
			Symbols: describePackage(pkg, docPkg),
		})
	}
	return lib, nil
}

func describePackage(pkg *packages.Package, docPkg *doc.Package) []*Symbol {
	var symbols []*Symbol
	for _, v := range docPkg.Consts {
		symbols = append(symbols, valueSymbols(pkg.PkgPath, v)...)
	}
	for _, v := range docPkg.Vars {
		symbols = append(symbols, valueSymbols(pkg.PkgPath, v)...)
	}
	for _, f := range docPkg.Funcs {
		symbols = append(symbols, funcSymbol(pkg, f))
	}
	for _, t := range docPkg.Types {
		class := &Symbol{
			Name:    t.Name,
			Origin:  originOf(pkg.Types, t.Name),
			Kind:    KindClass,
			Doc:     strings.TrimSpace(t.Doc),
			Visible: token.IsExported(t.Name),
		}
		for _, f := range t.Funcs {
			if !strings.EqualFold(f.Name, "New"+t.Name) {
				symbols = append(symbols, funcSymbol(pkg, f))
				continue
			}
			class.Members = append(class.Members, &Member{
				Name:        f.Name,
				Doc:         strings.TrimSpace(f.Doc),
				Visible:     token.IsExported(f.Name),
				Constructor: true,
				Signature:   funcSignature(pkg.Fset, f.Decl),
			})
		}
		for _, m := range t.Methods {
			class.Members = append(class.Members, &Member{
				Name:      m.Name,
				Doc:       strings.TrimSpace(m.Doc),
				Visible:   token.IsExported(m.Name),
				Bound:     true,
				Signature: methodSignature(pkg.Fset, m.Decl),
			})
		}
		for _, v := range t.Consts {
			symbols = append(symbols, valueSymbols(pkg.PkgPath, v)...)
		}
		for _, v := range t.Vars {
			symbols = append(symbols, valueSymbols(pkg.PkgPath, v)...)
		}
		symbols = append(symbols, class)
	}
	return symbols
}

func funcSymbol(pkg *packages.Package, f *doc.Func) *Symbol {
	return &Symbol{
		Name:      f.Name,
		Origin:    pkg.PkgPath,
		Kind:      KindFunction,
		Doc:       strings.TrimSpace(f.Doc),
		Visible:   token.IsExported(f.Name),
		Signature: funcSignature(pkg.Fset, f.Decl),
	}
}

func valueSymbols(origin string, v *doc.Value) []*Symbol {
	symbols := make([]*Symbol, 0, len(v.Names))
	for _, name := range v.Names {
		symbols = append(symbols, &Symbol{
			Name:    name,
			Origin:  origin,
			Kind:    KindOther,
			Doc:     strings.TrimSpace(v.Doc),
			Visible: token.IsExported(name),
		})
	}
	return symbols
}

// originOf reports the package defining name. Aliases resolve to the
// package of the aliased type, or "" for predeclared types.
func originOf(pkg *types.Package, name string) string {
	if pkg == nil {
		return ""
	}
	tn, ok := pkg.Scope().Lookup(name).(*types.TypeName)
	if !ok || !tn.IsAlias() {
		return pkg.Path()
	}
	named, ok := types.Unalias(tn.Type()).(*types.Named)
	if !ok || named.Obj().Pkg() == nil {
		return ""
	}
	return named.Obj().Pkg().Path()
}

func funcSignature(fset *token.FileSet, decl *ast.FuncDecl) SignatureFunc {
	return func() (string, error) {
		if decl == nil || decl.Type == nil {
			return "", errors.New("missing declaration")
		}
		var buf bytes.Buffer
		if err := format.Node(&buf, fset, decl.Type); err != nil {
			return "", err
		}
		return strings.TrimSpace(strings.TrimPrefix(buf.String(), "func")), nil
	}
}

// methodSignature renders a method in method-expression form, with the
// receiver as the first parameter.
func methodSignature(fset *token.FileSet, decl *ast.FuncDecl) SignatureFunc {
	return func() (string, error) {
		if decl == nil || decl.Type == nil {
			return "", errors.New("missing declaration")
		}
		if decl.Recv == nil || len(decl.Recv.List) == 0 {
			return "", errors.New("method without receiver")
		}
		params := []*ast.Field{decl.Recv.List[0]}
		if decl.Type.Params != nil {
			params = append(params, decl.Type.Params.List...)
		}
		expr := &ast.FuncType{
			Params:  &ast.FieldList{List: params},
			Results: decl.Type.Results,
		}
		var buf bytes.Buffer
		if err := format.Node(&buf, fset, expr); err != nil {
			return "", err
		}
		return strings.TrimSpace(strings.TrimPrefix(buf.String(), "func")), nil
	}
}

// loadPackageTree loads every package below root. Package errors are
// joined so a broken tree reports all of them at once.
func loadPackageTree(ctx context.Context, root string) ([]*packages.Package, error) {
	cfg := &packages.Config{
		Context: ctx,
		Mode:    loadMode,
	}
	pkgs, err := packages.Load(cfg, buildPatterns(root)...)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", root, err)
	}
	var errs []error
	for _, pkg := range pkgs {
		for _, pkgErr := range pkg.Errors {
			errs = append(errs, pkgErr)
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("load %s: %w", root, errors.Join(errs...))
	}
	sort.Slice(pkgs, func(i, j int) bool {
		return pkgs[i].PkgPath < pkgs[j].PkgPath
	})
	return pkgs, nil
}

// buildPatterns returns the recursive pattern for root, which also matches
// root itself. Directories on disk are made explicitly relative; anything
// else is passed through as an import path.
func buildPatterns(root string) []string {
	root = trimRoot(root)
	pattern := filepath.ToSlash(root)
	if isDir(root) && !filepath.IsAbs(root) && !strings.HasPrefix(pattern, ".") {
		pattern = "./" + pattern
	}
	if pattern == "/" {
		return []string{"/..."}
	}
	return []string{strings.TrimSuffix(pattern, "/") + "/..."}
}

// resolveBaseDir finds the directory module names are relative to: root
// itself when it is a directory, else the directory of the package whose
// import path is root.
func resolveBaseDir(root string, pkgs []*packages.Package) (string, error) {
	root = trimRoot(root)
	if isDir(root) {
		return filepath.Abs(root)
	}
	for _, pkg := range pkgs {
		if pkg.PkgPath == root {
			if dir := packageDir(pkg); dir != "" {
				return dir, nil
			}
		}
	}
	return "", fmt.Errorf("cannot determine base directory for %q", root)
}

func trimRoot(root string) string {
	root = strings.TrimSuffix(strings.TrimSpace(root), "...")
	if root == "" {
		return "."
	}
	if len(root) > 1 {
		root = strings.TrimSuffix(root, "/")
	}
	return root
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// relativeName names the package in pkgDir relative to baseDir. The root
// package itself has the empty name; packages outside baseDir are not ok.
func relativeName(baseDir, pkgDir string) (string, bool) {
	if pkgDir == "" {
		return "", false
	}
	rel, err := filepath.Rel(baseDir, pkgDir)
	if err != nil || strings.HasPrefix(rel, "..") {
		return "", false
	}
	if rel == "." {
		return "", true
	}
	return strings.ReplaceAll(filepath.ToSlash(rel), "/", "."), true
}

func isInternal(name string) bool {
	for _, elem := range strings.Split(name, ".") {
		if elem == "internal" {
			return true
		}
	}
	return false
}

// packageDir is the absolute directory of pkg, or "" when go list did not
// report one and the package has no files.
func packageDir(pkg *packages.Package) string {
	dir := pkg.Dir
	if dir == "" && len(pkg.GoFiles) > 0 {
		dir = filepath.Dir(pkg.GoFiles[0])
	}
	if dir == "" {
		return ""
	}
	if abs, err := filepath.Abs(dir); err == nil {
		return abs
	}
	return filepath.Clean(dir)
}
