package introspect

import (
	"context"
	"fmt"
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/tools/go/packages"
)

// Shape is the classified accessor surface of one type.
type Shape struct {
	// Name of the target type.
	Name string `json:"name"`
	// Target is the type expression as written from the output package.
	Target string `json:"target"`
	// PackageName and PackagePath locate the target type.
	PackageName string `json:"package"`
	PackagePath string `json:"packagePath"`
	// Dir holds the target's source files.
	Dir string `json:"dir"`
	// OutputPackage is the package the wrapper is generated into.
	OutputPackage string `json:"outputPackage"`
	// Imports the wrapper needs besides the assertions package.
	Imports []string `json:"imports,omitempty"`
	// Accessors in declared order, excluded ones included.
	Accessors []Accessor `json:"accessors"`
}

// Included returns the accessors that get generated methods.
func (s *Shape) Included() []Accessor {
	var out []Accessor
	for _, a := range s.Accessors {
		if !a.Excluded {
			out = append(out, a)
		}
	}
	return out
}

// ClassSpec is what the emitter renders: the target and its generated
// accessors.
type ClassSpec struct {
	Package   string
	Name      string
	Target    string
	Imports   []string
	Accessors []Accessor
}

func (s *Shape) Spec() *ClassSpec {
	return &ClassSpec{
		Package:   s.OutputPackage,
		Name:      s.Name,
		Target:    s.Target,
		Imports:   append([]string(nil), s.Imports...),
		Accessors: s.Included(),
	}
}

type options struct {
	outName string
	outPath string
	dir     string
}

// Option configures introspection.
type Option func(*options)

// WithOutput sets the package the wrapper is generated into. By default it
// is the package of the target type.
func WithOutput(name, importPath string) Option {
	return func(o *options) {
		o.outName = name
		o.outPath = importPath
	}
}

// WithDir sets the directory package patterns are resolved from.
func WithDir(dir string) Option {
	return func(o *options) {
		o.dir = dir
	}
}

// FromSource type-checks a single file and classifies typeName. Imports are
// resolved with the default importer, so src may only import the standard
// library.
func FromSource(filename, src, typeName string, opts ...Option) (*Shape, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, filename, src, parser.SkipObjectResolution)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filename, err)
	}

	conf := types.Config{Importer: importer.Default()}
	pkg, err := conf.Check(file.Name.Name, fset, []*ast.File{file}, nil)
	if err != nil {
		return nil, fmt.Errorf("type-check %s: %w", filename, err)
	}

	shape, err := inspect(fset, pkg, typeName, opts)
	if err != nil {
		return nil, err
	}
	shape.Dir = filepath.Dir(filename)
	return shape, nil
}

// Load resolves pattern with go/packages and classifies typeName in the
// package that declares it. A pattern may match several packages, but only
// one of them may declare typeName.
func Load(ctx context.Context, pattern, typeName string, opts ...Option) (*Shape, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	cfg := &packages.Config{
		Context: ctx,
		Dir:     o.dir,
		Mode: packages.NeedName | packages.NeedFiles | packages.NeedSyntax |
			packages.NeedTypes | packages.NeedTypesInfo,
	}
	pkgs, err := packages.Load(cfg, pattern)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", pattern, err)
	}
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("load %s: no packages matched", pattern)
	}

	pkg, err := declaring(pkgs, pattern, typeName)
	if err != nil {
		return nil, err
	}

	shape, err := inspect(pkg.Fset, pkg.Types, typeName, opts)
	if err != nil {
		return nil, err
	}
	if len(pkg.GoFiles) > 0 {
		shape.Dir = filepath.Dir(pkg.GoFiles[0])
	}
	return shape, nil
}

// declaring picks the package among pkgs that declares typeName. With a
// single match, its load errors and lookup failures are reported as they
// are.
func declaring(pkgs []*packages.Package, pattern, typeName string) (*packages.Package, error) {
	if len(pkgs) == 1 {
		pkg := pkgs[0]
		if len(pkg.Errors) > 0 {
			return nil, fmt.Errorf("load %s: %v", pattern, pkg.Errors[0])
		}
		return pkg, nil
	}

	var found []*packages.Package
	var loadErr error
	for _, pkg := range pkgs {
		if pkg.Types == nil || pkg.Types.Scope().Lookup(typeName) == nil {
			if len(pkg.Errors) > 0 && loadErr == nil {
				loadErr = fmt.Errorf("load %s: %v", pattern, pkg.Errors[0])
			}
			continue
		}
		found = append(found, pkg)
	}

	switch len(found) {
	case 0:
		if loadErr != nil {
			return nil, loadErr
		}
		return nil, &IntrospectionError{Type: typeName,
			Reason: fmt.Sprintf("type not found in the %d packages matched by %s", len(pkgs), pattern)}
	case 1:
		if len(found[0].Errors) > 0 {
			return nil, fmt.Errorf("load %s: %v", pattern, found[0].Errors[0])
		}
		return found[0], nil
	}
	paths := make([]string, len(found))
	for i, pkg := range found {
		paths[i] = pkg.PkgPath
	}
	sort.Strings(paths)
	return nil, &IntrospectionError{Type: typeName,
		Reason: "declared in several packages matched by " + pattern + ": " + strings.Join(paths, ", ")}
}

type inspector struct {
	typeName string
	outPath  string
	imports  map[string]bool
}

func inspect(fset *token.FileSet, pkg *types.Package, typeName string, opts []Option) (*Shape, error) {
	o := &options{outName: pkg.Name(), outPath: pkg.Path()}
	for _, opt := range opts {
		opt(o)
	}
	if o.outName == "" {
		o.outName = pkg.Name()
	}
	if o.outPath == "" {
		o.outPath = pkg.Path()
	}

	obj, ok := pkg.Scope().Lookup(typeName).(*types.TypeName)
	if !ok {
		return nil, &IntrospectionError{Type: typeName, Reason: "type not found in package " + pkg.Path()}
	}
	named, ok := obj.Type().(*types.Named)
	if !ok {
		return nil, &IntrospectionError{Type: typeName, Reason: "not a named type"}
	}
	if named.TypeParams().Len() > 0 {
		return nil, &IntrospectionError{Type: typeName, Reason: "generic types are not supported"}
	}

	in := &inspector{typeName: typeName, outPath: o.outPath, imports: map[string]bool{}}
	shape := &Shape{
		Name:          typeName,
		Target:        types.TypeString(named, in.qualify),
		PackageName:   pkg.Name(),
		PackagePath:   pkg.Path(),
		OutputPackage: o.outName,
	}

	generated := map[string]string{}
	for _, fn := range methods(fset, pkg, named) {
		acc, keep, err := in.classify(fn)
		if err != nil {
			return nil, err
		}
		if !keep {
			continue
		}
		if !acc.Excluded {
			for _, name := range acc.Generated() {
				if reserved[name] {
					return nil, &IntrospectionError{Type: typeName, Member: acc.Name,
						Reason: fmt.Sprintf("generated method %s collides with the assertion node API", name)}
				}
				if prev, dup := generated[name]; dup {
					return nil, &IntrospectionError{Type: typeName, Member: acc.Name,
						Reason: fmt.Sprintf("generated method %s collides with the one for %s", name, prev)}
				}
				generated[name] = acc.Name
			}
		}
		shape.Accessors = append(shape.Accessors, acc)
	}

	for p := range in.imports {
		shape.Imports = append(shape.Imports, p)
	}
	sort.Strings(shape.Imports)
	return shape, nil
}

// classify turns a method into an accessor. keep is false for methods that
// are not accessors at all.
func (in *inspector) classify(fn *types.Func) (Accessor, bool, error) {
	name := fn.Name()
	if !fn.Exported() {
		return Accessor{}, false, nil
	}
	sig := fn.Type().(*types.Signature)

	if isSetter(name) {
		return Accessor{Name: name, Excluded: true, Reason: "setter"}, true, nil
	}
	if sig.Results().Len() == 0 {
		return Accessor{}, false, nil
	}
	if sig.Results().Len() > 1 {
		return Accessor{}, false, &IntrospectionError{Type: in.typeName, Member: name,
			Reason: fmt.Sprintf("%d results; accessors must return exactly one value", sig.Results().Len())}
	}
	if sig.Variadic() {
		return Accessor{}, false, &IntrospectionError{Type: in.typeName, Member: name,
			Reason: "variadic parameters are not supported"}
	}

	result := sig.Results().At(0).Type()
	acc := Accessor{
		Name:     name,
		Result:   types.TypeString(result, in.qualify),
		Category: categorize(result),
	}

	params := sig.Params()
	for i := 0; i < params.Len(); i++ {
		p := params.At(i)
		pname := p.Name()
		if reservedParams[pname] {
			pname = fmt.Sprintf("arg%d", i)
		}
		acc.Params = append(acc.Params, Param{Name: pname, Type: types.TypeString(p.Type(), in.qualify)})
	}

	switch {
	case len(acc.Params) > 0:
		acc.Kind = KindQuery
	case acc.Category == CategoryBoolean:
		acc.Kind = KindPredicate
	default:
		acc.Kind = KindValue
	}
	return acc, true, nil
}

// qualify renders package names for types outside the output package and
// records their imports.
func (in *inspector) qualify(p *types.Package) string {
	if p.Path() == in.outPath {
		return ""
	}
	in.imports[p.Path()] = true
	return p.Name()
}

func categorize(t types.Type) Category {
	b, ok := t.Underlying().(*types.Basic)
	switch {
	case !ok:
		return CategoryReference
	case b.Info()&types.IsBoolean != 0:
		return CategoryBoolean
	default:
		return CategoryPrimitive
	}
}

// methods returns every method callable on a value of named, promoted ones
// included. Methods declared in pkg come first, by file name and then
// position; methods promoted from other packages follow by name.
func methods(fset *token.FileSet, pkg *types.Package, named *types.Named) []*types.Func {
	var recv types.Type = types.NewPointer(named)
	if types.IsInterface(named) {
		recv = named
	}
	mset := types.NewMethodSet(recv)

	out := make([]*types.Func, 0, mset.Len())
	for i := 0; i < mset.Len(); i++ {
		if fn, ok := mset.At(i).Obj().(*types.Func); ok {
			out = append(out, fn)
		}
	}

	local := func(fn *types.Func) bool { return fn.Pkg() == pkg }
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if local(a) != local(b) {
			return local(a)
		}
		if local(a) {
			pa, pb := fset.Position(a.Pos()), fset.Position(b.Pos())
			if pa.Filename != pb.Filename {
				return pa.Filename < pb.Filename
			}
			if pa.Offset != pb.Offset {
				return pa.Offset < pb.Offset
			}
		}
		return a.Name() < b.Name()
	})
	return out
}
