package host

//go:generate go tool stringer -type=Kind -trimprefix=Kind -output=kind_string.go

// Kind classifies a module reference site.
type Kind int

const (
	_ Kind = iota // zero value is not a valid site kind

	KindStaticImport  // import x from "./a"; import "./a"
	KindReExport      // export * from "./a"; export { x } from "./a"
	KindRequireCall   // require("./a")
	KindDynamicImport // import("./a")
)

// Site is one module reference in a file.
type Site interface {
	// Kind classifies the site.
	Kind() Kind
	// Specifier returns the literal specifier. ok is false when the specifier
	// is computed or the site has several sources; such sites are never
	// rewritten.
	Specifier() (specifier string, ok bool)
	// Replace substitutes the literal specifier.
	Replace(specifier string)
}

// Liner is implemented by sites that know their 1-based source line.
type Liner interface {
	Line() int
}

func lineOf(s Site) int {
	if l, ok := s.(Liner); ok {
		return l.Line()
	}

	return 0
}
